package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/snapshot"
)

// replaySummary condenses a recording
type replaySummary struct {
	Session   uuid.UUID
	Frames    int
	LastFrame int64
	Left      int
	Right     int
	Bounces   int
}

func (s replaySummary) String() string {
	return fmt.Sprintf("session %s frames %d last %d score %d : %d bounces %d",
		s.Session, s.Frames, s.LastFrame, s.Left, s.Right, s.Bounces)
}

// summarizeReplay reads frames until the end of the stream
func summarizeReplay(r io.Reader) (replaySummary, error) {
	rd, err := snapshot.NewReader(r)
	if err != nil {
		return replaySummary{}, err
	}

	sum := replaySummary{Session: rd.Header.Session}
	bounce := event.EventBallBounce.String()
	for {
		f, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return sum, nil
		}
		if err != nil {
			return sum, fmt.Errorf("frame %d: %w", sum.Frames, err)
		}
		sum.Frames++
		sum.LastFrame = f.Frame
		sum.Left, sum.Right = f.Left, f.Right
		for _, name := range f.Events {
			if name == bounce {
				sum.Bounces++
			}
		}
	}
}

// runReplay prints the summary of the recording at path
func runReplay(path string, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	sum, err := summarizeReplay(f)
	if err != nil {
		return fmt.Errorf("replay %s: %w", path, err)
	}
	fmt.Fprintln(stdout, sum)
	return nil
}
