package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Recorder appends frames to a msgpack stream
type Recorder struct {
	mu     sync.Mutex
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	frames int64
}

// NewRecorder writes the header immediately
func NewRecorder(w io.Writer, h Header) (*Recorder, error) {
	buf := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(buf)
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}
	return &Recorder{buf: buf, enc: enc}, nil
}

// Record encodes one frame
func (r *Recorder) Record(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("encode frame %d: %w", f.Frame, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames recorded
func (r *Recorder) Frames() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Flush pushes buffered frames to the underlying writer
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Flush()
}

// Reader decodes a recording produced by Recorder
type Reader struct {
	dec    *msgpack.Decoder
	Header Header
}

// NewReader decodes the header
func NewReader(r io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	if h.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported recording version %d", h.Version)
	}
	return &Reader{dec: dec, Header: h}, nil
}

// Next returns the next frame, or io.EOF at the end of the stream
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		return Frame{}, err
	}
	return f, nil
}
