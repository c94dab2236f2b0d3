package component

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestNewBallComponent(t *testing.T) {
	b := NewBallComponent()
	if b.Speed != 0 {
		t.Errorf("Speed = %v, want 0", b.Speed)
	}
	if math.Abs(vmath.V2FMag(b.Direction)-1) > 1e-12 {
		t.Errorf("Direction %+v is not unit length", b.Direction)
	}
	if b.Direction.X <= 0 || b.Direction.Y <= 0 {
		t.Errorf("Direction %+v should point up-right", b.Direction)
	}
}

func TestBallVelocity(t *testing.T) {
	b := BallComponent{Speed: 10, Direction: vmath.V2F(3, 4)}
	v := b.Velocity()
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("Velocity() = %+v, want {6 8}", v)
	}
}

func TestBallVelocityDegenerateDirectionPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, core.ErrDegenerateDirection) {
			t.Fatalf("recover() = %v, want ErrDegenerateDirection", r)
		}
	}()

	b := BallComponent{Speed: 1}
	_ = b.Velocity()
}

func TestBallReflectGuard(t *testing.T) {
	tests := []struct {
		name         string
		dir          vmath.Vec2F
		hit          vmath.Collision
		want         vmath.Vec2F
		flipX, flipY bool
	}{
		{"left moving in", vmath.V2F(0.6, 0.6), vmath.CollisionLeft, vmath.V2F(-0.6, 0.6), true, false},
		{"left moving away", vmath.V2F(-0.6, 0.6), vmath.CollisionLeft, vmath.V2F(-0.6, 0.6), false, false},
		{"right moving in", vmath.V2F(-0.6, 0.6), vmath.CollisionRight, vmath.V2F(0.6, 0.6), true, false},
		{"right moving away", vmath.V2F(0.6, 0.6), vmath.CollisionRight, vmath.V2F(0.6, 0.6), false, false},
		{"top moving in", vmath.V2F(0.6, -0.6), vmath.CollisionTop, vmath.V2F(0.6, 0.6), false, true},
		{"top moving away", vmath.V2F(0.6, 0.6), vmath.CollisionTop, vmath.V2F(0.6, 0.6), false, false},
		{"bottom moving in", vmath.V2F(0.6, 0.6), vmath.CollisionBottom, vmath.V2F(0.6, -0.6), false, true},
		{"bottom moving away", vmath.V2F(0.6, -0.6), vmath.CollisionBottom, vmath.V2F(0.6, -0.6), false, false},
		{"no collision", vmath.V2F(0.6, 0.6), vmath.CollisionNone, vmath.V2F(0.6, 0.6), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BallComponent{Speed: 1, Direction: tt.dir}
			fx, fy := b.Reflect(tt.hit)
			if b.Direction != tt.want {
				t.Errorf("Direction = %+v, want %+v", b.Direction, tt.want)
			}
			if fx != tt.flipX || fy != tt.flipY {
				t.Errorf("flips = (%v, %v), want (%v, %v)", fx, fy, tt.flipX, tt.flipY)
			}
		})
	}
}
