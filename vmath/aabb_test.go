package vmath

import "testing"

func box(x, y, w, h float64) Box {
	return Box{Center: V2F(x, y), Size: V2F(w, h)}
}

func TestCollide(t *testing.T) {
	paddle := box(0, 0, 20, 100)

	tests := []struct {
		name string
		ball Box
		want Collision
	}{
		{"separated horizontally", box(-40, 0, 10, 10), CollisionNone},
		{"separated vertically", box(0, 80, 10, 10), CollisionNone},
		{"touching edge", box(-15, 0, 10, 10), CollisionNone},
		{"touching corner", box(-15, 55, 10, 10), CollisionNone},
		{"left face", box(-13, 0, 10, 10), CollisionLeft},
		{"right face", box(13, 10, 10, 10), CollisionRight},
		{"top face", box(0, 53, 10, 10), CollisionTop},
		{"bottom face", box(2, -53, 10, 10), CollisionBottom},
		{"corner prefers shallow x", box(-14, 52, 10, 10), CollisionLeft},
		{"corner prefers shallow y", box(-11, 54, 10, 10), CollisionTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collide(tt.ball, paddle); got != tt.want {
				t.Errorf("Collide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollideEqualDepthResolvesHorizontally(t *testing.T) {
	a := box(-8, -8, 10, 10)
	b := box(0, 0, 10, 10)
	if got := Collide(a, b); got != CollisionLeft {
		t.Fatalf("Collide() = %v, want left", got)
	}
}

func TestOverlapsMatchesCollide(t *testing.T) {
	b := box(100, 0, 20, 720)
	for x := 60.0; x <= 140; x += 2.5 {
		a := box(x, 0, 36, 36)
		if Overlaps(a, b) != (Collide(a, b) != CollisionNone) {
			t.Fatalf("Overlaps and Collide disagree at x=%v", x)
		}
	}
}

func TestV2FNormalize(t *testing.T) {
	n := V2FNormalize(V2F(3, 4))
	if n.X != 0.6 || n.Y != 0.8 {
		t.Errorf("V2FNormalize(3,4) = %+v, want {0.6 0.8}", n)
	}

	if z := V2FNormalize(Vec2F{}); !z.IsZero() {
		t.Errorf("V2FNormalize(0,0) = %+v, want zero", z)
	}
}
