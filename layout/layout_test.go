package layout

import (
	"testing"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

var hd = core.Surface{Width: 1280, Height: 720}

func TestLayout1280x720(t *testing.T) {
	speed, ball := Ball(hd)
	if speed != 480 {
		t.Errorf("ball speed = %v, want 480", speed)
	}
	if ball.Size != vmath.V2F(36, 36) || ball.Position != vmath.V2F(0, 0) {
		t.Errorf("ball = %+v, want size 36x36 at origin", ball)
	}

	tests := []struct {
		name string
		got  component.TransformComponent
		pos  vmath.Vec2F
		size vmath.Vec2F
	}{
		{"left paddle", second(Paddle(core.PlayerLeft, hd)), vmath.V2F(-590, 0), vmath.V2F(20, 144)},
		{"right paddle", second(Paddle(core.PlayerRight, hd)), vmath.V2F(590, 0), vmath.V2F(20, 144)},
		{"top wall", Wall(component.WallTop, hd), vmath.V2F(0, 350), vmath.V2F(1280, 20)},
		{"bottom wall", Wall(component.WallBottom, hd), vmath.V2F(0, -350), vmath.V2F(1280, 20)},
		{"left goal", Goal(core.PlayerLeft, hd), vmath.V2F(630, 0), vmath.V2F(20, 720)},
		{"right goal", Goal(core.PlayerRight, hd), vmath.V2F(-630, 0), vmath.V2F(20, 720)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Position != tt.pos {
				t.Errorf("position = %+v, want %+v", tt.got.Position, tt.pos)
			}
			if tt.got.Size != tt.size {
				t.Errorf("size = %+v, want %+v", tt.got.Size, tt.size)
			}
		})
	}

	if ps, _ := Paddle(core.PlayerLeft, hd); ps != 240 {
		t.Errorf("paddle speed = %v, want 240", ps)
	}
}

func TestLayoutIsPure(t *testing.T) {
	surfaces := []core.Surface{hd, {Width: 640, Height: 480}, {Width: 333, Height: 97}}
	for _, s := range surfaces {
		for _, side := range []core.Player{core.PlayerLeft, core.PlayerRight} {
			s1, t1 := Paddle(side, s)
			s2, t2 := Paddle(side, s)
			if s1 != s2 || t1 != t2 {
				t.Errorf("Paddle(%v, %+v) not repeatable", side, s)
			}
			if Goal(side, s) != Goal(side, s) {
				t.Errorf("Goal(%v, %+v) not repeatable", side, s)
			}
		}
		for _, v := range []component.WallVariant{component.WallTop, component.WallBottom} {
			if Wall(v, s) != Wall(v, s) {
				t.Errorf("Wall(%v, %+v) not repeatable", v, s)
			}
		}
	}
}

func TestPaddlesClearOfGoals(t *testing.T) {
	// Goals sit flush with the side edges, outside both paddles
	for _, side := range []core.Player{core.PlayerLeft, core.PlayerRight} {
		_, paddle := Paddle(side, hd)
		for _, g := range []core.Player{core.PlayerLeft, core.PlayerRight} {
			if vmath.Overlaps(paddle.Box(), Goal(g, hd).Box()) {
				t.Errorf("%v paddle overlaps %v goal", side, g)
			}
		}
	}
}

func second(_ float64, t component.TransformComponent) component.TransformComponent {
	return t
}
