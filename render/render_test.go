package render

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/springfieldsr/go-pong/game"
)

func TestFromSnapshotPositions(t *testing.T) {
	sim := game.New(game.WithRand(rand.New(rand.NewSource(1))))
	sim.MoveLeftPaddleUp()
	sim.MoveRightPaddleDown()
	snap := sim.Snapshot()
	f := FromSnapshot(snap, NewPalette(rand.New(rand.NewSource(2))))

	tests := []struct {
		name string
		got  mgl64.Vec2
		want mgl64.Vec2
	}{
		{"left paddle", Position(f.LeftPaddle.Transform), mgl64.Vec2{-27, 10.5}},
		{"right paddle", Position(f.RightPaddle.Transform), mgl64.Vec2{27, 9.5}},
		{"ball", Position(f.Ball.Transform), mgl64.Vec2{-25.5, 10}},
		{"upper bound", Position(f.UpperBound.Transform), mgl64.Vec2{0, 30}},
		{"lower bound", Position(f.LowerBound.Transform), mgl64.Vec2{0, -10}},
		{"left bound", Position(f.LeftBound.Transform), mgl64.Vec2{-35, 10}},
		{"right bound", Position(f.RightBound.Transform), mgl64.Vec2{35, 10}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s position = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestBoxTransformScale(t *testing.T) {
	m := BoxTransform(mgl64.Vec2{-27, 10}, mgl64.Vec2{0.5, 4})
	corner := m.Mul4x1(mgl64.Vec4{1, 1, 0, 1})
	if want := (mgl64.Vec4{-26.5, 14, 0, 1}); corner != want {
		t.Fatalf("unit corner maps to %v, want %v", corner, want)
	}
	if m.At(0, 0) != 0.5 || m.At(1, 1) != 4 || m.At(2, 2) != 1 {
		t.Fatalf("scale diagonal = %v %v %v", m.At(0, 0), m.At(1, 1), m.At(2, 2))
	}
}

func TestEntitiesOrderAndColors(t *testing.T) {
	p := NewPalette(rand.New(rand.NewSource(3)))
	f := FromSnapshot(game.New().Snapshot(), p)
	ents := f.Entities()
	if len(ents) != 7 {
		t.Fatalf("len(Entities) = %d, want 7", len(ents))
	}
	if ents[0].Name != "left_bound" || ents[6].Name != "ball" {
		t.Fatalf("draw order = %s ... %s", ents[0].Name, ents[6].Name)
	}
	if f.LeftPaddle.Color != f.LeftBound.Color || f.UpperBound.Color != f.LowerBound.Color {
		t.Fatalf("paired entities do not share a palette slot")
	}
	if f.Ball.Color != p[4] {
		t.Fatalf("ball color = %v, want slot 4 %v", f.Ball.Color, p[4])
	}
}

func TestPaletteRandomize(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := NewPalette(rng)
	before := p
	p.Randomize(rng)
	if p == before {
		t.Fatalf("Randomize left the palette unchanged")
	}
	for i, c := range p {
		for j := 0; j < 3; j++ {
			if c[j] < 0 || c[j] >= 1 {
				t.Fatalf("slot %d channel %d = %f, want [0, 1)", i, j, c[j])
			}
		}
		if c[3] != 1 {
			t.Fatalf("slot %d alpha = %f, want 1", i, c[3])
		}
	}
}

func TestPaddleEntityFollowsSide(t *testing.T) {
	p := NewPalette(rand.New(rand.NewSource(4)))
	snap := game.New().Snapshot()

	tests := []struct {
		got   Entity
		name  string
		color mgl64.Vec4
	}{
		{paddleEntity(snap.LeftPaddle, p), "left_paddle", p[slotLeft]},
		{paddleEntity(snap.RightPaddle, p), "right_paddle", p[slotRight]},
	}
	for _, tt := range tests {
		if tt.got.Name != tt.name {
			t.Fatalf("name = %q, want %q", tt.got.Name, tt.name)
		}
		if tt.got.Color != tt.color {
			t.Fatalf("%s color = %v, want %v", tt.name, tt.got.Color, tt.color)
		}
	}
}
