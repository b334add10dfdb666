package paddle

import "github.com/go-gl/mathgl/mgl64"

// Side identifies which end of the field a paddle guards.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// paddle constants
const (
	HalfHeight = 4.0
	HalfWidth  = 0.5
	StepSize   = 0.5
	// Margin is the extra clearance kept between a paddle end and a wall.
	Margin = 0.5

	// collision box around the paddle center
	ReachX = 1.0
	ReachY = 5.0
)

// Paddle is a player bar that only travels along y, between MinY and MaxY.
type Paddle struct {
	Side       Side
	Center     mgl64.Vec2
	HalfHeight float64
	MinY       float64
	MaxY       float64
}

// New returns a paddle at center restricted to [minY, maxY].
func New(side Side, center mgl64.Vec2, minY, maxY float64) Paddle {
	return Paddle{
		Side:       side,
		Center:     center,
		HalfHeight: HalfHeight,
		MinY:       minY,
		MaxY:       maxY,
	}
}

func (p Paddle) X() float64 { return p.Center.X() }
func (p Paddle) Y() float64 { return p.Center.Y() }
