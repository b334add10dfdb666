package ball

import "github.com/go-gl/mathgl/mgl64"

// ball constants
const (
	SpeedMagnitude = 10.0
	MinDx          = 2.0
	MaxDx          = 8.0
)

// Ball is the round's only moving body. Pos and Vel are in field units;
// Vel is scaled by the frame step before it is applied.
type Ball struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2
}

// Rand is the random source used when the ball is thrown.
type Rand interface {
	Float64() float64
}

// New returns a ball parked at pos.
func New(pos mgl64.Vec2) Ball {
	return Ball{Pos: pos}
}

// Speed returns the current velocity magnitude
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// Moving reports whether the ball has any velocity.
func (b Ball) Moving() bool {
	return b.Vel != mgl64.Vec2{}
}
