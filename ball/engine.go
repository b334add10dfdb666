package ball

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Move advances the ball by its velocity scaled by step
func (b *Ball) Move(step float64) {
	b.Pos = b.Pos.Add(b.Vel.Mul(step))
}

// BounceX reverses horizontal direction (paddle bounce)
func (b *Ball) BounceX() {
	b.Vel[0] = -b.Vel[0]
}

// BounceY reverses vertical direction (wall bounce)
func (b *Ball) BounceY() {
	b.Vel[1] = -b.Vel[1]
}

// Throw gives the ball a horizontal speed drawn from [MinDx, MaxDx] and
// hands the rest of SpeedMagnitude to the vertical axis with a random sign.
func (b *Ball) Throw(rng Rand) {
	dx := rng.Float64()*(MaxDx-MinDx) + MinDx
	dy := math.Sqrt(SpeedMagnitude*SpeedMagnitude - dx*dx)
	if rng.Float64() > 0.5 {
		dy = -dy
	}
	b.Vel = mgl64.Vec2{dx, dy}
}

// Stop parks the ball at pos with no velocity.
func (b *Ball) Stop(pos mgl64.Vec2) {
	b.Pos = pos
	b.Vel = mgl64.Vec2{}
}
