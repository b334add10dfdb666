// Package render turns simulator snapshots into the matrix form a renderer
// draws from. It never feeds anything back into the simulator.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/springfieldsr/go-pong/game"
	"github.com/springfieldsr/go-pong/paddle"
)

// Entity is one drawable box or sphere.
type Entity struct {
	Name      string
	Transform mgl64.Mat4
	Color     mgl64.Vec4
}

// Frame is everything drawn for one rendered frame.
type Frame struct {
	LeftBound   Entity
	RightBound  Entity
	UpperBound  Entity
	LowerBound  Entity
	LeftPaddle  Entity
	RightPaddle Entity
	Ball        Entity
}

// palette slots per entity
const (
	slotLeft  = 1
	slotRight = 2
	slotWall  = 3
	slotBall  = 4
)

// FromSnapshot builds the transforms for s and colors them from p.
func FromSnapshot(s game.Snapshot, p Palette) Frame {
	return Frame{
		LeftBound:   Entity{"left_bound", BoxTransform(s.Field.Left.Center, s.Field.Left.HalfExtents), p[slotLeft]},
		RightBound:  Entity{"right_bound", BoxTransform(s.Field.Right.Center, s.Field.Right.HalfExtents), p[slotRight]},
		UpperBound:  Entity{"upper_bound", BoxTransform(s.Field.Upper.Center, s.Field.Upper.HalfExtents), p[slotWall]},
		LowerBound:  Entity{"lower_bound", BoxTransform(s.Field.Lower.Center, s.Field.Lower.HalfExtents), p[slotWall]},
		LeftPaddle:  paddleEntity(s.LeftPaddle, p),
		RightPaddle: paddleEntity(s.RightPaddle, p),
		Ball:        Entity{"ball", mgl64.Translate3D(s.Ball.Pos.X(), s.Ball.Pos.Y(), 0), p[slotBall]},
	}
}

// Entities lists the frame in draw order.
func (f Frame) Entities() []Entity {
	return []Entity{
		f.LeftBound, f.RightBound, f.UpperBound, f.LowerBound,
		f.LeftPaddle, f.RightPaddle, f.Ball,
	}
}

// BoxTransform places a unit cube at center scaled by the half extents.
func BoxTransform(center, halfExtents mgl64.Vec2) mgl64.Mat4 {
	return mgl64.Translate3D(center.X(), center.Y(), 0).
		Mul4(mgl64.Scale3D(halfExtents.X(), halfExtents.Y(), 1))
}

// paddleEntity names and colors a paddle after the side it guards.
func paddleEntity(pd paddle.Paddle, p Palette) Entity {
	slot := slotLeft
	if pd.Side == paddle.Right {
		slot = slotRight
	}
	return Entity{pd.Side.String() + "_paddle", paddleTransform(pd), p[slot]}
}

func paddleTransform(p paddle.Paddle) mgl64.Mat4 {
	return BoxTransform(p.Center, mgl64.Vec2{paddle.HalfWidth, p.HalfHeight})
}

// Position reads the translation back out of a transform.
func Position(m mgl64.Mat4) mgl64.Vec2 {
	return mgl64.Vec2{m.At(0, 3), m.At(1, 3)}
}
