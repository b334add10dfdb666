package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Boundary is a fixed axis-aligned rectangle around Center.
type Boundary struct {
	Center      mgl64.Vec2
	HalfExtents mgl64.Vec2
}

func (b Boundary) X() float64 { return b.Center.X() }
func (b Boundary) Y() float64 { return b.Center.Y() }

// Field holds the four walls of the 70 × 40 playing field.
type Field struct {
	Upper Boundary
	Lower Boundary
	Left  Boundary
	Right Boundary
}

// Field constants
const (
	FieldHalfWidth  = 35.0
	FieldHalfHeight = 20.0
	FieldCenterY    = 10.0
	WallThickness   = 0.1

	// WallMargin is how close the ball gets to a wall before it counts as a hit.
	WallMargin = 1.0

	PaddleX      = 27.0
	PaddleStartY = 10.0
	ServeX       = -25.5
	ServeY       = 10.0
)

// DefaultField returns the field every round is played on.
func DefaultField() Field {
	return Field{
		Upper: Boundary{
			Center:      mgl64.Vec2{0, FieldCenterY + FieldHalfHeight},
			HalfExtents: mgl64.Vec2{FieldHalfWidth, WallThickness},
		},
		Lower: Boundary{
			Center:      mgl64.Vec2{0, FieldCenterY - FieldHalfHeight},
			HalfExtents: mgl64.Vec2{FieldHalfWidth, WallThickness},
		},
		Left: Boundary{
			Center:      mgl64.Vec2{-FieldHalfWidth, FieldCenterY},
			HalfExtents: mgl64.Vec2{WallThickness, FieldHalfHeight},
		},
		Right: Boundary{
			Center:      mgl64.Vec2{FieldHalfWidth, FieldCenterY},
			HalfExtents: mgl64.Vec2{WallThickness, FieldHalfHeight},
		},
	}
}

// RoundState is the lifecycle of one round.
type RoundState uint8

const (
	Idle RoundState = iota
	InFlight
	Ended
)

func (s RoundState) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in_flight"
	case Ended:
		return "ended"
	}
	return fmt.Sprintf("RoundState(%d)", uint8(s))
}

// Difficulty divides elapsed frame time into a simulation step. A smaller
// divisor makes the ball faster.
type Difficulty int

const (
	Easy   Difficulty = 1000
	Medium Difficulty = 500
	Hard   Difficulty = 200
)

func (d Difficulty) Divisor() float64 {
	return float64(d)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Valid reports whether d is one of Easy, Medium or Hard.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// ParseDifficulty accepts "easy", "medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
