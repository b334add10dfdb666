// game/engine.go
package game

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/springfieldsr/go-pong/ball"
	"github.com/springfieldsr/go-pong/paddle"
)

// Event reports what the collision check found during one Advance.
type Event uint8

const (
	EventNone Event = iota
	EventWallBounce
	EventLeftPaddleBounce
	EventRightPaddleBounce
	EventRoundEnded
)

func (e Event) String() string {
	switch e {
	case EventWallBounce:
		return "wall_bounce"
	case EventLeftPaddleBounce:
		return "left_paddle_bounce"
	case EventRightPaddleBounce:
		return "right_paddle_bounce"
	case EventRoundEnded:
		return "round_ended"
	}
	return "none"
}

// Simulator owns the paddles, walls, ball and round state of one game and
// is the only thing that mutates them. It is not safe for concurrent use:
// the host calls commands and Advance from a single goroutine.
type Simulator struct {
	field      Field
	left       paddle.Paddle
	right      paddle.Paddle
	ball       ball.Ball
	state      RoundState
	difficulty Difficulty
	rng        ball.Rand
}

// Option configures a Simulator at construction.
type Option func(*Simulator)

// WithRand sets the source used by StartRound.
func WithRand(rng ball.Rand) Option {
	return func(s *Simulator) {
		s.rng = rng
	}
}

// WithDifficulty sets the starting difficulty. Invalid levels are ignored.
func WithDifficulty(d Difficulty) Option {
	return func(s *Simulator) {
		if d.Valid() {
			s.difficulty = d
		}
	}
}

// New creates a simulator in its construction state: paddles centered,
// ball parked at the serve position, round Idle, difficulty Medium.
func New(opts ...Option) *Simulator {
	s := &Simulator{difficulty: Medium}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.cleanStage()
	return s
}

// cleanStage puts everything except the difficulty back where New left it.
func (s *Simulator) cleanStage() {
	s.field = DefaultField()
	minY := s.field.Lower.Y() + paddle.HalfHeight + paddle.Margin
	maxY := s.field.Upper.Y() - paddle.HalfHeight - paddle.Margin
	s.left = paddle.New(paddle.Left, mgl64.Vec2{-PaddleX, PaddleStartY}, minY, maxY)
	s.right = paddle.New(paddle.Right, mgl64.Vec2{PaddleX, PaddleStartY}, minY, maxY)
	s.ball.Stop(mgl64.Vec2{ServeX, ServeY})
	s.state = Idle
}

// MoveLeftPaddleUp moves the left paddle up; out of travel moves are dropped
func (s *Simulator) MoveLeftPaddleUp() {
	s.left.MoveUp()
}

// MoveLeftPaddleDown moves the left paddle down; out of travel moves are dropped
func (s *Simulator) MoveLeftPaddleDown() {
	s.left.MoveDown()
}

// MoveRightPaddleUp moves the right paddle up; out of travel moves are dropped
func (s *Simulator) MoveRightPaddleUp() {
	s.right.MoveUp()
}

// MoveRightPaddleDown moves the right paddle down; out of travel moves are dropped
func (s *Simulator) MoveRightPaddleDown() {
	s.right.MoveDown()
}

// StartRound throws the ball. A round already in flight cannot be re-thrown.
func (s *Simulator) StartRound() {
	if s.state != Idle {
		return
	}
	s.ball.Throw(s.rng)
	s.state = InFlight
}

// SetDifficulty takes effect on the next Advance. Invalid levels are ignored.
func (s *Simulator) SetDifficulty(d Difficulty) {
	if !d.Valid() {
		return
	}
	s.difficulty = d
}

// Advance runs one frame. dt is the time since the previous frame in
// milliseconds. A round that ends during the frame is reset before Advance
// returns, so callers never observe the Ended state.
func (s *Simulator) Advance(dt float64) Event {
	if s.state != InFlight {
		return EventNone
	}

	step := dt / s.difficulty.Divisor()
	s.ball.Move(step)

	ev := s.detectCollision()
	if s.state == Ended {
		s.cleanStage()
	}
	return ev
}

// detectCollision checks walls before paddles; the first match wins.
// The ball is never pushed back out of what it hit.
func (s *Simulator) detectCollision() Event {
	pos := s.ball.Pos
	f := s.field

	switch {
	case pos.Y() >= f.Upper.Y()-WallMargin || pos.Y() <= f.Lower.Y()+WallMargin:
		s.ball.BounceY()
		return EventWallBounce
	case pos.X() >= f.Right.X()-WallMargin || pos.X() <= f.Left.X()-WallMargin:
		s.state = Ended
		return EventRoundEnded
	case s.left.Hits(pos):
		s.ball.BounceX()
		return EventLeftPaddleBounce
	case s.right.Hits(pos):
		s.ball.BounceX()
		return EventRightPaddleBounce
	}
	return EventNone
}

// Difficulty returns the current difficulty.
func (s *Simulator) Difficulty() Difficulty {
	return s.difficulty
}

// RoundState returns the current round state.
func (s *Simulator) RoundState() RoundState {
	return s.state
}

// Snapshot is a point-in-time copy of the simulator for renderers.
type Snapshot struct {
	Field       Field
	LeftPaddle  paddle.Paddle
	RightPaddle paddle.Paddle
	Ball        ball.Ball
	State       RoundState
	Difficulty  Difficulty
}

// Snapshot returns the current state by value.
func (s *Simulator) Snapshot() Snapshot {
	return Snapshot{
		Field:       s.field,
		LeftPaddle:  s.left,
		RightPaddle: s.right,
		Ball:        s.ball,
		State:       s.state,
		Difficulty:  s.difficulty,
	}
}
