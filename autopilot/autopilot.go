// Package autopilot plays both paddles so the simulator can run without a
// human at the keyboard.
package autopilot

import (
	"github.com/springfieldsr/go-pong/game"
	"github.com/springfieldsr/go-pong/paddle"
)

// Pilot chases the ball with whichever paddle it is heading toward and lets
// the other one drift back to the middle.
type Pilot struct {
	// Deadband is how far the ball may be from the paddle center before
	// the paddle moves.
	Deadband float64
	// HomeY is where an idle paddle returns to.
	HomeY float64
}

func New() *Pilot {
	return &Pilot{
		Deadband: paddle.StepSize,
		HomeY:    game.PaddleStartY,
	}
}

// Commands returns the inputs for this frame.
func (p *Pilot) Commands(s game.Snapshot) []game.Command {
	if s.State == game.Idle {
		return []game.Command{{Kind: game.CmdStartRound}}
	}

	vx := s.Ball.Vel.X()
	leftTarget, rightTarget := p.HomeY, p.HomeY
	if vx < 0 {
		leftTarget = s.Ball.Pos.Y()
	} else if vx > 0 {
		rightTarget = s.Ball.Pos.Y()
	}

	var cmds []game.Command
	if k := p.track(s.LeftPaddle, leftTarget, game.CmdLeftUp, game.CmdLeftDown); k != game.CmdNone {
		cmds = append(cmds, game.Command{Kind: k})
	}
	if k := p.track(s.RightPaddle, rightTarget, game.CmdRightUp, game.CmdRightDown); k != game.CmdNone {
		cmds = append(cmds, game.Command{Kind: k})
	}
	return cmds
}

func (p *Pilot) track(pd paddle.Paddle, target float64, up, down game.CommandKind) game.CommandKind {
	diff := target - pd.Y()
	switch {
	case diff > p.Deadband:
		return up
	case diff < -p.Deadband:
		return down
	}
	return game.CmdNone
}
