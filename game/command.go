package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// CommandKind names one discrete player command.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdLeftUp
	CmdLeftDown
	CmdRightUp
	CmdRightDown
	CmdStartRound
	CmdSetDifficulty
	// CmdRandomizeColors is cosmetic; Apply ignores it.
	CmdRandomizeColors
)

var commandNames = map[CommandKind]string{
	CmdLeftUp:          "left_up",
	CmdLeftDown:        "left_down",
	CmdRightUp:         "right_up",
	CmdRightDown:       "right_down",
	CmdStartRound:      "start_round",
	CmdSetDifficulty:   "set_difficulty",
	CmdRandomizeColors: "randomize_colors",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "none"
}

// Command is a queued player input. Difficulty is only read for
// CmdSetDifficulty.
type Command struct {
	Kind       CommandKind
	Difficulty Difficulty
}

func (c Command) String() string {
	if c.Kind == CmdSetDifficulty {
		return c.Kind.String() + ":" + c.Difficulty.String()
	}
	return c.Kind.String()
}

// ParseCommand turns a command name, and for set_difficulty its level,
// into a Command.
func ParseCommand(name, level string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range commandNames {
		if n != name {
			continue
		}
		cmd := Command{Kind: kind}
		if kind == CmdSetDifficulty {
			d, err := ParseDifficulty(level)
			if err != nil {
				return Command{}, err
			}
			cmd.Difficulty = d
		}
		return cmd, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Apply dispatches cmd to the matching command method.
func (s *Simulator) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdLeftUp:
		s.MoveLeftPaddleUp()
	case CmdLeftDown:
		s.MoveLeftPaddleDown()
	case CmdRightUp:
		s.MoveRightPaddleUp()
	case CmdRightDown:
		s.MoveRightPaddleDown()
	case CmdStartRound:
		s.StartRound()
	case CmdSetDifficulty:
		s.SetDifficulty(cmd.Difficulty)
	}
}
