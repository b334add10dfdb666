package game

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name, level string
		want        Command
		err         error
	}{
		{name: "left_up", want: Command{Kind: CmdLeftUp}},
		{name: "LEFT_DOWN", want: Command{Kind: CmdLeftDown}},
		{name: " right_up ", want: Command{Kind: CmdRightUp}},
		{name: "right_down", want: Command{Kind: CmdRightDown}},
		{name: "start_round", want: Command{Kind: CmdStartRound}},
		{name: "randomize_colors", want: Command{Kind: CmdRandomizeColors}},
		{name: "set_difficulty", level: "hard", want: Command{Kind: CmdSetDifficulty, Difficulty: Hard}},
		{name: "set_difficulty", level: "Easy", want: Command{Kind: CmdSetDifficulty, Difficulty: Easy}},
		{name: "set_difficulty", level: "insane", err: ErrUnknownDifficulty},
		{name: "jump", err: ErrUnknownCommand},
		{name: "", err: ErrUnknownCommand},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.name, tt.level)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseCommand(%q, %q) err = %v, want %v", tt.name, tt.level, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseCommand(%q, %q) unexpected err: %v", tt.name, tt.level, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCommand(%q, %q) = %+v, want %+v", tt.name, tt.level, got, tt.want)
		}
	}
}

func TestApplyDispatches(t *testing.T) {
	s := newTestSimulator(20)

	s.Apply(Command{Kind: CmdLeftUp})
	s.Apply(Command{Kind: CmdRightDown})
	s.Apply(Command{Kind: CmdRightDown})
	s.Apply(Command{Kind: CmdSetDifficulty, Difficulty: Easy})
	s.Apply(Command{Kind: CmdRandomizeColors})

	snap := s.Snapshot()
	if snap.LeftPaddle.Y() != 10.5 {
		t.Fatalf("left paddle y = %f, want 10.5", snap.LeftPaddle.Y())
	}
	if snap.RightPaddle.Y() != 9 {
		t.Fatalf("right paddle y = %f, want 9", snap.RightPaddle.Y())
	}
	if snap.Difficulty != Easy {
		t.Fatalf("difficulty = %v, want %v", snap.Difficulty, Easy)
	}
	if snap.State != Idle {
		t.Fatalf("state = %v before start_round, want %v", snap.State, Idle)
	}

	s.Apply(Command{Kind: CmdStartRound})
	if st := s.RoundState(); st != InFlight {
		t.Fatalf("state = %v after start_round, want %v", st, InFlight)
	}
}

func TestCommandString(t *testing.T) {
	if got := (Command{Kind: CmdSetDifficulty, Difficulty: Medium}).String(); got != "set_difficulty:medium" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Command{Kind: CmdStartRound}).String(); got != "start_round" {
		t.Fatalf("String() = %q", got)
	}
}
