package protocol

import (
	"errors"
	"testing"
)

var allCodecs = []Codec{JSON, Msgpack, Protobuf}

func TestCodecCommandRoundTrip(t *testing.T) {
	for _, c := range allCodecs {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Encode(MsgCommand, Command{Name: "set_difficulty", Level: "hard"})
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			env, err := c.DecodeEnvelope(b)
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if env.T != MsgCommand {
				t.Fatalf("type = %q, want %q", env.T, MsgCommand)
			}
			cmd, err := DecodePayload[Command](c, env)
			if err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			if cmd.Name != "set_difficulty" || cmd.Level != "hard" {
				t.Fatalf("command = %+v", cmd)
			}
		})
	}
}

func TestCodecStateKeepsTransforms(t *testing.T) {
	in := State{
		Frame:      42,
		Round:      "in_flight",
		Difficulty: "medium",
		Ball:       Body{X: -25.5, Y: 10, VX: 6, VY: -8},
		LeftPaddle: Point{X: -27, Y: 10.5},
		Entities: []Drawable{{
			Name:      "ball",
			Transform: [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, -25.5, 10, 0, 1},
			Color:     [4]float64{0.25, 0.5, 0.75, 1},
		}},
	}
	for _, c := range allCodecs {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Encode(MsgState, in)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			env, err := c.DecodeEnvelope(b)
			if err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			out, err := DecodePayload[State](c, env)
			if err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			if out.Frame != in.Frame || out.Ball != in.Ball || out.LeftPaddle != in.LeftPaddle {
				t.Fatalf("state = %+v, want %+v", out, in)
			}
			if len(out.Entities) != 1 || out.Entities[0] != in.Entities[0] {
				t.Fatalf("entities = %+v, want %+v", out.Entities, in.Entities)
			}
		})
	}
}

func TestCodecByName(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		binary bool
	}{
		{"", "json", false},
		{"json", "json", false},
		{"msgpack", "msgpack", true},
		{"protobuf", "protobuf", true},
	}
	for _, tt := range tests {
		c, err := CodecByName(tt.name)
		if err != nil {
			t.Fatalf("CodecByName(%q): %v", tt.name, err)
		}
		if c.Name() != tt.want || c.Binary() != tt.binary {
			t.Fatalf("CodecByName(%q) = %s binary=%v", tt.name, c.Name(), c.Binary())
		}
	}
	if _, err := CodecByName("xml"); !errors.Is(err, ErrUnknownCodec) {
		t.Fatalf("CodecByName(xml) err = %v, want %v", err, ErrUnknownCodec)
	}
}

func TestCodecRejectsEmpty(t *testing.T) {
	for _, c := range allCodecs {
		if _, err := c.DecodeEnvelope(nil); !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("%s: decode empty err = %v", c.Name(), err)
		}
		if _, err := c.Encode("", Error{}); err == nil {
			t.Fatalf("%s: encode with empty type succeeded", c.Name())
		}
		if _, err := c.Encode(MsgState, nil); err == nil {
			t.Fatalf("%s: encode nil payload succeeded", c.Name())
		}
	}
}

func TestJSONRejectsGarbage(t *testing.T) {
	if _, err := JSON.DecodeEnvelope([]byte("{nope")); err == nil {
		t.Fatalf("decoded garbage without error")
	}
	env := Envelope{T: MsgCommand}
	if _, err := DecodePayload[Command](JSON, env); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("empty payload err = %v, want %v", err, ErrEmptyMessage)
	}
}
