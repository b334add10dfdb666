package protocol

import (
	"errors"
	"fmt"
)

const (
	MsgHello   = "hello"
	MsgCommand = "command"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"
	MsgRooms   = "rooms"
)

var (
	ErrUnknownCodec = errors.New("unknown codec")
	ErrEmptyMessage = errors.New("empty message")
)

// Envelope is a decoded message whose payload is still in the codec's own
// encoding. Use DecodePayload to read it.
type Envelope struct {
	T string
	P []byte
}

// Codec frames messages for one wire encoding.
type Codec interface {
	Name() string
	// Binary reports whether frames should be sent as binary websocket messages.
	Binary() bool
	Encode(t string, payload any) ([]byte, error)
	DecodeEnvelope(b []byte) (Envelope, error)
	Unmarshal(p []byte, out any) error
}

var codecs = map[string]Codec{
	"json":     JSON,
	"msgpack":  Msgpack,
	"protobuf": Protobuf,
}

// CodecByName looks a codec up by name. An empty name selects JSON.
func CodecByName(name string) (Codec, error) {
	if name == "" {
		return JSON, nil
	}
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// DecodePayload reads env's payload into a T.
func DecodePayload[T any](c Codec, env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, ErrEmptyMessage
	}
	err := c.Unmarshal(env.P, &out)
	return out, err
}
