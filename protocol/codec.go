package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	JSON     Codec = jsonCodec{}
	Msgpack  Codec = msgpackCodec{}
	Protobuf Codec = protobufCodec{}
)

func checkEncode(t string, payload any) error {
	if t == "" {
		return errors.New("trying to encode envelope with empty type")
	}
	if payload == nil {
		return errors.New("trying to encode nil payload")
	}
	return nil
}

// json: {"t": ..., "p": {...}} in text frames

type jsonEnvelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }
func (jsonCodec) Binary() bool { return false }

func (jsonCodec) Encode(t string, payload any) ([]byte, error) {
	if err := checkEncode(t, payload); err != nil {
		return nil, err
	}
	p, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonEnvelope{T: t, P: p})
}

func (jsonCodec) DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyMessage
	}
	var e jsonEnvelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode json envelope: %w", err)
	}
	return Envelope{T: e.T, P: e.P}, nil
}

func (jsonCodec) Unmarshal(p []byte, out any) error {
	return json.Unmarshal(p, out)
}

// msgpack: same envelope shape, binary frames

type msgpackEnvelope struct {
	T string             `msgpack:"t"`
	P msgpack.RawMessage `msgpack:"p"`
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }
func (msgpackCodec) Binary() bool { return true }

func (msgpackCodec) Encode(t string, payload any) ([]byte, error) {
	if err := checkEncode(t, payload); err != nil {
		return nil, err
	}
	p, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(&msgpackEnvelope{T: t, P: p})
}

func (msgpackCodec) DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyMessage
	}
	var e msgpackEnvelope
	if err := msgpack.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("decode msgpack envelope: %w", err)
	}
	return Envelope{T: e.T, P: e.P}, nil
}

func (msgpackCodec) Unmarshal(p []byte, out any) error {
	return msgpack.Unmarshal(p, out)
}

// protobuf: a google.protobuf.Struct {t: string, p: value}. The payload is
// carried as a protobuf Value and read back through its JSON mapping, so the
// same message structs serve every codec.

type protobufCodec struct{}

func (protobufCodec) Name() string { return "protobuf" }
func (protobufCodec) Binary() bool { return true }

func (protobufCodec) Encode(t string, payload any) ([]byte, error) {
	if err := checkEncode(t, payload); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	p := &structpb.Value{}
	if err := protojson.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("payload to protobuf value: %w", err)
	}
	env := &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"t": structpb.NewStringValue(t),
			"p": p,
		},
	}
	return proto.Marshal(env)
}

func (protobufCodec) DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, ErrEmptyMessage
	}
	var env structpb.Struct
	if err := proto.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode protobuf envelope: %w", err)
	}
	e := Envelope{T: env.GetFields()["t"].GetStringValue()}
	if p, ok := env.GetFields()["p"]; ok && p != nil {
		raw, err := protojson.Marshal(p)
		if err != nil {
			return Envelope{}, fmt.Errorf("protobuf payload to json: %w", err)
		}
		e.P = raw
	}
	return e, nil
}

func (protobufCodec) Unmarshal(p []byte, out any) error {
	return json.Unmarshal(p, out)
}
