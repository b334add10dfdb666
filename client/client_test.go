package client

import (
	"errors"
	"testing"

	"github.com/springfieldsr/go-pong/protocol"
)

func TestSendDropsWhenQueueFull(t *testing.T) {
	c := New(nil, protocol.JSON, 1)
	if err := c.Send([]byte("a")); err != nil {
		t.Fatalf("first send: %v", err)
	}
	if err := c.Send([]byte("b")); err != nil {
		t.Fatalf("send on full queue returned %v, want drop without error", err)
	}
	if got := string(<-c.SendQueue); got != "a" {
		t.Fatalf("queued %q, want %q", got, "a")
	}
	if len(c.SendQueue) != 0 {
		t.Fatalf("dropped message was queued")
	}
}

func TestSendAfterClose(t *testing.T) {
	c := New(nil, protocol.Msgpack, 4)
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := c.Send([]byte("x")); !errors.Is(err, ErrClosed) {
		t.Fatalf("send after close err = %v, want %v", err, ErrClosed)
	}
	select {
	case <-c.Done():
	default:
		t.Fatalf("Done not closed after Close")
	}
}

func TestSendMessageUsesCodec(t *testing.T) {
	c := New(nil, protocol.JSON, 1)
	if c.ID == "" {
		t.Fatalf("client id is empty")
	}
	if err := c.SendMessage(protocol.MsgError, protocol.Error{Error: "boom"}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	env, err := protocol.JSON.DecodeEnvelope(<-c.SendQueue)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	msg, err := protocol.DecodePayload[protocol.Error](protocol.JSON, env)
	if err != nil || msg.Error != "boom" {
		t.Fatalf("payload = %+v, err = %v", msg, err)
	}
}
