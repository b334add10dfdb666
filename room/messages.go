package room

import (
	"github.com/springfieldsr/go-pong/game"
	"github.com/springfieldsr/go-pong/protocol"
)

// Conn is a subscriber the room pushes encoded frames to.
type Conn interface {
	Send([]byte) error
	Close() error
	Codec() protocol.Codec
}

// Join: issued once per connection
type Join struct {
	ClientID string
	Conn     Conn
	Reply    chan<- JoinResult
}

type JoinResult struct {
	RoomID  string
	Clients int
}

// Input: one player command, applied before the next frame
type Input struct {
	ClientID string
	Command  game.Command
}

// Leave: issued on disconnect
type Leave struct {
	ClientID string
}
