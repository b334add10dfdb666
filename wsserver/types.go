package wsserver

import (
	"github.com/gorilla/websocket"
	"github.com/springfieldsr/go-pong/room"
)

type WebSocketHandler struct {
	Upgrader  websocket.Upgrader
	Rooms     *room.Manager
	SendQueue int
	FrameMs   int
}
