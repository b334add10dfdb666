package wsserver

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/springfieldsr/go-pong/client"
	"github.com/springfieldsr/go-pong/protocol"
	"github.com/springfieldsr/go-pong/room"
)

const defaultSendQueue = 100

func NewWebSocketHandler(rooms *room.Manager, sendQueue, frameMs int) *WebSocketHandler {
	if sendQueue <= 0 {
		sendQueue = defaultSendQueue
	}
	return &WebSocketHandler{
		Upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  client.MaxMessageSize,
			WriteBufferSize: 4096,
		},
		Rooms:     rooms,
		SendQueue: sendQueue,
		FrameMs:   frameMs,
	}
}

// Routes serves the websocket endpoint on /ws and the room list on /rooms.
func (wsh *WebSocketHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", wsh)
	mux.HandleFunc("/rooms", wsh.serveRooms)
	return mux
}

func (wsh *WebSocketHandler) serveRooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	b, err := protocol.JSON.Encode(protocol.MsgRooms, protocol.RoomList{Rooms: wsh.Rooms.ListRooms()})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(b); err != nil {
		log.Printf("Failed to write room list: %v", err)
	}
}
