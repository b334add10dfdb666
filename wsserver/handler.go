package wsserver

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/springfieldsr/go-pong/client"
	"github.com/springfieldsr/go-pong/game"
	"github.com/springfieldsr/go-pong/protocol"
	"github.com/springfieldsr/go-pong/room"
)

const joinTimeout = 5 * time.Second

// ServeHTTP upgrades the request and attaches the connection to a room.
// ?codec= picks the wire encoding and ?room= an existing room; without a
// room a new one is created.
func (wsh *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	codec, err := protocol.CodecByName(q.Get("codec"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var rm *room.Room
	if id := q.Get("room"); id != "" {
		rm, err = wsh.Rooms.Lookup(id)
		if errors.Is(err, room.ErrRoomNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
	}

	conn, err := wsh.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error %s when connecting to the socket", err)
		return
	}
	created := rm == nil
	if created {
		rm = wsh.Rooms.CreateRoom()
	}

	c := client.New(conn, codec, wsh.SendQueue)
	c.RoomId = rm.ID
	go c.WritePump()
	c.PrepareRead()

	_ = c.SendMessage(protocol.MsgWelcome, protocol.Welcome{
		RoomID:   rm.ID,
		ClientID: c.ID,
		FrameMs:  wsh.FrameMs,
	})

	if !wsh.attach(rm, c, created) {
		return
	}

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Error reading message from client %s in room %s: %v", c.ID, c.RoomId, err)
			rm.Submit(room.Leave{ClientID: c.ID})
			c.Close()
			return
		}

		wsh.handleMessage(rm, c, p)
	}
}

// attach joins c to rm. On failure c is closed, and a room made for this
// connection alone is removed so its frame loop does not outlive it.
func (wsh *WebSocketHandler) attach(rm *room.Room, c *client.Client, created bool) bool {
	if wsh.join(rm, c) {
		return true
	}
	wsh.sendError(c, "room closed")
	c.Close()
	if created {
		wsh.Rooms.Remove(rm.ID)
	}
	return false
}

func (wsh *WebSocketHandler) join(rm *room.Room, c *client.Client) bool {
	reply := make(chan room.JoinResult, 1)
	if !rm.Submit(room.Join{ClientID: c.ID, Conn: c, Reply: reply}) {
		return false
	}

	select {
	case res := <-reply:
		log.Printf("Client %s joined room %s (%d connected, codec %s)", c.ID, c.RoomId, res.Clients, c.Codec().Name())
		return true
	case <-time.After(joinTimeout):
		log.Printf("Client %s timed out joining room %s", c.ID, rm.ID)
		return false
	}
}

// handleMessage processes incoming messages
func (wsh *WebSocketHandler) handleMessage(rm *room.Room, c *client.Client, p []byte) {
	codec := c.Codec()
	env, err := codec.DecodeEnvelope(p)
	if err != nil {
		log.Printf("Error decoding message from client %s: %v", c.ID, err)
		wsh.sendError(c, "invalid message format")
		return
	}

	switch env.T {
	case protocol.MsgHello:
		hello, err := protocol.DecodePayload[protocol.Hello](codec, env)
		if err != nil {
			wsh.sendError(c, "invalid hello payload")
			return
		}
		log.Printf("Client %s says hello as %q", c.ID, hello.Name)

	case protocol.MsgCommand:
		msg, err := protocol.DecodePayload[protocol.Command](codec, env)
		if err != nil {
			wsh.sendError(c, "invalid command payload")
			return
		}
		cmd, err := game.ParseCommand(msg.Name, msg.Level)
		if err != nil {
			wsh.sendError(c, err.Error())
			return
		}
		rm.Submit(room.Input{ClientID: c.ID, Command: cmd})

	default:
		log.Printf("Unknown message type from client %s: %q", c.ID, env.T)
		wsh.sendError(c, "unknown message type "+env.T)
	}
}

// sendError sends an error message to a client
func (wsh *WebSocketHandler) sendError(c *client.Client, errorMsg string) {
	if err := c.SendMessage(protocol.MsgError, protocol.Error{Error: errorMsg}); err != nil {
		log.Printf("Failed to send error to client %s: %v", c.ID, err)
	}
}
