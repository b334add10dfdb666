package client

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/springfieldsr/go-pong/protocol"
)

// connection timings
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	// MaxMessageSize bounds a single inbound frame.
	MaxMessageSize = 1 << 16
)

var ErrClosed = errors.New("client closed")

// Client is one websocket connection. Outbound frames go through SendQueue
// and are written by WritePump.
type Client struct {
	Conn      *websocket.Conn
	SendQueue chan []byte
	ID        string
	RoomId    string

	codec     protocol.Codec
	done      chan struct{}
	closeOnce sync.Once
}

func New(conn *websocket.Conn, codec protocol.Codec, queueSize int) *Client {
	return &Client{
		Conn:      conn,
		SendQueue: make(chan []byte, queueSize),
		ID:        uuid.New().String(),
		codec:     codec,
		done:      make(chan struct{}),
	}
}

func (c *Client) Codec() protocol.Codec {
	return c.codec
}

// Send queues msg; when the queue is full the message is dropped.
func (c *Client) Send(msg []byte) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	select {
	case c.SendQueue <- msg:
	default:
		log.Printf("Dropping message, send queue full for client %s", c.ID)
	}
	return nil
}

// SendMessage encodes payload with the client's codec and queues it.
func (c *Client) SendMessage(t string, payload any) error {
	b, err := c.codec.Encode(t, payload)
	if err != nil {
		return err
	}
	return c.Send(b)
}

// Close stops the write pump and closes the connection. Safe to call more than once.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		if c.Conn != nil {
			err = c.Conn.Close()
		}
	})
	return err
}

// Done is closed once the client is closed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// WritePump drains SendQueue onto the connection and keeps it alive with
// pings until the client is closed or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	msgType := websocket.TextMessage
	if c.codec.Binary() {
		msgType = websocket.BinaryMessage
	}

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.SendQueue:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(msgType, msg); err != nil {
				log.Printf("Message write error for client %s: %v", c.ID, err)
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// PrepareRead sets the read limit and the pong-extended read deadline.
func (c *Client) PrepareRead() {
	c.Conn.SetReadLimit(MaxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})
}
