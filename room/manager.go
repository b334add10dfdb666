package room

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/springfieldsr/go-pong/protocol"
)

var ErrRoomNotFound = errors.New("room not found")

// Manager holds the running rooms by id. Rooms start on creation and are
// removed when their last client leaves.
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	opts  Options
}

func NewManager(opts Options) *Manager {
	return &Manager{
		rooms: make(map[string]*Room),
		opts:  opts,
	}
}

// helpers
func generateRoomId() string {
	return uuid.New().String()[:6]
}

// CreateRoom starts a room under a fresh id and returns it.
func (m *Manager) CreateRoom() *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := generateRoomId()
	for m.rooms[id] != nil {
		id = generateRoomId()
	}

	r := New(id, m.opts)
	r.OnEmpty = m.Remove
	m.rooms[id] = r
	go r.Run()

	log.Printf("Created room %s", id)
	return r
}

// Lookup returns the room with id.
func (m *Manager) Lookup(id string) (*Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, id)
	}
	return r, nil
}

// ListRooms returns all rooms with their client counts, ordered by id.
func (m *Manager) ListRooms() []protocol.RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]protocol.RoomInfo, 0, len(m.rooms))
	for id, r := range m.rooms {
		out = append(out, protocol.RoomInfo{ID: id, Clients: r.NumClients()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Close stops every room.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, r := range m.rooms {
		r.Stop()
		delete(m.rooms, id)
	}
}

// Remove stops the room with id and forgets it. Unknown ids are ignored.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.rooms[id]; ok {
		r.Stop()
		delete(m.rooms, id)
		log.Printf("Room %s has been closed", id)
	}
}
