package room

import (
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/springfieldsr/go-pong/autopilot"
	"github.com/springfieldsr/go-pong/game"
	"github.com/springfieldsr/go-pong/protocol"
	"github.com/springfieldsr/go-pong/render"
)

// Options configures every room a Manager creates.
type Options struct {
	FrameInterval  time.Duration
	BroadcastEvery int
	Difficulty     game.Difficulty
	// Seed feeds the throw and color randomness; 0 picks one from the clock.
	Seed     int64
	Autoplay bool
}

func DefaultOptions() Options {
	return Options{
		FrameInterval:  16 * time.Millisecond,
		BroadcastEvery: 1,
		Difficulty:     game.Medium,
	}
}

// Stats counts what happened in a room since it was created.
type Stats struct {
	Frames        uint64
	Rounds        int
	Resets        int
	WallBounces   int
	PaddleBounces int
}

// Room is the host frame loop around one simulator. Everything except
// Inbox, Submit, Stop and NumClients belongs to the goroutine running Run;
// when Run is not running, Step and Apply may be called directly.
type Room struct {
	ID      string
	Inbox   chan any
	OnEmpty func(id string)

	sim            *game.Simulator
	palette        render.Palette
	rng            *rand.Rand
	pilot          *autopilot.Pilot
	clients        map[string]Conn
	frameInterval  time.Duration
	broadcastEvery uint64
	stats          Stats
	numClients     atomic.Int32

	quit     chan struct{}
	stopOnce sync.Once
}

func New(id string, opts Options) *Room {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	interval := opts.FrameInterval
	if interval <= 0 {
		interval = DefaultOptions().FrameInterval
	}
	every := opts.BroadcastEvery
	if every <= 0 {
		every = 1
	}

	r := &Room{
		ID:             id,
		Inbox:          make(chan any, 256),
		sim:            game.New(game.WithRand(rng), game.WithDifficulty(opts.Difficulty)),
		palette:        render.NewPalette(rng),
		rng:            rng,
		clients:        make(map[string]Conn),
		frameInterval:  interval,
		broadcastEvery: uint64(every),
		quit:           make(chan struct{}),
	}
	if opts.Autoplay {
		r.pilot = autopilot.New()
	}
	return r
}

func (r *Room) Stop() {
	r.stopOnce.Do(func() {
		close(r.quit)
	})
}

// Submit queues msg for the frame loop. It returns false once the room is stopped.
func (r *Room) Submit(msg any) bool {
	select {
	case <-r.quit:
		return false
	default:
	}

	select {
	case <-r.quit:
		return false
	case r.Inbox <- msg:
		return true
	}
}

// NumClients returns the current number of connected clients.
func (r *Room) NumClients() int {
	return int(r.numClients.Load())
}

// Run ticks the simulator until Stop. Each frame gets the wall-clock time
// since the previous one, in milliseconds. Inbox messages are handled
// between frames, never during one.
func (r *Room) Run() {
	ticker := time.NewTicker(r.frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-r.quit:
			return
		case msg := <-r.Inbox:
			r.handleMessage(msg)
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			r.Step(float64(dt) / float64(time.Millisecond))
		}
	}
}

// Step runs one frame of dt milliseconds.
func (r *Room) Step(dt float64) {
	if r.pilot != nil {
		for _, cmd := range r.pilot.Commands(r.sim.Snapshot()) {
			r.Apply(cmd)
		}
	}

	switch r.sim.Advance(dt) {
	case game.EventWallBounce:
		r.stats.WallBounces++
	case game.EventLeftPaddleBounce, game.EventRightPaddleBounce:
		r.stats.PaddleBounces++
	case game.EventRoundEnded:
		r.stats.Resets++
		log.Printf("room %s: round %d over at frame %d, stage reset", r.ID, r.stats.Rounds, r.stats.Frames)
	}

	r.stats.Frames++
	if r.stats.Frames%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

// Apply runs one command against the room.
func (r *Room) Apply(cmd game.Command) {
	if cmd.Kind == game.CmdRandomizeColors {
		r.palette.Randomize(r.rng)
		return
	}

	before := r.sim.RoundState()
	r.sim.Apply(cmd)

	switch {
	case before == game.Idle && r.sim.RoundState() == game.InFlight:
		r.stats.Rounds++
		log.Printf("room %s: round %d started", r.ID, r.stats.Rounds)
	case cmd.Kind == game.CmdSetDifficulty:
		log.Printf("room %s: difficulty now %s", r.ID, r.sim.Difficulty())
	}
}

func (r *Room) Snapshot() game.Snapshot {
	return r.sim.Snapshot()
}

func (r *Room) Palette() render.Palette {
	return r.palette
}

func (r *Room) Stats() Stats {
	return r.stats
}

func (r *Room) handleMessage(msg any) {
	switch m := msg.(type) {
	case Join:
		r.clients[m.ClientID] = m.Conn
		n := r.numClients.Add(1)
		log.Printf("room %s: client %s joined (%d connected)", r.ID, m.ClientID, n)
		if m.Reply != nil {
			m.Reply <- JoinResult{RoomID: r.ID, Clients: int(n)}
		}
		r.sendStateTo(m.Conn)
	case Input:
		if _, ok := r.clients[m.ClientID]; !ok {
			return
		}
		r.Apply(m.Command)
	case Leave:
		r.handleLeave(m.ClientID)
	default:
		log.Printf("room %s: unknown inbox message %T", r.ID, msg)
	}
}

func (r *Room) handleLeave(clientID string) {
	r.removeClient(clientID)
	if len(r.clients) == 0 && r.OnEmpty != nil {
		r.OnEmpty(r.ID)
	}
}

func (r *Room) removeClient(clientID string) {
	c, ok := r.clients[clientID]
	if !ok {
		return
	}
	_ = c.Close()
	delete(r.clients, clientID)
	n := r.numClients.Add(-1)
	log.Printf("room %s: client %s left (%d connected)", r.ID, clientID, n)
}

func (r *Room) broadcastState() {
	if len(r.clients) == 0 {
		return
	}
	state := r.buildState()
	encoded := make(map[string][]byte)

	var failed []string
	for id, c := range r.clients {
		codec := c.Codec()
		b, ok := encoded[codec.Name()]
		if !ok {
			var err error
			b, err = codec.Encode(protocol.MsgState, state)
			if err != nil {
				log.Printf("room %s: failed to encode state as %s: %v", r.ID, codec.Name(), err)
				continue
			}
			encoded[codec.Name()] = b
		}
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
	if len(failed) > 0 && len(r.clients) == 0 && r.OnEmpty != nil {
		r.OnEmpty(r.ID)
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := c.Codec().Encode(protocol.MsgState, r.buildState())
	if err != nil {
		log.Printf("room %s: failed to encode state: %v", r.ID, err)
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildState() protocol.State {
	snap := r.sim.Snapshot()
	state := protocol.State{
		Frame:      r.stats.Frames,
		Round:      snap.State.String(),
		Difficulty: snap.Difficulty.String(),
		Ball: protocol.Body{
			X:  snap.Ball.Pos.X(),
			Y:  snap.Ball.Pos.Y(),
			VX: snap.Ball.Vel.X(),
			VY: snap.Ball.Vel.Y(),
		},
		LeftPaddle:  protocol.Point{X: snap.LeftPaddle.X(), Y: snap.LeftPaddle.Y()},
		RightPaddle: protocol.Point{X: snap.RightPaddle.X(), Y: snap.RightPaddle.Y()},
	}
	for _, e := range render.FromSnapshot(snap, r.palette).Entities() {
		state.Entities = append(state.Entities, protocol.Drawable{
			Name:      e.Name,
			Transform: [16]float64(e.Transform),
			Color:     [4]float64(e.Color),
		})
	}
	return state
}
