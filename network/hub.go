package network

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"hungrytiger.com/server/config"
	"hungrytiger.com/server/entity"
	"hungrytiger.com/server/game"
	"hungrytiger.com/server/physics"
	"hungrytiger.com/server/util"
)

// Hub maintains the set of active clients, steps their sessions and
// broadcasts messages to the clients.
type Hub struct {
	cfg config.Config
	log *zap.Logger

	// Auto generated grid, shared by every session.
	grid  [][]int
	level *physics.Level

	// Registered clients.
	clients map[*Client]bool

	// Inbound messages from the clients.
	broadcast chan Event

	// Input samples from the clients.
	inputs chan inputMessage

	// World sync requests from the clients.
	sync chan *Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Closed when Run returns.
	done chan struct{}
}

// NewHub creates a new Hub with a freshly generated level.
func NewHub(cfg config.Config, log *zap.Logger) (*Hub, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "hub config")
	}
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Level.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	grid := util.MakeGrid(cfg.Level.Width, cfg.Level.Height, rand.New(rand.NewSource(seed)))
	log.Info("level generated", zap.Int64("seed", seed), zap.Int("width", cfg.Level.Width), zap.Int("height", cfg.Level.Height))

	return &Hub{
		cfg:        cfg,
		log:        log,
		grid:       grid,
		level:      physics.NewLevel(grid, cfg.Level.CellSize),
		broadcast:  make(chan Event),
		inputs:     make(chan inputMessage, 64),
		sync:       make(chan *Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
	}, nil
}

// Grid returns the generated level grid.
func (h *Hub) Grid() [][]int {
	return h.grid
}

func (h *Hub) newSession(log *zap.Logger) (*game.Session, error) {
	return game.NewSession(h.cfg, h.level, nil, log)
}

// Run serves the hub until ctx is done: it registers clients, applies their
// input, steps every session once per tick and broadcasts the result.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.Server.TickRate))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				client.log.Info("player left")
			}
		case m := <-h.inputs:
			if _, ok := h.clients[m.client]; ok {
				m.apply()
			}
		case client := <-h.sync:
			if _, ok := h.clients[client]; ok {
				h.syncWorld(client)
			}
		case e := <-h.broadcast:
			h.publish(e)
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			h.step(dt)
		}
	}
}

// step advances every session and broadcasts the new player states.
func (h *Hub) step(dt float32) {
	if len(h.clients) == 0 {
		return
	}
	players := make([]*entity.Player, 0, len(h.clients))
	for client, active := range h.clients {
		if !active {
			continue
		}
		client.session.Step(dt)
		client.session.Sync(client.player)
		players = append(players, client.player)
	}
	data := struct {
		Players []*entity.Player `json:"players"`
	}{players}
	h.publish(Event{EventUpdate, data})
}

// syncWorld sends the grid and the other players to client.
func (h *Hub) syncWorld(client *Client) {
	data := struct {
		Players []*entity.Player `json:"players"`
		Grid    [][]int          `json:"grid"`
	}{[]*entity.Player{}, h.grid}

	for other, active := range h.clients {
		if !active || other == client {
			continue
		}
		data.Players = append(data.Players, other.player)
	}

	message, err := json.Marshal(Event{EventSyncWorld, data})
	if err != nil {
		h.log.Error("marshal sync", zap.Error(err))
		return
	}
	h.deliver(client, message)
}

func (h *Hub) publish(e Event) {
	message, err := json.Marshal(e)
	if err != nil {
		h.log.Error("marshal event", zap.String("event", e.Name), zap.Error(err))
		return
	}
	for client := range h.clients {
		h.deliver(client, message)
	}
}

// deliver queues a message, dropping clients that cannot keep up.
func (h *Hub) deliver(client *Client, message []byte) {
	select {
	case client.send <- message:
	default:
		close(client.send)
		delete(h.clients, client)
		client.log.Warn("send buffer full, dropping client")
	}
}

// Client side helpers. They give up once the hub stopped.

func (h *Hub) post(e Event) {
	select {
	case h.broadcast <- e:
	case <-h.done:
	}
}

func (h *Hub) join(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) input(m inputMessage) {
	select {
	case h.inputs <- m:
	case <-h.done:
	}
}

func (h *Hub) requestSync(c *Client) {
	select {
	case h.sync <- c:
	case <-h.done:
	}
}
