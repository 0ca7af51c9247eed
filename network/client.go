package network

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"hungrytiger.com/server/engine"
	"hungrytiger.com/server/entity"
	"hungrytiger.com/server/game"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var newline = []byte{'\n'}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	hub *Hub

	// The player data
	player *entity.Player

	// The simulated scene of the player, owned by the hub goroutine.
	session *game.Session

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte

	log *zap.Logger
}

type inputMessage struct {
	client *Client
	data   InputData
}

// apply feeds the sample into the session input. Called from the hub.
func (m inputMessage) apply() {
	s := m.client.session
	in := s.Input()
	in.SetAxis(engine.AxisHorizontal, m.data.Horizontal)
	in.SetAxis(engine.AxisVertical, m.data.Vertical)
	in.SetHeld(s.Controller().RunKey(), m.data.Run)
	if m.data.Jump {
		in.Press(engine.ButtonJump)
	}
	if m.data.Hit {
		in.Click(engine.MouseLeft)
	}
	if m.data.CameraYaw != nil {
		s.SetCameraYaw(*m.data.CameraYaw)
	}
}

type chatData struct {
	Player  *entity.Player `json:"player"`
	Message string         `json:"message"`
}

// readPump pumps messages from the websocket connection to the hub.
//
// The application runs readPump in a per-connection goroutine. The application
// ensures that there is at most one reader on a connection by executing all
// reads from this goroutine.
func (c *Client) readPump() {
	defer func() {
		// Tell clients that the player quit.
		data := struct {
			Player *entity.Player `json:"player"`
		}{Player: c.player}

		c.hub.post(Event{EventPlayerQuit, data})

		// Close connection.
		c.hub.leave(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("read failed", zap.Error(err))
			}
			break
		}
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			c.log.Debug("dropping malformed event", zap.Error(err))
			continue
		}
		c.processEvent(event)
	}
}

// processEvent executes instructions based on the event name
func (c *Client) processEvent(event Event) {
	switch event.Name {
	case EventInput:
		var input InputData
		if err := mapstructure.Decode(event.Data, &input); err != nil {
			c.log.Debug("bad input payload", zap.Error(err))
			return
		}
		c.hub.input(inputMessage{client: c, data: input})
	case EventSyncWorld:
		c.hub.requestSync(c)
	case EventChatMessage:
		var incomingData struct {
			Message string `mapstructure:"message"`
		}
		if err := mapstructure.Decode(event.Data, &incomingData); err != nil {
			c.log.Debug("bad chat payload", zap.Error(err))
			return
		}
		c.hub.post(Event{EventChatMessage, chatData{c.player, incomingData.Message}})
	default:
		c.log.Debug("unknown event", zap.String("event", event.Name))
	}
}

// writePump pumps messages from the hub to the websocket connection.
//
// A goroutine running writePump is started for each connection. The
// application ensures that there is at most one writer to a connection by
// executing all writes from this goroutine.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message.
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write(newline)
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs handles websocket requests from the peer.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	vars := r.URL.Query()

	// players joining without a name get a generated one
	name := vars.Get("name")
	if name == "" {
		name = randomdata.SillyName()
	}

	player := &entity.Player{
		ID:    uuid.NewString(),
		Name:  name,
		Color: vars.Get("color"),
	}
	log := hub.log.With(zap.String("player", player.ID))

	session, err := hub.newSession(log)
	if err != nil {
		log.Error("cannot start session", zap.Error(err))
		conn.Close()
		return
	}
	session.Sync(player)

	// Tell clients that a new player joined.
	data := struct {
		Player *entity.Player `json:"player"`
	}{player}
	hub.post(Event{EventPlayerJoin, data})

	// Create client for the new connection
	client := &Client{
		hub:     hub,
		player:  player,
		session: session,
		conn:    conn,
		send:    make(chan []byte, 256),
		log:     log,
	}
	hub.join(client)
	log.Info("player joined", zap.String("name", player.Name))

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()
}
