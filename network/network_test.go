package network

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hungrytiger.com/server/config"
	"hungrytiger.com/server/engine"
	"hungrytiger.com/server/entity"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Level.Seed = 3
	cfg.Server.TickRate = 50
	return cfg
}

func TestInputDataDecode(t *testing.T) {
	var raw interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"horizontal":0.5,"vertical":-1,"run":true,"jump":true,"cameraYaw":90}`), &raw))

	var in InputData
	require.NoError(t, mapstructure.Decode(raw, &in))
	assert.Equal(t, float32(0.5), in.Horizontal)
	assert.Equal(t, float32(-1), in.Vertical)
	assert.True(t, in.Run)
	assert.True(t, in.Jump)
	assert.False(t, in.Hit)
	require.NotNil(t, in.CameraYaw)
	assert.Equal(t, float32(90), *in.CameraYaw)
}

func TestInputMessageApply(t *testing.T) {
	hub, err := NewHub(testConfig(), nil)
	require.NoError(t, err)
	session, err := hub.newSession(hub.log)
	require.NoError(t, err)

	c := &Client{session: session}
	inputMessage{client: c, data: InputData{Horizontal: 2, Vertical: 0.25, Run: true, Hit: true}}.apply()

	in := session.Input()
	assert.Equal(t, float32(1), in.Axis(engine.AxisHorizontal))
	assert.Equal(t, float32(0.25), in.Axis(engine.AxisVertical))
	assert.True(t, in.Held(engine.KeyLeftShift))
	assert.True(t, in.MouseButtonDown(engine.MouseLeft))
	assert.False(t, in.ButtonDown(engine.ButtonJump))

	session.Step(0.02)
	assert.Equal(t, "Hit", session.Animation())
	assert.False(t, in.MouseButtonDown(engine.MouseLeft))
}

type received struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// readUntil reads events until match accepts one or the deadline passes.
func readUntil(t *testing.T, conn *websocket.Conn, match func(received) bool) received {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		for _, part := range bytes.Split(data, newline) {
			var e received
			require.NoError(t, json.Unmarshal(part, &e))
			if match(e) {
				return e
			}
		}
	}
}

func TestServeWs(t *testing.T) {
	hub, err := NewHub(testConfig(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?name=tiger&color=orange"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(Event{Name: EventSyncWorld}))
	e := readUntil(t, conn, func(e received) bool { return e.Name == EventSyncWorld })
	var world struct {
		Players []*entity.Player `json:"players"`
		Grid    [][]int          `json:"grid"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &world))
	assert.Empty(t, world.Players)
	assert.Equal(t, hub.Grid(), world.Grid)

	require.NoError(t, conn.WriteJSON(Event{Name: EventInput, Data: map[string]interface{}{"vertical": 1}}))
	readUntil(t, conn, func(e received) bool {
		if e.Name != EventUpdate {
			return false
		}
		var update struct {
			Players []*entity.Player `json:"players"`
		}
		require.NoError(t, json.Unmarshal(e.Data, &update))
		return len(update.Players) == 1 &&
			update.Players[0].Name == "tiger" &&
			update.Players[0].CurrentAnimation == "Walk"
	})

	require.NoError(t, conn.WriteJSON(Event{Name: EventChatMessage, Data: map[string]string{"message": "roar"}}))
	e = readUntil(t, conn, func(e received) bool { return e.Name == EventChatMessage })
	var chat struct {
		Player  *entity.Player `json:"player"`
		Message string         `json:"message"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &chat))
	assert.Equal(t, "roar", chat.Message)
	assert.Equal(t, "orange", chat.Player.Color)
	assert.NotEmpty(t, chat.Player.ID)
}

func TestServeWsGeneratesName(t *testing.T) {
	hub, err := NewHub(testConfig(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	e := readUntil(t, conn, func(e received) bool { return e.Name == EventUpdate })
	var update struct {
		Players []*entity.Player `json:"players"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &update))
	require.Len(t, update.Players, 1)
	assert.NotEmpty(t, update.Players[0].Name)
	assert.Empty(t, update.Players[0].Color)
}

func TestGridEndpoint(t *testing.T) {
	hub, err := NewHub(testConfig(), nil)
	require.NoError(t, err)
	srv := httptest.NewServer(NewRouter(hub))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/grid")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var grid [][]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&grid))
	assert.Equal(t, hub.Grid(), grid)

	resp, err = http.Post(srv.URL+"/grid", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
