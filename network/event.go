package network

// Event is the struct sent and received from the clients
type Event struct {
	Name string      `json:"name"`
	Data interface{} `json:"data"`
}

// Event names.
const (
	EventInput       = "input"
	EventSyncWorld   = "syncWorld"
	EventChatMessage = "chatMessage"
	EventPlayerJoin  = "playerJoin"
	EventPlayerQuit  = "playerQuit"
	EventUpdate      = "update"
)

// InputData is the payload of an input event. Axes are in [-1, 1]; Jump and
// Hit are presses and count once.
type InputData struct {
	Horizontal float32  `mapstructure:"horizontal"`
	Vertical   float32  `mapstructure:"vertical"`
	Run        bool     `mapstructure:"run"`
	Jump       bool     `mapstructure:"jump"`
	Hit        bool     `mapstructure:"hit"`
	CameraYaw  *float32 `mapstructure:"cameraYaw"`
}
