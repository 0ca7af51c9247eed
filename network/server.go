package network

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter routes the websocket endpoint and the level grid. Requests are
// access logged through the hub logger and panics are recovered.
func NewRouter(hub *Hub) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	r.HandleFunc("/grid", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(hub.Grid()); err != nil {
			hub.log.Warn("write grid", zap.Error(err))
		}
	}).Methods(http.MethodGet)

	h := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(r)
	return handlers.LoggingHandler(zap.NewStdLog(hub.log).Writer(), h)
}
