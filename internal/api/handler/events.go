package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/semantly-go/internal/model"
	"github.com/mcoot/semantly-go/internal/ws"
)

// EventsHandler serves the live websocket endpoint
type EventsHandler struct {
	hubManager *ws.HubManager
	logger     *slog.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hubManager *ws.HubManager, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{hubManager: hubManager, logger: logger}
}

// Subscribe handles GET /ws/{code}: the connection joins the code's
// broadcast group until it disconnects. A code that does not resolve to
// a game still gets a group; the connection just receives nothing.
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])
	ws.ServeWS(w, r, h.hubManager, code, h.logger)
}
