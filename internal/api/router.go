package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/semantly-go/internal/api/handler"
	apimiddleware "github.com/mcoot/semantly-go/internal/api/middleware"
	"github.com/mcoot/semantly-go/internal/middleware"
	"github.com/mcoot/semantly-go/internal/services/game"
	"github.com/mcoot/semantly-go/internal/ws"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	HubManager     *ws.HubManager
	// APIKey gates the state-changing routes (create, guess)
	APIKey string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController)
	eventsHandler := handler.NewEventsHandler(cfg.HubManager, cfg.Logger)

	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.CORS())

	apiKeyMiddleware := apimiddleware.APIKey(cfg.APIKey)

	// State-changing routes require the API key
	r.Handle("/create_game/", apiKeyMiddleware(http.HandlerFunc(gameHandler.Create))).Methods(http.MethodPost, http.MethodOptions)
	r.Handle("/game/{code}/guess", apiKeyMiddleware(http.HandlerFunc(gameHandler.Guess))).Methods(http.MethodPost, http.MethodOptions)

	// Read routes are open
	r.HandleFunc("/game/{code}/guesses", gameHandler.Guesses).Methods(http.MethodGet)
	r.HandleFunc("/game/{code}", gameHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)

	// Live connection endpoint
	r.HandleFunc("/ws/{code}", eventsHandler.Subscribe).Methods(http.MethodGet)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
