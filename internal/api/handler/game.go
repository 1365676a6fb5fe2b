package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/semantly-go/internal/api/apierr"
	"github.com/mcoot/semantly-go/internal/api/request"
	"github.com/mcoot/semantly-go/internal/api/response"
	"github.com/mcoot/semantly-go/internal/model"
	"github.com/mcoot/semantly-go/internal/services/game"
)

const msgGameNotFound = "Game not found"

// GameHandler handles game endpoints
type GameHandler struct {
	controller *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *game.Controller) *GameHandler {
	return &GameHandler{controller: controller}
}

// Create handles POST /create_game/
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Code == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("code is required"))
		return
	}
	if req.SecretWord == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("secret_word is required"))
		return
	}

	presets := make([]model.Guess, len(req.PresetGuesses))
	for i, p := range req.PresetGuesses {
		presets[i] = model.Guess{Player: p.Player, Guess: p.Guess}
	}

	g := &model.Game{
		Code:          model.GameCode(req.Code),
		SecretWord:    req.SecretWord,
		MaxGuesses:    req.MaxGuesses,
		Players:       req.Players,
		PresetGuesses: presets,
	}

	if err := h.controller.CreateGame(r.Context(), g); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Message{Message: "Game created"})
}

// Get handles GET /game/{code}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	g, err := h.controller.GetGame(r.Context(), code)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			response.JSON(w, http.StatusOK, response.Message{Message: msgGameNotFound})
			return
		}
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, g)
}

// Guess handles POST /game/{code}/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Player == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player is required"))
		return
	}
	if req.Guess == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("guess is required"))
		return
	}

	guess, won, err := h.controller.SubmitGuess(r.Context(), code, req.Player, req.Guess)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			response.JSON(w, http.StatusOK, response.Message{Message: msgGameNotFound})
			return
		}
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessAccepted{
		Message: "Guess added",
		Guess:   *guess,
		GameWon: won,
	})
}

// Guesses handles GET /game/{code}/guesses
func (h *GameHandler) Guesses(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	guesses, err := h.controller.GetGuesses(r.Context(), code)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			response.JSON(w, http.StatusOK, response.Message{Message: msgGameNotFound})
			return
		}
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Guesses{UserGuesses: guesses})
}

// List handles GET /games (debug; unbounded)
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.controller.ListGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, games)
}
