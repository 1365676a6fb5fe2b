package response

import "github.com/mcoot/semantly-go/internal/model"

// Message is a plain message response. "Game not found" is deliberately
// carried this way with a 200 status rather than a 404, for client
// simplicity.
type Message struct {
	Message string `json:"message"`
}

// GuessAccepted is the response to a successful guess submission
type GuessAccepted struct {
	Message string      `json:"message"`
	Guess   model.Guess `json:"guess"`
	GameWon bool        `json:"game_won"`
}

// Guesses wraps a game's user guesses
type Guesses struct {
	UserGuesses []model.Guess `json:"user_guesses"`
}
