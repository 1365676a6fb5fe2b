package model

import "time"

// GameCode is the human-facing unique identifier for one game session
type GameCode string

// Guess is one scored attempt by a player to name the secret word.
// Score and Timestamp are assigned server-side at scoring time and are
// nil until the guess has been scored. They are never trusted from input.
type Guess struct {
	Player    string     `json:"player"`
	Guess     string     `json:"guess"`
	Score     *float64   `json:"score"`
	Timestamp *time.Time `json:"timestamp"`
}

// Game represents one game session. Identity fields (Code, SecretWord,
// MaxGuesses, Players, PresetGuesses) are immutable after creation; only
// UserGuesses and Won change over the game's lifetime. UserGuesses is
// append-only and Won never transitions back to false.
type Game struct {
	Code          GameCode `json:"code"`
	SecretWord    string   `json:"secret_word"`
	MaxGuesses    int      `json:"max_guesses"`
	Players       []string `json:"players"`
	PresetGuesses []Guess  `json:"preset_guesses"`
	UserGuesses   []Guess  `json:"user_guesses"`
	Won           bool     `json:"won"`
}

// WinThreshold is the score (0-100 scale) above which a guess wins the game
const WinThreshold = 95.0

// IsWinning reports whether a score marks the game won
func IsWinning(score float64) bool {
	return score > WinThreshold
}
