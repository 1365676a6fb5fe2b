package model

// GuessEvent is the payload broadcast to a game's live connections
// whenever a new guess has been scored and persisted
type GuessEvent struct {
	Guess   Guess `json:"guess"`
	GameWon bool  `json:"game_won"`
}
