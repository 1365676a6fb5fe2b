package request

// PresetGuess is a preset guess supplied at game creation. Score and
// timestamp are computed server-side; the client supplies only the
// player and the word.
type PresetGuess struct {
	Player string `json:"player"`
	Guess  string `json:"guess"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Code          string        `json:"code"`
	SecretWord    string        `json:"secret_word"`
	MaxGuesses    int           `json:"max_guesses"`
	Players       []string      `json:"players"`
	PresetGuesses []PresetGuess `json:"preset_guesses"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Player string `json:"player"`
	Guess  string `json:"guess"`
}
