package redis

import (
	"fmt"

	"github.com/mcoot/semantly-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "semantly"

// gameKey returns the Redis key for a game's immutable document
// (code, secret word, players, preset guesses)
func gameKey(code model.GameCode) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, code)
}

// guessesKey returns the Redis key for a game's user guess list
func guessesKey(code model.GameCode) string {
	return fmt.Sprintf("%s:guesses:%s", keyPrefix, code)
}

// wonKey returns the Redis key for a game's won flag
func wonKey(code model.GameCode) string {
	return fmt.Sprintf("%s:won:%s", keyPrefix, code)
}

// gamesIndexKey returns the Redis key for the SET of all game codes
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
