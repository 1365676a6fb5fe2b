package factory

import (
	"log/slog"

	"github.com/mcoot/semantly-go/internal/dependencies/clock"
	"github.com/mcoot/semantly-go/internal/services/scoring"
	"github.com/mcoot/semantly-go/internal/storage"
)

// NewForTesting creates an App with explicit dependencies, bypassing
// config-driven construction. Intended for tests that need a mock clock
// or scorer behind a fully wired app.
func NewForTesting(store storage.Storage, scorer scoring.Scorer, clk clock.Clock, logger *slog.Logger) *App {
	return newWithDependencies(store, scorer, clk, logger)
}
