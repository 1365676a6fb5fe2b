package mocks

import (
	"context"
	"sync"

	"github.com/mcoot/semantly-go/internal/services/scoring"
)

// MockScorer is a mock implementation of Scorer for testing. Scores maps
// guess text to a fixed 0-1 score; unknown words get Default.
type MockScorer struct {
	mu      sync.Mutex
	Scores  map[string]float64
	Default float64
	Err     error
	Calls   int
}

// Ensure MockScorer implements Scorer
var _ scoring.Scorer = (*MockScorer)(nil)

// NewMockScorer creates a MockScorer with no fixed scores
func NewMockScorer() *MockScorer {
	return &MockScorer{Scores: make(map[string]float64)}
}

// Score returns the configured score for a, or Default
func (m *MockScorer) Score(ctx context.Context, a, b string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	if a == b {
		return 1, nil
	}
	if score, ok := m.Scores[a]; ok {
		return score, nil
	}
	return m.Default, nil
}
