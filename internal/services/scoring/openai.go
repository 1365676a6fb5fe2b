package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "text-embedding-3-large"
	defaultTimeout = 15 * time.Second
	embeddingsPath = "/embeddings"
)

// OpenAIConfig holds settings for the embeddings-backed scorer
type OpenAIConfig struct {
	APIKey string
	// BaseURL overrides the API endpoint (for testing)
	BaseURL string
	// Model is the embeddings model name
	Model string
	// Timeout bounds each embeddings request
	Timeout time.Duration
}

// OpenAIScorer scores word similarity as the cosine of the words'
// embedding vectors from the OpenAI embeddings API
type OpenAIScorer struct {
	cfg    OpenAIConfig
	client *http.Client
}

// NewOpenAIScorer creates an embeddings-backed scorer
func NewOpenAIScorer(cfg OpenAIConfig) *OpenAIScorer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &OpenAIScorer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Ensure OpenAIScorer implements Scorer
var _ Scorer = (*OpenAIScorer)(nil)

type embeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingsResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Score embeds both words in a single request and returns their cosine
// similarity, clamped to [0, 1]
func (s *OpenAIScorer) Score(ctx context.Context, a, b string) (float64, error) {
	body, err := json.Marshal(embeddingsRequest{
		Model: s.cfg.Model,
		Input: []string{a, b},
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+embeddingsPath, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("embeddings request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain a bounded amount so the error is diagnosable without
		// echoing arbitrary payloads
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("embeddings request: status %d: %s", resp.StatusCode, msg)
	}

	var er embeddingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return 0, fmt.Errorf("embeddings response: %w", err)
	}
	if len(er.Data) != 2 {
		return 0, fmt.Errorf("embeddings response: expected 2 vectors, got %d", len(er.Data))
	}

	sim := cosine(er.Data[0].Embedding, er.Data[1].Embedding)
	return clamp01(sim), nil
}

// cosine returns the cosine similarity of two vectors, 0 when either has
// zero magnitude or the lengths differ
func cosine(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}
	var dot, nx, ny float64
	for i := range x {
		dot += x[i] * y[i]
		nx += x[i] * x[i]
		ny += y[i] * y[i]
	}
	if nx == 0 || ny == 0 {
		return 0
	}
	return dot / (math.Sqrt(nx) * math.Sqrt(ny))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
