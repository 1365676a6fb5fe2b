package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbeddings serves canned vectors per input word
func fakeEmbeddings(t *testing.T, vectors map[string][]float64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req embeddingsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Input, 2)

		resp := embeddingsResponse{}
		for _, word := range req.Input {
			vec, ok := vectors[word]
			assert.True(t, ok, "no canned vector for %q", word)
			resp.Data = append(resp.Data, struct {
				Embedding []float64 `json:"embedding"`
			}{Embedding: vec})
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestScorer(serverURL string) *OpenAIScorer {
	return NewOpenAIScorer(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: serverURL,
	})
}

func TestOpenAIScorerIdenticalVectors(t *testing.T) {
	server := fakeEmbeddings(t, map[string][]float64{
		"ocean": {1, 0, 0},
		"sea":   {1, 0, 0},
	})
	defer server.Close()

	score, err := newTestScorer(server.URL).Score(context.Background(), "ocean", "sea")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 0.0001)
}

func TestOpenAIScorerOrthogonalVectors(t *testing.T) {
	server := fakeEmbeddings(t, map[string][]float64{
		"ocean": {1, 0},
		"rock":  {0, 1},
	})
	defer server.Close()

	score, err := newTestScorer(server.URL).Score(context.Background(), "ocean", "rock")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestOpenAIScorerPartialSimilarity(t *testing.T) {
	server := fakeEmbeddings(t, map[string][]float64{
		"ocean": {1, 1},
		"sea":   {1, 0},
	})
	defer server.Close()

	score, err := newTestScorer(server.URL).Score(context.Background(), "ocean", "sea")
	require.NoError(t, err)
	assert.InDelta(t, 0.7071, score, 0.001)
}

func TestOpenAIScorerNegativeSimilarityClamped(t *testing.T) {
	server := fakeEmbeddings(t, map[string][]float64{
		"ocean": {1, 0},
		"rock":  {-1, 0},
	})
	defer server.Close()

	score, err := newTestScorer(server.URL).Score(context.Background(), "ocean", "rock")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestOpenAIScorerUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestScorer(server.URL).Score(context.Background(), "ocean", "sea")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestOpenAIScorerMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	_, err := newTestScorer(server.URL).Score(context.Background(), "ocean", "sea")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 vectors")
}

func TestOpenAIScorerContextCancelled(t *testing.T) {
	server := fakeEmbeddings(t, map[string][]float64{
		"ocean": {1, 0},
		"sea":   {1, 0},
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestScorer(server.URL).Score(ctx, "ocean", "sea")
	require.Error(t, err)
}
