package scoring

import (
	"context"
	"math"
	"strings"
)

// LexicalScorer is a deterministic, offline scorer: cosine similarity
// over character-trigram frequency vectors of the case-folded words.
// It is a stand-in for the embeddings backend when no credential is
// configured, and keeps local development and tests network-free.
// Identical strings always score 1.
type LexicalScorer struct{}

// NewLexicalScorer creates a LexicalScorer
func NewLexicalScorer() *LexicalScorer {
	return &LexicalScorer{}
}

// Ensure LexicalScorer implements Scorer
var _ Scorer = (*LexicalScorer)(nil)

func (s *LexicalScorer) Score(ctx context.Context, a, b string) (float64, error) {
	va := trigrams(a)
	vb := trigrams(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0, nil
	}

	var dot, na, nb float64
	for gram, ca := range va {
		if cb, ok := vb[gram]; ok {
			dot += float64(ca) * float64(cb)
		}
		na += float64(ca) * float64(ca)
	}
	for _, cb := range vb {
		nb += float64(cb) * float64(cb)
	}
	if dot == 0 {
		return 0, nil
	}
	return clamp01(dot / (math.Sqrt(na) * math.Sqrt(nb))), nil
}

// trigrams counts the character trigrams of the padded, lowercased word
func trigrams(word string) map[string]int {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return nil
	}
	w = "  " + w + "  "
	grams := make(map[string]int)
	runes := []rune(w)
	for i := 0; i+3 <= len(runes); i++ {
		grams[string(runes[i:i+3])]++
	}
	return grams
}
