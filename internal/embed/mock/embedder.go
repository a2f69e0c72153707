package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// Embedder is a test double with injectable behavior. The default produces
// deterministic unit vectors seeded from the text, so identical inputs map
// to identical embeddings without a network hop.
type Embedder struct {
	EmbedTextFunc  func(ctx context.Context, text string) ([]float32, error)
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	calls int
}

func NewEmbedder() *Embedder {
	return &Embedder{}
}

func (m *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.calls++
	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return DeterministicVector(text, 384), nil
}

func (m *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = DeterministicVector(text, 384)
	}
	return vectors, nil
}

// Calls reports how many embed calls the mock has served.
func (m *Embedder) Calls() int {
	return m.calls
}

// DeterministicVector derives a stable pseudo-random unit vector from text.
func DeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := range vector {
		seed = seed*1664525 + 1013904223
		vector[i] = float32(seed%1000)/1000.0 - 0.5
	}

	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	if sum > 0 {
		inv := float32(1 / math.Sqrt(sum))
		for i := range vector {
			vector[i] *= inv
		}
	}
	return vector
}
