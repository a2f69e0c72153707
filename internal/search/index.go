package search

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Kind tags which table an index entry came from.
type Kind string

const (
	KindContract Kind = "contract"
	KindProduct  Kind = "product"
	KindBid      Kind = "bid"
)

// Entry is one embedded row: Ref is the human-readable handle
// (contract number, product name or bid number).
type Entry struct {
	ID   uuid.UUID
	Kind Kind
	Ref  string
	Vec  []float32
}

// SearchResult is a scored index hit. Scores are dot products over
// normalized vectors, so they land in [-1, 1].
type SearchResult struct {
	ID    uuid.UUID
	Kind  Kind
	Ref   string
	Score float64
}

// Index is a brute-force in-memory vector table. Fine for the corpus sizes
// this tracker sees; swap for a real ANN store before the row count makes
// a linear scan hurt.
type Index struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewIndex() *Index {
	return &Index{}
}

// Replace swaps the whole table in one step.
func (ix *Index) Replace(entries []Entry) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries = entries
}

// Add appends entries without touching existing ones.
func (ix *Index) Add(entries ...Entry) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries = append(ix.entries, entries...)
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}

// Search scores every entry against the query vector and returns the topK
// best, optionally restricted to the given kinds. topK defaults to 10 and
// is capped at the number of candidates.
func (ix *Index) Search(vector []float32, topK int, kinds ...Kind) []SearchResult {
	if topK <= 0 {
		topK = 10
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	results := make([]SearchResult, 0, len(ix.entries))
	for _, e := range ix.entries {
		if len(kinds) > 0 && !kindMatch(e.Kind, kinds) {
			continue
		}
		results = append(results, SearchResult{
			ID:    e.ID,
			Kind:  e.Kind,
			Ref:   e.Ref,
			Score: dot(e.Vec, vector),
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK]
}

func kindMatch(k Kind, kinds []Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
