package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gemdocs/procurement-tracker/internal/embed"
	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/repository"
)

const (
	// DefaultMinFields is the completeness floor for keyword results.
	DefaultMinFields = 5

	// keywordLimit caps rows fetched per keyword before merging.
	keywordLimit = 200
)

// KeywordResults holds keyword hits per document family.
type KeywordResults struct {
	Contracts []*entity.ContractRecord
	Bids      []*entity.Bid
}

// Service answers keyword queries from the database and semantic queries
// from the in-memory vector index.
type Service struct {
	contracts repository.ContractRepository
	bids      repository.BidRepository
	embedder  embed.Embedder
	index     *Index
	logger    *slog.Logger
}

func NewService(contracts repository.ContractRepository, bids repository.BidRepository, embedder embed.Embedder, logger *slog.Logger) *Service {
	return &Service{
		contracts: contracts,
		bids:      bids,
		embedder:  embedder,
		index:     NewIndex(),
		logger:    logger,
	}
}

// ParseKeywords splits a comma-separated keyword list, trimming blanks.
func ParseKeywords(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseKind maps a wire string to a Kind; empty means all kinds.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", true
	case KindContract:
		return KindContract, true
	case KindProduct:
		return KindProduct, true
	case KindBid:
		return KindBid, true
	}
	return "", false
}

// Keyword runs every keyword with OR semantics, merges hits by natural key
// and drops records below the completeness floor.
func (s *Service) Keyword(ctx context.Context, keywords []string, minFields int, kind Kind) (*KeywordResults, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords given")
	}
	if minFields <= 0 {
		minFields = DefaultMinFields
	}

	results := &KeywordResults{}
	if kind == "" || kind == KindContract {
		seen := make(map[string]bool)
		for _, kw := range keywords {
			rows, err := s.contracts.SearchKeyword(ctx, kw, keywordLimit)
			if err != nil {
				return nil, err
			}
			for _, rec := range rows {
				if seen[rec.Contract.ContractNo] {
					continue
				}
				seen[rec.Contract.ContractNo] = true
				if ContractCompleteness(rec) >= minFields {
					results.Contracts = append(results.Contracts, rec)
				}
			}
		}
	}
	if kind == "" || kind == KindBid {
		seen := make(map[string]bool)
		for _, kw := range keywords {
			rows, err := s.bids.SearchKeyword(ctx, kw, keywordLimit)
			if err != nil {
				return nil, err
			}
			for _, b := range rows {
				if seen[b.BidNumber] {
					continue
				}
				seen[b.BidNumber] = true
				if BidCompleteness(b) >= minFields {
					results.Bids = append(results.Bids, b)
				}
			}
		}
	}

	s.logger.Info("keyword search",
		"keywords", len(keywords), "min_fields", minFields,
		"contracts", len(results.Contracts), "bids", len(results.Bids))
	return results, nil
}

// Semantic embeds the query and scores it against the index.
func (s *Service) Semantic(ctx context.Context, query string, topK int, kinds ...Kind) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}
	if s.embedder == nil {
		return nil, fmt.Errorf("no embedding endpoint configured")
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.index.Search(embed.Normalize(vector), topK, kinds...), nil
}

// Refresh reloads the vector index from stored embeddings. Vectors whose
// dimension disagrees with the first loaded entry are skipped.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	contractVecs, err := s.contracts.Vectors(ctx)
	if err != nil {
		return 0, err
	}
	productVecs, err := s.contracts.ProductVectors(ctx)
	if err != nil {
		return 0, err
	}
	bidVecs, err := s.bids.Vectors(ctx)
	if err != nil {
		return 0, err
	}

	entries := make([]Entry, 0, len(contractVecs)+len(productVecs)+len(bidVecs))
	dim, skipped := 0, 0
	keep := func(e Entry) {
		if dim == 0 {
			dim = len(e.Vec)
		}
		if len(e.Vec) != dim {
			skipped++
			return
		}
		entries = append(entries, e)
	}
	for _, v := range contractVecs {
		keep(Entry{ID: v.ID, Kind: KindContract, Ref: v.ContractNo, Vec: v.Vector})
	}
	for _, v := range productVecs {
		keep(Entry{ID: v.ID, Kind: KindProduct, Ref: v.Name, Vec: v.Vector})
	}
	for _, v := range bidVecs {
		keep(Entry{ID: v.ID, Kind: KindBid, Ref: v.BidNumber, Vec: v.Vector})
	}

	if skipped > 0 {
		s.logger.Warn("skipped vectors with mismatched dimension", "skipped", skipped, "dim", dim)
	}
	s.index.Replace(entries)
	s.logger.Info("vector index refreshed", "entries", len(entries), "dim", dim)
	return len(entries), nil
}
