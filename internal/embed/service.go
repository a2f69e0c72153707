package embed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gemdocs/procurement-tracker/internal/repository"
)

// BackfillStats counts vectors written by a backfill run.
type BackfillStats struct {
	Contracts int
	Products  int
	Bids      int
}

// Service walks rows that are missing embeddings and fills them in batches.
type Service struct {
	contracts repository.ContractRepository
	bids      repository.BidRepository
	embedder  Embedder
	batchSize int
	logger    *slog.Logger
}

func NewService(contracts repository.ContractRepository, bids repository.BidRepository, embedder Embedder, batchSize int, logger *slog.Logger) *Service {
	if batchSize <= 0 {
		batchSize = 128
	}
	return &Service{
		contracts: contracts,
		bids:      bids,
		embedder:  embedder,
		batchSize: batchSize,
		logger:    logger,
	}
}

// BackfillAll embeds every contract, product and bid row that has no vector.
func (s *Service) BackfillAll(ctx context.Context) (BackfillStats, error) {
	var stats BackfillStats
	var err error

	if stats.Contracts, err = s.BackfillContracts(ctx); err != nil {
		return stats, err
	}
	if stats.Products, err = s.BackfillProducts(ctx); err != nil {
		return stats, err
	}
	if stats.Bids, err = s.BackfillBids(ctx); err != nil {
		return stats, err
	}

	s.logger.Info("embedding backfill complete",
		"contracts", stats.Contracts, "products", stats.Products, "bids", stats.Bids)
	return stats, nil
}

func (s *Service) BackfillContracts(ctx context.Context) (int, error) {
	total := 0
	for {
		rows, err := s.contracts.ListForEmbedding(ctx, s.batchSize)
		if err != nil {
			return total, err
		}
		if len(rows) == 0 {
			return total, nil
		}

		texts := make([]string, len(rows))
		for i, rec := range rows {
			texts[i] = ContractEmbeddingText(rec)
		}
		vectors, err := s.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return total, fmt.Errorf("embed contracts: %w", err)
		}
		if len(vectors) != len(rows) {
			return total, fmt.Errorf("embedding count mismatch: %d vectors for %d contracts", len(vectors), len(rows))
		}

		for i, rec := range rows {
			if err := s.contracts.UpdateEmbedding(ctx, rec.Contract.ID, Normalize(vectors[i])); err != nil {
				return total, err
			}
			total++
		}
		if len(rows) < s.batchSize {
			return total, nil
		}
	}
}

func (s *Service) BackfillProducts(ctx context.Context) (int, error) {
	total := 0
	for {
		rows, err := s.contracts.ListProductsForEmbedding(ctx, s.batchSize)
		if err != nil {
			return total, err
		}
		if len(rows) == 0 {
			return total, nil
		}

		texts := make([]string, len(rows))
		for i, p := range rows {
			texts[i] = ProductEmbeddingText(p)
		}
		vectors, err := s.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return total, fmt.Errorf("embed products: %w", err)
		}
		if len(vectors) != len(rows) {
			return total, fmt.Errorf("embedding count mismatch: %d vectors for %d products", len(vectors), len(rows))
		}

		for i, p := range rows {
			if err := s.contracts.UpdateProductEmbedding(ctx, p.ID, Normalize(vectors[i])); err != nil {
				return total, err
			}
			total++
		}
		if len(rows) < s.batchSize {
			return total, nil
		}
	}
}

func (s *Service) BackfillBids(ctx context.Context) (int, error) {
	total := 0
	for {
		rows, err := s.bids.ListForEmbedding(ctx, s.batchSize)
		if err != nil {
			return total, err
		}
		if len(rows) == 0 {
			return total, nil
		}

		texts := make([]string, len(rows))
		for i, b := range rows {
			texts[i] = BidEmbeddingText(b)
		}
		vectors, err := s.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return total, fmt.Errorf("embed bids: %w", err)
		}
		if len(vectors) != len(rows) {
			return total, fmt.Errorf("embedding count mismatch: %d vectors for %d bids", len(vectors), len(rows))
		}

		for i, b := range rows {
			if err := s.bids.UpdateEmbedding(ctx, b.ID, Normalize(vectors[i])); err != nil {
				return total, err
			}
			total++
		}
		if len(rows) < s.batchSize {
			return total, nil
		}
	}
}
