package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gemdocs/procurement-tracker/internal/common"
	"github.com/gemdocs/procurement-tracker/internal/embed"
	repo "github.com/gemdocs/procurement-tracker/internal/repository"
)

func main() {
	var (
		kind  = flag.String("kind", "all", "what to reindex: contracts, products, bids or all")
		batch = flag.Int("batch", 0, "rows per embedding request (default 128)")
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
	)
	flag.Parse()

	switch *kind {
	case "contracts", "products", "bids", "all":
	default:
		fmt.Fprintf(os.Stderr, "Error: --kind must be contracts, products, bids or all\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if !cfg.EmbeddingConfigured() {
		logger.Error("no embedding endpoint configured; set EMBED_BASE_URL or EMBED_API_KEY")
		os.Exit(1)
	}
	if *batch <= 0 {
		*batch = cfg.Extract.BatchSize
	}

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	contractsRepo := repo.NewContractRepository(dbResult.Client, logger)
	bidsRepo := repo.NewBidRepository(dbResult.Client, logger)

	embedder, err := embed.NewOpenAIEmbedder(cfg.Embedding, logger)
	if err != nil {
		logger.Error("failed to build embedder", "error", err)
		os.Exit(1)
	}
	svc := embed.NewService(contractsRepo, bidsRepo, embedder, *batch, logger)

	var stats embed.BackfillStats
	switch *kind {
	case "all":
		stats, err = svc.BackfillAll(ctx)
	case "contracts":
		stats.Contracts, err = svc.BackfillContracts(ctx)
	case "products":
		stats.Products, err = svc.BackfillProducts(ctx)
	case "bids":
		stats.Bids, err = svc.BackfillBids(ctx)
	}
	if err != nil {
		logger.Error("reindex failed", "kind", *kind, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Reindex complete!\n")
	fmt.Printf("- Contracts embedded: %d\n", stats.Contracts)
	fmt.Printf("- Products embedded: %d\n", stats.Products)
	fmt.Printf("- Bids embedded: %d\n", stats.Bids)
}
