package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gemdocs/procurement-tracker/internal/common"
	"github.com/gemdocs/procurement-tracker/internal/export"
	repo "github.com/gemdocs/procurement-tracker/internal/repository"
	"github.com/gemdocs/procurement-tracker/internal/search"
)

func main() {
	var (
		keywords  = flag.String("keywords", "", "comma-separated keywords (empty uses the stock defence list)")
		minFields = flag.Int("min-fields", search.DefaultMinFields, "minimum populated fields per record")
		out       = flag.String("out", "filtered-report.xlsx", "output XLSX path")
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	contractsRepo := repo.NewContractRepository(dbResult.Client, logger)
	bidsRepo := repo.NewBidRepository(dbResult.Client, logger)

	searcher := search.NewService(contractsRepo, bidsRepo, nil, logger)
	exportSvc := export.NewService(contractsRepo, bidsRepo, searcher, logger)

	kws := search.ParseKeywords(*keywords)
	data, err := exportSvc.FilteredReportXLSX(ctx, kws, *minFields)
	if err != nil {
		logger.Error("failed to build filtered report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		logger.Error("failed to write report", "path", *out, "error", err)
		os.Exit(1)
	}

	if len(kws) == 0 {
		kws = export.DefaultReportKeywords
	}
	fmt.Printf("Filtered report written to %s (keywords: %d, min fields: %d)\n", *out, len(kws), *minFields)
}
