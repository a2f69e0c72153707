package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/internal/common"
	"github.com/gemdocs/procurement-tracker/internal/embed"
	"github.com/gemdocs/procurement-tracker/internal/export"
	"github.com/gemdocs/procurement-tracker/internal/ingest"
	"github.com/gemdocs/procurement-tracker/internal/pdftext"
	"github.com/gemdocs/procurement-tracker/internal/pipeline"
	repo "github.com/gemdocs/procurement-tracker/internal/repository"
	"github.com/gemdocs/procurement-tracker/internal/search"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir      = flag.String("dir", "", "directory to process documents from (required)")
		docType  = flag.String("type", "", "document type hint: bid or contract (optional)")
		out      = flag.String("out", "", "export directory (defaults to EXPORT_DIR or ./exports)")
		jsonOut  = flag.Bool("json", false, "also write JSON next to each XLSX export")
		workers  = flag.Int("workers", 0, "extraction workers (0 = half the CPUs)")
		skipExpt = flag.Bool("no-export", false, "process only, skip the per-record exports")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	hint := ""
	if *docType != "" {
		dt, ok := constants.CanonicalizeDocType(*docType)
		if !ok {
			printError("Error: --type must be bid or contract\n")
			os.Exit(1)
		}
		hint = string(dt)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *out == "" {
		*out = cfg.Export.Dir
	}
	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	filesRepo := repo.NewSourceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	contractsRepo := repo.NewContractRepository(entc, logger)
	bidsRepo := repo.NewBidRepository(entc, logger)

	var embedder embed.Embedder
	if cfg.EmbeddingConfigured() {
		e, err := embed.NewOpenAIEmbedder(cfg.Embedding, logger)
		if err != nil {
			logger.Error("failed to build embedder", "error", err)
			os.Exit(1)
		}
		embedder = e
		logger.Info("embedding endpoint configured", "model", cfg.Embedding.Model)
	} else {
		logger.Warn("no embedding endpoint configured, vectors will be skipped")
	}

	extractor := pdftext.NewPDFExtractor(logger)
	textStage := pipeline.NewTextStage(filesRepo, jobsRepo, extractor, logger)
	parseStage := pipeline.NewParseStage(jobsRepo, filesRepo, contractsRepo, bidsRepo, embedder, logger)
	processor := pipeline.NewProcessor(textStage, parseStage, logger)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)

	logger.Info("starting ingestion", "dir", *dir, "type", hint)
	ingestionResults, stats, err := ingestor.IngestDirectory(ctx, *dir, hint, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}

	var ingested []uuid.UUID
	deduplicated := 0
	for _, result := range ingestionResults {
		if result.Err != "" {
			continue
		}
		if result.Deduplicated {
			deduplicated++
		}
		fileID, err := uuid.Parse(result.FileID)
		if err != nil {
			logger.Error("failed to parse file ID", "file_id", result.FileID, "error", err)
			continue
		}
		ingested = append(ingested, fileID)
	}
	logger.Info("ingestion complete",
		"files_ingested", len(ingested),
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	batch, err := processor.ProcessBatch(ctx, ingested, *workers)
	if err != nil {
		logger.Error("batch processing interrupted", "error", err)
	}
	batch.Deduplicated = deduplicated

	exported := 0
	if !*skipExpt {
		exported = exportAll(ctx, contractsRepo, bidsRepo, *out, *jsonOut, logger)
	}

	logger.Info("batch complete",
		"files_processed", batch.Processed,
		"failures", batch.Failed,
		"deduplicated", batch.Deduplicated,
		"exported", exported,
		"export_dir", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files processed: %d\n", batch.Processed)
	fmt.Printf("- Deduplicated: %d\n", batch.Deduplicated)
	fmt.Printf("- Failures: %d\n", batch.Failed)
	if !*skipExpt {
		fmt.Printf("- Exports written: %d\n", exported)
		fmt.Printf("- Export dir: %s\n", *out)
	}
}

// exportAll writes one workbook (and optionally JSON) per stored contract
// and bid into outDir, returning how many files were written.
func exportAll(ctx context.Context, contractsRepo repo.ContractRepository, bidsRepo repo.BidRepository, outDir string, withJSON bool, logger *slog.Logger) int {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Error("failed to create export directory", "dir", outDir, "error", err)
		return 0
	}
	searcher := search.NewService(contractsRepo, bidsRepo, nil, logger)
	exportSvc := export.NewService(contractsRepo, bidsRepo, searcher, logger)

	written := 0
	write := func(name string, data []byte, err error) {
		if err != nil {
			logger.Error("export failed", "name", name, "error", err)
			return
		}
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			logger.Error("failed to write export", "path", path, "error", err)
			return
		}
		written++
	}

	recs, err := contractsRepo.List(ctx, nil, nil, 0, 0)
	if err != nil {
		logger.Error("failed to list contracts for export", "error", err)
	}
	for _, c := range recs {
		base := export.SafeFilename("contract-" + c.ContractNo)
		data, err := exportSvc.ContractXLSX(ctx, c.ContractNo)
		write(base+".xlsx", data, err)
		if withJSON {
			data, err := exportSvc.ContractJSON(ctx, c.ContractNo)
			write(base+".json", data, err)
		}
	}

	bids, err := bidsRepo.List(ctx, nil, nil, 0, 0)
	if err != nil {
		logger.Error("failed to list bids for export", "error", err)
	}
	for _, b := range bids {
		base := export.SafeFilename("bid-" + b.BidNumber)
		data, err := exportSvc.BidXLSX(ctx, b.BidNumber)
		write(base+".xlsx", data, err)
		if withJSON {
			data, err := exportSvc.BidJSON(ctx, b.BidNumber)
			write(base+".json", data, err)
		}
	}
	return written
}
