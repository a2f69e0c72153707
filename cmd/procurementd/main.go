package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gemdocs/procurement-tracker/internal/async"
	"github.com/gemdocs/procurement-tracker/internal/common"
	"github.com/gemdocs/procurement-tracker/internal/embed"
	"github.com/gemdocs/procurement-tracker/internal/export"
	"github.com/gemdocs/procurement-tracker/internal/ingest"
	"github.com/gemdocs/procurement-tracker/internal/pdftext"
	"github.com/gemdocs/procurement-tracker/internal/pipeline"
	"github.com/gemdocs/procurement-tracker/internal/search"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/gemdocs/procurement-tracker/gen/proto/procurement/v1"
	repo "github.com/gemdocs/procurement-tracker/internal/repository"
	svc "github.com/gemdocs/procurement-tracker/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

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
	} else {
		logger.Info("no embedding endpoint configured; vectors deferred to reindex")
	}

	extractor := pdftext.NewPDFExtractor(logger)
	textStage := pipeline.NewTextStage(filesRepo, jobsRepo, extractor, logger)
	parseStage := pipeline.NewParseStage(jobsRepo, filesRepo, contractsRepo, bidsRepo, embedder, logger)
	processor := pipeline.NewProcessor(textStage, parseStage, logger)

	queueWorkers := cfg.Extract.Workers
	if queueWorkers <= 0 {
		queueWorkers = 6
	}
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(queueWorkers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(filesRepo, logger)
	ingestionService := svc.NewIngestionService(ingestor, queue, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	contractsService := svc.NewContractsService(contractsRepo, extractor, logger)
	v1.RegisterContractsServiceServer(grpcServer, contractsService)
	bidsService := svc.NewBidsService(bidsRepo, extractor, logger)
	v1.RegisterBidsServiceServer(grpcServer, bidsService)

	searcher := search.NewService(contractsRepo, bidsRepo, embedder, logger)
	searchService := svc.NewSearchService(searcher, logger)
	v1.RegisterSearchServiceServer(grpcServer, searchService)

	exportService := svc.NewExportServer(export.NewService(contractsRepo, bidsRepo, searcher, logger), logger)
	v1.RegisterExportServiceServer(grpcServer, exportService)

	// Load stored vectors now and pick up fresh parses periodically.
	if n, err := searcher.Refresh(ctx); err != nil {
		logger.Warn("vector index load failed", "error", err)
	} else {
		logger.Info("vector index loaded", "entries", n)
	}
	go refreshLoop(ctx, searcher, 5*time.Minute, logger)

	if cfg.Server.WatchDirs != "" {
		startWatch(ctx, cfg.Server.WatchDirs, ingestor, queue, logger)
	}

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("procurement-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

func refreshLoop(ctx context.Context, searcher *search.Service, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := searcher.Refresh(ctx); err != nil {
				logger.Warn("vector index refresh failed", "error", err)
			}
		}
	}
}

// startWatch feeds files dropped under the configured directories straight
// into the extraction queue.
func startWatch(ctx context.Context, dirs string, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	var roots []string
	for _, d := range strings.Split(dirs, ",") {
		if d = strings.TrimSpace(d); d != "" {
			roots = append(roots, d)
		}
	}
	if len(roots) == 0 {
		return
	}

	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       roots,
		InitialScan: true,
		Debounce:    2 * time.Second,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("watcher start failed", "dirs", roots, "error", err)
		return
	}
	logger.Info("watching directories", "dirs", roots)

	go func() {
		for path := range evCh {
			r, err := ingestor.IngestPath(ctx, path, "")
			if err != nil {
				logger.Warn("watch ingest failed", "path", path, "error", err)
				continue
			}
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				_ = queue.Enqueue(ctx, async.Job{FileID: fileUUID})
			}
		}
	}()
	go func() {
		for err := range errCh {
			logger.Warn("watcher error", "error", err)
		}
	}()
}
