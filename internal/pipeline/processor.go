package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

// Processor chains the text and parse stages for one file.
type Processor struct {
	Logger *slog.Logger
	Text   *TextStage
	Parse  *ParseStage
}

func NewProcessor(text *TextStage, parse *ParseStage, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse}
}

// ProcessFile runs text extraction then parsing for a stored file.
// Returns the job ID created by the text stage.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	jobID, res, err := p.Text.Run(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.text.failed", "file_id", fileID, "error", err)
		return jobID, err
	}
	p.Logger.Info("processor.text.ok",
		"file_id", fileID, "job_id", jobID,
		"method", res.Method, "pages", res.Pages,
	)

	if _, err := p.Parse.Run(ctx, jobID); err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "error", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID)
	return jobID, nil
}

// BatchStats summarizes one ProcessBatch run. Deduplicated counts files the
// caller recognized as already-ingested content; ProcessBatch itself only
// fills Processed and Failed.
type BatchStats struct {
	Processed    int
	Failed       int
	Deduplicated int
}

// ProcessBatch runs ProcessFile for every ID over a bounded worker pool.
// A cancelled context stops submission; already-submitted files finish.
func (p *Processor) ProcessBatch(ctx context.Context, fileIDs []uuid.UUID, workers int) (BatchStats, error) {
	if workers < 1 {
		workers = runtime.NumCPU() / 2
		if workers < 1 {
			workers = 1
		}
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return BatchStats{}, fmt.Errorf("worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		stats BatchStats
	)
	for _, id := range fileIDs {
		if ctx.Err() != nil {
			break
		}
		fileID := id
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			_, err := p.ProcessFile(ctx, fileID)
			mu.Lock()
			if err != nil {
				stats.Failed++
			} else {
				stats.Processed++
			}
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			stats.Failed++
			mu.Unlock()
			p.Logger.Error("batch submit failed", "file_id", fileID, "error", submitErr)
		}
	}
	wg.Wait()

	p.Logger.Info("batch processed",
		"files", len(fileIDs), "workers", workers,
		"processed", stats.Processed, "failed", stats.Failed,
	)
	return stats, ctx.Err()
}
