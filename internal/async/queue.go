// Package async decouples ingestion from extraction: gRPC handlers enqueue
// stored file IDs and a fixed worker set drains them through the pipeline.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job identifies one stored file awaiting text extraction and parsing.
// Whether a deduplicated file is enqueued at all is the caller's decision;
// the queue itself reprocesses whatever it is handed.
type Job struct {
	FileID      uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
