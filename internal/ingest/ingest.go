package ingest

import (
	"context"
	"time"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath   string
	FileID       string
	Deduplicated bool
	HashHex      string
	FileExt      string
	DocType      string
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the service depends on. docType is an optional
// hint ("BID"/"CONTRACT" or a synonym); when empty the filename decides and
// parsing settles the true type from content later.
type Ingestor interface {
	// IngestPath registers a single document.
	IngestPath(ctx context.Context, path, docType string) (IngestionResult, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, root, docType string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
