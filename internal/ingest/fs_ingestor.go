package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/internal/repository"
)

// FSIngestor reads from the local filesystem. Files are identified by their
// SHA-256 content hash, so re-downloading the same contract under a new name
// never creates a second row.
type FSIngestor struct {
	Files       repository.SourceFileRepository
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	Logger      *slog.Logger
}

func NewFSIngestor(files repository.SourceFileRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{Files: files, Logger: logger}
}

func (i *FSIngestor) allowed(ext string) bool {
	if i.AllowedExts != nil {
		_, ok := i.AllowedExts[constants.NormalizeExt(ext)]
		return ok
	}
	return AllowedExt(ext)
}

func (i *FSIngestor) IngestPath(ctx context.Context, path, docType string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowed(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, fmt.Errorf("open: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			i.Logger.Warn("close file", "path", abs, "error", err)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return out, fmt.Errorf("stat: %w", err)
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return out, fmt.Errorf("hash: %w", err)
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	filename := filepath.Base(abs)
	// An explicit hint wins; otherwise the filename gives a first guess and
	// parsing settles the type from content.
	dt, ok := constants.CanonicalizeDocType(docType)
	if !ok {
		dt = constants.DetectDocTypeFromName(filename)
	}

	row, dedup, err := i.Files.UpsertByHash(ctx, abs, filename, ext, int(st.Size()), sum, string(dt), now)
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		DocType:      row.DocType,
		UploadedAt:   row.UploadedAt,
	}
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	root, docType string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !i.allowed(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path, docType)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
