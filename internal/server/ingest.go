package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/gemdocs/procurement-tracker/constants"
	v1 "github.com/gemdocs/procurement-tracker/gen/proto/procurement/v1"
	"github.com/gemdocs/procurement-tracker/internal/async"
	"github.com/gemdocs/procurement-tracker/internal/ingest"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	queue    async.Queue
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue async.Queue, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor: ing,
		queue:    queue,
		logger:   logger,
	}
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	docType, err := validDocTypeHint(req.GetDocType())
	if err != nil {
		s.logger.Error("invalid doc_type for ingest", "doc_type", req.GetDocType())
		return nil, err
	}

	s.logger.Info("starting file ingest", "path", path, "doc_type", docType)
	r, err := s.ingestor.IngestPath(ctx, path, docType)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResult(r)
	if req.GetProcess() && shouldProcess(r, req.GetSkipDuplicates()) {
		if fileUUID, err := uuid.Parse(r.FileID); err == nil {
			if qErr := s.queue.Enqueue(ctx, async.Job{FileID: fileUUID}); qErr != nil {
				s.logger.Error("enqueue failed", "file_id", r.FileID, "err", qErr)
				resp.Error = qErr.Error()
			}
		}
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	docType, err := validDocTypeHint(req.GetDocType())
	if err != nil {
		s.logger.Error("invalid doc_type for ingest directory", "doc_type", req.GetDocType())
		return nil, err
	}
	skipHidden := !req.GetIncludeHidden()

	s.logger.Info("starting directory ingest", "root", root, "doc_type", docType, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, docType, skipHidden)
	if err != nil {
		// file errors are already logged per-entry in the ingest layer
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "root", root, "scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := toPBIngestResult(r)
		if req.GetProcess() && r.Err == "" && shouldProcess(r, req.GetSkipDuplicates()) {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				if qErr := s.queue.Enqueue(ctx, async.Job{FileID: fileUUID}); qErr != nil {
					s.logger.Error("enqueue failed", "file_id", r.FileID, "err", qErr)
					item.Error = qErr.Error()
				}
			}
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

// validDocTypeHint accepts an empty hint or anything CanonicalizeDocType
// understands, returning the canonical form.
func validDocTypeHint(hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return "", nil
	}
	dt, ok := constants.CanonicalizeDocType(hint)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "doc_type %q is not BID, CONTRACT or a known synonym", hint)
	}
	return string(dt), nil
}

func shouldProcess(r ingest.IngestionResult, skipDuplicates bool) bool {
	if r.FileID == "" {
		return false
	}
	return !(r.Deduplicated && skipDuplicates)
}

func toPBIngestResult(r ingest.IngestionResult) *v1.IngestResponse {
	resp := &v1.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		DocType:        r.DocType,
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
	if !r.UploadedAt.IsZero() {
		resp.UploadedAt = r.UploadedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
