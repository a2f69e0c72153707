package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gemdocs/procurement-tracker/gen/ent"
	entfile "github.com/gemdocs/procurement-tracker/gen/ent/sourcefile"
)

type SourceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceFile, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.SourceFile, error)
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, docType string, uploadedAt time.Time) (*ent.SourceFile, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, docType string, uploadedAt time.Time) (*ent.SourceFile, bool, error)
	SetDocType(ctx context.Context, id uuid.UUID, docType string) error
}

type sourceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSourceFileRepository(entc *ent.Client, logger *slog.Logger) SourceFileRepository {
	return &sourceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *sourceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.SourceFile, error) {
	return r.ent.SourceFile.Get(ctx, id)
}

func (r *sourceFileRepo) GetByHash(ctx context.Context, hash []byte) (*ent.SourceFile, error) {
	row, err := r.ent.SourceFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *sourceFileRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, docType string, uploadedAt time.Time) (*ent.SourceFile, error) {
	row, err := r.ent.SourceFile.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetDocType(docType).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create source file", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash dedupes on file content: the same bytes ingest once no matter
// how often or from where they are re-submitted.
func (r *sourceFileRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, docType string, uploadedAt time.Time) (*ent.SourceFile, bool, error) {
	if existing, err := r.GetByHash(ctx, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, sourcePath, filename, ext, size, hash, docType, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert source file by hash", "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

// SetDocType records the resolved document type once the parse stage has
// settled it from content.
func (r *sourceFileRepo) SetDocType(ctx context.Context, id uuid.UUID, docType string) error {
	err := r.ent.SourceFile.UpdateOneID(id).SetDocType(docType).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set doc type", "file_id", id, "doc_type", docType, "error", err)
	}
	return err
}
