package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/internal/pdftext"
	"github.com/gemdocs/procurement-tracker/internal/repository"
	"github.com/gemdocs/procurement-tracker/internal/textclean"
)

// TextStage starts an extract job for a stored file, pulls the PDF text
// layer and persists the cleaned text on the job.
type TextStage struct {
	Files     repository.SourceFileRepository
	Jobs      repository.ExtractJobRepository
	Extractor pdftext.Extractor
	Logger    *slog.Logger
}

func NewTextStage(files repository.SourceFileRepository, jobs repository.ExtractJobRepository, extractor pdftext.Extractor, logger *slog.Logger) *TextStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextStage{Files: files, Jobs: jobs, Extractor: extractor, Logger: logger}
}

// Run starts an extract_job, extracts the text layer and persists the
// cleaned text (TEXT_OK). Returns the job ID and the extraction summary.
func (p *TextStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, pdftext.TextExtractionResult, error) {
	row, err := p.Files.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, pdftext.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, pdftext.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.Jobs.Start(ctx, row.ID, format, string(constants.JobStatusRunning))
	if err != nil {
		return uuid.Nil, pdftext.TextExtractionResult{}, err
	}

	res, err := p.Extractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	// Cleaning happens here, once, so parsing, embeddings and the stored
	// raw_text all see the same text.
	cleaned := textclean.CleanText(res.Text)
	if cleaned == "" {
		err := fmt.Errorf("%s: no usable text after cleaning", row.Filename)
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if err := p.Jobs.FinishTextOK(ctx, job.ID, cleaned, res.Method); err != nil {
		return job.ID, res, err
	}
	return job.ID, res, nil
}
