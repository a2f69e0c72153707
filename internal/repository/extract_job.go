package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/gen/ent"
	entjob "github.com/gemdocs/procurement-tracker/gen/ent/extractjob"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format, status string) (*ent.ExtractJob, error)
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.SourceFile, error)
	FinishTextOK(ctx context.Context, jobID uuid.UUID, rawText, method string) error
	FinishParseOK(ctx context.Context, jobID uuid.UUID, docType string, extracted json.RawMessage, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	SetContractID(ctx context.Context, jobID, contractID uuid.UUID) error
	SetBidID(ctx context.Context, jobID, bidID uuid.UUID) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format, status string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.SourceFile, error) {
	job, err := r.ent.ExtractJob.Query().
		Where(entjob.ID(jobID)).
		WithFile().
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}
	return job, job.Edges.File, nil
}

func (r *extractJobRepo) FinishTextOK(ctx context.Context, jobID uuid.UUID, rawText, method string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetRawText(rawText).
		SetMethod(method).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished stage 1 (TEXT_OK)", "job_id", jobID, "method", method, "bytes", len(rawText))
	return nil
}

func (r *extractJobRepo) FinishParseOK(ctx context.Context, jobID uuid.UUID, docType string, extracted json.RawMessage, needsReview bool) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetDocType(docType).
		SetExtractedJSON(extracted).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSE_OK)", "job_id", jobID, "doc_type", docType, "needs_review", needsReview)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) SetContractID(ctx context.Context, jobID, contractID uuid.UUID) error {
	err := r.ent.ExtractJob.UpdateOneID(jobID).SetContractID(contractID).Exec(ctx)
	if err != nil {
		r.log.Error("extract_job link to contract failed", "job_id", jobID, "contract_id", contractID, "err", err)
	}
	return err
}

func (r *extractJobRepo) SetBidID(ctx context.Context, jobID, bidID uuid.UUID) error {
	err := r.ent.ExtractJob.UpdateOneID(jobID).SetBidID(bidID).Exec(ctx)
	if err != nil {
		r.log.Error("extract_job link to bid failed", "job_id", jobID, "bid_id", bidID, "err", err)
	}
	return err
}
