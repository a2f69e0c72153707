package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/gen/ent"
	"github.com/gemdocs/procurement-tracker/internal/embed"
	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/extract"
	"github.com/gemdocs/procurement-tracker/internal/repository"
)

// ErrUnknownDocType marks files whose content and name both failed to
// identify the document family.
var ErrUnknownDocType = errors.New("cannot tell bid from contract")

// ParseStage turns a job's stored text into structured rows. Extraction is
// best effort: a document only fails when its natural key is missing.
type ParseStage struct {
	Jobs      repository.ExtractJobRepository
	Files     repository.SourceFileRepository
	Contracts repository.ContractRepository
	Bids      repository.BidRepository
	Embedder  embed.Embedder // nil disables vectors; reindex backfills later
	Logger    *slog.Logger
}

func NewParseStage(jobs repository.ExtractJobRepository, files repository.SourceFileRepository, contracts repository.ContractRepository, bids repository.BidRepository, embedder embed.Embedder, logger *slog.Logger) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{Jobs: jobs, Files: files, Contracts: contracts, Bids: bids, Embedder: embedder, Logger: logger}
}

// Run executes the parse stage for a job in TEXT_OK.
// Effects: writes doc_type, extracted_json and needs_review on the job,
// upserts the contract or bid row and links the job to it.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, file, err := p.Jobs.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusTextOK) || job.RawText == nil || *job.RawText == "" {
		return job.ID, fmt.Errorf("job %s not ready for parse", job.ID)
	}
	text := *job.RawText

	switch extract.DetectDocType(text, file.Filename) {
	case constants.DocTypeContract:
		err = p.parseContract(ctx, job.ID, file, text)
	case constants.DocTypeBid:
		err = p.parseBid(ctx, job.ID, file, text)
	default:
		_ = p.Jobs.FinishFailure(ctx, job.ID, ErrUnknownDocType.Error())
		err = fmt.Errorf("%s: %w", file.Filename, ErrUnknownDocType)
	}
	return job.ID, err
}

func (p *ParseStage) parseContract(ctx context.Context, jobID uuid.UUID, file *ent.SourceFile, text string) error {
	fields := extract.ExtractContract(text)
	if fields.ContractNo == "" {
		msg := "no contract number found"
		_ = p.Jobs.FinishFailure(ctx, jobID, msg)
		return fmt.Errorf("%s: %s", file.Filename, msg)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	needsReview := false
	if err := extract.ValidateAgainstSchema(extract.BuildContractJSONSchema(), raw); err != nil {
		p.Logger.Warn("contract fields failed validation", "job_id", jobID, "error", err)
		needsReview = true
	}
	if fields.GeneratedDate == "" || fields.Organisation.Ministry == "" || len(fields.Products) == 0 {
		needsReview = true
	}

	contract, deduplicated, err := p.Contracts.UpsertFromFields(ctx, &repository.SaveContractRequest{
		JobID:   jobID,
		Fields:  fields,
		RawText: text,
	})
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, jobID, err.Error())
		return fmt.Errorf("save contract: %w", err)
	}
	if err := p.Jobs.SetContractID(ctx, jobID, contract.ID); err != nil {
		return err
	}
	if file.DocType != string(constants.DocTypeContract) {
		_ = p.Files.SetDocType(ctx, file.ID, string(constants.DocTypeContract))
	}
	if err := p.Jobs.FinishParseOK(ctx, jobID, string(constants.DocTypeContract), raw, needsReview); err != nil {
		return err
	}
	if !deduplicated {
		p.embedContract(ctx, contract.ID, fields.ContractNo)
	}

	p.Logger.Info("contract parsed",
		"job_id", jobID, "contract_no", fields.ContractNo,
		"deduplicated", deduplicated, "needs_review", needsReview,
	)
	return nil
}

// embedContract computes and stores the contract's vector. Failures only
// log: rows persist without vectors and reindex backfills them later.
func (p *ParseStage) embedContract(ctx context.Context, id uuid.UUID, contractNo string) {
	if p.Embedder == nil {
		return
	}
	rec, err := p.Contracts.GetByContractNo(ctx, contractNo)
	if err != nil {
		p.Logger.Warn("embedding skipped: reload contract", "contract_no", contractNo, "error", err)
		return
	}
	text := embed.ContractEmbeddingText(rec)
	if text == "" {
		return
	}
	vec, err := p.Embedder.EmbedText(ctx, text)
	if err != nil {
		p.Logger.Warn("embedding skipped", "contract_no", contractNo, "error", err)
		return
	}
	if err := p.Contracts.UpdateEmbedding(ctx, id, embed.Normalize(vec)); err != nil {
		p.Logger.Warn("store embedding failed", "contract_no", contractNo, "error", err)
	}
}

func (p *ParseStage) parseBid(ctx context.Context, jobID uuid.UUID, file *ent.SourceFile, text string) error {
	fields := extract.ExtractBid(text)
	if fields.BidNumber == "" {
		msg := "no bid number found"
		_ = p.Jobs.FinishFailure(ctx, jobID, msg)
		return fmt.Errorf("%s: %s", file.Filename, msg)
	}
	// The extractor only sees text; the originating filename is job context.
	fields.SourceFile = file.Filename

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	needsReview := false
	if err := extract.ValidateAgainstSchema(extract.BuildBidJSONSchema(), raw); err != nil {
		p.Logger.Warn("bid fields failed validation", "job_id", jobID, "error", err)
		needsReview = true
	}
	if fields.Dated == "" || fields.ItemCategory == "" {
		needsReview = true
	}

	bid, deduplicated, err := p.Bids.UpsertFromFields(ctx, &repository.SaveBidRequest{
		JobID:   jobID,
		Fields:  fields,
		RawText: text,
	})
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, jobID, err.Error())
		return fmt.Errorf("save bid: %w", err)
	}
	if err := p.Jobs.SetBidID(ctx, jobID, bid.ID); err != nil {
		return err
	}
	if file.DocType != string(constants.DocTypeBid) {
		_ = p.Files.SetDocType(ctx, file.ID, string(constants.DocTypeBid))
	}
	if err := p.Jobs.FinishParseOK(ctx, jobID, string(constants.DocTypeBid), raw, needsReview); err != nil {
		return err
	}
	if !deduplicated {
		p.embedBid(ctx, bid)
	}

	p.Logger.Info("bid parsed",
		"job_id", jobID, "bid_number", fields.BidNumber,
		"deduplicated", deduplicated, "needs_review", needsReview,
	)
	return nil
}

func (p *ParseStage) embedBid(ctx context.Context, bid *entity.Bid) {
	if p.Embedder == nil {
		return
	}
	text := embed.BidEmbeddingText(bid)
	if text == "" {
		return
	}
	vec, err := p.Embedder.EmbedText(ctx, text)
	if err != nil {
		p.Logger.Warn("embedding skipped", "bid_number", bid.BidNumber, "error", err)
		return
	}
	if err := p.Bids.UpdateEmbedding(ctx, bid.ID, embed.Normalize(vec)); err != nil {
		p.Logger.Warn("store embedding failed", "bid_number", bid.BidNumber, "error", err)
	}
}
