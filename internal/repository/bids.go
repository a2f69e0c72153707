package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gemdocs/procurement-tracker/gen/ent"
	entbid "github.com/gemdocs/procurement-tracker/gen/ent/bid"
	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/extract"
	"github.com/gemdocs/procurement-tracker/internal/utils"
)

// SaveBidRequest wraps parameters for persisting an extracted bid.
type SaveBidRequest struct {
	JobID   uuid.UUID
	Fields  extract.BidFields
	RawText string
}

// BidVector is the slice of a bid row the vector index needs.
type BidVector struct {
	ID        uuid.UUID
	BidNumber string
	Vector    []float32
}

type BidRepository interface {
	GetByBidNumber(ctx context.Context, bidNumber string) (*entity.Bid, error)
	List(ctx context.Context, fromDate, toDate *time.Time, limit, offset int) ([]*entity.Bid, error)
	// UpsertFromFields creates the bid row. A bid_number already on file is
	// returned as-is with deduplicated=true; nothing is overwritten.
	UpsertFromFields(ctx context.Context, request *SaveBidRequest) (*entity.Bid, bool, error)
	SearchKeyword(ctx context.Context, term string, limit int) ([]*entity.Bid, error)
	ListForEmbedding(ctx context.Context, limit int) ([]*entity.Bid, error)
	UpdateEmbedding(ctx context.Context, id uuid.UUID, vector []float32) error
	Vectors(ctx context.Context) ([]BidVector, error)
}

type bidRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBidRepository(client *ent.Client, logger *slog.Logger) BidRepository {
	return &bidRepository{
		client: client,
		logger: logger,
	}
}

func (r *bidRepository) GetByBidNumber(ctx context.Context, bidNumber string) (*entity.Bid, error) {
	row, err := r.client.Bid.Query().
		Where(entbid.BidNumber(bidNumber)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToBid(row), nil
}

func (r *bidRepository) List(ctx context.Context, fromDate, toDate *time.Time, limit, offset int) ([]*entity.Bid, error) {
	q := r.client.Bid.Query()
	if fromDate != nil {
		q = q.Where(entbid.DatedGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entbid.DatedLTE(*toDate))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(entbid.ByDated(), entbid.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list bids", "error", err)
		return nil, err
	}

	result := make([]*entity.Bid, len(rows))
	for i, row := range rows {
		result[i] = utils.ToBid(row)
	}
	return result, nil
}

func (r *bidRepository) UpsertFromFields(ctx context.Context, request *SaveBidRequest) (*entity.Bid, bool, error) {
	f := request.Fields
	if f.BidNumber == "" {
		return nil, false, fmt.Errorf("bid number is empty")
	}
	bidNumber := clip(f.BidNumber, 128)

	if existing, err := r.client.Bid.Query().
		Where(entbid.BidNumber(bidNumber)).
		Only(ctx); err == nil {
		r.logger.Info("bid already on file, skipping",
			"bid_number", bidNumber, "bid_id", existing.ID, "job_id", request.JobID)
		return utils.ToBid(existing), true, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, err
	}

	builder := r.client.Bid.Create().
		SetBidNumber(bidNumber).
		SetBeneficiary(clip(f.Beneficiary, 255)).
		SetMinistry(clip(f.Ministry, 255)).
		SetDepartment(clip(f.Department, 255)).
		SetOrganisation(clip(f.Organisation, 255)).
		SetOfficeName(clip(f.OfficeName, 255)).
		SetItemCategory(f.ItemCategory).
		SetContractPeriod(clip(f.ContractPeriod, 255)).
		SetTotalQuantity(clip(f.TotalQuantity, 64)).
		SetEstimatedBidValue(clip(f.EstimatedBidValue, 64)).
		SetSimilarCategory(f.SimilarCategory).
		SetMseExemption(clip(f.MSEExemption, 10)).
		SetStartupExemption(clip(f.StartupExemption, 10)).
		SetMsePurchasePreference(clip(f.MSEPurchasePreference, 64)).
		SetMiiPurchasePreference(clip(f.MIIPurchasePreference, 64)).
		SetEvaluationMethod(clip(f.EvaluationMethod, 128)).
		SetInspectionRequired(clip(f.InspectionRequired, 10)).
		SetPrimaryProductCategory(clip(f.PrimaryProductCategory, 255)).
		SetDeliveryAddress(f.DeliveryAddress).
		SetScopeOfSupply(f.ScopeOfSupply).
		SetOptionClause(f.OptionClause).
		SetSourceFile(clip(f.SourceFile, 255)).
		SetRawText(request.RawText)
	if t, err := utils.ParseYMD(f.Dated); err == nil {
		builder = builder.SetDated(t)
	}
	if t, ok := extract.ParseDateTime(f.BidEndDatetime); ok {
		builder = builder.SetBidEndDatetime(t)
	}
	if t, ok := extract.ParseDateTime(f.BidOpenDatetime); ok {
		builder = builder.SetBidOpenDatetime(t)
	}
	if f.BidOfferValidityDays > 0 {
		builder = builder.SetBidOfferValidityDays(f.BidOfferValidityDays)
	}
	if f.DeliveryDays > 0 {
		builder = builder.SetDeliveryDays(f.DeliveryDays)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save bid", "bid_number", bidNumber, "job_id", request.JobID, "error", err)
		return nil, false, err
	}

	r.logger.Info("bid saved", "bid_number", bidNumber, "bid_id", row.ID, "job_id", request.JobID)
	return utils.ToBid(row), false, nil
}

func (r *bidRepository) SearchKeyword(ctx context.Context, term string, limit int) ([]*entity.Bid, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.client.Bid.Query().
		Where(entbid.Or(
			entbid.BidNumberContainsFold(term),
			entbid.MinistryContainsFold(term),
			entbid.DepartmentContainsFold(term),
			entbid.OrganisationContainsFold(term),
			entbid.OfficeNameContainsFold(term),
			entbid.ItemCategoryContainsFold(term),
			entbid.SimilarCategoryContainsFold(term),
			entbid.PrimaryProductCategoryContainsFold(term),
			entbid.DeliveryAddressContainsFold(term),
		)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("bid keyword search failed", "term", term, "error", err)
		return nil, err
	}

	result := make([]*entity.Bid, len(rows))
	for i, row := range rows {
		result[i] = utils.ToBid(row)
	}
	return result, nil
}

func (r *bidRepository) ListForEmbedding(ctx context.Context, limit int) ([]*entity.Bid, error) {
	q := r.client.Bid.Query().
		Where(entbid.EmbeddingIsNil()).
		Order(entbid.ByCreatedAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list bids for embedding", "error", err)
		return nil, err
	}

	result := make([]*entity.Bid, len(rows))
	for i, row := range rows {
		result[i] = utils.ToBid(row)
	}
	return result, nil
}

func (r *bidRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, vector []float32) error {
	err := r.client.Bid.UpdateOneID(id).SetEmbedding(vector).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to store bid embedding", "bid_id", id, "error", err)
	}
	return err
}

// Vectors returns every stored bid embedding for index rebuilds.
func (r *bidRepository) Vectors(ctx context.Context) ([]BidVector, error) {
	rows, err := r.client.Bid.Query().
		Where(entbid.EmbeddingNotNil()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load bid vectors", "error", err)
		return nil, err
	}
	vectors := make([]BidVector, 0, len(rows))
	for _, row := range rows {
		if len(row.Embedding) == 0 {
			continue
		}
		vectors = append(vectors, BidVector{ID: row.ID, BidNumber: row.BidNumber, Vector: row.Embedding})
	}
	return vectors, nil
}
