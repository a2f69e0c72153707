package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/gemdocs/procurement-tracker/gen/ent"
	entbuyer "github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	entcontract "github.com/gemdocs/procurement-tracker/gen/ent/contract"
	entorg "github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	entproduct "github.com/gemdocs/procurement-tracker/gen/ent/product"
	entseller "github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/extract"
	"github.com/gemdocs/procurement-tracker/internal/utils"
)

// SaveContractRequest wraps parameters for persisting an extracted contract.
type SaveContractRequest struct {
	JobID   uuid.UUID
	Fields  extract.ContractFields
	RawText string
}

// ContractVector is the slice of a contract row the vector index needs.
type ContractVector struct {
	ID         uuid.UUID
	ContractNo string
	Vector     []float32
}

// ProductVector is the slice of a product row the vector index needs.
type ProductVector struct {
	ID     uuid.UUID
	Name   string
	Vector []float32
}

type ContractRepository interface {
	GetByContractNo(ctx context.Context, contractNo string) (*entity.ContractRecord, error)
	List(ctx context.Context, fromDate, toDate *time.Time, limit, offset int) ([]*entity.Contract, error)
	ListRecords(ctx context.Context, fromDate, toDate *time.Time, limit, offset int) ([]*entity.ContractRecord, error)
	// UpsertFromFields creates the contract and its satellite rows in one
	// transaction. A contract_no already on file is returned as-is with
	// deduplicated=true; nothing is overwritten.
	UpsertFromFields(ctx context.Context, request *SaveContractRequest) (*entity.Contract, bool, error)
	SearchKeyword(ctx context.Context, term string, limit int) ([]*entity.ContractRecord, error)
	ListForEmbedding(ctx context.Context, limit int) ([]*entity.ContractRecord, error)
	UpdateEmbedding(ctx context.Context, id uuid.UUID, vector []float32) error
	Vectors(ctx context.Context) ([]ContractVector, error)
	ListProductsForEmbedding(ctx context.Context, limit int) ([]entity.Product, error)
	UpdateProductEmbedding(ctx context.Context, id uuid.UUID, vector []float32) error
	ProductVectors(ctx context.Context) ([]ProductVector, error)
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{
		client: client,
		logger: logger,
	}
}

func (r *contractRepository) GetByContractNo(ctx context.Context, contractNo string) (*entity.ContractRecord, error) {
	row, err := r.recordQuery().
		Where(entcontract.ContractNo(contractNo)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToContractRecord(row), nil
}

func (r *contractRepository) List(ctx context.Context, fromDate, toDate *time.Time, limit, offset int) ([]*entity.Contract, error) {
	q := r.client.Contract.Query()
	if fromDate != nil {
		q = q.Where(entcontract.GeneratedDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entcontract.GeneratedDateLTE(*toDate))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(entcontract.ByGeneratedDate(), entcontract.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts", "error", err)
		return nil, err
	}

	result := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContract(row)
	}
	return result, nil
}

// ListRecords is List with every satellite block attached, for exports.
func (r *contractRepository) ListRecords(ctx context.Context, fromDate, toDate *time.Time, limit, offset int) ([]*entity.ContractRecord, error) {
	q := r.recordQuery()
	if fromDate != nil {
		q = q.Where(entcontract.GeneratedDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entcontract.GeneratedDateLTE(*toDate))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	rows, err := q.Order(entcontract.ByGeneratedDate(), entcontract.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list contract records", "error", err)
		return nil, err
	}

	result := make([]*entity.ContractRecord, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContractRecord(row)
	}
	return result, nil
}

func (r *contractRepository) UpsertFromFields(ctx context.Context, request *SaveContractRequest) (*entity.Contract, bool, error) {
	f := request.Fields
	if f.ContractNo == "" {
		return nil, false, fmt.Errorf("contract number is empty")
	}
	contractNo := clip(f.ContractNo, 64)

	if existing, err := r.client.Contract.Query().
		Where(entcontract.ContractNo(contractNo)).
		Only(ctx); err == nil {
		r.logger.Info("contract already on file, skipping",
			"contract_no", contractNo, "contract_id", existing.ID, "job_id", request.JobID)
		return utils.ToContract(existing), true, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin transaction: %w", err)
	}
	row, err := r.createRecord(ctx, tx, contractNo, request)
	if err != nil {
		r.logger.Error("failed to save contract", "contract_no", contractNo, "job_id", request.JobID, "error", err)
		return nil, false, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit transaction: %w", err)
	}

	r.logger.Info("contract saved",
		"contract_no", contractNo, "contract_id", row.ID,
		"products", len(f.Products), "terms", len(f.Terms), "job_id", request.JobID)
	return utils.ToContract(row), false, nil
}

// createRecord writes the contract header and every satellite block. The
// five 1:1 blocks are always created, mirroring the document template;
// products, terms and the ePBG block only when extracted.
func (r *contractRepository) createRecord(ctx context.Context, tx *ent.Tx, contractNo string, request *SaveContractRequest) (*ent.Contract, error) {
	f := request.Fields

	builder := tx.Contract.Create().
		SetContractNo(contractNo).
		SetRawText(request.RawText)
	if t, err := utils.ParseYMD(f.GeneratedDate); err == nil {
		builder = builder.SetGeneratedDate(t)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create contract: %w", err)
	}

	_, err = tx.OrganisationDetail.Create().
		SetContractID(row.ID).
		SetType(clip(f.Organisation.Type, 128)).
		SetMinistry(clip(f.Organisation.Ministry, 256)).
		SetDepartment(clip(f.Organisation.Department, 256)).
		SetOrganisationName(clip(f.Organisation.OrganisationName, 256)).
		SetOfficeZone(clip(f.Organisation.OfficeZone, 256)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create organisation detail: %w", err)
	}

	_, err = tx.BuyerDetail.Create().
		SetContractID(row.ID).
		SetDesignation(clip(f.Buyer.Designation, 128)).
		SetContactNo(clip(f.Buyer.ContactNo, 30)).
		SetEmail(clip(f.Buyer.Email, 254)).
		SetGstin(clip(f.Buyer.GSTIN, 32)).
		SetAddress(f.Buyer.Address).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create buyer detail: %w", err)
	}

	_, err = tx.FinancialApproval.Create().
		SetContractID(row.ID).
		SetIfdConcurrence(f.Financial.IFDConcurrence).
		SetAdminApprovalDesignation(clip(f.Financial.AdminDesignation, 256)).
		SetFinancialApprovalDesignation(clip(f.Financial.FinancialDesignation, 256)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create financial approval: %w", err)
	}

	_, err = tx.PayingAuthority.Create().
		SetContractID(row.ID).
		SetRole(clip(f.Paying.Role, 128)).
		SetPaymentMode(clip(f.Paying.PaymentMode, 128)).
		SetDesignation(clip(f.Paying.Designation, 128)).
		SetEmail(clip(f.Paying.Email, 254)).
		SetGstin(clip(f.Paying.GSTIN, 32)).
		SetAddress(f.Paying.Address).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create paying authority: %w", err)
	}

	_, err = tx.SellerDetail.Create().
		SetContractID(row.ID).
		SetGemSellerID(clip(f.Seller.GemSellerID, 64)).
		SetCompanyName(clip(f.Seller.CompanyName, 256)).
		SetContactNo(clip(f.Seller.ContactNo, 30)).
		SetEmail(clip(f.Seller.Email, 254)).
		SetAddress(f.Seller.Address).
		SetMsmeRegistrationNumber(clip(f.Seller.MSMERegistration, 64)).
		SetGstin(clip(f.Seller.GSTIN, 32)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create seller detail: %w", err)
	}

	if f.EPBG != "" {
		_, err = tx.EPBGDetail.Create().
			SetContractID(row.ID).
			SetDetail(f.EPBG).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create epbg detail: %w", err)
		}
	}

	var firstProduct *ent.Product
	for _, p := range f.Products {
		if p.ProductName == "" {
			r.logger.Warn("skipping product without a name", "contract_no", contractNo)
			continue
		}
		prod, err := tx.Product.Create().
			SetContractID(row.ID).
			SetProductName(clip(p.ProductName, 512)).
			SetBrand(clip(p.Brand, 256)).
			SetBrandType(clip(p.BrandType, 128)).
			SetCatalogueStatus(clip(p.CatalogueStatus, 256)).
			SetSellingAs(clip(p.SellingAs, 256)).
			SetCategoryNameQuadrant(clip(p.CategoryQuadrant, 256)).
			SetModel(clip(p.Model, 256)).
			SetHsnCode(clip(p.HSNCode, 64)).
			SetOrderedQuantity(clip(p.OrderedQuantity, 64)).
			SetUnit(clip(p.Unit, 64)).
			SetUnitPrice(clip(p.UnitPrice, 64)).
			SetTaxBifurcation(clip(p.TaxBifurcation, 64)).
			SetTotalPrice(clip(p.TotalPrice, 64)).
			SetNote(p.Note).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create product: %w", err)
		}
		if firstProduct == nil {
			firstProduct = prod
		}
	}

	// the extractor reports consignees and specification rows per document;
	// relationally they hang off the first (usually only) product line
	if firstProduct != nil {
		for _, c := range f.Consignees {
			builder := tx.ConsigneeDetail.Create().
				SetProductID(firstProduct.ID).
				SetDesignation(clip(c.Designation, 128)).
				SetEmail(clip(c.Email, 254)).
				SetContact(clip(c.Contact, 30)).
				SetGstin(clip(c.GSTIN, 32)).
				SetAddress(c.Address).
				SetLotNo(clip(c.LotNo, 128)).
				SetDeliveryTo(clip(c.DeliveryTo, 256))
			if c.SNo > 0 {
				builder = builder.SetSNo(c.SNo)
			}
			if c.Quantity > 0 {
				builder = builder.SetQuantity(c.Quantity)
			}
			if t, err := utils.ParseYMD(c.DeliveryStart); err == nil {
				builder = builder.SetDeliveryStart(t)
			}
			if t, err := utils.ParseYMD(c.DeliveryEnd); err == nil {
				builder = builder.SetDeliveryEnd(t)
			}
			if _, err := builder.Save(ctx); err != nil {
				return nil, fmt.Errorf("create consignee detail: %w", err)
			}
		}
		for _, s := range f.Specifications {
			_, err := tx.ProductSpecification.Create().
				SetProductID(firstProduct.ID).
				SetCategory(clip(s.Category, 128)).
				SetSubSpec(clip(s.SubSpec, 256)).
				SetValue(clip(s.Value, 512)).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("create product specification: %w", err)
			}
		}
	} else if len(f.Consignees) > 0 || len(f.Specifications) > 0 {
		r.logger.Warn("dropping consignee/specification rows without a product line",
			"contract_no", contractNo, "consignees", len(f.Consignees), "specifications", len(f.Specifications))
	}

	for _, clause := range f.Terms {
		if clause == "" {
			continue
		}
		_, err := tx.TermsAndCondition.Create().
			SetContractID(row.ID).
			SetClauseText(clause).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create terms clause: %w", err)
		}
	}

	return row, nil
}

func (r *contractRepository) SearchKeyword(ctx context.Context, term string, limit int) ([]*entity.ContractRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.recordQuery().
		Where(entcontract.Or(
			entcontract.ContractNoContainsFold(term),
			entcontract.HasOrganisationWith(entorg.Or(
				entorg.MinistryContainsFold(term),
				entorg.DepartmentContainsFold(term),
				entorg.OrganisationNameContainsFold(term),
				entorg.OfficeZoneContainsFold(term),
			)),
			entcontract.HasBuyerWith(entbuyer.Or(
				entbuyer.DesignationContainsFold(term),
				entbuyer.EmailContainsFold(term),
				entbuyer.AddressContainsFold(term),
			)),
			entcontract.HasSellerWith(entseller.Or(
				entseller.CompanyNameContainsFold(term),
				entseller.GstinContainsFold(term),
				entseller.AddressContainsFold(term),
			)),
			entcontract.HasProductsWith(entproduct.Or(
				entproduct.ProductNameContainsFold(term),
				entproduct.BrandContainsFold(term),
				entproduct.HsnCodeContainsFold(term),
			)),
		)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("contract keyword search failed", "term", term, "error", err)
		return nil, err
	}

	result := make([]*entity.ContractRecord, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContractRecord(row)
	}
	return result, nil
}

// ListForEmbedding returns contracts with no embedding yet, with the blocks
// the embedding text is composed from.
func (r *contractRepository) ListForEmbedding(ctx context.Context, limit int) ([]*entity.ContractRecord, error) {
	q := r.client.Contract.Query().
		Where(entcontract.EmbeddingIsNil()).
		WithOrganisation().
		WithBuyer().
		WithSeller().
		WithProducts().
		Order(entcontract.ByCreatedAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts for embedding", "error", err)
		return nil, err
	}

	result := make([]*entity.ContractRecord, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContractRecord(row)
	}
	return result, nil
}

func (r *contractRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, vector []float32) error {
	err := r.client.Contract.UpdateOneID(id).SetEmbedding(vector).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to store contract embedding", "contract_id", id, "error", err)
	}
	return err
}

// Vectors returns every stored contract embedding for index rebuilds.
func (r *contractRepository) Vectors(ctx context.Context) ([]ContractVector, error) {
	rows, err := r.client.Contract.Query().
		Where(entcontract.EmbeddingNotNil()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load contract vectors", "error", err)
		return nil, err
	}
	vectors := make([]ContractVector, 0, len(rows))
	for _, row := range rows {
		if len(row.Embedding) == 0 {
			continue
		}
		vectors = append(vectors, ContractVector{ID: row.ID, ContractNo: row.ContractNo, Vector: row.Embedding})
	}
	return vectors, nil
}

func (r *contractRepository) ListProductsForEmbedding(ctx context.Context, limit int) ([]entity.Product, error) {
	q := r.client.Product.Query().
		Where(entproduct.EmbeddingIsNil()).
		Order(entproduct.ByCreatedAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list products for embedding", "error", err)
		return nil, err
	}

	result := make([]entity.Product, len(rows))
	for i, row := range rows {
		result[i] = utils.ToProduct(row)
	}
	return result, nil
}

func (r *contractRepository) UpdateProductEmbedding(ctx context.Context, id uuid.UUID, vector []float32) error {
	err := r.client.Product.UpdateOneID(id).SetEmbedding(vector).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to store product embedding", "product_id", id, "error", err)
	}
	return err
}

func (r *contractRepository) ProductVectors(ctx context.Context) ([]ProductVector, error) {
	rows, err := r.client.Product.Query().
		Where(entproduct.EmbeddingNotNil()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load product vectors", "error", err)
		return nil, err
	}
	vectors := make([]ProductVector, 0, len(rows))
	for _, row := range rows {
		if len(row.Embedding) == 0 {
			continue
		}
		vectors = append(vectors, ProductVector{ID: row.ID, Name: row.ProductName, Vector: row.Embedding})
	}
	return vectors, nil
}

func (r *contractRepository) recordQuery() *ent.ContractQuery {
	return r.client.Contract.Query().
		WithOrganisation().
		WithBuyer().
		WithFinancialApproval().
		WithPayingAuthority().
		WithSeller().
		WithEpbg().
		WithProducts(func(q *ent.ProductQuery) {
			q.WithSpecifications().WithConsignees()
		}).
		WithTerms()
}

// clip bounds a value to a column's byte limit without splitting a rune.
// Validators reject over-long values outright; extracted text should
// degrade instead.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// rollback reports err with any rollback failure attached.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
	}
	return err
}
