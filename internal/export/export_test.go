package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gemdocs/procurement-tracker/internal/embed/mock"
	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/repository"
	"github.com/gemdocs/procurement-tracker/internal/search"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRecord() *entity.ContractRecord {
	gen := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	ds := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	de := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	sno, qty := 1, 400
	return &entity.ContractRecord{
		Contract: entity.Contract{
			ID:            uuid.New(),
			ContractNo:    "GEMC-511687790000002",
			GeneratedDate: &gen,
		},
		Organisation: &entity.OrganisationDetail{
			Type:             "Central Government",
			Ministry:         "Ministry of Defence",
			Department:       "Department of Military Affairs",
			OrganisationName: "Indian Army",
			OfficeZone:       "Northern Command",
		},
		Buyer: &entity.BuyerDetail{
			Designation: "Commandant",
			ContactNo:   "011-23792438",
			Email:       "buyer.army@gembuyer.in",
			GSTIN:       "07AAAGM0289C1ZL",
			Address:     "Ordnance Depot, Delhi Cantt",
		},
		FinancialApproval: &entity.FinancialApproval{
			AdminApprovalDesignation:     "Commandant",
			FinancialApprovalDesignation: "CDA",
		},
		PayingAuthority: &entity.PayingAuthority{
			Role:        "PAO",
			PaymentMode: "Offline",
			Designation: "Controller of Defence Accounts",
		},
		Seller: &entity.SellerDetail{
			GeMSellerID: "S1C8A0978",
			CompanyName: "SOBBY INDUSTRIES",
			Email:       "sobby@example.in",
			GSTIN:       "09ABCFS1234A1Z5",
			Address:     "Kanpur, Uttar Pradesh",
		},
		EPBGDetail: "Advisory Bank: State Bank of India, ePBG Percentage(%): 5.00",
		Products: []entity.Product{{
			ProductName:          "Strobel Cloth",
			Brand:                "SOBBY",
			BrandType:            "Registered",
			CatalogueStatus:      "OEM verified catalogue",
			SellingAs:            "OEM",
			CategoryNameQuadrant: "Q2",
			Model:                "SC-115",
			HSNCode:              "6006",
			OrderedQuantity:      "400",
			Unit:                 "meter",
			UnitPrice:            "285.00",
			TotalPrice:           "114000.00",
			Specifications: []entity.ProductSpecification{
				{Category: "Material", SubSpec: "Fabric Type", Value: "Knitted"},
			},
			Consignees: []entity.ConsigneeDetail{{
				SNo:           &sno,
				Designation:   "Depot Officer",
				Email:         "consignee@army.in",
				Quantity:      &qty,
				DeliveryStart: &ds,
				DeliveryEnd:   &de,
				DeliveryTo:    "Ordnance Depot",
			}},
		}},
		Terms: []string{
			"Delivery period shall be strictly adhered to.",
			"Payment within 10 days of CRAC.",
		},
	}
}

func sampleBid() *entity.Bid {
	dated := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC)
	validity, delivery := 120, 90
	return &entity.Bid{
		ID:                     uuid.New(),
		BidNumber:              "GEM/2025/B/6171152",
		Dated:                  &dated,
		Beneficiary:            "Indian Army",
		Ministry:               "Ministry of Defence",
		Department:             "Department of Military Affairs",
		Organisation:           "Indian Army",
		OfficeName:             "HQ Northern Command",
		ItemCategory:           "Strobel Cloth (Q3)",
		BidEndDatetime:         &end,
		BidOfferValidityDays:   &validity,
		DeliveryDays:           &delivery,
		TotalQuantity:          "400",
		EstimatedBidValue:      "114000",
		EvaluationMethod:       "Total value wise evaluation",
		InspectionRequired:     "No",
		PrimaryProductCategory: "Strobel Cloth",
		DeliveryAddress:        "Ordnance Depot, Delhi Cantt",
		ScopeOfSupply:          "Supply of strobel cloth as per specification.",
		SourceFile:             "GeM-Bidding-6171152.pdf",
	}
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "GEM_2025_B_6171152", SafeFilename("GEM/2025/B/6171152"))
	assert.Equal(t, "GEMC-511687790000002", SafeFilename("GEMC-511687790000002"))
	assert.Equal(t, "draft", SafeFilename("  (draft) "))
	assert.Equal(t, "export", SafeFilename("///"))
	assert.Equal(t, "export", SafeFilename(""))
}

func TestSafeSheetName(t *testing.T) {
	assert.Equal(t, "Financial Approval", SafeSheetName("Financial Approval"))
	assert.Equal(t, "A B C", SafeSheetName("A/B:C"))
	assert.Equal(t, "Sheet", SafeSheetName("[]"))

	long := SafeSheetName("Specifications of the quadrant two product")
	assert.LessOrEqual(t, len(long), 31)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "a", truncate("abcdef", 1))
	assert.Equal(t, "abcdef", truncate("abcdef", 0))
}

func openWorkbook(t *testing.T, out []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	require.NoError(t, err)
	return v
}

func TestContractWorkbookLayout(t *testing.T) {
	rec := sampleRecord()
	f, err := buildContractWorkbook(rec)
	require.NoError(t, err)
	out, err := finalize(f, "Contract")
	require.NoError(t, err)

	wb := openWorkbook(t, out)
	assert.Equal(t, []string{
		"Contract", "Organisation", "Buyer", "Financial Approval",
		"Paying Authority", "Seller", "Products", "Specifications",
		"Consignees", "ePBG", "Terms",
	}, wb.GetSheetList())

	assert.Equal(t, "Contract No", cell(t, wb, "Contract", "A2"))
	assert.Equal(t, "GEMC-511687790000002", cell(t, wb, "Contract", "B2"))
	assert.Equal(t, "2025-06-10", cell(t, wb, "Contract", "B3"))
	assert.Equal(t, "Ministry of Defence", cell(t, wb, "Organisation", "B3"))
	assert.Equal(t, "SOBBY INDUSTRIES", cell(t, wb, "Seller", "B3"))
	assert.Equal(t, "Strobel Cloth", cell(t, wb, "Products", "B2"))
	assert.Equal(t, "6006", cell(t, wb, "Products", "I2"))
	assert.Equal(t, "Fabric Type", cell(t, wb, "Specifications", "C2"))
	assert.Equal(t, "2025-06-20", cell(t, wb, "Consignees", "J2"))
	assert.Equal(t, "Payment within 10 days of CRAC.", cell(t, wb, "Terms", "B3"))
}

func TestContractWorkbookHandlesMissingBlocks(t *testing.T) {
	rec := &entity.ContractRecord{
		Contract: entity.Contract{ContractNo: "GEMC-THIN"},
	}
	f, err := buildContractWorkbook(rec)
	require.NoError(t, err)
	out, err := finalize(f, "Contract")
	require.NoError(t, err)

	wb := openWorkbook(t, out)
	assert.Len(t, wb.GetSheetList(), 11)
	assert.Equal(t, "GEMC-THIN", cell(t, wb, "Contract", "B2"))
	assert.Equal(t, "", cell(t, wb, "Organisation", "B3"))
}

func TestBidWorkbookPairs(t *testing.T) {
	b := sampleBid()
	f, err := buildBidWorkbook(b)
	require.NoError(t, err)
	out, err := finalize(f, "Bid")
	require.NoError(t, err)

	wb := openWorkbook(t, out)
	assert.Equal(t, []string{"Bid"}, wb.GetSheetList())
	assert.Equal(t, "Bid Number", cell(t, wb, "Bid", "A2"))
	assert.Equal(t, "GEM/2025/B/6171152", cell(t, wb, "Bid", "B2"))
	assert.Equal(t, "2025-05-12", cell(t, wb, "Bid", "B3"))
	assert.Equal(t, "2025-06-12 15:00:00", cell(t, wb, "Bid", "B11"))
}

func TestContractsSheetRows(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, writeContractsSheet(f, []*entity.ContractRecord{sampleRecord()}))
	out, err := finalize(f, "Contracts")
	require.NoError(t, err)

	wb := openWorkbook(t, out)
	assert.Equal(t, "Contract No", cell(t, wb, "Contracts", "A1"))
	assert.Equal(t, "GEMC-511687790000002", cell(t, wb, "Contracts", "A2"))
	assert.Equal(t, "Strobel Cloth", cell(t, wb, "Contracts", "K2"))
	assert.Equal(t, "285.00", cell(t, wb, "Contracts", "M2"))
}

func TestReportWorkbookSummary(t *testing.T) {
	results := &search.KeywordResults{
		Contracts: []*entity.ContractRecord{sampleRecord()},
		Bids:      []*entity.Bid{sampleBid()},
	}
	f, err := buildReportWorkbook([]string{"Army", "Defence"}, 5, results)
	require.NoError(t, err)
	out, err := finalize(f, "Summary")
	require.NoError(t, err)

	wb := openWorkbook(t, out)
	assert.Equal(t, []string{"Summary", "Contracts", "Bids"}, wb.GetSheetList())
	assert.Equal(t, "Army, Defence", cell(t, wb, "Summary", "B3"))
	assert.Equal(t, "5", cell(t, wb, "Summary", "B4"))
	assert.Equal(t, "1", cell(t, wb, "Summary", "B5"))
	assert.Equal(t, "1", cell(t, wb, "Summary", "B6"))
	assert.Equal(t, "GEM/2025/B/6171152", cell(t, wb, "Bids", "A2"))
}

type stubContractRepo struct {
	rec      *entity.ContractRecord
	terms    []string
	from, to *time.Time
}

func (s *stubContractRepo) GetByContractNo(_ context.Context, contractNo string) (*entity.ContractRecord, error) {
	if s.rec == nil || s.rec.Contract.ContractNo != contractNo {
		return nil, fmt.Errorf("contract %s not found", contractNo)
	}
	return s.rec, nil
}

func (s *stubContractRepo) List(context.Context, *time.Time, *time.Time, int, int) ([]*entity.Contract, error) {
	return nil, nil
}

func (s *stubContractRepo) ListRecords(_ context.Context, from, to *time.Time, _, _ int) ([]*entity.ContractRecord, error) {
	s.from, s.to = from, to
	if s.rec == nil {
		return nil, nil
	}
	return []*entity.ContractRecord{s.rec}, nil
}

func (s *stubContractRepo) UpsertFromFields(context.Context, *repository.SaveContractRequest) (*entity.Contract, bool, error) {
	return nil, false, nil
}

func (s *stubContractRepo) SearchKeyword(_ context.Context, term string, _ int) ([]*entity.ContractRecord, error) {
	s.terms = append(s.terms, term)
	if s.rec == nil {
		return nil, nil
	}
	return []*entity.ContractRecord{s.rec}, nil
}

func (s *stubContractRepo) ListForEmbedding(context.Context, int) ([]*entity.ContractRecord, error) {
	return nil, nil
}

func (s *stubContractRepo) UpdateEmbedding(context.Context, uuid.UUID, []float32) error {
	return nil
}

func (s *stubContractRepo) Vectors(context.Context) ([]repository.ContractVector, error) {
	return nil, nil
}

func (s *stubContractRepo) ListProductsForEmbedding(context.Context, int) ([]entity.Product, error) {
	return nil, nil
}

func (s *stubContractRepo) UpdateProductEmbedding(context.Context, uuid.UUID, []float32) error {
	return nil
}

func (s *stubContractRepo) ProductVectors(context.Context) ([]repository.ProductVector, error) {
	return nil, nil
}

type stubBidRepo struct {
	bid      *entity.Bid
	from, to *time.Time
}

func (s *stubBidRepo) GetByBidNumber(_ context.Context, bidNumber string) (*entity.Bid, error) {
	if s.bid == nil || s.bid.BidNumber != bidNumber {
		return nil, fmt.Errorf("bid %s not found", bidNumber)
	}
	return s.bid, nil
}

func (s *stubBidRepo) List(_ context.Context, from, to *time.Time, _, _ int) ([]*entity.Bid, error) {
	s.from, s.to = from, to
	if s.bid == nil {
		return nil, nil
	}
	return []*entity.Bid{s.bid}, nil
}

func (s *stubBidRepo) UpsertFromFields(context.Context, *repository.SaveBidRequest) (*entity.Bid, bool, error) {
	return nil, false, nil
}

func (s *stubBidRepo) SearchKeyword(context.Context, string, int) ([]*entity.Bid, error) {
	if s.bid == nil {
		return nil, nil
	}
	return []*entity.Bid{s.bid}, nil
}

func (s *stubBidRepo) ListForEmbedding(context.Context, int) ([]*entity.Bid, error) {
	return nil, nil
}

func (s *stubBidRepo) UpdateEmbedding(context.Context, uuid.UUID, []float32) error {
	return nil
}

func (s *stubBidRepo) Vectors(context.Context) ([]repository.BidVector, error) {
	return nil, nil
}

func newTestService(contracts *stubContractRepo, bids *stubBidRepo) *Service {
	searcher := search.NewService(contracts, bids, mock.NewEmbedder(), testLogger())
	return NewService(contracts, bids, searcher, testLogger())
}

func TestServiceContractXLSX(t *testing.T) {
	svc := newTestService(&stubContractRepo{rec: sampleRecord()}, &stubBidRepo{})

	out, err := svc.ContractXLSX(context.Background(), "GEMC-511687790000002")
	require.NoError(t, err)

	wb := openWorkbook(t, out)
	assert.Equal(t, "GEMC-511687790000002", cell(t, wb, "Contract", "B2"))

	_, err = svc.ContractXLSX(context.Background(), "GEMC-MISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load contract")
}

func TestServiceBidsXLSXClosesOpenWindow(t *testing.T) {
	bids := &stubBidRepo{bid: sampleBid()}
	svc := newTestService(&stubContractRepo{}, bids)

	from := time.Date(2025, 5, 1, 13, 45, 0, 0, time.Local)
	out, err := svc.BidsXLSX(context.Background(), &from, nil, 0, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	require.NotNil(t, bids.from)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), *bids.from)
	require.NotNil(t, bids.to, "open upper bound should close at today")
	assert.Equal(t, time.UTC, bids.to.Location())
}

func TestServiceContractJSON(t *testing.T) {
	svc := newTestService(&stubContractRepo{rec: sampleRecord()}, &stubBidRepo{})

	out, err := svc.ContractJSON(context.Background(), "GEMC-511687790000002")
	require.NoError(t, err)
	assert.Contains(t, string(out), `"contract_no": "GEMC-511687790000002"`)
	assert.Contains(t, string(out), `"product_name": "Strobel Cloth"`)
}

func TestServiceFilteredReportDefaults(t *testing.T) {
	contracts := &stubContractRepo{rec: sampleRecord()}
	svc := newTestService(contracts, &stubBidRepo{bid: sampleBid()})

	out, err := svc.FilteredReportXLSX(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultReportKeywords, contracts.terms)

	wb := openWorkbook(t, out)
	assert.Equal(t, "1", cell(t, wb, "Summary", "B5"))
	assert.Equal(t, "1", cell(t, wb, "Summary", "B6"))
}
