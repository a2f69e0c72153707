package repository

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/gen/ent"
	"github.com/gemdocs/procurement-tracker/internal/extract"
)

// openTestClient opens an in-memory SQLite database named after the test,
// so parallel tests never share state through the shared cache.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	// the in-memory database vanishes when its last connection closes
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(context.Background()))

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleContractFields(contractNo string) extract.ContractFields {
	return extract.ContractFields{
		ContractNo:    contractNo,
		GeneratedDate: "2025-06-09",
		Organisation: extract.OrganisationFields{
			Type:             "Central Government",
			Ministry:         "Ministry of Defence",
			Department:       "Department of Military Affairs",
			OrganisationName: "Indian Army",
			OfficeZone:       "Northern Command",
		},
		Buyer: extract.BuyerFields{
			Designation: "Commanding Officer",
			Email:       "buyer-no1.army@gembuyer.in",
			GSTIN:       "06AAAGM0289C1ZL",
			Address:     "Palam, New Delhi - 110010",
		},
		Financial: extract.FinancialFields{
			AdminDesignation:     "CO",
			FinancialDesignation: "CO",
		},
		Paying: extract.PayingFields{
			Role:        "PAO",
			PaymentMode: "Offline",
			Designation: "PCDA New Delhi",
		},
		Seller: extract.SellerFields{
			GemSellerID:      "D8BC190B",
			CompanyName:      "RADIANT POLYMERS",
			Email:            "sales@radiantpolymers.example",
			GSTIN:            "09AAACR4549R1Z6",
			Address:          "Tallital, Nainital, Uttarakhand-263002",
			MSMERegistration: "UDYAM-UK-06-0001234",
		},
		Products: []extract.ProductFields{{
			ProductName:     "Polypropylene Rope 12mm",
			Brand:           "GeM Generic",
			OrderedQuantity: "520",
			Unit:            "pieces",
			UnitPrice:       "399",
			TotalPrice:      "207480",
		}},
		Consignees: []extract.ConsigneeFields{{
			SNo:           1,
			Designation:   "Store Officer",
			Quantity:      520,
			DeliveryStart: "2025-06-19",
			DeliveryEnd:   "2025-07-24",
			DeliveryTo:    "Leh",
		}},
		Specifications: []extract.SpecificationFields{{
			Category: "Material",
			SubSpec:  "Rope material",
			Value:    "Polypropylene",
		}},
		EPBG: "Advisory Bank: State Bank of India",
		Terms: []string{
			"Delivery period shall be strictly observed.",
			"Payment terms as per GeM GTC.",
		},
	}
}

func TestContractUpsertCreatesFullRecord(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, testLogger())
	ctx := context.Background()

	row, deduplicated, err := repo.UpsertFromFields(ctx, &SaveContractRequest{
		JobID:   uuid.New(),
		Fields:  sampleContractFields("GEMC-511687712345678"),
		RawText: "Contract No: GEMC-511687712345678",
	})
	require.NoError(t, err)
	assert.False(t, deduplicated)
	assert.Equal(t, "GEMC-511687712345678", row.ContractNo)
	require.NotNil(t, row.GeneratedDate)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), row.GeneratedDate.UTC())

	rec, err := repo.GetByContractNo(ctx, "GEMC-511687712345678")
	require.NoError(t, err)
	assert.Equal(t, row.ID, rec.Contract.ID)

	require.NotNil(t, rec.Organisation)
	assert.Equal(t, "Ministry of Defence", rec.Organisation.Ministry)
	assert.Equal(t, "Indian Army", rec.Organisation.OrganisationName)

	require.NotNil(t, rec.Buyer)
	assert.Equal(t, "buyer-no1.army@gembuyer.in", rec.Buyer.Email)

	require.NotNil(t, rec.FinancialApproval)
	assert.False(t, rec.FinancialApproval.IFDConcurrence)
	assert.Equal(t, "CO", rec.FinancialApproval.AdminApprovalDesignation)

	require.NotNil(t, rec.PayingAuthority)
	assert.Equal(t, "Offline", rec.PayingAuthority.PaymentMode)

	require.NotNil(t, rec.Seller)
	assert.Equal(t, "RADIANT POLYMERS", rec.Seller.CompanyName)
	assert.Equal(t, "UDYAM-UK-06-0001234", rec.Seller.MSMERegistrationNumber)

	assert.Equal(t, "Advisory Bank: State Bank of India", rec.EPBGDetail)

	require.Len(t, rec.Products, 1)
	product := rec.Products[0]
	assert.Equal(t, "Polypropylene Rope 12mm", product.ProductName)
	assert.Equal(t, "399", product.UnitPrice)

	require.Len(t, product.Consignees, 1)
	consignee := product.Consignees[0]
	assert.Equal(t, "Leh", consignee.DeliveryTo)
	require.NotNil(t, consignee.Quantity)
	assert.Equal(t, 520, *consignee.Quantity)
	require.NotNil(t, consignee.DeliveryStart)
	assert.Equal(t, time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), consignee.DeliveryStart.UTC())

	require.Len(t, product.Specifications, 1)
	assert.Equal(t, "Polypropylene", product.Specifications[0].Value)

	assert.Equal(t, []string{
		"Delivery period shall be strictly observed.",
		"Payment terms as per GeM GTC.",
	}, rec.Terms)
}

func TestContractUpsertDeduplicates(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, testLogger())
	ctx := context.Background()

	first, deduplicated, err := repo.UpsertFromFields(ctx, &SaveContractRequest{
		JobID:  uuid.New(),
		Fields: sampleContractFields("GEMC-511687700000001"),
	})
	require.NoError(t, err)
	require.False(t, deduplicated)

	// a re-ingested duplicate arrives with different extraction noise; the
	// row on file wins and nothing is rewritten
	replay := sampleContractFields("GEMC-511687700000001")
	replay.Organisation.Ministry = "Ministry of Railways"
	replay.Terms = nil

	second, deduplicated, err := repo.UpsertFromFields(ctx, &SaveContractRequest{
		JobID:  uuid.New(),
		Fields: replay,
	})
	require.NoError(t, err)
	assert.True(t, deduplicated)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Contract.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	orgCount, err := client.OrganisationDetail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, orgCount)

	rec, err := repo.GetByContractNo(ctx, "GEMC-511687700000001")
	require.NoError(t, err)
	assert.Equal(t, "Ministry of Defence", rec.Organisation.Ministry)
	assert.Len(t, rec.Terms, 2)
}

func TestContractUpsertRequiresNumber(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, testLogger())

	fields := sampleContractFields("")
	row, deduplicated, err := repo.UpsertFromFields(context.Background(), &SaveContractRequest{
		JobID:  uuid.New(),
		Fields: fields,
	})
	require.EqualError(t, err, "contract number is empty")
	assert.Nil(t, row)
	assert.False(t, deduplicated)
}

func TestContractUpsertClipsLongNumber(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, testLogger())
	ctx := context.Background()

	long := "GEMC-" + strings.Repeat("7", 70)
	row, _, err := repo.UpsertFromFields(ctx, &SaveContractRequest{
		JobID:  uuid.New(),
		Fields: sampleContractFields(long),
	})
	require.NoError(t, err)
	assert.Len(t, row.ContractNo, 64)
	assert.Equal(t, long[:64], row.ContractNo)

	// the clipped form is the stored natural key
	_, err = repo.GetByContractNo(ctx, long[:64])
	require.NoError(t, err)
}

func TestContractKeywordSearch(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, testLogger())
	ctx := context.Background()

	army := sampleContractFields("GEMC-511687700000010")
	_, _, err := repo.UpsertFromFields(ctx, &SaveContractRequest{JobID: uuid.New(), Fields: army})
	require.NoError(t, err)

	rail := sampleContractFields("GEMC-511687700000011")
	rail.Organisation.Ministry = "Ministry of Railways"
	rail.Organisation.OrganisationName = "Northern Railway"
	rail.Products[0].ProductName = "Laptop 14 inch"
	_, _, err = repo.UpsertFromFields(ctx, &SaveContractRequest{JobID: uuid.New(), Fields: rail})
	require.NoError(t, err)

	hits, err := repo.SearchKeyword(ctx, "defence", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "GEMC-511687700000010", hits[0].Contract.ContractNo)

	hits, err = repo.SearchKeyword(ctx, "laptop", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "GEMC-511687700000011", hits[0].Contract.ContractNo)

	hits, err = repo.SearchKeyword(ctx, "ministry", 0)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestContractEmbeddingLifecycle(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, testLogger())
	ctx := context.Background()

	row, _, err := repo.UpsertFromFields(ctx, &SaveContractRequest{
		JobID:  uuid.New(),
		Fields: sampleContractFields("GEMC-511687700000020"),
	})
	require.NoError(t, err)

	pending, err := repo.ListForEmbedding(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, row.ID, pending[0].Contract.ID)
	require.NotNil(t, pending[0].Organisation)

	vector := []float32{0.5, 0.25, -1}
	require.NoError(t, repo.UpdateEmbedding(ctx, row.ID, vector))

	pending, err = repo.ListForEmbedding(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, pending)

	vectors, err := repo.Vectors(ctx)
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	assert.Equal(t, row.ID, vectors[0].ID)
	assert.Equal(t, "GEMC-511687700000020", vectors[0].ContractNo)
	assert.Equal(t, vector, vectors[0].Vector)
}

func TestProductEmbeddingLifecycle(t *testing.T) {
	client := openTestClient(t)
	repo := NewContractRepository(client, testLogger())
	ctx := context.Background()

	_, _, err := repo.UpsertFromFields(ctx, &SaveContractRequest{
		JobID:  uuid.New(),
		Fields: sampleContractFields("GEMC-511687700000021"),
	})
	require.NoError(t, err)

	pending, err := repo.ListProductsForEmbedding(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Polypropylene Rope 12mm", pending[0].ProductName)

	require.NoError(t, repo.UpdateProductEmbedding(ctx, pending[0].ID, []float32{1, 0}))

	pending, err = repo.ListProductsForEmbedding(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, pending)

	vectors, err := repo.ProductVectors(ctx)
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	assert.Equal(t, "Polypropylene Rope 12mm", vectors[0].Name)
}

func sampleBidFields(bidNumber string) extract.BidFields {
	return extract.BidFields{
		BidNumber:            bidNumber,
		Dated:                "2025-05-12",
		Ministry:             "Ministry of Defence",
		Department:           "Department of Military Affairs",
		Organisation:         "Indian Army",
		ItemCategory:         "Polypropylene Rope",
		BidEndDatetime:       "09-06-2025 15:00:00",
		BidOfferValidityDays: 90,
		DeliveryDays:         35,
		TotalQuantity:        "520",
		EstimatedBidValue:    "2,07,480",
		MSEExemption:         "No",
	}
}

func TestBidUpsertRoundTrip(t *testing.T) {
	client := openTestClient(t)
	repo := NewBidRepository(client, testLogger())
	ctx := context.Background()

	row, deduplicated, err := repo.UpsertFromFields(ctx, &SaveBidRequest{
		JobID:   uuid.New(),
		Fields:  sampleBidFields("GEM/2025/B/6276976"),
		RawText: "Bid Number: GEM/2025/B/6276976",
	})
	require.NoError(t, err)
	assert.False(t, deduplicated)
	assert.Equal(t, "GEM/2025/B/6276976", row.BidNumber)

	got, err := repo.GetByBidNumber(ctx, "GEM/2025/B/6276976")
	require.NoError(t, err)
	assert.Equal(t, row.ID, got.ID)
	assert.Equal(t, "Polypropylene Rope", got.ItemCategory)
	assert.Equal(t, "2,07,480", got.EstimatedBidValue)

	require.NotNil(t, got.Dated)
	assert.Equal(t, time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), got.Dated.UTC())
	require.NotNil(t, got.BidEndDatetime)
	assert.Equal(t, time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC), got.BidEndDatetime.UTC())
	require.NotNil(t, got.BidOfferValidityDays)
	assert.Equal(t, 90, *got.BidOfferValidityDays)
	require.NotNil(t, got.DeliveryDays)
	assert.Equal(t, 35, *got.DeliveryDays)
}

func TestBidUpsertDeduplicates(t *testing.T) {
	client := openTestClient(t)
	repo := NewBidRepository(client, testLogger())
	ctx := context.Background()

	first, _, err := repo.UpsertFromFields(ctx, &SaveBidRequest{
		JobID:  uuid.New(),
		Fields: sampleBidFields("GEM/2025/B/6100001"),
	})
	require.NoError(t, err)

	replay := sampleBidFields("GEM/2025/B/6100001")
	replay.Ministry = "Ministry of Railways"

	second, deduplicated, err := repo.UpsertFromFields(ctx, &SaveBidRequest{
		JobID:  uuid.New(),
		Fields: replay,
	})
	require.NoError(t, err)
	assert.True(t, deduplicated)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Bid.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repo.GetByBidNumber(ctx, "GEM/2025/B/6100001")
	require.NoError(t, err)
	assert.Equal(t, "Ministry of Defence", got.Ministry)
}

func TestBidUpsertRequiresNumber(t *testing.T) {
	client := openTestClient(t)
	repo := NewBidRepository(client, testLogger())

	row, deduplicated, err := repo.UpsertFromFields(context.Background(), &SaveBidRequest{
		JobID:  uuid.New(),
		Fields: extract.BidFields{Ministry: "Ministry of Defence"},
	})
	require.EqualError(t, err, "bid number is empty")
	assert.Nil(t, row)
	assert.False(t, deduplicated)
}

func TestBidKeywordSearch(t *testing.T) {
	client := openTestClient(t)
	repo := NewBidRepository(client, testLogger())
	ctx := context.Background()

	_, _, err := repo.UpsertFromFields(ctx, &SaveBidRequest{
		JobID:  uuid.New(),
		Fields: sampleBidFields("GEM/2025/B/6276976"),
	})
	require.NoError(t, err)

	other := sampleBidFields("GEM/2025/B/6300000")
	other.Ministry = "Ministry of Railways"
	other.ItemCategory = "Laptop - Notebook"
	_, _, err = repo.UpsertFromFields(ctx, &SaveBidRequest{JobID: uuid.New(), Fields: other})
	require.NoError(t, err)

	hits, err := repo.SearchKeyword(ctx, "rope", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "GEM/2025/B/6276976", hits[0].BidNumber)

	hits, err = repo.SearchKeyword(ctx, "6300000", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "GEM/2025/B/6300000", hits[0].BidNumber)
}

func TestBidEmbeddingLifecycle(t *testing.T) {
	client := openTestClient(t)
	repo := NewBidRepository(client, testLogger())
	ctx := context.Background()

	row, _, err := repo.UpsertFromFields(ctx, &SaveBidRequest{
		JobID:  uuid.New(),
		Fields: sampleBidFields("GEM/2025/B/6276999"),
	})
	require.NoError(t, err)

	pending, err := repo.ListForEmbedding(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, repo.UpdateEmbedding(ctx, row.ID, []float32{0.5, -0.5}))

	pending, err = repo.ListForEmbedding(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, pending)

	vectors, err := repo.Vectors(ctx)
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	assert.Equal(t, "GEM/2025/B/6276999", vectors[0].BidNumber)
	assert.Equal(t, []float32{0.5, -0.5}, vectors[0].Vector)
}

func TestSourceFileUpsertByHash(t *testing.T) {
	client := openTestClient(t)
	repo := NewSourceFileRepository(client, testLogger())
	ctx := context.Background()

	hash := []byte(strings.Repeat("a1", 16))
	uploaded := time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC)

	first, deduplicated, err := repo.UpsertByHash(ctx, "/in/contract.pdf", "contract.pdf", ".pdf", 2048,
		hash, string(constants.DocTypeContract), uploaded)
	require.NoError(t, err)
	assert.False(t, deduplicated)

	// same bytes under another path resolve to the row on file
	second, deduplicated, err := repo.UpsertByHash(ctx, "/backup/copy.pdf", "copy.pdf", ".pdf", 2048,
		hash, string(constants.DocTypeContract), uploaded.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, deduplicated)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "/in/contract.pdf", second.SourcePath)

	otherHash := []byte(strings.Repeat("b2", 16))
	third, deduplicated, err := repo.UpsertByHash(ctx, "/in/bid.pdf", "bid.pdf", ".pdf", 512,
		otherHash, string(constants.DocTypeUnknown), uploaded)
	require.NoError(t, err)
	assert.False(t, deduplicated)
	assert.NotEqual(t, first.ID, third.ID)

	count, err := client.SourceFile.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.SetDocType(ctx, third.ID, string(constants.DocTypeBid)))
	got, err := repo.GetByID(ctx, third.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocTypeBid), got.DocType)
}

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"under limit", "GEMC-1234", 64, "GEMC-1234"},
		{"at limit", "abcd", 4, "abcd"},
		{"ascii clipped", "abcdef", 4, "abcd"},
		{"rune boundary respected", "अबक", 4, "अ"},
		{"multibyte at limit", "अब", 6, "अब"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, clip(tc.in, tc.max))
		})
	}
}
