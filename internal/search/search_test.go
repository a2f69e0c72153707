package search

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemdocs/procurement-tracker/internal/embed/mock"
	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIndexSearchRanking(t *testing.T) {
	ix := NewIndex()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	ix.Replace([]Entry{
		{ID: a, Kind: KindContract, Ref: "GEMC-1", Vec: []float32{1, 0}},
		{ID: b, Kind: KindProduct, Ref: "cloth", Vec: []float32{0.6, 0.8}},
		{ID: c, Kind: KindBid, Ref: "GEM/B/1", Vec: []float32{0, 1}},
	})

	hits := ix.Search([]float32{1, 0}, 2)
	require.Len(t, hits, 2)
	assert.Equal(t, a, hits[0].ID)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-6)
	assert.Equal(t, b, hits[1].ID)
	assert.InDelta(t, 0.6, hits[1].Score, 1e-6)
}

func TestIndexSearchKindFilter(t *testing.T) {
	ix := NewIndex()
	bidID := uuid.New()
	ix.Add(
		Entry{ID: uuid.New(), Kind: KindContract, Ref: "GEMC-1", Vec: []float32{1, 0}},
		Entry{ID: bidID, Kind: KindBid, Ref: "GEM/B/1", Vec: []float32{0.5, 0}},
	)

	hits := ix.Search([]float32{1, 0}, 10, KindBid)
	require.Len(t, hits, 1)
	assert.Equal(t, bidID, hits[0].ID)
}

func TestIndexSearchTopKDefaults(t *testing.T) {
	ix := NewIndex()
	for i := 0; i < 15; i++ {
		ix.Add(Entry{ID: uuid.New(), Kind: KindContract, Ref: "x", Vec: []float32{1}})
	}

	assert.Len(t, ix.Search([]float32{1}, 0), 10)
	assert.Len(t, ix.Search([]float32{1}, 100), 15)
	assert.Equal(t, 15, ix.Len())
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"India Army", "HQ", "Defence"}, ParseKeywords("India Army, HQ , ,Defence"))
	assert.Nil(t, ParseKeywords(" , "))
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind(" Contract ")
	assert.True(t, ok)
	assert.Equal(t, KindContract, k)

	k, ok = ParseKind("")
	assert.True(t, ok)
	assert.Equal(t, Kind(""), k)

	_, ok = ParseKind("invoice")
	assert.False(t, ok)
}

func TestContractCompleteness(t *testing.T) {
	date := time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC)
	rec := &entity.ContractRecord{
		Contract: entity.Contract{ContractNo: "GEMC-1", GeneratedDate: &date},
		Organisation: &entity.OrganisationDetail{
			Ministry:   "Ministry of Defence",
			Department: "Department of Military Affairs",
		},
		Seller:   &entity.SellerDetail{CompanyName: "SOBBY INDUSTRIES"},
		Products: []entity.Product{{ProductName: "Strobel Cloth"}},
	}
	assert.Equal(t, 6, ContractCompleteness(rec))

	thin := &entity.ContractRecord{Contract: entity.Contract{ContractNo: "GEMC-2"}}
	assert.Equal(t, 1, ContractCompleteness(thin))
}

func TestBidCompleteness(t *testing.T) {
	dated := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)
	b := &entity.Bid{
		BidNumber:    "GEM/2025/B/6171152",
		Dated:        &dated,
		Ministry:     "Ministry Of Defence",
		ItemCategory: "strobel cloth",
	}
	assert.Equal(t, 4, BidCompleteness(b))
}

type stubContracts struct {
	byKeyword map[string][]*entity.ContractRecord
	vecs      []repository.ContractVector
	prodVecs  []repository.ProductVector
}

func (s *stubContracts) SearchKeyword(_ context.Context, term string, _ int) ([]*entity.ContractRecord, error) {
	return s.byKeyword[term], nil
}

func (s *stubContracts) Vectors(context.Context) ([]repository.ContractVector, error) {
	return s.vecs, nil
}

func (s *stubContracts) ProductVectors(context.Context) ([]repository.ProductVector, error) {
	return s.prodVecs, nil
}

func (s *stubContracts) GetByContractNo(context.Context, string) (*entity.ContractRecord, error) {
	return nil, nil
}

func (s *stubContracts) List(context.Context, *time.Time, *time.Time, int, int) ([]*entity.Contract, error) {
	return nil, nil
}

func (s *stubContracts) ListRecords(context.Context, *time.Time, *time.Time, int, int) ([]*entity.ContractRecord, error) {
	return nil, nil
}

func (s *stubContracts) UpsertFromFields(context.Context, *repository.SaveContractRequest) (*entity.Contract, bool, error) {
	return nil, false, nil
}

func (s *stubContracts) ListForEmbedding(context.Context, int) ([]*entity.ContractRecord, error) {
	return nil, nil
}

func (s *stubContracts) UpdateEmbedding(context.Context, uuid.UUID, []float32) error { return nil }

func (s *stubContracts) ListProductsForEmbedding(context.Context, int) ([]entity.Product, error) {
	return nil, nil
}

func (s *stubContracts) UpdateProductEmbedding(context.Context, uuid.UUID, []float32) error {
	return nil
}

type stubBids struct {
	byKeyword map[string][]*entity.Bid
	vecs      []repository.BidVector
}

func (s *stubBids) SearchKeyword(_ context.Context, term string, _ int) ([]*entity.Bid, error) {
	return s.byKeyword[term], nil
}

func (s *stubBids) Vectors(context.Context) ([]repository.BidVector, error) { return s.vecs, nil }

func (s *stubBids) GetByBidNumber(context.Context, string) (*entity.Bid, error) { return nil, nil }

func (s *stubBids) List(context.Context, *time.Time, *time.Time, int, int) ([]*entity.Bid, error) {
	return nil, nil
}

func (s *stubBids) UpsertFromFields(context.Context, *repository.SaveBidRequest) (*entity.Bid, bool, error) {
	return nil, false, nil
}

func (s *stubBids) ListForEmbedding(context.Context, int) ([]*entity.Bid, error) { return nil, nil }

func (s *stubBids) UpdateEmbedding(context.Context, uuid.UUID, []float32) error { return nil }

func fullRecord(no string) *entity.ContractRecord {
	date := time.Date(2025, 2, 17, 0, 0, 0, 0, time.UTC)
	return &entity.ContractRecord{
		Contract: entity.Contract{ID: uuid.New(), ContractNo: no, GeneratedDate: &date},
		Organisation: &entity.OrganisationDetail{
			Ministry:         "Ministry of Defence",
			Department:       "Department of Military Affairs",
			OrganisationName: "Indian Army",
		},
		Seller: &entity.SellerDetail{CompanyName: "SOBBY INDUSTRIES"},
	}
}

func TestKeywordMergesAndFilters(t *testing.T) {
	complete := fullRecord("GEMC-1")
	thin := &entity.ContractRecord{Contract: entity.Contract{ID: uuid.New(), ContractNo: "GEMC-2"}}

	contracts := &stubContracts{byKeyword: map[string][]*entity.ContractRecord{
		"army":    {complete, thin},
		"defence": {complete},
	}}
	bids := &stubBids{byKeyword: map[string][]*entity.Bid{}}

	svc := NewService(contracts, bids, mock.NewEmbedder(), testLogger())
	res, err := svc.Keyword(context.Background(), []string{"army", "defence"}, 5, KindContract)
	require.NoError(t, err)

	require.Len(t, res.Contracts, 1)
	assert.Equal(t, "GEMC-1", res.Contracts[0].Contract.ContractNo)
	assert.Empty(t, res.Bids)
}

func TestKeywordRequiresKeywords(t *testing.T) {
	svc := NewService(&stubContracts{}, &stubBids{}, mock.NewEmbedder(), testLogger())
	_, err := svc.Keyword(context.Background(), nil, 0, "")
	assert.Error(t, err)
}

func TestSemanticAndRefresh(t *testing.T) {
	contractID, productID, bidID := uuid.New(), uuid.New(), uuid.New()
	contracts := &stubContracts{
		vecs: []repository.ContractVector{
			{ID: contractID, ContractNo: "GEMC-1", Vector: []float32{1, 0}},
			{ID: uuid.New(), ContractNo: "GEMC-BAD", Vector: []float32{1, 0, 0}}, // wrong dim
		},
		prodVecs: []repository.ProductVector{
			{ID: productID, Name: "strobel cloth", Vector: []float32{0.6, 0.8}},
		},
	}
	bids := &stubBids{
		vecs: []repository.BidVector{
			{ID: bidID, BidNumber: "GEM/B/1", Vector: []float32{0, 1}},
		},
	}

	embedder := mock.NewEmbedder()
	embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
		return []float32{1, 0}, nil
	}

	svc := NewService(contracts, bids, embedder, testLogger())
	n, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	hits, err := svc.Semantic(context.Background(), "army cloth", 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, contractID, hits[0].ID)
	assert.Equal(t, productID, hits[1].ID)

	bidHits, err := svc.Semantic(context.Background(), "army cloth", 5, KindBid)
	require.NoError(t, err)
	require.Len(t, bidHits, 1)
	assert.Equal(t, bidID, bidHits[0].ID)

	_, err = svc.Semantic(context.Background(), "   ", 5)
	assert.Error(t, err)
}
