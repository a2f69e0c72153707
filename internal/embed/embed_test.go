package embed

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemdocs/procurement-tracker/internal/embed/mock"
	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/repository"
)

func TestNormalize(t *testing.T) {
	v := Normalize([]float32{3, 4})
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)

	zero := Normalize([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, zero)
}

func TestContractEmbeddingText(t *testing.T) {
	rec := &entity.ContractRecord{
		Contract: entity.Contract{ContractNo: "GEMC-511687790000002"},
		Organisation: &entity.OrganisationDetail{
			Ministry:         "Ministry of Defence",
			OrganisationName: "Indian Army",
		},
		Seller: &entity.SellerDetail{CompanyName: "SOBBY INDUSTRIES"},
		Products: []entity.Product{
			{ProductName: "Strobel Cloth", Brand: "SOBBY"},
		},
	}

	text := ContractEmbeddingText(rec)
	assert.Equal(t, "GEMC-511687790000002 | Ministry of Defence | Indian Army | SOBBY INDUSTRIES | Strobel Cloth | SOBBY", text)
}

func TestBidEmbeddingTextSkipsBlanks(t *testing.T) {
	b := &entity.Bid{
		BidNumber:    "GEM/2025/B/6171152",
		Ministry:     "Ministry Of Defence",
		ItemCategory: "strobel cloth (Q2)",
	}

	text := BidEmbeddingText(b)
	assert.Equal(t, "GEM/2025/B/6171152 | Ministry Of Defence | strobel cloth (Q2)", text)
}

func TestJoinPartsCap(t *testing.T) {
	long := make([]byte, embedTextCap*2)
	for i := range long {
		long[i] = 'x'
	}

	out := joinParts([]string{string(long)})
	assert.Len(t, out, embedTextCap)
}

// fakeContractRepo serves pending records in batches and records the
// vectors it is handed.
type fakeContractRepo struct {
	pending []*entity.ContractRecord
	stored  map[uuid.UUID][]float32
}

func newFakeContractRepo(records ...*entity.ContractRecord) *fakeContractRepo {
	return &fakeContractRepo{pending: records, stored: map[uuid.UUID][]float32{}}
}

func (f *fakeContractRepo) ListForEmbedding(_ context.Context, limit int) ([]*entity.ContractRecord, error) {
	if limit <= 0 || limit > len(f.pending) {
		limit = len(f.pending)
	}
	out := make([]*entity.ContractRecord, limit)
	copy(out, f.pending[:limit])
	return out, nil
}

func (f *fakeContractRepo) UpdateEmbedding(_ context.Context, id uuid.UUID, vector []float32) error {
	f.stored[id] = vector
	for i, rec := range f.pending {
		if rec.Contract.ID == id {
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeContractRepo) GetByContractNo(context.Context, string) (*entity.ContractRecord, error) {
	return nil, nil
}

func (f *fakeContractRepo) List(context.Context, *time.Time, *time.Time, int, int) ([]*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractRepo) ListRecords(context.Context, *time.Time, *time.Time, int, int) ([]*entity.ContractRecord, error) {
	return nil, nil
}

func (f *fakeContractRepo) UpsertFromFields(context.Context, *repository.SaveContractRequest) (*entity.Contract, bool, error) {
	return nil, false, nil
}

func (f *fakeContractRepo) SearchKeyword(context.Context, string, int) ([]*entity.ContractRecord, error) {
	return nil, nil
}

func (f *fakeContractRepo) Vectors(context.Context) ([]repository.ContractVector, error) {
	return nil, nil
}

func (f *fakeContractRepo) ListProductsForEmbedding(context.Context, int) ([]entity.Product, error) {
	return nil, nil
}

func (f *fakeContractRepo) UpdateProductEmbedding(context.Context, uuid.UUID, []float32) error {
	return nil
}

func (f *fakeContractRepo) ProductVectors(context.Context) ([]repository.ProductVector, error) {
	return nil, nil
}

func record(no string) *entity.ContractRecord {
	return &entity.ContractRecord{Contract: entity.Contract{ID: uuid.New(), ContractNo: no}}
}

func TestBackfillContracts(t *testing.T) {
	repo := newFakeContractRepo(record("GEMC-1"), record("GEMC-2"), record("GEMC-3"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(repo, nil, mock.NewEmbedder(), 2, logger)

	n, err := svc.BackfillContracts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Empty(t, repo.pending)
	require.Len(t, repo.stored, 3)

	for _, v := range repo.stored {
		require.Len(t, v, 384)
		var sum float64
		for _, x := range v {
			sum += float64(x) * float64(x)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-3)
	}
}
