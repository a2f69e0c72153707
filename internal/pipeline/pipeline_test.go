package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/gen/ent"
	"github.com/gemdocs/procurement-tracker/internal/embed/mock"
	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/pdftext"
	"github.com/gemdocs/procurement-tracker/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const contractText = `Contract / अनुबंध
Contract No : GEMC-511687790000002
Generated Date : 17-Feb-2025
Organisation Details / संगठन विवरण
Ministry : Ministry of Defence
Product Details / उत्पाद विवरण
Product Name : SOBBY Cotton Plain Strobel Cloth
Brand : SOBBY
`

const bidText = `बोली दस्तावेज़/Bid Document
Bid Number: GEM/2025/B/6171152
Dated: 15-05-2025
Item Category
strobel cloth (Q2)
`

type memFiles struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]*ent.SourceFile
	docTypes map[uuid.UUID]string
}

func newMemFiles(rows ...*ent.SourceFile) *memFiles {
	m := &memFiles{rows: make(map[uuid.UUID]*ent.SourceFile), docTypes: make(map[uuid.UUID]string)}
	for _, r := range rows {
		m.rows[r.ID] = r
	}
	return m
}

func (m *memFiles) GetByID(_ context.Context, id uuid.UUID) (*ent.SourceFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("file %s not found", id)
	}
	return row, nil
}

func (m *memFiles) GetByHash(context.Context, []byte) (*ent.SourceFile, error) {
	return nil, fmt.Errorf("not found")
}

func (m *memFiles) Create(context.Context, string, string, string, int, []byte, string, time.Time) (*ent.SourceFile, error) {
	return nil, fmt.Errorf("unused")
}

func (m *memFiles) UpsertByHash(context.Context, string, string, string, int, []byte, string, time.Time) (*ent.SourceFile, bool, error) {
	return nil, false, fmt.Errorf("unused")
}

func (m *memFiles) SetDocType(_ context.Context, id uuid.UUID, docType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docTypes[id] = docType
	if row, ok := m.rows[id]; ok {
		row.DocType = docType
	}
	return nil
}

type memJobs struct {
	mu       sync.Mutex
	jobs     map[uuid.UUID]*ent.ExtractJob
	failures []string
	parsed   map[uuid.UUID]string // jobID -> doc type
	links    map[uuid.UUID]uuid.UUID
}

func newMemJobs() *memJobs {
	return &memJobs{
		jobs:   make(map[uuid.UUID]*ent.ExtractJob),
		parsed: make(map[uuid.UUID]string),
		links:  make(map[uuid.UUID]uuid.UUID),
	}
}

func (m *memJobs) Start(_ context.Context, fileID uuid.UUID, format, status string) (*ent.ExtractJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := status
	job := &ent.ExtractJob{ID: uuid.New(), FileID: fileID, Format: format, Status: &st}
	m.jobs[job.ID] = job
	return job, nil
}

func (m *memJobs) GetWithFile(_ context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.SourceFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, nil, fmt.Errorf("job %s not found", jobID)
	}
	return job, job.Edges.File, nil
}

func (m *memJobs) FinishTextOK(_ context.Context, jobID uuid.UUID, rawText, method string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job := m.jobs[jobID]
	st := string(constants.JobStatusTextOK)
	job.Status = &st
	job.RawText = &rawText
	job.Method = &method
	return nil
}

func (m *memJobs) FinishParseOK(_ context.Context, jobID uuid.UUID, docType string, _ json.RawMessage, _ bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := string(constants.JobStatusParseOK)
	m.jobs[jobID].Status = &st
	m.parsed[jobID] = docType
	return nil
}

func (m *memJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, message)
	return nil
}

func (m *memJobs) SetContractID(_ context.Context, jobID, contractID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[jobID] = contractID
	return nil
}

func (m *memJobs) SetBidID(_ context.Context, jobID, bidID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[jobID] = bidID
	return nil
}

// seed installs a TEXT_OK job with the given text and file attached.
func (m *memJobs) seed(text string, file *ent.SourceFile) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := string(constants.JobStatusTextOK)
	job := &ent.ExtractJob{ID: uuid.New(), Status: &st, RawText: &text}
	if file != nil {
		job.FileID = file.ID
	}
	job.Edges.File = file
	m.jobs[job.ID] = job
	return job.ID
}

type memContracts struct {
	mu       sync.Mutex
	saved    []*repository.SaveContractRequest
	lastID   uuid.UUID
	embedded map[uuid.UUID][]float32
}

func (m *memContracts) GetByContractNo(_ context.Context, contractNo string) (*entity.ContractRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, req := range m.saved {
		if req.Fields.ContractNo == contractNo {
			return &entity.ContractRecord{Contract: entity.Contract{ID: m.lastID, ContractNo: contractNo}}, nil
		}
	}
	return nil, fmt.Errorf("contract %s not found", contractNo)
}

func (m *memContracts) List(context.Context, *time.Time, *time.Time, int, int) ([]*entity.Contract, error) {
	return nil, nil
}

func (m *memContracts) ListRecords(context.Context, *time.Time, *time.Time, int, int) ([]*entity.ContractRecord, error) {
	return nil, nil
}

func (m *memContracts) UpsertFromFields(_ context.Context, request *repository.SaveContractRequest) (*entity.Contract, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, request)
	m.lastID = uuid.New()
	return &entity.Contract{ID: m.lastID, ContractNo: request.Fields.ContractNo}, false, nil
}

func (m *memContracts) SearchKeyword(context.Context, string, int) ([]*entity.ContractRecord, error) {
	return nil, nil
}

func (m *memContracts) ListForEmbedding(context.Context, int) ([]*entity.ContractRecord, error) {
	return nil, nil
}

func (m *memContracts) UpdateEmbedding(_ context.Context, id uuid.UUID, vector []float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.embedded == nil {
		m.embedded = make(map[uuid.UUID][]float32)
	}
	m.embedded[id] = vector
	return nil
}

func (m *memContracts) Vectors(context.Context) ([]repository.ContractVector, error) {
	return nil, nil
}

func (m *memContracts) ListProductsForEmbedding(context.Context, int) ([]entity.Product, error) {
	return nil, nil
}

func (m *memContracts) UpdateProductEmbedding(context.Context, uuid.UUID, []float32) error {
	return nil
}

func (m *memContracts) ProductVectors(context.Context) ([]repository.ProductVector, error) {
	return nil, nil
}

type memBids struct {
	mu       sync.Mutex
	saved    []*repository.SaveBidRequest
	embedded map[uuid.UUID][]float32
}

func (m *memBids) GetByBidNumber(context.Context, string) (*entity.Bid, error) {
	return nil, fmt.Errorf("unused")
}

func (m *memBids) List(context.Context, *time.Time, *time.Time, int, int) ([]*entity.Bid, error) {
	return nil, nil
}

func (m *memBids) UpsertFromFields(_ context.Context, request *repository.SaveBidRequest) (*entity.Bid, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, request)
	return &entity.Bid{ID: uuid.New(), BidNumber: request.Fields.BidNumber}, false, nil
}

func (m *memBids) SearchKeyword(context.Context, string, int) ([]*entity.Bid, error) {
	return nil, nil
}

func (m *memBids) ListForEmbedding(context.Context, int) ([]*entity.Bid, error) { return nil, nil }

func (m *memBids) UpdateEmbedding(_ context.Context, id uuid.UUID, vector []float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.embedded == nil {
		m.embedded = make(map[uuid.UUID][]float32)
	}
	m.embedded[id] = vector
	return nil
}

func (m *memBids) Vectors(context.Context) ([]repository.BidVector, error) { return nil, nil }

type fakeExtractor struct {
	byPath map[string]pdftext.TextExtractionResult
	errs   map[string]error
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (pdftext.TextExtractionResult, error) {
	if err, ok := f.errs[path]; ok {
		return pdftext.TextExtractionResult{}, err
	}
	return f.byPath[path], nil
}

func pdfRow(id uuid.UUID, path, name string) *ent.SourceFile {
	return &ent.SourceFile{
		ID:         id,
		SourcePath: path,
		Filename:   name,
		FileExt:    "pdf",
		DocType:    string(constants.DocTypeUnknown),
	}
}

func TestTextStageCleansAndStoresText(t *testing.T) {
	fileID := uuid.New()
	files := newMemFiles(pdfRow(fileID, "/docs/c.pdf", "c.pdf"))
	jobs := newMemJobs()
	ex := &fakeExtractor{byPath: map[string]pdftext.TextExtractionResult{
		"/docs/c.pdf": {Text: "Contract No : GEMC-1\x00\x01   details", Pages: 1, Method: pdftext.MethodPDFText},
	}}

	stage := NewTextStage(files, jobs, ex, testLogger())
	jobID, res, err := stage.Run(context.Background(), fileID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)

	job := jobs.jobs[jobID]
	require.NotNil(t, job.RawText)
	assert.NotContains(t, *job.RawText, "\x00")
	assert.Contains(t, *job.RawText, "GEMC-1")
	assert.Equal(t, string(constants.JobStatusTextOK), *job.Status)
	require.NotNil(t, job.Method)
	assert.Equal(t, pdftext.MethodPDFText, *job.Method)
}

func TestTextStageRejectsUnsupportedFormat(t *testing.T) {
	fileID := uuid.New()
	row := pdfRow(fileID, "/docs/c.docx", "c.docx")
	row.FileExt = "docx"
	stage := NewTextStage(newMemFiles(row), newMemJobs(), &fakeExtractor{}, testLogger())

	_, _, err := stage.Run(context.Background(), fileID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestTextStageMarksFailedJobs(t *testing.T) {
	fileID := uuid.New()
	files := newMemFiles(pdfRow(fileID, "/docs/broken.pdf", "broken.pdf"))
	jobs := newMemJobs()
	ex := &fakeExtractor{errs: map[string]error{"/docs/broken.pdf": fmt.Errorf("preflight: not a pdf")}}

	stage := NewTextStage(files, jobs, ex, testLogger())
	jobID, _, err := stage.Run(context.Background(), fileID)
	require.Error(t, err)
	assert.NotEqual(t, uuid.Nil, jobID)
	require.Len(t, jobs.failures, 1)
	assert.Contains(t, jobs.failures[0], "preflight")
}

func TestParseStageContract(t *testing.T) {
	jobs := newMemJobs()
	file := pdfRow(uuid.New(), "/docs/c.pdf", "c.pdf")
	jobID := jobs.seed(contractText, file)
	files := newMemFiles(file)
	contracts := &memContracts{}

	stage := NewParseStage(jobs, files, contracts, &memBids{}, nil, testLogger())
	got, err := stage.Run(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, jobID, got)

	require.Len(t, contracts.saved, 1)
	assert.Equal(t, "GEMC-511687790000002", contracts.saved[0].Fields.ContractNo)
	assert.Equal(t, jobID, contracts.saved[0].JobID)
	assert.Equal(t, contractText, contracts.saved[0].RawText)

	assert.NotEqual(t, uuid.Nil, jobs.links[jobID])
	assert.Equal(t, string(constants.DocTypeContract), jobs.parsed[jobID])
	assert.Equal(t, string(constants.DocTypeContract), files.docTypes[file.ID])
}

func TestParseStageBid(t *testing.T) {
	jobs := newMemJobs()
	file := pdfRow(uuid.New(), "/docs/b.pdf", "GeM-Bidding-6171152.pdf")
	jobID := jobs.seed(bidText, file)
	bids := &memBids{}

	stage := NewParseStage(jobs, newMemFiles(file), &memContracts{}, bids, nil, testLogger())
	_, err := stage.Run(context.Background(), jobID)
	require.NoError(t, err)

	require.Len(t, bids.saved, 1)
	assert.Equal(t, "GEM/2025/B/6171152", bids.saved[0].Fields.BidNumber)
	assert.Equal(t, "GeM-Bidding-6171152.pdf", bids.saved[0].Fields.SourceFile)
	assert.Equal(t, string(constants.DocTypeBid), jobs.parsed[jobID])
}

func TestParseStageEmbedsNewContract(t *testing.T) {
	jobs := newMemJobs()
	file := pdfRow(uuid.New(), "/docs/c.pdf", "c.pdf")
	jobID := jobs.seed(contractText, file)
	contracts := &memContracts{}

	stage := NewParseStage(jobs, newMemFiles(file), contracts, &memBids{}, mock.NewEmbedder(), testLogger())
	_, err := stage.Run(context.Background(), jobID)
	require.NoError(t, err)

	require.Len(t, contracts.embedded, 1)
	vec := contracts.embedded[contracts.lastID]
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-3)
}

func TestParseStageEmbedsNewBid(t *testing.T) {
	jobs := newMemJobs()
	file := pdfRow(uuid.New(), "/docs/b.pdf", "GeM-Bidding-6171152.pdf")
	jobID := jobs.seed(bidText, file)
	bids := &memBids{}

	stage := NewParseStage(jobs, newMemFiles(file), &memContracts{}, bids, mock.NewEmbedder(), testLogger())
	_, err := stage.Run(context.Background(), jobID)
	require.NoError(t, err)

	assert.Len(t, bids.embedded, 1)
}

func TestParseStageFailsWithoutNaturalKey(t *testing.T) {
	jobs := newMemJobs()
	file := pdfRow(uuid.New(), "/docs/b.pdf", "b.pdf")
	jobID := jobs.seed("बोली दस्तावेज़/Bid Document\nno number in sight", file)

	stage := NewParseStage(jobs, newMemFiles(file), &memContracts{}, &memBids{}, nil, testLogger())
	_, err := stage.Run(context.Background(), jobID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bid number")
	require.Len(t, jobs.failures, 1)
}

func TestParseStageUnknownDocType(t *testing.T) {
	jobs := newMemJobs()
	file := pdfRow(uuid.New(), "/docs/scan.pdf", "scan001.pdf")
	jobID := jobs.seed("completely garbled text", file)

	stage := NewParseStage(jobs, newMemFiles(file), &memContracts{}, &memBids{}, nil, testLogger())
	_, err := stage.Run(context.Background(), jobID)
	require.ErrorIs(t, err, ErrUnknownDocType)
	require.Len(t, jobs.failures, 1)
}

func TestParseStageRequiresStoredText(t *testing.T) {
	jobs := newMemJobs()
	st := string(constants.JobStatusRunning)
	job := &ent.ExtractJob{ID: uuid.New(), Status: &st}
	job.Edges.File = pdfRow(uuid.New(), "/docs/x.pdf", "x.pdf")
	jobs.jobs[job.ID] = job

	stage := NewParseStage(jobs, newMemFiles(), &memContracts{}, &memBids{}, nil, testLogger())
	_, err := stage.Run(context.Background(), job.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready for parse")
}

func TestProcessBatch(t *testing.T) {
	idA, idB, idC := uuid.New(), uuid.New(), uuid.New()
	files := newMemFiles(
		pdfRow(idA, "/docs/a.pdf", "contract-a.pdf"),
		pdfRow(idB, "/docs/b.pdf", "bid-b.pdf"),
		pdfRow(idC, "/docs/c.pdf", "broken.pdf"),
	)
	jobs := newMemJobs()
	contracts := &memContracts{}
	bids := &memBids{}
	ex := &fakeExtractor{
		byPath: map[string]pdftext.TextExtractionResult{
			"/docs/a.pdf": {Text: contractText, Pages: 3, Method: pdftext.MethodPDFText},
			"/docs/b.pdf": {Text: bidText, Pages: 9, Method: pdftext.MethodPDFText},
		},
		errs: map[string]error{"/docs/c.pdf": fmt.Errorf("preflight: broken xref")},
	}

	// GetWithFile resolves the file through the job edge in the fake, so
	// wire edges by letting TextStage create the jobs first.
	text := NewTextStage(files, jobsWithEdges{jobs, files}, ex, testLogger())
	parse := NewParseStage(jobsWithEdges{jobs, files}, files, contracts, bids, nil, testLogger())
	proc := NewProcessor(text, parse, testLogger())

	stats, err := proc.ProcessBatch(context.Background(), []uuid.UUID{idA, idB, idC}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Failed)
	assert.Len(t, contracts.saved, 1)
	assert.Len(t, bids.saved, 1)
}

// jobsWithEdges resolves GetWithFile against the files fake, mirroring the
// eager-loaded edge the real repository returns.
type jobsWithEdges struct {
	*memJobs
	files *memFiles
}

func (j jobsWithEdges) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.SourceFile, error) {
	job, _, err := j.memJobs.GetWithFile(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	file, err := j.files.GetByID(ctx, job.FileID)
	if err != nil {
		return nil, nil, err
	}
	return job, file, nil
}
