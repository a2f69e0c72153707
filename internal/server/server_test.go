package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/gemdocs/procurement-tracker/gen/proto/procurement/v1"
	"github.com/gemdocs/procurement-tracker/internal/async"
	"github.com/gemdocs/procurement-tracker/internal/ingest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubIngestor struct {
	fileResult ingest.IngestionResult
	fileErr    error
	dirResults []ingest.IngestionResult
	dirStats   ingest.DirStats
	dirErr     error

	gotPath       string
	gotRoot       string
	gotDocType    string
	gotSkipHidden bool
}

func (s *stubIngestor) IngestPath(_ context.Context, path, docType string) (ingest.IngestionResult, error) {
	s.gotPath = path
	s.gotDocType = docType
	return s.fileResult, s.fileErr
}

func (s *stubIngestor) IngestDirectory(_ context.Context, root, docType string, skipHidden bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	s.gotRoot = root
	s.gotDocType = docType
	s.gotSkipHidden = skipHidden
	return s.dirResults, s.dirStats, s.dirErr
}

type stubQueue struct {
	jobs []async.Job
	err  error
}

func (q *stubQueue) Enqueue(_ context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *stubQueue) Shutdown(context.Context) {}

func okResult(id uuid.UUID) ingest.IngestionResult {
	return ingest.IngestionResult{
		SourcePath: "/data/GeM-Contract-511687790000002.pdf",
		FileID:     id.String(),
		HashHex:    "ab12cd34",
		FileExt:    "pdf",
		DocType:    "CONTRACT",
		UploadedAt: time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestIngestFileRequiresPath(t *testing.T) {
	svc := NewIngestionService(&stubIngestor{}, &stubQueue{}, testLogger())

	_, err := svc.IngestFile(context.Background(), &v1.IngestFileRequest{Path: "   "})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestIngestFileRejectsUnknownDocType(t *testing.T) {
	svc := NewIngestionService(&stubIngestor{}, &stubQueue{}, testLogger())

	_, err := svc.IngestFile(context.Background(), &v1.IngestFileRequest{
		Path:    "/data/doc.pdf",
		DocType: "invoice",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestIngestFileEnqueuesWhenProcessing(t *testing.T) {
	id := uuid.New()
	ing := &stubIngestor{fileResult: okResult(id)}
	q := &stubQueue{}
	svc := NewIngestionService(ing, q, testLogger())

	resp, err := svc.IngestFile(context.Background(), &v1.IngestFileRequest{
		Path:    "/data/GeM-Contract-511687790000002.pdf",
		DocType: "gemc",
		Process: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "CONTRACT", ing.gotDocType)
	assert.Equal(t, id.String(), resp.FileId)
	assert.Equal(t, "ab12cd34", resp.ContentHashHex)
	assert.Equal(t, "2025-07-01T10:30:00Z", resp.UploadedAt)
	assert.Empty(t, resp.Error)

	require.Len(t, q.jobs, 1)
	assert.Equal(t, id, q.jobs[0].FileID)
}

func TestIngestFileSkipsQueueWithoutProcess(t *testing.T) {
	ing := &stubIngestor{fileResult: okResult(uuid.New())}
	q := &stubQueue{}
	svc := NewIngestionService(ing, q, testLogger())

	_, err := svc.IngestFile(context.Background(), &v1.IngestFileRequest{Path: "/data/a.pdf"})
	require.NoError(t, err)
	assert.Empty(t, q.jobs)
}

func TestIngestFileSkipDuplicates(t *testing.T) {
	r := okResult(uuid.New())
	r.Deduplicated = true
	ing := &stubIngestor{fileResult: r}
	q := &stubQueue{}
	svc := NewIngestionService(ing, q, testLogger())

	_, err := svc.IngestFile(context.Background(), &v1.IngestFileRequest{
		Path:           "/data/a.pdf",
		Process:        true,
		SkipDuplicates: true,
	})
	require.NoError(t, err)
	assert.Empty(t, q.jobs, "deduplicated files stay out of the queue when skip_duplicates is set")

	_, err = svc.IngestFile(context.Background(), &v1.IngestFileRequest{
		Path:    "/data/a.pdf",
		Process: true,
	})
	require.NoError(t, err)
	assert.Len(t, q.jobs, 1, "without skip_duplicates a duplicate is reprocessed")
}

func TestIngestFileReportsEnqueueFailure(t *testing.T) {
	ing := &stubIngestor{fileResult: okResult(uuid.New())}
	q := &stubQueue{err: errors.New("queue is full")}
	svc := NewIngestionService(ing, q, testLogger())

	resp, err := svc.IngestFile(context.Background(), &v1.IngestFileRequest{
		Path:    "/data/a.pdf",
		Process: true,
	})
	require.NoError(t, err, "a full queue is reported on the result, not as an RPC failure")
	assert.Equal(t, "queue is full", resp.Error)
}

func TestIngestDirectory(t *testing.T) {
	good := okResult(uuid.New())
	bad := ingest.IngestionResult{SourcePath: "/data/broken.pdf", Err: "open: permission denied"}
	ing := &stubIngestor{
		dirResults: []ingest.IngestionResult{good, bad},
		dirStats:   ingest.DirStats{Scanned: 5, Matched: 2, Succeeded: 1, Deduplicated: 0, Failed: 1},
	}
	q := &stubQueue{}
	svc := NewIngestionService(ing, q, testLogger())

	resp, err := svc.IngestDirectory(context.Background(), &v1.IngestDirectoryRequest{
		RootPath: "/data",
		Process:  true,
	})
	require.NoError(t, err)

	assert.True(t, ing.gotSkipHidden, "hidden files are skipped by default")
	assert.Equal(t, uint32(5), resp.Scanned)
	assert.Equal(t, uint32(2), resp.Matched)
	assert.Equal(t, uint32(1), resp.Succeeded)
	assert.Equal(t, uint32(1), resp.Failed)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "open: permission denied", resp.Results[1].Error)

	assert.Len(t, q.jobs, 1, "failed entries are never enqueued")
}

func TestIngestDirectoryIncludeHidden(t *testing.T) {
	ing := &stubIngestor{}
	svc := NewIngestionService(ing, &stubQueue{}, testLogger())

	_, err := svc.IngestDirectory(context.Background(), &v1.IngestDirectoryRequest{
		RootPath:      "/data",
		IncludeHidden: true,
	})
	require.NoError(t, err)
	assert.False(t, ing.gotSkipHidden)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	svc := NewIngestionService(&stubIngestor{}, &stubQueue{}, testLogger())

	_, err := svc.IngestDirectory(context.Background(), &v1.IngestDirectoryRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestValidDocTypeHint(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "  ", want: ""},
		{in: "bid", want: "BID"},
		{in: "GEMB", want: "BID"},
		{in: "purchase order", want: "CONTRACT"},
		{in: "Contracts", want: "CONTRACT"},
		{in: "unknown", want: "UNKNOWN"},
		{in: "invoice", wantErr: true},
	}
	for _, tt := range tests {
		got, err := validDocTypeHint(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestShouldProcess(t *testing.T) {
	id := uuid.New().String()
	tests := []struct {
		name string
		r    ingest.IngestionResult
		skip bool
		want bool
	}{
		{name: "fresh file", r: ingest.IngestionResult{FileID: id}, want: true},
		{name: "duplicate reprocessed by default", r: ingest.IngestionResult{FileID: id, Deduplicated: true}, want: true},
		{name: "duplicate skipped on request", r: ingest.IngestionResult{FileID: id, Deduplicated: true}, skip: true, want: false},
		{name: "no file id", r: ingest.IngestionResult{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldProcess(tt.r, tt.skip))
		})
	}
}

func TestExportFormat(t *testing.T) {
	for in, want := range map[string]string{
		"":      "xlsx",
		"xlsx":  "xlsx",
		" XLSX": "xlsx",
		"json":  "json",
		"JSON":  "json",
	} {
		got, err := exportFormat(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := exportFormat("csv")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestParseWindow(t *testing.T) {
	from, to, err := parseWindow(testLogger(), "2025-01-01", "")
	require.NoError(t, err)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Nil(t, to)

	_, _, err = parseWindow(testLogger(), "", "01/07/2025")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestKeywordSearchValidation(t *testing.T) {
	svc := NewSearchService(nil, testLogger())

	_, err := svc.KeywordSearch(context.Background(), &v1.KeywordSearchRequest{Keywords: " , "})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.KeywordSearch(context.Background(), &v1.KeywordSearchRequest{
		Keywords: "army",
		Kind:     "product",
	})
	require.Error(t, err, "keyword search walks whole records, not product rows")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSemanticSearchValidation(t *testing.T) {
	svc := NewSearchService(nil, testLogger())

	_, err := svc.SemanticSearch(context.Background(), &v1.SemanticSearchRequest{Query: ""})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.SemanticSearch(context.Background(), &v1.SemanticSearchRequest{
		Query: "night vision devices",
		Kinds: []string{"tender"},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestExportContractValidation(t *testing.T) {
	srv := NewExportServer(nil, testLogger())

	_, err := srv.ExportContract(context.Background(), &v1.ExportContractRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = srv.ExportContract(context.Background(), &v1.ExportContractRequest{
		ContractNo: "GEMC-511687790000002",
		Format:     "csv",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestStampedName(t *testing.T) {
	name := stampedName("contracts")
	assert.Regexp(t, `^contracts-\d{8}-\d{6}\.xlsx$`, name)
}
