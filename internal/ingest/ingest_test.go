package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/gen/ent"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memFilesRepo struct {
	mu     sync.Mutex
	byHash map[string]*ent.SourceFile
}

func newMemFilesRepo() *memFilesRepo {
	return &memFilesRepo{byHash: make(map[string]*ent.SourceFile)}
}

func (m *memFilesRepo) GetByID(context.Context, uuid.UUID) (*ent.SourceFile, error) {
	return nil, os.ErrNotExist
}

func (m *memFilesRepo) GetByHash(_ context.Context, hash []byte) (*ent.SourceFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row, ok := m.byHash[hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, os.ErrNotExist
}

func (m *memFilesRepo) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, docType string, uploadedAt time.Time) (*ent.SourceFile, error) {
	row, _, err := m.UpsertByHash(context.Background(), sourcePath, filename, ext, size, hash, docType, uploadedAt)
	return row, err
}

func (m *memFilesRepo) UpsertByHash(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, docType string, uploadedAt time.Time) (*ent.SourceFile, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := hex.EncodeToString(hash)
	if row, ok := m.byHash[key]; ok {
		return row, true, nil
	}
	row := &ent.SourceFile{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		ContentHash: hash,
		DocType:     docType,
		UploadedAt:  uploadedAt,
	}
	m.byHash[key] = row
	return row, false, nil
}

func (m *memFilesRepo) SetDocType(context.Context, uuid.UUID, string) error { return nil }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIngestPathHashesAndStores(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "GeM-Contract-2025.pdf", "%PDF-1.4 fake body")
	repo := newMemFilesRepo()
	ing := NewFSIngestor(repo, testLogger())

	res, err := ing.IngestPath(context.Background(), path, "")
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("%PDF-1.4 fake body"))
	assert.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)
	assert.Equal(t, "pdf", res.FileExt)
	assert.False(t, res.Deduplicated)
	assert.Equal(t, string(constants.DocTypeContract), res.DocType)
	assert.NotEmpty(t, res.FileID)

	row, err := repo.GetByHash(context.Background(), sum[:])
	require.NoError(t, err)
	assert.Equal(t, "GeM-Contract-2025.pdf", row.Filename)
	assert.Equal(t, len("%PDF-1.4 fake body"), row.FileSize)
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "not a pdf")
	ing := NewFSIngestor(newMemFilesRepo(), testLogger())

	_, err := ing.IngestPath(context.Background(), path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported or missing extension")
}

func TestIngestPathDocTypeHintWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scan001.pdf", "ambiguous name")
	ing := NewFSIngestor(newMemFilesRepo(), testLogger())

	res, err := ing.IngestPath(context.Background(), path, "gemb")
	require.NoError(t, err)
	assert.Equal(t, string(constants.DocTypeBid), res.DocType)
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "contract.pdf", "identical bytes")
	renamed := writeFile(t, dir, "contract (1).pdf", "identical bytes")
	ing := NewFSIngestor(newMemFilesRepo(), testLogger())

	a, err := ing.IngestPath(context.Background(), first, "")
	require.NoError(t, err)
	b, err := ing.IngestPath(context.Background(), renamed, "")
	require.NoError(t, err)

	assert.False(t, a.Deduplicated)
	assert.True(t, b.Deduplicated)
	assert.Equal(t, a.FileID, b.FileID)
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a-contract.pdf", "contract body")
	writeFile(t, root, filepath.Join("sub", "b-bid.pdf"), "bid body")
	writeFile(t, root, filepath.Join(".cache", "c.pdf"), "hidden dir")
	writeFile(t, root, ".secret.pdf", "hidden file")
	writeFile(t, root, "skip.txt", "wrong type")
	ing := NewFSIngestor(newMemFilesRepo(), testLogger())

	results, stats, err := ing.IngestDirectory(context.Background(), root, "", true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Equal(t, uint32(0), stats.Deduplicated)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Empty(t, r.Err)
		assert.NotEmpty(t, r.FileID)
	}
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(newMemFilesRepo(), testLogger())
	_, _, err := ing.IngestDirectory(context.Background(), "   ", "", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root_path is required")
}

func TestWatcherInitialScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "existing-bid.pdf", "already here")
	writeFile(t, root, "readme.md", "ignored")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
		Logger:      testLogger(),
	})
	require.NoError(t, err)

	select {
	case path := <-evCh:
		assert.Equal(t, "existing-bid.pdf", filepath.Base(path))
	case <-time.After(2 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{Logger: testLogger()})
	require.Error(t, err)
}
