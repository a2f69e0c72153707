package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeEmptyPagePDF builds a structurally valid one-page PDF with no content
// stream, computing the xref offsets as the body is written.
func writeEmptyPagePDF(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n",
	}
	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestExtractNoTextLayer(t *testing.T) {
	e := NewPDFExtractor(testLogger())

	_, err := e.Extract(context.Background(), writeEmptyPagePDF(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoText), "want ErrNoText, got %v", err)
}

func TestExtractRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, no pdf header"), 0o644))

	e := NewPDFExtractor(testLogger())
	_, err := e.Extract(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preflight")
}

func TestExtractMissingFile(t *testing.T) {
	e := NewPDFExtractor(testLogger())

	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read")
}
