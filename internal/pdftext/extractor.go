package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// MethodPDFText labels jobs whose text came from the embedded text layer.
const MethodPDFText = "pdf_text"

// pageCap bounds how many pages are read from a single document.
const pageCap = 200

// ErrNoText means the document carries no text layer (image-only scan).
var ErrNoText = errors.New("no extractable text")

// TextExtractionResult carries the raw text of one document.
type TextExtractionResult struct {
	Text   string
	Pages  int
	Method string
}

// Extractor produces raw text from a document on disk.
type Extractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

// PDFExtractor reads the embedded text layer of a PDF.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("preflight %s: %w", filepath.Base(path), err)
	}
	if pages == 0 {
		return TextExtractionResult{}, fmt.Errorf("preflight %s: document has no pages", filepath.Base(path))
	}
	if pages > pageCap {
		e.logger.Warn("document exceeds page cap, truncating",
			"path", path, "pages", pages, "cap", pageCap)
		pages = pageCap
	}

	text, err := extractText(ctx, data, pages)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}
	if strings.TrimSpace(text) == "" {
		return TextExtractionResult{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNoText)
	}

	e.logger.Debug("text layer extracted", "path", path, "pages", pages, "bytes", len(text))
	return TextExtractionResult{Text: text, Pages: pages, Method: MethodPDFText}, nil
}

// extractText walks the document page by page. The reader panics on
// malformed xref tables and some damaged content streams; a panicking page
// is skipped, a panicking reader fails the whole document.
func extractText(ctx context.Context, data []byte, pages int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	if n := reader.NumPage(); n < pages {
		pages = n
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		appendPage(&b, reader, i)
	}
	return b.String(), nil
}

// appendPage writes one page of text, rows top to bottom. Pages the
// library cannot decode are skipped.
func appendPage(b *strings.Builder, reader *pdf.Reader, n int) {
	defer func() { _ = recover() }()

	page := reader.Page(n)
	if page.V.IsNull() {
		return
	}
	if rows, err := page.GetTextByRow(); err == nil && len(rows) > 0 {
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
		return
	}
	content := page.Content()
	for _, item := range content.Text {
		b.WriteString(item.S)
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
}
