package ingest

import (
	"path/filepath"
	"strings"

	"github.com/gemdocs/procurement-tracker/constants"
)

// AllowedExt checks if a file extension is in the default allowed set.
// GeM portals only hand out PDFs, so that set is just pdf.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
