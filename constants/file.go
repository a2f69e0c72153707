package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{"PDF"}

// AllowedExtensions holds the default allowed file extensions for document ingestion.
// GeM bid and contract documents are distributed as PDFs only.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized file extension to an ExtractJob format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return "PDF"
	}
	return ""
}
