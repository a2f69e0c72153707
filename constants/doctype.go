package constants

import (
	"strings"
)

// DocType distinguishes the two GeM document families.
type DocType string

const (
	DocTypeBid      DocType = "BID"
	DocTypeContract DocType = "CONTRACT"
	DocTypeUnknown  DocType = "UNKNOWN"
)

var allDocTypes = []DocType{
	DocTypeBid,
	DocTypeContract,
	DocTypeUnknown,
}

func DocTypesAsStringSlice() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}

// CanonicalizeDocType resolves a user-supplied document type string.
// Returns UNKNOWN (and false) for anything it cannot place.
func CanonicalizeDocType(input string) (DocType, bool) {
	if input == "" {
		return DocTypeUnknown, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]DocType{
		"bids":           DocTypeBid,
		"bid document":   DocTypeBid,
		"gemb":           DocTypeBid,
		"contracts":      DocTypeContract,
		"gemc":           DocTypeContract,
		"gem contract":   DocTypeContract,
		"sanction":       DocTypeContract,
		"po":             DocTypeContract,
		"purchase order": DocTypeContract,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocTypes {
		if normalized == strings.ToLower(string(dt)) {
			return dt, true
		}
	}

	return DocTypeUnknown, false
}

// DetectDocTypeFromName guesses the document type from a file or document
// name. GeM bid numbers start with GEMB / GEM/2021B..., contract numbers
// with GEMC. Falls back to bare "bid"/"contract" tokens.
func DetectDocTypeFromName(name string) DocType {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "gemc"):
		return DocTypeContract
	case strings.Contains(n, "gemb"):
		return DocTypeBid
	case strings.Contains(n, "contract"):
		return DocTypeContract
	case strings.Contains(n, "bid"):
		return DocTypeBid
	}
	return DocTypeUnknown
}
