package extract

import (
	"sort"
	"strings"

	"github.com/gemdocs/procurement-tracker/internal/textclean"
)

// Top-level section markers of a GeM contract document, in print order.
const (
	SectionOrganisation  = "Organisation Details"
	SectionBuyer         = "Buyer Details"
	SectionFinancial     = "Financial Approval Detail"
	SectionPaying        = "Paying Authority Details"
	SectionSeller        = "Seller Details"
	SectionProduct       = "Product Details"
	SectionConsignee     = "Consignee Detail"
	SectionSpecification = "Product Specification"
	SectionEPBG          = "ePBG Detail"
	SectionTerms         = "Terms and Conditions"
)

var sectionMarkers = []string{
	SectionOrganisation,
	SectionBuyer,
	SectionFinancial,
	SectionPaying,
	SectionSeller,
	SectionProduct,
	SectionConsignee,
	SectionSpecification,
	SectionEPBG,
	SectionTerms,
}

type sectionSpan struct {
	name  string
	start int
}

// SliceSections splits contract text into its labeled sections. Each
// section runs from its marker to the next marker actually present, so a
// missing section never truncates its neighbours.
func SliceSections(text string) map[string]string {
	spans := make([]sectionSpan, 0, len(sectionMarkers))
	for _, marker := range sectionMarkers {
		if pos := findMarker(text, marker); pos >= 0 {
			spans = append(spans, sectionSpan{name: marker, start: pos})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	sections := make(map[string]string, len(spans))
	for i, sp := range spans {
		end := len(text)
		if i+1 < len(spans) {
			end = spans[i+1].start
		}
		if _, seen := sections[sp.name]; !seen {
			sections[sp.name] = text[sp.start:end]
		}
	}
	return sections
}

// findMarker locates a section header, exact first, then fuzzily per line
// for headers the extractor mangled.
func findMarker(text, marker string) int {
	if pos := strings.Index(text, marker); pos >= 0 {
		return pos
	}
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		clean := textclean.EnglishSegment(line)
		// only header-shaped lines qualify; fuzzy-matching body text
		// against short markers produces junk spans
		if clean != "" && len(clean) < 64 && !strings.Contains(clean, ":") && MatchHeader(clean, marker) {
			return offset
		}
		offset += len(line) + 1
	}
	return -1
}

// SectionBody strips the marker line off a section, returning just the
// content beneath it.
func SectionBody(section string) string {
	if i := strings.IndexByte(section, '\n'); i >= 0 {
		return strings.TrimSpace(section[i+1:])
	}
	return ""
}
