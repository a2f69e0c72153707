package extract

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/gemdocs/procurement-tracker/internal/textclean"
)

// Similarity floors for fuzzy label matching. OCR mangles labels just
// enough ("Coonnttaacctt No") that exact matching loses real fields,
// while anything looser than this starts cross-matching sections.
const (
	fieldSimilarityFloor  = 0.75
	headerSimilarityFloor = 0.80
)

// Canonical field names mapped to the label variants seen in the wild.
// Variants are compared in normalized form, so punctuation and doubled
// glyphs do not matter here.
var labelVariants = map[string][]string{
	"type":                           {"type"},
	"ministry":                       {"ministry", "ministry name", "ministry/state name"},
	"department":                     {"department", "department name"},
	"organisation_name":              {"organisation name", "organization name"},
	"office_zone":                    {"office zone", "zone"},
	"designation":                    {"designation"},
	"contact_no":                     {"contact no", "contact no.", "contact number", "contact", "phone", "mobile"},
	"email":                          {"email id", "email", "e-mail", "e-mail id"},
	"gstin":                          {"gstin", "gstin number", "gst no"},
	"address":                        {"address"},
	"ifd_concurrence":                {"ifd concurrence"},
	"admin_approval_designation":     {"designation of administrative approval", "administrative approval"},
	"financial_approval_designation": {"designation of financial approval", "financial approval"},
	"role":                           {"role"},
	"payment_mode":                   {"payment mode", "payment method"},
	"gem_seller_id":                  {"gem seller id", "seller id"},
	"company_name":                   {"company name"},
	"msme_registration_number":       {"msme registration number", "msme registration", "msme regn number"},
	"product_name":                   {"product name"},
	"brand":                          {"brand"},
	"brand_type":                     {"brand type"},
	"catalogue_status":               {"catalogue status"},
	"selling_as":                     {"selling as"},
	"category_name_quadrant":         {"category name & quadrant", "category name and quadrant", "category name quadrant"},
	"model":                          {"model"},
	"hsn_code":                       {"hsn code", "hsn"},
	"ordered_quantity":               {"ordered quantity"},
	"unit_price":                     {"unit price (inr)", "unit price"},
	"total_price":                    {"total price (inr)", "total price", "total value", "total order value"},
	"item":                           {"item", "item description"},
	"s_no":                           {"s no", "s no.", "sl no", "serial no"},
	"lot_no":                         {"lot no", "lot no."},
	"quantity":                       {"quantity"},
	"delivery_start":                 {"delivery start", "delivery start after"},
	"delivery_end":                   {"delivery end", "delivery to be completed by"},
	"delivery_to":                    {"delivery to"},
}

// Fields whose values routinely spill onto following unlabeled lines.
var continuedFields = map[string]bool{
	"address": true,
	"item":    true,
}

// normalizeLabel reduces a label to bare lowercase letters with consecutive
// duplicates collapsed, which survives both OCR glyph doubling and
// punctuation loss. Applied to both sides of every comparison.
func normalizeLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range strings.ToLower(s) {
		if r < 'a' || r > 'z' {
			continue
		}
		if r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// MatchLabel resolves a raw label against the canonical set, returning the
// canonical name or "" when nothing clears the similarity floor.
func MatchLabel(label string) string {
	norm := normalizeLabel(label)
	if norm == "" {
		return ""
	}
	best := ""
	bestScore := 0.0
	for canonical, variants := range labelVariants {
		for _, v := range variants {
			nv := normalizeLabel(v)
			if norm == nv {
				return canonical
			}
			if score := levenshtein.Similarity(norm, nv, nil); score > bestScore {
				best, bestScore = canonical, score
			}
		}
	}
	if bestScore >= fieldSimilarityFloor {
		return best
	}
	return ""
}

// MatchHeader reports whether a line is (a mangled form of) a section
// header. Substring containment short-circuits the fuzzy comparison since
// headers often arrive with their Hindi echo still attached.
func MatchHeader(line, header string) bool {
	nl, nh := normalizeLabel(line), normalizeLabel(header)
	if nl == "" || nh == "" {
		return false
	}
	if strings.Contains(nl, nh) {
		return true
	}
	return levenshtein.Similarity(nl, nh, nil) >= headerSimilarityFloor
}

// SplitKV splits a labeled line once, preferring the "::" form some GeM
// templates print before falling back to the first ":". The value keeps
// any further colons (times, URLs).
func SplitKV(line string) (label, value string, ok bool) {
	if i := strings.Index(line, "::"); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+2:]), true
	}
	if i := strings.IndexByte(line, ':'); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
	}
	return "", "", false
}

// SectionFields scans a section body line by line and collects canonical
// field -> value. The first match for a field wins; unlabeled lines extend
// the previous value only for fields that wrap (addresses, item text).
func SectionFields(section string) map[string]string {
	fields := make(map[string]string)
	last := ""
	for _, raw := range strings.Split(section, "\n") {
		line := textclean.EnglishSegment(raw)
		if line == "" {
			last = ""
			continue
		}
		label, value, ok := SplitKV(line)
		if !ok {
			if last != "" && continuedFields[last] {
				fields[last] = strings.TrimSpace(fields[last] + " " + line)
			}
			continue
		}
		canonical := MatchLabel(label)
		if canonical == "" {
			last = ""
			continue
		}
		value = CleanValue(value)
		if _, exists := fields[canonical]; !exists && value != "" {
			fields[canonical] = value
			last = canonical
		} else if _, exists := fields[canonical]; !exists && value == "" {
			// labeled line with the value wrapped onto the next line
			fields[canonical] = ""
			last = canonical
		} else {
			last = ""
		}
	}
	// drop empty placeholders the wrap handling left behind
	for k, v := range fields {
		if v == "" {
			delete(fields, k)
		}
	}
	return fields
}
