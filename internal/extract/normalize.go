package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date layouts observed across GeM bid and contract PDFs, most frequent
// first. The generator is inconsistent even within a single document.
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"2006-01-02",
	"January 2, 2006",
	"02-Jan-2006",
	"02-January-2006",
	"02 Jan 2006",
	"02 January 2006",
	"02-Jan-06",
	"02 Jan 06",
}

var dateTimeLayouts = []string{
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"2006-01-02 15:04:05",
	"02-Jan-2006 15:04",
}

var (
	reNumber    = regexp.MustCompile(`[-+]?\d[\d,.]*\d|\d+`)
	reEmail     = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	rePhoneRun  = regexp.MustCompile(`[+\d\-()\s]{6,30}`)
	reDigit     = regexp.MustCompile(`\d`)
	reDateToken = regexp.MustCompile(`\d{1,2}-[A-Za-z]{3}-\d{4}`)
	reDateAny   = regexp.MustCompile(`\d{1,2}[-/][A-Za-z]{3,9}[-/]\d{2,4}|\d{1,2}[-/]\d{1,2}[-/]\d{4}|\d{4}-\d{2}-\d{2}`)

	reIDPrefix   = regexp.MustCompile(`(?i)^[.\s:]*ID\s*[:\-]?\s*`)
	reEdgeColons = regexp.MustCompile(`^[.\s:]+`)

	reObfuscatedAt  = regexp.MustCompile(`(?i)[([{]\s*at\s*[)\]}]|\s+at\s+`)
	reObfuscatedDot = regexp.MustCompile(`(?i)[([{]\s*dot\s*[)\]}]|\s+dot\s+`)
	reSpacedAtSign  = regexp.MustCompile(`\s*@\s*`)
	reSpacedPeriod  = regexp.MustCompile(`\s*\.\s*`)
	reDottedToken   = regexp.MustCompile(`[\w.\-]+\.[\w.\-]+\.\w+`)
	reLabelToken    = regexp.MustCompile(`(?i)(?:Email\s*ID|Email|ID)\s*[:\-]\s*(\S+)`)
	reDomainTail    = regexp.MustCompile(`([A-Za-z0-9.\-]+)\.([A-Za-z]{2,})$`)
)

// CleanValue trims label noise off an extracted field value: leading
// "ID :" fragments, stray colons and dots, collapsed whitespace.
func CleanValue(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = reIDPrefix.ReplaceAllString(s, "")
	s = reEdgeColons.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// ParseDate tries the known layout chain, then falls back to locating a
// dd-Mon-yyyy token anywhere in the string.
func ParseDate(s string) (time.Time, bool) {
	s = CleanValue(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if m := reDateAny.FindString(s); m != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, m); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// ParseDateTime parses bid end/open stamps like "12-08-2025 15:00:00".
// A date-only string still parses, at midnight.
func ParseDateTime(s string) (time.Time, bool) {
	s = CleanValue(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return ParseDate(s)
}

// NormalizeNumber finds the first number-like chunk and repairs OCR damage:
// commas stripped, and when several dots survived doubled glyphs the last
// one is kept as the decimal separator ("887,799..9922" -> "887799.9922").
func NormalizeNumber(s string) string {
	m := reNumber.FindString(strings.ReplaceAll(s, " ", ""))
	if m == "" {
		return ""
	}
	m = strings.ReplaceAll(m, ",", "")
	if strings.Count(m, ".") > 1 {
		parts := strings.Split(m, ".")
		m = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}
	return m
}

// ParseDecimal is best-effort: def comes back for anything unparseable.
func ParseDecimal(s string, def float64) float64 {
	n := NormalizeNumber(s)
	if n == "" {
		return def
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return def
	}
	return v
}

// ParseInt drops any decimal part rather than failing on it.
func ParseInt(s string, def int) int {
	n := NormalizeNumber(s)
	if n == "" {
		return def
	}
	if i := strings.IndexByte(n, '.'); i >= 0 {
		n = n[:i]
	}
	v, err := strconv.Atoi(n)
	if err != nil {
		return def
	}
	return v
}

// ExtractEmail digs an address out of messy label text. Handles "(at)"
// style obfuscation and the GeM habit of printing government addresses
// without the "@" ("user110agov.in" -> "user110@a.gov.in").
func ExtractEmail(s string) string {
	s = CleanValue(s)
	if s == "" {
		return ""
	}
	if m := reEmail.FindString(s); m != "" {
		return strings.Trim(m, ".,;:-")
	}

	lowered := strings.ToLower(s)
	repaired := reObfuscatedAt.ReplaceAllString(lowered, "@")
	repaired = reObfuscatedDot.ReplaceAllString(repaired, ".")
	if strings.Contains(repaired, "@") {
		// the substitution leaves spaces around the separators
		glued := reSpacedAtSign.ReplaceAllString(repaired, "@")
		glued = reSpacedPeriod.ReplaceAllString(glued, ".")
		if m := reEmail.FindString(glued); m != "" {
			return strings.Trim(m, ".,;:-")
		}
	}
	if m := reEmail.FindString(repaired); m != "" {
		return strings.Trim(m, ".,;:-")
	}

	// government domains with the "@" swallowed by the extractor,
	// optionally with a single-letter subdomain glued on
	for _, tail := range []string{"gov.in", "nic.in"} {
		idx := strings.Index(repaired, tail)
		if idx <= 0 || strings.Contains(repaired, "@") {
			continue
		}
		start := idx
		sub := ""
		if idx >= 2 && isAlnum(repaired[idx-1]) && repaired[idx-2] != '.' {
			sub = string(repaired[idx-1])
			start = idx - 1
		}
		user := strings.TrimRight(repaired[:start], ".:@ ")
		domain := tail
		if sub != "" {
			domain = sub + "." + tail
		}
		if m := reEmail.FindString(user + "@" + domain); m != "" {
			return strings.Trim(m, ".,;:-")
		}
	}

	// generic missing-@ repair on a trailing domain-shaped token
	if m := reDomainTail.FindStringSubmatch(repaired); m != nil && !strings.Contains(repaired, "@") {
		tail := m[0]
		user := strings.TrimRight(repaired[:strings.LastIndex(repaired, tail)], ".:@ ")
		if c := reEmail.FindString(user + "@" + tail); c != "" {
			return strings.Trim(c, ".,;:-")
		}
	}

	if m := reLabelToken.FindStringSubmatch(s); m != nil {
		return strings.Trim(m[1], ".,;:-")
	}
	if m := reDottedToken.FindString(s); m != "" {
		return strings.Trim(m, ".,;:-")
	}
	return ""
}

// ExtractPhone returns the first phone-shaped run containing at least six
// digits. GeM numbers mix separators freely ("0731-2423508", "+91 98930...").
func ExtractPhone(s string) string {
	for _, m := range rePhoneRun.FindAllString(s, -1) {
		if len(reDigit.FindAllString(m, -1)) >= 6 {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
