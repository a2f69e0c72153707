// Package textclean holds pure text-normalization helpers for PDF text.
// Extraction quality depends on these running before any pattern matching:
// GeM documents arrive with embedded font artifacts, control characters and
// interleaved Hindi translations of every label.
package textclean

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reCID        = regexp.MustCompile(`\(cid:\d+\)`)
	reControl    = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f-\x9f]`)
	reSpaces     = regexp.MustCompile(`[ \t]{2,}`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)
	reDevanagari = regexp.MustCompile(`[\x{0900}-\x{097F}]+`)
	// slashes and pipes left dangling at a word boundary once the Hindi
	// side of a "hindi/English" or "hindi || English" pair is removed
	reDangling  = regexp.MustCompile(`(^|\s)[/|]+`)
	reNonASCII  = regexp.MustCompile(`[^\x00-\x7F]+`)
	reAllWS     = regexp.MustCompile(`\s+`)
	reAddrJunk  = regexp.MustCompile(`[^\w\s,.\-]`)
	reCommaRuns = regexp.MustCompile(`\s*,[\s,]*`)
	reEdgeJunk  = regexp.MustCompile(`^[\s,.\-]+|[\s,.\-]+$`)
	reTailNoise = regexp.MustCompile(`(\s+[A-Za-z]{1,2}){2}$`)
)

// CleanText removes extractor artifacts while preserving line structure.
// Newlines are kept because the field patterns anchor on them.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = reCID.ReplaceAllString(s, "")
	s = reControl.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(ln)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// RemoveHindi strips Devanagari runs and the separator punctuation they
// leave behind. The cleaned text keeps its newlines.
func RemoveHindi(s string) string {
	if s == "" {
		return ""
	}
	s = reDevanagari.ReplaceAllString(s, "")
	s = reDangling.ReplaceAllString(s, "${1}")
	s = reSpaces.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(ln)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// EnglishSegment returns the English half of a bilingual label line.
// GeM PDFs render "English || हिन्दी" pairs; when no separator is present
// the Devanagari runs are stripped instead.
func EnglishSegment(line string) string {
	if i := strings.Index(line, "||"); i >= 0 {
		return strings.TrimSpace(line[:i])
	}
	return strings.TrimSpace(RemoveHindi(line))
}

// CleanAddress aggressively repairs an address value: addresses in these
// documents routinely swallow neighbouring table cells and Hindi echoes.
func CleanAddress(s string) string {
	if s == "" {
		return ""
	}
	s = reNonASCII.ReplaceAllString(s, "")
	s = reAddrJunk.ReplaceAllString(s, "")
	s = reAllWS.ReplaceAllString(s, " ")
	s = reCommaRuns.ReplaceAllString(s, ", ")
	s = reEdgeJunk.ReplaceAllString(s, "")
	// trailing one-or-two letter fragments are glyph debris from the
	// Hindi column, not part of the address
	s = reTailNoise.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// SqueezeRepeats collapses runs of three or more identical characters to a
// single occurrence. Digit runs are kept verbatim since quantities and
// amounts legitimately repeat digits.
func SqueezeRepeats(s string) string {
	runes := []rune(s)
	if len(runes) < 3 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if n := j - i; n >= 3 && !unicode.IsDigit(runes[i]) {
			b.WriteRune(runes[i])
		} else {
			for k := 0; k < n; k++ {
				b.WriteRune(runes[i])
			}
		}
		i = j
	}
	return b.String()
}
