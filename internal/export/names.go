package export

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultReportKeywords is the stock filter for the procurement report:
// army and defence organisation markers seen in the document corpus.
var DefaultReportKeywords = []string{
	"India Army", "HQ", "Headquarters", "ARMD", "Army",
	"Military", "Defence", "COD", "Ordnance",
}

var (
	reUnsafeFile = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	reBadSheet   = regexp.MustCompile(`[:\\/?*\[\]]`)
)

// SafeFilename turns a natural key like "GEM/2025/B/6171152" into a name a
// filesystem accepts.
func SafeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = reUnsafeFile.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "export"
	}
	return name
}

// SafeSheetName bounds a sheet name to Excel's rules: no :\/?*[] and at
// most 31 characters.
func SafeSheetName(name string) string {
	name = reBadSheet.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "Sheet"
	}
	cut := 31
	if len(name) > cut {
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
