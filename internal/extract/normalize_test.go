package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"17-Feb-2025", "2025-02-17"},
		{"24-04-2025", "2025-04-24"},
		{"24/04/2025", "2025-04-24"},
		{"2025-04-24", "2025-04-24"},
		{"January 15, 2025", "2025-01-15"},
		{"15 January 2025", "2025-01-15"},
		{"05-Jan-24", "2024-01-05"},
		{"Generated somewhere around 19-Apr-2025 apparently", "2025-04-19"},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		require.True(t, ok, "ParseDate(%q)", tc.in)
		assert.Equal(t, tc.want, got.Format("2006-01-02"), "ParseDate(%q)", tc.in)
	}

	_, ok := ParseDate("not a date")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestParseDateTime(t *testing.T) {
	got, ok := ParseDateTime("12-06-2025 15:00:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC), got)

	got, ok = ParseDateTime("12-06-2025 15:30")
	require.True(t, ok)
	assert.Equal(t, 15, got.Hour())
	assert.Equal(t, 30, got.Minute())

	// date-only stamps still parse, at midnight
	got, ok = ParseDateTime("12-06-2025")
	require.True(t, ok)
	assert.Equal(t, 0, got.Hour())
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, "1408.5", NormalizeNumber("1,408.5"))
	assert.Equal(t, "887799881199.9922", NormalizeNumber("887,799,,881199..9922"))
	assert.Equal(t, "520", NormalizeNumber("Rs. 520 only"))
	assert.Equal(t, "", NormalizeNumber("no digits"))
	assert.Equal(t, "", NormalizeNumber(""))
}

func TestParseDecimalAndInt(t *testing.T) {
	assert.InDelta(t, 1408.5, ParseDecimal("1,408.5", 0), 0.0001)
	assert.InDelta(t, -1, ParseDecimal("junk", -1), 0.0001)
	assert.Equal(t, 1234, ParseInt("1,234.99", 0))
	assert.Equal(t, 120, ParseInt("120 (Days)", 0))
	assert.Equal(t, 7, ParseInt("", 7))
}

func TestExtractEmail(t *testing.T) {
	t.Run("plain address", func(t *testing.T) {
		assert.Equal(t, "buycon1.dgqa-mod@gov.in", ExtractEmail("Email ID : buycon1.dgqa-mod@gov.in"))
	})

	t.Run("obfuscated at and dot", func(t *testing.T) {
		assert.Equal(t, "buyer@dgqa.gov.in", ExtractEmail("buyer (at) dgqa (dot) gov (dot) in"))
	})

	t.Run("gov domain missing the at sign", func(t *testing.T) {
		assert.Equal(t, "user110@a.gov.in", ExtractEmail("user110agov.in"))
		assert.Equal(t, "buyer110@gov.in", ExtractEmail("buyer110.gov.in"))
	})

	t.Run("dotted token fallback", func(t *testing.T) {
		assert.Equal(t, "sobbyindustries.gmail.com", ExtractEmail("sobbyindustries.gmail.com"))
	})

	t.Run("nothing sensible", func(t *testing.T) {
		assert.Equal(t, "", ExtractEmail("NA"))
		assert.Equal(t, "", ExtractEmail(""))
	})
}

func TestExtractPhone(t *testing.T) {
	assert.Equal(t, "0731-2423508", ExtractPhone("Contact No. 0731-2423508"))
	assert.Equal(t, "+91 98930 12345", ExtractPhone("call +91 98930 12345 today"))
	assert.Equal(t, "", ExtractPhone("no phone here"))
	assert.Equal(t, "", ExtractPhone("12-34"))
}

func TestCleanValue(t *testing.T) {
	assert.Equal(t, "GEM/2025/B/6171152", CleanValue("ID : GEM/2025/B/6171152"))
	assert.Equal(t, "value", CleanValue(". : value"))
	assert.Equal(t, "a b", CleanValue("  a   b  "))
	assert.Equal(t, "", CleanValue("   "))
}
