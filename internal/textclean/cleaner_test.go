package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Run("strips cid artifacts", func(t *testing.T) {
		got := CleanText("Contract No(cid:123): GEMC-511687790000002")
		assert.Equal(t, "Contract No: GEMC-511687790000002", got)
	})

	t.Run("strips control characters", func(t *testing.T) {
		got := CleanText("Buyer\x00 Details\x1f here")
		assert.Equal(t, "Buyer Details here", got)
	})

	t.Run("collapses horizontal whitespace but keeps newlines", func(t *testing.T) {
		got := CleanText("Ministry  :   Ministry of Defence\nDepartment :  DoD")
		assert.Equal(t, "Ministry : Ministry of Defence\nDepartment : DoD", got)
	})

	t.Run("collapses blank line runs", func(t *testing.T) {
		got := CleanText("a\n\n\n\n\nb")
		assert.Equal(t, "a\n\nb", got)
	})

	t.Run("empty in empty out", func(t *testing.T) {
		assert.Equal(t, "", CleanText(""))
	})
}

func TestRemoveHindi(t *testing.T) {
	t.Run("removes devanagari runs", func(t *testing.T) {
		got := RemoveHindi("क्रेता विवरण Buyer Details")
		assert.Equal(t, "Buyer Details", got)
	})

	t.Run("removes dangling separators left behind", func(t *testing.T) {
		got := RemoveHindi("संगठन / Organisation Details")
		assert.Equal(t, "Organisation Details", got)
	})

	t.Run("keeps pure english text", func(t *testing.T) {
		got := RemoveHindi("Seller Details")
		assert.Equal(t, "Seller Details", got)
	})
}

func TestEnglishSegment(t *testing.T) {
	t.Run("takes text before the bilingual separator", func(t *testing.T) {
		got := EnglishSegment("Contact No. || संपर्क नंबर")
		assert.Equal(t, "Contact No.", got)
	})

	t.Run("falls back to devanagari stripping", func(t *testing.T) {
		got := EnglishSegment("Email ID ईमेल आईडी")
		assert.Equal(t, "Email ID", got)
	})
}

func TestCleanAddress(t *testing.T) {
	t.Run("drops table junk and normalizes commas", func(t *testing.T) {
		got := CleanAddress("12 Cantonment Road ,, Ambala Cantt , , Haryana-133001 **")
		assert.Equal(t, "12 Cantonment Road, Ambala Cantt, Haryana-133001", got)
	})

	t.Run("removes non-ascii echoes", func(t *testing.T) {
		got := CleanAddress("COD Chheoki इलाहाबाद, Prayagraj")
		assert.Equal(t, "COD Chheoki, Prayagraj", got)
	})

	t.Run("strips leading and trailing punctuation", func(t *testing.T) {
		got := CleanAddress(", - Sector 9, Pocket A -")
		assert.Equal(t, "Sector 9, Pocket A", got)
	})
}

func TestSqueezeRepeats(t *testing.T) {
	t.Run("collapses three or more repeats", func(t *testing.T) {
		assert.Equal(t, "Adres", SqueezeRepeats("Addddressssss"))
	})

	t.Run("keeps legitimate doubles", func(t *testing.T) {
		assert.Equal(t, "Officee", SqueezeRepeats("Officee"))
	})

	t.Run("keeps digit runs", func(t *testing.T) {
		assert.Equal(t, "5000061", SqueezeRepeats("5000061"))
	})
}
