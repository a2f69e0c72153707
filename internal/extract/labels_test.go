package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLabel(t *testing.T) {
	t.Run("exact variants", func(t *testing.T) {
		assert.Equal(t, "email", MatchLabel("Email ID"))
		assert.Equal(t, "email", MatchLabel("E-mail"))
		assert.Equal(t, "contact_no", MatchLabel("Contact No."))
		assert.Equal(t, "gstin", MatchLabel("GSTIN"))
		assert.Equal(t, "unit_price", MatchLabel("Unit Price (INR)"))
		assert.Equal(t, "admin_approval_designation", MatchLabel("Designation of Administrative Approval"))
	})

	t.Run("ocr-doubled glyphs still match", func(t *testing.T) {
		assert.Equal(t, "contact_no", MatchLabel("Coonnttaacctt Noo"))
		assert.Equal(t, "ministry", MatchLabel("Ministtry"))
	})

	t.Run("near misses stay unmatched", func(t *testing.T) {
		assert.Equal(t, "", MatchLabel("Contact Person"))
		assert.Equal(t, "", MatchLabel("random text"))
		assert.Equal(t, "", MatchLabel(""))
	})
}

func TestMatchHeader(t *testing.T) {
	assert.True(t, MatchHeader("Organisation Details", "Organisation Details"))
	assert.True(t, MatchHeader("Organisation Detaills", "Organisation Details"))
	assert.True(t, MatchHeader("Consignee Detail contd.", "Consignee Detail"))
	assert.False(t, MatchHeader("Buyer Details", "Seller Details"))
	assert.False(t, MatchHeader("", "Seller Details"))
}

func TestSplitKV(t *testing.T) {
	t.Run("double colon form", func(t *testing.T) {
		k, v, ok := SplitKV("Payment Mode :: Online")
		assert.True(t, ok)
		assert.Equal(t, "Payment Mode", k)
		assert.Equal(t, "Online", v)
	})

	t.Run("single colon splits once", func(t *testing.T) {
		k, v, ok := SplitKV("Bid End Date/Time : 12-06-2025 15:00:00")
		assert.True(t, ok)
		assert.Equal(t, "Bid End Date/Time", k)
		assert.Equal(t, "12-06-2025 15:00:00", v)
	})

	t.Run("no separator", func(t *testing.T) {
		_, _, ok := SplitKV("Organisation Details")
		assert.False(t, ok)
	})
}

func TestSectionFields(t *testing.T) {
	section := "Buyer Details / क्रेता विवरण\n" +
		"Designation : Deputy Director\n" +
		"Contact No. : 0731-2423508-\n" +
		"Email ID : buycon1.dgqa-mod@gov.in\n" +
		"GSTIN : 23AAAGD0576B1Z7\n" +
		"Address : Office of DGQA, Naval Dockyard,\n" +
		"Mumbai, MAHARASHTRA-400023\n"

	fields := SectionFields(section)

	assert.Equal(t, "Deputy Director", fields["designation"])
	assert.Equal(t, "0731-2423508-", fields["contact_no"])
	assert.Equal(t, "buycon1.dgqa-mod@gov.in", fields["email"])
	assert.Equal(t, "23AAAGD0576B1Z7", fields["gstin"])
	// the wrapped address line is stitched back on
	assert.Equal(t, "Office of DGQA, Naval Dockyard, Mumbai, MAHARASHTRA-400023", fields["address"])
}

func TestSectionFieldsBilingual(t *testing.T) {
	section := "Seller Details\n" +
		"कंपनी का नाम/Company Name : SOBBY INDUSTRIES\n" +
		"GSTIN : 23ABFPS2773P1ZV\n"

	fields := SectionFields(section)
	// the hindi label echo and its separator are stripped before the split
	assert.Equal(t, "SOBBY INDUSTRIES", fields["company_name"])
	assert.Equal(t, "23ABFPS2773P1ZV", fields["gstin"])
}
