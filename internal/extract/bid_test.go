package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleBid = `बोली दस्तावेज़/Bid Document
Bid Number: GEM/2025/B/6171152
Dated: 15-05-2025
Bid Details/बोली विवरण
Bid End Date/Time
12-06-2025 15:00:00
Bid Opening
Date/Time
12-06-2025 15:30:00
Bid Offer
Validity (From End Date)
120 (Days)
Ministry/State Name
Ministry Of Defence
Department Name
Department Of Military Affairs
Organisation Name
Indian Army
Office Name
**Hq Northern Comd
Beneficiary:
State Government
Total Quantity
1600
Item Category
strobel cloth (Q2)
स्ट्रोबेल कपड़ा
GeMARPTS
Searched Strings
Primary product category
strobel cloth
MSE Exemption for Years of
Experience and Turnover
No
Startup Exemption for Years of
Experience and Turnover
No
MSE Purchase
Preference
Yes
MII Purchase
Preference
Yes
Estimated Bid Value
887,799.50
Evaluation Method
Total value wise evaluation
Inspection Required (By Empanelled
Inspection Authority / Agencies pre
dispatch inspection)
No
Similar Category
coir mats and mattings
Contract Period
3 Year(s)
Scope of supply (Bid price to include) : Supply and Installation
Consignee Address
COD Chheoki, Prayagraj - 211008
Delivery Days 45
1. Buyer Added Bid Specific Terms and Conditions
OPTION CLAUSE: The Purchaser reserves the right to increase or decrease the quantity to be ordered up to 25 percent of bid quantity at the time of placement of contract.
2. The bidder shall submit all documents through the portal.
`

func TestExtractBid(t *testing.T) {
	f := ExtractBid(sampleBid)

	assert.Equal(t, "GEM/2025/B/6171152", f.BidNumber)
	assert.Equal(t, "2025-05-15", f.Dated)
	assert.Equal(t, "State Government", f.Beneficiary)

	assert.Equal(t, "Ministry Of Defence", f.Ministry)
	assert.Equal(t, "Department Of Military Affairs", f.Department)
	assert.Equal(t, "Indian Army", f.Organisation)
	assert.Equal(t, "**Hq Northern Comd", f.OfficeName)

	assert.Equal(t, "strobel cloth (Q2)", f.ItemCategory)
	assert.Equal(t, "3 Year(s)", f.ContractPeriod)

	assert.Equal(t, "12-06-2025 15:00:00", f.BidEndDatetime)
	assert.Equal(t, "12-06-2025 15:30:00", f.BidOpenDatetime)
	assert.Equal(t, 120, f.BidOfferValidityDays)
	assert.Equal(t, 45, f.DeliveryDays)
	assert.Equal(t, "1600", f.TotalQuantity)
	assert.Equal(t, "887799.50", f.EstimatedBidValue)

	assert.Equal(t, "coir mats and mattings", f.SimilarCategory)
	assert.Equal(t, "No", f.MSEExemption)
	assert.Equal(t, "No", f.StartupExemption)
	assert.Equal(t, "Yes", f.MSEPurchasePreference)
	assert.Equal(t, "Yes", f.MIIPurchasePreference)
	assert.Equal(t, "Total value wise evaluation", f.EvaluationMethod)
	assert.Equal(t, "No", f.InspectionRequired)
	assert.Equal(t, "strobel cloth", f.PrimaryProductCategory)

	assert.Equal(t, "COD Chheoki, Prayagraj - 211008", f.DeliveryAddress)
	assert.Equal(t, "Supply and Installation", f.ScopeOfSupply)
	assert.Equal(t,
		"The Purchaser reserves the right to increase or decrease the quantity to be ordered up to 25 percent of bid quantity at the time of placement of contract.",
		f.OptionClause)
}

func TestExtractBidNumberFallbacks(t *testing.T) {
	t.Run("bid no label", func(t *testing.T) {
		f := ExtractBid("Bid No: GEM/2025/B/9999999\n")
		assert.Equal(t, "GEM/2025/B/9999999", f.BidNumber)
	})

	t.Run("bare gem token", func(t *testing.T) {
		f := ExtractBid("corrigendum for GEM2025B6171152 issued\n")
		assert.Equal(t, "GEM2025B6171152", f.BidNumber)
	})

	t.Run("dashed gem token", func(t *testing.T) {
		f := ExtractBid("reference GEMB-12345 addendum\n")
		assert.Equal(t, "GEMB-12345", f.BidNumber)
	})

	t.Run("nothing found", func(t *testing.T) {
		f := ExtractBid("unrelated circular\n")
		assert.Equal(t, "", f.BidNumber)
		assert.Equal(t, "", f.Dated)
		assert.Equal(t, 0, f.BidOfferValidityDays)
	})
}

func TestExtractBidInlineForms(t *testing.T) {
	text := "ministry : Ministry of Home Affairs\n" +
		"department : Department of Border Management\n" +
		"organisation : Directorate General\n" +
		"contract period : 2 Year(s)\n"
	f := ExtractBid(text)

	assert.Equal(t, "Ministry of Home Affairs", f.Ministry)
	assert.Equal(t, "Department of Border Management", f.Department)
	assert.Equal(t, "Directorate General", f.Organisation)
	assert.Equal(t, "2 Year(s)", f.ContractPeriod)
}

func TestYesNoWord(t *testing.T) {
	assert.Equal(t, "Yes", yesNoWord("Yes"))
	assert.Equal(t, "No", yesNoWord("no, bidder exempted"))
	assert.Equal(t, "", yesNoWord(""))
	assert.Equal(t, "Exempted", yesNoWord("Exempted"))
}
