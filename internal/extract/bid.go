package extract

import (
	"regexp"
	"strings"

	"github.com/gemdocs/procurement-tracker/internal/textclean"
)

// BidFields is the normalized shape extracted from a bid invitation PDF.
// Datetime stamps keep their printed "dd-mm-yyyy hh:mm:ss" form; Dated is
// normalized to YYYY-MM-DD.
type BidFields struct {
	BidNumber              string `json:"bid_number"`
	Dated                  string `json:"dated,omitempty"`
	Beneficiary            string `json:"beneficiary,omitempty"`
	Ministry               string `json:"ministry,omitempty"`
	Department             string `json:"department,omitempty"`
	Organisation           string `json:"organisation,omitempty"`
	OfficeName             string `json:"office_name,omitempty"`
	ItemCategory           string `json:"item_category,omitempty"`
	ContractPeriod         string `json:"contract_period,omitempty"`
	BidEndDatetime         string `json:"bid_end_datetime,omitempty"`
	BidOpenDatetime        string `json:"bid_open_datetime,omitempty"`
	BidOfferValidityDays   int    `json:"bid_offer_validity_days,omitempty"`
	DeliveryDays           int    `json:"delivery_days,omitempty"`
	TotalQuantity          string `json:"total_quantity,omitempty"`
	EstimatedBidValue      string `json:"estimated_bid_value,omitempty"`
	SimilarCategory        string `json:"similar_category,omitempty"`
	MSEExemption           string `json:"mse_exemption,omitempty"`
	StartupExemption       string `json:"startup_exemption,omitempty"`
	MSEPurchasePreference  string `json:"mse_purchase_preference,omitempty"`
	MIIPurchasePreference  string `json:"mii_purchase_preference,omitempty"`
	EvaluationMethod       string `json:"evaluation_method,omitempty"`
	InspectionRequired     string `json:"inspection_required,omitempty"`
	PrimaryProductCategory string `json:"primary_product_category,omitempty"`
	DeliveryAddress        string `json:"delivery_address,omitempty"`
	ScopeOfSupply          string `json:"scope_of_supply,omitempty"`
	OptionClause           string `json:"option_clause,omitempty"`
	SourceFile             string `json:"source_file,omitempty"`
}

// Bid documents print most fields twice: "Label\nvalue" in the summary
// table and "label : value" in body text. Each chain tries the table form
// first, matching the original template's priority.
var (
	reBidNumberLabeled = regexp.MustCompile(`(?i)bid\s*number\s*:\s*([^\n]+)`)
	reBidNoLabeled     = regexp.MustCompile(`(?i)bid\s*no\s*:\s*([^\n]+)`)
	reBidGEMToken      = regexp.MustCompile(`GEM\d{4}[A-Z]\d+`)
	reBidGEMDashed     = regexp.MustCompile(`GEM\w*-\d+`)

	reDatedLabeled = regexp.MustCompile(`(?i)dated\s*:\s*([^\n]+)`)

	reBeneficiary = regexp.MustCompile(`(?i)beneficiary\s*:\s*([^\n]+)`)

	reMinistryTable = regexp.MustCompile(`(?i)Ministry(?:/State Name|\s+Name)?\s*\n([^\n]+)`)
	reMinistryInline = regexp.MustCompile(`(?i)ministry\s*:\s*([^\n]+)`)

	reDepartmentTable  = regexp.MustCompile(`(?i)Department Name\s*\n?([^\n]+)`)
	reDepartmentInline = regexp.MustCompile(`(?i)department\s*:\s*([^\n]+)`)

	reOrganisationTable  = regexp.MustCompile(`(?i)Organisation Name\s*\n?([^\n]+)`)
	reOrganisationInline = regexp.MustCompile(`(?i)organisation\s*:\s*([^\n]+)`)

	reOfficeName = regexp.MustCompile(`(?i)Office Name\s*\n?([^\n]+)`)

	reContractPeriodTable  = regexp.MustCompile(`(?i)Contract Period\s*\n([^\n]+)`)
	reContractPeriodInline = regexp.MustCompile(`(?i)contract\s*period\s*:\s*([^\n]+)`)

	reItemCategoryTable  = regexp.MustCompile(`(?is)Item Category\s*\n(.{1,500}?)(?:\n\w[^\n]*:|GeMARPTS|$)`)
	reItemCategoryInline = regexp.MustCompile(`(?is)item\s*category\s*:\s*(.{1,500}?)(?:\n\w[^\n]*:|$)`)

	reBidEndTable   = regexp.MustCompile(`(?i)Bid End Date/Time\s*\n?(\d{2}-\d{2}-\d{4}[ ]\d{2}:\d{2}(?::\d{2})?)`)
	reBidEndInline  = regexp.MustCompile(`(?i)bid\s*end\s*date\s*/\s*time\s*:\s*([^\n]+)`)
	reBidOpenTable  = regexp.MustCompile(`(?i)Bid Opening\s*\n?Date/Time\s*\n?(\d{2}-\d{2}-\d{4}[ ]\d{2}:\d{2}(?::\d{2})?)`)
	reBidOpenInline = regexp.MustCompile(`(?i)bid\s*opening\s*date\s*/\s*time\s*:\s*([^\n]+)`)

	reValidityTable  = regexp.MustCompile(`(?is)Bid Offer\s*\nValidity \(From End Date\)\s*\n([^\n]+)`)
	reValidityInline = regexp.MustCompile(`(?i)bid\s*offer\s*validity.*?(\d+)\s*\(?Days\)?`)

	reTotalQuantity  = regexp.MustCompile(`(?i)Total Quantity\s*\n?\s*(\d[\d,]*)`)
	reEstimatedValue = regexp.MustCompile(`(?i)Estimated Bid Value\s*\n?\s*([\d,.]+)`)

	reSimilarCategory  = regexp.MustCompile(`(?i)Similar Category\s*\n([^\n]+)`)
	reMSEExemption     = regexp.MustCompile(`(?is)MSE Exemption for Years of\s*\nExperience and Turnover\s*\n([^\n]+)`)
	reStartupExemption = regexp.MustCompile(`(?is)Startup Exemption for Years of\s*\nExperience and Turnover\s*\n([^\n]+)`)

	reMSEPreference = regexp.MustCompile(`(?i)MSE Purchase\s*\n?Preference\s*\n?\s*(Yes|No)`)
	reMIIPreference = regexp.MustCompile(`(?i)MII Purchase\s*\n?Preference\s*\n?\s*(Yes|No)`)

	reEvaluationMethod = regexp.MustCompile(`(?i)Evaluation Method\s*\n?([^\n]+)`)
	reInspection       = regexp.MustCompile(`(?i)Inspection Required[\s\S]{0,120}?\b(Yes|No)\b`)
	rePrimaryCategory  = regexp.MustCompile(`(?i)Primary product category\s*\n?\s*(.+)`)
	reDeliveryDays     = regexp.MustCompile(`(?i)Delivery\s+Days\s+(\d+)`)
	reDeliveryAddress  = regexp.MustCompile(`(?i)Address\s+([A-Za-z0-9, &\-]+)`)
	reScopeOfSupply    = regexp.MustCompile(`(?i)Scope of supply\s*[^\n:]*:\s*([^\n]+)`)
	reOptionClause     = regexp.MustCompile(`(?is)OPTION CLAUSE:?\s*(.{1,500}?)(?:\n\d+\.|\z)`)
)

// ExtractBid pulls every field it can from already-cleaned bid text.
// Only BidNumber matters for whether the document is usable.
func ExtractBid(text string) BidFields {
	var f BidFields

	f.BidNumber = firstGroup(text, reBidNumberLabeled, reBidNoLabeled)
	if f.BidNumber == "" {
		if m := reBidGEMToken.FindString(text); m != "" {
			f.BidNumber = m
		} else if m := reBidGEMDashed.FindString(text); m != "" {
			f.BidNumber = m
		}
	}

	if raw := firstGroup(text, reDatedLabeled); raw != "" {
		if t, ok := ParseDate(raw); ok {
			f.Dated = t.Format("2006-01-02")
		}
	}
	if f.Dated == "" {
		if m := reDateToken.FindString(text); m != "" {
			if t, ok := ParseDate(m); ok {
				f.Dated = t.Format("2006-01-02")
			}
		}
	}

	f.Beneficiary = firstGroup(text, reBeneficiary)
	f.Ministry = firstGroup(text, reMinistryTable, reMinistryInline)
	f.Department = firstGroup(text, reDepartmentTable, reDepartmentInline)
	f.Organisation = firstGroup(text, reOrganisationTable, reOrganisationInline)
	f.OfficeName = firstGroup(text, reOfficeName)
	f.ContractPeriod = firstGroup(text, reContractPeriodTable, reContractPeriodInline)

	if raw := firstGroup(text, reItemCategoryTable, reItemCategoryInline); raw != "" {
		f.ItemCategory = strings.Join(strings.Fields(textclean.RemoveHindi(raw)), " ")
	}

	f.BidEndDatetime = firstGroup(text, reBidEndTable, reBidEndInline)
	f.BidOpenDatetime = firstGroup(text, reBidOpenTable, reBidOpenInline)

	if raw := firstGroup(text, reValidityTable, reValidityInline); raw != "" {
		f.BidOfferValidityDays = ParseInt(raw, 0)
	}
	if m := reDeliveryDays.FindStringSubmatch(text); m != nil {
		f.DeliveryDays = ParseInt(m[1], 0)
	}
	if m := reTotalQuantity.FindStringSubmatch(text); m != nil {
		f.TotalQuantity = NormalizeNumber(m[1])
	}
	if m := reEstimatedValue.FindStringSubmatch(text); m != nil {
		f.EstimatedBidValue = NormalizeNumber(m[1])
	}

	f.SimilarCategory = firstGroup(text, reSimilarCategory)
	f.MSEExemption = yesNoWord(firstGroup(text, reMSEExemption))
	f.StartupExemption = yesNoWord(firstGroup(text, reStartupExemption))
	f.MSEPurchasePreference = firstGroup(text, reMSEPreference)
	f.MIIPurchasePreference = firstGroup(text, reMIIPreference)
	f.EvaluationMethod = firstGroup(text, reEvaluationMethod)
	f.InspectionRequired = firstGroup(text, reInspection)
	f.PrimaryProductCategory = firstGroup(text, rePrimaryCategory)
	f.DeliveryAddress = textclean.CleanAddress(firstGroup(text, reDeliveryAddress))
	f.ScopeOfSupply = firstGroup(text, reScopeOfSupply)

	if m := reOptionClause.FindStringSubmatch(text); m != nil {
		f.OptionClause = strings.Join(strings.Fields(m[1]), " ")
	}

	return f
}

// firstGroup returns the cleaned first capture of the first pattern that
// matches, or "".
func firstGroup(text string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return CleanValue(textclean.EnglishSegment(m[1]))
		}
	}
	return ""
}

// yesNoWord reduces exemption cells to their Yes/No token; the table cell
// sometimes carries trailing explanation text.
func yesNoWord(s string) string {
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(strings.ToLower(s), "yes"):
		return "Yes"
	case strings.HasPrefix(strings.ToLower(s), "no"):
		return "No"
	}
	return s
}
