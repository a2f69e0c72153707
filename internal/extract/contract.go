package extract

import (
	"regexp"
	"strings"

	"github.com/gemdocs/procurement-tracker/internal/textclean"
)

// ContractFields is the normalized shape extracted from a contract PDF.
// Everything is best-effort except ContractNo, which callers must check.
type ContractFields struct {
	ContractNo    string `json:"contract_no"`
	GeneratedDate string `json:"generated_date,omitempty"` // YYYY-MM-DD

	Organisation   OrganisationFields    `json:"organisation"`
	Buyer          BuyerFields           `json:"buyer"`
	Financial      FinancialFields       `json:"financial_approval"`
	Paying         PayingFields          `json:"paying_authority"`
	Seller         SellerFields          `json:"seller"`
	Products       []ProductFields       `json:"products,omitempty"`
	Consignees     []ConsigneeFields     `json:"consignees,omitempty"`
	Specifications []SpecificationFields `json:"specifications,omitempty"`
	EPBG           string                `json:"epbg_detail,omitempty"`
	Terms          []string              `json:"terms,omitempty"`
}

type OrganisationFields struct {
	Type             string `json:"type,omitempty"`
	Ministry         string `json:"ministry,omitempty"`
	Department       string `json:"department,omitempty"`
	OrganisationName string `json:"organisation_name,omitempty"`
	OfficeZone       string `json:"office_zone,omitempty"`
}

type BuyerFields struct {
	Designation string `json:"designation,omitempty"`
	ContactNo   string `json:"contact_no,omitempty"`
	Email       string `json:"email,omitempty"`
	GSTIN       string `json:"gstin,omitempty"`
	Address     string `json:"address,omitempty"`
}

type FinancialFields struct {
	IFDConcurrence       bool   `json:"ifd_concurrence"`
	AdminDesignation     string `json:"admin_approval_designation,omitempty"`
	FinancialDesignation string `json:"financial_approval_designation,omitempty"`
}

type PayingFields struct {
	Role        string `json:"role,omitempty"`
	PaymentMode string `json:"payment_mode,omitempty"`
	Designation string `json:"designation,omitempty"`
	Email       string `json:"email,omitempty"`
	GSTIN       string `json:"gstin,omitempty"`
	Address     string `json:"address,omitempty"`
}

type SellerFields struct {
	GemSellerID      string `json:"gem_seller_id,omitempty"`
	CompanyName      string `json:"company_name,omitempty"`
	ContactNo        string `json:"contact_no,omitempty"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address,omitempty"`
	MSMERegistration string `json:"msme_registration_number,omitempty"`
	GSTIN            string `json:"gstin,omitempty"`
}

// ProductFields keeps every numeric as the normalized string form; the
// source values ("1,408.5", "520 NA 520") do not round-trip through floats.
type ProductFields struct {
	ProductName      string `json:"product_name,omitempty"`
	Brand            string `json:"brand,omitempty"`
	BrandType        string `json:"brand_type,omitempty"`
	CatalogueStatus  string `json:"catalogue_status,omitempty"`
	SellingAs        string `json:"selling_as,omitempty"`
	CategoryQuadrant string `json:"category_name_quadrant,omitempty"`
	Model            string `json:"model,omitempty"`
	HSNCode          string `json:"hsn_code,omitempty"`
	OrderedQuantity  string `json:"ordered_quantity,omitempty"`
	Unit             string `json:"unit,omitempty"`
	UnitPrice        string `json:"unit_price,omitempty"`
	TaxBifurcation   string `json:"tax_bifurcation,omitempty"`
	TotalPrice       string `json:"total_price,omitempty"`
	Note             string `json:"note,omitempty"`
}

type SpecificationFields struct {
	Category string `json:"category,omitempty"`
	SubSpec  string `json:"sub_spec,omitempty"`
	Value    string `json:"value,omitempty"`
}

type ConsigneeFields struct {
	SNo           int    `json:"s_no,omitempty"`
	Designation   string `json:"designation,omitempty"`
	Email         string `json:"email,omitempty"`
	Contact       string `json:"contact,omitempty"`
	GSTIN         string `json:"gstin,omitempty"`
	Address       string `json:"address,omitempty"`
	Item          string `json:"item,omitempty"`
	LotNo         string `json:"lot_no,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	DeliveryStart string `json:"delivery_start,omitempty"` // YYYY-MM-DD
	DeliveryEnd   string `json:"delivery_end,omitempty"`   // YYYY-MM-DD
	DeliveryTo    string `json:"delivery_to,omitempty"`
}

var (
	reContractNoLabeled = regexp.MustCompile(`(?i)Contract\s+No\s*:\s*([^\n]+)`)
	reContractNoToken   = regexp.MustCompile(`GEMC-[\-\dA-Z]{10,}`)
	reGeneratedDate     = regexp.MustCompile(`(?i)Generated\s+Date\s*:\s*([^\n]+)`)
	reMonthDate         = regexp.MustCompile(`\d{1,2}[-/][A-Za-z]{3,9}[-/]\d{2,4}`)

	reQtyPieces   = regexp.MustCompile(`(\d+)\s+pieces`)
	reUnitPrice   = regexp.MustCompile(`(?i)Unit\s+Price\s*\(INR\)\s*:?\s*([\d,.]+)`)
	rePriceNA     = regexp.MustCompile(`(\d+)\s*NA\s*(\d+)`)
	rePricePieces = regexp.MustCompile(`(\d+)\s*pieces\s*(\d+)`)
	reBarePrice   = regexp.MustCompile(`\b(\d{3})\b`)
	reTotalPrice  = regexp.MustCompile(`(?i)Total\s+(?:Price|Order\s+Value)\s*(?:\(INR\))?\s*:?\s*([\d,.]+)`)

	reClauseStart = regexp.MustCompile(`^\d{1,3}[.)]\s+`)
	reCellSplit   = regexp.MustCompile(`\s\|\s|\s{2,}`)
)

// ExtractContract pulls every field it can from already-cleaned contract
// text. Absent fields come back zero-valued; only ContractNo matters for
// whether the document is usable.
func ExtractContract(text string) ContractFields {
	var f ContractFields

	if m := reContractNoLabeled.FindStringSubmatch(text); m != nil {
		f.ContractNo = CleanValue(textclean.EnglishSegment(m[1]))
	} else if m := reContractNoToken.FindString(text); m != "" {
		f.ContractNo = m
	}

	if m := reGeneratedDate.FindStringSubmatch(text); m != nil {
		if t, ok := ParseDate(m[1]); ok {
			f.GeneratedDate = t.Format("2006-01-02")
		}
	}
	if f.GeneratedDate == "" {
		if m := reMonthDate.FindString(text); m != "" {
			if t, ok := ParseDate(m); ok {
				f.GeneratedDate = t.Format("2006-01-02")
			}
		}
	}

	sections := SliceSections(text)

	org := SectionFields(sections[SectionOrganisation])
	f.Organisation = OrganisationFields{
		Type:             org["type"],
		Ministry:         org["ministry"],
		Department:       org["department"],
		OrganisationName: org["organisation_name"],
		OfficeZone:       org["office_zone"],
	}

	buyer := SectionFields(sections[SectionBuyer])
	f.Buyer = BuyerFields{
		Designation: buyer["designation"],
		ContactNo:   ExtractPhone(buyer["contact_no"]),
		Email:       ExtractEmail(buyer["email"]),
		GSTIN:       buyer["gstin"],
		Address:     textclean.CleanAddress(buyer["address"]),
	}

	fin := SectionFields(sections[SectionFinancial])
	f.Financial = FinancialFields{
		IFDConcurrence:       strings.EqualFold(fin["ifd_concurrence"], "yes"),
		AdminDesignation:     fin["admin_approval_designation"],
		FinancialDesignation: fin["financial_approval_designation"],
	}

	paying := SectionFields(sections[SectionPaying])
	f.Paying = PayingFields{
		Role:        paying["role"],
		PaymentMode: paying["payment_mode"],
		Designation: paying["designation"],
		Email:       ExtractEmail(paying["email"]),
		GSTIN:       paying["gstin"],
		Address:     textclean.CleanAddress(paying["address"]),
	}

	seller := SectionFields(sections[SectionSeller])
	f.Seller = SellerFields{
		GemSellerID:      seller["gem_seller_id"],
		CompanyName:      seller["company_name"],
		ContactNo:        ExtractPhone(seller["contact_no"]),
		Email:            ExtractEmail(seller["email"]),
		Address:          textclean.CleanAddress(seller["address"]),
		MSMERegistration: seller["msme_registration_number"],
		GSTIN:            seller["gstin"],
	}

	f.Products = extractProducts(sections[SectionProduct])
	f.Consignees = extractConsignees(sections[SectionConsignee])
	f.Specifications = parseSpecifications(sections[SectionSpecification])
	f.EPBG = extractEPBG(sections[SectionEPBG])
	f.Terms = parseTerms(sections[SectionTerms])

	return f
}

func extractProducts(section string) []ProductFields {
	if strings.TrimSpace(section) == "" {
		return nil
	}
	fields := SectionFields(section)
	p := ProductFields{
		ProductName:      fields["product_name"],
		Brand:            fields["brand"],
		BrandType:        fields["brand_type"],
		CatalogueStatus:  fields["catalogue_status"],
		SellingAs:        fields["selling_as"],
		CategoryQuadrant: fields["category_name_quadrant"],
		Model:            fields["model"],
		HSNCode:          fields["hsn_code"],
	}
	if fields["item"] != "" && p.ProductName == "" {
		p.ProductName = fields["item"]
	}

	if m := reQtyPieces.FindStringSubmatch(section); m != nil {
		p.OrderedQuantity = m[1]
		p.Unit = "pieces"
	} else if q := NormalizeNumber(fields["ordered_quantity"]); q != "" {
		p.OrderedQuantity = q
	}

	p.UnitPrice = extractUnitPrice(section, fields)

	if m := reTotalPrice.FindStringSubmatch(section); m != nil {
		p.TotalPrice = NormalizeNumber(m[1])
	} else if t := NormalizeNumber(fields["total_price"]); t != "" {
		p.TotalPrice = t
	}

	if p == (ProductFields{}) {
		return nil
	}
	return []ProductFields{p}
}

// extractUnitPrice walks the price fallback chain. The table renders
// "<qty> <tax> <price>" rows where tax is usually NA, so when only a bare
// pair survives, the larger number is the price.
func extractUnitPrice(section string, fields map[string]string) string {
	if m := reUnitPrice.FindStringSubmatch(section); m != nil {
		return NormalizeNumber(m[1])
	}
	if v := NormalizeNumber(fields["unit_price"]); v != "" {
		return v
	}
	if m := rePriceNA.FindStringSubmatch(section); m != nil {
		return maxNumeric(m[1], m[2])
	}
	if m := rePricePieces.FindStringSubmatch(section); m != nil {
		return maxNumeric(m[1], m[2])
	}
	if m := reBarePrice.FindStringSubmatch(section); m != nil {
		return m[1]
	}
	return ""
}

func maxNumeric(a, b string) string {
	if ParseDecimal(a, 0) >= ParseDecimal(b, 0) {
		return a
	}
	return b
}

func extractConsignees(section string) []ConsigneeFields {
	if strings.TrimSpace(section) == "" {
		return nil
	}
	fields := SectionFields(section)
	c := ConsigneeFields{
		SNo:         ParseInt(fields["s_no"], 0),
		Designation: fields["designation"],
		Email:       ExtractEmail(fields["email"]),
		Contact:     ExtractPhone(fields["contact_no"]),
		GSTIN:       fields["gstin"],
		Address:     textclean.CleanAddress(fields["address"]),
		Item:        fields["item"],
		LotNo:       fields["lot_no"],
		Quantity:    ParseInt(fields["quantity"], 0),
		DeliveryTo:  fields["delivery_to"],
	}
	if c.Quantity == 0 {
		if m := reQtyPieces.FindStringSubmatch(section); m != nil {
			c.Quantity = ParseInt(m[1], 0)
		}
	}

	if t, ok := ParseDate(fields["delivery_start"]); ok {
		c.DeliveryStart = t.Format("2006-01-02")
	}
	if t, ok := ParseDate(fields["delivery_end"]); ok {
		c.DeliveryEnd = t.Format("2006-01-02")
	}
	// fall back to the first two date tokens in the section; the table
	// prints delivery start before delivery end
	if c.DeliveryStart == "" || c.DeliveryEnd == "" {
		dates := reDateAny.FindAllString(section, 2)
		if c.DeliveryStart == "" && len(dates) > 0 {
			if t, ok := ParseDate(dates[0]); ok {
				c.DeliveryStart = t.Format("2006-01-02")
			}
		}
		if c.DeliveryEnd == "" && len(dates) > 1 {
			if t, ok := ParseDate(dates[1]); ok {
				c.DeliveryEnd = t.Format("2006-01-02")
			}
		}
	}

	if c == (ConsigneeFields{}) {
		return nil
	}
	return []ConsigneeFields{c}
}

func parseSpecifications(section string) []SpecificationFields {
	body := SectionBody(section)
	if body == "" {
		return nil
	}
	var specs []SpecificationFields
	for _, raw := range strings.Split(body, "\n") {
		line := textclean.EnglishSegment(raw)
		if line == "" {
			continue
		}
		var cells []string
		for _, c := range reCellSplit.Split(line, -1) {
			if c = strings.TrimSpace(c); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) < 2 {
			continue
		}
		head := strings.ToLower(cells[0])
		if strings.Contains(head, "specification") || head == "category" {
			continue
		}
		sp := SpecificationFields{}
		if len(cells) >= 3 {
			sp.Category, sp.SubSpec, sp.Value = cells[0], cells[1], cells[2]
		} else {
			sp.SubSpec, sp.Value = cells[0], cells[1]
		}
		specs = append(specs, sp)
	}
	return specs
}

func extractEPBG(section string) string {
	body := SectionBody(section)
	if body == "" {
		return ""
	}
	var lines []string
	for _, raw := range strings.Split(body, "\n") {
		if line := textclean.EnglishSegment(raw); line != "" {
			lines = append(lines, line)
		}
	}
	out := strings.TrimSpace(strings.Join(lines, "\n"))
	if len(out) > 2000 {
		out = out[:2000]
	}
	return out
}

func parseTerms(section string) []string {
	body := SectionBody(section)
	if body == "" {
		return nil
	}
	var terms []string
	current := ""
	flush := func() {
		if s := strings.TrimSpace(current); s != "" {
			terms = append(terms, s)
		}
		current = ""
	}
	for _, raw := range strings.Split(body, "\n") {
		line := textclean.EnglishSegment(raw)
		if line == "" {
			continue
		}
		if reClauseStart.MatchString(line) {
			flush()
			current = line
		} else if current != "" {
			current += " " + line
		} else {
			current = line
		}
	}
	flush()
	return terms
}
