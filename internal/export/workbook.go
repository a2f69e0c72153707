package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gemdocs/procurement-tracker/internal/entity"
	"github.com/gemdocs/procurement-tracker/internal/search"
)

const defaultSheet = "Sheet1"

type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func addSheet(f *excelize.File, name string) (*sheetWriter, error) {
	name = SafeSheetName(name)
	if idx, _ := f.GetSheetIndex(name); idx == -1 {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}
	return &sheetWriter{f: f, sheet: name, row: 1}, nil
}

func (w *sheetWriter) writeRow(values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, w.row)
		_ = w.f.SetCellValue(w.sheet, cell, v)
	}
	w.row++
}

func (w *sheetWriter) setWidths(widths ...float64) {
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = w.f.SetColWidth(w.sheet, col, col, width)
	}
}

// finalize drops the construction sheet, activates the named one and
// serializes the workbook.
func finalize(f *excelize.File, active string) ([]byte, error) {
	_ = f.DeleteSheet(defaultSheet)
	if idx, _ := f.GetSheetIndex(SafeSheetName(active)); idx >= 0 {
		f.SetActiveSheet(idx)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

type pair struct {
	field string
	value any
}

func writePairSheet(f *excelize.File, name string, pairs []pair) error {
	w, err := addSheet(f, name)
	if err != nil {
		return err
	}
	w.writeRow("Field", "Value")
	for _, p := range pairs {
		w.writeRow(p.field, p.value)
	}
	w.setWidths(32, 72)
	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func intOrBlank(p *int) any {
	if p == nil {
		return ""
	}
	return *p
}

// buildContractWorkbook lays a full record out one sheet per document
// section, mirroring how the source contracts read.
func buildContractWorkbook(rec *entity.ContractRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	err := writePairSheet(f, "Contract", []pair{
		{"Contract No", rec.Contract.ContractNo},
		{"Generated Date", formatDate(rec.Contract.GeneratedDate)},
	})
	if err != nil {
		return nil, err
	}

	org := rec.Organisation
	if org == nil {
		org = &entity.OrganisationDetail{}
	}
	err = writePairSheet(f, "Organisation", []pair{
		{"Type", org.Type},
		{"Ministry", org.Ministry},
		{"Department", org.Department},
		{"Organisation Name", org.OrganisationName},
		{"Office Zone", org.OfficeZone},
	})
	if err != nil {
		return nil, err
	}

	buyer := rec.Buyer
	if buyer == nil {
		buyer = &entity.BuyerDetail{}
	}
	err = writePairSheet(f, "Buyer", []pair{
		{"Designation", buyer.Designation},
		{"Contact No", buyer.ContactNo},
		{"Email", buyer.Email},
		{"GSTIN", buyer.GSTIN},
		{"Address", buyer.Address},
	})
	if err != nil {
		return nil, err
	}

	fin := rec.FinancialApproval
	if fin == nil {
		fin = &entity.FinancialApproval{}
	}
	err = writePairSheet(f, "Financial Approval", []pair{
		{"IFD Concurrence", yesNo(fin.IFDConcurrence)},
		{"Admin Approval Designation", fin.AdminApprovalDesignation},
		{"Financial Approval Designation", fin.FinancialApprovalDesignation},
	})
	if err != nil {
		return nil, err
	}

	pay := rec.PayingAuthority
	if pay == nil {
		pay = &entity.PayingAuthority{}
	}
	err = writePairSheet(f, "Paying Authority", []pair{
		{"Role", pay.Role},
		{"Payment Mode", pay.PaymentMode},
		{"Designation", pay.Designation},
		{"Email", pay.Email},
		{"GSTIN", pay.GSTIN},
		{"Address", pay.Address},
	})
	if err != nil {
		return nil, err
	}

	seller := rec.Seller
	if seller == nil {
		seller = &entity.SellerDetail{}
	}
	err = writePairSheet(f, "Seller", []pair{
		{"GeM Seller ID", seller.GeMSellerID},
		{"Company Name", seller.CompanyName},
		{"Contact No", seller.ContactNo},
		{"Email", seller.Email},
		{"Address", seller.Address},
		{"MSME Registration Number", seller.MSMERegistrationNumber},
		{"GSTIN", seller.GSTIN},
	})
	if err != nil {
		return nil, err
	}

	products, err := addSheet(f, "Products")
	if err != nil {
		return nil, err
	}
	products.writeRow("#", "Product Name", "Brand", "Brand Type", "Catalogue Status",
		"Selling As", "Category Name Quadrant", "Model", "HSN Code",
		"Ordered Quantity", "Unit", "Unit Price", "Tax Bifurcation", "Total Price", "Note")
	for i, p := range rec.Products {
		products.writeRow(i+1, p.ProductName, p.Brand, p.BrandType, p.CatalogueStatus,
			p.SellingAs, p.CategoryNameQuadrant, p.Model, p.HSNCode,
			p.OrderedQuantity, p.Unit, p.UnitPrice, p.TaxBifurcation, p.TotalPrice, p.Note)
	}
	products.setWidths(4, 36, 16, 14, 16, 14, 24, 14, 12, 14, 10, 12, 14, 12, 24)

	specs, err := addSheet(f, "Specifications")
	if err != nil {
		return nil, err
	}
	specs.writeRow("Product", "Category", "Sub-Spec", "Value")
	for _, p := range rec.Products {
		for _, sp := range p.Specifications {
			specs.writeRow(p.ProductName, sp.Category, sp.SubSpec, sp.Value)
		}
	}
	specs.setWidths(36, 20, 28, 36)

	consignees, err := addSheet(f, "Consignees")
	if err != nil {
		return nil, err
	}
	consignees.writeRow("Product", "S.No", "Designation", "Email", "Contact", "GSTIN",
		"Address", "Lot No", "Quantity", "Delivery Start", "Delivery End", "Delivery To")
	for _, p := range rec.Products {
		for _, c := range p.Consignees {
			consignees.writeRow(p.ProductName, intOrBlank(c.SNo), c.Designation, c.Email,
				c.Contact, c.GSTIN, c.Address, c.LotNo, intOrBlank(c.Quantity),
				formatDate(c.DeliveryStart), formatDate(c.DeliveryEnd), c.DeliveryTo)
		}
	}
	consignees.setWidths(36, 6, 20, 26, 16, 20, 48, 14, 10, 14, 14, 20)

	if err := writePairSheet(f, "ePBG", []pair{{"Detail", rec.EPBGDetail}}); err != nil {
		return nil, err
	}

	terms, err := addSheet(f, "Terms")
	if err != nil {
		return nil, err
	}
	terms.writeRow("#", "Clause")
	for i, clause := range rec.Terms {
		terms.writeRow(i+1, clause)
	}
	terms.setWidths(4, 100)

	return f, nil
}

func bidPairs(b *entity.Bid) []pair {
	return []pair{
		{"Bid Number", b.BidNumber},
		{"Dated", formatDate(b.Dated)},
		{"Beneficiary", b.Beneficiary},
		{"Ministry", b.Ministry},
		{"Department", b.Department},
		{"Organisation", b.Organisation},
		{"Office Name", b.OfficeName},
		{"Item Category", b.ItemCategory},
		{"Contract Period", b.ContractPeriod},
		{"Bid End Date/Time", formatDateTime(b.BidEndDatetime)},
		{"Bid Opening Date/Time", formatDateTime(b.BidOpenDatetime)},
		{"Bid Offer Validity (Days)", intOrBlank(b.BidOfferValidityDays)},
		{"Delivery Days", intOrBlank(b.DeliveryDays)},
		{"Total Quantity", b.TotalQuantity},
		{"Estimated Bid Value", b.EstimatedBidValue},
		{"Similar Category", b.SimilarCategory},
		{"MSE Exemption", b.MSEExemption},
		{"Startup Exemption", b.StartupExemption},
		{"MSE Purchase Preference", b.MSEPurchasePreference},
		{"MII Purchase Preference", b.MIIPurchasePreference},
		{"Evaluation Method", b.EvaluationMethod},
		{"Inspection Required", b.InspectionRequired},
		{"Primary Product Category", b.PrimaryProductCategory},
		{"Delivery Address", b.DeliveryAddress},
		{"Scope of Supply", b.ScopeOfSupply},
		{"Option Clause", truncate(b.OptionClause, 500)},
		{"Source File", b.SourceFile},
	}
}

func buildBidWorkbook(b *entity.Bid) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := writePairSheet(f, "Bid", bidPairs(b)); err != nil {
		return nil, err
	}
	return f, nil
}

func writeContractsSheet(f *excelize.File, recs []*entity.ContractRecord) error {
	w, err := addSheet(f, "Contracts")
	if err != nil {
		return err
	}
	w.writeRow("Contract No", "Generated Date", "Ministry", "Department", "Organisation",
		"Office Zone", "Buyer Designation", "Buyer Email", "Seller", "Seller GSTIN",
		"Product", "Quantity", "Unit Price", "Total Price")
	for _, rec := range recs {
		var ministry, department, orgName, officeZone string
		if org := rec.Organisation; org != nil {
			ministry, department, orgName, officeZone = org.Ministry, org.Department, org.OrganisationName, org.OfficeZone
		}
		var buyerDesignation, buyerEmail string
		if b := rec.Buyer; b != nil {
			buyerDesignation, buyerEmail = b.Designation, b.Email
		}
		var sellerName, sellerGSTIN string
		if s := rec.Seller; s != nil {
			sellerName, sellerGSTIN = s.CompanyName, s.GSTIN
		}
		var productName, quantity, unitPrice, totalPrice string
		if len(rec.Products) > 0 {
			p := rec.Products[0]
			productName, quantity, unitPrice, totalPrice = p.ProductName, p.OrderedQuantity, p.UnitPrice, p.TotalPrice
		}
		w.writeRow(rec.Contract.ContractNo, formatDate(rec.Contract.GeneratedDate),
			ministry, department, orgName, officeZone, buyerDesignation, buyerEmail,
			sellerName, sellerGSTIN, productName, quantity, unitPrice, totalPrice)
	}
	w.setWidths(24, 14, 26, 26, 22, 18, 22, 26, 26, 20, 32, 10, 12, 12)
	return nil
}

func writeBidsSheet(f *excelize.File, bids []*entity.Bid) error {
	w, err := addSheet(f, "Bids")
	if err != nil {
		return err
	}
	w.writeRow("Bid Number", "Dated", "Ministry", "Department", "Organisation",
		"Office Name", "Item Category", "Total Quantity", "Estimated Bid Value",
		"Bid End Date/Time", "Delivery Days", "Evaluation Method")
	for _, b := range bids {
		w.writeRow(b.BidNumber, formatDate(b.Dated), b.Ministry, b.Department,
			b.Organisation, b.OfficeName, truncate(b.ItemCategory, 140), b.TotalQuantity,
			b.EstimatedBidValue, formatDateTime(b.BidEndDatetime),
			intOrBlank(b.DeliveryDays), b.EvaluationMethod)
	}
	w.setWidths(24, 12, 26, 26, 22, 22, 40, 14, 18, 20, 12, 26)
	return nil
}

func buildReportWorkbook(keywords []string, minFields int, results *search.KeywordResults) (*excelize.File, error) {
	f := excelize.NewFile()

	err := writePairSheet(f, "Summary", []pair{
		{"Generated", time.Now().UTC().Format("2006-01-02 15:04:05")},
		{"Keywords", strings.Join(keywords, ", ")},
		{"Min Fields", minFields},
		{"Contracts Matched", len(results.Contracts)},
		{"Bids Matched", len(results.Bids)},
	})
	if err != nil {
		return nil, err
	}
	if err := writeContractsSheet(f, results.Contracts); err != nil {
		return nil, err
	}
	if err := writeBidsSheet(f, results.Bids); err != nil {
		return nil, err
	}
	return f, nil
}
