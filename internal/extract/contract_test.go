package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContract = `Contract / अनुबंध
Contract No : GEMC-511687790000002
Generated Date : 17-Feb-2025
Organisation Details / संगठन विवरण
Type : Central Government
Ministry : Ministry of Defence
Department : Department of Military Affairs
Organisation Name : Indian Army
Office Zone : Sujanpur
Buyer Details / क्रेता विवरण
Designation : Deputy Director
Contact No. : 0731-2423508-
Email ID : buycon1.dgqa-mod@gov.in
GSTIN : 23AAAGD0576B1Z7
Address : Office of DGQA, Naval Dockyard, Mumbai, MAHARASHTRA-400023
Financial Approval Detail / वित्तीय स्वीकृति विवरण
IFD Concurrence : No
Designation of Administrative Approval : Director
Designation of Financial Approval : IFA
Paying Authority Details / भुगतान प्राधिकरण विवरण
Role : PAO
Payment Mode : Offline
Designation : Controller of Defence Accounts
Email ID : cda.army@nic.in
GSTIN : NA
Address : CDA Office, Pune, MAHARASHTRA
Seller Details / विक्रेता विवरण
GeM Seller ID : A51B170000761
Company Name : SOBBY INDUSTRIES
Contact No. : 09302147437
Email ID : sobbyindustries.gmail.com
MSME Registration number : UDYAM-MP-23-0012345
GSTIN : 23ABFPS2773P1ZV
Address : Plot 12, Industrial Area, Indore, MADHYA PRADESH-452015
Product Details / उत्पाद विवरण
Item Description : Strobel Cloth for Shoe Upper
Product Name : SOBBY Cotton Plain Strobel Cloth
Brand : SOBBY
Brand Type : Registered
Catalogue Status : Approved
Selling As : OEM
Category Name & Quadrant : Textile Q2
Model : SC-90
HSN Code : 5208
Ordered Quantity : 520
Unit Price (INR) : 188
Consignee Detail / परेषिती विवरण
S.No : 1
Designation : Commandant
Email ID : consignee.cod@gov.in
Contact : 0512-2451229
GSTIN : 09AAAGC0123F1Z5
Address : Central Ordnance Depot, Kanpur, UTTAR PRADESH-208004
Lot No : LOT-2025-01
Quantity : 520
Delivery Start : 18-Feb-2025
Delivery End : 19-Apr-2025
Product Specification / उत्पाद विनिर्देश
Specification  Sub-Spec  Value
Material  Fabric type  Cotton
Width  Nominal width  90 cm
ePBG Detail / ईपीबीजी विवरण
Advisory Bank : State Bank of India
ePBG Percentage(%) : 0.00
Terms and Conditions / नियम और शर्तें
1. General Terms : Payment within 10 days of CRAC.
2. Buyer Added Bid Specific terms apply.
`

func TestExtractContract(t *testing.T) {
	f := ExtractContract(sampleContract)

	assert.Equal(t, "GEMC-511687790000002", f.ContractNo)
	assert.Equal(t, "2025-02-17", f.GeneratedDate)

	assert.Equal(t, "Central Government", f.Organisation.Type)
	assert.Equal(t, "Ministry of Defence", f.Organisation.Ministry)
	assert.Equal(t, "Department of Military Affairs", f.Organisation.Department)
	assert.Equal(t, "Indian Army", f.Organisation.OrganisationName)
	assert.Equal(t, "Sujanpur", f.Organisation.OfficeZone)

	assert.Equal(t, "Deputy Director", f.Buyer.Designation)
	assert.Equal(t, "0731-2423508-", f.Buyer.ContactNo)
	assert.Equal(t, "buycon1.dgqa-mod@gov.in", f.Buyer.Email)
	assert.Equal(t, "23AAAGD0576B1Z7", f.Buyer.GSTIN)
	assert.Equal(t, "Office of DGQA, Naval Dockyard, Mumbai, MAHARASHTRA-400023", f.Buyer.Address)

	assert.False(t, f.Financial.IFDConcurrence)
	assert.Equal(t, "Director", f.Financial.AdminDesignation)
	assert.Equal(t, "IFA", f.Financial.FinancialDesignation)

	assert.Equal(t, "PAO", f.Paying.Role)
	assert.Equal(t, "Offline", f.Paying.PaymentMode)
	assert.Equal(t, "Controller of Defence Accounts", f.Paying.Designation)
	assert.Equal(t, "cda.army@nic.in", f.Paying.Email)

	assert.Equal(t, "A51B170000761", f.Seller.GemSellerID)
	assert.Equal(t, "SOBBY INDUSTRIES", f.Seller.CompanyName)
	assert.Equal(t, "09302147437", f.Seller.ContactNo)
	assert.Equal(t, "sobbyindustries.gmail.com", f.Seller.Email)
	assert.Equal(t, "UDYAM-MP-23-0012345", f.Seller.MSMERegistration)

	require.Len(t, f.Products, 1)
	p := f.Products[0]
	assert.Equal(t, "SOBBY Cotton Plain Strobel Cloth", p.ProductName)
	assert.Equal(t, "SOBBY", p.Brand)
	assert.Equal(t, "Textile Q2", p.CategoryQuadrant)
	assert.Equal(t, "SC-90", p.Model)
	assert.Equal(t, "5208", p.HSNCode)
	assert.Equal(t, "520", p.OrderedQuantity)
	assert.Equal(t, "188", p.UnitPrice)

	require.Len(t, f.Consignees, 1)
	c := f.Consignees[0]
	assert.Equal(t, 1, c.SNo)
	assert.Equal(t, "Commandant", c.Designation)
	assert.Equal(t, "consignee.cod@gov.in", c.Email)
	assert.Equal(t, "0512-2451229", c.Contact)
	assert.Equal(t, "LOT-2025-01", c.LotNo)
	assert.Equal(t, 520, c.Quantity)
	assert.Equal(t, "2025-02-18", c.DeliveryStart)
	assert.Equal(t, "2025-04-19", c.DeliveryEnd)

	require.Len(t, f.Specifications, 2)
	assert.Equal(t, "Material", f.Specifications[0].Category)
	assert.Equal(t, "Fabric type", f.Specifications[0].SubSpec)
	assert.Equal(t, "Cotton", f.Specifications[0].Value)

	assert.Contains(t, f.EPBG, "State Bank of India")

	require.Len(t, f.Terms, 2)
	assert.Contains(t, f.Terms[0], "Payment within 10 days")
}

func TestExtractContractFallbacks(t *testing.T) {
	t.Run("contract number from bare token", func(t *testing.T) {
		f := ExtractContract("some header\nGEMC-511687790000099 issued under GeM\n")
		assert.Equal(t, "GEMC-511687790000099", f.ContractNo)
	})

	t.Run("generated date from loose token", func(t *testing.T) {
		f := ExtractContract("Contract No : GEMC-511687790000002\nprinted 17-Feb-2025\n")
		assert.Equal(t, "2025-02-17", f.GeneratedDate)
	})

	t.Run("missing everything stays empty", func(t *testing.T) {
		f := ExtractContract("completely unrelated text")
		assert.Equal(t, "", f.ContractNo)
		assert.Empty(t, f.Products)
	})
}

func TestUnitPriceChain(t *testing.T) {
	t.Run("labeled price wins", func(t *testing.T) {
		fields := map[string]string{}
		got := extractUnitPrice("Unit Price (INR) : 1,408.5\n520 NA 700", fields)
		assert.Equal(t, "1408.5", got)
	})

	t.Run("na pair takes the larger number", func(t *testing.T) {
		got := extractUnitPrice("520 NA 700", map[string]string{})
		assert.Equal(t, "700", got)
	})

	t.Run("pieces pair takes the larger number", func(t *testing.T) {
		got := extractUnitPrice("520 pieces 188", map[string]string{})
		assert.Equal(t, "520", got)
	})

	t.Run("bare three digit fallback", func(t *testing.T) {
		got := extractUnitPrice("price approx 188 rupees", map[string]string{})
		assert.Equal(t, "188", got)
	})

	t.Run("nothing found", func(t *testing.T) {
		assert.Equal(t, "", extractUnitPrice("no price", map[string]string{}))
	})
}

func TestSliceSections(t *testing.T) {
	sections := SliceSections(sampleContract)

	require.Contains(t, sections, SectionOrganisation)
	require.Contains(t, sections, SectionBuyer)
	require.Contains(t, sections, SectionTerms)

	assert.Contains(t, sections[SectionOrganisation], "Ministry of Defence")
	assert.NotContains(t, sections[SectionOrganisation], "Deputy Director")
	assert.Contains(t, sections[SectionSeller], "SOBBY INDUSTRIES")
	assert.NotContains(t, sections[SectionSeller], "Strobel Cloth for Shoe Upper")
}

func TestSliceSectionsFuzzyHeader(t *testing.T) {
	text := "Organisation Detaills\nMinistry : Ministry of Defence\nBuyer Details\nDesignation : X\n"
	sections := SliceSections(text)
	require.Contains(t, sections, SectionOrganisation)
	assert.Contains(t, sections[SectionOrganisation], "Ministry of Defence")
	assert.NotContains(t, sections[SectionOrganisation], "Designation")
}
