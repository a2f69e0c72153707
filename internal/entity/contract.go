package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contract represents a contract header row for data transfer between layers.
type Contract struct {
	ID            uuid.UUID  `json:"id"`
	ContractNo    string     `json:"contract_no"`
	GeneratedDate *time.Time `json:"generated_date,omitempty"`
	RawText       string     `json:"raw_text,omitempty"`
	HasEmbedding  bool       `json:"has_embedding"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// OrganisationDetail is the contract's organisation block.
type OrganisationDetail struct {
	Type             string `json:"type,omitempty"`
	Ministry         string `json:"ministry,omitempty"`
	Department       string `json:"department,omitempty"`
	OrganisationName string `json:"organisation_name,omitempty"`
	OfficeZone       string `json:"office_zone,omitempty"`
}

// BuyerDetail is the contract's buyer block.
type BuyerDetail struct {
	Designation string `json:"designation,omitempty"`
	ContactNo   string `json:"contact_no,omitempty"`
	Email       string `json:"email,omitempty"`
	GSTIN       string `json:"gstin,omitempty"`
	Address     string `json:"address,omitempty"`
}

// FinancialApproval is the contract's financial approval block.
type FinancialApproval struct {
	IFDConcurrence               bool   `json:"ifd_concurrence"`
	AdminApprovalDesignation     string `json:"admin_approval_designation,omitempty"`
	FinancialApprovalDesignation string `json:"financial_approval_designation,omitempty"`
}

// PayingAuthority is the contract's paying authority block.
type PayingAuthority struct {
	Role        string `json:"role,omitempty"`
	PaymentMode string `json:"payment_mode,omitempty"`
	Designation string `json:"designation,omitempty"`
	Email       string `json:"email,omitempty"`
	GSTIN       string `json:"gstin,omitempty"`
	Address     string `json:"address,omitempty"`
}

// SellerDetail is the contract's seller block.
type SellerDetail struct {
	GeMSellerID            string `json:"gem_seller_id,omitempty"`
	CompanyName            string `json:"company_name,omitempty"`
	ContactNo              string `json:"contact_no,omitempty"`
	Email                  string `json:"email,omitempty"`
	Address                string `json:"address,omitempty"`
	MSMERegistrationNumber string `json:"msme_registration_number,omitempty"`
	GSTIN                  string `json:"gstin,omitempty"`
}

// Product is one product line on a contract.
type Product struct {
	ID                   uuid.UUID              `json:"id,omitempty"`
	ProductName          string                 `json:"product_name"`
	Brand                string                 `json:"brand,omitempty"`
	BrandType            string                 `json:"brand_type,omitempty"`
	CatalogueStatus      string                 `json:"catalogue_status,omitempty"`
	SellingAs            string                 `json:"selling_as,omitempty"`
	CategoryNameQuadrant string                 `json:"category_name_quadrant,omitempty"`
	Model                string                 `json:"model,omitempty"`
	HSNCode              string                 `json:"hsn_code,omitempty"`
	OrderedQuantity      string                 `json:"ordered_quantity,omitempty"`
	Unit                 string                 `json:"unit,omitempty"`
	UnitPrice            string                 `json:"unit_price,omitempty"`
	TaxBifurcation       string                 `json:"tax_bifurcation,omitempty"`
	TotalPrice           string                 `json:"total_price,omitempty"`
	Note                 string                 `json:"note,omitempty"`
	Specifications       []ProductSpecification `json:"specifications,omitempty"`
	Consignees           []ConsigneeDetail      `json:"consignees,omitempty"`
}

// ProductSpecification is one spec row under a product.
type ProductSpecification struct {
	Category string `json:"category,omitempty"`
	SubSpec  string `json:"sub_spec,omitempty"`
	Value    string `json:"value,omitempty"`
}

// ConsigneeDetail is one delivery line under a product.
type ConsigneeDetail struct {
	SNo           *int       `json:"s_no,omitempty"`
	Designation   string     `json:"designation,omitempty"`
	Email         string     `json:"email,omitempty"`
	Contact       string     `json:"contact,omitempty"`
	GSTIN         string     `json:"gstin,omitempty"`
	Address       string     `json:"address,omitempty"`
	LotNo         string     `json:"lot_no,omitempty"`
	Quantity      *int       `json:"quantity,omitempty"`
	DeliveryStart *time.Time `json:"delivery_start,omitempty"`
	DeliveryEnd   *time.Time `json:"delivery_end,omitempty"`
	DeliveryTo    string     `json:"delivery_to,omitempty"`
}

// ContractRecord aggregates the header and every satellite block.
type ContractRecord struct {
	Contract          Contract            `json:"contract"`
	Organisation      *OrganisationDetail `json:"organisation,omitempty"`
	Buyer             *BuyerDetail        `json:"buyer,omitempty"`
	FinancialApproval *FinancialApproval  `json:"financial_approval,omitempty"`
	PayingAuthority   *PayingAuthority    `json:"paying_authority,omitempty"`
	Seller            *SellerDetail       `json:"seller,omitempty"`
	EPBGDetail        string              `json:"epbg_detail,omitempty"`
	Products          []Product           `json:"products,omitempty"`
	Terms             []string            `json:"terms,omitempty"`
}
