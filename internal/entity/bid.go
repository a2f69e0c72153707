package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bid represents a bid document row for data transfer between layers.
type Bid struct {
	ID                     uuid.UUID  `json:"id"`
	BidNumber              string     `json:"bid_number"`
	Dated                  *time.Time `json:"dated,omitempty"`
	Beneficiary            string     `json:"beneficiary,omitempty"`
	Ministry               string     `json:"ministry,omitempty"`
	Department             string     `json:"department,omitempty"`
	Organisation           string     `json:"organisation,omitempty"`
	OfficeName             string     `json:"office_name,omitempty"`
	ItemCategory           string     `json:"item_category,omitempty"`
	ContractPeriod         string     `json:"contract_period,omitempty"`
	BidEndDatetime         *time.Time `json:"bid_end_datetime,omitempty"`
	BidOpenDatetime        *time.Time `json:"bid_open_datetime,omitempty"`
	BidOfferValidityDays   *int       `json:"bid_offer_validity_days,omitempty"`
	DeliveryDays           *int       `json:"delivery_days,omitempty"`
	TotalQuantity          string     `json:"total_quantity,omitempty"`
	EstimatedBidValue      string     `json:"estimated_bid_value,omitempty"`
	SimilarCategory        string     `json:"similar_category,omitempty"`
	MSEExemption           string     `json:"mse_exemption,omitempty"`
	StartupExemption       string     `json:"startup_exemption,omitempty"`
	MSEPurchasePreference  string     `json:"mse_purchase_preference,omitempty"`
	MIIPurchasePreference  string     `json:"mii_purchase_preference,omitempty"`
	EvaluationMethod       string     `json:"evaluation_method,omitempty"`
	InspectionRequired     string     `json:"inspection_required,omitempty"`
	PrimaryProductCategory string     `json:"primary_product_category,omitempty"`
	DeliveryAddress        string     `json:"delivery_address,omitempty"`
	ScopeOfSupply          string     `json:"scope_of_supply,omitempty"`
	OptionClause           string     `json:"option_clause,omitempty"`
	SourceFile             string     `json:"source_file,omitempty"`
	RawText                string     `json:"raw_text,omitempty"`
	HasEmbedding           bool       `json:"has_embedding"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}
