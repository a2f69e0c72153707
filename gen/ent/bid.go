// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/bid"
	"github.com/google/uuid"
)

// Bid is the model entity for the Bid schema.
type Bid struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BidNumber holds the value of the "bid_number" field.
	BidNumber string `json:"bid_number,omitempty"`
	// Dated holds the value of the "dated" field.
	Dated *time.Time `json:"dated,omitempty"`
	// Beneficiary holds the value of the "beneficiary" field.
	Beneficiary string `json:"beneficiary,omitempty"`
	// Ministry holds the value of the "ministry" field.
	Ministry string `json:"ministry,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// Organisation holds the value of the "organisation" field.
	Organisation string `json:"organisation,omitempty"`
	// OfficeName holds the value of the "office_name" field.
	OfficeName string `json:"office_name,omitempty"`
	// ItemCategory holds the value of the "item_category" field.
	ItemCategory string `json:"item_category,omitempty"`
	// ContractPeriod holds the value of the "contract_period" field.
	ContractPeriod string `json:"contract_period,omitempty"`
	// BidEndDatetime holds the value of the "bid_end_datetime" field.
	BidEndDatetime *time.Time `json:"bid_end_datetime,omitempty"`
	// BidOpenDatetime holds the value of the "bid_open_datetime" field.
	BidOpenDatetime *time.Time `json:"bid_open_datetime,omitempty"`
	// BidOfferValidityDays holds the value of the "bid_offer_validity_days" field.
	BidOfferValidityDays *int `json:"bid_offer_validity_days,omitempty"`
	// DeliveryDays holds the value of the "delivery_days" field.
	DeliveryDays *int `json:"delivery_days,omitempty"`
	// TotalQuantity holds the value of the "total_quantity" field.
	TotalQuantity string `json:"total_quantity,omitempty"`
	// EstimatedBidValue holds the value of the "estimated_bid_value" field.
	EstimatedBidValue string `json:"estimated_bid_value,omitempty"`
	// SimilarCategory holds the value of the "similar_category" field.
	SimilarCategory string `json:"similar_category,omitempty"`
	// MseExemption holds the value of the "mse_exemption" field.
	MseExemption string `json:"mse_exemption,omitempty"`
	// StartupExemption holds the value of the "startup_exemption" field.
	StartupExemption string `json:"startup_exemption,omitempty"`
	// MsePurchasePreference holds the value of the "mse_purchase_preference" field.
	MsePurchasePreference string `json:"mse_purchase_preference,omitempty"`
	// MiiPurchasePreference holds the value of the "mii_purchase_preference" field.
	MiiPurchasePreference string `json:"mii_purchase_preference,omitempty"`
	// EvaluationMethod holds the value of the "evaluation_method" field.
	EvaluationMethod string `json:"evaluation_method,omitempty"`
	// InspectionRequired holds the value of the "inspection_required" field.
	InspectionRequired string `json:"inspection_required,omitempty"`
	// PrimaryProductCategory holds the value of the "primary_product_category" field.
	PrimaryProductCategory string `json:"primary_product_category,omitempty"`
	// DeliveryAddress holds the value of the "delivery_address" field.
	DeliveryAddress string `json:"delivery_address,omitempty"`
	// ScopeOfSupply holds the value of the "scope_of_supply" field.
	ScopeOfSupply string `json:"scope_of_supply,omitempty"`
	// OptionClause holds the value of the "option_clause" field.
	OptionClause string `json:"option_clause,omitempty"`
	// SourceFile holds the value of the "source_file" field.
	SourceFile string `json:"source_file,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BidQuery when eager-loading is set.
	Edges        BidEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BidEdges holds the relations/edges for other nodes in the graph.
type BidEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BidEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bid) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bid.FieldEmbedding:
			values[i] = new([]byte)
		case bid.FieldBidOfferValidityDays, bid.FieldDeliveryDays:
			values[i] = new(sql.NullInt64)
		case bid.FieldBidNumber, bid.FieldBeneficiary, bid.FieldMinistry, bid.FieldDepartment, bid.FieldOrganisation, bid.FieldOfficeName, bid.FieldItemCategory, bid.FieldContractPeriod, bid.FieldTotalQuantity, bid.FieldEstimatedBidValue, bid.FieldSimilarCategory, bid.FieldMseExemption, bid.FieldStartupExemption, bid.FieldMsePurchasePreference, bid.FieldMiiPurchasePreference, bid.FieldEvaluationMethod, bid.FieldInspectionRequired, bid.FieldPrimaryProductCategory, bid.FieldDeliveryAddress, bid.FieldScopeOfSupply, bid.FieldOptionClause, bid.FieldSourceFile, bid.FieldRawText:
			values[i] = new(sql.NullString)
		case bid.FieldDated, bid.FieldBidEndDatetime, bid.FieldBidOpenDatetime, bid.FieldCreatedAt, bid.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case bid.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bid fields.
func (_m *Bid) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bid.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bid.FieldBidNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bid_number", values[i])
			} else if value.Valid {
				_m.BidNumber = value.String
			}
		case bid.FieldDated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dated", values[i])
			} else if value.Valid {
				_m.Dated = new(time.Time)
				*_m.Dated = value.Time
			}
		case bid.FieldBeneficiary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field beneficiary", values[i])
			} else if value.Valid {
				_m.Beneficiary = value.String
			}
		case bid.FieldMinistry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ministry", values[i])
			} else if value.Valid {
				_m.Ministry = value.String
			}
		case bid.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case bid.FieldOrganisation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organisation", values[i])
			} else if value.Valid {
				_m.Organisation = value.String
			}
		case bid.FieldOfficeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field office_name", values[i])
			} else if value.Valid {
				_m.OfficeName = value.String
			}
		case bid.FieldItemCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_category", values[i])
			} else if value.Valid {
				_m.ItemCategory = value.String
			}
		case bid.FieldContractPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_period", values[i])
			} else if value.Valid {
				_m.ContractPeriod = value.String
			}
		case bid.FieldBidEndDatetime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field bid_end_datetime", values[i])
			} else if value.Valid {
				_m.BidEndDatetime = new(time.Time)
				*_m.BidEndDatetime = value.Time
			}
		case bid.FieldBidOpenDatetime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field bid_open_datetime", values[i])
			} else if value.Valid {
				_m.BidOpenDatetime = new(time.Time)
				*_m.BidOpenDatetime = value.Time
			}
		case bid.FieldBidOfferValidityDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bid_offer_validity_days", values[i])
			} else if value.Valid {
				_m.BidOfferValidityDays = new(int)
				*_m.BidOfferValidityDays = int(value.Int64)
			}
		case bid.FieldDeliveryDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_days", values[i])
			} else if value.Valid {
				_m.DeliveryDays = new(int)
				*_m.DeliveryDays = int(value.Int64)
			}
		case bid.FieldTotalQuantity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_quantity", values[i])
			} else if value.Valid {
				_m.TotalQuantity = value.String
			}
		case bid.FieldEstimatedBidValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_bid_value", values[i])
			} else if value.Valid {
				_m.EstimatedBidValue = value.String
			}
		case bid.FieldSimilarCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field similar_category", values[i])
			} else if value.Valid {
				_m.SimilarCategory = value.String
			}
		case bid.FieldMseExemption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mse_exemption", values[i])
			} else if value.Valid {
				_m.MseExemption = value.String
			}
		case bid.FieldStartupExemption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field startup_exemption", values[i])
			} else if value.Valid {
				_m.StartupExemption = value.String
			}
		case bid.FieldMsePurchasePreference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mse_purchase_preference", values[i])
			} else if value.Valid {
				_m.MsePurchasePreference = value.String
			}
		case bid.FieldMiiPurchasePreference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mii_purchase_preference", values[i])
			} else if value.Valid {
				_m.MiiPurchasePreference = value.String
			}
		case bid.FieldEvaluationMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_method", values[i])
			} else if value.Valid {
				_m.EvaluationMethod = value.String
			}
		case bid.FieldInspectionRequired:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inspection_required", values[i])
			} else if value.Valid {
				_m.InspectionRequired = value.String
			}
		case bid.FieldPrimaryProductCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_product_category", values[i])
			} else if value.Valid {
				_m.PrimaryProductCategory = value.String
			}
		case bid.FieldDeliveryAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_address", values[i])
			} else if value.Valid {
				_m.DeliveryAddress = value.String
			}
		case bid.FieldScopeOfSupply:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_of_supply", values[i])
			} else if value.Valid {
				_m.ScopeOfSupply = value.String
			}
		case bid.FieldOptionClause:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field option_clause", values[i])
			} else if value.Valid {
				_m.OptionClause = value.String
			}
		case bid.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = value.String
			}
		case bid.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case bid.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case bid.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bid.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Bid.
// This includes values selected through modifiers, order, etc.
func (_m *Bid) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the Bid entity.
func (_m *Bid) QueryJobs() *ExtractJobQuery {
	return NewBidClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Bid.
// Note that you need to call Bid.Unwrap() before calling this method if this Bid
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bid) Update() *BidUpdateOne {
	return NewBidClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bid entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bid) Unwrap() *Bid {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Bid is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bid) String() string {
	var builder strings.Builder
	builder.WriteString("Bid(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bid_number=")
	builder.WriteString(_m.BidNumber)
	builder.WriteString(", ")
	if v := _m.Dated; v != nil {
		builder.WriteString("dated=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("beneficiary=")
	builder.WriteString(_m.Beneficiary)
	builder.WriteString(", ")
	builder.WriteString("ministry=")
	builder.WriteString(_m.Ministry)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	builder.WriteString("organisation=")
	builder.WriteString(_m.Organisation)
	builder.WriteString(", ")
	builder.WriteString("office_name=")
	builder.WriteString(_m.OfficeName)
	builder.WriteString(", ")
	builder.WriteString("item_category=")
	builder.WriteString(_m.ItemCategory)
	builder.WriteString(", ")
	builder.WriteString("contract_period=")
	builder.WriteString(_m.ContractPeriod)
	builder.WriteString(", ")
	if v := _m.BidEndDatetime; v != nil {
		builder.WriteString("bid_end_datetime=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BidOpenDatetime; v != nil {
		builder.WriteString("bid_open_datetime=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.BidOfferValidityDays; v != nil {
		builder.WriteString("bid_offer_validity_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeliveryDays; v != nil {
		builder.WriteString("delivery_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_quantity=")
	builder.WriteString(_m.TotalQuantity)
	builder.WriteString(", ")
	builder.WriteString("estimated_bid_value=")
	builder.WriteString(_m.EstimatedBidValue)
	builder.WriteString(", ")
	builder.WriteString("similar_category=")
	builder.WriteString(_m.SimilarCategory)
	builder.WriteString(", ")
	builder.WriteString("mse_exemption=")
	builder.WriteString(_m.MseExemption)
	builder.WriteString(", ")
	builder.WriteString("startup_exemption=")
	builder.WriteString(_m.StartupExemption)
	builder.WriteString(", ")
	builder.WriteString("mse_purchase_preference=")
	builder.WriteString(_m.MsePurchasePreference)
	builder.WriteString(", ")
	builder.WriteString("mii_purchase_preference=")
	builder.WriteString(_m.MiiPurchasePreference)
	builder.WriteString(", ")
	builder.WriteString("evaluation_method=")
	builder.WriteString(_m.EvaluationMethod)
	builder.WriteString(", ")
	builder.WriteString("inspection_required=")
	builder.WriteString(_m.InspectionRequired)
	builder.WriteString(", ")
	builder.WriteString("primary_product_category=")
	builder.WriteString(_m.PrimaryProductCategory)
	builder.WriteString(", ")
	builder.WriteString("delivery_address=")
	builder.WriteString(_m.DeliveryAddress)
	builder.WriteString(", ")
	builder.WriteString("scope_of_supply=")
	builder.WriteString(_m.ScopeOfSupply)
	builder.WriteString(", ")
	builder.WriteString("option_clause=")
	builder.WriteString(_m.OptionClause)
	builder.WriteString(", ")
	builder.WriteString("source_file=")
	builder.WriteString(_m.SourceFile)
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Bids is a parsable slice of Bid.
type Bids []*Bid
