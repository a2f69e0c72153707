// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/google/uuid"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractNo holds the value of the "contract_no" field.
	ContractNo string `json:"contract_no,omitempty"`
	// GeneratedDate holds the value of the "generated_date" field.
	GeneratedDate *time.Time `json:"generated_date,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges        ContractEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// Organisation holds the value of the organisation edge.
	Organisation *OrganisationDetail `json:"organisation,omitempty"`
	// Buyer holds the value of the buyer edge.
	Buyer *BuyerDetail `json:"buyer,omitempty"`
	// FinancialApproval holds the value of the financial_approval edge.
	FinancialApproval *FinancialApproval `json:"financial_approval,omitempty"`
	// PayingAuthority holds the value of the paying_authority edge.
	PayingAuthority *PayingAuthority `json:"paying_authority,omitempty"`
	// Seller holds the value of the seller edge.
	Seller *SellerDetail `json:"seller,omitempty"`
	// Epbg holds the value of the epbg edge.
	Epbg *EPBGDetail `json:"epbg,omitempty"`
	// Products holds the value of the products edge.
	Products []*Product `json:"products,omitempty"`
	// Terms holds the value of the terms edge.
	Terms []*TermsAndCondition `json:"terms,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// OrganisationOrErr returns the Organisation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) OrganisationOrErr() (*OrganisationDetail, error) {
	if e.Organisation != nil {
		return e.Organisation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organisationdetail.Label}
	}
	return nil, &NotLoadedError{edge: "organisation"}
}

// BuyerOrErr returns the Buyer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) BuyerOrErr() (*BuyerDetail, error) {
	if e.Buyer != nil {
		return e.Buyer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: buyerdetail.Label}
	}
	return nil, &NotLoadedError{edge: "buyer"}
}

// FinancialApprovalOrErr returns the FinancialApproval value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) FinancialApprovalOrErr() (*FinancialApproval, error) {
	if e.FinancialApproval != nil {
		return e.FinancialApproval, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: financialapproval.Label}
	}
	return nil, &NotLoadedError{edge: "financial_approval"}
}

// PayingAuthorityOrErr returns the PayingAuthority value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) PayingAuthorityOrErr() (*PayingAuthority, error) {
	if e.PayingAuthority != nil {
		return e.PayingAuthority, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: payingauthority.Label}
	}
	return nil, &NotLoadedError{edge: "paying_authority"}
}

// SellerOrErr returns the Seller value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) SellerOrErr() (*SellerDetail, error) {
	if e.Seller != nil {
		return e.Seller, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: sellerdetail.Label}
	}
	return nil, &NotLoadedError{edge: "seller"}
}

// EpbgOrErr returns the Epbg value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) EpbgOrErr() (*EPBGDetail, error) {
	if e.Epbg != nil {
		return e.Epbg, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: epbgdetail.Label}
	}
	return nil, &NotLoadedError{edge: "epbg"}
}

// ProductsOrErr returns the Products value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) ProductsOrErr() ([]*Product, error) {
	if e.loadedTypes[6] {
		return e.Products, nil
	}
	return nil, &NotLoadedError{edge: "products"}
}

// TermsOrErr returns the Terms value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) TermsOrErr() ([]*TermsAndCondition, error) {
	if e.loadedTypes[7] {
		return e.Terms, nil
	}
	return nil, &NotLoadedError{edge: "terms"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[8] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldEmbedding:
			values[i] = new([]byte)
		case contract.FieldContractNo, contract.FieldRawText:
			values[i] = new(sql.NullString)
		case contract.FieldGeneratedDate, contract.FieldCreatedAt, contract.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contract.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contract.FieldContractNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_no", values[i])
			} else if value.Valid {
				_m.ContractNo = value.String
			}
		case contract.FieldGeneratedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_date", values[i])
			} else if value.Valid {
				_m.GeneratedDate = new(time.Time)
				*_m.GeneratedDate = value.Time
			}
		case contract.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case contract.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contract.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrganisation queries the "organisation" edge of the Contract entity.
func (_m *Contract) QueryOrganisation() *OrganisationDetailQuery {
	return NewContractClient(_m.config).QueryOrganisation(_m)
}

// QueryBuyer queries the "buyer" edge of the Contract entity.
func (_m *Contract) QueryBuyer() *BuyerDetailQuery {
	return NewContractClient(_m.config).QueryBuyer(_m)
}

// QueryFinancialApproval queries the "financial_approval" edge of the Contract entity.
func (_m *Contract) QueryFinancialApproval() *FinancialApprovalQuery {
	return NewContractClient(_m.config).QueryFinancialApproval(_m)
}

// QueryPayingAuthority queries the "paying_authority" edge of the Contract entity.
func (_m *Contract) QueryPayingAuthority() *PayingAuthorityQuery {
	return NewContractClient(_m.config).QueryPayingAuthority(_m)
}

// QuerySeller queries the "seller" edge of the Contract entity.
func (_m *Contract) QuerySeller() *SellerDetailQuery {
	return NewContractClient(_m.config).QuerySeller(_m)
}

// QueryEpbg queries the "epbg" edge of the Contract entity.
func (_m *Contract) QueryEpbg() *EPBGDetailQuery {
	return NewContractClient(_m.config).QueryEpbg(_m)
}

// QueryProducts queries the "products" edge of the Contract entity.
func (_m *Contract) QueryProducts() *ProductQuery {
	return NewContractClient(_m.config).QueryProducts(_m)
}

// QueryTerms queries the "terms" edge of the Contract entity.
func (_m *Contract) QueryTerms() *TermsAndConditionQuery {
	return NewContractClient(_m.config).QueryTerms(_m)
}

// QueryJobs queries the "jobs" edge of the Contract entity.
func (_m *Contract) QueryJobs() *ExtractJobQuery {
	return NewContractClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_no=")
	builder.WriteString(_m.ContractNo)
	builder.WriteString(", ")
	if v := _m.GeneratedDate; v != nil {
		builder.WriteString("generated_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
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

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
