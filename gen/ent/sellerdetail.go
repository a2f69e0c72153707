// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/google/uuid"
)

// SellerDetail is the model entity for the SellerDetail schema.
type SellerDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// GemSellerID holds the value of the "gem_seller_id" field.
	GemSellerID string `json:"gem_seller_id,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// ContactNo holds the value of the "contact_no" field.
	ContactNo string `json:"contact_no,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// MsmeRegistrationNumber holds the value of the "msme_registration_number" field.
	MsmeRegistrationNumber string `json:"msme_registration_number,omitempty"`
	// Gstin holds the value of the "gstin" field.
	Gstin string `json:"gstin,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SellerDetailQuery when eager-loading is set.
	Edges        SellerDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SellerDetailEdges holds the relations/edges for other nodes in the graph.
type SellerDetailEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SellerDetailEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SellerDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sellerdetail.FieldGemSellerID, sellerdetail.FieldCompanyName, sellerdetail.FieldContactNo, sellerdetail.FieldEmail, sellerdetail.FieldAddress, sellerdetail.FieldMsmeRegistrationNumber, sellerdetail.FieldGstin:
			values[i] = new(sql.NullString)
		case sellerdetail.FieldID, sellerdetail.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SellerDetail fields.
func (_m *SellerDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sellerdetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sellerdetail.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case sellerdetail.FieldGemSellerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gem_seller_id", values[i])
			} else if value.Valid {
				_m.GemSellerID = value.String
			}
		case sellerdetail.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case sellerdetail.FieldContactNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_no", values[i])
			} else if value.Valid {
				_m.ContactNo = value.String
			}
		case sellerdetail.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case sellerdetail.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case sellerdetail.FieldMsmeRegistrationNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field msme_registration_number", values[i])
			} else if value.Valid {
				_m.MsmeRegistrationNumber = value.String
			}
		case sellerdetail.FieldGstin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gstin", values[i])
			} else if value.Valid {
				_m.Gstin = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SellerDetail.
// This includes values selected through modifiers, order, etc.
func (_m *SellerDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the SellerDetail entity.
func (_m *SellerDetail) QueryContract() *ContractQuery {
	return NewSellerDetailClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this SellerDetail.
// Note that you need to call SellerDetail.Unwrap() before calling this method if this SellerDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SellerDetail) Update() *SellerDetailUpdateOne {
	return NewSellerDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SellerDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SellerDetail) Unwrap() *SellerDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SellerDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SellerDetail) String() string {
	var builder strings.Builder
	builder.WriteString("SellerDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("gem_seller_id=")
	builder.WriteString(_m.GemSellerID)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("contact_no=")
	builder.WriteString(_m.ContactNo)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("msme_registration_number=")
	builder.WriteString(_m.MsmeRegistrationNumber)
	builder.WriteString(", ")
	builder.WriteString("gstin=")
	builder.WriteString(_m.Gstin)
	builder.WriteByte(')')
	return builder.String()
}

// SellerDetails is a parsable slice of SellerDetail.
type SellerDetails []*SellerDetail
