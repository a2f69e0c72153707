// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/google/uuid"
)

// BuyerDetail is the model entity for the BuyerDetail schema.
type BuyerDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// Designation holds the value of the "designation" field.
	Designation string `json:"designation,omitempty"`
	// ContactNo holds the value of the "contact_no" field.
	ContactNo string `json:"contact_no,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Gstin holds the value of the "gstin" field.
	Gstin string `json:"gstin,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BuyerDetailQuery when eager-loading is set.
	Edges        BuyerDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BuyerDetailEdges holds the relations/edges for other nodes in the graph.
type BuyerDetailEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuyerDetailEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BuyerDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case buyerdetail.FieldDesignation, buyerdetail.FieldContactNo, buyerdetail.FieldEmail, buyerdetail.FieldGstin, buyerdetail.FieldAddress:
			values[i] = new(sql.NullString)
		case buyerdetail.FieldID, buyerdetail.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BuyerDetail fields.
func (_m *BuyerDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case buyerdetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case buyerdetail.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case buyerdetail.FieldDesignation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field designation", values[i])
			} else if value.Valid {
				_m.Designation = value.String
			}
		case buyerdetail.FieldContactNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_no", values[i])
			} else if value.Valid {
				_m.ContactNo = value.String
			}
		case buyerdetail.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case buyerdetail.FieldGstin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gstin", values[i])
			} else if value.Valid {
				_m.Gstin = value.String
			}
		case buyerdetail.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BuyerDetail.
// This includes values selected through modifiers, order, etc.
func (_m *BuyerDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the BuyerDetail entity.
func (_m *BuyerDetail) QueryContract() *ContractQuery {
	return NewBuyerDetailClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this BuyerDetail.
// Note that you need to call BuyerDetail.Unwrap() before calling this method if this BuyerDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BuyerDetail) Update() *BuyerDetailUpdateOne {
	return NewBuyerDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BuyerDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BuyerDetail) Unwrap() *BuyerDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BuyerDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BuyerDetail) String() string {
	var builder strings.Builder
	builder.WriteString("BuyerDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("designation=")
	builder.WriteString(_m.Designation)
	builder.WriteString(", ")
	builder.WriteString("contact_no=")
	builder.WriteString(_m.ContactNo)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("gstin=")
	builder.WriteString(_m.Gstin)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteByte(')')
	return builder.String()
}

// BuyerDetails is a parsable slice of BuyerDetail.
type BuyerDetails []*BuyerDetail
