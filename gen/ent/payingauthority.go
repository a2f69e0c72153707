// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/google/uuid"
)

// PayingAuthority is the model entity for the PayingAuthority schema.
type PayingAuthority struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// PaymentMode holds the value of the "payment_mode" field.
	PaymentMode string `json:"payment_mode,omitempty"`
	// Designation holds the value of the "designation" field.
	Designation string `json:"designation,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Gstin holds the value of the "gstin" field.
	Gstin string `json:"gstin,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PayingAuthorityQuery when eager-loading is set.
	Edges        PayingAuthorityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PayingAuthorityEdges holds the relations/edges for other nodes in the graph.
type PayingAuthorityEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PayingAuthorityEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PayingAuthority) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case payingauthority.FieldRole, payingauthority.FieldPaymentMode, payingauthority.FieldDesignation, payingauthority.FieldEmail, payingauthority.FieldGstin, payingauthority.FieldAddress:
			values[i] = new(sql.NullString)
		case payingauthority.FieldID, payingauthority.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PayingAuthority fields.
func (_m *PayingAuthority) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case payingauthority.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case payingauthority.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case payingauthority.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case payingauthority.FieldPaymentMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_mode", values[i])
			} else if value.Valid {
				_m.PaymentMode = value.String
			}
		case payingauthority.FieldDesignation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field designation", values[i])
			} else if value.Valid {
				_m.Designation = value.String
			}
		case payingauthority.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case payingauthority.FieldGstin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gstin", values[i])
			} else if value.Valid {
				_m.Gstin = value.String
			}
		case payingauthority.FieldAddress:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PayingAuthority.
// This includes values selected through modifiers, order, etc.
func (_m *PayingAuthority) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the PayingAuthority entity.
func (_m *PayingAuthority) QueryContract() *ContractQuery {
	return NewPayingAuthorityClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this PayingAuthority.
// Note that you need to call PayingAuthority.Unwrap() before calling this method if this PayingAuthority
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PayingAuthority) Update() *PayingAuthorityUpdateOne {
	return NewPayingAuthorityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PayingAuthority entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PayingAuthority) Unwrap() *PayingAuthority {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PayingAuthority is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PayingAuthority) String() string {
	var builder strings.Builder
	builder.WriteString("PayingAuthority(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("payment_mode=")
	builder.WriteString(_m.PaymentMode)
	builder.WriteString(", ")
	builder.WriteString("designation=")
	builder.WriteString(_m.Designation)
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

// PayingAuthorities is a parsable slice of PayingAuthority.
type PayingAuthorities []*PayingAuthority
