// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/google/uuid"
)

// EPBGDetail is the model entity for the EPBGDetail schema.
type EPBGDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EPBGDetailQuery when eager-loading is set.
	Edges        EPBGDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EPBGDetailEdges holds the relations/edges for other nodes in the graph.
type EPBGDetailEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EPBGDetailEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EPBGDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case epbgdetail.FieldDetail:
			values[i] = new(sql.NullString)
		case epbgdetail.FieldID, epbgdetail.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EPBGDetail fields.
func (_m *EPBGDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case epbgdetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case epbgdetail.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case epbgdetail.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EPBGDetail.
// This includes values selected through modifiers, order, etc.
func (_m *EPBGDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the EPBGDetail entity.
func (_m *EPBGDetail) QueryContract() *ContractQuery {
	return NewEPBGDetailClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this EPBGDetail.
// Note that you need to call EPBGDetail.Unwrap() before calling this method if this EPBGDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EPBGDetail) Update() *EPBGDetailUpdateOne {
	return NewEPBGDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EPBGDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EPBGDetail) Unwrap() *EPBGDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EPBGDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EPBGDetail) String() string {
	var builder strings.Builder
	builder.WriteString("EPBGDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteByte(')')
	return builder.String()
}

// EPBGDetails is a parsable slice of EPBGDetail.
type EPBGDetails []*EPBGDetail
