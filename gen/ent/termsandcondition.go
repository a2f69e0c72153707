// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
	"github.com/google/uuid"
)

// TermsAndCondition is the model entity for the TermsAndCondition schema.
type TermsAndCondition struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// ClauseText holds the value of the "clause_text" field.
	ClauseText string `json:"clause_text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TermsAndConditionQuery when eager-loading is set.
	Edges        TermsAndConditionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TermsAndConditionEdges holds the relations/edges for other nodes in the graph.
type TermsAndConditionEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TermsAndConditionEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TermsAndCondition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case termsandcondition.FieldClauseText:
			values[i] = new(sql.NullString)
		case termsandcondition.FieldID, termsandcondition.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TermsAndCondition fields.
func (_m *TermsAndCondition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case termsandcondition.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case termsandcondition.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case termsandcondition.FieldClauseText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clause_text", values[i])
			} else if value.Valid {
				_m.ClauseText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TermsAndCondition.
// This includes values selected through modifiers, order, etc.
func (_m *TermsAndCondition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the TermsAndCondition entity.
func (_m *TermsAndCondition) QueryContract() *ContractQuery {
	return NewTermsAndConditionClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this TermsAndCondition.
// Note that you need to call TermsAndCondition.Unwrap() before calling this method if this TermsAndCondition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TermsAndCondition) Update() *TermsAndConditionUpdateOne {
	return NewTermsAndConditionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TermsAndCondition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TermsAndCondition) Unwrap() *TermsAndCondition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TermsAndCondition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TermsAndCondition) String() string {
	var builder strings.Builder
	builder.WriteString("TermsAndCondition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("clause_text=")
	builder.WriteString(_m.ClauseText)
	builder.WriteByte(')')
	return builder.String()
}

// TermsAndConditions is a parsable slice of TermsAndCondition.
type TermsAndConditions []*TermsAndCondition
