// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/google/uuid"
)

// FinancialApproval is the model entity for the FinancialApproval schema.
type FinancialApproval struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// IfdConcurrence holds the value of the "ifd_concurrence" field.
	IfdConcurrence bool `json:"ifd_concurrence,omitempty"`
	// AdminApprovalDesignation holds the value of the "admin_approval_designation" field.
	AdminApprovalDesignation string `json:"admin_approval_designation,omitempty"`
	// FinancialApprovalDesignation holds the value of the "financial_approval_designation" field.
	FinancialApprovalDesignation string `json:"financial_approval_designation,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FinancialApprovalQuery when eager-loading is set.
	Edges        FinancialApprovalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FinancialApprovalEdges holds the relations/edges for other nodes in the graph.
type FinancialApprovalEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FinancialApprovalEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FinancialApproval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case financialapproval.FieldIfdConcurrence:
			values[i] = new(sql.NullBool)
		case financialapproval.FieldAdminApprovalDesignation, financialapproval.FieldFinancialApprovalDesignation:
			values[i] = new(sql.NullString)
		case financialapproval.FieldID, financialapproval.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FinancialApproval fields.
func (_m *FinancialApproval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case financialapproval.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case financialapproval.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case financialapproval.FieldIfdConcurrence:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ifd_concurrence", values[i])
			} else if value.Valid {
				_m.IfdConcurrence = value.Bool
			}
		case financialapproval.FieldAdminApprovalDesignation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_approval_designation", values[i])
			} else if value.Valid {
				_m.AdminApprovalDesignation = value.String
			}
		case financialapproval.FieldFinancialApprovalDesignation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field financial_approval_designation", values[i])
			} else if value.Valid {
				_m.FinancialApprovalDesignation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FinancialApproval.
// This includes values selected through modifiers, order, etc.
func (_m *FinancialApproval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the FinancialApproval entity.
func (_m *FinancialApproval) QueryContract() *ContractQuery {
	return NewFinancialApprovalClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this FinancialApproval.
// Note that you need to call FinancialApproval.Unwrap() before calling this method if this FinancialApproval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FinancialApproval) Update() *FinancialApprovalUpdateOne {
	return NewFinancialApprovalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FinancialApproval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FinancialApproval) Unwrap() *FinancialApproval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FinancialApproval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FinancialApproval) String() string {
	var builder strings.Builder
	builder.WriteString("FinancialApproval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("ifd_concurrence=")
	builder.WriteString(fmt.Sprintf("%v", _m.IfdConcurrence))
	builder.WriteString(", ")
	builder.WriteString("admin_approval_designation=")
	builder.WriteString(_m.AdminApprovalDesignation)
	builder.WriteString(", ")
	builder.WriteString("financial_approval_designation=")
	builder.WriteString(_m.FinancialApprovalDesignation)
	builder.WriteByte(')')
	return builder.String()
}

// FinancialApprovals is a parsable slice of FinancialApproval.
type FinancialApprovals []*FinancialApproval
