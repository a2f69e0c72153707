// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/google/uuid"
)

// OrganisationDetail is the model entity for the OrganisationDetail schema.
type OrganisationDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Ministry holds the value of the "ministry" field.
	Ministry string `json:"ministry,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// OrganisationName holds the value of the "organisation_name" field.
	OrganisationName string `json:"organisation_name,omitempty"`
	// OfficeZone holds the value of the "office_zone" field.
	OfficeZone string `json:"office_zone,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrganisationDetailQuery when eager-loading is set.
	Edges        OrganisationDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrganisationDetailEdges holds the relations/edges for other nodes in the graph.
type OrganisationDetailEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrganisationDetailEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrganisationDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case organisationdetail.FieldType, organisationdetail.FieldMinistry, organisationdetail.FieldDepartment, organisationdetail.FieldOrganisationName, organisationdetail.FieldOfficeZone:
			values[i] = new(sql.NullString)
		case organisationdetail.FieldID, organisationdetail.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrganisationDetail fields.
func (_m *OrganisationDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case organisationdetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case organisationdetail.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case organisationdetail.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case organisationdetail.FieldMinistry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ministry", values[i])
			} else if value.Valid {
				_m.Ministry = value.String
			}
		case organisationdetail.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case organisationdetail.FieldOrganisationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organisation_name", values[i])
			} else if value.Valid {
				_m.OrganisationName = value.String
			}
		case organisationdetail.FieldOfficeZone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field office_zone", values[i])
			} else if value.Valid {
				_m.OfficeZone = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrganisationDetail.
// This includes values selected through modifiers, order, etc.
func (_m *OrganisationDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the OrganisationDetail entity.
func (_m *OrganisationDetail) QueryContract() *ContractQuery {
	return NewOrganisationDetailClient(_m.config).QueryContract(_m)
}

// Update returns a builder for updating this OrganisationDetail.
// Note that you need to call OrganisationDetail.Unwrap() before calling this method if this OrganisationDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrganisationDetail) Update() *OrganisationDetailUpdateOne {
	return NewOrganisationDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrganisationDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrganisationDetail) Unwrap() *OrganisationDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrganisationDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrganisationDetail) String() string {
	var builder strings.Builder
	builder.WriteString("OrganisationDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("ministry=")
	builder.WriteString(_m.Ministry)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	builder.WriteString("organisation_name=")
	builder.WriteString(_m.OrganisationName)
	builder.WriteString(", ")
	builder.WriteString("office_zone=")
	builder.WriteString(_m.OfficeZone)
	builder.WriteByte(')')
	return builder.String()
}

// OrganisationDetails is a parsable slice of OrganisationDetail.
type OrganisationDetails []*OrganisationDetail
