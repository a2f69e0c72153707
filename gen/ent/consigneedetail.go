// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/consigneedetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/google/uuid"
)

// ConsigneeDetail is the model entity for the ConsigneeDetail schema.
type ConsigneeDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID uuid.UUID `json:"product_id,omitempty"`
	// SNo holds the value of the "s_no" field.
	SNo *int `json:"s_no,omitempty"`
	// Designation holds the value of the "designation" field.
	Designation string `json:"designation,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Contact holds the value of the "contact" field.
	Contact string `json:"contact,omitempty"`
	// Gstin holds the value of the "gstin" field.
	Gstin string `json:"gstin,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// LotNo holds the value of the "lot_no" field.
	LotNo string `json:"lot_no,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity *int `json:"quantity,omitempty"`
	// DeliveryStart holds the value of the "delivery_start" field.
	DeliveryStart *time.Time `json:"delivery_start,omitempty"`
	// DeliveryEnd holds the value of the "delivery_end" field.
	DeliveryEnd *time.Time `json:"delivery_end,omitempty"`
	// DeliveryTo holds the value of the "delivery_to" field.
	DeliveryTo string `json:"delivery_to,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConsigneeDetailQuery when eager-loading is set.
	Edges        ConsigneeDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConsigneeDetailEdges holds the relations/edges for other nodes in the graph.
type ConsigneeDetailEdges struct {
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConsigneeDetailEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConsigneeDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case consigneedetail.FieldSNo, consigneedetail.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case consigneedetail.FieldDesignation, consigneedetail.FieldEmail, consigneedetail.FieldContact, consigneedetail.FieldGstin, consigneedetail.FieldAddress, consigneedetail.FieldLotNo, consigneedetail.FieldDeliveryTo:
			values[i] = new(sql.NullString)
		case consigneedetail.FieldDeliveryStart, consigneedetail.FieldDeliveryEnd:
			values[i] = new(sql.NullTime)
		case consigneedetail.FieldID, consigneedetail.FieldProductID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConsigneeDetail fields.
func (_m *ConsigneeDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case consigneedetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case consigneedetail.FieldProductID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value != nil {
				_m.ProductID = *value
			}
		case consigneedetail.FieldSNo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field s_no", values[i])
			} else if value.Valid {
				_m.SNo = new(int)
				*_m.SNo = int(value.Int64)
			}
		case consigneedetail.FieldDesignation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field designation", values[i])
			} else if value.Valid {
				_m.Designation = value.String
			}
		case consigneedetail.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case consigneedetail.FieldContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact", values[i])
			} else if value.Valid {
				_m.Contact = value.String
			}
		case consigneedetail.FieldGstin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gstin", values[i])
			} else if value.Valid {
				_m.Gstin = value.String
			}
		case consigneedetail.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case consigneedetail.FieldLotNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lot_no", values[i])
			} else if value.Valid {
				_m.LotNo = value.String
			}
		case consigneedetail.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = new(int)
				*_m.Quantity = int(value.Int64)
			}
		case consigneedetail.FieldDeliveryStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_start", values[i])
			} else if value.Valid {
				_m.DeliveryStart = new(time.Time)
				*_m.DeliveryStart = value.Time
			}
		case consigneedetail.FieldDeliveryEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_end", values[i])
			} else if value.Valid {
				_m.DeliveryEnd = new(time.Time)
				*_m.DeliveryEnd = value.Time
			}
		case consigneedetail.FieldDeliveryTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_to", values[i])
			} else if value.Valid {
				_m.DeliveryTo = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConsigneeDetail.
// This includes values selected through modifiers, order, etc.
func (_m *ConsigneeDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProduct queries the "product" edge of the ConsigneeDetail entity.
func (_m *ConsigneeDetail) QueryProduct() *ProductQuery {
	return NewConsigneeDetailClient(_m.config).QueryProduct(_m)
}

// Update returns a builder for updating this ConsigneeDetail.
// Note that you need to call ConsigneeDetail.Unwrap() before calling this method if this ConsigneeDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConsigneeDetail) Update() *ConsigneeDetailUpdateOne {
	return NewConsigneeDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConsigneeDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConsigneeDetail) Unwrap() *ConsigneeDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConsigneeDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConsigneeDetail) String() string {
	var builder strings.Builder
	builder.WriteString("ConsigneeDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("product_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductID))
	builder.WriteString(", ")
	if v := _m.SNo; v != nil {
		builder.WriteString("s_no=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("designation=")
	builder.WriteString(_m.Designation)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("contact=")
	builder.WriteString(_m.Contact)
	builder.WriteString(", ")
	builder.WriteString("gstin=")
	builder.WriteString(_m.Gstin)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("lot_no=")
	builder.WriteString(_m.LotNo)
	builder.WriteString(", ")
	if v := _m.Quantity; v != nil {
		builder.WriteString("quantity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeliveryStart; v != nil {
		builder.WriteString("delivery_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeliveryEnd; v != nil {
		builder.WriteString("delivery_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("delivery_to=")
	builder.WriteString(_m.DeliveryTo)
	builder.WriteByte(')')
	return builder.String()
}

// ConsigneeDetails is a parsable slice of ConsigneeDetail.
type ConsigneeDetails []*ConsigneeDetail
