// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/productspecification"
	"github.com/google/uuid"
)

// ProductSpecification is the model entity for the ProductSpecification schema.
type ProductSpecification struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProductID holds the value of the "product_id" field.
	ProductID uuid.UUID `json:"product_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// SubSpec holds the value of the "sub_spec" field.
	SubSpec string `json:"sub_spec,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProductSpecificationQuery when eager-loading is set.
	Edges        ProductSpecificationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProductSpecificationEdges holds the relations/edges for other nodes in the graph.
type ProductSpecificationEdges struct {
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProductSpecificationEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProductSpecification) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case productspecification.FieldCategory, productspecification.FieldSubSpec, productspecification.FieldValue:
			values[i] = new(sql.NullString)
		case productspecification.FieldID, productspecification.FieldProductID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProductSpecification fields.
func (_m *ProductSpecification) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case productspecification.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case productspecification.FieldProductID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value != nil {
				_m.ProductID = *value
			}
		case productspecification.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case productspecification.FieldSubSpec:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_spec", values[i])
			} else if value.Valid {
				_m.SubSpec = value.String
			}
		case productspecification.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ProductSpecification.
// This includes values selected through modifiers, order, etc.
func (_m *ProductSpecification) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProduct queries the "product" edge of the ProductSpecification entity.
func (_m *ProductSpecification) QueryProduct() *ProductQuery {
	return NewProductSpecificationClient(_m.config).QueryProduct(_m)
}

// Update returns a builder for updating this ProductSpecification.
// Note that you need to call ProductSpecification.Unwrap() before calling this method if this ProductSpecification
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProductSpecification) Update() *ProductSpecificationUpdateOne {
	return NewProductSpecificationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProductSpecification entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProductSpecification) Unwrap() *ProductSpecification {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProductSpecification is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProductSpecification) String() string {
	var builder strings.Builder
	builder.WriteString("ProductSpecification(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("product_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProductID))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("sub_spec=")
	builder.WriteString(_m.SubSpec)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteByte(')')
	return builder.String()
}

// ProductSpecifications is a parsable slice of ProductSpecification.
type ProductSpecifications []*ProductSpecification
