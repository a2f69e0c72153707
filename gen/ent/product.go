// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/google/uuid"
)

// Product is the model entity for the Product schema.
type Product struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID uuid.UUID `json:"contract_id,omitempty"`
	// ProductName holds the value of the "product_name" field.
	ProductName string `json:"product_name,omitempty"`
	// Brand holds the value of the "brand" field.
	Brand string `json:"brand,omitempty"`
	// BrandType holds the value of the "brand_type" field.
	BrandType string `json:"brand_type,omitempty"`
	// CatalogueStatus holds the value of the "catalogue_status" field.
	CatalogueStatus string `json:"catalogue_status,omitempty"`
	// SellingAs holds the value of the "selling_as" field.
	SellingAs string `json:"selling_as,omitempty"`
	// CategoryNameQuadrant holds the value of the "category_name_quadrant" field.
	CategoryNameQuadrant string `json:"category_name_quadrant,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// HsnCode holds the value of the "hsn_code" field.
	HsnCode string `json:"hsn_code,omitempty"`
	// OrderedQuantity holds the value of the "ordered_quantity" field.
	OrderedQuantity string `json:"ordered_quantity,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice string `json:"unit_price,omitempty"`
	// TaxBifurcation holds the value of the "tax_bifurcation" field.
	TaxBifurcation string `json:"tax_bifurcation,omitempty"`
	// TotalPrice holds the value of the "total_price" field.
	TotalPrice string `json:"total_price,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProductQuery when eager-loading is set.
	Edges        ProductEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProductEdges holds the relations/edges for other nodes in the graph.
type ProductEdges struct {
	// Contract holds the value of the contract edge.
	Contract *Contract `json:"contract,omitempty"`
	// Specifications holds the value of the specifications edge.
	Specifications []*ProductSpecification `json:"specifications,omitempty"`
	// Consignees holds the value of the consignees edge.
	Consignees []*ConsigneeDetail `json:"consignees,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ContractOrErr returns the Contract value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProductEdges) ContractOrErr() (*Contract, error) {
	if e.Contract != nil {
		return e.Contract, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contract.Label}
	}
	return nil, &NotLoadedError{edge: "contract"}
}

// SpecificationsOrErr returns the Specifications value or an error if the edge
// was not loaded in eager-loading.
func (e ProductEdges) SpecificationsOrErr() ([]*ProductSpecification, error) {
	if e.loadedTypes[1] {
		return e.Specifications, nil
	}
	return nil, &NotLoadedError{edge: "specifications"}
}

// ConsigneesOrErr returns the Consignees value or an error if the edge
// was not loaded in eager-loading.
func (e ProductEdges) ConsigneesOrErr() ([]*ConsigneeDetail, error) {
	if e.loadedTypes[2] {
		return e.Consignees, nil
	}
	return nil, &NotLoadedError{edge: "consignees"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Product) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case product.FieldEmbedding:
			values[i] = new([]byte)
		case product.FieldProductName, product.FieldBrand, product.FieldBrandType, product.FieldCatalogueStatus, product.FieldSellingAs, product.FieldCategoryNameQuadrant, product.FieldModel, product.FieldHsnCode, product.FieldOrderedQuantity, product.FieldUnit, product.FieldUnitPrice, product.FieldTaxBifurcation, product.FieldTotalPrice, product.FieldNote:
			values[i] = new(sql.NullString)
		case product.FieldCreatedAt, product.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case product.FieldID, product.FieldContractID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Product fields.
func (_m *Product) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case product.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case product.FieldContractID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value != nil {
				_m.ContractID = *value
			}
		case product.FieldProductName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field product_name", values[i])
			} else if value.Valid {
				_m.ProductName = value.String
			}
		case product.FieldBrand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand", values[i])
			} else if value.Valid {
				_m.Brand = value.String
			}
		case product.FieldBrandType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field brand_type", values[i])
			} else if value.Valid {
				_m.BrandType = value.String
			}
		case product.FieldCatalogueStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catalogue_status", values[i])
			} else if value.Valid {
				_m.CatalogueStatus = value.String
			}
		case product.FieldSellingAs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selling_as", values[i])
			} else if value.Valid {
				_m.SellingAs = value.String
			}
		case product.FieldCategoryNameQuadrant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_name_quadrant", values[i])
			} else if value.Valid {
				_m.CategoryNameQuadrant = value.String
			}
		case product.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case product.FieldHsnCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hsn_code", values[i])
			} else if value.Valid {
				_m.HsnCode = value.String
			}
		case product.FieldOrderedQuantity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ordered_quantity", values[i])
			} else if value.Valid {
				_m.OrderedQuantity = value.String
			}
		case product.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case product.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.String
			}
		case product.FieldTaxBifurcation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tax_bifurcation", values[i])
			} else if value.Valid {
				_m.TaxBifurcation = value.String
			}
		case product.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = value.String
			}
		case product.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case product.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case product.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case product.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Product.
// This includes values selected through modifiers, order, etc.
func (_m *Product) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContract queries the "contract" edge of the Product entity.
func (_m *Product) QueryContract() *ContractQuery {
	return NewProductClient(_m.config).QueryContract(_m)
}

// QuerySpecifications queries the "specifications" edge of the Product entity.
func (_m *Product) QuerySpecifications() *ProductSpecificationQuery {
	return NewProductClient(_m.config).QuerySpecifications(_m)
}

// QueryConsignees queries the "consignees" edge of the Product entity.
func (_m *Product) QueryConsignees() *ConsigneeDetailQuery {
	return NewProductClient(_m.config).QueryConsignees(_m)
}

// Update returns a builder for updating this Product.
// Note that you need to call Product.Unwrap() before calling this method if this Product
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Product) Update() *ProductUpdateOne {
	return NewProductClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Product entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Product) Unwrap() *Product {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Product is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Product) String() string {
	var builder strings.Builder
	builder.WriteString("Product(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contract_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContractID))
	builder.WriteString(", ")
	builder.WriteString("product_name=")
	builder.WriteString(_m.ProductName)
	builder.WriteString(", ")
	builder.WriteString("brand=")
	builder.WriteString(_m.Brand)
	builder.WriteString(", ")
	builder.WriteString("brand_type=")
	builder.WriteString(_m.BrandType)
	builder.WriteString(", ")
	builder.WriteString("catalogue_status=")
	builder.WriteString(_m.CatalogueStatus)
	builder.WriteString(", ")
	builder.WriteString("selling_as=")
	builder.WriteString(_m.SellingAs)
	builder.WriteString(", ")
	builder.WriteString("category_name_quadrant=")
	builder.WriteString(_m.CategoryNameQuadrant)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("hsn_code=")
	builder.WriteString(_m.HsnCode)
	builder.WriteString(", ")
	builder.WriteString("ordered_quantity=")
	builder.WriteString(_m.OrderedQuantity)
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(_m.UnitPrice)
	builder.WriteString(", ")
	builder.WriteString("tax_bifurcation=")
	builder.WriteString(_m.TaxBifurcation)
	builder.WriteString(", ")
	builder.WriteString("total_price=")
	builder.WriteString(_m.TotalPrice)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
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

// Products is a parsable slice of Product.
type Products []*Product
