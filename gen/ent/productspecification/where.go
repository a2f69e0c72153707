// Code generated by ent, DO NOT EDIT.

package productspecification

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldLTE(FieldID, id))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldProductID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldCategory, v))
}

// SubSpec applies equality check predicate on the "sub_spec" field. It's identical to SubSpecEQ.
func SubSpec(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldSubSpec, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldValue, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNotIn(FieldProductID, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldContainsFold(FieldCategory, v))
}

// SubSpecEQ applies the EQ predicate on the "sub_spec" field.
func SubSpecEQ(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldSubSpec, v))
}

// SubSpecNEQ applies the NEQ predicate on the "sub_spec" field.
func SubSpecNEQ(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNEQ(FieldSubSpec, v))
}

// SubSpecIn applies the In predicate on the "sub_spec" field.
func SubSpecIn(vs ...string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldIn(FieldSubSpec, vs...))
}

// SubSpecNotIn applies the NotIn predicate on the "sub_spec" field.
func SubSpecNotIn(vs ...string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNotIn(FieldSubSpec, vs...))
}

// SubSpecGT applies the GT predicate on the "sub_spec" field.
func SubSpecGT(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldGT(FieldSubSpec, v))
}

// SubSpecGTE applies the GTE predicate on the "sub_spec" field.
func SubSpecGTE(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldGTE(FieldSubSpec, v))
}

// SubSpecLT applies the LT predicate on the "sub_spec" field.
func SubSpecLT(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldLT(FieldSubSpec, v))
}

// SubSpecLTE applies the LTE predicate on the "sub_spec" field.
func SubSpecLTE(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldLTE(FieldSubSpec, v))
}

// SubSpecContains applies the Contains predicate on the "sub_spec" field.
func SubSpecContains(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldContains(FieldSubSpec, v))
}

// SubSpecHasPrefix applies the HasPrefix predicate on the "sub_spec" field.
func SubSpecHasPrefix(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldHasPrefix(FieldSubSpec, v))
}

// SubSpecHasSuffix applies the HasSuffix predicate on the "sub_spec" field.
func SubSpecHasSuffix(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldHasSuffix(FieldSubSpec, v))
}

// SubSpecIsNil applies the IsNil predicate on the "sub_spec" field.
func SubSpecIsNil() predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldIsNull(FieldSubSpec))
}

// SubSpecNotNil applies the NotNil predicate on the "sub_spec" field.
func SubSpecNotNil() predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNotNull(FieldSubSpec))
}

// SubSpecEqualFold applies the EqualFold predicate on the "sub_spec" field.
func SubSpecEqualFold(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEqualFold(FieldSubSpec, v))
}

// SubSpecContainsFold applies the ContainsFold predicate on the "sub_spec" field.
func SubSpecContainsFold(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldContainsFold(FieldSubSpec, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldHasSuffix(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldNotNull(FieldValue))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.FieldContainsFold(FieldValue, v))
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.ProductSpecification {
	return predicate.ProductSpecification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.ProductSpecification {
	return predicate.ProductSpecification(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProductSpecification) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProductSpecification) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProductSpecification) predicate.ProductSpecification {
	return predicate.ProductSpecification(sql.NotPredicates(p))
}
