// Code generated by ent, DO NOT EDIT.

package consigneedetail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldID, id))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldProductID, v))
}

// SNo applies equality check predicate on the "s_no" field. It's identical to SNoEQ.
func SNo(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldSNo, v))
}

// Designation applies equality check predicate on the "designation" field. It's identical to DesignationEQ.
func Designation(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldDesignation, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldEmail, v))
}

// Contact applies equality check predicate on the "contact" field. It's identical to ContactEQ.
func Contact(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldContact, v))
}

// Gstin applies equality check predicate on the "gstin" field. It's identical to GstinEQ.
func Gstin(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldGstin, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldAddress, v))
}

// LotNo applies equality check predicate on the "lot_no" field. It's identical to LotNoEQ.
func LotNo(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldLotNo, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldQuantity, v))
}

// DeliveryStart applies equality check predicate on the "delivery_start" field. It's identical to DeliveryStartEQ.
func DeliveryStart(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldDeliveryStart, v))
}

// DeliveryEnd applies equality check predicate on the "delivery_end" field. It's identical to DeliveryEndEQ.
func DeliveryEnd(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldDeliveryEnd, v))
}

// DeliveryTo applies equality check predicate on the "delivery_to" field. It's identical to DeliveryToEQ.
func DeliveryTo(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldDeliveryTo, v))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...uuid.UUID) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldProductID, vs...))
}

// SNoEQ applies the EQ predicate on the "s_no" field.
func SNoEQ(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldSNo, v))
}

// SNoNEQ applies the NEQ predicate on the "s_no" field.
func SNoNEQ(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldSNo, v))
}

// SNoIn applies the In predicate on the "s_no" field.
func SNoIn(vs ...int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldSNo, vs...))
}

// SNoNotIn applies the NotIn predicate on the "s_no" field.
func SNoNotIn(vs ...int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldSNo, vs...))
}

// SNoGT applies the GT predicate on the "s_no" field.
func SNoGT(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldSNo, v))
}

// SNoGTE applies the GTE predicate on the "s_no" field.
func SNoGTE(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldSNo, v))
}

// SNoLT applies the LT predicate on the "s_no" field.
func SNoLT(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldSNo, v))
}

// SNoLTE applies the LTE predicate on the "s_no" field.
func SNoLTE(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldSNo, v))
}

// SNoIsNil applies the IsNil predicate on the "s_no" field.
func SNoIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldSNo))
}

// SNoNotNil applies the NotNil predicate on the "s_no" field.
func SNoNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldSNo))
}

// DesignationEQ applies the EQ predicate on the "designation" field.
func DesignationEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldDesignation, v))
}

// DesignationNEQ applies the NEQ predicate on the "designation" field.
func DesignationNEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldDesignation, v))
}

// DesignationIn applies the In predicate on the "designation" field.
func DesignationIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldDesignation, vs...))
}

// DesignationNotIn applies the NotIn predicate on the "designation" field.
func DesignationNotIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldDesignation, vs...))
}

// DesignationGT applies the GT predicate on the "designation" field.
func DesignationGT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldDesignation, v))
}

// DesignationGTE applies the GTE predicate on the "designation" field.
func DesignationGTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldDesignation, v))
}

// DesignationLT applies the LT predicate on the "designation" field.
func DesignationLT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldDesignation, v))
}

// DesignationLTE applies the LTE predicate on the "designation" field.
func DesignationLTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldDesignation, v))
}

// DesignationContains applies the Contains predicate on the "designation" field.
func DesignationContains(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContains(FieldDesignation, v))
}

// DesignationHasPrefix applies the HasPrefix predicate on the "designation" field.
func DesignationHasPrefix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasPrefix(FieldDesignation, v))
}

// DesignationHasSuffix applies the HasSuffix predicate on the "designation" field.
func DesignationHasSuffix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasSuffix(FieldDesignation, v))
}

// DesignationIsNil applies the IsNil predicate on the "designation" field.
func DesignationIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldDesignation))
}

// DesignationNotNil applies the NotNil predicate on the "designation" field.
func DesignationNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldDesignation))
}

// DesignationEqualFold applies the EqualFold predicate on the "designation" field.
func DesignationEqualFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEqualFold(FieldDesignation, v))
}

// DesignationContainsFold applies the ContainsFold predicate on the "designation" field.
func DesignationContainsFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContainsFold(FieldDesignation, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContainsFold(FieldEmail, v))
}

// ContactEQ applies the EQ predicate on the "contact" field.
func ContactEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldContact, v))
}

// ContactNEQ applies the NEQ predicate on the "contact" field.
func ContactNEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldContact, v))
}

// ContactIn applies the In predicate on the "contact" field.
func ContactIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldContact, vs...))
}

// ContactNotIn applies the NotIn predicate on the "contact" field.
func ContactNotIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldContact, vs...))
}

// ContactGT applies the GT predicate on the "contact" field.
func ContactGT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldContact, v))
}

// ContactGTE applies the GTE predicate on the "contact" field.
func ContactGTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldContact, v))
}

// ContactLT applies the LT predicate on the "contact" field.
func ContactLT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldContact, v))
}

// ContactLTE applies the LTE predicate on the "contact" field.
func ContactLTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldContact, v))
}

// ContactContains applies the Contains predicate on the "contact" field.
func ContactContains(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContains(FieldContact, v))
}

// ContactHasPrefix applies the HasPrefix predicate on the "contact" field.
func ContactHasPrefix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasPrefix(FieldContact, v))
}

// ContactHasSuffix applies the HasSuffix predicate on the "contact" field.
func ContactHasSuffix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasSuffix(FieldContact, v))
}

// ContactIsNil applies the IsNil predicate on the "contact" field.
func ContactIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldContact))
}

// ContactNotNil applies the NotNil predicate on the "contact" field.
func ContactNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldContact))
}

// ContactEqualFold applies the EqualFold predicate on the "contact" field.
func ContactEqualFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEqualFold(FieldContact, v))
}

// ContactContainsFold applies the ContainsFold predicate on the "contact" field.
func ContactContainsFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContainsFold(FieldContact, v))
}

// GstinEQ applies the EQ predicate on the "gstin" field.
func GstinEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldGstin, v))
}

// GstinNEQ applies the NEQ predicate on the "gstin" field.
func GstinNEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldGstin, v))
}

// GstinIn applies the In predicate on the "gstin" field.
func GstinIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldGstin, vs...))
}

// GstinNotIn applies the NotIn predicate on the "gstin" field.
func GstinNotIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldGstin, vs...))
}

// GstinGT applies the GT predicate on the "gstin" field.
func GstinGT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldGstin, v))
}

// GstinGTE applies the GTE predicate on the "gstin" field.
func GstinGTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldGstin, v))
}

// GstinLT applies the LT predicate on the "gstin" field.
func GstinLT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldGstin, v))
}

// GstinLTE applies the LTE predicate on the "gstin" field.
func GstinLTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldGstin, v))
}

// GstinContains applies the Contains predicate on the "gstin" field.
func GstinContains(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContains(FieldGstin, v))
}

// GstinHasPrefix applies the HasPrefix predicate on the "gstin" field.
func GstinHasPrefix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasPrefix(FieldGstin, v))
}

// GstinHasSuffix applies the HasSuffix predicate on the "gstin" field.
func GstinHasSuffix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasSuffix(FieldGstin, v))
}

// GstinIsNil applies the IsNil predicate on the "gstin" field.
func GstinIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldGstin))
}

// GstinNotNil applies the NotNil predicate on the "gstin" field.
func GstinNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldGstin))
}

// GstinEqualFold applies the EqualFold predicate on the "gstin" field.
func GstinEqualFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEqualFold(FieldGstin, v))
}

// GstinContainsFold applies the ContainsFold predicate on the "gstin" field.
func GstinContainsFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContainsFold(FieldGstin, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContainsFold(FieldAddress, v))
}

// LotNoEQ applies the EQ predicate on the "lot_no" field.
func LotNoEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldLotNo, v))
}

// LotNoNEQ applies the NEQ predicate on the "lot_no" field.
func LotNoNEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldLotNo, v))
}

// LotNoIn applies the In predicate on the "lot_no" field.
func LotNoIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldLotNo, vs...))
}

// LotNoNotIn applies the NotIn predicate on the "lot_no" field.
func LotNoNotIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldLotNo, vs...))
}

// LotNoGT applies the GT predicate on the "lot_no" field.
func LotNoGT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldLotNo, v))
}

// LotNoGTE applies the GTE predicate on the "lot_no" field.
func LotNoGTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldLotNo, v))
}

// LotNoLT applies the LT predicate on the "lot_no" field.
func LotNoLT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldLotNo, v))
}

// LotNoLTE applies the LTE predicate on the "lot_no" field.
func LotNoLTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldLotNo, v))
}

// LotNoContains applies the Contains predicate on the "lot_no" field.
func LotNoContains(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContains(FieldLotNo, v))
}

// LotNoHasPrefix applies the HasPrefix predicate on the "lot_no" field.
func LotNoHasPrefix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasPrefix(FieldLotNo, v))
}

// LotNoHasSuffix applies the HasSuffix predicate on the "lot_no" field.
func LotNoHasSuffix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasSuffix(FieldLotNo, v))
}

// LotNoIsNil applies the IsNil predicate on the "lot_no" field.
func LotNoIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldLotNo))
}

// LotNoNotNil applies the NotNil predicate on the "lot_no" field.
func LotNoNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldLotNo))
}

// LotNoEqualFold applies the EqualFold predicate on the "lot_no" field.
func LotNoEqualFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEqualFold(FieldLotNo, v))
}

// LotNoContainsFold applies the ContainsFold predicate on the "lot_no" field.
func LotNoContainsFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContainsFold(FieldLotNo, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldQuantity, v))
}

// QuantityIsNil applies the IsNil predicate on the "quantity" field.
func QuantityIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldQuantity))
}

// QuantityNotNil applies the NotNil predicate on the "quantity" field.
func QuantityNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldQuantity))
}

// DeliveryStartEQ applies the EQ predicate on the "delivery_start" field.
func DeliveryStartEQ(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldDeliveryStart, v))
}

// DeliveryStartNEQ applies the NEQ predicate on the "delivery_start" field.
func DeliveryStartNEQ(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldDeliveryStart, v))
}

// DeliveryStartIn applies the In predicate on the "delivery_start" field.
func DeliveryStartIn(vs ...time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldDeliveryStart, vs...))
}

// DeliveryStartNotIn applies the NotIn predicate on the "delivery_start" field.
func DeliveryStartNotIn(vs ...time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldDeliveryStart, vs...))
}

// DeliveryStartGT applies the GT predicate on the "delivery_start" field.
func DeliveryStartGT(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldDeliveryStart, v))
}

// DeliveryStartGTE applies the GTE predicate on the "delivery_start" field.
func DeliveryStartGTE(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldDeliveryStart, v))
}

// DeliveryStartLT applies the LT predicate on the "delivery_start" field.
func DeliveryStartLT(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldDeliveryStart, v))
}

// DeliveryStartLTE applies the LTE predicate on the "delivery_start" field.
func DeliveryStartLTE(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldDeliveryStart, v))
}

// DeliveryStartIsNil applies the IsNil predicate on the "delivery_start" field.
func DeliveryStartIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldDeliveryStart))
}

// DeliveryStartNotNil applies the NotNil predicate on the "delivery_start" field.
func DeliveryStartNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldDeliveryStart))
}

// DeliveryEndEQ applies the EQ predicate on the "delivery_end" field.
func DeliveryEndEQ(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldDeliveryEnd, v))
}

// DeliveryEndNEQ applies the NEQ predicate on the "delivery_end" field.
func DeliveryEndNEQ(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldDeliveryEnd, v))
}

// DeliveryEndIn applies the In predicate on the "delivery_end" field.
func DeliveryEndIn(vs ...time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldDeliveryEnd, vs...))
}

// DeliveryEndNotIn applies the NotIn predicate on the "delivery_end" field.
func DeliveryEndNotIn(vs ...time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldDeliveryEnd, vs...))
}

// DeliveryEndGT applies the GT predicate on the "delivery_end" field.
func DeliveryEndGT(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldDeliveryEnd, v))
}

// DeliveryEndGTE applies the GTE predicate on the "delivery_end" field.
func DeliveryEndGTE(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldDeliveryEnd, v))
}

// DeliveryEndLT applies the LT predicate on the "delivery_end" field.
func DeliveryEndLT(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldDeliveryEnd, v))
}

// DeliveryEndLTE applies the LTE predicate on the "delivery_end" field.
func DeliveryEndLTE(v time.Time) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldDeliveryEnd, v))
}

// DeliveryEndIsNil applies the IsNil predicate on the "delivery_end" field.
func DeliveryEndIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldDeliveryEnd))
}

// DeliveryEndNotNil applies the NotNil predicate on the "delivery_end" field.
func DeliveryEndNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldDeliveryEnd))
}

// DeliveryToEQ applies the EQ predicate on the "delivery_to" field.
func DeliveryToEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEQ(FieldDeliveryTo, v))
}

// DeliveryToNEQ applies the NEQ predicate on the "delivery_to" field.
func DeliveryToNEQ(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNEQ(FieldDeliveryTo, v))
}

// DeliveryToIn applies the In predicate on the "delivery_to" field.
func DeliveryToIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIn(FieldDeliveryTo, vs...))
}

// DeliveryToNotIn applies the NotIn predicate on the "delivery_to" field.
func DeliveryToNotIn(vs ...string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotIn(FieldDeliveryTo, vs...))
}

// DeliveryToGT applies the GT predicate on the "delivery_to" field.
func DeliveryToGT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGT(FieldDeliveryTo, v))
}

// DeliveryToGTE applies the GTE predicate on the "delivery_to" field.
func DeliveryToGTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldGTE(FieldDeliveryTo, v))
}

// DeliveryToLT applies the LT predicate on the "delivery_to" field.
func DeliveryToLT(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLT(FieldDeliveryTo, v))
}

// DeliveryToLTE applies the LTE predicate on the "delivery_to" field.
func DeliveryToLTE(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldLTE(FieldDeliveryTo, v))
}

// DeliveryToContains applies the Contains predicate on the "delivery_to" field.
func DeliveryToContains(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContains(FieldDeliveryTo, v))
}

// DeliveryToHasPrefix applies the HasPrefix predicate on the "delivery_to" field.
func DeliveryToHasPrefix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasPrefix(FieldDeliveryTo, v))
}

// DeliveryToHasSuffix applies the HasSuffix predicate on the "delivery_to" field.
func DeliveryToHasSuffix(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldHasSuffix(FieldDeliveryTo, v))
}

// DeliveryToIsNil applies the IsNil predicate on the "delivery_to" field.
func DeliveryToIsNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldIsNull(FieldDeliveryTo))
}

// DeliveryToNotNil applies the NotNil predicate on the "delivery_to" field.
func DeliveryToNotNil() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldNotNull(FieldDeliveryTo))
}

// DeliveryToEqualFold applies the EqualFold predicate on the "delivery_to" field.
func DeliveryToEqualFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldEqualFold(FieldDeliveryTo, v))
}

// DeliveryToContainsFold applies the ContainsFold predicate on the "delivery_to" field.
func DeliveryToContainsFold(v string) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.FieldContainsFold(FieldDeliveryTo, v))
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConsigneeDetail) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConsigneeDetail) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConsigneeDetail) predicate.ConsigneeDetail {
	return predicate.ConsigneeDetail(sql.NotPredicates(p))
}
