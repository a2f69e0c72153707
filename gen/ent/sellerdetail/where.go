// Code generated by ent, DO NOT EDIT.

package sellerdetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldContractID, v))
}

// GemSellerID applies equality check predicate on the "gem_seller_id" field. It's identical to GemSellerIDEQ.
func GemSellerID(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldGemSellerID, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldCompanyName, v))
}

// ContactNo applies equality check predicate on the "contact_no" field. It's identical to ContactNoEQ.
func ContactNo(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldContactNo, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldEmail, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldAddress, v))
}

// MsmeRegistrationNumber applies equality check predicate on the "msme_registration_number" field. It's identical to MsmeRegistrationNumberEQ.
func MsmeRegistrationNumber(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldMsmeRegistrationNumber, v))
}

// Gstin applies equality check predicate on the "gstin" field. It's identical to GstinEQ.
func Gstin(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldGstin, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldContractID, vs...))
}

// GemSellerIDEQ applies the EQ predicate on the "gem_seller_id" field.
func GemSellerIDEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldGemSellerID, v))
}

// GemSellerIDNEQ applies the NEQ predicate on the "gem_seller_id" field.
func GemSellerIDNEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldGemSellerID, v))
}

// GemSellerIDIn applies the In predicate on the "gem_seller_id" field.
func GemSellerIDIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldGemSellerID, vs...))
}

// GemSellerIDNotIn applies the NotIn predicate on the "gem_seller_id" field.
func GemSellerIDNotIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldGemSellerID, vs...))
}

// GemSellerIDGT applies the GT predicate on the "gem_seller_id" field.
func GemSellerIDGT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGT(FieldGemSellerID, v))
}

// GemSellerIDGTE applies the GTE predicate on the "gem_seller_id" field.
func GemSellerIDGTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGTE(FieldGemSellerID, v))
}

// GemSellerIDLT applies the LT predicate on the "gem_seller_id" field.
func GemSellerIDLT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLT(FieldGemSellerID, v))
}

// GemSellerIDLTE applies the LTE predicate on the "gem_seller_id" field.
func GemSellerIDLTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLTE(FieldGemSellerID, v))
}

// GemSellerIDContains applies the Contains predicate on the "gem_seller_id" field.
func GemSellerIDContains(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContains(FieldGemSellerID, v))
}

// GemSellerIDHasPrefix applies the HasPrefix predicate on the "gem_seller_id" field.
func GemSellerIDHasPrefix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasPrefix(FieldGemSellerID, v))
}

// GemSellerIDHasSuffix applies the HasSuffix predicate on the "gem_seller_id" field.
func GemSellerIDHasSuffix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasSuffix(FieldGemSellerID, v))
}

// GemSellerIDIsNil applies the IsNil predicate on the "gem_seller_id" field.
func GemSellerIDIsNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIsNull(FieldGemSellerID))
}

// GemSellerIDNotNil applies the NotNil predicate on the "gem_seller_id" field.
func GemSellerIDNotNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotNull(FieldGemSellerID))
}

// GemSellerIDEqualFold applies the EqualFold predicate on the "gem_seller_id" field.
func GemSellerIDEqualFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEqualFold(FieldGemSellerID, v))
}

// GemSellerIDContainsFold applies the ContainsFold predicate on the "gem_seller_id" field.
func GemSellerIDContainsFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContainsFold(FieldGemSellerID, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameIsNil applies the IsNil predicate on the "company_name" field.
func CompanyNameIsNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIsNull(FieldCompanyName))
}

// CompanyNameNotNil applies the NotNil predicate on the "company_name" field.
func CompanyNameNotNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotNull(FieldCompanyName))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContainsFold(FieldCompanyName, v))
}

// ContactNoEQ applies the EQ predicate on the "contact_no" field.
func ContactNoEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldContactNo, v))
}

// ContactNoNEQ applies the NEQ predicate on the "contact_no" field.
func ContactNoNEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldContactNo, v))
}

// ContactNoIn applies the In predicate on the "contact_no" field.
func ContactNoIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldContactNo, vs...))
}

// ContactNoNotIn applies the NotIn predicate on the "contact_no" field.
func ContactNoNotIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldContactNo, vs...))
}

// ContactNoGT applies the GT predicate on the "contact_no" field.
func ContactNoGT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGT(FieldContactNo, v))
}

// ContactNoGTE applies the GTE predicate on the "contact_no" field.
func ContactNoGTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGTE(FieldContactNo, v))
}

// ContactNoLT applies the LT predicate on the "contact_no" field.
func ContactNoLT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLT(FieldContactNo, v))
}

// ContactNoLTE applies the LTE predicate on the "contact_no" field.
func ContactNoLTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLTE(FieldContactNo, v))
}

// ContactNoContains applies the Contains predicate on the "contact_no" field.
func ContactNoContains(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContains(FieldContactNo, v))
}

// ContactNoHasPrefix applies the HasPrefix predicate on the "contact_no" field.
func ContactNoHasPrefix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasPrefix(FieldContactNo, v))
}

// ContactNoHasSuffix applies the HasSuffix predicate on the "contact_no" field.
func ContactNoHasSuffix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasSuffix(FieldContactNo, v))
}

// ContactNoIsNil applies the IsNil predicate on the "contact_no" field.
func ContactNoIsNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIsNull(FieldContactNo))
}

// ContactNoNotNil applies the NotNil predicate on the "contact_no" field.
func ContactNoNotNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotNull(FieldContactNo))
}

// ContactNoEqualFold applies the EqualFold predicate on the "contact_no" field.
func ContactNoEqualFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEqualFold(FieldContactNo, v))
}

// ContactNoContainsFold applies the ContainsFold predicate on the "contact_no" field.
func ContactNoContainsFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContainsFold(FieldContactNo, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContainsFold(FieldEmail, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContainsFold(FieldAddress, v))
}

// MsmeRegistrationNumberEQ applies the EQ predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberNEQ applies the NEQ predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberNEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberIn applies the In predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldMsmeRegistrationNumber, vs...))
}

// MsmeRegistrationNumberNotIn applies the NotIn predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberNotIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldMsmeRegistrationNumber, vs...))
}

// MsmeRegistrationNumberGT applies the GT predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberGT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGT(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberGTE applies the GTE predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberGTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGTE(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberLT applies the LT predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberLT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLT(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberLTE applies the LTE predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberLTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLTE(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberContains applies the Contains predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberContains(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContains(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberHasPrefix applies the HasPrefix predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberHasPrefix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasPrefix(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberHasSuffix applies the HasSuffix predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberHasSuffix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasSuffix(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberIsNil applies the IsNil predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberIsNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIsNull(FieldMsmeRegistrationNumber))
}

// MsmeRegistrationNumberNotNil applies the NotNil predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberNotNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotNull(FieldMsmeRegistrationNumber))
}

// MsmeRegistrationNumberEqualFold applies the EqualFold predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberEqualFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEqualFold(FieldMsmeRegistrationNumber, v))
}

// MsmeRegistrationNumberContainsFold applies the ContainsFold predicate on the "msme_registration_number" field.
func MsmeRegistrationNumberContainsFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContainsFold(FieldMsmeRegistrationNumber, v))
}

// GstinEQ applies the EQ predicate on the "gstin" field.
func GstinEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEQ(FieldGstin, v))
}

// GstinNEQ applies the NEQ predicate on the "gstin" field.
func GstinNEQ(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNEQ(FieldGstin, v))
}

// GstinIn applies the In predicate on the "gstin" field.
func GstinIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIn(FieldGstin, vs...))
}

// GstinNotIn applies the NotIn predicate on the "gstin" field.
func GstinNotIn(vs ...string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotIn(FieldGstin, vs...))
}

// GstinGT applies the GT predicate on the "gstin" field.
func GstinGT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGT(FieldGstin, v))
}

// GstinGTE applies the GTE predicate on the "gstin" field.
func GstinGTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldGTE(FieldGstin, v))
}

// GstinLT applies the LT predicate on the "gstin" field.
func GstinLT(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLT(FieldGstin, v))
}

// GstinLTE applies the LTE predicate on the "gstin" field.
func GstinLTE(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldLTE(FieldGstin, v))
}

// GstinContains applies the Contains predicate on the "gstin" field.
func GstinContains(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContains(FieldGstin, v))
}

// GstinHasPrefix applies the HasPrefix predicate on the "gstin" field.
func GstinHasPrefix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasPrefix(FieldGstin, v))
}

// GstinHasSuffix applies the HasSuffix predicate on the "gstin" field.
func GstinHasSuffix(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldHasSuffix(FieldGstin, v))
}

// GstinIsNil applies the IsNil predicate on the "gstin" field.
func GstinIsNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldIsNull(FieldGstin))
}

// GstinNotNil applies the NotNil predicate on the "gstin" field.
func GstinNotNil() predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldNotNull(FieldGstin))
}

// GstinEqualFold applies the EqualFold predicate on the "gstin" field.
func GstinEqualFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldEqualFold(FieldGstin, v))
}

// GstinContainsFold applies the ContainsFold predicate on the "gstin" field.
func GstinContainsFold(v string) predicate.SellerDetail {
	return predicate.SellerDetail(sql.FieldContainsFold(FieldGstin, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.SellerDetail {
	return predicate.SellerDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.SellerDetail {
	return predicate.SellerDetail(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SellerDetail) predicate.SellerDetail {
	return predicate.SellerDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SellerDetail) predicate.SellerDetail {
	return predicate.SellerDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SellerDetail) predicate.SellerDetail {
	return predicate.SellerDetail(sql.NotPredicates(p))
}
