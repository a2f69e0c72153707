// Code generated by ent, DO NOT EDIT.

package bid

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldID, id))
}

// BidNumber applies equality check predicate on the "bid_number" field. It's identical to BidNumberEQ.
func BidNumber(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidNumber, v))
}

// Dated applies equality check predicate on the "dated" field. It's identical to DatedEQ.
func Dated(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldDated, v))
}

// Beneficiary applies equality check predicate on the "beneficiary" field. It's identical to BeneficiaryEQ.
func Beneficiary(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBeneficiary, v))
}

// Ministry applies equality check predicate on the "ministry" field. It's identical to MinistryEQ.
func Ministry(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMinistry, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldDepartment, v))
}

// Organisation applies equality check predicate on the "organisation" field. It's identical to OrganisationEQ.
func Organisation(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldOrganisation, v))
}

// OfficeName applies equality check predicate on the "office_name" field. It's identical to OfficeNameEQ.
func OfficeName(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldOfficeName, v))
}

// ItemCategory applies equality check predicate on the "item_category" field. It's identical to ItemCategoryEQ.
func ItemCategory(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldItemCategory, v))
}

// ContractPeriod applies equality check predicate on the "contract_period" field. It's identical to ContractPeriodEQ.
func ContractPeriod(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldContractPeriod, v))
}

// BidEndDatetime applies equality check predicate on the "bid_end_datetime" field. It's identical to BidEndDatetimeEQ.
func BidEndDatetime(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidEndDatetime, v))
}

// BidOpenDatetime applies equality check predicate on the "bid_open_datetime" field. It's identical to BidOpenDatetimeEQ.
func BidOpenDatetime(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidOpenDatetime, v))
}

// BidOfferValidityDays applies equality check predicate on the "bid_offer_validity_days" field. It's identical to BidOfferValidityDaysEQ.
func BidOfferValidityDays(v int) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidOfferValidityDays, v))
}

// DeliveryDays applies equality check predicate on the "delivery_days" field. It's identical to DeliveryDaysEQ.
func DeliveryDays(v int) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldDeliveryDays, v))
}

// TotalQuantity applies equality check predicate on the "total_quantity" field. It's identical to TotalQuantityEQ.
func TotalQuantity(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldTotalQuantity, v))
}

// EstimatedBidValue applies equality check predicate on the "estimated_bid_value" field. It's identical to EstimatedBidValueEQ.
func EstimatedBidValue(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldEstimatedBidValue, v))
}

// SimilarCategory applies equality check predicate on the "similar_category" field. It's identical to SimilarCategoryEQ.
func SimilarCategory(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldSimilarCategory, v))
}

// MseExemption applies equality check predicate on the "mse_exemption" field. It's identical to MseExemptionEQ.
func MseExemption(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMseExemption, v))
}

// StartupExemption applies equality check predicate on the "startup_exemption" field. It's identical to StartupExemptionEQ.
func StartupExemption(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldStartupExemption, v))
}

// MsePurchasePreference applies equality check predicate on the "mse_purchase_preference" field. It's identical to MsePurchasePreferenceEQ.
func MsePurchasePreference(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMsePurchasePreference, v))
}

// MiiPurchasePreference applies equality check predicate on the "mii_purchase_preference" field. It's identical to MiiPurchasePreferenceEQ.
func MiiPurchasePreference(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMiiPurchasePreference, v))
}

// EvaluationMethod applies equality check predicate on the "evaluation_method" field. It's identical to EvaluationMethodEQ.
func EvaluationMethod(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldEvaluationMethod, v))
}

// InspectionRequired applies equality check predicate on the "inspection_required" field. It's identical to InspectionRequiredEQ.
func InspectionRequired(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldInspectionRequired, v))
}

// PrimaryProductCategory applies equality check predicate on the "primary_product_category" field. It's identical to PrimaryProductCategoryEQ.
func PrimaryProductCategory(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldPrimaryProductCategory, v))
}

// DeliveryAddress applies equality check predicate on the "delivery_address" field. It's identical to DeliveryAddressEQ.
func DeliveryAddress(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldDeliveryAddress, v))
}

// ScopeOfSupply applies equality check predicate on the "scope_of_supply" field. It's identical to ScopeOfSupplyEQ.
func ScopeOfSupply(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldScopeOfSupply, v))
}

// OptionClause applies equality check predicate on the "option_clause" field. It's identical to OptionClauseEQ.
func OptionClause(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldOptionClause, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldSourceFile, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldUpdatedAt, v))
}

// BidNumberEQ applies the EQ predicate on the "bid_number" field.
func BidNumberEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidNumber, v))
}

// BidNumberNEQ applies the NEQ predicate on the "bid_number" field.
func BidNumberNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldBidNumber, v))
}

// BidNumberIn applies the In predicate on the "bid_number" field.
func BidNumberIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldBidNumber, vs...))
}

// BidNumberNotIn applies the NotIn predicate on the "bid_number" field.
func BidNumberNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldBidNumber, vs...))
}

// BidNumberGT applies the GT predicate on the "bid_number" field.
func BidNumberGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldBidNumber, v))
}

// BidNumberGTE applies the GTE predicate on the "bid_number" field.
func BidNumberGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldBidNumber, v))
}

// BidNumberLT applies the LT predicate on the "bid_number" field.
func BidNumberLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldBidNumber, v))
}

// BidNumberLTE applies the LTE predicate on the "bid_number" field.
func BidNumberLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldBidNumber, v))
}

// BidNumberContains applies the Contains predicate on the "bid_number" field.
func BidNumberContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldBidNumber, v))
}

// BidNumberHasPrefix applies the HasPrefix predicate on the "bid_number" field.
func BidNumberHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldBidNumber, v))
}

// BidNumberHasSuffix applies the HasSuffix predicate on the "bid_number" field.
func BidNumberHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldBidNumber, v))
}

// BidNumberEqualFold applies the EqualFold predicate on the "bid_number" field.
func BidNumberEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldBidNumber, v))
}

// BidNumberContainsFold applies the ContainsFold predicate on the "bid_number" field.
func BidNumberContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldBidNumber, v))
}

// DatedEQ applies the EQ predicate on the "dated" field.
func DatedEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldDated, v))
}

// DatedNEQ applies the NEQ predicate on the "dated" field.
func DatedNEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldDated, v))
}

// DatedIn applies the In predicate on the "dated" field.
func DatedIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldDated, vs...))
}

// DatedNotIn applies the NotIn predicate on the "dated" field.
func DatedNotIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldDated, vs...))
}

// DatedGT applies the GT predicate on the "dated" field.
func DatedGT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldDated, v))
}

// DatedGTE applies the GTE predicate on the "dated" field.
func DatedGTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldDated, v))
}

// DatedLT applies the LT predicate on the "dated" field.
func DatedLT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldDated, v))
}

// DatedLTE applies the LTE predicate on the "dated" field.
func DatedLTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldDated, v))
}

// DatedIsNil applies the IsNil predicate on the "dated" field.
func DatedIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldDated))
}

// DatedNotNil applies the NotNil predicate on the "dated" field.
func DatedNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldDated))
}

// BeneficiaryEQ applies the EQ predicate on the "beneficiary" field.
func BeneficiaryEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBeneficiary, v))
}

// BeneficiaryNEQ applies the NEQ predicate on the "beneficiary" field.
func BeneficiaryNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldBeneficiary, v))
}

// BeneficiaryIn applies the In predicate on the "beneficiary" field.
func BeneficiaryIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldBeneficiary, vs...))
}

// BeneficiaryNotIn applies the NotIn predicate on the "beneficiary" field.
func BeneficiaryNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldBeneficiary, vs...))
}

// BeneficiaryGT applies the GT predicate on the "beneficiary" field.
func BeneficiaryGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldBeneficiary, v))
}

// BeneficiaryGTE applies the GTE predicate on the "beneficiary" field.
func BeneficiaryGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldBeneficiary, v))
}

// BeneficiaryLT applies the LT predicate on the "beneficiary" field.
func BeneficiaryLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldBeneficiary, v))
}

// BeneficiaryLTE applies the LTE predicate on the "beneficiary" field.
func BeneficiaryLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldBeneficiary, v))
}

// BeneficiaryContains applies the Contains predicate on the "beneficiary" field.
func BeneficiaryContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldBeneficiary, v))
}

// BeneficiaryHasPrefix applies the HasPrefix predicate on the "beneficiary" field.
func BeneficiaryHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldBeneficiary, v))
}

// BeneficiaryHasSuffix applies the HasSuffix predicate on the "beneficiary" field.
func BeneficiaryHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldBeneficiary, v))
}

// BeneficiaryIsNil applies the IsNil predicate on the "beneficiary" field.
func BeneficiaryIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldBeneficiary))
}

// BeneficiaryNotNil applies the NotNil predicate on the "beneficiary" field.
func BeneficiaryNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldBeneficiary))
}

// BeneficiaryEqualFold applies the EqualFold predicate on the "beneficiary" field.
func BeneficiaryEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldBeneficiary, v))
}

// BeneficiaryContainsFold applies the ContainsFold predicate on the "beneficiary" field.
func BeneficiaryContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldBeneficiary, v))
}

// MinistryEQ applies the EQ predicate on the "ministry" field.
func MinistryEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMinistry, v))
}

// MinistryNEQ applies the NEQ predicate on the "ministry" field.
func MinistryNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldMinistry, v))
}

// MinistryIn applies the In predicate on the "ministry" field.
func MinistryIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldMinistry, vs...))
}

// MinistryNotIn applies the NotIn predicate on the "ministry" field.
func MinistryNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldMinistry, vs...))
}

// MinistryGT applies the GT predicate on the "ministry" field.
func MinistryGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldMinistry, v))
}

// MinistryGTE applies the GTE predicate on the "ministry" field.
func MinistryGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldMinistry, v))
}

// MinistryLT applies the LT predicate on the "ministry" field.
func MinistryLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldMinistry, v))
}

// MinistryLTE applies the LTE predicate on the "ministry" field.
func MinistryLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldMinistry, v))
}

// MinistryContains applies the Contains predicate on the "ministry" field.
func MinistryContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldMinistry, v))
}

// MinistryHasPrefix applies the HasPrefix predicate on the "ministry" field.
func MinistryHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldMinistry, v))
}

// MinistryHasSuffix applies the HasSuffix predicate on the "ministry" field.
func MinistryHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldMinistry, v))
}

// MinistryIsNil applies the IsNil predicate on the "ministry" field.
func MinistryIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldMinistry))
}

// MinistryNotNil applies the NotNil predicate on the "ministry" field.
func MinistryNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldMinistry))
}

// MinistryEqualFold applies the EqualFold predicate on the "ministry" field.
func MinistryEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldMinistry, v))
}

// MinistryContainsFold applies the ContainsFold predicate on the "ministry" field.
func MinistryContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldMinistry, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldDepartment, v))
}

// OrganisationEQ applies the EQ predicate on the "organisation" field.
func OrganisationEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldOrganisation, v))
}

// OrganisationNEQ applies the NEQ predicate on the "organisation" field.
func OrganisationNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldOrganisation, v))
}

// OrganisationIn applies the In predicate on the "organisation" field.
func OrganisationIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldOrganisation, vs...))
}

// OrganisationNotIn applies the NotIn predicate on the "organisation" field.
func OrganisationNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldOrganisation, vs...))
}

// OrganisationGT applies the GT predicate on the "organisation" field.
func OrganisationGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldOrganisation, v))
}

// OrganisationGTE applies the GTE predicate on the "organisation" field.
func OrganisationGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldOrganisation, v))
}

// OrganisationLT applies the LT predicate on the "organisation" field.
func OrganisationLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldOrganisation, v))
}

// OrganisationLTE applies the LTE predicate on the "organisation" field.
func OrganisationLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldOrganisation, v))
}

// OrganisationContains applies the Contains predicate on the "organisation" field.
func OrganisationContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldOrganisation, v))
}

// OrganisationHasPrefix applies the HasPrefix predicate on the "organisation" field.
func OrganisationHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldOrganisation, v))
}

// OrganisationHasSuffix applies the HasSuffix predicate on the "organisation" field.
func OrganisationHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldOrganisation, v))
}

// OrganisationIsNil applies the IsNil predicate on the "organisation" field.
func OrganisationIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldOrganisation))
}

// OrganisationNotNil applies the NotNil predicate on the "organisation" field.
func OrganisationNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldOrganisation))
}

// OrganisationEqualFold applies the EqualFold predicate on the "organisation" field.
func OrganisationEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldOrganisation, v))
}

// OrganisationContainsFold applies the ContainsFold predicate on the "organisation" field.
func OrganisationContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldOrganisation, v))
}

// OfficeNameEQ applies the EQ predicate on the "office_name" field.
func OfficeNameEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldOfficeName, v))
}

// OfficeNameNEQ applies the NEQ predicate on the "office_name" field.
func OfficeNameNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldOfficeName, v))
}

// OfficeNameIn applies the In predicate on the "office_name" field.
func OfficeNameIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldOfficeName, vs...))
}

// OfficeNameNotIn applies the NotIn predicate on the "office_name" field.
func OfficeNameNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldOfficeName, vs...))
}

// OfficeNameGT applies the GT predicate on the "office_name" field.
func OfficeNameGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldOfficeName, v))
}

// OfficeNameGTE applies the GTE predicate on the "office_name" field.
func OfficeNameGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldOfficeName, v))
}

// OfficeNameLT applies the LT predicate on the "office_name" field.
func OfficeNameLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldOfficeName, v))
}

// OfficeNameLTE applies the LTE predicate on the "office_name" field.
func OfficeNameLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldOfficeName, v))
}

// OfficeNameContains applies the Contains predicate on the "office_name" field.
func OfficeNameContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldOfficeName, v))
}

// OfficeNameHasPrefix applies the HasPrefix predicate on the "office_name" field.
func OfficeNameHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldOfficeName, v))
}

// OfficeNameHasSuffix applies the HasSuffix predicate on the "office_name" field.
func OfficeNameHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldOfficeName, v))
}

// OfficeNameIsNil applies the IsNil predicate on the "office_name" field.
func OfficeNameIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldOfficeName))
}

// OfficeNameNotNil applies the NotNil predicate on the "office_name" field.
func OfficeNameNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldOfficeName))
}

// OfficeNameEqualFold applies the EqualFold predicate on the "office_name" field.
func OfficeNameEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldOfficeName, v))
}

// OfficeNameContainsFold applies the ContainsFold predicate on the "office_name" field.
func OfficeNameContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldOfficeName, v))
}

// ItemCategoryEQ applies the EQ predicate on the "item_category" field.
func ItemCategoryEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldItemCategory, v))
}

// ItemCategoryNEQ applies the NEQ predicate on the "item_category" field.
func ItemCategoryNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldItemCategory, v))
}

// ItemCategoryIn applies the In predicate on the "item_category" field.
func ItemCategoryIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldItemCategory, vs...))
}

// ItemCategoryNotIn applies the NotIn predicate on the "item_category" field.
func ItemCategoryNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldItemCategory, vs...))
}

// ItemCategoryGT applies the GT predicate on the "item_category" field.
func ItemCategoryGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldItemCategory, v))
}

// ItemCategoryGTE applies the GTE predicate on the "item_category" field.
func ItemCategoryGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldItemCategory, v))
}

// ItemCategoryLT applies the LT predicate on the "item_category" field.
func ItemCategoryLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldItemCategory, v))
}

// ItemCategoryLTE applies the LTE predicate on the "item_category" field.
func ItemCategoryLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldItemCategory, v))
}

// ItemCategoryContains applies the Contains predicate on the "item_category" field.
func ItemCategoryContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldItemCategory, v))
}

// ItemCategoryHasPrefix applies the HasPrefix predicate on the "item_category" field.
func ItemCategoryHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldItemCategory, v))
}

// ItemCategoryHasSuffix applies the HasSuffix predicate on the "item_category" field.
func ItemCategoryHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldItemCategory, v))
}

// ItemCategoryIsNil applies the IsNil predicate on the "item_category" field.
func ItemCategoryIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldItemCategory))
}

// ItemCategoryNotNil applies the NotNil predicate on the "item_category" field.
func ItemCategoryNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldItemCategory))
}

// ItemCategoryEqualFold applies the EqualFold predicate on the "item_category" field.
func ItemCategoryEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldItemCategory, v))
}

// ItemCategoryContainsFold applies the ContainsFold predicate on the "item_category" field.
func ItemCategoryContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldItemCategory, v))
}

// ContractPeriodEQ applies the EQ predicate on the "contract_period" field.
func ContractPeriodEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldContractPeriod, v))
}

// ContractPeriodNEQ applies the NEQ predicate on the "contract_period" field.
func ContractPeriodNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldContractPeriod, v))
}

// ContractPeriodIn applies the In predicate on the "contract_period" field.
func ContractPeriodIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldContractPeriod, vs...))
}

// ContractPeriodNotIn applies the NotIn predicate on the "contract_period" field.
func ContractPeriodNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldContractPeriod, vs...))
}

// ContractPeriodGT applies the GT predicate on the "contract_period" field.
func ContractPeriodGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldContractPeriod, v))
}

// ContractPeriodGTE applies the GTE predicate on the "contract_period" field.
func ContractPeriodGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldContractPeriod, v))
}

// ContractPeriodLT applies the LT predicate on the "contract_period" field.
func ContractPeriodLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldContractPeriod, v))
}

// ContractPeriodLTE applies the LTE predicate on the "contract_period" field.
func ContractPeriodLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldContractPeriod, v))
}

// ContractPeriodContains applies the Contains predicate on the "contract_period" field.
func ContractPeriodContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldContractPeriod, v))
}

// ContractPeriodHasPrefix applies the HasPrefix predicate on the "contract_period" field.
func ContractPeriodHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldContractPeriod, v))
}

// ContractPeriodHasSuffix applies the HasSuffix predicate on the "contract_period" field.
func ContractPeriodHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldContractPeriod, v))
}

// ContractPeriodIsNil applies the IsNil predicate on the "contract_period" field.
func ContractPeriodIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldContractPeriod))
}

// ContractPeriodNotNil applies the NotNil predicate on the "contract_period" field.
func ContractPeriodNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldContractPeriod))
}

// ContractPeriodEqualFold applies the EqualFold predicate on the "contract_period" field.
func ContractPeriodEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldContractPeriod, v))
}

// ContractPeriodContainsFold applies the ContainsFold predicate on the "contract_period" field.
func ContractPeriodContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldContractPeriod, v))
}

// BidEndDatetimeEQ applies the EQ predicate on the "bid_end_datetime" field.
func BidEndDatetimeEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidEndDatetime, v))
}

// BidEndDatetimeNEQ applies the NEQ predicate on the "bid_end_datetime" field.
func BidEndDatetimeNEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldBidEndDatetime, v))
}

// BidEndDatetimeIn applies the In predicate on the "bid_end_datetime" field.
func BidEndDatetimeIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldBidEndDatetime, vs...))
}

// BidEndDatetimeNotIn applies the NotIn predicate on the "bid_end_datetime" field.
func BidEndDatetimeNotIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldBidEndDatetime, vs...))
}

// BidEndDatetimeGT applies the GT predicate on the "bid_end_datetime" field.
func BidEndDatetimeGT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldBidEndDatetime, v))
}

// BidEndDatetimeGTE applies the GTE predicate on the "bid_end_datetime" field.
func BidEndDatetimeGTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldBidEndDatetime, v))
}

// BidEndDatetimeLT applies the LT predicate on the "bid_end_datetime" field.
func BidEndDatetimeLT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldBidEndDatetime, v))
}

// BidEndDatetimeLTE applies the LTE predicate on the "bid_end_datetime" field.
func BidEndDatetimeLTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldBidEndDatetime, v))
}

// BidEndDatetimeIsNil applies the IsNil predicate on the "bid_end_datetime" field.
func BidEndDatetimeIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldBidEndDatetime))
}

// BidEndDatetimeNotNil applies the NotNil predicate on the "bid_end_datetime" field.
func BidEndDatetimeNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldBidEndDatetime))
}

// BidOpenDatetimeEQ applies the EQ predicate on the "bid_open_datetime" field.
func BidOpenDatetimeEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidOpenDatetime, v))
}

// BidOpenDatetimeNEQ applies the NEQ predicate on the "bid_open_datetime" field.
func BidOpenDatetimeNEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldBidOpenDatetime, v))
}

// BidOpenDatetimeIn applies the In predicate on the "bid_open_datetime" field.
func BidOpenDatetimeIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldBidOpenDatetime, vs...))
}

// BidOpenDatetimeNotIn applies the NotIn predicate on the "bid_open_datetime" field.
func BidOpenDatetimeNotIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldBidOpenDatetime, vs...))
}

// BidOpenDatetimeGT applies the GT predicate on the "bid_open_datetime" field.
func BidOpenDatetimeGT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldBidOpenDatetime, v))
}

// BidOpenDatetimeGTE applies the GTE predicate on the "bid_open_datetime" field.
func BidOpenDatetimeGTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldBidOpenDatetime, v))
}

// BidOpenDatetimeLT applies the LT predicate on the "bid_open_datetime" field.
func BidOpenDatetimeLT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldBidOpenDatetime, v))
}

// BidOpenDatetimeLTE applies the LTE predicate on the "bid_open_datetime" field.
func BidOpenDatetimeLTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldBidOpenDatetime, v))
}

// BidOpenDatetimeIsNil applies the IsNil predicate on the "bid_open_datetime" field.
func BidOpenDatetimeIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldBidOpenDatetime))
}

// BidOpenDatetimeNotNil applies the NotNil predicate on the "bid_open_datetime" field.
func BidOpenDatetimeNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldBidOpenDatetime))
}

// BidOfferValidityDaysEQ applies the EQ predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysEQ(v int) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldBidOfferValidityDays, v))
}

// BidOfferValidityDaysNEQ applies the NEQ predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysNEQ(v int) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldBidOfferValidityDays, v))
}

// BidOfferValidityDaysIn applies the In predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysIn(vs ...int) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldBidOfferValidityDays, vs...))
}

// BidOfferValidityDaysNotIn applies the NotIn predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysNotIn(vs ...int) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldBidOfferValidityDays, vs...))
}

// BidOfferValidityDaysGT applies the GT predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysGT(v int) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldBidOfferValidityDays, v))
}

// BidOfferValidityDaysGTE applies the GTE predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysGTE(v int) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldBidOfferValidityDays, v))
}

// BidOfferValidityDaysLT applies the LT predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysLT(v int) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldBidOfferValidityDays, v))
}

// BidOfferValidityDaysLTE applies the LTE predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysLTE(v int) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldBidOfferValidityDays, v))
}

// BidOfferValidityDaysIsNil applies the IsNil predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldBidOfferValidityDays))
}

// BidOfferValidityDaysNotNil applies the NotNil predicate on the "bid_offer_validity_days" field.
func BidOfferValidityDaysNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldBidOfferValidityDays))
}

// DeliveryDaysEQ applies the EQ predicate on the "delivery_days" field.
func DeliveryDaysEQ(v int) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldDeliveryDays, v))
}

// DeliveryDaysNEQ applies the NEQ predicate on the "delivery_days" field.
func DeliveryDaysNEQ(v int) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldDeliveryDays, v))
}

// DeliveryDaysIn applies the In predicate on the "delivery_days" field.
func DeliveryDaysIn(vs ...int) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldDeliveryDays, vs...))
}

// DeliveryDaysNotIn applies the NotIn predicate on the "delivery_days" field.
func DeliveryDaysNotIn(vs ...int) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldDeliveryDays, vs...))
}

// DeliveryDaysGT applies the GT predicate on the "delivery_days" field.
func DeliveryDaysGT(v int) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldDeliveryDays, v))
}

// DeliveryDaysGTE applies the GTE predicate on the "delivery_days" field.
func DeliveryDaysGTE(v int) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldDeliveryDays, v))
}

// DeliveryDaysLT applies the LT predicate on the "delivery_days" field.
func DeliveryDaysLT(v int) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldDeliveryDays, v))
}

// DeliveryDaysLTE applies the LTE predicate on the "delivery_days" field.
func DeliveryDaysLTE(v int) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldDeliveryDays, v))
}

// DeliveryDaysIsNil applies the IsNil predicate on the "delivery_days" field.
func DeliveryDaysIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldDeliveryDays))
}

// DeliveryDaysNotNil applies the NotNil predicate on the "delivery_days" field.
func DeliveryDaysNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldDeliveryDays))
}

// TotalQuantityEQ applies the EQ predicate on the "total_quantity" field.
func TotalQuantityEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldTotalQuantity, v))
}

// TotalQuantityNEQ applies the NEQ predicate on the "total_quantity" field.
func TotalQuantityNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldTotalQuantity, v))
}

// TotalQuantityIn applies the In predicate on the "total_quantity" field.
func TotalQuantityIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldTotalQuantity, vs...))
}

// TotalQuantityNotIn applies the NotIn predicate on the "total_quantity" field.
func TotalQuantityNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldTotalQuantity, vs...))
}

// TotalQuantityGT applies the GT predicate on the "total_quantity" field.
func TotalQuantityGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldTotalQuantity, v))
}

// TotalQuantityGTE applies the GTE predicate on the "total_quantity" field.
func TotalQuantityGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldTotalQuantity, v))
}

// TotalQuantityLT applies the LT predicate on the "total_quantity" field.
func TotalQuantityLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldTotalQuantity, v))
}

// TotalQuantityLTE applies the LTE predicate on the "total_quantity" field.
func TotalQuantityLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldTotalQuantity, v))
}

// TotalQuantityContains applies the Contains predicate on the "total_quantity" field.
func TotalQuantityContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldTotalQuantity, v))
}

// TotalQuantityHasPrefix applies the HasPrefix predicate on the "total_quantity" field.
func TotalQuantityHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldTotalQuantity, v))
}

// TotalQuantityHasSuffix applies the HasSuffix predicate on the "total_quantity" field.
func TotalQuantityHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldTotalQuantity, v))
}

// TotalQuantityIsNil applies the IsNil predicate on the "total_quantity" field.
func TotalQuantityIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldTotalQuantity))
}

// TotalQuantityNotNil applies the NotNil predicate on the "total_quantity" field.
func TotalQuantityNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldTotalQuantity))
}

// TotalQuantityEqualFold applies the EqualFold predicate on the "total_quantity" field.
func TotalQuantityEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldTotalQuantity, v))
}

// TotalQuantityContainsFold applies the ContainsFold predicate on the "total_quantity" field.
func TotalQuantityContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldTotalQuantity, v))
}

// EstimatedBidValueEQ applies the EQ predicate on the "estimated_bid_value" field.
func EstimatedBidValueEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldEstimatedBidValue, v))
}

// EstimatedBidValueNEQ applies the NEQ predicate on the "estimated_bid_value" field.
func EstimatedBidValueNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldEstimatedBidValue, v))
}

// EstimatedBidValueIn applies the In predicate on the "estimated_bid_value" field.
func EstimatedBidValueIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldEstimatedBidValue, vs...))
}

// EstimatedBidValueNotIn applies the NotIn predicate on the "estimated_bid_value" field.
func EstimatedBidValueNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldEstimatedBidValue, vs...))
}

// EstimatedBidValueGT applies the GT predicate on the "estimated_bid_value" field.
func EstimatedBidValueGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldEstimatedBidValue, v))
}

// EstimatedBidValueGTE applies the GTE predicate on the "estimated_bid_value" field.
func EstimatedBidValueGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldEstimatedBidValue, v))
}

// EstimatedBidValueLT applies the LT predicate on the "estimated_bid_value" field.
func EstimatedBidValueLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldEstimatedBidValue, v))
}

// EstimatedBidValueLTE applies the LTE predicate on the "estimated_bid_value" field.
func EstimatedBidValueLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldEstimatedBidValue, v))
}

// EstimatedBidValueContains applies the Contains predicate on the "estimated_bid_value" field.
func EstimatedBidValueContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldEstimatedBidValue, v))
}

// EstimatedBidValueHasPrefix applies the HasPrefix predicate on the "estimated_bid_value" field.
func EstimatedBidValueHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldEstimatedBidValue, v))
}

// EstimatedBidValueHasSuffix applies the HasSuffix predicate on the "estimated_bid_value" field.
func EstimatedBidValueHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldEstimatedBidValue, v))
}

// EstimatedBidValueIsNil applies the IsNil predicate on the "estimated_bid_value" field.
func EstimatedBidValueIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldEstimatedBidValue))
}

// EstimatedBidValueNotNil applies the NotNil predicate on the "estimated_bid_value" field.
func EstimatedBidValueNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldEstimatedBidValue))
}

// EstimatedBidValueEqualFold applies the EqualFold predicate on the "estimated_bid_value" field.
func EstimatedBidValueEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldEstimatedBidValue, v))
}

// EstimatedBidValueContainsFold applies the ContainsFold predicate on the "estimated_bid_value" field.
func EstimatedBidValueContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldEstimatedBidValue, v))
}

// SimilarCategoryEQ applies the EQ predicate on the "similar_category" field.
func SimilarCategoryEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldSimilarCategory, v))
}

// SimilarCategoryNEQ applies the NEQ predicate on the "similar_category" field.
func SimilarCategoryNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldSimilarCategory, v))
}

// SimilarCategoryIn applies the In predicate on the "similar_category" field.
func SimilarCategoryIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldSimilarCategory, vs...))
}

// SimilarCategoryNotIn applies the NotIn predicate on the "similar_category" field.
func SimilarCategoryNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldSimilarCategory, vs...))
}

// SimilarCategoryGT applies the GT predicate on the "similar_category" field.
func SimilarCategoryGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldSimilarCategory, v))
}

// SimilarCategoryGTE applies the GTE predicate on the "similar_category" field.
func SimilarCategoryGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldSimilarCategory, v))
}

// SimilarCategoryLT applies the LT predicate on the "similar_category" field.
func SimilarCategoryLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldSimilarCategory, v))
}

// SimilarCategoryLTE applies the LTE predicate on the "similar_category" field.
func SimilarCategoryLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldSimilarCategory, v))
}

// SimilarCategoryContains applies the Contains predicate on the "similar_category" field.
func SimilarCategoryContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldSimilarCategory, v))
}

// SimilarCategoryHasPrefix applies the HasPrefix predicate on the "similar_category" field.
func SimilarCategoryHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldSimilarCategory, v))
}

// SimilarCategoryHasSuffix applies the HasSuffix predicate on the "similar_category" field.
func SimilarCategoryHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldSimilarCategory, v))
}

// SimilarCategoryIsNil applies the IsNil predicate on the "similar_category" field.
func SimilarCategoryIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldSimilarCategory))
}

// SimilarCategoryNotNil applies the NotNil predicate on the "similar_category" field.
func SimilarCategoryNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldSimilarCategory))
}

// SimilarCategoryEqualFold applies the EqualFold predicate on the "similar_category" field.
func SimilarCategoryEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldSimilarCategory, v))
}

// SimilarCategoryContainsFold applies the ContainsFold predicate on the "similar_category" field.
func SimilarCategoryContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldSimilarCategory, v))
}

// MseExemptionEQ applies the EQ predicate on the "mse_exemption" field.
func MseExemptionEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMseExemption, v))
}

// MseExemptionNEQ applies the NEQ predicate on the "mse_exemption" field.
func MseExemptionNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldMseExemption, v))
}

// MseExemptionIn applies the In predicate on the "mse_exemption" field.
func MseExemptionIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldMseExemption, vs...))
}

// MseExemptionNotIn applies the NotIn predicate on the "mse_exemption" field.
func MseExemptionNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldMseExemption, vs...))
}

// MseExemptionGT applies the GT predicate on the "mse_exemption" field.
func MseExemptionGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldMseExemption, v))
}

// MseExemptionGTE applies the GTE predicate on the "mse_exemption" field.
func MseExemptionGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldMseExemption, v))
}

// MseExemptionLT applies the LT predicate on the "mse_exemption" field.
func MseExemptionLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldMseExemption, v))
}

// MseExemptionLTE applies the LTE predicate on the "mse_exemption" field.
func MseExemptionLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldMseExemption, v))
}

// MseExemptionContains applies the Contains predicate on the "mse_exemption" field.
func MseExemptionContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldMseExemption, v))
}

// MseExemptionHasPrefix applies the HasPrefix predicate on the "mse_exemption" field.
func MseExemptionHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldMseExemption, v))
}

// MseExemptionHasSuffix applies the HasSuffix predicate on the "mse_exemption" field.
func MseExemptionHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldMseExemption, v))
}

// MseExemptionIsNil applies the IsNil predicate on the "mse_exemption" field.
func MseExemptionIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldMseExemption))
}

// MseExemptionNotNil applies the NotNil predicate on the "mse_exemption" field.
func MseExemptionNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldMseExemption))
}

// MseExemptionEqualFold applies the EqualFold predicate on the "mse_exemption" field.
func MseExemptionEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldMseExemption, v))
}

// MseExemptionContainsFold applies the ContainsFold predicate on the "mse_exemption" field.
func MseExemptionContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldMseExemption, v))
}

// StartupExemptionEQ applies the EQ predicate on the "startup_exemption" field.
func StartupExemptionEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldStartupExemption, v))
}

// StartupExemptionNEQ applies the NEQ predicate on the "startup_exemption" field.
func StartupExemptionNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldStartupExemption, v))
}

// StartupExemptionIn applies the In predicate on the "startup_exemption" field.
func StartupExemptionIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldStartupExemption, vs...))
}

// StartupExemptionNotIn applies the NotIn predicate on the "startup_exemption" field.
func StartupExemptionNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldStartupExemption, vs...))
}

// StartupExemptionGT applies the GT predicate on the "startup_exemption" field.
func StartupExemptionGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldStartupExemption, v))
}

// StartupExemptionGTE applies the GTE predicate on the "startup_exemption" field.
func StartupExemptionGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldStartupExemption, v))
}

// StartupExemptionLT applies the LT predicate on the "startup_exemption" field.
func StartupExemptionLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldStartupExemption, v))
}

// StartupExemptionLTE applies the LTE predicate on the "startup_exemption" field.
func StartupExemptionLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldStartupExemption, v))
}

// StartupExemptionContains applies the Contains predicate on the "startup_exemption" field.
func StartupExemptionContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldStartupExemption, v))
}

// StartupExemptionHasPrefix applies the HasPrefix predicate on the "startup_exemption" field.
func StartupExemptionHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldStartupExemption, v))
}

// StartupExemptionHasSuffix applies the HasSuffix predicate on the "startup_exemption" field.
func StartupExemptionHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldStartupExemption, v))
}

// StartupExemptionIsNil applies the IsNil predicate on the "startup_exemption" field.
func StartupExemptionIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldStartupExemption))
}

// StartupExemptionNotNil applies the NotNil predicate on the "startup_exemption" field.
func StartupExemptionNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldStartupExemption))
}

// StartupExemptionEqualFold applies the EqualFold predicate on the "startup_exemption" field.
func StartupExemptionEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldStartupExemption, v))
}

// StartupExemptionContainsFold applies the ContainsFold predicate on the "startup_exemption" field.
func StartupExemptionContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldStartupExemption, v))
}

// MsePurchasePreferenceEQ applies the EQ predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceNEQ applies the NEQ predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceIn applies the In predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldMsePurchasePreference, vs...))
}

// MsePurchasePreferenceNotIn applies the NotIn predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldMsePurchasePreference, vs...))
}

// MsePurchasePreferenceGT applies the GT predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceGTE applies the GTE predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceLT applies the LT predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceLTE applies the LTE predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceContains applies the Contains predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceHasPrefix applies the HasPrefix predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceHasSuffix applies the HasSuffix predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceIsNil applies the IsNil predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldMsePurchasePreference))
}

// MsePurchasePreferenceNotNil applies the NotNil predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldMsePurchasePreference))
}

// MsePurchasePreferenceEqualFold applies the EqualFold predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldMsePurchasePreference, v))
}

// MsePurchasePreferenceContainsFold applies the ContainsFold predicate on the "mse_purchase_preference" field.
func MsePurchasePreferenceContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldMsePurchasePreference, v))
}

// MiiPurchasePreferenceEQ applies the EQ predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceNEQ applies the NEQ predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceIn applies the In predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldMiiPurchasePreference, vs...))
}

// MiiPurchasePreferenceNotIn applies the NotIn predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldMiiPurchasePreference, vs...))
}

// MiiPurchasePreferenceGT applies the GT predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceGTE applies the GTE predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceLT applies the LT predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceLTE applies the LTE predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceContains applies the Contains predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceHasPrefix applies the HasPrefix predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceHasSuffix applies the HasSuffix predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceIsNil applies the IsNil predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldMiiPurchasePreference))
}

// MiiPurchasePreferenceNotNil applies the NotNil predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldMiiPurchasePreference))
}

// MiiPurchasePreferenceEqualFold applies the EqualFold predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldMiiPurchasePreference, v))
}

// MiiPurchasePreferenceContainsFold applies the ContainsFold predicate on the "mii_purchase_preference" field.
func MiiPurchasePreferenceContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldMiiPurchasePreference, v))
}

// EvaluationMethodEQ applies the EQ predicate on the "evaluation_method" field.
func EvaluationMethodEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldEvaluationMethod, v))
}

// EvaluationMethodNEQ applies the NEQ predicate on the "evaluation_method" field.
func EvaluationMethodNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldEvaluationMethod, v))
}

// EvaluationMethodIn applies the In predicate on the "evaluation_method" field.
func EvaluationMethodIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldEvaluationMethod, vs...))
}

// EvaluationMethodNotIn applies the NotIn predicate on the "evaluation_method" field.
func EvaluationMethodNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldEvaluationMethod, vs...))
}

// EvaluationMethodGT applies the GT predicate on the "evaluation_method" field.
func EvaluationMethodGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldEvaluationMethod, v))
}

// EvaluationMethodGTE applies the GTE predicate on the "evaluation_method" field.
func EvaluationMethodGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldEvaluationMethod, v))
}

// EvaluationMethodLT applies the LT predicate on the "evaluation_method" field.
func EvaluationMethodLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldEvaluationMethod, v))
}

// EvaluationMethodLTE applies the LTE predicate on the "evaluation_method" field.
func EvaluationMethodLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldEvaluationMethod, v))
}

// EvaluationMethodContains applies the Contains predicate on the "evaluation_method" field.
func EvaluationMethodContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldEvaluationMethod, v))
}

// EvaluationMethodHasPrefix applies the HasPrefix predicate on the "evaluation_method" field.
func EvaluationMethodHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldEvaluationMethod, v))
}

// EvaluationMethodHasSuffix applies the HasSuffix predicate on the "evaluation_method" field.
func EvaluationMethodHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldEvaluationMethod, v))
}

// EvaluationMethodIsNil applies the IsNil predicate on the "evaluation_method" field.
func EvaluationMethodIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldEvaluationMethod))
}

// EvaluationMethodNotNil applies the NotNil predicate on the "evaluation_method" field.
func EvaluationMethodNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldEvaluationMethod))
}

// EvaluationMethodEqualFold applies the EqualFold predicate on the "evaluation_method" field.
func EvaluationMethodEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldEvaluationMethod, v))
}

// EvaluationMethodContainsFold applies the ContainsFold predicate on the "evaluation_method" field.
func EvaluationMethodContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldEvaluationMethod, v))
}

// InspectionRequiredEQ applies the EQ predicate on the "inspection_required" field.
func InspectionRequiredEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldInspectionRequired, v))
}

// InspectionRequiredNEQ applies the NEQ predicate on the "inspection_required" field.
func InspectionRequiredNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldInspectionRequired, v))
}

// InspectionRequiredIn applies the In predicate on the "inspection_required" field.
func InspectionRequiredIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldInspectionRequired, vs...))
}

// InspectionRequiredNotIn applies the NotIn predicate on the "inspection_required" field.
func InspectionRequiredNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldInspectionRequired, vs...))
}

// InspectionRequiredGT applies the GT predicate on the "inspection_required" field.
func InspectionRequiredGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldInspectionRequired, v))
}

// InspectionRequiredGTE applies the GTE predicate on the "inspection_required" field.
func InspectionRequiredGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldInspectionRequired, v))
}

// InspectionRequiredLT applies the LT predicate on the "inspection_required" field.
func InspectionRequiredLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldInspectionRequired, v))
}

// InspectionRequiredLTE applies the LTE predicate on the "inspection_required" field.
func InspectionRequiredLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldInspectionRequired, v))
}

// InspectionRequiredContains applies the Contains predicate on the "inspection_required" field.
func InspectionRequiredContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldInspectionRequired, v))
}

// InspectionRequiredHasPrefix applies the HasPrefix predicate on the "inspection_required" field.
func InspectionRequiredHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldInspectionRequired, v))
}

// InspectionRequiredHasSuffix applies the HasSuffix predicate on the "inspection_required" field.
func InspectionRequiredHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldInspectionRequired, v))
}

// InspectionRequiredIsNil applies the IsNil predicate on the "inspection_required" field.
func InspectionRequiredIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldInspectionRequired))
}

// InspectionRequiredNotNil applies the NotNil predicate on the "inspection_required" field.
func InspectionRequiredNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldInspectionRequired))
}

// InspectionRequiredEqualFold applies the EqualFold predicate on the "inspection_required" field.
func InspectionRequiredEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldInspectionRequired, v))
}

// InspectionRequiredContainsFold applies the ContainsFold predicate on the "inspection_required" field.
func InspectionRequiredContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldInspectionRequired, v))
}

// PrimaryProductCategoryEQ applies the EQ predicate on the "primary_product_category" field.
func PrimaryProductCategoryEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryNEQ applies the NEQ predicate on the "primary_product_category" field.
func PrimaryProductCategoryNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryIn applies the In predicate on the "primary_product_category" field.
func PrimaryProductCategoryIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldPrimaryProductCategory, vs...))
}

// PrimaryProductCategoryNotIn applies the NotIn predicate on the "primary_product_category" field.
func PrimaryProductCategoryNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldPrimaryProductCategory, vs...))
}

// PrimaryProductCategoryGT applies the GT predicate on the "primary_product_category" field.
func PrimaryProductCategoryGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryGTE applies the GTE predicate on the "primary_product_category" field.
func PrimaryProductCategoryGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryLT applies the LT predicate on the "primary_product_category" field.
func PrimaryProductCategoryLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryLTE applies the LTE predicate on the "primary_product_category" field.
func PrimaryProductCategoryLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryContains applies the Contains predicate on the "primary_product_category" field.
func PrimaryProductCategoryContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryHasPrefix applies the HasPrefix predicate on the "primary_product_category" field.
func PrimaryProductCategoryHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryHasSuffix applies the HasSuffix predicate on the "primary_product_category" field.
func PrimaryProductCategoryHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryIsNil applies the IsNil predicate on the "primary_product_category" field.
func PrimaryProductCategoryIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldPrimaryProductCategory))
}

// PrimaryProductCategoryNotNil applies the NotNil predicate on the "primary_product_category" field.
func PrimaryProductCategoryNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldPrimaryProductCategory))
}

// PrimaryProductCategoryEqualFold applies the EqualFold predicate on the "primary_product_category" field.
func PrimaryProductCategoryEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldPrimaryProductCategory, v))
}

// PrimaryProductCategoryContainsFold applies the ContainsFold predicate on the "primary_product_category" field.
func PrimaryProductCategoryContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldPrimaryProductCategory, v))
}

// DeliveryAddressEQ applies the EQ predicate on the "delivery_address" field.
func DeliveryAddressEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldDeliveryAddress, v))
}

// DeliveryAddressNEQ applies the NEQ predicate on the "delivery_address" field.
func DeliveryAddressNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldDeliveryAddress, v))
}

// DeliveryAddressIn applies the In predicate on the "delivery_address" field.
func DeliveryAddressIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldDeliveryAddress, vs...))
}

// DeliveryAddressNotIn applies the NotIn predicate on the "delivery_address" field.
func DeliveryAddressNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldDeliveryAddress, vs...))
}

// DeliveryAddressGT applies the GT predicate on the "delivery_address" field.
func DeliveryAddressGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldDeliveryAddress, v))
}

// DeliveryAddressGTE applies the GTE predicate on the "delivery_address" field.
func DeliveryAddressGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldDeliveryAddress, v))
}

// DeliveryAddressLT applies the LT predicate on the "delivery_address" field.
func DeliveryAddressLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldDeliveryAddress, v))
}

// DeliveryAddressLTE applies the LTE predicate on the "delivery_address" field.
func DeliveryAddressLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldDeliveryAddress, v))
}

// DeliveryAddressContains applies the Contains predicate on the "delivery_address" field.
func DeliveryAddressContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldDeliveryAddress, v))
}

// DeliveryAddressHasPrefix applies the HasPrefix predicate on the "delivery_address" field.
func DeliveryAddressHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldDeliveryAddress, v))
}

// DeliveryAddressHasSuffix applies the HasSuffix predicate on the "delivery_address" field.
func DeliveryAddressHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldDeliveryAddress, v))
}

// DeliveryAddressIsNil applies the IsNil predicate on the "delivery_address" field.
func DeliveryAddressIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldDeliveryAddress))
}

// DeliveryAddressNotNil applies the NotNil predicate on the "delivery_address" field.
func DeliveryAddressNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldDeliveryAddress))
}

// DeliveryAddressEqualFold applies the EqualFold predicate on the "delivery_address" field.
func DeliveryAddressEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldDeliveryAddress, v))
}

// DeliveryAddressContainsFold applies the ContainsFold predicate on the "delivery_address" field.
func DeliveryAddressContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldDeliveryAddress, v))
}

// ScopeOfSupplyEQ applies the EQ predicate on the "scope_of_supply" field.
func ScopeOfSupplyEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldScopeOfSupply, v))
}

// ScopeOfSupplyNEQ applies the NEQ predicate on the "scope_of_supply" field.
func ScopeOfSupplyNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldScopeOfSupply, v))
}

// ScopeOfSupplyIn applies the In predicate on the "scope_of_supply" field.
func ScopeOfSupplyIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldScopeOfSupply, vs...))
}

// ScopeOfSupplyNotIn applies the NotIn predicate on the "scope_of_supply" field.
func ScopeOfSupplyNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldScopeOfSupply, vs...))
}

// ScopeOfSupplyGT applies the GT predicate on the "scope_of_supply" field.
func ScopeOfSupplyGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldScopeOfSupply, v))
}

// ScopeOfSupplyGTE applies the GTE predicate on the "scope_of_supply" field.
func ScopeOfSupplyGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldScopeOfSupply, v))
}

// ScopeOfSupplyLT applies the LT predicate on the "scope_of_supply" field.
func ScopeOfSupplyLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldScopeOfSupply, v))
}

// ScopeOfSupplyLTE applies the LTE predicate on the "scope_of_supply" field.
func ScopeOfSupplyLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldScopeOfSupply, v))
}

// ScopeOfSupplyContains applies the Contains predicate on the "scope_of_supply" field.
func ScopeOfSupplyContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldScopeOfSupply, v))
}

// ScopeOfSupplyHasPrefix applies the HasPrefix predicate on the "scope_of_supply" field.
func ScopeOfSupplyHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldScopeOfSupply, v))
}

// ScopeOfSupplyHasSuffix applies the HasSuffix predicate on the "scope_of_supply" field.
func ScopeOfSupplyHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldScopeOfSupply, v))
}

// ScopeOfSupplyIsNil applies the IsNil predicate on the "scope_of_supply" field.
func ScopeOfSupplyIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldScopeOfSupply))
}

// ScopeOfSupplyNotNil applies the NotNil predicate on the "scope_of_supply" field.
func ScopeOfSupplyNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldScopeOfSupply))
}

// ScopeOfSupplyEqualFold applies the EqualFold predicate on the "scope_of_supply" field.
func ScopeOfSupplyEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldScopeOfSupply, v))
}

// ScopeOfSupplyContainsFold applies the ContainsFold predicate on the "scope_of_supply" field.
func ScopeOfSupplyContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldScopeOfSupply, v))
}

// OptionClauseEQ applies the EQ predicate on the "option_clause" field.
func OptionClauseEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldOptionClause, v))
}

// OptionClauseNEQ applies the NEQ predicate on the "option_clause" field.
func OptionClauseNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldOptionClause, v))
}

// OptionClauseIn applies the In predicate on the "option_clause" field.
func OptionClauseIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldOptionClause, vs...))
}

// OptionClauseNotIn applies the NotIn predicate on the "option_clause" field.
func OptionClauseNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldOptionClause, vs...))
}

// OptionClauseGT applies the GT predicate on the "option_clause" field.
func OptionClauseGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldOptionClause, v))
}

// OptionClauseGTE applies the GTE predicate on the "option_clause" field.
func OptionClauseGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldOptionClause, v))
}

// OptionClauseLT applies the LT predicate on the "option_clause" field.
func OptionClauseLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldOptionClause, v))
}

// OptionClauseLTE applies the LTE predicate on the "option_clause" field.
func OptionClauseLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldOptionClause, v))
}

// OptionClauseContains applies the Contains predicate on the "option_clause" field.
func OptionClauseContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldOptionClause, v))
}

// OptionClauseHasPrefix applies the HasPrefix predicate on the "option_clause" field.
func OptionClauseHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldOptionClause, v))
}

// OptionClauseHasSuffix applies the HasSuffix predicate on the "option_clause" field.
func OptionClauseHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldOptionClause, v))
}

// OptionClauseIsNil applies the IsNil predicate on the "option_clause" field.
func OptionClauseIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldOptionClause))
}

// OptionClauseNotNil applies the NotNil predicate on the "option_clause" field.
func OptionClauseNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldOptionClause))
}

// OptionClauseEqualFold applies the EqualFold predicate on the "option_clause" field.
func OptionClauseEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldOptionClause, v))
}

// OptionClauseContainsFold applies the ContainsFold predicate on the "option_clause" field.
func OptionClauseContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldOptionClause, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileIsNil applies the IsNil predicate on the "source_file" field.
func SourceFileIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldSourceFile))
}

// SourceFileNotNil applies the NotNil predicate on the "source_file" field.
func SourceFileNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldSourceFile))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldSourceFile, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Bid {
	return predicate.Bid(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Bid {
	return predicate.Bid(sql.FieldContainsFold(FieldRawText, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Bid {
	return predicate.Bid(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Bid {
	return predicate.Bid(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Bid {
	return predicate.Bid(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Bid {
	return predicate.Bid(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Bid {
	return predicate.Bid(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Bid) predicate.Bid {
	return predicate.Bid(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Bid) predicate.Bid {
	return predicate.Bid(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Bid) predicate.Bid {
	return predicate.Bid(sql.NotPredicates(p))
}
