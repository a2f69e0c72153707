// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/bid"
	"github.com/gemdocs/procurement-tracker/gen/ent/extractjob"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// BidUpdate is the builder for updating Bid entities.
type BidUpdate struct {
	config
	hooks    []Hook
	mutation *BidMutation
}

// Where appends a list predicates to the BidUpdate builder.
func (_u *BidUpdate) Where(ps ...predicate.Bid) *BidUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBidNumber sets the "bid_number" field.
func (_u *BidUpdate) SetBidNumber(v string) *BidUpdate {
	_u.mutation.SetBidNumber(v)
	return _u
}

// SetNillableBidNumber sets the "bid_number" field if the given value is not nil.
func (_u *BidUpdate) SetNillableBidNumber(v *string) *BidUpdate {
	if v != nil {
		_u.SetBidNumber(*v)
	}
	return _u
}

// SetDated sets the "dated" field.
func (_u *BidUpdate) SetDated(v time.Time) *BidUpdate {
	_u.mutation.SetDated(v)
	return _u
}

// SetNillableDated sets the "dated" field if the given value is not nil.
func (_u *BidUpdate) SetNillableDated(v *time.Time) *BidUpdate {
	if v != nil {
		_u.SetDated(*v)
	}
	return _u
}

// ClearDated clears the value of the "dated" field.
func (_u *BidUpdate) ClearDated() *BidUpdate {
	_u.mutation.ClearDated()
	return _u
}

// SetBeneficiary sets the "beneficiary" field.
func (_u *BidUpdate) SetBeneficiary(v string) *BidUpdate {
	_u.mutation.SetBeneficiary(v)
	return _u
}

// SetNillableBeneficiary sets the "beneficiary" field if the given value is not nil.
func (_u *BidUpdate) SetNillableBeneficiary(v *string) *BidUpdate {
	if v != nil {
		_u.SetBeneficiary(*v)
	}
	return _u
}

// ClearBeneficiary clears the value of the "beneficiary" field.
func (_u *BidUpdate) ClearBeneficiary() *BidUpdate {
	_u.mutation.ClearBeneficiary()
	return _u
}

// SetMinistry sets the "ministry" field.
func (_u *BidUpdate) SetMinistry(v string) *BidUpdate {
	_u.mutation.SetMinistry(v)
	return _u
}

// SetNillableMinistry sets the "ministry" field if the given value is not nil.
func (_u *BidUpdate) SetNillableMinistry(v *string) *BidUpdate {
	if v != nil {
		_u.SetMinistry(*v)
	}
	return _u
}

// ClearMinistry clears the value of the "ministry" field.
func (_u *BidUpdate) ClearMinistry() *BidUpdate {
	_u.mutation.ClearMinistry()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *BidUpdate) SetDepartment(v string) *BidUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *BidUpdate) SetNillableDepartment(v *string) *BidUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *BidUpdate) ClearDepartment() *BidUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetOrganisation sets the "organisation" field.
func (_u *BidUpdate) SetOrganisation(v string) *BidUpdate {
	_u.mutation.SetOrganisation(v)
	return _u
}

// SetNillableOrganisation sets the "organisation" field if the given value is not nil.
func (_u *BidUpdate) SetNillableOrganisation(v *string) *BidUpdate {
	if v != nil {
		_u.SetOrganisation(*v)
	}
	return _u
}

// ClearOrganisation clears the value of the "organisation" field.
func (_u *BidUpdate) ClearOrganisation() *BidUpdate {
	_u.mutation.ClearOrganisation()
	return _u
}

// SetOfficeName sets the "office_name" field.
func (_u *BidUpdate) SetOfficeName(v string) *BidUpdate {
	_u.mutation.SetOfficeName(v)
	return _u
}

// SetNillableOfficeName sets the "office_name" field if the given value is not nil.
func (_u *BidUpdate) SetNillableOfficeName(v *string) *BidUpdate {
	if v != nil {
		_u.SetOfficeName(*v)
	}
	return _u
}

// ClearOfficeName clears the value of the "office_name" field.
func (_u *BidUpdate) ClearOfficeName() *BidUpdate {
	_u.mutation.ClearOfficeName()
	return _u
}

// SetItemCategory sets the "item_category" field.
func (_u *BidUpdate) SetItemCategory(v string) *BidUpdate {
	_u.mutation.SetItemCategory(v)
	return _u
}

// SetNillableItemCategory sets the "item_category" field if the given value is not nil.
func (_u *BidUpdate) SetNillableItemCategory(v *string) *BidUpdate {
	if v != nil {
		_u.SetItemCategory(*v)
	}
	return _u
}

// ClearItemCategory clears the value of the "item_category" field.
func (_u *BidUpdate) ClearItemCategory() *BidUpdate {
	_u.mutation.ClearItemCategory()
	return _u
}

// SetContractPeriod sets the "contract_period" field.
func (_u *BidUpdate) SetContractPeriod(v string) *BidUpdate {
	_u.mutation.SetContractPeriod(v)
	return _u
}

// SetNillableContractPeriod sets the "contract_period" field if the given value is not nil.
func (_u *BidUpdate) SetNillableContractPeriod(v *string) *BidUpdate {
	if v != nil {
		_u.SetContractPeriod(*v)
	}
	return _u
}

// ClearContractPeriod clears the value of the "contract_period" field.
func (_u *BidUpdate) ClearContractPeriod() *BidUpdate {
	_u.mutation.ClearContractPeriod()
	return _u
}

// SetBidEndDatetime sets the "bid_end_datetime" field.
func (_u *BidUpdate) SetBidEndDatetime(v time.Time) *BidUpdate {
	_u.mutation.SetBidEndDatetime(v)
	return _u
}

// SetNillableBidEndDatetime sets the "bid_end_datetime" field if the given value is not nil.
func (_u *BidUpdate) SetNillableBidEndDatetime(v *time.Time) *BidUpdate {
	if v != nil {
		_u.SetBidEndDatetime(*v)
	}
	return _u
}

// ClearBidEndDatetime clears the value of the "bid_end_datetime" field.
func (_u *BidUpdate) ClearBidEndDatetime() *BidUpdate {
	_u.mutation.ClearBidEndDatetime()
	return _u
}

// SetBidOpenDatetime sets the "bid_open_datetime" field.
func (_u *BidUpdate) SetBidOpenDatetime(v time.Time) *BidUpdate {
	_u.mutation.SetBidOpenDatetime(v)
	return _u
}

// SetNillableBidOpenDatetime sets the "bid_open_datetime" field if the given value is not nil.
func (_u *BidUpdate) SetNillableBidOpenDatetime(v *time.Time) *BidUpdate {
	if v != nil {
		_u.SetBidOpenDatetime(*v)
	}
	return _u
}

// ClearBidOpenDatetime clears the value of the "bid_open_datetime" field.
func (_u *BidUpdate) ClearBidOpenDatetime() *BidUpdate {
	_u.mutation.ClearBidOpenDatetime()
	return _u
}

// SetBidOfferValidityDays sets the "bid_offer_validity_days" field.
func (_u *BidUpdate) SetBidOfferValidityDays(v int) *BidUpdate {
	_u.mutation.ResetBidOfferValidityDays()
	_u.mutation.SetBidOfferValidityDays(v)
	return _u
}

// SetNillableBidOfferValidityDays sets the "bid_offer_validity_days" field if the given value is not nil.
func (_u *BidUpdate) SetNillableBidOfferValidityDays(v *int) *BidUpdate {
	if v != nil {
		_u.SetBidOfferValidityDays(*v)
	}
	return _u
}

// AddBidOfferValidityDays adds value to the "bid_offer_validity_days" field.
func (_u *BidUpdate) AddBidOfferValidityDays(v int) *BidUpdate {
	_u.mutation.AddBidOfferValidityDays(v)
	return _u
}

// ClearBidOfferValidityDays clears the value of the "bid_offer_validity_days" field.
func (_u *BidUpdate) ClearBidOfferValidityDays() *BidUpdate {
	_u.mutation.ClearBidOfferValidityDays()
	return _u
}

// SetDeliveryDays sets the "delivery_days" field.
func (_u *BidUpdate) SetDeliveryDays(v int) *BidUpdate {
	_u.mutation.ResetDeliveryDays()
	_u.mutation.SetDeliveryDays(v)
	return _u
}

// SetNillableDeliveryDays sets the "delivery_days" field if the given value is not nil.
func (_u *BidUpdate) SetNillableDeliveryDays(v *int) *BidUpdate {
	if v != nil {
		_u.SetDeliveryDays(*v)
	}
	return _u
}

// AddDeliveryDays adds value to the "delivery_days" field.
func (_u *BidUpdate) AddDeliveryDays(v int) *BidUpdate {
	_u.mutation.AddDeliveryDays(v)
	return _u
}

// ClearDeliveryDays clears the value of the "delivery_days" field.
func (_u *BidUpdate) ClearDeliveryDays() *BidUpdate {
	_u.mutation.ClearDeliveryDays()
	return _u
}

// SetTotalQuantity sets the "total_quantity" field.
func (_u *BidUpdate) SetTotalQuantity(v string) *BidUpdate {
	_u.mutation.SetTotalQuantity(v)
	return _u
}

// SetNillableTotalQuantity sets the "total_quantity" field if the given value is not nil.
func (_u *BidUpdate) SetNillableTotalQuantity(v *string) *BidUpdate {
	if v != nil {
		_u.SetTotalQuantity(*v)
	}
	return _u
}

// ClearTotalQuantity clears the value of the "total_quantity" field.
func (_u *BidUpdate) ClearTotalQuantity() *BidUpdate {
	_u.mutation.ClearTotalQuantity()
	return _u
}

// SetEstimatedBidValue sets the "estimated_bid_value" field.
func (_u *BidUpdate) SetEstimatedBidValue(v string) *BidUpdate {
	_u.mutation.SetEstimatedBidValue(v)
	return _u
}

// SetNillableEstimatedBidValue sets the "estimated_bid_value" field if the given value is not nil.
func (_u *BidUpdate) SetNillableEstimatedBidValue(v *string) *BidUpdate {
	if v != nil {
		_u.SetEstimatedBidValue(*v)
	}
	return _u
}

// ClearEstimatedBidValue clears the value of the "estimated_bid_value" field.
func (_u *BidUpdate) ClearEstimatedBidValue() *BidUpdate {
	_u.mutation.ClearEstimatedBidValue()
	return _u
}

// SetSimilarCategory sets the "similar_category" field.
func (_u *BidUpdate) SetSimilarCategory(v string) *BidUpdate {
	_u.mutation.SetSimilarCategory(v)
	return _u
}

// SetNillableSimilarCategory sets the "similar_category" field if the given value is not nil.
func (_u *BidUpdate) SetNillableSimilarCategory(v *string) *BidUpdate {
	if v != nil {
		_u.SetSimilarCategory(*v)
	}
	return _u
}

// ClearSimilarCategory clears the value of the "similar_category" field.
func (_u *BidUpdate) ClearSimilarCategory() *BidUpdate {
	_u.mutation.ClearSimilarCategory()
	return _u
}

// SetMseExemption sets the "mse_exemption" field.
func (_u *BidUpdate) SetMseExemption(v string) *BidUpdate {
	_u.mutation.SetMseExemption(v)
	return _u
}

// SetNillableMseExemption sets the "mse_exemption" field if the given value is not nil.
func (_u *BidUpdate) SetNillableMseExemption(v *string) *BidUpdate {
	if v != nil {
		_u.SetMseExemption(*v)
	}
	return _u
}

// ClearMseExemption clears the value of the "mse_exemption" field.
func (_u *BidUpdate) ClearMseExemption() *BidUpdate {
	_u.mutation.ClearMseExemption()
	return _u
}

// SetStartupExemption sets the "startup_exemption" field.
func (_u *BidUpdate) SetStartupExemption(v string) *BidUpdate {
	_u.mutation.SetStartupExemption(v)
	return _u
}

// SetNillableStartupExemption sets the "startup_exemption" field if the given value is not nil.
func (_u *BidUpdate) SetNillableStartupExemption(v *string) *BidUpdate {
	if v != nil {
		_u.SetStartupExemption(*v)
	}
	return _u
}

// ClearStartupExemption clears the value of the "startup_exemption" field.
func (_u *BidUpdate) ClearStartupExemption() *BidUpdate {
	_u.mutation.ClearStartupExemption()
	return _u
}

// SetMsePurchasePreference sets the "mse_purchase_preference" field.
func (_u *BidUpdate) SetMsePurchasePreference(v string) *BidUpdate {
	_u.mutation.SetMsePurchasePreference(v)
	return _u
}

// SetNillableMsePurchasePreference sets the "mse_purchase_preference" field if the given value is not nil.
func (_u *BidUpdate) SetNillableMsePurchasePreference(v *string) *BidUpdate {
	if v != nil {
		_u.SetMsePurchasePreference(*v)
	}
	return _u
}

// ClearMsePurchasePreference clears the value of the "mse_purchase_preference" field.
func (_u *BidUpdate) ClearMsePurchasePreference() *BidUpdate {
	_u.mutation.ClearMsePurchasePreference()
	return _u
}

// SetMiiPurchasePreference sets the "mii_purchase_preference" field.
func (_u *BidUpdate) SetMiiPurchasePreference(v string) *BidUpdate {
	_u.mutation.SetMiiPurchasePreference(v)
	return _u
}

// SetNillableMiiPurchasePreference sets the "mii_purchase_preference" field if the given value is not nil.
func (_u *BidUpdate) SetNillableMiiPurchasePreference(v *string) *BidUpdate {
	if v != nil {
		_u.SetMiiPurchasePreference(*v)
	}
	return _u
}

// ClearMiiPurchasePreference clears the value of the "mii_purchase_preference" field.
func (_u *BidUpdate) ClearMiiPurchasePreference() *BidUpdate {
	_u.mutation.ClearMiiPurchasePreference()
	return _u
}

// SetEvaluationMethod sets the "evaluation_method" field.
func (_u *BidUpdate) SetEvaluationMethod(v string) *BidUpdate {
	_u.mutation.SetEvaluationMethod(v)
	return _u
}

// SetNillableEvaluationMethod sets the "evaluation_method" field if the given value is not nil.
func (_u *BidUpdate) SetNillableEvaluationMethod(v *string) *BidUpdate {
	if v != nil {
		_u.SetEvaluationMethod(*v)
	}
	return _u
}

// ClearEvaluationMethod clears the value of the "evaluation_method" field.
func (_u *BidUpdate) ClearEvaluationMethod() *BidUpdate {
	_u.mutation.ClearEvaluationMethod()
	return _u
}

// SetInspectionRequired sets the "inspection_required" field.
func (_u *BidUpdate) SetInspectionRequired(v string) *BidUpdate {
	_u.mutation.SetInspectionRequired(v)
	return _u
}

// SetNillableInspectionRequired sets the "inspection_required" field if the given value is not nil.
func (_u *BidUpdate) SetNillableInspectionRequired(v *string) *BidUpdate {
	if v != nil {
		_u.SetInspectionRequired(*v)
	}
	return _u
}

// ClearInspectionRequired clears the value of the "inspection_required" field.
func (_u *BidUpdate) ClearInspectionRequired() *BidUpdate {
	_u.mutation.ClearInspectionRequired()
	return _u
}

// SetPrimaryProductCategory sets the "primary_product_category" field.
func (_u *BidUpdate) SetPrimaryProductCategory(v string) *BidUpdate {
	_u.mutation.SetPrimaryProductCategory(v)
	return _u
}

// SetNillablePrimaryProductCategory sets the "primary_product_category" field if the given value is not nil.
func (_u *BidUpdate) SetNillablePrimaryProductCategory(v *string) *BidUpdate {
	if v != nil {
		_u.SetPrimaryProductCategory(*v)
	}
	return _u
}

// ClearPrimaryProductCategory clears the value of the "primary_product_category" field.
func (_u *BidUpdate) ClearPrimaryProductCategory() *BidUpdate {
	_u.mutation.ClearPrimaryProductCategory()
	return _u
}

// SetDeliveryAddress sets the "delivery_address" field.
func (_u *BidUpdate) SetDeliveryAddress(v string) *BidUpdate {
	_u.mutation.SetDeliveryAddress(v)
	return _u
}

// SetNillableDeliveryAddress sets the "delivery_address" field if the given value is not nil.
func (_u *BidUpdate) SetNillableDeliveryAddress(v *string) *BidUpdate {
	if v != nil {
		_u.SetDeliveryAddress(*v)
	}
	return _u
}

// ClearDeliveryAddress clears the value of the "delivery_address" field.
func (_u *BidUpdate) ClearDeliveryAddress() *BidUpdate {
	_u.mutation.ClearDeliveryAddress()
	return _u
}

// SetScopeOfSupply sets the "scope_of_supply" field.
func (_u *BidUpdate) SetScopeOfSupply(v string) *BidUpdate {
	_u.mutation.SetScopeOfSupply(v)
	return _u
}

// SetNillableScopeOfSupply sets the "scope_of_supply" field if the given value is not nil.
func (_u *BidUpdate) SetNillableScopeOfSupply(v *string) *BidUpdate {
	if v != nil {
		_u.SetScopeOfSupply(*v)
	}
	return _u
}

// ClearScopeOfSupply clears the value of the "scope_of_supply" field.
func (_u *BidUpdate) ClearScopeOfSupply() *BidUpdate {
	_u.mutation.ClearScopeOfSupply()
	return _u
}

// SetOptionClause sets the "option_clause" field.
func (_u *BidUpdate) SetOptionClause(v string) *BidUpdate {
	_u.mutation.SetOptionClause(v)
	return _u
}

// SetNillableOptionClause sets the "option_clause" field if the given value is not nil.
func (_u *BidUpdate) SetNillableOptionClause(v *string) *BidUpdate {
	if v != nil {
		_u.SetOptionClause(*v)
	}
	return _u
}

// ClearOptionClause clears the value of the "option_clause" field.
func (_u *BidUpdate) ClearOptionClause() *BidUpdate {
	_u.mutation.ClearOptionClause()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *BidUpdate) SetSourceFile(v string) *BidUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *BidUpdate) SetNillableSourceFile(v *string) *BidUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *BidUpdate) ClearSourceFile() *BidUpdate {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *BidUpdate) SetRawText(v string) *BidUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *BidUpdate) SetNillableRawText(v *string) *BidUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *BidUpdate) ClearRawText() *BidUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *BidUpdate) SetEmbedding(v []float32) *BidUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *BidUpdate) AppendEmbedding(v []float32) *BidUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *BidUpdate) ClearEmbedding() *BidUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BidUpdate) SetCreatedAt(v time.Time) *BidUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BidUpdate) SetNillableCreatedAt(v *time.Time) *BidUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BidUpdate) SetUpdatedAt(v time.Time) *BidUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *BidUpdate) AddJobIDs(ids ...uuid.UUID) *BidUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *BidUpdate) AddJobs(v ...*ExtractJob) *BidUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BidMutation object of the builder.
func (_u *BidUpdate) Mutation() *BidMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *BidUpdate) ClearJobs() *BidUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *BidUpdate) RemoveJobIDs(ids ...uuid.UUID) *BidUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *BidUpdate) RemoveJobs(v ...*ExtractJob) *BidUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BidUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BidUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BidUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BidUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BidUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bid.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BidUpdate) check() error {
	if v, ok := _u.mutation.BidNumber(); ok {
		if err := bid.BidNumberValidator(v); err != nil {
			return &ValidationError{Name: "bid_number", err: fmt.Errorf(`ent: validator failed for field "Bid.bid_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Beneficiary(); ok {
		if err := bid.BeneficiaryValidator(v); err != nil {
			return &ValidationError{Name: "beneficiary", err: fmt.Errorf(`ent: validator failed for field "Bid.beneficiary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ministry(); ok {
		if err := bid.MinistryValidator(v); err != nil {
			return &ValidationError{Name: "ministry", err: fmt.Errorf(`ent: validator failed for field "Bid.ministry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := bid.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Bid.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Organisation(); ok {
		if err := bid.OrganisationValidator(v); err != nil {
			return &ValidationError{Name: "organisation", err: fmt.Errorf(`ent: validator failed for field "Bid.organisation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OfficeName(); ok {
		if err := bid.OfficeNameValidator(v); err != nil {
			return &ValidationError{Name: "office_name", err: fmt.Errorf(`ent: validator failed for field "Bid.office_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContractPeriod(); ok {
		if err := bid.ContractPeriodValidator(v); err != nil {
			return &ValidationError{Name: "contract_period", err: fmt.Errorf(`ent: validator failed for field "Bid.contract_period": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuantity(); ok {
		if err := bid.TotalQuantityValidator(v); err != nil {
			return &ValidationError{Name: "total_quantity", err: fmt.Errorf(`ent: validator failed for field "Bid.total_quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedBidValue(); ok {
		if err := bid.EstimatedBidValueValidator(v); err != nil {
			return &ValidationError{Name: "estimated_bid_value", err: fmt.Errorf(`ent: validator failed for field "Bid.estimated_bid_value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MseExemption(); ok {
		if err := bid.MseExemptionValidator(v); err != nil {
			return &ValidationError{Name: "mse_exemption", err: fmt.Errorf(`ent: validator failed for field "Bid.mse_exemption": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartupExemption(); ok {
		if err := bid.StartupExemptionValidator(v); err != nil {
			return &ValidationError{Name: "startup_exemption", err: fmt.Errorf(`ent: validator failed for field "Bid.startup_exemption": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MsePurchasePreference(); ok {
		if err := bid.MsePurchasePreferenceValidator(v); err != nil {
			return &ValidationError{Name: "mse_purchase_preference", err: fmt.Errorf(`ent: validator failed for field "Bid.mse_purchase_preference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MiiPurchasePreference(); ok {
		if err := bid.MiiPurchasePreferenceValidator(v); err != nil {
			return &ValidationError{Name: "mii_purchase_preference", err: fmt.Errorf(`ent: validator failed for field "Bid.mii_purchase_preference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EvaluationMethod(); ok {
		if err := bid.EvaluationMethodValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_method", err: fmt.Errorf(`ent: validator failed for field "Bid.evaluation_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InspectionRequired(); ok {
		if err := bid.InspectionRequiredValidator(v); err != nil {
			return &ValidationError{Name: "inspection_required", err: fmt.Errorf(`ent: validator failed for field "Bid.inspection_required": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryProductCategory(); ok {
		if err := bid.PrimaryProductCategoryValidator(v); err != nil {
			return &ValidationError{Name: "primary_product_category", err: fmt.Errorf(`ent: validator failed for field "Bid.primary_product_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := bid.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Bid.source_file": %w`, err)}
		}
	}
	return nil
}

func (_u *BidUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bid.Table, bid.Columns, sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BidNumber(); ok {
		_spec.SetField(bid.FieldBidNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dated(); ok {
		_spec.SetField(bid.FieldDated, field.TypeTime, value)
	}
	if _u.mutation.DatedCleared() {
		_spec.ClearField(bid.FieldDated, field.TypeTime)
	}
	if value, ok := _u.mutation.Beneficiary(); ok {
		_spec.SetField(bid.FieldBeneficiary, field.TypeString, value)
	}
	if _u.mutation.BeneficiaryCleared() {
		_spec.ClearField(bid.FieldBeneficiary, field.TypeString)
	}
	if value, ok := _u.mutation.Ministry(); ok {
		_spec.SetField(bid.FieldMinistry, field.TypeString, value)
	}
	if _u.mutation.MinistryCleared() {
		_spec.ClearField(bid.FieldMinistry, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(bid.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(bid.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Organisation(); ok {
		_spec.SetField(bid.FieldOrganisation, field.TypeString, value)
	}
	if _u.mutation.OrganisationCleared() {
		_spec.ClearField(bid.FieldOrganisation, field.TypeString)
	}
	if value, ok := _u.mutation.OfficeName(); ok {
		_spec.SetField(bid.FieldOfficeName, field.TypeString, value)
	}
	if _u.mutation.OfficeNameCleared() {
		_spec.ClearField(bid.FieldOfficeName, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCategory(); ok {
		_spec.SetField(bid.FieldItemCategory, field.TypeString, value)
	}
	if _u.mutation.ItemCategoryCleared() {
		_spec.ClearField(bid.FieldItemCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ContractPeriod(); ok {
		_spec.SetField(bid.FieldContractPeriod, field.TypeString, value)
	}
	if _u.mutation.ContractPeriodCleared() {
		_spec.ClearField(bid.FieldContractPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.BidEndDatetime(); ok {
		_spec.SetField(bid.FieldBidEndDatetime, field.TypeTime, value)
	}
	if _u.mutation.BidEndDatetimeCleared() {
		_spec.ClearField(bid.FieldBidEndDatetime, field.TypeTime)
	}
	if value, ok := _u.mutation.BidOpenDatetime(); ok {
		_spec.SetField(bid.FieldBidOpenDatetime, field.TypeTime, value)
	}
	if _u.mutation.BidOpenDatetimeCleared() {
		_spec.ClearField(bid.FieldBidOpenDatetime, field.TypeTime)
	}
	if value, ok := _u.mutation.BidOfferValidityDays(); ok {
		_spec.SetField(bid.FieldBidOfferValidityDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBidOfferValidityDays(); ok {
		_spec.AddField(bid.FieldBidOfferValidityDays, field.TypeInt, value)
	}
	if _u.mutation.BidOfferValidityDaysCleared() {
		_spec.ClearField(bid.FieldBidOfferValidityDays, field.TypeInt)
	}
	if value, ok := _u.mutation.DeliveryDays(); ok {
		_spec.SetField(bid.FieldDeliveryDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryDays(); ok {
		_spec.AddField(bid.FieldDeliveryDays, field.TypeInt, value)
	}
	if _u.mutation.DeliveryDaysCleared() {
		_spec.ClearField(bid.FieldDeliveryDays, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalQuantity(); ok {
		_spec.SetField(bid.FieldTotalQuantity, field.TypeString, value)
	}
	if _u.mutation.TotalQuantityCleared() {
		_spec.ClearField(bid.FieldTotalQuantity, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedBidValue(); ok {
		_spec.SetField(bid.FieldEstimatedBidValue, field.TypeString, value)
	}
	if _u.mutation.EstimatedBidValueCleared() {
		_spec.ClearField(bid.FieldEstimatedBidValue, field.TypeString)
	}
	if value, ok := _u.mutation.SimilarCategory(); ok {
		_spec.SetField(bid.FieldSimilarCategory, field.TypeString, value)
	}
	if _u.mutation.SimilarCategoryCleared() {
		_spec.ClearField(bid.FieldSimilarCategory, field.TypeString)
	}
	if value, ok := _u.mutation.MseExemption(); ok {
		_spec.SetField(bid.FieldMseExemption, field.TypeString, value)
	}
	if _u.mutation.MseExemptionCleared() {
		_spec.ClearField(bid.FieldMseExemption, field.TypeString)
	}
	if value, ok := _u.mutation.StartupExemption(); ok {
		_spec.SetField(bid.FieldStartupExemption, field.TypeString, value)
	}
	if _u.mutation.StartupExemptionCleared() {
		_spec.ClearField(bid.FieldStartupExemption, field.TypeString)
	}
	if value, ok := _u.mutation.MsePurchasePreference(); ok {
		_spec.SetField(bid.FieldMsePurchasePreference, field.TypeString, value)
	}
	if _u.mutation.MsePurchasePreferenceCleared() {
		_spec.ClearField(bid.FieldMsePurchasePreference, field.TypeString)
	}
	if value, ok := _u.mutation.MiiPurchasePreference(); ok {
		_spec.SetField(bid.FieldMiiPurchasePreference, field.TypeString, value)
	}
	if _u.mutation.MiiPurchasePreferenceCleared() {
		_spec.ClearField(bid.FieldMiiPurchasePreference, field.TypeString)
	}
	if value, ok := _u.mutation.EvaluationMethod(); ok {
		_spec.SetField(bid.FieldEvaluationMethod, field.TypeString, value)
	}
	if _u.mutation.EvaluationMethodCleared() {
		_spec.ClearField(bid.FieldEvaluationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.InspectionRequired(); ok {
		_spec.SetField(bid.FieldInspectionRequired, field.TypeString, value)
	}
	if _u.mutation.InspectionRequiredCleared() {
		_spec.ClearField(bid.FieldInspectionRequired, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryProductCategory(); ok {
		_spec.SetField(bid.FieldPrimaryProductCategory, field.TypeString, value)
	}
	if _u.mutation.PrimaryProductCategoryCleared() {
		_spec.ClearField(bid.FieldPrimaryProductCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryAddress(); ok {
		_spec.SetField(bid.FieldDeliveryAddress, field.TypeString, value)
	}
	if _u.mutation.DeliveryAddressCleared() {
		_spec.ClearField(bid.FieldDeliveryAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ScopeOfSupply(); ok {
		_spec.SetField(bid.FieldScopeOfSupply, field.TypeString, value)
	}
	if _u.mutation.ScopeOfSupplyCleared() {
		_spec.ClearField(bid.FieldScopeOfSupply, field.TypeString)
	}
	if value, ok := _u.mutation.OptionClause(); ok {
		_spec.SetField(bid.FieldOptionClause, field.TypeString, value)
	}
	if _u.mutation.OptionClauseCleared() {
		_spec.ClearField(bid.FieldOptionClause, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(bid.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(bid.FieldSourceFile, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(bid.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(bid.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(bid.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bid.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(bid.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bid.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bid.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bid.JobsTable,
			Columns: []string{bid.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bid.JobsTable,
			Columns: []string{bid.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bid.JobsTable,
			Columns: []string{bid.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bid.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BidUpdateOne is the builder for updating a single Bid entity.
type BidUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BidMutation
}

// SetBidNumber sets the "bid_number" field.
func (_u *BidUpdateOne) SetBidNumber(v string) *BidUpdateOne {
	_u.mutation.SetBidNumber(v)
	return _u
}

// SetNillableBidNumber sets the "bid_number" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableBidNumber(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetBidNumber(*v)
	}
	return _u
}

// SetDated sets the "dated" field.
func (_u *BidUpdateOne) SetDated(v time.Time) *BidUpdateOne {
	_u.mutation.SetDated(v)
	return _u
}

// SetNillableDated sets the "dated" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableDated(v *time.Time) *BidUpdateOne {
	if v != nil {
		_u.SetDated(*v)
	}
	return _u
}

// ClearDated clears the value of the "dated" field.
func (_u *BidUpdateOne) ClearDated() *BidUpdateOne {
	_u.mutation.ClearDated()
	return _u
}

// SetBeneficiary sets the "beneficiary" field.
func (_u *BidUpdateOne) SetBeneficiary(v string) *BidUpdateOne {
	_u.mutation.SetBeneficiary(v)
	return _u
}

// SetNillableBeneficiary sets the "beneficiary" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableBeneficiary(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetBeneficiary(*v)
	}
	return _u
}

// ClearBeneficiary clears the value of the "beneficiary" field.
func (_u *BidUpdateOne) ClearBeneficiary() *BidUpdateOne {
	_u.mutation.ClearBeneficiary()
	return _u
}

// SetMinistry sets the "ministry" field.
func (_u *BidUpdateOne) SetMinistry(v string) *BidUpdateOne {
	_u.mutation.SetMinistry(v)
	return _u
}

// SetNillableMinistry sets the "ministry" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableMinistry(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetMinistry(*v)
	}
	return _u
}

// ClearMinistry clears the value of the "ministry" field.
func (_u *BidUpdateOne) ClearMinistry() *BidUpdateOne {
	_u.mutation.ClearMinistry()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *BidUpdateOne) SetDepartment(v string) *BidUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableDepartment(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *BidUpdateOne) ClearDepartment() *BidUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetOrganisation sets the "organisation" field.
func (_u *BidUpdateOne) SetOrganisation(v string) *BidUpdateOne {
	_u.mutation.SetOrganisation(v)
	return _u
}

// SetNillableOrganisation sets the "organisation" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableOrganisation(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetOrganisation(*v)
	}
	return _u
}

// ClearOrganisation clears the value of the "organisation" field.
func (_u *BidUpdateOne) ClearOrganisation() *BidUpdateOne {
	_u.mutation.ClearOrganisation()
	return _u
}

// SetOfficeName sets the "office_name" field.
func (_u *BidUpdateOne) SetOfficeName(v string) *BidUpdateOne {
	_u.mutation.SetOfficeName(v)
	return _u
}

// SetNillableOfficeName sets the "office_name" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableOfficeName(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetOfficeName(*v)
	}
	return _u
}

// ClearOfficeName clears the value of the "office_name" field.
func (_u *BidUpdateOne) ClearOfficeName() *BidUpdateOne {
	_u.mutation.ClearOfficeName()
	return _u
}

// SetItemCategory sets the "item_category" field.
func (_u *BidUpdateOne) SetItemCategory(v string) *BidUpdateOne {
	_u.mutation.SetItemCategory(v)
	return _u
}

// SetNillableItemCategory sets the "item_category" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableItemCategory(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetItemCategory(*v)
	}
	return _u
}

// ClearItemCategory clears the value of the "item_category" field.
func (_u *BidUpdateOne) ClearItemCategory() *BidUpdateOne {
	_u.mutation.ClearItemCategory()
	return _u
}

// SetContractPeriod sets the "contract_period" field.
func (_u *BidUpdateOne) SetContractPeriod(v string) *BidUpdateOne {
	_u.mutation.SetContractPeriod(v)
	return _u
}

// SetNillableContractPeriod sets the "contract_period" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableContractPeriod(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetContractPeriod(*v)
	}
	return _u
}

// ClearContractPeriod clears the value of the "contract_period" field.
func (_u *BidUpdateOne) ClearContractPeriod() *BidUpdateOne {
	_u.mutation.ClearContractPeriod()
	return _u
}

// SetBidEndDatetime sets the "bid_end_datetime" field.
func (_u *BidUpdateOne) SetBidEndDatetime(v time.Time) *BidUpdateOne {
	_u.mutation.SetBidEndDatetime(v)
	return _u
}

// SetNillableBidEndDatetime sets the "bid_end_datetime" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableBidEndDatetime(v *time.Time) *BidUpdateOne {
	if v != nil {
		_u.SetBidEndDatetime(*v)
	}
	return _u
}

// ClearBidEndDatetime clears the value of the "bid_end_datetime" field.
func (_u *BidUpdateOne) ClearBidEndDatetime() *BidUpdateOne {
	_u.mutation.ClearBidEndDatetime()
	return _u
}

// SetBidOpenDatetime sets the "bid_open_datetime" field.
func (_u *BidUpdateOne) SetBidOpenDatetime(v time.Time) *BidUpdateOne {
	_u.mutation.SetBidOpenDatetime(v)
	return _u
}

// SetNillableBidOpenDatetime sets the "bid_open_datetime" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableBidOpenDatetime(v *time.Time) *BidUpdateOne {
	if v != nil {
		_u.SetBidOpenDatetime(*v)
	}
	return _u
}

// ClearBidOpenDatetime clears the value of the "bid_open_datetime" field.
func (_u *BidUpdateOne) ClearBidOpenDatetime() *BidUpdateOne {
	_u.mutation.ClearBidOpenDatetime()
	return _u
}

// SetBidOfferValidityDays sets the "bid_offer_validity_days" field.
func (_u *BidUpdateOne) SetBidOfferValidityDays(v int) *BidUpdateOne {
	_u.mutation.ResetBidOfferValidityDays()
	_u.mutation.SetBidOfferValidityDays(v)
	return _u
}

// SetNillableBidOfferValidityDays sets the "bid_offer_validity_days" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableBidOfferValidityDays(v *int) *BidUpdateOne {
	if v != nil {
		_u.SetBidOfferValidityDays(*v)
	}
	return _u
}

// AddBidOfferValidityDays adds value to the "bid_offer_validity_days" field.
func (_u *BidUpdateOne) AddBidOfferValidityDays(v int) *BidUpdateOne {
	_u.mutation.AddBidOfferValidityDays(v)
	return _u
}

// ClearBidOfferValidityDays clears the value of the "bid_offer_validity_days" field.
func (_u *BidUpdateOne) ClearBidOfferValidityDays() *BidUpdateOne {
	_u.mutation.ClearBidOfferValidityDays()
	return _u
}

// SetDeliveryDays sets the "delivery_days" field.
func (_u *BidUpdateOne) SetDeliveryDays(v int) *BidUpdateOne {
	_u.mutation.ResetDeliveryDays()
	_u.mutation.SetDeliveryDays(v)
	return _u
}

// SetNillableDeliveryDays sets the "delivery_days" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableDeliveryDays(v *int) *BidUpdateOne {
	if v != nil {
		_u.SetDeliveryDays(*v)
	}
	return _u
}

// AddDeliveryDays adds value to the "delivery_days" field.
func (_u *BidUpdateOne) AddDeliveryDays(v int) *BidUpdateOne {
	_u.mutation.AddDeliveryDays(v)
	return _u
}

// ClearDeliveryDays clears the value of the "delivery_days" field.
func (_u *BidUpdateOne) ClearDeliveryDays() *BidUpdateOne {
	_u.mutation.ClearDeliveryDays()
	return _u
}

// SetTotalQuantity sets the "total_quantity" field.
func (_u *BidUpdateOne) SetTotalQuantity(v string) *BidUpdateOne {
	_u.mutation.SetTotalQuantity(v)
	return _u
}

// SetNillableTotalQuantity sets the "total_quantity" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableTotalQuantity(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetTotalQuantity(*v)
	}
	return _u
}

// ClearTotalQuantity clears the value of the "total_quantity" field.
func (_u *BidUpdateOne) ClearTotalQuantity() *BidUpdateOne {
	_u.mutation.ClearTotalQuantity()
	return _u
}

// SetEstimatedBidValue sets the "estimated_bid_value" field.
func (_u *BidUpdateOne) SetEstimatedBidValue(v string) *BidUpdateOne {
	_u.mutation.SetEstimatedBidValue(v)
	return _u
}

// SetNillableEstimatedBidValue sets the "estimated_bid_value" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableEstimatedBidValue(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetEstimatedBidValue(*v)
	}
	return _u
}

// ClearEstimatedBidValue clears the value of the "estimated_bid_value" field.
func (_u *BidUpdateOne) ClearEstimatedBidValue() *BidUpdateOne {
	_u.mutation.ClearEstimatedBidValue()
	return _u
}

// SetSimilarCategory sets the "similar_category" field.
func (_u *BidUpdateOne) SetSimilarCategory(v string) *BidUpdateOne {
	_u.mutation.SetSimilarCategory(v)
	return _u
}

// SetNillableSimilarCategory sets the "similar_category" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableSimilarCategory(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetSimilarCategory(*v)
	}
	return _u
}

// ClearSimilarCategory clears the value of the "similar_category" field.
func (_u *BidUpdateOne) ClearSimilarCategory() *BidUpdateOne {
	_u.mutation.ClearSimilarCategory()
	return _u
}

// SetMseExemption sets the "mse_exemption" field.
func (_u *BidUpdateOne) SetMseExemption(v string) *BidUpdateOne {
	_u.mutation.SetMseExemption(v)
	return _u
}

// SetNillableMseExemption sets the "mse_exemption" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableMseExemption(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetMseExemption(*v)
	}
	return _u
}

// ClearMseExemption clears the value of the "mse_exemption" field.
func (_u *BidUpdateOne) ClearMseExemption() *BidUpdateOne {
	_u.mutation.ClearMseExemption()
	return _u
}

// SetStartupExemption sets the "startup_exemption" field.
func (_u *BidUpdateOne) SetStartupExemption(v string) *BidUpdateOne {
	_u.mutation.SetStartupExemption(v)
	return _u
}

// SetNillableStartupExemption sets the "startup_exemption" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableStartupExemption(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetStartupExemption(*v)
	}
	return _u
}

// ClearStartupExemption clears the value of the "startup_exemption" field.
func (_u *BidUpdateOne) ClearStartupExemption() *BidUpdateOne {
	_u.mutation.ClearStartupExemption()
	return _u
}

// SetMsePurchasePreference sets the "mse_purchase_preference" field.
func (_u *BidUpdateOne) SetMsePurchasePreference(v string) *BidUpdateOne {
	_u.mutation.SetMsePurchasePreference(v)
	return _u
}

// SetNillableMsePurchasePreference sets the "mse_purchase_preference" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableMsePurchasePreference(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetMsePurchasePreference(*v)
	}
	return _u
}

// ClearMsePurchasePreference clears the value of the "mse_purchase_preference" field.
func (_u *BidUpdateOne) ClearMsePurchasePreference() *BidUpdateOne {
	_u.mutation.ClearMsePurchasePreference()
	return _u
}

// SetMiiPurchasePreference sets the "mii_purchase_preference" field.
func (_u *BidUpdateOne) SetMiiPurchasePreference(v string) *BidUpdateOne {
	_u.mutation.SetMiiPurchasePreference(v)
	return _u
}

// SetNillableMiiPurchasePreference sets the "mii_purchase_preference" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableMiiPurchasePreference(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetMiiPurchasePreference(*v)
	}
	return _u
}

// ClearMiiPurchasePreference clears the value of the "mii_purchase_preference" field.
func (_u *BidUpdateOne) ClearMiiPurchasePreference() *BidUpdateOne {
	_u.mutation.ClearMiiPurchasePreference()
	return _u
}

// SetEvaluationMethod sets the "evaluation_method" field.
func (_u *BidUpdateOne) SetEvaluationMethod(v string) *BidUpdateOne {
	_u.mutation.SetEvaluationMethod(v)
	return _u
}

// SetNillableEvaluationMethod sets the "evaluation_method" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableEvaluationMethod(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetEvaluationMethod(*v)
	}
	return _u
}

// ClearEvaluationMethod clears the value of the "evaluation_method" field.
func (_u *BidUpdateOne) ClearEvaluationMethod() *BidUpdateOne {
	_u.mutation.ClearEvaluationMethod()
	return _u
}

// SetInspectionRequired sets the "inspection_required" field.
func (_u *BidUpdateOne) SetInspectionRequired(v string) *BidUpdateOne {
	_u.mutation.SetInspectionRequired(v)
	return _u
}

// SetNillableInspectionRequired sets the "inspection_required" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableInspectionRequired(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetInspectionRequired(*v)
	}
	return _u
}

// ClearInspectionRequired clears the value of the "inspection_required" field.
func (_u *BidUpdateOne) ClearInspectionRequired() *BidUpdateOne {
	_u.mutation.ClearInspectionRequired()
	return _u
}

// SetPrimaryProductCategory sets the "primary_product_category" field.
func (_u *BidUpdateOne) SetPrimaryProductCategory(v string) *BidUpdateOne {
	_u.mutation.SetPrimaryProductCategory(v)
	return _u
}

// SetNillablePrimaryProductCategory sets the "primary_product_category" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillablePrimaryProductCategory(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetPrimaryProductCategory(*v)
	}
	return _u
}

// ClearPrimaryProductCategory clears the value of the "primary_product_category" field.
func (_u *BidUpdateOne) ClearPrimaryProductCategory() *BidUpdateOne {
	_u.mutation.ClearPrimaryProductCategory()
	return _u
}

// SetDeliveryAddress sets the "delivery_address" field.
func (_u *BidUpdateOne) SetDeliveryAddress(v string) *BidUpdateOne {
	_u.mutation.SetDeliveryAddress(v)
	return _u
}

// SetNillableDeliveryAddress sets the "delivery_address" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableDeliveryAddress(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetDeliveryAddress(*v)
	}
	return _u
}

// ClearDeliveryAddress clears the value of the "delivery_address" field.
func (_u *BidUpdateOne) ClearDeliveryAddress() *BidUpdateOne {
	_u.mutation.ClearDeliveryAddress()
	return _u
}

// SetScopeOfSupply sets the "scope_of_supply" field.
func (_u *BidUpdateOne) SetScopeOfSupply(v string) *BidUpdateOne {
	_u.mutation.SetScopeOfSupply(v)
	return _u
}

// SetNillableScopeOfSupply sets the "scope_of_supply" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableScopeOfSupply(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetScopeOfSupply(*v)
	}
	return _u
}

// ClearScopeOfSupply clears the value of the "scope_of_supply" field.
func (_u *BidUpdateOne) ClearScopeOfSupply() *BidUpdateOne {
	_u.mutation.ClearScopeOfSupply()
	return _u
}

// SetOptionClause sets the "option_clause" field.
func (_u *BidUpdateOne) SetOptionClause(v string) *BidUpdateOne {
	_u.mutation.SetOptionClause(v)
	return _u
}

// SetNillableOptionClause sets the "option_clause" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableOptionClause(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetOptionClause(*v)
	}
	return _u
}

// ClearOptionClause clears the value of the "option_clause" field.
func (_u *BidUpdateOne) ClearOptionClause() *BidUpdateOne {
	_u.mutation.ClearOptionClause()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *BidUpdateOne) SetSourceFile(v string) *BidUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableSourceFile(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// ClearSourceFile clears the value of the "source_file" field.
func (_u *BidUpdateOne) ClearSourceFile() *BidUpdateOne {
	_u.mutation.ClearSourceFile()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *BidUpdateOne) SetRawText(v string) *BidUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableRawText(v *string) *BidUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *BidUpdateOne) ClearRawText() *BidUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *BidUpdateOne) SetEmbedding(v []float32) *BidUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *BidUpdateOne) AppendEmbedding(v []float32) *BidUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *BidUpdateOne) ClearEmbedding() *BidUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BidUpdateOne) SetCreatedAt(v time.Time) *BidUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BidUpdateOne) SetNillableCreatedAt(v *time.Time) *BidUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BidUpdateOne) SetUpdatedAt(v time.Time) *BidUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *BidUpdateOne) AddJobIDs(ids ...uuid.UUID) *BidUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *BidUpdateOne) AddJobs(v ...*ExtractJob) *BidUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BidMutation object of the builder.
func (_u *BidUpdateOne) Mutation() *BidMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *BidUpdateOne) ClearJobs() *BidUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *BidUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BidUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *BidUpdateOne) RemoveJobs(v ...*ExtractJob) *BidUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BidUpdate builder.
func (_u *BidUpdateOne) Where(ps ...predicate.Bid) *BidUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BidUpdateOne) Select(field string, fields ...string) *BidUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bid entity.
func (_u *BidUpdateOne) Save(ctx context.Context) (*Bid, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BidUpdateOne) SaveX(ctx context.Context) *Bid {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BidUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BidUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BidUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bid.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BidUpdateOne) check() error {
	if v, ok := _u.mutation.BidNumber(); ok {
		if err := bid.BidNumberValidator(v); err != nil {
			return &ValidationError{Name: "bid_number", err: fmt.Errorf(`ent: validator failed for field "Bid.bid_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Beneficiary(); ok {
		if err := bid.BeneficiaryValidator(v); err != nil {
			return &ValidationError{Name: "beneficiary", err: fmt.Errorf(`ent: validator failed for field "Bid.beneficiary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ministry(); ok {
		if err := bid.MinistryValidator(v); err != nil {
			return &ValidationError{Name: "ministry", err: fmt.Errorf(`ent: validator failed for field "Bid.ministry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := bid.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Bid.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Organisation(); ok {
		if err := bid.OrganisationValidator(v); err != nil {
			return &ValidationError{Name: "organisation", err: fmt.Errorf(`ent: validator failed for field "Bid.organisation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OfficeName(); ok {
		if err := bid.OfficeNameValidator(v); err != nil {
			return &ValidationError{Name: "office_name", err: fmt.Errorf(`ent: validator failed for field "Bid.office_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContractPeriod(); ok {
		if err := bid.ContractPeriodValidator(v); err != nil {
			return &ValidationError{Name: "contract_period", err: fmt.Errorf(`ent: validator failed for field "Bid.contract_period": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuantity(); ok {
		if err := bid.TotalQuantityValidator(v); err != nil {
			return &ValidationError{Name: "total_quantity", err: fmt.Errorf(`ent: validator failed for field "Bid.total_quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EstimatedBidValue(); ok {
		if err := bid.EstimatedBidValueValidator(v); err != nil {
			return &ValidationError{Name: "estimated_bid_value", err: fmt.Errorf(`ent: validator failed for field "Bid.estimated_bid_value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MseExemption(); ok {
		if err := bid.MseExemptionValidator(v); err != nil {
			return &ValidationError{Name: "mse_exemption", err: fmt.Errorf(`ent: validator failed for field "Bid.mse_exemption": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartupExemption(); ok {
		if err := bid.StartupExemptionValidator(v); err != nil {
			return &ValidationError{Name: "startup_exemption", err: fmt.Errorf(`ent: validator failed for field "Bid.startup_exemption": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MsePurchasePreference(); ok {
		if err := bid.MsePurchasePreferenceValidator(v); err != nil {
			return &ValidationError{Name: "mse_purchase_preference", err: fmt.Errorf(`ent: validator failed for field "Bid.mse_purchase_preference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MiiPurchasePreference(); ok {
		if err := bid.MiiPurchasePreferenceValidator(v); err != nil {
			return &ValidationError{Name: "mii_purchase_preference", err: fmt.Errorf(`ent: validator failed for field "Bid.mii_purchase_preference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EvaluationMethod(); ok {
		if err := bid.EvaluationMethodValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_method", err: fmt.Errorf(`ent: validator failed for field "Bid.evaluation_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InspectionRequired(); ok {
		if err := bid.InspectionRequiredValidator(v); err != nil {
			return &ValidationError{Name: "inspection_required", err: fmt.Errorf(`ent: validator failed for field "Bid.inspection_required": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryProductCategory(); ok {
		if err := bid.PrimaryProductCategoryValidator(v); err != nil {
			return &ValidationError{Name: "primary_product_category", err: fmt.Errorf(`ent: validator failed for field "Bid.primary_product_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := bid.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Bid.source_file": %w`, err)}
		}
	}
	return nil
}

func (_u *BidUpdateOne) sqlSave(ctx context.Context) (_node *Bid, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bid.Table, bid.Columns, sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bid.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bid.FieldID)
		for _, f := range fields {
			if !bid.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bid.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BidNumber(); ok {
		_spec.SetField(bid.FieldBidNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dated(); ok {
		_spec.SetField(bid.FieldDated, field.TypeTime, value)
	}
	if _u.mutation.DatedCleared() {
		_spec.ClearField(bid.FieldDated, field.TypeTime)
	}
	if value, ok := _u.mutation.Beneficiary(); ok {
		_spec.SetField(bid.FieldBeneficiary, field.TypeString, value)
	}
	if _u.mutation.BeneficiaryCleared() {
		_spec.ClearField(bid.FieldBeneficiary, field.TypeString)
	}
	if value, ok := _u.mutation.Ministry(); ok {
		_spec.SetField(bid.FieldMinistry, field.TypeString, value)
	}
	if _u.mutation.MinistryCleared() {
		_spec.ClearField(bid.FieldMinistry, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(bid.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(bid.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Organisation(); ok {
		_spec.SetField(bid.FieldOrganisation, field.TypeString, value)
	}
	if _u.mutation.OrganisationCleared() {
		_spec.ClearField(bid.FieldOrganisation, field.TypeString)
	}
	if value, ok := _u.mutation.OfficeName(); ok {
		_spec.SetField(bid.FieldOfficeName, field.TypeString, value)
	}
	if _u.mutation.OfficeNameCleared() {
		_spec.ClearField(bid.FieldOfficeName, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCategory(); ok {
		_spec.SetField(bid.FieldItemCategory, field.TypeString, value)
	}
	if _u.mutation.ItemCategoryCleared() {
		_spec.ClearField(bid.FieldItemCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ContractPeriod(); ok {
		_spec.SetField(bid.FieldContractPeriod, field.TypeString, value)
	}
	if _u.mutation.ContractPeriodCleared() {
		_spec.ClearField(bid.FieldContractPeriod, field.TypeString)
	}
	if value, ok := _u.mutation.BidEndDatetime(); ok {
		_spec.SetField(bid.FieldBidEndDatetime, field.TypeTime, value)
	}
	if _u.mutation.BidEndDatetimeCleared() {
		_spec.ClearField(bid.FieldBidEndDatetime, field.TypeTime)
	}
	if value, ok := _u.mutation.BidOpenDatetime(); ok {
		_spec.SetField(bid.FieldBidOpenDatetime, field.TypeTime, value)
	}
	if _u.mutation.BidOpenDatetimeCleared() {
		_spec.ClearField(bid.FieldBidOpenDatetime, field.TypeTime)
	}
	if value, ok := _u.mutation.BidOfferValidityDays(); ok {
		_spec.SetField(bid.FieldBidOfferValidityDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBidOfferValidityDays(); ok {
		_spec.AddField(bid.FieldBidOfferValidityDays, field.TypeInt, value)
	}
	if _u.mutation.BidOfferValidityDaysCleared() {
		_spec.ClearField(bid.FieldBidOfferValidityDays, field.TypeInt)
	}
	if value, ok := _u.mutation.DeliveryDays(); ok {
		_spec.SetField(bid.FieldDeliveryDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeliveryDays(); ok {
		_spec.AddField(bid.FieldDeliveryDays, field.TypeInt, value)
	}
	if _u.mutation.DeliveryDaysCleared() {
		_spec.ClearField(bid.FieldDeliveryDays, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalQuantity(); ok {
		_spec.SetField(bid.FieldTotalQuantity, field.TypeString, value)
	}
	if _u.mutation.TotalQuantityCleared() {
		_spec.ClearField(bid.FieldTotalQuantity, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedBidValue(); ok {
		_spec.SetField(bid.FieldEstimatedBidValue, field.TypeString, value)
	}
	if _u.mutation.EstimatedBidValueCleared() {
		_spec.ClearField(bid.FieldEstimatedBidValue, field.TypeString)
	}
	if value, ok := _u.mutation.SimilarCategory(); ok {
		_spec.SetField(bid.FieldSimilarCategory, field.TypeString, value)
	}
	if _u.mutation.SimilarCategoryCleared() {
		_spec.ClearField(bid.FieldSimilarCategory, field.TypeString)
	}
	if value, ok := _u.mutation.MseExemption(); ok {
		_spec.SetField(bid.FieldMseExemption, field.TypeString, value)
	}
	if _u.mutation.MseExemptionCleared() {
		_spec.ClearField(bid.FieldMseExemption, field.TypeString)
	}
	if value, ok := _u.mutation.StartupExemption(); ok {
		_spec.SetField(bid.FieldStartupExemption, field.TypeString, value)
	}
	if _u.mutation.StartupExemptionCleared() {
		_spec.ClearField(bid.FieldStartupExemption, field.TypeString)
	}
	if value, ok := _u.mutation.MsePurchasePreference(); ok {
		_spec.SetField(bid.FieldMsePurchasePreference, field.TypeString, value)
	}
	if _u.mutation.MsePurchasePreferenceCleared() {
		_spec.ClearField(bid.FieldMsePurchasePreference, field.TypeString)
	}
	if value, ok := _u.mutation.MiiPurchasePreference(); ok {
		_spec.SetField(bid.FieldMiiPurchasePreference, field.TypeString, value)
	}
	if _u.mutation.MiiPurchasePreferenceCleared() {
		_spec.ClearField(bid.FieldMiiPurchasePreference, field.TypeString)
	}
	if value, ok := _u.mutation.EvaluationMethod(); ok {
		_spec.SetField(bid.FieldEvaluationMethod, field.TypeString, value)
	}
	if _u.mutation.EvaluationMethodCleared() {
		_spec.ClearField(bid.FieldEvaluationMethod, field.TypeString)
	}
	if value, ok := _u.mutation.InspectionRequired(); ok {
		_spec.SetField(bid.FieldInspectionRequired, field.TypeString, value)
	}
	if _u.mutation.InspectionRequiredCleared() {
		_spec.ClearField(bid.FieldInspectionRequired, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryProductCategory(); ok {
		_spec.SetField(bid.FieldPrimaryProductCategory, field.TypeString, value)
	}
	if _u.mutation.PrimaryProductCategoryCleared() {
		_spec.ClearField(bid.FieldPrimaryProductCategory, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryAddress(); ok {
		_spec.SetField(bid.FieldDeliveryAddress, field.TypeString, value)
	}
	if _u.mutation.DeliveryAddressCleared() {
		_spec.ClearField(bid.FieldDeliveryAddress, field.TypeString)
	}
	if value, ok := _u.mutation.ScopeOfSupply(); ok {
		_spec.SetField(bid.FieldScopeOfSupply, field.TypeString, value)
	}
	if _u.mutation.ScopeOfSupplyCleared() {
		_spec.ClearField(bid.FieldScopeOfSupply, field.TypeString)
	}
	if value, ok := _u.mutation.OptionClause(); ok {
		_spec.SetField(bid.FieldOptionClause, field.TypeString, value)
	}
	if _u.mutation.OptionClauseCleared() {
		_spec.ClearField(bid.FieldOptionClause, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(bid.FieldSourceFile, field.TypeString, value)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(bid.FieldSourceFile, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(bid.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(bid.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(bid.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, bid.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(bid.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(bid.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bid.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bid.JobsTable,
			Columns: []string{bid.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bid.JobsTable,
			Columns: []string{bid.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bid.JobsTable,
			Columns: []string{bid.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bid{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bid.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
