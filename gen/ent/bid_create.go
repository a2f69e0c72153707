// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/bid"
	"github.com/gemdocs/procurement-tracker/gen/ent/extractjob"
	"github.com/google/uuid"
)

// BidCreate is the builder for creating a Bid entity.
type BidCreate struct {
	config
	mutation *BidMutation
	hooks    []Hook
}

// SetBidNumber sets the "bid_number" field.
func (_c *BidCreate) SetBidNumber(v string) *BidCreate {
	_c.mutation.SetBidNumber(v)
	return _c
}

// SetDated sets the "dated" field.
func (_c *BidCreate) SetDated(v time.Time) *BidCreate {
	_c.mutation.SetDated(v)
	return _c
}

// SetNillableDated sets the "dated" field if the given value is not nil.
func (_c *BidCreate) SetNillableDated(v *time.Time) *BidCreate {
	if v != nil {
		_c.SetDated(*v)
	}
	return _c
}

// SetBeneficiary sets the "beneficiary" field.
func (_c *BidCreate) SetBeneficiary(v string) *BidCreate {
	_c.mutation.SetBeneficiary(v)
	return _c
}

// SetNillableBeneficiary sets the "beneficiary" field if the given value is not nil.
func (_c *BidCreate) SetNillableBeneficiary(v *string) *BidCreate {
	if v != nil {
		_c.SetBeneficiary(*v)
	}
	return _c
}

// SetMinistry sets the "ministry" field.
func (_c *BidCreate) SetMinistry(v string) *BidCreate {
	_c.mutation.SetMinistry(v)
	return _c
}

// SetNillableMinistry sets the "ministry" field if the given value is not nil.
func (_c *BidCreate) SetNillableMinistry(v *string) *BidCreate {
	if v != nil {
		_c.SetMinistry(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *BidCreate) SetDepartment(v string) *BidCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *BidCreate) SetNillableDepartment(v *string) *BidCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetOrganisation sets the "organisation" field.
func (_c *BidCreate) SetOrganisation(v string) *BidCreate {
	_c.mutation.SetOrganisation(v)
	return _c
}

// SetNillableOrganisation sets the "organisation" field if the given value is not nil.
func (_c *BidCreate) SetNillableOrganisation(v *string) *BidCreate {
	if v != nil {
		_c.SetOrganisation(*v)
	}
	return _c
}

// SetOfficeName sets the "office_name" field.
func (_c *BidCreate) SetOfficeName(v string) *BidCreate {
	_c.mutation.SetOfficeName(v)
	return _c
}

// SetNillableOfficeName sets the "office_name" field if the given value is not nil.
func (_c *BidCreate) SetNillableOfficeName(v *string) *BidCreate {
	if v != nil {
		_c.SetOfficeName(*v)
	}
	return _c
}

// SetItemCategory sets the "item_category" field.
func (_c *BidCreate) SetItemCategory(v string) *BidCreate {
	_c.mutation.SetItemCategory(v)
	return _c
}

// SetNillableItemCategory sets the "item_category" field if the given value is not nil.
func (_c *BidCreate) SetNillableItemCategory(v *string) *BidCreate {
	if v != nil {
		_c.SetItemCategory(*v)
	}
	return _c
}

// SetContractPeriod sets the "contract_period" field.
func (_c *BidCreate) SetContractPeriod(v string) *BidCreate {
	_c.mutation.SetContractPeriod(v)
	return _c
}

// SetNillableContractPeriod sets the "contract_period" field if the given value is not nil.
func (_c *BidCreate) SetNillableContractPeriod(v *string) *BidCreate {
	if v != nil {
		_c.SetContractPeriod(*v)
	}
	return _c
}

// SetBidEndDatetime sets the "bid_end_datetime" field.
func (_c *BidCreate) SetBidEndDatetime(v time.Time) *BidCreate {
	_c.mutation.SetBidEndDatetime(v)
	return _c
}

// SetNillableBidEndDatetime sets the "bid_end_datetime" field if the given value is not nil.
func (_c *BidCreate) SetNillableBidEndDatetime(v *time.Time) *BidCreate {
	if v != nil {
		_c.SetBidEndDatetime(*v)
	}
	return _c
}

// SetBidOpenDatetime sets the "bid_open_datetime" field.
func (_c *BidCreate) SetBidOpenDatetime(v time.Time) *BidCreate {
	_c.mutation.SetBidOpenDatetime(v)
	return _c
}

// SetNillableBidOpenDatetime sets the "bid_open_datetime" field if the given value is not nil.
func (_c *BidCreate) SetNillableBidOpenDatetime(v *time.Time) *BidCreate {
	if v != nil {
		_c.SetBidOpenDatetime(*v)
	}
	return _c
}

// SetBidOfferValidityDays sets the "bid_offer_validity_days" field.
func (_c *BidCreate) SetBidOfferValidityDays(v int) *BidCreate {
	_c.mutation.SetBidOfferValidityDays(v)
	return _c
}

// SetNillableBidOfferValidityDays sets the "bid_offer_validity_days" field if the given value is not nil.
func (_c *BidCreate) SetNillableBidOfferValidityDays(v *int) *BidCreate {
	if v != nil {
		_c.SetBidOfferValidityDays(*v)
	}
	return _c
}

// SetDeliveryDays sets the "delivery_days" field.
func (_c *BidCreate) SetDeliveryDays(v int) *BidCreate {
	_c.mutation.SetDeliveryDays(v)
	return _c
}

// SetNillableDeliveryDays sets the "delivery_days" field if the given value is not nil.
func (_c *BidCreate) SetNillableDeliveryDays(v *int) *BidCreate {
	if v != nil {
		_c.SetDeliveryDays(*v)
	}
	return _c
}

// SetTotalQuantity sets the "total_quantity" field.
func (_c *BidCreate) SetTotalQuantity(v string) *BidCreate {
	_c.mutation.SetTotalQuantity(v)
	return _c
}

// SetNillableTotalQuantity sets the "total_quantity" field if the given value is not nil.
func (_c *BidCreate) SetNillableTotalQuantity(v *string) *BidCreate {
	if v != nil {
		_c.SetTotalQuantity(*v)
	}
	return _c
}

// SetEstimatedBidValue sets the "estimated_bid_value" field.
func (_c *BidCreate) SetEstimatedBidValue(v string) *BidCreate {
	_c.mutation.SetEstimatedBidValue(v)
	return _c
}

// SetNillableEstimatedBidValue sets the "estimated_bid_value" field if the given value is not nil.
func (_c *BidCreate) SetNillableEstimatedBidValue(v *string) *BidCreate {
	if v != nil {
		_c.SetEstimatedBidValue(*v)
	}
	return _c
}

// SetSimilarCategory sets the "similar_category" field.
func (_c *BidCreate) SetSimilarCategory(v string) *BidCreate {
	_c.mutation.SetSimilarCategory(v)
	return _c
}

// SetNillableSimilarCategory sets the "similar_category" field if the given value is not nil.
func (_c *BidCreate) SetNillableSimilarCategory(v *string) *BidCreate {
	if v != nil {
		_c.SetSimilarCategory(*v)
	}
	return _c
}

// SetMseExemption sets the "mse_exemption" field.
func (_c *BidCreate) SetMseExemption(v string) *BidCreate {
	_c.mutation.SetMseExemption(v)
	return _c
}

// SetNillableMseExemption sets the "mse_exemption" field if the given value is not nil.
func (_c *BidCreate) SetNillableMseExemption(v *string) *BidCreate {
	if v != nil {
		_c.SetMseExemption(*v)
	}
	return _c
}

// SetStartupExemption sets the "startup_exemption" field.
func (_c *BidCreate) SetStartupExemption(v string) *BidCreate {
	_c.mutation.SetStartupExemption(v)
	return _c
}

// SetNillableStartupExemption sets the "startup_exemption" field if the given value is not nil.
func (_c *BidCreate) SetNillableStartupExemption(v *string) *BidCreate {
	if v != nil {
		_c.SetStartupExemption(*v)
	}
	return _c
}

// SetMsePurchasePreference sets the "mse_purchase_preference" field.
func (_c *BidCreate) SetMsePurchasePreference(v string) *BidCreate {
	_c.mutation.SetMsePurchasePreference(v)
	return _c
}

// SetNillableMsePurchasePreference sets the "mse_purchase_preference" field if the given value is not nil.
func (_c *BidCreate) SetNillableMsePurchasePreference(v *string) *BidCreate {
	if v != nil {
		_c.SetMsePurchasePreference(*v)
	}
	return _c
}

// SetMiiPurchasePreference sets the "mii_purchase_preference" field.
func (_c *BidCreate) SetMiiPurchasePreference(v string) *BidCreate {
	_c.mutation.SetMiiPurchasePreference(v)
	return _c
}

// SetNillableMiiPurchasePreference sets the "mii_purchase_preference" field if the given value is not nil.
func (_c *BidCreate) SetNillableMiiPurchasePreference(v *string) *BidCreate {
	if v != nil {
		_c.SetMiiPurchasePreference(*v)
	}
	return _c
}

// SetEvaluationMethod sets the "evaluation_method" field.
func (_c *BidCreate) SetEvaluationMethod(v string) *BidCreate {
	_c.mutation.SetEvaluationMethod(v)
	return _c
}

// SetNillableEvaluationMethod sets the "evaluation_method" field if the given value is not nil.
func (_c *BidCreate) SetNillableEvaluationMethod(v *string) *BidCreate {
	if v != nil {
		_c.SetEvaluationMethod(*v)
	}
	return _c
}

// SetInspectionRequired sets the "inspection_required" field.
func (_c *BidCreate) SetInspectionRequired(v string) *BidCreate {
	_c.mutation.SetInspectionRequired(v)
	return _c
}

// SetNillableInspectionRequired sets the "inspection_required" field if the given value is not nil.
func (_c *BidCreate) SetNillableInspectionRequired(v *string) *BidCreate {
	if v != nil {
		_c.SetInspectionRequired(*v)
	}
	return _c
}

// SetPrimaryProductCategory sets the "primary_product_category" field.
func (_c *BidCreate) SetPrimaryProductCategory(v string) *BidCreate {
	_c.mutation.SetPrimaryProductCategory(v)
	return _c
}

// SetNillablePrimaryProductCategory sets the "primary_product_category" field if the given value is not nil.
func (_c *BidCreate) SetNillablePrimaryProductCategory(v *string) *BidCreate {
	if v != nil {
		_c.SetPrimaryProductCategory(*v)
	}
	return _c
}

// SetDeliveryAddress sets the "delivery_address" field.
func (_c *BidCreate) SetDeliveryAddress(v string) *BidCreate {
	_c.mutation.SetDeliveryAddress(v)
	return _c
}

// SetNillableDeliveryAddress sets the "delivery_address" field if the given value is not nil.
func (_c *BidCreate) SetNillableDeliveryAddress(v *string) *BidCreate {
	if v != nil {
		_c.SetDeliveryAddress(*v)
	}
	return _c
}

// SetScopeOfSupply sets the "scope_of_supply" field.
func (_c *BidCreate) SetScopeOfSupply(v string) *BidCreate {
	_c.mutation.SetScopeOfSupply(v)
	return _c
}

// SetNillableScopeOfSupply sets the "scope_of_supply" field if the given value is not nil.
func (_c *BidCreate) SetNillableScopeOfSupply(v *string) *BidCreate {
	if v != nil {
		_c.SetScopeOfSupply(*v)
	}
	return _c
}

// SetOptionClause sets the "option_clause" field.
func (_c *BidCreate) SetOptionClause(v string) *BidCreate {
	_c.mutation.SetOptionClause(v)
	return _c
}

// SetNillableOptionClause sets the "option_clause" field if the given value is not nil.
func (_c *BidCreate) SetNillableOptionClause(v *string) *BidCreate {
	if v != nil {
		_c.SetOptionClause(*v)
	}
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *BidCreate) SetSourceFile(v string) *BidCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_c *BidCreate) SetNillableSourceFile(v *string) *BidCreate {
	if v != nil {
		_c.SetSourceFile(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *BidCreate) SetRawText(v string) *BidCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *BidCreate) SetNillableRawText(v *string) *BidCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *BidCreate) SetEmbedding(v []float32) *BidCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BidCreate) SetCreatedAt(v time.Time) *BidCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BidCreate) SetNillableCreatedAt(v *time.Time) *BidCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BidCreate) SetUpdatedAt(v time.Time) *BidCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BidCreate) SetNillableUpdatedAt(v *time.Time) *BidCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BidCreate) SetID(v uuid.UUID) *BidCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BidCreate) SetNillableID(v *uuid.UUID) *BidCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *BidCreate) AddJobIDs(ids ...uuid.UUID) *BidCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *BidCreate) AddJobs(v ...*ExtractJob) *BidCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BidMutation object of the builder.
func (_c *BidCreate) Mutation() *BidMutation {
	return _c.mutation
}

// Save creates the Bid in the database.
func (_c *BidCreate) Save(ctx context.Context) (*Bid, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BidCreate) SaveX(ctx context.Context) *Bid {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BidCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BidCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BidCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bid.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bid.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bid.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BidCreate) check() error {
	if _, ok := _c.mutation.BidNumber(); !ok {
		return &ValidationError{Name: "bid_number", err: errors.New(`ent: missing required field "Bid.bid_number"`)}
	}
	if v, ok := _c.mutation.BidNumber(); ok {
		if err := bid.BidNumberValidator(v); err != nil {
			return &ValidationError{Name: "bid_number", err: fmt.Errorf(`ent: validator failed for field "Bid.bid_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Beneficiary(); ok {
		if err := bid.BeneficiaryValidator(v); err != nil {
			return &ValidationError{Name: "beneficiary", err: fmt.Errorf(`ent: validator failed for field "Bid.beneficiary": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Ministry(); ok {
		if err := bid.MinistryValidator(v); err != nil {
			return &ValidationError{Name: "ministry", err: fmt.Errorf(`ent: validator failed for field "Bid.ministry": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := bid.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Bid.department": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Organisation(); ok {
		if err := bid.OrganisationValidator(v); err != nil {
			return &ValidationError{Name: "organisation", err: fmt.Errorf(`ent: validator failed for field "Bid.organisation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OfficeName(); ok {
		if err := bid.OfficeNameValidator(v); err != nil {
			return &ValidationError{Name: "office_name", err: fmt.Errorf(`ent: validator failed for field "Bid.office_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ContractPeriod(); ok {
		if err := bid.ContractPeriodValidator(v); err != nil {
			return &ValidationError{Name: "contract_period", err: fmt.Errorf(`ent: validator failed for field "Bid.contract_period": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TotalQuantity(); ok {
		if err := bid.TotalQuantityValidator(v); err != nil {
			return &ValidationError{Name: "total_quantity", err: fmt.Errorf(`ent: validator failed for field "Bid.total_quantity": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EstimatedBidValue(); ok {
		if err := bid.EstimatedBidValueValidator(v); err != nil {
			return &ValidationError{Name: "estimated_bid_value", err: fmt.Errorf(`ent: validator failed for field "Bid.estimated_bid_value": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MseExemption(); ok {
		if err := bid.MseExemptionValidator(v); err != nil {
			return &ValidationError{Name: "mse_exemption", err: fmt.Errorf(`ent: validator failed for field "Bid.mse_exemption": %w`, err)}
		}
	}
	if v, ok := _c.mutation.StartupExemption(); ok {
		if err := bid.StartupExemptionValidator(v); err != nil {
			return &ValidationError{Name: "startup_exemption", err: fmt.Errorf(`ent: validator failed for field "Bid.startup_exemption": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MsePurchasePreference(); ok {
		if err := bid.MsePurchasePreferenceValidator(v); err != nil {
			return &ValidationError{Name: "mse_purchase_preference", err: fmt.Errorf(`ent: validator failed for field "Bid.mse_purchase_preference": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MiiPurchasePreference(); ok {
		if err := bid.MiiPurchasePreferenceValidator(v); err != nil {
			return &ValidationError{Name: "mii_purchase_preference", err: fmt.Errorf(`ent: validator failed for field "Bid.mii_purchase_preference": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EvaluationMethod(); ok {
		if err := bid.EvaluationMethodValidator(v); err != nil {
			return &ValidationError{Name: "evaluation_method", err: fmt.Errorf(`ent: validator failed for field "Bid.evaluation_method": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InspectionRequired(); ok {
		if err := bid.InspectionRequiredValidator(v); err != nil {
			return &ValidationError{Name: "inspection_required", err: fmt.Errorf(`ent: validator failed for field "Bid.inspection_required": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PrimaryProductCategory(); ok {
		if err := bid.PrimaryProductCategoryValidator(v); err != nil {
			return &ValidationError{Name: "primary_product_category", err: fmt.Errorf(`ent: validator failed for field "Bid.primary_product_category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SourceFile(); ok {
		if err := bid.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Bid.source_file": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bid.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bid.updated_at"`)}
	}
	return nil
}

func (_c *BidCreate) sqlSave(ctx context.Context) (*Bid, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BidCreate) createSpec() (*Bid, *sqlgraph.CreateSpec) {
	var (
		_node = &Bid{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bid.Table, sqlgraph.NewFieldSpec(bid.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.BidNumber(); ok {
		_spec.SetField(bid.FieldBidNumber, field.TypeString, value)
		_node.BidNumber = value
	}
	if value, ok := _c.mutation.Dated(); ok {
		_spec.SetField(bid.FieldDated, field.TypeTime, value)
		_node.Dated = &value
	}
	if value, ok := _c.mutation.Beneficiary(); ok {
		_spec.SetField(bid.FieldBeneficiary, field.TypeString, value)
		_node.Beneficiary = value
	}
	if value, ok := _c.mutation.Ministry(); ok {
		_spec.SetField(bid.FieldMinistry, field.TypeString, value)
		_node.Ministry = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(bid.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Organisation(); ok {
		_spec.SetField(bid.FieldOrganisation, field.TypeString, value)
		_node.Organisation = value
	}
	if value, ok := _c.mutation.OfficeName(); ok {
		_spec.SetField(bid.FieldOfficeName, field.TypeString, value)
		_node.OfficeName = value
	}
	if value, ok := _c.mutation.ItemCategory(); ok {
		_spec.SetField(bid.FieldItemCategory, field.TypeString, value)
		_node.ItemCategory = value
	}
	if value, ok := _c.mutation.ContractPeriod(); ok {
		_spec.SetField(bid.FieldContractPeriod, field.TypeString, value)
		_node.ContractPeriod = value
	}
	if value, ok := _c.mutation.BidEndDatetime(); ok {
		_spec.SetField(bid.FieldBidEndDatetime, field.TypeTime, value)
		_node.BidEndDatetime = &value
	}
	if value, ok := _c.mutation.BidOpenDatetime(); ok {
		_spec.SetField(bid.FieldBidOpenDatetime, field.TypeTime, value)
		_node.BidOpenDatetime = &value
	}
	if value, ok := _c.mutation.BidOfferValidityDays(); ok {
		_spec.SetField(bid.FieldBidOfferValidityDays, field.TypeInt, value)
		_node.BidOfferValidityDays = &value
	}
	if value, ok := _c.mutation.DeliveryDays(); ok {
		_spec.SetField(bid.FieldDeliveryDays, field.TypeInt, value)
		_node.DeliveryDays = &value
	}
	if value, ok := _c.mutation.TotalQuantity(); ok {
		_spec.SetField(bid.FieldTotalQuantity, field.TypeString, value)
		_node.TotalQuantity = value
	}
	if value, ok := _c.mutation.EstimatedBidValue(); ok {
		_spec.SetField(bid.FieldEstimatedBidValue, field.TypeString, value)
		_node.EstimatedBidValue = value
	}
	if value, ok := _c.mutation.SimilarCategory(); ok {
		_spec.SetField(bid.FieldSimilarCategory, field.TypeString, value)
		_node.SimilarCategory = value
	}
	if value, ok := _c.mutation.MseExemption(); ok {
		_spec.SetField(bid.FieldMseExemption, field.TypeString, value)
		_node.MseExemption = value
	}
	if value, ok := _c.mutation.StartupExemption(); ok {
		_spec.SetField(bid.FieldStartupExemption, field.TypeString, value)
		_node.StartupExemption = value
	}
	if value, ok := _c.mutation.MsePurchasePreference(); ok {
		_spec.SetField(bid.FieldMsePurchasePreference, field.TypeString, value)
		_node.MsePurchasePreference = value
	}
	if value, ok := _c.mutation.MiiPurchasePreference(); ok {
		_spec.SetField(bid.FieldMiiPurchasePreference, field.TypeString, value)
		_node.MiiPurchasePreference = value
	}
	if value, ok := _c.mutation.EvaluationMethod(); ok {
		_spec.SetField(bid.FieldEvaluationMethod, field.TypeString, value)
		_node.EvaluationMethod = value
	}
	if value, ok := _c.mutation.InspectionRequired(); ok {
		_spec.SetField(bid.FieldInspectionRequired, field.TypeString, value)
		_node.InspectionRequired = value
	}
	if value, ok := _c.mutation.PrimaryProductCategory(); ok {
		_spec.SetField(bid.FieldPrimaryProductCategory, field.TypeString, value)
		_node.PrimaryProductCategory = value
	}
	if value, ok := _c.mutation.DeliveryAddress(); ok {
		_spec.SetField(bid.FieldDeliveryAddress, field.TypeString, value)
		_node.DeliveryAddress = value
	}
	if value, ok := _c.mutation.ScopeOfSupply(); ok {
		_spec.SetField(bid.FieldScopeOfSupply, field.TypeString, value)
		_node.ScopeOfSupply = value
	}
	if value, ok := _c.mutation.OptionClause(); ok {
		_spec.SetField(bid.FieldOptionClause, field.TypeString, value)
		_node.OptionClause = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(bid.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(bid.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(bid.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bid.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bid.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BidCreateBulk is the builder for creating many Bid entities in bulk.
type BidCreateBulk struct {
	config
	err      error
	builders []*BidCreate
}

// Save creates the Bid entities in the database.
func (_c *BidCreateBulk) Save(ctx context.Context) ([]*Bid, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bid, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BidMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BidCreateBulk) SaveX(ctx context.Context) []*Bid {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BidCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BidCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
