// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/google/uuid"
)

// SellerDetailUpdate is the builder for updating SellerDetail entities.
type SellerDetailUpdate struct {
	config
	hooks    []Hook
	mutation *SellerDetailMutation
}

// Where appends a list predicates to the SellerDetailUpdate builder.
func (_u *SellerDetailUpdate) Where(ps ...predicate.SellerDetail) *SellerDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *SellerDetailUpdate) SetContractID(v uuid.UUID) *SellerDetailUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *SellerDetailUpdate) SetNillableContractID(v *uuid.UUID) *SellerDetailUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetGemSellerID sets the "gem_seller_id" field.
func (_u *SellerDetailUpdate) SetGemSellerID(v string) *SellerDetailUpdate {
	_u.mutation.SetGemSellerID(v)
	return _u
}

// SetNillableGemSellerID sets the "gem_seller_id" field if the given value is not nil.
func (_u *SellerDetailUpdate) SetNillableGemSellerID(v *string) *SellerDetailUpdate {
	if v != nil {
		_u.SetGemSellerID(*v)
	}
	return _u
}

// ClearGemSellerID clears the value of the "gem_seller_id" field.
func (_u *SellerDetailUpdate) ClearGemSellerID() *SellerDetailUpdate {
	_u.mutation.ClearGemSellerID()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *SellerDetailUpdate) SetCompanyName(v string) *SellerDetailUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *SellerDetailUpdate) SetNillableCompanyName(v *string) *SellerDetailUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *SellerDetailUpdate) ClearCompanyName() *SellerDetailUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetContactNo sets the "contact_no" field.
func (_u *SellerDetailUpdate) SetContactNo(v string) *SellerDetailUpdate {
	_u.mutation.SetContactNo(v)
	return _u
}

// SetNillableContactNo sets the "contact_no" field if the given value is not nil.
func (_u *SellerDetailUpdate) SetNillableContactNo(v *string) *SellerDetailUpdate {
	if v != nil {
		_u.SetContactNo(*v)
	}
	return _u
}

// ClearContactNo clears the value of the "contact_no" field.
func (_u *SellerDetailUpdate) ClearContactNo() *SellerDetailUpdate {
	_u.mutation.ClearContactNo()
	return _u
}

// SetEmail sets the "email" field.
func (_u *SellerDetailUpdate) SetEmail(v string) *SellerDetailUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SellerDetailUpdate) SetNillableEmail(v *string) *SellerDetailUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *SellerDetailUpdate) ClearEmail() *SellerDetailUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetAddress sets the "address" field.
func (_u *SellerDetailUpdate) SetAddress(v string) *SellerDetailUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *SellerDetailUpdate) SetNillableAddress(v *string) *SellerDetailUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *SellerDetailUpdate) ClearAddress() *SellerDetailUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetMsmeRegistrationNumber sets the "msme_registration_number" field.
func (_u *SellerDetailUpdate) SetMsmeRegistrationNumber(v string) *SellerDetailUpdate {
	_u.mutation.SetMsmeRegistrationNumber(v)
	return _u
}

// SetNillableMsmeRegistrationNumber sets the "msme_registration_number" field if the given value is not nil.
func (_u *SellerDetailUpdate) SetNillableMsmeRegistrationNumber(v *string) *SellerDetailUpdate {
	if v != nil {
		_u.SetMsmeRegistrationNumber(*v)
	}
	return _u
}

// ClearMsmeRegistrationNumber clears the value of the "msme_registration_number" field.
func (_u *SellerDetailUpdate) ClearMsmeRegistrationNumber() *SellerDetailUpdate {
	_u.mutation.ClearMsmeRegistrationNumber()
	return _u
}

// SetGstin sets the "gstin" field.
func (_u *SellerDetailUpdate) SetGstin(v string) *SellerDetailUpdate {
	_u.mutation.SetGstin(v)
	return _u
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_u *SellerDetailUpdate) SetNillableGstin(v *string) *SellerDetailUpdate {
	if v != nil {
		_u.SetGstin(*v)
	}
	return _u
}

// ClearGstin clears the value of the "gstin" field.
func (_u *SellerDetailUpdate) ClearGstin() *SellerDetailUpdate {
	_u.mutation.ClearGstin()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *SellerDetailUpdate) SetContract(v *Contract) *SellerDetailUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the SellerDetailMutation object of the builder.
func (_u *SellerDetailUpdate) Mutation() *SellerDetailMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *SellerDetailUpdate) ClearContract() *SellerDetailUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SellerDetailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SellerDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SellerDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SellerDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SellerDetailUpdate) check() error {
	if v, ok := _u.mutation.GemSellerID(); ok {
		if err := sellerdetail.GemSellerIDValidator(v); err != nil {
			return &ValidationError{Name: "gem_seller_id", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.gem_seller_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := sellerdetail.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactNo(); ok {
		if err := sellerdetail.ContactNoValidator(v); err != nil {
			return &ValidationError{Name: "contact_no", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.contact_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := sellerdetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MsmeRegistrationNumber(); ok {
		if err := sellerdetail.MsmeRegistrationNumberValidator(v); err != nil {
			return &ValidationError{Name: "msme_registration_number", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.msme_registration_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gstin(); ok {
		if err := sellerdetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.gstin": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SellerDetail.contract"`)
	}
	return nil
}

func (_u *SellerDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sellerdetail.Table, sellerdetail.Columns, sqlgraph.NewFieldSpec(sellerdetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GemSellerID(); ok {
		_spec.SetField(sellerdetail.FieldGemSellerID, field.TypeString, value)
	}
	if _u.mutation.GemSellerIDCleared() {
		_spec.ClearField(sellerdetail.FieldGemSellerID, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(sellerdetail.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(sellerdetail.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNo(); ok {
		_spec.SetField(sellerdetail.FieldContactNo, field.TypeString, value)
	}
	if _u.mutation.ContactNoCleared() {
		_spec.ClearField(sellerdetail.FieldContactNo, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(sellerdetail.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(sellerdetail.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(sellerdetail.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(sellerdetail.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.MsmeRegistrationNumber(); ok {
		_spec.SetField(sellerdetail.FieldMsmeRegistrationNumber, field.TypeString, value)
	}
	if _u.mutation.MsmeRegistrationNumberCleared() {
		_spec.ClearField(sellerdetail.FieldMsmeRegistrationNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Gstin(); ok {
		_spec.SetField(sellerdetail.FieldGstin, field.TypeString, value)
	}
	if _u.mutation.GstinCleared() {
		_spec.ClearField(sellerdetail.FieldGstin, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sellerdetail.ContractTable,
			Columns: []string{sellerdetail.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sellerdetail.ContractTable,
			Columns: []string{sellerdetail.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sellerdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SellerDetailUpdateOne is the builder for updating a single SellerDetail entity.
type SellerDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SellerDetailMutation
}

// SetContractID sets the "contract_id" field.
func (_u *SellerDetailUpdateOne) SetContractID(v uuid.UUID) *SellerDetailUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *SellerDetailUpdateOne) SetNillableContractID(v *uuid.UUID) *SellerDetailUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetGemSellerID sets the "gem_seller_id" field.
func (_u *SellerDetailUpdateOne) SetGemSellerID(v string) *SellerDetailUpdateOne {
	_u.mutation.SetGemSellerID(v)
	return _u
}

// SetNillableGemSellerID sets the "gem_seller_id" field if the given value is not nil.
func (_u *SellerDetailUpdateOne) SetNillableGemSellerID(v *string) *SellerDetailUpdateOne {
	if v != nil {
		_u.SetGemSellerID(*v)
	}
	return _u
}

// ClearGemSellerID clears the value of the "gem_seller_id" field.
func (_u *SellerDetailUpdateOne) ClearGemSellerID() *SellerDetailUpdateOne {
	_u.mutation.ClearGemSellerID()
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *SellerDetailUpdateOne) SetCompanyName(v string) *SellerDetailUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *SellerDetailUpdateOne) SetNillableCompanyName(v *string) *SellerDetailUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *SellerDetailUpdateOne) ClearCompanyName() *SellerDetailUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetContactNo sets the "contact_no" field.
func (_u *SellerDetailUpdateOne) SetContactNo(v string) *SellerDetailUpdateOne {
	_u.mutation.SetContactNo(v)
	return _u
}

// SetNillableContactNo sets the "contact_no" field if the given value is not nil.
func (_u *SellerDetailUpdateOne) SetNillableContactNo(v *string) *SellerDetailUpdateOne {
	if v != nil {
		_u.SetContactNo(*v)
	}
	return _u
}

// ClearContactNo clears the value of the "contact_no" field.
func (_u *SellerDetailUpdateOne) ClearContactNo() *SellerDetailUpdateOne {
	_u.mutation.ClearContactNo()
	return _u
}

// SetEmail sets the "email" field.
func (_u *SellerDetailUpdateOne) SetEmail(v string) *SellerDetailUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *SellerDetailUpdateOne) SetNillableEmail(v *string) *SellerDetailUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *SellerDetailUpdateOne) ClearEmail() *SellerDetailUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetAddress sets the "address" field.
func (_u *SellerDetailUpdateOne) SetAddress(v string) *SellerDetailUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *SellerDetailUpdateOne) SetNillableAddress(v *string) *SellerDetailUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *SellerDetailUpdateOne) ClearAddress() *SellerDetailUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetMsmeRegistrationNumber sets the "msme_registration_number" field.
func (_u *SellerDetailUpdateOne) SetMsmeRegistrationNumber(v string) *SellerDetailUpdateOne {
	_u.mutation.SetMsmeRegistrationNumber(v)
	return _u
}

// SetNillableMsmeRegistrationNumber sets the "msme_registration_number" field if the given value is not nil.
func (_u *SellerDetailUpdateOne) SetNillableMsmeRegistrationNumber(v *string) *SellerDetailUpdateOne {
	if v != nil {
		_u.SetMsmeRegistrationNumber(*v)
	}
	return _u
}

// ClearMsmeRegistrationNumber clears the value of the "msme_registration_number" field.
func (_u *SellerDetailUpdateOne) ClearMsmeRegistrationNumber() *SellerDetailUpdateOne {
	_u.mutation.ClearMsmeRegistrationNumber()
	return _u
}

// SetGstin sets the "gstin" field.
func (_u *SellerDetailUpdateOne) SetGstin(v string) *SellerDetailUpdateOne {
	_u.mutation.SetGstin(v)
	return _u
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_u *SellerDetailUpdateOne) SetNillableGstin(v *string) *SellerDetailUpdateOne {
	if v != nil {
		_u.SetGstin(*v)
	}
	return _u
}

// ClearGstin clears the value of the "gstin" field.
func (_u *SellerDetailUpdateOne) ClearGstin() *SellerDetailUpdateOne {
	_u.mutation.ClearGstin()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *SellerDetailUpdateOne) SetContract(v *Contract) *SellerDetailUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the SellerDetailMutation object of the builder.
func (_u *SellerDetailUpdateOne) Mutation() *SellerDetailMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *SellerDetailUpdateOne) ClearContract() *SellerDetailUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the SellerDetailUpdate builder.
func (_u *SellerDetailUpdateOne) Where(ps ...predicate.SellerDetail) *SellerDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SellerDetailUpdateOne) Select(field string, fields ...string) *SellerDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SellerDetail entity.
func (_u *SellerDetailUpdateOne) Save(ctx context.Context) (*SellerDetail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SellerDetailUpdateOne) SaveX(ctx context.Context) *SellerDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SellerDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SellerDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SellerDetailUpdateOne) check() error {
	if v, ok := _u.mutation.GemSellerID(); ok {
		if err := sellerdetail.GemSellerIDValidator(v); err != nil {
			return &ValidationError{Name: "gem_seller_id", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.gem_seller_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := sellerdetail.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactNo(); ok {
		if err := sellerdetail.ContactNoValidator(v); err != nil {
			return &ValidationError{Name: "contact_no", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.contact_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := sellerdetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MsmeRegistrationNumber(); ok {
		if err := sellerdetail.MsmeRegistrationNumberValidator(v); err != nil {
			return &ValidationError{Name: "msme_registration_number", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.msme_registration_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gstin(); ok {
		if err := sellerdetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.gstin": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SellerDetail.contract"`)
	}
	return nil
}

func (_u *SellerDetailUpdateOne) sqlSave(ctx context.Context) (_node *SellerDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sellerdetail.Table, sellerdetail.Columns, sqlgraph.NewFieldSpec(sellerdetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SellerDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sellerdetail.FieldID)
		for _, f := range fields {
			if !sellerdetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sellerdetail.FieldID {
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
	if value, ok := _u.mutation.GemSellerID(); ok {
		_spec.SetField(sellerdetail.FieldGemSellerID, field.TypeString, value)
	}
	if _u.mutation.GemSellerIDCleared() {
		_spec.ClearField(sellerdetail.FieldGemSellerID, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(sellerdetail.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(sellerdetail.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNo(); ok {
		_spec.SetField(sellerdetail.FieldContactNo, field.TypeString, value)
	}
	if _u.mutation.ContactNoCleared() {
		_spec.ClearField(sellerdetail.FieldContactNo, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(sellerdetail.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(sellerdetail.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(sellerdetail.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(sellerdetail.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.MsmeRegistrationNumber(); ok {
		_spec.SetField(sellerdetail.FieldMsmeRegistrationNumber, field.TypeString, value)
	}
	if _u.mutation.MsmeRegistrationNumberCleared() {
		_spec.ClearField(sellerdetail.FieldMsmeRegistrationNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Gstin(); ok {
		_spec.SetField(sellerdetail.FieldGstin, field.TypeString, value)
	}
	if _u.mutation.GstinCleared() {
		_spec.ClearField(sellerdetail.FieldGstin, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sellerdetail.ContractTable,
			Columns: []string{sellerdetail.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sellerdetail.ContractTable,
			Columns: []string{sellerdetail.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SellerDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sellerdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
