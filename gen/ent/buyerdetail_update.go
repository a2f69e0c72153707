// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// BuyerDetailUpdate is the builder for updating BuyerDetail entities.
type BuyerDetailUpdate struct {
	config
	hooks    []Hook
	mutation *BuyerDetailMutation
}

// Where appends a list predicates to the BuyerDetailUpdate builder.
func (_u *BuyerDetailUpdate) Where(ps ...predicate.BuyerDetail) *BuyerDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *BuyerDetailUpdate) SetContractID(v uuid.UUID) *BuyerDetailUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *BuyerDetailUpdate) SetNillableContractID(v *uuid.UUID) *BuyerDetailUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetDesignation sets the "designation" field.
func (_u *BuyerDetailUpdate) SetDesignation(v string) *BuyerDetailUpdate {
	_u.mutation.SetDesignation(v)
	return _u
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_u *BuyerDetailUpdate) SetNillableDesignation(v *string) *BuyerDetailUpdate {
	if v != nil {
		_u.SetDesignation(*v)
	}
	return _u
}

// ClearDesignation clears the value of the "designation" field.
func (_u *BuyerDetailUpdate) ClearDesignation() *BuyerDetailUpdate {
	_u.mutation.ClearDesignation()
	return _u
}

// SetContactNo sets the "contact_no" field.
func (_u *BuyerDetailUpdate) SetContactNo(v string) *BuyerDetailUpdate {
	_u.mutation.SetContactNo(v)
	return _u
}

// SetNillableContactNo sets the "contact_no" field if the given value is not nil.
func (_u *BuyerDetailUpdate) SetNillableContactNo(v *string) *BuyerDetailUpdate {
	if v != nil {
		_u.SetContactNo(*v)
	}
	return _u
}

// ClearContactNo clears the value of the "contact_no" field.
func (_u *BuyerDetailUpdate) ClearContactNo() *BuyerDetailUpdate {
	_u.mutation.ClearContactNo()
	return _u
}

// SetEmail sets the "email" field.
func (_u *BuyerDetailUpdate) SetEmail(v string) *BuyerDetailUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BuyerDetailUpdate) SetNillableEmail(v *string) *BuyerDetailUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *BuyerDetailUpdate) ClearEmail() *BuyerDetailUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetGstin sets the "gstin" field.
func (_u *BuyerDetailUpdate) SetGstin(v string) *BuyerDetailUpdate {
	_u.mutation.SetGstin(v)
	return _u
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_u *BuyerDetailUpdate) SetNillableGstin(v *string) *BuyerDetailUpdate {
	if v != nil {
		_u.SetGstin(*v)
	}
	return _u
}

// ClearGstin clears the value of the "gstin" field.
func (_u *BuyerDetailUpdate) ClearGstin() *BuyerDetailUpdate {
	_u.mutation.ClearGstin()
	return _u
}

// SetAddress sets the "address" field.
func (_u *BuyerDetailUpdate) SetAddress(v string) *BuyerDetailUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BuyerDetailUpdate) SetNillableAddress(v *string) *BuyerDetailUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *BuyerDetailUpdate) ClearAddress() *BuyerDetailUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *BuyerDetailUpdate) SetContract(v *Contract) *BuyerDetailUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the BuyerDetailMutation object of the builder.
func (_u *BuyerDetailUpdate) Mutation() *BuyerDetailMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *BuyerDetailUpdate) ClearContract() *BuyerDetailUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BuyerDetailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuyerDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BuyerDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuyerDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuyerDetailUpdate) check() error {
	if v, ok := _u.mutation.Designation(); ok {
		if err := buyerdetail.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.designation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactNo(); ok {
		if err := buyerdetail.ContactNoValidator(v); err != nil {
			return &ValidationError{Name: "contact_no", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.contact_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := buyerdetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gstin(); ok {
		if err := buyerdetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.gstin": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BuyerDetail.contract"`)
	}
	return nil
}

func (_u *BuyerDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(buyerdetail.Table, buyerdetail.Columns, sqlgraph.NewFieldSpec(buyerdetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Designation(); ok {
		_spec.SetField(buyerdetail.FieldDesignation, field.TypeString, value)
	}
	if _u.mutation.DesignationCleared() {
		_spec.ClearField(buyerdetail.FieldDesignation, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNo(); ok {
		_spec.SetField(buyerdetail.FieldContactNo, field.TypeString, value)
	}
	if _u.mutation.ContactNoCleared() {
		_spec.ClearField(buyerdetail.FieldContactNo, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(buyerdetail.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(buyerdetail.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Gstin(); ok {
		_spec.SetField(buyerdetail.FieldGstin, field.TypeString, value)
	}
	if _u.mutation.GstinCleared() {
		_spec.ClearField(buyerdetail.FieldGstin, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(buyerdetail.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(buyerdetail.FieldAddress, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   buyerdetail.ContractTable,
			Columns: []string{buyerdetail.ContractColumn},
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
			Table:   buyerdetail.ContractTable,
			Columns: []string{buyerdetail.ContractColumn},
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
			err = &NotFoundError{buyerdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BuyerDetailUpdateOne is the builder for updating a single BuyerDetail entity.
type BuyerDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuyerDetailMutation
}

// SetContractID sets the "contract_id" field.
func (_u *BuyerDetailUpdateOne) SetContractID(v uuid.UUID) *BuyerDetailUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *BuyerDetailUpdateOne) SetNillableContractID(v *uuid.UUID) *BuyerDetailUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetDesignation sets the "designation" field.
func (_u *BuyerDetailUpdateOne) SetDesignation(v string) *BuyerDetailUpdateOne {
	_u.mutation.SetDesignation(v)
	return _u
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_u *BuyerDetailUpdateOne) SetNillableDesignation(v *string) *BuyerDetailUpdateOne {
	if v != nil {
		_u.SetDesignation(*v)
	}
	return _u
}

// ClearDesignation clears the value of the "designation" field.
func (_u *BuyerDetailUpdateOne) ClearDesignation() *BuyerDetailUpdateOne {
	_u.mutation.ClearDesignation()
	return _u
}

// SetContactNo sets the "contact_no" field.
func (_u *BuyerDetailUpdateOne) SetContactNo(v string) *BuyerDetailUpdateOne {
	_u.mutation.SetContactNo(v)
	return _u
}

// SetNillableContactNo sets the "contact_no" field if the given value is not nil.
func (_u *BuyerDetailUpdateOne) SetNillableContactNo(v *string) *BuyerDetailUpdateOne {
	if v != nil {
		_u.SetContactNo(*v)
	}
	return _u
}

// ClearContactNo clears the value of the "contact_no" field.
func (_u *BuyerDetailUpdateOne) ClearContactNo() *BuyerDetailUpdateOne {
	_u.mutation.ClearContactNo()
	return _u
}

// SetEmail sets the "email" field.
func (_u *BuyerDetailUpdateOne) SetEmail(v string) *BuyerDetailUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *BuyerDetailUpdateOne) SetNillableEmail(v *string) *BuyerDetailUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *BuyerDetailUpdateOne) ClearEmail() *BuyerDetailUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetGstin sets the "gstin" field.
func (_u *BuyerDetailUpdateOne) SetGstin(v string) *BuyerDetailUpdateOne {
	_u.mutation.SetGstin(v)
	return _u
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_u *BuyerDetailUpdateOne) SetNillableGstin(v *string) *BuyerDetailUpdateOne {
	if v != nil {
		_u.SetGstin(*v)
	}
	return _u
}

// ClearGstin clears the value of the "gstin" field.
func (_u *BuyerDetailUpdateOne) ClearGstin() *BuyerDetailUpdateOne {
	_u.mutation.ClearGstin()
	return _u
}

// SetAddress sets the "address" field.
func (_u *BuyerDetailUpdateOne) SetAddress(v string) *BuyerDetailUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BuyerDetailUpdateOne) SetNillableAddress(v *string) *BuyerDetailUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *BuyerDetailUpdateOne) ClearAddress() *BuyerDetailUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *BuyerDetailUpdateOne) SetContract(v *Contract) *BuyerDetailUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the BuyerDetailMutation object of the builder.
func (_u *BuyerDetailUpdateOne) Mutation() *BuyerDetailMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *BuyerDetailUpdateOne) ClearContract() *BuyerDetailUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the BuyerDetailUpdate builder.
func (_u *BuyerDetailUpdateOne) Where(ps ...predicate.BuyerDetail) *BuyerDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BuyerDetailUpdateOne) Select(field string, fields ...string) *BuyerDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BuyerDetail entity.
func (_u *BuyerDetailUpdateOne) Save(ctx context.Context) (*BuyerDetail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuyerDetailUpdateOne) SaveX(ctx context.Context) *BuyerDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BuyerDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuyerDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuyerDetailUpdateOne) check() error {
	if v, ok := _u.mutation.Designation(); ok {
		if err := buyerdetail.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.designation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContactNo(); ok {
		if err := buyerdetail.ContactNoValidator(v); err != nil {
			return &ValidationError{Name: "contact_no", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.contact_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := buyerdetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gstin(); ok {
		if err := buyerdetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.gstin": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BuyerDetail.contract"`)
	}
	return nil
}

func (_u *BuyerDetailUpdateOne) sqlSave(ctx context.Context) (_node *BuyerDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(buyerdetail.Table, buyerdetail.Columns, sqlgraph.NewFieldSpec(buyerdetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BuyerDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, buyerdetail.FieldID)
		for _, f := range fields {
			if !buyerdetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != buyerdetail.FieldID {
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
	if value, ok := _u.mutation.Designation(); ok {
		_spec.SetField(buyerdetail.FieldDesignation, field.TypeString, value)
	}
	if _u.mutation.DesignationCleared() {
		_spec.ClearField(buyerdetail.FieldDesignation, field.TypeString)
	}
	if value, ok := _u.mutation.ContactNo(); ok {
		_spec.SetField(buyerdetail.FieldContactNo, field.TypeString, value)
	}
	if _u.mutation.ContactNoCleared() {
		_spec.ClearField(buyerdetail.FieldContactNo, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(buyerdetail.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(buyerdetail.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Gstin(); ok {
		_spec.SetField(buyerdetail.FieldGstin, field.TypeString, value)
	}
	if _u.mutation.GstinCleared() {
		_spec.ClearField(buyerdetail.FieldGstin, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(buyerdetail.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(buyerdetail.FieldAddress, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   buyerdetail.ContractTable,
			Columns: []string{buyerdetail.ContractColumn},
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
			Table:   buyerdetail.ContractTable,
			Columns: []string{buyerdetail.ContractColumn},
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
	_node = &BuyerDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buyerdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
