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
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// PayingAuthorityUpdate is the builder for updating PayingAuthority entities.
type PayingAuthorityUpdate struct {
	config
	hooks    []Hook
	mutation *PayingAuthorityMutation
}

// Where appends a list predicates to the PayingAuthorityUpdate builder.
func (_u *PayingAuthorityUpdate) Where(ps ...predicate.PayingAuthority) *PayingAuthorityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *PayingAuthorityUpdate) SetContractID(v uuid.UUID) *PayingAuthorityUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *PayingAuthorityUpdate) SetNillableContractID(v *uuid.UUID) *PayingAuthorityUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *PayingAuthorityUpdate) SetRole(v string) *PayingAuthorityUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PayingAuthorityUpdate) SetNillableRole(v *string) *PayingAuthorityUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *PayingAuthorityUpdate) ClearRole() *PayingAuthorityUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetPaymentMode sets the "payment_mode" field.
func (_u *PayingAuthorityUpdate) SetPaymentMode(v string) *PayingAuthorityUpdate {
	_u.mutation.SetPaymentMode(v)
	return _u
}

// SetNillablePaymentMode sets the "payment_mode" field if the given value is not nil.
func (_u *PayingAuthorityUpdate) SetNillablePaymentMode(v *string) *PayingAuthorityUpdate {
	if v != nil {
		_u.SetPaymentMode(*v)
	}
	return _u
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (_u *PayingAuthorityUpdate) ClearPaymentMode() *PayingAuthorityUpdate {
	_u.mutation.ClearPaymentMode()
	return _u
}

// SetDesignation sets the "designation" field.
func (_u *PayingAuthorityUpdate) SetDesignation(v string) *PayingAuthorityUpdate {
	_u.mutation.SetDesignation(v)
	return _u
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_u *PayingAuthorityUpdate) SetNillableDesignation(v *string) *PayingAuthorityUpdate {
	if v != nil {
		_u.SetDesignation(*v)
	}
	return _u
}

// ClearDesignation clears the value of the "designation" field.
func (_u *PayingAuthorityUpdate) ClearDesignation() *PayingAuthorityUpdate {
	_u.mutation.ClearDesignation()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PayingAuthorityUpdate) SetEmail(v string) *PayingAuthorityUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PayingAuthorityUpdate) SetNillableEmail(v *string) *PayingAuthorityUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PayingAuthorityUpdate) ClearEmail() *PayingAuthorityUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetGstin sets the "gstin" field.
func (_u *PayingAuthorityUpdate) SetGstin(v string) *PayingAuthorityUpdate {
	_u.mutation.SetGstin(v)
	return _u
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_u *PayingAuthorityUpdate) SetNillableGstin(v *string) *PayingAuthorityUpdate {
	if v != nil {
		_u.SetGstin(*v)
	}
	return _u
}

// ClearGstin clears the value of the "gstin" field.
func (_u *PayingAuthorityUpdate) ClearGstin() *PayingAuthorityUpdate {
	_u.mutation.ClearGstin()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PayingAuthorityUpdate) SetAddress(v string) *PayingAuthorityUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PayingAuthorityUpdate) SetNillableAddress(v *string) *PayingAuthorityUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PayingAuthorityUpdate) ClearAddress() *PayingAuthorityUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *PayingAuthorityUpdate) SetContract(v *Contract) *PayingAuthorityUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the PayingAuthorityMutation object of the builder.
func (_u *PayingAuthorityUpdate) Mutation() *PayingAuthorityMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *PayingAuthorityUpdate) ClearContract() *PayingAuthorityUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PayingAuthorityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayingAuthorityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PayingAuthorityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayingAuthorityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayingAuthorityUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := payingauthority.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMode(); ok {
		if err := payingauthority.PaymentModeValidator(v); err != nil {
			return &ValidationError{Name: "payment_mode", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.payment_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Designation(); ok {
		if err := payingauthority.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.designation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := payingauthority.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gstin(); ok {
		if err := payingauthority.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.gstin": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PayingAuthority.contract"`)
	}
	return nil
}

func (_u *PayingAuthorityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payingauthority.Table, payingauthority.Columns, sqlgraph.NewFieldSpec(payingauthority.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(payingauthority.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(payingauthority.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMode(); ok {
		_spec.SetField(payingauthority.FieldPaymentMode, field.TypeString, value)
	}
	if _u.mutation.PaymentModeCleared() {
		_spec.ClearField(payingauthority.FieldPaymentMode, field.TypeString)
	}
	if value, ok := _u.mutation.Designation(); ok {
		_spec.SetField(payingauthority.FieldDesignation, field.TypeString, value)
	}
	if _u.mutation.DesignationCleared() {
		_spec.ClearField(payingauthority.FieldDesignation, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(payingauthority.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(payingauthority.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Gstin(); ok {
		_spec.SetField(payingauthority.FieldGstin, field.TypeString, value)
	}
	if _u.mutation.GstinCleared() {
		_spec.ClearField(payingauthority.FieldGstin, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(payingauthority.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(payingauthority.FieldAddress, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payingauthority.ContractTable,
			Columns: []string{payingauthority.ContractColumn},
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
			Table:   payingauthority.ContractTable,
			Columns: []string{payingauthority.ContractColumn},
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
			err = &NotFoundError{payingauthority.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PayingAuthorityUpdateOne is the builder for updating a single PayingAuthority entity.
type PayingAuthorityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PayingAuthorityMutation
}

// SetContractID sets the "contract_id" field.
func (_u *PayingAuthorityUpdateOne) SetContractID(v uuid.UUID) *PayingAuthorityUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *PayingAuthorityUpdateOne) SetNillableContractID(v *uuid.UUID) *PayingAuthorityUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *PayingAuthorityUpdateOne) SetRole(v string) *PayingAuthorityUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PayingAuthorityUpdateOne) SetNillableRole(v *string) *PayingAuthorityUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *PayingAuthorityUpdateOne) ClearRole() *PayingAuthorityUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetPaymentMode sets the "payment_mode" field.
func (_u *PayingAuthorityUpdateOne) SetPaymentMode(v string) *PayingAuthorityUpdateOne {
	_u.mutation.SetPaymentMode(v)
	return _u
}

// SetNillablePaymentMode sets the "payment_mode" field if the given value is not nil.
func (_u *PayingAuthorityUpdateOne) SetNillablePaymentMode(v *string) *PayingAuthorityUpdateOne {
	if v != nil {
		_u.SetPaymentMode(*v)
	}
	return _u
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (_u *PayingAuthorityUpdateOne) ClearPaymentMode() *PayingAuthorityUpdateOne {
	_u.mutation.ClearPaymentMode()
	return _u
}

// SetDesignation sets the "designation" field.
func (_u *PayingAuthorityUpdateOne) SetDesignation(v string) *PayingAuthorityUpdateOne {
	_u.mutation.SetDesignation(v)
	return _u
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_u *PayingAuthorityUpdateOne) SetNillableDesignation(v *string) *PayingAuthorityUpdateOne {
	if v != nil {
		_u.SetDesignation(*v)
	}
	return _u
}

// ClearDesignation clears the value of the "designation" field.
func (_u *PayingAuthorityUpdateOne) ClearDesignation() *PayingAuthorityUpdateOne {
	_u.mutation.ClearDesignation()
	return _u
}

// SetEmail sets the "email" field.
func (_u *PayingAuthorityUpdateOne) SetEmail(v string) *PayingAuthorityUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PayingAuthorityUpdateOne) SetNillableEmail(v *string) *PayingAuthorityUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *PayingAuthorityUpdateOne) ClearEmail() *PayingAuthorityUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetGstin sets the "gstin" field.
func (_u *PayingAuthorityUpdateOne) SetGstin(v string) *PayingAuthorityUpdateOne {
	_u.mutation.SetGstin(v)
	return _u
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_u *PayingAuthorityUpdateOne) SetNillableGstin(v *string) *PayingAuthorityUpdateOne {
	if v != nil {
		_u.SetGstin(*v)
	}
	return _u
}

// ClearGstin clears the value of the "gstin" field.
func (_u *PayingAuthorityUpdateOne) ClearGstin() *PayingAuthorityUpdateOne {
	_u.mutation.ClearGstin()
	return _u
}

// SetAddress sets the "address" field.
func (_u *PayingAuthorityUpdateOne) SetAddress(v string) *PayingAuthorityUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *PayingAuthorityUpdateOne) SetNillableAddress(v *string) *PayingAuthorityUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *PayingAuthorityUpdateOne) ClearAddress() *PayingAuthorityUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *PayingAuthorityUpdateOne) SetContract(v *Contract) *PayingAuthorityUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the PayingAuthorityMutation object of the builder.
func (_u *PayingAuthorityUpdateOne) Mutation() *PayingAuthorityMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *PayingAuthorityUpdateOne) ClearContract() *PayingAuthorityUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the PayingAuthorityUpdate builder.
func (_u *PayingAuthorityUpdateOne) Where(ps ...predicate.PayingAuthority) *PayingAuthorityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PayingAuthorityUpdateOne) Select(field string, fields ...string) *PayingAuthorityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PayingAuthority entity.
func (_u *PayingAuthorityUpdateOne) Save(ctx context.Context) (*PayingAuthority, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayingAuthorityUpdateOne) SaveX(ctx context.Context) *PayingAuthority {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PayingAuthorityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayingAuthorityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayingAuthorityUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := payingauthority.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMode(); ok {
		if err := payingauthority.PaymentModeValidator(v); err != nil {
			return &ValidationError{Name: "payment_mode", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.payment_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Designation(); ok {
		if err := payingauthority.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.designation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := payingauthority.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gstin(); ok {
		if err := payingauthority.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.gstin": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PayingAuthority.contract"`)
	}
	return nil
}

func (_u *PayingAuthorityUpdateOne) sqlSave(ctx context.Context) (_node *PayingAuthority, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payingauthority.Table, payingauthority.Columns, sqlgraph.NewFieldSpec(payingauthority.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PayingAuthority.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payingauthority.FieldID)
		for _, f := range fields {
			if !payingauthority.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != payingauthority.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(payingauthority.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(payingauthority.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMode(); ok {
		_spec.SetField(payingauthority.FieldPaymentMode, field.TypeString, value)
	}
	if _u.mutation.PaymentModeCleared() {
		_spec.ClearField(payingauthority.FieldPaymentMode, field.TypeString)
	}
	if value, ok := _u.mutation.Designation(); ok {
		_spec.SetField(payingauthority.FieldDesignation, field.TypeString, value)
	}
	if _u.mutation.DesignationCleared() {
		_spec.ClearField(payingauthority.FieldDesignation, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(payingauthority.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(payingauthority.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Gstin(); ok {
		_spec.SetField(payingauthority.FieldGstin, field.TypeString, value)
	}
	if _u.mutation.GstinCleared() {
		_spec.ClearField(payingauthority.FieldGstin, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(payingauthority.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(payingauthority.FieldAddress, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payingauthority.ContractTable,
			Columns: []string{payingauthority.ContractColumn},
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
			Table:   payingauthority.ContractTable,
			Columns: []string{payingauthority.ContractColumn},
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
	_node = &PayingAuthority{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payingauthority.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
