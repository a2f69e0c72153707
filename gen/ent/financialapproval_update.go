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
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// FinancialApprovalUpdate is the builder for updating FinancialApproval entities.
type FinancialApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *FinancialApprovalMutation
}

// Where appends a list predicates to the FinancialApprovalUpdate builder.
func (_u *FinancialApprovalUpdate) Where(ps ...predicate.FinancialApproval) *FinancialApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *FinancialApprovalUpdate) SetContractID(v uuid.UUID) *FinancialApprovalUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *FinancialApprovalUpdate) SetNillableContractID(v *uuid.UUID) *FinancialApprovalUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetIfdConcurrence sets the "ifd_concurrence" field.
func (_u *FinancialApprovalUpdate) SetIfdConcurrence(v bool) *FinancialApprovalUpdate {
	_u.mutation.SetIfdConcurrence(v)
	return _u
}

// SetNillableIfdConcurrence sets the "ifd_concurrence" field if the given value is not nil.
func (_u *FinancialApprovalUpdate) SetNillableIfdConcurrence(v *bool) *FinancialApprovalUpdate {
	if v != nil {
		_u.SetIfdConcurrence(*v)
	}
	return _u
}

// SetAdminApprovalDesignation sets the "admin_approval_designation" field.
func (_u *FinancialApprovalUpdate) SetAdminApprovalDesignation(v string) *FinancialApprovalUpdate {
	_u.mutation.SetAdminApprovalDesignation(v)
	return _u
}

// SetNillableAdminApprovalDesignation sets the "admin_approval_designation" field if the given value is not nil.
func (_u *FinancialApprovalUpdate) SetNillableAdminApprovalDesignation(v *string) *FinancialApprovalUpdate {
	if v != nil {
		_u.SetAdminApprovalDesignation(*v)
	}
	return _u
}

// ClearAdminApprovalDesignation clears the value of the "admin_approval_designation" field.
func (_u *FinancialApprovalUpdate) ClearAdminApprovalDesignation() *FinancialApprovalUpdate {
	_u.mutation.ClearAdminApprovalDesignation()
	return _u
}

// SetFinancialApprovalDesignation sets the "financial_approval_designation" field.
func (_u *FinancialApprovalUpdate) SetFinancialApprovalDesignation(v string) *FinancialApprovalUpdate {
	_u.mutation.SetFinancialApprovalDesignation(v)
	return _u
}

// SetNillableFinancialApprovalDesignation sets the "financial_approval_designation" field if the given value is not nil.
func (_u *FinancialApprovalUpdate) SetNillableFinancialApprovalDesignation(v *string) *FinancialApprovalUpdate {
	if v != nil {
		_u.SetFinancialApprovalDesignation(*v)
	}
	return _u
}

// ClearFinancialApprovalDesignation clears the value of the "financial_approval_designation" field.
func (_u *FinancialApprovalUpdate) ClearFinancialApprovalDesignation() *FinancialApprovalUpdate {
	_u.mutation.ClearFinancialApprovalDesignation()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *FinancialApprovalUpdate) SetContract(v *Contract) *FinancialApprovalUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the FinancialApprovalMutation object of the builder.
func (_u *FinancialApprovalUpdate) Mutation() *FinancialApprovalMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *FinancialApprovalUpdate) ClearContract() *FinancialApprovalUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FinancialApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FinancialApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinancialApprovalUpdate) check() error {
	if v, ok := _u.mutation.AdminApprovalDesignation(); ok {
		if err := financialapproval.AdminApprovalDesignationValidator(v); err != nil {
			return &ValidationError{Name: "admin_approval_designation", err: fmt.Errorf(`ent: validator failed for field "FinancialApproval.admin_approval_designation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinancialApprovalDesignation(); ok {
		if err := financialapproval.FinancialApprovalDesignationValidator(v); err != nil {
			return &ValidationError{Name: "financial_approval_designation", err: fmt.Errorf(`ent: validator failed for field "FinancialApproval.financial_approval_designation": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialApproval.contract"`)
	}
	return nil
}

func (_u *FinancialApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financialapproval.Table, financialapproval.Columns, sqlgraph.NewFieldSpec(financialapproval.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IfdConcurrence(); ok {
		_spec.SetField(financialapproval.FieldIfdConcurrence, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AdminApprovalDesignation(); ok {
		_spec.SetField(financialapproval.FieldAdminApprovalDesignation, field.TypeString, value)
	}
	if _u.mutation.AdminApprovalDesignationCleared() {
		_spec.ClearField(financialapproval.FieldAdminApprovalDesignation, field.TypeString)
	}
	if value, ok := _u.mutation.FinancialApprovalDesignation(); ok {
		_spec.SetField(financialapproval.FieldFinancialApprovalDesignation, field.TypeString, value)
	}
	if _u.mutation.FinancialApprovalDesignationCleared() {
		_spec.ClearField(financialapproval.FieldFinancialApprovalDesignation, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   financialapproval.ContractTable,
			Columns: []string{financialapproval.ContractColumn},
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
			Table:   financialapproval.ContractTable,
			Columns: []string{financialapproval.ContractColumn},
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
			err = &NotFoundError{financialapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FinancialApprovalUpdateOne is the builder for updating a single FinancialApproval entity.
type FinancialApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FinancialApprovalMutation
}

// SetContractID sets the "contract_id" field.
func (_u *FinancialApprovalUpdateOne) SetContractID(v uuid.UUID) *FinancialApprovalUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *FinancialApprovalUpdateOne) SetNillableContractID(v *uuid.UUID) *FinancialApprovalUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetIfdConcurrence sets the "ifd_concurrence" field.
func (_u *FinancialApprovalUpdateOne) SetIfdConcurrence(v bool) *FinancialApprovalUpdateOne {
	_u.mutation.SetIfdConcurrence(v)
	return _u
}

// SetNillableIfdConcurrence sets the "ifd_concurrence" field if the given value is not nil.
func (_u *FinancialApprovalUpdateOne) SetNillableIfdConcurrence(v *bool) *FinancialApprovalUpdateOne {
	if v != nil {
		_u.SetIfdConcurrence(*v)
	}
	return _u
}

// SetAdminApprovalDesignation sets the "admin_approval_designation" field.
func (_u *FinancialApprovalUpdateOne) SetAdminApprovalDesignation(v string) *FinancialApprovalUpdateOne {
	_u.mutation.SetAdminApprovalDesignation(v)
	return _u
}

// SetNillableAdminApprovalDesignation sets the "admin_approval_designation" field if the given value is not nil.
func (_u *FinancialApprovalUpdateOne) SetNillableAdminApprovalDesignation(v *string) *FinancialApprovalUpdateOne {
	if v != nil {
		_u.SetAdminApprovalDesignation(*v)
	}
	return _u
}

// ClearAdminApprovalDesignation clears the value of the "admin_approval_designation" field.
func (_u *FinancialApprovalUpdateOne) ClearAdminApprovalDesignation() *FinancialApprovalUpdateOne {
	_u.mutation.ClearAdminApprovalDesignation()
	return _u
}

// SetFinancialApprovalDesignation sets the "financial_approval_designation" field.
func (_u *FinancialApprovalUpdateOne) SetFinancialApprovalDesignation(v string) *FinancialApprovalUpdateOne {
	_u.mutation.SetFinancialApprovalDesignation(v)
	return _u
}

// SetNillableFinancialApprovalDesignation sets the "financial_approval_designation" field if the given value is not nil.
func (_u *FinancialApprovalUpdateOne) SetNillableFinancialApprovalDesignation(v *string) *FinancialApprovalUpdateOne {
	if v != nil {
		_u.SetFinancialApprovalDesignation(*v)
	}
	return _u
}

// ClearFinancialApprovalDesignation clears the value of the "financial_approval_designation" field.
func (_u *FinancialApprovalUpdateOne) ClearFinancialApprovalDesignation() *FinancialApprovalUpdateOne {
	_u.mutation.ClearFinancialApprovalDesignation()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *FinancialApprovalUpdateOne) SetContract(v *Contract) *FinancialApprovalUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the FinancialApprovalMutation object of the builder.
func (_u *FinancialApprovalUpdateOne) Mutation() *FinancialApprovalMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *FinancialApprovalUpdateOne) ClearContract() *FinancialApprovalUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the FinancialApprovalUpdate builder.
func (_u *FinancialApprovalUpdateOne) Where(ps ...predicate.FinancialApproval) *FinancialApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FinancialApprovalUpdateOne) Select(field string, fields ...string) *FinancialApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FinancialApproval entity.
func (_u *FinancialApprovalUpdateOne) Save(ctx context.Context) (*FinancialApproval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinancialApprovalUpdateOne) SaveX(ctx context.Context) *FinancialApproval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FinancialApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinancialApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinancialApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.AdminApprovalDesignation(); ok {
		if err := financialapproval.AdminApprovalDesignationValidator(v); err != nil {
			return &ValidationError{Name: "admin_approval_designation", err: fmt.Errorf(`ent: validator failed for field "FinancialApproval.admin_approval_designation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FinancialApprovalDesignation(); ok {
		if err := financialapproval.FinancialApprovalDesignationValidator(v); err != nil {
			return &ValidationError{Name: "financial_approval_designation", err: fmt.Errorf(`ent: validator failed for field "FinancialApproval.financial_approval_designation": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinancialApproval.contract"`)
	}
	return nil
}

func (_u *FinancialApprovalUpdateOne) sqlSave(ctx context.Context) (_node *FinancialApproval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financialapproval.Table, financialapproval.Columns, sqlgraph.NewFieldSpec(financialapproval.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FinancialApproval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, financialapproval.FieldID)
		for _, f := range fields {
			if !financialapproval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != financialapproval.FieldID {
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
	if value, ok := _u.mutation.IfdConcurrence(); ok {
		_spec.SetField(financialapproval.FieldIfdConcurrence, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AdminApprovalDesignation(); ok {
		_spec.SetField(financialapproval.FieldAdminApprovalDesignation, field.TypeString, value)
	}
	if _u.mutation.AdminApprovalDesignationCleared() {
		_spec.ClearField(financialapproval.FieldAdminApprovalDesignation, field.TypeString)
	}
	if value, ok := _u.mutation.FinancialApprovalDesignation(); ok {
		_spec.SetField(financialapproval.FieldFinancialApprovalDesignation, field.TypeString, value)
	}
	if _u.mutation.FinancialApprovalDesignationCleared() {
		_spec.ClearField(financialapproval.FieldFinancialApprovalDesignation, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   financialapproval.ContractTable,
			Columns: []string{financialapproval.ContractColumn},
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
			Table:   financialapproval.ContractTable,
			Columns: []string{financialapproval.ContractColumn},
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
	_node = &FinancialApproval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financialapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
