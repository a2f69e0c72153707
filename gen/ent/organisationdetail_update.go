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
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// OrganisationDetailUpdate is the builder for updating OrganisationDetail entities.
type OrganisationDetailUpdate struct {
	config
	hooks    []Hook
	mutation *OrganisationDetailMutation
}

// Where appends a list predicates to the OrganisationDetailUpdate builder.
func (_u *OrganisationDetailUpdate) Where(ps ...predicate.OrganisationDetail) *OrganisationDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *OrganisationDetailUpdate) SetContractID(v uuid.UUID) *OrganisationDetailUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *OrganisationDetailUpdate) SetNillableContractID(v *uuid.UUID) *OrganisationDetailUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *OrganisationDetailUpdate) SetType(v string) *OrganisationDetailUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *OrganisationDetailUpdate) SetNillableType(v *string) *OrganisationDetailUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *OrganisationDetailUpdate) ClearType() *OrganisationDetailUpdate {
	_u.mutation.ClearType()
	return _u
}

// SetMinistry sets the "ministry" field.
func (_u *OrganisationDetailUpdate) SetMinistry(v string) *OrganisationDetailUpdate {
	_u.mutation.SetMinistry(v)
	return _u
}

// SetNillableMinistry sets the "ministry" field if the given value is not nil.
func (_u *OrganisationDetailUpdate) SetNillableMinistry(v *string) *OrganisationDetailUpdate {
	if v != nil {
		_u.SetMinistry(*v)
	}
	return _u
}

// ClearMinistry clears the value of the "ministry" field.
func (_u *OrganisationDetailUpdate) ClearMinistry() *OrganisationDetailUpdate {
	_u.mutation.ClearMinistry()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *OrganisationDetailUpdate) SetDepartment(v string) *OrganisationDetailUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *OrganisationDetailUpdate) SetNillableDepartment(v *string) *OrganisationDetailUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *OrganisationDetailUpdate) ClearDepartment() *OrganisationDetailUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetOrganisationName sets the "organisation_name" field.
func (_u *OrganisationDetailUpdate) SetOrganisationName(v string) *OrganisationDetailUpdate {
	_u.mutation.SetOrganisationName(v)
	return _u
}

// SetNillableOrganisationName sets the "organisation_name" field if the given value is not nil.
func (_u *OrganisationDetailUpdate) SetNillableOrganisationName(v *string) *OrganisationDetailUpdate {
	if v != nil {
		_u.SetOrganisationName(*v)
	}
	return _u
}

// ClearOrganisationName clears the value of the "organisation_name" field.
func (_u *OrganisationDetailUpdate) ClearOrganisationName() *OrganisationDetailUpdate {
	_u.mutation.ClearOrganisationName()
	return _u
}

// SetOfficeZone sets the "office_zone" field.
func (_u *OrganisationDetailUpdate) SetOfficeZone(v string) *OrganisationDetailUpdate {
	_u.mutation.SetOfficeZone(v)
	return _u
}

// SetNillableOfficeZone sets the "office_zone" field if the given value is not nil.
func (_u *OrganisationDetailUpdate) SetNillableOfficeZone(v *string) *OrganisationDetailUpdate {
	if v != nil {
		_u.SetOfficeZone(*v)
	}
	return _u
}

// ClearOfficeZone clears the value of the "office_zone" field.
func (_u *OrganisationDetailUpdate) ClearOfficeZone() *OrganisationDetailUpdate {
	_u.mutation.ClearOfficeZone()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *OrganisationDetailUpdate) SetContract(v *Contract) *OrganisationDetailUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the OrganisationDetailMutation object of the builder.
func (_u *OrganisationDetailUpdate) Mutation() *OrganisationDetailMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *OrganisationDetailUpdate) ClearContract() *OrganisationDetailUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrganisationDetailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganisationDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrganisationDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganisationDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganisationDetailUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := organisationdetail.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ministry(); ok {
		if err := organisationdetail.MinistryValidator(v); err != nil {
			return &ValidationError{Name: "ministry", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.ministry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := organisationdetail.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganisationName(); ok {
		if err := organisationdetail.OrganisationNameValidator(v); err != nil {
			return &ValidationError{Name: "organisation_name", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.organisation_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OfficeZone(); ok {
		if err := organisationdetail.OfficeZoneValidator(v); err != nil {
			return &ValidationError{Name: "office_zone", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.office_zone": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrganisationDetail.contract"`)
	}
	return nil
}

func (_u *OrganisationDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organisationdetail.Table, organisationdetail.Columns, sqlgraph.NewFieldSpec(organisationdetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(organisationdetail.FieldType, field.TypeString, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(organisationdetail.FieldType, field.TypeString)
	}
	if value, ok := _u.mutation.Ministry(); ok {
		_spec.SetField(organisationdetail.FieldMinistry, field.TypeString, value)
	}
	if _u.mutation.MinistryCleared() {
		_spec.ClearField(organisationdetail.FieldMinistry, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(organisationdetail.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(organisationdetail.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.OrganisationName(); ok {
		_spec.SetField(organisationdetail.FieldOrganisationName, field.TypeString, value)
	}
	if _u.mutation.OrganisationNameCleared() {
		_spec.ClearField(organisationdetail.FieldOrganisationName, field.TypeString)
	}
	if value, ok := _u.mutation.OfficeZone(); ok {
		_spec.SetField(organisationdetail.FieldOfficeZone, field.TypeString, value)
	}
	if _u.mutation.OfficeZoneCleared() {
		_spec.ClearField(organisationdetail.FieldOfficeZone, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   organisationdetail.ContractTable,
			Columns: []string{organisationdetail.ContractColumn},
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
			Table:   organisationdetail.ContractTable,
			Columns: []string{organisationdetail.ContractColumn},
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
			err = &NotFoundError{organisationdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrganisationDetailUpdateOne is the builder for updating a single OrganisationDetail entity.
type OrganisationDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrganisationDetailMutation
}

// SetContractID sets the "contract_id" field.
func (_u *OrganisationDetailUpdateOne) SetContractID(v uuid.UUID) *OrganisationDetailUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *OrganisationDetailUpdateOne) SetNillableContractID(v *uuid.UUID) *OrganisationDetailUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *OrganisationDetailUpdateOne) SetType(v string) *OrganisationDetailUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *OrganisationDetailUpdateOne) SetNillableType(v *string) *OrganisationDetailUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// ClearType clears the value of the "type" field.
func (_u *OrganisationDetailUpdateOne) ClearType() *OrganisationDetailUpdateOne {
	_u.mutation.ClearType()
	return _u
}

// SetMinistry sets the "ministry" field.
func (_u *OrganisationDetailUpdateOne) SetMinistry(v string) *OrganisationDetailUpdateOne {
	_u.mutation.SetMinistry(v)
	return _u
}

// SetNillableMinistry sets the "ministry" field if the given value is not nil.
func (_u *OrganisationDetailUpdateOne) SetNillableMinistry(v *string) *OrganisationDetailUpdateOne {
	if v != nil {
		_u.SetMinistry(*v)
	}
	return _u
}

// ClearMinistry clears the value of the "ministry" field.
func (_u *OrganisationDetailUpdateOne) ClearMinistry() *OrganisationDetailUpdateOne {
	_u.mutation.ClearMinistry()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *OrganisationDetailUpdateOne) SetDepartment(v string) *OrganisationDetailUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *OrganisationDetailUpdateOne) SetNillableDepartment(v *string) *OrganisationDetailUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *OrganisationDetailUpdateOne) ClearDepartment() *OrganisationDetailUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetOrganisationName sets the "organisation_name" field.
func (_u *OrganisationDetailUpdateOne) SetOrganisationName(v string) *OrganisationDetailUpdateOne {
	_u.mutation.SetOrganisationName(v)
	return _u
}

// SetNillableOrganisationName sets the "organisation_name" field if the given value is not nil.
func (_u *OrganisationDetailUpdateOne) SetNillableOrganisationName(v *string) *OrganisationDetailUpdateOne {
	if v != nil {
		_u.SetOrganisationName(*v)
	}
	return _u
}

// ClearOrganisationName clears the value of the "organisation_name" field.
func (_u *OrganisationDetailUpdateOne) ClearOrganisationName() *OrganisationDetailUpdateOne {
	_u.mutation.ClearOrganisationName()
	return _u
}

// SetOfficeZone sets the "office_zone" field.
func (_u *OrganisationDetailUpdateOne) SetOfficeZone(v string) *OrganisationDetailUpdateOne {
	_u.mutation.SetOfficeZone(v)
	return _u
}

// SetNillableOfficeZone sets the "office_zone" field if the given value is not nil.
func (_u *OrganisationDetailUpdateOne) SetNillableOfficeZone(v *string) *OrganisationDetailUpdateOne {
	if v != nil {
		_u.SetOfficeZone(*v)
	}
	return _u
}

// ClearOfficeZone clears the value of the "office_zone" field.
func (_u *OrganisationDetailUpdateOne) ClearOfficeZone() *OrganisationDetailUpdateOne {
	_u.mutation.ClearOfficeZone()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *OrganisationDetailUpdateOne) SetContract(v *Contract) *OrganisationDetailUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the OrganisationDetailMutation object of the builder.
func (_u *OrganisationDetailUpdateOne) Mutation() *OrganisationDetailMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *OrganisationDetailUpdateOne) ClearContract() *OrganisationDetailUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the OrganisationDetailUpdate builder.
func (_u *OrganisationDetailUpdateOne) Where(ps ...predicate.OrganisationDetail) *OrganisationDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrganisationDetailUpdateOne) Select(field string, fields ...string) *OrganisationDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrganisationDetail entity.
func (_u *OrganisationDetailUpdateOne) Save(ctx context.Context) (*OrganisationDetail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrganisationDetailUpdateOne) SaveX(ctx context.Context) *OrganisationDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrganisationDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrganisationDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrganisationDetailUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := organisationdetail.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ministry(); ok {
		if err := organisationdetail.MinistryValidator(v); err != nil {
			return &ValidationError{Name: "ministry", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.ministry": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := organisationdetail.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganisationName(); ok {
		if err := organisationdetail.OrganisationNameValidator(v); err != nil {
			return &ValidationError{Name: "organisation_name", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.organisation_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OfficeZone(); ok {
		if err := organisationdetail.OfficeZoneValidator(v); err != nil {
			return &ValidationError{Name: "office_zone", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.office_zone": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrganisationDetail.contract"`)
	}
	return nil
}

func (_u *OrganisationDetailUpdateOne) sqlSave(ctx context.Context) (_node *OrganisationDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(organisationdetail.Table, organisationdetail.Columns, sqlgraph.NewFieldSpec(organisationdetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrganisationDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, organisationdetail.FieldID)
		for _, f := range fields {
			if !organisationdetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != organisationdetail.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(organisationdetail.FieldType, field.TypeString, value)
	}
	if _u.mutation.TypeCleared() {
		_spec.ClearField(organisationdetail.FieldType, field.TypeString)
	}
	if value, ok := _u.mutation.Ministry(); ok {
		_spec.SetField(organisationdetail.FieldMinistry, field.TypeString, value)
	}
	if _u.mutation.MinistryCleared() {
		_spec.ClearField(organisationdetail.FieldMinistry, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(organisationdetail.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(organisationdetail.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.OrganisationName(); ok {
		_spec.SetField(organisationdetail.FieldOrganisationName, field.TypeString, value)
	}
	if _u.mutation.OrganisationNameCleared() {
		_spec.ClearField(organisationdetail.FieldOrganisationName, field.TypeString)
	}
	if value, ok := _u.mutation.OfficeZone(); ok {
		_spec.SetField(organisationdetail.FieldOfficeZone, field.TypeString, value)
	}
	if _u.mutation.OfficeZoneCleared() {
		_spec.ClearField(organisationdetail.FieldOfficeZone, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   organisationdetail.ContractTable,
			Columns: []string{organisationdetail.ContractColumn},
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
			Table:   organisationdetail.ContractTable,
			Columns: []string{organisationdetail.ContractColumn},
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
	_node = &OrganisationDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{organisationdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
