// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/google/uuid"
)

// OrganisationDetailCreate is the builder for creating a OrganisationDetail entity.
type OrganisationDetailCreate struct {
	config
	mutation *OrganisationDetailMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *OrganisationDetailCreate) SetContractID(v uuid.UUID) *OrganisationDetailCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *OrganisationDetailCreate) SetType(v string) *OrganisationDetailCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *OrganisationDetailCreate) SetNillableType(v *string) *OrganisationDetailCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetMinistry sets the "ministry" field.
func (_c *OrganisationDetailCreate) SetMinistry(v string) *OrganisationDetailCreate {
	_c.mutation.SetMinistry(v)
	return _c
}

// SetNillableMinistry sets the "ministry" field if the given value is not nil.
func (_c *OrganisationDetailCreate) SetNillableMinistry(v *string) *OrganisationDetailCreate {
	if v != nil {
		_c.SetMinistry(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *OrganisationDetailCreate) SetDepartment(v string) *OrganisationDetailCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *OrganisationDetailCreate) SetNillableDepartment(v *string) *OrganisationDetailCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetOrganisationName sets the "organisation_name" field.
func (_c *OrganisationDetailCreate) SetOrganisationName(v string) *OrganisationDetailCreate {
	_c.mutation.SetOrganisationName(v)
	return _c
}

// SetNillableOrganisationName sets the "organisation_name" field if the given value is not nil.
func (_c *OrganisationDetailCreate) SetNillableOrganisationName(v *string) *OrganisationDetailCreate {
	if v != nil {
		_c.SetOrganisationName(*v)
	}
	return _c
}

// SetOfficeZone sets the "office_zone" field.
func (_c *OrganisationDetailCreate) SetOfficeZone(v string) *OrganisationDetailCreate {
	_c.mutation.SetOfficeZone(v)
	return _c
}

// SetNillableOfficeZone sets the "office_zone" field if the given value is not nil.
func (_c *OrganisationDetailCreate) SetNillableOfficeZone(v *string) *OrganisationDetailCreate {
	if v != nil {
		_c.SetOfficeZone(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrganisationDetailCreate) SetID(v uuid.UUID) *OrganisationDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrganisationDetailCreate) SetNillableID(v *uuid.UUID) *OrganisationDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *OrganisationDetailCreate) SetContract(v *Contract) *OrganisationDetailCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the OrganisationDetailMutation object of the builder.
func (_c *OrganisationDetailCreate) Mutation() *OrganisationDetailMutation {
	return _c.mutation
}

// Save creates the OrganisationDetail in the database.
func (_c *OrganisationDetailCreate) Save(ctx context.Context) (*OrganisationDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrganisationDetailCreate) SaveX(ctx context.Context) *OrganisationDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrganisationDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrganisationDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrganisationDetailCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := organisationdetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrganisationDetailCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "OrganisationDetail.contract_id"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := organisationdetail.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Ministry(); ok {
		if err := organisationdetail.MinistryValidator(v); err != nil {
			return &ValidationError{Name: "ministry", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.ministry": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := organisationdetail.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.department": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OrganisationName(); ok {
		if err := organisationdetail.OrganisationNameValidator(v); err != nil {
			return &ValidationError{Name: "organisation_name", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.organisation_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OfficeZone(); ok {
		if err := organisationdetail.OfficeZoneValidator(v); err != nil {
			return &ValidationError{Name: "office_zone", err: fmt.Errorf(`ent: validator failed for field "OrganisationDetail.office_zone": %w`, err)}
		}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "OrganisationDetail.contract"`)}
	}
	return nil
}

func (_c *OrganisationDetailCreate) sqlSave(ctx context.Context) (*OrganisationDetail, error) {
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

func (_c *OrganisationDetailCreate) createSpec() (*OrganisationDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &OrganisationDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(organisationdetail.Table, sqlgraph.NewFieldSpec(organisationdetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(organisationdetail.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Ministry(); ok {
		_spec.SetField(organisationdetail.FieldMinistry, field.TypeString, value)
		_node.Ministry = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(organisationdetail.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.OrganisationName(); ok {
		_spec.SetField(organisationdetail.FieldOrganisationName, field.TypeString, value)
		_node.OrganisationName = value
	}
	if value, ok := _c.mutation.OfficeZone(); ok {
		_spec.SetField(organisationdetail.FieldOfficeZone, field.TypeString, value)
		_node.OfficeZone = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
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
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrganisationDetailCreateBulk is the builder for creating many OrganisationDetail entities in bulk.
type OrganisationDetailCreateBulk struct {
	config
	err      error
	builders []*OrganisationDetailCreate
}

// Save creates the OrganisationDetail entities in the database.
func (_c *OrganisationDetailCreateBulk) Save(ctx context.Context) ([]*OrganisationDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrganisationDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrganisationDetailMutation)
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
func (_c *OrganisationDetailCreateBulk) SaveX(ctx context.Context) []*OrganisationDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrganisationDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrganisationDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
