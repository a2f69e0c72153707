// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/google/uuid"
)

// SellerDetailCreate is the builder for creating a SellerDetail entity.
type SellerDetailCreate struct {
	config
	mutation *SellerDetailMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *SellerDetailCreate) SetContractID(v uuid.UUID) *SellerDetailCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetGemSellerID sets the "gem_seller_id" field.
func (_c *SellerDetailCreate) SetGemSellerID(v string) *SellerDetailCreate {
	_c.mutation.SetGemSellerID(v)
	return _c
}

// SetNillableGemSellerID sets the "gem_seller_id" field if the given value is not nil.
func (_c *SellerDetailCreate) SetNillableGemSellerID(v *string) *SellerDetailCreate {
	if v != nil {
		_c.SetGemSellerID(*v)
	}
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *SellerDetailCreate) SetCompanyName(v string) *SellerDetailCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *SellerDetailCreate) SetNillableCompanyName(v *string) *SellerDetailCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetContactNo sets the "contact_no" field.
func (_c *SellerDetailCreate) SetContactNo(v string) *SellerDetailCreate {
	_c.mutation.SetContactNo(v)
	return _c
}

// SetNillableContactNo sets the "contact_no" field if the given value is not nil.
func (_c *SellerDetailCreate) SetNillableContactNo(v *string) *SellerDetailCreate {
	if v != nil {
		_c.SetContactNo(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *SellerDetailCreate) SetEmail(v string) *SellerDetailCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *SellerDetailCreate) SetNillableEmail(v *string) *SellerDetailCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *SellerDetailCreate) SetAddress(v string) *SellerDetailCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *SellerDetailCreate) SetNillableAddress(v *string) *SellerDetailCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetMsmeRegistrationNumber sets the "msme_registration_number" field.
func (_c *SellerDetailCreate) SetMsmeRegistrationNumber(v string) *SellerDetailCreate {
	_c.mutation.SetMsmeRegistrationNumber(v)
	return _c
}

// SetNillableMsmeRegistrationNumber sets the "msme_registration_number" field if the given value is not nil.
func (_c *SellerDetailCreate) SetNillableMsmeRegistrationNumber(v *string) *SellerDetailCreate {
	if v != nil {
		_c.SetMsmeRegistrationNumber(*v)
	}
	return _c
}

// SetGstin sets the "gstin" field.
func (_c *SellerDetailCreate) SetGstin(v string) *SellerDetailCreate {
	_c.mutation.SetGstin(v)
	return _c
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_c *SellerDetailCreate) SetNillableGstin(v *string) *SellerDetailCreate {
	if v != nil {
		_c.SetGstin(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SellerDetailCreate) SetID(v uuid.UUID) *SellerDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SellerDetailCreate) SetNillableID(v *uuid.UUID) *SellerDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *SellerDetailCreate) SetContract(v *Contract) *SellerDetailCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the SellerDetailMutation object of the builder.
func (_c *SellerDetailCreate) Mutation() *SellerDetailMutation {
	return _c.mutation
}

// Save creates the SellerDetail in the database.
func (_c *SellerDetailCreate) Save(ctx context.Context) (*SellerDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SellerDetailCreate) SaveX(ctx context.Context) *SellerDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SellerDetailCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := sellerdetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SellerDetailCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "SellerDetail.contract_id"`)}
	}
	if v, ok := _c.mutation.GemSellerID(); ok {
		if err := sellerdetail.GemSellerIDValidator(v); err != nil {
			return &ValidationError{Name: "gem_seller_id", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.gem_seller_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := sellerdetail.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.company_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ContactNo(); ok {
		if err := sellerdetail.ContactNoValidator(v); err != nil {
			return &ValidationError{Name: "contact_no", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.contact_no": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := sellerdetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MsmeRegistrationNumber(); ok {
		if err := sellerdetail.MsmeRegistrationNumberValidator(v); err != nil {
			return &ValidationError{Name: "msme_registration_number", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.msme_registration_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gstin(); ok {
		if err := sellerdetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "SellerDetail.gstin": %w`, err)}
		}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "SellerDetail.contract"`)}
	}
	return nil
}

func (_c *SellerDetailCreate) sqlSave(ctx context.Context) (*SellerDetail, error) {
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

func (_c *SellerDetailCreate) createSpec() (*SellerDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &SellerDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sellerdetail.Table, sqlgraph.NewFieldSpec(sellerdetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GemSellerID(); ok {
		_spec.SetField(sellerdetail.FieldGemSellerID, field.TypeString, value)
		_node.GemSellerID = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(sellerdetail.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.ContactNo(); ok {
		_spec.SetField(sellerdetail.FieldContactNo, field.TypeString, value)
		_node.ContactNo = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(sellerdetail.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(sellerdetail.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.MsmeRegistrationNumber(); ok {
		_spec.SetField(sellerdetail.FieldMsmeRegistrationNumber, field.TypeString, value)
		_node.MsmeRegistrationNumber = value
	}
	if value, ok := _c.mutation.Gstin(); ok {
		_spec.SetField(sellerdetail.FieldGstin, field.TypeString, value)
		_node.Gstin = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
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
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SellerDetailCreateBulk is the builder for creating many SellerDetail entities in bulk.
type SellerDetailCreateBulk struct {
	config
	err      error
	builders []*SellerDetailCreate
}

// Save creates the SellerDetail entities in the database.
func (_c *SellerDetailCreateBulk) Save(ctx context.Context) ([]*SellerDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SellerDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SellerDetailMutation)
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
func (_c *SellerDetailCreateBulk) SaveX(ctx context.Context) []*SellerDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SellerDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SellerDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
