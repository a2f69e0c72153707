// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/extractjob"
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
	"github.com/google/uuid"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetContractNo sets the "contract_no" field.
func (_c *ContractCreate) SetContractNo(v string) *ContractCreate {
	_c.mutation.SetContractNo(v)
	return _c
}

// SetGeneratedDate sets the "generated_date" field.
func (_c *ContractCreate) SetGeneratedDate(v time.Time) *ContractCreate {
	_c.mutation.SetGeneratedDate(v)
	return _c
}

// SetNillableGeneratedDate sets the "generated_date" field if the given value is not nil.
func (_c *ContractCreate) SetNillableGeneratedDate(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetGeneratedDate(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ContractCreate) SetRawText(v string) *ContractCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *ContractCreate) SetNillableRawText(v *string) *ContractCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ContractCreate) SetEmbedding(v []float32) *ContractCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrganisationID sets the "organisation" edge to the OrganisationDetail entity by ID.
func (_c *ContractCreate) SetOrganisationID(id uuid.UUID) *ContractCreate {
	_c.mutation.SetOrganisationID(id)
	return _c
}

// SetNillableOrganisationID sets the "organisation" edge to the OrganisationDetail entity by ID if the given value is not nil.
func (_c *ContractCreate) SetNillableOrganisationID(id *uuid.UUID) *ContractCreate {
	if id != nil {
		_c = _c.SetOrganisationID(*id)
	}
	return _c
}

// SetOrganisation sets the "organisation" edge to the OrganisationDetail entity.
func (_c *ContractCreate) SetOrganisation(v *OrganisationDetail) *ContractCreate {
	return _c.SetOrganisationID(v.ID)
}

// SetBuyerID sets the "buyer" edge to the BuyerDetail entity by ID.
func (_c *ContractCreate) SetBuyerID(id uuid.UUID) *ContractCreate {
	_c.mutation.SetBuyerID(id)
	return _c
}

// SetNillableBuyerID sets the "buyer" edge to the BuyerDetail entity by ID if the given value is not nil.
func (_c *ContractCreate) SetNillableBuyerID(id *uuid.UUID) *ContractCreate {
	if id != nil {
		_c = _c.SetBuyerID(*id)
	}
	return _c
}

// SetBuyer sets the "buyer" edge to the BuyerDetail entity.
func (_c *ContractCreate) SetBuyer(v *BuyerDetail) *ContractCreate {
	return _c.SetBuyerID(v.ID)
}

// SetFinancialApprovalID sets the "financial_approval" edge to the FinancialApproval entity by ID.
func (_c *ContractCreate) SetFinancialApprovalID(id uuid.UUID) *ContractCreate {
	_c.mutation.SetFinancialApprovalID(id)
	return _c
}

// SetNillableFinancialApprovalID sets the "financial_approval" edge to the FinancialApproval entity by ID if the given value is not nil.
func (_c *ContractCreate) SetNillableFinancialApprovalID(id *uuid.UUID) *ContractCreate {
	if id != nil {
		_c = _c.SetFinancialApprovalID(*id)
	}
	return _c
}

// SetFinancialApproval sets the "financial_approval" edge to the FinancialApproval entity.
func (_c *ContractCreate) SetFinancialApproval(v *FinancialApproval) *ContractCreate {
	return _c.SetFinancialApprovalID(v.ID)
}

// SetPayingAuthorityID sets the "paying_authority" edge to the PayingAuthority entity by ID.
func (_c *ContractCreate) SetPayingAuthorityID(id uuid.UUID) *ContractCreate {
	_c.mutation.SetPayingAuthorityID(id)
	return _c
}

// SetNillablePayingAuthorityID sets the "paying_authority" edge to the PayingAuthority entity by ID if the given value is not nil.
func (_c *ContractCreate) SetNillablePayingAuthorityID(id *uuid.UUID) *ContractCreate {
	if id != nil {
		_c = _c.SetPayingAuthorityID(*id)
	}
	return _c
}

// SetPayingAuthority sets the "paying_authority" edge to the PayingAuthority entity.
func (_c *ContractCreate) SetPayingAuthority(v *PayingAuthority) *ContractCreate {
	return _c.SetPayingAuthorityID(v.ID)
}

// SetSellerID sets the "seller" edge to the SellerDetail entity by ID.
func (_c *ContractCreate) SetSellerID(id uuid.UUID) *ContractCreate {
	_c.mutation.SetSellerID(id)
	return _c
}

// SetNillableSellerID sets the "seller" edge to the SellerDetail entity by ID if the given value is not nil.
func (_c *ContractCreate) SetNillableSellerID(id *uuid.UUID) *ContractCreate {
	if id != nil {
		_c = _c.SetSellerID(*id)
	}
	return _c
}

// SetSeller sets the "seller" edge to the SellerDetail entity.
func (_c *ContractCreate) SetSeller(v *SellerDetail) *ContractCreate {
	return _c.SetSellerID(v.ID)
}

// SetEpbgID sets the "epbg" edge to the EPBGDetail entity by ID.
func (_c *ContractCreate) SetEpbgID(id uuid.UUID) *ContractCreate {
	_c.mutation.SetEpbgID(id)
	return _c
}

// SetNillableEpbgID sets the "epbg" edge to the EPBGDetail entity by ID if the given value is not nil.
func (_c *ContractCreate) SetNillableEpbgID(id *uuid.UUID) *ContractCreate {
	if id != nil {
		_c = _c.SetEpbgID(*id)
	}
	return _c
}

// SetEpbg sets the "epbg" edge to the EPBGDetail entity.
func (_c *ContractCreate) SetEpbg(v *EPBGDetail) *ContractCreate {
	return _c.SetEpbgID(v.ID)
}

// AddProductIDs adds the "products" edge to the Product entity by IDs.
func (_c *ContractCreate) AddProductIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddProductIDs(ids...)
	return _c
}

// AddProducts adds the "products" edges to the Product entity.
func (_c *ContractCreate) AddProducts(v ...*Product) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProductIDs(ids...)
}

// AddTermIDs adds the "terms" edge to the TermsAndCondition entity by IDs.
func (_c *ContractCreate) AddTermIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddTermIDs(ids...)
	return _c
}

// AddTerms adds the "terms" edges to the TermsAndCondition entity.
func (_c *ContractCreate) AddTerms(v ...*TermsAndCondition) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTermIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *ContractCreate) AddJobIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *ContractCreate) AddJobs(v ...*ExtractJob) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.ContractNo(); !ok {
		return &ValidationError{Name: "contract_no", err: errors.New(`ent: missing required field "Contract.contract_no"`)}
	}
	if v, ok := _c.mutation.ContractNo(); ok {
		if err := contract.ContractNoValidator(v); err != nil {
			return &ValidationError{Name: "contract_no", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_no": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContractNo(); ok {
		_spec.SetField(contract.FieldContractNo, field.TypeString, value)
		_node.ContractNo = value
	}
	if value, ok := _c.mutation.GeneratedDate(); ok {
		_spec.SetField(contract.FieldGeneratedDate, field.TypeTime, value)
		_node.GeneratedDate = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(contract.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(contract.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OrganisationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   contract.OrganisationTable,
			Columns: []string{contract.OrganisationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organisationdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BuyerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   contract.BuyerTable,
			Columns: []string{contract.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(buyerdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FinancialApprovalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   contract.FinancialApprovalTable,
			Columns: []string{contract.FinancialApprovalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financialapproval.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PayingAuthorityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   contract.PayingAuthorityTable,
			Columns: []string{contract.PayingAuthorityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payingauthority.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SellerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   contract.SellerTable,
			Columns: []string{contract.SellerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sellerdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EpbgIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   contract.EpbgTable,
			Columns: []string{contract.EpbgColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(epbgdetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProductsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.ProductsTable,
			Columns: []string{contract.ProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TermsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.TermsTable,
			Columns: []string{contract.TermsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(termsandcondition.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
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

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
