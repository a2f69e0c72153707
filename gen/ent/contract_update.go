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
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/extractjob"
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
	"github.com/google/uuid"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractNo sets the "contract_no" field.
func (_u *ContractUpdate) SetContractNo(v string) *ContractUpdate {
	_u.mutation.SetContractNo(v)
	return _u
}

// SetNillableContractNo sets the "contract_no" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableContractNo(v *string) *ContractUpdate {
	if v != nil {
		_u.SetContractNo(*v)
	}
	return _u
}

// SetGeneratedDate sets the "generated_date" field.
func (_u *ContractUpdate) SetGeneratedDate(v time.Time) *ContractUpdate {
	_u.mutation.SetGeneratedDate(v)
	return _u
}

// SetNillableGeneratedDate sets the "generated_date" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableGeneratedDate(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetGeneratedDate(*v)
	}
	return _u
}

// ClearGeneratedDate clears the value of the "generated_date" field.
func (_u *ContractUpdate) ClearGeneratedDate() *ContractUpdate {
	_u.mutation.ClearGeneratedDate()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ContractUpdate) SetRawText(v string) *ContractUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableRawText(v *string) *ContractUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ContractUpdate) ClearRawText() *ContractUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ContractUpdate) SetEmbedding(v []float32) *ContractUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ContractUpdate) AppendEmbedding(v []float32) *ContractUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ContractUpdate) ClearEmbedding() *ContractUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganisationID sets the "organisation" edge to the OrganisationDetail entity by ID.
func (_u *ContractUpdate) SetOrganisationID(id uuid.UUID) *ContractUpdate {
	_u.mutation.SetOrganisationID(id)
	return _u
}

// SetNillableOrganisationID sets the "organisation" edge to the OrganisationDetail entity by ID if the given value is not nil.
func (_u *ContractUpdate) SetNillableOrganisationID(id *uuid.UUID) *ContractUpdate {
	if id != nil {
		_u = _u.SetOrganisationID(*id)
	}
	return _u
}

// SetOrganisation sets the "organisation" edge to the OrganisationDetail entity.
func (_u *ContractUpdate) SetOrganisation(v *OrganisationDetail) *ContractUpdate {
	return _u.SetOrganisationID(v.ID)
}

// SetBuyerID sets the "buyer" edge to the BuyerDetail entity by ID.
func (_u *ContractUpdate) SetBuyerID(id uuid.UUID) *ContractUpdate {
	_u.mutation.SetBuyerID(id)
	return _u
}

// SetNillableBuyerID sets the "buyer" edge to the BuyerDetail entity by ID if the given value is not nil.
func (_u *ContractUpdate) SetNillableBuyerID(id *uuid.UUID) *ContractUpdate {
	if id != nil {
		_u = _u.SetBuyerID(*id)
	}
	return _u
}

// SetBuyer sets the "buyer" edge to the BuyerDetail entity.
func (_u *ContractUpdate) SetBuyer(v *BuyerDetail) *ContractUpdate {
	return _u.SetBuyerID(v.ID)
}

// SetFinancialApprovalID sets the "financial_approval" edge to the FinancialApproval entity by ID.
func (_u *ContractUpdate) SetFinancialApprovalID(id uuid.UUID) *ContractUpdate {
	_u.mutation.SetFinancialApprovalID(id)
	return _u
}

// SetNillableFinancialApprovalID sets the "financial_approval" edge to the FinancialApproval entity by ID if the given value is not nil.
func (_u *ContractUpdate) SetNillableFinancialApprovalID(id *uuid.UUID) *ContractUpdate {
	if id != nil {
		_u = _u.SetFinancialApprovalID(*id)
	}
	return _u
}

// SetFinancialApproval sets the "financial_approval" edge to the FinancialApproval entity.
func (_u *ContractUpdate) SetFinancialApproval(v *FinancialApproval) *ContractUpdate {
	return _u.SetFinancialApprovalID(v.ID)
}

// SetPayingAuthorityID sets the "paying_authority" edge to the PayingAuthority entity by ID.
func (_u *ContractUpdate) SetPayingAuthorityID(id uuid.UUID) *ContractUpdate {
	_u.mutation.SetPayingAuthorityID(id)
	return _u
}

// SetNillablePayingAuthorityID sets the "paying_authority" edge to the PayingAuthority entity by ID if the given value is not nil.
func (_u *ContractUpdate) SetNillablePayingAuthorityID(id *uuid.UUID) *ContractUpdate {
	if id != nil {
		_u = _u.SetPayingAuthorityID(*id)
	}
	return _u
}

// SetPayingAuthority sets the "paying_authority" edge to the PayingAuthority entity.
func (_u *ContractUpdate) SetPayingAuthority(v *PayingAuthority) *ContractUpdate {
	return _u.SetPayingAuthorityID(v.ID)
}

// SetSellerID sets the "seller" edge to the SellerDetail entity by ID.
func (_u *ContractUpdate) SetSellerID(id uuid.UUID) *ContractUpdate {
	_u.mutation.SetSellerID(id)
	return _u
}

// SetNillableSellerID sets the "seller" edge to the SellerDetail entity by ID if the given value is not nil.
func (_u *ContractUpdate) SetNillableSellerID(id *uuid.UUID) *ContractUpdate {
	if id != nil {
		_u = _u.SetSellerID(*id)
	}
	return _u
}

// SetSeller sets the "seller" edge to the SellerDetail entity.
func (_u *ContractUpdate) SetSeller(v *SellerDetail) *ContractUpdate {
	return _u.SetSellerID(v.ID)
}

// SetEpbgID sets the "epbg" edge to the EPBGDetail entity by ID.
func (_u *ContractUpdate) SetEpbgID(id uuid.UUID) *ContractUpdate {
	_u.mutation.SetEpbgID(id)
	return _u
}

// SetNillableEpbgID sets the "epbg" edge to the EPBGDetail entity by ID if the given value is not nil.
func (_u *ContractUpdate) SetNillableEpbgID(id *uuid.UUID) *ContractUpdate {
	if id != nil {
		_u = _u.SetEpbgID(*id)
	}
	return _u
}

// SetEpbg sets the "epbg" edge to the EPBGDetail entity.
func (_u *ContractUpdate) SetEpbg(v *EPBGDetail) *ContractUpdate {
	return _u.SetEpbgID(v.ID)
}

// AddProductIDs adds the "products" edge to the Product entity by IDs.
func (_u *ContractUpdate) AddProductIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddProductIDs(ids...)
	return _u
}

// AddProducts adds the "products" edges to the Product entity.
func (_u *ContractUpdate) AddProducts(v ...*Product) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProductIDs(ids...)
}

// AddTermIDs adds the "terms" edge to the TermsAndCondition entity by IDs.
func (_u *ContractUpdate) AddTermIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddTermIDs(ids...)
	return _u
}

// AddTerms adds the "terms" edges to the TermsAndCondition entity.
func (_u *ContractUpdate) AddTerms(v ...*TermsAndCondition) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTermIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractUpdate) AddJobIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdate) AddJobs(v ...*ExtractJob) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearOrganisation clears the "organisation" edge to the OrganisationDetail entity.
func (_u *ContractUpdate) ClearOrganisation() *ContractUpdate {
	_u.mutation.ClearOrganisation()
	return _u
}

// ClearBuyer clears the "buyer" edge to the BuyerDetail entity.
func (_u *ContractUpdate) ClearBuyer() *ContractUpdate {
	_u.mutation.ClearBuyer()
	return _u
}

// ClearFinancialApproval clears the "financial_approval" edge to the FinancialApproval entity.
func (_u *ContractUpdate) ClearFinancialApproval() *ContractUpdate {
	_u.mutation.ClearFinancialApproval()
	return _u
}

// ClearPayingAuthority clears the "paying_authority" edge to the PayingAuthority entity.
func (_u *ContractUpdate) ClearPayingAuthority() *ContractUpdate {
	_u.mutation.ClearPayingAuthority()
	return _u
}

// ClearSeller clears the "seller" edge to the SellerDetail entity.
func (_u *ContractUpdate) ClearSeller() *ContractUpdate {
	_u.mutation.ClearSeller()
	return _u
}

// ClearEpbg clears the "epbg" edge to the EPBGDetail entity.
func (_u *ContractUpdate) ClearEpbg() *ContractUpdate {
	_u.mutation.ClearEpbg()
	return _u
}

// ClearProducts clears all "products" edges to the Product entity.
func (_u *ContractUpdate) ClearProducts() *ContractUpdate {
	_u.mutation.ClearProducts()
	return _u
}

// RemoveProductIDs removes the "products" edge to Product entities by IDs.
func (_u *ContractUpdate) RemoveProductIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveProductIDs(ids...)
	return _u
}

// RemoveProducts removes "products" edges to Product entities.
func (_u *ContractUpdate) RemoveProducts(v ...*Product) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProductIDs(ids...)
}

// ClearTerms clears all "terms" edges to the TermsAndCondition entity.
func (_u *ContractUpdate) ClearTerms() *ContractUpdate {
	_u.mutation.ClearTerms()
	return _u
}

// RemoveTermIDs removes the "terms" edge to TermsAndCondition entities by IDs.
func (_u *ContractUpdate) RemoveTermIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveTermIDs(ids...)
	return _u
}

// RemoveTerms removes "terms" edges to TermsAndCondition entities.
func (_u *ContractUpdate) RemoveTerms(v ...*TermsAndCondition) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTermIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdate) ClearJobs() *ContractUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractUpdate) RemoveJobIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractUpdate) RemoveJobs(v ...*ExtractJob) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.ContractNo(); ok {
		if err := contract.ContractNoValidator(v); err != nil {
			return &ValidationError{Name: "contract_no", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_no": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContractNo(); ok {
		_spec.SetField(contract.FieldContractNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedDate(); ok {
		_spec.SetField(contract.FieldGeneratedDate, field.TypeTime, value)
	}
	if _u.mutation.GeneratedDateCleared() {
		_spec.ClearField(contract.FieldGeneratedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(contract.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(contract.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(contract.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(contract.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganisationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganisationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinancialApprovalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinancialApprovalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PayingAuthorityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PayingAuthorityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SellerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EpbgCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EpbgIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProductsIDs(); len(nodes) > 0 && !_u.mutation.ProductsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TermsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTermsIDs(); len(nodes) > 0 && !_u.mutation.TermsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TermsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetContractNo sets the "contract_no" field.
func (_u *ContractUpdateOne) SetContractNo(v string) *ContractUpdateOne {
	_u.mutation.SetContractNo(v)
	return _u
}

// SetNillableContractNo sets the "contract_no" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableContractNo(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetContractNo(*v)
	}
	return _u
}

// SetGeneratedDate sets the "generated_date" field.
func (_u *ContractUpdateOne) SetGeneratedDate(v time.Time) *ContractUpdateOne {
	_u.mutation.SetGeneratedDate(v)
	return _u
}

// SetNillableGeneratedDate sets the "generated_date" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableGeneratedDate(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetGeneratedDate(*v)
	}
	return _u
}

// ClearGeneratedDate clears the value of the "generated_date" field.
func (_u *ContractUpdateOne) ClearGeneratedDate() *ContractUpdateOne {
	_u.mutation.ClearGeneratedDate()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ContractUpdateOne) SetRawText(v string) *ContractUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableRawText(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *ContractUpdateOne) ClearRawText() *ContractUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ContractUpdateOne) SetEmbedding(v []float32) *ContractUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ContractUpdateOne) AppendEmbedding(v []float32) *ContractUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ContractUpdateOne) ClearEmbedding() *ContractUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganisationID sets the "organisation" edge to the OrganisationDetail entity by ID.
func (_u *ContractUpdateOne) SetOrganisationID(id uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetOrganisationID(id)
	return _u
}

// SetNillableOrganisationID sets the "organisation" edge to the OrganisationDetail entity by ID if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableOrganisationID(id *uuid.UUID) *ContractUpdateOne {
	if id != nil {
		_u = _u.SetOrganisationID(*id)
	}
	return _u
}

// SetOrganisation sets the "organisation" edge to the OrganisationDetail entity.
func (_u *ContractUpdateOne) SetOrganisation(v *OrganisationDetail) *ContractUpdateOne {
	return _u.SetOrganisationID(v.ID)
}

// SetBuyerID sets the "buyer" edge to the BuyerDetail entity by ID.
func (_u *ContractUpdateOne) SetBuyerID(id uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetBuyerID(id)
	return _u
}

// SetNillableBuyerID sets the "buyer" edge to the BuyerDetail entity by ID if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableBuyerID(id *uuid.UUID) *ContractUpdateOne {
	if id != nil {
		_u = _u.SetBuyerID(*id)
	}
	return _u
}

// SetBuyer sets the "buyer" edge to the BuyerDetail entity.
func (_u *ContractUpdateOne) SetBuyer(v *BuyerDetail) *ContractUpdateOne {
	return _u.SetBuyerID(v.ID)
}

// SetFinancialApprovalID sets the "financial_approval" edge to the FinancialApproval entity by ID.
func (_u *ContractUpdateOne) SetFinancialApprovalID(id uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetFinancialApprovalID(id)
	return _u
}

// SetNillableFinancialApprovalID sets the "financial_approval" edge to the FinancialApproval entity by ID if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFinancialApprovalID(id *uuid.UUID) *ContractUpdateOne {
	if id != nil {
		_u = _u.SetFinancialApprovalID(*id)
	}
	return _u
}

// SetFinancialApproval sets the "financial_approval" edge to the FinancialApproval entity.
func (_u *ContractUpdateOne) SetFinancialApproval(v *FinancialApproval) *ContractUpdateOne {
	return _u.SetFinancialApprovalID(v.ID)
}

// SetPayingAuthorityID sets the "paying_authority" edge to the PayingAuthority entity by ID.
func (_u *ContractUpdateOne) SetPayingAuthorityID(id uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetPayingAuthorityID(id)
	return _u
}

// SetNillablePayingAuthorityID sets the "paying_authority" edge to the PayingAuthority entity by ID if the given value is not nil.
func (_u *ContractUpdateOne) SetNillablePayingAuthorityID(id *uuid.UUID) *ContractUpdateOne {
	if id != nil {
		_u = _u.SetPayingAuthorityID(*id)
	}
	return _u
}

// SetPayingAuthority sets the "paying_authority" edge to the PayingAuthority entity.
func (_u *ContractUpdateOne) SetPayingAuthority(v *PayingAuthority) *ContractUpdateOne {
	return _u.SetPayingAuthorityID(v.ID)
}

// SetSellerID sets the "seller" edge to the SellerDetail entity by ID.
func (_u *ContractUpdateOne) SetSellerID(id uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetSellerID(id)
	return _u
}

// SetNillableSellerID sets the "seller" edge to the SellerDetail entity by ID if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableSellerID(id *uuid.UUID) *ContractUpdateOne {
	if id != nil {
		_u = _u.SetSellerID(*id)
	}
	return _u
}

// SetSeller sets the "seller" edge to the SellerDetail entity.
func (_u *ContractUpdateOne) SetSeller(v *SellerDetail) *ContractUpdateOne {
	return _u.SetSellerID(v.ID)
}

// SetEpbgID sets the "epbg" edge to the EPBGDetail entity by ID.
func (_u *ContractUpdateOne) SetEpbgID(id uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetEpbgID(id)
	return _u
}

// SetNillableEpbgID sets the "epbg" edge to the EPBGDetail entity by ID if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableEpbgID(id *uuid.UUID) *ContractUpdateOne {
	if id != nil {
		_u = _u.SetEpbgID(*id)
	}
	return _u
}

// SetEpbg sets the "epbg" edge to the EPBGDetail entity.
func (_u *ContractUpdateOne) SetEpbg(v *EPBGDetail) *ContractUpdateOne {
	return _u.SetEpbgID(v.ID)
}

// AddProductIDs adds the "products" edge to the Product entity by IDs.
func (_u *ContractUpdateOne) AddProductIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddProductIDs(ids...)
	return _u
}

// AddProducts adds the "products" edges to the Product entity.
func (_u *ContractUpdateOne) AddProducts(v ...*Product) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProductIDs(ids...)
}

// AddTermIDs adds the "terms" edge to the TermsAndCondition entity by IDs.
func (_u *ContractUpdateOne) AddTermIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddTermIDs(ids...)
	return _u
}

// AddTerms adds the "terms" edges to the TermsAndCondition entity.
func (_u *ContractUpdateOne) AddTerms(v ...*TermsAndCondition) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTermIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractUpdateOne) AddJobIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdateOne) AddJobs(v ...*ExtractJob) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearOrganisation clears the "organisation" edge to the OrganisationDetail entity.
func (_u *ContractUpdateOne) ClearOrganisation() *ContractUpdateOne {
	_u.mutation.ClearOrganisation()
	return _u
}

// ClearBuyer clears the "buyer" edge to the BuyerDetail entity.
func (_u *ContractUpdateOne) ClearBuyer() *ContractUpdateOne {
	_u.mutation.ClearBuyer()
	return _u
}

// ClearFinancialApproval clears the "financial_approval" edge to the FinancialApproval entity.
func (_u *ContractUpdateOne) ClearFinancialApproval() *ContractUpdateOne {
	_u.mutation.ClearFinancialApproval()
	return _u
}

// ClearPayingAuthority clears the "paying_authority" edge to the PayingAuthority entity.
func (_u *ContractUpdateOne) ClearPayingAuthority() *ContractUpdateOne {
	_u.mutation.ClearPayingAuthority()
	return _u
}

// ClearSeller clears the "seller" edge to the SellerDetail entity.
func (_u *ContractUpdateOne) ClearSeller() *ContractUpdateOne {
	_u.mutation.ClearSeller()
	return _u
}

// ClearEpbg clears the "epbg" edge to the EPBGDetail entity.
func (_u *ContractUpdateOne) ClearEpbg() *ContractUpdateOne {
	_u.mutation.ClearEpbg()
	return _u
}

// ClearProducts clears all "products" edges to the Product entity.
func (_u *ContractUpdateOne) ClearProducts() *ContractUpdateOne {
	_u.mutation.ClearProducts()
	return _u
}

// RemoveProductIDs removes the "products" edge to Product entities by IDs.
func (_u *ContractUpdateOne) RemoveProductIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveProductIDs(ids...)
	return _u
}

// RemoveProducts removes "products" edges to Product entities.
func (_u *ContractUpdateOne) RemoveProducts(v ...*Product) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProductIDs(ids...)
}

// ClearTerms clears all "terms" edges to the TermsAndCondition entity.
func (_u *ContractUpdateOne) ClearTerms() *ContractUpdateOne {
	_u.mutation.ClearTerms()
	return _u
}

// RemoveTermIDs removes the "terms" edge to TermsAndCondition entities by IDs.
func (_u *ContractUpdateOne) RemoveTermIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveTermIDs(ids...)
	return _u
}

// RemoveTerms removes "terms" edges to TermsAndCondition entities.
func (_u *ContractUpdateOne) RemoveTerms(v ...*TermsAndCondition) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTermIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdateOne) ClearJobs() *ContractUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractUpdateOne) RemoveJobs(v ...*ExtractJob) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.ContractNo(); ok {
		if err := contract.ContractNoValidator(v); err != nil {
			return &ValidationError{Name: "contract_no", err: fmt.Errorf(`ent: validator failed for field "Contract.contract_no": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.ContractNo(); ok {
		_spec.SetField(contract.FieldContractNo, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedDate(); ok {
		_spec.SetField(contract.FieldGeneratedDate, field.TypeTime, value)
	}
	if _u.mutation.GeneratedDateCleared() {
		_spec.ClearField(contract.FieldGeneratedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(contract.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(contract.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(contract.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contract.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(contract.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganisationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganisationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BuyerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinancialApprovalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinancialApprovalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PayingAuthorityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PayingAuthorityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SellerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SellerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EpbgCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EpbgIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProductsIDs(); len(nodes) > 0 && !_u.mutation.ProductsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TermsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTermsIDs(); len(nodes) > 0 && !_u.mutation.TermsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TermsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
