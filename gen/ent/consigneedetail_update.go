// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/consigneedetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/google/uuid"
)

// ConsigneeDetailUpdate is the builder for updating ConsigneeDetail entities.
type ConsigneeDetailUpdate struct {
	config
	hooks    []Hook
	mutation *ConsigneeDetailMutation
}

// Where appends a list predicates to the ConsigneeDetailUpdate builder.
func (_u *ConsigneeDetailUpdate) Where(ps ...predicate.ConsigneeDetail) *ConsigneeDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *ConsigneeDetailUpdate) SetProductID(v uuid.UUID) *ConsigneeDetailUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableProductID(v *uuid.UUID) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetSNo sets the "s_no" field.
func (_u *ConsigneeDetailUpdate) SetSNo(v int) *ConsigneeDetailUpdate {
	_u.mutation.ResetSNo()
	_u.mutation.SetSNo(v)
	return _u
}

// SetNillableSNo sets the "s_no" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableSNo(v *int) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetSNo(*v)
	}
	return _u
}

// AddSNo adds value to the "s_no" field.
func (_u *ConsigneeDetailUpdate) AddSNo(v int) *ConsigneeDetailUpdate {
	_u.mutation.AddSNo(v)
	return _u
}

// ClearSNo clears the value of the "s_no" field.
func (_u *ConsigneeDetailUpdate) ClearSNo() *ConsigneeDetailUpdate {
	_u.mutation.ClearSNo()
	return _u
}

// SetDesignation sets the "designation" field.
func (_u *ConsigneeDetailUpdate) SetDesignation(v string) *ConsigneeDetailUpdate {
	_u.mutation.SetDesignation(v)
	return _u
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableDesignation(v *string) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetDesignation(*v)
	}
	return _u
}

// ClearDesignation clears the value of the "designation" field.
func (_u *ConsigneeDetailUpdate) ClearDesignation() *ConsigneeDetailUpdate {
	_u.mutation.ClearDesignation()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ConsigneeDetailUpdate) SetEmail(v string) *ConsigneeDetailUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableEmail(v *string) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ConsigneeDetailUpdate) ClearEmail() *ConsigneeDetailUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetContact sets the "contact" field.
func (_u *ConsigneeDetailUpdate) SetContact(v string) *ConsigneeDetailUpdate {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableContact(v *string) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *ConsigneeDetailUpdate) ClearContact() *ConsigneeDetailUpdate {
	_u.mutation.ClearContact()
	return _u
}

// SetGstin sets the "gstin" field.
func (_u *ConsigneeDetailUpdate) SetGstin(v string) *ConsigneeDetailUpdate {
	_u.mutation.SetGstin(v)
	return _u
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableGstin(v *string) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetGstin(*v)
	}
	return _u
}

// ClearGstin clears the value of the "gstin" field.
func (_u *ConsigneeDetailUpdate) ClearGstin() *ConsigneeDetailUpdate {
	_u.mutation.ClearGstin()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ConsigneeDetailUpdate) SetAddress(v string) *ConsigneeDetailUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableAddress(v *string) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ConsigneeDetailUpdate) ClearAddress() *ConsigneeDetailUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetLotNo sets the "lot_no" field.
func (_u *ConsigneeDetailUpdate) SetLotNo(v string) *ConsigneeDetailUpdate {
	_u.mutation.SetLotNo(v)
	return _u
}

// SetNillableLotNo sets the "lot_no" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableLotNo(v *string) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetLotNo(*v)
	}
	return _u
}

// ClearLotNo clears the value of the "lot_no" field.
func (_u *ConsigneeDetailUpdate) ClearLotNo() *ConsigneeDetailUpdate {
	_u.mutation.ClearLotNo()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ConsigneeDetailUpdate) SetQuantity(v int) *ConsigneeDetailUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableQuantity(v *int) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ConsigneeDetailUpdate) AddQuantity(v int) *ConsigneeDetailUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *ConsigneeDetailUpdate) ClearQuantity() *ConsigneeDetailUpdate {
	_u.mutation.ClearQuantity()
	return _u
}

// SetDeliveryStart sets the "delivery_start" field.
func (_u *ConsigneeDetailUpdate) SetDeliveryStart(v time.Time) *ConsigneeDetailUpdate {
	_u.mutation.SetDeliveryStart(v)
	return _u
}

// SetNillableDeliveryStart sets the "delivery_start" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableDeliveryStart(v *time.Time) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetDeliveryStart(*v)
	}
	return _u
}

// ClearDeliveryStart clears the value of the "delivery_start" field.
func (_u *ConsigneeDetailUpdate) ClearDeliveryStart() *ConsigneeDetailUpdate {
	_u.mutation.ClearDeliveryStart()
	return _u
}

// SetDeliveryEnd sets the "delivery_end" field.
func (_u *ConsigneeDetailUpdate) SetDeliveryEnd(v time.Time) *ConsigneeDetailUpdate {
	_u.mutation.SetDeliveryEnd(v)
	return _u
}

// SetNillableDeliveryEnd sets the "delivery_end" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableDeliveryEnd(v *time.Time) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetDeliveryEnd(*v)
	}
	return _u
}

// ClearDeliveryEnd clears the value of the "delivery_end" field.
func (_u *ConsigneeDetailUpdate) ClearDeliveryEnd() *ConsigneeDetailUpdate {
	_u.mutation.ClearDeliveryEnd()
	return _u
}

// SetDeliveryTo sets the "delivery_to" field.
func (_u *ConsigneeDetailUpdate) SetDeliveryTo(v string) *ConsigneeDetailUpdate {
	_u.mutation.SetDeliveryTo(v)
	return _u
}

// SetNillableDeliveryTo sets the "delivery_to" field if the given value is not nil.
func (_u *ConsigneeDetailUpdate) SetNillableDeliveryTo(v *string) *ConsigneeDetailUpdate {
	if v != nil {
		_u.SetDeliveryTo(*v)
	}
	return _u
}

// ClearDeliveryTo clears the value of the "delivery_to" field.
func (_u *ConsigneeDetailUpdate) ClearDeliveryTo() *ConsigneeDetailUpdate {
	_u.mutation.ClearDeliveryTo()
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *ConsigneeDetailUpdate) SetProduct(v *Product) *ConsigneeDetailUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the ConsigneeDetailMutation object of the builder.
func (_u *ConsigneeDetailUpdate) Mutation() *ConsigneeDetailMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *ConsigneeDetailUpdate) ClearProduct() *ConsigneeDetailUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsigneeDetailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsigneeDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsigneeDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsigneeDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsigneeDetailUpdate) check() error {
	if v, ok := _u.mutation.Designation(); ok {
		if err := consigneedetail.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.designation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := consigneedetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Contact(); ok {
		if err := consigneedetail.ContactValidator(v); err != nil {
			return &ValidationError{Name: "contact", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.contact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gstin(); ok {
		if err := consigneedetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.gstin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LotNo(); ok {
		if err := consigneedetail.LotNoValidator(v); err != nil {
			return &ValidationError{Name: "lot_no", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.lot_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryTo(); ok {
		if err := consigneedetail.DeliveryToValidator(v); err != nil {
			return &ValidationError{Name: "delivery_to", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.delivery_to": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConsigneeDetail.product"`)
	}
	return nil
}

func (_u *ConsigneeDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consigneedetail.Table, consigneedetail.Columns, sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SNo(); ok {
		_spec.SetField(consigneedetail.FieldSNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSNo(); ok {
		_spec.AddField(consigneedetail.FieldSNo, field.TypeInt, value)
	}
	if _u.mutation.SNoCleared() {
		_spec.ClearField(consigneedetail.FieldSNo, field.TypeInt)
	}
	if value, ok := _u.mutation.Designation(); ok {
		_spec.SetField(consigneedetail.FieldDesignation, field.TypeString, value)
	}
	if _u.mutation.DesignationCleared() {
		_spec.ClearField(consigneedetail.FieldDesignation, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(consigneedetail.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(consigneedetail.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(consigneedetail.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(consigneedetail.FieldContact, field.TypeString)
	}
	if value, ok := _u.mutation.Gstin(); ok {
		_spec.SetField(consigneedetail.FieldGstin, field.TypeString, value)
	}
	if _u.mutation.GstinCleared() {
		_spec.ClearField(consigneedetail.FieldGstin, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(consigneedetail.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(consigneedetail.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LotNo(); ok {
		_spec.SetField(consigneedetail.FieldLotNo, field.TypeString, value)
	}
	if _u.mutation.LotNoCleared() {
		_spec.ClearField(consigneedetail.FieldLotNo, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(consigneedetail.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(consigneedetail.FieldQuantity, field.TypeInt, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(consigneedetail.FieldQuantity, field.TypeInt)
	}
	if value, ok := _u.mutation.DeliveryStart(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryStart, field.TypeTime, value)
	}
	if _u.mutation.DeliveryStartCleared() {
		_spec.ClearField(consigneedetail.FieldDeliveryStart, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryEnd(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryEnd, field.TypeTime, value)
	}
	if _u.mutation.DeliveryEndCleared() {
		_spec.ClearField(consigneedetail.FieldDeliveryEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryTo(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryTo, field.TypeString, value)
	}
	if _u.mutation.DeliveryToCleared() {
		_spec.ClearField(consigneedetail.FieldDeliveryTo, field.TypeString)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consigneedetail.ProductTable,
			Columns: []string{consigneedetail.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consigneedetail.ProductTable,
			Columns: []string{consigneedetail.ProductColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consigneedetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsigneeDetailUpdateOne is the builder for updating a single ConsigneeDetail entity.
type ConsigneeDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsigneeDetailMutation
}

// SetProductID sets the "product_id" field.
func (_u *ConsigneeDetailUpdateOne) SetProductID(v uuid.UUID) *ConsigneeDetailUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableProductID(v *uuid.UUID) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetSNo sets the "s_no" field.
func (_u *ConsigneeDetailUpdateOne) SetSNo(v int) *ConsigneeDetailUpdateOne {
	_u.mutation.ResetSNo()
	_u.mutation.SetSNo(v)
	return _u
}

// SetNillableSNo sets the "s_no" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableSNo(v *int) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetSNo(*v)
	}
	return _u
}

// AddSNo adds value to the "s_no" field.
func (_u *ConsigneeDetailUpdateOne) AddSNo(v int) *ConsigneeDetailUpdateOne {
	_u.mutation.AddSNo(v)
	return _u
}

// ClearSNo clears the value of the "s_no" field.
func (_u *ConsigneeDetailUpdateOne) ClearSNo() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearSNo()
	return _u
}

// SetDesignation sets the "designation" field.
func (_u *ConsigneeDetailUpdateOne) SetDesignation(v string) *ConsigneeDetailUpdateOne {
	_u.mutation.SetDesignation(v)
	return _u
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableDesignation(v *string) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetDesignation(*v)
	}
	return _u
}

// ClearDesignation clears the value of the "designation" field.
func (_u *ConsigneeDetailUpdateOne) ClearDesignation() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearDesignation()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ConsigneeDetailUpdateOne) SetEmail(v string) *ConsigneeDetailUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableEmail(v *string) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ConsigneeDetailUpdateOne) ClearEmail() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetContact sets the "contact" field.
func (_u *ConsigneeDetailUpdateOne) SetContact(v string) *ConsigneeDetailUpdateOne {
	_u.mutation.SetContact(v)
	return _u
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableContact(v *string) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetContact(*v)
	}
	return _u
}

// ClearContact clears the value of the "contact" field.
func (_u *ConsigneeDetailUpdateOne) ClearContact() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// SetGstin sets the "gstin" field.
func (_u *ConsigneeDetailUpdateOne) SetGstin(v string) *ConsigneeDetailUpdateOne {
	_u.mutation.SetGstin(v)
	return _u
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableGstin(v *string) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetGstin(*v)
	}
	return _u
}

// ClearGstin clears the value of the "gstin" field.
func (_u *ConsigneeDetailUpdateOne) ClearGstin() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearGstin()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ConsigneeDetailUpdateOne) SetAddress(v string) *ConsigneeDetailUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableAddress(v *string) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ConsigneeDetailUpdateOne) ClearAddress() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetLotNo sets the "lot_no" field.
func (_u *ConsigneeDetailUpdateOne) SetLotNo(v string) *ConsigneeDetailUpdateOne {
	_u.mutation.SetLotNo(v)
	return _u
}

// SetNillableLotNo sets the "lot_no" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableLotNo(v *string) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetLotNo(*v)
	}
	return _u
}

// ClearLotNo clears the value of the "lot_no" field.
func (_u *ConsigneeDetailUpdateOne) ClearLotNo() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearLotNo()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ConsigneeDetailUpdateOne) SetQuantity(v int) *ConsigneeDetailUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableQuantity(v *int) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ConsigneeDetailUpdateOne) AddQuantity(v int) *ConsigneeDetailUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *ConsigneeDetailUpdateOne) ClearQuantity() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearQuantity()
	return _u
}

// SetDeliveryStart sets the "delivery_start" field.
func (_u *ConsigneeDetailUpdateOne) SetDeliveryStart(v time.Time) *ConsigneeDetailUpdateOne {
	_u.mutation.SetDeliveryStart(v)
	return _u
}

// SetNillableDeliveryStart sets the "delivery_start" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableDeliveryStart(v *time.Time) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetDeliveryStart(*v)
	}
	return _u
}

// ClearDeliveryStart clears the value of the "delivery_start" field.
func (_u *ConsigneeDetailUpdateOne) ClearDeliveryStart() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearDeliveryStart()
	return _u
}

// SetDeliveryEnd sets the "delivery_end" field.
func (_u *ConsigneeDetailUpdateOne) SetDeliveryEnd(v time.Time) *ConsigneeDetailUpdateOne {
	_u.mutation.SetDeliveryEnd(v)
	return _u
}

// SetNillableDeliveryEnd sets the "delivery_end" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableDeliveryEnd(v *time.Time) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetDeliveryEnd(*v)
	}
	return _u
}

// ClearDeliveryEnd clears the value of the "delivery_end" field.
func (_u *ConsigneeDetailUpdateOne) ClearDeliveryEnd() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearDeliveryEnd()
	return _u
}

// SetDeliveryTo sets the "delivery_to" field.
func (_u *ConsigneeDetailUpdateOne) SetDeliveryTo(v string) *ConsigneeDetailUpdateOne {
	_u.mutation.SetDeliveryTo(v)
	return _u
}

// SetNillableDeliveryTo sets the "delivery_to" field if the given value is not nil.
func (_u *ConsigneeDetailUpdateOne) SetNillableDeliveryTo(v *string) *ConsigneeDetailUpdateOne {
	if v != nil {
		_u.SetDeliveryTo(*v)
	}
	return _u
}

// ClearDeliveryTo clears the value of the "delivery_to" field.
func (_u *ConsigneeDetailUpdateOne) ClearDeliveryTo() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearDeliveryTo()
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *ConsigneeDetailUpdateOne) SetProduct(v *Product) *ConsigneeDetailUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the ConsigneeDetailMutation object of the builder.
func (_u *ConsigneeDetailUpdateOne) Mutation() *ConsigneeDetailMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *ConsigneeDetailUpdateOne) ClearProduct() *ConsigneeDetailUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the ConsigneeDetailUpdate builder.
func (_u *ConsigneeDetailUpdateOne) Where(ps ...predicate.ConsigneeDetail) *ConsigneeDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsigneeDetailUpdateOne) Select(field string, fields ...string) *ConsigneeDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConsigneeDetail entity.
func (_u *ConsigneeDetailUpdateOne) Save(ctx context.Context) (*ConsigneeDetail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsigneeDetailUpdateOne) SaveX(ctx context.Context) *ConsigneeDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsigneeDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsigneeDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsigneeDetailUpdateOne) check() error {
	if v, ok := _u.mutation.Designation(); ok {
		if err := consigneedetail.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.designation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := consigneedetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Contact(); ok {
		if err := consigneedetail.ContactValidator(v); err != nil {
			return &ValidationError{Name: "contact", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.contact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gstin(); ok {
		if err := consigneedetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.gstin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LotNo(); ok {
		if err := consigneedetail.LotNoValidator(v); err != nil {
			return &ValidationError{Name: "lot_no", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.lot_no": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryTo(); ok {
		if err := consigneedetail.DeliveryToValidator(v); err != nil {
			return &ValidationError{Name: "delivery_to", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.delivery_to": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConsigneeDetail.product"`)
	}
	return nil
}

func (_u *ConsigneeDetailUpdateOne) sqlSave(ctx context.Context) (_node *ConsigneeDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consigneedetail.Table, consigneedetail.Columns, sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConsigneeDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consigneedetail.FieldID)
		for _, f := range fields {
			if !consigneedetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != consigneedetail.FieldID {
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
	if value, ok := _u.mutation.SNo(); ok {
		_spec.SetField(consigneedetail.FieldSNo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSNo(); ok {
		_spec.AddField(consigneedetail.FieldSNo, field.TypeInt, value)
	}
	if _u.mutation.SNoCleared() {
		_spec.ClearField(consigneedetail.FieldSNo, field.TypeInt)
	}
	if value, ok := _u.mutation.Designation(); ok {
		_spec.SetField(consigneedetail.FieldDesignation, field.TypeString, value)
	}
	if _u.mutation.DesignationCleared() {
		_spec.ClearField(consigneedetail.FieldDesignation, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(consigneedetail.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(consigneedetail.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Contact(); ok {
		_spec.SetField(consigneedetail.FieldContact, field.TypeString, value)
	}
	if _u.mutation.ContactCleared() {
		_spec.ClearField(consigneedetail.FieldContact, field.TypeString)
	}
	if value, ok := _u.mutation.Gstin(); ok {
		_spec.SetField(consigneedetail.FieldGstin, field.TypeString, value)
	}
	if _u.mutation.GstinCleared() {
		_spec.ClearField(consigneedetail.FieldGstin, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(consigneedetail.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(consigneedetail.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.LotNo(); ok {
		_spec.SetField(consigneedetail.FieldLotNo, field.TypeString, value)
	}
	if _u.mutation.LotNoCleared() {
		_spec.ClearField(consigneedetail.FieldLotNo, field.TypeString)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(consigneedetail.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(consigneedetail.FieldQuantity, field.TypeInt, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(consigneedetail.FieldQuantity, field.TypeInt)
	}
	if value, ok := _u.mutation.DeliveryStart(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryStart, field.TypeTime, value)
	}
	if _u.mutation.DeliveryStartCleared() {
		_spec.ClearField(consigneedetail.FieldDeliveryStart, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryEnd(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryEnd, field.TypeTime, value)
	}
	if _u.mutation.DeliveryEndCleared() {
		_spec.ClearField(consigneedetail.FieldDeliveryEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveryTo(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryTo, field.TypeString, value)
	}
	if _u.mutation.DeliveryToCleared() {
		_spec.ClearField(consigneedetail.FieldDeliveryTo, field.TypeString)
	}
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consigneedetail.ProductTable,
			Columns: []string{consigneedetail.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consigneedetail.ProductTable,
			Columns: []string{consigneedetail.ProductColumn},
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
	_node = &ConsigneeDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consigneedetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
