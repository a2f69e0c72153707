// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gemdocs/procurement-tracker/gen/ent/bid"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/consigneedetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/extractjob"
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/productspecification"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/sourcefile"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBid                  = "Bid"
	TypeBuyerDetail          = "BuyerDetail"
	TypeConsigneeDetail      = "ConsigneeDetail"
	TypeContract             = "Contract"
	TypeEPBGDetail           = "EPBGDetail"
	TypeExtractJob           = "ExtractJob"
	TypeFinancialApproval    = "FinancialApproval"
	TypeOrganisationDetail   = "OrganisationDetail"
	TypePayingAuthority      = "PayingAuthority"
	TypeProduct              = "Product"
	TypeProductSpecification = "ProductSpecification"
	TypeSellerDetail         = "SellerDetail"
	TypeSourceFile           = "SourceFile"
	TypeTermsAndCondition    = "TermsAndCondition"
)

// BidMutation represents an operation that mutates the Bid nodes in the graph.
type BidMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	bid_number                 *string
	dated                      *time.Time
	beneficiary                *string
	ministry                   *string
	department                 *string
	organisation               *string
	office_name                *string
	item_category              *string
	contract_period            *string
	bid_end_datetime           *time.Time
	bid_open_datetime          *time.Time
	bid_offer_validity_days    *int
	addbid_offer_validity_days *int
	delivery_days              *int
	adddelivery_days           *int
	total_quantity             *string
	estimated_bid_value        *string
	similar_category           *string
	mse_exemption              *string
	startup_exemption          *string
	mse_purchase_preference    *string
	mii_purchase_preference    *string
	evaluation_method          *string
	inspection_required        *string
	primary_product_category   *string
	delivery_address           *string
	scope_of_supply            *string
	option_clause              *string
	source_file                *string
	raw_text                   *string
	embedding                  *[]float32
	appendembedding            []float32
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	jobs                       map[uuid.UUID]struct{}
	removedjobs                map[uuid.UUID]struct{}
	clearedjobs                bool
	done                       bool
	oldValue                   func(context.Context) (*Bid, error)
	predicates                 []predicate.Bid
}

var _ ent.Mutation = (*BidMutation)(nil)

// bidOption allows management of the mutation configuration using functional options.
type bidOption func(*BidMutation)

// newBidMutation creates new mutation for the Bid entity.
func newBidMutation(c config, op Op, opts ...bidOption) *BidMutation {
	m := &BidMutation{
		config:        c,
		op:            op,
		typ:           TypeBid,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBidID sets the ID field of the mutation.
func withBidID(id uuid.UUID) bidOption {
	return func(m *BidMutation) {
		var (
			err   error
			once  sync.Once
			value *Bid
		)
		m.oldValue = func(ctx context.Context) (*Bid, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bid.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBid sets the old Bid of the mutation.
func withBid(node *Bid) bidOption {
	return func(m *BidMutation) {
		m.oldValue = func(context.Context) (*Bid, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BidMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BidMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bid entities.
func (m *BidMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BidMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BidMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bid.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBidNumber sets the "bid_number" field.
func (m *BidMutation) SetBidNumber(s string) {
	m.bid_number = &s
}

// BidNumber returns the value of the "bid_number" field in the mutation.
func (m *BidMutation) BidNumber() (r string, exists bool) {
	v := m.bid_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBidNumber returns the old "bid_number" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldBidNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidNumber: %w", err)
	}
	return oldValue.BidNumber, nil
}

// ResetBidNumber resets all changes to the "bid_number" field.
func (m *BidMutation) ResetBidNumber() {
	m.bid_number = nil
}

// SetDated sets the "dated" field.
func (m *BidMutation) SetDated(t time.Time) {
	m.dated = &t
}

// Dated returns the value of the "dated" field in the mutation.
func (m *BidMutation) Dated() (r time.Time, exists bool) {
	v := m.dated
	if v == nil {
		return
	}
	return *v, true
}

// OldDated returns the old "dated" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldDated(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDated: %w", err)
	}
	return oldValue.Dated, nil
}

// ClearDated clears the value of the "dated" field.
func (m *BidMutation) ClearDated() {
	m.dated = nil
	m.clearedFields[bid.FieldDated] = struct{}{}
}

// DatedCleared returns if the "dated" field was cleared in this mutation.
func (m *BidMutation) DatedCleared() bool {
	_, ok := m.clearedFields[bid.FieldDated]
	return ok
}

// ResetDated resets all changes to the "dated" field.
func (m *BidMutation) ResetDated() {
	m.dated = nil
	delete(m.clearedFields, bid.FieldDated)
}

// SetBeneficiary sets the "beneficiary" field.
func (m *BidMutation) SetBeneficiary(s string) {
	m.beneficiary = &s
}

// Beneficiary returns the value of the "beneficiary" field in the mutation.
func (m *BidMutation) Beneficiary() (r string, exists bool) {
	v := m.beneficiary
	if v == nil {
		return
	}
	return *v, true
}

// OldBeneficiary returns the old "beneficiary" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldBeneficiary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeneficiary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeneficiary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeneficiary: %w", err)
	}
	return oldValue.Beneficiary, nil
}

// ClearBeneficiary clears the value of the "beneficiary" field.
func (m *BidMutation) ClearBeneficiary() {
	m.beneficiary = nil
	m.clearedFields[bid.FieldBeneficiary] = struct{}{}
}

// BeneficiaryCleared returns if the "beneficiary" field was cleared in this mutation.
func (m *BidMutation) BeneficiaryCleared() bool {
	_, ok := m.clearedFields[bid.FieldBeneficiary]
	return ok
}

// ResetBeneficiary resets all changes to the "beneficiary" field.
func (m *BidMutation) ResetBeneficiary() {
	m.beneficiary = nil
	delete(m.clearedFields, bid.FieldBeneficiary)
}

// SetMinistry sets the "ministry" field.
func (m *BidMutation) SetMinistry(s string) {
	m.ministry = &s
}

// Ministry returns the value of the "ministry" field in the mutation.
func (m *BidMutation) Ministry() (r string, exists bool) {
	v := m.ministry
	if v == nil {
		return
	}
	return *v, true
}

// OldMinistry returns the old "ministry" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldMinistry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinistry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinistry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinistry: %w", err)
	}
	return oldValue.Ministry, nil
}

// ClearMinistry clears the value of the "ministry" field.
func (m *BidMutation) ClearMinistry() {
	m.ministry = nil
	m.clearedFields[bid.FieldMinistry] = struct{}{}
}

// MinistryCleared returns if the "ministry" field was cleared in this mutation.
func (m *BidMutation) MinistryCleared() bool {
	_, ok := m.clearedFields[bid.FieldMinistry]
	return ok
}

// ResetMinistry resets all changes to the "ministry" field.
func (m *BidMutation) ResetMinistry() {
	m.ministry = nil
	delete(m.clearedFields, bid.FieldMinistry)
}

// SetDepartment sets the "department" field.
func (m *BidMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *BidMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *BidMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[bid.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *BidMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[bid.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *BidMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, bid.FieldDepartment)
}

// SetOrganisation sets the "organisation" field.
func (m *BidMutation) SetOrganisation(s string) {
	m.organisation = &s
}

// Organisation returns the value of the "organisation" field in the mutation.
func (m *BidMutation) Organisation() (r string, exists bool) {
	v := m.organisation
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganisation returns the old "organisation" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldOrganisation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganisation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganisation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganisation: %w", err)
	}
	return oldValue.Organisation, nil
}

// ClearOrganisation clears the value of the "organisation" field.
func (m *BidMutation) ClearOrganisation() {
	m.organisation = nil
	m.clearedFields[bid.FieldOrganisation] = struct{}{}
}

// OrganisationCleared returns if the "organisation" field was cleared in this mutation.
func (m *BidMutation) OrganisationCleared() bool {
	_, ok := m.clearedFields[bid.FieldOrganisation]
	return ok
}

// ResetOrganisation resets all changes to the "organisation" field.
func (m *BidMutation) ResetOrganisation() {
	m.organisation = nil
	delete(m.clearedFields, bid.FieldOrganisation)
}

// SetOfficeName sets the "office_name" field.
func (m *BidMutation) SetOfficeName(s string) {
	m.office_name = &s
}

// OfficeName returns the value of the "office_name" field in the mutation.
func (m *BidMutation) OfficeName() (r string, exists bool) {
	v := m.office_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOfficeName returns the old "office_name" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldOfficeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfficeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfficeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfficeName: %w", err)
	}
	return oldValue.OfficeName, nil
}

// ClearOfficeName clears the value of the "office_name" field.
func (m *BidMutation) ClearOfficeName() {
	m.office_name = nil
	m.clearedFields[bid.FieldOfficeName] = struct{}{}
}

// OfficeNameCleared returns if the "office_name" field was cleared in this mutation.
func (m *BidMutation) OfficeNameCleared() bool {
	_, ok := m.clearedFields[bid.FieldOfficeName]
	return ok
}

// ResetOfficeName resets all changes to the "office_name" field.
func (m *BidMutation) ResetOfficeName() {
	m.office_name = nil
	delete(m.clearedFields, bid.FieldOfficeName)
}

// SetItemCategory sets the "item_category" field.
func (m *BidMutation) SetItemCategory(s string) {
	m.item_category = &s
}

// ItemCategory returns the value of the "item_category" field in the mutation.
func (m *BidMutation) ItemCategory() (r string, exists bool) {
	v := m.item_category
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCategory returns the old "item_category" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldItemCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCategory: %w", err)
	}
	return oldValue.ItemCategory, nil
}

// ClearItemCategory clears the value of the "item_category" field.
func (m *BidMutation) ClearItemCategory() {
	m.item_category = nil
	m.clearedFields[bid.FieldItemCategory] = struct{}{}
}

// ItemCategoryCleared returns if the "item_category" field was cleared in this mutation.
func (m *BidMutation) ItemCategoryCleared() bool {
	_, ok := m.clearedFields[bid.FieldItemCategory]
	return ok
}

// ResetItemCategory resets all changes to the "item_category" field.
func (m *BidMutation) ResetItemCategory() {
	m.item_category = nil
	delete(m.clearedFields, bid.FieldItemCategory)
}

// SetContractPeriod sets the "contract_period" field.
func (m *BidMutation) SetContractPeriod(s string) {
	m.contract_period = &s
}

// ContractPeriod returns the value of the "contract_period" field in the mutation.
func (m *BidMutation) ContractPeriod() (r string, exists bool) {
	v := m.contract_period
	if v == nil {
		return
	}
	return *v, true
}

// OldContractPeriod returns the old "contract_period" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldContractPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractPeriod: %w", err)
	}
	return oldValue.ContractPeriod, nil
}

// ClearContractPeriod clears the value of the "contract_period" field.
func (m *BidMutation) ClearContractPeriod() {
	m.contract_period = nil
	m.clearedFields[bid.FieldContractPeriod] = struct{}{}
}

// ContractPeriodCleared returns if the "contract_period" field was cleared in this mutation.
func (m *BidMutation) ContractPeriodCleared() bool {
	_, ok := m.clearedFields[bid.FieldContractPeriod]
	return ok
}

// ResetContractPeriod resets all changes to the "contract_period" field.
func (m *BidMutation) ResetContractPeriod() {
	m.contract_period = nil
	delete(m.clearedFields, bid.FieldContractPeriod)
}

// SetBidEndDatetime sets the "bid_end_datetime" field.
func (m *BidMutation) SetBidEndDatetime(t time.Time) {
	m.bid_end_datetime = &t
}

// BidEndDatetime returns the value of the "bid_end_datetime" field in the mutation.
func (m *BidMutation) BidEndDatetime() (r time.Time, exists bool) {
	v := m.bid_end_datetime
	if v == nil {
		return
	}
	return *v, true
}

// OldBidEndDatetime returns the old "bid_end_datetime" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldBidEndDatetime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidEndDatetime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidEndDatetime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidEndDatetime: %w", err)
	}
	return oldValue.BidEndDatetime, nil
}

// ClearBidEndDatetime clears the value of the "bid_end_datetime" field.
func (m *BidMutation) ClearBidEndDatetime() {
	m.bid_end_datetime = nil
	m.clearedFields[bid.FieldBidEndDatetime] = struct{}{}
}

// BidEndDatetimeCleared returns if the "bid_end_datetime" field was cleared in this mutation.
func (m *BidMutation) BidEndDatetimeCleared() bool {
	_, ok := m.clearedFields[bid.FieldBidEndDatetime]
	return ok
}

// ResetBidEndDatetime resets all changes to the "bid_end_datetime" field.
func (m *BidMutation) ResetBidEndDatetime() {
	m.bid_end_datetime = nil
	delete(m.clearedFields, bid.FieldBidEndDatetime)
}

// SetBidOpenDatetime sets the "bid_open_datetime" field.
func (m *BidMutation) SetBidOpenDatetime(t time.Time) {
	m.bid_open_datetime = &t
}

// BidOpenDatetime returns the value of the "bid_open_datetime" field in the mutation.
func (m *BidMutation) BidOpenDatetime() (r time.Time, exists bool) {
	v := m.bid_open_datetime
	if v == nil {
		return
	}
	return *v, true
}

// OldBidOpenDatetime returns the old "bid_open_datetime" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldBidOpenDatetime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidOpenDatetime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidOpenDatetime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidOpenDatetime: %w", err)
	}
	return oldValue.BidOpenDatetime, nil
}

// ClearBidOpenDatetime clears the value of the "bid_open_datetime" field.
func (m *BidMutation) ClearBidOpenDatetime() {
	m.bid_open_datetime = nil
	m.clearedFields[bid.FieldBidOpenDatetime] = struct{}{}
}

// BidOpenDatetimeCleared returns if the "bid_open_datetime" field was cleared in this mutation.
func (m *BidMutation) BidOpenDatetimeCleared() bool {
	_, ok := m.clearedFields[bid.FieldBidOpenDatetime]
	return ok
}

// ResetBidOpenDatetime resets all changes to the "bid_open_datetime" field.
func (m *BidMutation) ResetBidOpenDatetime() {
	m.bid_open_datetime = nil
	delete(m.clearedFields, bid.FieldBidOpenDatetime)
}

// SetBidOfferValidityDays sets the "bid_offer_validity_days" field.
func (m *BidMutation) SetBidOfferValidityDays(i int) {
	m.bid_offer_validity_days = &i
	m.addbid_offer_validity_days = nil
}

// BidOfferValidityDays returns the value of the "bid_offer_validity_days" field in the mutation.
func (m *BidMutation) BidOfferValidityDays() (r int, exists bool) {
	v := m.bid_offer_validity_days
	if v == nil {
		return
	}
	return *v, true
}

// OldBidOfferValidityDays returns the old "bid_offer_validity_days" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldBidOfferValidityDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidOfferValidityDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidOfferValidityDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidOfferValidityDays: %w", err)
	}
	return oldValue.BidOfferValidityDays, nil
}

// AddBidOfferValidityDays adds i to the "bid_offer_validity_days" field.
func (m *BidMutation) AddBidOfferValidityDays(i int) {
	if m.addbid_offer_validity_days != nil {
		*m.addbid_offer_validity_days += i
	} else {
		m.addbid_offer_validity_days = &i
	}
}

// AddedBidOfferValidityDays returns the value that was added to the "bid_offer_validity_days" field in this mutation.
func (m *BidMutation) AddedBidOfferValidityDays() (r int, exists bool) {
	v := m.addbid_offer_validity_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearBidOfferValidityDays clears the value of the "bid_offer_validity_days" field.
func (m *BidMutation) ClearBidOfferValidityDays() {
	m.bid_offer_validity_days = nil
	m.addbid_offer_validity_days = nil
	m.clearedFields[bid.FieldBidOfferValidityDays] = struct{}{}
}

// BidOfferValidityDaysCleared returns if the "bid_offer_validity_days" field was cleared in this mutation.
func (m *BidMutation) BidOfferValidityDaysCleared() bool {
	_, ok := m.clearedFields[bid.FieldBidOfferValidityDays]
	return ok
}

// ResetBidOfferValidityDays resets all changes to the "bid_offer_validity_days" field.
func (m *BidMutation) ResetBidOfferValidityDays() {
	m.bid_offer_validity_days = nil
	m.addbid_offer_validity_days = nil
	delete(m.clearedFields, bid.FieldBidOfferValidityDays)
}

// SetDeliveryDays sets the "delivery_days" field.
func (m *BidMutation) SetDeliveryDays(i int) {
	m.delivery_days = &i
	m.adddelivery_days = nil
}

// DeliveryDays returns the value of the "delivery_days" field in the mutation.
func (m *BidMutation) DeliveryDays() (r int, exists bool) {
	v := m.delivery_days
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryDays returns the old "delivery_days" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldDeliveryDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryDays: %w", err)
	}
	return oldValue.DeliveryDays, nil
}

// AddDeliveryDays adds i to the "delivery_days" field.
func (m *BidMutation) AddDeliveryDays(i int) {
	if m.adddelivery_days != nil {
		*m.adddelivery_days += i
	} else {
		m.adddelivery_days = &i
	}
}

// AddedDeliveryDays returns the value that was added to the "delivery_days" field in this mutation.
func (m *BidMutation) AddedDeliveryDays() (r int, exists bool) {
	v := m.adddelivery_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeliveryDays clears the value of the "delivery_days" field.
func (m *BidMutation) ClearDeliveryDays() {
	m.delivery_days = nil
	m.adddelivery_days = nil
	m.clearedFields[bid.FieldDeliveryDays] = struct{}{}
}

// DeliveryDaysCleared returns if the "delivery_days" field was cleared in this mutation.
func (m *BidMutation) DeliveryDaysCleared() bool {
	_, ok := m.clearedFields[bid.FieldDeliveryDays]
	return ok
}

// ResetDeliveryDays resets all changes to the "delivery_days" field.
func (m *BidMutation) ResetDeliveryDays() {
	m.delivery_days = nil
	m.adddelivery_days = nil
	delete(m.clearedFields, bid.FieldDeliveryDays)
}

// SetTotalQuantity sets the "total_quantity" field.
func (m *BidMutation) SetTotalQuantity(s string) {
	m.total_quantity = &s
}

// TotalQuantity returns the value of the "total_quantity" field in the mutation.
func (m *BidMutation) TotalQuantity() (r string, exists bool) {
	v := m.total_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuantity returns the old "total_quantity" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldTotalQuantity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuantity: %w", err)
	}
	return oldValue.TotalQuantity, nil
}

// ClearTotalQuantity clears the value of the "total_quantity" field.
func (m *BidMutation) ClearTotalQuantity() {
	m.total_quantity = nil
	m.clearedFields[bid.FieldTotalQuantity] = struct{}{}
}

// TotalQuantityCleared returns if the "total_quantity" field was cleared in this mutation.
func (m *BidMutation) TotalQuantityCleared() bool {
	_, ok := m.clearedFields[bid.FieldTotalQuantity]
	return ok
}

// ResetTotalQuantity resets all changes to the "total_quantity" field.
func (m *BidMutation) ResetTotalQuantity() {
	m.total_quantity = nil
	delete(m.clearedFields, bid.FieldTotalQuantity)
}

// SetEstimatedBidValue sets the "estimated_bid_value" field.
func (m *BidMutation) SetEstimatedBidValue(s string) {
	m.estimated_bid_value = &s
}

// EstimatedBidValue returns the value of the "estimated_bid_value" field in the mutation.
func (m *BidMutation) EstimatedBidValue() (r string, exists bool) {
	v := m.estimated_bid_value
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedBidValue returns the old "estimated_bid_value" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldEstimatedBidValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedBidValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedBidValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedBidValue: %w", err)
	}
	return oldValue.EstimatedBidValue, nil
}

// ClearEstimatedBidValue clears the value of the "estimated_bid_value" field.
func (m *BidMutation) ClearEstimatedBidValue() {
	m.estimated_bid_value = nil
	m.clearedFields[bid.FieldEstimatedBidValue] = struct{}{}
}

// EstimatedBidValueCleared returns if the "estimated_bid_value" field was cleared in this mutation.
func (m *BidMutation) EstimatedBidValueCleared() bool {
	_, ok := m.clearedFields[bid.FieldEstimatedBidValue]
	return ok
}

// ResetEstimatedBidValue resets all changes to the "estimated_bid_value" field.
func (m *BidMutation) ResetEstimatedBidValue() {
	m.estimated_bid_value = nil
	delete(m.clearedFields, bid.FieldEstimatedBidValue)
}

// SetSimilarCategory sets the "similar_category" field.
func (m *BidMutation) SetSimilarCategory(s string) {
	m.similar_category = &s
}

// SimilarCategory returns the value of the "similar_category" field in the mutation.
func (m *BidMutation) SimilarCategory() (r string, exists bool) {
	v := m.similar_category
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarCategory returns the old "similar_category" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldSimilarCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarCategory: %w", err)
	}
	return oldValue.SimilarCategory, nil
}

// ClearSimilarCategory clears the value of the "similar_category" field.
func (m *BidMutation) ClearSimilarCategory() {
	m.similar_category = nil
	m.clearedFields[bid.FieldSimilarCategory] = struct{}{}
}

// SimilarCategoryCleared returns if the "similar_category" field was cleared in this mutation.
func (m *BidMutation) SimilarCategoryCleared() bool {
	_, ok := m.clearedFields[bid.FieldSimilarCategory]
	return ok
}

// ResetSimilarCategory resets all changes to the "similar_category" field.
func (m *BidMutation) ResetSimilarCategory() {
	m.similar_category = nil
	delete(m.clearedFields, bid.FieldSimilarCategory)
}

// SetMseExemption sets the "mse_exemption" field.
func (m *BidMutation) SetMseExemption(s string) {
	m.mse_exemption = &s
}

// MseExemption returns the value of the "mse_exemption" field in the mutation.
func (m *BidMutation) MseExemption() (r string, exists bool) {
	v := m.mse_exemption
	if v == nil {
		return
	}
	return *v, true
}

// OldMseExemption returns the old "mse_exemption" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldMseExemption(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMseExemption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMseExemption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMseExemption: %w", err)
	}
	return oldValue.MseExemption, nil
}

// ClearMseExemption clears the value of the "mse_exemption" field.
func (m *BidMutation) ClearMseExemption() {
	m.mse_exemption = nil
	m.clearedFields[bid.FieldMseExemption] = struct{}{}
}

// MseExemptionCleared returns if the "mse_exemption" field was cleared in this mutation.
func (m *BidMutation) MseExemptionCleared() bool {
	_, ok := m.clearedFields[bid.FieldMseExemption]
	return ok
}

// ResetMseExemption resets all changes to the "mse_exemption" field.
func (m *BidMutation) ResetMseExemption() {
	m.mse_exemption = nil
	delete(m.clearedFields, bid.FieldMseExemption)
}

// SetStartupExemption sets the "startup_exemption" field.
func (m *BidMutation) SetStartupExemption(s string) {
	m.startup_exemption = &s
}

// StartupExemption returns the value of the "startup_exemption" field in the mutation.
func (m *BidMutation) StartupExemption() (r string, exists bool) {
	v := m.startup_exemption
	if v == nil {
		return
	}
	return *v, true
}

// OldStartupExemption returns the old "startup_exemption" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldStartupExemption(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartupExemption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartupExemption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartupExemption: %w", err)
	}
	return oldValue.StartupExemption, nil
}

// ClearStartupExemption clears the value of the "startup_exemption" field.
func (m *BidMutation) ClearStartupExemption() {
	m.startup_exemption = nil
	m.clearedFields[bid.FieldStartupExemption] = struct{}{}
}

// StartupExemptionCleared returns if the "startup_exemption" field was cleared in this mutation.
func (m *BidMutation) StartupExemptionCleared() bool {
	_, ok := m.clearedFields[bid.FieldStartupExemption]
	return ok
}

// ResetStartupExemption resets all changes to the "startup_exemption" field.
func (m *BidMutation) ResetStartupExemption() {
	m.startup_exemption = nil
	delete(m.clearedFields, bid.FieldStartupExemption)
}

// SetMsePurchasePreference sets the "mse_purchase_preference" field.
func (m *BidMutation) SetMsePurchasePreference(s string) {
	m.mse_purchase_preference = &s
}

// MsePurchasePreference returns the value of the "mse_purchase_preference" field in the mutation.
func (m *BidMutation) MsePurchasePreference() (r string, exists bool) {
	v := m.mse_purchase_preference
	if v == nil {
		return
	}
	return *v, true
}

// OldMsePurchasePreference returns the old "mse_purchase_preference" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldMsePurchasePreference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMsePurchasePreference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMsePurchasePreference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMsePurchasePreference: %w", err)
	}
	return oldValue.MsePurchasePreference, nil
}

// ClearMsePurchasePreference clears the value of the "mse_purchase_preference" field.
func (m *BidMutation) ClearMsePurchasePreference() {
	m.mse_purchase_preference = nil
	m.clearedFields[bid.FieldMsePurchasePreference] = struct{}{}
}

// MsePurchasePreferenceCleared returns if the "mse_purchase_preference" field was cleared in this mutation.
func (m *BidMutation) MsePurchasePreferenceCleared() bool {
	_, ok := m.clearedFields[bid.FieldMsePurchasePreference]
	return ok
}

// ResetMsePurchasePreference resets all changes to the "mse_purchase_preference" field.
func (m *BidMutation) ResetMsePurchasePreference() {
	m.mse_purchase_preference = nil
	delete(m.clearedFields, bid.FieldMsePurchasePreference)
}

// SetMiiPurchasePreference sets the "mii_purchase_preference" field.
func (m *BidMutation) SetMiiPurchasePreference(s string) {
	m.mii_purchase_preference = &s
}

// MiiPurchasePreference returns the value of the "mii_purchase_preference" field in the mutation.
func (m *BidMutation) MiiPurchasePreference() (r string, exists bool) {
	v := m.mii_purchase_preference
	if v == nil {
		return
	}
	return *v, true
}

// OldMiiPurchasePreference returns the old "mii_purchase_preference" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldMiiPurchasePreference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMiiPurchasePreference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMiiPurchasePreference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMiiPurchasePreference: %w", err)
	}
	return oldValue.MiiPurchasePreference, nil
}

// ClearMiiPurchasePreference clears the value of the "mii_purchase_preference" field.
func (m *BidMutation) ClearMiiPurchasePreference() {
	m.mii_purchase_preference = nil
	m.clearedFields[bid.FieldMiiPurchasePreference] = struct{}{}
}

// MiiPurchasePreferenceCleared returns if the "mii_purchase_preference" field was cleared in this mutation.
func (m *BidMutation) MiiPurchasePreferenceCleared() bool {
	_, ok := m.clearedFields[bid.FieldMiiPurchasePreference]
	return ok
}

// ResetMiiPurchasePreference resets all changes to the "mii_purchase_preference" field.
func (m *BidMutation) ResetMiiPurchasePreference() {
	m.mii_purchase_preference = nil
	delete(m.clearedFields, bid.FieldMiiPurchasePreference)
}

// SetEvaluationMethod sets the "evaluation_method" field.
func (m *BidMutation) SetEvaluationMethod(s string) {
	m.evaluation_method = &s
}

// EvaluationMethod returns the value of the "evaluation_method" field in the mutation.
func (m *BidMutation) EvaluationMethod() (r string, exists bool) {
	v := m.evaluation_method
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationMethod returns the old "evaluation_method" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldEvaluationMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationMethod: %w", err)
	}
	return oldValue.EvaluationMethod, nil
}

// ClearEvaluationMethod clears the value of the "evaluation_method" field.
func (m *BidMutation) ClearEvaluationMethod() {
	m.evaluation_method = nil
	m.clearedFields[bid.FieldEvaluationMethod] = struct{}{}
}

// EvaluationMethodCleared returns if the "evaluation_method" field was cleared in this mutation.
func (m *BidMutation) EvaluationMethodCleared() bool {
	_, ok := m.clearedFields[bid.FieldEvaluationMethod]
	return ok
}

// ResetEvaluationMethod resets all changes to the "evaluation_method" field.
func (m *BidMutation) ResetEvaluationMethod() {
	m.evaluation_method = nil
	delete(m.clearedFields, bid.FieldEvaluationMethod)
}

// SetInspectionRequired sets the "inspection_required" field.
func (m *BidMutation) SetInspectionRequired(s string) {
	m.inspection_required = &s
}

// InspectionRequired returns the value of the "inspection_required" field in the mutation.
func (m *BidMutation) InspectionRequired() (r string, exists bool) {
	v := m.inspection_required
	if v == nil {
		return
	}
	return *v, true
}

// OldInspectionRequired returns the old "inspection_required" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldInspectionRequired(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInspectionRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInspectionRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInspectionRequired: %w", err)
	}
	return oldValue.InspectionRequired, nil
}

// ClearInspectionRequired clears the value of the "inspection_required" field.
func (m *BidMutation) ClearInspectionRequired() {
	m.inspection_required = nil
	m.clearedFields[bid.FieldInspectionRequired] = struct{}{}
}

// InspectionRequiredCleared returns if the "inspection_required" field was cleared in this mutation.
func (m *BidMutation) InspectionRequiredCleared() bool {
	_, ok := m.clearedFields[bid.FieldInspectionRequired]
	return ok
}

// ResetInspectionRequired resets all changes to the "inspection_required" field.
func (m *BidMutation) ResetInspectionRequired() {
	m.inspection_required = nil
	delete(m.clearedFields, bid.FieldInspectionRequired)
}

// SetPrimaryProductCategory sets the "primary_product_category" field.
func (m *BidMutation) SetPrimaryProductCategory(s string) {
	m.primary_product_category = &s
}

// PrimaryProductCategory returns the value of the "primary_product_category" field in the mutation.
func (m *BidMutation) PrimaryProductCategory() (r string, exists bool) {
	v := m.primary_product_category
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryProductCategory returns the old "primary_product_category" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldPrimaryProductCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryProductCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryProductCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryProductCategory: %w", err)
	}
	return oldValue.PrimaryProductCategory, nil
}

// ClearPrimaryProductCategory clears the value of the "primary_product_category" field.
func (m *BidMutation) ClearPrimaryProductCategory() {
	m.primary_product_category = nil
	m.clearedFields[bid.FieldPrimaryProductCategory] = struct{}{}
}

// PrimaryProductCategoryCleared returns if the "primary_product_category" field was cleared in this mutation.
func (m *BidMutation) PrimaryProductCategoryCleared() bool {
	_, ok := m.clearedFields[bid.FieldPrimaryProductCategory]
	return ok
}

// ResetPrimaryProductCategory resets all changes to the "primary_product_category" field.
func (m *BidMutation) ResetPrimaryProductCategory() {
	m.primary_product_category = nil
	delete(m.clearedFields, bid.FieldPrimaryProductCategory)
}

// SetDeliveryAddress sets the "delivery_address" field.
func (m *BidMutation) SetDeliveryAddress(s string) {
	m.delivery_address = &s
}

// DeliveryAddress returns the value of the "delivery_address" field in the mutation.
func (m *BidMutation) DeliveryAddress() (r string, exists bool) {
	v := m.delivery_address
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryAddress returns the old "delivery_address" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldDeliveryAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryAddress: %w", err)
	}
	return oldValue.DeliveryAddress, nil
}

// ClearDeliveryAddress clears the value of the "delivery_address" field.
func (m *BidMutation) ClearDeliveryAddress() {
	m.delivery_address = nil
	m.clearedFields[bid.FieldDeliveryAddress] = struct{}{}
}

// DeliveryAddressCleared returns if the "delivery_address" field was cleared in this mutation.
func (m *BidMutation) DeliveryAddressCleared() bool {
	_, ok := m.clearedFields[bid.FieldDeliveryAddress]
	return ok
}

// ResetDeliveryAddress resets all changes to the "delivery_address" field.
func (m *BidMutation) ResetDeliveryAddress() {
	m.delivery_address = nil
	delete(m.clearedFields, bid.FieldDeliveryAddress)
}

// SetScopeOfSupply sets the "scope_of_supply" field.
func (m *BidMutation) SetScopeOfSupply(s string) {
	m.scope_of_supply = &s
}

// ScopeOfSupply returns the value of the "scope_of_supply" field in the mutation.
func (m *BidMutation) ScopeOfSupply() (r string, exists bool) {
	v := m.scope_of_supply
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeOfSupply returns the old "scope_of_supply" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldScopeOfSupply(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeOfSupply is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeOfSupply requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeOfSupply: %w", err)
	}
	return oldValue.ScopeOfSupply, nil
}

// ClearScopeOfSupply clears the value of the "scope_of_supply" field.
func (m *BidMutation) ClearScopeOfSupply() {
	m.scope_of_supply = nil
	m.clearedFields[bid.FieldScopeOfSupply] = struct{}{}
}

// ScopeOfSupplyCleared returns if the "scope_of_supply" field was cleared in this mutation.
func (m *BidMutation) ScopeOfSupplyCleared() bool {
	_, ok := m.clearedFields[bid.FieldScopeOfSupply]
	return ok
}

// ResetScopeOfSupply resets all changes to the "scope_of_supply" field.
func (m *BidMutation) ResetScopeOfSupply() {
	m.scope_of_supply = nil
	delete(m.clearedFields, bid.FieldScopeOfSupply)
}

// SetOptionClause sets the "option_clause" field.
func (m *BidMutation) SetOptionClause(s string) {
	m.option_clause = &s
}

// OptionClause returns the value of the "option_clause" field in the mutation.
func (m *BidMutation) OptionClause() (r string, exists bool) {
	v := m.option_clause
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionClause returns the old "option_clause" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldOptionClause(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionClause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionClause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionClause: %w", err)
	}
	return oldValue.OptionClause, nil
}

// ClearOptionClause clears the value of the "option_clause" field.
func (m *BidMutation) ClearOptionClause() {
	m.option_clause = nil
	m.clearedFields[bid.FieldOptionClause] = struct{}{}
}

// OptionClauseCleared returns if the "option_clause" field was cleared in this mutation.
func (m *BidMutation) OptionClauseCleared() bool {
	_, ok := m.clearedFields[bid.FieldOptionClause]
	return ok
}

// ResetOptionClause resets all changes to the "option_clause" field.
func (m *BidMutation) ResetOptionClause() {
	m.option_clause = nil
	delete(m.clearedFields, bid.FieldOptionClause)
}

// SetSourceFile sets the "source_file" field.
func (m *BidMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *BidMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldSourceFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ClearSourceFile clears the value of the "source_file" field.
func (m *BidMutation) ClearSourceFile() {
	m.source_file = nil
	m.clearedFields[bid.FieldSourceFile] = struct{}{}
}

// SourceFileCleared returns if the "source_file" field was cleared in this mutation.
func (m *BidMutation) SourceFileCleared() bool {
	_, ok := m.clearedFields[bid.FieldSourceFile]
	return ok
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *BidMutation) ResetSourceFile() {
	m.source_file = nil
	delete(m.clearedFields, bid.FieldSourceFile)
}

// SetRawText sets the "raw_text" field.
func (m *BidMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *BidMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *BidMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[bid.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *BidMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[bid.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *BidMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, bid.FieldRawText)
}

// SetEmbedding sets the "embedding" field.
func (m *BidMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *BidMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *BidMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *BidMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *BidMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[bid.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *BidMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[bid.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *BidMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, bid.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *BidMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BidMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BidMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BidMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BidMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Bid entity.
// If the Bid object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BidMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BidMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *BidMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *BidMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *BidMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *BidMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *BidMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BidMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BidMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the BidMutation builder.
func (m *BidMutation) Where(ps ...predicate.Bid) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BidMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BidMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bid, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BidMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BidMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bid).
func (m *BidMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BidMutation) Fields() []string {
	fields := make([]string, 0, 31)
	if m.bid_number != nil {
		fields = append(fields, bid.FieldBidNumber)
	}
	if m.dated != nil {
		fields = append(fields, bid.FieldDated)
	}
	if m.beneficiary != nil {
		fields = append(fields, bid.FieldBeneficiary)
	}
	if m.ministry != nil {
		fields = append(fields, bid.FieldMinistry)
	}
	if m.department != nil {
		fields = append(fields, bid.FieldDepartment)
	}
	if m.organisation != nil {
		fields = append(fields, bid.FieldOrganisation)
	}
	if m.office_name != nil {
		fields = append(fields, bid.FieldOfficeName)
	}
	if m.item_category != nil {
		fields = append(fields, bid.FieldItemCategory)
	}
	if m.contract_period != nil {
		fields = append(fields, bid.FieldContractPeriod)
	}
	if m.bid_end_datetime != nil {
		fields = append(fields, bid.FieldBidEndDatetime)
	}
	if m.bid_open_datetime != nil {
		fields = append(fields, bid.FieldBidOpenDatetime)
	}
	if m.bid_offer_validity_days != nil {
		fields = append(fields, bid.FieldBidOfferValidityDays)
	}
	if m.delivery_days != nil {
		fields = append(fields, bid.FieldDeliveryDays)
	}
	if m.total_quantity != nil {
		fields = append(fields, bid.FieldTotalQuantity)
	}
	if m.estimated_bid_value != nil {
		fields = append(fields, bid.FieldEstimatedBidValue)
	}
	if m.similar_category != nil {
		fields = append(fields, bid.FieldSimilarCategory)
	}
	if m.mse_exemption != nil {
		fields = append(fields, bid.FieldMseExemption)
	}
	if m.startup_exemption != nil {
		fields = append(fields, bid.FieldStartupExemption)
	}
	if m.mse_purchase_preference != nil {
		fields = append(fields, bid.FieldMsePurchasePreference)
	}
	if m.mii_purchase_preference != nil {
		fields = append(fields, bid.FieldMiiPurchasePreference)
	}
	if m.evaluation_method != nil {
		fields = append(fields, bid.FieldEvaluationMethod)
	}
	if m.inspection_required != nil {
		fields = append(fields, bid.FieldInspectionRequired)
	}
	if m.primary_product_category != nil {
		fields = append(fields, bid.FieldPrimaryProductCategory)
	}
	if m.delivery_address != nil {
		fields = append(fields, bid.FieldDeliveryAddress)
	}
	if m.scope_of_supply != nil {
		fields = append(fields, bid.FieldScopeOfSupply)
	}
	if m.option_clause != nil {
		fields = append(fields, bid.FieldOptionClause)
	}
	if m.source_file != nil {
		fields = append(fields, bid.FieldSourceFile)
	}
	if m.raw_text != nil {
		fields = append(fields, bid.FieldRawText)
	}
	if m.embedding != nil {
		fields = append(fields, bid.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, bid.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bid.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BidMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bid.FieldBidNumber:
		return m.BidNumber()
	case bid.FieldDated:
		return m.Dated()
	case bid.FieldBeneficiary:
		return m.Beneficiary()
	case bid.FieldMinistry:
		return m.Ministry()
	case bid.FieldDepartment:
		return m.Department()
	case bid.FieldOrganisation:
		return m.Organisation()
	case bid.FieldOfficeName:
		return m.OfficeName()
	case bid.FieldItemCategory:
		return m.ItemCategory()
	case bid.FieldContractPeriod:
		return m.ContractPeriod()
	case bid.FieldBidEndDatetime:
		return m.BidEndDatetime()
	case bid.FieldBidOpenDatetime:
		return m.BidOpenDatetime()
	case bid.FieldBidOfferValidityDays:
		return m.BidOfferValidityDays()
	case bid.FieldDeliveryDays:
		return m.DeliveryDays()
	case bid.FieldTotalQuantity:
		return m.TotalQuantity()
	case bid.FieldEstimatedBidValue:
		return m.EstimatedBidValue()
	case bid.FieldSimilarCategory:
		return m.SimilarCategory()
	case bid.FieldMseExemption:
		return m.MseExemption()
	case bid.FieldStartupExemption:
		return m.StartupExemption()
	case bid.FieldMsePurchasePreference:
		return m.MsePurchasePreference()
	case bid.FieldMiiPurchasePreference:
		return m.MiiPurchasePreference()
	case bid.FieldEvaluationMethod:
		return m.EvaluationMethod()
	case bid.FieldInspectionRequired:
		return m.InspectionRequired()
	case bid.FieldPrimaryProductCategory:
		return m.PrimaryProductCategory()
	case bid.FieldDeliveryAddress:
		return m.DeliveryAddress()
	case bid.FieldScopeOfSupply:
		return m.ScopeOfSupply()
	case bid.FieldOptionClause:
		return m.OptionClause()
	case bid.FieldSourceFile:
		return m.SourceFile()
	case bid.FieldRawText:
		return m.RawText()
	case bid.FieldEmbedding:
		return m.Embedding()
	case bid.FieldCreatedAt:
		return m.CreatedAt()
	case bid.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BidMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bid.FieldBidNumber:
		return m.OldBidNumber(ctx)
	case bid.FieldDated:
		return m.OldDated(ctx)
	case bid.FieldBeneficiary:
		return m.OldBeneficiary(ctx)
	case bid.FieldMinistry:
		return m.OldMinistry(ctx)
	case bid.FieldDepartment:
		return m.OldDepartment(ctx)
	case bid.FieldOrganisation:
		return m.OldOrganisation(ctx)
	case bid.FieldOfficeName:
		return m.OldOfficeName(ctx)
	case bid.FieldItemCategory:
		return m.OldItemCategory(ctx)
	case bid.FieldContractPeriod:
		return m.OldContractPeriod(ctx)
	case bid.FieldBidEndDatetime:
		return m.OldBidEndDatetime(ctx)
	case bid.FieldBidOpenDatetime:
		return m.OldBidOpenDatetime(ctx)
	case bid.FieldBidOfferValidityDays:
		return m.OldBidOfferValidityDays(ctx)
	case bid.FieldDeliveryDays:
		return m.OldDeliveryDays(ctx)
	case bid.FieldTotalQuantity:
		return m.OldTotalQuantity(ctx)
	case bid.FieldEstimatedBidValue:
		return m.OldEstimatedBidValue(ctx)
	case bid.FieldSimilarCategory:
		return m.OldSimilarCategory(ctx)
	case bid.FieldMseExemption:
		return m.OldMseExemption(ctx)
	case bid.FieldStartupExemption:
		return m.OldStartupExemption(ctx)
	case bid.FieldMsePurchasePreference:
		return m.OldMsePurchasePreference(ctx)
	case bid.FieldMiiPurchasePreference:
		return m.OldMiiPurchasePreference(ctx)
	case bid.FieldEvaluationMethod:
		return m.OldEvaluationMethod(ctx)
	case bid.FieldInspectionRequired:
		return m.OldInspectionRequired(ctx)
	case bid.FieldPrimaryProductCategory:
		return m.OldPrimaryProductCategory(ctx)
	case bid.FieldDeliveryAddress:
		return m.OldDeliveryAddress(ctx)
	case bid.FieldScopeOfSupply:
		return m.OldScopeOfSupply(ctx)
	case bid.FieldOptionClause:
		return m.OldOptionClause(ctx)
	case bid.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case bid.FieldRawText:
		return m.OldRawText(ctx)
	case bid.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case bid.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bid.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Bid field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BidMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bid.FieldBidNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidNumber(v)
		return nil
	case bid.FieldDated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDated(v)
		return nil
	case bid.FieldBeneficiary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeneficiary(v)
		return nil
	case bid.FieldMinistry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinistry(v)
		return nil
	case bid.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case bid.FieldOrganisation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganisation(v)
		return nil
	case bid.FieldOfficeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfficeName(v)
		return nil
	case bid.FieldItemCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCategory(v)
		return nil
	case bid.FieldContractPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractPeriod(v)
		return nil
	case bid.FieldBidEndDatetime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidEndDatetime(v)
		return nil
	case bid.FieldBidOpenDatetime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidOpenDatetime(v)
		return nil
	case bid.FieldBidOfferValidityDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidOfferValidityDays(v)
		return nil
	case bid.FieldDeliveryDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryDays(v)
		return nil
	case bid.FieldTotalQuantity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuantity(v)
		return nil
	case bid.FieldEstimatedBidValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedBidValue(v)
		return nil
	case bid.FieldSimilarCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarCategory(v)
		return nil
	case bid.FieldMseExemption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMseExemption(v)
		return nil
	case bid.FieldStartupExemption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartupExemption(v)
		return nil
	case bid.FieldMsePurchasePreference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMsePurchasePreference(v)
		return nil
	case bid.FieldMiiPurchasePreference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMiiPurchasePreference(v)
		return nil
	case bid.FieldEvaluationMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationMethod(v)
		return nil
	case bid.FieldInspectionRequired:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInspectionRequired(v)
		return nil
	case bid.FieldPrimaryProductCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryProductCategory(v)
		return nil
	case bid.FieldDeliveryAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryAddress(v)
		return nil
	case bid.FieldScopeOfSupply:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeOfSupply(v)
		return nil
	case bid.FieldOptionClause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionClause(v)
		return nil
	case bid.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case bid.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case bid.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case bid.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bid.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Bid field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BidMutation) AddedFields() []string {
	var fields []string
	if m.addbid_offer_validity_days != nil {
		fields = append(fields, bid.FieldBidOfferValidityDays)
	}
	if m.adddelivery_days != nil {
		fields = append(fields, bid.FieldDeliveryDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BidMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bid.FieldBidOfferValidityDays:
		return m.AddedBidOfferValidityDays()
	case bid.FieldDeliveryDays:
		return m.AddedDeliveryDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BidMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bid.FieldBidOfferValidityDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBidOfferValidityDays(v)
		return nil
	case bid.FieldDeliveryDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveryDays(v)
		return nil
	}
	return fmt.Errorf("unknown Bid numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BidMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bid.FieldDated) {
		fields = append(fields, bid.FieldDated)
	}
	if m.FieldCleared(bid.FieldBeneficiary) {
		fields = append(fields, bid.FieldBeneficiary)
	}
	if m.FieldCleared(bid.FieldMinistry) {
		fields = append(fields, bid.FieldMinistry)
	}
	if m.FieldCleared(bid.FieldDepartment) {
		fields = append(fields, bid.FieldDepartment)
	}
	if m.FieldCleared(bid.FieldOrganisation) {
		fields = append(fields, bid.FieldOrganisation)
	}
	if m.FieldCleared(bid.FieldOfficeName) {
		fields = append(fields, bid.FieldOfficeName)
	}
	if m.FieldCleared(bid.FieldItemCategory) {
		fields = append(fields, bid.FieldItemCategory)
	}
	if m.FieldCleared(bid.FieldContractPeriod) {
		fields = append(fields, bid.FieldContractPeriod)
	}
	if m.FieldCleared(bid.FieldBidEndDatetime) {
		fields = append(fields, bid.FieldBidEndDatetime)
	}
	if m.FieldCleared(bid.FieldBidOpenDatetime) {
		fields = append(fields, bid.FieldBidOpenDatetime)
	}
	if m.FieldCleared(bid.FieldBidOfferValidityDays) {
		fields = append(fields, bid.FieldBidOfferValidityDays)
	}
	if m.FieldCleared(bid.FieldDeliveryDays) {
		fields = append(fields, bid.FieldDeliveryDays)
	}
	if m.FieldCleared(bid.FieldTotalQuantity) {
		fields = append(fields, bid.FieldTotalQuantity)
	}
	if m.FieldCleared(bid.FieldEstimatedBidValue) {
		fields = append(fields, bid.FieldEstimatedBidValue)
	}
	if m.FieldCleared(bid.FieldSimilarCategory) {
		fields = append(fields, bid.FieldSimilarCategory)
	}
	if m.FieldCleared(bid.FieldMseExemption) {
		fields = append(fields, bid.FieldMseExemption)
	}
	if m.FieldCleared(bid.FieldStartupExemption) {
		fields = append(fields, bid.FieldStartupExemption)
	}
	if m.FieldCleared(bid.FieldMsePurchasePreference) {
		fields = append(fields, bid.FieldMsePurchasePreference)
	}
	if m.FieldCleared(bid.FieldMiiPurchasePreference) {
		fields = append(fields, bid.FieldMiiPurchasePreference)
	}
	if m.FieldCleared(bid.FieldEvaluationMethod) {
		fields = append(fields, bid.FieldEvaluationMethod)
	}
	if m.FieldCleared(bid.FieldInspectionRequired) {
		fields = append(fields, bid.FieldInspectionRequired)
	}
	if m.FieldCleared(bid.FieldPrimaryProductCategory) {
		fields = append(fields, bid.FieldPrimaryProductCategory)
	}
	if m.FieldCleared(bid.FieldDeliveryAddress) {
		fields = append(fields, bid.FieldDeliveryAddress)
	}
	if m.FieldCleared(bid.FieldScopeOfSupply) {
		fields = append(fields, bid.FieldScopeOfSupply)
	}
	if m.FieldCleared(bid.FieldOptionClause) {
		fields = append(fields, bid.FieldOptionClause)
	}
	if m.FieldCleared(bid.FieldSourceFile) {
		fields = append(fields, bid.FieldSourceFile)
	}
	if m.FieldCleared(bid.FieldRawText) {
		fields = append(fields, bid.FieldRawText)
	}
	if m.FieldCleared(bid.FieldEmbedding) {
		fields = append(fields, bid.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BidMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BidMutation) ClearField(name string) error {
	switch name {
	case bid.FieldDated:
		m.ClearDated()
		return nil
	case bid.FieldBeneficiary:
		m.ClearBeneficiary()
		return nil
	case bid.FieldMinistry:
		m.ClearMinistry()
		return nil
	case bid.FieldDepartment:
		m.ClearDepartment()
		return nil
	case bid.FieldOrganisation:
		m.ClearOrganisation()
		return nil
	case bid.FieldOfficeName:
		m.ClearOfficeName()
		return nil
	case bid.FieldItemCategory:
		m.ClearItemCategory()
		return nil
	case bid.FieldContractPeriod:
		m.ClearContractPeriod()
		return nil
	case bid.FieldBidEndDatetime:
		m.ClearBidEndDatetime()
		return nil
	case bid.FieldBidOpenDatetime:
		m.ClearBidOpenDatetime()
		return nil
	case bid.FieldBidOfferValidityDays:
		m.ClearBidOfferValidityDays()
		return nil
	case bid.FieldDeliveryDays:
		m.ClearDeliveryDays()
		return nil
	case bid.FieldTotalQuantity:
		m.ClearTotalQuantity()
		return nil
	case bid.FieldEstimatedBidValue:
		m.ClearEstimatedBidValue()
		return nil
	case bid.FieldSimilarCategory:
		m.ClearSimilarCategory()
		return nil
	case bid.FieldMseExemption:
		m.ClearMseExemption()
		return nil
	case bid.FieldStartupExemption:
		m.ClearStartupExemption()
		return nil
	case bid.FieldMsePurchasePreference:
		m.ClearMsePurchasePreference()
		return nil
	case bid.FieldMiiPurchasePreference:
		m.ClearMiiPurchasePreference()
		return nil
	case bid.FieldEvaluationMethod:
		m.ClearEvaluationMethod()
		return nil
	case bid.FieldInspectionRequired:
		m.ClearInspectionRequired()
		return nil
	case bid.FieldPrimaryProductCategory:
		m.ClearPrimaryProductCategory()
		return nil
	case bid.FieldDeliveryAddress:
		m.ClearDeliveryAddress()
		return nil
	case bid.FieldScopeOfSupply:
		m.ClearScopeOfSupply()
		return nil
	case bid.FieldOptionClause:
		m.ClearOptionClause()
		return nil
	case bid.FieldSourceFile:
		m.ClearSourceFile()
		return nil
	case bid.FieldRawText:
		m.ClearRawText()
		return nil
	case bid.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown Bid nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BidMutation) ResetField(name string) error {
	switch name {
	case bid.FieldBidNumber:
		m.ResetBidNumber()
		return nil
	case bid.FieldDated:
		m.ResetDated()
		return nil
	case bid.FieldBeneficiary:
		m.ResetBeneficiary()
		return nil
	case bid.FieldMinistry:
		m.ResetMinistry()
		return nil
	case bid.FieldDepartment:
		m.ResetDepartment()
		return nil
	case bid.FieldOrganisation:
		m.ResetOrganisation()
		return nil
	case bid.FieldOfficeName:
		m.ResetOfficeName()
		return nil
	case bid.FieldItemCategory:
		m.ResetItemCategory()
		return nil
	case bid.FieldContractPeriod:
		m.ResetContractPeriod()
		return nil
	case bid.FieldBidEndDatetime:
		m.ResetBidEndDatetime()
		return nil
	case bid.FieldBidOpenDatetime:
		m.ResetBidOpenDatetime()
		return nil
	case bid.FieldBidOfferValidityDays:
		m.ResetBidOfferValidityDays()
		return nil
	case bid.FieldDeliveryDays:
		m.ResetDeliveryDays()
		return nil
	case bid.FieldTotalQuantity:
		m.ResetTotalQuantity()
		return nil
	case bid.FieldEstimatedBidValue:
		m.ResetEstimatedBidValue()
		return nil
	case bid.FieldSimilarCategory:
		m.ResetSimilarCategory()
		return nil
	case bid.FieldMseExemption:
		m.ResetMseExemption()
		return nil
	case bid.FieldStartupExemption:
		m.ResetStartupExemption()
		return nil
	case bid.FieldMsePurchasePreference:
		m.ResetMsePurchasePreference()
		return nil
	case bid.FieldMiiPurchasePreference:
		m.ResetMiiPurchasePreference()
		return nil
	case bid.FieldEvaluationMethod:
		m.ResetEvaluationMethod()
		return nil
	case bid.FieldInspectionRequired:
		m.ResetInspectionRequired()
		return nil
	case bid.FieldPrimaryProductCategory:
		m.ResetPrimaryProductCategory()
		return nil
	case bid.FieldDeliveryAddress:
		m.ResetDeliveryAddress()
		return nil
	case bid.FieldScopeOfSupply:
		m.ResetScopeOfSupply()
		return nil
	case bid.FieldOptionClause:
		m.ResetOptionClause()
		return nil
	case bid.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case bid.FieldRawText:
		m.ResetRawText()
		return nil
	case bid.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case bid.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bid.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Bid field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BidMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, bid.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BidMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bid.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BidMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, bid.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BidMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bid.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BidMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, bid.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BidMutation) EdgeCleared(name string) bool {
	switch name {
	case bid.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BidMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Bid unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BidMutation) ResetEdge(name string) error {
	switch name {
	case bid.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Bid edge %s", name)
}

// BuyerDetailMutation represents an operation that mutates the BuyerDetail nodes in the graph.
type BuyerDetailMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	designation     *string
	contact_no      *string
	email           *string
	gstin           *string
	address         *string
	clearedFields   map[string]struct{}
	contract        *uuid.UUID
	clearedcontract bool
	done            bool
	oldValue        func(context.Context) (*BuyerDetail, error)
	predicates      []predicate.BuyerDetail
}

var _ ent.Mutation = (*BuyerDetailMutation)(nil)

// buyerdetailOption allows management of the mutation configuration using functional options.
type buyerdetailOption func(*BuyerDetailMutation)

// newBuyerDetailMutation creates new mutation for the BuyerDetail entity.
func newBuyerDetailMutation(c config, op Op, opts ...buyerdetailOption) *BuyerDetailMutation {
	m := &BuyerDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeBuyerDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuyerDetailID sets the ID field of the mutation.
func withBuyerDetailID(id uuid.UUID) buyerdetailOption {
	return func(m *BuyerDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *BuyerDetail
		)
		m.oldValue = func(ctx context.Context) (*BuyerDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BuyerDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuyerDetail sets the old BuyerDetail of the mutation.
func withBuyerDetail(node *BuyerDetail) buyerdetailOption {
	return func(m *BuyerDetailMutation) {
		m.oldValue = func(context.Context) (*BuyerDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuyerDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuyerDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BuyerDetail entities.
func (m *BuyerDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuyerDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuyerDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BuyerDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *BuyerDetailMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *BuyerDetailMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the BuyerDetail entity.
// If the BuyerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerDetailMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *BuyerDetailMutation) ResetContractID() {
	m.contract = nil
}

// SetDesignation sets the "designation" field.
func (m *BuyerDetailMutation) SetDesignation(s string) {
	m.designation = &s
}

// Designation returns the value of the "designation" field in the mutation.
func (m *BuyerDetailMutation) Designation() (r string, exists bool) {
	v := m.designation
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignation returns the old "designation" field's value of the BuyerDetail entity.
// If the BuyerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerDetailMutation) OldDesignation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignation: %w", err)
	}
	return oldValue.Designation, nil
}

// ClearDesignation clears the value of the "designation" field.
func (m *BuyerDetailMutation) ClearDesignation() {
	m.designation = nil
	m.clearedFields[buyerdetail.FieldDesignation] = struct{}{}
}

// DesignationCleared returns if the "designation" field was cleared in this mutation.
func (m *BuyerDetailMutation) DesignationCleared() bool {
	_, ok := m.clearedFields[buyerdetail.FieldDesignation]
	return ok
}

// ResetDesignation resets all changes to the "designation" field.
func (m *BuyerDetailMutation) ResetDesignation() {
	m.designation = nil
	delete(m.clearedFields, buyerdetail.FieldDesignation)
}

// SetContactNo sets the "contact_no" field.
func (m *BuyerDetailMutation) SetContactNo(s string) {
	m.contact_no = &s
}

// ContactNo returns the value of the "contact_no" field in the mutation.
func (m *BuyerDetailMutation) ContactNo() (r string, exists bool) {
	v := m.contact_no
	if v == nil {
		return
	}
	return *v, true
}

// OldContactNo returns the old "contact_no" field's value of the BuyerDetail entity.
// If the BuyerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerDetailMutation) OldContactNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactNo: %w", err)
	}
	return oldValue.ContactNo, nil
}

// ClearContactNo clears the value of the "contact_no" field.
func (m *BuyerDetailMutation) ClearContactNo() {
	m.contact_no = nil
	m.clearedFields[buyerdetail.FieldContactNo] = struct{}{}
}

// ContactNoCleared returns if the "contact_no" field was cleared in this mutation.
func (m *BuyerDetailMutation) ContactNoCleared() bool {
	_, ok := m.clearedFields[buyerdetail.FieldContactNo]
	return ok
}

// ResetContactNo resets all changes to the "contact_no" field.
func (m *BuyerDetailMutation) ResetContactNo() {
	m.contact_no = nil
	delete(m.clearedFields, buyerdetail.FieldContactNo)
}

// SetEmail sets the "email" field.
func (m *BuyerDetailMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *BuyerDetailMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the BuyerDetail entity.
// If the BuyerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerDetailMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *BuyerDetailMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[buyerdetail.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *BuyerDetailMutation) EmailCleared() bool {
	_, ok := m.clearedFields[buyerdetail.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *BuyerDetailMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, buyerdetail.FieldEmail)
}

// SetGstin sets the "gstin" field.
func (m *BuyerDetailMutation) SetGstin(s string) {
	m.gstin = &s
}

// Gstin returns the value of the "gstin" field in the mutation.
func (m *BuyerDetailMutation) Gstin() (r string, exists bool) {
	v := m.gstin
	if v == nil {
		return
	}
	return *v, true
}

// OldGstin returns the old "gstin" field's value of the BuyerDetail entity.
// If the BuyerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerDetailMutation) OldGstin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGstin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGstin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGstin: %w", err)
	}
	return oldValue.Gstin, nil
}

// ClearGstin clears the value of the "gstin" field.
func (m *BuyerDetailMutation) ClearGstin() {
	m.gstin = nil
	m.clearedFields[buyerdetail.FieldGstin] = struct{}{}
}

// GstinCleared returns if the "gstin" field was cleared in this mutation.
func (m *BuyerDetailMutation) GstinCleared() bool {
	_, ok := m.clearedFields[buyerdetail.FieldGstin]
	return ok
}

// ResetGstin resets all changes to the "gstin" field.
func (m *BuyerDetailMutation) ResetGstin() {
	m.gstin = nil
	delete(m.clearedFields, buyerdetail.FieldGstin)
}

// SetAddress sets the "address" field.
func (m *BuyerDetailMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *BuyerDetailMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the BuyerDetail entity.
// If the BuyerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuyerDetailMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *BuyerDetailMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[buyerdetail.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *BuyerDetailMutation) AddressCleared() bool {
	_, ok := m.clearedFields[buyerdetail.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *BuyerDetailMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, buyerdetail.FieldAddress)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *BuyerDetailMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[buyerdetail.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *BuyerDetailMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *BuyerDetailMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *BuyerDetailMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the BuyerDetailMutation builder.
func (m *BuyerDetailMutation) Where(ps ...predicate.BuyerDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuyerDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuyerDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BuyerDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuyerDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuyerDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BuyerDetail).
func (m *BuyerDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuyerDetailMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.contract != nil {
		fields = append(fields, buyerdetail.FieldContractID)
	}
	if m.designation != nil {
		fields = append(fields, buyerdetail.FieldDesignation)
	}
	if m.contact_no != nil {
		fields = append(fields, buyerdetail.FieldContactNo)
	}
	if m.email != nil {
		fields = append(fields, buyerdetail.FieldEmail)
	}
	if m.gstin != nil {
		fields = append(fields, buyerdetail.FieldGstin)
	}
	if m.address != nil {
		fields = append(fields, buyerdetail.FieldAddress)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuyerDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case buyerdetail.FieldContractID:
		return m.ContractID()
	case buyerdetail.FieldDesignation:
		return m.Designation()
	case buyerdetail.FieldContactNo:
		return m.ContactNo()
	case buyerdetail.FieldEmail:
		return m.Email()
	case buyerdetail.FieldGstin:
		return m.Gstin()
	case buyerdetail.FieldAddress:
		return m.Address()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuyerDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case buyerdetail.FieldContractID:
		return m.OldContractID(ctx)
	case buyerdetail.FieldDesignation:
		return m.OldDesignation(ctx)
	case buyerdetail.FieldContactNo:
		return m.OldContactNo(ctx)
	case buyerdetail.FieldEmail:
		return m.OldEmail(ctx)
	case buyerdetail.FieldGstin:
		return m.OldGstin(ctx)
	case buyerdetail.FieldAddress:
		return m.OldAddress(ctx)
	}
	return nil, fmt.Errorf("unknown BuyerDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuyerDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case buyerdetail.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case buyerdetail.FieldDesignation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignation(v)
		return nil
	case buyerdetail.FieldContactNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactNo(v)
		return nil
	case buyerdetail.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case buyerdetail.FieldGstin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGstin(v)
		return nil
	case buyerdetail.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	}
	return fmt.Errorf("unknown BuyerDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuyerDetailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuyerDetailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuyerDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BuyerDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuyerDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(buyerdetail.FieldDesignation) {
		fields = append(fields, buyerdetail.FieldDesignation)
	}
	if m.FieldCleared(buyerdetail.FieldContactNo) {
		fields = append(fields, buyerdetail.FieldContactNo)
	}
	if m.FieldCleared(buyerdetail.FieldEmail) {
		fields = append(fields, buyerdetail.FieldEmail)
	}
	if m.FieldCleared(buyerdetail.FieldGstin) {
		fields = append(fields, buyerdetail.FieldGstin)
	}
	if m.FieldCleared(buyerdetail.FieldAddress) {
		fields = append(fields, buyerdetail.FieldAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuyerDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuyerDetailMutation) ClearField(name string) error {
	switch name {
	case buyerdetail.FieldDesignation:
		m.ClearDesignation()
		return nil
	case buyerdetail.FieldContactNo:
		m.ClearContactNo()
		return nil
	case buyerdetail.FieldEmail:
		m.ClearEmail()
		return nil
	case buyerdetail.FieldGstin:
		m.ClearGstin()
		return nil
	case buyerdetail.FieldAddress:
		m.ClearAddress()
		return nil
	}
	return fmt.Errorf("unknown BuyerDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuyerDetailMutation) ResetField(name string) error {
	switch name {
	case buyerdetail.FieldContractID:
		m.ResetContractID()
		return nil
	case buyerdetail.FieldDesignation:
		m.ResetDesignation()
		return nil
	case buyerdetail.FieldContactNo:
		m.ResetContactNo()
		return nil
	case buyerdetail.FieldEmail:
		m.ResetEmail()
		return nil
	case buyerdetail.FieldGstin:
		m.ResetGstin()
		return nil
	case buyerdetail.FieldAddress:
		m.ResetAddress()
		return nil
	}
	return fmt.Errorf("unknown BuyerDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuyerDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, buyerdetail.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuyerDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case buyerdetail.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuyerDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuyerDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuyerDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, buyerdetail.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuyerDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case buyerdetail.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuyerDetailMutation) ClearEdge(name string) error {
	switch name {
	case buyerdetail.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown BuyerDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuyerDetailMutation) ResetEdge(name string) error {
	switch name {
	case buyerdetail.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown BuyerDetail edge %s", name)
}

// ConsigneeDetailMutation represents an operation that mutates the ConsigneeDetail nodes in the graph.
type ConsigneeDetailMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	s_no           *int
	adds_no        *int
	designation    *string
	email          *string
	contact        *string
	gstin          *string
	address        *string
	lot_no         *string
	quantity       *int
	addquantity    *int
	delivery_start *time.Time
	delivery_end   *time.Time
	delivery_to    *string
	clearedFields  map[string]struct{}
	product        *uuid.UUID
	clearedproduct bool
	done           bool
	oldValue       func(context.Context) (*ConsigneeDetail, error)
	predicates     []predicate.ConsigneeDetail
}

var _ ent.Mutation = (*ConsigneeDetailMutation)(nil)

// consigneedetailOption allows management of the mutation configuration using functional options.
type consigneedetailOption func(*ConsigneeDetailMutation)

// newConsigneeDetailMutation creates new mutation for the ConsigneeDetail entity.
func newConsigneeDetailMutation(c config, op Op, opts ...consigneedetailOption) *ConsigneeDetailMutation {
	m := &ConsigneeDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeConsigneeDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConsigneeDetailID sets the ID field of the mutation.
func withConsigneeDetailID(id uuid.UUID) consigneedetailOption {
	return func(m *ConsigneeDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *ConsigneeDetail
		)
		m.oldValue = func(ctx context.Context) (*ConsigneeDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConsigneeDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConsigneeDetail sets the old ConsigneeDetail of the mutation.
func withConsigneeDetail(node *ConsigneeDetail) consigneedetailOption {
	return func(m *ConsigneeDetailMutation) {
		m.oldValue = func(context.Context) (*ConsigneeDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConsigneeDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConsigneeDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConsigneeDetail entities.
func (m *ConsigneeDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConsigneeDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConsigneeDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConsigneeDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProductID sets the "product_id" field.
func (m *ConsigneeDetailMutation) SetProductID(u uuid.UUID) {
	m.product = &u
}

// ProductID returns the value of the "product_id" field in the mutation.
func (m *ConsigneeDetailMutation) ProductID() (r uuid.UUID, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProductID returns the old "product_id" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldProductID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductID: %w", err)
	}
	return oldValue.ProductID, nil
}

// ResetProductID resets all changes to the "product_id" field.
func (m *ConsigneeDetailMutation) ResetProductID() {
	m.product = nil
}

// SetSNo sets the "s_no" field.
func (m *ConsigneeDetailMutation) SetSNo(i int) {
	m.s_no = &i
	m.adds_no = nil
}

// SNo returns the value of the "s_no" field in the mutation.
func (m *ConsigneeDetailMutation) SNo() (r int, exists bool) {
	v := m.s_no
	if v == nil {
		return
	}
	return *v, true
}

// OldSNo returns the old "s_no" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldSNo(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSNo: %w", err)
	}
	return oldValue.SNo, nil
}

// AddSNo adds i to the "s_no" field.
func (m *ConsigneeDetailMutation) AddSNo(i int) {
	if m.adds_no != nil {
		*m.adds_no += i
	} else {
		m.adds_no = &i
	}
}

// AddedSNo returns the value that was added to the "s_no" field in this mutation.
func (m *ConsigneeDetailMutation) AddedSNo() (r int, exists bool) {
	v := m.adds_no
	if v == nil {
		return
	}
	return *v, true
}

// ClearSNo clears the value of the "s_no" field.
func (m *ConsigneeDetailMutation) ClearSNo() {
	m.s_no = nil
	m.adds_no = nil
	m.clearedFields[consigneedetail.FieldSNo] = struct{}{}
}

// SNoCleared returns if the "s_no" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) SNoCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldSNo]
	return ok
}

// ResetSNo resets all changes to the "s_no" field.
func (m *ConsigneeDetailMutation) ResetSNo() {
	m.s_no = nil
	m.adds_no = nil
	delete(m.clearedFields, consigneedetail.FieldSNo)
}

// SetDesignation sets the "designation" field.
func (m *ConsigneeDetailMutation) SetDesignation(s string) {
	m.designation = &s
}

// Designation returns the value of the "designation" field in the mutation.
func (m *ConsigneeDetailMutation) Designation() (r string, exists bool) {
	v := m.designation
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignation returns the old "designation" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldDesignation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignation: %w", err)
	}
	return oldValue.Designation, nil
}

// ClearDesignation clears the value of the "designation" field.
func (m *ConsigneeDetailMutation) ClearDesignation() {
	m.designation = nil
	m.clearedFields[consigneedetail.FieldDesignation] = struct{}{}
}

// DesignationCleared returns if the "designation" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) DesignationCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldDesignation]
	return ok
}

// ResetDesignation resets all changes to the "designation" field.
func (m *ConsigneeDetailMutation) ResetDesignation() {
	m.designation = nil
	delete(m.clearedFields, consigneedetail.FieldDesignation)
}

// SetEmail sets the "email" field.
func (m *ConsigneeDetailMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ConsigneeDetailMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ConsigneeDetailMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[consigneedetail.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) EmailCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ConsigneeDetailMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, consigneedetail.FieldEmail)
}

// SetContact sets the "contact" field.
func (m *ConsigneeDetailMutation) SetContact(s string) {
	m.contact = &s
}

// Contact returns the value of the "contact" field in the mutation.
func (m *ConsigneeDetailMutation) Contact() (r string, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContact returns the old "contact" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldContact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContact: %w", err)
	}
	return oldValue.Contact, nil
}

// ClearContact clears the value of the "contact" field.
func (m *ConsigneeDetailMutation) ClearContact() {
	m.contact = nil
	m.clearedFields[consigneedetail.FieldContact] = struct{}{}
}

// ContactCleared returns if the "contact" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) ContactCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldContact]
	return ok
}

// ResetContact resets all changes to the "contact" field.
func (m *ConsigneeDetailMutation) ResetContact() {
	m.contact = nil
	delete(m.clearedFields, consigneedetail.FieldContact)
}

// SetGstin sets the "gstin" field.
func (m *ConsigneeDetailMutation) SetGstin(s string) {
	m.gstin = &s
}

// Gstin returns the value of the "gstin" field in the mutation.
func (m *ConsigneeDetailMutation) Gstin() (r string, exists bool) {
	v := m.gstin
	if v == nil {
		return
	}
	return *v, true
}

// OldGstin returns the old "gstin" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldGstin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGstin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGstin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGstin: %w", err)
	}
	return oldValue.Gstin, nil
}

// ClearGstin clears the value of the "gstin" field.
func (m *ConsigneeDetailMutation) ClearGstin() {
	m.gstin = nil
	m.clearedFields[consigneedetail.FieldGstin] = struct{}{}
}

// GstinCleared returns if the "gstin" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) GstinCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldGstin]
	return ok
}

// ResetGstin resets all changes to the "gstin" field.
func (m *ConsigneeDetailMutation) ResetGstin() {
	m.gstin = nil
	delete(m.clearedFields, consigneedetail.FieldGstin)
}

// SetAddress sets the "address" field.
func (m *ConsigneeDetailMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ConsigneeDetailMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ConsigneeDetailMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[consigneedetail.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) AddressCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ConsigneeDetailMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, consigneedetail.FieldAddress)
}

// SetLotNo sets the "lot_no" field.
func (m *ConsigneeDetailMutation) SetLotNo(s string) {
	m.lot_no = &s
}

// LotNo returns the value of the "lot_no" field in the mutation.
func (m *ConsigneeDetailMutation) LotNo() (r string, exists bool) {
	v := m.lot_no
	if v == nil {
		return
	}
	return *v, true
}

// OldLotNo returns the old "lot_no" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldLotNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLotNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLotNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLotNo: %w", err)
	}
	return oldValue.LotNo, nil
}

// ClearLotNo clears the value of the "lot_no" field.
func (m *ConsigneeDetailMutation) ClearLotNo() {
	m.lot_no = nil
	m.clearedFields[consigneedetail.FieldLotNo] = struct{}{}
}

// LotNoCleared returns if the "lot_no" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) LotNoCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldLotNo]
	return ok
}

// ResetLotNo resets all changes to the "lot_no" field.
func (m *ConsigneeDetailMutation) ResetLotNo() {
	m.lot_no = nil
	delete(m.clearedFields, consigneedetail.FieldLotNo)
}

// SetQuantity sets the "quantity" field.
func (m *ConsigneeDetailMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ConsigneeDetailMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldQuantity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *ConsigneeDetailMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ConsigneeDetailMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantity clears the value of the "quantity" field.
func (m *ConsigneeDetailMutation) ClearQuantity() {
	m.quantity = nil
	m.addquantity = nil
	m.clearedFields[consigneedetail.FieldQuantity] = struct{}{}
}

// QuantityCleared returns if the "quantity" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) QuantityCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldQuantity]
	return ok
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ConsigneeDetailMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
	delete(m.clearedFields, consigneedetail.FieldQuantity)
}

// SetDeliveryStart sets the "delivery_start" field.
func (m *ConsigneeDetailMutation) SetDeliveryStart(t time.Time) {
	m.delivery_start = &t
}

// DeliveryStart returns the value of the "delivery_start" field in the mutation.
func (m *ConsigneeDetailMutation) DeliveryStart() (r time.Time, exists bool) {
	v := m.delivery_start
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryStart returns the old "delivery_start" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldDeliveryStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryStart: %w", err)
	}
	return oldValue.DeliveryStart, nil
}

// ClearDeliveryStart clears the value of the "delivery_start" field.
func (m *ConsigneeDetailMutation) ClearDeliveryStart() {
	m.delivery_start = nil
	m.clearedFields[consigneedetail.FieldDeliveryStart] = struct{}{}
}

// DeliveryStartCleared returns if the "delivery_start" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) DeliveryStartCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldDeliveryStart]
	return ok
}

// ResetDeliveryStart resets all changes to the "delivery_start" field.
func (m *ConsigneeDetailMutation) ResetDeliveryStart() {
	m.delivery_start = nil
	delete(m.clearedFields, consigneedetail.FieldDeliveryStart)
}

// SetDeliveryEnd sets the "delivery_end" field.
func (m *ConsigneeDetailMutation) SetDeliveryEnd(t time.Time) {
	m.delivery_end = &t
}

// DeliveryEnd returns the value of the "delivery_end" field in the mutation.
func (m *ConsigneeDetailMutation) DeliveryEnd() (r time.Time, exists bool) {
	v := m.delivery_end
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryEnd returns the old "delivery_end" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldDeliveryEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryEnd: %w", err)
	}
	return oldValue.DeliveryEnd, nil
}

// ClearDeliveryEnd clears the value of the "delivery_end" field.
func (m *ConsigneeDetailMutation) ClearDeliveryEnd() {
	m.delivery_end = nil
	m.clearedFields[consigneedetail.FieldDeliveryEnd] = struct{}{}
}

// DeliveryEndCleared returns if the "delivery_end" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) DeliveryEndCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldDeliveryEnd]
	return ok
}

// ResetDeliveryEnd resets all changes to the "delivery_end" field.
func (m *ConsigneeDetailMutation) ResetDeliveryEnd() {
	m.delivery_end = nil
	delete(m.clearedFields, consigneedetail.FieldDeliveryEnd)
}

// SetDeliveryTo sets the "delivery_to" field.
func (m *ConsigneeDetailMutation) SetDeliveryTo(s string) {
	m.delivery_to = &s
}

// DeliveryTo returns the value of the "delivery_to" field in the mutation.
func (m *ConsigneeDetailMutation) DeliveryTo() (r string, exists bool) {
	v := m.delivery_to
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryTo returns the old "delivery_to" field's value of the ConsigneeDetail entity.
// If the ConsigneeDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConsigneeDetailMutation) OldDeliveryTo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryTo: %w", err)
	}
	return oldValue.DeliveryTo, nil
}

// ClearDeliveryTo clears the value of the "delivery_to" field.
func (m *ConsigneeDetailMutation) ClearDeliveryTo() {
	m.delivery_to = nil
	m.clearedFields[consigneedetail.FieldDeliveryTo] = struct{}{}
}

// DeliveryToCleared returns if the "delivery_to" field was cleared in this mutation.
func (m *ConsigneeDetailMutation) DeliveryToCleared() bool {
	_, ok := m.clearedFields[consigneedetail.FieldDeliveryTo]
	return ok
}

// ResetDeliveryTo resets all changes to the "delivery_to" field.
func (m *ConsigneeDetailMutation) ResetDeliveryTo() {
	m.delivery_to = nil
	delete(m.clearedFields, consigneedetail.FieldDeliveryTo)
}

// ClearProduct clears the "product" edge to the Product entity.
func (m *ConsigneeDetailMutation) ClearProduct() {
	m.clearedproduct = true
	m.clearedFields[consigneedetail.FieldProductID] = struct{}{}
}

// ProductCleared reports if the "product" edge to the Product entity was cleared.
func (m *ConsigneeDetailMutation) ProductCleared() bool {
	return m.clearedproduct
}

// ProductIDs returns the "product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductID instead. It exists only for internal usage by the builders.
func (m *ConsigneeDetailMutation) ProductIDs() (ids []uuid.UUID) {
	if id := m.product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProduct resets all changes to the "product" edge.
func (m *ConsigneeDetailMutation) ResetProduct() {
	m.product = nil
	m.clearedproduct = false
}

// Where appends a list predicates to the ConsigneeDetailMutation builder.
func (m *ConsigneeDetailMutation) Where(ps ...predicate.ConsigneeDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConsigneeDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConsigneeDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConsigneeDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConsigneeDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConsigneeDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConsigneeDetail).
func (m *ConsigneeDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConsigneeDetailMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.product != nil {
		fields = append(fields, consigneedetail.FieldProductID)
	}
	if m.s_no != nil {
		fields = append(fields, consigneedetail.FieldSNo)
	}
	if m.designation != nil {
		fields = append(fields, consigneedetail.FieldDesignation)
	}
	if m.email != nil {
		fields = append(fields, consigneedetail.FieldEmail)
	}
	if m.contact != nil {
		fields = append(fields, consigneedetail.FieldContact)
	}
	if m.gstin != nil {
		fields = append(fields, consigneedetail.FieldGstin)
	}
	if m.address != nil {
		fields = append(fields, consigneedetail.FieldAddress)
	}
	if m.lot_no != nil {
		fields = append(fields, consigneedetail.FieldLotNo)
	}
	if m.quantity != nil {
		fields = append(fields, consigneedetail.FieldQuantity)
	}
	if m.delivery_start != nil {
		fields = append(fields, consigneedetail.FieldDeliveryStart)
	}
	if m.delivery_end != nil {
		fields = append(fields, consigneedetail.FieldDeliveryEnd)
	}
	if m.delivery_to != nil {
		fields = append(fields, consigneedetail.FieldDeliveryTo)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConsigneeDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case consigneedetail.FieldProductID:
		return m.ProductID()
	case consigneedetail.FieldSNo:
		return m.SNo()
	case consigneedetail.FieldDesignation:
		return m.Designation()
	case consigneedetail.FieldEmail:
		return m.Email()
	case consigneedetail.FieldContact:
		return m.Contact()
	case consigneedetail.FieldGstin:
		return m.Gstin()
	case consigneedetail.FieldAddress:
		return m.Address()
	case consigneedetail.FieldLotNo:
		return m.LotNo()
	case consigneedetail.FieldQuantity:
		return m.Quantity()
	case consigneedetail.FieldDeliveryStart:
		return m.DeliveryStart()
	case consigneedetail.FieldDeliveryEnd:
		return m.DeliveryEnd()
	case consigneedetail.FieldDeliveryTo:
		return m.DeliveryTo()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConsigneeDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case consigneedetail.FieldProductID:
		return m.OldProductID(ctx)
	case consigneedetail.FieldSNo:
		return m.OldSNo(ctx)
	case consigneedetail.FieldDesignation:
		return m.OldDesignation(ctx)
	case consigneedetail.FieldEmail:
		return m.OldEmail(ctx)
	case consigneedetail.FieldContact:
		return m.OldContact(ctx)
	case consigneedetail.FieldGstin:
		return m.OldGstin(ctx)
	case consigneedetail.FieldAddress:
		return m.OldAddress(ctx)
	case consigneedetail.FieldLotNo:
		return m.OldLotNo(ctx)
	case consigneedetail.FieldQuantity:
		return m.OldQuantity(ctx)
	case consigneedetail.FieldDeliveryStart:
		return m.OldDeliveryStart(ctx)
	case consigneedetail.FieldDeliveryEnd:
		return m.OldDeliveryEnd(ctx)
	case consigneedetail.FieldDeliveryTo:
		return m.OldDeliveryTo(ctx)
	}
	return nil, fmt.Errorf("unknown ConsigneeDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsigneeDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case consigneedetail.FieldProductID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductID(v)
		return nil
	case consigneedetail.FieldSNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSNo(v)
		return nil
	case consigneedetail.FieldDesignation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignation(v)
		return nil
	case consigneedetail.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case consigneedetail.FieldContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContact(v)
		return nil
	case consigneedetail.FieldGstin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGstin(v)
		return nil
	case consigneedetail.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case consigneedetail.FieldLotNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLotNo(v)
		return nil
	case consigneedetail.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case consigneedetail.FieldDeliveryStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryStart(v)
		return nil
	case consigneedetail.FieldDeliveryEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryEnd(v)
		return nil
	case consigneedetail.FieldDeliveryTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryTo(v)
		return nil
	}
	return fmt.Errorf("unknown ConsigneeDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConsigneeDetailMutation) AddedFields() []string {
	var fields []string
	if m.adds_no != nil {
		fields = append(fields, consigneedetail.FieldSNo)
	}
	if m.addquantity != nil {
		fields = append(fields, consigneedetail.FieldQuantity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConsigneeDetailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case consigneedetail.FieldSNo:
		return m.AddedSNo()
	case consigneedetail.FieldQuantity:
		return m.AddedQuantity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConsigneeDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case consigneedetail.FieldSNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSNo(v)
		return nil
	case consigneedetail.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	}
	return fmt.Errorf("unknown ConsigneeDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConsigneeDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(consigneedetail.FieldSNo) {
		fields = append(fields, consigneedetail.FieldSNo)
	}
	if m.FieldCleared(consigneedetail.FieldDesignation) {
		fields = append(fields, consigneedetail.FieldDesignation)
	}
	if m.FieldCleared(consigneedetail.FieldEmail) {
		fields = append(fields, consigneedetail.FieldEmail)
	}
	if m.FieldCleared(consigneedetail.FieldContact) {
		fields = append(fields, consigneedetail.FieldContact)
	}
	if m.FieldCleared(consigneedetail.FieldGstin) {
		fields = append(fields, consigneedetail.FieldGstin)
	}
	if m.FieldCleared(consigneedetail.FieldAddress) {
		fields = append(fields, consigneedetail.FieldAddress)
	}
	if m.FieldCleared(consigneedetail.FieldLotNo) {
		fields = append(fields, consigneedetail.FieldLotNo)
	}
	if m.FieldCleared(consigneedetail.FieldQuantity) {
		fields = append(fields, consigneedetail.FieldQuantity)
	}
	if m.FieldCleared(consigneedetail.FieldDeliveryStart) {
		fields = append(fields, consigneedetail.FieldDeliveryStart)
	}
	if m.FieldCleared(consigneedetail.FieldDeliveryEnd) {
		fields = append(fields, consigneedetail.FieldDeliveryEnd)
	}
	if m.FieldCleared(consigneedetail.FieldDeliveryTo) {
		fields = append(fields, consigneedetail.FieldDeliveryTo)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConsigneeDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConsigneeDetailMutation) ClearField(name string) error {
	switch name {
	case consigneedetail.FieldSNo:
		m.ClearSNo()
		return nil
	case consigneedetail.FieldDesignation:
		m.ClearDesignation()
		return nil
	case consigneedetail.FieldEmail:
		m.ClearEmail()
		return nil
	case consigneedetail.FieldContact:
		m.ClearContact()
		return nil
	case consigneedetail.FieldGstin:
		m.ClearGstin()
		return nil
	case consigneedetail.FieldAddress:
		m.ClearAddress()
		return nil
	case consigneedetail.FieldLotNo:
		m.ClearLotNo()
		return nil
	case consigneedetail.FieldQuantity:
		m.ClearQuantity()
		return nil
	case consigneedetail.FieldDeliveryStart:
		m.ClearDeliveryStart()
		return nil
	case consigneedetail.FieldDeliveryEnd:
		m.ClearDeliveryEnd()
		return nil
	case consigneedetail.FieldDeliveryTo:
		m.ClearDeliveryTo()
		return nil
	}
	return fmt.Errorf("unknown ConsigneeDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConsigneeDetailMutation) ResetField(name string) error {
	switch name {
	case consigneedetail.FieldProductID:
		m.ResetProductID()
		return nil
	case consigneedetail.FieldSNo:
		m.ResetSNo()
		return nil
	case consigneedetail.FieldDesignation:
		m.ResetDesignation()
		return nil
	case consigneedetail.FieldEmail:
		m.ResetEmail()
		return nil
	case consigneedetail.FieldContact:
		m.ResetContact()
		return nil
	case consigneedetail.FieldGstin:
		m.ResetGstin()
		return nil
	case consigneedetail.FieldAddress:
		m.ResetAddress()
		return nil
	case consigneedetail.FieldLotNo:
		m.ResetLotNo()
		return nil
	case consigneedetail.FieldQuantity:
		m.ResetQuantity()
		return nil
	case consigneedetail.FieldDeliveryStart:
		m.ResetDeliveryStart()
		return nil
	case consigneedetail.FieldDeliveryEnd:
		m.ResetDeliveryEnd()
		return nil
	case consigneedetail.FieldDeliveryTo:
		m.ResetDeliveryTo()
		return nil
	}
	return fmt.Errorf("unknown ConsigneeDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConsigneeDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.product != nil {
		edges = append(edges, consigneedetail.EdgeProduct)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConsigneeDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case consigneedetail.EdgeProduct:
		if id := m.product; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConsigneeDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConsigneeDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConsigneeDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproduct {
		edges = append(edges, consigneedetail.EdgeProduct)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConsigneeDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case consigneedetail.EdgeProduct:
		return m.clearedproduct
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConsigneeDetailMutation) ClearEdge(name string) error {
	switch name {
	case consigneedetail.EdgeProduct:
		m.ClearProduct()
		return nil
	}
	return fmt.Errorf("unknown ConsigneeDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConsigneeDetailMutation) ResetEdge(name string) error {
	switch name {
	case consigneedetail.EdgeProduct:
		m.ResetProduct()
		return nil
	}
	return fmt.Errorf("unknown ConsigneeDetail edge %s", name)
}

// ContractMutation represents an operation that mutates the Contract nodes in the graph.
type ContractMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	contract_no               *string
	generated_date            *time.Time
	raw_text                  *string
	embedding                 *[]float32
	appendembedding           []float32
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	organisation              *uuid.UUID
	clearedorganisation       bool
	buyer                     *uuid.UUID
	clearedbuyer              bool
	financial_approval        *uuid.UUID
	clearedfinancial_approval bool
	paying_authority          *uuid.UUID
	clearedpaying_authority   bool
	seller                    *uuid.UUID
	clearedseller             bool
	epbg                      *uuid.UUID
	clearedepbg               bool
	products                  map[uuid.UUID]struct{}
	removedproducts           map[uuid.UUID]struct{}
	clearedproducts           bool
	terms                     map[uuid.UUID]struct{}
	removedterms              map[uuid.UUID]struct{}
	clearedterms              bool
	jobs                      map[uuid.UUID]struct{}
	removedjobs               map[uuid.UUID]struct{}
	clearedjobs               bool
	done                      bool
	oldValue                  func(context.Context) (*Contract, error)
	predicates                []predicate.Contract
}

var _ ent.Mutation = (*ContractMutation)(nil)

// contractOption allows management of the mutation configuration using functional options.
type contractOption func(*ContractMutation)

// newContractMutation creates new mutation for the Contract entity.
func newContractMutation(c config, op Op, opts ...contractOption) *ContractMutation {
	m := &ContractMutation{
		config:        c,
		op:            op,
		typ:           TypeContract,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractID sets the ID field of the mutation.
func withContractID(id uuid.UUID) contractOption {
	return func(m *ContractMutation) {
		var (
			err   error
			once  sync.Once
			value *Contract
		)
		m.oldValue = func(ctx context.Context) (*Contract, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contract.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContract sets the old Contract of the mutation.
func withContract(node *Contract) contractOption {
	return func(m *ContractMutation) {
		m.oldValue = func(context.Context) (*Contract, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contract entities.
func (m *ContractMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contract.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractNo sets the "contract_no" field.
func (m *ContractMutation) SetContractNo(s string) {
	m.contract_no = &s
}

// ContractNo returns the value of the "contract_no" field in the mutation.
func (m *ContractMutation) ContractNo() (r string, exists bool) {
	v := m.contract_no
	if v == nil {
		return
	}
	return *v, true
}

// OldContractNo returns the old "contract_no" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldContractNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractNo: %w", err)
	}
	return oldValue.ContractNo, nil
}

// ResetContractNo resets all changes to the "contract_no" field.
func (m *ContractMutation) ResetContractNo() {
	m.contract_no = nil
}

// SetGeneratedDate sets the "generated_date" field.
func (m *ContractMutation) SetGeneratedDate(t time.Time) {
	m.generated_date = &t
}

// GeneratedDate returns the value of the "generated_date" field in the mutation.
func (m *ContractMutation) GeneratedDate() (r time.Time, exists bool) {
	v := m.generated_date
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedDate returns the old "generated_date" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldGeneratedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedDate: %w", err)
	}
	return oldValue.GeneratedDate, nil
}

// ClearGeneratedDate clears the value of the "generated_date" field.
func (m *ContractMutation) ClearGeneratedDate() {
	m.generated_date = nil
	m.clearedFields[contract.FieldGeneratedDate] = struct{}{}
}

// GeneratedDateCleared returns if the "generated_date" field was cleared in this mutation.
func (m *ContractMutation) GeneratedDateCleared() bool {
	_, ok := m.clearedFields[contract.FieldGeneratedDate]
	return ok
}

// ResetGeneratedDate resets all changes to the "generated_date" field.
func (m *ContractMutation) ResetGeneratedDate() {
	m.generated_date = nil
	delete(m.clearedFields, contract.FieldGeneratedDate)
}

// SetRawText sets the "raw_text" field.
func (m *ContractMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ContractMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ContractMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[contract.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ContractMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[contract.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ContractMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, contract.FieldRawText)
}

// SetEmbedding sets the "embedding" field.
func (m *ContractMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ContractMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *ContractMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *ContractMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *ContractMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[contract.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *ContractMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[contract.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ContractMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, contract.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Contract entity.
// If the Contract object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrganisationID sets the "organisation" edge to the OrganisationDetail entity by id.
func (m *ContractMutation) SetOrganisationID(id uuid.UUID) {
	m.organisation = &id
}

// ClearOrganisation clears the "organisation" edge to the OrganisationDetail entity.
func (m *ContractMutation) ClearOrganisation() {
	m.clearedorganisation = true
}

// OrganisationCleared reports if the "organisation" edge to the OrganisationDetail entity was cleared.
func (m *ContractMutation) OrganisationCleared() bool {
	return m.clearedorganisation
}

// OrganisationID returns the "organisation" edge ID in the mutation.
func (m *ContractMutation) OrganisationID() (id uuid.UUID, exists bool) {
	if m.organisation != nil {
		return *m.organisation, true
	}
	return
}

// OrganisationIDs returns the "organisation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganisationID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) OrganisationIDs() (ids []uuid.UUID) {
	if id := m.organisation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganisation resets all changes to the "organisation" edge.
func (m *ContractMutation) ResetOrganisation() {
	m.organisation = nil
	m.clearedorganisation = false
}

// SetBuyerID sets the "buyer" edge to the BuyerDetail entity by id.
func (m *ContractMutation) SetBuyerID(id uuid.UUID) {
	m.buyer = &id
}

// ClearBuyer clears the "buyer" edge to the BuyerDetail entity.
func (m *ContractMutation) ClearBuyer() {
	m.clearedbuyer = true
}

// BuyerCleared reports if the "buyer" edge to the BuyerDetail entity was cleared.
func (m *ContractMutation) BuyerCleared() bool {
	return m.clearedbuyer
}

// BuyerID returns the "buyer" edge ID in the mutation.
func (m *ContractMutation) BuyerID() (id uuid.UUID, exists bool) {
	if m.buyer != nil {
		return *m.buyer, true
	}
	return
}

// BuyerIDs returns the "buyer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BuyerID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) BuyerIDs() (ids []uuid.UUID) {
	if id := m.buyer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBuyer resets all changes to the "buyer" edge.
func (m *ContractMutation) ResetBuyer() {
	m.buyer = nil
	m.clearedbuyer = false
}

// SetFinancialApprovalID sets the "financial_approval" edge to the FinancialApproval entity by id.
func (m *ContractMutation) SetFinancialApprovalID(id uuid.UUID) {
	m.financial_approval = &id
}

// ClearFinancialApproval clears the "financial_approval" edge to the FinancialApproval entity.
func (m *ContractMutation) ClearFinancialApproval() {
	m.clearedfinancial_approval = true
}

// FinancialApprovalCleared reports if the "financial_approval" edge to the FinancialApproval entity was cleared.
func (m *ContractMutation) FinancialApprovalCleared() bool {
	return m.clearedfinancial_approval
}

// FinancialApprovalID returns the "financial_approval" edge ID in the mutation.
func (m *ContractMutation) FinancialApprovalID() (id uuid.UUID, exists bool) {
	if m.financial_approval != nil {
		return *m.financial_approval, true
	}
	return
}

// FinancialApprovalIDs returns the "financial_approval" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FinancialApprovalID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) FinancialApprovalIDs() (ids []uuid.UUID) {
	if id := m.financial_approval; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFinancialApproval resets all changes to the "financial_approval" edge.
func (m *ContractMutation) ResetFinancialApproval() {
	m.financial_approval = nil
	m.clearedfinancial_approval = false
}

// SetPayingAuthorityID sets the "paying_authority" edge to the PayingAuthority entity by id.
func (m *ContractMutation) SetPayingAuthorityID(id uuid.UUID) {
	m.paying_authority = &id
}

// ClearPayingAuthority clears the "paying_authority" edge to the PayingAuthority entity.
func (m *ContractMutation) ClearPayingAuthority() {
	m.clearedpaying_authority = true
}

// PayingAuthorityCleared reports if the "paying_authority" edge to the PayingAuthority entity was cleared.
func (m *ContractMutation) PayingAuthorityCleared() bool {
	return m.clearedpaying_authority
}

// PayingAuthorityID returns the "paying_authority" edge ID in the mutation.
func (m *ContractMutation) PayingAuthorityID() (id uuid.UUID, exists bool) {
	if m.paying_authority != nil {
		return *m.paying_authority, true
	}
	return
}

// PayingAuthorityIDs returns the "paying_authority" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PayingAuthorityID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) PayingAuthorityIDs() (ids []uuid.UUID) {
	if id := m.paying_authority; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPayingAuthority resets all changes to the "paying_authority" edge.
func (m *ContractMutation) ResetPayingAuthority() {
	m.paying_authority = nil
	m.clearedpaying_authority = false
}

// SetSellerID sets the "seller" edge to the SellerDetail entity by id.
func (m *ContractMutation) SetSellerID(id uuid.UUID) {
	m.seller = &id
}

// ClearSeller clears the "seller" edge to the SellerDetail entity.
func (m *ContractMutation) ClearSeller() {
	m.clearedseller = true
}

// SellerCleared reports if the "seller" edge to the SellerDetail entity was cleared.
func (m *ContractMutation) SellerCleared() bool {
	return m.clearedseller
}

// SellerID returns the "seller" edge ID in the mutation.
func (m *ContractMutation) SellerID() (id uuid.UUID, exists bool) {
	if m.seller != nil {
		return *m.seller, true
	}
	return
}

// SellerIDs returns the "seller" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SellerID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) SellerIDs() (ids []uuid.UUID) {
	if id := m.seller; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSeller resets all changes to the "seller" edge.
func (m *ContractMutation) ResetSeller() {
	m.seller = nil
	m.clearedseller = false
}

// SetEpbgID sets the "epbg" edge to the EPBGDetail entity by id.
func (m *ContractMutation) SetEpbgID(id uuid.UUID) {
	m.epbg = &id
}

// ClearEpbg clears the "epbg" edge to the EPBGDetail entity.
func (m *ContractMutation) ClearEpbg() {
	m.clearedepbg = true
}

// EpbgCleared reports if the "epbg" edge to the EPBGDetail entity was cleared.
func (m *ContractMutation) EpbgCleared() bool {
	return m.clearedepbg
}

// EpbgID returns the "epbg" edge ID in the mutation.
func (m *ContractMutation) EpbgID() (id uuid.UUID, exists bool) {
	if m.epbg != nil {
		return *m.epbg, true
	}
	return
}

// EpbgIDs returns the "epbg" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EpbgID instead. It exists only for internal usage by the builders.
func (m *ContractMutation) EpbgIDs() (ids []uuid.UUID) {
	if id := m.epbg; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEpbg resets all changes to the "epbg" edge.
func (m *ContractMutation) ResetEpbg() {
	m.epbg = nil
	m.clearedepbg = false
}

// AddProductIDs adds the "products" edge to the Product entity by ids.
func (m *ContractMutation) AddProductIDs(ids ...uuid.UUID) {
	if m.products == nil {
		m.products = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.products[ids[i]] = struct{}{}
	}
}

// ClearProducts clears the "products" edge to the Product entity.
func (m *ContractMutation) ClearProducts() {
	m.clearedproducts = true
}

// ProductsCleared reports if the "products" edge to the Product entity was cleared.
func (m *ContractMutation) ProductsCleared() bool {
	return m.clearedproducts
}

// RemoveProductIDs removes the "products" edge to the Product entity by IDs.
func (m *ContractMutation) RemoveProductIDs(ids ...uuid.UUID) {
	if m.removedproducts == nil {
		m.removedproducts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.products, ids[i])
		m.removedproducts[ids[i]] = struct{}{}
	}
}

// RemovedProducts returns the removed IDs of the "products" edge to the Product entity.
func (m *ContractMutation) RemovedProductsIDs() (ids []uuid.UUID) {
	for id := range m.removedproducts {
		ids = append(ids, id)
	}
	return
}

// ProductsIDs returns the "products" edge IDs in the mutation.
func (m *ContractMutation) ProductsIDs() (ids []uuid.UUID) {
	for id := range m.products {
		ids = append(ids, id)
	}
	return
}

// ResetProducts resets all changes to the "products" edge.
func (m *ContractMutation) ResetProducts() {
	m.products = nil
	m.clearedproducts = false
	m.removedproducts = nil
}

// AddTermIDs adds the "terms" edge to the TermsAndCondition entity by ids.
func (m *ContractMutation) AddTermIDs(ids ...uuid.UUID) {
	if m.terms == nil {
		m.terms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.terms[ids[i]] = struct{}{}
	}
}

// ClearTerms clears the "terms" edge to the TermsAndCondition entity.
func (m *ContractMutation) ClearTerms() {
	m.clearedterms = true
}

// TermsCleared reports if the "terms" edge to the TermsAndCondition entity was cleared.
func (m *ContractMutation) TermsCleared() bool {
	return m.clearedterms
}

// RemoveTermIDs removes the "terms" edge to the TermsAndCondition entity by IDs.
func (m *ContractMutation) RemoveTermIDs(ids ...uuid.UUID) {
	if m.removedterms == nil {
		m.removedterms = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.terms, ids[i])
		m.removedterms[ids[i]] = struct{}{}
	}
}

// RemovedTerms returns the removed IDs of the "terms" edge to the TermsAndCondition entity.
func (m *ContractMutation) RemovedTermsIDs() (ids []uuid.UUID) {
	for id := range m.removedterms {
		ids = append(ids, id)
	}
	return
}

// TermsIDs returns the "terms" edge IDs in the mutation.
func (m *ContractMutation) TermsIDs() (ids []uuid.UUID) {
	for id := range m.terms {
		ids = append(ids, id)
	}
	return
}

// ResetTerms resets all changes to the "terms" edge.
func (m *ContractMutation) ResetTerms() {
	m.terms = nil
	m.clearedterms = false
	m.removedterms = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *ContractMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *ContractMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *ContractMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *ContractMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *ContractMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ContractMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ContractMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ContractMutation builder.
func (m *ContractMutation) Where(ps ...predicate.Contract) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contract, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contract).
func (m *ContractMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.contract_no != nil {
		fields = append(fields, contract.FieldContractNo)
	}
	if m.generated_date != nil {
		fields = append(fields, contract.FieldGeneratedDate)
	}
	if m.raw_text != nil {
		fields = append(fields, contract.FieldRawText)
	}
	if m.embedding != nil {
		fields = append(fields, contract.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, contract.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contract.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contract.FieldContractNo:
		return m.ContractNo()
	case contract.FieldGeneratedDate:
		return m.GeneratedDate()
	case contract.FieldRawText:
		return m.RawText()
	case contract.FieldEmbedding:
		return m.Embedding()
	case contract.FieldCreatedAt:
		return m.CreatedAt()
	case contract.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contract.FieldContractNo:
		return m.OldContractNo(ctx)
	case contract.FieldGeneratedDate:
		return m.OldGeneratedDate(ctx)
	case contract.FieldRawText:
		return m.OldRawText(ctx)
	case contract.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case contract.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contract.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Contract field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contract.FieldContractNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractNo(v)
		return nil
	case contract.FieldGeneratedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedDate(v)
		return nil
	case contract.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case contract.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case contract.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contract.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Contract numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contract.FieldGeneratedDate) {
		fields = append(fields, contract.FieldGeneratedDate)
	}
	if m.FieldCleared(contract.FieldRawText) {
		fields = append(fields, contract.FieldRawText)
	}
	if m.FieldCleared(contract.FieldEmbedding) {
		fields = append(fields, contract.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractMutation) ClearField(name string) error {
	switch name {
	case contract.FieldGeneratedDate:
		m.ClearGeneratedDate()
		return nil
	case contract.FieldRawText:
		m.ClearRawText()
		return nil
	case contract.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown Contract nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractMutation) ResetField(name string) error {
	switch name {
	case contract.FieldContractNo:
		m.ResetContractNo()
		return nil
	case contract.FieldGeneratedDate:
		m.ResetGeneratedDate()
		return nil
	case contract.FieldRawText:
		m.ResetRawText()
		return nil
	case contract.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case contract.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contract.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Contract field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.organisation != nil {
		edges = append(edges, contract.EdgeOrganisation)
	}
	if m.buyer != nil {
		edges = append(edges, contract.EdgeBuyer)
	}
	if m.financial_approval != nil {
		edges = append(edges, contract.EdgeFinancialApproval)
	}
	if m.paying_authority != nil {
		edges = append(edges, contract.EdgePayingAuthority)
	}
	if m.seller != nil {
		edges = append(edges, contract.EdgeSeller)
	}
	if m.epbg != nil {
		edges = append(edges, contract.EdgeEpbg)
	}
	if m.products != nil {
		edges = append(edges, contract.EdgeProducts)
	}
	if m.terms != nil {
		edges = append(edges, contract.EdgeTerms)
	}
	if m.jobs != nil {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeOrganisation:
		if id := m.organisation; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgeBuyer:
		if id := m.buyer; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgeFinancialApproval:
		if id := m.financial_approval; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgePayingAuthority:
		if id := m.paying_authority; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgeSeller:
		if id := m.seller; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgeEpbg:
		if id := m.epbg; id != nil {
			return []ent.Value{*id}
		}
	case contract.EdgeProducts:
		ids := make([]ent.Value, 0, len(m.products))
		for id := range m.products {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeTerms:
		ids := make([]ent.Value, 0, len(m.terms))
		for id := range m.terms {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedproducts != nil {
		edges = append(edges, contract.EdgeProducts)
	}
	if m.removedterms != nil {
		edges = append(edges, contract.EdgeTerms)
	}
	if m.removedjobs != nil {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contract.EdgeProducts:
		ids := make([]ent.Value, 0, len(m.removedproducts))
		for id := range m.removedproducts {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeTerms:
		ids := make([]ent.Value, 0, len(m.removedterms))
		for id := range m.removedterms {
			ids = append(ids, id)
		}
		return ids
	case contract.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedorganisation {
		edges = append(edges, contract.EdgeOrganisation)
	}
	if m.clearedbuyer {
		edges = append(edges, contract.EdgeBuyer)
	}
	if m.clearedfinancial_approval {
		edges = append(edges, contract.EdgeFinancialApproval)
	}
	if m.clearedpaying_authority {
		edges = append(edges, contract.EdgePayingAuthority)
	}
	if m.clearedseller {
		edges = append(edges, contract.EdgeSeller)
	}
	if m.clearedepbg {
		edges = append(edges, contract.EdgeEpbg)
	}
	if m.clearedproducts {
		edges = append(edges, contract.EdgeProducts)
	}
	if m.clearedterms {
		edges = append(edges, contract.EdgeTerms)
	}
	if m.clearedjobs {
		edges = append(edges, contract.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractMutation) EdgeCleared(name string) bool {
	switch name {
	case contract.EdgeOrganisation:
		return m.clearedorganisation
	case contract.EdgeBuyer:
		return m.clearedbuyer
	case contract.EdgeFinancialApproval:
		return m.clearedfinancial_approval
	case contract.EdgePayingAuthority:
		return m.clearedpaying_authority
	case contract.EdgeSeller:
		return m.clearedseller
	case contract.EdgeEpbg:
		return m.clearedepbg
	case contract.EdgeProducts:
		return m.clearedproducts
	case contract.EdgeTerms:
		return m.clearedterms
	case contract.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractMutation) ClearEdge(name string) error {
	switch name {
	case contract.EdgeOrganisation:
		m.ClearOrganisation()
		return nil
	case contract.EdgeBuyer:
		m.ClearBuyer()
		return nil
	case contract.EdgeFinancialApproval:
		m.ClearFinancialApproval()
		return nil
	case contract.EdgePayingAuthority:
		m.ClearPayingAuthority()
		return nil
	case contract.EdgeSeller:
		m.ClearSeller()
		return nil
	case contract.EdgeEpbg:
		m.ClearEpbg()
		return nil
	}
	return fmt.Errorf("unknown Contract unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractMutation) ResetEdge(name string) error {
	switch name {
	case contract.EdgeOrganisation:
		m.ResetOrganisation()
		return nil
	case contract.EdgeBuyer:
		m.ResetBuyer()
		return nil
	case contract.EdgeFinancialApproval:
		m.ResetFinancialApproval()
		return nil
	case contract.EdgePayingAuthority:
		m.ResetPayingAuthority()
		return nil
	case contract.EdgeSeller:
		m.ResetSeller()
		return nil
	case contract.EdgeEpbg:
		m.ResetEpbg()
		return nil
	case contract.EdgeProducts:
		m.ResetProducts()
		return nil
	case contract.EdgeTerms:
		m.ResetTerms()
		return nil
	case contract.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Contract edge %s", name)
}

// EPBGDetailMutation represents an operation that mutates the EPBGDetail nodes in the graph.
type EPBGDetailMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	detail          *string
	clearedFields   map[string]struct{}
	contract        *uuid.UUID
	clearedcontract bool
	done            bool
	oldValue        func(context.Context) (*EPBGDetail, error)
	predicates      []predicate.EPBGDetail
}

var _ ent.Mutation = (*EPBGDetailMutation)(nil)

// epbgdetailOption allows management of the mutation configuration using functional options.
type epbgdetailOption func(*EPBGDetailMutation)

// newEPBGDetailMutation creates new mutation for the EPBGDetail entity.
func newEPBGDetailMutation(c config, op Op, opts ...epbgdetailOption) *EPBGDetailMutation {
	m := &EPBGDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeEPBGDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEPBGDetailID sets the ID field of the mutation.
func withEPBGDetailID(id uuid.UUID) epbgdetailOption {
	return func(m *EPBGDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *EPBGDetail
		)
		m.oldValue = func(ctx context.Context) (*EPBGDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EPBGDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEPBGDetail sets the old EPBGDetail of the mutation.
func withEPBGDetail(node *EPBGDetail) epbgdetailOption {
	return func(m *EPBGDetailMutation) {
		m.oldValue = func(context.Context) (*EPBGDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EPBGDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EPBGDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EPBGDetail entities.
func (m *EPBGDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EPBGDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EPBGDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EPBGDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *EPBGDetailMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *EPBGDetailMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the EPBGDetail entity.
// If the EPBGDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EPBGDetailMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *EPBGDetailMutation) ResetContractID() {
	m.contract = nil
}

// SetDetail sets the "detail" field.
func (m *EPBGDetailMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *EPBGDetailMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the EPBGDetail entity.
// If the EPBGDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EPBGDetailMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *EPBGDetailMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[epbgdetail.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *EPBGDetailMutation) DetailCleared() bool {
	_, ok := m.clearedFields[epbgdetail.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *EPBGDetailMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, epbgdetail.FieldDetail)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *EPBGDetailMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[epbgdetail.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *EPBGDetailMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *EPBGDetailMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *EPBGDetailMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the EPBGDetailMutation builder.
func (m *EPBGDetailMutation) Where(ps ...predicate.EPBGDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EPBGDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EPBGDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EPBGDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EPBGDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EPBGDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EPBGDetail).
func (m *EPBGDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EPBGDetailMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.contract != nil {
		fields = append(fields, epbgdetail.FieldContractID)
	}
	if m.detail != nil {
		fields = append(fields, epbgdetail.FieldDetail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EPBGDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case epbgdetail.FieldContractID:
		return m.ContractID()
	case epbgdetail.FieldDetail:
		return m.Detail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EPBGDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case epbgdetail.FieldContractID:
		return m.OldContractID(ctx)
	case epbgdetail.FieldDetail:
		return m.OldDetail(ctx)
	}
	return nil, fmt.Errorf("unknown EPBGDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EPBGDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case epbgdetail.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case epbgdetail.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	}
	return fmt.Errorf("unknown EPBGDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EPBGDetailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EPBGDetailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EPBGDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EPBGDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EPBGDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(epbgdetail.FieldDetail) {
		fields = append(fields, epbgdetail.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EPBGDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EPBGDetailMutation) ClearField(name string) error {
	switch name {
	case epbgdetail.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown EPBGDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EPBGDetailMutation) ResetField(name string) error {
	switch name {
	case epbgdetail.FieldContractID:
		m.ResetContractID()
		return nil
	case epbgdetail.FieldDetail:
		m.ResetDetail()
		return nil
	}
	return fmt.Errorf("unknown EPBGDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EPBGDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, epbgdetail.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EPBGDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case epbgdetail.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EPBGDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EPBGDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EPBGDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, epbgdetail.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EPBGDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case epbgdetail.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EPBGDetailMutation) ClearEdge(name string) error {
	switch name {
	case epbgdetail.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown EPBGDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EPBGDetailMutation) ResetEdge(name string) error {
	switch name {
	case epbgdetail.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown EPBGDetail edge %s", name)
}

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	format               *string
	doc_type             *string
	started_at           *time.Time
	finished_at          *time.Time
	status               *string
	error_message        *string
	needs_review         *bool
	raw_text             *string
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	method               *string
	clearedFields        map[string]struct{}
	file                 *uuid.UUID
	clearedfile          bool
	contract             *uuid.UUID
	clearedcontract      bool
	bid                  *uuid.UUID
	clearedbid           bool
	done                 bool
	oldValue             func(context.Context) (*ExtractJob, error)
	predicates           []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
}

// SetContractID sets the "contract_id" field.
func (m *ExtractJobMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *ExtractJobMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldContractID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ClearContractID clears the value of the "contract_id" field.
func (m *ExtractJobMutation) ClearContractID() {
	m.contract = nil
	m.clearedFields[extractjob.FieldContractID] = struct{}{}
}

// ContractIDCleared returns if the "contract_id" field was cleared in this mutation.
func (m *ExtractJobMutation) ContractIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldContractID]
	return ok
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *ExtractJobMutation) ResetContractID() {
	m.contract = nil
	delete(m.clearedFields, extractjob.FieldContractID)
}

// SetBidID sets the "bid_id" field.
func (m *ExtractJobMutation) SetBidID(u uuid.UUID) {
	m.bid = &u
}

// BidID returns the value of the "bid_id" field in the mutation.
func (m *ExtractJobMutation) BidID() (r uuid.UUID, exists bool) {
	v := m.bid
	if v == nil {
		return
	}
	return *v, true
}

// OldBidID returns the old "bid_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldBidID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBidID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBidID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBidID: %w", err)
	}
	return oldValue.BidID, nil
}

// ClearBidID clears the value of the "bid_id" field.
func (m *ExtractJobMutation) ClearBidID() {
	m.bid = nil
	m.clearedFields[extractjob.FieldBidID] = struct{}{}
}

// BidIDCleared returns if the "bid_id" field was cleared in this mutation.
func (m *ExtractJobMutation) BidIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldBidID]
	return ok
}

// ResetBidID resets all changes to the "bid_id" field.
func (m *ExtractJobMutation) ResetBidID() {
	m.bid = nil
	delete(m.clearedFields, extractjob.FieldBidID)
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetDocType sets the "doc_type" field.
func (m *ExtractJobMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *ExtractJobMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldDocType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ClearDocType clears the value of the "doc_type" field.
func (m *ExtractJobMutation) ClearDocType() {
	m.doc_type = nil
	m.clearedFields[extractjob.FieldDocType] = struct{}{}
}

// DocTypeCleared returns if the "doc_type" field was cleared in this mutation.
func (m *ExtractJobMutation) DocTypeCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldDocType]
	return ok
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *ExtractJobMutation) ResetDocType() {
	m.doc_type = nil
	delete(m.clearedFields, extractjob.FieldDocType)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetRawText sets the "raw_text" field.
func (m *ExtractJobMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ExtractJobMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ExtractJobMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[extractjob.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ExtractJobMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ExtractJobMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, extractjob.FieldRawText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetMethod sets the "method" field.
func (m *ExtractJobMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ExtractJobMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *ExtractJobMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[extractjob.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *ExtractJobMutation) MethodCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *ExtractJobMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, extractjob.FieldMethod)
}

// ClearFile clears the "file" edge to the SourceFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the SourceFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *ExtractJobMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[extractjob.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *ExtractJobMutation) ContractCleared() bool {
	return m.ContractIDCleared() || m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *ExtractJobMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// ClearBid clears the "bid" edge to the Bid entity.
func (m *ExtractJobMutation) ClearBid() {
	m.clearedbid = true
	m.clearedFields[extractjob.FieldBidID] = struct{}{}
}

// BidCleared reports if the "bid" edge to the Bid entity was cleared.
func (m *ExtractJobMutation) BidCleared() bool {
	return m.BidIDCleared() || m.clearedbid
}

// BidIDs returns the "bid" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BidID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) BidIDs() (ids []uuid.UUID) {
	if id := m.bid; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBid resets all changes to the "bid" edge.
func (m *ExtractJobMutation) ResetBid() {
	m.bid = nil
	m.clearedbid = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.contract != nil {
		fields = append(fields, extractjob.FieldContractID)
	}
	if m.bid != nil {
		fields = append(fields, extractjob.FieldBidID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.doc_type != nil {
		fields = append(fields, extractjob.FieldDocType)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.needs_review != nil {
		fields = append(fields, extractjob.FieldNeedsReview)
	}
	if m.raw_text != nil {
		fields = append(fields, extractjob.FieldRawText)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.method != nil {
		fields = append(fields, extractjob.FieldMethod)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldContractID:
		return m.ContractID()
	case extractjob.FieldBidID:
		return m.BidID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldDocType:
		return m.DocType()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldNeedsReview:
		return m.NeedsReview()
	case extractjob.FieldRawText:
		return m.RawText()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldMethod:
		return m.Method()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldContractID:
		return m.OldContractID(ctx)
	case extractjob.FieldBidID:
		return m.OldBidID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldDocType:
		return m.OldDocType(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractjob.FieldRawText:
		return m.OldRawText(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldMethod:
		return m.OldMethod(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case extractjob.FieldBidID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBidID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractjob.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldContractID) {
		fields = append(fields, extractjob.FieldContractID)
	}
	if m.FieldCleared(extractjob.FieldBidID) {
		fields = append(fields, extractjob.FieldBidID)
	}
	if m.FieldCleared(extractjob.FieldDocType) {
		fields = append(fields, extractjob.FieldDocType)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldRawText) {
		fields = append(fields, extractjob.FieldRawText)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldMethod) {
		fields = append(fields, extractjob.FieldMethod)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldContractID:
		m.ClearContractID()
		return nil
	case extractjob.FieldBidID:
		m.ClearBidID()
		return nil
	case extractjob.FieldDocType:
		m.ClearDocType()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldRawText:
		m.ClearRawText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldMethod:
		m.ClearMethod()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldContractID:
		m.ResetContractID()
		return nil
	case extractjob.FieldBidID:
		m.ResetBidID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldDocType:
		m.ResetDocType()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractjob.FieldRawText:
		m.ResetRawText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldMethod:
		m.ResetMethod()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.contract != nil {
		edges = append(edges, extractjob.EdgeContract)
	}
	if m.bid != nil {
		edges = append(edges, extractjob.EdgeBid)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeBid:
		if id := m.bid; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.clearedcontract {
		edges = append(edges, extractjob.EdgeContract)
	}
	if m.clearedbid {
		edges = append(edges, extractjob.EdgeBid)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeFile:
		return m.clearedfile
	case extractjob.EdgeContract:
		return m.clearedcontract
	case extractjob.EdgeBid:
		return m.clearedbid
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	case extractjob.EdgeContract:
		m.ClearContract()
		return nil
	case extractjob.EdgeBid:
		m.ClearBid()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	case extractjob.EdgeContract:
		m.ResetContract()
		return nil
	case extractjob.EdgeBid:
		m.ResetBid()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// FinancialApprovalMutation represents an operation that mutates the FinancialApproval nodes in the graph.
type FinancialApprovalMutation struct {
	config
	op                             Op
	typ                            string
	id                             *uuid.UUID
	ifd_concurrence                *bool
	admin_approval_designation     *string
	financial_approval_designation *string
	clearedFields                  map[string]struct{}
	contract                       *uuid.UUID
	clearedcontract                bool
	done                           bool
	oldValue                       func(context.Context) (*FinancialApproval, error)
	predicates                     []predicate.FinancialApproval
}

var _ ent.Mutation = (*FinancialApprovalMutation)(nil)

// financialapprovalOption allows management of the mutation configuration using functional options.
type financialapprovalOption func(*FinancialApprovalMutation)

// newFinancialApprovalMutation creates new mutation for the FinancialApproval entity.
func newFinancialApprovalMutation(c config, op Op, opts ...financialapprovalOption) *FinancialApprovalMutation {
	m := &FinancialApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeFinancialApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFinancialApprovalID sets the ID field of the mutation.
func withFinancialApprovalID(id uuid.UUID) financialapprovalOption {
	return func(m *FinancialApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *FinancialApproval
		)
		m.oldValue = func(ctx context.Context) (*FinancialApproval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FinancialApproval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinancialApproval sets the old FinancialApproval of the mutation.
func withFinancialApproval(node *FinancialApproval) financialapprovalOption {
	return func(m *FinancialApprovalMutation) {
		m.oldValue = func(context.Context) (*FinancialApproval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FinancialApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FinancialApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FinancialApproval entities.
func (m *FinancialApprovalMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FinancialApprovalMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FinancialApprovalMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FinancialApproval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *FinancialApprovalMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *FinancialApprovalMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the FinancialApproval entity.
// If the FinancialApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialApprovalMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *FinancialApprovalMutation) ResetContractID() {
	m.contract = nil
}

// SetIfdConcurrence sets the "ifd_concurrence" field.
func (m *FinancialApprovalMutation) SetIfdConcurrence(b bool) {
	m.ifd_concurrence = &b
}

// IfdConcurrence returns the value of the "ifd_concurrence" field in the mutation.
func (m *FinancialApprovalMutation) IfdConcurrence() (r bool, exists bool) {
	v := m.ifd_concurrence
	if v == nil {
		return
	}
	return *v, true
}

// OldIfdConcurrence returns the old "ifd_concurrence" field's value of the FinancialApproval entity.
// If the FinancialApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialApprovalMutation) OldIfdConcurrence(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIfdConcurrence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIfdConcurrence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIfdConcurrence: %w", err)
	}
	return oldValue.IfdConcurrence, nil
}

// ResetIfdConcurrence resets all changes to the "ifd_concurrence" field.
func (m *FinancialApprovalMutation) ResetIfdConcurrence() {
	m.ifd_concurrence = nil
}

// SetAdminApprovalDesignation sets the "admin_approval_designation" field.
func (m *FinancialApprovalMutation) SetAdminApprovalDesignation(s string) {
	m.admin_approval_designation = &s
}

// AdminApprovalDesignation returns the value of the "admin_approval_designation" field in the mutation.
func (m *FinancialApprovalMutation) AdminApprovalDesignation() (r string, exists bool) {
	v := m.admin_approval_designation
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminApprovalDesignation returns the old "admin_approval_designation" field's value of the FinancialApproval entity.
// If the FinancialApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialApprovalMutation) OldAdminApprovalDesignation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminApprovalDesignation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminApprovalDesignation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminApprovalDesignation: %w", err)
	}
	return oldValue.AdminApprovalDesignation, nil
}

// ClearAdminApprovalDesignation clears the value of the "admin_approval_designation" field.
func (m *FinancialApprovalMutation) ClearAdminApprovalDesignation() {
	m.admin_approval_designation = nil
	m.clearedFields[financialapproval.FieldAdminApprovalDesignation] = struct{}{}
}

// AdminApprovalDesignationCleared returns if the "admin_approval_designation" field was cleared in this mutation.
func (m *FinancialApprovalMutation) AdminApprovalDesignationCleared() bool {
	_, ok := m.clearedFields[financialapproval.FieldAdminApprovalDesignation]
	return ok
}

// ResetAdminApprovalDesignation resets all changes to the "admin_approval_designation" field.
func (m *FinancialApprovalMutation) ResetAdminApprovalDesignation() {
	m.admin_approval_designation = nil
	delete(m.clearedFields, financialapproval.FieldAdminApprovalDesignation)
}

// SetFinancialApprovalDesignation sets the "financial_approval_designation" field.
func (m *FinancialApprovalMutation) SetFinancialApprovalDesignation(s string) {
	m.financial_approval_designation = &s
}

// FinancialApprovalDesignation returns the value of the "financial_approval_designation" field in the mutation.
func (m *FinancialApprovalMutation) FinancialApprovalDesignation() (r string, exists bool) {
	v := m.financial_approval_designation
	if v == nil {
		return
	}
	return *v, true
}

// OldFinancialApprovalDesignation returns the old "financial_approval_designation" field's value of the FinancialApproval entity.
// If the FinancialApproval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinancialApprovalMutation) OldFinancialApprovalDesignation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinancialApprovalDesignation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinancialApprovalDesignation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinancialApprovalDesignation: %w", err)
	}
	return oldValue.FinancialApprovalDesignation, nil
}

// ClearFinancialApprovalDesignation clears the value of the "financial_approval_designation" field.
func (m *FinancialApprovalMutation) ClearFinancialApprovalDesignation() {
	m.financial_approval_designation = nil
	m.clearedFields[financialapproval.FieldFinancialApprovalDesignation] = struct{}{}
}

// FinancialApprovalDesignationCleared returns if the "financial_approval_designation" field was cleared in this mutation.
func (m *FinancialApprovalMutation) FinancialApprovalDesignationCleared() bool {
	_, ok := m.clearedFields[financialapproval.FieldFinancialApprovalDesignation]
	return ok
}

// ResetFinancialApprovalDesignation resets all changes to the "financial_approval_designation" field.
func (m *FinancialApprovalMutation) ResetFinancialApprovalDesignation() {
	m.financial_approval_designation = nil
	delete(m.clearedFields, financialapproval.FieldFinancialApprovalDesignation)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *FinancialApprovalMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[financialapproval.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *FinancialApprovalMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *FinancialApprovalMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *FinancialApprovalMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the FinancialApprovalMutation builder.
func (m *FinancialApprovalMutation) Where(ps ...predicate.FinancialApproval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FinancialApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FinancialApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FinancialApproval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FinancialApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FinancialApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FinancialApproval).
func (m *FinancialApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FinancialApprovalMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.contract != nil {
		fields = append(fields, financialapproval.FieldContractID)
	}
	if m.ifd_concurrence != nil {
		fields = append(fields, financialapproval.FieldIfdConcurrence)
	}
	if m.admin_approval_designation != nil {
		fields = append(fields, financialapproval.FieldAdminApprovalDesignation)
	}
	if m.financial_approval_designation != nil {
		fields = append(fields, financialapproval.FieldFinancialApprovalDesignation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FinancialApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case financialapproval.FieldContractID:
		return m.ContractID()
	case financialapproval.FieldIfdConcurrence:
		return m.IfdConcurrence()
	case financialapproval.FieldAdminApprovalDesignation:
		return m.AdminApprovalDesignation()
	case financialapproval.FieldFinancialApprovalDesignation:
		return m.FinancialApprovalDesignation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FinancialApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case financialapproval.FieldContractID:
		return m.OldContractID(ctx)
	case financialapproval.FieldIfdConcurrence:
		return m.OldIfdConcurrence(ctx)
	case financialapproval.FieldAdminApprovalDesignation:
		return m.OldAdminApprovalDesignation(ctx)
	case financialapproval.FieldFinancialApprovalDesignation:
		return m.OldFinancialApprovalDesignation(ctx)
	}
	return nil, fmt.Errorf("unknown FinancialApproval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case financialapproval.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case financialapproval.FieldIfdConcurrence:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIfdConcurrence(v)
		return nil
	case financialapproval.FieldAdminApprovalDesignation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminApprovalDesignation(v)
		return nil
	case financialapproval.FieldFinancialApprovalDesignation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinancialApprovalDesignation(v)
		return nil
	}
	return fmt.Errorf("unknown FinancialApproval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FinancialApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FinancialApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinancialApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FinancialApproval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FinancialApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(financialapproval.FieldAdminApprovalDesignation) {
		fields = append(fields, financialapproval.FieldAdminApprovalDesignation)
	}
	if m.FieldCleared(financialapproval.FieldFinancialApprovalDesignation) {
		fields = append(fields, financialapproval.FieldFinancialApprovalDesignation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FinancialApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FinancialApprovalMutation) ClearField(name string) error {
	switch name {
	case financialapproval.FieldAdminApprovalDesignation:
		m.ClearAdminApprovalDesignation()
		return nil
	case financialapproval.FieldFinancialApprovalDesignation:
		m.ClearFinancialApprovalDesignation()
		return nil
	}
	return fmt.Errorf("unknown FinancialApproval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FinancialApprovalMutation) ResetField(name string) error {
	switch name {
	case financialapproval.FieldContractID:
		m.ResetContractID()
		return nil
	case financialapproval.FieldIfdConcurrence:
		m.ResetIfdConcurrence()
		return nil
	case financialapproval.FieldAdminApprovalDesignation:
		m.ResetAdminApprovalDesignation()
		return nil
	case financialapproval.FieldFinancialApprovalDesignation:
		m.ResetFinancialApprovalDesignation()
		return nil
	}
	return fmt.Errorf("unknown FinancialApproval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FinancialApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, financialapproval.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FinancialApprovalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case financialapproval.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FinancialApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FinancialApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FinancialApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, financialapproval.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FinancialApprovalMutation) EdgeCleared(name string) bool {
	switch name {
	case financialapproval.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FinancialApprovalMutation) ClearEdge(name string) error {
	switch name {
	case financialapproval.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown FinancialApproval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FinancialApprovalMutation) ResetEdge(name string) error {
	switch name {
	case financialapproval.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown FinancialApproval edge %s", name)
}

// OrganisationDetailMutation represents an operation that mutates the OrganisationDetail nodes in the graph.
type OrganisationDetailMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	_type             *string
	ministry          *string
	department        *string
	organisation_name *string
	office_zone       *string
	clearedFields     map[string]struct{}
	contract          *uuid.UUID
	clearedcontract   bool
	done              bool
	oldValue          func(context.Context) (*OrganisationDetail, error)
	predicates        []predicate.OrganisationDetail
}

var _ ent.Mutation = (*OrganisationDetailMutation)(nil)

// organisationdetailOption allows management of the mutation configuration using functional options.
type organisationdetailOption func(*OrganisationDetailMutation)

// newOrganisationDetailMutation creates new mutation for the OrganisationDetail entity.
func newOrganisationDetailMutation(c config, op Op, opts ...organisationdetailOption) *OrganisationDetailMutation {
	m := &OrganisationDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeOrganisationDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganisationDetailID sets the ID field of the mutation.
func withOrganisationDetailID(id uuid.UUID) organisationdetailOption {
	return func(m *OrganisationDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *OrganisationDetail
		)
		m.oldValue = func(ctx context.Context) (*OrganisationDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrganisationDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrganisationDetail sets the old OrganisationDetail of the mutation.
func withOrganisationDetail(node *OrganisationDetail) organisationdetailOption {
	return func(m *OrganisationDetailMutation) {
		m.oldValue = func(context.Context) (*OrganisationDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganisationDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganisationDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrganisationDetail entities.
func (m *OrganisationDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganisationDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganisationDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrganisationDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *OrganisationDetailMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *OrganisationDetailMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the OrganisationDetail entity.
// If the OrganisationDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganisationDetailMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *OrganisationDetailMutation) ResetContractID() {
	m.contract = nil
}

// SetType sets the "type" field.
func (m *OrganisationDetailMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *OrganisationDetailMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the OrganisationDetail entity.
// If the OrganisationDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganisationDetailMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ClearType clears the value of the "type" field.
func (m *OrganisationDetailMutation) ClearType() {
	m._type = nil
	m.clearedFields[organisationdetail.FieldType] = struct{}{}
}

// TypeCleared returns if the "type" field was cleared in this mutation.
func (m *OrganisationDetailMutation) TypeCleared() bool {
	_, ok := m.clearedFields[organisationdetail.FieldType]
	return ok
}

// ResetType resets all changes to the "type" field.
func (m *OrganisationDetailMutation) ResetType() {
	m._type = nil
	delete(m.clearedFields, organisationdetail.FieldType)
}

// SetMinistry sets the "ministry" field.
func (m *OrganisationDetailMutation) SetMinistry(s string) {
	m.ministry = &s
}

// Ministry returns the value of the "ministry" field in the mutation.
func (m *OrganisationDetailMutation) Ministry() (r string, exists bool) {
	v := m.ministry
	if v == nil {
		return
	}
	return *v, true
}

// OldMinistry returns the old "ministry" field's value of the OrganisationDetail entity.
// If the OrganisationDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganisationDetailMutation) OldMinistry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinistry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinistry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinistry: %w", err)
	}
	return oldValue.Ministry, nil
}

// ClearMinistry clears the value of the "ministry" field.
func (m *OrganisationDetailMutation) ClearMinistry() {
	m.ministry = nil
	m.clearedFields[organisationdetail.FieldMinistry] = struct{}{}
}

// MinistryCleared returns if the "ministry" field was cleared in this mutation.
func (m *OrganisationDetailMutation) MinistryCleared() bool {
	_, ok := m.clearedFields[organisationdetail.FieldMinistry]
	return ok
}

// ResetMinistry resets all changes to the "ministry" field.
func (m *OrganisationDetailMutation) ResetMinistry() {
	m.ministry = nil
	delete(m.clearedFields, organisationdetail.FieldMinistry)
}

// SetDepartment sets the "department" field.
func (m *OrganisationDetailMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *OrganisationDetailMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the OrganisationDetail entity.
// If the OrganisationDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganisationDetailMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *OrganisationDetailMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[organisationdetail.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *OrganisationDetailMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[organisationdetail.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *OrganisationDetailMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, organisationdetail.FieldDepartment)
}

// SetOrganisationName sets the "organisation_name" field.
func (m *OrganisationDetailMutation) SetOrganisationName(s string) {
	m.organisation_name = &s
}

// OrganisationName returns the value of the "organisation_name" field in the mutation.
func (m *OrganisationDetailMutation) OrganisationName() (r string, exists bool) {
	v := m.organisation_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganisationName returns the old "organisation_name" field's value of the OrganisationDetail entity.
// If the OrganisationDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganisationDetailMutation) OldOrganisationName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganisationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganisationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganisationName: %w", err)
	}
	return oldValue.OrganisationName, nil
}

// ClearOrganisationName clears the value of the "organisation_name" field.
func (m *OrganisationDetailMutation) ClearOrganisationName() {
	m.organisation_name = nil
	m.clearedFields[organisationdetail.FieldOrganisationName] = struct{}{}
}

// OrganisationNameCleared returns if the "organisation_name" field was cleared in this mutation.
func (m *OrganisationDetailMutation) OrganisationNameCleared() bool {
	_, ok := m.clearedFields[organisationdetail.FieldOrganisationName]
	return ok
}

// ResetOrganisationName resets all changes to the "organisation_name" field.
func (m *OrganisationDetailMutation) ResetOrganisationName() {
	m.organisation_name = nil
	delete(m.clearedFields, organisationdetail.FieldOrganisationName)
}

// SetOfficeZone sets the "office_zone" field.
func (m *OrganisationDetailMutation) SetOfficeZone(s string) {
	m.office_zone = &s
}

// OfficeZone returns the value of the "office_zone" field in the mutation.
func (m *OrganisationDetailMutation) OfficeZone() (r string, exists bool) {
	v := m.office_zone
	if v == nil {
		return
	}
	return *v, true
}

// OldOfficeZone returns the old "office_zone" field's value of the OrganisationDetail entity.
// If the OrganisationDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganisationDetailMutation) OldOfficeZone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfficeZone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfficeZone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfficeZone: %w", err)
	}
	return oldValue.OfficeZone, nil
}

// ClearOfficeZone clears the value of the "office_zone" field.
func (m *OrganisationDetailMutation) ClearOfficeZone() {
	m.office_zone = nil
	m.clearedFields[organisationdetail.FieldOfficeZone] = struct{}{}
}

// OfficeZoneCleared returns if the "office_zone" field was cleared in this mutation.
func (m *OrganisationDetailMutation) OfficeZoneCleared() bool {
	_, ok := m.clearedFields[organisationdetail.FieldOfficeZone]
	return ok
}

// ResetOfficeZone resets all changes to the "office_zone" field.
func (m *OrganisationDetailMutation) ResetOfficeZone() {
	m.office_zone = nil
	delete(m.clearedFields, organisationdetail.FieldOfficeZone)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *OrganisationDetailMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[organisationdetail.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *OrganisationDetailMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *OrganisationDetailMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *OrganisationDetailMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the OrganisationDetailMutation builder.
func (m *OrganisationDetailMutation) Where(ps ...predicate.OrganisationDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganisationDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganisationDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrganisationDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganisationDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganisationDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrganisationDetail).
func (m *OrganisationDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganisationDetailMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.contract != nil {
		fields = append(fields, organisationdetail.FieldContractID)
	}
	if m._type != nil {
		fields = append(fields, organisationdetail.FieldType)
	}
	if m.ministry != nil {
		fields = append(fields, organisationdetail.FieldMinistry)
	}
	if m.department != nil {
		fields = append(fields, organisationdetail.FieldDepartment)
	}
	if m.organisation_name != nil {
		fields = append(fields, organisationdetail.FieldOrganisationName)
	}
	if m.office_zone != nil {
		fields = append(fields, organisationdetail.FieldOfficeZone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganisationDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organisationdetail.FieldContractID:
		return m.ContractID()
	case organisationdetail.FieldType:
		return m.GetType()
	case organisationdetail.FieldMinistry:
		return m.Ministry()
	case organisationdetail.FieldDepartment:
		return m.Department()
	case organisationdetail.FieldOrganisationName:
		return m.OrganisationName()
	case organisationdetail.FieldOfficeZone:
		return m.OfficeZone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganisationDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organisationdetail.FieldContractID:
		return m.OldContractID(ctx)
	case organisationdetail.FieldType:
		return m.OldType(ctx)
	case organisationdetail.FieldMinistry:
		return m.OldMinistry(ctx)
	case organisationdetail.FieldDepartment:
		return m.OldDepartment(ctx)
	case organisationdetail.FieldOrganisationName:
		return m.OldOrganisationName(ctx)
	case organisationdetail.FieldOfficeZone:
		return m.OldOfficeZone(ctx)
	}
	return nil, fmt.Errorf("unknown OrganisationDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganisationDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organisationdetail.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case organisationdetail.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case organisationdetail.FieldMinistry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinistry(v)
		return nil
	case organisationdetail.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case organisationdetail.FieldOrganisationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganisationName(v)
		return nil
	case organisationdetail.FieldOfficeZone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfficeZone(v)
		return nil
	}
	return fmt.Errorf("unknown OrganisationDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganisationDetailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganisationDetailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganisationDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrganisationDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganisationDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(organisationdetail.FieldType) {
		fields = append(fields, organisationdetail.FieldType)
	}
	if m.FieldCleared(organisationdetail.FieldMinistry) {
		fields = append(fields, organisationdetail.FieldMinistry)
	}
	if m.FieldCleared(organisationdetail.FieldDepartment) {
		fields = append(fields, organisationdetail.FieldDepartment)
	}
	if m.FieldCleared(organisationdetail.FieldOrganisationName) {
		fields = append(fields, organisationdetail.FieldOrganisationName)
	}
	if m.FieldCleared(organisationdetail.FieldOfficeZone) {
		fields = append(fields, organisationdetail.FieldOfficeZone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganisationDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganisationDetailMutation) ClearField(name string) error {
	switch name {
	case organisationdetail.FieldType:
		m.ClearType()
		return nil
	case organisationdetail.FieldMinistry:
		m.ClearMinistry()
		return nil
	case organisationdetail.FieldDepartment:
		m.ClearDepartment()
		return nil
	case organisationdetail.FieldOrganisationName:
		m.ClearOrganisationName()
		return nil
	case organisationdetail.FieldOfficeZone:
		m.ClearOfficeZone()
		return nil
	}
	return fmt.Errorf("unknown OrganisationDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganisationDetailMutation) ResetField(name string) error {
	switch name {
	case organisationdetail.FieldContractID:
		m.ResetContractID()
		return nil
	case organisationdetail.FieldType:
		m.ResetType()
		return nil
	case organisationdetail.FieldMinistry:
		m.ResetMinistry()
		return nil
	case organisationdetail.FieldDepartment:
		m.ResetDepartment()
		return nil
	case organisationdetail.FieldOrganisationName:
		m.ResetOrganisationName()
		return nil
	case organisationdetail.FieldOfficeZone:
		m.ResetOfficeZone()
		return nil
	}
	return fmt.Errorf("unknown OrganisationDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganisationDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, organisationdetail.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganisationDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organisationdetail.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganisationDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganisationDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganisationDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, organisationdetail.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganisationDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case organisationdetail.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganisationDetailMutation) ClearEdge(name string) error {
	switch name {
	case organisationdetail.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown OrganisationDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganisationDetailMutation) ResetEdge(name string) error {
	switch name {
	case organisationdetail.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown OrganisationDetail edge %s", name)
}

// PayingAuthorityMutation represents an operation that mutates the PayingAuthority nodes in the graph.
type PayingAuthorityMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	role            *string
	payment_mode    *string
	designation     *string
	email           *string
	gstin           *string
	address         *string
	clearedFields   map[string]struct{}
	contract        *uuid.UUID
	clearedcontract bool
	done            bool
	oldValue        func(context.Context) (*PayingAuthority, error)
	predicates      []predicate.PayingAuthority
}

var _ ent.Mutation = (*PayingAuthorityMutation)(nil)

// payingauthorityOption allows management of the mutation configuration using functional options.
type payingauthorityOption func(*PayingAuthorityMutation)

// newPayingAuthorityMutation creates new mutation for the PayingAuthority entity.
func newPayingAuthorityMutation(c config, op Op, opts ...payingauthorityOption) *PayingAuthorityMutation {
	m := &PayingAuthorityMutation{
		config:        c,
		op:            op,
		typ:           TypePayingAuthority,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPayingAuthorityID sets the ID field of the mutation.
func withPayingAuthorityID(id uuid.UUID) payingauthorityOption {
	return func(m *PayingAuthorityMutation) {
		var (
			err   error
			once  sync.Once
			value *PayingAuthority
		)
		m.oldValue = func(ctx context.Context) (*PayingAuthority, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PayingAuthority.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayingAuthority sets the old PayingAuthority of the mutation.
func withPayingAuthority(node *PayingAuthority) payingauthorityOption {
	return func(m *PayingAuthorityMutation) {
		m.oldValue = func(context.Context) (*PayingAuthority, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PayingAuthorityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PayingAuthorityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PayingAuthority entities.
func (m *PayingAuthorityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PayingAuthorityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PayingAuthorityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PayingAuthority.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *PayingAuthorityMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *PayingAuthorityMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the PayingAuthority entity.
// If the PayingAuthority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayingAuthorityMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *PayingAuthorityMutation) ResetContractID() {
	m.contract = nil
}

// SetRole sets the "role" field.
func (m *PayingAuthorityMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *PayingAuthorityMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the PayingAuthority entity.
// If the PayingAuthority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayingAuthorityMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *PayingAuthorityMutation) ClearRole() {
	m.role = nil
	m.clearedFields[payingauthority.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *PayingAuthorityMutation) RoleCleared() bool {
	_, ok := m.clearedFields[payingauthority.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *PayingAuthorityMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, payingauthority.FieldRole)
}

// SetPaymentMode sets the "payment_mode" field.
func (m *PayingAuthorityMutation) SetPaymentMode(s string) {
	m.payment_mode = &s
}

// PaymentMode returns the value of the "payment_mode" field in the mutation.
func (m *PayingAuthorityMutation) PaymentMode() (r string, exists bool) {
	v := m.payment_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMode returns the old "payment_mode" field's value of the PayingAuthority entity.
// If the PayingAuthority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayingAuthorityMutation) OldPaymentMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMode: %w", err)
	}
	return oldValue.PaymentMode, nil
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (m *PayingAuthorityMutation) ClearPaymentMode() {
	m.payment_mode = nil
	m.clearedFields[payingauthority.FieldPaymentMode] = struct{}{}
}

// PaymentModeCleared returns if the "payment_mode" field was cleared in this mutation.
func (m *PayingAuthorityMutation) PaymentModeCleared() bool {
	_, ok := m.clearedFields[payingauthority.FieldPaymentMode]
	return ok
}

// ResetPaymentMode resets all changes to the "payment_mode" field.
func (m *PayingAuthorityMutation) ResetPaymentMode() {
	m.payment_mode = nil
	delete(m.clearedFields, payingauthority.FieldPaymentMode)
}

// SetDesignation sets the "designation" field.
func (m *PayingAuthorityMutation) SetDesignation(s string) {
	m.designation = &s
}

// Designation returns the value of the "designation" field in the mutation.
func (m *PayingAuthorityMutation) Designation() (r string, exists bool) {
	v := m.designation
	if v == nil {
		return
	}
	return *v, true
}

// OldDesignation returns the old "designation" field's value of the PayingAuthority entity.
// If the PayingAuthority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayingAuthorityMutation) OldDesignation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesignation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesignation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesignation: %w", err)
	}
	return oldValue.Designation, nil
}

// ClearDesignation clears the value of the "designation" field.
func (m *PayingAuthorityMutation) ClearDesignation() {
	m.designation = nil
	m.clearedFields[payingauthority.FieldDesignation] = struct{}{}
}

// DesignationCleared returns if the "designation" field was cleared in this mutation.
func (m *PayingAuthorityMutation) DesignationCleared() bool {
	_, ok := m.clearedFields[payingauthority.FieldDesignation]
	return ok
}

// ResetDesignation resets all changes to the "designation" field.
func (m *PayingAuthorityMutation) ResetDesignation() {
	m.designation = nil
	delete(m.clearedFields, payingauthority.FieldDesignation)
}

// SetEmail sets the "email" field.
func (m *PayingAuthorityMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *PayingAuthorityMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the PayingAuthority entity.
// If the PayingAuthority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayingAuthorityMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *PayingAuthorityMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[payingauthority.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *PayingAuthorityMutation) EmailCleared() bool {
	_, ok := m.clearedFields[payingauthority.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *PayingAuthorityMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, payingauthority.FieldEmail)
}

// SetGstin sets the "gstin" field.
func (m *PayingAuthorityMutation) SetGstin(s string) {
	m.gstin = &s
}

// Gstin returns the value of the "gstin" field in the mutation.
func (m *PayingAuthorityMutation) Gstin() (r string, exists bool) {
	v := m.gstin
	if v == nil {
		return
	}
	return *v, true
}

// OldGstin returns the old "gstin" field's value of the PayingAuthority entity.
// If the PayingAuthority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayingAuthorityMutation) OldGstin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGstin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGstin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGstin: %w", err)
	}
	return oldValue.Gstin, nil
}

// ClearGstin clears the value of the "gstin" field.
func (m *PayingAuthorityMutation) ClearGstin() {
	m.gstin = nil
	m.clearedFields[payingauthority.FieldGstin] = struct{}{}
}

// GstinCleared returns if the "gstin" field was cleared in this mutation.
func (m *PayingAuthorityMutation) GstinCleared() bool {
	_, ok := m.clearedFields[payingauthority.FieldGstin]
	return ok
}

// ResetGstin resets all changes to the "gstin" field.
func (m *PayingAuthorityMutation) ResetGstin() {
	m.gstin = nil
	delete(m.clearedFields, payingauthority.FieldGstin)
}

// SetAddress sets the "address" field.
func (m *PayingAuthorityMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *PayingAuthorityMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the PayingAuthority entity.
// If the PayingAuthority object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PayingAuthorityMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *PayingAuthorityMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[payingauthority.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *PayingAuthorityMutation) AddressCleared() bool {
	_, ok := m.clearedFields[payingauthority.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *PayingAuthorityMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, payingauthority.FieldAddress)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *PayingAuthorityMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[payingauthority.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *PayingAuthorityMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *PayingAuthorityMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *PayingAuthorityMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the PayingAuthorityMutation builder.
func (m *PayingAuthorityMutation) Where(ps ...predicate.PayingAuthority) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PayingAuthorityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PayingAuthorityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PayingAuthority, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PayingAuthorityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PayingAuthorityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PayingAuthority).
func (m *PayingAuthorityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PayingAuthorityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.contract != nil {
		fields = append(fields, payingauthority.FieldContractID)
	}
	if m.role != nil {
		fields = append(fields, payingauthority.FieldRole)
	}
	if m.payment_mode != nil {
		fields = append(fields, payingauthority.FieldPaymentMode)
	}
	if m.designation != nil {
		fields = append(fields, payingauthority.FieldDesignation)
	}
	if m.email != nil {
		fields = append(fields, payingauthority.FieldEmail)
	}
	if m.gstin != nil {
		fields = append(fields, payingauthority.FieldGstin)
	}
	if m.address != nil {
		fields = append(fields, payingauthority.FieldAddress)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PayingAuthorityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payingauthority.FieldContractID:
		return m.ContractID()
	case payingauthority.FieldRole:
		return m.Role()
	case payingauthority.FieldPaymentMode:
		return m.PaymentMode()
	case payingauthority.FieldDesignation:
		return m.Designation()
	case payingauthority.FieldEmail:
		return m.Email()
	case payingauthority.FieldGstin:
		return m.Gstin()
	case payingauthority.FieldAddress:
		return m.Address()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PayingAuthorityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payingauthority.FieldContractID:
		return m.OldContractID(ctx)
	case payingauthority.FieldRole:
		return m.OldRole(ctx)
	case payingauthority.FieldPaymentMode:
		return m.OldPaymentMode(ctx)
	case payingauthority.FieldDesignation:
		return m.OldDesignation(ctx)
	case payingauthority.FieldEmail:
		return m.OldEmail(ctx)
	case payingauthority.FieldGstin:
		return m.OldGstin(ctx)
	case payingauthority.FieldAddress:
		return m.OldAddress(ctx)
	}
	return nil, fmt.Errorf("unknown PayingAuthority field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayingAuthorityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payingauthority.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case payingauthority.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case payingauthority.FieldPaymentMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMode(v)
		return nil
	case payingauthority.FieldDesignation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesignation(v)
		return nil
	case payingauthority.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case payingauthority.FieldGstin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGstin(v)
		return nil
	case payingauthority.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	}
	return fmt.Errorf("unknown PayingAuthority field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PayingAuthorityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PayingAuthorityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PayingAuthorityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PayingAuthority numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PayingAuthorityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(payingauthority.FieldRole) {
		fields = append(fields, payingauthority.FieldRole)
	}
	if m.FieldCleared(payingauthority.FieldPaymentMode) {
		fields = append(fields, payingauthority.FieldPaymentMode)
	}
	if m.FieldCleared(payingauthority.FieldDesignation) {
		fields = append(fields, payingauthority.FieldDesignation)
	}
	if m.FieldCleared(payingauthority.FieldEmail) {
		fields = append(fields, payingauthority.FieldEmail)
	}
	if m.FieldCleared(payingauthority.FieldGstin) {
		fields = append(fields, payingauthority.FieldGstin)
	}
	if m.FieldCleared(payingauthority.FieldAddress) {
		fields = append(fields, payingauthority.FieldAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PayingAuthorityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PayingAuthorityMutation) ClearField(name string) error {
	switch name {
	case payingauthority.FieldRole:
		m.ClearRole()
		return nil
	case payingauthority.FieldPaymentMode:
		m.ClearPaymentMode()
		return nil
	case payingauthority.FieldDesignation:
		m.ClearDesignation()
		return nil
	case payingauthority.FieldEmail:
		m.ClearEmail()
		return nil
	case payingauthority.FieldGstin:
		m.ClearGstin()
		return nil
	case payingauthority.FieldAddress:
		m.ClearAddress()
		return nil
	}
	return fmt.Errorf("unknown PayingAuthority nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PayingAuthorityMutation) ResetField(name string) error {
	switch name {
	case payingauthority.FieldContractID:
		m.ResetContractID()
		return nil
	case payingauthority.FieldRole:
		m.ResetRole()
		return nil
	case payingauthority.FieldPaymentMode:
		m.ResetPaymentMode()
		return nil
	case payingauthority.FieldDesignation:
		m.ResetDesignation()
		return nil
	case payingauthority.FieldEmail:
		m.ResetEmail()
		return nil
	case payingauthority.FieldGstin:
		m.ResetGstin()
		return nil
	case payingauthority.FieldAddress:
		m.ResetAddress()
		return nil
	}
	return fmt.Errorf("unknown PayingAuthority field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PayingAuthorityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, payingauthority.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PayingAuthorityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case payingauthority.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PayingAuthorityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PayingAuthorityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PayingAuthorityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, payingauthority.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PayingAuthorityMutation) EdgeCleared(name string) bool {
	switch name {
	case payingauthority.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PayingAuthorityMutation) ClearEdge(name string) error {
	switch name {
	case payingauthority.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown PayingAuthority unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PayingAuthorityMutation) ResetEdge(name string) error {
	switch name {
	case payingauthority.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown PayingAuthority edge %s", name)
}

// ProductMutation represents an operation that mutates the Product nodes in the graph.
type ProductMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	product_name           *string
	brand                  *string
	brand_type             *string
	catalogue_status       *string
	selling_as             *string
	category_name_quadrant *string
	model                  *string
	hsn_code               *string
	ordered_quantity       *string
	unit                   *string
	unit_price             *string
	tax_bifurcation        *string
	total_price            *string
	note                   *string
	embedding              *[]float32
	appendembedding        []float32
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	contract               *uuid.UUID
	clearedcontract        bool
	specifications         map[uuid.UUID]struct{}
	removedspecifications  map[uuid.UUID]struct{}
	clearedspecifications  bool
	consignees             map[uuid.UUID]struct{}
	removedconsignees      map[uuid.UUID]struct{}
	clearedconsignees      bool
	done                   bool
	oldValue               func(context.Context) (*Product, error)
	predicates             []predicate.Product
}

var _ ent.Mutation = (*ProductMutation)(nil)

// productOption allows management of the mutation configuration using functional options.
type productOption func(*ProductMutation)

// newProductMutation creates new mutation for the Product entity.
func newProductMutation(c config, op Op, opts ...productOption) *ProductMutation {
	m := &ProductMutation{
		config:        c,
		op:            op,
		typ:           TypeProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductID sets the ID field of the mutation.
func withProductID(id uuid.UUID) productOption {
	return func(m *ProductMutation) {
		var (
			err   error
			once  sync.Once
			value *Product
		)
		m.oldValue = func(ctx context.Context) (*Product, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Product.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProduct sets the old Product of the mutation.
func withProduct(node *Product) productOption {
	return func(m *ProductMutation) {
		m.oldValue = func(context.Context) (*Product, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Product entities.
func (m *ProductMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Product.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *ProductMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *ProductMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *ProductMutation) ResetContractID() {
	m.contract = nil
}

// SetProductName sets the "product_name" field.
func (m *ProductMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *ProductMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldProductName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ResetProductName resets all changes to the "product_name" field.
func (m *ProductMutation) ResetProductName() {
	m.product_name = nil
}

// SetBrand sets the "brand" field.
func (m *ProductMutation) SetBrand(s string) {
	m.brand = &s
}

// Brand returns the value of the "brand" field in the mutation.
func (m *ProductMutation) Brand() (r string, exists bool) {
	v := m.brand
	if v == nil {
		return
	}
	return *v, true
}

// OldBrand returns the old "brand" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldBrand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrand: %w", err)
	}
	return oldValue.Brand, nil
}

// ClearBrand clears the value of the "brand" field.
func (m *ProductMutation) ClearBrand() {
	m.brand = nil
	m.clearedFields[product.FieldBrand] = struct{}{}
}

// BrandCleared returns if the "brand" field was cleared in this mutation.
func (m *ProductMutation) BrandCleared() bool {
	_, ok := m.clearedFields[product.FieldBrand]
	return ok
}

// ResetBrand resets all changes to the "brand" field.
func (m *ProductMutation) ResetBrand() {
	m.brand = nil
	delete(m.clearedFields, product.FieldBrand)
}

// SetBrandType sets the "brand_type" field.
func (m *ProductMutation) SetBrandType(s string) {
	m.brand_type = &s
}

// BrandType returns the value of the "brand_type" field in the mutation.
func (m *ProductMutation) BrandType() (r string, exists bool) {
	v := m.brand_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandType returns the old "brand_type" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldBrandType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandType: %w", err)
	}
	return oldValue.BrandType, nil
}

// ClearBrandType clears the value of the "brand_type" field.
func (m *ProductMutation) ClearBrandType() {
	m.brand_type = nil
	m.clearedFields[product.FieldBrandType] = struct{}{}
}

// BrandTypeCleared returns if the "brand_type" field was cleared in this mutation.
func (m *ProductMutation) BrandTypeCleared() bool {
	_, ok := m.clearedFields[product.FieldBrandType]
	return ok
}

// ResetBrandType resets all changes to the "brand_type" field.
func (m *ProductMutation) ResetBrandType() {
	m.brand_type = nil
	delete(m.clearedFields, product.FieldBrandType)
}

// SetCatalogueStatus sets the "catalogue_status" field.
func (m *ProductMutation) SetCatalogueStatus(s string) {
	m.catalogue_status = &s
}

// CatalogueStatus returns the value of the "catalogue_status" field in the mutation.
func (m *ProductMutation) CatalogueStatus() (r string, exists bool) {
	v := m.catalogue_status
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogueStatus returns the old "catalogue_status" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCatalogueStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogueStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogueStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogueStatus: %w", err)
	}
	return oldValue.CatalogueStatus, nil
}

// ClearCatalogueStatus clears the value of the "catalogue_status" field.
func (m *ProductMutation) ClearCatalogueStatus() {
	m.catalogue_status = nil
	m.clearedFields[product.FieldCatalogueStatus] = struct{}{}
}

// CatalogueStatusCleared returns if the "catalogue_status" field was cleared in this mutation.
func (m *ProductMutation) CatalogueStatusCleared() bool {
	_, ok := m.clearedFields[product.FieldCatalogueStatus]
	return ok
}

// ResetCatalogueStatus resets all changes to the "catalogue_status" field.
func (m *ProductMutation) ResetCatalogueStatus() {
	m.catalogue_status = nil
	delete(m.clearedFields, product.FieldCatalogueStatus)
}

// SetSellingAs sets the "selling_as" field.
func (m *ProductMutation) SetSellingAs(s string) {
	m.selling_as = &s
}

// SellingAs returns the value of the "selling_as" field in the mutation.
func (m *ProductMutation) SellingAs() (r string, exists bool) {
	v := m.selling_as
	if v == nil {
		return
	}
	return *v, true
}

// OldSellingAs returns the old "selling_as" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldSellingAs(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSellingAs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSellingAs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSellingAs: %w", err)
	}
	return oldValue.SellingAs, nil
}

// ClearSellingAs clears the value of the "selling_as" field.
func (m *ProductMutation) ClearSellingAs() {
	m.selling_as = nil
	m.clearedFields[product.FieldSellingAs] = struct{}{}
}

// SellingAsCleared returns if the "selling_as" field was cleared in this mutation.
func (m *ProductMutation) SellingAsCleared() bool {
	_, ok := m.clearedFields[product.FieldSellingAs]
	return ok
}

// ResetSellingAs resets all changes to the "selling_as" field.
func (m *ProductMutation) ResetSellingAs() {
	m.selling_as = nil
	delete(m.clearedFields, product.FieldSellingAs)
}

// SetCategoryNameQuadrant sets the "category_name_quadrant" field.
func (m *ProductMutation) SetCategoryNameQuadrant(s string) {
	m.category_name_quadrant = &s
}

// CategoryNameQuadrant returns the value of the "category_name_quadrant" field in the mutation.
func (m *ProductMutation) CategoryNameQuadrant() (r string, exists bool) {
	v := m.category_name_quadrant
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryNameQuadrant returns the old "category_name_quadrant" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCategoryNameQuadrant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryNameQuadrant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryNameQuadrant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryNameQuadrant: %w", err)
	}
	return oldValue.CategoryNameQuadrant, nil
}

// ClearCategoryNameQuadrant clears the value of the "category_name_quadrant" field.
func (m *ProductMutation) ClearCategoryNameQuadrant() {
	m.category_name_quadrant = nil
	m.clearedFields[product.FieldCategoryNameQuadrant] = struct{}{}
}

// CategoryNameQuadrantCleared returns if the "category_name_quadrant" field was cleared in this mutation.
func (m *ProductMutation) CategoryNameQuadrantCleared() bool {
	_, ok := m.clearedFields[product.FieldCategoryNameQuadrant]
	return ok
}

// ResetCategoryNameQuadrant resets all changes to the "category_name_quadrant" field.
func (m *ProductMutation) ResetCategoryNameQuadrant() {
	m.category_name_quadrant = nil
	delete(m.clearedFields, product.FieldCategoryNameQuadrant)
}

// SetModel sets the "model" field.
func (m *ProductMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ProductMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *ProductMutation) ClearModel() {
	m.model = nil
	m.clearedFields[product.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *ProductMutation) ModelCleared() bool {
	_, ok := m.clearedFields[product.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *ProductMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, product.FieldModel)
}

// SetHsnCode sets the "hsn_code" field.
func (m *ProductMutation) SetHsnCode(s string) {
	m.hsn_code = &s
}

// HsnCode returns the value of the "hsn_code" field in the mutation.
func (m *ProductMutation) HsnCode() (r string, exists bool) {
	v := m.hsn_code
	if v == nil {
		return
	}
	return *v, true
}

// OldHsnCode returns the old "hsn_code" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldHsnCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHsnCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHsnCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHsnCode: %w", err)
	}
	return oldValue.HsnCode, nil
}

// ClearHsnCode clears the value of the "hsn_code" field.
func (m *ProductMutation) ClearHsnCode() {
	m.hsn_code = nil
	m.clearedFields[product.FieldHsnCode] = struct{}{}
}

// HsnCodeCleared returns if the "hsn_code" field was cleared in this mutation.
func (m *ProductMutation) HsnCodeCleared() bool {
	_, ok := m.clearedFields[product.FieldHsnCode]
	return ok
}

// ResetHsnCode resets all changes to the "hsn_code" field.
func (m *ProductMutation) ResetHsnCode() {
	m.hsn_code = nil
	delete(m.clearedFields, product.FieldHsnCode)
}

// SetOrderedQuantity sets the "ordered_quantity" field.
func (m *ProductMutation) SetOrderedQuantity(s string) {
	m.ordered_quantity = &s
}

// OrderedQuantity returns the value of the "ordered_quantity" field in the mutation.
func (m *ProductMutation) OrderedQuantity() (r string, exists bool) {
	v := m.ordered_quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderedQuantity returns the old "ordered_quantity" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldOrderedQuantity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderedQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderedQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderedQuantity: %w", err)
	}
	return oldValue.OrderedQuantity, nil
}

// ClearOrderedQuantity clears the value of the "ordered_quantity" field.
func (m *ProductMutation) ClearOrderedQuantity() {
	m.ordered_quantity = nil
	m.clearedFields[product.FieldOrderedQuantity] = struct{}{}
}

// OrderedQuantityCleared returns if the "ordered_quantity" field was cleared in this mutation.
func (m *ProductMutation) OrderedQuantityCleared() bool {
	_, ok := m.clearedFields[product.FieldOrderedQuantity]
	return ok
}

// ResetOrderedQuantity resets all changes to the "ordered_quantity" field.
func (m *ProductMutation) ResetOrderedQuantity() {
	m.ordered_quantity = nil
	delete(m.clearedFields, product.FieldOrderedQuantity)
}

// SetUnit sets the "unit" field.
func (m *ProductMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *ProductMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *ProductMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[product.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *ProductMutation) UnitCleared() bool {
	_, ok := m.clearedFields[product.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *ProductMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, product.FieldUnit)
}

// SetUnitPrice sets the "unit_price" field.
func (m *ProductMutation) SetUnitPrice(s string) {
	m.unit_price = &s
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *ProductMutation) UnitPrice() (r string, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUnitPrice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (m *ProductMutation) ClearUnitPrice() {
	m.unit_price = nil
	m.clearedFields[product.FieldUnitPrice] = struct{}{}
}

// UnitPriceCleared returns if the "unit_price" field was cleared in this mutation.
func (m *ProductMutation) UnitPriceCleared() bool {
	_, ok := m.clearedFields[product.FieldUnitPrice]
	return ok
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *ProductMutation) ResetUnitPrice() {
	m.unit_price = nil
	delete(m.clearedFields, product.FieldUnitPrice)
}

// SetTaxBifurcation sets the "tax_bifurcation" field.
func (m *ProductMutation) SetTaxBifurcation(s string) {
	m.tax_bifurcation = &s
}

// TaxBifurcation returns the value of the "tax_bifurcation" field in the mutation.
func (m *ProductMutation) TaxBifurcation() (r string, exists bool) {
	v := m.tax_bifurcation
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxBifurcation returns the old "tax_bifurcation" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldTaxBifurcation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxBifurcation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxBifurcation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxBifurcation: %w", err)
	}
	return oldValue.TaxBifurcation, nil
}

// ClearTaxBifurcation clears the value of the "tax_bifurcation" field.
func (m *ProductMutation) ClearTaxBifurcation() {
	m.tax_bifurcation = nil
	m.clearedFields[product.FieldTaxBifurcation] = struct{}{}
}

// TaxBifurcationCleared returns if the "tax_bifurcation" field was cleared in this mutation.
func (m *ProductMutation) TaxBifurcationCleared() bool {
	_, ok := m.clearedFields[product.FieldTaxBifurcation]
	return ok
}

// ResetTaxBifurcation resets all changes to the "tax_bifurcation" field.
func (m *ProductMutation) ResetTaxBifurcation() {
	m.tax_bifurcation = nil
	delete(m.clearedFields, product.FieldTaxBifurcation)
}

// SetTotalPrice sets the "total_price" field.
func (m *ProductMutation) SetTotalPrice(s string) {
	m.total_price = &s
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *ProductMutation) TotalPrice() (r string, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldTotalPrice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// ClearTotalPrice clears the value of the "total_price" field.
func (m *ProductMutation) ClearTotalPrice() {
	m.total_price = nil
	m.clearedFields[product.FieldTotalPrice] = struct{}{}
}

// TotalPriceCleared returns if the "total_price" field was cleared in this mutation.
func (m *ProductMutation) TotalPriceCleared() bool {
	_, ok := m.clearedFields[product.FieldTotalPrice]
	return ok
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *ProductMutation) ResetTotalPrice() {
	m.total_price = nil
	delete(m.clearedFields, product.FieldTotalPrice)
}

// SetNote sets the "note" field.
func (m *ProductMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *ProductMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *ProductMutation) ClearNote() {
	m.note = nil
	m.clearedFields[product.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *ProductMutation) NoteCleared() bool {
	_, ok := m.clearedFields[product.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *ProductMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, product.FieldNote)
}

// SetEmbedding sets the "embedding" field.
func (m *ProductMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *ProductMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *ProductMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *ProductMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *ProductMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[product.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *ProductMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[product.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *ProductMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, product.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Product entity.
// If the Product object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *ProductMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[product.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *ProductMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *ProductMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *ProductMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// AddSpecificationIDs adds the "specifications" edge to the ProductSpecification entity by ids.
func (m *ProductMutation) AddSpecificationIDs(ids ...uuid.UUID) {
	if m.specifications == nil {
		m.specifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.specifications[ids[i]] = struct{}{}
	}
}

// ClearSpecifications clears the "specifications" edge to the ProductSpecification entity.
func (m *ProductMutation) ClearSpecifications() {
	m.clearedspecifications = true
}

// SpecificationsCleared reports if the "specifications" edge to the ProductSpecification entity was cleared.
func (m *ProductMutation) SpecificationsCleared() bool {
	return m.clearedspecifications
}

// RemoveSpecificationIDs removes the "specifications" edge to the ProductSpecification entity by IDs.
func (m *ProductMutation) RemoveSpecificationIDs(ids ...uuid.UUID) {
	if m.removedspecifications == nil {
		m.removedspecifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.specifications, ids[i])
		m.removedspecifications[ids[i]] = struct{}{}
	}
}

// RemovedSpecifications returns the removed IDs of the "specifications" edge to the ProductSpecification entity.
func (m *ProductMutation) RemovedSpecificationsIDs() (ids []uuid.UUID) {
	for id := range m.removedspecifications {
		ids = append(ids, id)
	}
	return
}

// SpecificationsIDs returns the "specifications" edge IDs in the mutation.
func (m *ProductMutation) SpecificationsIDs() (ids []uuid.UUID) {
	for id := range m.specifications {
		ids = append(ids, id)
	}
	return
}

// ResetSpecifications resets all changes to the "specifications" edge.
func (m *ProductMutation) ResetSpecifications() {
	m.specifications = nil
	m.clearedspecifications = false
	m.removedspecifications = nil
}

// AddConsigneeIDs adds the "consignees" edge to the ConsigneeDetail entity by ids.
func (m *ProductMutation) AddConsigneeIDs(ids ...uuid.UUID) {
	if m.consignees == nil {
		m.consignees = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.consignees[ids[i]] = struct{}{}
	}
}

// ClearConsignees clears the "consignees" edge to the ConsigneeDetail entity.
func (m *ProductMutation) ClearConsignees() {
	m.clearedconsignees = true
}

// ConsigneesCleared reports if the "consignees" edge to the ConsigneeDetail entity was cleared.
func (m *ProductMutation) ConsigneesCleared() bool {
	return m.clearedconsignees
}

// RemoveConsigneeIDs removes the "consignees" edge to the ConsigneeDetail entity by IDs.
func (m *ProductMutation) RemoveConsigneeIDs(ids ...uuid.UUID) {
	if m.removedconsignees == nil {
		m.removedconsignees = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.consignees, ids[i])
		m.removedconsignees[ids[i]] = struct{}{}
	}
}

// RemovedConsignees returns the removed IDs of the "consignees" edge to the ConsigneeDetail entity.
func (m *ProductMutation) RemovedConsigneesIDs() (ids []uuid.UUID) {
	for id := range m.removedconsignees {
		ids = append(ids, id)
	}
	return
}

// ConsigneesIDs returns the "consignees" edge IDs in the mutation.
func (m *ProductMutation) ConsigneesIDs() (ids []uuid.UUID) {
	for id := range m.consignees {
		ids = append(ids, id)
	}
	return
}

// ResetConsignees resets all changes to the "consignees" edge.
func (m *ProductMutation) ResetConsignees() {
	m.consignees = nil
	m.clearedconsignees = false
	m.removedconsignees = nil
}

// Where appends a list predicates to the ProductMutation builder.
func (m *ProductMutation) Where(ps ...predicate.Product) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Product, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Product).
func (m *ProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.contract != nil {
		fields = append(fields, product.FieldContractID)
	}
	if m.product_name != nil {
		fields = append(fields, product.FieldProductName)
	}
	if m.brand != nil {
		fields = append(fields, product.FieldBrand)
	}
	if m.brand_type != nil {
		fields = append(fields, product.FieldBrandType)
	}
	if m.catalogue_status != nil {
		fields = append(fields, product.FieldCatalogueStatus)
	}
	if m.selling_as != nil {
		fields = append(fields, product.FieldSellingAs)
	}
	if m.category_name_quadrant != nil {
		fields = append(fields, product.FieldCategoryNameQuadrant)
	}
	if m.model != nil {
		fields = append(fields, product.FieldModel)
	}
	if m.hsn_code != nil {
		fields = append(fields, product.FieldHsnCode)
	}
	if m.ordered_quantity != nil {
		fields = append(fields, product.FieldOrderedQuantity)
	}
	if m.unit != nil {
		fields = append(fields, product.FieldUnit)
	}
	if m.unit_price != nil {
		fields = append(fields, product.FieldUnitPrice)
	}
	if m.tax_bifurcation != nil {
		fields = append(fields, product.FieldTaxBifurcation)
	}
	if m.total_price != nil {
		fields = append(fields, product.FieldTotalPrice)
	}
	if m.note != nil {
		fields = append(fields, product.FieldNote)
	}
	if m.embedding != nil {
		fields = append(fields, product.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, product.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, product.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case product.FieldContractID:
		return m.ContractID()
	case product.FieldProductName:
		return m.ProductName()
	case product.FieldBrand:
		return m.Brand()
	case product.FieldBrandType:
		return m.BrandType()
	case product.FieldCatalogueStatus:
		return m.CatalogueStatus()
	case product.FieldSellingAs:
		return m.SellingAs()
	case product.FieldCategoryNameQuadrant:
		return m.CategoryNameQuadrant()
	case product.FieldModel:
		return m.Model()
	case product.FieldHsnCode:
		return m.HsnCode()
	case product.FieldOrderedQuantity:
		return m.OrderedQuantity()
	case product.FieldUnit:
		return m.Unit()
	case product.FieldUnitPrice:
		return m.UnitPrice()
	case product.FieldTaxBifurcation:
		return m.TaxBifurcation()
	case product.FieldTotalPrice:
		return m.TotalPrice()
	case product.FieldNote:
		return m.Note()
	case product.FieldEmbedding:
		return m.Embedding()
	case product.FieldCreatedAt:
		return m.CreatedAt()
	case product.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case product.FieldContractID:
		return m.OldContractID(ctx)
	case product.FieldProductName:
		return m.OldProductName(ctx)
	case product.FieldBrand:
		return m.OldBrand(ctx)
	case product.FieldBrandType:
		return m.OldBrandType(ctx)
	case product.FieldCatalogueStatus:
		return m.OldCatalogueStatus(ctx)
	case product.FieldSellingAs:
		return m.OldSellingAs(ctx)
	case product.FieldCategoryNameQuadrant:
		return m.OldCategoryNameQuadrant(ctx)
	case product.FieldModel:
		return m.OldModel(ctx)
	case product.FieldHsnCode:
		return m.OldHsnCode(ctx)
	case product.FieldOrderedQuantity:
		return m.OldOrderedQuantity(ctx)
	case product.FieldUnit:
		return m.OldUnit(ctx)
	case product.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case product.FieldTaxBifurcation:
		return m.OldTaxBifurcation(ctx)
	case product.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case product.FieldNote:
		return m.OldNote(ctx)
	case product.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case product.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case product.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Product field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case product.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case product.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case product.FieldBrand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrand(v)
		return nil
	case product.FieldBrandType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandType(v)
		return nil
	case product.FieldCatalogueStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogueStatus(v)
		return nil
	case product.FieldSellingAs:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSellingAs(v)
		return nil
	case product.FieldCategoryNameQuadrant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryNameQuadrant(v)
		return nil
	case product.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case product.FieldHsnCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHsnCode(v)
		return nil
	case product.FieldOrderedQuantity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderedQuantity(v)
		return nil
	case product.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case product.FieldUnitPrice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case product.FieldTaxBifurcation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxBifurcation(v)
		return nil
	case product.FieldTotalPrice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case product.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case product.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case product.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case product.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Product numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(product.FieldBrand) {
		fields = append(fields, product.FieldBrand)
	}
	if m.FieldCleared(product.FieldBrandType) {
		fields = append(fields, product.FieldBrandType)
	}
	if m.FieldCleared(product.FieldCatalogueStatus) {
		fields = append(fields, product.FieldCatalogueStatus)
	}
	if m.FieldCleared(product.FieldSellingAs) {
		fields = append(fields, product.FieldSellingAs)
	}
	if m.FieldCleared(product.FieldCategoryNameQuadrant) {
		fields = append(fields, product.FieldCategoryNameQuadrant)
	}
	if m.FieldCleared(product.FieldModel) {
		fields = append(fields, product.FieldModel)
	}
	if m.FieldCleared(product.FieldHsnCode) {
		fields = append(fields, product.FieldHsnCode)
	}
	if m.FieldCleared(product.FieldOrderedQuantity) {
		fields = append(fields, product.FieldOrderedQuantity)
	}
	if m.FieldCleared(product.FieldUnit) {
		fields = append(fields, product.FieldUnit)
	}
	if m.FieldCleared(product.FieldUnitPrice) {
		fields = append(fields, product.FieldUnitPrice)
	}
	if m.FieldCleared(product.FieldTaxBifurcation) {
		fields = append(fields, product.FieldTaxBifurcation)
	}
	if m.FieldCleared(product.FieldTotalPrice) {
		fields = append(fields, product.FieldTotalPrice)
	}
	if m.FieldCleared(product.FieldNote) {
		fields = append(fields, product.FieldNote)
	}
	if m.FieldCleared(product.FieldEmbedding) {
		fields = append(fields, product.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductMutation) ClearField(name string) error {
	switch name {
	case product.FieldBrand:
		m.ClearBrand()
		return nil
	case product.FieldBrandType:
		m.ClearBrandType()
		return nil
	case product.FieldCatalogueStatus:
		m.ClearCatalogueStatus()
		return nil
	case product.FieldSellingAs:
		m.ClearSellingAs()
		return nil
	case product.FieldCategoryNameQuadrant:
		m.ClearCategoryNameQuadrant()
		return nil
	case product.FieldModel:
		m.ClearModel()
		return nil
	case product.FieldHsnCode:
		m.ClearHsnCode()
		return nil
	case product.FieldOrderedQuantity:
		m.ClearOrderedQuantity()
		return nil
	case product.FieldUnit:
		m.ClearUnit()
		return nil
	case product.FieldUnitPrice:
		m.ClearUnitPrice()
		return nil
	case product.FieldTaxBifurcation:
		m.ClearTaxBifurcation()
		return nil
	case product.FieldTotalPrice:
		m.ClearTotalPrice()
		return nil
	case product.FieldNote:
		m.ClearNote()
		return nil
	case product.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown Product nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductMutation) ResetField(name string) error {
	switch name {
	case product.FieldContractID:
		m.ResetContractID()
		return nil
	case product.FieldProductName:
		m.ResetProductName()
		return nil
	case product.FieldBrand:
		m.ResetBrand()
		return nil
	case product.FieldBrandType:
		m.ResetBrandType()
		return nil
	case product.FieldCatalogueStatus:
		m.ResetCatalogueStatus()
		return nil
	case product.FieldSellingAs:
		m.ResetSellingAs()
		return nil
	case product.FieldCategoryNameQuadrant:
		m.ResetCategoryNameQuadrant()
		return nil
	case product.FieldModel:
		m.ResetModel()
		return nil
	case product.FieldHsnCode:
		m.ResetHsnCode()
		return nil
	case product.FieldOrderedQuantity:
		m.ResetOrderedQuantity()
		return nil
	case product.FieldUnit:
		m.ResetUnit()
		return nil
	case product.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case product.FieldTaxBifurcation:
		m.ResetTaxBifurcation()
		return nil
	case product.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case product.FieldNote:
		m.ResetNote()
		return nil
	case product.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case product.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case product.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Product field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.contract != nil {
		edges = append(edges, product.EdgeContract)
	}
	if m.specifications != nil {
		edges = append(edges, product.EdgeSpecifications)
	}
	if m.consignees != nil {
		edges = append(edges, product.EdgeConsignees)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	case product.EdgeSpecifications:
		ids := make([]ent.Value, 0, len(m.specifications))
		for id := range m.specifications {
			ids = append(ids, id)
		}
		return ids
	case product.EdgeConsignees:
		ids := make([]ent.Value, 0, len(m.consignees))
		for id := range m.consignees {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedspecifications != nil {
		edges = append(edges, product.EdgeSpecifications)
	}
	if m.removedconsignees != nil {
		edges = append(edges, product.EdgeConsignees)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case product.EdgeSpecifications:
		ids := make([]ent.Value, 0, len(m.removedspecifications))
		for id := range m.removedspecifications {
			ids = append(ids, id)
		}
		return ids
	case product.EdgeConsignees:
		ids := make([]ent.Value, 0, len(m.removedconsignees))
		for id := range m.removedconsignees {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcontract {
		edges = append(edges, product.EdgeContract)
	}
	if m.clearedspecifications {
		edges = append(edges, product.EdgeSpecifications)
	}
	if m.clearedconsignees {
		edges = append(edges, product.EdgeConsignees)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductMutation) EdgeCleared(name string) bool {
	switch name {
	case product.EdgeContract:
		return m.clearedcontract
	case product.EdgeSpecifications:
		return m.clearedspecifications
	case product.EdgeConsignees:
		return m.clearedconsignees
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductMutation) ClearEdge(name string) error {
	switch name {
	case product.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown Product unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductMutation) ResetEdge(name string) error {
	switch name {
	case product.EdgeContract:
		m.ResetContract()
		return nil
	case product.EdgeSpecifications:
		m.ResetSpecifications()
		return nil
	case product.EdgeConsignees:
		m.ResetConsignees()
		return nil
	}
	return fmt.Errorf("unknown Product edge %s", name)
}

// ProductSpecificationMutation represents an operation that mutates the ProductSpecification nodes in the graph.
type ProductSpecificationMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	category       *string
	sub_spec       *string
	value          *string
	clearedFields  map[string]struct{}
	product        *uuid.UUID
	clearedproduct bool
	done           bool
	oldValue       func(context.Context) (*ProductSpecification, error)
	predicates     []predicate.ProductSpecification
}

var _ ent.Mutation = (*ProductSpecificationMutation)(nil)

// productspecificationOption allows management of the mutation configuration using functional options.
type productspecificationOption func(*ProductSpecificationMutation)

// newProductSpecificationMutation creates new mutation for the ProductSpecification entity.
func newProductSpecificationMutation(c config, op Op, opts ...productspecificationOption) *ProductSpecificationMutation {
	m := &ProductSpecificationMutation{
		config:        c,
		op:            op,
		typ:           TypeProductSpecification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductSpecificationID sets the ID field of the mutation.
func withProductSpecificationID(id uuid.UUID) productspecificationOption {
	return func(m *ProductSpecificationMutation) {
		var (
			err   error
			once  sync.Once
			value *ProductSpecification
		)
		m.oldValue = func(ctx context.Context) (*ProductSpecification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProductSpecification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProductSpecification sets the old ProductSpecification of the mutation.
func withProductSpecification(node *ProductSpecification) productspecificationOption {
	return func(m *ProductSpecificationMutation) {
		m.oldValue = func(context.Context) (*ProductSpecification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductSpecificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductSpecificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProductSpecification entities.
func (m *ProductSpecificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductSpecificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductSpecificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProductSpecification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProductID sets the "product_id" field.
func (m *ProductSpecificationMutation) SetProductID(u uuid.UUID) {
	m.product = &u
}

// ProductID returns the value of the "product_id" field in the mutation.
func (m *ProductSpecificationMutation) ProductID() (r uuid.UUID, exists bool) {
	v := m.product
	if v == nil {
		return
	}
	return *v, true
}

// OldProductID returns the old "product_id" field's value of the ProductSpecification entity.
// If the ProductSpecification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductSpecificationMutation) OldProductID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductID: %w", err)
	}
	return oldValue.ProductID, nil
}

// ResetProductID resets all changes to the "product_id" field.
func (m *ProductSpecificationMutation) ResetProductID() {
	m.product = nil
}

// SetCategory sets the "category" field.
func (m *ProductSpecificationMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ProductSpecificationMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ProductSpecification entity.
// If the ProductSpecification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductSpecificationMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ProductSpecificationMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[productspecification.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ProductSpecificationMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[productspecification.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ProductSpecificationMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, productspecification.FieldCategory)
}

// SetSubSpec sets the "sub_spec" field.
func (m *ProductSpecificationMutation) SetSubSpec(s string) {
	m.sub_spec = &s
}

// SubSpec returns the value of the "sub_spec" field in the mutation.
func (m *ProductSpecificationMutation) SubSpec() (r string, exists bool) {
	v := m.sub_spec
	if v == nil {
		return
	}
	return *v, true
}

// OldSubSpec returns the old "sub_spec" field's value of the ProductSpecification entity.
// If the ProductSpecification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductSpecificationMutation) OldSubSpec(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubSpec: %w", err)
	}
	return oldValue.SubSpec, nil
}

// ClearSubSpec clears the value of the "sub_spec" field.
func (m *ProductSpecificationMutation) ClearSubSpec() {
	m.sub_spec = nil
	m.clearedFields[productspecification.FieldSubSpec] = struct{}{}
}

// SubSpecCleared returns if the "sub_spec" field was cleared in this mutation.
func (m *ProductSpecificationMutation) SubSpecCleared() bool {
	_, ok := m.clearedFields[productspecification.FieldSubSpec]
	return ok
}

// ResetSubSpec resets all changes to the "sub_spec" field.
func (m *ProductSpecificationMutation) ResetSubSpec() {
	m.sub_spec = nil
	delete(m.clearedFields, productspecification.FieldSubSpec)
}

// SetValue sets the "value" field.
func (m *ProductSpecificationMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *ProductSpecificationMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ProductSpecification entity.
// If the ProductSpecification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductSpecificationMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ClearValue clears the value of the "value" field.
func (m *ProductSpecificationMutation) ClearValue() {
	m.value = nil
	m.clearedFields[productspecification.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *ProductSpecificationMutation) ValueCleared() bool {
	_, ok := m.clearedFields[productspecification.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *ProductSpecificationMutation) ResetValue() {
	m.value = nil
	delete(m.clearedFields, productspecification.FieldValue)
}

// ClearProduct clears the "product" edge to the Product entity.
func (m *ProductSpecificationMutation) ClearProduct() {
	m.clearedproduct = true
	m.clearedFields[productspecification.FieldProductID] = struct{}{}
}

// ProductCleared reports if the "product" edge to the Product entity was cleared.
func (m *ProductSpecificationMutation) ProductCleared() bool {
	return m.clearedproduct
}

// ProductIDs returns the "product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductID instead. It exists only for internal usage by the builders.
func (m *ProductSpecificationMutation) ProductIDs() (ids []uuid.UUID) {
	if id := m.product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProduct resets all changes to the "product" edge.
func (m *ProductSpecificationMutation) ResetProduct() {
	m.product = nil
	m.clearedproduct = false
}

// Where appends a list predicates to the ProductSpecificationMutation builder.
func (m *ProductSpecificationMutation) Where(ps ...predicate.ProductSpecification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductSpecificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductSpecificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProductSpecification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductSpecificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductSpecificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProductSpecification).
func (m *ProductSpecificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductSpecificationMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.product != nil {
		fields = append(fields, productspecification.FieldProductID)
	}
	if m.category != nil {
		fields = append(fields, productspecification.FieldCategory)
	}
	if m.sub_spec != nil {
		fields = append(fields, productspecification.FieldSubSpec)
	}
	if m.value != nil {
		fields = append(fields, productspecification.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductSpecificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case productspecification.FieldProductID:
		return m.ProductID()
	case productspecification.FieldCategory:
		return m.Category()
	case productspecification.FieldSubSpec:
		return m.SubSpec()
	case productspecification.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductSpecificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case productspecification.FieldProductID:
		return m.OldProductID(ctx)
	case productspecification.FieldCategory:
		return m.OldCategory(ctx)
	case productspecification.FieldSubSpec:
		return m.OldSubSpec(ctx)
	case productspecification.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown ProductSpecification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductSpecificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case productspecification.FieldProductID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductID(v)
		return nil
	case productspecification.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case productspecification.FieldSubSpec:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubSpec(v)
		return nil
	case productspecification.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown ProductSpecification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductSpecificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductSpecificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductSpecificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProductSpecification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductSpecificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(productspecification.FieldCategory) {
		fields = append(fields, productspecification.FieldCategory)
	}
	if m.FieldCleared(productspecification.FieldSubSpec) {
		fields = append(fields, productspecification.FieldSubSpec)
	}
	if m.FieldCleared(productspecification.FieldValue) {
		fields = append(fields, productspecification.FieldValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductSpecificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductSpecificationMutation) ClearField(name string) error {
	switch name {
	case productspecification.FieldCategory:
		m.ClearCategory()
		return nil
	case productspecification.FieldSubSpec:
		m.ClearSubSpec()
		return nil
	case productspecification.FieldValue:
		m.ClearValue()
		return nil
	}
	return fmt.Errorf("unknown ProductSpecification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductSpecificationMutation) ResetField(name string) error {
	switch name {
	case productspecification.FieldProductID:
		m.ResetProductID()
		return nil
	case productspecification.FieldCategory:
		m.ResetCategory()
		return nil
	case productspecification.FieldSubSpec:
		m.ResetSubSpec()
		return nil
	case productspecification.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown ProductSpecification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductSpecificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.product != nil {
		edges = append(edges, productspecification.EdgeProduct)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductSpecificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case productspecification.EdgeProduct:
		if id := m.product; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductSpecificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductSpecificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductSpecificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproduct {
		edges = append(edges, productspecification.EdgeProduct)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductSpecificationMutation) EdgeCleared(name string) bool {
	switch name {
	case productspecification.EdgeProduct:
		return m.clearedproduct
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductSpecificationMutation) ClearEdge(name string) error {
	switch name {
	case productspecification.EdgeProduct:
		m.ClearProduct()
		return nil
	}
	return fmt.Errorf("unknown ProductSpecification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductSpecificationMutation) ResetEdge(name string) error {
	switch name {
	case productspecification.EdgeProduct:
		m.ResetProduct()
		return nil
	}
	return fmt.Errorf("unknown ProductSpecification edge %s", name)
}

// SellerDetailMutation represents an operation that mutates the SellerDetail nodes in the graph.
type SellerDetailMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	gem_seller_id            *string
	company_name             *string
	contact_no               *string
	email                    *string
	address                  *string
	msme_registration_number *string
	gstin                    *string
	clearedFields            map[string]struct{}
	contract                 *uuid.UUID
	clearedcontract          bool
	done                     bool
	oldValue                 func(context.Context) (*SellerDetail, error)
	predicates               []predicate.SellerDetail
}

var _ ent.Mutation = (*SellerDetailMutation)(nil)

// sellerdetailOption allows management of the mutation configuration using functional options.
type sellerdetailOption func(*SellerDetailMutation)

// newSellerDetailMutation creates new mutation for the SellerDetail entity.
func newSellerDetailMutation(c config, op Op, opts ...sellerdetailOption) *SellerDetailMutation {
	m := &SellerDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeSellerDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSellerDetailID sets the ID field of the mutation.
func withSellerDetailID(id uuid.UUID) sellerdetailOption {
	return func(m *SellerDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *SellerDetail
		)
		m.oldValue = func(ctx context.Context) (*SellerDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SellerDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSellerDetail sets the old SellerDetail of the mutation.
func withSellerDetail(node *SellerDetail) sellerdetailOption {
	return func(m *SellerDetailMutation) {
		m.oldValue = func(context.Context) (*SellerDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SellerDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SellerDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SellerDetail entities.
func (m *SellerDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SellerDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SellerDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SellerDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *SellerDetailMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *SellerDetailMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the SellerDetail entity.
// If the SellerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerDetailMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *SellerDetailMutation) ResetContractID() {
	m.contract = nil
}

// SetGemSellerID sets the "gem_seller_id" field.
func (m *SellerDetailMutation) SetGemSellerID(s string) {
	m.gem_seller_id = &s
}

// GemSellerID returns the value of the "gem_seller_id" field in the mutation.
func (m *SellerDetailMutation) GemSellerID() (r string, exists bool) {
	v := m.gem_seller_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGemSellerID returns the old "gem_seller_id" field's value of the SellerDetail entity.
// If the SellerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerDetailMutation) OldGemSellerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGemSellerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGemSellerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGemSellerID: %w", err)
	}
	return oldValue.GemSellerID, nil
}

// ClearGemSellerID clears the value of the "gem_seller_id" field.
func (m *SellerDetailMutation) ClearGemSellerID() {
	m.gem_seller_id = nil
	m.clearedFields[sellerdetail.FieldGemSellerID] = struct{}{}
}

// GemSellerIDCleared returns if the "gem_seller_id" field was cleared in this mutation.
func (m *SellerDetailMutation) GemSellerIDCleared() bool {
	_, ok := m.clearedFields[sellerdetail.FieldGemSellerID]
	return ok
}

// ResetGemSellerID resets all changes to the "gem_seller_id" field.
func (m *SellerDetailMutation) ResetGemSellerID() {
	m.gem_seller_id = nil
	delete(m.clearedFields, sellerdetail.FieldGemSellerID)
}

// SetCompanyName sets the "company_name" field.
func (m *SellerDetailMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *SellerDetailMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the SellerDetail entity.
// If the SellerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerDetailMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ClearCompanyName clears the value of the "company_name" field.
func (m *SellerDetailMutation) ClearCompanyName() {
	m.company_name = nil
	m.clearedFields[sellerdetail.FieldCompanyName] = struct{}{}
}

// CompanyNameCleared returns if the "company_name" field was cleared in this mutation.
func (m *SellerDetailMutation) CompanyNameCleared() bool {
	_, ok := m.clearedFields[sellerdetail.FieldCompanyName]
	return ok
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *SellerDetailMutation) ResetCompanyName() {
	m.company_name = nil
	delete(m.clearedFields, sellerdetail.FieldCompanyName)
}

// SetContactNo sets the "contact_no" field.
func (m *SellerDetailMutation) SetContactNo(s string) {
	m.contact_no = &s
}

// ContactNo returns the value of the "contact_no" field in the mutation.
func (m *SellerDetailMutation) ContactNo() (r string, exists bool) {
	v := m.contact_no
	if v == nil {
		return
	}
	return *v, true
}

// OldContactNo returns the old "contact_no" field's value of the SellerDetail entity.
// If the SellerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerDetailMutation) OldContactNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactNo: %w", err)
	}
	return oldValue.ContactNo, nil
}

// ClearContactNo clears the value of the "contact_no" field.
func (m *SellerDetailMutation) ClearContactNo() {
	m.contact_no = nil
	m.clearedFields[sellerdetail.FieldContactNo] = struct{}{}
}

// ContactNoCleared returns if the "contact_no" field was cleared in this mutation.
func (m *SellerDetailMutation) ContactNoCleared() bool {
	_, ok := m.clearedFields[sellerdetail.FieldContactNo]
	return ok
}

// ResetContactNo resets all changes to the "contact_no" field.
func (m *SellerDetailMutation) ResetContactNo() {
	m.contact_no = nil
	delete(m.clearedFields, sellerdetail.FieldContactNo)
}

// SetEmail sets the "email" field.
func (m *SellerDetailMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *SellerDetailMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the SellerDetail entity.
// If the SellerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerDetailMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *SellerDetailMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[sellerdetail.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *SellerDetailMutation) EmailCleared() bool {
	_, ok := m.clearedFields[sellerdetail.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *SellerDetailMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, sellerdetail.FieldEmail)
}

// SetAddress sets the "address" field.
func (m *SellerDetailMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *SellerDetailMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the SellerDetail entity.
// If the SellerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerDetailMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *SellerDetailMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[sellerdetail.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *SellerDetailMutation) AddressCleared() bool {
	_, ok := m.clearedFields[sellerdetail.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *SellerDetailMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, sellerdetail.FieldAddress)
}

// SetMsmeRegistrationNumber sets the "msme_registration_number" field.
func (m *SellerDetailMutation) SetMsmeRegistrationNumber(s string) {
	m.msme_registration_number = &s
}

// MsmeRegistrationNumber returns the value of the "msme_registration_number" field in the mutation.
func (m *SellerDetailMutation) MsmeRegistrationNumber() (r string, exists bool) {
	v := m.msme_registration_number
	if v == nil {
		return
	}
	return *v, true
}

// OldMsmeRegistrationNumber returns the old "msme_registration_number" field's value of the SellerDetail entity.
// If the SellerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerDetailMutation) OldMsmeRegistrationNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMsmeRegistrationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMsmeRegistrationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMsmeRegistrationNumber: %w", err)
	}
	return oldValue.MsmeRegistrationNumber, nil
}

// ClearMsmeRegistrationNumber clears the value of the "msme_registration_number" field.
func (m *SellerDetailMutation) ClearMsmeRegistrationNumber() {
	m.msme_registration_number = nil
	m.clearedFields[sellerdetail.FieldMsmeRegistrationNumber] = struct{}{}
}

// MsmeRegistrationNumberCleared returns if the "msme_registration_number" field was cleared in this mutation.
func (m *SellerDetailMutation) MsmeRegistrationNumberCleared() bool {
	_, ok := m.clearedFields[sellerdetail.FieldMsmeRegistrationNumber]
	return ok
}

// ResetMsmeRegistrationNumber resets all changes to the "msme_registration_number" field.
func (m *SellerDetailMutation) ResetMsmeRegistrationNumber() {
	m.msme_registration_number = nil
	delete(m.clearedFields, sellerdetail.FieldMsmeRegistrationNumber)
}

// SetGstin sets the "gstin" field.
func (m *SellerDetailMutation) SetGstin(s string) {
	m.gstin = &s
}

// Gstin returns the value of the "gstin" field in the mutation.
func (m *SellerDetailMutation) Gstin() (r string, exists bool) {
	v := m.gstin
	if v == nil {
		return
	}
	return *v, true
}

// OldGstin returns the old "gstin" field's value of the SellerDetail entity.
// If the SellerDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerDetailMutation) OldGstin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGstin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGstin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGstin: %w", err)
	}
	return oldValue.Gstin, nil
}

// ClearGstin clears the value of the "gstin" field.
func (m *SellerDetailMutation) ClearGstin() {
	m.gstin = nil
	m.clearedFields[sellerdetail.FieldGstin] = struct{}{}
}

// GstinCleared returns if the "gstin" field was cleared in this mutation.
func (m *SellerDetailMutation) GstinCleared() bool {
	_, ok := m.clearedFields[sellerdetail.FieldGstin]
	return ok
}

// ResetGstin resets all changes to the "gstin" field.
func (m *SellerDetailMutation) ResetGstin() {
	m.gstin = nil
	delete(m.clearedFields, sellerdetail.FieldGstin)
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *SellerDetailMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[sellerdetail.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *SellerDetailMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *SellerDetailMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *SellerDetailMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the SellerDetailMutation builder.
func (m *SellerDetailMutation) Where(ps ...predicate.SellerDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SellerDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SellerDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SellerDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SellerDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SellerDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SellerDetail).
func (m *SellerDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SellerDetailMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.contract != nil {
		fields = append(fields, sellerdetail.FieldContractID)
	}
	if m.gem_seller_id != nil {
		fields = append(fields, sellerdetail.FieldGemSellerID)
	}
	if m.company_name != nil {
		fields = append(fields, sellerdetail.FieldCompanyName)
	}
	if m.contact_no != nil {
		fields = append(fields, sellerdetail.FieldContactNo)
	}
	if m.email != nil {
		fields = append(fields, sellerdetail.FieldEmail)
	}
	if m.address != nil {
		fields = append(fields, sellerdetail.FieldAddress)
	}
	if m.msme_registration_number != nil {
		fields = append(fields, sellerdetail.FieldMsmeRegistrationNumber)
	}
	if m.gstin != nil {
		fields = append(fields, sellerdetail.FieldGstin)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SellerDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sellerdetail.FieldContractID:
		return m.ContractID()
	case sellerdetail.FieldGemSellerID:
		return m.GemSellerID()
	case sellerdetail.FieldCompanyName:
		return m.CompanyName()
	case sellerdetail.FieldContactNo:
		return m.ContactNo()
	case sellerdetail.FieldEmail:
		return m.Email()
	case sellerdetail.FieldAddress:
		return m.Address()
	case sellerdetail.FieldMsmeRegistrationNumber:
		return m.MsmeRegistrationNumber()
	case sellerdetail.FieldGstin:
		return m.Gstin()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SellerDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sellerdetail.FieldContractID:
		return m.OldContractID(ctx)
	case sellerdetail.FieldGemSellerID:
		return m.OldGemSellerID(ctx)
	case sellerdetail.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case sellerdetail.FieldContactNo:
		return m.OldContactNo(ctx)
	case sellerdetail.FieldEmail:
		return m.OldEmail(ctx)
	case sellerdetail.FieldAddress:
		return m.OldAddress(ctx)
	case sellerdetail.FieldMsmeRegistrationNumber:
		return m.OldMsmeRegistrationNumber(ctx)
	case sellerdetail.FieldGstin:
		return m.OldGstin(ctx)
	}
	return nil, fmt.Errorf("unknown SellerDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SellerDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sellerdetail.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case sellerdetail.FieldGemSellerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGemSellerID(v)
		return nil
	case sellerdetail.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case sellerdetail.FieldContactNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactNo(v)
		return nil
	case sellerdetail.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case sellerdetail.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case sellerdetail.FieldMsmeRegistrationNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMsmeRegistrationNumber(v)
		return nil
	case sellerdetail.FieldGstin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGstin(v)
		return nil
	}
	return fmt.Errorf("unknown SellerDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SellerDetailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SellerDetailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SellerDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SellerDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SellerDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sellerdetail.FieldGemSellerID) {
		fields = append(fields, sellerdetail.FieldGemSellerID)
	}
	if m.FieldCleared(sellerdetail.FieldCompanyName) {
		fields = append(fields, sellerdetail.FieldCompanyName)
	}
	if m.FieldCleared(sellerdetail.FieldContactNo) {
		fields = append(fields, sellerdetail.FieldContactNo)
	}
	if m.FieldCleared(sellerdetail.FieldEmail) {
		fields = append(fields, sellerdetail.FieldEmail)
	}
	if m.FieldCleared(sellerdetail.FieldAddress) {
		fields = append(fields, sellerdetail.FieldAddress)
	}
	if m.FieldCleared(sellerdetail.FieldMsmeRegistrationNumber) {
		fields = append(fields, sellerdetail.FieldMsmeRegistrationNumber)
	}
	if m.FieldCleared(sellerdetail.FieldGstin) {
		fields = append(fields, sellerdetail.FieldGstin)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SellerDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SellerDetailMutation) ClearField(name string) error {
	switch name {
	case sellerdetail.FieldGemSellerID:
		m.ClearGemSellerID()
		return nil
	case sellerdetail.FieldCompanyName:
		m.ClearCompanyName()
		return nil
	case sellerdetail.FieldContactNo:
		m.ClearContactNo()
		return nil
	case sellerdetail.FieldEmail:
		m.ClearEmail()
		return nil
	case sellerdetail.FieldAddress:
		m.ClearAddress()
		return nil
	case sellerdetail.FieldMsmeRegistrationNumber:
		m.ClearMsmeRegistrationNumber()
		return nil
	case sellerdetail.FieldGstin:
		m.ClearGstin()
		return nil
	}
	return fmt.Errorf("unknown SellerDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SellerDetailMutation) ResetField(name string) error {
	switch name {
	case sellerdetail.FieldContractID:
		m.ResetContractID()
		return nil
	case sellerdetail.FieldGemSellerID:
		m.ResetGemSellerID()
		return nil
	case sellerdetail.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case sellerdetail.FieldContactNo:
		m.ResetContactNo()
		return nil
	case sellerdetail.FieldEmail:
		m.ResetEmail()
		return nil
	case sellerdetail.FieldAddress:
		m.ResetAddress()
		return nil
	case sellerdetail.FieldMsmeRegistrationNumber:
		m.ResetMsmeRegistrationNumber()
		return nil
	case sellerdetail.FieldGstin:
		m.ResetGstin()
		return nil
	}
	return fmt.Errorf("unknown SellerDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SellerDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, sellerdetail.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SellerDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sellerdetail.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SellerDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SellerDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SellerDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, sellerdetail.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SellerDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case sellerdetail.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SellerDetailMutation) ClearEdge(name string) error {
	switch name {
	case sellerdetail.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown SellerDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SellerDetailMutation) ResetEdge(name string) error {
	switch name {
	case sellerdetail.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown SellerDetail edge %s", name)
}

// SourceFileMutation represents an operation that mutates the SourceFile nodes in the graph.
type SourceFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	doc_type      *string
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*SourceFile, error)
	predicates    []predicate.SourceFile
}

var _ ent.Mutation = (*SourceFileMutation)(nil)

// sourcefileOption allows management of the mutation configuration using functional options.
type sourcefileOption func(*SourceFileMutation)

// newSourceFileMutation creates new mutation for the SourceFile entity.
func newSourceFileMutation(c config, op Op, opts ...sourcefileOption) *SourceFileMutation {
	m := &SourceFileMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceFileID sets the ID field of the mutation.
func withSourceFileID(id uuid.UUID) sourcefileOption {
	return func(m *SourceFileMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceFile
		)
		m.oldValue = func(ctx context.Context) (*SourceFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceFile sets the old SourceFile of the mutation.
func withSourceFile(node *SourceFile) sourcefileOption {
	return func(m *SourceFileMutation) {
		m.oldValue = func(context.Context) (*SourceFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceFile entities.
func (m *SourceFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *SourceFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *SourceFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *SourceFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SourceFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SourceFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SourceFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *SourceFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SourceFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SourceFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *SourceFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *SourceFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *SourceFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *SourceFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *SourceFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *SourceFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *SourceFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *SourceFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetDocType sets the "doc_type" field.
func (m *SourceFileMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *SourceFileMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *SourceFileMutation) ResetDocType() {
	m.doc_type = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SourceFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SourceFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SourceFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *SourceFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *SourceFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *SourceFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *SourceFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *SourceFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *SourceFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *SourceFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the SourceFileMutation builder.
func (m *SourceFileMutation) Where(ps ...predicate.SourceFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceFile).
func (m *SourceFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.source_path != nil {
		fields = append(fields, sourcefile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, sourcefile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, sourcefile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, sourcefile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, sourcefile.FieldFileSize)
	}
	if m.doc_type != nil {
		fields = append(fields, sourcefile.FieldDocType)
	}
	if m.uploaded_at != nil {
		fields = append(fields, sourcefile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcefile.FieldSourcePath:
		return m.SourcePath()
	case sourcefile.FieldContentHash:
		return m.ContentHash()
	case sourcefile.FieldFilename:
		return m.Filename()
	case sourcefile.FieldFileExt:
		return m.FileExt()
	case sourcefile.FieldFileSize:
		return m.FileSize()
	case sourcefile.FieldDocType:
		return m.DocType()
	case sourcefile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcefile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case sourcefile.FieldContentHash:
		return m.OldContentHash(ctx)
	case sourcefile.FieldFilename:
		return m.OldFilename(ctx)
	case sourcefile.FieldFileExt:
		return m.OldFileExt(ctx)
	case sourcefile.FieldFileSize:
		return m.OldFileSize(ctx)
	case sourcefile.FieldDocType:
		return m.OldDocType(ctx)
	case sourcefile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcefile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case sourcefile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sourcefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case sourcefile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case sourcefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case sourcefile.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case sourcefile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, sourcefile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcefile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown SourceFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceFileMutation) ResetField(name string) error {
	switch name {
	case sourcefile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case sourcefile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sourcefile.FieldFilename:
		m.ResetFilename()
		return nil
	case sourcefile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case sourcefile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case sourcefile.FieldDocType:
		m.ResetDocType()
		return nil
	case sourcefile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sourcefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceFileMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcefile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SourceFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceFileMutation) ResetEdge(name string) error {
	switch name {
	case sourcefile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown SourceFile edge %s", name)
}

// TermsAndConditionMutation represents an operation that mutates the TermsAndCondition nodes in the graph.
type TermsAndConditionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	clause_text     *string
	clearedFields   map[string]struct{}
	contract        *uuid.UUID
	clearedcontract bool
	done            bool
	oldValue        func(context.Context) (*TermsAndCondition, error)
	predicates      []predicate.TermsAndCondition
}

var _ ent.Mutation = (*TermsAndConditionMutation)(nil)

// termsandconditionOption allows management of the mutation configuration using functional options.
type termsandconditionOption func(*TermsAndConditionMutation)

// newTermsAndConditionMutation creates new mutation for the TermsAndCondition entity.
func newTermsAndConditionMutation(c config, op Op, opts ...termsandconditionOption) *TermsAndConditionMutation {
	m := &TermsAndConditionMutation{
		config:        c,
		op:            op,
		typ:           TypeTermsAndCondition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTermsAndConditionID sets the ID field of the mutation.
func withTermsAndConditionID(id uuid.UUID) termsandconditionOption {
	return func(m *TermsAndConditionMutation) {
		var (
			err   error
			once  sync.Once
			value *TermsAndCondition
		)
		m.oldValue = func(ctx context.Context) (*TermsAndCondition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TermsAndCondition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTermsAndCondition sets the old TermsAndCondition of the mutation.
func withTermsAndCondition(node *TermsAndCondition) termsandconditionOption {
	return func(m *TermsAndConditionMutation) {
		m.oldValue = func(context.Context) (*TermsAndCondition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TermsAndConditionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TermsAndConditionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TermsAndCondition entities.
func (m *TermsAndConditionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TermsAndConditionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TermsAndConditionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TermsAndCondition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContractID sets the "contract_id" field.
func (m *TermsAndConditionMutation) SetContractID(u uuid.UUID) {
	m.contract = &u
}

// ContractID returns the value of the "contract_id" field in the mutation.
func (m *TermsAndConditionMutation) ContractID() (r uuid.UUID, exists bool) {
	v := m.contract
	if v == nil {
		return
	}
	return *v, true
}

// OldContractID returns the old "contract_id" field's value of the TermsAndCondition entity.
// If the TermsAndCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermsAndConditionMutation) OldContractID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractID: %w", err)
	}
	return oldValue.ContractID, nil
}

// ResetContractID resets all changes to the "contract_id" field.
func (m *TermsAndConditionMutation) ResetContractID() {
	m.contract = nil
}

// SetClauseText sets the "clause_text" field.
func (m *TermsAndConditionMutation) SetClauseText(s string) {
	m.clause_text = &s
}

// ClauseText returns the value of the "clause_text" field in the mutation.
func (m *TermsAndConditionMutation) ClauseText() (r string, exists bool) {
	v := m.clause_text
	if v == nil {
		return
	}
	return *v, true
}

// OldClauseText returns the old "clause_text" field's value of the TermsAndCondition entity.
// If the TermsAndCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermsAndConditionMutation) OldClauseText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClauseText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClauseText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClauseText: %w", err)
	}
	return oldValue.ClauseText, nil
}

// ResetClauseText resets all changes to the "clause_text" field.
func (m *TermsAndConditionMutation) ResetClauseText() {
	m.clause_text = nil
}

// ClearContract clears the "contract" edge to the Contract entity.
func (m *TermsAndConditionMutation) ClearContract() {
	m.clearedcontract = true
	m.clearedFields[termsandcondition.FieldContractID] = struct{}{}
}

// ContractCleared reports if the "contract" edge to the Contract entity was cleared.
func (m *TermsAndConditionMutation) ContractCleared() bool {
	return m.clearedcontract
}

// ContractIDs returns the "contract" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContractID instead. It exists only for internal usage by the builders.
func (m *TermsAndConditionMutation) ContractIDs() (ids []uuid.UUID) {
	if id := m.contract; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContract resets all changes to the "contract" edge.
func (m *TermsAndConditionMutation) ResetContract() {
	m.contract = nil
	m.clearedcontract = false
}

// Where appends a list predicates to the TermsAndConditionMutation builder.
func (m *TermsAndConditionMutation) Where(ps ...predicate.TermsAndCondition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TermsAndConditionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TermsAndConditionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TermsAndCondition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TermsAndConditionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TermsAndConditionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TermsAndCondition).
func (m *TermsAndConditionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TermsAndConditionMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.contract != nil {
		fields = append(fields, termsandcondition.FieldContractID)
	}
	if m.clause_text != nil {
		fields = append(fields, termsandcondition.FieldClauseText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TermsAndConditionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case termsandcondition.FieldContractID:
		return m.ContractID()
	case termsandcondition.FieldClauseText:
		return m.ClauseText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TermsAndConditionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case termsandcondition.FieldContractID:
		return m.OldContractID(ctx)
	case termsandcondition.FieldClauseText:
		return m.OldClauseText(ctx)
	}
	return nil, fmt.Errorf("unknown TermsAndCondition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TermsAndConditionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case termsandcondition.FieldContractID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractID(v)
		return nil
	case termsandcondition.FieldClauseText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClauseText(v)
		return nil
	}
	return fmt.Errorf("unknown TermsAndCondition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TermsAndConditionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TermsAndConditionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TermsAndConditionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TermsAndCondition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TermsAndConditionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TermsAndConditionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TermsAndConditionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TermsAndCondition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TermsAndConditionMutation) ResetField(name string) error {
	switch name {
	case termsandcondition.FieldContractID:
		m.ResetContractID()
		return nil
	case termsandcondition.FieldClauseText:
		m.ResetClauseText()
		return nil
	}
	return fmt.Errorf("unknown TermsAndCondition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TermsAndConditionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contract != nil {
		edges = append(edges, termsandcondition.EdgeContract)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TermsAndConditionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case termsandcondition.EdgeContract:
		if id := m.contract; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TermsAndConditionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TermsAndConditionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TermsAndConditionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontract {
		edges = append(edges, termsandcondition.EdgeContract)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TermsAndConditionMutation) EdgeCleared(name string) bool {
	switch name {
	case termsandcondition.EdgeContract:
		return m.clearedcontract
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TermsAndConditionMutation) ClearEdge(name string) error {
	switch name {
	case termsandcondition.EdgeContract:
		m.ClearContract()
		return nil
	}
	return fmt.Errorf("unknown TermsAndCondition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TermsAndConditionMutation) ResetEdge(name string) error {
	switch name {
	case termsandcondition.EdgeContract:
		m.ResetContract()
		return nil
	}
	return fmt.Errorf("unknown TermsAndCondition edge %s", name)
}
