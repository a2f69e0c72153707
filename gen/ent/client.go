// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/gemdocs/procurement-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/bid"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/consigneedetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/extractjob"
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/gemdocs/procurement-tracker/gen/ent/organisationdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/productspecification"
	"github.com/gemdocs/procurement-tracker/gen/ent/sellerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/sourcefile"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Bid is the client for interacting with the Bid builders.
	Bid *BidClient
	// BuyerDetail is the client for interacting with the BuyerDetail builders.
	BuyerDetail *BuyerDetailClient
	// ConsigneeDetail is the client for interacting with the ConsigneeDetail builders.
	ConsigneeDetail *ConsigneeDetailClient
	// Contract is the client for interacting with the Contract builders.
	Contract *ContractClient
	// EPBGDetail is the client for interacting with the EPBGDetail builders.
	EPBGDetail *EPBGDetailClient
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// FinancialApproval is the client for interacting with the FinancialApproval builders.
	FinancialApproval *FinancialApprovalClient
	// OrganisationDetail is the client for interacting with the OrganisationDetail builders.
	OrganisationDetail *OrganisationDetailClient
	// PayingAuthority is the client for interacting with the PayingAuthority builders.
	PayingAuthority *PayingAuthorityClient
	// Product is the client for interacting with the Product builders.
	Product *ProductClient
	// ProductSpecification is the client for interacting with the ProductSpecification builders.
	ProductSpecification *ProductSpecificationClient
	// SellerDetail is the client for interacting with the SellerDetail builders.
	SellerDetail *SellerDetailClient
	// SourceFile is the client for interacting with the SourceFile builders.
	SourceFile *SourceFileClient
	// TermsAndCondition is the client for interacting with the TermsAndCondition builders.
	TermsAndCondition *TermsAndConditionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Bid = NewBidClient(c.config)
	c.BuyerDetail = NewBuyerDetailClient(c.config)
	c.ConsigneeDetail = NewConsigneeDetailClient(c.config)
	c.Contract = NewContractClient(c.config)
	c.EPBGDetail = NewEPBGDetailClient(c.config)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.FinancialApproval = NewFinancialApprovalClient(c.config)
	c.OrganisationDetail = NewOrganisationDetailClient(c.config)
	c.PayingAuthority = NewPayingAuthorityClient(c.config)
	c.Product = NewProductClient(c.config)
	c.ProductSpecification = NewProductSpecificationClient(c.config)
	c.SellerDetail = NewSellerDetailClient(c.config)
	c.SourceFile = NewSourceFileClient(c.config)
	c.TermsAndCondition = NewTermsAndConditionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Bid:                  NewBidClient(cfg),
		BuyerDetail:          NewBuyerDetailClient(cfg),
		ConsigneeDetail:      NewConsigneeDetailClient(cfg),
		Contract:             NewContractClient(cfg),
		EPBGDetail:           NewEPBGDetailClient(cfg),
		ExtractJob:           NewExtractJobClient(cfg),
		FinancialApproval:    NewFinancialApprovalClient(cfg),
		OrganisationDetail:   NewOrganisationDetailClient(cfg),
		PayingAuthority:      NewPayingAuthorityClient(cfg),
		Product:              NewProductClient(cfg),
		ProductSpecification: NewProductSpecificationClient(cfg),
		SellerDetail:         NewSellerDetailClient(cfg),
		SourceFile:           NewSourceFileClient(cfg),
		TermsAndCondition:    NewTermsAndConditionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Bid:                  NewBidClient(cfg),
		BuyerDetail:          NewBuyerDetailClient(cfg),
		ConsigneeDetail:      NewConsigneeDetailClient(cfg),
		Contract:             NewContractClient(cfg),
		EPBGDetail:           NewEPBGDetailClient(cfg),
		ExtractJob:           NewExtractJobClient(cfg),
		FinancialApproval:    NewFinancialApprovalClient(cfg),
		OrganisationDetail:   NewOrganisationDetailClient(cfg),
		PayingAuthority:      NewPayingAuthorityClient(cfg),
		Product:              NewProductClient(cfg),
		ProductSpecification: NewProductSpecificationClient(cfg),
		SellerDetail:         NewSellerDetailClient(cfg),
		SourceFile:           NewSourceFileClient(cfg),
		TermsAndCondition:    NewTermsAndConditionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Bid.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Bid, c.BuyerDetail, c.ConsigneeDetail, c.Contract, c.EPBGDetail, c.ExtractJob,
		c.FinancialApproval, c.OrganisationDetail, c.PayingAuthority, c.Product,
		c.ProductSpecification, c.SellerDetail, c.SourceFile, c.TermsAndCondition,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Bid, c.BuyerDetail, c.ConsigneeDetail, c.Contract, c.EPBGDetail, c.ExtractJob,
		c.FinancialApproval, c.OrganisationDetail, c.PayingAuthority, c.Product,
		c.ProductSpecification, c.SellerDetail, c.SourceFile, c.TermsAndCondition,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BidMutation:
		return c.Bid.mutate(ctx, m)
	case *BuyerDetailMutation:
		return c.BuyerDetail.mutate(ctx, m)
	case *ConsigneeDetailMutation:
		return c.ConsigneeDetail.mutate(ctx, m)
	case *ContractMutation:
		return c.Contract.mutate(ctx, m)
	case *EPBGDetailMutation:
		return c.EPBGDetail.mutate(ctx, m)
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *FinancialApprovalMutation:
		return c.FinancialApproval.mutate(ctx, m)
	case *OrganisationDetailMutation:
		return c.OrganisationDetail.mutate(ctx, m)
	case *PayingAuthorityMutation:
		return c.PayingAuthority.mutate(ctx, m)
	case *ProductMutation:
		return c.Product.mutate(ctx, m)
	case *ProductSpecificationMutation:
		return c.ProductSpecification.mutate(ctx, m)
	case *SellerDetailMutation:
		return c.SellerDetail.mutate(ctx, m)
	case *SourceFileMutation:
		return c.SourceFile.mutate(ctx, m)
	case *TermsAndConditionMutation:
		return c.TermsAndCondition.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BidClient is a client for the Bid schema.
type BidClient struct {
	config
}

// NewBidClient returns a client for the Bid from the given config.
func NewBidClient(c config) *BidClient {
	return &BidClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bid.Hooks(f(g(h())))`.
func (c *BidClient) Use(hooks ...Hook) {
	c.hooks.Bid = append(c.hooks.Bid, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bid.Intercept(f(g(h())))`.
func (c *BidClient) Intercept(interceptors ...Interceptor) {
	c.inters.Bid = append(c.inters.Bid, interceptors...)
}

// Create returns a builder for creating a Bid entity.
func (c *BidClient) Create() *BidCreate {
	mutation := newBidMutation(c.config, OpCreate)
	return &BidCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Bid entities.
func (c *BidClient) CreateBulk(builders ...*BidCreate) *BidCreateBulk {
	return &BidCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BidClient) MapCreateBulk(slice any, setFunc func(*BidCreate, int)) *BidCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BidCreateBulk{err: fmt.Errorf("calling to BidClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BidCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BidCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Bid.
func (c *BidClient) Update() *BidUpdate {
	mutation := newBidMutation(c.config, OpUpdate)
	return &BidUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BidClient) UpdateOne(_m *Bid) *BidUpdateOne {
	mutation := newBidMutation(c.config, OpUpdateOne, withBid(_m))
	return &BidUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BidClient) UpdateOneID(id uuid.UUID) *BidUpdateOne {
	mutation := newBidMutation(c.config, OpUpdateOne, withBidID(id))
	return &BidUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Bid.
func (c *BidClient) Delete() *BidDelete {
	mutation := newBidMutation(c.config, OpDelete)
	return &BidDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BidClient) DeleteOne(_m *Bid) *BidDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BidClient) DeleteOneID(id uuid.UUID) *BidDeleteOne {
	builder := c.Delete().Where(bid.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BidDeleteOne{builder}
}

// Query returns a query builder for Bid.
func (c *BidClient) Query() *BidQuery {
	return &BidQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBid},
		inters: c.Interceptors(),
	}
}

// Get returns a Bid entity by its id.
func (c *BidClient) Get(ctx context.Context, id uuid.UUID) (*Bid, error) {
	return c.Query().Where(bid.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BidClient) GetX(ctx context.Context, id uuid.UUID) *Bid {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Bid.
func (c *BidClient) QueryJobs(_m *Bid) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(bid.Table, bid.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, bid.JobsTable, bid.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BidClient) Hooks() []Hook {
	return c.hooks.Bid
}

// Interceptors returns the client interceptors.
func (c *BidClient) Interceptors() []Interceptor {
	return c.inters.Bid
}

func (c *BidClient) mutate(ctx context.Context, m *BidMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BidCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BidUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BidUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BidDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Bid mutation op: %q", m.Op())
	}
}

// BuyerDetailClient is a client for the BuyerDetail schema.
type BuyerDetailClient struct {
	config
}

// NewBuyerDetailClient returns a client for the BuyerDetail from the given config.
func NewBuyerDetailClient(c config) *BuyerDetailClient {
	return &BuyerDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `buyerdetail.Hooks(f(g(h())))`.
func (c *BuyerDetailClient) Use(hooks ...Hook) {
	c.hooks.BuyerDetail = append(c.hooks.BuyerDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `buyerdetail.Intercept(f(g(h())))`.
func (c *BuyerDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.BuyerDetail = append(c.inters.BuyerDetail, interceptors...)
}

// Create returns a builder for creating a BuyerDetail entity.
func (c *BuyerDetailClient) Create() *BuyerDetailCreate {
	mutation := newBuyerDetailMutation(c.config, OpCreate)
	return &BuyerDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BuyerDetail entities.
func (c *BuyerDetailClient) CreateBulk(builders ...*BuyerDetailCreate) *BuyerDetailCreateBulk {
	return &BuyerDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BuyerDetailClient) MapCreateBulk(slice any, setFunc func(*BuyerDetailCreate, int)) *BuyerDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BuyerDetailCreateBulk{err: fmt.Errorf("calling to BuyerDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BuyerDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BuyerDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BuyerDetail.
func (c *BuyerDetailClient) Update() *BuyerDetailUpdate {
	mutation := newBuyerDetailMutation(c.config, OpUpdate)
	return &BuyerDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BuyerDetailClient) UpdateOne(_m *BuyerDetail) *BuyerDetailUpdateOne {
	mutation := newBuyerDetailMutation(c.config, OpUpdateOne, withBuyerDetail(_m))
	return &BuyerDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BuyerDetailClient) UpdateOneID(id uuid.UUID) *BuyerDetailUpdateOne {
	mutation := newBuyerDetailMutation(c.config, OpUpdateOne, withBuyerDetailID(id))
	return &BuyerDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BuyerDetail.
func (c *BuyerDetailClient) Delete() *BuyerDetailDelete {
	mutation := newBuyerDetailMutation(c.config, OpDelete)
	return &BuyerDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BuyerDetailClient) DeleteOne(_m *BuyerDetail) *BuyerDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BuyerDetailClient) DeleteOneID(id uuid.UUID) *BuyerDetailDeleteOne {
	builder := c.Delete().Where(buyerdetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BuyerDetailDeleteOne{builder}
}

// Query returns a query builder for BuyerDetail.
func (c *BuyerDetailClient) Query() *BuyerDetailQuery {
	return &BuyerDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBuyerDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a BuyerDetail entity by its id.
func (c *BuyerDetailClient) Get(ctx context.Context, id uuid.UUID) (*BuyerDetail, error) {
	return c.Query().Where(buyerdetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BuyerDetailClient) GetX(ctx context.Context, id uuid.UUID) *BuyerDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContract queries the contract edge of a BuyerDetail.
func (c *BuyerDetailClient) QueryContract(_m *BuyerDetail) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(buyerdetail.Table, buyerdetail.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, buyerdetail.ContractTable, buyerdetail.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BuyerDetailClient) Hooks() []Hook {
	return c.hooks.BuyerDetail
}

// Interceptors returns the client interceptors.
func (c *BuyerDetailClient) Interceptors() []Interceptor {
	return c.inters.BuyerDetail
}

func (c *BuyerDetailClient) mutate(ctx context.Context, m *BuyerDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BuyerDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BuyerDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BuyerDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BuyerDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BuyerDetail mutation op: %q", m.Op())
	}
}

// ConsigneeDetailClient is a client for the ConsigneeDetail schema.
type ConsigneeDetailClient struct {
	config
}

// NewConsigneeDetailClient returns a client for the ConsigneeDetail from the given config.
func NewConsigneeDetailClient(c config) *ConsigneeDetailClient {
	return &ConsigneeDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `consigneedetail.Hooks(f(g(h())))`.
func (c *ConsigneeDetailClient) Use(hooks ...Hook) {
	c.hooks.ConsigneeDetail = append(c.hooks.ConsigneeDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `consigneedetail.Intercept(f(g(h())))`.
func (c *ConsigneeDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConsigneeDetail = append(c.inters.ConsigneeDetail, interceptors...)
}

// Create returns a builder for creating a ConsigneeDetail entity.
func (c *ConsigneeDetailClient) Create() *ConsigneeDetailCreate {
	mutation := newConsigneeDetailMutation(c.config, OpCreate)
	return &ConsigneeDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConsigneeDetail entities.
func (c *ConsigneeDetailClient) CreateBulk(builders ...*ConsigneeDetailCreate) *ConsigneeDetailCreateBulk {
	return &ConsigneeDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConsigneeDetailClient) MapCreateBulk(slice any, setFunc func(*ConsigneeDetailCreate, int)) *ConsigneeDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConsigneeDetailCreateBulk{err: fmt.Errorf("calling to ConsigneeDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConsigneeDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConsigneeDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConsigneeDetail.
func (c *ConsigneeDetailClient) Update() *ConsigneeDetailUpdate {
	mutation := newConsigneeDetailMutation(c.config, OpUpdate)
	return &ConsigneeDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConsigneeDetailClient) UpdateOne(_m *ConsigneeDetail) *ConsigneeDetailUpdateOne {
	mutation := newConsigneeDetailMutation(c.config, OpUpdateOne, withConsigneeDetail(_m))
	return &ConsigneeDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConsigneeDetailClient) UpdateOneID(id uuid.UUID) *ConsigneeDetailUpdateOne {
	mutation := newConsigneeDetailMutation(c.config, OpUpdateOne, withConsigneeDetailID(id))
	return &ConsigneeDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConsigneeDetail.
func (c *ConsigneeDetailClient) Delete() *ConsigneeDetailDelete {
	mutation := newConsigneeDetailMutation(c.config, OpDelete)
	return &ConsigneeDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConsigneeDetailClient) DeleteOne(_m *ConsigneeDetail) *ConsigneeDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConsigneeDetailClient) DeleteOneID(id uuid.UUID) *ConsigneeDetailDeleteOne {
	builder := c.Delete().Where(consigneedetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConsigneeDetailDeleteOne{builder}
}

// Query returns a query builder for ConsigneeDetail.
func (c *ConsigneeDetailClient) Query() *ConsigneeDetailQuery {
	return &ConsigneeDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConsigneeDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a ConsigneeDetail entity by its id.
func (c *ConsigneeDetailClient) Get(ctx context.Context, id uuid.UUID) (*ConsigneeDetail, error) {
	return c.Query().Where(consigneedetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConsigneeDetailClient) GetX(ctx context.Context, id uuid.UUID) *ConsigneeDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProduct queries the product edge of a ConsigneeDetail.
func (c *ConsigneeDetailClient) QueryProduct(_m *ConsigneeDetail) *ProductQuery {
	query := (&ProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(consigneedetail.Table, consigneedetail.FieldID, id),
			sqlgraph.To(product.Table, product.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, consigneedetail.ProductTable, consigneedetail.ProductColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConsigneeDetailClient) Hooks() []Hook {
	return c.hooks.ConsigneeDetail
}

// Interceptors returns the client interceptors.
func (c *ConsigneeDetailClient) Interceptors() []Interceptor {
	return c.inters.ConsigneeDetail
}

func (c *ConsigneeDetailClient) mutate(ctx context.Context, m *ConsigneeDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConsigneeDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConsigneeDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConsigneeDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConsigneeDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConsigneeDetail mutation op: %q", m.Op())
	}
}

// ContractClient is a client for the Contract schema.
type ContractClient struct {
	config
}

// NewContractClient returns a client for the Contract from the given config.
func NewContractClient(c config) *ContractClient {
	return &ContractClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contract.Hooks(f(g(h())))`.
func (c *ContractClient) Use(hooks ...Hook) {
	c.hooks.Contract = append(c.hooks.Contract, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contract.Intercept(f(g(h())))`.
func (c *ContractClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contract = append(c.inters.Contract, interceptors...)
}

// Create returns a builder for creating a Contract entity.
func (c *ContractClient) Create() *ContractCreate {
	mutation := newContractMutation(c.config, OpCreate)
	return &ContractCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contract entities.
func (c *ContractClient) CreateBulk(builders ...*ContractCreate) *ContractCreateBulk {
	return &ContractCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContractClient) MapCreateBulk(slice any, setFunc func(*ContractCreate, int)) *ContractCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContractCreateBulk{err: fmt.Errorf("calling to ContractClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContractCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContractCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contract.
func (c *ContractClient) Update() *ContractUpdate {
	mutation := newContractMutation(c.config, OpUpdate)
	return &ContractUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContractClient) UpdateOne(_m *Contract) *ContractUpdateOne {
	mutation := newContractMutation(c.config, OpUpdateOne, withContract(_m))
	return &ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContractClient) UpdateOneID(id uuid.UUID) *ContractUpdateOne {
	mutation := newContractMutation(c.config, OpUpdateOne, withContractID(id))
	return &ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contract.
func (c *ContractClient) Delete() *ContractDelete {
	mutation := newContractMutation(c.config, OpDelete)
	return &ContractDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContractClient) DeleteOne(_m *Contract) *ContractDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContractClient) DeleteOneID(id uuid.UUID) *ContractDeleteOne {
	builder := c.Delete().Where(contract.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContractDeleteOne{builder}
}

// Query returns a query builder for Contract.
func (c *ContractClient) Query() *ContractQuery {
	return &ContractQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContract},
		inters: c.Interceptors(),
	}
}

// Get returns a Contract entity by its id.
func (c *ContractClient) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return c.Query().Where(contract.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContractClient) GetX(ctx context.Context, id uuid.UUID) *Contract {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrganisation queries the organisation edge of a Contract.
func (c *ContractClient) QueryOrganisation(_m *Contract) *OrganisationDetailQuery {
	query := (&OrganisationDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(organisationdetail.Table, organisationdetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, contract.OrganisationTable, contract.OrganisationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBuyer queries the buyer edge of a Contract.
func (c *ContractClient) QueryBuyer(_m *Contract) *BuyerDetailQuery {
	query := (&BuyerDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(buyerdetail.Table, buyerdetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, contract.BuyerTable, contract.BuyerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFinancialApproval queries the financial_approval edge of a Contract.
func (c *ContractClient) QueryFinancialApproval(_m *Contract) *FinancialApprovalQuery {
	query := (&FinancialApprovalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(financialapproval.Table, financialapproval.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, contract.FinancialApprovalTable, contract.FinancialApprovalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPayingAuthority queries the paying_authority edge of a Contract.
func (c *ContractClient) QueryPayingAuthority(_m *Contract) *PayingAuthorityQuery {
	query := (&PayingAuthorityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(payingauthority.Table, payingauthority.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, contract.PayingAuthorityTable, contract.PayingAuthorityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySeller queries the seller edge of a Contract.
func (c *ContractClient) QuerySeller(_m *Contract) *SellerDetailQuery {
	query := (&SellerDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(sellerdetail.Table, sellerdetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, contract.SellerTable, contract.SellerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEpbg queries the epbg edge of a Contract.
func (c *ContractClient) QueryEpbg(_m *Contract) *EPBGDetailQuery {
	query := (&EPBGDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(epbgdetail.Table, epbgdetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, contract.EpbgTable, contract.EpbgColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProducts queries the products edge of a Contract.
func (c *ContractClient) QueryProducts(_m *Contract) *ProductQuery {
	query := (&ProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(product.Table, product.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contract.ProductsTable, contract.ProductsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTerms queries the terms edge of a Contract.
func (c *ContractClient) QueryTerms(_m *Contract) *TermsAndConditionQuery {
	query := (&TermsAndConditionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(termsandcondition.Table, termsandcondition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contract.TermsTable, contract.TermsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Contract.
func (c *ContractClient) QueryJobs(_m *Contract) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contract.Table, contract.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contract.JobsTable, contract.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContractClient) Hooks() []Hook {
	return c.hooks.Contract
}

// Interceptors returns the client interceptors.
func (c *ContractClient) Interceptors() []Interceptor {
	return c.inters.Contract
}

func (c *ContractClient) mutate(ctx context.Context, m *ContractMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContractCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContractUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContractDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contract mutation op: %q", m.Op())
	}
}

// EPBGDetailClient is a client for the EPBGDetail schema.
type EPBGDetailClient struct {
	config
}

// NewEPBGDetailClient returns a client for the EPBGDetail from the given config.
func NewEPBGDetailClient(c config) *EPBGDetailClient {
	return &EPBGDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `epbgdetail.Hooks(f(g(h())))`.
func (c *EPBGDetailClient) Use(hooks ...Hook) {
	c.hooks.EPBGDetail = append(c.hooks.EPBGDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `epbgdetail.Intercept(f(g(h())))`.
func (c *EPBGDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.EPBGDetail = append(c.inters.EPBGDetail, interceptors...)
}

// Create returns a builder for creating a EPBGDetail entity.
func (c *EPBGDetailClient) Create() *EPBGDetailCreate {
	mutation := newEPBGDetailMutation(c.config, OpCreate)
	return &EPBGDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EPBGDetail entities.
func (c *EPBGDetailClient) CreateBulk(builders ...*EPBGDetailCreate) *EPBGDetailCreateBulk {
	return &EPBGDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EPBGDetailClient) MapCreateBulk(slice any, setFunc func(*EPBGDetailCreate, int)) *EPBGDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EPBGDetailCreateBulk{err: fmt.Errorf("calling to EPBGDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EPBGDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EPBGDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EPBGDetail.
func (c *EPBGDetailClient) Update() *EPBGDetailUpdate {
	mutation := newEPBGDetailMutation(c.config, OpUpdate)
	return &EPBGDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EPBGDetailClient) UpdateOne(_m *EPBGDetail) *EPBGDetailUpdateOne {
	mutation := newEPBGDetailMutation(c.config, OpUpdateOne, withEPBGDetail(_m))
	return &EPBGDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EPBGDetailClient) UpdateOneID(id uuid.UUID) *EPBGDetailUpdateOne {
	mutation := newEPBGDetailMutation(c.config, OpUpdateOne, withEPBGDetailID(id))
	return &EPBGDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EPBGDetail.
func (c *EPBGDetailClient) Delete() *EPBGDetailDelete {
	mutation := newEPBGDetailMutation(c.config, OpDelete)
	return &EPBGDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EPBGDetailClient) DeleteOne(_m *EPBGDetail) *EPBGDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EPBGDetailClient) DeleteOneID(id uuid.UUID) *EPBGDetailDeleteOne {
	builder := c.Delete().Where(epbgdetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EPBGDetailDeleteOne{builder}
}

// Query returns a query builder for EPBGDetail.
func (c *EPBGDetailClient) Query() *EPBGDetailQuery {
	return &EPBGDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEPBGDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a EPBGDetail entity by its id.
func (c *EPBGDetailClient) Get(ctx context.Context, id uuid.UUID) (*EPBGDetail, error) {
	return c.Query().Where(epbgdetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EPBGDetailClient) GetX(ctx context.Context, id uuid.UUID) *EPBGDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContract queries the contract edge of a EPBGDetail.
func (c *EPBGDetailClient) QueryContract(_m *EPBGDetail) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(epbgdetail.Table, epbgdetail.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, epbgdetail.ContractTable, epbgdetail.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EPBGDetailClient) Hooks() []Hook {
	return c.hooks.EPBGDetail
}

// Interceptors returns the client interceptors.
func (c *EPBGDetailClient) Interceptors() []Interceptor {
	return c.inters.EPBGDetail
}

func (c *EPBGDetailClient) mutate(ctx context.Context, m *EPBGDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EPBGDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EPBGDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EPBGDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EPBGDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EPBGDetail mutation op: %q", m.Op())
	}
}

// ExtractJobClient is a client for the ExtractJob schema.
type ExtractJobClient struct {
	config
}

// NewExtractJobClient returns a client for the ExtractJob from the given config.
func NewExtractJobClient(c config) *ExtractJobClient {
	return &ExtractJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractjob.Hooks(f(g(h())))`.
func (c *ExtractJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractJob = append(c.hooks.ExtractJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractjob.Intercept(f(g(h())))`.
func (c *ExtractJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractJob = append(c.inters.ExtractJob, interceptors...)
}

// Create returns a builder for creating a ExtractJob entity.
func (c *ExtractJobClient) Create() *ExtractJobCreate {
	mutation := newExtractJobMutation(c.config, OpCreate)
	return &ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractJob entities.
func (c *ExtractJobClient) CreateBulk(builders ...*ExtractJobCreate) *ExtractJobCreateBulk {
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractJobClient) MapCreateBulk(slice any, setFunc func(*ExtractJobCreate, int)) *ExtractJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractJobCreateBulk{err: fmt.Errorf("calling to ExtractJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractJob.
func (c *ExtractJobClient) Update() *ExtractJobUpdate {
	mutation := newExtractJobMutation(c.config, OpUpdate)
	return &ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractJobClient) UpdateOne(_m *ExtractJob) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJob(_m))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractJobClient) UpdateOneID(id uuid.UUID) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJobID(id))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractJob.
func (c *ExtractJobClient) Delete() *ExtractJobDelete {
	mutation := newExtractJobMutation(c.config, OpDelete)
	return &ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractJobClient) DeleteOne(_m *ExtractJob) *ExtractJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractJobClient) DeleteOneID(id uuid.UUID) *ExtractJobDeleteOne {
	builder := c.Delete().Where(extractjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractJobDeleteOne{builder}
}

// Query returns a query builder for ExtractJob.
func (c *ExtractJobClient) Query() *ExtractJobQuery {
	return &ExtractJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractJob entity by its id.
func (c *ExtractJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractJob, error) {
	return c.Query().Where(extractjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ExtractJob.
func (c *ExtractJobClient) QueryFile(_m *ExtractJob) *SourceFileQuery {
	query := (&SourceFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(sourcefile.Table, sourcefile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContract queries the contract edge of a ExtractJob.
func (c *ExtractJobClient) QueryContract(_m *ExtractJob) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.ContractTable, extractjob.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBid queries the bid edge of a ExtractJob.
func (c *ExtractJobClient) QueryBid(_m *ExtractJob) *BidQuery {
	query := (&BidClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(bid.Table, bid.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.BidTable, extractjob.BidColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractJobClient) Hooks() []Hook {
	return c.hooks.ExtractJob
}

// Interceptors returns the client interceptors.
func (c *ExtractJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractJob
}

func (c *ExtractJobClient) mutate(ctx context.Context, m *ExtractJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractJob mutation op: %q", m.Op())
	}
}

// FinancialApprovalClient is a client for the FinancialApproval schema.
type FinancialApprovalClient struct {
	config
}

// NewFinancialApprovalClient returns a client for the FinancialApproval from the given config.
func NewFinancialApprovalClient(c config) *FinancialApprovalClient {
	return &FinancialApprovalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `financialapproval.Hooks(f(g(h())))`.
func (c *FinancialApprovalClient) Use(hooks ...Hook) {
	c.hooks.FinancialApproval = append(c.hooks.FinancialApproval, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `financialapproval.Intercept(f(g(h())))`.
func (c *FinancialApprovalClient) Intercept(interceptors ...Interceptor) {
	c.inters.FinancialApproval = append(c.inters.FinancialApproval, interceptors...)
}

// Create returns a builder for creating a FinancialApproval entity.
func (c *FinancialApprovalClient) Create() *FinancialApprovalCreate {
	mutation := newFinancialApprovalMutation(c.config, OpCreate)
	return &FinancialApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FinancialApproval entities.
func (c *FinancialApprovalClient) CreateBulk(builders ...*FinancialApprovalCreate) *FinancialApprovalCreateBulk {
	return &FinancialApprovalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FinancialApprovalClient) MapCreateBulk(slice any, setFunc func(*FinancialApprovalCreate, int)) *FinancialApprovalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FinancialApprovalCreateBulk{err: fmt.Errorf("calling to FinancialApprovalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FinancialApprovalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FinancialApprovalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FinancialApproval.
func (c *FinancialApprovalClient) Update() *FinancialApprovalUpdate {
	mutation := newFinancialApprovalMutation(c.config, OpUpdate)
	return &FinancialApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FinancialApprovalClient) UpdateOne(_m *FinancialApproval) *FinancialApprovalUpdateOne {
	mutation := newFinancialApprovalMutation(c.config, OpUpdateOne, withFinancialApproval(_m))
	return &FinancialApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FinancialApprovalClient) UpdateOneID(id uuid.UUID) *FinancialApprovalUpdateOne {
	mutation := newFinancialApprovalMutation(c.config, OpUpdateOne, withFinancialApprovalID(id))
	return &FinancialApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FinancialApproval.
func (c *FinancialApprovalClient) Delete() *FinancialApprovalDelete {
	mutation := newFinancialApprovalMutation(c.config, OpDelete)
	return &FinancialApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FinancialApprovalClient) DeleteOne(_m *FinancialApproval) *FinancialApprovalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FinancialApprovalClient) DeleteOneID(id uuid.UUID) *FinancialApprovalDeleteOne {
	builder := c.Delete().Where(financialapproval.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FinancialApprovalDeleteOne{builder}
}

// Query returns a query builder for FinancialApproval.
func (c *FinancialApprovalClient) Query() *FinancialApprovalQuery {
	return &FinancialApprovalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinancialApproval},
		inters: c.Interceptors(),
	}
}

// Get returns a FinancialApproval entity by its id.
func (c *FinancialApprovalClient) Get(ctx context.Context, id uuid.UUID) (*FinancialApproval, error) {
	return c.Query().Where(financialapproval.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FinancialApprovalClient) GetX(ctx context.Context, id uuid.UUID) *FinancialApproval {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContract queries the contract edge of a FinancialApproval.
func (c *FinancialApprovalClient) QueryContract(_m *FinancialApproval) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(financialapproval.Table, financialapproval.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, financialapproval.ContractTable, financialapproval.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FinancialApprovalClient) Hooks() []Hook {
	return c.hooks.FinancialApproval
}

// Interceptors returns the client interceptors.
func (c *FinancialApprovalClient) Interceptors() []Interceptor {
	return c.inters.FinancialApproval
}

func (c *FinancialApprovalClient) mutate(ctx context.Context, m *FinancialApprovalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FinancialApprovalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FinancialApprovalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FinancialApprovalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FinancialApprovalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FinancialApproval mutation op: %q", m.Op())
	}
}

// OrganisationDetailClient is a client for the OrganisationDetail schema.
type OrganisationDetailClient struct {
	config
}

// NewOrganisationDetailClient returns a client for the OrganisationDetail from the given config.
func NewOrganisationDetailClient(c config) *OrganisationDetailClient {
	return &OrganisationDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `organisationdetail.Hooks(f(g(h())))`.
func (c *OrganisationDetailClient) Use(hooks ...Hook) {
	c.hooks.OrganisationDetail = append(c.hooks.OrganisationDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `organisationdetail.Intercept(f(g(h())))`.
func (c *OrganisationDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrganisationDetail = append(c.inters.OrganisationDetail, interceptors...)
}

// Create returns a builder for creating a OrganisationDetail entity.
func (c *OrganisationDetailClient) Create() *OrganisationDetailCreate {
	mutation := newOrganisationDetailMutation(c.config, OpCreate)
	return &OrganisationDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrganisationDetail entities.
func (c *OrganisationDetailClient) CreateBulk(builders ...*OrganisationDetailCreate) *OrganisationDetailCreateBulk {
	return &OrganisationDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrganisationDetailClient) MapCreateBulk(slice any, setFunc func(*OrganisationDetailCreate, int)) *OrganisationDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrganisationDetailCreateBulk{err: fmt.Errorf("calling to OrganisationDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrganisationDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrganisationDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrganisationDetail.
func (c *OrganisationDetailClient) Update() *OrganisationDetailUpdate {
	mutation := newOrganisationDetailMutation(c.config, OpUpdate)
	return &OrganisationDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrganisationDetailClient) UpdateOne(_m *OrganisationDetail) *OrganisationDetailUpdateOne {
	mutation := newOrganisationDetailMutation(c.config, OpUpdateOne, withOrganisationDetail(_m))
	return &OrganisationDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrganisationDetailClient) UpdateOneID(id uuid.UUID) *OrganisationDetailUpdateOne {
	mutation := newOrganisationDetailMutation(c.config, OpUpdateOne, withOrganisationDetailID(id))
	return &OrganisationDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrganisationDetail.
func (c *OrganisationDetailClient) Delete() *OrganisationDetailDelete {
	mutation := newOrganisationDetailMutation(c.config, OpDelete)
	return &OrganisationDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrganisationDetailClient) DeleteOne(_m *OrganisationDetail) *OrganisationDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrganisationDetailClient) DeleteOneID(id uuid.UUID) *OrganisationDetailDeleteOne {
	builder := c.Delete().Where(organisationdetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrganisationDetailDeleteOne{builder}
}

// Query returns a query builder for OrganisationDetail.
func (c *OrganisationDetailClient) Query() *OrganisationDetailQuery {
	return &OrganisationDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrganisationDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a OrganisationDetail entity by its id.
func (c *OrganisationDetailClient) Get(ctx context.Context, id uuid.UUID) (*OrganisationDetail, error) {
	return c.Query().Where(organisationdetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrganisationDetailClient) GetX(ctx context.Context, id uuid.UUID) *OrganisationDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContract queries the contract edge of a OrganisationDetail.
func (c *OrganisationDetailClient) QueryContract(_m *OrganisationDetail) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(organisationdetail.Table, organisationdetail.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, organisationdetail.ContractTable, organisationdetail.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrganisationDetailClient) Hooks() []Hook {
	return c.hooks.OrganisationDetail
}

// Interceptors returns the client interceptors.
func (c *OrganisationDetailClient) Interceptors() []Interceptor {
	return c.inters.OrganisationDetail
}

func (c *OrganisationDetailClient) mutate(ctx context.Context, m *OrganisationDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrganisationDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrganisationDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrganisationDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrganisationDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrganisationDetail mutation op: %q", m.Op())
	}
}

// PayingAuthorityClient is a client for the PayingAuthority schema.
type PayingAuthorityClient struct {
	config
}

// NewPayingAuthorityClient returns a client for the PayingAuthority from the given config.
func NewPayingAuthorityClient(c config) *PayingAuthorityClient {
	return &PayingAuthorityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payingauthority.Hooks(f(g(h())))`.
func (c *PayingAuthorityClient) Use(hooks ...Hook) {
	c.hooks.PayingAuthority = append(c.hooks.PayingAuthority, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payingauthority.Intercept(f(g(h())))`.
func (c *PayingAuthorityClient) Intercept(interceptors ...Interceptor) {
	c.inters.PayingAuthority = append(c.inters.PayingAuthority, interceptors...)
}

// Create returns a builder for creating a PayingAuthority entity.
func (c *PayingAuthorityClient) Create() *PayingAuthorityCreate {
	mutation := newPayingAuthorityMutation(c.config, OpCreate)
	return &PayingAuthorityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PayingAuthority entities.
func (c *PayingAuthorityClient) CreateBulk(builders ...*PayingAuthorityCreate) *PayingAuthorityCreateBulk {
	return &PayingAuthorityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PayingAuthorityClient) MapCreateBulk(slice any, setFunc func(*PayingAuthorityCreate, int)) *PayingAuthorityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PayingAuthorityCreateBulk{err: fmt.Errorf("calling to PayingAuthorityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PayingAuthorityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PayingAuthorityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PayingAuthority.
func (c *PayingAuthorityClient) Update() *PayingAuthorityUpdate {
	mutation := newPayingAuthorityMutation(c.config, OpUpdate)
	return &PayingAuthorityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PayingAuthorityClient) UpdateOne(_m *PayingAuthority) *PayingAuthorityUpdateOne {
	mutation := newPayingAuthorityMutation(c.config, OpUpdateOne, withPayingAuthority(_m))
	return &PayingAuthorityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PayingAuthorityClient) UpdateOneID(id uuid.UUID) *PayingAuthorityUpdateOne {
	mutation := newPayingAuthorityMutation(c.config, OpUpdateOne, withPayingAuthorityID(id))
	return &PayingAuthorityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PayingAuthority.
func (c *PayingAuthorityClient) Delete() *PayingAuthorityDelete {
	mutation := newPayingAuthorityMutation(c.config, OpDelete)
	return &PayingAuthorityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PayingAuthorityClient) DeleteOne(_m *PayingAuthority) *PayingAuthorityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PayingAuthorityClient) DeleteOneID(id uuid.UUID) *PayingAuthorityDeleteOne {
	builder := c.Delete().Where(payingauthority.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PayingAuthorityDeleteOne{builder}
}

// Query returns a query builder for PayingAuthority.
func (c *PayingAuthorityClient) Query() *PayingAuthorityQuery {
	return &PayingAuthorityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayingAuthority},
		inters: c.Interceptors(),
	}
}

// Get returns a PayingAuthority entity by its id.
func (c *PayingAuthorityClient) Get(ctx context.Context, id uuid.UUID) (*PayingAuthority, error) {
	return c.Query().Where(payingauthority.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PayingAuthorityClient) GetX(ctx context.Context, id uuid.UUID) *PayingAuthority {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContract queries the contract edge of a PayingAuthority.
func (c *PayingAuthorityClient) QueryContract(_m *PayingAuthority) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(payingauthority.Table, payingauthority.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, payingauthority.ContractTable, payingauthority.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PayingAuthorityClient) Hooks() []Hook {
	return c.hooks.PayingAuthority
}

// Interceptors returns the client interceptors.
func (c *PayingAuthorityClient) Interceptors() []Interceptor {
	return c.inters.PayingAuthority
}

func (c *PayingAuthorityClient) mutate(ctx context.Context, m *PayingAuthorityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PayingAuthorityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PayingAuthorityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PayingAuthorityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PayingAuthorityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PayingAuthority mutation op: %q", m.Op())
	}
}

// ProductClient is a client for the Product schema.
type ProductClient struct {
	config
}

// NewProductClient returns a client for the Product from the given config.
func NewProductClient(c config) *ProductClient {
	return &ProductClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `product.Hooks(f(g(h())))`.
func (c *ProductClient) Use(hooks ...Hook) {
	c.hooks.Product = append(c.hooks.Product, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `product.Intercept(f(g(h())))`.
func (c *ProductClient) Intercept(interceptors ...Interceptor) {
	c.inters.Product = append(c.inters.Product, interceptors...)
}

// Create returns a builder for creating a Product entity.
func (c *ProductClient) Create() *ProductCreate {
	mutation := newProductMutation(c.config, OpCreate)
	return &ProductCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Product entities.
func (c *ProductClient) CreateBulk(builders ...*ProductCreate) *ProductCreateBulk {
	return &ProductCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProductClient) MapCreateBulk(slice any, setFunc func(*ProductCreate, int)) *ProductCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProductCreateBulk{err: fmt.Errorf("calling to ProductClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProductCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProductCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Product.
func (c *ProductClient) Update() *ProductUpdate {
	mutation := newProductMutation(c.config, OpUpdate)
	return &ProductUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProductClient) UpdateOne(_m *Product) *ProductUpdateOne {
	mutation := newProductMutation(c.config, OpUpdateOne, withProduct(_m))
	return &ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProductClient) UpdateOneID(id uuid.UUID) *ProductUpdateOne {
	mutation := newProductMutation(c.config, OpUpdateOne, withProductID(id))
	return &ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Product.
func (c *ProductClient) Delete() *ProductDelete {
	mutation := newProductMutation(c.config, OpDelete)
	return &ProductDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProductClient) DeleteOne(_m *Product) *ProductDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProductClient) DeleteOneID(id uuid.UUID) *ProductDeleteOne {
	builder := c.Delete().Where(product.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProductDeleteOne{builder}
}

// Query returns a query builder for Product.
func (c *ProductClient) Query() *ProductQuery {
	return &ProductQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProduct},
		inters: c.Interceptors(),
	}
}

// Get returns a Product entity by its id.
func (c *ProductClient) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return c.Query().Where(product.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProductClient) GetX(ctx context.Context, id uuid.UUID) *Product {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContract queries the contract edge of a Product.
func (c *ProductClient) QueryContract(_m *Product) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(product.Table, product.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, product.ContractTable, product.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySpecifications queries the specifications edge of a Product.
func (c *ProductClient) QuerySpecifications(_m *Product) *ProductSpecificationQuery {
	query := (&ProductSpecificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(product.Table, product.FieldID, id),
			sqlgraph.To(productspecification.Table, productspecification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, product.SpecificationsTable, product.SpecificationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConsignees queries the consignees edge of a Product.
func (c *ProductClient) QueryConsignees(_m *Product) *ConsigneeDetailQuery {
	query := (&ConsigneeDetailClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(product.Table, product.FieldID, id),
			sqlgraph.To(consigneedetail.Table, consigneedetail.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, product.ConsigneesTable, product.ConsigneesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProductClient) Hooks() []Hook {
	return c.hooks.Product
}

// Interceptors returns the client interceptors.
func (c *ProductClient) Interceptors() []Interceptor {
	return c.inters.Product
}

func (c *ProductClient) mutate(ctx context.Context, m *ProductMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProductCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProductUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProductDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Product mutation op: %q", m.Op())
	}
}

// ProductSpecificationClient is a client for the ProductSpecification schema.
type ProductSpecificationClient struct {
	config
}

// NewProductSpecificationClient returns a client for the ProductSpecification from the given config.
func NewProductSpecificationClient(c config) *ProductSpecificationClient {
	return &ProductSpecificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `productspecification.Hooks(f(g(h())))`.
func (c *ProductSpecificationClient) Use(hooks ...Hook) {
	c.hooks.ProductSpecification = append(c.hooks.ProductSpecification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `productspecification.Intercept(f(g(h())))`.
func (c *ProductSpecificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProductSpecification = append(c.inters.ProductSpecification, interceptors...)
}

// Create returns a builder for creating a ProductSpecification entity.
func (c *ProductSpecificationClient) Create() *ProductSpecificationCreate {
	mutation := newProductSpecificationMutation(c.config, OpCreate)
	return &ProductSpecificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProductSpecification entities.
func (c *ProductSpecificationClient) CreateBulk(builders ...*ProductSpecificationCreate) *ProductSpecificationCreateBulk {
	return &ProductSpecificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProductSpecificationClient) MapCreateBulk(slice any, setFunc func(*ProductSpecificationCreate, int)) *ProductSpecificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProductSpecificationCreateBulk{err: fmt.Errorf("calling to ProductSpecificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProductSpecificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProductSpecificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProductSpecification.
func (c *ProductSpecificationClient) Update() *ProductSpecificationUpdate {
	mutation := newProductSpecificationMutation(c.config, OpUpdate)
	return &ProductSpecificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProductSpecificationClient) UpdateOne(_m *ProductSpecification) *ProductSpecificationUpdateOne {
	mutation := newProductSpecificationMutation(c.config, OpUpdateOne, withProductSpecification(_m))
	return &ProductSpecificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProductSpecificationClient) UpdateOneID(id uuid.UUID) *ProductSpecificationUpdateOne {
	mutation := newProductSpecificationMutation(c.config, OpUpdateOne, withProductSpecificationID(id))
	return &ProductSpecificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProductSpecification.
func (c *ProductSpecificationClient) Delete() *ProductSpecificationDelete {
	mutation := newProductSpecificationMutation(c.config, OpDelete)
	return &ProductSpecificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProductSpecificationClient) DeleteOne(_m *ProductSpecification) *ProductSpecificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProductSpecificationClient) DeleteOneID(id uuid.UUID) *ProductSpecificationDeleteOne {
	builder := c.Delete().Where(productspecification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProductSpecificationDeleteOne{builder}
}

// Query returns a query builder for ProductSpecification.
func (c *ProductSpecificationClient) Query() *ProductSpecificationQuery {
	return &ProductSpecificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProductSpecification},
		inters: c.Interceptors(),
	}
}

// Get returns a ProductSpecification entity by its id.
func (c *ProductSpecificationClient) Get(ctx context.Context, id uuid.UUID) (*ProductSpecification, error) {
	return c.Query().Where(productspecification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProductSpecificationClient) GetX(ctx context.Context, id uuid.UUID) *ProductSpecification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProduct queries the product edge of a ProductSpecification.
func (c *ProductSpecificationClient) QueryProduct(_m *ProductSpecification) *ProductQuery {
	query := (&ProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(productspecification.Table, productspecification.FieldID, id),
			sqlgraph.To(product.Table, product.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, productspecification.ProductTable, productspecification.ProductColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProductSpecificationClient) Hooks() []Hook {
	return c.hooks.ProductSpecification
}

// Interceptors returns the client interceptors.
func (c *ProductSpecificationClient) Interceptors() []Interceptor {
	return c.inters.ProductSpecification
}

func (c *ProductSpecificationClient) mutate(ctx context.Context, m *ProductSpecificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProductSpecificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProductSpecificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProductSpecificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProductSpecificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProductSpecification mutation op: %q", m.Op())
	}
}

// SellerDetailClient is a client for the SellerDetail schema.
type SellerDetailClient struct {
	config
}

// NewSellerDetailClient returns a client for the SellerDetail from the given config.
func NewSellerDetailClient(c config) *SellerDetailClient {
	return &SellerDetailClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sellerdetail.Hooks(f(g(h())))`.
func (c *SellerDetailClient) Use(hooks ...Hook) {
	c.hooks.SellerDetail = append(c.hooks.SellerDetail, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sellerdetail.Intercept(f(g(h())))`.
func (c *SellerDetailClient) Intercept(interceptors ...Interceptor) {
	c.inters.SellerDetail = append(c.inters.SellerDetail, interceptors...)
}

// Create returns a builder for creating a SellerDetail entity.
func (c *SellerDetailClient) Create() *SellerDetailCreate {
	mutation := newSellerDetailMutation(c.config, OpCreate)
	return &SellerDetailCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SellerDetail entities.
func (c *SellerDetailClient) CreateBulk(builders ...*SellerDetailCreate) *SellerDetailCreateBulk {
	return &SellerDetailCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SellerDetailClient) MapCreateBulk(slice any, setFunc func(*SellerDetailCreate, int)) *SellerDetailCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SellerDetailCreateBulk{err: fmt.Errorf("calling to SellerDetailClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SellerDetailCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SellerDetailCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SellerDetail.
func (c *SellerDetailClient) Update() *SellerDetailUpdate {
	mutation := newSellerDetailMutation(c.config, OpUpdate)
	return &SellerDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SellerDetailClient) UpdateOne(_m *SellerDetail) *SellerDetailUpdateOne {
	mutation := newSellerDetailMutation(c.config, OpUpdateOne, withSellerDetail(_m))
	return &SellerDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SellerDetailClient) UpdateOneID(id uuid.UUID) *SellerDetailUpdateOne {
	mutation := newSellerDetailMutation(c.config, OpUpdateOne, withSellerDetailID(id))
	return &SellerDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SellerDetail.
func (c *SellerDetailClient) Delete() *SellerDetailDelete {
	mutation := newSellerDetailMutation(c.config, OpDelete)
	return &SellerDetailDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SellerDetailClient) DeleteOne(_m *SellerDetail) *SellerDetailDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SellerDetailClient) DeleteOneID(id uuid.UUID) *SellerDetailDeleteOne {
	builder := c.Delete().Where(sellerdetail.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SellerDetailDeleteOne{builder}
}

// Query returns a query builder for SellerDetail.
func (c *SellerDetailClient) Query() *SellerDetailQuery {
	return &SellerDetailQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSellerDetail},
		inters: c.Interceptors(),
	}
}

// Get returns a SellerDetail entity by its id.
func (c *SellerDetailClient) Get(ctx context.Context, id uuid.UUID) (*SellerDetail, error) {
	return c.Query().Where(sellerdetail.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SellerDetailClient) GetX(ctx context.Context, id uuid.UUID) *SellerDetail {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContract queries the contract edge of a SellerDetail.
func (c *SellerDetailClient) QueryContract(_m *SellerDetail) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sellerdetail.Table, sellerdetail.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, sellerdetail.ContractTable, sellerdetail.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SellerDetailClient) Hooks() []Hook {
	return c.hooks.SellerDetail
}

// Interceptors returns the client interceptors.
func (c *SellerDetailClient) Interceptors() []Interceptor {
	return c.inters.SellerDetail
}

func (c *SellerDetailClient) mutate(ctx context.Context, m *SellerDetailMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SellerDetailCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SellerDetailUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SellerDetailUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SellerDetailDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SellerDetail mutation op: %q", m.Op())
	}
}

// SourceFileClient is a client for the SourceFile schema.
type SourceFileClient struct {
	config
}

// NewSourceFileClient returns a client for the SourceFile from the given config.
func NewSourceFileClient(c config) *SourceFileClient {
	return &SourceFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sourcefile.Hooks(f(g(h())))`.
func (c *SourceFileClient) Use(hooks ...Hook) {
	c.hooks.SourceFile = append(c.hooks.SourceFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sourcefile.Intercept(f(g(h())))`.
func (c *SourceFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SourceFile = append(c.inters.SourceFile, interceptors...)
}

// Create returns a builder for creating a SourceFile entity.
func (c *SourceFileClient) Create() *SourceFileCreate {
	mutation := newSourceFileMutation(c.config, OpCreate)
	return &SourceFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SourceFile entities.
func (c *SourceFileClient) CreateBulk(builders ...*SourceFileCreate) *SourceFileCreateBulk {
	return &SourceFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SourceFileClient) MapCreateBulk(slice any, setFunc func(*SourceFileCreate, int)) *SourceFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SourceFileCreateBulk{err: fmt.Errorf("calling to SourceFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SourceFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SourceFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SourceFile.
func (c *SourceFileClient) Update() *SourceFileUpdate {
	mutation := newSourceFileMutation(c.config, OpUpdate)
	return &SourceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SourceFileClient) UpdateOne(_m *SourceFile) *SourceFileUpdateOne {
	mutation := newSourceFileMutation(c.config, OpUpdateOne, withSourceFile(_m))
	return &SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SourceFileClient) UpdateOneID(id uuid.UUID) *SourceFileUpdateOne {
	mutation := newSourceFileMutation(c.config, OpUpdateOne, withSourceFileID(id))
	return &SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SourceFile.
func (c *SourceFileClient) Delete() *SourceFileDelete {
	mutation := newSourceFileMutation(c.config, OpDelete)
	return &SourceFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SourceFileClient) DeleteOne(_m *SourceFile) *SourceFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SourceFileClient) DeleteOneID(id uuid.UUID) *SourceFileDeleteOne {
	builder := c.Delete().Where(sourcefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SourceFileDeleteOne{builder}
}

// Query returns a query builder for SourceFile.
func (c *SourceFileClient) Query() *SourceFileQuery {
	return &SourceFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSourceFile},
		inters: c.Interceptors(),
	}
}

// Get returns a SourceFile entity by its id.
func (c *SourceFileClient) Get(ctx context.Context, id uuid.UUID) (*SourceFile, error) {
	return c.Query().Where(sourcefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SourceFileClient) GetX(ctx context.Context, id uuid.UUID) *SourceFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a SourceFile.
func (c *SourceFileClient) QueryJobs(_m *SourceFile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sourcefile.Table, sourcefile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, sourcefile.JobsTable, sourcefile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SourceFileClient) Hooks() []Hook {
	return c.hooks.SourceFile
}

// Interceptors returns the client interceptors.
func (c *SourceFileClient) Interceptors() []Interceptor {
	return c.inters.SourceFile
}

func (c *SourceFileClient) mutate(ctx context.Context, m *SourceFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SourceFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SourceFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SourceFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SourceFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SourceFile mutation op: %q", m.Op())
	}
}

// TermsAndConditionClient is a client for the TermsAndCondition schema.
type TermsAndConditionClient struct {
	config
}

// NewTermsAndConditionClient returns a client for the TermsAndCondition from the given config.
func NewTermsAndConditionClient(c config) *TermsAndConditionClient {
	return &TermsAndConditionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `termsandcondition.Hooks(f(g(h())))`.
func (c *TermsAndConditionClient) Use(hooks ...Hook) {
	c.hooks.TermsAndCondition = append(c.hooks.TermsAndCondition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `termsandcondition.Intercept(f(g(h())))`.
func (c *TermsAndConditionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TermsAndCondition = append(c.inters.TermsAndCondition, interceptors...)
}

// Create returns a builder for creating a TermsAndCondition entity.
func (c *TermsAndConditionClient) Create() *TermsAndConditionCreate {
	mutation := newTermsAndConditionMutation(c.config, OpCreate)
	return &TermsAndConditionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TermsAndCondition entities.
func (c *TermsAndConditionClient) CreateBulk(builders ...*TermsAndConditionCreate) *TermsAndConditionCreateBulk {
	return &TermsAndConditionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TermsAndConditionClient) MapCreateBulk(slice any, setFunc func(*TermsAndConditionCreate, int)) *TermsAndConditionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TermsAndConditionCreateBulk{err: fmt.Errorf("calling to TermsAndConditionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TermsAndConditionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TermsAndConditionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TermsAndCondition.
func (c *TermsAndConditionClient) Update() *TermsAndConditionUpdate {
	mutation := newTermsAndConditionMutation(c.config, OpUpdate)
	return &TermsAndConditionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TermsAndConditionClient) UpdateOne(_m *TermsAndCondition) *TermsAndConditionUpdateOne {
	mutation := newTermsAndConditionMutation(c.config, OpUpdateOne, withTermsAndCondition(_m))
	return &TermsAndConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TermsAndConditionClient) UpdateOneID(id uuid.UUID) *TermsAndConditionUpdateOne {
	mutation := newTermsAndConditionMutation(c.config, OpUpdateOne, withTermsAndConditionID(id))
	return &TermsAndConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TermsAndCondition.
func (c *TermsAndConditionClient) Delete() *TermsAndConditionDelete {
	mutation := newTermsAndConditionMutation(c.config, OpDelete)
	return &TermsAndConditionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TermsAndConditionClient) DeleteOne(_m *TermsAndCondition) *TermsAndConditionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TermsAndConditionClient) DeleteOneID(id uuid.UUID) *TermsAndConditionDeleteOne {
	builder := c.Delete().Where(termsandcondition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TermsAndConditionDeleteOne{builder}
}

// Query returns a query builder for TermsAndCondition.
func (c *TermsAndConditionClient) Query() *TermsAndConditionQuery {
	return &TermsAndConditionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTermsAndCondition},
		inters: c.Interceptors(),
	}
}

// Get returns a TermsAndCondition entity by its id.
func (c *TermsAndConditionClient) Get(ctx context.Context, id uuid.UUID) (*TermsAndCondition, error) {
	return c.Query().Where(termsandcondition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TermsAndConditionClient) GetX(ctx context.Context, id uuid.UUID) *TermsAndCondition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContract queries the contract edge of a TermsAndCondition.
func (c *TermsAndConditionClient) QueryContract(_m *TermsAndCondition) *ContractQuery {
	query := (&ContractClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(termsandcondition.Table, termsandcondition.FieldID, id),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, termsandcondition.ContractTable, termsandcondition.ContractColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TermsAndConditionClient) Hooks() []Hook {
	return c.hooks.TermsAndCondition
}

// Interceptors returns the client interceptors.
func (c *TermsAndConditionClient) Interceptors() []Interceptor {
	return c.inters.TermsAndCondition
}

func (c *TermsAndConditionClient) mutate(ctx context.Context, m *TermsAndConditionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TermsAndConditionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TermsAndConditionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TermsAndConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TermsAndConditionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TermsAndCondition mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Bid, BuyerDetail, ConsigneeDetail, Contract, EPBGDetail, ExtractJob,
		FinancialApproval, OrganisationDetail, PayingAuthority, Product,
		ProductSpecification, SellerDetail, SourceFile, TermsAndCondition []ent.Hook
	}
	inters struct {
		Bid, BuyerDetail, ConsigneeDetail, Contract, EPBGDetail, ExtractJob,
		FinancialApproval, OrganisationDetail, PayingAuthority, Product,
		ProductSpecification, SellerDetail, SourceFile,
		TermsAndCondition []ent.Interceptor
	}
)
