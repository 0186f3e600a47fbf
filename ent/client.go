// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/neuroscreen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/neuroscreen/ent/analysisevent"
	"github.com/abhisek/neuroscreen/ent/batteryevent"
	"github.com/abhisek/neuroscreen/ent/llmrequestevent"
	"github.com/abhisek/neuroscreen/ent/scoreevent"
	"github.com/abhisek/neuroscreen/ent/snapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisEvent is the client for interacting with the AnalysisEvent builders.
	AnalysisEvent *AnalysisEventClient
	// BatteryEvent is the client for interacting with the BatteryEvent builders.
	BatteryEvent *BatteryEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// ScoreEvent is the client for interacting with the ScoreEvent builders.
	ScoreEvent *ScoreEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisEvent = NewAnalysisEventClient(c.config)
	c.BatteryEvent = NewBatteryEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.ScoreEvent = NewScoreEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AnalysisEvent:   NewAnalysisEventClient(cfg),
		BatteryEvent:    NewBatteryEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		ScoreEvent:      NewScoreEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AnalysisEvent:   NewAnalysisEventClient(cfg),
		BatteryEvent:    NewBatteryEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		ScoreEvent:      NewScoreEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisEvent.
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
	c.AnalysisEvent.Use(hooks...)
	c.BatteryEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.ScoreEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisEvent.Intercept(interceptors...)
	c.BatteryEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.ScoreEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisEventMutation:
		return c.AnalysisEvent.mutate(ctx, m)
	case *BatteryEventMutation:
		return c.BatteryEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *ScoreEventMutation:
		return c.ScoreEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisEventClient is a client for the AnalysisEvent schema.
type AnalysisEventClient struct {
	config
}

// NewAnalysisEventClient returns a client for the AnalysisEvent from the given config.
func NewAnalysisEventClient(c config) *AnalysisEventClient {
	return &AnalysisEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisevent.Hooks(f(g(h())))`.
func (c *AnalysisEventClient) Use(hooks ...Hook) {
	c.hooks.AnalysisEvent = append(c.hooks.AnalysisEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisevent.Intercept(f(g(h())))`.
func (c *AnalysisEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisEvent = append(c.inters.AnalysisEvent, interceptors...)
}

// Create returns a builder for creating a AnalysisEvent entity.
func (c *AnalysisEventClient) Create() *AnalysisEventCreate {
	mutation := newAnalysisEventMutation(c.config, OpCreate)
	return &AnalysisEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisEvent entities.
func (c *AnalysisEventClient) CreateBulk(builders ...*AnalysisEventCreate) *AnalysisEventCreateBulk {
	return &AnalysisEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisEventClient) MapCreateBulk(slice any, setFunc func(*AnalysisEventCreate, int)) *AnalysisEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisEventCreateBulk{err: fmt.Errorf("calling to AnalysisEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisEvent.
func (c *AnalysisEventClient) Update() *AnalysisEventUpdate {
	mutation := newAnalysisEventMutation(c.config, OpUpdate)
	return &AnalysisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisEventClient) UpdateOne(_m *AnalysisEvent) *AnalysisEventUpdateOne {
	mutation := newAnalysisEventMutation(c.config, OpUpdateOne, withAnalysisEvent(_m))
	return &AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisEventClient) UpdateOneID(id int) *AnalysisEventUpdateOne {
	mutation := newAnalysisEventMutation(c.config, OpUpdateOne, withAnalysisEventID(id))
	return &AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisEvent.
func (c *AnalysisEventClient) Delete() *AnalysisEventDelete {
	mutation := newAnalysisEventMutation(c.config, OpDelete)
	return &AnalysisEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisEventClient) DeleteOne(_m *AnalysisEvent) *AnalysisEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisEventClient) DeleteOneID(id int) *AnalysisEventDeleteOne {
	builder := c.Delete().Where(analysisevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisEventDeleteOne{builder}
}

// Query returns a query builder for AnalysisEvent.
func (c *AnalysisEventClient) Query() *AnalysisEventQuery {
	return &AnalysisEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisEvent entity by its id.
func (c *AnalysisEventClient) Get(ctx context.Context, id int) (*AnalysisEvent, error) {
	return c.Query().Where(analysisevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisEventClient) GetX(ctx context.Context, id int) *AnalysisEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisEventClient) Hooks() []Hook {
	return c.hooks.AnalysisEvent
}

// Interceptors returns the client interceptors.
func (c *AnalysisEventClient) Interceptors() []Interceptor {
	return c.inters.AnalysisEvent
}

func (c *AnalysisEventClient) mutate(ctx context.Context, m *AnalysisEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisEvent mutation op: %q", m.Op())
	}
}

// BatteryEventClient is a client for the BatteryEvent schema.
type BatteryEventClient struct {
	config
}

// NewBatteryEventClient returns a client for the BatteryEvent from the given config.
func NewBatteryEventClient(c config) *BatteryEventClient {
	return &BatteryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batteryevent.Hooks(f(g(h())))`.
func (c *BatteryEventClient) Use(hooks ...Hook) {
	c.hooks.BatteryEvent = append(c.hooks.BatteryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batteryevent.Intercept(f(g(h())))`.
func (c *BatteryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatteryEvent = append(c.inters.BatteryEvent, interceptors...)
}

// Create returns a builder for creating a BatteryEvent entity.
func (c *BatteryEventClient) Create() *BatteryEventCreate {
	mutation := newBatteryEventMutation(c.config, OpCreate)
	return &BatteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatteryEvent entities.
func (c *BatteryEventClient) CreateBulk(builders ...*BatteryEventCreate) *BatteryEventCreateBulk {
	return &BatteryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatteryEventClient) MapCreateBulk(slice any, setFunc func(*BatteryEventCreate, int)) *BatteryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatteryEventCreateBulk{err: fmt.Errorf("calling to BatteryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatteryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatteryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatteryEvent.
func (c *BatteryEventClient) Update() *BatteryEventUpdate {
	mutation := newBatteryEventMutation(c.config, OpUpdate)
	return &BatteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatteryEventClient) UpdateOne(_m *BatteryEvent) *BatteryEventUpdateOne {
	mutation := newBatteryEventMutation(c.config, OpUpdateOne, withBatteryEvent(_m))
	return &BatteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatteryEventClient) UpdateOneID(id int) *BatteryEventUpdateOne {
	mutation := newBatteryEventMutation(c.config, OpUpdateOne, withBatteryEventID(id))
	return &BatteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatteryEvent.
func (c *BatteryEventClient) Delete() *BatteryEventDelete {
	mutation := newBatteryEventMutation(c.config, OpDelete)
	return &BatteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatteryEventClient) DeleteOne(_m *BatteryEvent) *BatteryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatteryEventClient) DeleteOneID(id int) *BatteryEventDeleteOne {
	builder := c.Delete().Where(batteryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatteryEventDeleteOne{builder}
}

// Query returns a query builder for BatteryEvent.
func (c *BatteryEventClient) Query() *BatteryEventQuery {
	return &BatteryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatteryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a BatteryEvent entity by its id.
func (c *BatteryEventClient) Get(ctx context.Context, id int) (*BatteryEvent, error) {
	return c.Query().Where(batteryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatteryEventClient) GetX(ctx context.Context, id int) *BatteryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BatteryEventClient) Hooks() []Hook {
	return c.hooks.BatteryEvent
}

// Interceptors returns the client interceptors.
func (c *BatteryEventClient) Interceptors() []Interceptor {
	return c.inters.BatteryEvent
}

func (c *BatteryEventClient) mutate(ctx context.Context, m *BatteryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatteryEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// ScoreEventClient is a client for the ScoreEvent schema.
type ScoreEventClient struct {
	config
}

// NewScoreEventClient returns a client for the ScoreEvent from the given config.
func NewScoreEventClient(c config) *ScoreEventClient {
	return &ScoreEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scoreevent.Hooks(f(g(h())))`.
func (c *ScoreEventClient) Use(hooks ...Hook) {
	c.hooks.ScoreEvent = append(c.hooks.ScoreEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scoreevent.Intercept(f(g(h())))`.
func (c *ScoreEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScoreEvent = append(c.inters.ScoreEvent, interceptors...)
}

// Create returns a builder for creating a ScoreEvent entity.
func (c *ScoreEventClient) Create() *ScoreEventCreate {
	mutation := newScoreEventMutation(c.config, OpCreate)
	return &ScoreEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScoreEvent entities.
func (c *ScoreEventClient) CreateBulk(builders ...*ScoreEventCreate) *ScoreEventCreateBulk {
	return &ScoreEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoreEventClient) MapCreateBulk(slice any, setFunc func(*ScoreEventCreate, int)) *ScoreEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoreEventCreateBulk{err: fmt.Errorf("calling to ScoreEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoreEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoreEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScoreEvent.
func (c *ScoreEventClient) Update() *ScoreEventUpdate {
	mutation := newScoreEventMutation(c.config, OpUpdate)
	return &ScoreEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoreEventClient) UpdateOne(_m *ScoreEvent) *ScoreEventUpdateOne {
	mutation := newScoreEventMutation(c.config, OpUpdateOne, withScoreEvent(_m))
	return &ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoreEventClient) UpdateOneID(id int) *ScoreEventUpdateOne {
	mutation := newScoreEventMutation(c.config, OpUpdateOne, withScoreEventID(id))
	return &ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScoreEvent.
func (c *ScoreEventClient) Delete() *ScoreEventDelete {
	mutation := newScoreEventMutation(c.config, OpDelete)
	return &ScoreEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoreEventClient) DeleteOne(_m *ScoreEvent) *ScoreEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoreEventClient) DeleteOneID(id int) *ScoreEventDeleteOne {
	builder := c.Delete().Where(scoreevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoreEventDeleteOne{builder}
}

// Query returns a query builder for ScoreEvent.
func (c *ScoreEventClient) Query() *ScoreEventQuery {
	return &ScoreEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoreEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ScoreEvent entity by its id.
func (c *ScoreEventClient) Get(ctx context.Context, id int) (*ScoreEvent, error) {
	return c.Query().Where(scoreevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoreEventClient) GetX(ctx context.Context, id int) *ScoreEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScoreEventClient) Hooks() []Hook {
	return c.hooks.ScoreEvent
}

// Interceptors returns the client interceptors.
func (c *ScoreEventClient) Interceptors() []Interceptor {
	return c.inters.ScoreEvent
}

func (c *ScoreEventClient) mutate(ctx context.Context, m *ScoreEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoreEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoreEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoreEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoreEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScoreEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisEvent, BatteryEvent, LLMRequestEvent, ScoreEvent, Snapshot []ent.Hook
	}
	inters struct {
		AnalysisEvent, BatteryEvent, LLMRequestEvent, ScoreEvent,
		Snapshot []ent.Interceptor
	}
)
