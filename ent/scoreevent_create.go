// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/neuroscreen/ent/scoreevent"
)

// ScoreEventCreate is the builder for creating a ScoreEvent entity.
type ScoreEventCreate struct {
	config
	mutation *ScoreEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScoreEventCreate) SetSequence(v int64) *ScoreEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScoreEventCreate) SetTimestamp(v time.Time) *ScoreEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableTimestamp(v *time.Time) *ScoreEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBatteryID sets the "battery_id" field.
func (_c *ScoreEventCreate) SetBatteryID(v string) *ScoreEventCreate {
	_c.mutation.SetBatteryID(v)
	return _c
}

// SetTestID sets the "test_id" field.
func (_c *ScoreEventCreate) SetTestID(v string) *ScoreEventCreate {
	_c.mutation.SetTestID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *ScoreEventCreate) SetDomain(v string) *ScoreEventCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetRawScore sets the "raw_score" field.
func (_c *ScoreEventCreate) SetRawScore(v float64) *ScoreEventCreate {
	_c.mutation.SetRawScore(v)
	return _c
}

// SetZScore sets the "z_score" field.
func (_c *ScoreEventCreate) SetZScore(v float64) *ScoreEventCreate {
	_c.mutation.SetZScore(v)
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *ScoreEventCreate) SetTimeMs(v int64) *ScoreEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableTimeMs(v *int64) *ScoreEventCreate {
	if v != nil {
		_c.SetTimeMs(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *ScoreEventCreate) SetErrorCount(v int) *ScoreEventCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableErrorCount(v *int) *ScoreEventCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_c *ScoreEventCreate) Mutation() *ScoreEventMutation {
	return _c.mutation
}

// Save creates the ScoreEvent in the database.
func (_c *ScoreEventCreate) Save(ctx context.Context) (*ScoreEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreEventCreate) SaveX(ctx context.Context) *ScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scoreevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		v := scoreevent.DefaultTimeMs
		_c.mutation.SetTimeMs(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := scoreevent.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScoreEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScoreEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BatteryID(); !ok {
		return &ValidationError{Name: "battery_id", err: errors.New(`ent: missing required field "ScoreEvent.battery_id"`)}
	}
	if v, ok := _c.mutation.BatteryID(); ok {
		if err := scoreevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.battery_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestID(); !ok {
		return &ValidationError{Name: "test_id", err: errors.New(`ent: missing required field "ScoreEvent.test_id"`)}
	}
	if v, ok := _c.mutation.TestID(); ok {
		if err := scoreevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.test_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "ScoreEvent.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := scoreevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawScore(); !ok {
		return &ValidationError{Name: "raw_score", err: errors.New(`ent: missing required field "ScoreEvent.raw_score"`)}
	}
	if _, ok := _c.mutation.ZScore(); !ok {
		return &ValidationError{Name: "z_score", err: errors.New(`ent: missing required field "ScoreEvent.z_score"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "ScoreEvent.time_ms"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "ScoreEvent.error_count"`)}
	}
	return nil
}

func (_c *ScoreEventCreate) sqlSave(ctx context.Context) (*ScoreEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoreEventCreate) createSpec() (*ScoreEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoreevent.Table, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scoreevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scoreevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BatteryID(); ok {
		_spec.SetField(scoreevent.FieldBatteryID, field.TypeString, value)
		_node.BatteryID = value
	}
	if value, ok := _c.mutation.TestID(); ok {
		_spec.SetField(scoreevent.FieldTestID, field.TypeString, value)
		_node.TestID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(scoreevent.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.RawScore(); ok {
		_spec.SetField(scoreevent.FieldRawScore, field.TypeFloat64, value)
		_node.RawScore = value
	}
	if value, ok := _c.mutation.ZScore(); ok {
		_spec.SetField(scoreevent.FieldZScore, field.TypeFloat64, value)
		_node.ZScore = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(scoreevent.FieldTimeMs, field.TypeInt64, value)
		_node.TimeMs = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(scoreevent.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	return _node, _spec
}

// ScoreEventCreateBulk is the builder for creating many ScoreEvent entities in bulk.
type ScoreEventCreateBulk struct {
	config
	err      error
	builders []*ScoreEventCreate
}

// Save creates the ScoreEvent entities in the database.
func (_c *ScoreEventCreateBulk) Save(ctx context.Context) ([]*ScoreEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ScoreEventCreateBulk) SaveX(ctx context.Context) []*ScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
