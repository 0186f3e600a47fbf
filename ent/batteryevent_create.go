// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/neuroscreen/ent/batteryevent"
)

// BatteryEventCreate is the builder for creating a BatteryEvent entity.
type BatteryEventCreate struct {
	config
	mutation *BatteryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BatteryEventCreate) SetSequence(v int64) *BatteryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BatteryEventCreate) SetTimestamp(v time.Time) *BatteryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BatteryEventCreate) SetNillableTimestamp(v *time.Time) *BatteryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBatteryID sets the "battery_id" field.
func (_c *BatteryEventCreate) SetBatteryID(v string) *BatteryEventCreate {
	_c.mutation.SetBatteryID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *BatteryEventCreate) SetAction(v string) *BatteryEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCompletedTests sets the "completed_tests" field.
func (_c *BatteryEventCreate) SetCompletedTests(v int) *BatteryEventCreate {
	_c.mutation.SetCompletedTests(v)
	return _c
}

// SetNillableCompletedTests sets the "completed_tests" field if the given value is not nil.
func (_c *BatteryEventCreate) SetNillableCompletedTests(v *int) *BatteryEventCreate {
	if v != nil {
		_c.SetCompletedTests(*v)
	}
	return _c
}

// SetSkippedTests sets the "skipped_tests" field.
func (_c *BatteryEventCreate) SetSkippedTests(v []string) *BatteryEventCreate {
	_c.mutation.SetSkippedTests(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *BatteryEventCreate) SetDurationSecs(v int) *BatteryEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *BatteryEventCreate) SetNillableDurationSecs(v *int) *BatteryEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetCcs sets the "ccs" field.
func (_c *BatteryEventCreate) SetCcs(v float64) *BatteryEventCreate {
	_c.mutation.SetCcs(v)
	return _c
}

// SetNillableCcs sets the "ccs" field if the given value is not nil.
func (_c *BatteryEventCreate) SetNillableCcs(v *float64) *BatteryEventCreate {
	if v != nil {
		_c.SetCcs(*v)
	}
	return _c
}

// SetInterpretation sets the "interpretation" field.
func (_c *BatteryEventCreate) SetInterpretation(v string) *BatteryEventCreate {
	_c.mutation.SetInterpretation(v)
	return _c
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_c *BatteryEventCreate) SetNillableInterpretation(v *string) *BatteryEventCreate {
	if v != nil {
		_c.SetInterpretation(*v)
	}
	return _c
}

// Mutation returns the BatteryEventMutation object of the builder.
func (_c *BatteryEventCreate) Mutation() *BatteryEventMutation {
	return _c.mutation
}

// Save creates the BatteryEvent in the database.
func (_c *BatteryEventCreate) Save(ctx context.Context) (*BatteryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatteryEventCreate) SaveX(ctx context.Context) *BatteryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatteryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatteryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatteryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := batteryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CompletedTests(); !ok {
		v := batteryevent.DefaultCompletedTests
		_c.mutation.SetCompletedTests(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := batteryevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.Ccs(); !ok {
		v := batteryevent.DefaultCcs
		_c.mutation.SetCcs(v)
	}
	if _, ok := _c.mutation.Interpretation(); !ok {
		v := batteryevent.DefaultInterpretation
		_c.mutation.SetInterpretation(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatteryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BatteryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BatteryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BatteryID(); !ok {
		return &ValidationError{Name: "battery_id", err: errors.New(`ent: missing required field "BatteryEvent.battery_id"`)}
	}
	if v, ok := _c.mutation.BatteryID(); ok {
		if err := batteryevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "BatteryEvent.battery_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "BatteryEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := batteryevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BatteryEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedTests(); !ok {
		return &ValidationError{Name: "completed_tests", err: errors.New(`ent: missing required field "BatteryEvent.completed_tests"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "BatteryEvent.duration_secs"`)}
	}
	if _, ok := _c.mutation.Ccs(); !ok {
		return &ValidationError{Name: "ccs", err: errors.New(`ent: missing required field "BatteryEvent.ccs"`)}
	}
	if _, ok := _c.mutation.Interpretation(); !ok {
		return &ValidationError{Name: "interpretation", err: errors.New(`ent: missing required field "BatteryEvent.interpretation"`)}
	}
	return nil
}

func (_c *BatteryEventCreate) sqlSave(ctx context.Context) (*BatteryEvent, error) {
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

func (_c *BatteryEventCreate) createSpec() (*BatteryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BatteryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batteryevent.Table, sqlgraph.NewFieldSpec(batteryevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(batteryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(batteryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BatteryID(); ok {
		_spec.SetField(batteryevent.FieldBatteryID, field.TypeString, value)
		_node.BatteryID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(batteryevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.CompletedTests(); ok {
		_spec.SetField(batteryevent.FieldCompletedTests, field.TypeInt, value)
		_node.CompletedTests = value
	}
	if value, ok := _c.mutation.SkippedTests(); ok {
		_spec.SetField(batteryevent.FieldSkippedTests, field.TypeJSON, value)
		_node.SkippedTests = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(batteryevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.Ccs(); ok {
		_spec.SetField(batteryevent.FieldCcs, field.TypeFloat64, value)
		_node.Ccs = value
	}
	if value, ok := _c.mutation.Interpretation(); ok {
		_spec.SetField(batteryevent.FieldInterpretation, field.TypeString, value)
		_node.Interpretation = value
	}
	return _node, _spec
}

// BatteryEventCreateBulk is the builder for creating many BatteryEvent entities in bulk.
type BatteryEventCreateBulk struct {
	config
	err      error
	builders []*BatteryEventCreate
}

// Save creates the BatteryEvent entities in the database.
func (_c *BatteryEventCreateBulk) Save(ctx context.Context) ([]*BatteryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatteryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatteryEventMutation)
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
func (_c *BatteryEventCreateBulk) SaveX(ctx context.Context) []*BatteryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatteryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatteryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
