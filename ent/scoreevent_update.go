// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/neuroscreen/ent/predicate"
	"github.com/abhisek/neuroscreen/ent/scoreevent"
)

// ScoreEventUpdate is the builder for updating ScoreEvent entities.
type ScoreEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreEventMutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdate) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatteryID sets the "battery_id" field.
func (_u *ScoreEventUpdate) SetBatteryID(v string) *ScoreEventUpdate {
	_u.mutation.SetBatteryID(v)
	return _u
}

// SetNillableBatteryID sets the "battery_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableBatteryID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetBatteryID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *ScoreEventUpdate) SetTestID(v string) *ScoreEventUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableTestID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ScoreEventUpdate) SetDomain(v string) *ScoreEventUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableDomain(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetRawScore sets the "raw_score" field.
func (_u *ScoreEventUpdate) SetRawScore(v float64) *ScoreEventUpdate {
	_u.mutation.ResetRawScore()
	_u.mutation.SetRawScore(v)
	return _u
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableRawScore(v *float64) *ScoreEventUpdate {
	if v != nil {
		_u.SetRawScore(*v)
	}
	return _u
}

// AddRawScore adds value to the "raw_score" field.
func (_u *ScoreEventUpdate) AddRawScore(v float64) *ScoreEventUpdate {
	_u.mutation.AddRawScore(v)
	return _u
}

// SetZScore sets the "z_score" field.
func (_u *ScoreEventUpdate) SetZScore(v float64) *ScoreEventUpdate {
	_u.mutation.ResetZScore()
	_u.mutation.SetZScore(v)
	return _u
}

// SetNillableZScore sets the "z_score" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableZScore(v *float64) *ScoreEventUpdate {
	if v != nil {
		_u.SetZScore(*v)
	}
	return _u
}

// AddZScore adds value to the "z_score" field.
func (_u *ScoreEventUpdate) AddZScore(v float64) *ScoreEventUpdate {
	_u.mutation.AddZScore(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *ScoreEventUpdate) SetTimeMs(v int64) *ScoreEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableTimeMs(v *int64) *ScoreEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *ScoreEventUpdate) AddTimeMs(v int64) *ScoreEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ScoreEventUpdate) SetErrorCount(v int) *ScoreEventUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableErrorCount(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ScoreEventUpdate) AddErrorCount(v int) *ScoreEventUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdate) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdate) check() error {
	if v, ok := _u.mutation.BatteryID(); ok {
		if err := scoreevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.battery_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestID(); ok {
		if err := scoreevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := scoreevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.domain": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BatteryID(); ok {
		_spec.SetField(scoreevent.FieldBatteryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(scoreevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(scoreevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawScore(); ok {
		_spec.SetField(scoreevent.FieldRawScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawScore(); ok {
		_spec.AddField(scoreevent.FieldRawScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ZScore(); ok {
		_spec.SetField(scoreevent.FieldZScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZScore(); ok {
		_spec.AddField(scoreevent.FieldZScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(scoreevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(scoreevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(scoreevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(scoreevent.FieldErrorCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreEventUpdateOne is the builder for updating a single ScoreEvent entity.
type ScoreEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreEventMutation
}

// SetBatteryID sets the "battery_id" field.
func (_u *ScoreEventUpdateOne) SetBatteryID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetBatteryID(v)
	return _u
}

// SetNillableBatteryID sets the "battery_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableBatteryID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetBatteryID(*v)
	}
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *ScoreEventUpdateOne) SetTestID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableTestID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *ScoreEventUpdateOne) SetDomain(v string) *ScoreEventUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableDomain(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetRawScore sets the "raw_score" field.
func (_u *ScoreEventUpdateOne) SetRawScore(v float64) *ScoreEventUpdateOne {
	_u.mutation.ResetRawScore()
	_u.mutation.SetRawScore(v)
	return _u
}

// SetNillableRawScore sets the "raw_score" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableRawScore(v *float64) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetRawScore(*v)
	}
	return _u
}

// AddRawScore adds value to the "raw_score" field.
func (_u *ScoreEventUpdateOne) AddRawScore(v float64) *ScoreEventUpdateOne {
	_u.mutation.AddRawScore(v)
	return _u
}

// SetZScore sets the "z_score" field.
func (_u *ScoreEventUpdateOne) SetZScore(v float64) *ScoreEventUpdateOne {
	_u.mutation.ResetZScore()
	_u.mutation.SetZScore(v)
	return _u
}

// SetNillableZScore sets the "z_score" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableZScore(v *float64) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetZScore(*v)
	}
	return _u
}

// AddZScore adds value to the "z_score" field.
func (_u *ScoreEventUpdateOne) AddZScore(v float64) *ScoreEventUpdateOne {
	_u.mutation.AddZScore(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *ScoreEventUpdateOne) SetTimeMs(v int64) *ScoreEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableTimeMs(v *int64) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *ScoreEventUpdateOne) AddTimeMs(v int64) *ScoreEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ScoreEventUpdateOne) SetErrorCount(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableErrorCount(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ScoreEventUpdateOne) AddErrorCount(v int) *ScoreEventUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdateOne) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdateOne) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreEventUpdateOne) Select(field string, fields ...string) *ScoreEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreEvent entity.
func (_u *ScoreEventUpdateOne) Save(ctx context.Context) (*ScoreEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) SaveX(ctx context.Context) *ScoreEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdateOne) check() error {
	if v, ok := _u.mutation.BatteryID(); ok {
		if err := scoreevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.battery_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestID(); ok {
		if err := scoreevent.TestIDValidator(v); err != nil {
			return &ValidationError{Name: "test_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.test_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := scoreevent.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.domain": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdateOne) sqlSave(ctx context.Context) (_node *ScoreEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreevent.FieldID)
		for _, f := range fields {
			if !scoreevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreevent.FieldID {
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
	if value, ok := _u.mutation.BatteryID(); ok {
		_spec.SetField(scoreevent.FieldBatteryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TestID(); ok {
		_spec.SetField(scoreevent.FieldTestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(scoreevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawScore(); ok {
		_spec.SetField(scoreevent.FieldRawScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawScore(); ok {
		_spec.AddField(scoreevent.FieldRawScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ZScore(); ok {
		_spec.SetField(scoreevent.FieldZScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZScore(); ok {
		_spec.AddField(scoreevent.FieldZScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(scoreevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(scoreevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(scoreevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(scoreevent.FieldErrorCount, field.TypeInt, value)
	}
	_node = &ScoreEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
