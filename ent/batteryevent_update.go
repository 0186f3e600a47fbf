// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/neuroscreen/ent/batteryevent"
	"github.com/abhisek/neuroscreen/ent/predicate"
)

// BatteryEventUpdate is the builder for updating BatteryEvent entities.
type BatteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *BatteryEventMutation
}

// Where appends a list predicates to the BatteryEventUpdate builder.
func (_u *BatteryEventUpdate) Where(ps ...predicate.BatteryEvent) *BatteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatteryID sets the "battery_id" field.
func (_u *BatteryEventUpdate) SetBatteryID(v string) *BatteryEventUpdate {
	_u.mutation.SetBatteryID(v)
	return _u
}

// SetNillableBatteryID sets the "battery_id" field if the given value is not nil.
func (_u *BatteryEventUpdate) SetNillableBatteryID(v *string) *BatteryEventUpdate {
	if v != nil {
		_u.SetBatteryID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BatteryEventUpdate) SetAction(v string) *BatteryEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BatteryEventUpdate) SetNillableAction(v *string) *BatteryEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCompletedTests sets the "completed_tests" field.
func (_u *BatteryEventUpdate) SetCompletedTests(v int) *BatteryEventUpdate {
	_u.mutation.ResetCompletedTests()
	_u.mutation.SetCompletedTests(v)
	return _u
}

// SetNillableCompletedTests sets the "completed_tests" field if the given value is not nil.
func (_u *BatteryEventUpdate) SetNillableCompletedTests(v *int) *BatteryEventUpdate {
	if v != nil {
		_u.SetCompletedTests(*v)
	}
	return _u
}

// AddCompletedTests adds value to the "completed_tests" field.
func (_u *BatteryEventUpdate) AddCompletedTests(v int) *BatteryEventUpdate {
	_u.mutation.AddCompletedTests(v)
	return _u
}

// SetSkippedTests sets the "skipped_tests" field.
func (_u *BatteryEventUpdate) SetSkippedTests(v []string) *BatteryEventUpdate {
	_u.mutation.SetSkippedTests(v)
	return _u
}

// AppendSkippedTests appends value to the "skipped_tests" field.
func (_u *BatteryEventUpdate) AppendSkippedTests(v []string) *BatteryEventUpdate {
	_u.mutation.AppendSkippedTests(v)
	return _u
}

// ClearSkippedTests clears the value of the "skipped_tests" field.
func (_u *BatteryEventUpdate) ClearSkippedTests() *BatteryEventUpdate {
	_u.mutation.ClearSkippedTests()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *BatteryEventUpdate) SetDurationSecs(v int) *BatteryEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *BatteryEventUpdate) SetNillableDurationSecs(v *int) *BatteryEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *BatteryEventUpdate) AddDurationSecs(v int) *BatteryEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetCcs sets the "ccs" field.
func (_u *BatteryEventUpdate) SetCcs(v float64) *BatteryEventUpdate {
	_u.mutation.ResetCcs()
	_u.mutation.SetCcs(v)
	return _u
}

// SetNillableCcs sets the "ccs" field if the given value is not nil.
func (_u *BatteryEventUpdate) SetNillableCcs(v *float64) *BatteryEventUpdate {
	if v != nil {
		_u.SetCcs(*v)
	}
	return _u
}

// AddCcs adds value to the "ccs" field.
func (_u *BatteryEventUpdate) AddCcs(v float64) *BatteryEventUpdate {
	_u.mutation.AddCcs(v)
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *BatteryEventUpdate) SetInterpretation(v string) *BatteryEventUpdate {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *BatteryEventUpdate) SetNillableInterpretation(v *string) *BatteryEventUpdate {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// Mutation returns the BatteryEventMutation object of the builder.
func (_u *BatteryEventUpdate) Mutation() *BatteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatteryEventUpdate) check() error {
	if v, ok := _u.mutation.BatteryID(); ok {
		if err := batteryevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "BatteryEvent.battery_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := batteryevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BatteryEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *BatteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batteryevent.Table, batteryevent.Columns, sqlgraph.NewFieldSpec(batteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BatteryID(); ok {
		_spec.SetField(batteryevent.FieldBatteryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(batteryevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedTests(); ok {
		_spec.SetField(batteryevent.FieldCompletedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedTests(); ok {
		_spec.AddField(batteryevent.FieldCompletedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedTests(); ok {
		_spec.SetField(batteryevent.FieldSkippedTests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkippedTests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batteryevent.FieldSkippedTests, value)
		})
	}
	if _u.mutation.SkippedTestsCleared() {
		_spec.ClearField(batteryevent.FieldSkippedTests, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(batteryevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(batteryevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ccs(); ok {
		_spec.SetField(batteryevent.FieldCcs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCcs(); ok {
		_spec.AddField(batteryevent.FieldCcs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(batteryevent.FieldInterpretation, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatteryEventUpdateOne is the builder for updating a single BatteryEvent entity.
type BatteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatteryEventMutation
}

// SetBatteryID sets the "battery_id" field.
func (_u *BatteryEventUpdateOne) SetBatteryID(v string) *BatteryEventUpdateOne {
	_u.mutation.SetBatteryID(v)
	return _u
}

// SetNillableBatteryID sets the "battery_id" field if the given value is not nil.
func (_u *BatteryEventUpdateOne) SetNillableBatteryID(v *string) *BatteryEventUpdateOne {
	if v != nil {
		_u.SetBatteryID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BatteryEventUpdateOne) SetAction(v string) *BatteryEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BatteryEventUpdateOne) SetNillableAction(v *string) *BatteryEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCompletedTests sets the "completed_tests" field.
func (_u *BatteryEventUpdateOne) SetCompletedTests(v int) *BatteryEventUpdateOne {
	_u.mutation.ResetCompletedTests()
	_u.mutation.SetCompletedTests(v)
	return _u
}

// SetNillableCompletedTests sets the "completed_tests" field if the given value is not nil.
func (_u *BatteryEventUpdateOne) SetNillableCompletedTests(v *int) *BatteryEventUpdateOne {
	if v != nil {
		_u.SetCompletedTests(*v)
	}
	return _u
}

// AddCompletedTests adds value to the "completed_tests" field.
func (_u *BatteryEventUpdateOne) AddCompletedTests(v int) *BatteryEventUpdateOne {
	_u.mutation.AddCompletedTests(v)
	return _u
}

// SetSkippedTests sets the "skipped_tests" field.
func (_u *BatteryEventUpdateOne) SetSkippedTests(v []string) *BatteryEventUpdateOne {
	_u.mutation.SetSkippedTests(v)
	return _u
}

// AppendSkippedTests appends value to the "skipped_tests" field.
func (_u *BatteryEventUpdateOne) AppendSkippedTests(v []string) *BatteryEventUpdateOne {
	_u.mutation.AppendSkippedTests(v)
	return _u
}

// ClearSkippedTests clears the value of the "skipped_tests" field.
func (_u *BatteryEventUpdateOne) ClearSkippedTests() *BatteryEventUpdateOne {
	_u.mutation.ClearSkippedTests()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *BatteryEventUpdateOne) SetDurationSecs(v int) *BatteryEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *BatteryEventUpdateOne) SetNillableDurationSecs(v *int) *BatteryEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *BatteryEventUpdateOne) AddDurationSecs(v int) *BatteryEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetCcs sets the "ccs" field.
func (_u *BatteryEventUpdateOne) SetCcs(v float64) *BatteryEventUpdateOne {
	_u.mutation.ResetCcs()
	_u.mutation.SetCcs(v)
	return _u
}

// SetNillableCcs sets the "ccs" field if the given value is not nil.
func (_u *BatteryEventUpdateOne) SetNillableCcs(v *float64) *BatteryEventUpdateOne {
	if v != nil {
		_u.SetCcs(*v)
	}
	return _u
}

// AddCcs adds value to the "ccs" field.
func (_u *BatteryEventUpdateOne) AddCcs(v float64) *BatteryEventUpdateOne {
	_u.mutation.AddCcs(v)
	return _u
}

// SetInterpretation sets the "interpretation" field.
func (_u *BatteryEventUpdateOne) SetInterpretation(v string) *BatteryEventUpdateOne {
	_u.mutation.SetInterpretation(v)
	return _u
}

// SetNillableInterpretation sets the "interpretation" field if the given value is not nil.
func (_u *BatteryEventUpdateOne) SetNillableInterpretation(v *string) *BatteryEventUpdateOne {
	if v != nil {
		_u.SetInterpretation(*v)
	}
	return _u
}

// Mutation returns the BatteryEventMutation object of the builder.
func (_u *BatteryEventUpdateOne) Mutation() *BatteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BatteryEventUpdate builder.
func (_u *BatteryEventUpdateOne) Where(ps ...predicate.BatteryEvent) *BatteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatteryEventUpdateOne) Select(field string, fields ...string) *BatteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatteryEvent entity.
func (_u *BatteryEventUpdateOne) Save(ctx context.Context) (*BatteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatteryEventUpdateOne) SaveX(ctx context.Context) *BatteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.BatteryID(); ok {
		if err := batteryevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "BatteryEvent.battery_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := batteryevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BatteryEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *BatteryEventUpdateOne) sqlSave(ctx context.Context) (_node *BatteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batteryevent.Table, batteryevent.Columns, sqlgraph.NewFieldSpec(batteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batteryevent.FieldID)
		for _, f := range fields {
			if !batteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batteryevent.FieldID {
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
		_spec.SetField(batteryevent.FieldBatteryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(batteryevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedTests(); ok {
		_spec.SetField(batteryevent.FieldCompletedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedTests(); ok {
		_spec.AddField(batteryevent.FieldCompletedTests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedTests(); ok {
		_spec.SetField(batteryevent.FieldSkippedTests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkippedTests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, batteryevent.FieldSkippedTests, value)
		})
	}
	if _u.mutation.SkippedTestsCleared() {
		_spec.ClearField(batteryevent.FieldSkippedTests, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(batteryevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(batteryevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ccs(); ok {
		_spec.SetField(batteryevent.FieldCcs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCcs(); ok {
		_spec.AddField(batteryevent.FieldCcs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interpretation(); ok {
		_spec.SetField(batteryevent.FieldInterpretation, field.TypeString, value)
	}
	_node = &BatteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
