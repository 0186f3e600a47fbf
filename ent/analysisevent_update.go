// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/neuroscreen/ent/analysisevent"
	"github.com/abhisek/neuroscreen/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatteryID sets the "battery_id" field.
func (_u *AnalysisEventUpdate) SetBatteryID(v string) *AnalysisEventUpdate {
	_u.mutation.SetBatteryID(v)
	return _u
}

// SetNillableBatteryID sets the "battery_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableBatteryID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetBatteryID(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AnalysisEventUpdate) SetRiskLevel(v string) *AnalysisEventUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableRiskLevel(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisEventUpdate) SetConfidence(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableConfidence(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisEventUpdate) AddConfidence(v float64) *AnalysisEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *AnalysisEventUpdate) SetWordCount(v int) *AnalysisEventUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableWordCount(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *AnalysisEventUpdate) AddWordCount(v int) *AnalysisEventUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetSentenceCount sets the "sentence_count" field.
func (_u *AnalysisEventUpdate) SetSentenceCount(v int) *AnalysisEventUpdate {
	_u.mutation.ResetSentenceCount()
	_u.mutation.SetSentenceCount(v)
	return _u
}

// SetNillableSentenceCount sets the "sentence_count" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSentenceCount(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSentenceCount(*v)
	}
	return _u
}

// AddSentenceCount adds value to the "sentence_count" field.
func (_u *AnalysisEventUpdate) AddSentenceCount(v int) *AnalysisEventUpdate {
	_u.mutation.AddSentenceCount(v)
	return _u
}

// SetLexicalDiversity sets the "lexical_diversity" field.
func (_u *AnalysisEventUpdate) SetLexicalDiversity(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetLexicalDiversity()
	_u.mutation.SetLexicalDiversity(v)
	return _u
}

// SetNillableLexicalDiversity sets the "lexical_diversity" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableLexicalDiversity(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetLexicalDiversity(*v)
	}
	return _u
}

// AddLexicalDiversity adds value to the "lexical_diversity" field.
func (_u *AnalysisEventUpdate) AddLexicalDiversity(v float64) *AnalysisEventUpdate {
	_u.mutation.AddLexicalDiversity(v)
	return _u
}

// SetClassifierName sets the "classifier_name" field.
func (_u *AnalysisEventUpdate) SetClassifierName(v string) *AnalysisEventUpdate {
	_u.mutation.SetClassifierName(v)
	return _u
}

// SetNillableClassifierName sets the "classifier_name" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableClassifierName(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetClassifierName(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AnalysisEventUpdate) SetReasoning(v string) *AnalysisEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableReasoning(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *AnalysisEventUpdate) ClearReasoning() *AnalysisEventUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdate) check() error {
	if v, ok := _u.mutation.BatteryID(); ok {
		if err := analysisevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.battery_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := analysisevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClassifierName(); ok {
		if err := analysisevent.ClassifierNameValidator(v); err != nil {
			return &ValidationError{Name: "classifier_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.classifier_name": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BatteryID(); ok {
		_spec.SetField(analysisevent.FieldBatteryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(analysisevent.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(analysisevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(analysisevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentenceCount(); ok {
		_spec.SetField(analysisevent.FieldSentenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentenceCount(); ok {
		_spec.AddField(analysisevent.FieldSentenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LexicalDiversity(); ok {
		_spec.SetField(analysisevent.FieldLexicalDiversity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLexicalDiversity(); ok {
		_spec.AddField(analysisevent.FieldLexicalDiversity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ClassifierName(); ok {
		_spec.SetField(analysisevent.FieldClassifierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(analysisevent.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(analysisevent.FieldReasoning, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetBatteryID sets the "battery_id" field.
func (_u *AnalysisEventUpdateOne) SetBatteryID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetBatteryID(v)
	return _u
}

// SetNillableBatteryID sets the "battery_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableBatteryID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetBatteryID(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AnalysisEventUpdateOne) SetRiskLevel(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableRiskLevel(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisEventUpdateOne) SetConfidence(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableConfidence(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisEventUpdateOne) AddConfidence(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *AnalysisEventUpdateOne) SetWordCount(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableWordCount(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *AnalysisEventUpdateOne) AddWordCount(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetSentenceCount sets the "sentence_count" field.
func (_u *AnalysisEventUpdateOne) SetSentenceCount(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetSentenceCount()
	_u.mutation.SetSentenceCount(v)
	return _u
}

// SetNillableSentenceCount sets the "sentence_count" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSentenceCount(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSentenceCount(*v)
	}
	return _u
}

// AddSentenceCount adds value to the "sentence_count" field.
func (_u *AnalysisEventUpdateOne) AddSentenceCount(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddSentenceCount(v)
	return _u
}

// SetLexicalDiversity sets the "lexical_diversity" field.
func (_u *AnalysisEventUpdateOne) SetLexicalDiversity(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetLexicalDiversity()
	_u.mutation.SetLexicalDiversity(v)
	return _u
}

// SetNillableLexicalDiversity sets the "lexical_diversity" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableLexicalDiversity(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetLexicalDiversity(*v)
	}
	return _u
}

// AddLexicalDiversity adds value to the "lexical_diversity" field.
func (_u *AnalysisEventUpdateOne) AddLexicalDiversity(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddLexicalDiversity(v)
	return _u
}

// SetClassifierName sets the "classifier_name" field.
func (_u *AnalysisEventUpdateOne) SetClassifierName(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetClassifierName(v)
	return _u
}

// SetNillableClassifierName sets the "classifier_name" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableClassifierName(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetClassifierName(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AnalysisEventUpdateOne) SetReasoning(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableReasoning(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *AnalysisEventUpdateOne) ClearReasoning() *AnalysisEventUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdateOne) check() error {
	if v, ok := _u.mutation.BatteryID(); ok {
		if err := analysisevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.battery_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := analysisevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClassifierName(); ok {
		if err := analysisevent.ClassifierNameValidator(v); err != nil {
			return &ValidationError{Name: "classifier_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.classifier_name": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
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
		_spec.SetField(analysisevent.FieldBatteryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(analysisevent.FieldRiskLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysisevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(analysisevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(analysisevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SentenceCount(); ok {
		_spec.SetField(analysisevent.FieldSentenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentenceCount(); ok {
		_spec.AddField(analysisevent.FieldSentenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LexicalDiversity(); ok {
		_spec.SetField(analysisevent.FieldLexicalDiversity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLexicalDiversity(); ok {
		_spec.AddField(analysisevent.FieldLexicalDiversity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ClassifierName(); ok {
		_spec.SetField(analysisevent.FieldClassifierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(analysisevent.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(analysisevent.FieldReasoning, field.TypeString)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
