// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/neuroscreen/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetBatteryID sets the "battery_id" field.
func (_c *AnalysisEventCreate) SetBatteryID(v string) *AnalysisEventCreate {
	_c.mutation.SetBatteryID(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *AnalysisEventCreate) SetRiskLevel(v string) *AnalysisEventCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnalysisEventCreate) SetConfidence(v float64) *AnalysisEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *AnalysisEventCreate) SetWordCount(v int) *AnalysisEventCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableWordCount(v *int) *AnalysisEventCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetSentenceCount sets the "sentence_count" field.
func (_c *AnalysisEventCreate) SetSentenceCount(v int) *AnalysisEventCreate {
	_c.mutation.SetSentenceCount(v)
	return _c
}

// SetNillableSentenceCount sets the "sentence_count" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableSentenceCount(v *int) *AnalysisEventCreate {
	if v != nil {
		_c.SetSentenceCount(*v)
	}
	return _c
}

// SetLexicalDiversity sets the "lexical_diversity" field.
func (_c *AnalysisEventCreate) SetLexicalDiversity(v float64) *AnalysisEventCreate {
	_c.mutation.SetLexicalDiversity(v)
	return _c
}

// SetNillableLexicalDiversity sets the "lexical_diversity" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableLexicalDiversity(v *float64) *AnalysisEventCreate {
	if v != nil {
		_c.SetLexicalDiversity(*v)
	}
	return _c
}

// SetClassifierName sets the "classifier_name" field.
func (_c *AnalysisEventCreate) SetClassifierName(v string) *AnalysisEventCreate {
	_c.mutation.SetClassifierName(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AnalysisEventCreate) SetReasoning(v string) *AnalysisEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableReasoning(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		v := analysisevent.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.SentenceCount(); !ok {
		v := analysisevent.DefaultSentenceCount
		_c.mutation.SetSentenceCount(v)
	}
	if _, ok := _c.mutation.LexicalDiversity(); !ok {
		v := analysisevent.DefaultLexicalDiversity
		_c.mutation.SetLexicalDiversity(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := analysisevent.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.BatteryID(); !ok {
		return &ValidationError{Name: "battery_id", err: errors.New(`ent: missing required field "AnalysisEvent.battery_id"`)}
	}
	if v, ok := _c.mutation.BatteryID(); ok {
		if err := analysisevent.BatteryIDValidator(v); err != nil {
			return &ValidationError{Name: "battery_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.battery_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "AnalysisEvent.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := analysisevent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AnalysisEvent.confidence"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "AnalysisEvent.word_count"`)}
	}
	if _, ok := _c.mutation.SentenceCount(); !ok {
		return &ValidationError{Name: "sentence_count", err: errors.New(`ent: missing required field "AnalysisEvent.sentence_count"`)}
	}
	if _, ok := _c.mutation.LexicalDiversity(); !ok {
		return &ValidationError{Name: "lexical_diversity", err: errors.New(`ent: missing required field "AnalysisEvent.lexical_diversity"`)}
	}
	if _, ok := _c.mutation.ClassifierName(); !ok {
		return &ValidationError{Name: "classifier_name", err: errors.New(`ent: missing required field "AnalysisEvent.classifier_name"`)}
	}
	if v, ok := _c.mutation.ClassifierName(); ok {
		if err := analysisevent.ClassifierNameValidator(v); err != nil {
			return &ValidationError{Name: "classifier_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.classifier_name": %w`, err)}
		}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
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

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.BatteryID(); ok {
		_spec.SetField(analysisevent.FieldBatteryID, field.TypeString, value)
		_node.BatteryID = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(analysisevent.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(analysisevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(analysisevent.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.SentenceCount(); ok {
		_spec.SetField(analysisevent.FieldSentenceCount, field.TypeInt, value)
		_node.SentenceCount = value
	}
	if value, ok := _c.mutation.LexicalDiversity(); ok {
		_spec.SetField(analysisevent.FieldLexicalDiversity, field.TypeFloat64, value)
		_node.LexicalDiversity = value
	}
	if value, ok := _c.mutation.ClassifierName(); ok {
		_spec.SetField(analysisevent.FieldClassifierName, field.TypeString, value)
		_node.ClassifierName = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(analysisevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
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
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
