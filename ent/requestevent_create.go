// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/smartlearn/ent/requestevent"
)

// RequestEventCreate is the builder for creating a RequestEvent entity.
type RequestEventCreate struct {
	config
	mutation *RequestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RequestEventCreate) SetSequence(v int64) *RequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RequestEventCreate) SetTimestamp(v time.Time) *RequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableTimestamp(v *time.Time) *RequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *RequestEventCreate) SetKind(v string) *RequestEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *RequestEventCreate) SetSuccess(v bool) *RequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetHTTPStatus sets the "http_status" field.
func (_c *RequestEventCreate) SetHTTPStatus(v int) *RequestEventCreate {
	_c.mutation.SetHTTPStatus(v)
	return _c
}

// SetNillableHTTPStatus sets the "http_status" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableHTTPStatus(v *int) *RequestEventCreate {
	if v != nil {
		_c.SetHTTPStatus(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *RequestEventCreate) SetLatencyMs(v int64) *RequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableLatencyMs(v *int64) *RequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetCharsIn sets the "chars_in" field.
func (_c *RequestEventCreate) SetCharsIn(v int) *RequestEventCreate {
	_c.mutation.SetCharsIn(v)
	return _c
}

// SetNillableCharsIn sets the "chars_in" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableCharsIn(v *int) *RequestEventCreate {
	if v != nil {
		_c.SetCharsIn(*v)
	}
	return _c
}

// SetSizeOut sets the "size_out" field.
func (_c *RequestEventCreate) SetSizeOut(v int) *RequestEventCreate {
	_c.mutation.SetSizeOut(v)
	return _c
}

// SetNillableSizeOut sets the "size_out" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableSizeOut(v *int) *RequestEventCreate {
	if v != nil {
		_c.SetSizeOut(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RequestEventCreate) SetErrorMessage(v string) *RequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RequestEventCreate) SetNillableErrorMessage(v *string) *RequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the RequestEventMutation object of the builder.
func (_c *RequestEventCreate) Mutation() *RequestEventMutation {
	return _c.mutation
}

// Save creates the RequestEvent in the database.
func (_c *RequestEventCreate) Save(ctx context.Context) (*RequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestEventCreate) SaveX(ctx context.Context) *RequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := requestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.HTTPStatus(); !ok {
		v := requestevent.DefaultHTTPStatus
		_c.mutation.SetHTTPStatus(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := requestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.CharsIn(); !ok {
		v := requestevent.DefaultCharsIn
		_c.mutation.SetCharsIn(v)
	}
	if _, ok := _c.mutation.SizeOut(); !ok {
		v := requestevent.DefaultSizeOut
		_c.mutation.SetSizeOut(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := requestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "RequestEvent.kind"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "RequestEvent.success"`)}
	}
	if _, ok := _c.mutation.HTTPStatus(); !ok {
		return &ValidationError{Name: "http_status", err: errors.New(`ent: missing required field "RequestEvent.http_status"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "RequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.CharsIn(); !ok {
		return &ValidationError{Name: "chars_in", err: errors.New(`ent: missing required field "RequestEvent.chars_in"`)}
	}
	if _, ok := _c.mutation.SizeOut(); !ok {
		return &ValidationError{Name: "size_out", err: errors.New(`ent: missing required field "RequestEvent.size_out"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "RequestEvent.error_message"`)}
	}
	return nil
}

func (_c *RequestEventCreate) sqlSave(ctx context.Context) (*RequestEvent, error) {
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

func (_c *RequestEventCreate) createSpec() (*RequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestevent.Table, sqlgraph.NewFieldSpec(requestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(requestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(requestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(requestevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(requestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.HTTPStatus(); ok {
		_spec.SetField(requestevent.FieldHTTPStatus, field.TypeInt, value)
		_node.HTTPStatus = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(requestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.CharsIn(); ok {
		_spec.SetField(requestevent.FieldCharsIn, field.TypeInt, value)
		_node.CharsIn = value
	}
	if value, ok := _c.mutation.SizeOut(); ok {
		_spec.SetField(requestevent.FieldSizeOut, field.TypeInt, value)
		_node.SizeOut = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(requestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// RequestEventCreateBulk is the builder for creating many RequestEvent entities in bulk.
type RequestEventCreateBulk struct {
	config
	err      error
	builders []*RequestEventCreate
}

// Save creates the RequestEvent entities in the database.
func (_c *RequestEventCreateBulk) Save(ctx context.Context) ([]*RequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestEventMutation)
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
func (_c *RequestEventCreateBulk) SaveX(ctx context.Context) []*RequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
