// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/smartlearn/ent/predicate"
	"github.com/abhisek/smartlearn/ent/requestevent"
)

// RequestEventUpdate is the builder for updating RequestEvent entities.
type RequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *RequestEventMutation
}

// Where appends a list predicates to the RequestEventUpdate builder.
func (_u *RequestEventUpdate) Where(ps ...predicate.RequestEvent) *RequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *RequestEventUpdate) SetKind(v string) *RequestEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableKind(v *string) *RequestEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RequestEventUpdate) SetSuccess(v bool) *RequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableSuccess(v *bool) *RequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetHTTPStatus sets the "http_status" field.
func (_u *RequestEventUpdate) SetHTTPStatus(v int) *RequestEventUpdate {
	_u.mutation.ResetHTTPStatus()
	_u.mutation.SetHTTPStatus(v)
	return _u
}

// SetNillableHTTPStatus sets the "http_status" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableHTTPStatus(v *int) *RequestEventUpdate {
	if v != nil {
		_u.SetHTTPStatus(*v)
	}
	return _u
}

// AddHTTPStatus adds value to the "http_status" field.
func (_u *RequestEventUpdate) AddHTTPStatus(v int) *RequestEventUpdate {
	_u.mutation.AddHTTPStatus(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *RequestEventUpdate) SetLatencyMs(v int64) *RequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableLatencyMs(v *int64) *RequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *RequestEventUpdate) AddLatencyMs(v int64) *RequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetCharsIn sets the "chars_in" field.
func (_u *RequestEventUpdate) SetCharsIn(v int) *RequestEventUpdate {
	_u.mutation.ResetCharsIn()
	_u.mutation.SetCharsIn(v)
	return _u
}

// SetNillableCharsIn sets the "chars_in" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableCharsIn(v *int) *RequestEventUpdate {
	if v != nil {
		_u.SetCharsIn(*v)
	}
	return _u
}

// AddCharsIn adds value to the "chars_in" field.
func (_u *RequestEventUpdate) AddCharsIn(v int) *RequestEventUpdate {
	_u.mutation.AddCharsIn(v)
	return _u
}

// SetSizeOut sets the "size_out" field.
func (_u *RequestEventUpdate) SetSizeOut(v int) *RequestEventUpdate {
	_u.mutation.ResetSizeOut()
	_u.mutation.SetSizeOut(v)
	return _u
}

// SetNillableSizeOut sets the "size_out" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableSizeOut(v *int) *RequestEventUpdate {
	if v != nil {
		_u.SetSizeOut(*v)
	}
	return _u
}

// AddSizeOut adds value to the "size_out" field.
func (_u *RequestEventUpdate) AddSizeOut(v int) *RequestEventUpdate {
	_u.mutation.AddSizeOut(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestEventUpdate) SetErrorMessage(v string) *RequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestEventUpdate) SetNillableErrorMessage(v *string) *RequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the RequestEventMutation object of the builder.
func (_u *RequestEventUpdate) Mutation() *RequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(requestevent.Table, requestevent.Columns, sqlgraph.NewFieldSpec(requestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(requestevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(requestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HTTPStatus(); ok {
		_spec.SetField(requestevent.FieldHTTPStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHTTPStatus(); ok {
		_spec.AddField(requestevent.FieldHTTPStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(requestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(requestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CharsIn(); ok {
		_spec.SetField(requestevent.FieldCharsIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharsIn(); ok {
		_spec.AddField(requestevent.FieldCharsIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeOut(); ok {
		_spec.SetField(requestevent.FieldSizeOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeOut(); ok {
		_spec.AddField(requestevent.FieldSizeOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(requestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestEventUpdateOne is the builder for updating a single RequestEvent entity.
type RequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestEventMutation
}

// SetKind sets the "kind" field.
func (_u *RequestEventUpdateOne) SetKind(v string) *RequestEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableKind(v *string) *RequestEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RequestEventUpdateOne) SetSuccess(v bool) *RequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableSuccess(v *bool) *RequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetHTTPStatus sets the "http_status" field.
func (_u *RequestEventUpdateOne) SetHTTPStatus(v int) *RequestEventUpdateOne {
	_u.mutation.ResetHTTPStatus()
	_u.mutation.SetHTTPStatus(v)
	return _u
}

// SetNillableHTTPStatus sets the "http_status" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableHTTPStatus(v *int) *RequestEventUpdateOne {
	if v != nil {
		_u.SetHTTPStatus(*v)
	}
	return _u
}

// AddHTTPStatus adds value to the "http_status" field.
func (_u *RequestEventUpdateOne) AddHTTPStatus(v int) *RequestEventUpdateOne {
	_u.mutation.AddHTTPStatus(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *RequestEventUpdateOne) SetLatencyMs(v int64) *RequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableLatencyMs(v *int64) *RequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *RequestEventUpdateOne) AddLatencyMs(v int64) *RequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetCharsIn sets the "chars_in" field.
func (_u *RequestEventUpdateOne) SetCharsIn(v int) *RequestEventUpdateOne {
	_u.mutation.ResetCharsIn()
	_u.mutation.SetCharsIn(v)
	return _u
}

// SetNillableCharsIn sets the "chars_in" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableCharsIn(v *int) *RequestEventUpdateOne {
	if v != nil {
		_u.SetCharsIn(*v)
	}
	return _u
}

// AddCharsIn adds value to the "chars_in" field.
func (_u *RequestEventUpdateOne) AddCharsIn(v int) *RequestEventUpdateOne {
	_u.mutation.AddCharsIn(v)
	return _u
}

// SetSizeOut sets the "size_out" field.
func (_u *RequestEventUpdateOne) SetSizeOut(v int) *RequestEventUpdateOne {
	_u.mutation.ResetSizeOut()
	_u.mutation.SetSizeOut(v)
	return _u
}

// SetNillableSizeOut sets the "size_out" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableSizeOut(v *int) *RequestEventUpdateOne {
	if v != nil {
		_u.SetSizeOut(*v)
	}
	return _u
}

// AddSizeOut adds value to the "size_out" field.
func (_u *RequestEventUpdateOne) AddSizeOut(v int) *RequestEventUpdateOne {
	_u.mutation.AddSizeOut(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RequestEventUpdateOne) SetErrorMessage(v string) *RequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RequestEventUpdateOne) SetNillableErrorMessage(v *string) *RequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the RequestEventMutation object of the builder.
func (_u *RequestEventUpdateOne) Mutation() *RequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RequestEventUpdate builder.
func (_u *RequestEventUpdateOne) Where(ps ...predicate.RequestEvent) *RequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestEventUpdateOne) Select(field string, fields ...string) *RequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestEvent entity.
func (_u *RequestEventUpdateOne) Save(ctx context.Context) (*RequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestEventUpdateOne) SaveX(ctx context.Context) *RequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RequestEventUpdateOne) sqlSave(ctx context.Context) (_node *RequestEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(requestevent.Table, requestevent.Columns, sqlgraph.NewFieldSpec(requestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestevent.FieldID)
		for _, f := range fields {
			if !requestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestevent.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(requestevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(requestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HTTPStatus(); ok {
		_spec.SetField(requestevent.FieldHTTPStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHTTPStatus(); ok {
		_spec.AddField(requestevent.FieldHTTPStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(requestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(requestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CharsIn(); ok {
		_spec.SetField(requestevent.FieldCharsIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharsIn(); ok {
		_spec.AddField(requestevent.FieldCharsIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeOut(); ok {
		_spec.SetField(requestevent.FieldSizeOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeOut(); ok {
		_spec.AddField(requestevent.FieldSizeOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(requestevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &RequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
