// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/smartlearn/ent/predicate"
	"github.com/abhisek/smartlearn/ent/quizresultevent"
	"github.com/abhisek/smartlearn/ent/requestevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQuizResultEvent = "QuizResultEvent"
	TypeRequestEvent    = "RequestEvent"
)

// QuizResultEventMutation represents an operation that mutates the QuizResultEvent nodes in the graph.
type QuizResultEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	session_id        *string
	question_count    *int
	addquestion_count *int
	correct_count     *int
	addcorrect_count  *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*QuizResultEvent, error)
	predicates        []predicate.QuizResultEvent
}

var _ ent.Mutation = (*QuizResultEventMutation)(nil)

// quizresulteventOption allows management of the mutation configuration using functional options.
type quizresulteventOption func(*QuizResultEventMutation)

// newQuizResultEventMutation creates new mutation for the QuizResultEvent entity.
func newQuizResultEventMutation(c config, op Op, opts ...quizresulteventOption) *QuizResultEventMutation {
	m := &QuizResultEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizResultEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizResultEventID sets the ID field of the mutation.
func withQuizResultEventID(id int) quizresulteventOption {
	return func(m *QuizResultEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizResultEvent
		)
		m.oldValue = func(ctx context.Context) (*QuizResultEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizResultEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizResultEvent sets the old QuizResultEvent of the mutation.
func withQuizResultEvent(node *QuizResultEvent) quizresulteventOption {
	return func(m *QuizResultEventMutation) {
		m.oldValue = func(context.Context) (*QuizResultEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizResultEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizResultEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizResultEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizResultEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizResultEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizResultEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizResultEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizResultEvent entity.
// If the QuizResultEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *QuizResultEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizResultEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizResultEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizResultEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizResultEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizResultEvent entity.
// If the QuizResultEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *QuizResultEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuizResultEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuizResultEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuizResultEvent entity.
// If the QuizResultEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuizResultEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionCount sets the "question_count" field.
func (m *QuizResultEventMutation) SetQuestionCount(i int) {
	m.question_count = &i
	m.addquestion_count = nil
}

// QuestionCount returns the value of the "question_count" field in the mutation.
func (m *QuizResultEventMutation) QuestionCount() (r int, exists bool) {
	v := m.question_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionCount returns the old "question_count" field's value of the QuizResultEvent entity.
// If the QuizResultEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultEventMutation) OldQuestionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionCount: %w", err)
	}
	return oldValue.QuestionCount, nil
}

// AddQuestionCount adds i to the "question_count" field.
func (m *QuizResultEventMutation) AddQuestionCount(i int) {
	if m.addquestion_count != nil {
		*m.addquestion_count += i
	} else {
		m.addquestion_count = &i
	}
}

// AddedQuestionCount returns the value that was added to the "question_count" field in this mutation.
func (m *QuizResultEventMutation) AddedQuestionCount() (r int, exists bool) {
	v := m.addquestion_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionCount resets all changes to the "question_count" field.
func (m *QuizResultEventMutation) ResetQuestionCount() {
	m.question_count = nil
	m.addquestion_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *QuizResultEventMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *QuizResultEventMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the QuizResultEvent entity.
// If the QuizResultEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizResultEventMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *QuizResultEventMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *QuizResultEventMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *QuizResultEventMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// Where appends a list predicates to the QuizResultEventMutation builder.
func (m *QuizResultEventMutation) Where(ps ...predicate.QuizResultEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizResultEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizResultEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizResultEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizResultEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizResultEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizResultEvent).
func (m *QuizResultEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizResultEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.sequence != nil {
		fields = append(fields, quizresultevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizresultevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, quizresultevent.FieldSessionID)
	}
	if m.question_count != nil {
		fields = append(fields, quizresultevent.FieldQuestionCount)
	}
	if m.correct_count != nil {
		fields = append(fields, quizresultevent.FieldCorrectCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizResultEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizresultevent.FieldSequence:
		return m.Sequence()
	case quizresultevent.FieldTimestamp:
		return m.Timestamp()
	case quizresultevent.FieldSessionID:
		return m.SessionID()
	case quizresultevent.FieldQuestionCount:
		return m.QuestionCount()
	case quizresultevent.FieldCorrectCount:
		return m.CorrectCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizResultEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizresultevent.FieldSequence:
		return m.OldSequence(ctx)
	case quizresultevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizresultevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case quizresultevent.FieldQuestionCount:
		return m.OldQuestionCount(ctx)
	case quizresultevent.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	}
	return nil, fmt.Errorf("unknown QuizResultEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizresultevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizresultevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizresultevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case quizresultevent.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionCount(v)
		return nil
	case quizresultevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResultEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizResultEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizresultevent.FieldSequence)
	}
	if m.addquestion_count != nil {
		fields = append(fields, quizresultevent.FieldQuestionCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, quizresultevent.FieldCorrectCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizResultEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizresultevent.FieldSequence:
		return m.AddedSequence()
	case quizresultevent.FieldQuestionCount:
		return m.AddedQuestionCount()
	case quizresultevent.FieldCorrectCount:
		return m.AddedCorrectCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizResultEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizresultevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case quizresultevent.FieldQuestionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionCount(v)
		return nil
	case quizresultevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	}
	return fmt.Errorf("unknown QuizResultEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizResultEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizResultEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizResultEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizResultEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizResultEventMutation) ResetField(name string) error {
	switch name {
	case quizresultevent.FieldSequence:
		m.ResetSequence()
		return nil
	case quizresultevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizresultevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case quizresultevent.FieldQuestionCount:
		m.ResetQuestionCount()
		return nil
	case quizresultevent.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	}
	return fmt.Errorf("unknown QuizResultEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizResultEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizResultEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizResultEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizResultEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizResultEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizResultEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizResultEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizResultEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizResultEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizResultEvent edge %s", name)
}

// RequestEventMutation represents an operation that mutates the RequestEvent nodes in the graph.
type RequestEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	kind           *string
	success        *bool
	http_status    *int
	addhttp_status *int
	latency_ms     *int64
	addlatency_ms  *int64
	chars_in       *int
	addchars_in    *int
	size_out       *int
	addsize_out    *int
	error_message  *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*RequestEvent, error)
	predicates     []predicate.RequestEvent
}

var _ ent.Mutation = (*RequestEventMutation)(nil)

// requesteventOption allows management of the mutation configuration using functional options.
type requesteventOption func(*RequestEventMutation)

// newRequestEventMutation creates new mutation for the RequestEvent entity.
func newRequestEventMutation(c config, op Op, opts ...requesteventOption) *RequestEventMutation {
	m := &RequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestEventID sets the ID field of the mutation.
func withRequestEventID(id int) requesteventOption {
	return func(m *RequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RequestEvent
		)
		m.oldValue = func(ctx context.Context) (*RequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequestEvent sets the old RequestEvent of the mutation.
func withRequestEvent(node *RequestEvent) requesteventOption {
	return func(m *RequestEventMutation) {
		m.oldValue = func(context.Context) (*RequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *RequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *RequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetKind sets the "kind" field.
func (m *RequestEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *RequestEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *RequestEventMutation) ResetKind() {
	m.kind = nil
}

// SetSuccess sets the "success" field.
func (m *RequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *RequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *RequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetHTTPStatus sets the "http_status" field.
func (m *RequestEventMutation) SetHTTPStatus(i int) {
	m.http_status = &i
	m.addhttp_status = nil
}

// HTTPStatus returns the value of the "http_status" field in the mutation.
func (m *RequestEventMutation) HTTPStatus() (r int, exists bool) {
	v := m.http_status
	if v == nil {
		return
	}
	return *v, true
}

// OldHTTPStatus returns the old "http_status" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldHTTPStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTTPStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTTPStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTTPStatus: %w", err)
	}
	return oldValue.HTTPStatus, nil
}

// AddHTTPStatus adds i to the "http_status" field.
func (m *RequestEventMutation) AddHTTPStatus(i int) {
	if m.addhttp_status != nil {
		*m.addhttp_status += i
	} else {
		m.addhttp_status = &i
	}
}

// AddedHTTPStatus returns the value that was added to the "http_status" field in this mutation.
func (m *RequestEventMutation) AddedHTTPStatus() (r int, exists bool) {
	v := m.addhttp_status
	if v == nil {
		return
	}
	return *v, true
}

// ResetHTTPStatus resets all changes to the "http_status" field.
func (m *RequestEventMutation) ResetHTTPStatus() {
	m.http_status = nil
	m.addhttp_status = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *RequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *RequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *RequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *RequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *RequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetCharsIn sets the "chars_in" field.
func (m *RequestEventMutation) SetCharsIn(i int) {
	m.chars_in = &i
	m.addchars_in = nil
}

// CharsIn returns the value of the "chars_in" field in the mutation.
func (m *RequestEventMutation) CharsIn() (r int, exists bool) {
	v := m.chars_in
	if v == nil {
		return
	}
	return *v, true
}

// OldCharsIn returns the old "chars_in" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldCharsIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharsIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharsIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharsIn: %w", err)
	}
	return oldValue.CharsIn, nil
}

// AddCharsIn adds i to the "chars_in" field.
func (m *RequestEventMutation) AddCharsIn(i int) {
	if m.addchars_in != nil {
		*m.addchars_in += i
	} else {
		m.addchars_in = &i
	}
}

// AddedCharsIn returns the value that was added to the "chars_in" field in this mutation.
func (m *RequestEventMutation) AddedCharsIn() (r int, exists bool) {
	v := m.addchars_in
	if v == nil {
		return
	}
	return *v, true
}

// ResetCharsIn resets all changes to the "chars_in" field.
func (m *RequestEventMutation) ResetCharsIn() {
	m.chars_in = nil
	m.addchars_in = nil
}

// SetSizeOut sets the "size_out" field.
func (m *RequestEventMutation) SetSizeOut(i int) {
	m.size_out = &i
	m.addsize_out = nil
}

// SizeOut returns the value of the "size_out" field in the mutation.
func (m *RequestEventMutation) SizeOut() (r int, exists bool) {
	v := m.size_out
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeOut returns the old "size_out" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldSizeOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeOut: %w", err)
	}
	return oldValue.SizeOut, nil
}

// AddSizeOut adds i to the "size_out" field.
func (m *RequestEventMutation) AddSizeOut(i int) {
	if m.addsize_out != nil {
		*m.addsize_out += i
	} else {
		m.addsize_out = &i
	}
}

// AddedSizeOut returns the value that was added to the "size_out" field in this mutation.
func (m *RequestEventMutation) AddedSizeOut() (r int, exists bool) {
	v := m.addsize_out
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeOut resets all changes to the "size_out" field.
func (m *RequestEventMutation) ResetSizeOut() {
	m.size_out = nil
	m.addsize_out = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *RequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the RequestEvent entity.
// If the RequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the RequestEventMutation builder.
func (m *RequestEventMutation) Where(ps ...predicate.RequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RequestEvent).
func (m *RequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, requestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, requestevent.FieldTimestamp)
	}
	if m.kind != nil {
		fields = append(fields, requestevent.FieldKind)
	}
	if m.success != nil {
		fields = append(fields, requestevent.FieldSuccess)
	}
	if m.http_status != nil {
		fields = append(fields, requestevent.FieldHTTPStatus)
	}
	if m.latency_ms != nil {
		fields = append(fields, requestevent.FieldLatencyMs)
	}
	if m.chars_in != nil {
		fields = append(fields, requestevent.FieldCharsIn)
	}
	if m.size_out != nil {
		fields = append(fields, requestevent.FieldSizeOut)
	}
	if m.error_message != nil {
		fields = append(fields, requestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case requestevent.FieldSequence:
		return m.Sequence()
	case requestevent.FieldTimestamp:
		return m.Timestamp()
	case requestevent.FieldKind:
		return m.Kind()
	case requestevent.FieldSuccess:
		return m.Success()
	case requestevent.FieldHTTPStatus:
		return m.HTTPStatus()
	case requestevent.FieldLatencyMs:
		return m.LatencyMs()
	case requestevent.FieldCharsIn:
		return m.CharsIn()
	case requestevent.FieldSizeOut:
		return m.SizeOut()
	case requestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case requestevent.FieldSequence:
		return m.OldSequence(ctx)
	case requestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case requestevent.FieldKind:
		return m.OldKind(ctx)
	case requestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case requestevent.FieldHTTPStatus:
		return m.OldHTTPStatus(ctx)
	case requestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case requestevent.FieldCharsIn:
		return m.OldCharsIn(ctx)
	case requestevent.FieldSizeOut:
		return m.OldSizeOut(ctx)
	case requestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown RequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case requestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case requestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case requestevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case requestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case requestevent.FieldHTTPStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTTPStatus(v)
		return nil
	case requestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case requestevent.FieldCharsIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharsIn(v)
		return nil
	case requestevent.FieldSizeOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeOut(v)
		return nil
	case requestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown RequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, requestevent.FieldSequence)
	}
	if m.addhttp_status != nil {
		fields = append(fields, requestevent.FieldHTTPStatus)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, requestevent.FieldLatencyMs)
	}
	if m.addchars_in != nil {
		fields = append(fields, requestevent.FieldCharsIn)
	}
	if m.addsize_out != nil {
		fields = append(fields, requestevent.FieldSizeOut)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case requestevent.FieldSequence:
		return m.AddedSequence()
	case requestevent.FieldHTTPStatus:
		return m.AddedHTTPStatus()
	case requestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	case requestevent.FieldCharsIn:
		return m.AddedCharsIn()
	case requestevent.FieldSizeOut:
		return m.AddedSizeOut()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case requestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case requestevent.FieldHTTPStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHTTPStatus(v)
		return nil
	case requestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case requestevent.FieldCharsIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharsIn(v)
		return nil
	case requestevent.FieldSizeOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeOut(v)
		return nil
	}
	return fmt.Errorf("unknown RequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestEventMutation) ResetField(name string) error {
	switch name {
	case requestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case requestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case requestevent.FieldKind:
		m.ResetKind()
		return nil
	case requestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case requestevent.FieldHTTPStatus:
		m.ResetHTTPStatus()
		return nil
	case requestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case requestevent.FieldCharsIn:
		m.ResetCharsIn()
		return nil
	case requestevent.FieldSizeOut:
		m.ResetSizeOut()
		return nil
	case requestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown RequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RequestEvent edge %s", name)
}
