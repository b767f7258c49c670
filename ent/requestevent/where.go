// Code generated by ent, DO NOT EDIT.

package requestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/smartlearn/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldKind, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// HTTPStatus applies equality check predicate on the "http_status" field. It's identical to HTTPStatusEQ.
func HTTPStatus(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldHTTPStatus, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// CharsIn applies equality check predicate on the "chars_in" field. It's identical to CharsInEQ.
func CharsIn(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldCharsIn, v))
}

// SizeOut applies equality check predicate on the "size_out" field. It's identical to SizeOutEQ.
func SizeOut(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldSizeOut, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldContainsFold(FieldKind, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldSuccess, v))
}

// HTTPStatusEQ applies the EQ predicate on the "http_status" field.
func HTTPStatusEQ(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldHTTPStatus, v))
}

// HTTPStatusNEQ applies the NEQ predicate on the "http_status" field.
func HTTPStatusNEQ(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldHTTPStatus, v))
}

// HTTPStatusIn applies the In predicate on the "http_status" field.
func HTTPStatusIn(vs ...int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldHTTPStatus, vs...))
}

// HTTPStatusNotIn applies the NotIn predicate on the "http_status" field.
func HTTPStatusNotIn(vs ...int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldHTTPStatus, vs...))
}

// HTTPStatusGT applies the GT predicate on the "http_status" field.
func HTTPStatusGT(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldHTTPStatus, v))
}

// HTTPStatusGTE applies the GTE predicate on the "http_status" field.
func HTTPStatusGTE(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldHTTPStatus, v))
}

// HTTPStatusLT applies the LT predicate on the "http_status" field.
func HTTPStatusLT(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldHTTPStatus, v))
}

// HTTPStatusLTE applies the LTE predicate on the "http_status" field.
func HTTPStatusLTE(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldHTTPStatus, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// CharsInEQ applies the EQ predicate on the "chars_in" field.
func CharsInEQ(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldCharsIn, v))
}

// CharsInNEQ applies the NEQ predicate on the "chars_in" field.
func CharsInNEQ(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldCharsIn, v))
}

// CharsInIn applies the In predicate on the "chars_in" field.
func CharsInIn(vs ...int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldCharsIn, vs...))
}

// CharsInNotIn applies the NotIn predicate on the "chars_in" field.
func CharsInNotIn(vs ...int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldCharsIn, vs...))
}

// CharsInGT applies the GT predicate on the "chars_in" field.
func CharsInGT(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldCharsIn, v))
}

// CharsInGTE applies the GTE predicate on the "chars_in" field.
func CharsInGTE(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldCharsIn, v))
}

// CharsInLT applies the LT predicate on the "chars_in" field.
func CharsInLT(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldCharsIn, v))
}

// CharsInLTE applies the LTE predicate on the "chars_in" field.
func CharsInLTE(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldCharsIn, v))
}

// SizeOutEQ applies the EQ predicate on the "size_out" field.
func SizeOutEQ(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldSizeOut, v))
}

// SizeOutNEQ applies the NEQ predicate on the "size_out" field.
func SizeOutNEQ(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldSizeOut, v))
}

// SizeOutIn applies the In predicate on the "size_out" field.
func SizeOutIn(vs ...int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldSizeOut, vs...))
}

// SizeOutNotIn applies the NotIn predicate on the "size_out" field.
func SizeOutNotIn(vs ...int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldSizeOut, vs...))
}

// SizeOutGT applies the GT predicate on the "size_out" field.
func SizeOutGT(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldSizeOut, v))
}

// SizeOutGTE applies the GTE predicate on the "size_out" field.
func SizeOutGTE(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldSizeOut, v))
}

// SizeOutLT applies the LT predicate on the "size_out" field.
func SizeOutLT(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldSizeOut, v))
}

// SizeOutLTE applies the LTE predicate on the "size_out" field.
func SizeOutLTE(v int) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldSizeOut, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.RequestEvent {
	return predicate.RequestEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RequestEvent) predicate.RequestEvent {
	return predicate.RequestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RequestEvent) predicate.RequestEvent {
	return predicate.RequestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RequestEvent) predicate.RequestEvent {
	return predicate.RequestEvent(sql.NotPredicates(p))
}
