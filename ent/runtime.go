// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/smartlearn/ent/quizresultevent"
	"github.com/abhisek/smartlearn/ent/requestevent"
	"github.com/abhisek/smartlearn/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	quizresulteventMixin := schema.QuizResultEvent{}.Mixin()
	quizresulteventMixinFields0 := quizresulteventMixin[0].Fields()
	_ = quizresulteventMixinFields0
	quizresulteventFields := schema.QuizResultEvent{}.Fields()
	_ = quizresulteventFields
	// quizresulteventDescTimestamp is the schema descriptor for timestamp field.
	quizresulteventDescTimestamp := quizresulteventMixinFields0[1].Descriptor()
	// quizresultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresultevent.DefaultTimestamp = quizresulteventDescTimestamp.Default.(func() time.Time)
	requesteventMixin := schema.RequestEvent{}.Mixin()
	requesteventMixinFields0 := requesteventMixin[0].Fields()
	_ = requesteventMixinFields0
	requesteventFields := schema.RequestEvent{}.Fields()
	_ = requesteventFields
	// requesteventDescTimestamp is the schema descriptor for timestamp field.
	requesteventDescTimestamp := requesteventMixinFields0[1].Descriptor()
	// requestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	requestevent.DefaultTimestamp = requesteventDescTimestamp.Default.(func() time.Time)
	// requesteventDescHTTPStatus is the schema descriptor for http_status field.
	requesteventDescHTTPStatus := requesteventFields[2].Descriptor()
	// requestevent.DefaultHTTPStatus holds the default value on creation for the http_status field.
	requestevent.DefaultHTTPStatus = requesteventDescHTTPStatus.Default.(int)
	// requesteventDescLatencyMs is the schema descriptor for latency_ms field.
	requesteventDescLatencyMs := requesteventFields[3].Descriptor()
	// requestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	requestevent.DefaultLatencyMs = requesteventDescLatencyMs.Default.(int64)
	// requesteventDescCharsIn is the schema descriptor for chars_in field.
	requesteventDescCharsIn := requesteventFields[4].Descriptor()
	// requestevent.DefaultCharsIn holds the default value on creation for the chars_in field.
	requestevent.DefaultCharsIn = requesteventDescCharsIn.Default.(int)
	// requesteventDescSizeOut is the schema descriptor for size_out field.
	requesteventDescSizeOut := requesteventFields[5].Descriptor()
	// requestevent.DefaultSizeOut holds the default value on creation for the size_out field.
	requestevent.DefaultSizeOut = requesteventDescSizeOut.Default.(int)
	// requesteventDescErrorMessage is the schema descriptor for error_message field.
	requesteventDescErrorMessage := requesteventFields[6].Descriptor()
	// requestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	requestevent.DefaultErrorMessage = requesteventDescErrorMessage.Default.(string)
}
