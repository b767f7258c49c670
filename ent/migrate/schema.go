// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QuizResultEventsColumns holds the columns for the "quiz_result_events" table.
	QuizResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
	}
	// QuizResultEventsTable holds the schema information for the "quiz_result_events" table.
	QuizResultEventsTable = &schema.Table{
		Name:       "quiz_result_events",
		Columns:    QuizResultEventsColumns,
		PrimaryKey: []*schema.Column{QuizResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[1]},
			},
			{
				Name:    "quizresultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[2]},
			},
			{
				Name:    "quizresultevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[3]},
			},
		},
	}
	// RequestEventsColumns holds the columns for the "request_events" table.
	RequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "http_status", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "chars_in", Type: field.TypeInt, Default: 0},
		{Name: "size_out", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// RequestEventsTable holds the schema information for the "request_events" table.
	RequestEventsTable = &schema.Table{
		Name:       "request_events",
		Columns:    RequestEventsColumns,
		PrimaryKey: []*schema.Column{RequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[1]},
			},
			{
				Name:    "requestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[2]},
			},
			{
				Name:    "requestevent_kind",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[3]},
			},
			{
				Name:    "requestevent_success",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuizResultEventsTable,
		RequestEventsTable,
	}
)

func init() {
}
