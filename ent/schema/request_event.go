package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestEvent records every backend API call for the local activity
// log: what was asked, whether it worked, and how long it took.
type RequestEvent struct {
	ent.Schema
}

func (RequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			Comment("Operation kind: summarize, translate, quiz, history"),
		field.Bool("success").
			Comment("Whether the request succeeded"),
		field.Int("http_status").
			Default(0).
			Comment("HTTP status of the response, 0 when none was received"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Int("chars_in").
			Default(0).
			Comment("Length of the submitted text"),
		field.Int("size_out").
			Default(0).
			Comment("Result size: characters for text results, item count otherwise"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (RequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("success"),
	}
}
