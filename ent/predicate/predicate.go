// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// QuizResultEvent is the predicate function for quizresultevent builders.
type QuizResultEvent func(*sql.Selector)

// RequestEvent is the predicate function for requestevent builders.
type RequestEvent func(*sql.Selector)
