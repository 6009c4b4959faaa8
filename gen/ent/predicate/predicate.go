// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// JobRow is the predicate function for jobrow builders.
type JobRow func(*sql.Selector)

// JobRowOutcome is the predicate function for jobrowoutcome builders.
type JobRowOutcome func(*sql.Selector)

// Prediction is the predicate function for prediction builders.
type Prediction func(*sql.Selector)

// ScoreJob is the predicate function for scorejob builders.
type ScoreJob func(*sql.Selector)
