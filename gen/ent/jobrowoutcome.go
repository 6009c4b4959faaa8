// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// JobRowOutcome is the model entity for the JobRowOutcome schema.
type JobRowOutcome struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// Ok holds the value of the "ok" field.
	Ok bool `json:"ok,omitempty"`
	// Symbol holds the value of the "symbol" field.
	Symbol string `json:"symbol,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobRowOutcomeQuery when eager-loading is set.
	Edges        JobRowOutcomeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobRowOutcomeEdges holds the relations/edges for other nodes in the graph.
type JobRowOutcomeEdges struct {
	// Job holds the value of the job edge.
	Job *ScoreJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobRowOutcomeEdges) JobOrErr() (*ScoreJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scorejob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobRowOutcome) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobrowoutcome.FieldOk:
			values[i] = new(sql.NullBool)
		case jobrowoutcome.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case jobrowoutcome.FieldSymbol, jobrowoutcome.FieldMessage:
			values[i] = new(sql.NullString)
		case jobrowoutcome.FieldID, jobrowoutcome.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobRowOutcome fields.
func (_m *JobRowOutcome) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobrowoutcome.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobrowoutcome.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case jobrowoutcome.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case jobrowoutcome.FieldOk:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ok", values[i])
			} else if value.Valid {
				_m.Ok = value.Bool
			}
		case jobrowoutcome.FieldSymbol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field symbol", values[i])
			} else if value.Valid {
				_m.Symbol = value.String
			}
		case jobrowoutcome.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobRowOutcome.
// This includes values selected through modifiers, order, etc.
func (_m *JobRowOutcome) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobRowOutcome entity.
func (_m *JobRowOutcome) QueryJob() *ScoreJobQuery {
	return NewJobRowOutcomeClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobRowOutcome.
// Note that you need to call JobRowOutcome.Unwrap() before calling this method if this JobRowOutcome
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobRowOutcome) Update() *JobRowOutcomeUpdateOne {
	return NewJobRowOutcomeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobRowOutcome entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobRowOutcome) Unwrap() *JobRowOutcome {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobRowOutcome is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobRowOutcome) String() string {
	var builder strings.Builder
	builder.WriteString("JobRowOutcome(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	builder.WriteString("ok=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ok))
	builder.WriteString(", ")
	builder.WriteString("symbol=")
	builder.WriteString(_m.Symbol)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteByte(')')
	return builder.String()
}

// JobRowOutcomes is a parsable slice of JobRowOutcome.
type JobRowOutcomes []*JobRowOutcome
