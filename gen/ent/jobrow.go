// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// JobRow is the model entity for the JobRow schema.
type JobRow struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// Symbol holds the value of the "symbol" field.
	Symbol string `json:"symbol,omitempty"`
	// Period holds the value of the "period" field.
	Period string `json:"period,omitempty"`
	// Ratios holds the value of the "ratios" field.
	Ratios json.RawMessage `json:"ratios,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobRowQuery when eager-loading is set.
	Edges        JobRowEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobRowEdges holds the relations/edges for other nodes in the graph.
type JobRowEdges struct {
	// Job holds the value of the job edge.
	Job *ScoreJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobRowEdges) JobOrErr() (*ScoreJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scorejob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobRow) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobrow.FieldRatios:
			values[i] = new([]byte)
		case jobrow.FieldRowIndex:
			values[i] = new(sql.NullInt64)
		case jobrow.FieldSymbol, jobrow.FieldPeriod:
			values[i] = new(sql.NullString)
		case jobrow.FieldID, jobrow.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobRow fields.
func (_m *JobRow) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobrow.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobrow.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case jobrow.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case jobrow.FieldSymbol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field symbol", values[i])
			} else if value.Valid {
				_m.Symbol = value.String
			}
		case jobrow.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case jobrow.FieldRatios:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ratios", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Ratios); err != nil {
					return fmt.Errorf("unmarshal field ratios: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobRow.
// This includes values selected through modifiers, order, etc.
func (_m *JobRow) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobRow entity.
func (_m *JobRow) QueryJob() *ScoreJobQuery {
	return NewJobRowClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobRow.
// Note that you need to call JobRow.Unwrap() before calling this method if this JobRow
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobRow) Update() *JobRowUpdateOne {
	return NewJobRowClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobRow entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobRow) Unwrap() *JobRow {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobRow is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobRow) String() string {
	var builder strings.Builder
	builder.WriteString("JobRow(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	builder.WriteString("symbol=")
	builder.WriteString(_m.Symbol)
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	builder.WriteString("ratios=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ratios))
	builder.WriteByte(')')
	return builder.String()
}

// JobRows is a parsable slice of JobRow.
type JobRows []*JobRow
