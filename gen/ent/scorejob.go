// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// ScoreJob is the model entity for the ScoreJob schema.
type ScoreJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// Lane holds the value of the "lane" field.
	Lane *string `json:"lane,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// TotalRows holds the value of the "total_rows" field.
	TotalRows int `json:"total_rows,omitempty"`
	// ProcessedRows holds the value of the "processed_rows" field.
	ProcessedRows int `json:"processed_rows,omitempty"`
	// SuccessfulRows holds the value of the "successful_rows" field.
	SuccessfulRows int `json:"successful_rows,omitempty"`
	// FailedRows holds the value of the "failed_rows" field.
	FailedRows int `json:"failed_rows,omitempty"`
	// FailReason holds the value of the "fail_reason" field.
	FailReason *string `json:"fail_reason,omitempty"`
	// CancelRequested holds the value of the "cancel_requested" field.
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// OwnerUserID holds the value of the "owner_user_id" field.
	OwnerUserID uuid.UUID `json:"owner_user_id,omitempty"`
	// OwnerOrgID holds the value of the "owner_org_id" field.
	OwnerOrgID *uuid.UUID `json:"owner_org_id,omitempty"`
	// OwnerRole holds the value of the "owner_role" field.
	OwnerRole string `json:"owner_role,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// LastProgressAt holds the value of the "last_progress_at" field.
	LastProgressAt *time.Time `json:"last_progress_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScoreJobQuery when eager-loading is set.
	Edges        ScoreJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScoreJobEdges holds the relations/edges for other nodes in the graph.
type ScoreJobEdges struct {
	// Rows holds the value of the rows edge.
	Rows []*JobRow `json:"rows,omitempty"`
	// Outcomes holds the value of the outcomes edge.
	Outcomes []*JobRowOutcome `json:"outcomes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RowsOrErr returns the Rows value or an error if the edge
// was not loaded in eager-loading.
func (e ScoreJobEdges) RowsOrErr() ([]*JobRow, error) {
	if e.loadedTypes[0] {
		return e.Rows, nil
	}
	return nil, &NotLoadedError{edge: "rows"}
}

// OutcomesOrErr returns the Outcomes value or an error if the edge
// was not loaded in eager-loading.
func (e ScoreJobEdges) OutcomesOrErr() ([]*JobRowOutcome, error) {
	if e.loadedTypes[1] {
		return e.Outcomes, nil
	}
	return nil, &NotLoadedError{edge: "outcomes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoreJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scorejob.FieldOwnerOrgID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case scorejob.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case scorejob.FieldTotalRows, scorejob.FieldProcessedRows, scorejob.FieldSuccessfulRows, scorejob.FieldFailedRows:
			values[i] = new(sql.NullInt64)
		case scorejob.FieldKind, scorejob.FieldFileName, scorejob.FieldLane, scorejob.FieldState, scorejob.FieldFailReason, scorejob.FieldOwnerRole:
			values[i] = new(sql.NullString)
		case scorejob.FieldSubmittedAt, scorejob.FieldStartedAt, scorejob.FieldFinishedAt, scorejob.FieldLastProgressAt:
			values[i] = new(sql.NullTime)
		case scorejob.FieldID, scorejob.FieldOwnerUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoreJob fields.
func (_m *ScoreJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scorejob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scorejob.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case scorejob.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case scorejob.FieldLane:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lane", values[i])
			} else if value.Valid {
				_m.Lane = new(string)
				*_m.Lane = value.String
			}
		case scorejob.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case scorejob.FieldTotalRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_rows", values[i])
			} else if value.Valid {
				_m.TotalRows = int(value.Int64)
			}
		case scorejob.FieldProcessedRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_rows", values[i])
			} else if value.Valid {
				_m.ProcessedRows = int(value.Int64)
			}
		case scorejob.FieldSuccessfulRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successful_rows", values[i])
			} else if value.Valid {
				_m.SuccessfulRows = int(value.Int64)
			}
		case scorejob.FieldFailedRows:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_rows", values[i])
			} else if value.Valid {
				_m.FailedRows = int(value.Int64)
			}
		case scorejob.FieldFailReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fail_reason", values[i])
			} else if value.Valid {
				_m.FailReason = new(string)
				*_m.FailReason = value.String
			}
		case scorejob.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case scorejob.FieldOwnerUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_user_id", values[i])
			} else if value != nil {
				_m.OwnerUserID = *value
			}
		case scorejob.FieldOwnerOrgID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field owner_org_id", values[i])
			} else if value.Valid {
				_m.OwnerOrgID = new(uuid.UUID)
				*_m.OwnerOrgID = *value.S.(*uuid.UUID)
			}
		case scorejob.FieldOwnerRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_role", values[i])
			} else if value.Valid {
				_m.OwnerRole = value.String
			}
		case scorejob.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = value.Time
			}
		case scorejob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case scorejob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case scorejob.FieldLastProgressAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_progress_at", values[i])
			} else if value.Valid {
				_m.LastProgressAt = new(time.Time)
				*_m.LastProgressAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoreJob.
// This includes values selected through modifiers, order, etc.
func (_m *ScoreJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRows queries the "rows" edge of the ScoreJob entity.
func (_m *ScoreJob) QueryRows() *JobRowQuery {
	return NewScoreJobClient(_m.config).QueryRows(_m)
}

// QueryOutcomes queries the "outcomes" edge of the ScoreJob entity.
func (_m *ScoreJob) QueryOutcomes() *JobRowOutcomeQuery {
	return NewScoreJobClient(_m.config).QueryOutcomes(_m)
}

// Update returns a builder for updating this ScoreJob.
// Note that you need to call ScoreJob.Unwrap() before calling this method if this ScoreJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoreJob) Update() *ScoreJobUpdateOne {
	return NewScoreJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoreJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoreJob) Unwrap() *ScoreJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoreJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoreJob) String() string {
	var builder strings.Builder
	builder.WriteString("ScoreJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	if v := _m.Lane; v != nil {
		builder.WriteString("lane=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("total_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalRows))
	builder.WriteString(", ")
	builder.WriteString("processed_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedRows))
	builder.WriteString(", ")
	builder.WriteString("successful_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessfulRows))
	builder.WriteString(", ")
	builder.WriteString("failed_rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedRows))
	builder.WriteString(", ")
	if v := _m.FailReason; v != nil {
		builder.WriteString("fail_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	builder.WriteString("owner_user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerUserID))
	builder.WriteString(", ")
	if v := _m.OwnerOrgID; v != nil {
		builder.WriteString("owner_org_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("owner_role=")
	builder.WriteString(_m.OwnerRole)
	builder.WriteString(", ")
	builder.WriteString("submitted_at=")
	builder.WriteString(_m.SubmittedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastProgressAt; v != nil {
		builder.WriteString("last_progress_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ScoreJobs is a parsable slice of ScoreJob.
type ScoreJobs []*ScoreJob
