// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/company"
	"github.com/openfinml/riskscore/gen/ent/prediction"
)

// Prediction is the model entity for the Prediction schema.
type Prediction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID uuid.UUID `json:"company_id,omitempty"`
	// Period holds the value of the "period" field.
	Period string `json:"period,omitempty"`
	// ScopeKey holds the value of the "scope_key" field.
	ScopeKey string `json:"scope_key,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID *uuid.UUID `json:"job_id,omitempty"`
	// Probability holds the value of the "probability" field.
	Probability float64 `json:"probability,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification string `json:"classification,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PredictionQuery when eager-loading is set.
	Edges        PredictionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PredictionEdges holds the relations/edges for other nodes in the graph.
type PredictionEdges struct {
	// Company holds the value of the company edge.
	Company *Company `json:"company,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CompanyOrErr returns the Company value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PredictionEdges) CompanyOrErr() (*Company, error) {
	if e.Company != nil {
		return e.Company, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: company.Label}
	}
	return nil, &NotLoadedError{edge: "company"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prediction.FieldJobID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case prediction.FieldProbability, prediction.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case prediction.FieldPeriod, prediction.FieldScopeKey, prediction.FieldClassification:
			values[i] = new(sql.NullString)
		case prediction.FieldCreatedAt, prediction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case prediction.FieldID, prediction.FieldCompanyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prediction fields.
func (_m *Prediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prediction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case prediction.FieldCompanyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value != nil {
				_m.CompanyID = *value
			}
		case prediction.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case prediction.FieldScopeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope_key", values[i])
			} else if value.Valid {
				_m.ScopeKey = value.String
			}
		case prediction.FieldJobID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(uuid.UUID)
				*_m.JobID = *value.S.(*uuid.UUID)
			}
		case prediction.FieldProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field probability", values[i])
			} else if value.Valid {
				_m.Probability = value.Float64
			}
		case prediction.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = value.String
			}
		case prediction.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case prediction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prediction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Prediction.
// This includes values selected through modifiers, order, etc.
func (_m *Prediction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCompany queries the "company" edge of the Prediction entity.
func (_m *Prediction) QueryCompany() *CompanyQuery {
	return NewPredictionClient(_m.config).QueryCompany(_m)
}

// Update returns a builder for updating this Prediction.
// Note that you need to call Prediction.Unwrap() before calling this method if this Prediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prediction) Update() *PredictionUpdateOne {
	return NewPredictionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prediction) Unwrap() *Prediction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Prediction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prediction) String() string {
	var builder strings.Builder
	builder.WriteString("Prediction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompanyID))
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	builder.WriteString("scope_key=")
	builder.WriteString(_m.ScopeKey)
	builder.WriteString(", ")
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Probability))
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(_m.Classification)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Predictions is a parsable slice of Prediction.
type Predictions []*Prediction
