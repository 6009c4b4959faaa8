package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/openfinml/riskscore/constants"
)

// Company is a deduplicated reference record keyed by ticker symbol plus
// access scope. At most one row exists per (symbol, scope key).
type Company struct {
	ID        uuid.UUID           `json:"id"`
	Symbol    string              `json:"symbol"`
	Name      string              `json:"name,omitempty"`
	ScopeTier constants.ScopeTier `json:"scope_tier"`
	ScopeKey  string              `json:"scope_key"`
	CreatedAt time.Time           `json:"created_at"`
}

// Prediction is one scored output row, keyed by (company, period, scope).
type Prediction struct {
	ID             uuid.UUID  `json:"id"`
	CompanyID      uuid.UUID  `json:"company_id"`
	Period         string     `json:"period"`
	ScopeKey       string     `json:"scope_key"`
	JobID          *uuid.UUID `json:"job_id,omitempty"` // set when created via the bulk path
	Probability    float64    `json:"probability"`
	Classification string     `json:"classification"`
	Confidence     float64    `json:"confidence"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
