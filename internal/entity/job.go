package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/openfinml/riskscore/constants"
)

// Job represents one bulk submission for data transfer between layers.
type Job struct {
	ID              uuid.UUID          `json:"id"`
	Kind            constants.JobKind  `json:"kind"`
	FileName        string             `json:"file_name"`
	Lane            constants.Lane     `json:"lane,omitempty"`
	State           constants.JobState `json:"state"`
	TotalRows       int                `json:"total_rows"`
	ProcessedRows   int                `json:"processed_rows"`
	SuccessfulRows  int                `json:"successful_rows"`
	FailedRows      int                `json:"failed_rows"`
	FailReason      *string            `json:"fail_reason,omitempty"`
	CancelRequested bool               `json:"cancel_requested"`
	OwnerUserID     uuid.UUID          `json:"owner_user_id"`
	OwnerOrgID      *uuid.UUID         `json:"owner_org_id,omitempty"`
	OwnerRole       constants.Role     `json:"owner_role"`
	SubmittedAt     time.Time          `json:"submitted_at"`
	StartedAt       *time.Time         `json:"started_at,omitempty"`
	FinishedAt      *time.Time         `json:"finished_at,omitempty"`
	LastProgressAt  *time.Time         `json:"last_progress_at,omitempty"`
}

// Owner reconstructs the submitting identity carried with the job.
func (j *Job) Owner() Identity {
	return Identity{UserID: j.OwnerUserID, OrgID: j.OwnerOrgID, Role: j.OwnerRole}
}

// RowError is one entry in a job's structured error list.
type RowError struct {
	RowIndex int    `json:"row_index"`
	Symbol   string `json:"symbol,omitempty"`
	Message  string `json:"message"`
}

// Progress is the counter snapshot returned by the registry after each
// recorded row. Counted is false when the row outcome was already recorded
// (at-least-once redelivery) and no counter moved.
type Progress struct {
	TotalRows      int
	ProcessedRows  int
	SuccessfulRows int
	FailedRows     int
	Counted        bool
}

// Done reports whether every row of the job has been processed.
func (p Progress) Done() bool {
	return p.TotalRows > 0 && p.ProcessedRows >= p.TotalRows
}

// Percentage is the processed share in [0,100].
func (p Progress) Percentage() float64 {
	if p.TotalRows == 0 {
		return 0
	}
	return float64(p.ProcessedRows) / float64(p.TotalRows) * 100
}
