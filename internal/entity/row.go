package entity

import (
	"github.com/google/uuid"

	"github.com/openfinml/riskscore/constants"
)

// Row is one submitted financial record, normalized from whatever format the
// batch arrived in (JSON, CSV, XLSX). Ratios holds the raw string values as
// submitted; parsing to floats happens in the pipeline's validate step so a
// malformed value rejects only its own row.
type Row struct {
	Index  int               `json:"index"`
	Symbol string            `json:"symbol"`
	Period string            `json:"period"`
	Ratios map[string]string `json:"ratios"`
}

// WorkItem is the unit placed on a queue lane. It references a contiguous
// chunk of a job's stored rows rather than carrying the payload, to bound
// message size on the broker.
type WorkItem struct {
	JobID      uuid.UUID      `json:"job_id"`
	Lane       constants.Lane `json:"lane"`
	StartIndex int            `json:"start_index"` // inclusive
	EndIndex   int            `json:"end_index"`   // exclusive
}

// Rows is the number of rows the item covers.
func (w WorkItem) Rows() int {
	return w.EndIndex - w.StartIndex
}
