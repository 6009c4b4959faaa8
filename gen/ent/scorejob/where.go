// Code generated by ent, DO NOT EDIT.

package scorejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldKind, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldFileName, v))
}

// Lane applies equality check predicate on the "lane" field. It's identical to LaneEQ.
func Lane(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldLane, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldState, v))
}

// TotalRows applies equality check predicate on the "total_rows" field. It's identical to TotalRowsEQ.
func TotalRows(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldTotalRows, v))
}

// ProcessedRows applies equality check predicate on the "processed_rows" field. It's identical to ProcessedRowsEQ.
func ProcessedRows(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldProcessedRows, v))
}

// SuccessfulRows applies equality check predicate on the "successful_rows" field. It's identical to SuccessfulRowsEQ.
func SuccessfulRows(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldSuccessfulRows, v))
}

// FailedRows applies equality check predicate on the "failed_rows" field. It's identical to FailedRowsEQ.
func FailedRows(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldFailedRows, v))
}

// FailReason applies equality check predicate on the "fail_reason" field. It's identical to FailReasonEQ.
func FailReason(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldFailReason, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldCancelRequested, v))
}

// OwnerUserID applies equality check predicate on the "owner_user_id" field. It's identical to OwnerUserIDEQ.
func OwnerUserID(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerOrgID applies equality check predicate on the "owner_org_id" field. It's identical to OwnerOrgIDEQ.
func OwnerOrgID(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldOwnerOrgID, v))
}

// OwnerRole applies equality check predicate on the "owner_role" field. It's identical to OwnerRoleEQ.
func OwnerRole(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldOwnerRole, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldSubmittedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldFinishedAt, v))
}

// LastProgressAt applies equality check predicate on the "last_progress_at" field. It's identical to LastProgressAtEQ.
func LastProgressAt(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldLastProgressAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContainsFold(FieldKind, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContainsFold(FieldFileName, v))
}

// LaneEQ applies the EQ predicate on the "lane" field.
func LaneEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldLane, v))
}

// LaneNEQ applies the NEQ predicate on the "lane" field.
func LaneNEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldLane, v))
}

// LaneIn applies the In predicate on the "lane" field.
func LaneIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldLane, vs...))
}

// LaneNotIn applies the NotIn predicate on the "lane" field.
func LaneNotIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldLane, vs...))
}

// LaneGT applies the GT predicate on the "lane" field.
func LaneGT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldLane, v))
}

// LaneGTE applies the GTE predicate on the "lane" field.
func LaneGTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldLane, v))
}

// LaneLT applies the LT predicate on the "lane" field.
func LaneLT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldLane, v))
}

// LaneLTE applies the LTE predicate on the "lane" field.
func LaneLTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldLane, v))
}

// LaneContains applies the Contains predicate on the "lane" field.
func LaneContains(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContains(FieldLane, v))
}

// LaneHasPrefix applies the HasPrefix predicate on the "lane" field.
func LaneHasPrefix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasPrefix(FieldLane, v))
}

// LaneHasSuffix applies the HasSuffix predicate on the "lane" field.
func LaneHasSuffix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasSuffix(FieldLane, v))
}

// LaneIsNil applies the IsNil predicate on the "lane" field.
func LaneIsNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIsNull(FieldLane))
}

// LaneNotNil applies the NotNil predicate on the "lane" field.
func LaneNotNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotNull(FieldLane))
}

// LaneEqualFold applies the EqualFold predicate on the "lane" field.
func LaneEqualFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEqualFold(FieldLane, v))
}

// LaneContainsFold applies the ContainsFold predicate on the "lane" field.
func LaneContainsFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContainsFold(FieldLane, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContainsFold(FieldState, v))
}

// TotalRowsEQ applies the EQ predicate on the "total_rows" field.
func TotalRowsEQ(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldTotalRows, v))
}

// TotalRowsNEQ applies the NEQ predicate on the "total_rows" field.
func TotalRowsNEQ(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldTotalRows, v))
}

// TotalRowsIn applies the In predicate on the "total_rows" field.
func TotalRowsIn(vs ...int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldTotalRows, vs...))
}

// TotalRowsNotIn applies the NotIn predicate on the "total_rows" field.
func TotalRowsNotIn(vs ...int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldTotalRows, vs...))
}

// TotalRowsGT applies the GT predicate on the "total_rows" field.
func TotalRowsGT(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldTotalRows, v))
}

// TotalRowsGTE applies the GTE predicate on the "total_rows" field.
func TotalRowsGTE(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldTotalRows, v))
}

// TotalRowsLT applies the LT predicate on the "total_rows" field.
func TotalRowsLT(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldTotalRows, v))
}

// TotalRowsLTE applies the LTE predicate on the "total_rows" field.
func TotalRowsLTE(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldTotalRows, v))
}

// ProcessedRowsEQ applies the EQ predicate on the "processed_rows" field.
func ProcessedRowsEQ(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldProcessedRows, v))
}

// ProcessedRowsNEQ applies the NEQ predicate on the "processed_rows" field.
func ProcessedRowsNEQ(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldProcessedRows, v))
}

// ProcessedRowsIn applies the In predicate on the "processed_rows" field.
func ProcessedRowsIn(vs ...int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldProcessedRows, vs...))
}

// ProcessedRowsNotIn applies the NotIn predicate on the "processed_rows" field.
func ProcessedRowsNotIn(vs ...int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldProcessedRows, vs...))
}

// ProcessedRowsGT applies the GT predicate on the "processed_rows" field.
func ProcessedRowsGT(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldProcessedRows, v))
}

// ProcessedRowsGTE applies the GTE predicate on the "processed_rows" field.
func ProcessedRowsGTE(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldProcessedRows, v))
}

// ProcessedRowsLT applies the LT predicate on the "processed_rows" field.
func ProcessedRowsLT(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldProcessedRows, v))
}

// ProcessedRowsLTE applies the LTE predicate on the "processed_rows" field.
func ProcessedRowsLTE(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldProcessedRows, v))
}

// SuccessfulRowsEQ applies the EQ predicate on the "successful_rows" field.
func SuccessfulRowsEQ(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldSuccessfulRows, v))
}

// SuccessfulRowsNEQ applies the NEQ predicate on the "successful_rows" field.
func SuccessfulRowsNEQ(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldSuccessfulRows, v))
}

// SuccessfulRowsIn applies the In predicate on the "successful_rows" field.
func SuccessfulRowsIn(vs ...int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldSuccessfulRows, vs...))
}

// SuccessfulRowsNotIn applies the NotIn predicate on the "successful_rows" field.
func SuccessfulRowsNotIn(vs ...int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldSuccessfulRows, vs...))
}

// SuccessfulRowsGT applies the GT predicate on the "successful_rows" field.
func SuccessfulRowsGT(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldSuccessfulRows, v))
}

// SuccessfulRowsGTE applies the GTE predicate on the "successful_rows" field.
func SuccessfulRowsGTE(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldSuccessfulRows, v))
}

// SuccessfulRowsLT applies the LT predicate on the "successful_rows" field.
func SuccessfulRowsLT(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldSuccessfulRows, v))
}

// SuccessfulRowsLTE applies the LTE predicate on the "successful_rows" field.
func SuccessfulRowsLTE(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldSuccessfulRows, v))
}

// FailedRowsEQ applies the EQ predicate on the "failed_rows" field.
func FailedRowsEQ(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldFailedRows, v))
}

// FailedRowsNEQ applies the NEQ predicate on the "failed_rows" field.
func FailedRowsNEQ(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldFailedRows, v))
}

// FailedRowsIn applies the In predicate on the "failed_rows" field.
func FailedRowsIn(vs ...int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldFailedRows, vs...))
}

// FailedRowsNotIn applies the NotIn predicate on the "failed_rows" field.
func FailedRowsNotIn(vs ...int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldFailedRows, vs...))
}

// FailedRowsGT applies the GT predicate on the "failed_rows" field.
func FailedRowsGT(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldFailedRows, v))
}

// FailedRowsGTE applies the GTE predicate on the "failed_rows" field.
func FailedRowsGTE(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldFailedRows, v))
}

// FailedRowsLT applies the LT predicate on the "failed_rows" field.
func FailedRowsLT(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldFailedRows, v))
}

// FailedRowsLTE applies the LTE predicate on the "failed_rows" field.
func FailedRowsLTE(v int) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldFailedRows, v))
}

// FailReasonEQ applies the EQ predicate on the "fail_reason" field.
func FailReasonEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldFailReason, v))
}

// FailReasonNEQ applies the NEQ predicate on the "fail_reason" field.
func FailReasonNEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldFailReason, v))
}

// FailReasonIn applies the In predicate on the "fail_reason" field.
func FailReasonIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldFailReason, vs...))
}

// FailReasonNotIn applies the NotIn predicate on the "fail_reason" field.
func FailReasonNotIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldFailReason, vs...))
}

// FailReasonGT applies the GT predicate on the "fail_reason" field.
func FailReasonGT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldFailReason, v))
}

// FailReasonGTE applies the GTE predicate on the "fail_reason" field.
func FailReasonGTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldFailReason, v))
}

// FailReasonLT applies the LT predicate on the "fail_reason" field.
func FailReasonLT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldFailReason, v))
}

// FailReasonLTE applies the LTE predicate on the "fail_reason" field.
func FailReasonLTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldFailReason, v))
}

// FailReasonContains applies the Contains predicate on the "fail_reason" field.
func FailReasonContains(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContains(FieldFailReason, v))
}

// FailReasonHasPrefix applies the HasPrefix predicate on the "fail_reason" field.
func FailReasonHasPrefix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasPrefix(FieldFailReason, v))
}

// FailReasonHasSuffix applies the HasSuffix predicate on the "fail_reason" field.
func FailReasonHasSuffix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasSuffix(FieldFailReason, v))
}

// FailReasonIsNil applies the IsNil predicate on the "fail_reason" field.
func FailReasonIsNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIsNull(FieldFailReason))
}

// FailReasonNotNil applies the NotNil predicate on the "fail_reason" field.
func FailReasonNotNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotNull(FieldFailReason))
}

// FailReasonEqualFold applies the EqualFold predicate on the "fail_reason" field.
func FailReasonEqualFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEqualFold(FieldFailReason, v))
}

// FailReasonContainsFold applies the ContainsFold predicate on the "fail_reason" field.
func FailReasonContainsFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContainsFold(FieldFailReason, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldCancelRequested, v))
}

// OwnerUserIDEQ applies the EQ predicate on the "owner_user_id" field.
func OwnerUserIDEQ(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerUserIDNEQ applies the NEQ predicate on the "owner_user_id" field.
func OwnerUserIDNEQ(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldOwnerUserID, v))
}

// OwnerUserIDIn applies the In predicate on the "owner_user_id" field.
func OwnerUserIDIn(vs ...uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDNotIn applies the NotIn predicate on the "owner_user_id" field.
func OwnerUserIDNotIn(vs ...uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDGT applies the GT predicate on the "owner_user_id" field.
func OwnerUserIDGT(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldOwnerUserID, v))
}

// OwnerUserIDGTE applies the GTE predicate on the "owner_user_id" field.
func OwnerUserIDGTE(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldOwnerUserID, v))
}

// OwnerUserIDLT applies the LT predicate on the "owner_user_id" field.
func OwnerUserIDLT(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldOwnerUserID, v))
}

// OwnerUserIDLTE applies the LTE predicate on the "owner_user_id" field.
func OwnerUserIDLTE(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldOwnerUserID, v))
}

// OwnerOrgIDEQ applies the EQ predicate on the "owner_org_id" field.
func OwnerOrgIDEQ(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldOwnerOrgID, v))
}

// OwnerOrgIDNEQ applies the NEQ predicate on the "owner_org_id" field.
func OwnerOrgIDNEQ(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldOwnerOrgID, v))
}

// OwnerOrgIDIn applies the In predicate on the "owner_org_id" field.
func OwnerOrgIDIn(vs ...uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldOwnerOrgID, vs...))
}

// OwnerOrgIDNotIn applies the NotIn predicate on the "owner_org_id" field.
func OwnerOrgIDNotIn(vs ...uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldOwnerOrgID, vs...))
}

// OwnerOrgIDGT applies the GT predicate on the "owner_org_id" field.
func OwnerOrgIDGT(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldOwnerOrgID, v))
}

// OwnerOrgIDGTE applies the GTE predicate on the "owner_org_id" field.
func OwnerOrgIDGTE(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldOwnerOrgID, v))
}

// OwnerOrgIDLT applies the LT predicate on the "owner_org_id" field.
func OwnerOrgIDLT(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldOwnerOrgID, v))
}

// OwnerOrgIDLTE applies the LTE predicate on the "owner_org_id" field.
func OwnerOrgIDLTE(v uuid.UUID) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldOwnerOrgID, v))
}

// OwnerOrgIDIsNil applies the IsNil predicate on the "owner_org_id" field.
func OwnerOrgIDIsNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIsNull(FieldOwnerOrgID))
}

// OwnerOrgIDNotNil applies the NotNil predicate on the "owner_org_id" field.
func OwnerOrgIDNotNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotNull(FieldOwnerOrgID))
}

// OwnerRoleEQ applies the EQ predicate on the "owner_role" field.
func OwnerRoleEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldOwnerRole, v))
}

// OwnerRoleNEQ applies the NEQ predicate on the "owner_role" field.
func OwnerRoleNEQ(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldOwnerRole, v))
}

// OwnerRoleIn applies the In predicate on the "owner_role" field.
func OwnerRoleIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldOwnerRole, vs...))
}

// OwnerRoleNotIn applies the NotIn predicate on the "owner_role" field.
func OwnerRoleNotIn(vs ...string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldOwnerRole, vs...))
}

// OwnerRoleGT applies the GT predicate on the "owner_role" field.
func OwnerRoleGT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldOwnerRole, v))
}

// OwnerRoleGTE applies the GTE predicate on the "owner_role" field.
func OwnerRoleGTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldOwnerRole, v))
}

// OwnerRoleLT applies the LT predicate on the "owner_role" field.
func OwnerRoleLT(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldOwnerRole, v))
}

// OwnerRoleLTE applies the LTE predicate on the "owner_role" field.
func OwnerRoleLTE(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldOwnerRole, v))
}

// OwnerRoleContains applies the Contains predicate on the "owner_role" field.
func OwnerRoleContains(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContains(FieldOwnerRole, v))
}

// OwnerRoleHasPrefix applies the HasPrefix predicate on the "owner_role" field.
func OwnerRoleHasPrefix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasPrefix(FieldOwnerRole, v))
}

// OwnerRoleHasSuffix applies the HasSuffix predicate on the "owner_role" field.
func OwnerRoleHasSuffix(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldHasSuffix(FieldOwnerRole, v))
}

// OwnerRoleEqualFold applies the EqualFold predicate on the "owner_role" field.
func OwnerRoleEqualFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEqualFold(FieldOwnerRole, v))
}

// OwnerRoleContainsFold applies the ContainsFold predicate on the "owner_role" field.
func OwnerRoleContainsFold(v string) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldContainsFold(FieldOwnerRole, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldSubmittedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotNull(FieldFinishedAt))
}

// LastProgressAtEQ applies the EQ predicate on the "last_progress_at" field.
func LastProgressAtEQ(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldEQ(FieldLastProgressAt, v))
}

// LastProgressAtNEQ applies the NEQ predicate on the "last_progress_at" field.
func LastProgressAtNEQ(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNEQ(FieldLastProgressAt, v))
}

// LastProgressAtIn applies the In predicate on the "last_progress_at" field.
func LastProgressAtIn(vs ...time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIn(FieldLastProgressAt, vs...))
}

// LastProgressAtNotIn applies the NotIn predicate on the "last_progress_at" field.
func LastProgressAtNotIn(vs ...time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotIn(FieldLastProgressAt, vs...))
}

// LastProgressAtGT applies the GT predicate on the "last_progress_at" field.
func LastProgressAtGT(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGT(FieldLastProgressAt, v))
}

// LastProgressAtGTE applies the GTE predicate on the "last_progress_at" field.
func LastProgressAtGTE(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldGTE(FieldLastProgressAt, v))
}

// LastProgressAtLT applies the LT predicate on the "last_progress_at" field.
func LastProgressAtLT(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLT(FieldLastProgressAt, v))
}

// LastProgressAtLTE applies the LTE predicate on the "last_progress_at" field.
func LastProgressAtLTE(v time.Time) predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldLTE(FieldLastProgressAt, v))
}

// LastProgressAtIsNil applies the IsNil predicate on the "last_progress_at" field.
func LastProgressAtIsNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldIsNull(FieldLastProgressAt))
}

// LastProgressAtNotNil applies the NotNil predicate on the "last_progress_at" field.
func LastProgressAtNotNil() predicate.ScoreJob {
	return predicate.ScoreJob(sql.FieldNotNull(FieldLastProgressAt))
}

// HasRows applies the HasEdge predicate on the "rows" edge.
func HasRows() predicate.ScoreJob {
	return predicate.ScoreJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RowsTable, RowsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRowsWith applies the HasEdge predicate on the "rows" edge with a given conditions (other predicates).
func HasRowsWith(preds ...predicate.JobRow) predicate.ScoreJob {
	return predicate.ScoreJob(func(s *sql.Selector) {
		step := newRowsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutcomes applies the HasEdge predicate on the "outcomes" edge.
func HasOutcomes() predicate.ScoreJob {
	return predicate.ScoreJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutcomesWith applies the HasEdge predicate on the "outcomes" edge with a given conditions (other predicates).
func HasOutcomesWith(preds ...predicate.JobRowOutcome) predicate.ScoreJob {
	return predicate.ScoreJob(func(s *sql.Selector) {
		step := newOutcomesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreJob) predicate.ScoreJob {
	return predicate.ScoreJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreJob) predicate.ScoreJob {
	return predicate.ScoreJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreJob) predicate.ScoreJob {
	return predicate.ScoreJob(sql.NotPredicates(p))
}
