// Code generated by ent, DO NOT EDIT.

package scorejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the scorejob type in the database.
	Label = "score_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldLane holds the string denoting the lane field in the database.
	FieldLane = "lane"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldTotalRows holds the string denoting the total_rows field in the database.
	FieldTotalRows = "total_rows"
	// FieldProcessedRows holds the string denoting the processed_rows field in the database.
	FieldProcessedRows = "processed_rows"
	// FieldSuccessfulRows holds the string denoting the successful_rows field in the database.
	FieldSuccessfulRows = "successful_rows"
	// FieldFailedRows holds the string denoting the failed_rows field in the database.
	FieldFailedRows = "failed_rows"
	// FieldFailReason holds the string denoting the fail_reason field in the database.
	FieldFailReason = "fail_reason"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldOwnerOrgID holds the string denoting the owner_org_id field in the database.
	FieldOwnerOrgID = "owner_org_id"
	// FieldOwnerRole holds the string denoting the owner_role field in the database.
	FieldOwnerRole = "owner_role"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldLastProgressAt holds the string denoting the last_progress_at field in the database.
	FieldLastProgressAt = "last_progress_at"
	// EdgeRows holds the string denoting the rows edge name in mutations.
	EdgeRows = "rows"
	// EdgeOutcomes holds the string denoting the outcomes edge name in mutations.
	EdgeOutcomes = "outcomes"
	// Table holds the table name of the scorejob in the database.
	Table = "score_job"
	// RowsTable is the table that holds the rows relation/edge.
	RowsTable = "job_row"
	// RowsInverseTable is the table name for the JobRow entity.
	// It exists in this package in order to avoid circular dependency with the "jobrow" package.
	RowsInverseTable = "job_row"
	// RowsColumn is the table column denoting the rows relation/edge.
	RowsColumn = "job_id"
	// OutcomesTable is the table that holds the outcomes relation/edge.
	OutcomesTable = "job_row_outcome"
	// OutcomesInverseTable is the table name for the JobRowOutcome entity.
	// It exists in this package in order to avoid circular dependency with the "jobrowoutcome" package.
	OutcomesInverseTable = "job_row_outcome"
	// OutcomesColumn is the table column denoting the outcomes relation/edge.
	OutcomesColumn = "job_id"
)

// Columns holds all SQL columns for scorejob fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldFileName,
	FieldLane,
	FieldState,
	FieldTotalRows,
	FieldProcessedRows,
	FieldSuccessfulRows,
	FieldFailedRows,
	FieldFailReason,
	FieldCancelRequested,
	FieldOwnerUserID,
	FieldOwnerOrgID,
	FieldOwnerRole,
	FieldSubmittedAt,
	FieldStartedAt,
	FieldFinishedAt,
	FieldLastProgressAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultProcessedRows holds the default value on creation for the "processed_rows" field.
	DefaultProcessedRows int
	// DefaultSuccessfulRows holds the default value on creation for the "successful_rows" field.
	DefaultSuccessfulRows int
	// DefaultFailedRows holds the default value on creation for the "failed_rows" field.
	DefaultFailedRows int
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// OwnerRoleValidator is a validator for the "owner_role" field. It is called by the builders before save.
	OwnerRoleValidator func(string) error
	// DefaultSubmittedAt holds the default value on creation for the "submitted_at" field.
	DefaultSubmittedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ScoreJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByLane orders the results by the lane field.
func ByLane(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLane, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByTotalRows orders the results by the total_rows field.
func ByTotalRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRows, opts...).ToFunc()
}

// ByProcessedRows orders the results by the processed_rows field.
func ByProcessedRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedRows, opts...).ToFunc()
}

// BySuccessfulRows orders the results by the successful_rows field.
func BySuccessfulRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulRows, opts...).ToFunc()
}

// ByFailedRows orders the results by the failed_rows field.
func ByFailedRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedRows, opts...).ToFunc()
}

// ByFailReason orders the results by the fail_reason field.
func ByFailReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailReason, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// ByOwnerOrgID orders the results by the owner_org_id field.
func ByOwnerOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerOrgID, opts...).ToFunc()
}

// ByOwnerRole orders the results by the owner_role field.
func ByOwnerRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerRole, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByLastProgressAt orders the results by the last_progress_at field.
func ByLastProgressAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProgressAt, opts...).ToFunc()
}

// ByRowsCount orders the results by rows count.
func ByRowsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRowsStep(), opts...)
	}
}

// ByRows orders the results by rows terms.
func ByRows(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRowsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutcomesCount orders the results by outcomes count.
func ByOutcomesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutcomesStep(), opts...)
	}
}

// ByOutcomes orders the results by outcomes terms.
func ByOutcomes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutcomesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRowsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RowsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RowsTable, RowsColumn),
	)
}
func newOutcomesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutcomesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
	)
}
