// Code generated by ent, DO NOT EDIT.

package jobrow

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldJobID, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldRowIndex, v))
}

// Symbol applies equality check predicate on the "symbol" field. It's identical to SymbolEQ.
func Symbol(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldSymbol, v))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldPeriod, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobRow {
	return predicate.JobRow(sql.FieldNotIn(FieldJobID, vs...))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.JobRow {
	return predicate.JobRow(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.JobRow {
	return predicate.JobRow(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.JobRow {
	return predicate.JobRow(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.JobRow {
	return predicate.JobRow(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.JobRow {
	return predicate.JobRow(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.JobRow {
	return predicate.JobRow(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.JobRow {
	return predicate.JobRow(sql.FieldLTE(FieldRowIndex, v))
}

// SymbolEQ applies the EQ predicate on the "symbol" field.
func SymbolEQ(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldSymbol, v))
}

// SymbolNEQ applies the NEQ predicate on the "symbol" field.
func SymbolNEQ(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldNEQ(FieldSymbol, v))
}

// SymbolIn applies the In predicate on the "symbol" field.
func SymbolIn(vs ...string) predicate.JobRow {
	return predicate.JobRow(sql.FieldIn(FieldSymbol, vs...))
}

// SymbolNotIn applies the NotIn predicate on the "symbol" field.
func SymbolNotIn(vs ...string) predicate.JobRow {
	return predicate.JobRow(sql.FieldNotIn(FieldSymbol, vs...))
}

// SymbolGT applies the GT predicate on the "symbol" field.
func SymbolGT(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldGT(FieldSymbol, v))
}

// SymbolGTE applies the GTE predicate on the "symbol" field.
func SymbolGTE(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldGTE(FieldSymbol, v))
}

// SymbolLT applies the LT predicate on the "symbol" field.
func SymbolLT(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldLT(FieldSymbol, v))
}

// SymbolLTE applies the LTE predicate on the "symbol" field.
func SymbolLTE(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldLTE(FieldSymbol, v))
}

// SymbolContains applies the Contains predicate on the "symbol" field.
func SymbolContains(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldContains(FieldSymbol, v))
}

// SymbolHasPrefix applies the HasPrefix predicate on the "symbol" field.
func SymbolHasPrefix(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldHasPrefix(FieldSymbol, v))
}

// SymbolHasSuffix applies the HasSuffix predicate on the "symbol" field.
func SymbolHasSuffix(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldHasSuffix(FieldSymbol, v))
}

// SymbolEqualFold applies the EqualFold predicate on the "symbol" field.
func SymbolEqualFold(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldEqualFold(FieldSymbol, v))
}

// SymbolContainsFold applies the ContainsFold predicate on the "symbol" field.
func SymbolContainsFold(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldContainsFold(FieldSymbol, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.JobRow {
	return predicate.JobRow(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.JobRow {
	return predicate.JobRow(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.JobRow {
	return predicate.JobRow(sql.FieldContainsFold(FieldPeriod, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobRow {
	return predicate.JobRow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ScoreJob) predicate.JobRow {
	return predicate.JobRow(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobRow) predicate.JobRow {
	return predicate.JobRow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobRow) predicate.JobRow {
	return predicate.JobRow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobRow) predicate.JobRow {
	return predicate.JobRow(sql.NotPredicates(p))
}
