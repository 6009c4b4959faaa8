// Code generated by ent, DO NOT EDIT.

package jobrowoutcome

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldJobID, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldRowIndex, v))
}

// Ok applies equality check predicate on the "ok" field. It's identical to OkEQ.
func Ok(v bool) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldOk, v))
}

// Symbol applies equality check predicate on the "symbol" field. It's identical to SymbolEQ.
func Symbol(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldSymbol, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldMessage, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNotIn(FieldJobID, vs...))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldLTE(FieldRowIndex, v))
}

// OkEQ applies the EQ predicate on the "ok" field.
func OkEQ(v bool) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldOk, v))
}

// OkNEQ applies the NEQ predicate on the "ok" field.
func OkNEQ(v bool) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNEQ(FieldOk, v))
}

// SymbolEQ applies the EQ predicate on the "symbol" field.
func SymbolEQ(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldSymbol, v))
}

// SymbolNEQ applies the NEQ predicate on the "symbol" field.
func SymbolNEQ(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNEQ(FieldSymbol, v))
}

// SymbolIn applies the In predicate on the "symbol" field.
func SymbolIn(vs ...string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldIn(FieldSymbol, vs...))
}

// SymbolNotIn applies the NotIn predicate on the "symbol" field.
func SymbolNotIn(vs ...string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNotIn(FieldSymbol, vs...))
}

// SymbolGT applies the GT predicate on the "symbol" field.
func SymbolGT(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldGT(FieldSymbol, v))
}

// SymbolGTE applies the GTE predicate on the "symbol" field.
func SymbolGTE(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldGTE(FieldSymbol, v))
}

// SymbolLT applies the LT predicate on the "symbol" field.
func SymbolLT(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldLT(FieldSymbol, v))
}

// SymbolLTE applies the LTE predicate on the "symbol" field.
func SymbolLTE(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldLTE(FieldSymbol, v))
}

// SymbolContains applies the Contains predicate on the "symbol" field.
func SymbolContains(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldContains(FieldSymbol, v))
}

// SymbolHasPrefix applies the HasPrefix predicate on the "symbol" field.
func SymbolHasPrefix(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldHasPrefix(FieldSymbol, v))
}

// SymbolHasSuffix applies the HasSuffix predicate on the "symbol" field.
func SymbolHasSuffix(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldHasSuffix(FieldSymbol, v))
}

// SymbolEqualFold applies the EqualFold predicate on the "symbol" field.
func SymbolEqualFold(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEqualFold(FieldSymbol, v))
}

// SymbolContainsFold applies the ContainsFold predicate on the "symbol" field.
func SymbolContainsFold(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldContainsFold(FieldSymbol, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.FieldContainsFold(FieldMessage, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobRowOutcome {
	return predicate.JobRowOutcome(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ScoreJob) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobRowOutcome) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobRowOutcome) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobRowOutcome) predicate.JobRowOutcome {
	return predicate.JobRowOutcome(sql.NotPredicates(p))
}
