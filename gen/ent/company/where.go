// Code generated by ent, DO NOT EDIT.

package company

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldID, id))
}

// Symbol applies equality check predicate on the "symbol" field. It's identical to SymbolEQ.
func Symbol(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSymbol, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// ScopeTier applies equality check predicate on the "scope_tier" field. It's identical to ScopeTierEQ.
func ScopeTier(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldScopeTier, v))
}

// ScopeKey applies equality check predicate on the "scope_key" field. It's identical to ScopeKeyEQ.
func ScopeKey(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldScopeKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// SymbolEQ applies the EQ predicate on the "symbol" field.
func SymbolEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldSymbol, v))
}

// SymbolNEQ applies the NEQ predicate on the "symbol" field.
func SymbolNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldSymbol, v))
}

// SymbolIn applies the In predicate on the "symbol" field.
func SymbolIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldSymbol, vs...))
}

// SymbolNotIn applies the NotIn predicate on the "symbol" field.
func SymbolNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldSymbol, vs...))
}

// SymbolGT applies the GT predicate on the "symbol" field.
func SymbolGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldSymbol, v))
}

// SymbolGTE applies the GTE predicate on the "symbol" field.
func SymbolGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldSymbol, v))
}

// SymbolLT applies the LT predicate on the "symbol" field.
func SymbolLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldSymbol, v))
}

// SymbolLTE applies the LTE predicate on the "symbol" field.
func SymbolLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldSymbol, v))
}

// SymbolContains applies the Contains predicate on the "symbol" field.
func SymbolContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldSymbol, v))
}

// SymbolHasPrefix applies the HasPrefix predicate on the "symbol" field.
func SymbolHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldSymbol, v))
}

// SymbolHasSuffix applies the HasSuffix predicate on the "symbol" field.
func SymbolHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldSymbol, v))
}

// SymbolEqualFold applies the EqualFold predicate on the "symbol" field.
func SymbolEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldSymbol, v))
}

// SymbolContainsFold applies the ContainsFold predicate on the "symbol" field.
func SymbolContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldSymbol, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldName, v))
}

// ScopeTierEQ applies the EQ predicate on the "scope_tier" field.
func ScopeTierEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldScopeTier, v))
}

// ScopeTierNEQ applies the NEQ predicate on the "scope_tier" field.
func ScopeTierNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldScopeTier, v))
}

// ScopeTierIn applies the In predicate on the "scope_tier" field.
func ScopeTierIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldScopeTier, vs...))
}

// ScopeTierNotIn applies the NotIn predicate on the "scope_tier" field.
func ScopeTierNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldScopeTier, vs...))
}

// ScopeTierGT applies the GT predicate on the "scope_tier" field.
func ScopeTierGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldScopeTier, v))
}

// ScopeTierGTE applies the GTE predicate on the "scope_tier" field.
func ScopeTierGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldScopeTier, v))
}

// ScopeTierLT applies the LT predicate on the "scope_tier" field.
func ScopeTierLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldScopeTier, v))
}

// ScopeTierLTE applies the LTE predicate on the "scope_tier" field.
func ScopeTierLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldScopeTier, v))
}

// ScopeTierContains applies the Contains predicate on the "scope_tier" field.
func ScopeTierContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldScopeTier, v))
}

// ScopeTierHasPrefix applies the HasPrefix predicate on the "scope_tier" field.
func ScopeTierHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldScopeTier, v))
}

// ScopeTierHasSuffix applies the HasSuffix predicate on the "scope_tier" field.
func ScopeTierHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldScopeTier, v))
}

// ScopeTierEqualFold applies the EqualFold predicate on the "scope_tier" field.
func ScopeTierEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldScopeTier, v))
}

// ScopeTierContainsFold applies the ContainsFold predicate on the "scope_tier" field.
func ScopeTierContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldScopeTier, v))
}

// ScopeKeyEQ applies the EQ predicate on the "scope_key" field.
func ScopeKeyEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldScopeKey, v))
}

// ScopeKeyNEQ applies the NEQ predicate on the "scope_key" field.
func ScopeKeyNEQ(v string) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldScopeKey, v))
}

// ScopeKeyIn applies the In predicate on the "scope_key" field.
func ScopeKeyIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldScopeKey, vs...))
}

// ScopeKeyNotIn applies the NotIn predicate on the "scope_key" field.
func ScopeKeyNotIn(vs ...string) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldScopeKey, vs...))
}

// ScopeKeyGT applies the GT predicate on the "scope_key" field.
func ScopeKeyGT(v string) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldScopeKey, v))
}

// ScopeKeyGTE applies the GTE predicate on the "scope_key" field.
func ScopeKeyGTE(v string) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldScopeKey, v))
}

// ScopeKeyLT applies the LT predicate on the "scope_key" field.
func ScopeKeyLT(v string) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldScopeKey, v))
}

// ScopeKeyLTE applies the LTE predicate on the "scope_key" field.
func ScopeKeyLTE(v string) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldScopeKey, v))
}

// ScopeKeyContains applies the Contains predicate on the "scope_key" field.
func ScopeKeyContains(v string) predicate.Company {
	return predicate.Company(sql.FieldContains(FieldScopeKey, v))
}

// ScopeKeyHasPrefix applies the HasPrefix predicate on the "scope_key" field.
func ScopeKeyHasPrefix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasPrefix(FieldScopeKey, v))
}

// ScopeKeyHasSuffix applies the HasSuffix predicate on the "scope_key" field.
func ScopeKeyHasSuffix(v string) predicate.Company {
	return predicate.Company(sql.FieldHasSuffix(FieldScopeKey, v))
}

// ScopeKeyEqualFold applies the EqualFold predicate on the "scope_key" field.
func ScopeKeyEqualFold(v string) predicate.Company {
	return predicate.Company(sql.FieldEqualFold(FieldScopeKey, v))
}

// ScopeKeyContainsFold applies the ContainsFold predicate on the "scope_key" field.
func ScopeKeyContainsFold(v string) predicate.Company {
	return predicate.Company(sql.FieldContainsFold(FieldScopeKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Company {
	return predicate.Company(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Company {
	return predicate.Company(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPredictions applies the HasEdge predicate on the "predictions" edge.
func HasPredictions() predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PredictionsTable, PredictionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPredictionsWith applies the HasEdge predicate on the "predictions" edge with a given conditions (other predicates).
func HasPredictionsWith(preds ...predicate.Prediction) predicate.Company {
	return predicate.Company(func(s *sql.Selector) {
		step := newPredictionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Company) predicate.Company {
	return predicate.Company(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Company) predicate.Company {
	return predicate.Company(sql.NotPredicates(p))
}
