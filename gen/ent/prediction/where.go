// Code generated by ent, DO NOT EDIT.

package prediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldCompanyID, v))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldPeriod, v))
}

// ScopeKey applies equality check predicate on the "scope_key" field. It's identical to ScopeKeyEQ.
func ScopeKey(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldScopeKey, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldJobID, v))
}

// Probability applies equality check predicate on the "probability" field. It's identical to ProbabilityEQ.
func Probability(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldProbability, v))
}

// Classification applies equality check predicate on the "classification" field. It's identical to ClassificationEQ.
func Classification(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldClassification, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldCompanyID, vs...))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldContainsFold(FieldPeriod, v))
}

// ScopeKeyEQ applies the EQ predicate on the "scope_key" field.
func ScopeKeyEQ(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldScopeKey, v))
}

// ScopeKeyNEQ applies the NEQ predicate on the "scope_key" field.
func ScopeKeyNEQ(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldScopeKey, v))
}

// ScopeKeyIn applies the In predicate on the "scope_key" field.
func ScopeKeyIn(vs ...string) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldScopeKey, vs...))
}

// ScopeKeyNotIn applies the NotIn predicate on the "scope_key" field.
func ScopeKeyNotIn(vs ...string) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldScopeKey, vs...))
}

// ScopeKeyGT applies the GT predicate on the "scope_key" field.
func ScopeKeyGT(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldScopeKey, v))
}

// ScopeKeyGTE applies the GTE predicate on the "scope_key" field.
func ScopeKeyGTE(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldScopeKey, v))
}

// ScopeKeyLT applies the LT predicate on the "scope_key" field.
func ScopeKeyLT(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldScopeKey, v))
}

// ScopeKeyLTE applies the LTE predicate on the "scope_key" field.
func ScopeKeyLTE(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldScopeKey, v))
}

// ScopeKeyContains applies the Contains predicate on the "scope_key" field.
func ScopeKeyContains(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldContains(FieldScopeKey, v))
}

// ScopeKeyHasPrefix applies the HasPrefix predicate on the "scope_key" field.
func ScopeKeyHasPrefix(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldHasPrefix(FieldScopeKey, v))
}

// ScopeKeyHasSuffix applies the HasSuffix predicate on the "scope_key" field.
func ScopeKeyHasSuffix(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldHasSuffix(FieldScopeKey, v))
}

// ScopeKeyEqualFold applies the EqualFold predicate on the "scope_key" field.
func ScopeKeyEqualFold(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEqualFold(FieldScopeKey, v))
}

// ScopeKeyContainsFold applies the ContainsFold predicate on the "scope_key" field.
func ScopeKeyContainsFold(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldContainsFold(FieldScopeKey, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v uuid.UUID) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.Prediction {
	return predicate.Prediction(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.Prediction {
	return predicate.Prediction(sql.FieldNotNull(FieldJobID))
}

// ProbabilityEQ applies the EQ predicate on the "probability" field.
func ProbabilityEQ(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldProbability, v))
}

// ProbabilityNEQ applies the NEQ predicate on the "probability" field.
func ProbabilityNEQ(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldProbability, v))
}

// ProbabilityIn applies the In predicate on the "probability" field.
func ProbabilityIn(vs ...float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldProbability, vs...))
}

// ProbabilityNotIn applies the NotIn predicate on the "probability" field.
func ProbabilityNotIn(vs ...float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldProbability, vs...))
}

// ProbabilityGT applies the GT predicate on the "probability" field.
func ProbabilityGT(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldProbability, v))
}

// ProbabilityGTE applies the GTE predicate on the "probability" field.
func ProbabilityGTE(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldProbability, v))
}

// ProbabilityLT applies the LT predicate on the "probability" field.
func ProbabilityLT(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldProbability, v))
}

// ProbabilityLTE applies the LTE predicate on the "probability" field.
func ProbabilityLTE(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldProbability, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...string) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...string) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldClassification, vs...))
}

// ClassificationGT applies the GT predicate on the "classification" field.
func ClassificationGT(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldClassification, v))
}

// ClassificationGTE applies the GTE predicate on the "classification" field.
func ClassificationGTE(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldClassification, v))
}

// ClassificationLT applies the LT predicate on the "classification" field.
func ClassificationLT(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldClassification, v))
}

// ClassificationLTE applies the LTE predicate on the "classification" field.
func ClassificationLTE(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldClassification, v))
}

// ClassificationContains applies the Contains predicate on the "classification" field.
func ClassificationContains(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldContains(FieldClassification, v))
}

// ClassificationHasPrefix applies the HasPrefix predicate on the "classification" field.
func ClassificationHasPrefix(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldHasPrefix(FieldClassification, v))
}

// ClassificationHasSuffix applies the HasSuffix predicate on the "classification" field.
func ClassificationHasSuffix(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldHasSuffix(FieldClassification, v))
}

// ClassificationEqualFold applies the EqualFold predicate on the "classification" field.
func ClassificationEqualFold(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldEqualFold(FieldClassification, v))
}

// ClassificationContainsFold applies the ContainsFold predicate on the "classification" field.
func ClassificationContainsFold(v string) predicate.Prediction {
	return predicate.Prediction(sql.FieldContainsFold(FieldClassification, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Prediction {
	return predicate.Prediction(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Prediction {
	return predicate.Prediction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Prediction {
	return predicate.Prediction(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prediction) predicate.Prediction {
	return predicate.Prediction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prediction) predicate.Prediction {
	return predicate.Prediction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prediction) predicate.Prediction {
	return predicate.Prediction(sql.NotPredicates(p))
}
