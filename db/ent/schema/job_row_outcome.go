package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// JobRowOutcome is the per-row dedup ledger: the unique (job_id, row_index)
// index is what makes counter updates idempotent under queue redelivery, and
// failed entries double as the job's error list.
type JobRowOutcome struct{ ent.Schema }

func (JobRowOutcome) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_row_outcome"},
	}
}

func (JobRowOutcome) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("row_index"),
		field.Bool("ok"),
		field.String("symbol").Default(""),
		field.String("message").Default(""),
	}
}

func (JobRowOutcome) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ScoreJob.Type).
			Ref("outcomes").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (JobRowOutcome) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "row_index").Unique(),
		index.Fields("job_id", "ok"),
	}
}
