package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Prediction is one scored output row. Unique per (company, period, scope):
// resubmission updates in place rather than duplicating.
type Prediction struct{ ent.Schema }

func (Prediction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "prediction"},
	}
}

func (Prediction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("company_id", uuid.UUID{}),
		field.String("period").NotEmpty(),
		field.String("scope_key").NotEmpty(),
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.Float("probability").
			SchemaType(map[string]string{dialect.Postgres: "double precision"}),
		field.String("classification").NotEmpty(),
		field.Float("confidence").
			SchemaType(map[string]string{dialect.Postgres: "double precision"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Prediction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("predictions").
			Field("company_id").
			Unique().
			Required(),
	}
}

func (Prediction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id", "period", "scope_key").Unique(),
		index.Fields("job_id"),
	}
}
