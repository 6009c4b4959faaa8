package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// JobRow is one submitted source row, stored at submission so queue messages
// carry offsets instead of payloads.
type JobRow struct{ ent.Schema }

func (JobRow) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_row"},
	}
}

func (JobRow) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.Int("row_index"),
		field.String("symbol"),
		field.String("period"),
		field.JSON("ratios", json.RawMessage{}),
	}
}

func (JobRow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", ScoreJob.Type).
			Ref("rows").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (JobRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "row_index").Unique(),
	}
}
