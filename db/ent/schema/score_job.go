package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/db/ent/schema/utils"
)

type ScoreJob struct{ ent.Schema }

func (ScoreJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "score_job"},
	}
}

func (ScoreJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.JobKinds()...)),
		field.String("file_name").NotEmpty(),
		field.String("lane").Optional().Nillable(),
		field.String("state").NotEmpty(),
		field.Int("total_rows"),
		field.Int("processed_rows").Default(0),
		field.Int("successful_rows").Default(0),
		field.Int("failed_rows").Default(0),
		field.String("fail_reason").Optional().Nillable(),
		field.Bool("cancel_requested").Default(false),
		field.UUID("owner_user_id", uuid.UUID{}),
		field.UUID("owner_org_id", uuid.UUID{}).Optional().Nillable(),
		field.String("owner_role").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.RoleUser),
				string(constants.RoleManager),
				string(constants.RoleAdmin),
			)),
		field.Time("submitted_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		field.Time("last_progress_at").Optional().Nillable(),
	}
}

func (ScoreJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("rows", JobRow.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		edge.To("outcomes", JobRowOutcome.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (ScoreJob) Indexes() []ent.Index {
	return []ent.Index{
		// status polling and the stall watchdog both scan by state.
		index.Fields("state", "last_progress_at"),
		index.Fields("owner_user_id", "submitted_at"),
	}
}
