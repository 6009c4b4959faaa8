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

// Company is the deduplicated reference entity. The unique index on
// (symbol, scope_key) is the arbiter for concurrent creation: exactly one
// inserter wins, everyone else resolves to the winner's row.
type Company struct{ ent.Schema }

func (Company) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "company"},
	}
}

func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("symbol").NotEmpty(),
		field.String("name").Default(""),
		field.String("scope_tier").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.ScopePrivate),
				string(constants.ScopeOrganization),
				string(constants.ScopeSystem),
			)),
		field.String("scope_key").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("predictions", Prediction.Type),
	}
}

func (Company) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("symbol", "scope_key").Unique(),
	}
}
