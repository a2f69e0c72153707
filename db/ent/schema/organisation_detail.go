package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type OrganisationDetail struct{ ent.Schema }

func (OrganisationDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "organisation_details"},
	}
}

func (OrganisationDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so repositories can set it directly
		field.UUID("contract_id", uuid.UUID{}),
		field.String("type").Optional().MaxLen(128),
		field.String("ministry").Optional().MaxLen(256),
		field.String("department").Optional().MaxLen(256),
		field.String("organisation_name").Optional().MaxLen(256),
		field.String("office_zone").Optional().MaxLen(256),
	}
}

func (OrganisationDetail) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE detail block -> ONE contract
		edge.From("contract", Contract.Type).
			Ref("organisation").
			Field("contract_id").
			Unique().
			Required(),
	}
}
