package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type TermsAndCondition struct{ ent.Schema }

func (TermsAndCondition) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "terms_and_conditions"},
	}
}

func (TermsAndCondition) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("clause_text").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (TermsAndCondition) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("terms").
			Field("contract_id").
			Unique().
			Required(),
	}
}
