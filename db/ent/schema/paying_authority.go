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

type PayingAuthority struct{ ent.Schema }

func (PayingAuthority) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "paying_authorities"},
	}
}

func (PayingAuthority) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("role").Optional().MaxLen(128),
		field.String("payment_mode").Optional().MaxLen(128),
		field.String("designation").Optional().MaxLen(128),
		field.String("email").Optional().MaxLen(254),
		field.String("gstin").Optional().MaxLen(32),
		field.String("address").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (PayingAuthority) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("paying_authority").
			Field("contract_id").
			Unique().
			Required(),
	}
}
