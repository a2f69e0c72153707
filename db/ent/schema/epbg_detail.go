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

// EPBGDetail holds the ePBG (e-Performance Bank Guarantee) block as free text.
type EPBGDetail struct{ ent.Schema }

func (EPBGDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "epbg_details"},
	}
}

func (EPBGDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("detail").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (EPBGDetail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("epbg").
			Field("contract_id").
			Unique().
			Required(),
	}
}
