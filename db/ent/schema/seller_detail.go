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

type SellerDetail struct{ ent.Schema }

func (SellerDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "seller_details"},
	}
}

func (SellerDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("gem_seller_id").Optional().MaxLen(64),
		field.String("company_name").Optional().MaxLen(256),
		field.String("contact_no").Optional().MaxLen(30).
			Validate(phoneValidator),
		field.String("email").Optional().MaxLen(254),
		field.String("address").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("msme_registration_number").Optional().MaxLen(64),
		field.String("gstin").Optional().MaxLen(32),
	}
}

func (SellerDetail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("seller").
			Field("contract_id").
			Unique().
			Required(),
	}
}
