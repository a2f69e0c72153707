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

// ConsigneeDetail rows are delivery lines tied to a product.
type ConsigneeDetail struct{ ent.Schema }

func (ConsigneeDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "consignee_details"},
	}
}

func (ConsigneeDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("product_id", uuid.UUID{}),
		field.Int("s_no").Optional().Nillable(),
		field.String("designation").Optional().MaxLen(128),
		field.String("email").Optional().MaxLen(254),
		field.String("contact").Optional().MaxLen(30).
			Validate(phoneValidator),
		field.String("gstin").Optional().MaxLen(32),
		field.String("address").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("lot_no").Optional().MaxLen(128),
		field.Int("quantity").Optional().Nillable(),
		field.Time("delivery_start").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("delivery_end").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("delivery_to").Optional().MaxLen(256),
	}
}

func (ConsigneeDetail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("consignees").
			Field("product_id").
			Unique().
			Required(),
	}
}
