package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ProductSpecification struct{ ent.Schema }

func (ProductSpecification) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "product_specifications"},
	}
}

func (ProductSpecification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("product_id", uuid.UUID{}),
		// e.g. "Dimensions", "Generic", "Additional Information"
		field.String("category").Optional().MaxLen(128),
		// e.g. "Thickness", "Material"
		field.String("sub_spec").Optional().MaxLen(256),
		field.String("value").Optional().MaxLen(512),
	}
}

func (ProductSpecification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("specifications").
			Field("product_id").
			Unique().
			Required(),
	}
}
