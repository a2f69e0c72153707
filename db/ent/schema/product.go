package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Product struct{ ent.Schema }

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("product_name").NotEmpty().MaxLen(512),
		field.String("brand").Optional().MaxLen(256),
		field.String("brand_type").Optional().MaxLen(128),
		field.String("catalogue_status").Optional().MaxLen(256),
		field.String("selling_as").Optional().MaxLen(256),
		field.String("category_name_quadrant").Optional().MaxLen(256),
		field.String("model").Optional().MaxLen(256),
		field.String("hsn_code").Optional().MaxLen(64),
		// numeric columns are stored as text: source PDFs emit values like
		// "1,408.5" and "520 NA 520" that must survive round-trips untouched
		field.String("ordered_quantity").Optional().MaxLen(64),
		field.String("unit").Optional().MaxLen(64),
		field.String("unit_price").Optional().MaxLen(64),
		field.String("tax_bifurcation").Optional().MaxLen(64),
		field.String("total_price").Optional().MaxLen(64),
		field.String("note").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("embedding", []float32{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY products -> ONE contract
		edge.From("contract", Contract.Type).
			Ref("products").
			Field("contract_id").
			Unique().
			Required(),
		// ONE product -> MANY specification rows / consignee delivery rows
		edge.To("specifications", ProductSpecification.Type),
		edge.To("consignees", ConsigneeDetail.Type),
	}
}
