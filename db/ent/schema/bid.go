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

// Bid is a flat record of a GeM bid invitation document.
type Bid struct {
	ent.Schema
}

func (Bid) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bids"},
	}
}

func (Bid) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// natural key; GEM/2025/B/1234567 style
		field.String("bid_number").NotEmpty().MaxLen(128).Unique(),
		field.Time("dated").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("beneficiary").Optional().MaxLen(255),
		field.String("ministry").Optional().MaxLen(255),
		field.String("department").Optional().MaxLen(255),
		field.String("organisation").Optional().MaxLen(255),
		field.String("office_name").Optional().MaxLen(255),
		field.String("item_category").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("contract_period").Optional().MaxLen(255),
		field.Time("bid_end_datetime").Optional().Nillable(),
		field.Time("bid_open_datetime").Optional().Nillable(),
		field.Int("bid_offer_validity_days").Optional().Nillable(),
		field.Int("delivery_days").Optional().Nillable(),
		field.String("total_quantity").Optional().MaxLen(64),
		field.String("estimated_bid_value").Optional().MaxLen(64),
		field.String("similar_category").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("mse_exemption").Optional().MaxLen(10),
		field.String("startup_exemption").Optional().MaxLen(10),
		field.String("mse_purchase_preference").Optional().MaxLen(64),
		field.String("mii_purchase_preference").Optional().MaxLen(64),
		field.String("evaluation_method").Optional().MaxLen(128),
		field.String("inspection_required").Optional().MaxLen(10),
		field.String("primary_product_category").Optional().MaxLen(255),
		field.String("delivery_address").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("scope_of_supply").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("option_clause").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("source_file").Optional().MaxLen(255),
		field.String("raw_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("embedding", []float32{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Bid) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE bid -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}
