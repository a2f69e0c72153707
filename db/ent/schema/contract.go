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

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// natural key; GEMC-511687700952455 style
		field.String("contract_no").NotEmpty().MaxLen(64).Unique(),
		field.Time("generated_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("raw_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("embedding", []float32{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE contract -> ONE detail block each (FK lives on the detail table)
		edge.To("organisation", OrganisationDetail.Type).Unique(),
		edge.To("buyer", BuyerDetail.Type).Unique(),
		edge.To("financial_approval", FinancialApproval.Type).Unique(),
		edge.To("paying_authority", PayingAuthority.Type).Unique(),
		edge.To("seller", SellerDetail.Type).Unique(),
		edge.To("epbg", EPBGDetail.Type).Unique(),
		// ONE contract -> MANY products / terms clauses
		edge.To("products", Product.Type),
		edge.To("terms", TermsAndCondition.Type),
		// ONE contract -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}
