package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type FinancialApproval struct{ ent.Schema }

func (FinancialApproval) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "financial_approvals"},
	}
}

func (FinancialApproval) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.Bool("ifd_concurrence").Default(false),
		field.String("admin_approval_designation").Optional().MaxLen(256),
		field.String("financial_approval_designation").Optional().MaxLen(256),
	}
}

func (FinancialApproval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("financial_approval").
			Field("contract_id").
			Unique().
			Required(),
	}
}
