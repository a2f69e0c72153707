package schema

import (
	"errors"
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// rePhone mirrors the GeM document family: digits, spaces, +, -, parentheses.
var rePhone = regexp.MustCompile(`^[\d\-\+\s\(\)]{3,30}$`)

var errInvalidPhone = errors.New("invalid phone number")

func phoneValidator(s string) error {
	if s == "" || rePhone.MatchString(s) {
		return nil
	}
	return errInvalidPhone
}

type BuyerDetail struct{ ent.Schema }

func (BuyerDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "buyer_details"},
	}
}

func (BuyerDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("contract_id", uuid.UUID{}),
		field.String("designation").Optional().MaxLen(128),
		field.String("contact_no").Optional().MaxLen(30).
			Validate(phoneValidator),
		field.String("email").Optional().MaxLen(254),
		field.String("gstin").Optional().MaxLen(32),
		field.String("address").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (BuyerDetail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contract", Contract.Type).
			Ref("buyer").
			Field("contract_id").
			Unique().
			Required(),
	}
}
