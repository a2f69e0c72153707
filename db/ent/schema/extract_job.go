package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/gemdocs/procurement-tracker/constants"
	"github.com/gemdocs/procurement-tracker/db/ent/schema/utils"
	"github.com/google/uuid"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_jobs"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("contract_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("bid_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("doc_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.DocTypesAsStringSlice()...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		// text acquisition method, e.g. "pdf_text"
		field.String("method").Optional().Nillable(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", SourceFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
		edge.From("contract", Contract.Type).
			Ref("jobs").
			Field("contract_id").
			Unique(),
		edge.From("bid", Bid.Type).
			Ref("jobs").
			Field("bid_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("file_id"),
		index.Fields("contract_id"),
		index.Fields("bid_id"),
	}
}
