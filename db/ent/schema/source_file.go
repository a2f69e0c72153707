package schema

import (
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

type SourceFile struct {
	ent.Schema
}

func (SourceFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "source_files"},
	}
}

func (SourceFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("doc_type").
			Default(string(constants.DocTypeUnknown)).
			Validate(utils.EnumValidator(constants.DocTypesAsStringSlice()...)),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (SourceFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (SourceFile) Indexes() []ent.Index {
	return []ent.Index{
		// same bytes ingest once, regardless of path or filename
		index.Fields("content_hash").Unique(),
		index.Fields("uploaded_at"),
	}
}
