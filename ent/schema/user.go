package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("google_id").MaxLen(255).Unique().Optional().Nillable(),
		field.String("email").MaxLen(255).Unique().NotEmpty(),
		field.String("name").MaxLen(100).NotEmpty(),
		field.String("picture").Optional().Nillable(),

		field.Enum("role").Values("citizen", "admin").Default("citizen"),

		field.Time("created_at").Default(nowUTC).Immutable(),
		field.Time("last_login").Default(nowUTC),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reports", Report.Type),
		edge.To("upvotes", Upvote.Type),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
