package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Upvote records one user's endorsement of one report. The unique
// (report_id, user_id) index makes membership per-user, per-report,
// boolean; Report.upvote_count is only ever mutated in the same
// transaction as rows of this table.
type Upvote struct {
	ent.Schema
}

func (Upvote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.UUID("report_id", uuid.UUID{}).Immutable(),
		field.UUID("user_id", uuid.UUID{}).Immutable(),
		field.Time("created_at").Default(nowUTC).Immutable(),
	}
}

func (Upvote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("upvotes").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
		edge.From("user", User.Type).
			Ref("upvotes").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Upvote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "user_id").Unique(),
		index.Fields("user_id"),
	}
}
