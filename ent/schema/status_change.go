package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// StatusChange is the append-only audit trail of report status
// transitions. Rows are never updated or deleted individually; they
// only disappear by cascade when the owning report is removed.
type StatusChange struct {
	ent.Schema
}

func (StatusChange) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),

		field.UUID("report_id", uuid.UUID{}).Immutable(),

		field.Enum("status").
			NamedValues(
				"Pending", "pending",
				"InProgress", "in-progress",
				"Resolved", "resolved",
				"Rejected", "rejected",
			).
			Immutable(),

		field.UUID("changed_by", uuid.UUID{}).Immutable(),
		field.Text("notes").Optional().Immutable(),
		field.Time("changed_at").Default(nowUTC).Immutable(),
	}
}

func (StatusChange) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("status_changes").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (StatusChange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "changed_at"),
	}
}
