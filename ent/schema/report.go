package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Report struct {
	ent.Schema
}

func (Report) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),

		field.String("title").NotEmpty().MaxLen(255),
		field.Text("description").NotEmpty(),

		field.Enum("category").
			Values("pothole", "garbage", "streetlight", "water", "traffic", "other").
			Default("other"),
		field.Enum("urgency").
			Values("low", "medium", "high").
			Default("medium"),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),

		field.Float("latitude"),
		field.Float("longitude"),
		field.String("address").Optional().Nillable(),

		field.Strings("photos").Optional(),

		field.UUID("reported_by", uuid.UUID{}).Immutable(),
		field.String("reporter_email").MaxLen(255).Immutable(),
		field.String("reporter_name").MaxLen(100).Immutable(),

		field.Enum("status").
			NamedValues(
				"Pending", "pending",
				"InProgress", "in-progress",
				"Resolved", "resolved",
				"Rejected", "rejected",
			).
			Default("pending"),

		field.Int("upvote_count").Default(0).Min(0),

		field.UUID("updated_by", uuid.UUID{}).Optional().Nillable(),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("reporter", User.Type).
			Ref("reports").
			Field("reported_by").
			Unique().
			Required().
			Immutable(),

		edge.To("status_changes", StatusChange.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("upvotes", Upvote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("category"),
		index.Fields("created_at"),
		index.Fields("reported_by"),
		index.Fields("latitude", "longitude"),
		index.Fields("upvote_count"),
	}
}
