package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationEvent records every outbound notification attempt,
// delivered or dropped. Notification failure never affects lesson
// state, so this log is the only place drops are visible.
type NotificationEvent struct {
	ent.Schema
}

func (NotificationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("recipient_uid").
			NotEmpty(),
		field.String("title"),
		field.String("body"),
		field.Bool("delivered"),
		field.String("reason").
			Default("").
			Comment("Why a drop happened: missing profile, missing token, transport error"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (NotificationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_uid"),
		index.Fields("created_at"),
	}
}
