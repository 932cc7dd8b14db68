package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is the persisted form of a lesson document. Field names are a
// contract with the store schema and must round-trip losslessly:
// status and subject as strings, languages and tutor_uids as arrays,
// the rating as nillable columns.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Store-generated opaque UUID"),
		field.String("title"),
		field.String("description").
			Default(""),
		field.String("subject").
			NotEmpty(),
		field.JSON("languages", []string{}),
		field.String("time_slot").
			Comment("dd/MM/yyyy'T'HH:mm:ss, or the instant sentinel"),
		field.Float("latitude").
			Default(0),
		field.Float("longitude").
			Default(0),
		field.String("student_uid").
			NotEmpty().
			Immutable(),
		field.JSON("tutor_uids", []string{}),
		field.Float("min_price").
			Default(0),
		field.Float("max_price").
			Default(0),
		field.Float("price").
			Default(0),
		field.String("status").
			NotEmpty(),
		field.Bool("reminder_sent").
			Default(false),
		field.Int("rating_grade").
			Optional().
			Nillable(),
		field.String("rating_comment").
			Optional().
			Nillable(),
		field.Time("rating_at").
			Optional().
			Nillable(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("student_uid"),
	}
}
