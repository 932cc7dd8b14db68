package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is the persisted form of a participant. The schedule grid is
// stored flattened as exactly 84 ints (7 days x 12 hourly slots).
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Participant UID"),
		field.String("role").
			NotEmpty(),
		field.String("name").
			Default(""),
		field.JSON("subjects", []string{}).
			Optional(),
		field.JSON("languages", []string{}).
			Optional(),
		field.Float("price").
			Default(0),
		field.JSON("schedule", []int{}).
			Optional().
			Comment("Flattened 7x12 availability grid, boolean-as-int"),
		field.Int("academic_level").
			Default(0),
		field.String("section").
			Default(""),
		field.String("device_token").
			Default(""),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}
