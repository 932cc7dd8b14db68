// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "subject", Type: field.TypeString},
		{Name: "languages", Type: field.TypeJSON},
		{Name: "time_slot", Type: field.TypeString},
		{Name: "latitude", Type: field.TypeFloat64, Default: 0},
		{Name: "longitude", Type: field.TypeFloat64, Default: 0},
		{Name: "student_uid", Type: field.TypeString},
		{Name: "tutor_uids", Type: field.TypeJSON},
		{Name: "min_price", Type: field.TypeFloat64, Default: 0},
		{Name: "max_price", Type: field.TypeFloat64, Default: 0},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "reminder_sent", Type: field.TypeBool, Default: false},
		{Name: "rating_grade", Type: field.TypeInt, Nullable: true},
		{Name: "rating_comment", Type: field.TypeString, Nullable: true},
		{Name: "rating_at", Type: field.TypeTime, Nullable: true},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_status",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[13]},
			},
			{
				Name:    "lesson_student_uid",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[8]},
			},
		},
	}
	// NotificationEventsColumns holds the columns for the "notification_events" table.
	NotificationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "recipient_uid", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString},
		{Name: "delivered", Type: field.TypeBool},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationEventsTable holds the schema information for the "notification_events" table.
	NotificationEventsTable = &schema.Table{
		Name:       "notification_events",
		Columns:    NotificationEventsColumns,
		PrimaryKey: []*schema.Column{NotificationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationevent_recipient_uid",
				Unique:  false,
				Columns: []*schema.Column{NotificationEventsColumns[1]},
			},
			{
				Name:    "notificationevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationEventsColumns[6]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "subjects", Type: field.TypeJSON, Nullable: true},
		{Name: "languages", Type: field.TypeJSON, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "schedule", Type: field.TypeJSON, Nullable: true},
		{Name: "academic_level", Type: field.TypeInt, Default: 0},
		{Name: "section", Type: field.TypeString, Default: ""},
		{Name: "device_token", Type: field.TypeString, Default: ""},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_role",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonsTable,
		NotificationEventsTable,
		ProfilesTable,
	}
)

func init() {
}
