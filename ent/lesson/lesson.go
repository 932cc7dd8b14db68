// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lesson type in the database.
	Label = "lesson"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldLanguages holds the string denoting the languages field in the database.
	FieldLanguages = "languages"
	// FieldTimeSlot holds the string denoting the time_slot field in the database.
	FieldTimeSlot = "time_slot"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldStudentUID holds the string denoting the student_uid field in the database.
	FieldStudentUID = "student_uid"
	// FieldTutorUids holds the string denoting the tutor_uids field in the database.
	FieldTutorUids = "tutor_uids"
	// FieldMinPrice holds the string denoting the min_price field in the database.
	FieldMinPrice = "min_price"
	// FieldMaxPrice holds the string denoting the max_price field in the database.
	FieldMaxPrice = "max_price"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReminderSent holds the string denoting the reminder_sent field in the database.
	FieldReminderSent = "reminder_sent"
	// FieldRatingGrade holds the string denoting the rating_grade field in the database.
	FieldRatingGrade = "rating_grade"
	// FieldRatingComment holds the string denoting the rating_comment field in the database.
	FieldRatingComment = "rating_comment"
	// FieldRatingAt holds the string denoting the rating_at field in the database.
	FieldRatingAt = "rating_at"
	// Table holds the table name of the lesson in the database.
	Table = "lessons"
)

// Columns holds all SQL columns for lesson fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldSubject,
	FieldLanguages,
	FieldTimeSlot,
	FieldLatitude,
	FieldLongitude,
	FieldStudentUID,
	FieldTutorUids,
	FieldMinPrice,
	FieldMaxPrice,
	FieldPrice,
	FieldStatus,
	FieldReminderSent,
	FieldRatingGrade,
	FieldRatingComment,
	FieldRatingAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultLatitude holds the default value on creation for the "latitude" field.
	DefaultLatitude float64
	// DefaultLongitude holds the default value on creation for the "longitude" field.
	DefaultLongitude float64
	// StudentUIDValidator is a validator for the "student_uid" field. It is called by the builders before save.
	StudentUIDValidator func(string) error
	// DefaultMinPrice holds the default value on creation for the "min_price" field.
	DefaultMinPrice float64
	// DefaultMaxPrice holds the default value on creation for the "max_price" field.
	DefaultMaxPrice float64
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultReminderSent holds the default value on creation for the "reminder_sent" field.
	DefaultReminderSent bool
)

// OrderOption defines the ordering options for the Lesson queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTimeSlot orders the results by the time_slot field.
func ByTimeSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSlot, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// ByStudentUID orders the results by the student_uid field.
func ByStudentUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentUID, opts...).ToFunc()
}

// ByMinPrice orders the results by the min_price field.
func ByMinPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinPrice, opts...).ToFunc()
}

// ByMaxPrice orders the results by the max_price field.
func ByMaxPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxPrice, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReminderSent orders the results by the reminder_sent field.
func ByReminderSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderSent, opts...).ToFunc()
}

// ByRatingGrade orders the results by the rating_grade field.
func ByRatingGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingGrade, opts...).ToFunc()
}

// ByRatingComment orders the results by the rating_comment field.
func ByRatingComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingComment, opts...).ToFunc()
}

// ByRatingAt orders the results by the rating_at field.
func ByRatingAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingAt, opts...).ToFunc()
}
