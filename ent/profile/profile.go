// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSubjects holds the string denoting the subjects field in the database.
	FieldSubjects = "subjects"
	// FieldLanguages holds the string denoting the languages field in the database.
	FieldLanguages = "languages"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldSchedule holds the string denoting the schedule field in the database.
	FieldSchedule = "schedule"
	// FieldAcademicLevel holds the string denoting the academic_level field in the database.
	FieldAcademicLevel = "academic_level"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldDeviceToken holds the string denoting the device_token field in the database.
	FieldDeviceToken = "device_token"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldRole,
	FieldName,
	FieldSubjects,
	FieldLanguages,
	FieldPrice,
	FieldSchedule,
	FieldAcademicLevel,
	FieldSection,
	FieldDeviceToken,
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
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// DefaultAcademicLevel holds the default value on creation for the "academic_level" field.
	DefaultAcademicLevel int
	// DefaultSection holds the default value on creation for the "section" field.
	DefaultSection string
	// DefaultDeviceToken holds the default value on creation for the "device_token" field.
	DefaultDeviceToken string
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByAcademicLevel orders the results by the academic_level field.
func ByAcademicLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcademicLevel, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByDeviceToken orders the results by the device_token field.
func ByDeviceToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceToken, opts...).ToFunc()
}
