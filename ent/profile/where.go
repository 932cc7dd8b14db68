// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
	"github.com/obeng/tutorhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldID, id))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldRole, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPrice, v))
}

// AcademicLevel applies equality check predicate on the "academic_level" field. It's identical to AcademicLevelEQ.
func AcademicLevel(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAcademicLevel, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSection, v))
}

// DeviceToken applies equality check predicate on the "device_token" field. It's identical to DeviceTokenEQ.
func DeviceToken(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDeviceToken, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldRole, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldName, v))
}

// SubjectsIsNil applies the IsNil predicate on the "subjects" field.
func SubjectsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldSubjects))
}

// SubjectsNotNil applies the NotNil predicate on the "subjects" field.
func SubjectsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldSubjects))
}

// LanguagesIsNil applies the IsNil predicate on the "languages" field.
func LanguagesIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLanguages))
}

// LanguagesNotNil applies the NotNil predicate on the "languages" field.
func LanguagesNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLanguages))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldPrice, v))
}

// ScheduleIsNil applies the IsNil predicate on the "schedule" field.
func ScheduleIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldSchedule))
}

// ScheduleNotNil applies the NotNil predicate on the "schedule" field.
func ScheduleNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldSchedule))
}

// AcademicLevelEQ applies the EQ predicate on the "academic_level" field.
func AcademicLevelEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAcademicLevel, v))
}

// AcademicLevelNEQ applies the NEQ predicate on the "academic_level" field.
func AcademicLevelNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAcademicLevel, v))
}

// AcademicLevelIn applies the In predicate on the "academic_level" field.
func AcademicLevelIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAcademicLevel, vs...))
}

// AcademicLevelNotIn applies the NotIn predicate on the "academic_level" field.
func AcademicLevelNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAcademicLevel, vs...))
}

// AcademicLevelGT applies the GT predicate on the "academic_level" field.
func AcademicLevelGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAcademicLevel, v))
}

// AcademicLevelGTE applies the GTE predicate on the "academic_level" field.
func AcademicLevelGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAcademicLevel, v))
}

// AcademicLevelLT applies the LT predicate on the "academic_level" field.
func AcademicLevelLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAcademicLevel, v))
}

// AcademicLevelLTE applies the LTE predicate on the "academic_level" field.
func AcademicLevelLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAcademicLevel, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldSection, v))
}

// DeviceTokenEQ applies the EQ predicate on the "device_token" field.
func DeviceTokenEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDeviceToken, v))
}

// DeviceTokenNEQ applies the NEQ predicate on the "device_token" field.
func DeviceTokenNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDeviceToken, v))
}

// DeviceTokenIn applies the In predicate on the "device_token" field.
func DeviceTokenIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDeviceToken, vs...))
}

// DeviceTokenNotIn applies the NotIn predicate on the "device_token" field.
func DeviceTokenNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDeviceToken, vs...))
}

// DeviceTokenGT applies the GT predicate on the "device_token" field.
func DeviceTokenGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDeviceToken, v))
}

// DeviceTokenGTE applies the GTE predicate on the "device_token" field.
func DeviceTokenGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDeviceToken, v))
}

// DeviceTokenLT applies the LT predicate on the "device_token" field.
func DeviceTokenLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDeviceToken, v))
}

// DeviceTokenLTE applies the LTE predicate on the "device_token" field.
func DeviceTokenLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDeviceToken, v))
}

// DeviceTokenContains applies the Contains predicate on the "device_token" field.
func DeviceTokenContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldDeviceToken, v))
}

// DeviceTokenHasPrefix applies the HasPrefix predicate on the "device_token" field.
func DeviceTokenHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldDeviceToken, v))
}

// DeviceTokenHasSuffix applies the HasSuffix predicate on the "device_token" field.
func DeviceTokenHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldDeviceToken, v))
}

// DeviceTokenEqualFold applies the EqualFold predicate on the "device_token" field.
func DeviceTokenEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldDeviceToken, v))
}

// DeviceTokenContainsFold applies the ContainsFold predicate on the "device_token" field.
func DeviceTokenContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldDeviceToken, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
