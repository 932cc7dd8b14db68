// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/obeng/tutorhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldDescription, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldSubject, v))
}

// TimeSlot applies equality check predicate on the "time_slot" field. It's identical to TimeSlotEQ.
func TimeSlot(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTimeSlot, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLongitude, v))
}

// StudentUID applies equality check predicate on the "student_uid" field. It's identical to StudentUIDEQ.
func StudentUID(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldStudentUID, v))
}

// MinPrice applies equality check predicate on the "min_price" field. It's identical to MinPriceEQ.
func MinPrice(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldMinPrice, v))
}

// MaxPrice applies equality check predicate on the "max_price" field. It's identical to MaxPriceEQ.
func MaxPrice(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldMaxPrice, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPrice, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldStatus, v))
}

// ReminderSent applies equality check predicate on the "reminder_sent" field. It's identical to ReminderSentEQ.
func ReminderSent(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldReminderSent, v))
}

// RatingGrade applies equality check predicate on the "rating_grade" field. It's identical to RatingGradeEQ.
func RatingGrade(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldRatingGrade, v))
}

// RatingComment applies equality check predicate on the "rating_comment" field. It's identical to RatingCommentEQ.
func RatingComment(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldRatingComment, v))
}

// RatingAt applies equality check predicate on the "rating_at" field. It's identical to RatingAtEQ.
func RatingAt(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldRatingAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldDescription, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldSubject, v))
}

// TimeSlotEQ applies the EQ predicate on the "time_slot" field.
func TimeSlotEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldTimeSlot, v))
}

// TimeSlotNEQ applies the NEQ predicate on the "time_slot" field.
func TimeSlotNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldTimeSlot, v))
}

// TimeSlotIn applies the In predicate on the "time_slot" field.
func TimeSlotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldTimeSlot, vs...))
}

// TimeSlotNotIn applies the NotIn predicate on the "time_slot" field.
func TimeSlotNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldTimeSlot, vs...))
}

// TimeSlotGT applies the GT predicate on the "time_slot" field.
func TimeSlotGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldTimeSlot, v))
}

// TimeSlotGTE applies the GTE predicate on the "time_slot" field.
func TimeSlotGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldTimeSlot, v))
}

// TimeSlotLT applies the LT predicate on the "time_slot" field.
func TimeSlotLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldTimeSlot, v))
}

// TimeSlotLTE applies the LTE predicate on the "time_slot" field.
func TimeSlotLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldTimeSlot, v))
}

// TimeSlotContains applies the Contains predicate on the "time_slot" field.
func TimeSlotContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldTimeSlot, v))
}

// TimeSlotHasPrefix applies the HasPrefix predicate on the "time_slot" field.
func TimeSlotHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldTimeSlot, v))
}

// TimeSlotHasSuffix applies the HasSuffix predicate on the "time_slot" field.
func TimeSlotHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldTimeSlot, v))
}

// TimeSlotEqualFold applies the EqualFold predicate on the "time_slot" field.
func TimeSlotEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldTimeSlot, v))
}

// TimeSlotContainsFold applies the ContainsFold predicate on the "time_slot" field.
func TimeSlotContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldTimeSlot, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldLatitude, v))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldLongitude, v))
}

// StudentUIDEQ applies the EQ predicate on the "student_uid" field.
func StudentUIDEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldStudentUID, v))
}

// StudentUIDNEQ applies the NEQ predicate on the "student_uid" field.
func StudentUIDNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldStudentUID, v))
}

// StudentUIDIn applies the In predicate on the "student_uid" field.
func StudentUIDIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldStudentUID, vs...))
}

// StudentUIDNotIn applies the NotIn predicate on the "student_uid" field.
func StudentUIDNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldStudentUID, vs...))
}

// StudentUIDGT applies the GT predicate on the "student_uid" field.
func StudentUIDGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldStudentUID, v))
}

// StudentUIDGTE applies the GTE predicate on the "student_uid" field.
func StudentUIDGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldStudentUID, v))
}

// StudentUIDLT applies the LT predicate on the "student_uid" field.
func StudentUIDLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldStudentUID, v))
}

// StudentUIDLTE applies the LTE predicate on the "student_uid" field.
func StudentUIDLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldStudentUID, v))
}

// StudentUIDContains applies the Contains predicate on the "student_uid" field.
func StudentUIDContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldStudentUID, v))
}

// StudentUIDHasPrefix applies the HasPrefix predicate on the "student_uid" field.
func StudentUIDHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldStudentUID, v))
}

// StudentUIDHasSuffix applies the HasSuffix predicate on the "student_uid" field.
func StudentUIDHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldStudentUID, v))
}

// StudentUIDEqualFold applies the EqualFold predicate on the "student_uid" field.
func StudentUIDEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldStudentUID, v))
}

// StudentUIDContainsFold applies the ContainsFold predicate on the "student_uid" field.
func StudentUIDContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldStudentUID, v))
}

// MinPriceEQ applies the EQ predicate on the "min_price" field.
func MinPriceEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldMinPrice, v))
}

// MinPriceNEQ applies the NEQ predicate on the "min_price" field.
func MinPriceNEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldMinPrice, v))
}

// MinPriceIn applies the In predicate on the "min_price" field.
func MinPriceIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldMinPrice, vs...))
}

// MinPriceNotIn applies the NotIn predicate on the "min_price" field.
func MinPriceNotIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldMinPrice, vs...))
}

// MinPriceGT applies the GT predicate on the "min_price" field.
func MinPriceGT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldMinPrice, v))
}

// MinPriceGTE applies the GTE predicate on the "min_price" field.
func MinPriceGTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldMinPrice, v))
}

// MinPriceLT applies the LT predicate on the "min_price" field.
func MinPriceLT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldMinPrice, v))
}

// MinPriceLTE applies the LTE predicate on the "min_price" field.
func MinPriceLTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldMinPrice, v))
}

// MaxPriceEQ applies the EQ predicate on the "max_price" field.
func MaxPriceEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldMaxPrice, v))
}

// MaxPriceNEQ applies the NEQ predicate on the "max_price" field.
func MaxPriceNEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldMaxPrice, v))
}

// MaxPriceIn applies the In predicate on the "max_price" field.
func MaxPriceIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldMaxPrice, vs...))
}

// MaxPriceNotIn applies the NotIn predicate on the "max_price" field.
func MaxPriceNotIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldMaxPrice, vs...))
}

// MaxPriceGT applies the GT predicate on the "max_price" field.
func MaxPriceGT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldMaxPrice, v))
}

// MaxPriceGTE applies the GTE predicate on the "max_price" field.
func MaxPriceGTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldMaxPrice, v))
}

// MaxPriceLT applies the LT predicate on the "max_price" field.
func MaxPriceLT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldMaxPrice, v))
}

// MaxPriceLTE applies the LTE predicate on the "max_price" field.
func MaxPriceLTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldMaxPrice, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldPrice, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldStatus, v))
}

// ReminderSentEQ applies the EQ predicate on the "reminder_sent" field.
func ReminderSentEQ(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldReminderSent, v))
}

// ReminderSentNEQ applies the NEQ predicate on the "reminder_sent" field.
func ReminderSentNEQ(v bool) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldReminderSent, v))
}

// RatingGradeEQ applies the EQ predicate on the "rating_grade" field.
func RatingGradeEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldRatingGrade, v))
}

// RatingGradeNEQ applies the NEQ predicate on the "rating_grade" field.
func RatingGradeNEQ(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldRatingGrade, v))
}

// RatingGradeIn applies the In predicate on the "rating_grade" field.
func RatingGradeIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldRatingGrade, vs...))
}

// RatingGradeNotIn applies the NotIn predicate on the "rating_grade" field.
func RatingGradeNotIn(vs ...int) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldRatingGrade, vs...))
}

// RatingGradeGT applies the GT predicate on the "rating_grade" field.
func RatingGradeGT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldRatingGrade, v))
}

// RatingGradeGTE applies the GTE predicate on the "rating_grade" field.
func RatingGradeGTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldRatingGrade, v))
}

// RatingGradeLT applies the LT predicate on the "rating_grade" field.
func RatingGradeLT(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldRatingGrade, v))
}

// RatingGradeLTE applies the LTE predicate on the "rating_grade" field.
func RatingGradeLTE(v int) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldRatingGrade, v))
}

// RatingGradeIsNil applies the IsNil predicate on the "rating_grade" field.
func RatingGradeIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldRatingGrade))
}

// RatingGradeNotNil applies the NotNil predicate on the "rating_grade" field.
func RatingGradeNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldRatingGrade))
}

// RatingCommentEQ applies the EQ predicate on the "rating_comment" field.
func RatingCommentEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldRatingComment, v))
}

// RatingCommentNEQ applies the NEQ predicate on the "rating_comment" field.
func RatingCommentNEQ(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldRatingComment, v))
}

// RatingCommentIn applies the In predicate on the "rating_comment" field.
func RatingCommentIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldRatingComment, vs...))
}

// RatingCommentNotIn applies the NotIn predicate on the "rating_comment" field.
func RatingCommentNotIn(vs ...string) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldRatingComment, vs...))
}

// RatingCommentGT applies the GT predicate on the "rating_comment" field.
func RatingCommentGT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldRatingComment, v))
}

// RatingCommentGTE applies the GTE predicate on the "rating_comment" field.
func RatingCommentGTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldRatingComment, v))
}

// RatingCommentLT applies the LT predicate on the "rating_comment" field.
func RatingCommentLT(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldRatingComment, v))
}

// RatingCommentLTE applies the LTE predicate on the "rating_comment" field.
func RatingCommentLTE(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldRatingComment, v))
}

// RatingCommentContains applies the Contains predicate on the "rating_comment" field.
func RatingCommentContains(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContains(FieldRatingComment, v))
}

// RatingCommentHasPrefix applies the HasPrefix predicate on the "rating_comment" field.
func RatingCommentHasPrefix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasPrefix(FieldRatingComment, v))
}

// RatingCommentHasSuffix applies the HasSuffix predicate on the "rating_comment" field.
func RatingCommentHasSuffix(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldHasSuffix(FieldRatingComment, v))
}

// RatingCommentIsNil applies the IsNil predicate on the "rating_comment" field.
func RatingCommentIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldRatingComment))
}

// RatingCommentNotNil applies the NotNil predicate on the "rating_comment" field.
func RatingCommentNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldRatingComment))
}

// RatingCommentEqualFold applies the EqualFold predicate on the "rating_comment" field.
func RatingCommentEqualFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldEqualFold(FieldRatingComment, v))
}

// RatingCommentContainsFold applies the ContainsFold predicate on the "rating_comment" field.
func RatingCommentContainsFold(v string) predicate.Lesson {
	return predicate.Lesson(sql.FieldContainsFold(FieldRatingComment, v))
}

// RatingAtEQ applies the EQ predicate on the "rating_at" field.
func RatingAtEQ(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldEQ(FieldRatingAt, v))
}

// RatingAtNEQ applies the NEQ predicate on the "rating_at" field.
func RatingAtNEQ(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldNEQ(FieldRatingAt, v))
}

// RatingAtIn applies the In predicate on the "rating_at" field.
func RatingAtIn(vs ...time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldIn(FieldRatingAt, vs...))
}

// RatingAtNotIn applies the NotIn predicate on the "rating_at" field.
func RatingAtNotIn(vs ...time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldNotIn(FieldRatingAt, vs...))
}

// RatingAtGT applies the GT predicate on the "rating_at" field.
func RatingAtGT(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldGT(FieldRatingAt, v))
}

// RatingAtGTE applies the GTE predicate on the "rating_at" field.
func RatingAtGTE(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldGTE(FieldRatingAt, v))
}

// RatingAtLT applies the LT predicate on the "rating_at" field.
func RatingAtLT(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldLT(FieldRatingAt, v))
}

// RatingAtLTE applies the LTE predicate on the "rating_at" field.
func RatingAtLTE(v time.Time) predicate.Lesson {
	return predicate.Lesson(sql.FieldLTE(FieldRatingAt, v))
}

// RatingAtIsNil applies the IsNil predicate on the "rating_at" field.
func RatingAtIsNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldIsNull(FieldRatingAt))
}

// RatingAtNotNil applies the NotNil predicate on the "rating_at" field.
func RatingAtNotNil() predicate.Lesson {
	return predicate.Lesson(sql.FieldNotNull(FieldRatingAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lesson) predicate.Lesson {
	return predicate.Lesson(sql.NotPredicates(p))
}
