// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/obeng/tutorhub/ent/lesson"
	"github.com/obeng/tutorhub/ent/notificationevent"
	"github.com/obeng/tutorhub/ent/profile"
	"github.com/obeng/tutorhub/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescDescription is the schema descriptor for description field.
	lessonDescDescription := lessonFields[2].Descriptor()
	// lesson.DefaultDescription holds the default value on creation for the description field.
	lesson.DefaultDescription = lessonDescDescription.Default.(string)
	// lessonDescSubject is the schema descriptor for subject field.
	lessonDescSubject := lessonFields[3].Descriptor()
	// lesson.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	lesson.SubjectValidator = lessonDescSubject.Validators[0].(func(string) error)
	// lessonDescLatitude is the schema descriptor for latitude field.
	lessonDescLatitude := lessonFields[6].Descriptor()
	// lesson.DefaultLatitude holds the default value on creation for the latitude field.
	lesson.DefaultLatitude = lessonDescLatitude.Default.(float64)
	// lessonDescLongitude is the schema descriptor for longitude field.
	lessonDescLongitude := lessonFields[7].Descriptor()
	// lesson.DefaultLongitude holds the default value on creation for the longitude field.
	lesson.DefaultLongitude = lessonDescLongitude.Default.(float64)
	// lessonDescStudentUID is the schema descriptor for student_uid field.
	lessonDescStudentUID := lessonFields[8].Descriptor()
	// lesson.StudentUIDValidator is a validator for the "student_uid" field. It is called by the builders before save.
	lesson.StudentUIDValidator = lessonDescStudentUID.Validators[0].(func(string) error)
	// lessonDescMinPrice is the schema descriptor for min_price field.
	lessonDescMinPrice := lessonFields[10].Descriptor()
	// lesson.DefaultMinPrice holds the default value on creation for the min_price field.
	lesson.DefaultMinPrice = lessonDescMinPrice.Default.(float64)
	// lessonDescMaxPrice is the schema descriptor for max_price field.
	lessonDescMaxPrice := lessonFields[11].Descriptor()
	// lesson.DefaultMaxPrice holds the default value on creation for the max_price field.
	lesson.DefaultMaxPrice = lessonDescMaxPrice.Default.(float64)
	// lessonDescPrice is the schema descriptor for price field.
	lessonDescPrice := lessonFields[12].Descriptor()
	// lesson.DefaultPrice holds the default value on creation for the price field.
	lesson.DefaultPrice = lessonDescPrice.Default.(float64)
	// lessonDescStatus is the schema descriptor for status field.
	lessonDescStatus := lessonFields[13].Descriptor()
	// lesson.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	lesson.StatusValidator = lessonDescStatus.Validators[0].(func(string) error)
	// lessonDescReminderSent is the schema descriptor for reminder_sent field.
	lessonDescReminderSent := lessonFields[14].Descriptor()
	// lesson.DefaultReminderSent holds the default value on creation for the reminder_sent field.
	lesson.DefaultReminderSent = lessonDescReminderSent.Default.(bool)
	notificationeventFields := schema.NotificationEvent{}.Fields()
	_ = notificationeventFields
	// notificationeventDescRecipientUID is the schema descriptor for recipient_uid field.
	notificationeventDescRecipientUID := notificationeventFields[0].Descriptor()
	// notificationevent.RecipientUIDValidator is a validator for the "recipient_uid" field. It is called by the builders before save.
	notificationevent.RecipientUIDValidator = notificationeventDescRecipientUID.Validators[0].(func(string) error)
	// notificationeventDescReason is the schema descriptor for reason field.
	notificationeventDescReason := notificationeventFields[4].Descriptor()
	// notificationevent.DefaultReason holds the default value on creation for the reason field.
	notificationevent.DefaultReason = notificationeventDescReason.Default.(string)
	// notificationeventDescCreatedAt is the schema descriptor for created_at field.
	notificationeventDescCreatedAt := notificationeventFields[5].Descriptor()
	// notificationevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationevent.DefaultCreatedAt = notificationeventDescCreatedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescRole is the schema descriptor for role field.
	profileDescRole := profileFields[1].Descriptor()
	// profile.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	profile.RoleValidator = profileDescRole.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[2].Descriptor()
	// profile.DefaultName holds the default value on creation for the name field.
	profile.DefaultName = profileDescName.Default.(string)
	// profileDescPrice is the schema descriptor for price field.
	profileDescPrice := profileFields[5].Descriptor()
	// profile.DefaultPrice holds the default value on creation for the price field.
	profile.DefaultPrice = profileDescPrice.Default.(float64)
	// profileDescAcademicLevel is the schema descriptor for academic_level field.
	profileDescAcademicLevel := profileFields[7].Descriptor()
	// profile.DefaultAcademicLevel holds the default value on creation for the academic_level field.
	profile.DefaultAcademicLevel = profileDescAcademicLevel.Default.(int)
	// profileDescSection is the schema descriptor for section field.
	profileDescSection := profileFields[8].Descriptor()
	// profile.DefaultSection holds the default value on creation for the section field.
	profile.DefaultSection = profileDescSection.Default.(string)
	// profileDescDeviceToken is the schema descriptor for device_token field.
	profileDescDeviceToken := profileFields[9].Descriptor()
	// profile.DefaultDeviceToken holds the default value on creation for the device_token field.
	profile.DefaultDeviceToken = profileDescDeviceToken.Default.(string)
}
