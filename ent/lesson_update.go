// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/obeng/tutorhub/ent/lesson"
	"github.com/obeng/tutorhub/ent/predicate"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LessonUpdate) SetDescription(v string) *LessonUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableDescription(v *string) *LessonUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonUpdate) SetSubject(v string) *LessonUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableSubject(v *string) *LessonUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *LessonUpdate) SetLanguages(v []string) *LessonUpdate {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *LessonUpdate) AppendLanguages(v []string) *LessonUpdate {
	_u.mutation.AppendLanguages(v)
	return _u
}

// SetTimeSlot sets the "time_slot" field.
func (_u *LessonUpdate) SetTimeSlot(v string) *LessonUpdate {
	_u.mutation.SetTimeSlot(v)
	return _u
}

// SetNillableTimeSlot sets the "time_slot" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTimeSlot(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTimeSlot(*v)
	}
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *LessonUpdate) SetLatitude(v float64) *LessonUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLatitude(v *float64) *LessonUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *LessonUpdate) AddLatitude(v float64) *LessonUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *LessonUpdate) SetLongitude(v float64) *LessonUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableLongitude(v *float64) *LessonUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *LessonUpdate) AddLongitude(v float64) *LessonUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetTutorUids sets the "tutor_uids" field.
func (_u *LessonUpdate) SetTutorUids(v []string) *LessonUpdate {
	_u.mutation.SetTutorUids(v)
	return _u
}

// AppendTutorUids appends value to the "tutor_uids" field.
func (_u *LessonUpdate) AppendTutorUids(v []string) *LessonUpdate {
	_u.mutation.AppendTutorUids(v)
	return _u
}

// SetMinPrice sets the "min_price" field.
func (_u *LessonUpdate) SetMinPrice(v float64) *LessonUpdate {
	_u.mutation.ResetMinPrice()
	_u.mutation.SetMinPrice(v)
	return _u
}

// SetNillableMinPrice sets the "min_price" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableMinPrice(v *float64) *LessonUpdate {
	if v != nil {
		_u.SetMinPrice(*v)
	}
	return _u
}

// AddMinPrice adds value to the "min_price" field.
func (_u *LessonUpdate) AddMinPrice(v float64) *LessonUpdate {
	_u.mutation.AddMinPrice(v)
	return _u
}

// SetMaxPrice sets the "max_price" field.
func (_u *LessonUpdate) SetMaxPrice(v float64) *LessonUpdate {
	_u.mutation.ResetMaxPrice()
	_u.mutation.SetMaxPrice(v)
	return _u
}

// SetNillableMaxPrice sets the "max_price" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableMaxPrice(v *float64) *LessonUpdate {
	if v != nil {
		_u.SetMaxPrice(*v)
	}
	return _u
}

// AddMaxPrice adds value to the "max_price" field.
func (_u *LessonUpdate) AddMaxPrice(v float64) *LessonUpdate {
	_u.mutation.AddMaxPrice(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *LessonUpdate) SetPrice(v float64) *LessonUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *LessonUpdate) SetNillablePrice(v *float64) *LessonUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *LessonUpdate) AddPrice(v float64) *LessonUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LessonUpdate) SetStatus(v string) *LessonUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableStatus(v *string) *LessonUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReminderSent sets the "reminder_sent" field.
func (_u *LessonUpdate) SetReminderSent(v bool) *LessonUpdate {
	_u.mutation.SetReminderSent(v)
	return _u
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableReminderSent(v *bool) *LessonUpdate {
	if v != nil {
		_u.SetReminderSent(*v)
	}
	return _u
}

// SetRatingGrade sets the "rating_grade" field.
func (_u *LessonUpdate) SetRatingGrade(v int) *LessonUpdate {
	_u.mutation.ResetRatingGrade()
	_u.mutation.SetRatingGrade(v)
	return _u
}

// SetNillableRatingGrade sets the "rating_grade" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableRatingGrade(v *int) *LessonUpdate {
	if v != nil {
		_u.SetRatingGrade(*v)
	}
	return _u
}

// AddRatingGrade adds value to the "rating_grade" field.
func (_u *LessonUpdate) AddRatingGrade(v int) *LessonUpdate {
	_u.mutation.AddRatingGrade(v)
	return _u
}

// ClearRatingGrade clears the value of the "rating_grade" field.
func (_u *LessonUpdate) ClearRatingGrade() *LessonUpdate {
	_u.mutation.ClearRatingGrade()
	return _u
}

// SetRatingComment sets the "rating_comment" field.
func (_u *LessonUpdate) SetRatingComment(v string) *LessonUpdate {
	_u.mutation.SetRatingComment(v)
	return _u
}

// SetNillableRatingComment sets the "rating_comment" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableRatingComment(v *string) *LessonUpdate {
	if v != nil {
		_u.SetRatingComment(*v)
	}
	return _u
}

// ClearRatingComment clears the value of the "rating_comment" field.
func (_u *LessonUpdate) ClearRatingComment() *LessonUpdate {
	_u.mutation.ClearRatingComment()
	return _u
}

// SetRatingAt sets the "rating_at" field.
func (_u *LessonUpdate) SetRatingAt(v time.Time) *LessonUpdate {
	_u.mutation.SetRatingAt(v)
	return _u
}

// SetNillableRatingAt sets the "rating_at" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableRatingAt(v *time.Time) *LessonUpdate {
	if v != nil {
		_u.SetRatingAt(*v)
	}
	return _u
}

// ClearRatingAt clears the value of the "rating_at" field.
func (_u *LessonUpdate) ClearRatingAt() *LessonUpdate {
	_u.mutation.ClearRatingAt()
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := lesson.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Lesson.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lesson.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lesson.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lesson.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(lesson.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldLanguages, value)
		})
	}
	if value, ok := _u.mutation.TimeSlot(); ok {
		_spec.SetField(lesson.FieldTimeSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(lesson.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(lesson.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(lesson.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(lesson.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TutorUids(); ok {
		_spec.SetField(lesson.FieldTutorUids, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTutorUids(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldTutorUids, value)
		})
	}
	if value, ok := _u.mutation.MinPrice(); ok {
		_spec.SetField(lesson.FieldMinPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinPrice(); ok {
		_spec.AddField(lesson.FieldMinPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxPrice(); ok {
		_spec.SetField(lesson.FieldMaxPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxPrice(); ok {
		_spec.AddField(lesson.FieldMaxPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(lesson.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(lesson.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReminderSent(); ok {
		_spec.SetField(lesson.FieldReminderSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RatingGrade(); ok {
		_spec.SetField(lesson.FieldRatingGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingGrade(); ok {
		_spec.AddField(lesson.FieldRatingGrade, field.TypeInt, value)
	}
	if _u.mutation.RatingGradeCleared() {
		_spec.ClearField(lesson.FieldRatingGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.RatingComment(); ok {
		_spec.SetField(lesson.FieldRatingComment, field.TypeString, value)
	}
	if _u.mutation.RatingCommentCleared() {
		_spec.ClearField(lesson.FieldRatingComment, field.TypeString)
	}
	if value, ok := _u.mutation.RatingAt(); ok {
		_spec.SetField(lesson.FieldRatingAt, field.TypeTime, value)
	}
	if _u.mutation.RatingAtCleared() {
		_spec.ClearField(lesson.FieldRatingAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LessonUpdateOne) SetDescription(v string) *LessonUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableDescription(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *LessonUpdateOne) SetSubject(v string) *LessonUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableSubject(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *LessonUpdateOne) SetLanguages(v []string) *LessonUpdateOne {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *LessonUpdateOne) AppendLanguages(v []string) *LessonUpdateOne {
	_u.mutation.AppendLanguages(v)
	return _u
}

// SetTimeSlot sets the "time_slot" field.
func (_u *LessonUpdateOne) SetTimeSlot(v string) *LessonUpdateOne {
	_u.mutation.SetTimeSlot(v)
	return _u
}

// SetNillableTimeSlot sets the "time_slot" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTimeSlot(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTimeSlot(*v)
	}
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *LessonUpdateOne) SetLatitude(v float64) *LessonUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLatitude(v *float64) *LessonUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *LessonUpdateOne) AddLatitude(v float64) *LessonUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *LessonUpdateOne) SetLongitude(v float64) *LessonUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableLongitude(v *float64) *LessonUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *LessonUpdateOne) AddLongitude(v float64) *LessonUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// SetTutorUids sets the "tutor_uids" field.
func (_u *LessonUpdateOne) SetTutorUids(v []string) *LessonUpdateOne {
	_u.mutation.SetTutorUids(v)
	return _u
}

// AppendTutorUids appends value to the "tutor_uids" field.
func (_u *LessonUpdateOne) AppendTutorUids(v []string) *LessonUpdateOne {
	_u.mutation.AppendTutorUids(v)
	return _u
}

// SetMinPrice sets the "min_price" field.
func (_u *LessonUpdateOne) SetMinPrice(v float64) *LessonUpdateOne {
	_u.mutation.ResetMinPrice()
	_u.mutation.SetMinPrice(v)
	return _u
}

// SetNillableMinPrice sets the "min_price" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableMinPrice(v *float64) *LessonUpdateOne {
	if v != nil {
		_u.SetMinPrice(*v)
	}
	return _u
}

// AddMinPrice adds value to the "min_price" field.
func (_u *LessonUpdateOne) AddMinPrice(v float64) *LessonUpdateOne {
	_u.mutation.AddMinPrice(v)
	return _u
}

// SetMaxPrice sets the "max_price" field.
func (_u *LessonUpdateOne) SetMaxPrice(v float64) *LessonUpdateOne {
	_u.mutation.ResetMaxPrice()
	_u.mutation.SetMaxPrice(v)
	return _u
}

// SetNillableMaxPrice sets the "max_price" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableMaxPrice(v *float64) *LessonUpdateOne {
	if v != nil {
		_u.SetMaxPrice(*v)
	}
	return _u
}

// AddMaxPrice adds value to the "max_price" field.
func (_u *LessonUpdateOne) AddMaxPrice(v float64) *LessonUpdateOne {
	_u.mutation.AddMaxPrice(v)
	return _u
}

// SetPrice sets the "price" field.
func (_u *LessonUpdateOne) SetPrice(v float64) *LessonUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillablePrice(v *float64) *LessonUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *LessonUpdateOne) AddPrice(v float64) *LessonUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LessonUpdateOne) SetStatus(v string) *LessonUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableStatus(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReminderSent sets the "reminder_sent" field.
func (_u *LessonUpdateOne) SetReminderSent(v bool) *LessonUpdateOne {
	_u.mutation.SetReminderSent(v)
	return _u
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableReminderSent(v *bool) *LessonUpdateOne {
	if v != nil {
		_u.SetReminderSent(*v)
	}
	return _u
}

// SetRatingGrade sets the "rating_grade" field.
func (_u *LessonUpdateOne) SetRatingGrade(v int) *LessonUpdateOne {
	_u.mutation.ResetRatingGrade()
	_u.mutation.SetRatingGrade(v)
	return _u
}

// SetNillableRatingGrade sets the "rating_grade" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableRatingGrade(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetRatingGrade(*v)
	}
	return _u
}

// AddRatingGrade adds value to the "rating_grade" field.
func (_u *LessonUpdateOne) AddRatingGrade(v int) *LessonUpdateOne {
	_u.mutation.AddRatingGrade(v)
	return _u
}

// ClearRatingGrade clears the value of the "rating_grade" field.
func (_u *LessonUpdateOne) ClearRatingGrade() *LessonUpdateOne {
	_u.mutation.ClearRatingGrade()
	return _u
}

// SetRatingComment sets the "rating_comment" field.
func (_u *LessonUpdateOne) SetRatingComment(v string) *LessonUpdateOne {
	_u.mutation.SetRatingComment(v)
	return _u
}

// SetNillableRatingComment sets the "rating_comment" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableRatingComment(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetRatingComment(*v)
	}
	return _u
}

// ClearRatingComment clears the value of the "rating_comment" field.
func (_u *LessonUpdateOne) ClearRatingComment() *LessonUpdateOne {
	_u.mutation.ClearRatingComment()
	return _u
}

// SetRatingAt sets the "rating_at" field.
func (_u *LessonUpdateOne) SetRatingAt(v time.Time) *LessonUpdateOne {
	_u.mutation.SetRatingAt(v)
	return _u
}

// SetNillableRatingAt sets the "rating_at" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableRatingAt(v *time.Time) *LessonUpdateOne {
	if v != nil {
		_u.SetRatingAt(*v)
	}
	return _u
}

// ClearRatingAt clears the value of the "rating_at" field.
func (_u *LessonUpdateOne) ClearRatingAt() *LessonUpdateOne {
	_u.mutation.ClearRatingAt()
	return _u
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := lesson.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Lesson.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lesson.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lesson.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(lesson.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(lesson.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldLanguages, value)
		})
	}
	if value, ok := _u.mutation.TimeSlot(); ok {
		_spec.SetField(lesson.FieldTimeSlot, field.TypeString, value)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(lesson.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(lesson.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(lesson.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(lesson.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TutorUids(); ok {
		_spec.SetField(lesson.FieldTutorUids, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTutorUids(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lesson.FieldTutorUids, value)
		})
	}
	if value, ok := _u.mutation.MinPrice(); ok {
		_spec.SetField(lesson.FieldMinPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinPrice(); ok {
		_spec.AddField(lesson.FieldMinPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxPrice(); ok {
		_spec.SetField(lesson.FieldMaxPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxPrice(); ok {
		_spec.AddField(lesson.FieldMaxPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(lesson.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(lesson.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReminderSent(); ok {
		_spec.SetField(lesson.FieldReminderSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RatingGrade(); ok {
		_spec.SetField(lesson.FieldRatingGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRatingGrade(); ok {
		_spec.AddField(lesson.FieldRatingGrade, field.TypeInt, value)
	}
	if _u.mutation.RatingGradeCleared() {
		_spec.ClearField(lesson.FieldRatingGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.RatingComment(); ok {
		_spec.SetField(lesson.FieldRatingComment, field.TypeString, value)
	}
	if _u.mutation.RatingCommentCleared() {
		_spec.ClearField(lesson.FieldRatingComment, field.TypeString)
	}
	if value, ok := _u.mutation.RatingAt(); ok {
		_spec.SetField(lesson.FieldRatingAt, field.TypeTime, value)
	}
	if _u.mutation.RatingAtCleared() {
		_spec.ClearField(lesson.FieldRatingAt, field.TypeTime)
	}
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
