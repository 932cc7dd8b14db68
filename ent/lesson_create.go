// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obeng/tutorhub/ent/lesson"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *LessonCreate) SetDescription(v string) *LessonCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *LessonCreate) SetNillableDescription(v *string) *LessonCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *LessonCreate) SetSubject(v string) *LessonCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *LessonCreate) SetLanguages(v []string) *LessonCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetTimeSlot sets the "time_slot" field.
func (_c *LessonCreate) SetTimeSlot(v string) *LessonCreate {
	_c.mutation.SetTimeSlot(v)
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *LessonCreate) SetLatitude(v float64) *LessonCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *LessonCreate) SetNillableLatitude(v *float64) *LessonCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *LessonCreate) SetLongitude(v float64) *LessonCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *LessonCreate) SetNillableLongitude(v *float64) *LessonCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetStudentUID sets the "student_uid" field.
func (_c *LessonCreate) SetStudentUID(v string) *LessonCreate {
	_c.mutation.SetStudentUID(v)
	return _c
}

// SetTutorUids sets the "tutor_uids" field.
func (_c *LessonCreate) SetTutorUids(v []string) *LessonCreate {
	_c.mutation.SetTutorUids(v)
	return _c
}

// SetMinPrice sets the "min_price" field.
func (_c *LessonCreate) SetMinPrice(v float64) *LessonCreate {
	_c.mutation.SetMinPrice(v)
	return _c
}

// SetNillableMinPrice sets the "min_price" field if the given value is not nil.
func (_c *LessonCreate) SetNillableMinPrice(v *float64) *LessonCreate {
	if v != nil {
		_c.SetMinPrice(*v)
	}
	return _c
}

// SetMaxPrice sets the "max_price" field.
func (_c *LessonCreate) SetMaxPrice(v float64) *LessonCreate {
	_c.mutation.SetMaxPrice(v)
	return _c
}

// SetNillableMaxPrice sets the "max_price" field if the given value is not nil.
func (_c *LessonCreate) SetNillableMaxPrice(v *float64) *LessonCreate {
	if v != nil {
		_c.SetMaxPrice(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *LessonCreate) SetPrice(v float64) *LessonCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *LessonCreate) SetNillablePrice(v *float64) *LessonCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LessonCreate) SetStatus(v string) *LessonCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetReminderSent sets the "reminder_sent" field.
func (_c *LessonCreate) SetReminderSent(v bool) *LessonCreate {
	_c.mutation.SetReminderSent(v)
	return _c
}

// SetNillableReminderSent sets the "reminder_sent" field if the given value is not nil.
func (_c *LessonCreate) SetNillableReminderSent(v *bool) *LessonCreate {
	if v != nil {
		_c.SetReminderSent(*v)
	}
	return _c
}

// SetRatingGrade sets the "rating_grade" field.
func (_c *LessonCreate) SetRatingGrade(v int) *LessonCreate {
	_c.mutation.SetRatingGrade(v)
	return _c
}

// SetNillableRatingGrade sets the "rating_grade" field if the given value is not nil.
func (_c *LessonCreate) SetNillableRatingGrade(v *int) *LessonCreate {
	if v != nil {
		_c.SetRatingGrade(*v)
	}
	return _c
}

// SetRatingComment sets the "rating_comment" field.
func (_c *LessonCreate) SetRatingComment(v string) *LessonCreate {
	_c.mutation.SetRatingComment(v)
	return _c
}

// SetNillableRatingComment sets the "rating_comment" field if the given value is not nil.
func (_c *LessonCreate) SetNillableRatingComment(v *string) *LessonCreate {
	if v != nil {
		_c.SetRatingComment(*v)
	}
	return _c
}

// SetRatingAt sets the "rating_at" field.
func (_c *LessonCreate) SetRatingAt(v time.Time) *LessonCreate {
	_c.mutation.SetRatingAt(v)
	return _c
}

// SetNillableRatingAt sets the "rating_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableRatingAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetRatingAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v string) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := lesson.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Latitude(); !ok {
		v := lesson.DefaultLatitude
		_c.mutation.SetLatitude(v)
	}
	if _, ok := _c.mutation.Longitude(); !ok {
		v := lesson.DefaultLongitude
		_c.mutation.SetLongitude(v)
	}
	if _, ok := _c.mutation.MinPrice(); !ok {
		v := lesson.DefaultMinPrice
		_c.mutation.SetMinPrice(v)
	}
	if _, ok := _c.mutation.MaxPrice(); !ok {
		v := lesson.DefaultMaxPrice
		_c.mutation.SetMaxPrice(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := lesson.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		v := lesson.DefaultReminderSent
		_c.mutation.SetReminderSent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Lesson.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Lesson.description"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Lesson.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := lesson.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Lesson.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Languages(); !ok {
		return &ValidationError{Name: "languages", err: errors.New(`ent: missing required field "Lesson.languages"`)}
	}
	if _, ok := _c.mutation.TimeSlot(); !ok {
		return &ValidationError{Name: "time_slot", err: errors.New(`ent: missing required field "Lesson.time_slot"`)}
	}
	if _, ok := _c.mutation.Latitude(); !ok {
		return &ValidationError{Name: "latitude", err: errors.New(`ent: missing required field "Lesson.latitude"`)}
	}
	if _, ok := _c.mutation.Longitude(); !ok {
		return &ValidationError{Name: "longitude", err: errors.New(`ent: missing required field "Lesson.longitude"`)}
	}
	if _, ok := _c.mutation.StudentUID(); !ok {
		return &ValidationError{Name: "student_uid", err: errors.New(`ent: missing required field "Lesson.student_uid"`)}
	}
	if v, ok := _c.mutation.StudentUID(); ok {
		if err := lesson.StudentUIDValidator(v); err != nil {
			return &ValidationError{Name: "student_uid", err: fmt.Errorf(`ent: validator failed for field "Lesson.student_uid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TutorUids(); !ok {
		return &ValidationError{Name: "tutor_uids", err: errors.New(`ent: missing required field "Lesson.tutor_uids"`)}
	}
	if _, ok := _c.mutation.MinPrice(); !ok {
		return &ValidationError{Name: "min_price", err: errors.New(`ent: missing required field "Lesson.min_price"`)}
	}
	if _, ok := _c.mutation.MaxPrice(); !ok {
		return &ValidationError{Name: "max_price", err: errors.New(`ent: missing required field "Lesson.max_price"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Lesson.price"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lesson.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := lesson.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lesson.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReminderSent(); !ok {
		return &ValidationError{Name: "reminder_sent", err: errors.New(`ent: missing required field "Lesson.reminder_sent"`)}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Lesson.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(lesson.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(lesson.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.TimeSlot(); ok {
		_spec.SetField(lesson.FieldTimeSlot, field.TypeString, value)
		_node.TimeSlot = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(lesson.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(lesson.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.StudentUID(); ok {
		_spec.SetField(lesson.FieldStudentUID, field.TypeString, value)
		_node.StudentUID = value
	}
	if value, ok := _c.mutation.TutorUids(); ok {
		_spec.SetField(lesson.FieldTutorUids, field.TypeJSON, value)
		_node.TutorUids = value
	}
	if value, ok := _c.mutation.MinPrice(); ok {
		_spec.SetField(lesson.FieldMinPrice, field.TypeFloat64, value)
		_node.MinPrice = value
	}
	if value, ok := _c.mutation.MaxPrice(); ok {
		_spec.SetField(lesson.FieldMaxPrice, field.TypeFloat64, value)
		_node.MaxPrice = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(lesson.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lesson.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReminderSent(); ok {
		_spec.SetField(lesson.FieldReminderSent, field.TypeBool, value)
		_node.ReminderSent = value
	}
	if value, ok := _c.mutation.RatingGrade(); ok {
		_spec.SetField(lesson.FieldRatingGrade, field.TypeInt, value)
		_node.RatingGrade = &value
	}
	if value, ok := _c.mutation.RatingComment(); ok {
		_spec.SetField(lesson.FieldRatingComment, field.TypeString, value)
		_node.RatingComment = &value
	}
	if value, ok := _c.mutation.RatingAt(); ok {
		_spec.SetField(lesson.FieldRatingAt, field.TypeTime, value)
		_node.RatingAt = &value
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
