// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/obeng/tutorhub/ent/lesson"
	"github.com/obeng/tutorhub/ent/notificationevent"
	"github.com/obeng/tutorhub/ent/predicate"
	"github.com/obeng/tutorhub/ent/profile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLesson            = "Lesson"
	TypeNotificationEvent = "NotificationEvent"
	TypeProfile           = "Profile"
)

// LessonMutation represents an operation that mutates the Lesson nodes in the graph.
type LessonMutation struct {
	config
	op               Op
	typ              string
	id               *string
	title            *string
	description      *string
	subject          *string
	languages        *[]string
	appendlanguages  []string
	time_slot        *string
	latitude         *float64
	addlatitude      *float64
	longitude        *float64
	addlongitude     *float64
	student_uid      *string
	tutor_uids       *[]string
	appendtutor_uids []string
	min_price        *float64
	addmin_price     *float64
	max_price        *float64
	addmax_price     *float64
	price            *float64
	addprice         *float64
	status           *string
	reminder_sent    *bool
	rating_grade     *int
	addrating_grade  *int
	rating_comment   *string
	rating_at        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Lesson, error)
	predicates       []predicate.Lesson
}

var _ ent.Mutation = (*LessonMutation)(nil)

// lessonOption allows management of the mutation configuration using functional options.
type lessonOption func(*LessonMutation)

// newLessonMutation creates new mutation for the Lesson entity.
func newLessonMutation(c config, op Op, opts ...lessonOption) *LessonMutation {
	m := &LessonMutation{
		config:        c,
		op:            op,
		typ:           TypeLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonID sets the ID field of the mutation.
func withLessonID(id string) lessonOption {
	return func(m *LessonMutation) {
		var (
			err   error
			once  sync.Once
			value *Lesson
		)
		m.oldValue = func(ctx context.Context) (*Lesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLesson sets the old Lesson of the mutation.
func withLesson(node *Lesson) lessonOption {
	return func(m *LessonMutation) {
		m.oldValue = func(context.Context) (*Lesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lesson entities.
func (m *LessonMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *LessonMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LessonMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LessonMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *LessonMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *LessonMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *LessonMutation) ResetDescription() {
	m.description = nil
}

// SetSubject sets the "subject" field.
func (m *LessonMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *LessonMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *LessonMutation) ResetSubject() {
	m.subject = nil
}

// SetLanguages sets the "languages" field.
func (m *LessonMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *LessonMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *LessonMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *LessonMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ResetLanguages resets all changes to the "languages" field.
func (m *LessonMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
}

// SetTimeSlot sets the "time_slot" field.
func (m *LessonMutation) SetTimeSlot(s string) {
	m.time_slot = &s
}

// TimeSlot returns the value of the "time_slot" field in the mutation.
func (m *LessonMutation) TimeSlot() (r string, exists bool) {
	v := m.time_slot
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSlot returns the old "time_slot" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTimeSlot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSlot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSlot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSlot: %w", err)
	}
	return oldValue.TimeSlot, nil
}

// ResetTimeSlot resets all changes to the "time_slot" field.
func (m *LessonMutation) ResetTimeSlot() {
	m.time_slot = nil
}

// SetLatitude sets the "latitude" field.
func (m *LessonMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *LessonMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *LessonMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *LessonMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *LessonMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
}

// SetLongitude sets the "longitude" field.
func (m *LessonMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *LessonMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *LessonMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *LessonMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *LessonMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
}

// SetStudentUID sets the "student_uid" field.
func (m *LessonMutation) SetStudentUID(s string) {
	m.student_uid = &s
}

// StudentUID returns the value of the "student_uid" field in the mutation.
func (m *LessonMutation) StudentUID() (r string, exists bool) {
	v := m.student_uid
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentUID returns the old "student_uid" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldStudentUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentUID: %w", err)
	}
	return oldValue.StudentUID, nil
}

// ResetStudentUID resets all changes to the "student_uid" field.
func (m *LessonMutation) ResetStudentUID() {
	m.student_uid = nil
}

// SetTutorUids sets the "tutor_uids" field.
func (m *LessonMutation) SetTutorUids(s []string) {
	m.tutor_uids = &s
	m.appendtutor_uids = nil
}

// TutorUids returns the value of the "tutor_uids" field in the mutation.
func (m *LessonMutation) TutorUids() (r []string, exists bool) {
	v := m.tutor_uids
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorUids returns the old "tutor_uids" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTutorUids(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorUids is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorUids requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorUids: %w", err)
	}
	return oldValue.TutorUids, nil
}

// AppendTutorUids adds s to the "tutor_uids" field.
func (m *LessonMutation) AppendTutorUids(s []string) {
	m.appendtutor_uids = append(m.appendtutor_uids, s...)
}

// AppendedTutorUids returns the list of values that were appended to the "tutor_uids" field in this mutation.
func (m *LessonMutation) AppendedTutorUids() ([]string, bool) {
	if len(m.appendtutor_uids) == 0 {
		return nil, false
	}
	return m.appendtutor_uids, true
}

// ResetTutorUids resets all changes to the "tutor_uids" field.
func (m *LessonMutation) ResetTutorUids() {
	m.tutor_uids = nil
	m.appendtutor_uids = nil
}

// SetMinPrice sets the "min_price" field.
func (m *LessonMutation) SetMinPrice(f float64) {
	m.min_price = &f
	m.addmin_price = nil
}

// MinPrice returns the value of the "min_price" field in the mutation.
func (m *LessonMutation) MinPrice() (r float64, exists bool) {
	v := m.min_price
	if v == nil {
		return
	}
	return *v, true
}

// OldMinPrice returns the old "min_price" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldMinPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinPrice: %w", err)
	}
	return oldValue.MinPrice, nil
}

// AddMinPrice adds f to the "min_price" field.
func (m *LessonMutation) AddMinPrice(f float64) {
	if m.addmin_price != nil {
		*m.addmin_price += f
	} else {
		m.addmin_price = &f
	}
}

// AddedMinPrice returns the value that was added to the "min_price" field in this mutation.
func (m *LessonMutation) AddedMinPrice() (r float64, exists bool) {
	v := m.addmin_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinPrice resets all changes to the "min_price" field.
func (m *LessonMutation) ResetMinPrice() {
	m.min_price = nil
	m.addmin_price = nil
}

// SetMaxPrice sets the "max_price" field.
func (m *LessonMutation) SetMaxPrice(f float64) {
	m.max_price = &f
	m.addmax_price = nil
}

// MaxPrice returns the value of the "max_price" field in the mutation.
func (m *LessonMutation) MaxPrice() (r float64, exists bool) {
	v := m.max_price
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxPrice returns the old "max_price" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldMaxPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxPrice: %w", err)
	}
	return oldValue.MaxPrice, nil
}

// AddMaxPrice adds f to the "max_price" field.
func (m *LessonMutation) AddMaxPrice(f float64) {
	if m.addmax_price != nil {
		*m.addmax_price += f
	} else {
		m.addmax_price = &f
	}
}

// AddedMaxPrice returns the value that was added to the "max_price" field in this mutation.
func (m *LessonMutation) AddedMaxPrice() (r float64, exists bool) {
	v := m.addmax_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxPrice resets all changes to the "max_price" field.
func (m *LessonMutation) ResetMaxPrice() {
	m.max_price = nil
	m.addmax_price = nil
}

// SetPrice sets the "price" field.
func (m *LessonMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *LessonMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *LessonMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *LessonMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *LessonMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetStatus sets the "status" field.
func (m *LessonMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LessonMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LessonMutation) ResetStatus() {
	m.status = nil
}

// SetReminderSent sets the "reminder_sent" field.
func (m *LessonMutation) SetReminderSent(b bool) {
	m.reminder_sent = &b
}

// ReminderSent returns the value of the "reminder_sent" field in the mutation.
func (m *LessonMutation) ReminderSent() (r bool, exists bool) {
	v := m.reminder_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderSent returns the old "reminder_sent" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldReminderSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderSent: %w", err)
	}
	return oldValue.ReminderSent, nil
}

// ResetReminderSent resets all changes to the "reminder_sent" field.
func (m *LessonMutation) ResetReminderSent() {
	m.reminder_sent = nil
}

// SetRatingGrade sets the "rating_grade" field.
func (m *LessonMutation) SetRatingGrade(i int) {
	m.rating_grade = &i
	m.addrating_grade = nil
}

// RatingGrade returns the value of the "rating_grade" field in the mutation.
func (m *LessonMutation) RatingGrade() (r int, exists bool) {
	v := m.rating_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingGrade returns the old "rating_grade" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldRatingGrade(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingGrade: %w", err)
	}
	return oldValue.RatingGrade, nil
}

// AddRatingGrade adds i to the "rating_grade" field.
func (m *LessonMutation) AddRatingGrade(i int) {
	if m.addrating_grade != nil {
		*m.addrating_grade += i
	} else {
		m.addrating_grade = &i
	}
}

// AddedRatingGrade returns the value that was added to the "rating_grade" field in this mutation.
func (m *LessonMutation) AddedRatingGrade() (r int, exists bool) {
	v := m.addrating_grade
	if v == nil {
		return
	}
	return *v, true
}

// ClearRatingGrade clears the value of the "rating_grade" field.
func (m *LessonMutation) ClearRatingGrade() {
	m.rating_grade = nil
	m.addrating_grade = nil
	m.clearedFields[lesson.FieldRatingGrade] = struct{}{}
}

// RatingGradeCleared returns if the "rating_grade" field was cleared in this mutation.
func (m *LessonMutation) RatingGradeCleared() bool {
	_, ok := m.clearedFields[lesson.FieldRatingGrade]
	return ok
}

// ResetRatingGrade resets all changes to the "rating_grade" field.
func (m *LessonMutation) ResetRatingGrade() {
	m.rating_grade = nil
	m.addrating_grade = nil
	delete(m.clearedFields, lesson.FieldRatingGrade)
}

// SetRatingComment sets the "rating_comment" field.
func (m *LessonMutation) SetRatingComment(s string) {
	m.rating_comment = &s
}

// RatingComment returns the value of the "rating_comment" field in the mutation.
func (m *LessonMutation) RatingComment() (r string, exists bool) {
	v := m.rating_comment
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingComment returns the old "rating_comment" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldRatingComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingComment: %w", err)
	}
	return oldValue.RatingComment, nil
}

// ClearRatingComment clears the value of the "rating_comment" field.
func (m *LessonMutation) ClearRatingComment() {
	m.rating_comment = nil
	m.clearedFields[lesson.FieldRatingComment] = struct{}{}
}

// RatingCommentCleared returns if the "rating_comment" field was cleared in this mutation.
func (m *LessonMutation) RatingCommentCleared() bool {
	_, ok := m.clearedFields[lesson.FieldRatingComment]
	return ok
}

// ResetRatingComment resets all changes to the "rating_comment" field.
func (m *LessonMutation) ResetRatingComment() {
	m.rating_comment = nil
	delete(m.clearedFields, lesson.FieldRatingComment)
}

// SetRatingAt sets the "rating_at" field.
func (m *LessonMutation) SetRatingAt(t time.Time) {
	m.rating_at = &t
}

// RatingAt returns the value of the "rating_at" field in the mutation.
func (m *LessonMutation) RatingAt() (r time.Time, exists bool) {
	v := m.rating_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRatingAt returns the old "rating_at" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldRatingAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatingAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatingAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatingAt: %w", err)
	}
	return oldValue.RatingAt, nil
}

// ClearRatingAt clears the value of the "rating_at" field.
func (m *LessonMutation) ClearRatingAt() {
	m.rating_at = nil
	m.clearedFields[lesson.FieldRatingAt] = struct{}{}
}

// RatingAtCleared returns if the "rating_at" field was cleared in this mutation.
func (m *LessonMutation) RatingAtCleared() bool {
	_, ok := m.clearedFields[lesson.FieldRatingAt]
	return ok
}

// ResetRatingAt resets all changes to the "rating_at" field.
func (m *LessonMutation) ResetRatingAt() {
	m.rating_at = nil
	delete(m.clearedFields, lesson.FieldRatingAt)
}

// Where appends a list predicates to the LessonMutation builder.
func (m *LessonMutation) Where(ps ...predicate.Lesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lesson).
func (m *LessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.title != nil {
		fields = append(fields, lesson.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, lesson.FieldDescription)
	}
	if m.subject != nil {
		fields = append(fields, lesson.FieldSubject)
	}
	if m.languages != nil {
		fields = append(fields, lesson.FieldLanguages)
	}
	if m.time_slot != nil {
		fields = append(fields, lesson.FieldTimeSlot)
	}
	if m.latitude != nil {
		fields = append(fields, lesson.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, lesson.FieldLongitude)
	}
	if m.student_uid != nil {
		fields = append(fields, lesson.FieldStudentUID)
	}
	if m.tutor_uids != nil {
		fields = append(fields, lesson.FieldTutorUids)
	}
	if m.min_price != nil {
		fields = append(fields, lesson.FieldMinPrice)
	}
	if m.max_price != nil {
		fields = append(fields, lesson.FieldMaxPrice)
	}
	if m.price != nil {
		fields = append(fields, lesson.FieldPrice)
	}
	if m.status != nil {
		fields = append(fields, lesson.FieldStatus)
	}
	if m.reminder_sent != nil {
		fields = append(fields, lesson.FieldReminderSent)
	}
	if m.rating_grade != nil {
		fields = append(fields, lesson.FieldRatingGrade)
	}
	if m.rating_comment != nil {
		fields = append(fields, lesson.FieldRatingComment)
	}
	if m.rating_at != nil {
		fields = append(fields, lesson.FieldRatingAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldTitle:
		return m.Title()
	case lesson.FieldDescription:
		return m.Description()
	case lesson.FieldSubject:
		return m.Subject()
	case lesson.FieldLanguages:
		return m.Languages()
	case lesson.FieldTimeSlot:
		return m.TimeSlot()
	case lesson.FieldLatitude:
		return m.Latitude()
	case lesson.FieldLongitude:
		return m.Longitude()
	case lesson.FieldStudentUID:
		return m.StudentUID()
	case lesson.FieldTutorUids:
		return m.TutorUids()
	case lesson.FieldMinPrice:
		return m.MinPrice()
	case lesson.FieldMaxPrice:
		return m.MaxPrice()
	case lesson.FieldPrice:
		return m.Price()
	case lesson.FieldStatus:
		return m.Status()
	case lesson.FieldReminderSent:
		return m.ReminderSent()
	case lesson.FieldRatingGrade:
		return m.RatingGrade()
	case lesson.FieldRatingComment:
		return m.RatingComment()
	case lesson.FieldRatingAt:
		return m.RatingAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lesson.FieldTitle:
		return m.OldTitle(ctx)
	case lesson.FieldDescription:
		return m.OldDescription(ctx)
	case lesson.FieldSubject:
		return m.OldSubject(ctx)
	case lesson.FieldLanguages:
		return m.OldLanguages(ctx)
	case lesson.FieldTimeSlot:
		return m.OldTimeSlot(ctx)
	case lesson.FieldLatitude:
		return m.OldLatitude(ctx)
	case lesson.FieldLongitude:
		return m.OldLongitude(ctx)
	case lesson.FieldStudentUID:
		return m.OldStudentUID(ctx)
	case lesson.FieldTutorUids:
		return m.OldTutorUids(ctx)
	case lesson.FieldMinPrice:
		return m.OldMinPrice(ctx)
	case lesson.FieldMaxPrice:
		return m.OldMaxPrice(ctx)
	case lesson.FieldPrice:
		return m.OldPrice(ctx)
	case lesson.FieldStatus:
		return m.OldStatus(ctx)
	case lesson.FieldReminderSent:
		return m.OldReminderSent(ctx)
	case lesson.FieldRatingGrade:
		return m.OldRatingGrade(ctx)
	case lesson.FieldRatingComment:
		return m.OldRatingComment(ctx)
	case lesson.FieldRatingAt:
		return m.OldRatingAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case lesson.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case lesson.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case lesson.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case lesson.FieldTimeSlot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSlot(v)
		return nil
	case lesson.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case lesson.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case lesson.FieldStudentUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentUID(v)
		return nil
	case lesson.FieldTutorUids:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorUids(v)
		return nil
	case lesson.FieldMinPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinPrice(v)
		return nil
	case lesson.FieldMaxPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxPrice(v)
		return nil
	case lesson.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case lesson.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lesson.FieldReminderSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderSent(v)
		return nil
	case lesson.FieldRatingGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingGrade(v)
		return nil
	case lesson.FieldRatingComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingComment(v)
		return nil
	case lesson.FieldRatingAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatingAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, lesson.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, lesson.FieldLongitude)
	}
	if m.addmin_price != nil {
		fields = append(fields, lesson.FieldMinPrice)
	}
	if m.addmax_price != nil {
		fields = append(fields, lesson.FieldMaxPrice)
	}
	if m.addprice != nil {
		fields = append(fields, lesson.FieldPrice)
	}
	if m.addrating_grade != nil {
		fields = append(fields, lesson.FieldRatingGrade)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldLatitude:
		return m.AddedLatitude()
	case lesson.FieldLongitude:
		return m.AddedLongitude()
	case lesson.FieldMinPrice:
		return m.AddedMinPrice()
	case lesson.FieldMaxPrice:
		return m.AddedMaxPrice()
	case lesson.FieldPrice:
		return m.AddedPrice()
	case lesson.FieldRatingGrade:
		return m.AddedRatingGrade()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case lesson.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case lesson.FieldMinPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinPrice(v)
		return nil
	case lesson.FieldMaxPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxPrice(v)
		return nil
	case lesson.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case lesson.FieldRatingGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatingGrade(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lesson.FieldRatingGrade) {
		fields = append(fields, lesson.FieldRatingGrade)
	}
	if m.FieldCleared(lesson.FieldRatingComment) {
		fields = append(fields, lesson.FieldRatingComment)
	}
	if m.FieldCleared(lesson.FieldRatingAt) {
		fields = append(fields, lesson.FieldRatingAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonMutation) ClearField(name string) error {
	switch name {
	case lesson.FieldRatingGrade:
		m.ClearRatingGrade()
		return nil
	case lesson.FieldRatingComment:
		m.ClearRatingComment()
		return nil
	case lesson.FieldRatingAt:
		m.ClearRatingAt()
		return nil
	}
	return fmt.Errorf("unknown Lesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonMutation) ResetField(name string) error {
	switch name {
	case lesson.FieldTitle:
		m.ResetTitle()
		return nil
	case lesson.FieldDescription:
		m.ResetDescription()
		return nil
	case lesson.FieldSubject:
		m.ResetSubject()
		return nil
	case lesson.FieldLanguages:
		m.ResetLanguages()
		return nil
	case lesson.FieldTimeSlot:
		m.ResetTimeSlot()
		return nil
	case lesson.FieldLatitude:
		m.ResetLatitude()
		return nil
	case lesson.FieldLongitude:
		m.ResetLongitude()
		return nil
	case lesson.FieldStudentUID:
		m.ResetStudentUID()
		return nil
	case lesson.FieldTutorUids:
		m.ResetTutorUids()
		return nil
	case lesson.FieldMinPrice:
		m.ResetMinPrice()
		return nil
	case lesson.FieldMaxPrice:
		m.ResetMaxPrice()
		return nil
	case lesson.FieldPrice:
		m.ResetPrice()
		return nil
	case lesson.FieldStatus:
		m.ResetStatus()
		return nil
	case lesson.FieldReminderSent:
		m.ResetReminderSent()
		return nil
	case lesson.FieldRatingGrade:
		m.ResetRatingGrade()
		return nil
	case lesson.FieldRatingComment:
		m.ResetRatingComment()
		return nil
	case lesson.FieldRatingAt:
		m.ResetRatingAt()
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lesson edge %s", name)
}

// NotificationEventMutation represents an operation that mutates the NotificationEvent nodes in the graph.
type NotificationEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	recipient_uid *string
	title         *string
	body          *string
	delivered     *bool
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*NotificationEvent, error)
	predicates    []predicate.NotificationEvent
}

var _ ent.Mutation = (*NotificationEventMutation)(nil)

// notificationeventOption allows management of the mutation configuration using functional options.
type notificationeventOption func(*NotificationEventMutation)

// newNotificationEventMutation creates new mutation for the NotificationEvent entity.
func newNotificationEventMutation(c config, op Op, opts ...notificationeventOption) *NotificationEventMutation {
	m := &NotificationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationEventID sets the ID field of the mutation.
func withNotificationEventID(id int) notificationeventOption {
	return func(m *NotificationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationEvent
		)
		m.oldValue = func(ctx context.Context) (*NotificationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationEvent sets the old NotificationEvent of the mutation.
func withNotificationEvent(node *NotificationEvent) notificationeventOption {
	return func(m *NotificationEventMutation) {
		m.oldValue = func(context.Context) (*NotificationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecipientUID sets the "recipient_uid" field.
func (m *NotificationEventMutation) SetRecipientUID(s string) {
	m.recipient_uid = &s
}

// RecipientUID returns the value of the "recipient_uid" field in the mutation.
func (m *NotificationEventMutation) RecipientUID() (r string, exists bool) {
	v := m.recipient_uid
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientUID returns the old "recipient_uid" field's value of the NotificationEvent entity.
// If the NotificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEventMutation) OldRecipientUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientUID: %w", err)
	}
	return oldValue.RecipientUID, nil
}

// ResetRecipientUID resets all changes to the "recipient_uid" field.
func (m *NotificationEventMutation) ResetRecipientUID() {
	m.recipient_uid = nil
}

// SetTitle sets the "title" field.
func (m *NotificationEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the NotificationEvent entity.
// If the NotificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationEventMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationEventMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationEventMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the NotificationEvent entity.
// If the NotificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEventMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationEventMutation) ResetBody() {
	m.body = nil
}

// SetDelivered sets the "delivered" field.
func (m *NotificationEventMutation) SetDelivered(b bool) {
	m.delivered = &b
}

// Delivered returns the value of the "delivered" field in the mutation.
func (m *NotificationEventMutation) Delivered() (r bool, exists bool) {
	v := m.delivered
	if v == nil {
		return
	}
	return *v, true
}

// OldDelivered returns the old "delivered" field's value of the NotificationEvent entity.
// If the NotificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEventMutation) OldDelivered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelivered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelivered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelivered: %w", err)
	}
	return oldValue.Delivered, nil
}

// ResetDelivered resets all changes to the "delivered" field.
func (m *NotificationEventMutation) ResetDelivered() {
	m.delivered = nil
}

// SetReason sets the "reason" field.
func (m *NotificationEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *NotificationEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the NotificationEvent entity.
// If the NotificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *NotificationEventMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationEvent entity.
// If the NotificationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationEventMutation builder.
func (m *NotificationEventMutation) Where(ps ...predicate.NotificationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationEvent).
func (m *NotificationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.recipient_uid != nil {
		fields = append(fields, notificationevent.FieldRecipientUID)
	}
	if m.title != nil {
		fields = append(fields, notificationevent.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notificationevent.FieldBody)
	}
	if m.delivered != nil {
		fields = append(fields, notificationevent.FieldDelivered)
	}
	if m.reason != nil {
		fields = append(fields, notificationevent.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, notificationevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationevent.FieldRecipientUID:
		return m.RecipientUID()
	case notificationevent.FieldTitle:
		return m.Title()
	case notificationevent.FieldBody:
		return m.Body()
	case notificationevent.FieldDelivered:
		return m.Delivered()
	case notificationevent.FieldReason:
		return m.Reason()
	case notificationevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationevent.FieldRecipientUID:
		return m.OldRecipientUID(ctx)
	case notificationevent.FieldTitle:
		return m.OldTitle(ctx)
	case notificationevent.FieldBody:
		return m.OldBody(ctx)
	case notificationevent.FieldDelivered:
		return m.OldDelivered(ctx)
	case notificationevent.FieldReason:
		return m.OldReason(ctx)
	case notificationevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationevent.FieldRecipientUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientUID(v)
		return nil
	case notificationevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notificationevent.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notificationevent.FieldDelivered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelivered(v)
		return nil
	case notificationevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case notificationevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NotificationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown NotificationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationEventMutation) ResetField(name string) error {
	switch name {
	case notificationevent.FieldRecipientUID:
		m.ResetRecipientUID()
		return nil
	case notificationevent.FieldTitle:
		m.ResetTitle()
		return nil
	case notificationevent.FieldBody:
		m.ResetBody()
		return nil
	case notificationevent.FieldDelivered:
		m.ResetDelivered()
		return nil
	case notificationevent.FieldReason:
		m.ResetReason()
		return nil
	case notificationevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationEvent edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                Op
	typ               string
	id                *string
	role              *string
	name              *string
	subjects          *[]string
	appendsubjects    []string
	languages         *[]string
	appendlanguages   []string
	price             *float64
	addprice          *float64
	schedule          *[]int
	appendschedule    []int
	academic_level    *int
	addacademic_level *int
	section           *string
	device_token      *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Profile, error)
	predicates        []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id string) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRole sets the "role" field.
func (m *ProfileMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *ProfileMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ProfileMutation) ResetRole() {
	m.role = nil
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetSubjects sets the "subjects" field.
func (m *ProfileMutation) SetSubjects(s []string) {
	m.subjects = &s
	m.appendsubjects = nil
}

// Subjects returns the value of the "subjects" field in the mutation.
func (m *ProfileMutation) Subjects() (r []string, exists bool) {
	v := m.subjects
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjects returns the old "subjects" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldSubjects(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjects: %w", err)
	}
	return oldValue.Subjects, nil
}

// AppendSubjects adds s to the "subjects" field.
func (m *ProfileMutation) AppendSubjects(s []string) {
	m.appendsubjects = append(m.appendsubjects, s...)
}

// AppendedSubjects returns the list of values that were appended to the "subjects" field in this mutation.
func (m *ProfileMutation) AppendedSubjects() ([]string, bool) {
	if len(m.appendsubjects) == 0 {
		return nil, false
	}
	return m.appendsubjects, true
}

// ClearSubjects clears the value of the "subjects" field.
func (m *ProfileMutation) ClearSubjects() {
	m.subjects = nil
	m.appendsubjects = nil
	m.clearedFields[profile.FieldSubjects] = struct{}{}
}

// SubjectsCleared returns if the "subjects" field was cleared in this mutation.
func (m *ProfileMutation) SubjectsCleared() bool {
	_, ok := m.clearedFields[profile.FieldSubjects]
	return ok
}

// ResetSubjects resets all changes to the "subjects" field.
func (m *ProfileMutation) ResetSubjects() {
	m.subjects = nil
	m.appendsubjects = nil
	delete(m.clearedFields, profile.FieldSubjects)
}

// SetLanguages sets the "languages" field.
func (m *ProfileMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *ProfileMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *ProfileMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *ProfileMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ClearLanguages clears the value of the "languages" field.
func (m *ProfileMutation) ClearLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	m.clearedFields[profile.FieldLanguages] = struct{}{}
}

// LanguagesCleared returns if the "languages" field was cleared in this mutation.
func (m *ProfileMutation) LanguagesCleared() bool {
	_, ok := m.clearedFields[profile.FieldLanguages]
	return ok
}

// ResetLanguages resets all changes to the "languages" field.
func (m *ProfileMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
	delete(m.clearedFields, profile.FieldLanguages)
}

// SetPrice sets the "price" field.
func (m *ProfileMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ProfileMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *ProfileMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ProfileMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *ProfileMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetSchedule sets the "schedule" field.
func (m *ProfileMutation) SetSchedule(i []int) {
	m.schedule = &i
	m.appendschedule = nil
}

// Schedule returns the value of the "schedule" field in the mutation.
func (m *ProfileMutation) Schedule() (r []int, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedule returns the old "schedule" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldSchedule(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedule: %w", err)
	}
	return oldValue.Schedule, nil
}

// AppendSchedule adds i to the "schedule" field.
func (m *ProfileMutation) AppendSchedule(i []int) {
	m.appendschedule = append(m.appendschedule, i...)
}

// AppendedSchedule returns the list of values that were appended to the "schedule" field in this mutation.
func (m *ProfileMutation) AppendedSchedule() ([]int, bool) {
	if len(m.appendschedule) == 0 {
		return nil, false
	}
	return m.appendschedule, true
}

// ClearSchedule clears the value of the "schedule" field.
func (m *ProfileMutation) ClearSchedule() {
	m.schedule = nil
	m.appendschedule = nil
	m.clearedFields[profile.FieldSchedule] = struct{}{}
}

// ScheduleCleared returns if the "schedule" field was cleared in this mutation.
func (m *ProfileMutation) ScheduleCleared() bool {
	_, ok := m.clearedFields[profile.FieldSchedule]
	return ok
}

// ResetSchedule resets all changes to the "schedule" field.
func (m *ProfileMutation) ResetSchedule() {
	m.schedule = nil
	m.appendschedule = nil
	delete(m.clearedFields, profile.FieldSchedule)
}

// SetAcademicLevel sets the "academic_level" field.
func (m *ProfileMutation) SetAcademicLevel(i int) {
	m.academic_level = &i
	m.addacademic_level = nil
}

// AcademicLevel returns the value of the "academic_level" field in the mutation.
func (m *ProfileMutation) AcademicLevel() (r int, exists bool) {
	v := m.academic_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAcademicLevel returns the old "academic_level" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldAcademicLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcademicLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcademicLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcademicLevel: %w", err)
	}
	return oldValue.AcademicLevel, nil
}

// AddAcademicLevel adds i to the "academic_level" field.
func (m *ProfileMutation) AddAcademicLevel(i int) {
	if m.addacademic_level != nil {
		*m.addacademic_level += i
	} else {
		m.addacademic_level = &i
	}
}

// AddedAcademicLevel returns the value that was added to the "academic_level" field in this mutation.
func (m *ProfileMutation) AddedAcademicLevel() (r int, exists bool) {
	v := m.addacademic_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetAcademicLevel resets all changes to the "academic_level" field.
func (m *ProfileMutation) ResetAcademicLevel() {
	m.academic_level = nil
	m.addacademic_level = nil
}

// SetSection sets the "section" field.
func (m *ProfileMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *ProfileMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *ProfileMutation) ResetSection() {
	m.section = nil
}

// SetDeviceToken sets the "device_token" field.
func (m *ProfileMutation) SetDeviceToken(s string) {
	m.device_token = &s
}

// DeviceToken returns the value of the "device_token" field in the mutation.
func (m *ProfileMutation) DeviceToken() (r string, exists bool) {
	v := m.device_token
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceToken returns the old "device_token" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDeviceToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceToken: %w", err)
	}
	return oldValue.DeviceToken, nil
}

// ResetDeviceToken resets all changes to the "device_token" field.
func (m *ProfileMutation) ResetDeviceToken() {
	m.device_token = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.role != nil {
		fields = append(fields, profile.FieldRole)
	}
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.subjects != nil {
		fields = append(fields, profile.FieldSubjects)
	}
	if m.languages != nil {
		fields = append(fields, profile.FieldLanguages)
	}
	if m.price != nil {
		fields = append(fields, profile.FieldPrice)
	}
	if m.schedule != nil {
		fields = append(fields, profile.FieldSchedule)
	}
	if m.academic_level != nil {
		fields = append(fields, profile.FieldAcademicLevel)
	}
	if m.section != nil {
		fields = append(fields, profile.FieldSection)
	}
	if m.device_token != nil {
		fields = append(fields, profile.FieldDeviceToken)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldRole:
		return m.Role()
	case profile.FieldName:
		return m.Name()
	case profile.FieldSubjects:
		return m.Subjects()
	case profile.FieldLanguages:
		return m.Languages()
	case profile.FieldPrice:
		return m.Price()
	case profile.FieldSchedule:
		return m.Schedule()
	case profile.FieldAcademicLevel:
		return m.AcademicLevel()
	case profile.FieldSection:
		return m.Section()
	case profile.FieldDeviceToken:
		return m.DeviceToken()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldRole:
		return m.OldRole(ctx)
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldSubjects:
		return m.OldSubjects(ctx)
	case profile.FieldLanguages:
		return m.OldLanguages(ctx)
	case profile.FieldPrice:
		return m.OldPrice(ctx)
	case profile.FieldSchedule:
		return m.OldSchedule(ctx)
	case profile.FieldAcademicLevel:
		return m.OldAcademicLevel(ctx)
	case profile.FieldSection:
		return m.OldSection(ctx)
	case profile.FieldDeviceToken:
		return m.OldDeviceToken(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldSubjects:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjects(v)
		return nil
	case profile.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case profile.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case profile.FieldSchedule:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedule(v)
		return nil
	case profile.FieldAcademicLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcademicLevel(v)
		return nil
	case profile.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case profile.FieldDeviceToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceToken(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, profile.FieldPrice)
	}
	if m.addacademic_level != nil {
		fields = append(fields, profile.FieldAcademicLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldPrice:
		return m.AddedPrice()
	case profile.FieldAcademicLevel:
		return m.AddedAcademicLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profile.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case profile.FieldAcademicLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAcademicLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldSubjects) {
		fields = append(fields, profile.FieldSubjects)
	}
	if m.FieldCleared(profile.FieldLanguages) {
		fields = append(fields, profile.FieldLanguages)
	}
	if m.FieldCleared(profile.FieldSchedule) {
		fields = append(fields, profile.FieldSchedule)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldSubjects:
		m.ClearSubjects()
		return nil
	case profile.FieldLanguages:
		m.ClearLanguages()
		return nil
	case profile.FieldSchedule:
		m.ClearSchedule()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldRole:
		m.ResetRole()
		return nil
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldSubjects:
		m.ResetSubjects()
		return nil
	case profile.FieldLanguages:
		m.ResetLanguages()
		return nil
	case profile.FieldPrice:
		m.ResetPrice()
		return nil
	case profile.FieldSchedule:
		m.ResetSchedule()
		return nil
	case profile.FieldAcademicLevel:
		m.ResetAcademicLevel()
		return nil
	case profile.FieldSection:
		m.ResetSection()
		return nil
	case profile.FieldDeviceToken:
		m.ResetDeviceToken()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Profile edge %s", name)
}
