// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/obeng/tutorhub/ent/lesson"
)

// Lesson is the model entity for the Lesson schema.
type Lesson struct {
	config `json:"-"`
	// ID of the ent.
	// Store-generated opaque UUID
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Languages holds the value of the "languages" field.
	Languages []string `json:"languages,omitempty"`
	// dd/MM/yyyy'T'HH:mm:ss, or the instant sentinel
	TimeSlot string `json:"time_slot,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude float64 `json:"longitude,omitempty"`
	// StudentUID holds the value of the "student_uid" field.
	StudentUID string `json:"student_uid,omitempty"`
	// TutorUids holds the value of the "tutor_uids" field.
	TutorUids []string `json:"tutor_uids,omitempty"`
	// MinPrice holds the value of the "min_price" field.
	MinPrice float64 `json:"min_price,omitempty"`
	// MaxPrice holds the value of the "max_price" field.
	MaxPrice float64 `json:"max_price,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ReminderSent holds the value of the "reminder_sent" field.
	ReminderSent bool `json:"reminder_sent,omitempty"`
	// RatingGrade holds the value of the "rating_grade" field.
	RatingGrade *int `json:"rating_grade,omitempty"`
	// RatingComment holds the value of the "rating_comment" field.
	RatingComment *string `json:"rating_comment,omitempty"`
	// RatingAt holds the value of the "rating_at" field.
	RatingAt     *time.Time `json:"rating_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lesson) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lesson.FieldLanguages, lesson.FieldTutorUids:
			values[i] = new([]byte)
		case lesson.FieldReminderSent:
			values[i] = new(sql.NullBool)
		case lesson.FieldLatitude, lesson.FieldLongitude, lesson.FieldMinPrice, lesson.FieldMaxPrice, lesson.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case lesson.FieldRatingGrade:
			values[i] = new(sql.NullInt64)
		case lesson.FieldID, lesson.FieldTitle, lesson.FieldDescription, lesson.FieldSubject, lesson.FieldTimeSlot, lesson.FieldStudentUID, lesson.FieldStatus, lesson.FieldRatingComment:
			values[i] = new(sql.NullString)
		case lesson.FieldRatingAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lesson fields.
func (_m *Lesson) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lesson.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lesson.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case lesson.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case lesson.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case lesson.FieldLanguages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field languages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Languages); err != nil {
					return fmt.Errorf("unmarshal field languages: %w", err)
				}
			}
		case lesson.FieldTimeSlot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_slot", values[i])
			} else if value.Valid {
				_m.TimeSlot = value.String
			}
		case lesson.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case lesson.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		case lesson.FieldStudentUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_uid", values[i])
			} else if value.Valid {
				_m.StudentUID = value.String
			}
		case lesson.FieldTutorUids:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_uids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TutorUids); err != nil {
					return fmt.Errorf("unmarshal field tutor_uids: %w", err)
				}
			}
		case lesson.FieldMinPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_price", values[i])
			} else if value.Valid {
				_m.MinPrice = value.Float64
			}
		case lesson.FieldMaxPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_price", values[i])
			} else if value.Valid {
				_m.MaxPrice = value.Float64
			}
		case lesson.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case lesson.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case lesson.FieldReminderSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_sent", values[i])
			} else if value.Valid {
				_m.ReminderSent = value.Bool
			}
		case lesson.FieldRatingGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_grade", values[i])
			} else if value.Valid {
				_m.RatingGrade = new(int)
				*_m.RatingGrade = int(value.Int64)
			}
		case lesson.FieldRatingComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rating_comment", values[i])
			} else if value.Valid {
				_m.RatingComment = new(string)
				*_m.RatingComment = value.String
			}
		case lesson.FieldRatingAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field rating_at", values[i])
			} else if value.Valid {
				_m.RatingAt = new(time.Time)
				*_m.RatingAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lesson.
// This includes values selected through modifiers, order, etc.
func (_m *Lesson) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Lesson.
// Note that you need to call Lesson.Unwrap() before calling this method if this Lesson
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lesson) Update() *LessonUpdateOne {
	return NewLessonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lesson entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lesson) Unwrap() *Lesson {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lesson is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lesson) String() string {
	var builder strings.Builder
	builder.WriteString("Lesson(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("languages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Languages))
	builder.WriteString(", ")
	builder.WriteString("time_slot=")
	builder.WriteString(_m.TimeSlot)
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteString(", ")
	builder.WriteString("student_uid=")
	builder.WriteString(_m.StudentUID)
	builder.WriteString(", ")
	builder.WriteString("tutor_uids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TutorUids))
	builder.WriteString(", ")
	builder.WriteString("min_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinPrice))
	builder.WriteString(", ")
	builder.WriteString("max_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxPrice))
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("reminder_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReminderSent))
	builder.WriteString(", ")
	if v := _m.RatingGrade; v != nil {
		builder.WriteString("rating_grade=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RatingComment; v != nil {
		builder.WriteString("rating_comment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RatingAt; v != nil {
		builder.WriteString("rating_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Lessons is a parsable slice of Lesson.
type Lessons []*Lesson
