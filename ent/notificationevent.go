// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/obeng/tutorhub/ent/notificationevent"
)

// NotificationEvent is the model entity for the NotificationEvent schema.
type NotificationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RecipientUID holds the value of the "recipient_uid" field.
	RecipientUID string `json:"recipient_uid,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Delivered holds the value of the "delivered" field.
	Delivered bool `json:"delivered,omitempty"`
	// Why a drop happened: missing profile, missing token, transport error
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationevent.FieldDelivered:
			values[i] = new(sql.NullBool)
		case notificationevent.FieldID:
			values[i] = new(sql.NullInt64)
		case notificationevent.FieldRecipientUID, notificationevent.FieldTitle, notificationevent.FieldBody, notificationevent.FieldReason:
			values[i] = new(sql.NullString)
		case notificationevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationEvent fields.
func (_m *NotificationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case notificationevent.FieldRecipientUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_uid", values[i])
			} else if value.Valid {
				_m.RecipientUID = value.String
			}
		case notificationevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case notificationevent.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case notificationevent.FieldDelivered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field delivered", values[i])
			} else if value.Valid {
				_m.Delivered = value.Bool
			}
		case notificationevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case notificationevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationEvent.
// Note that you need to call NotificationEvent.Unwrap() before calling this method if this NotificationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationEvent) Update() *NotificationEventUpdateOne {
	return NewNotificationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationEvent) Unwrap() *NotificationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("recipient_uid=")
	builder.WriteString(_m.RecipientUID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("delivered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delivered))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationEvents is a parsable slice of NotificationEvent.
type NotificationEvents []*NotificationEvent
