// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obeng/tutorhub/ent/notificationevent"
	"github.com/obeng/tutorhub/ent/predicate"
)

// NotificationEventUpdate is the builder for updating NotificationEvent entities.
type NotificationEventUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationEventMutation
}

// Where appends a list predicates to the NotificationEventUpdate builder.
func (_u *NotificationEventUpdate) Where(ps ...predicate.NotificationEvent) *NotificationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecipientUID sets the "recipient_uid" field.
func (_u *NotificationEventUpdate) SetRecipientUID(v string) *NotificationEventUpdate {
	_u.mutation.SetRecipientUID(v)
	return _u
}

// SetNillableRecipientUID sets the "recipient_uid" field if the given value is not nil.
func (_u *NotificationEventUpdate) SetNillableRecipientUID(v *string) *NotificationEventUpdate {
	if v != nil {
		_u.SetRecipientUID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *NotificationEventUpdate) SetTitle(v string) *NotificationEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NotificationEventUpdate) SetNillableTitle(v *string) *NotificationEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *NotificationEventUpdate) SetBody(v string) *NotificationEventUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *NotificationEventUpdate) SetNillableBody(v *string) *NotificationEventUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *NotificationEventUpdate) SetDelivered(v bool) *NotificationEventUpdate {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *NotificationEventUpdate) SetNillableDelivered(v *bool) *NotificationEventUpdate {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *NotificationEventUpdate) SetReason(v string) *NotificationEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *NotificationEventUpdate) SetNillableReason(v *string) *NotificationEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the NotificationEventMutation object of the builder.
func (_u *NotificationEventUpdate) Mutation() *NotificationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationEventUpdate) check() error {
	if v, ok := _u.mutation.RecipientUID(); ok {
		if err := notificationevent.RecipientUIDValidator(v); err != nil {
			return &ValidationError{Name: "recipient_uid", err: fmt.Errorf(`ent: validator failed for field "NotificationEvent.recipient_uid": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationevent.Table, notificationevent.Columns, sqlgraph.NewFieldSpec(notificationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecipientUID(); ok {
		_spec.SetField(notificationevent.FieldRecipientUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(notificationevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(notificationevent.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(notificationevent.FieldDelivered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(notificationevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationEventUpdateOne is the builder for updating a single NotificationEvent entity.
type NotificationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationEventMutation
}

// SetRecipientUID sets the "recipient_uid" field.
func (_u *NotificationEventUpdateOne) SetRecipientUID(v string) *NotificationEventUpdateOne {
	_u.mutation.SetRecipientUID(v)
	return _u
}

// SetNillableRecipientUID sets the "recipient_uid" field if the given value is not nil.
func (_u *NotificationEventUpdateOne) SetNillableRecipientUID(v *string) *NotificationEventUpdateOne {
	if v != nil {
		_u.SetRecipientUID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *NotificationEventUpdateOne) SetTitle(v string) *NotificationEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *NotificationEventUpdateOne) SetNillableTitle(v *string) *NotificationEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *NotificationEventUpdateOne) SetBody(v string) *NotificationEventUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *NotificationEventUpdateOne) SetNillableBody(v *string) *NotificationEventUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetDelivered sets the "delivered" field.
func (_u *NotificationEventUpdateOne) SetDelivered(v bool) *NotificationEventUpdateOne {
	_u.mutation.SetDelivered(v)
	return _u
}

// SetNillableDelivered sets the "delivered" field if the given value is not nil.
func (_u *NotificationEventUpdateOne) SetNillableDelivered(v *bool) *NotificationEventUpdateOne {
	if v != nil {
		_u.SetDelivered(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *NotificationEventUpdateOne) SetReason(v string) *NotificationEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *NotificationEventUpdateOne) SetNillableReason(v *string) *NotificationEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the NotificationEventMutation object of the builder.
func (_u *NotificationEventUpdateOne) Mutation() *NotificationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationEventUpdate builder.
func (_u *NotificationEventUpdateOne) Where(ps ...predicate.NotificationEvent) *NotificationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationEventUpdateOne) Select(field string, fields ...string) *NotificationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationEvent entity.
func (_u *NotificationEventUpdateOne) Save(ctx context.Context) (*NotificationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationEventUpdateOne) SaveX(ctx context.Context) *NotificationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationEventUpdateOne) check() error {
	if v, ok := _u.mutation.RecipientUID(); ok {
		if err := notificationevent.RecipientUIDValidator(v); err != nil {
			return &ValidationError{Name: "recipient_uid", err: fmt.Errorf(`ent: validator failed for field "NotificationEvent.recipient_uid": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationEventUpdateOne) sqlSave(ctx context.Context) (_node *NotificationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationevent.Table, notificationevent.Columns, sqlgraph.NewFieldSpec(notificationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationevent.FieldID)
		for _, f := range fields {
			if !notificationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationevent.FieldID {
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
	if value, ok := _u.mutation.RecipientUID(); ok {
		_spec.SetField(notificationevent.FieldRecipientUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(notificationevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(notificationevent.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Delivered(); ok {
		_spec.SetField(notificationevent.FieldDelivered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(notificationevent.FieldReason, field.TypeString, value)
	}
	_node = &NotificationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
