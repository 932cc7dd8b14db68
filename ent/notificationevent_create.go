// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obeng/tutorhub/ent/notificationevent"
)

// NotificationEventCreate is the builder for creating a NotificationEvent entity.
type NotificationEventCreate struct {
	config
	mutation *NotificationEventMutation
	hooks    []Hook
}

// SetRecipientUID sets the "recipient_uid" field.
func (_c *NotificationEventCreate) SetRecipientUID(v string) *NotificationEventCreate {
	_c.mutation.SetRecipientUID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *NotificationEventCreate) SetTitle(v string) *NotificationEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *NotificationEventCreate) SetBody(v string) *NotificationEventCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetDelivered sets the "delivered" field.
func (_c *NotificationEventCreate) SetDelivered(v bool) *NotificationEventCreate {
	_c.mutation.SetDelivered(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *NotificationEventCreate) SetReason(v string) *NotificationEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *NotificationEventCreate) SetNillableReason(v *string) *NotificationEventCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationEventCreate) SetCreatedAt(v time.Time) *NotificationEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationEventCreate) SetNillableCreatedAt(v *time.Time) *NotificationEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the NotificationEventMutation object of the builder.
func (_c *NotificationEventCreate) Mutation() *NotificationEventMutation {
	return _c.mutation
}

// Save creates the NotificationEvent in the database.
func (_c *NotificationEventCreate) Save(ctx context.Context) (*NotificationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationEventCreate) SaveX(ctx context.Context) *NotificationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationEventCreate) defaults() {
	if _, ok := _c.mutation.Reason(); !ok {
		v := notificationevent.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationEventCreate) check() error {
	if _, ok := _c.mutation.RecipientUID(); !ok {
		return &ValidationError{Name: "recipient_uid", err: errors.New(`ent: missing required field "NotificationEvent.recipient_uid"`)}
	}
	if v, ok := _c.mutation.RecipientUID(); ok {
		if err := notificationevent.RecipientUIDValidator(v); err != nil {
			return &ValidationError{Name: "recipient_uid", err: fmt.Errorf(`ent: validator failed for field "NotificationEvent.recipient_uid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "NotificationEvent.title"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "NotificationEvent.body"`)}
	}
	if _, ok := _c.mutation.Delivered(); !ok {
		return &ValidationError{Name: "delivered", err: errors.New(`ent: missing required field "NotificationEvent.delivered"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "NotificationEvent.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationEvent.created_at"`)}
	}
	return nil
}

func (_c *NotificationEventCreate) sqlSave(ctx context.Context) (*NotificationEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationEventCreate) createSpec() (*NotificationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationevent.Table, sqlgraph.NewFieldSpec(notificationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RecipientUID(); ok {
		_spec.SetField(notificationevent.FieldRecipientUID, field.TypeString, value)
		_node.RecipientUID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(notificationevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(notificationevent.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Delivered(); ok {
		_spec.SetField(notificationevent.FieldDelivered, field.TypeBool, value)
		_node.Delivered = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(notificationevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// NotificationEventCreateBulk is the builder for creating many NotificationEvent entities in bulk.
type NotificationEventCreateBulk struct {
	config
	err      error
	builders []*NotificationEventCreate
}

// Save creates the NotificationEvent entities in the database.
func (_c *NotificationEventCreateBulk) Save(ctx context.Context) ([]*NotificationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *NotificationEventCreateBulk) SaveX(ctx context.Context) []*NotificationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
