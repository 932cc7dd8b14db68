// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/obeng/tutorhub/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetRole sets the "role" field.
func (_c *ProfileCreate) SetRole(v string) *ProfileCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProfileCreate) SetName(v string) *ProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetSubjects sets the "subjects" field.
func (_c *ProfileCreate) SetSubjects(v []string) *ProfileCreate {
	_c.mutation.SetSubjects(v)
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *ProfileCreate) SetLanguages(v []string) *ProfileCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *ProfileCreate) SetPrice(v float64) *ProfileCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePrice(v *float64) *ProfileCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *ProfileCreate) SetSchedule(v []int) *ProfileCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetAcademicLevel sets the "academic_level" field.
func (_c *ProfileCreate) SetAcademicLevel(v int) *ProfileCreate {
	_c.mutation.SetAcademicLevel(v)
	return _c
}

// SetNillableAcademicLevel sets the "academic_level" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAcademicLevel(v *int) *ProfileCreate {
	if v != nil {
		_c.SetAcademicLevel(*v)
	}
	return _c
}

// SetSection sets the "section" field.
func (_c *ProfileCreate) SetSection(v string) *ProfileCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableSection(v *string) *ProfileCreate {
	if v != nil {
		_c.SetSection(*v)
	}
	return _c
}

// SetDeviceToken sets the "device_token" field.
func (_c *ProfileCreate) SetDeviceToken(v string) *ProfileCreate {
	_c.mutation.SetDeviceToken(v)
	return _c
}

// SetNillableDeviceToken sets the "device_token" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDeviceToken(v *string) *ProfileCreate {
	if v != nil {
		_c.SetDeviceToken(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileCreate) SetID(v string) *ProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := profile.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := profile.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.AcademicLevel(); !ok {
		v := profile.DefaultAcademicLevel
		_c.mutation.SetAcademicLevel(v)
	}
	if _, ok := _c.mutation.Section(); !ok {
		v := profile.DefaultSection
		_c.mutation.SetSection(v)
	}
	if _, ok := _c.mutation.DeviceToken(); !ok {
		v := profile.DefaultDeviceToken
		_c.mutation.SetDeviceToken(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Profile.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := profile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Profile.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Profile.name"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Profile.price"`)}
	}
	if _, ok := _c.mutation.AcademicLevel(); !ok {
		return &ValidationError{Name: "academic_level", err: errors.New(`ent: missing required field "Profile.academic_level"`)}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "Profile.section"`)}
	}
	if _, ok := _c.mutation.DeviceToken(); !ok {
		return &ValidationError{Name: "device_token", err: errors.New(`ent: missing required field "Profile.device_token"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
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
			return nil, fmt.Errorf("unexpected Profile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Subjects(); ok {
		_spec.SetField(profile.FieldSubjects, field.TypeJSON, value)
		_node.Subjects = value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(profile.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(profile.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(profile.FieldSchedule, field.TypeJSON, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.AcademicLevel(); ok {
		_spec.SetField(profile.FieldAcademicLevel, field.TypeInt, value)
		_node.AcademicLevel = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(profile.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.DeviceToken(); ok {
		_spec.SetField(profile.FieldDeviceToken, field.TypeString, value)
		_node.DeviceToken = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
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
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
