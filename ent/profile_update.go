// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/obeng/tutorhub/ent/predicate"
	"github.com/obeng/tutorhub/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *ProfileUpdate) SetRole(v string) *ProfileUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableRole(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdate) SetName(v string) *ProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *ProfileUpdate) SetSubjects(v []string) *ProfileUpdate {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *ProfileUpdate) AppendSubjects(v []string) *ProfileUpdate {
	_u.mutation.AppendSubjects(v)
	return _u
}

// ClearSubjects clears the value of the "subjects" field.
func (_u *ProfileUpdate) ClearSubjects() *ProfileUpdate {
	_u.mutation.ClearSubjects()
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *ProfileUpdate) SetLanguages(v []string) *ProfileUpdate {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *ProfileUpdate) AppendLanguages(v []string) *ProfileUpdate {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *ProfileUpdate) ClearLanguages() *ProfileUpdate {
	_u.mutation.ClearLanguages()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProfileUpdate) SetPrice(v float64) *ProfileUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePrice(v *float64) *ProfileUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProfileUpdate) AddPrice(v float64) *ProfileUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *ProfileUpdate) SetSchedule(v []int) *ProfileUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *ProfileUpdate) AppendSchedule(v []int) *ProfileUpdate {
	_u.mutation.AppendSchedule(v)
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *ProfileUpdate) ClearSchedule() *ProfileUpdate {
	_u.mutation.ClearSchedule()
	return _u
}

// SetAcademicLevel sets the "academic_level" field.
func (_u *ProfileUpdate) SetAcademicLevel(v int) *ProfileUpdate {
	_u.mutation.ResetAcademicLevel()
	_u.mutation.SetAcademicLevel(v)
	return _u
}

// SetNillableAcademicLevel sets the "academic_level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAcademicLevel(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetAcademicLevel(*v)
	}
	return _u
}

// AddAcademicLevel adds value to the "academic_level" field.
func (_u *ProfileUpdate) AddAcademicLevel(v int) *ProfileUpdate {
	_u.mutation.AddAcademicLevel(v)
	return _u
}

// SetSection sets the "section" field.
func (_u *ProfileUpdate) SetSection(v string) *ProfileUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSection(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetDeviceToken sets the "device_token" field.
func (_u *ProfileUpdate) SetDeviceToken(v string) *ProfileUpdate {
	_u.mutation.SetDeviceToken(v)
	return _u
}

// SetNillableDeviceToken sets the "device_token" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDeviceToken(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetDeviceToken(*v)
	}
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := profile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Profile.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(profile.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldSubjects, value)
		})
	}
	if _u.mutation.SubjectsCleared() {
		_spec.ClearField(profile.FieldSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(profile.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(profile.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(profile.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(profile.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(profile.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldSchedule, value)
		})
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(profile.FieldSchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.AcademicLevel(); ok {
		_spec.SetField(profile.FieldAcademicLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcademicLevel(); ok {
		_spec.AddField(profile.FieldAcademicLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(profile.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceToken(); ok {
		_spec.SetField(profile.FieldDeviceToken, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetRole sets the "role" field.
func (_u *ProfileUpdateOne) SetRole(v string) *ProfileUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableRole(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProfileUpdateOne) SetName(v string) *ProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *ProfileUpdateOne) SetSubjects(v []string) *ProfileUpdateOne {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *ProfileUpdateOne) AppendSubjects(v []string) *ProfileUpdateOne {
	_u.mutation.AppendSubjects(v)
	return _u
}

// ClearSubjects clears the value of the "subjects" field.
func (_u *ProfileUpdateOne) ClearSubjects() *ProfileUpdateOne {
	_u.mutation.ClearSubjects()
	return _u
}

// SetLanguages sets the "languages" field.
func (_u *ProfileUpdateOne) SetLanguages(v []string) *ProfileUpdateOne {
	_u.mutation.SetLanguages(v)
	return _u
}

// AppendLanguages appends value to the "languages" field.
func (_u *ProfileUpdateOne) AppendLanguages(v []string) *ProfileUpdateOne {
	_u.mutation.AppendLanguages(v)
	return _u
}

// ClearLanguages clears the value of the "languages" field.
func (_u *ProfileUpdateOne) ClearLanguages() *ProfileUpdateOne {
	_u.mutation.ClearLanguages()
	return _u
}

// SetPrice sets the "price" field.
func (_u *ProfileUpdateOne) SetPrice(v float64) *ProfileUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePrice(v *float64) *ProfileUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *ProfileUpdateOne) AddPrice(v float64) *ProfileUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *ProfileUpdateOne) SetSchedule(v []int) *ProfileUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *ProfileUpdateOne) AppendSchedule(v []int) *ProfileUpdateOne {
	_u.mutation.AppendSchedule(v)
	return _u
}

// ClearSchedule clears the value of the "schedule" field.
func (_u *ProfileUpdateOne) ClearSchedule() *ProfileUpdateOne {
	_u.mutation.ClearSchedule()
	return _u
}

// SetAcademicLevel sets the "academic_level" field.
func (_u *ProfileUpdateOne) SetAcademicLevel(v int) *ProfileUpdateOne {
	_u.mutation.ResetAcademicLevel()
	_u.mutation.SetAcademicLevel(v)
	return _u
}

// SetNillableAcademicLevel sets the "academic_level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAcademicLevel(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetAcademicLevel(*v)
	}
	return _u
}

// AddAcademicLevel adds value to the "academic_level" field.
func (_u *ProfileUpdateOne) AddAcademicLevel(v int) *ProfileUpdateOne {
	_u.mutation.AddAcademicLevel(v)
	return _u
}

// SetSection sets the "section" field.
func (_u *ProfileUpdateOne) SetSection(v string) *ProfileUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSection(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetDeviceToken sets the "device_token" field.
func (_u *ProfileUpdateOne) SetDeviceToken(v string) *ProfileUpdateOne {
	_u.mutation.SetDeviceToken(v)
	return _u
}

// SetNillableDeviceToken sets the "device_token" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDeviceToken(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetDeviceToken(*v)
	}
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := profile.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Profile.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(profile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(profile.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldSubjects, value)
		})
	}
	if _u.mutation.SubjectsCleared() {
		_spec.ClearField(profile.FieldSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Languages(); ok {
		_spec.SetField(profile.FieldLanguages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLanguages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldLanguages, value)
		})
	}
	if _u.mutation.LanguagesCleared() {
		_spec.ClearField(profile.FieldLanguages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(profile.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(profile.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(profile.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, profile.FieldSchedule, value)
		})
	}
	if _u.mutation.ScheduleCleared() {
		_spec.ClearField(profile.FieldSchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.AcademicLevel(); ok {
		_spec.SetField(profile.FieldAcademicLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAcademicLevel(); ok {
		_spec.AddField(profile.FieldAcademicLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(profile.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeviceToken(); ok {
		_spec.SetField(profile.FieldDeviceToken, field.TypeString, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
