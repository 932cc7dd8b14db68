// Code generated by ent, DO NOT EDIT.

package notificationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/obeng/tutorhub/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLTE(FieldID, id))
}

// RecipientUID applies equality check predicate on the "recipient_uid" field. It's identical to RecipientUIDEQ.
func RecipientUID(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldRecipientUID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldBody, v))
}

// Delivered applies equality check predicate on the "delivered" field. It's identical to DeliveredEQ.
func Delivered(v bool) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldDelivered, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// RecipientUIDEQ applies the EQ predicate on the "recipient_uid" field.
func RecipientUIDEQ(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldRecipientUID, v))
}

// RecipientUIDNEQ applies the NEQ predicate on the "recipient_uid" field.
func RecipientUIDNEQ(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNEQ(FieldRecipientUID, v))
}

// RecipientUIDIn applies the In predicate on the "recipient_uid" field.
func RecipientUIDIn(vs ...string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldIn(FieldRecipientUID, vs...))
}

// RecipientUIDNotIn applies the NotIn predicate on the "recipient_uid" field.
func RecipientUIDNotIn(vs ...string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNotIn(FieldRecipientUID, vs...))
}

// RecipientUIDGT applies the GT predicate on the "recipient_uid" field.
func RecipientUIDGT(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGT(FieldRecipientUID, v))
}

// RecipientUIDGTE applies the GTE predicate on the "recipient_uid" field.
func RecipientUIDGTE(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGTE(FieldRecipientUID, v))
}

// RecipientUIDLT applies the LT predicate on the "recipient_uid" field.
func RecipientUIDLT(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLT(FieldRecipientUID, v))
}

// RecipientUIDLTE applies the LTE predicate on the "recipient_uid" field.
func RecipientUIDLTE(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLTE(FieldRecipientUID, v))
}

// RecipientUIDContains applies the Contains predicate on the "recipient_uid" field.
func RecipientUIDContains(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldContains(FieldRecipientUID, v))
}

// RecipientUIDHasPrefix applies the HasPrefix predicate on the "recipient_uid" field.
func RecipientUIDHasPrefix(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldHasPrefix(FieldRecipientUID, v))
}

// RecipientUIDHasSuffix applies the HasSuffix predicate on the "recipient_uid" field.
func RecipientUIDHasSuffix(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldHasSuffix(FieldRecipientUID, v))
}

// RecipientUIDEqualFold applies the EqualFold predicate on the "recipient_uid" field.
func RecipientUIDEqualFold(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEqualFold(FieldRecipientUID, v))
}

// RecipientUIDContainsFold applies the ContainsFold predicate on the "recipient_uid" field.
func RecipientUIDContainsFold(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldContainsFold(FieldRecipientUID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldContainsFold(FieldBody, v))
}

// DeliveredEQ applies the EQ predicate on the "delivered" field.
func DeliveredEQ(v bool) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldDelivered, v))
}

// DeliveredNEQ applies the NEQ predicate on the "delivered" field.
func DeliveredNEQ(v bool) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNEQ(FieldDelivered, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldContainsFold(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationEvent) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationEvent) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationEvent) predicate.NotificationEvent {
	return predicate.NotificationEvent(sql.NotPredicates(p))
}
