package notify

import (
	"context"
	"log"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/store"
)

// Dispatcher resolves event recipients to delivery tokens and hands
// the notification to the transport. Every attempt, delivered or
// dropped, is appended to the audit log.
type Dispatcher struct {
	profiles  store.ProfileRepo
	transport Transport
	auditLog  store.NotificationLogRepo
}

// NewDispatcher creates a dispatcher. auditLog may be nil, in which
// case attempts are only logged to the process log.
func NewDispatcher(profiles store.ProfileRepo, transport Transport, auditLog store.NotificationLogRepo) *Dispatcher {
	return &Dispatcher{profiles: profiles, transport: transport, auditLog: auditLog}
}

// Dispatch sends every event, best effort. A missing profile, a missing
// device token, or a transport error drops that one notification with a
// log line; the rest still go out and the caller never sees an error.
func (d *Dispatcher) Dispatch(ctx context.Context, events []lesson.Event) {
	for _, ev := range events {
		d.dispatchOne(ctx, ev)
	}
}

func (d *Dispatcher) dispatchOne(ctx context.Context, ev lesson.Event) {
	p, err := d.profiles.ByID(ctx, ev.RecipientUID)
	if err != nil {
		log.Printf("notify %s dropped: %v", ev.RecipientUID, err)
		d.audit(ctx, ev, false, err.Error())
		return
	}
	if p.DeviceToken == "" {
		log.Printf("notify %s dropped: no device token", ev.RecipientUID)
		d.audit(ctx, ev, false, "missing device token")
		return
	}

	if err := d.transport.Send(ctx, p.DeviceToken, ev.Title, ev.Body); err != nil {
		log.Printf("notify %s dropped: send: %v", ev.RecipientUID, err)
		d.audit(ctx, ev, false, err.Error())
		return
	}
	d.audit(ctx, ev, true, "")
}

func (d *Dispatcher) audit(ctx context.Context, ev lesson.Event, delivered bool, reason string) {
	if d.auditLog == nil {
		return
	}
	err := d.auditLog.Append(ctx, store.NotificationEventData{
		RecipientUID: ev.RecipientUID,
		Title:        ev.Title,
		Body:         ev.Body,
		Delivered:    delivered,
		Reason:       reason,
	})
	if err != nil {
		log.Printf("notification audit log: %v", err)
	}
}
