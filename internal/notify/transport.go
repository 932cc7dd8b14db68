// Package notify turns the state machine's domain events into outbound
// push notifications. Delivery is best effort: a failed or undeliverable
// notification is logged and dropped, never propagated back into the
// lesson lifecycle.
package notify

import (
	"context"
	"log"
)

// Transport delivers a notification to a device token. The push
// service itself is external; this is its interface boundary.
type Transport interface {
	Send(ctx context.Context, token, title, body string) error
}

// LogTransport writes notifications to the process log instead of a
// push service. Used in development and as a safe default.
type LogTransport struct{}

func (LogTransport) Send(_ context.Context, token, title, body string) error {
	log.Printf("notify %s: %s - %s", token, title, body)
	return nil
}
