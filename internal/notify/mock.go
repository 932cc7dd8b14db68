package notify

import (
	"context"
	"sync"
)

// SentNotification is one delivery recorded by RecordingTransport.
type SentNotification struct {
	Token string
	Title string
	Body  string
}

// RecordingTransport captures sends for tests. If Err is set, every
// send fails with it.
type RecordingTransport struct {
	mu   sync.Mutex
	Err  error
	sent []SentNotification
}

func (t *RecordingTransport) Send(_ context.Context, token, title, body string) error {
	if t.Err != nil {
		return t.Err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = append(t.sent, SentNotification{Token: token, Title: title, Body: body})
	return nil
}

// Sent returns a copy of everything delivered so far.
func (t *RecordingTransport) Sent() []SentNotification {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]SentNotification(nil), t.sent...)
}
