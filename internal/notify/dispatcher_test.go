package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
	"github.com/obeng/tutorhub/internal/store"
)

// stubProfiles serves profiles from a map, like the read-only store.
type stubProfiles struct {
	profiles map[string]profile.Profile
}

func (s *stubProfiles) ByID(_ context.Context, uid string) (*profile.Profile, error) {
	p, ok := s.profiles[uid]
	if !ok {
		return nil, &store.ProfileNotFoundError{UID: uid}
	}
	return &p, nil
}

func (s *stubProfiles) Tutors(context.Context) ([]profile.Profile, error) {
	return nil, nil
}

type recordingAudit struct {
	entries []store.NotificationEventData
}

func (a *recordingAudit) Append(_ context.Context, data store.NotificationEventData) error {
	a.entries = append(a.entries, data)
	return nil
}

func testProfiles() *stubProfiles {
	return &stubProfiles{profiles: map[string]profile.Profile{
		"student-1": {UID: "student-1", Role: profile.RoleStudent, DeviceToken: "tok-student"},
		"tutor-1":   {UID: "tutor-1", Role: profile.RoleTutor, DeviceToken: "tok-tutor"},
		"no-token":  {UID: "no-token", Role: profile.RoleStudent},
	}}
}

func TestDispatch_ResolvesTokens(t *testing.T) {
	transport := &RecordingTransport{}
	audit := &recordingAudit{}
	d := NewDispatcher(testProfiles(), transport, audit)

	d.Dispatch(context.Background(), []lesson.Event{
		{RecipientUID: "student-1", Title: "Lesson confirmed", Body: "see you there"},
		{RecipientUID: "tutor-1", Title: "Lesson request", Body: "please confirm"},
	})

	sent := transport.Sent()
	if len(sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(sent))
	}
	if sent[0].Token != "tok-student" || sent[1].Token != "tok-tutor" {
		t.Errorf("tokens = %q, %q", sent[0].Token, sent[1].Token)
	}
	if len(audit.entries) != 2 || !audit.entries[0].Delivered {
		t.Errorf("audit entries = %+v", audit.entries)
	}
}

func TestDispatch_MissingProfileDropped(t *testing.T) {
	transport := &RecordingTransport{}
	audit := &recordingAudit{}
	d := NewDispatcher(testProfiles(), transport, audit)

	d.Dispatch(context.Background(), []lesson.Event{
		{RecipientUID: "ghost", Title: "x", Body: "y"},
		{RecipientUID: "student-1", Title: "still delivered", Body: "z"},
	})

	if len(transport.Sent()) != 1 {
		t.Fatalf("sent %d, want 1 (drop must not block the rest)", len(transport.Sent()))
	}
	if len(audit.entries) != 2 {
		t.Fatalf("audit entries = %d, want 2", len(audit.entries))
	}
	if audit.entries[0].Delivered || audit.entries[0].Reason == "" {
		t.Errorf("dropped entry = %+v, want delivered=false with reason", audit.entries[0])
	}
}

func TestDispatch_MissingTokenDropped(t *testing.T) {
	transport := &RecordingTransport{}
	d := NewDispatcher(testProfiles(), transport, nil)

	d.Dispatch(context.Background(), []lesson.Event{
		{RecipientUID: "no-token", Title: "x", Body: "y"},
	})
	if len(transport.Sent()) != 0 {
		t.Errorf("sent %d, want 0", len(transport.Sent()))
	}
}

func TestDispatch_TransportErrorSwallowed(t *testing.T) {
	transport := &RecordingTransport{Err: errors.New("push service down")}
	audit := &recordingAudit{}
	d := NewDispatcher(testProfiles(), transport, audit)

	// Must not panic or surface the error.
	d.Dispatch(context.Background(), []lesson.Event{
		{RecipientUID: "student-1", Title: "x", Body: "y"},
	})
	if len(audit.entries) != 1 || audit.entries[0].Delivered {
		t.Errorf("audit entries = %+v, want one undelivered", audit.entries)
	}
}
