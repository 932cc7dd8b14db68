package lesson

import (
	"strings"
	"testing"
)

func openRequest() Lesson {
	return Lesson{
		ID:         "l1",
		Title:      "Mechanics revision",
		Subject:    SubjectPhysics,
		Languages:  []Language{LanguageEnglish},
		TimeSlot:   "10/10/2024T10:00:00",
		StudentUID: "student-1",
		MinPrice:   20,
		MaxPrice:   40,
		Status:     StatusStudentRequested,
	}
}

func TestBeginMatching(t *testing.T) {
	l, events, err := BeginMatching(openRequest())
	if err != nil {
		t.Fatalf("begin matching: %v", err)
	}
	if l.Status != StatusMatching {
		t.Errorf("status = %s, want %s", l.Status, StatusMatching)
	}
	if len(events) != 0 {
		t.Errorf("events = %d, want 0", len(events))
	}
}

func TestAssignTutor_CollapsesCandidates(t *testing.T) {
	l := openRequest()
	l.TutorUIDs = []string{"tutor-1", "tutor-2", "tutor-3"}

	l, events, err := AssignTutor(l, "tutor-2")
	if err != nil {
		t.Fatalf("assign tutor: %v", err)
	}
	if l.Status != StatusPendingTutorConfirmation {
		t.Errorf("status = %s, want %s", l.Status, StatusPendingTutorConfirmation)
	}
	if len(l.TutorUIDs) != 1 || l.TutorUIDs[0] != "tutor-2" {
		t.Errorf("tutor uids = %v, want [tutor-2]", l.TutorUIDs)
	}
	if len(events) != 1 || events[0].RecipientUID != "tutor-2" {
		t.Fatalf("events = %+v, want one event for tutor-2", events)
	}
}

func TestAssignTutor_FromMatching(t *testing.T) {
	l, _, err := BeginMatching(openRequest())
	if err != nil {
		t.Fatalf("begin matching: %v", err)
	}
	l, _, err = AssignTutor(l, "tutor-1")
	if err != nil {
		t.Fatalf("assign tutor: %v", err)
	}
	if l.Status != StatusPendingTutorConfirmation {
		t.Errorf("status = %s, want %s", l.Status, StatusPendingTutorConfirmation)
	}
}

func TestTutorAccept_FixesPriceAndNotifiesStudent(t *testing.T) {
	l, _, err := AssignTutor(openRequest(), "tutor-1")
	if err != nil {
		t.Fatalf("assign tutor: %v", err)
	}
	l, events, err := TutorAccept(l, 30)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if l.Status != StatusConfirmed {
		t.Errorf("status = %s, want %s", l.Status, StatusConfirmed)
	}
	if l.Price != 30 {
		t.Errorf("price = %v, want 30", l.Price)
	}
	if len(events) != 1 || events[0].RecipientUID != "student-1" {
		t.Fatalf("events = %+v, want one event for student-1", events)
	}
}

func TestInstantAccept(t *testing.T) {
	l := openRequest()
	l.TimeSlot = InstantTimeSlot
	l.Status = StatusInstantRequested

	l, events, err := InstantAccept(l, "tutor-9", 25)
	if err != nil {
		t.Fatalf("instant accept: %v", err)
	}
	if l.Status != StatusInstantConfirmed {
		t.Errorf("status = %s, want %s", l.Status, StatusInstantConfirmed)
	}
	if l.AssignedTutor() != "tutor-9" {
		t.Errorf("assigned tutor = %q, want tutor-9", l.AssignedTutor())
	}
	if len(events) != 1 || events[0].RecipientUID != "student-1" {
		t.Fatalf("events = %+v, want one event for student-1", events)
	}
}

func TestCancel_NotifiesOtherParty(t *testing.T) {
	l, _, err := AssignTutor(openRequest(), "tutor-1")
	if err != nil {
		t.Fatalf("assign tutor: %v", err)
	}

	byStudent, events, err := Cancel(l, PartyStudent)
	if err != nil {
		t.Fatalf("cancel by student: %v", err)
	}
	if byStudent.Status != StatusStudentCancelled {
		t.Errorf("status = %s, want %s", byStudent.Status, StatusStudentCancelled)
	}
	if len(events) != 1 || events[0].RecipientUID != "tutor-1" {
		t.Fatalf("events = %+v, want one event for tutor-1", events)
	}

	byTutor, events, err := Cancel(l, PartyTutor)
	if err != nil {
		t.Fatalf("cancel by tutor: %v", err)
	}
	if byTutor.Status != StatusTutorCancelled {
		t.Errorf("status = %s, want %s", byTutor.Status, StatusTutorCancelled)
	}
	if len(events) != 1 || events[0].RecipientUID != "student-1" {
		t.Fatalf("events = %+v, want one event for student-1", events)
	}
}

func TestCancel_BeforeTutorAssigned_NoEvent(t *testing.T) {
	l, events, err := Cancel(openRequest(), PartyStudent)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if l.Status != StatusStudentCancelled {
		t.Errorf("status = %s, want %s", l.Status, StatusStudentCancelled)
	}
	// No tutor to notify yet.
	if len(events) != 0 {
		t.Errorf("events = %+v, want none", events)
	}
}

func TestAutomaticTransitions_Idempotent(t *testing.T) {
	l := openRequest()
	l.Status = StatusConfirmed
	l.TutorUIDs = []string{"tutor-1"}

	first, events, err := AdvanceToReview(l)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if first.Status != StatusPendingReview {
		t.Fatalf("status = %s, want %s", first.Status, StatusPendingReview)
	}
	_ = events

	again, events, err := AdvanceToReview(first)
	if err != nil {
		t.Fatalf("re-advance: %v", err)
	}
	if again.Status != StatusPendingReview {
		t.Errorf("status = %s, want %s", again.Status, StatusPendingReview)
	}
	if len(events) != 0 {
		t.Errorf("re-applied transition emitted %d events, want 0", len(events))
	}

	done, _, err := Complete(again)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	doneAgain, events, err := Complete(done)
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if doneAgain.Status != StatusCompleted {
		t.Errorf("status = %s, want %s", doneAgain.Status, StatusCompleted)
	}
	if len(events) != 0 {
		t.Errorf("re-applied complete emitted %d events, want 0", len(events))
	}
}

func TestInvalidTransitions_RejectedAndUnchanged(t *testing.T) {
	tests := []struct {
		name string
		from Status
		call func(Lesson) (Lesson, []Event, error)
	}{
		{"completed cannot reconfirm", StatusCompleted, func(l Lesson) (Lesson, []Event, error) {
			return TutorAccept(l, 30)
		}},
		{"cancelled cannot advance", StatusStudentCancelled, func(l Lesson) (Lesson, []Event, error) {
			return AdvanceToReview(l)
		}},
		{"cancelled cannot cancel again", StatusTutorCancelled, func(l Lesson) (Lesson, []Event, error) {
			return Cancel(l, PartyStudent)
		}},
		{"open request cannot complete", StatusStudentRequested, func(l Lesson) (Lesson, []Event, error) {
			return Complete(l)
		}},
		{"instant request cannot confirm normally", StatusInstantRequested, func(l Lesson) (Lesson, []Event, error) {
			return TutorAccept(l, 30)
		}},
		{"pending review cannot cancel", StatusPendingReview, func(l Lesson) (Lesson, []Event, error) {
			return Cancel(l, PartyTutor)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := openRequest()
			l.Status = tt.from
			got, events, err := tt.call(l)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got.Status != tt.from {
				t.Errorf("lesson mutated: status = %s, want %s", got.Status, tt.from)
			}
			if len(events) != 0 {
				t.Errorf("rejected transition emitted %d events", len(events))
			}
		})
	}
}

func TestInvalidTransitionError_NamesBothStatuses(t *testing.T) {
	l := openRequest()
	l.Status = StatusCompleted
	_, _, err := TutorAccept(l, 30)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	// The caller-facing reason must name current and attempted status.
	for _, want := range []string{string(StatusCompleted), string(StatusConfirmed)} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestTransitionsDoNotAliasCallerSlices(t *testing.T) {
	l := openRequest()
	l.TutorUIDs = []string{"tutor-1", "tutor-2"}

	out, _, err := AssignTutor(l, "tutor-1")
	if err != nil {
		t.Fatalf("assign tutor: %v", err)
	}
	out.Languages[0] = LanguageGerman
	if l.Languages[0] != LanguageEnglish {
		t.Error("transition aliased the caller's Languages slice")
	}
	if len(l.TutorUIDs) != 2 {
		t.Errorf("caller's TutorUIDs mutated: %v", l.TutorUIDs)
	}
}
