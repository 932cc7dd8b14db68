package lesson

import "fmt"

// Event is a notification side effect emitted by a transition.
// The dispatcher resolves RecipientUID to a delivery token.
type Event struct {
	RecipientUID string
	Title        string
	Body         string
}

// transition is a single allowed edge in the lifecycle state machine.
type transition struct {
	From Status
	To   Status
	// Auto marks sweep-driven transitions, which are idempotent:
	// re-applying one to a lesson already at To is a silent no-op.
	Auto bool
}

var transitionTable = []transition{
	// Matching path
	{From: StatusStudentRequested, To: StatusMatching},
	{From: StatusStudentRequested, To: StatusPendingTutorConfirmation},
	{From: StatusMatching, To: StatusPendingTutorConfirmation},
	{From: StatusPendingTutorConfirmation, To: StatusConfirmed},

	// Instant path: tutor accepts directly, no pending step.
	{From: StatusInstantRequested, To: StatusInstantConfirmed},

	// Sweep-driven progress
	{From: StatusConfirmed, To: StatusPendingReview, Auto: true},
	{From: StatusInstantConfirmed, To: StatusPendingReview, Auto: true},
	{From: StatusConfirmed, To: StatusCompleted, Auto: true},
	{From: StatusInstantConfirmed, To: StatusCompleted, Auto: true},
	{From: StatusPendingReview, To: StatusCompleted, Auto: true},

	// Cancellation by either party before completion. Terminal.
	{From: StatusStudentRequested, To: StatusStudentCancelled},
	{From: StatusStudentRequested, To: StatusTutorCancelled},
	{From: StatusPendingTutorConfirmation, To: StatusStudentCancelled},
	{From: StatusPendingTutorConfirmation, To: StatusTutorCancelled},
	{From: StatusConfirmed, To: StatusStudentCancelled},
	{From: StatusConfirmed, To: StatusTutorCancelled},
}

// transitionFor returns the table entry for from -> to.
func transitionFor(from, to Status) (transition, bool) {
	for _, tr := range transitionTable {
		if tr.From == from && tr.To == to {
			return tr, true
		}
	}
	return transition{}, false
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to Status) bool {
	_, ok := transitionFor(from, to)
	return ok
}

// isAutoTarget reports whether to is the target of any sweep-driven edge.
func isAutoTarget(to Status) bool {
	for _, tr := range transitionTable {
		if tr.To == to && tr.Auto {
			return true
		}
	}
	return false
}

// apply validates from -> to against the table and returns a copy of l
// at the new status. Re-applying an automatic transition to a lesson
// already at the target is a no-op: the same copy comes back with
// noop=true and the caller emits no events.
func apply(l Lesson, to Status) (out Lesson, noop bool, err error) {
	if l.Status == to && isAutoTarget(to) {
		return l, true, nil
	}
	if _, ok := transitionFor(l.Status, to); !ok {
		return l, false, &InvalidTransitionError{From: l.Status, To: to}
	}
	out = l.clone()
	out.Status = to
	return out, false, nil
}

// BeginMatching moves an open student request into the matching pass.
func BeginMatching(l Lesson) (Lesson, []Event, error) {
	if l.Status != StatusStudentRequested {
		return l, nil, &InvalidTransitionError{From: l.Status, To: StatusMatching}
	}
	out, _, err := apply(l, StatusMatching)
	return out, nil, err
}

// AssignTutor selects a tutor for an open request. TutorUIDs collapses
// to a singleton and the tutor is asked to confirm.
func AssignTutor(l Lesson, tutorUID string) (Lesson, []Event, error) {
	out, _, err := apply(l, StatusPendingTutorConfirmation)
	if err != nil {
		return l, nil, err
	}
	out.TutorUIDs = []string{tutorUID}
	events := []Event{{
		RecipientUID: tutorUID,
		Title:        "Lesson request",
		Body:         fmt.Sprintf("A student requested %q. Please confirm.", out.Title),
	}}
	return out, events, nil
}

// TutorAccept confirms a pending lesson and fixes the agreed price.
func TutorAccept(l Lesson, price float64) (Lesson, []Event, error) {
	if l.Status != StatusPendingTutorConfirmation {
		return l, nil, &InvalidTransitionError{From: l.Status, To: StatusConfirmed}
	}
	if l.AssignedTutor() == "" {
		return l, nil, ErrNoTutorAssigned
	}
	out, _, err := apply(l, StatusConfirmed)
	if err != nil {
		return l, nil, err
	}
	out.Price = price
	events := []Event{{
		RecipientUID: out.StudentUID,
		Title:        "Lesson confirmed",
		Body:         fmt.Sprintf("Your tutor confirmed %q.", out.Title),
	}}
	return out, events, nil
}

// InstantAccept lets a tutor take an on-demand request directly.
func InstantAccept(l Lesson, tutorUID string, price float64) (Lesson, []Event, error) {
	out, _, err := apply(l, StatusInstantConfirmed)
	if err != nil {
		return l, nil, err
	}
	out.TutorUIDs = []string{tutorUID}
	out.Price = price
	events := []Event{{
		RecipientUID: out.StudentUID,
		Title:        "Lesson confirmed",
		Body:         fmt.Sprintf("A tutor accepted your instant request %q.", out.Title),
	}}
	return out, events, nil
}

// Cancel terminates the lesson before completion on behalf of by.
// The other party is notified.
func Cancel(l Lesson, by Party) (Lesson, []Event, error) {
	to := StatusStudentCancelled
	if by == PartyTutor {
		to = StatusTutorCancelled
	}
	out, _, err := apply(l, to)
	if err != nil {
		return l, nil, err
	}

	var events []Event
	body := fmt.Sprintf("Lesson %q was cancelled.", out.Title)
	if by == PartyStudent {
		if tutor := out.AssignedTutor(); tutor != "" {
			events = append(events, Event{RecipientUID: tutor, Title: "Lesson cancelled", Body: body})
		}
	} else {
		events = append(events, Event{RecipientUID: out.StudentUID, Title: "Lesson cancelled", Body: body})
	}
	return out, events, nil
}

// AdvanceToReview is the sweep transition for a confirmed lesson whose
// end time has passed. Idempotent: a lesson already in PENDING_REVIEW
// comes back unchanged with no events.
func AdvanceToReview(l Lesson) (Lesson, []Event, error) {
	out, noop, err := apply(l, StatusPendingReview)
	if err != nil || noop {
		return out, nil, err
	}
	return out, nil, nil
}

// Complete is the sweep transition closing a lesson, either because its
// review window elapsed or because it is an instant lesson with no
// fixed end time. Idempotent like AdvanceToReview.
func Complete(l Lesson) (Lesson, []Event, error) {
	out, noop, err := apply(l, StatusCompleted)
	if err != nil || noop {
		return out, nil, err
	}
	return out, nil, nil
}
