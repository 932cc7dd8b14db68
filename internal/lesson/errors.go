package lesson

import (
	"errors"
	"fmt"
)

var (
	// ErrRatingExists - the lesson already carries a rating.
	ErrRatingExists = errors.New("lesson already rated")

	// ErrRatingMissing - an edit was requested but no rating exists.
	ErrRatingMissing = errors.New("lesson has no rating")

	// ErrRatingLocked - the 24-hour edit window has elapsed.
	ErrRatingLocked = errors.New("rating edit window has elapsed")

	// ErrNotReviewable - the lesson has not reached a reviewable status.
	ErrNotReviewable = errors.New("lesson is not in a reviewable status")

	// ErrNoTutorAssigned - the operation needs a single assigned tutor.
	ErrNoTutorAssigned = errors.New("lesson has no assigned tutor")
)

// InvalidTransitionError reports a status change that is not in the
// legal transition table. The lesson is left unchanged.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

// MalformedTimeSlotError reports a time slot that could not be parsed.
// Sweeps treat it as "skip this lesson, keep going".
type MalformedTimeSlotError struct {
	Raw string
	Err error
}

func (e *MalformedTimeSlotError) Error() string {
	return fmt.Sprintf("malformed time slot %q: %v", e.Raw, e.Err)
}

func (e *MalformedTimeSlotError) Unwrap() error { return e.Err }
