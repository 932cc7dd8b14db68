package lesson

// Status represents a lesson's position in the confirmation lifecycle.
type Status string

const (
	StatusStudentRequested         Status = "STUDENT_REQUESTED"
	StatusInstantRequested         Status = "INSTANT_REQUESTED"
	StatusMatching                 Status = "MATCHING"
	StatusPendingTutorConfirmation Status = "PENDING_TUTOR_CONFIRMATION"
	StatusInstantConfirmed         Status = "INSTANT_CONFIRMED"
	StatusConfirmed                Status = "CONFIRMED"
	StatusPendingReview            Status = "PENDING_REVIEW"
	StatusCompleted                Status = "COMPLETED"
	StatusStudentCancelled         Status = "STUDENT_CANCELLED"
	StatusTutorCancelled           Status = "TUTOR_CANCELLED"
)

// AllStatuses lists every lifecycle status, in rough lifecycle order.
var AllStatuses = []Status{
	StatusStudentRequested,
	StatusInstantRequested,
	StatusMatching,
	StatusPendingTutorConfirmation,
	StatusInstantConfirmed,
	StatusConfirmed,
	StatusPendingReview,
	StatusCompleted,
	StatusStudentCancelled,
	StatusTutorCancelled,
}

// ParseStatus converts a stored string back into a Status.
func ParseStatus(raw string) (Status, bool) {
	for _, s := range AllStatuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// Terminal reports whether no further transitions are permitted from s.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusStudentCancelled, StatusTutorCancelled:
		return true
	}
	return false
}

// Reviewable reports whether a rating may be attached while in s.
func (s Status) Reviewable() bool {
	return s == StatusPendingReview || s == StatusCompleted
}

// Cancellable reports whether either party may still cancel from s.
func (s Status) Cancellable() bool {
	switch s {
	case StatusStudentRequested, StatusPendingTutorConfirmation, StatusConfirmed:
		return true
	}
	return false
}
