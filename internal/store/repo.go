package store

import (
	"context"
	"fmt"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
)

// CASUpdate is one compare-and-set lesson write: the new document is
// applied only if the persisted status still equals From. The store is
// the authority for the current status, so concurrent sweeps or user
// actions cannot double-apply a transition.
type CASUpdate struct {
	Lesson lesson.Lesson
	From   lesson.Status
}

// LessonRepo is the persistence contract for lessons. Writes are full
// document upserts keyed by ID.
type LessonRepo interface {
	// ByStatus returns all lessons currently in status.
	ByStatus(ctx context.Context, status lesson.Status) ([]lesson.Lesson, error)

	// ByStudent returns all lessons created by the student.
	ByStudent(ctx context.Context, studentUID string) ([]lesson.Lesson, error)

	// ByTutor returns all lessons listing the tutor as candidate or assignee.
	ByTutor(ctx context.Context, tutorUID string) ([]lesson.Lesson, error)

	// ByID returns the lesson, or nil if it does not exist.
	ByID(ctx context.Context, id string) (*lesson.Lesson, error)

	// Create persists a new lesson and returns its store-generated ID.
	Create(ctx context.Context, l lesson.Lesson) (string, error)

	// ApplyBatch commits all updates in one transaction. Updates whose
	// status precondition no longer holds are skipped, not failed;
	// the returned slice holds the IDs that were actually written.
	// A returned error means nothing was committed.
	ApplyBatch(ctx context.Context, updates []CASUpdate) ([]string, error)

	// NewID mints a new opaque lesson ID.
	NewID() string
}

// ProfileRepo is the read-only persistence contract for participants.
// The core never writes profiles.
type ProfileRepo interface {
	// ByID returns the profile for uid.
	ByID(ctx context.Context, uid string) (*profile.Profile, error)

	// Tutors returns all tutor profiles.
	Tutors(ctx context.Context) ([]profile.Profile, error)
}

// ProfileNotFoundError reports a uid with no stored profile.
type ProfileNotFoundError struct {
	UID string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile %s not found", e.UID)
}

// NotificationEventData is one outbound notification attempt.
type NotificationEventData struct {
	RecipientUID string
	Title        string
	Body         string
	Delivered    bool
	Reason       string
}

// NotificationLogRepo appends to the outbound-notification audit log.
type NotificationLogRepo interface {
	Append(ctx context.Context, data NotificationEventData) error
}
