// Package sweep hosts the time-triggered jobs that advance lessons
// through wall-clock-derived transitions: finished lessons into their
// review window, elapsed review windows into completion, and the
// one-shot reminder before a confirmed lesson starts.
//
// Each sweep is one read-compute-commit cycle. Mutations go through a
// single compare-and-set batch, so a failed tick commits nothing and is
// simply retried on the next one; re-applied transitions are no-ops by
// the state machine's idempotency contract.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/store"
)

// ReminderLead is how far ahead of a lesson's start the reminder goes out.
const ReminderLead = time.Hour

// Dispatcher is the sink for notification events emitted by sweeps.
type Dispatcher interface {
	Dispatch(ctx context.Context, events []lesson.Event)
}

// Runner executes the periodic sweeps against the lesson store.
type Runner struct {
	lessons    store.LessonRepo
	dispatcher Dispatcher
	clock      Clock
}

// New creates a Runner. A nil clock means the system clock.
func New(lessons store.LessonRepo, dispatcher Dispatcher, clock Clock) *Runner {
	if clock == nil {
		clock = SystemClock()
	}
	return &Runner{lessons: lessons, dispatcher: dispatcher, clock: clock}
}

// Intervals configures how often each sweep fires.
type Intervals struct {
	Completion time.Duration
	Review     time.Duration
	Reminder   time.Duration
}

// DefaultIntervals matches the cadence the jobs were designed for:
// completion checks run frequently, review-window closure is coarse.
func DefaultIntervals() Intervals {
	return Intervals{
		Completion: 5 * time.Minute,
		Review:     time.Hour,
		Reminder:   5 * time.Minute,
	}
}

// Run fires the three sweeps on their tickers until ctx is cancelled.
// A failed tick is logged and retried on the next one.
func (r *Runner) Run(ctx context.Context, iv Intervals) {
	completion := time.NewTicker(iv.Completion)
	review := time.NewTicker(iv.Review)
	reminder := time.NewTicker(iv.Reminder)
	defer completion.Stop()
	defer review.Stop()
	defer reminder.Stop()

	log.Println("sweep runner started")
	for {
		select {
		case <-ctx.Done():
			log.Println("sweep runner stopped")
			return
		case <-completion.C:
			if err := r.SweepCompletions(ctx); err != nil {
				log.Printf("completion sweep: %v", err)
			}
		case <-review.C:
			if err := r.SweepReviewWindows(ctx); err != nil {
				log.Printf("review sweep: %v", err)
			}
		case <-reminder.C:
			if err := r.SweepReminders(ctx); err != nil {
				log.Printf("reminder sweep: %v", err)
			}
		}
	}
}

// SweepCompletions scans confirmed lessons and advances the ones whose
// end time has passed. Scheduled lessons enter their review window;
// instant lessons have no fixed end time and complete outright the
// moment the sweep sees them. A malformed time slot on a scheduled
// lesson is logged and skipped, never fatal to the sweep.
func (r *Runner) SweepCompletions(ctx context.Context) error {
	now := r.clock.Now()

	var batch []store.CASUpdate
	for _, status := range []lesson.Status{lesson.StatusConfirmed, lesson.StatusInstantConfirmed} {
		candidates, err := r.lessons.ByStatus(ctx, status)
		if err != nil {
			return fmt.Errorf("scan %s lessons: %w", status, err)
		}

		for _, l := range candidates {
			if l.IsInstant() {
				done, _, err := lesson.Complete(l)
				if err != nil {
					log.Printf("completion sweep: lesson %s: %v", l.ID, err)
					continue
				}
				batch = append(batch, store.CASUpdate{Lesson: done, From: status})
				continue
			}

			end, err := l.EndTime()
			if err != nil {
				var malformed *lesson.MalformedTimeSlotError
				if errors.As(err, &malformed) {
					log.Printf("completion sweep: lesson %s skipped: %v", l.ID, err)
					continue
				}
				return err
			}
			if !now.After(end) {
				continue
			}
			advanced, _, err := lesson.AdvanceToReview(l)
			if err != nil {
				log.Printf("completion sweep: lesson %s: %v", l.ID, err)
				continue
			}
			batch = append(batch, store.CASUpdate{Lesson: advanced, From: status})
		}
	}

	_, err := r.lessons.ApplyBatch(ctx, batch)
	if err != nil {
		return fmt.Errorf("commit completion sweep: %w", err)
	}
	return nil
}

// SweepReviewWindows force-completes lessons whose 8-day review window
// has elapsed.
func (r *Runner) SweepReviewWindows(ctx context.Context) error {
	now := r.clock.Now()

	candidates, err := r.lessons.ByStatus(ctx, lesson.StatusPendingReview)
	if err != nil {
		return fmt.Errorf("scan pending-review lessons: %w", err)
	}

	var batch []store.CASUpdate
	for _, l := range candidates {
		start, err := l.StartTime()
		if err != nil {
			log.Printf("review sweep: lesson %s skipped: %v", l.ID, err)
			continue
		}
		if !now.After(start.Add(lesson.ReviewWindow)) {
			continue
		}
		done, _, err := lesson.Complete(l)
		if err != nil {
			log.Printf("review sweep: lesson %s: %v", l.ID, err)
			continue
		}
		batch = append(batch, store.CASUpdate{Lesson: done, From: lesson.StatusPendingReview})
	}

	_, err = r.lessons.ApplyBatch(ctx, batch)
	if err != nil {
		return fmt.Errorf("commit review sweep: %w", err)
	}
	return nil
}

// SweepReminders notifies both parties of confirmed lessons starting
// within the next hour. The reminder is one-shot: the reminder_sent
// flag commits through the same CAS batch, and notifications go out
// only for rows that actually committed, so a re-delivered tick cannot
// double-remind.
func (r *Runner) SweepReminders(ctx context.Context) error {
	now := r.clock.Now()

	candidates, err := r.lessons.ByStatus(ctx, lesson.StatusConfirmed)
	if err != nil {
		return fmt.Errorf("scan confirmed lessons: %w", err)
	}

	var batch []store.CASUpdate
	eventsByID := make(map[string][]lesson.Event)
	for _, l := range candidates {
		if l.ReminderSent {
			continue
		}
		start, err := l.StartTime()
		if err != nil {
			log.Printf("reminder sweep: lesson %s skipped: %v", l.ID, err)
			continue
		}
		if start.Before(now) || start.After(now.Add(ReminderLead)) {
			continue
		}

		flagged := l
		flagged.ReminderSent = true
		batch = append(batch, store.CASUpdate{Lesson: flagged, From: lesson.StatusConfirmed})

		body := fmt.Sprintf("Lesson %q starts at %s.", l.Title, start.Format("15:04"))
		events := []lesson.Event{
			{RecipientUID: l.StudentUID, Title: "Upcoming lesson", Body: body},
		}
		if tutor := l.AssignedTutor(); tutor != "" {
			events = append(events, lesson.Event{RecipientUID: tutor, Title: "Upcoming lesson", Body: body})
		}
		eventsByID[l.ID] = events
	}

	applied, err := r.lessons.ApplyBatch(ctx, batch)
	if err != nil {
		return fmt.Errorf("commit reminder sweep: %w", err)
	}

	var toSend []lesson.Event
	for _, id := range applied {
		toSend = append(toSend, eventsByID[id]...)
	}
	if len(toSend) > 0 && r.dispatcher != nil {
		r.dispatcher.Dispatch(ctx, toSend)
	}
	return nil
}
