package sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/store"
)

// fakeClock returns a fixed instant.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// fakeLessons is an in-memory LessonRepo with the store's CAS write
// semantics, so idempotency under re-delivered ticks is tested for real.
type fakeLessons struct {
	lessons  map[string]lesson.Lesson
	batchErr error
	nextID   int
}

func newFakeLessons(ls ...lesson.Lesson) *fakeLessons {
	f := &fakeLessons{lessons: make(map[string]lesson.Lesson)}
	for _, l := range ls {
		f.lessons[l.ID] = l
	}
	return f
}

func (f *fakeLessons) ByStatus(_ context.Context, status lesson.Status) ([]lesson.Lesson, error) {
	var out []lesson.Lesson
	for _, l := range f.lessons {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLessons) ByStudent(_ context.Context, uid string) ([]lesson.Lesson, error) {
	var out []lesson.Lesson
	for _, l := range f.lessons {
		if l.StudentUID == uid {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLessons) ByTutor(_ context.Context, uid string) ([]lesson.Lesson, error) {
	var out []lesson.Lesson
	for _, l := range f.lessons {
		for _, t := range l.TutorUIDs {
			if t == uid {
				out = append(out, l)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeLessons) ByID(_ context.Context, id string) (*lesson.Lesson, error) {
	l, ok := f.lessons[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f *fakeLessons) Create(_ context.Context, l lesson.Lesson) (string, error) {
	if l.ID == "" {
		l.ID = f.NewID()
	}
	f.lessons[l.ID] = l
	return l.ID, nil
}

func (f *fakeLessons) ApplyBatch(_ context.Context, updates []store.CASUpdate) ([]string, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	var applied []string
	for _, u := range updates {
		current, ok := f.lessons[u.Lesson.ID]
		if !ok || current.Status != u.From {
			continue
		}
		f.lessons[u.Lesson.ID] = u.Lesson
		applied = append(applied, u.Lesson.ID)
	}
	return applied, nil
}

func (f *fakeLessons) NewID() string {
	f.nextID++
	return string(rune('a' + f.nextID))
}

// recordingDispatcher captures dispatched events.
type recordingDispatcher struct {
	events []lesson.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, events []lesson.Event) {
	d.events = append(d.events, events...)
}

func at(value string) time.Time {
	t, err := time.Parse(lesson.TimeSlotLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func confirmedLesson(id, slot string) lesson.Lesson {
	return lesson.Lesson{
		ID:         id,
		Title:      "Mechanics revision",
		Subject:    lesson.SubjectPhysics,
		TimeSlot:   slot,
		StudentUID: "student-1",
		TutorUIDs:  []string{"tutor-1"},
		Status:     lesson.StatusConfirmed,
	}
}

func TestSweepCompletions_PastEndEntersReview(t *testing.T) {
	repo := newFakeLessons(confirmedLesson("l1", "10/10/2024T10:00:00"))
	// Lesson ends 11:00; the sweep runs at 11:01.
	clock := &fakeClock{now: at("10/10/2024T11:01:00")}
	r := New(repo, nil, clock)

	if err := r.SweepCompletions(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got := repo.lessons["l1"].Status; got != lesson.StatusPendingReview {
		t.Errorf("status = %s, want %s", got, lesson.StatusPendingReview)
	}
}

func TestSweepCompletions_StillRunningUntouched(t *testing.T) {
	repo := newFakeLessons(confirmedLesson("l1", "10/10/2024T10:00:00"))
	clock := &fakeClock{now: at("10/10/2024T10:30:00")}
	r := New(repo, nil, clock)

	if err := r.SweepCompletions(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got := repo.lessons["l1"].Status; got != lesson.StatusConfirmed {
		t.Errorf("status = %s, want %s", got, lesson.StatusConfirmed)
	}
}

func TestSweepCompletions_InstantCompletesDirectly(t *testing.T) {
	instant := confirmedLesson("l1", lesson.InstantTimeSlot)
	instant.Status = lesson.StatusInstantConfirmed
	repo := newFakeLessons(instant)
	r := New(repo, nil, &fakeClock{now: at("10/10/2024T10:00:00")})

	if err := r.SweepCompletions(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	// Skips PENDING_REVIEW: no fixed end time exists.
	if got := repo.lessons["l1"].Status; got != lesson.StatusCompleted {
		t.Errorf("status = %s, want %s", got, lesson.StatusCompleted)
	}
}

func TestSweepCompletions_MalformedSlotSkipped(t *testing.T) {
	bad := confirmedLesson("bad", "not-a-date")
	good := confirmedLesson("good", "10/10/2024T08:00:00")
	repo := newFakeLessons(bad, good)
	r := New(repo, nil, &fakeClock{now: at("10/10/2024T12:00:00")})

	if err := r.SweepCompletions(context.Background()); err != nil {
		t.Fatalf("sweep must not fail on one malformed slot: %v", err)
	}
	if got := repo.lessons["bad"].Status; got != lesson.StatusConfirmed {
		t.Errorf("malformed lesson status = %s, want untouched", got)
	}
	if got := repo.lessons["good"].Status; got != lesson.StatusPendingReview {
		t.Errorf("good lesson status = %s, want %s", got, lesson.StatusPendingReview)
	}
}

func TestSweepCompletions_RunTwiceIsIdempotent(t *testing.T) {
	repo := newFakeLessons(confirmedLesson("l1", "10/10/2024T10:00:00"))
	r := New(repo, nil, &fakeClock{now: at("10/10/2024T12:00:00")})

	for i := 0; i < 2; i++ {
		if err := r.SweepCompletions(context.Background()); err != nil {
			t.Fatalf("sweep %d: %v", i, err)
		}
	}
	if got := repo.lessons["l1"].Status; got != lesson.StatusPendingReview {
		t.Errorf("status = %s, want %s", got, lesson.StatusPendingReview)
	}
}

func TestSweepCompletions_BatchFailureSurfaced(t *testing.T) {
	repo := newFakeLessons(confirmedLesson("l1", "10/10/2024T10:00:00"))
	repo.batchErr = errors.New("store unavailable")
	r := New(repo, nil, &fakeClock{now: at("10/10/2024T12:00:00")})

	if err := r.SweepCompletions(context.Background()); err == nil {
		t.Fatal("expected commit error for scheduler retry")
	}
	if got := repo.lessons["l1"].Status; got != lesson.StatusConfirmed {
		t.Errorf("status = %s, want unchanged on failed commit", got)
	}
}

func TestSweepReviewWindows(t *testing.T) {
	l := confirmedLesson("l1", "10/10/2024T10:00:00")
	l.Status = lesson.StatusPendingReview
	repo := newFakeLessons(l)

	// 8-day window not yet elapsed.
	r := New(repo, nil, &fakeClock{now: at("17/10/2024T10:00:00")})
	if err := r.SweepReviewWindows(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got := repo.lessons["l1"].Status; got != lesson.StatusPendingReview {
		t.Errorf("status = %s, want still %s", got, lesson.StatusPendingReview)
	}

	// Nine days after the start the window has elapsed.
	r = New(repo, nil, &fakeClock{now: at("19/10/2024T10:00:00")})
	if err := r.SweepReviewWindows(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got := repo.lessons["l1"].Status; got != lesson.StatusCompleted {
		t.Errorf("status = %s, want %s", got, lesson.StatusCompleted)
	}
}

func TestSweepReminders_OneShotBothParties(t *testing.T) {
	repo := newFakeLessons(confirmedLesson("l1", "10/10/2024T10:00:00"))
	dispatcher := &recordingDispatcher{}
	r := New(repo, dispatcher, &fakeClock{now: at("10/10/2024T09:30:00")})

	if err := r.SweepReminders(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(dispatcher.events) != 2 {
		t.Fatalf("events = %d, want 2 (student and tutor)", len(dispatcher.events))
	}
	recipients := map[string]bool{}
	for _, ev := range dispatcher.events {
		recipients[ev.RecipientUID] = true
	}
	if !recipients["student-1"] || !recipients["tutor-1"] {
		t.Errorf("recipients = %v", recipients)
	}
	if got := repo.lessons["l1"].Status; got != lesson.StatusConfirmed {
		t.Errorf("reminder changed status to %s", got)
	}

	// Second tick: the flag is set, nothing more goes out.
	if err := r.SweepReminders(context.Background()); err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if len(dispatcher.events) != 2 {
		t.Errorf("events after second tick = %d, want still 2", len(dispatcher.events))
	}
}

func TestSweepReminders_OutsideLeadWindow(t *testing.T) {
	repo := newFakeLessons(
		confirmedLesson("far", "10/10/2024T18:00:00"),
		confirmedLesson("past", "10/10/2024T08:00:00"),
	)
	dispatcher := &recordingDispatcher{}
	r := New(repo, dispatcher, &fakeClock{now: at("10/10/2024T09:30:00")})

	if err := r.SweepReminders(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(dispatcher.events) != 0 {
		t.Errorf("events = %+v, want none", dispatcher.events)
	}
}
