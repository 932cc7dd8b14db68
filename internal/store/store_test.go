package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func storedLesson() lesson.Lesson {
	return lesson.Lesson{
		Title:      "Algebra catch-up",
		Subject:    lesson.SubjectMath,
		Languages:  []lesson.Language{lesson.LanguageEnglish, lesson.LanguageFrench},
		TimeSlot:   "10/10/2024T10:00:00",
		StudentUID: "student-1",
		TutorUIDs:  []string{"tutor-1", "tutor-2"},
		MinPrice:   20,
		MaxPrice:   40,
		Status:     lesson.StatusStudentRequested,
	}
}

func TestLessonRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, storedLesson())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.ByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, lesson.StatusStudentRequested, got.Status)
	require.Equal(t, []lesson.Language{lesson.LanguageEnglish, lesson.LanguageFrench}, got.Languages)
	require.Equal(t, []string{"tutor-1", "tutor-2"}, got.TutorUIDs)
	require.Nil(t, got.Rating)
}

func TestLessonByID_Missing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.LessonRepo().ByID(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestLessonByStatus(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	open := storedLesson()
	confirmed := storedLesson()
	confirmed.Status = lesson.StatusConfirmed
	confirmed.TutorUIDs = []string{"tutor-1"}

	_, err := repo.Create(ctx, open)
	require.NoError(t, err)
	_, err = repo.Create(ctx, confirmed)
	require.NoError(t, err)

	got, err := repo.ByStatus(ctx, lesson.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, lesson.StatusConfirmed, got[0].Status)
}

func TestLessonByTutor(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, storedLesson())
	require.NoError(t, err)

	other := storedLesson()
	other.TutorUIDs = []string{"tutor-9"}
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)

	got, err := repo.ByTutor(ctx, "tutor-2")
	require.NoError(t, err)
	require.Len(t, got, 1)

	none, err := repo.ByTutor(ctx, "tutor-404")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestApplyBatch_CASSkipsStaleRows(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, storedLesson())
	require.NoError(t, err)

	current, err := repo.ByID(ctx, id)
	require.NoError(t, err)

	assigned, _, err := lesson.AssignTutor(*current, "tutor-1")
	require.NoError(t, err)

	applied, err := repo.ApplyBatch(ctx, []CASUpdate{{Lesson: assigned, From: current.Status}})
	require.NoError(t, err)
	require.Equal(t, []string{id}, applied)

	// Re-applying against the stale precondition is skipped, not failed.
	applied, err = repo.ApplyBatch(ctx, []CASUpdate{{Lesson: assigned, From: current.Status}})
	require.NoError(t, err)
	require.Empty(t, applied)

	got, err := repo.ByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, lesson.StatusPendingTutorConfirmation, got.Status)
	require.Equal(t, []string{"tutor-1"}, got.TutorUIDs)
}

func TestApplyBatch_PersistsRating(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	l := storedLesson()
	l.Status = lesson.StatusPendingReview
	l.TutorUIDs = []string{"tutor-1"}
	id, err := repo.Create(ctx, l)
	require.NoError(t, err)

	current, err := repo.ByID(ctx, id)
	require.NoError(t, err)

	at := time.Date(2024, 10, 11, 9, 0, 0, 0, time.UTC)
	rated, err := lesson.AddRating(*current, 5, "great lesson", at)
	require.NoError(t, err)

	_, err = repo.ApplyBatch(ctx, []CASUpdate{{Lesson: rated, From: current.Status}})
	require.NoError(t, err)

	got, err := repo.ByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	require.Equal(t, 5, got.Rating.Grade)
	require.Equal(t, "great lesson", got.Rating.Comment)
	require.True(t, got.Rating.At.Equal(at))
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var sched profile.Schedule
	sched = sched.Set(time.Thursday, 10, true)

	_, err := s.Client().Profile.Create().
		SetID("tutor-1").
		SetRole(string(profile.RoleTutor)).
		SetName("Ada").
		SetSubjects([]string{string(lesson.SubjectMath)}).
		SetLanguages([]string{string(lesson.LanguageEnglish)}).
		SetPrice(30).
		SetSchedule(sched.Flatten()).
		SetAcademicLevel(4).
		SetSection("SCIENCE").
		SetDeviceToken("token-1").
		Save(ctx)
	require.NoError(t, err)

	got, err := s.ProfileRepo().ByID(ctx, "tutor-1")
	require.NoError(t, err)
	require.Equal(t, profile.RoleTutor, got.Role)
	require.True(t, got.Schedule.Available(time.Thursday, 10))
	require.True(t, got.TeachesSubject(lesson.SubjectMath))
	require.Equal(t, "token-1", got.DeviceToken)
}

func TestProfileByID_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.ProfileRepo().ByID(context.Background(), "ghost")
	var notFound *ProfileNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "ghost", notFound.UID)
}

func TestNotificationLogAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.NotificationLogRepo().Append(ctx, NotificationEventData{
		RecipientUID: "student-1",
		Title:        "Lesson confirmed",
		Body:         "Your tutor confirmed.",
		Delivered:    true,
	})
	require.NoError(t, err)

	n, err := s.Client().NotificationEvent.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
