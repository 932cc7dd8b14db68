package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/notify"
	"github.com/obeng/tutorhub/internal/profile"
	"github.com/obeng/tutorhub/internal/store"
)

type fakeLessonStore struct {
	mu      sync.Mutex
	lessons map[string]lesson.Lesson
	nextID  int

	// conflict makes every ApplyBatch precondition fail, as if another
	// writer got there first.
	conflict bool
}

func newFakeLessonStore() *fakeLessonStore {
	return &fakeLessonStore{lessons: map[string]lesson.Lesson{}}
}

func (f *fakeLessonStore) put(l lesson.Lesson) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lessons[l.ID] = l
}

func (f *fakeLessonStore) ByStatus(_ context.Context, status lesson.Status) ([]lesson.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []lesson.Lesson
	for i := 0; i < f.nextID+1; i++ {
		if l, ok := f.lessons[fmt.Sprintf("lesson-%d", i)]; ok && l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLessonStore) ByStudent(_ context.Context, studentUID string) ([]lesson.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []lesson.Lesson
	for _, l := range f.lessons {
		if l.StudentUID == studentUID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLessonStore) ByTutor(_ context.Context, tutorUID string) ([]lesson.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []lesson.Lesson
	for _, l := range f.lessons {
		for _, uid := range l.TutorUIDs {
			if uid == tutorUID {
				out = append(out, l)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeLessonStore) ByID(_ context.Context, id string) (*lesson.Lesson, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.lessons[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f *fakeLessonStore) Create(_ context.Context, l lesson.Lesson) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l.ID = fmt.Sprintf("lesson-%d", f.nextID)
	f.nextID++
	f.lessons[l.ID] = l
	return l.ID, nil
}

func (f *fakeLessonStore) ApplyBatch(_ context.Context, updates []store.CASUpdate) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var applied []string
	for _, u := range updates {
		cur, ok := f.lessons[u.Lesson.ID]
		if !ok || cur.Status != u.From || f.conflict {
			continue
		}
		f.lessons[u.Lesson.ID] = u.Lesson
		applied = append(applied, u.Lesson.ID)
	}
	return applied, nil
}

func (f *fakeLessonStore) NewID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("lesson-%d", f.nextID)
	f.nextID++
	return id
}

type fakeProfileStore struct {
	profiles []profile.Profile
}

func (f *fakeProfileStore) ByID(_ context.Context, uid string) (*profile.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].UID == uid {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, &store.ProfileNotFoundError{UID: uid}
}

func (f *fakeProfileStore) Tutors(_ context.Context) ([]profile.Profile, error) {
	var out []profile.Profile
	for _, p := range f.profiles {
		if p.Role == profile.RoleTutor {
			out = append(out, p)
		}
	}
	return out, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type testEnv struct {
	server    *Server
	lessons   *fakeLessonStore
	profiles  *fakeProfileStore
	transport *notify.RecordingTransport
	now       time.Time
}

func newTestEnv(profiles ...profile.Profile) *testEnv {
	env := &testEnv{
		lessons:   newFakeLessonStore(),
		profiles:  &fakeProfileStore{profiles: profiles},
		transport: &notify.RecordingTransport{},
		now:       time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC),
	}
	dispatcher := notify.NewDispatcher(env.profiles, env.transport, nil)
	env.server = New(env.lessons, env.profiles, dispatcher, fixedClock{env.now})
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func studentProfile(uid string) profile.Profile {
	return profile.Profile{UID: uid, Role: profile.RoleStudent, Name: "Student " + uid, DeviceToken: "token-" + uid}
}

func tutorProfile(uid string) profile.Profile {
	return profile.Profile{UID: uid, Role: profile.RoleTutor, Name: "Tutor " + uid, DeviceToken: "token-" + uid}
}

func TestCreateLesson(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"))

	body := map[string]any{
		"studentUid": "stu-1",
		"title":      "Derivatives",
		"subject":    "math",
		"languages":  []string{"en"},
		"timeSlot":   "02/03/2026T10:00:00",
		"minPrice":   20.0,
		"maxPrice":   40.0,
	}

	rec := env.do(t, http.MethodPost, "/lessons", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[lessonView](t, rec)
	require.NotEmpty(t, created.ID)
	require.Equal(t, string(lesson.StatusStudentRequested), created.Status)

	stored, err := env.lessons.ByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, lesson.StatusStudentRequested, stored.Status)
}

func TestCreateLessonInstant(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"))

	rec := env.do(t, http.MethodPost, "/lessons", map[string]any{
		"studentUid": "stu-1",
		"subject":    "math",
		"timeSlot":   "instant",
		"minPrice":   10.0,
		"maxPrice":   20.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, string(lesson.StatusInstantRequested), decodeBody[lessonView](t, rec).Status)
}

func TestCreateLessonRejections(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"))

	base := func() map[string]any {
		return map[string]any{
			"studentUid": "stu-1",
			"subject":    "math",
			"timeSlot":   "02/03/2026T10:00:00",
			"minPrice":   20.0,
			"maxPrice":   40.0,
		}
	}

	tests := []struct {
		name   string
		mutate func(map[string]any)
		want   int
	}{
		{"unknown student", func(m map[string]any) { m["studentUid"] = "ghost" }, http.StatusNotFound},
		{"tutor cannot create", func(m map[string]any) { m["studentUid"] = "tut-1" }, http.StatusForbidden},
		{"inverted price range", func(m map[string]any) { m["minPrice"], m["maxPrice"] = 40.0, 20.0 }, http.StatusBadRequest},
		{"malformed time slot", func(m map[string]any) { m["timeSlot"] = "2026-03-02 10:00" }, http.StatusBadRequest},
		{"missing subject", func(m map[string]any) { delete(m, "subject") }, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := base()
			tt.mutate(body)
			rec := env.do(t, http.MethodPost, "/lessons", body)
			require.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGetLessonNotFound(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodGet, "/lessons/ghost", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatchMovesRequestIntoMatching(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"))
	env.lessons.put(lesson.Lesson{ID: "lesson-0", StudentUID: "stu-1", Status: lesson.StatusStudentRequested})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/match", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, string(lesson.StatusMatching), decodeBody[lessonView](t, rec).Status)
}

func TestAssignTutorFlow(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"))
	env.lessons.put(lesson.Lesson{
		ID:         "lesson-0",
		Subject:    "math",
		TimeSlot:   "02/03/2026T10:00:00",
		StudentUID: "stu-1",
		TutorUIDs:  []string{"tut-1", "tut-2"},
		Status:     lesson.StatusMatching,
	})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/assign", map[string]any{"tutorUid": "tut-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[lessonView](t, rec)
	require.Equal(t, string(lesson.StatusPendingTutorConfirmation), got.Status)
	require.Equal(t, []string{"tut-1"}, got.TutorUIDs)

	sent := env.transport.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "token-tut-1", sent[0].Token)
}

func TestAssignRejectsNonTutor(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), studentProfile("stu-2"))
	env.lessons.put(lesson.Lesson{ID: "lesson-0", StudentUID: "stu-1", Status: lesson.StatusMatching})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/assign", map[string]any{"tutorUid": "stu-2"})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAcceptFixesPrice(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"))
	env.lessons.put(lesson.Lesson{
		ID:         "lesson-0",
		StudentUID: "stu-1",
		TutorUIDs:  []string{"tut-1"},
		Status:     lesson.StatusPendingTutorConfirmation,
	})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/accept", map[string]any{"tutorUid": "tut-1", "price": 30.0})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[lessonView](t, rec)
	require.Equal(t, string(lesson.StatusConfirmed), got.Status)
	require.Equal(t, 30.0, got.Price)

	sent := env.transport.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "token-stu-1", sent[0].Token)
}

func TestAcceptRejectsWrongTutor(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"), tutorProfile("tut-2"))
	env.lessons.put(lesson.Lesson{
		ID:         "lesson-0",
		StudentUID: "stu-1",
		TutorUIDs:  []string{"tut-1"},
		Status:     lesson.StatusPendingTutorConfirmation,
	})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/accept", map[string]any{"tutorUid": "tut-2", "price": 30.0})
	require.Equal(t, http.StatusForbidden, rec.Code)

	stored, _ := env.lessons.ByID(context.Background(), "lesson-0")
	require.Equal(t, lesson.StatusPendingTutorConfirmation, stored.Status)
}

func TestInstantAccept(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"))
	env.lessons.put(lesson.Lesson{
		ID:         "lesson-0",
		StudentUID: "stu-1",
		TimeSlot:   lesson.InstantTimeSlot,
		Status:     lesson.StatusInstantRequested,
	})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/accept", map[string]any{"tutorUid": "tut-1", "price": 25.0})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[lessonView](t, rec)
	require.Equal(t, string(lesson.StatusInstantConfirmed), got.Status)
	require.Equal(t, []string{"tut-1"}, got.TutorUIDs)
}

func TestCancelNotifiesOtherParty(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"))
	env.lessons.put(lesson.Lesson{
		ID:         "lesson-0",
		StudentUID: "stu-1",
		TutorUIDs:  []string{"tut-1"},
		Status:     lesson.StatusConfirmed,
	})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/cancel", map[string]any{"by": "STUDENT"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, string(lesson.StatusStudentCancelled), decodeBody[lessonView](t, rec).Status)

	sent := env.transport.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "token-tut-1", sent[0].Token)
}

func TestCancelRejectsUnknownParty(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"))
	env.lessons.put(lesson.Lesson{ID: "lesson-0", StudentUID: "stu-1", Status: lesson.StatusConfirmed})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/cancel", map[string]any{"by": "ADMIN"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelTerminalLessonConflicts(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"))
	env.lessons.put(lesson.Lesson{ID: "lesson-0", StudentUID: "stu-1", Status: lesson.StatusCompleted})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/cancel", map[string]any{"by": "STUDENT"})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestConcurrentUpdateConflicts(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"))
	env.lessons.put(lesson.Lesson{
		ID:         "lesson-0",
		StudentUID: "stu-1",
		TutorUIDs:  []string{"tut-1"},
		Status:     lesson.StatusMatching,
	})
	env.lessons.conflict = true

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/assign", map[string]any{"tutorUid": "tut-1"})
	require.Equal(t, http.StatusConflict, rec.Code)

	// Nothing was written and nobody was notified.
	stored, _ := env.lessons.ByID(context.Background(), "lesson-0")
	require.Equal(t, lesson.StatusMatching, stored.Status)
	require.Empty(t, env.transport.Sent())
}

func TestRatingLifecycle(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"), tutorProfile("tut-1"))
	env.lessons.put(lesson.Lesson{
		ID:         "lesson-0",
		StudentUID: "stu-1",
		TutorUIDs:  []string{"tut-1"},
		Status:     lesson.StatusPendingReview,
	})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/rating", map[string]any{"grade": 4, "comment": "solid"})
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[lessonView](t, rec)
	require.NotNil(t, got.Rating)
	require.Equal(t, 4, got.Rating.Grade)

	// A second attach is a conflict; edits go through PUT.
	rec = env.do(t, http.MethodPost, "/lessons/lesson-0/rating", map[string]any{"grade": 5})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPut, "/lessons/lesson-0/rating", map[string]any{"grade": 5, "comment": "great"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 5, decodeBody[lessonView](t, rec).Rating.Grade)
}

func TestRatingEditWindowClosed(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"))
	ratedAt := env.now.Add(-25 * time.Hour)
	env.lessons.put(lesson.Lesson{
		ID:         "lesson-0",
		StudentUID: "stu-1",
		Status:     lesson.StatusCompleted,
		Rating:     &lesson.Rating{Grade: 3, Comment: "ok", At: ratedAt},
	})

	rec := env.do(t, http.MethodPut, "/lessons/lesson-0/rating", map[string]any{"grade": 5})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRatingRejectsOutOfRangeGrade(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"))
	env.lessons.put(lesson.Lesson{ID: "lesson-0", StudentUID: "stu-1", Status: lesson.StatusPendingReview})

	rec := env.do(t, http.MethodPost, "/lessons/lesson-0/rating", map[string]any{"grade": 6})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenLessonsSortedBySuitability(t *testing.T) {
	tutor := tutorProfile("tut-1")
	tutor.Subjects = []lesson.Subject{"math"}
	tutor.Languages = []lesson.Language{"en"}
	tutor.Price = 30
	tutor.Schedule = profile.Schedule{}.Set(time.Monday, 10, true)

	env := newTestEnv(studentProfile("stu-1"), tutor)

	// 02/03/2026 is a Monday.
	env.lessons.put(lesson.Lesson{
		ID: "lesson-0", StudentUID: "stu-1", Subject: "physics",
		Languages: []lesson.Language{"en"}, TimeSlot: "02/03/2026T10:00:00",
		MinPrice: 20, MaxPrice: 40, Status: lesson.StatusStudentRequested,
	})
	env.lessons.nextID = 1
	env.lessons.put(lesson.Lesson{
		ID: "lesson-1", StudentUID: "stu-1", Subject: "math",
		Languages: []lesson.Language{"en"}, TimeSlot: "02/03/2026T10:00:00",
		MinPrice: 20, MaxPrice: 40, Status: lesson.StatusMatching,
	})
	env.lessons.nextID = 2

	rec := env.do(t, http.MethodGet, "/lessons/open?tutor=tut-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]scoredLessonView](t, rec)
	require.Len(t, got, 2)
	require.Equal(t, "lesson-1", got[0].Lesson.ID)
	require.Equal(t, 100, got[0].Score)
	require.Equal(t, "lesson-0", got[1].Lesson.ID)
	require.Equal(t, 65, got[1].Score)
}

func TestOpenLessonsRequiresTutorParam(t *testing.T) {
	env := newTestEnv()
	rec := env.do(t, http.MethodGet, "/lessons/open", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendTutors(t *testing.T) {
	student := studentProfile("stu-1")
	student.AcademicLevel = 5
	student.Section = "A"

	alice := tutorProfile("tut-alice")
	alice.AcademicLevel = 7
	alice.Section = "A"

	bob := tutorProfile("tut-bob")
	bob.AcademicLevel = 5
	bob.Section = "B"

	env := newTestEnv(student, alice, bob)

	// Bob has a completed lesson rated 5/5; it should not outweigh
	// Alice's better level and section fit.
	env.lessons.put(lesson.Lesson{
		ID: "lesson-0", StudentUID: "stu-2", TutorUIDs: []string{"tut-bob"},
		Status: lesson.StatusCompleted,
		Rating: &lesson.Rating{Grade: 5, At: env.now.Add(-48 * time.Hour)},
	})
	env.lessons.nextID = 1

	rec := env.do(t, http.MethodGet, "/tutors/recommend?student=stu-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]rankedTutorView](t, rec)
	require.Len(t, got, 2)
	require.Equal(t, "tut-alice", got[0].UID)
	require.Equal(t, "tut-bob", got[1].UID)
	require.Greater(t, got[0].Score, got[1].Score)
}

func TestListLessonsByStudent(t *testing.T) {
	env := newTestEnv(studentProfile("stu-1"))
	env.lessons.put(lesson.Lesson{ID: "lesson-0", StudentUID: "stu-1", Status: lesson.StatusConfirmed})
	env.lessons.put(lesson.Lesson{ID: "lesson-1", StudentUID: "stu-2", Status: lesson.StatusConfirmed})

	rec := env.do(t, http.MethodGet, "/lessons?student=stu-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[[]lessonView](t, rec)
	require.Len(t, got, 1)
	require.Equal(t, "lesson-0", got[0].ID)
}
