// Package server exposes the lesson lifecycle and matching engine over
// a small JSON API. Handlers are thin: every mutation goes through the
// state machine and commits with compare-and-set semantics, and
// notification side effects go out only after the write sticks.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/notify"
	"github.com/obeng/tutorhub/internal/store"
	"github.com/obeng/tutorhub/internal/sweep"
)

// Server wires the HTTP API to the store and dispatcher.
type Server struct {
	lessons    store.LessonRepo
	profiles   store.ProfileRepo
	dispatcher *notify.Dispatcher
	clock      sweep.Clock
	router     *http.ServeMux
}

// New creates a Server. A nil clock means the system clock.
func New(lessons store.LessonRepo, profiles store.ProfileRepo, dispatcher *notify.Dispatcher, clock sweep.Clock) *Server {
	if clock == nil {
		clock = sweep.SystemClock()
	}
	s := &Server{
		lessons:    lessons,
		profiles:   profiles,
		dispatcher: dispatcher,
		clock:      clock,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = http.NewServeMux()

	r := s.router

	r.HandleFunc("POST /lessons", s.handleCreateLesson)
	r.HandleFunc("GET /lessons", s.handleListLessons)
	r.HandleFunc("GET /lessons/open", s.handleOpenLessons)
	r.HandleFunc("GET /lessons/{id}", s.handleGetLesson)

	r.HandleFunc("POST /lessons/{id}/match", s.handleMatch)
	r.HandleFunc("POST /lessons/{id}/assign", s.handleAssign)
	r.HandleFunc("POST /lessons/{id}/accept", s.handleAccept)
	r.HandleFunc("POST /lessons/{id}/cancel", s.handleCancel)

	r.HandleFunc("POST /lessons/{id}/rating", s.handleAddRating)
	r.HandleFunc("PUT /lessons/{id}/rating", s.handleEditRating)

	r.HandleFunc("GET /tutors/recommend", s.handleRecommendTutors)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// lessonByID loads a lesson or writes the 404 itself.
func (s *Server) lessonByID(w http.ResponseWriter, r *http.Request) *lesson.Lesson {
	id := r.PathValue("id")
	l, err := s.lessons.ByID(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return nil
	}
	if l == nil {
		s.error(w, http.StatusNotFound, "lesson not found")
		return nil
	}
	return l
}

// commit writes a single transitioned lesson with its status
// precondition. An empty applied set means a concurrent actor got
// there first: the caller's read is stale and the request conflicts.
func (s *Server) commit(w http.ResponseWriter, r *http.Request, updated lesson.Lesson, from lesson.Status) bool {
	applied, err := s.lessons.ApplyBatch(r.Context(), []store.CASUpdate{{Lesson: updated, From: from}})
	if err != nil {
		s.fail(w, err)
		return false
	}
	if len(applied) == 0 {
		s.error(w, http.StatusConflict, "lesson changed concurrently, retry")
		return false
	}
	return true
}

func (s *Server) dispatch(r *http.Request, events []lesson.Event) {
	if s.dispatcher != nil && len(events) > 0 {
		s.dispatcher.Dispatch(r.Context(), events)
	}
}

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func (s *Server) error(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, map[string]string{"error": msg})
}

// fail maps domain errors onto status codes. Invalid transitions are
// client conflicts: the reason names the current and attempted status.
func (s *Server) fail(w http.ResponseWriter, err error) {
	var invalid *lesson.InvalidTransitionError
	var notFound *store.ProfileNotFoundError
	switch {
	case errors.As(err, &invalid):
		s.error(w, http.StatusConflict, invalid.Error())
	case errors.As(err, &notFound):
		s.error(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, lesson.ErrRatingExists),
		errors.Is(err, lesson.ErrRatingLocked),
		errors.Is(err, lesson.ErrNotReviewable),
		errors.Is(err, lesson.ErrRatingMissing),
		errors.Is(err, lesson.ErrNoTutorAssigned):
		s.error(w, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		s.error(w, http.StatusInternalServerError, "internal error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
