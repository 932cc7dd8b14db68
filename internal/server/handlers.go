package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
	"github.com/obeng/tutorhub/internal/scoring"
)

// lessonView is the wire form of a lesson.
type lessonView struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Subject     string      `json:"subject"`
	Languages   []string    `json:"languages"`
	TimeSlot    string      `json:"timeSlot"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	StudentUID  string      `json:"studentUid"`
	TutorUIDs   []string    `json:"tutorUid"`
	MinPrice    float64     `json:"minPrice"`
	MaxPrice    float64     `json:"maxPrice"`
	Price       float64     `json:"price"`
	Status      string      `json:"status"`
	Rating      *ratingView `json:"rating,omitempty"`
}

type ratingView struct {
	Grade   int       `json:"grade"`
	Comment string    `json:"comment"`
	At      time.Time `json:"at"`
}

func viewOf(l lesson.Lesson) lessonView {
	v := lessonView{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Subject:     string(l.Subject),
		Languages:   make([]string, 0, len(l.Languages)),
		TimeSlot:    l.TimeSlot,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		StudentUID:  l.StudentUID,
		TutorUIDs:   append([]string{}, l.TutorUIDs...),
		MinPrice:    l.MinPrice,
		MaxPrice:    l.MaxPrice,
		Price:       l.Price,
		Status:      string(l.Status),
	}
	for _, lang := range l.Languages {
		v.Languages = append(v.Languages, string(lang))
	}
	if l.Rating != nil {
		v.Rating = &ratingView{Grade: l.Rating.Grade, Comment: l.Rating.Comment, At: l.Rating.At}
	}
	return v
}

func viewsOf(ls []lesson.Lesson) []lessonView {
	out := make([]lessonView, 0, len(ls))
	for _, l := range ls {
		out = append(out, viewOf(l))
	}
	return out
}

type createLessonRequest struct {
	StudentUID  string   `json:"studentUid"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subject     string   `json:"subject"`
	Languages   []string `json:"languages"`
	TimeSlot    string   `json:"timeSlot"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	MinPrice    float64  `json:"minPrice"`
	MaxPrice    float64  `json:"maxPrice"`
	TutorUIDs   []string `json:"tutorUid"`
}

func (s *Server) handleCreateLesson(w http.ResponseWriter, r *http.Request) {
	var req createLessonRequest
	if !decode(w, r, &req) {
		return
	}
	if req.StudentUID == "" || req.Subject == "" || req.TimeSlot == "" {
		s.error(w, http.StatusBadRequest, "studentUid, subject and timeSlot are required")
		return
	}
	if req.MinPrice > req.MaxPrice {
		s.error(w, http.StatusBadRequest, "minPrice must not exceed maxPrice")
		return
	}

	// A lesson may only be created for a known student profile.
	p, err := s.profiles.ByID(r.Context(), req.StudentUID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if p.Role != profile.RoleStudent {
		s.error(w, http.StatusForbidden, "only students create lesson requests")
		return
	}

	status := lesson.StatusStudentRequested
	if req.TimeSlot == lesson.InstantTimeSlot {
		status = lesson.StatusInstantRequested
	} else if _, err := lesson.ParseTimeSlot(req.TimeSlot); err != nil {
		s.error(w, http.StatusBadRequest, "timeSlot must be dd/MM/yyyy'T'HH:mm:ss or the instant marker")
		return
	}

	l := lesson.Lesson{
		Title:       req.Title,
		Description: req.Description,
		Subject:     lesson.Subject(req.Subject),
		TimeSlot:    req.TimeSlot,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		StudentUID:  req.StudentUID,
		TutorUIDs:   append([]string{}, req.TutorUIDs...),
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		Status:      status,
	}
	for _, lang := range req.Languages {
		l.Languages = append(l.Languages, lesson.Language(lang))
	}

	id, err := s.lessons.Create(r.Context(), l)
	if err != nil {
		s.fail(w, err)
		return
	}
	l.ID = id
	s.respond(w, http.StatusCreated, viewOf(l))
}

func (s *Server) handleListLessons(w http.ResponseWriter, r *http.Request) {
	student := r.URL.Query().Get("student")
	tutor := r.URL.Query().Get("tutor")
	switch {
	case student != "":
		ls, err := s.lessons.ByStudent(r.Context(), student)
		if err != nil {
			s.fail(w, err)
			return
		}
		s.respond(w, http.StatusOK, viewsOf(ls))
	case tutor != "":
		ls, err := s.lessons.ByTutor(r.Context(), tutor)
		if err != nil {
			s.fail(w, err)
			return
		}
		s.respond(w, http.StatusOK, viewsOf(ls))
	default:
		s.error(w, http.StatusBadRequest, "student or tutor query parameter required")
	}
}

func (s *Server) handleGetLesson(w http.ResponseWriter, r *http.Request) {
	l := s.lessonByID(w, r)
	if l == nil {
		return
	}
	s.respond(w, http.StatusOK, viewOf(*l))
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	l := s.lessonByID(w, r)
	if l == nil {
		return
	}
	updated, events, err := lesson.BeginMatching(*l)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.commit(w, r, updated, l.Status) {
		return
	}
	s.dispatch(r, events)
	s.respond(w, http.StatusOK, viewOf(updated))
}

func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TutorUID string `json:"tutorUid"`
	}
	if !decode(w, r, &req) {
		return
	}
	l := s.lessonByID(w, r)
	if l == nil {
		return
	}

	tutor, err := s.profiles.ByID(r.Context(), req.TutorUID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if tutor.Role != profile.RoleTutor {
		s.error(w, http.StatusForbidden, "assignee is not a tutor")
		return
	}

	updated, events, err := lesson.AssignTutor(*l, req.TutorUID)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.commit(w, r, updated, l.Status) {
		return
	}
	s.dispatch(r, events)
	s.respond(w, http.StatusOK, viewOf(updated))
}

func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TutorUID string  `json:"tutorUid"`
		Price    float64 `json:"price"`
	}
	if !decode(w, r, &req) {
		return
	}
	l := s.lessonByID(w, r)
	if l == nil {
		return
	}

	var (
		updated lesson.Lesson
		events  []lesson.Event
		err     error
	)
	if l.Status == lesson.StatusInstantRequested {
		updated, events, err = lesson.InstantAccept(*l, req.TutorUID, req.Price)
	} else {
		if l.AssignedTutor() != req.TutorUID {
			s.error(w, http.StatusForbidden, "lesson is pending a different tutor")
			return
		}
		updated, events, err = lesson.TutorAccept(*l, req.Price)
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.commit(w, r, updated, l.Status) {
		return
	}
	s.dispatch(r, events)
	s.respond(w, http.StatusOK, viewOf(updated))
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		By string `json:"by"`
	}
	if !decode(w, r, &req) {
		return
	}
	by := lesson.Party(req.By)
	if by != lesson.PartyStudent && by != lesson.PartyTutor {
		s.error(w, http.StatusBadRequest, "by must be STUDENT or TUTOR")
		return
	}
	l := s.lessonByID(w, r)
	if l == nil {
		return
	}
	updated, events, err := lesson.Cancel(*l, by)
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.commit(w, r, updated, l.Status) {
		return
	}
	s.dispatch(r, events)
	s.respond(w, http.StatusOK, viewOf(updated))
}

type ratingRequest struct {
	Grade   int    `json:"grade"`
	Comment string `json:"comment"`
}

func (s *Server) handleAddRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Grade < 0 || req.Grade > 5 {
		s.error(w, http.StatusBadRequest, "grade must be between 0 and 5")
		return
	}
	l := s.lessonByID(w, r)
	if l == nil {
		return
	}
	updated, err := lesson.AddRating(*l, req.Grade, req.Comment, s.clock.Now())
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.commit(w, r, updated, l.Status) {
		return
	}
	s.respond(w, http.StatusOK, viewOf(updated))
}

func (s *Server) handleEditRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if !decode(w, r, &req) {
		return
	}
	l := s.lessonByID(w, r)
	if l == nil {
		return
	}
	updated, err := lesson.EditRating(*l, req.Grade, req.Comment, s.clock.Now())
	if err != nil {
		s.fail(w, err)
		return
	}
	if !s.commit(w, r, updated, l.Status) {
		return
	}
	s.respond(w, http.StatusOK, viewOf(updated))
}

// scoredLessonView pairs an open request with its suitability score
// for the browsing tutor.
type scoredLessonView struct {
	Lesson lessonView `json:"lesson"`
	Score  int        `json:"score"`
}

// handleOpenLessons lists open requests for a browsing tutor, best
// fit first. The sort is stable so equal scores keep store order.
func (s *Server) handleOpenLessons(w http.ResponseWriter, r *http.Request) {
	tutorUID := r.URL.Query().Get("tutor")
	if tutorUID == "" {
		s.error(w, http.StatusBadRequest, "tutor query parameter required")
		return
	}
	tutor, err := s.profiles.ByID(r.Context(), tutorUID)
	if err != nil {
		s.fail(w, err)
		return
	}

	var open []lesson.Lesson
	for _, status := range []lesson.Status{
		lesson.StatusStudentRequested,
		lesson.StatusMatching,
		lesson.StatusInstantRequested,
	} {
		batch, err := s.lessons.ByStatus(r.Context(), status)
		if err != nil {
			s.fail(w, err)
			return
		}
		open = append(open, batch...)
	}

	views := make([]scoredLessonView, 0, len(open))
	for _, l := range open {
		views = append(views, scoredLessonView{
			Lesson: viewOf(l),
			Score:  scoring.ScoreTutorForLesson(l, *tutor),
		})
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].Score > views[j].Score })
	s.respond(w, http.StatusOK, views)
}

type rankedTutorView struct {
	UID   string  `json:"uid"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Score float64 `json:"score"`
}

// handleRecommendTutors ranks every tutor for a student, using each
// tutor's completed rated lessons as the rating signal.
func (s *Server) handleRecommendTutors(w http.ResponseWriter, r *http.Request) {
	studentUID := r.URL.Query().Get("student")
	if studentUID == "" {
		s.error(w, http.StatusBadRequest, "student query parameter required")
		return
	}
	student, err := s.profiles.ByID(r.Context(), studentUID)
	if err != nil {
		s.fail(w, err)
		return
	}

	tutors, err := s.profiles.Tutors(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	rated := make(map[string][]lesson.Lesson, len(tutors))
	for _, tutor := range tutors {
		ls, err := s.lessons.ByTutor(r.Context(), tutor.UID)
		if err != nil {
			s.fail(w, err)
			return
		}
		for _, l := range ls {
			if l.Status == lesson.StatusCompleted && l.Rating != nil {
				rated[tutor.UID] = append(rated[tutor.UID], l)
			}
		}
	}

	ranked := scoring.RankTutorsForStudent(*student, tutors, rated)
	views := make([]rankedTutorView, 0, len(ranked))
	for _, rt := range ranked {
		views = append(views, rankedTutorView{
			UID:   rt.Tutor.UID,
			Name:  rt.Tutor.Name,
			Price: rt.Tutor.Price,
			Score: rt.Score,
		})
	}
	s.respond(w, http.StatusOK, views)
}
