package lesson

import (
	"errors"
	"testing"
	"time"
)

var ratingNow = time.Date(2024, time.October, 18, 12, 0, 0, 0, time.UTC)

func reviewableLesson() Lesson {
	l := openRequest()
	l.Status = StatusPendingReview
	l.TutorUIDs = []string{"tutor-1"}
	return l
}

func TestAddRating(t *testing.T) {
	l, err := AddRating(reviewableLesson(), 4, "clear explanations", ratingNow)
	if err != nil {
		t.Fatalf("add rating: %v", err)
	}
	if l.Rating == nil || l.Rating.Grade != 4 {
		t.Fatalf("rating = %+v, want grade 4", l.Rating)
	}
	if !l.Rating.At.Equal(ratingNow) {
		t.Errorf("rating at = %v, want %v", l.Rating.At, ratingNow)
	}
}

func TestAddRating_NotReviewable(t *testing.T) {
	for _, status := range []Status{StatusStudentRequested, StatusConfirmed, StatusStudentCancelled} {
		l := openRequest()
		l.Status = status
		_, err := AddRating(l, 4, "", ratingNow)
		if !errors.Is(err, ErrNotReviewable) {
			t.Errorf("AddRating in %s: err = %v, want ErrNotReviewable", status, err)
		}
	}
}

func TestAddRating_OnCompletedLesson(t *testing.T) {
	l := reviewableLesson()
	l.Status = StatusCompleted
	out, err := AddRating(l, 5, "", ratingNow)
	if err != nil {
		t.Fatalf("add rating on completed lesson: %v", err)
	}
	if out.Rating == nil {
		t.Fatal("rating not attached")
	}
}

func TestAddRating_Twice(t *testing.T) {
	l, err := AddRating(reviewableLesson(), 4, "", ratingNow)
	if err != nil {
		t.Fatalf("add rating: %v", err)
	}
	_, err = AddRating(l, 5, "", ratingNow)
	if !errors.Is(err, ErrRatingExists) {
		t.Errorf("err = %v, want ErrRatingExists", err)
	}
}

func TestEditRating_WithinWindow(t *testing.T) {
	l, err := AddRating(reviewableLesson(), 3, "ok", ratingNow)
	if err != nil {
		t.Fatalf("add rating: %v", err)
	}
	// Lesson may already be force-completed; the edit window does not care.
	l.Status = StatusCompleted

	l, err = EditRating(l, 5, "actually great", ratingNow.Add(23*time.Hour))
	if err != nil {
		t.Fatalf("edit rating: %v", err)
	}
	if l.Rating.Grade != 5 || l.Rating.Comment != "actually great" {
		t.Errorf("rating = %+v, want grade 5", l.Rating)
	}
}

func TestEditRating_AfterWindow(t *testing.T) {
	l, err := AddRating(reviewableLesson(), 3, "", ratingNow)
	if err != nil {
		t.Fatalf("add rating: %v", err)
	}
	_, err = EditRating(l, 5, "", ratingNow.Add(EditWindow+time.Minute))
	if !errors.Is(err, ErrRatingLocked) {
		t.Errorf("err = %v, want ErrRatingLocked", err)
	}
}

func TestEditRating_NoRating(t *testing.T) {
	_, err := EditRating(reviewableLesson(), 5, "", ratingNow)
	if !errors.Is(err, ErrRatingMissing) {
		t.Errorf("err = %v, want ErrRatingMissing", err)
	}
}
