package lesson

import "time"

// AddRating attaches a rating to a lesson that has reached a reviewable
// status. A lesson is rated at most once; use EditRating afterwards.
func AddRating(l Lesson, grade int, comment string, now time.Time) (Lesson, error) {
	if !l.Status.Reviewable() {
		return l, ErrNotReviewable
	}
	if l.Rating != nil {
		return l, ErrRatingExists
	}
	out := l.clone()
	out.Rating = &Rating{Grade: grade, Comment: comment, At: now}
	return out, nil
}

// EditRating replaces the rating's grade and comment. Permitted only
// within the 24-hour edit window after the rating was created,
// regardless of the lesson's status since then.
func EditRating(l Lesson, grade int, comment string, now time.Time) (Lesson, error) {
	if l.Rating == nil {
		return l, ErrRatingMissing
	}
	if !l.Rating.Editable(now) {
		return l, ErrRatingLocked
	}
	out := l.clone()
	out.Rating.Grade = grade
	out.Rating.Comment = comment
	return out, nil
}
