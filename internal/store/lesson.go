package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"

	"github.com/obeng/tutorhub/ent"
	entlesson "github.com/obeng/tutorhub/ent/lesson"
	"github.com/obeng/tutorhub/internal/lesson"
)

type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) NewID() string {
	return uuid.NewString()
}

func (r *lessonRepo) ByStatus(ctx context.Context, status lesson.Status) ([]lesson.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(entlesson.Status(string(status))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons by status: %w", err)
	}
	return lessonsFromEnt(rows)
}

func (r *lessonRepo) ByStudent(ctx context.Context, studentUID string) ([]lesson.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(entlesson.StudentUID(studentUID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons by student: %w", err)
	}
	return lessonsFromEnt(rows)
}

func (r *lessonRepo) ByTutor(ctx context.Context, tutorUID string) ([]lesson.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(func(s *entsql.Selector) {
			s.Where(sqljson.ValueContains(entlesson.FieldTutorUids, tutorUID))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons by tutor: %w", err)
	}
	return lessonsFromEnt(rows)
}

func (r *lessonRepo) ByID(ctx context.Context, id string) (*lesson.Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson %s: %w", id, err)
	}
	l, err := lessonFromEnt(row)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lessonRepo) Create(ctx context.Context, l lesson.Lesson) (string, error) {
	if l.ID == "" {
		l.ID = r.NewID()
	}
	create := r.client.Lesson.Create().
		SetID(l.ID).
		SetTitle(l.Title).
		SetDescription(l.Description).
		SetSubject(string(l.Subject)).
		SetLanguages(languagesToStrings(l.Languages)).
		SetTimeSlot(l.TimeSlot).
		SetLatitude(l.Latitude).
		SetLongitude(l.Longitude).
		SetStudentUID(l.StudentUID).
		SetTutorUids(append([]string{}, l.TutorUIDs...)).
		SetMinPrice(l.MinPrice).
		SetMaxPrice(l.MaxPrice).
		SetPrice(l.Price).
		SetStatus(string(l.Status)).
		SetReminderSent(l.ReminderSent)
	if l.Rating != nil {
		create.
			SetRatingGrade(l.Rating.Grade).
			SetRatingComment(l.Rating.Comment).
			SetRatingAt(l.Rating.At)
	}
	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("create lesson: %w", err)
	}
	return l.ID, nil
}

// ApplyBatch writes every update whose status precondition still holds,
// all inside one transaction. A stale precondition (the lesson was
// advanced concurrently) skips that row; everything else either commits
// together or not at all.
func (r *lessonRepo) ApplyBatch(ctx context.Context, updates []CASUpdate) ([]string, error) {
	if len(updates) == 0 {
		return nil, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	var applied []string
	for _, u := range updates {
		n, err := applyOne(ctx, tx, u)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("update lesson %s: %w", u.Lesson.ID, err)
		}
		if n > 0 {
			applied = append(applied, u.Lesson.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}
	return applied, nil
}

func applyOne(ctx context.Context, tx *ent.Tx, u CASUpdate) (int, error) {
	l := u.Lesson
	update := tx.Lesson.Update().
		Where(
			entlesson.ID(l.ID),
			entlesson.Status(string(u.From)),
		).
		SetTitle(l.Title).
		SetDescription(l.Description).
		SetSubject(string(l.Subject)).
		SetLanguages(languagesToStrings(l.Languages)).
		SetTimeSlot(l.TimeSlot).
		SetLatitude(l.Latitude).
		SetLongitude(l.Longitude).
		SetTutorUids(append([]string{}, l.TutorUIDs...)).
		SetMinPrice(l.MinPrice).
		SetMaxPrice(l.MaxPrice).
		SetPrice(l.Price).
		SetStatus(string(l.Status)).
		SetReminderSent(l.ReminderSent)
	if l.Rating != nil {
		update.
			SetRatingGrade(l.Rating.Grade).
			SetRatingComment(l.Rating.Comment).
			SetRatingAt(l.Rating.At)
	}
	return update.Save(ctx)
}

func lessonsFromEnt(rows []*ent.Lesson) ([]lesson.Lesson, error) {
	out := make([]lesson.Lesson, 0, len(rows))
	for _, row := range rows {
		l, err := lessonFromEnt(row)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// lessonFromEnt validates the stored document against the domain
// schema. An unknown status is a corrupt document, not a nil to
// propagate.
func lessonFromEnt(row *ent.Lesson) (lesson.Lesson, error) {
	status, ok := lesson.ParseStatus(row.Status)
	if !ok {
		return lesson.Lesson{}, fmt.Errorf("lesson %s: unknown status %q", row.ID, row.Status)
	}

	l := lesson.Lesson{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Subject:      lesson.Subject(row.Subject),
		Languages:    languagesFromStrings(row.Languages),
		TimeSlot:     row.TimeSlot,
		Latitude:     row.Latitude,
		Longitude:    row.Longitude,
		StudentUID:   row.StudentUID,
		TutorUIDs:    append([]string{}, row.TutorUids...),
		MinPrice:     row.MinPrice,
		MaxPrice:     row.MaxPrice,
		Price:        row.Price,
		Status:       status,
		ReminderSent: row.ReminderSent,
	}
	if row.RatingGrade != nil && row.RatingAt != nil {
		rating := lesson.Rating{Grade: *row.RatingGrade, At: *row.RatingAt}
		if row.RatingComment != nil {
			rating.Comment = *row.RatingComment
		}
		l.Rating = &rating
	}
	return l, nil
}

func languagesToStrings(langs []lesson.Language) []string {
	out := make([]string, 0, len(langs))
	for _, lang := range langs {
		out = append(out, string(lang))
	}
	return out
}

func languagesFromStrings(raw []string) []lesson.Language {
	out := make([]lesson.Language, 0, len(raw))
	for _, s := range raw {
		out = append(out, lesson.Language(s))
	}
	return out
}
