package store

import (
	"context"
	"fmt"

	"github.com/obeng/tutorhub/ent"
	entprofile "github.com/obeng/tutorhub/ent/profile"
	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) ByID(ctx context.Context, uid string) (*profile.Profile, error) {
	row, err := r.client.Profile.Get(ctx, uid)
	if ent.IsNotFound(err) {
		return nil, &ProfileNotFoundError{UID: uid}
	}
	if err != nil {
		return nil, fmt.Errorf("get profile %s: %w", uid, err)
	}
	p, err := profileFromEnt(row)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Tutors(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.client.Profile.Query().
		Where(entprofile.Role(string(profile.RoleTutor))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tutors: %w", err)
	}

	out := make([]profile.Profile, 0, len(rows))
	for _, row := range rows {
		p, err := profileFromEnt(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// profileFromEnt validates the stored document. A missing role or a
// wrong-sized schedule grid is a corrupt document error, not a value
// to limp along with.
func profileFromEnt(row *ent.Profile) (profile.Profile, error) {
	role, ok := profile.ParseRole(row.Role)
	if !ok {
		return profile.Profile{}, fmt.Errorf("profile %s: unknown role %q", row.ID, row.Role)
	}

	p := profile.Profile{
		UID:           row.ID,
		Role:          role,
		Name:          row.Name,
		Price:         row.Price,
		AcademicLevel: row.AcademicLevel,
		Section:       row.Section,
		DeviceToken:   row.DeviceToken,
	}
	for _, s := range row.Subjects {
		p.Subjects = append(p.Subjects, lesson.Subject(s))
	}
	for _, s := range row.Languages {
		p.Languages = append(p.Languages, lesson.Language(s))
	}
	if len(row.Schedule) > 0 {
		sched, err := profile.ScheduleFromFlat(row.Schedule)
		if err != nil {
			return profile.Profile{}, fmt.Errorf("profile %s: %w", row.ID, err)
		}
		p.Schedule = sched
	}
	return p, nil
}
