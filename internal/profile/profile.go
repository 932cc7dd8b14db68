package profile

import (
	"errors"

	"github.com/obeng/tutorhub/internal/lesson"
)

// Role of a participant.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTutor   Role = "TUTOR"
)

// ErrUnknownRole - a profile without a valid role reached an operation
// that requires one.
var ErrUnknownRole = errors.New("profile has no valid role")

// ParseRole converts a stored string back into a Role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleStudent:
		return RoleStudent, true
	case RoleTutor:
		return RoleTutor, true
	}
	return "", false
}

// Profile is a participant. Tutor-only fields (Subjects, Languages,
// Price, Schedule) are zero-valued on student profiles.
//
// Profiles are value objects: the core never mutates one in place, and
// the With* helpers return updated copies.
type Profile struct {
	UID  string
	Role Role
	Name string

	Subjects  []lesson.Subject
	Languages []lesson.Language
	Price     float64
	Schedule  Schedule

	AcademicLevel int
	Section       string

	DeviceToken string
}

// TeachesSubject reports whether the tutor covers subject.
func (p Profile) TeachesSubject(subject lesson.Subject) bool {
	for _, s := range p.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// SpeaksAny reports whether the tutor shares at least one language
// with the given set.
func (p Profile) SpeaksAny(languages []lesson.Language) bool {
	for _, want := range languages {
		for _, have := range p.Languages {
			if have == want {
				return true
			}
		}
	}
	return false
}

// WithSubjects returns a copy of p with its own copy of subjects.
func (p Profile) WithSubjects(subjects []lesson.Subject) Profile {
	out := p
	out.Subjects = append([]lesson.Subject(nil), subjects...)
	return out
}

// WithLanguages returns a copy of p with its own copy of languages.
func (p Profile) WithLanguages(languages []lesson.Language) Profile {
	out := p
	out.Languages = append([]lesson.Language(nil), languages...)
	return out
}

// WithSchedule returns a copy of p with the given availability grid.
func (p Profile) WithSchedule(s Schedule) Profile {
	out := p
	out.Schedule = s
	return out
}
