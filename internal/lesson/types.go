package lesson

import "time"

// Subject identifies the topic a lesson is about.
type Subject string

const (
	SubjectMath        Subject = "MATH"
	SubjectPhysics     Subject = "PHYSICS"
	SubjectChemistry   Subject = "CHEMISTRY"
	SubjectBiology     Subject = "BIOLOGY"
	SubjectHistory     Subject = "HISTORY"
	SubjectEnglish     Subject = "ENGLISH"
	SubjectFrench      Subject = "FRENCH"
	SubjectPhilosophy  Subject = "PHILOSOPHY"
	SubjectEconomics   Subject = "ECONOMICS"
	SubjectProgramming Subject = "PROGRAMMING"
)

// Language a lesson can be taught in.
type Language string

const (
	LanguageEnglish Language = "ENGLISH"
	LanguageFrench  Language = "FRENCH"
	LanguageArabic  Language = "ARABIC"
	LanguageSpanish Language = "SPANISH"
	LanguageGerman  Language = "GERMAN"
)

// Party identifies which side of a lesson performed an action.
type Party string

const (
	PartyStudent Party = "STUDENT"
	PartyTutor   Party = "TUTOR"
)

// Rating is a student's or tutor's review of a finished lesson.
// It may be edited for EditWindow after At, then becomes immutable.
type Rating struct {
	Grade   int
	Comment string
	At      time.Time
}

// EditWindow is how long a rating stays editable after it is created.
const EditWindow = 24 * time.Hour

// Editable reports whether the rating can still be changed at now.
func (r Rating) Editable(now time.Time) bool {
	return !now.After(r.At.Add(EditWindow))
}

// Lesson is the unit of work moving through the lifecycle.
//
// TutorUIDs holds zero or more candidates while the request is open and
// collapses to exactly one entry once a tutor is assigned. StudentUID is
// immutable after creation. Transition functions never mutate a Lesson in
// place; they return an updated copy.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Subject     Subject
	Languages   []Language
	TimeSlot    string
	Latitude    float64
	Longitude   float64

	StudentUID string
	TutorUIDs  []string

	MinPrice float64
	MaxPrice float64
	Price    float64

	Status Status
	Rating *Rating

	// ReminderSent marks that the one-shot upcoming-lesson reminder
	// has already gone out, so re-delivered sweep ticks stay silent.
	ReminderSent bool
}

// AssignedTutor returns the single assigned tutor UID, or "" while the
// lesson is still open for offers.
func (l Lesson) AssignedTutor() string {
	if len(l.TutorUIDs) != 1 {
		return ""
	}
	return l.TutorUIDs[0]
}

// HasLanguage reports whether the lesson can be taught in lang.
func (l Lesson) HasLanguage(lang Language) bool {
	for _, candidate := range l.Languages {
		if candidate == lang {
			return true
		}
	}
	return false
}

// clone returns a copy of l with its own slices, so transition functions
// can update the copy without aliasing the caller's value.
func (l Lesson) clone() Lesson {
	out := l
	out.Languages = append([]Language(nil), l.Languages...)
	out.TutorUIDs = append([]string(nil), l.TutorUIDs...)
	if l.Rating != nil {
		r := *l.Rating
		out.Rating = &r
	}
	return out
}
