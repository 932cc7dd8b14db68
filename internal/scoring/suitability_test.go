package scoring

import (
	"testing"
	"time"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
)

// physicsLesson is scheduled Thursday 10 October 2024, 10:00.
func physicsLesson() lesson.Lesson {
	return lesson.Lesson{
		ID:         "l1",
		Subject:    lesson.SubjectPhysics,
		Languages:  []lesson.Language{lesson.LanguageEnglish},
		TimeSlot:   "10/10/2024T10:00:00",
		StudentUID: "s1",
		MinPrice:   20,
		MaxPrice:   40,
		Status:     lesson.StatusStudentRequested,
	}
}

func fullMatchTutor() profile.Profile {
	var sched profile.Schedule
	sched = sched.Set(time.Thursday, 10, true)
	return profile.Profile{
		UID:       "t1",
		Role:      profile.RoleTutor,
		Subjects:  []lesson.Subject{lesson.SubjectPhysics},
		Languages: []lesson.Language{lesson.LanguageEnglish, lesson.LanguageFrench},
		Price:     30,
		Schedule:  sched,
	}
}

func TestScore_FullMatchIs100(t *testing.T) {
	got := ScoreTutorForLesson(physicsLesson(), fullMatchTutor())
	if got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestScore_FeatureDrops(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(*lesson.Lesson, *profile.Profile)
		want  int
	}{
		{"wrong subject", func(l *lesson.Lesson, p *profile.Profile) {
			p.Subjects = []lesson.Subject{lesson.SubjectHistory}
		}, 65},
		{"no schedule slot", func(l *lesson.Lesson, p *profile.Profile) {
			p.Schedule = profile.Schedule{}
		}, 75},
		{"no shared language", func(l *lesson.Lesson, p *profile.Profile) {
			p.Languages = []lesson.Language{lesson.LanguageSpanish}
		}, 75},
		{"price half decayed", func(l *lesson.Lesson, p *profile.Profile) {
			p.Price = 10 // 1 - (20-10)/20 = 0.5 -> 5 of 10 points
		}, 95},
		{"everything wrong keeps distance default", func(l *lesson.Lesson, p *profile.Profile) {
			p.Subjects = nil
			p.Languages = nil
			p.Schedule = profile.Schedule{}
			p.Price = 200 // 1 - (200-40)/40 < 0 -> clamped to 0
		}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, p := physicsLesson(), fullMatchTutor()
			tt.tweak(&l, &p)
			got := ScoreTutorForLesson(l, p)
			if got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	lessons := []lesson.Lesson{
		physicsLesson(),
		{}, // zero value everywhere
		{TimeSlot: lesson.InstantTimeSlot, MinPrice: -5, MaxPrice: -1},
		{TimeSlot: "garbage", MaxPrice: 1e9},
	}
	tutors := []profile.Profile{
		fullMatchTutor(),
		{},
		{Price: -10},
		{Price: 1e12},
	}
	for _, l := range lessons {
		for _, p := range tutors {
			got := ScoreTutorForLesson(l, p)
			if got < 0 || got > 100 {
				t.Errorf("score = %d out of range for lesson %+v tutor %+v", got, l, p)
			}
		}
	}
}

func TestScore_MalformedTimeSlotFailsSoft(t *testing.T) {
	l := physicsLesson()
	l.TimeSlot = "not-a-date"
	got := ScoreTutorForLesson(l, fullMatchTutor())
	// Schedule feature drops to 0; everything else still counts.
	if got != 75 {
		t.Errorf("score = %d, want 75", got)
	}
}

func TestScore_InstantLessonScoresZeroSchedule(t *testing.T) {
	l := physicsLesson()
	l.TimeSlot = lesson.InstantTimeSlot
	got := ScoreTutorForLesson(l, fullMatchTutor())
	if got != 75 {
		t.Errorf("score = %d, want 75", got)
	}
}

func TestScore_OutOfWindowHour(t *testing.T) {
	l := physicsLesson()
	l.TimeSlot = "10/10/2024T21:00:00" // grid covers 08:00-19:59
	tutor := fullMatchTutor()
	got := ScoreTutorForLesson(l, tutor)
	if got != 75 {
		t.Errorf("score = %d, want 75", got)
	}
}

func TestPriceCompatibility_Decay(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{"inside range", 30, 1.0},
		{"at min", 20, 1.0},
		{"at max", 40, 1.0},
		{"below min half", 10, 0.5},
		{"below min to zero", 0, 0.0},
		{"above max half", 60, 0.5},
		{"far above max clamps", 200, 0.0},
	}
	l := physicsLesson()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fullMatchTutor()
			p.Price = tt.price
			got := priceCompatibility(l, p)
			if got != tt.want {
				t.Errorf("priceCompatibility(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}
