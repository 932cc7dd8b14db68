package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func ratedLesson(tutorUID string, grade int) lesson.Lesson {
	return lesson.Lesson{
		TutorUIDs: []string{tutorUID},
		Status:    lesson.StatusCompleted,
		Rating:    &lesson.Rating{Grade: grade, At: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestRank_OrdersByCombinedScore(t *testing.T) {
	student := profile.Profile{UID: "s1", Role: profile.RoleStudent, AcademicLevel: 2, Section: "SCIENCE"}
	strong := profile.Profile{UID: "t-strong", Role: profile.RoleTutor, AcademicLevel: 4, Section: "SCIENCE"}
	weak := profile.Profile{UID: "t-weak", Role: profile.RoleTutor, AcademicLevel: 1, Section: "ARTS"}

	ranked := RankTutorsForStudent(student, []profile.Profile{weak, strong}, nil)
	if len(ranked) != 2 {
		t.Fatalf("ranked %d tutors, want 2", len(ranked))
	}
	if ranked[0].Tutor.UID != "t-strong" {
		t.Errorf("top tutor = %s, want t-strong", ranked[0].Tutor.UID)
	}
	// strong: 0.35*1.0 + 0.25*1.0 + 0.40*1.0 = 1.0
	if !almostEqual(ranked[0].Score, 1.0) {
		t.Errorf("top score = %v, want 1.0", ranked[0].Score)
	}
	// weak: 0.35*0 + 0.25*0 + 0.40*1.0 (unrated) = 0.40
	if !almostEqual(ranked[1].Score, 0.40) {
		t.Errorf("bottom score = %v, want 0.40", ranked[1].Score)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	student := profile.Profile{UID: "s1", AcademicLevel: 2}
	a := profile.Profile{UID: "t-a", AcademicLevel: 3}
	b := profile.Profile{UID: "t-b", AcademicLevel: 3}
	c := profile.Profile{UID: "t-c", AcademicLevel: 3}

	ranked := RankTutorsForStudent(student, []profile.Profile{a, b, c}, nil)
	for i, want := range []string{"t-a", "t-b", "t-c"} {
		if ranked[i].Tutor.UID != want {
			t.Errorf("position %d = %s, want %s (stable order)", i, ranked[i].Tutor.UID, want)
		}
	}
}

func TestRank_NewTutorNeverBelowRatedAverage(t *testing.T) {
	student := profile.Profile{UID: "s1", AcademicLevel: 2}
	fresh := profile.Profile{UID: "t-fresh", AcademicLevel: 2}
	veteran := profile.Profile{UID: "t-vet", AcademicLevel: 2}

	rated := map[string][]lesson.Lesson{
		"t-vet": {ratedLesson("t-vet", 4), ratedLesson("t-vet", 3)},
	}
	ranked := RankTutorsForStudent(student, []profile.Profile{veteran, fresh}, rated)
	if ranked[0].Tutor.UID != "t-fresh" {
		t.Errorf("top tutor = %s, want t-fresh (no-ratings policy)", ranked[0].Tutor.UID)
	}
	// fresh rating feature = 1.0, veteran = (4+3)/2/5 = 0.7
	if !almostEqual(ranked[0].Score-ranked[1].Score, 0.40*(1.0-0.7)) {
		t.Errorf("score gap = %v", ranked[0].Score-ranked[1].Score)
	}
}

func TestRank_PerfectAverageTiesNewTutor(t *testing.T) {
	student := profile.Profile{UID: "s1", AcademicLevel: 2}
	fresh := profile.Profile{UID: "t-fresh", AcademicLevel: 2}
	perfect := profile.Profile{UID: "t-perfect", AcademicLevel: 2}

	rated := map[string][]lesson.Lesson{
		"t-perfect": {ratedLesson("t-perfect", 5)},
	}
	ranked := RankTutorsForStudent(student, []profile.Profile{fresh, perfect}, rated)
	if !almostEqual(ranked[0].Score, ranked[1].Score) {
		t.Errorf("scores %v vs %v, want equal", ranked[0].Score, ranked[1].Score)
	}
	// Stable: fresh was first in the input.
	if ranked[0].Tutor.UID != "t-fresh" {
		t.Errorf("top tutor = %s, want t-fresh", ranked[0].Tutor.UID)
	}
}

func TestAcademicLevelScore(t *testing.T) {
	tests := []struct {
		student, tutor int
		want           float64
	}{
		{2, 5, 1.0},
		{2, 4, 1.0},
		{2, 3, 0.75},
		{2, 2, 0.5},
		{2, 1, 0.0},
		{5, 1, 0.0},
	}
	for _, tt := range tests {
		got := academicLevelScore(
			profile.Profile{AcademicLevel: tt.student},
			profile.Profile{AcademicLevel: tt.tutor},
		)
		if got != tt.want {
			t.Errorf("academicLevelScore(student=%d, tutor=%d) = %v, want %v",
				tt.student, tt.tutor, got, tt.want)
		}
	}
}

func TestRatingScore_IgnoresUnratedLessons(t *testing.T) {
	lessons := []lesson.Lesson{
		ratedLesson("t1", 2),
		{TutorUIDs: []string{"t1"}, Status: lesson.StatusCompleted}, // no rating
	}
	got := ratingScore(lessons)
	if !almostEqual(got, 2.0/5.0) {
		t.Errorf("ratingScore = %v, want 0.4", got)
	}
}

func TestSectionScore_EmptySectionsNeverMatch(t *testing.T) {
	got := sectionScore(profile.Profile{}, profile.Profile{})
	if got != 0 {
		t.Errorf("sectionScore for empty sections = %v, want 0", got)
	}
}
