// Package scoring computes tutor-lesson suitability and student-facing
// tutor rankings. All scores are pure functions of their inputs and
// fail soft: missing or malformed fields degrade the affected feature
// to its floor instead of surfacing an error.
package scoring

import (
	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
)

// Suitability feature weights, in percentage points. They sum to 100
// and are a fixed contract: changing one is a behavior change that the
// tests pin deliberately.
const (
	weightSubject  = 35
	weightSchedule = 25
	weightLanguage = 25
	weightPrice    = 10
	weightDistance = 5
)

// ScoreTutorForLesson rates how well a tutor fits a lesson request on a
// 0-100 scale, truncated to an integer. 100 means every feature is a
// full match.
func ScoreTutorForLesson(l lesson.Lesson, tutor profile.Profile) int {
	score := weightSubject*subjectMatch(l, tutor) +
		weightSchedule*scheduleMatch(l, tutor) +
		weightLanguage*languageMatch(l, tutor) +
		weightPrice*priceCompatibility(l, tutor) +
		weightDistance*distanceProximity(l, tutor)
	return int(score)
}

func subjectMatch(l lesson.Lesson, tutor profile.Profile) float64 {
	if tutor.TeachesSubject(l.Subject) {
		return 1
	}
	return 0
}

// scheduleMatch maps the lesson's day/hour into the tutor's weekly
// grid. Instant lessons, unparseable time slots, and hours outside the
// grid's 12-hour window all score zero rather than erroring.
func scheduleMatch(l lesson.Lesson, tutor profile.Profile) float64 {
	start, err := l.StartTime()
	if err != nil {
		return 0
	}
	if tutor.Schedule.Available(start.Weekday(), start.Hour()) {
		return 1
	}
	return 0
}

func languageMatch(l lesson.Lesson, tutor profile.Profile) float64 {
	if tutor.SpeaksAny(l.Languages) {
		return 1
	}
	return 0
}

// priceCompatibility is 1.0 while the tutor's rate sits inside the
// student's [min, max] range, then decays linearly as the rate moves
// away from the nearest bound, proportionally to that bound.
func priceCompatibility(l lesson.Lesson, tutor profile.Profile) float64 {
	price := tutor.Price
	switch {
	case price >= l.MinPrice && price <= l.MaxPrice:
		return 1
	case price < l.MinPrice:
		if l.MinPrice <= 0 {
			return 0
		}
		return clamp01(1 - (l.MinPrice-price)/l.MinPrice)
	default:
		if l.MaxPrice <= 0 {
			return 0
		}
		return clamp01(1 - (price-l.MaxPrice)/l.MaxPrice)
	}
}

// distanceProximity is a placeholder: with no tutor position feed yet,
// every candidate gets the full distance contribution.
func distanceProximity(lesson.Lesson, profile.Profile) float64 {
	return 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
