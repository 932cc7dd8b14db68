package scoring

import (
	"sort"

	"github.com/obeng/tutorhub/internal/lesson"
	"github.com/obeng/tutorhub/internal/profile"
)

// Ranking feature weights. These are deliberately distinct from the
// suitability weights: when recommending tutors to a student, academic
// standing and track record matter more than price or schedule.
const (
	rankWeightLevel   = 0.35
	rankWeightSection = 0.25
	rankWeightRating  = 0.40
)

// maxGrade is the top of the rating scale.
const maxGrade = 5.0

// RankedTutor pairs a candidate with its combined ranking score.
type RankedTutor struct {
	Tutor profile.Profile
	Score float64
}

// RankTutorsForStudent orders candidate tutors for a student, best
// first. ratedLessons maps each tutor UID to that tutor's completed
// lessons that carry a rating; tutors absent from the map (or with no
// rated lessons) get the full rating contribution so new tutors are
// never penalized. The sort is stable: equal scores keep input order.
func RankTutorsForStudent(student profile.Profile, candidates []profile.Profile, ratedLessons map[string][]lesson.Lesson) []RankedTutor {
	ranked := make([]RankedTutor, 0, len(candidates))
	for _, tutor := range candidates {
		score := rankWeightLevel*academicLevelScore(student, tutor) +
			rankWeightSection*sectionScore(student, tutor) +
			rankWeightRating*ratingScore(ratedLessons[tutor.UID])
		ranked = append(ranked, RankedTutor{Tutor: tutor, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// academicLevelScore rewards tutors above the student's level: two or
// more levels above is a full match, one above is strong, equal is
// neutral, below scores nothing.
func academicLevelScore(student, tutor profile.Profile) float64 {
	switch diff := tutor.AcademicLevel - student.AcademicLevel; {
	case diff >= 2:
		return 1.0
	case diff == 1:
		return 0.75
	case diff == 0:
		return 0.5
	default:
		return 0.0
	}
}

func sectionScore(student, tutor profile.Profile) float64 {
	if student.Section != "" && student.Section == tutor.Section {
		return 1
	}
	return 0
}

// ratingScore averages the grades on a tutor's rated lessons, scaled
// to [0,1]. No rated lessons yet means the full score.
func ratingScore(rated []lesson.Lesson) float64 {
	sum, count := 0.0, 0
	for _, l := range rated {
		if l.Rating == nil {
			continue
		}
		sum += float64(l.Rating.Grade)
		count++
	}
	if count == 0 {
		return 1
	}
	return clamp01(sum / float64(count) / maxGrade)
}
