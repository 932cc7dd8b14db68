package profile

import (
	"testing"
	"time"

	"github.com/obeng/tutorhub/internal/lesson"
)

func TestScheduleAvailable(t *testing.T) {
	var s Schedule
	s = s.Set(time.Thursday, 10, true)

	if !s.Available(time.Thursday, 10) {
		t.Error("expected Thursday 10:00 to be available")
	}
	if s.Available(time.Thursday, 11) {
		t.Error("Thursday 11:00 should not be available")
	}
	if s.Available(time.Friday, 10) {
		t.Error("Friday 10:00 should not be available")
	}
}

func TestScheduleOutOfWindowHours(t *testing.T) {
	var s Schedule
	// Set is a no-op outside the 08:00-19:59 window.
	s = s.Set(time.Monday, 7, true)
	s = s.Set(time.Monday, 20, true)

	for _, hour := range []int{0, 7, 20, 23} {
		if s.Available(time.Monday, hour) {
			t.Errorf("hour %d outside the window reported available", hour)
		}
	}
	for _, cell := range s.Flatten() {
		if cell != 0 {
			t.Fatal("out-of-window Set mutated the grid")
		}
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	var s Schedule
	s = s.Set(time.Monday, 8, true)
	s = s.Set(time.Sunday, 19, true)

	flat := s.Flatten()
	if len(flat) != ScheduleFlatLen {
		t.Fatalf("flat length = %d, want %d", len(flat), ScheduleFlatLen)
	}
	if flat[0] != 1 {
		t.Error("Monday 08:00 should be the first cell")
	}
	if flat[ScheduleFlatLen-1] != 1 {
		t.Error("Sunday 19:00 should be the last cell")
	}

	back, err := ScheduleFromFlat(flat)
	if err != nil {
		t.Fatalf("from flat: %v", err)
	}
	if back != s {
		t.Error("round trip changed the grid")
	}
}

func TestScheduleFromFlat_WrongLength(t *testing.T) {
	if _, err := ScheduleFromFlat(make([]int, 83)); err == nil {
		t.Error("expected error for 83 cells")
	}
	if _, err := ScheduleFromFlat(nil); err == nil {
		t.Error("expected error for nil grid")
	}
}

func TestProfileUpdatesDoNotAlias(t *testing.T) {
	langs := []lesson.Language{lesson.LanguageEnglish}
	p := Profile{UID: "t1", Role: RoleTutor}
	p2 := p.WithLanguages(langs)

	langs[0] = lesson.LanguageGerman
	if p2.Languages[0] != lesson.LanguageEnglish {
		t.Error("WithLanguages aliased the caller's slice")
	}
	if len(p.Languages) != 0 {
		t.Error("original profile mutated")
	}
}

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("TUTOR"); !ok || r != RoleTutor {
		t.Errorf("ParseRole(TUTOR) = %v, %v", r, ok)
	}
	if _, ok := ParseRole("ADMIN"); ok {
		t.Error("ParseRole accepted an unknown role")
	}
	if _, ok := ParseRole(""); ok {
		t.Error("ParseRole accepted an empty role")
	}
}
