package lesson

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeSlot_Valid(t *testing.T) {
	got, err := ParseTimeSlot("10/10/2024T10:00:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, time.October, 10, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsed %v, want %v", got, want)
	}
}

func TestParseTimeSlot_Malformed(t *testing.T) {
	for _, raw := range []string{"", "tomorrow", "2024-10-10T10:00:00", "99/99/2024T10:00:00"} {
		_, err := ParseTimeSlot(raw)
		var malformed *MalformedTimeSlotError
		if !errors.As(err, &malformed) {
			t.Errorf("ParseTimeSlot(%q) error = %v, want *MalformedTimeSlotError", raw, err)
		}
	}
}

func TestParseTimeSlot_InstantSentinel(t *testing.T) {
	_, err := ParseTimeSlot(InstantTimeSlot)
	var malformed *MalformedTimeSlotError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want *MalformedTimeSlotError", err)
	}

	l := Lesson{TimeSlot: InstantTimeSlot}
	if !l.IsInstant() {
		t.Error("IsInstant = false for sentinel time slot")
	}
}

func TestEndTime(t *testing.T) {
	l := Lesson{TimeSlot: "10/10/2024T10:00:00"}
	end, err := l.EndTime()
	if err != nil {
		t.Fatalf("end time: %v", err)
	}
	want := time.Date(2024, time.October, 10, 11, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}
