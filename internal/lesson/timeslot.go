package lesson

import "time"

// TimeSlotLayout is the fixed textual pattern lessons store their
// scheduled time in (dd/MM/yyyy'T'HH:mm:ss).
const TimeSlotLayout = "02/01/2006T15:04:05"

// InstantTimeSlot is the sentinel marking an on-demand lesson with no
// fixed scheduled time.
const InstantTimeSlot = "instant"

// Duration is the fixed length of a lesson.
const Duration = time.Hour

// ReviewWindow is how long after a lesson's start either party may
// still leave a rating before the lesson is force-completed.
const ReviewWindow = 8 * 24 * time.Hour

// IsInstant reports whether the lesson is an on-demand request.
func (l Lesson) IsInstant() bool {
	return l.TimeSlot == InstantTimeSlot
}

// ParseTimeSlot parses a lesson time slot in TimeSlotLayout.
// The instant sentinel and any unparseable value yield a
// *MalformedTimeSlotError; callers decide whether that means
// "skip" (sweeps) or "feature scores zero" (scoring).
func ParseTimeSlot(raw string) (time.Time, error) {
	if raw == InstantTimeSlot {
		return time.Time{}, &MalformedTimeSlotError{Raw: raw}
	}
	t, err := time.Parse(TimeSlotLayout, raw)
	if err != nil {
		return time.Time{}, &MalformedTimeSlotError{Raw: raw, Err: err}
	}
	return t, nil
}

// StartTime returns the lesson's scheduled start.
func (l Lesson) StartTime() (time.Time, error) {
	return ParseTimeSlot(l.TimeSlot)
}

// EndTime returns the scheduled start plus the fixed lesson duration.
func (l Lesson) EndTime() (time.Time, error) {
	start, err := l.StartTime()
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(Duration), nil
}
