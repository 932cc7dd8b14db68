package profile

import (
	"fmt"
	"time"
)

const (
	// ScheduleDays is the number of rows in the availability grid.
	ScheduleDays = 7

	// ScheduleSlots is the number of hourly slots per day.
	ScheduleSlots = 12

	// ScheduleStartHour is the wall-clock hour the first slot covers.
	// Slots run 08:00 through 19:59.
	ScheduleStartHour = 8

	// ScheduleFlatLen is the length of the flattened persisted grid.
	ScheduleFlatLen = ScheduleDays * ScheduleSlots
)

// Schedule is a tutor's weekly availability grid: 7 days (Monday-first)
// by 12 hourly slots from ScheduleStartHour. Cells are boolean-as-int
// to round-trip losslessly with the store's flattened array form.
type Schedule [ScheduleDays][ScheduleSlots]int

// dayRow maps a time.Weekday onto the Monday-first row index.
func dayRow(day time.Weekday) int {
	return (int(day) + 6) % 7
}

// Available reports whether the tutor is free on day at hour.
// Hours outside the fixed 12-hour window are never available.
func (s Schedule) Available(day time.Weekday, hour int) bool {
	slot := hour - ScheduleStartHour
	if slot < 0 || slot >= ScheduleSlots {
		return false
	}
	return s[dayRow(day)][slot] == 1
}

// Set marks the slot for day/hour. Out-of-window hours are ignored.
func (s Schedule) Set(day time.Weekday, hour int, available bool) Schedule {
	slot := hour - ScheduleStartHour
	if slot < 0 || slot >= ScheduleSlots {
		return s
	}
	v := 0
	if available {
		v = 1
	}
	s[dayRow(day)][slot] = v
	return s
}

// Flatten serializes the grid row-major into a fixed-length array.
func (s Schedule) Flatten() []int {
	out := make([]int, 0, ScheduleFlatLen)
	for day := 0; day < ScheduleDays; day++ {
		for slot := 0; slot < ScheduleSlots; slot++ {
			out = append(out, s[day][slot])
		}
	}
	return out
}

// ScheduleFromFlat rebuilds a grid from its flattened persisted form.
// Anything but exactly 84 cells is a schema violation.
func ScheduleFromFlat(flat []int) (Schedule, error) {
	var s Schedule
	if len(flat) != ScheduleFlatLen {
		return s, fmt.Errorf("schedule grid has %d cells, want %d", len(flat), ScheduleFlatLen)
	}
	for i, v := range flat {
		if v != 0 {
			v = 1
		}
		s[i/ScheduleSlots][i%ScheduleSlots] = v
	}
	return s, nil
}
