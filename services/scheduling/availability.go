package scheduling

import (
	"time"

	"clinicore/models"
)

// GenerateSlots enumerates the candidate slots a therapist can host on the
// given date, walking the day's working window in steps of the therapy
// duration. Every emitted interval fits entirely within the window.
//
// An unavailable weekday, a non-positive duration or an inverted window all
// yield an empty sequence: no valid slot exists, which is an expected outcome
// rather than an error.
func GenerateSlots(tmpl models.WorkingHoursTemplate, date time.Time, durationMinutes int) []models.TimeInterval {
	if durationMinutes <= 0 {
		return nil
	}
	window := tmpl.Window(date.Weekday())
	if !window.Available || window.StartMinute >= window.EndMinute {
		return nil
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	step := time.Duration(durationMinutes) * time.Minute
	windowEnd := midnight.Add(time.Duration(window.EndMinute) * time.Minute)

	var slots []models.TimeInterval
	for start := midnight.Add(time.Duration(window.StartMinute) * time.Minute); ; start = start.Add(step) {
		end := start.Add(step)
		if end.After(windowEnd) {
			break
		}
		slots = append(slots, models.TimeInterval{Start: start, End: end})
	}
	return slots
}
