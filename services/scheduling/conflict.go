package scheduling

import "clinicore/models"

// HasConflict reports whether the candidate interval overlaps any active
// appointment in the list. Half-open semantics: a session ending exactly when
// another starts does not conflict. Cancelled and completed appointments are
// never considered; excludeID (the appointment being rescheduled) is skipped
// when non-empty.
func HasConflict(candidate models.TimeInterval, existing []models.Appointment, excludeID string) bool {
	for _, appt := range existing {
		if conflicts(candidate, appt, excludeID) {
			return true
		}
	}
	return false
}

// FindConflicts returns the subset of active appointments overlapping the
// candidate interval, for diagnostic reporting to the caller.
func FindConflicts(candidate models.TimeInterval, existing []models.Appointment, excludeID string) []models.Appointment {
	var out []models.Appointment
	for _, appt := range existing {
		if conflicts(candidate, appt, excludeID) {
			out = append(out, appt)
		}
	}
	return out
}

func conflicts(candidate models.TimeInterval, appt models.Appointment, excludeID string) bool {
	if excludeID != "" && appt.ID == excludeID {
		return false
	}
	if !appt.Status.Active() {
		return false
	}
	return candidate.Overlaps(appt.Interval)
}
