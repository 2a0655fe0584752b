package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicore/models"
)

func interval(t *testing.T, startHour, endHour int) models.TimeInterval {
	t.Helper()
	iv, err := models.NewTimeInterval(monday.Add(time.Duration(startHour)*time.Hour), monday.Add(time.Duration(endHour)*time.Hour))
	require.NoError(t, err)
	return iv
}

func appointment(t *testing.T, id string, startHour, endHour int, status models.AppointmentStatus) models.Appointment {
	t.Helper()
	return models.Appointment{
		ID:          id,
		TherapistID: "th-1",
		Interval:    interval(t, startHour, endHour),
		Status:      status,
	}
}

func TestHasConflictOverlap(t *testing.T) {
	existing := []models.Appointment{appointment(t, "a1", 9, 10, models.StatusScheduled)}

	// Candidate 9:30-10:30 overlaps the 9:00-10:00 booking.
	candidate, err := models.NewTimeInterval(monday.Add(9*time.Hour+30*time.Minute), monday.Add(10*time.Hour+30*time.Minute))
	require.NoError(t, err)

	assert.True(t, HasConflict(candidate, existing, ""))
}

func TestHasConflictTouchingBoundary(t *testing.T) {
	existing := []models.Appointment{appointment(t, "a1", 9, 10, models.StatusScheduled)}

	// Half-open semantics: 10:00-11:00 starts exactly when the booking ends.
	assert.False(t, HasConflict(interval(t, 10, 11), existing, ""))
}

func TestHasConflictIgnoresInactiveStatuses(t *testing.T) {
	for _, status := range []models.AppointmentStatus{models.StatusCancelled, models.StatusCompleted} {
		existing := []models.Appointment{appointment(t, "a1", 9, 10, status)}
		assert.False(t, HasConflict(interval(t, 9, 10), existing, ""), "status %s should never conflict", status)
	}
}

func TestHasConflictActiveStatuses(t *testing.T) {
	for _, status := range []models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed, models.StatusInProgress} {
		existing := []models.Appointment{appointment(t, "a1", 9, 10, status)}
		assert.True(t, HasConflict(interval(t, 9, 10), existing, ""), "status %s should conflict", status)
	}
}

func TestHasConflictExcludesRescheduledAppointment(t *testing.T) {
	existing := []models.Appointment{
		appointment(t, "a1", 9, 10, models.StatusConfirmed),
		appointment(t, "a2", 10, 11, models.StatusConfirmed),
	}

	// Rescheduling a1 within its own window is fine, but a2 still blocks.
	assert.False(t, HasConflict(interval(t, 9, 10), existing, "a1"))
	assert.True(t, HasConflict(interval(t, 10, 11), existing, "a1"))
}

func TestHasConflictSymmetry(t *testing.T) {
	pairs := [][4]int{
		{9, 10, 9, 10},
		{9, 10, 10, 11},
		{9, 11, 10, 12},
		{8, 12, 9, 10},
		{9, 10, 14, 15},
	}
	for _, p := range pairs {
		a := interval(t, p[0], p[1])
		b := interval(t, p[2], p[3])
		asAppointment := func(iv models.TimeInterval) []models.Appointment {
			return []models.Appointment{{ID: "x", Interval: iv, Status: models.StatusScheduled}}
		}
		assert.Equal(t,
			HasConflict(a, asAppointment(b), ""),
			HasConflict(b, asAppointment(a), ""),
			"conflict detection must be symmetric for %v", p)
	}
}

func TestFindConflictsReturnsOverlappingSubset(t *testing.T) {
	existing := []models.Appointment{
		appointment(t, "a1", 9, 10, models.StatusScheduled),
		appointment(t, "a2", 10, 11, models.StatusConfirmed),
		appointment(t, "a3", 12, 13, models.StatusConfirmed),
		appointment(t, "a4", 9, 13, models.StatusCancelled),
	}

	found := FindConflicts(interval(t, 9, 11), existing, "")

	require.Len(t, found, 2)
	assert.Equal(t, "a1", found[0].ID)
	assert.Equal(t, "a2", found[1].ID)
}

func TestFindConflictsEmptyWhenFree(t *testing.T) {
	existing := []models.Appointment{appointment(t, "a1", 9, 10, models.StatusScheduled)}

	assert.Empty(t, FindConflicts(interval(t, 14, 15), existing, ""))
}
