package cron

import (
	"testing"
	"time"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
)

func reminderFixture(status models.AppointmentStatus, start time.Time) *models.Appointment {
	return &models.Appointment{
		ID:          "a1",
		TherapistID: "ther-1",
		PatientID:   "pat-1",
		Interval:    models.TimeInterval{Start: start, End: start.Add(time.Hour)},
		Status:      status,
	}
}

func TestReminderStillCurrentForActiveAppointment(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	p := models.ReminderPayload{AppointmentID: "a1", StartsAt: start.Format(time.RFC3339)}

	assert.True(t, reminderStillCurrent(reminderFixture(models.StatusScheduled, start), p))
	assert.True(t, reminderStillCurrent(reminderFixture(models.StatusConfirmed, start), p))
}

func TestReminderDroppedAfterCancellation(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	p := models.ReminderPayload{AppointmentID: "a1", StartsAt: start.Format(time.RFC3339)}

	assert.False(t, reminderStillCurrent(reminderFixture(models.StatusCancelled, start), p))
	assert.False(t, reminderStillCurrent(reminderFixture(models.StatusCompleted, start), p))
}

func TestReminderDroppedAfterReschedule(t *testing.T) {
	queuedStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	movedStart := queuedStart.Add(4 * time.Hour)
	p := models.ReminderPayload{AppointmentID: "a1", StartsAt: queuedStart.Format(time.RFC3339)}

	assert.False(t, reminderStillCurrent(reminderFixture(models.StatusScheduled, movedStart), p))
}

func TestReminderWithoutStartFallsBackToStatus(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	p := models.ReminderPayload{AppointmentID: "a1"}

	assert.True(t, reminderStillCurrent(reminderFixture(models.StatusScheduled, start), p))
	assert.False(t, reminderStillCurrent(reminderFixture(models.StatusCancelled, start), p))
}
