package models

// ReminderPayload is the asynq task body for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Target        string `json:"target"` // "patient" or "therapist"
	ID            string `json:"id"`     // recipient identifier
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
	// StartsAt records the appointment start the reminder was queued for.
	// The worker drops the task when the appointment has since moved.
	StartsAt string `json:"startsAt,omitempty"`
}
