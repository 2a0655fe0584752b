package models

import "time"

// AppointmentStatus tracks the lifecycle of a booked session:
// scheduled -> confirmed -> in_progress -> completed, with cancelled as the
// alternate exit at any point before completion.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// Active reports whether an appointment in this status still occupies its
// time window. Completed and cancelled appointments never block a slot.
func (s AppointmentStatus) Active() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress:
		return true
	default:
		return false
	}
}

// UrgencyLevel scales an appointment request's ranking score.
type UrgencyLevel string

const (
	UrgencyNormal    UrgencyLevel = "normal"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyEmergency UrgencyLevel = "emergency"
)

// Appointment represents a booked therapy session.
type Appointment struct {
	ID          string            `bson:"id" json:"id"`
	TherapistID string            `bson:"therapistId" json:"therapistId"`
	PatientID   string            `bson:"patientId" json:"patientId"`
	TherapyID   string            `bson:"therapyId" json:"therapyId"`
	RoomID      string            `bson:"roomId,omitempty" json:"roomId,omitempty"`
	Interval    TimeInterval      `bson:"interval" json:"interval"`
	Status      AppointmentStatus `bson:"status" json:"status"`
	Urgency     UrgencyLevel      `bson:"urgency,omitempty" json:"urgency,omitempty"`
	Notes       string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentRequest is the payload for committing a chosen slot.
type AppointmentRequest struct {
	TherapistID string       `json:"therapistId" binding:"required"`
	PatientID   string       `json:"patientId" binding:"required"`
	TherapyID   string       `json:"therapyId" binding:"required"`
	Start       time.Time    `json:"start" binding:"required"`
	End         time.Time    `json:"end" binding:"required"`
	Urgency     UrgencyLevel `json:"urgency,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// SessionFeedback records a patient's satisfaction with a completed session.
// Satisfaction is on the 1-5 scale consumed by the history scoring heuristic.
type SessionFeedback struct {
	AppointmentID string    `bson:"appointmentId" json:"appointmentId" binding:"required"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	TherapistID   string    `bson:"therapistId" json:"therapistId"`
	Satisfaction  int       `bson:"satisfaction" json:"satisfaction" binding:"required,min=1,max=5"`
	Comment       string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
