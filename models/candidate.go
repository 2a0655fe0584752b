package models

import "time"

// Candidate is a proposed (therapist, time-slot) pairing under evaluation.
// Candidates live only for the duration of one scheduling request and are
// never persisted.
type Candidate struct {
	TherapistID string             `json:"therapistId"`
	Interval    TimeInterval       `json:"interval"`
	Breakdown   map[string]float64 `json:"breakdown"`
	Total       float64            `json:"total"`
}

// ScheduleSnapshot is the read-only state the scheduling engine works on.
// The caller fetches it from persistence in one pass; the engine itself
// performs no I/O. The snapshot can go stale before the chosen slot is
// committed, which is why the appointment repository re-validates overlap
// at write time.
type ScheduleSnapshot struct {
	Therapists   []Therapist
	Appointments []Appointment
	Rooms        []Room
	History      []PatientHistoryEntry
	Season       Season
}

// ScheduleRequest describes one slot-ranking computation.
type ScheduleRequest struct {
	Therapy TherapyProfile
	Dates   []time.Time
	Urgency UrgencyLevel
	// ExcludeAppointmentID removes the named appointment from conflict
	// checks when rescheduling it against itself.
	ExcludeAppointmentID string
	// IncludeConflicts asks for the raw conflicting appointments per
	// rejected slot, for user-facing "why is this taken" reporting.
	IncludeConflicts bool
}

// SlotRecommendationRequest is the transport payload for ranking slots.
// Dates are calendar days in "2006-01-02" form.
type SlotRecommendationRequest struct {
	TherapyID            string       `json:"therapyId" binding:"required"`
	PatientID            string       `json:"patientId,omitempty"`
	Dates                []string     `json:"dates" binding:"required,min=1"`
	Urgency              UrgencyLevel `json:"urgency,omitempty"`
	ExcludeAppointmentID string       `json:"excludeAppointmentId,omitempty"`
	IncludeConflicts     bool         `json:"includeConflicts,omitempty"`
}

// RankedSlot is one scored recommendation returned to the booking controller.
type RankedSlot struct {
	TherapistID string             `json:"therapistId"`
	Interval    TimeInterval       `json:"interval"`
	Score       float64            `json:"score"`
	Breakdown   map[string]float64 `json:"breakdown,omitempty"`
	Reasons     []string           `json:"reasons,omitempty"`
}

// SlotConflict reports the appointments blocking one rejected candidate slot.
type SlotConflict struct {
	TherapistID string        `json:"therapistId"`
	Interval    TimeInterval  `json:"interval"`
	Conflicts   []Appointment `json:"conflicts"`
}

// ScheduleResult is the engine's output. An empty Slots list is a valid
// outcome, not an error.
type ScheduleResult struct {
	Slots     []RankedSlot   `json:"slots"`
	Conflicts []SlotConflict `json:"conflicts,omitempty"`
}
