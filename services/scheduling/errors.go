package scheduling

import (
	"fmt"

	"clinicore/models"
)

// ConflictError reports that a slot commit lost a race: the snapshot the
// ranking was computed on went stale and the write-time overlap check failed.
// The caller should re-run slot selection. The scheduling engine itself never
// produces this error; it is surfaced by the persistence layer.
type ConflictError struct {
	TherapistID string
	Interval    models.TimeInterval
	Conflicts   []models.Appointment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s-%s for therapist %s is no longer available (%d conflicting appointments)",
		e.Interval.Start.Format("15:04"), e.Interval.End.Format("15:04"), e.TherapistID, len(e.Conflicts))
}

// NotFoundError reports a referenced entity missing from persistence.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NewNotFoundError builds a NotFoundError for the given resource kind and id.
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}
