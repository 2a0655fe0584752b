package booking

import (
	"context"
	"fmt"
	"time"

	"clinicore/config"
	"clinicore/models"
	"clinicore/services/scheduling"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookAppointment commits a chosen slot. The interval is validated up
// front, a room is assigned when the therapy requires one, and the
// repository re-checks overlap inside a transaction so two clients racing
// for the same slot cannot both win.
func (s *DefaultAppointmentService) BookAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	interval, err := models.NewTimeInterval(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	if _, err := s.Therapists.GetByID(ctx, req.TherapistID); err != nil {
		return nil, err
	}
	if _, err := s.Patients.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}
	therapy, err := s.Therapies.GetByID(ctx, req.TherapyID)
	if err != nil {
		return nil, err
	}

	roomID, err := s.assignRoom(ctx, *therapy, interval, "")
	if err != nil {
		return nil, err
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = models.UrgencyNormal
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		TherapistID: req.TherapistID,
		PatientID:   req.PatientID,
		TherapyID:   req.TherapyID,
		RoomID:      roomID,
		Interval:    interval,
		Status:      models.StatusScheduled,
		Urgency:     urgency,
		Notes:       req.Notes,
	}

	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.invalidateDaySlots(ctx, appt.TherapistID)
	s.scheduleReminders(appt, *therapy)
	s.notifyTherapist(ctx, appt, "New appointment",
		fmt.Sprintf("%s booked for %s", therapy.Name, appt.Interval.Start.Format(time.RFC1123)))

	utils.GetLogger().Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("therapistId", appt.TherapistID),
		zap.Time("start", appt.Interval.Start))
	return appt, nil
}

// GetAppointment fetches one appointment.
func (s *DefaultAppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Appointments.GetByID(ctx, id)
}

// RescheduleAppointment moves an existing appointment to a new interval,
// re-assigning its room for the new time. The appointment itself never
// blocks its own move.
func (s *DefaultAppointmentService) RescheduleAppointment(ctx context.Context, id string, start, end time.Time) (*models.Appointment, error) {
	interval, err := models.NewTimeInterval(start, end)
	if err != nil {
		return nil, err
	}

	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appt.Status.Active() {
		return nil, fmt.Errorf("appointment %s is %s and cannot be rescheduled", id, appt.Status)
	}

	therapy, err := s.Therapies.GetByID(ctx, appt.TherapyID)
	if err != nil {
		return nil, err
	}
	roomID, err := s.assignRoom(ctx, *therapy, interval, id)
	if err != nil {
		return nil, err
	}

	if err := s.Appointments.Reschedule(ctx, id, interval, roomID); err != nil {
		return nil, err
	}
	appt.Interval = interval
	appt.RoomID = roomID

	s.invalidateDaySlots(ctx, appt.TherapistID)
	s.scheduleReminders(appt, *therapy)
	s.notifyPatient(ctx, appt, "Appointment rescheduled",
		fmt.Sprintf("Your %s session now starts %s", therapy.Name, interval.Start.Format(time.RFC1123)))
	s.notifyTherapist(ctx, appt, "Appointment rescheduled",
		fmt.Sprintf("%s moved to %s", therapy.Name, interval.Start.Format(time.RFC1123)))

	return appt, nil
}

// validStatusTransitions encodes the appointment lifecycle. Cancellation is
// allowed from any active state; completed and cancelled are terminal.
var validStatusTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusScheduled:  {models.StatusConfirmed, models.StatusInProgress, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
}

func transitionAllowed(from, to models.AppointmentStatus) bool {
	for _, next := range validStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateAppointmentStatus advances an appointment through its lifecycle.
func (s *DefaultAppointmentService) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !transitionAllowed(appt.Status, status) {
		return fmt.Errorf("invalid status transition %s -> %s for appointment %s", appt.Status, status, id)
	}
	if err := s.Appointments.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	if status == models.StatusCancelled || status == models.StatusCompleted {
		s.invalidateDaySlots(ctx, appt.TherapistID)
	}
	return nil
}

// CancelAppointment cancels an active appointment and frees its slot.
func (s *DefaultAppointmentService) CancelAppointment(ctx context.Context, id string) error {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !appt.Status.Active() {
		return fmt.Errorf("appointment %s is already %s", id, appt.Status)
	}
	if err := s.Appointments.UpdateStatus(ctx, id, models.StatusCancelled); err != nil {
		return err
	}

	s.invalidateDaySlots(ctx, appt.TherapistID)
	s.notifyTherapist(ctx, appt, "Appointment cancelled",
		fmt.Sprintf("Session at %s was cancelled", appt.Interval.Start.Format(time.RFC1123)))
	return nil
}

// RecordFeedback stores a patient's rating for a completed session and
// appends the matching treatment-history entry consumed by slot scoring.
func (s *DefaultAppointmentService) RecordFeedback(ctx context.Context, feedback *models.SessionFeedback) error {
	appt, err := s.Appointments.GetByID(ctx, feedback.AppointmentID)
	if err != nil {
		return err
	}
	if appt.Status != models.StatusCompleted {
		return fmt.Errorf("appointment %s is %s, feedback requires a completed session", appt.ID, appt.Status)
	}

	therapy, err := s.Therapies.GetByID(ctx, appt.TherapyID)
	if err != nil {
		return err
	}

	feedback.PatientID = appt.PatientID
	feedback.TherapistID = appt.TherapistID
	if err := s.Patients.SaveFeedback(ctx, feedback); err != nil {
		return err
	}

	entry := models.PatientHistoryEntry{
		TherapistID:     appt.TherapistID,
		TherapyCategory: therapy.Category,
		Satisfaction:    feedback.Satisfaction,
		CompletedAt:     appt.Interval.End,
	}
	return s.Patients.AppendHistory(ctx, appt.PatientID, entry)
}

// assignRoom picks a bookable room of the therapy's required type that is
// free over the interval. An empty room type means no room is needed.
func (s *DefaultAppointmentService) assignRoom(ctx context.Context, therapy models.TherapyProfile, interval models.TimeInterval, excludeID string) (string, error) {
	if therapy.RequiredRoomType == "" {
		return "", nil
	}
	rooms, err := s.Rooms.ListByType(ctx, therapy.RequiredRoomType)
	if err != nil {
		return "", err
	}
	occupied, err := s.Appointments.FindActiveInRange(ctx, interval.Start, interval.End)
	if err != nil {
		return "", err
	}
	for _, room := range rooms {
		busy := false
		for _, appt := range occupied {
			if appt.ID == excludeID || appt.RoomID != room.ID {
				continue
			}
			if interval.Overlaps(appt.Interval) {
				busy = true
				break
			}
		}
		if !busy {
			return room.ID, nil
		}
	}
	return "", &scheduling.ConflictError{
		TherapistID: "",
		Interval:    interval,
		Conflicts:   occupied,
	}
}

// scheduleReminders enqueues lead-time reminders for both parties. Failures
// are logged, never surfaced: a missed reminder must not fail a booking.
func (s *DefaultAppointmentService) scheduleReminders(appt *models.Appointment, therapy models.TherapyProfile) {
	if s.Reminders == nil {
		return
	}
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := appt.Interval.Start.Add(-lead)
	body := fmt.Sprintf("%s session at %s", therapy.Name, appt.Interval.Start.Format(time.RFC1123))

	targets := []struct {
		target string
		id     string
	}{
		{"patient", appt.PatientID},
		{"therapist", appt.TherapistID},
	}
	for _, t := range targets {
		payload := models.ReminderPayload{
			AppointmentID: appt.ID,
			Target:        t.target,
			ID:            t.id,
			Title:         "Upcoming appointment",
			Body:          body,
			FireDate:      fireAt.Format(time.RFC3339),
			StartsAt:      appt.Interval.Start.Format(time.RFC3339),
		}
		if err := s.Reminders.Schedule(payload, fireAt); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("appointmentId", appt.ID),
				zap.String("target", t.target),
				zap.Error(err))
		}
	}
}

func (s *DefaultAppointmentService) notifyTherapist(ctx context.Context, appt *models.Appointment, title, body string) {
	if s.NotificationSvc == nil {
		return
	}
	data := map[string]string{"appointmentId": appt.ID}
	if err := s.NotificationSvc.SendTherapistPushNotification(ctx, appt.TherapistID, title, body, data); err != nil {
		utils.GetLogger().Warn("therapist push failed", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) notifyPatient(ctx context.Context, appt *models.Appointment, title, body string) {
	if s.NotificationSvc == nil {
		return
	}
	data := map[string]string{"appointmentId": appt.ID}
	if err := s.NotificationSvc.SendPatientPushNotification(ctx, appt.PatientID, title, body, data); err != nil {
		utils.GetLogger().Warn("patient push failed", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
