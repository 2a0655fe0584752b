package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/services/scheduling"
	"clinicore/utils"

	"go.uber.org/zap"
)

const (
	dateLayout   = "2006-01-02"
	daySlotsTTL  = 60 * time.Second
	snapshotSpan = 24 * time.Hour
)

// GetRecommendedSlots loads a consistent snapshot, runs the scheduling
// engine over it and returns the ranked slots. The snapshot can go stale
// before a slot is committed; BookAppointment re-validates at write time.
func (s *DefaultAppointmentService) GetRecommendedSlots(ctx context.Context, req models.SlotRecommendationRequest) (*models.ScheduleResult, error) {
	therapy, err := s.Therapies.GetByID(ctx, req.TherapyID)
	if err != nil {
		return nil, err
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return &models.ScheduleResult{Slots: []models.RankedSlot{}}, nil
	}

	snap, err := s.buildSnapshot(ctx, *therapy, req.PatientID, dates)
	if err != nil {
		return nil, err
	}

	result := s.Engine.RankAvailableSlots(models.ScheduleRequest{
		Therapy:              *therapy,
		Dates:                dates,
		Urgency:              req.Urgency,
		ExcludeAppointmentID: req.ExcludeAppointmentID,
		IncludeConflicts:     req.IncludeConflicts,
	}, snap)

	utils.GetLogger().Debug("ranked slots",
		zap.String("therapyId", therapy.ID),
		zap.Int("slots", len(result.Slots)),
		zap.Int("conflicts", len(result.Conflicts)))
	return &result, nil
}

// GetTherapistDaySlots returns the free intervals one therapist has on a
// given day for a therapy's duration. Results are cached briefly since the
// slot grid only changes when an appointment is committed.
func (s *DefaultAppointmentService) GetTherapistDaySlots(ctx context.Context, therapistID, therapyID string, date time.Time) ([]models.TimeInterval, error) {
	cacheKey := fmt.Sprintf("slots:%s:%s:%s", therapistID, therapyID, date.Format(dateLayout))
	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil {
			var slots []models.TimeInterval
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
		}
	}

	therapist, err := s.Therapists.GetByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	therapy, err := s.Therapies.GetByID(ctx, therapyID)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	appts, err := s.Appointments.FindByTherapistAndRange(ctx, therapistID, dayStart, dayStart.Add(snapshotSpan))
	if err != nil {
		return nil, err
	}

	free := make([]models.TimeInterval, 0)
	for _, slot := range scheduling.GenerateSlots(therapist.WorkingHours, date, therapy.DurationMinutes) {
		if !scheduling.HasConflict(slot, appts, "") {
			free = append(free, slot)
		}
	}

	if s.CacheClient != nil {
		if encoded, err := json.Marshal(free); err == nil {
			s.CacheClient.Set(ctx, cacheKey, encoded, daySlotsTTL)
		}
	}
	return free, nil
}

// buildSnapshot fetches everything the engine needs in one pass.
func (s *DefaultAppointmentService) buildSnapshot(ctx context.Context, therapy models.TherapyProfile, patientID string, dates []time.Time) (models.ScheduleSnapshot, error) {
	var snap models.ScheduleSnapshot

	var therapists []models.Therapist
	var err error
	if therapy.RequiredSpecialization != "" {
		therapists, err = s.Therapists.ListBySpecialization(ctx, therapy.RequiredSpecialization)
	} else {
		therapists, err = s.Therapists.ListActive(ctx)
	}
	if err != nil {
		return snap, err
	}

	from, to := dateSpan(dates)
	appointments, err := s.Appointments.FindActiveInRange(ctx, from, to)
	if err != nil {
		return snap, err
	}

	rooms, err := s.Rooms.ListBookable(ctx)
	if err != nil {
		return snap, err
	}

	var history []models.PatientHistoryEntry
	if patientID != "" {
		history, err = s.Patients.GetHistory(ctx, patientID)
		if err != nil {
			return snap, err
		}
	}

	snap = models.ScheduleSnapshot{
		Therapists:   therapists,
		Appointments: appointments,
		Rooms:        rooms,
		History:      history,
		Season:       utils.CurrentSeason(time.Now()),
	}
	return snap, nil
}

func parseDates(raw []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(raw))
	for _, d := range raw {
		parsed, err := time.Parse(dateLayout, d)
		if err != nil {
			return nil, &models.InvalidIntervalError{Reason: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", d)}
		}
		dates = append(dates, parsed)
	}
	return dates, nil
}

// dateSpan covers every requested day from the first midnight to the day
// after the last.
func dateSpan(dates []time.Time) (time.Time, time.Time) {
	from, to := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(from) {
			from = d
		}
		if d.After(to) {
			to = d
		}
	}
	return from, to.Add(snapshotSpan)
}

// invalidateDaySlots drops cached slot grids touched by a committed or
// changed appointment.
func (s *DefaultAppointmentService) invalidateDaySlots(ctx context.Context, therapistID string) {
	if s.CacheClient == nil {
		return
	}
	pattern := fmt.Sprintf("slots:%s:*", therapistID)
	iter := s.CacheClient.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		s.CacheClient.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed", zap.Error(err))
	}
}
