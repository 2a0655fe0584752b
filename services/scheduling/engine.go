package scheduling

import (
	"sort"

	"clinicore/models"
)

// SchedulingEngine ranks candidate (therapist, slot) pairings for one
// scheduling request against a read-only snapshot.
type SchedulingEngine interface {
	RankAvailableSlots(req models.ScheduleRequest, snap models.ScheduleSnapshot) models.ScheduleResult
}

// DefaultSchedulingEngine is the production implementation: generate
// candidate slots from each therapist's weekly template, drop the ones that
// collide with active appointments, score the survivors and rank them. It
// holds no state across calls and performs no I/O.
type DefaultSchedulingEngine struct {
	Scorer *SlotScorer
}

// NewDefaultSchedulingEngine returns an engine with the default scorer.
func NewDefaultSchedulingEngine() *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{Scorer: NewSlotScorer()}
}

// RankAvailableSlots computes the ranked slot list. An empty result means no
// candidate survived, which is a valid outcome. When req.IncludeConflicts is
// set, the appointments that blocked each rejected slot are reported so the
// caller can explain why a time is taken.
func (e *DefaultSchedulingEngine) RankAvailableSlots(req models.ScheduleRequest, snap models.ScheduleSnapshot) models.ScheduleResult {
	var result models.ScheduleResult
	if req.Therapy.DurationMinutes <= 0 {
		return result
	}

	for _, therapist := range snap.Therapists {
		if !therapist.Active {
			continue
		}
		mine := appointmentsFor(therapist.ID, snap.Appointments)

		for _, date := range req.Dates {
			for _, slot := range GenerateSlots(therapist.WorkingHours, date, req.Therapy.DurationMinutes) {
				if blocking := FindConflicts(slot, mine, req.ExcludeAppointmentID); len(blocking) > 0 {
					if req.IncludeConflicts {
						result.Conflicts = append(result.Conflicts, models.SlotConflict{
							TherapistID: therapist.ID,
							Interval:    slot,
							Conflicts:   blocking,
						})
					}
					continue
				}

				score := e.Scorer.Score(slot, SlotContext{
					Therapist: therapist,
					Therapy:   req.Therapy,
					History:   snap.History,
					Season:    snap.Season,
					Urgency:   req.Urgency,
					RoomFree:  RoomOfTypeFree(snap.Rooms, snap.Appointments, req.Therapy.RequiredRoomType, slot, req.ExcludeAppointmentID),
				})

				result.Slots = append(result.Slots, models.RankedSlot{
					TherapistID: therapist.ID,
					Interval:    slot,
					Score:       score.Total,
					Breakdown:   score.Breakdown,
					Reasons:     score.Reasons,
				})
			}
		}
	}

	sort.Slice(result.Slots, func(i, j int) bool {
		a, b := result.Slots[i], result.Slots[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Interval.Start.Equal(b.Interval.Start) {
			return a.Interval.Start.Before(b.Interval.Start)
		}
		return a.TherapistID < b.TherapistID
	})
	return result
}

// RoomOfTypeFree reports whether some bookable room of the required type has
// no active appointment overlapping the interval. An empty room type means
// the therapy has no room constraint.
func RoomOfTypeFree(rooms []models.Room, appointments []models.Appointment, roomType string, interval models.TimeInterval, excludeID string) bool {
	if roomType == "" {
		return true
	}
	for _, room := range rooms {
		if room.Type != roomType || !room.Bookable {
			continue
		}
		if !roomBusy(room.ID, appointments, interval, excludeID) {
			return true
		}
	}
	return false
}

func roomBusy(roomID string, appointments []models.Appointment, interval models.TimeInterval, excludeID string) bool {
	for _, appt := range appointments {
		if appt.RoomID != roomID {
			continue
		}
		if conflicts(interval, appt, excludeID) {
			return true
		}
	}
	return false
}

func appointmentsFor(therapistID string, appointments []models.Appointment) []models.Appointment {
	var mine []models.Appointment
	for _, appt := range appointments {
		if appt.TherapistID == therapistID {
			mine = append(mine, appt)
		}
	}
	return mine
}
