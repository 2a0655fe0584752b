package booking

import (
	"context"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	patientRepo "clinicore/database/repository/patient"
	roomRepo "clinicore/database/repository/room"
	therapistRepo "clinicore/database/repository/therapist"
	therapyRepo "clinicore/database/repository/therapy"
	"clinicore/models"
	"clinicore/services/notification"
	"clinicore/services/scheduling"
	"clinicore/services/tasks"

	"github.com/go-redis/redis/v8"
)

// AppointmentService orchestrates slot recommendation and the appointment
// lifecycle on top of the scheduling engine and the repositories.
type AppointmentService interface {
	GetRecommendedSlots(ctx context.Context, req models.SlotRecommendationRequest) (*models.ScheduleResult, error)
	BookAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, id string, start, end time.Time) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	CancelAppointment(ctx context.Context, id string) error
	RecordFeedback(ctx context.Context, feedback *models.SessionFeedback) error
	GetTherapistDaySlots(ctx context.Context, therapistID, therapyID string, date time.Time) ([]models.TimeInterval, error)
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Appointments appointmentRepo.AppointmentRepository
	Therapists   therapistRepo.TherapistRepository
	Patients     patientRepo.PatientRepository
	Therapies    therapyRepo.TherapyRepository
	Rooms        roomRepo.RoomRepository

	Engine          scheduling.SchedulingEngine
	NotificationSvc notification.NotificationService
	Reminders       *tasks.ReminderScheduler
	CacheClient     *redis.Client
}
