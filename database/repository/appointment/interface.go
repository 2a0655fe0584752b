package appointmentRepo

import (
	"context"
	"time"

	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentRepository defines persistence for appointments. Create and
// Reschedule re-validate non-overlap at write time inside a transaction and
// return a scheduling.ConflictError when the slot was taken since the
// caller's snapshot was read.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Reschedule(ctx context.Context, id string, interval models.TimeInterval, roomID string) error
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
	FindByTherapistAndRange(ctx context.Context, therapistID string, from, to time.Time) ([]models.Appointment, error)
	FindActiveInRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		client: database.MongoClient,
		coll:   database.Collection("appointments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create appointment indexes", zap.Error(err))
	}
	return repo
}
