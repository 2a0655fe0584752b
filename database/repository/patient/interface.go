package patientRepo

import (
	"context"

	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PatientRepository persists patients, their completed-session history and
// session feedback. History entries are the read-only input to slot scoring.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id string) error
	AppendHistory(ctx context.Context, patientID string, entry models.PatientHistoryEntry) error
	GetHistory(ctx context.Context, patientID string) ([]models.PatientHistoryEntry, error)
	SaveFeedback(ctx context.Context, feedback *models.SessionFeedback) error
}

type mongoPatientRepo struct {
	coll         *mongo.Collection
	historyColl  *mongo.Collection
	feedbackColl *mongo.Collection
}

// NewMongoPatientRepo constructs a MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	repo := &mongoPatientRepo{
		coll:         database.Collection("patients"),
		historyColl:  database.Collection("patient_history"),
		feedbackColl: database.Collection("session_feedback"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create patient indexes", zap.Error(err))
	}
	return repo
}
