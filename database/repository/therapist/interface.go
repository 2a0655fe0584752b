package therapistRepo

import (
	"context"

	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type TherapistRepository interface {
	Create(ctx context.Context, therapist *models.Therapist) error
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	Update(ctx context.Context, therapist *models.Therapist) error
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]models.Therapist, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]models.Therapist, error)
}

type mongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo constructs a MongoDB TherapistRepository.
func NewMongoTherapistRepo() TherapistRepository {
	repo := &mongoTherapistRepo{coll: database.Collection("therapists")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create therapist indexes", zap.Error(err))
	}
	return repo
}
