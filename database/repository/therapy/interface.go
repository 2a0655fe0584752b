package therapyRepo

import (
	"context"

	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type TherapyRepository interface {
	Create(ctx context.Context, therapy *models.TherapyProfile) error
	GetByID(ctx context.Context, id string) (*models.TherapyProfile, error)
	Update(ctx context.Context, therapy *models.TherapyProfile) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.TherapyProfile, error)
	ListByCategory(ctx context.Context, category string) ([]models.TherapyProfile, error)
}

type mongoTherapyRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapyRepo constructs a MongoDB TherapyRepository.
func NewMongoTherapyRepo() TherapyRepository {
	repo := &mongoTherapyRepo{coll: database.Collection("therapies")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create therapy indexes", zap.Error(err))
	}
	return repo
}
