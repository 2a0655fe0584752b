package roomRepo

import (
	"context"

	"clinicore/database"
	"clinicore/models"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	Delete(ctx context.Context, id string) error
	ListBookable(ctx context.Context) ([]models.Room, error)
	ListByType(ctx context.Context, roomType string) ([]models.Room, error)
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	repo := &mongoRoomRepo{coll: database.Collection("rooms")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create room indexes", zap.Error(err))
	}
	return repo
}
