package therapyRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoTherapyRepo) Create(ctx context.Context, therapy *models.TherapyProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	therapy.CreatedAt = now
	therapy.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, therapy); err != nil {
		return fmt.Errorf("failed to insert therapy: %w", err)
	}
	return nil
}

func (r *mongoTherapyRepo) GetByID(ctx context.Context, id string) (*models.TherapyProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var therapy models.TherapyProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&therapy)
	if err == mongo.ErrNoDocuments {
		return nil, scheduling.NewNotFoundError("therapy", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapy: %w", err)
	}
	return &therapy, nil
}

func (r *mongoTherapyRepo) Update(ctx context.Context, therapy *models.TherapyProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	therapy.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": therapy.ID}, therapy)
	if err != nil {
		return fmt.Errorf("failed to update therapy: %w", err)
	}
	if res.MatchedCount == 0 {
		return scheduling.NewNotFoundError("therapy", therapy.ID)
	}
	return nil
}

func (r *mongoTherapyRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete therapy: %w", err)
	}
	if res.DeletedCount == 0 {
		return scheduling.NewNotFoundError("therapy", id)
	}
	return nil
}

func (r *mongoTherapyRepo) ListAll(ctx context.Context) ([]models.TherapyProfile, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *mongoTherapyRepo) ListByCategory(ctx context.Context, category string) ([]models.TherapyProfile, error) {
	return r.findAll(ctx, bson.M{"category": category})
}

func (r *mongoTherapyRepo) findAll(ctx context.Context, filter bson.M) ([]models.TherapyProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query therapies: %w", err)
	}
	var therapies []models.TherapyProfile
	if err := cursor.All(ctx, &therapies); err != nil {
		return nil, fmt.Errorf("failed to decode therapies: %w", err)
	}
	return therapies, nil
}
