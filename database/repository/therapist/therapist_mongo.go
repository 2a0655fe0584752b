package therapistRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoTherapistRepo) Create(ctx context.Context, therapist *models.Therapist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, therapist); err != nil {
		return fmt.Errorf("failed to insert therapist: %w", err)
	}
	return nil
}

func (r *mongoTherapistRepo) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var therapist models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&therapist)
	if err == mongo.ErrNoDocuments {
		return nil, scheduling.NewNotFoundError("therapist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapist: %w", err)
	}
	return &therapist, nil
}

func (r *mongoTherapistRepo) Update(ctx context.Context, therapist *models.Therapist) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": therapist.ID}, therapist)
	if err != nil {
		return fmt.Errorf("failed to update therapist: %w", err)
	}
	if res.MatchedCount == 0 {
		return scheduling.NewNotFoundError("therapist", therapist.ID)
	}
	return nil
}

func (r *mongoTherapistRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete therapist: %w", err)
	}
	if res.DeletedCount == 0 {
		return scheduling.NewNotFoundError("therapist", id)
	}
	return nil
}

func (r *mongoTherapistRepo) ListActive(ctx context.Context) ([]models.Therapist, error) {
	return r.findAll(ctx, bson.M{"active": true})
}

func (r *mongoTherapistRepo) ListBySpecialization(ctx context.Context, specialization string) ([]models.Therapist, error) {
	return r.findAll(ctx, bson.M{"active": true, "specializations": specialization})
}

func (r *mongoTherapistRepo) findAll(ctx context.Context, filter bson.M) ([]models.Therapist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query therapists: %w", err)
	}
	var therapists []models.Therapist
	if err := cursor.All(ctx, &therapists); err != nil {
		return nil, fmt.Errorf("failed to decode therapists: %w", err)
	}
	return therapists, nil
}
