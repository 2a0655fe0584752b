package patientRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPatientRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	patientIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, patientIdx); err != nil {
		return fmt.Errorf("failed to create patient indexes: %w", err)
	}

	historyIdx := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "patientId", Value: 1},
			{Key: "completedAt", Value: 1},
		}},
	}
	if _, err := r.historyColl.Indexes().CreateMany(ctx, historyIdx); err != nil {
		return fmt.Errorf("failed to create history indexes: %w", err)
	}

	feedbackIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "appointmentId", Value: 1}}},
	}
	if _, err := r.feedbackColl.Indexes().CreateMany(ctx, feedbackIdx); err != nil {
		return fmt.Errorf("failed to create feedback indexes: %w", err)
	}
	return nil
}
