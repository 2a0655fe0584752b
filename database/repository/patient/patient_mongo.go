package patientRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// historyDoc attaches the owning patient to a stored history entry.
type historyDoc struct {
	PatientID                  string `bson:"patientId"`
	models.PatientHistoryEntry `bson:",inline"`
}

func (r *mongoPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	patient.CreatedAt = now
	patient.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, patient); err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}
	return nil
}

func (r *mongoPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var patient models.Patient
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, scheduling.NewNotFoundError("patient", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	return &patient, nil
}

func (r *mongoPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	patient.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": patient.ID}, patient)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return scheduling.NewNotFoundError("patient", patient.ID)
	}
	return nil
}

func (r *mongoPatientRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return scheduling.NewNotFoundError("patient", id)
	}
	return nil
}

func (r *mongoPatientRepo) AppendHistory(ctx context.Context, patientID string, entry models.PatientHistoryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := historyDoc{PatientID: patientID, PatientHistoryEntry: entry}
	if _, err := r.historyColl.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

func (r *mongoPatientRepo) GetHistory(ctx context.Context, patientID string) ([]models.PatientHistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: 1}})
	cursor, err := r.historyColl.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query patient history: %w", err)
	}
	var docs []historyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode patient history: %w", err)
	}
	entries := make([]models.PatientHistoryEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.PatientHistoryEntry)
	}
	return entries, nil
}

func (r *mongoPatientRepo) SaveFeedback(ctx context.Context, feedback *models.SessionFeedback) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	feedback.CreatedAt = time.Now().UTC()
	if _, err := r.feedbackColl.InsertOne(ctx, feedback); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}
