package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func activeStatusFilter() bson.M {
	return bson.M{"status": bson.M{"$in": []models.AppointmentStatus{
		models.StatusScheduled,
		models.StatusConfirmed,
		models.StatusInProgress,
	}}}
}

// overlapFilter matches active appointments for the therapist whose half-open
// interval intersects [start, end). Touching boundaries do not match.
func overlapFilter(therapistID string, interval models.TimeInterval, excludeID string) bson.M {
	filter := bson.M{
		"therapistId":    therapistID,
		"interval.start": bson.M{"$lt": interval.End},
		"interval.end":   bson.M{"$gt": interval.Start},
	}
	for k, v := range activeStatusFilter() {
		filter[k] = v
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (r *mongoAppointmentRepo) findOverlapping(ctx context.Context, therapistID string, interval models.TimeInterval, excludeID string) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, overlapFilter(therapistID, interval, excludeID))
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping appointments: %w", err)
	}
	var overlapping []models.Appointment
	if err := cursor.All(ctx, &overlapping); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping appointments: %w", err)
	}
	return overlapping, nil
}

func (r *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		overlapping, err := r.findOverlapping(sc, appt.TherapistID, appt.Interval, "")
		if err != nil {
			return nil, err
		}
		if len(overlapping) > 0 {
			return nil, &scheduling.ConflictError{
				TherapistID: appt.TherapistID,
				Interval:    appt.Interval,
				Conflicts:   overlapping,
			}
		}
		now := time.Now().UTC()
		appt.CreatedAt = now
		appt.UpdatedAt = now
		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return nil, fmt.Errorf("failed to insert appointment: %w", err)
		}
		return nil, nil
	})
	return err
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, scheduling.NewNotFoundError("appointment", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) Reschedule(ctx context.Context, id string, interval models.TimeInterval, roomID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var appt models.Appointment
		if err := r.coll.FindOne(sc, bson.M{"id": id}).Decode(&appt); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, scheduling.NewNotFoundError("appointment", id)
			}
			return nil, fmt.Errorf("failed to fetch appointment: %w", err)
		}
		overlapping, err := r.findOverlapping(sc, appt.TherapistID, interval, id)
		if err != nil {
			return nil, err
		}
		if len(overlapping) > 0 {
			return nil, &scheduling.ConflictError{
				TherapistID: appt.TherapistID,
				Interval:    interval,
				Conflicts:   overlapping,
			}
		}
		update := bson.M{"$set": bson.M{
			"interval":  interval,
			"roomId":    roomID,
			"updatedAt": time.Now().UTC(),
		}}
		if _, err := r.coll.UpdateOne(sc, bson.M{"id": id}, update); err != nil {
			return nil, fmt.Errorf("failed to update appointment interval: %w", err)
		}
		return nil, nil
	})
	return err
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return scheduling.NewNotFoundError("appointment", id)
	}
	return nil
}

func (r *mongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if res.DeletedCount == 0 {
		return scheduling.NewNotFoundError("appointment", id)
	}
	return nil
}

func (r *mongoAppointmentRepo) FindByTherapistAndRange(ctx context.Context, therapistID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"therapistId":    therapistID,
		"interval.start": bson.M{"$lt": to},
		"interval.end":   bson.M{"$gt": from},
	}
	return r.findAll(ctx, filter)
}

func (r *mongoAppointmentRepo) FindActiveInRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"interval.start": bson.M{"$lt": to},
		"interval.end":   bson.M{"$gt": from},
	}
	for k, v := range activeStatusFilter() {
		filter[k] = v
	}
	return r.findAll(ctx, filter)
}

func (r *mongoAppointmentRepo) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.findAll(ctx, bson.M{"patientId": patientID})
}

func (r *mongoAppointmentRepo) findAll(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
