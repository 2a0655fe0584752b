package booking

import (
	"context"
	"testing"
	"time"

	"clinicore/models"
	"clinicore/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repository fakes. Only the behaviour the service under test
// relies on is implemented; unused methods return zero values.

type fakeAppointmentRepo struct {
	byID      map[string]*models.Appointment
	created   []*models.Appointment
	createErr error
	updated   map[string]models.AppointmentStatus
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		byID:    make(map[string]*models.Appointment),
		updated: make(map[string]models.AppointmentStatus),
	}
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, appt)
	f.byID[appt.ID] = appt
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, scheduling.NewNotFoundError("appointment", id)
	}
	dup := *appt
	return &dup, nil
}

func (f *fakeAppointmentRepo) Reschedule(ctx context.Context, id string, interval models.TimeInterval, roomID string) error {
	appt, ok := f.byID[id]
	if !ok {
		return scheduling.NewNotFoundError("appointment", id)
	}
	appt.Interval = interval
	appt.RoomID = roomID
	return nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	appt, ok := f.byID[id]
	if !ok {
		return scheduling.NewNotFoundError("appointment", id)
	}
	appt.Status = status
	f.updated[id] = status
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeAppointmentRepo) FindByTherapistAndRange(ctx context.Context, therapistID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindActiveInRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range f.byID {
		if appt.Status.Active() {
			out = append(out, *appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}

type fakeTherapistRepo struct {
	byID map[string]*models.Therapist
}

func (f *fakeTherapistRepo) Create(ctx context.Context, t *models.Therapist) error { return nil }
func (f *fakeTherapistRepo) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, scheduling.NewNotFoundError("therapist", id)
	}
	return t, nil
}
func (f *fakeTherapistRepo) Update(ctx context.Context, t *models.Therapist) error { return nil }
func (f *fakeTherapistRepo) Delete(ctx context.Context, id string) error           { return nil }
func (f *fakeTherapistRepo) ListActive(ctx context.Context) ([]models.Therapist, error) {
	var out []models.Therapist
	for _, t := range f.byID {
		if t.Active {
			out = append(out, *t)
		}
	}
	return out, nil
}
func (f *fakeTherapistRepo) ListBySpecialization(ctx context.Context, spec string) ([]models.Therapist, error) {
	return f.ListActive(ctx)
}

type fakePatientRepo struct {
	byID     map[string]*models.Patient
	history  map[string][]models.PatientHistoryEntry
	feedback []*models.SessionFeedback
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{
		byID:    make(map[string]*models.Patient),
		history: make(map[string][]models.PatientHistoryEntry),
	}
}

func (f *fakePatientRepo) Create(ctx context.Context, p *models.Patient) error { return nil }
func (f *fakePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, scheduling.NewNotFoundError("patient", id)
	}
	return p, nil
}
func (f *fakePatientRepo) Update(ctx context.Context, p *models.Patient) error { return nil }
func (f *fakePatientRepo) Delete(ctx context.Context, id string) error         { return nil }
func (f *fakePatientRepo) AppendHistory(ctx context.Context, patientID string, entry models.PatientHistoryEntry) error {
	f.history[patientID] = append(f.history[patientID], entry)
	return nil
}
func (f *fakePatientRepo) GetHistory(ctx context.Context, patientID string) ([]models.PatientHistoryEntry, error) {
	return f.history[patientID], nil
}
func (f *fakePatientRepo) SaveFeedback(ctx context.Context, fb *models.SessionFeedback) error {
	f.feedback = append(f.feedback, fb)
	return nil
}

type fakeTherapyRepo struct {
	byID map[string]*models.TherapyProfile
}

func (f *fakeTherapyRepo) Create(ctx context.Context, t *models.TherapyProfile) error { return nil }
func (f *fakeTherapyRepo) GetByID(ctx context.Context, id string) (*models.TherapyProfile, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, scheduling.NewNotFoundError("therapy", id)
	}
	return t, nil
}
func (f *fakeTherapyRepo) Update(ctx context.Context, t *models.TherapyProfile) error { return nil }
func (f *fakeTherapyRepo) Delete(ctx context.Context, id string) error                { return nil }
func (f *fakeTherapyRepo) ListAll(ctx context.Context) ([]models.TherapyProfile, error) {
	var out []models.TherapyProfile
	for _, t := range f.byID {
		out = append(out, *t)
	}
	return out, nil
}
func (f *fakeTherapyRepo) ListByCategory(ctx context.Context, category string) ([]models.TherapyProfile, error) {
	return f.ListAll(ctx)
}

type fakeRoomRepo struct {
	rooms []models.Room
}

func (f *fakeRoomRepo) Create(ctx context.Context, r *models.Room) error { return nil }
func (f *fakeRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	return nil, scheduling.NewNotFoundError("room", id)
}
func (f *fakeRoomRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeRoomRepo) ListBookable(ctx context.Context) ([]models.Room, error) {
	return f.rooms, nil
}
func (f *fakeRoomRepo) ListByType(ctx context.Context, roomType string) ([]models.Room, error) {
	var out []models.Room
	for _, r := range f.rooms {
		if r.Type == roomType && r.Bookable {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestService() (*DefaultAppointmentService, *fakeAppointmentRepo, *fakePatientRepo) {
	appts := newFakeAppointmentRepo()
	patients := newFakePatientRepo()
	patients.byID["pat-1"] = &models.Patient{ID: "pat-1", FullName: "A Patient"}

	therapists := &fakeTherapistRepo{byID: map[string]*models.Therapist{
		"ther-1": {ID: "ther-1", FullName: "A Therapist", Active: true},
	}}
	therapies := &fakeTherapyRepo{byID: map[string]*models.TherapyProfile{
		"abhyanga": {ID: "abhyanga", Name: "Abhyanga", Category: "massage", DurationMinutes: 60},
	}}
	rooms := &fakeRoomRepo{}

	svc := &DefaultAppointmentService{
		Appointments: appts,
		Therapists:   therapists,
		Patients:     patients,
		Therapies:    therapies,
		Rooms:        rooms,
		Engine:       scheduling.NewDefaultSchedulingEngine(),
	}
	return svc, appts, patients
}

func bookingRequest(start, end time.Time) models.AppointmentRequest {
	return models.AppointmentRequest{
		TherapistID: "ther-1",
		PatientID:   "pat-1",
		TherapyID:   "abhyanga",
		Start:       start,
		End:         end,
	}
}

func TestBookAppointmentRejectsInvertedInterval(t *testing.T) {
	svc, _, _ := newTestService()
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	_, err := svc.BookAppointment(context.Background(), bookingRequest(start, start.Add(-time.Hour)))

	var intervalErr *models.InvalidIntervalError
	require.ErrorAs(t, err, &intervalErr)
}

func TestBookAppointmentPersistsScheduled(t *testing.T) {
	svc, appts, _ := newTestService()
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	appt, err := svc.BookAppointment(context.Background(), bookingRequest(start, start.Add(time.Hour)))

	require.NoError(t, err)
	require.Len(t, appts.created, 1)
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, models.UrgencyNormal, appt.Urgency)
}

func TestBookAppointmentPropagatesConflict(t *testing.T) {
	svc, appts, _ := newTestService()
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	appts.createErr = &scheduling.ConflictError{
		TherapistID: "ther-1",
		Interval:    models.TimeInterval{Start: start, End: start.Add(time.Hour)},
	}

	_, err := svc.BookAppointment(context.Background(), bookingRequest(start, start.Add(time.Hour)))

	var conflictErr *scheduling.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "ther-1", conflictErr.TherapistID)
}

func TestGetRecommendedSlotsEmptyDates(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.GetRecommendedSlots(context.Background(), models.SlotRecommendationRequest{
		TherapyID: "abhyanga",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Slots)
	assert.Empty(t, result.Conflicts)
}

func TestRescheduleReassignsOccupiedRoom(t *testing.T) {
	appts := newFakeAppointmentRepo()
	patients := newFakePatientRepo()
	patients.byID["pat-1"] = &models.Patient{ID: "pat-1", FullName: "A Patient"}
	therapists := &fakeTherapistRepo{byID: map[string]*models.Therapist{
		"ther-1": {ID: "ther-1", Active: true},
		"ther-2": {ID: "ther-2", Active: true},
	}}
	therapies := &fakeTherapyRepo{byID: map[string]*models.TherapyProfile{
		"shirodhara": {ID: "shirodhara", Name: "Shirodhara", Category: "oil", DurationMinutes: 60, RequiredRoomType: "treatment"},
	}}
	rooms := &fakeRoomRepo{rooms: []models.Room{
		{ID: "room-1", Type: "treatment", Bookable: true},
		{ID: "room-2", Type: "treatment", Bookable: true},
	}}
	svc := &DefaultAppointmentService{
		Appointments: appts,
		Therapists:   therapists,
		Patients:     patients,
		Therapies:    therapies,
		Rooms:        rooms,
		Engine:       scheduling.NewDefaultSchedulingEngine(),
	}

	oldStart := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	newStart := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	appts.byID["a1"] = &models.Appointment{
		ID: "a1", TherapistID: "ther-1", PatientID: "pat-1", TherapyID: "shirodhara",
		RoomID:   "room-1",
		Interval: models.TimeInterval{Start: oldStart, End: oldStart.Add(time.Hour)},
		Status:   models.StatusScheduled,
	}
	appts.byID["a2"] = &models.Appointment{
		ID: "a2", TherapistID: "ther-2", PatientID: "pat-1", TherapyID: "shirodhara",
		RoomID:   "room-1",
		Interval: models.TimeInterval{Start: newStart, End: newStart.Add(time.Hour)},
		Status:   models.StatusScheduled,
	}

	moved, err := svc.RescheduleAppointment(context.Background(), "a1", newStart, newStart.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "room-2", moved.RoomID)
	assert.Equal(t, "room-2", appts.byID["a1"].RoomID)
}

func TestUpdateStatusValidTransition(t *testing.T) {
	svc, appts, _ := newTestService()
	appts.byID["a1"] = &models.Appointment{ID: "a1", TherapistID: "ther-1", Status: models.StatusScheduled}

	err := svc.UpdateAppointmentStatus(context.Background(), "a1", models.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, appts.updated["a1"])
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	svc, appts, _ := newTestService()
	appts.byID["a1"] = &models.Appointment{ID: "a1", TherapistID: "ther-1", Status: models.StatusCompleted}

	err := svc.UpdateAppointmentStatus(context.Background(), "a1", models.StatusScheduled)

	require.Error(t, err)
	assert.Empty(t, appts.updated)
}

func TestCancelRejectsTerminalStates(t *testing.T) {
	svc, appts, _ := newTestService()
	appts.byID["a1"] = &models.Appointment{ID: "a1", TherapistID: "ther-1", Status: models.StatusCancelled}

	err := svc.CancelAppointment(context.Background(), "a1")

	require.Error(t, err)
}

func TestRecordFeedbackAppendsHistory(t *testing.T) {
	svc, appts, patients := newTestService()
	end := time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)
	appts.byID["a1"] = &models.Appointment{
		ID:          "a1",
		TherapistID: "ther-1",
		PatientID:   "pat-1",
		TherapyID:   "abhyanga",
		Interval:    models.TimeInterval{Start: end.Add(-time.Hour), End: end},
		Status:      models.StatusCompleted,
	}

	err := svc.RecordFeedback(context.Background(), &models.SessionFeedback{
		AppointmentID: "a1",
		Satisfaction:  5,
	})

	require.NoError(t, err)
	require.Len(t, patients.feedback, 1)
	assert.Equal(t, "ther-1", patients.feedback[0].TherapistID)

	history := patients.history["pat-1"]
	require.Len(t, history, 1)
	assert.Equal(t, "massage", history[0].TherapyCategory)
	assert.Equal(t, 5, history[0].Satisfaction)
	assert.Equal(t, end, history[0].CompletedAt)
}

func TestRecordFeedbackRequiresCompletedSession(t *testing.T) {
	svc, appts, _ := newTestService()
	appts.byID["a1"] = &models.Appointment{
		ID: "a1", TherapistID: "ther-1", PatientID: "pat-1",
		TherapyID: "abhyanga", Status: models.StatusScheduled,
	}

	err := svc.RecordFeedback(context.Background(), &models.SessionFeedback{
		AppointmentID: "a1",
		Satisfaction:  4,
	})

	require.Error(t, err)
}

func TestParseDatesRejectsBadFormat(t *testing.T) {
	_, err := parseDates([]string{"2025-06-02", "junk"})

	var intervalErr *models.InvalidIntervalError
	require.ErrorAs(t, err, &intervalErr)
}

func TestDateSpanCoversAllDays(t *testing.T) {
	first := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	last := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	from, to := dateSpan([]time.Time{last, first})

	assert.Equal(t, first, from)
	assert.Equal(t, last.Add(24*time.Hour), to)
}
