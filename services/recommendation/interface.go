package recommendation

import (
	"context"

	patientRepo "clinicore/database/repository/patient"
	therapyRepo "clinicore/database/repository/therapy"
	"clinicore/models"
)

// TherapyRecommender suggests treatments for a patient by merging several
// independent heuristic sources into one weighted ranking.
type TherapyRecommender interface {
	RecommendTherapies(ctx context.Context, patientID string, limit int) ([]models.TherapyRecommendation, error)
}

// DefaultTherapyRecommender implements TherapyRecommender.
type DefaultTherapyRecommender struct {
	Therapies therapyRepo.TherapyRepository
	Patients  patientRepo.PatientRepository
}

// NewDefaultTherapyRecommender wires the recommender to its repositories.
func NewDefaultTherapyRecommender(therapies therapyRepo.TherapyRepository, patients patientRepo.PatientRepository) *DefaultTherapyRecommender {
	return &DefaultTherapyRecommender{Therapies: therapies, Patients: patients}
}
