package recommendation

import (
	"context"
	"time"

	"clinicore/models"
	"clinicore/services/scheduling"
	"clinicore/utils"
)

// Source names and weights for the therapy ranking. Weights sum to 1.0.
const (
	SourceCondition    = "condition"
	SourceConstitution = "constitution"
	SourceHistory      = "history"
	SourceSeason       = "season"
	SourceSequence     = "sequence"
)

const (
	weightCondition    = 0.30
	weightConstitution = 0.20
	weightHistory      = 0.20
	weightSeason       = 0.15
	weightSequence     = 0.15
)

// RecommendTherapies builds one scored source per heuristic, merges them and
// resolves the top entries back to full therapy profiles.
func (r *DefaultTherapyRecommender) RecommendTherapies(ctx context.Context, patientID string, limit int) ([]models.TherapyRecommendation, error) {
	patient, err := r.Patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	history, err := r.Patients.GetHistory(ctx, patientID)
	if err != nil {
		return nil, err
	}
	therapies, err := r.Therapies.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	season := utils.CurrentSeason(time.Now())
	sources := []models.RecommendationSource{
		conditionSource(therapies, patient.Condition),
		constitutionSource(therapies, patient.Constitution),
		historySource(therapies, history),
		seasonSource(therapies, season),
		sequenceSource(therapies, history),
	}

	ranked := scheduling.Combine(sources)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	byID := make(map[string]models.TherapyProfile, len(therapies))
	for _, t := range therapies {
		byID[t.ID] = t
	}

	recs := make([]models.TherapyRecommendation, 0, len(ranked))
	for _, entry := range ranked {
		therapy, ok := byID[entry.EntityID]
		if !ok {
			continue
		}
		recs = append(recs, models.TherapyRecommendation{
			Therapy:    therapy,
			TotalScore: entry.TotalScore,
			Reasons:    entry.Reasons,
		})
	}
	return recs, nil
}

func conditionSource(therapies []models.TherapyProfile, condition string) models.RecommendationSource {
	src := models.RecommendationSource{Name: SourceCondition, Weight: weightCondition}
	if condition == "" {
		return src
	}
	for _, t := range therapies {
		if containsString(t.Conditions, condition) {
			src.Items = append(src.Items, models.ScoredItem{
				EntityID: t.ID,
				Score:    1.0,
				Reason:   "matches presenting condition",
			})
		}
	}
	return src
}

func constitutionSource(therapies []models.TherapyProfile, constitution string) models.RecommendationSource {
	src := models.RecommendationSource{Name: SourceConstitution, Weight: weightConstitution}
	if constitution == "" {
		return src
	}
	for _, t := range therapies {
		if containsString(t.Constitutions, constitution) {
			src.Items = append(src.Items, models.ScoredItem{
				EntityID: t.ID,
				Score:    1.0,
				Reason:   "suits constitution",
			})
		}
	}
	return src
}

// historySource scores therapies whose category the patient has received
// before, normalising the 1-5 average satisfaction to [0, 1].
func historySource(therapies []models.TherapyProfile, history []models.PatientHistoryEntry) models.RecommendationSource {
	src := models.RecommendationSource{Name: SourceHistory, Weight: weightHistory}
	if len(history) == 0 {
		return src
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, entry := range history {
		sums[entry.TherapyCategory] += entry.Satisfaction
		counts[entry.TherapyCategory]++
	}

	for _, t := range therapies {
		count, ok := counts[t.Category]
		if !ok {
			continue
		}
		avg := float64(sums[t.Category]) / float64(count)
		item := models.ScoredItem{
			EntityID: t.ID,
			Score:    (avg - 1) / 4,
		}
		if avg >= 4 {
			item.Reason = "rated highly before"
		}
		src.Items = append(src.Items, item)
	}
	return src
}

func seasonSource(therapies []models.TherapyProfile, season models.Season) models.RecommendationSource {
	src := models.RecommendationSource{Name: SourceSeason, Weight: weightSeason}
	for _, t := range therapies {
		if t.InSeason(season) {
			src.Items = append(src.Items, models.ScoredItem{
				EntityID: t.ID,
				Score:    1.0,
				Reason:   "in season",
			})
		}
	}
	return src
}

// sequenceSource favours therapies designed to follow the patient's most
// recent completed treatment category.
func sequenceSource(therapies []models.TherapyProfile, history []models.PatientHistoryEntry) models.RecommendationSource {
	src := models.RecommendationSource{Name: SourceSequence, Weight: weightSequence}
	latest := latestCategory(history)
	if latest == "" {
		return src
	}
	for _, t := range therapies {
		if t.FollowsCategory != "" && t.FollowsCategory == latest {
			src.Items = append(src.Items, models.ScoredItem{
				EntityID: t.ID,
				Score:    1.0,
				Reason:   "follows previous treatment",
			})
		}
	}
	return src
}

func latestCategory(history []models.PatientHistoryEntry) string {
	var latest models.PatientHistoryEntry
	found := false
	for _, entry := range history {
		if !found || entry.CompletedAt.After(latest.CompletedAt) {
			latest = entry
			found = true
		}
	}
	if !found {
		return ""
	}
	return latest.TherapyCategory
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
