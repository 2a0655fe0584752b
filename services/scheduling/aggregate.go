package scheduling

import (
	"sort"

	"clinicore/models"
)

// Combine merges scored item lists from independent heuristic sources into a
// single ranking. Each item's score is multiplied by its source's weight and
// accumulated per entity, so an entity appearing in several sources has its
// contributions summed. Reason strings are collected into a deduplicated set.
// The result is sorted by total score descending, with entity ID as a
// deterministic tie-breaker.
//
// The same merge primitive backs both therapy recommendation and
// scheduling-option ranking.
func Combine(sources []models.RecommendationSource) []models.RankedEntity {
	totals := make(map[string]float64)
	reasonSets := make(map[string]map[string]struct{})
	var order []string

	for _, src := range sources {
		for _, item := range src.Items {
			if _, seen := totals[item.EntityID]; !seen {
				order = append(order, item.EntityID)
				reasonSets[item.EntityID] = make(map[string]struct{})
			}
			totals[item.EntityID] += item.Score * src.Weight
			if item.Reason != "" {
				reasonSets[item.EntityID][item.Reason] = struct{}{}
			}
		}
	}

	ranked := make([]models.RankedEntity, 0, len(order))
	for _, id := range order {
		reasons := make([]string, 0, len(reasonSets[id]))
		for r := range reasonSets[id] {
			reasons = append(reasons, r)
		}
		sort.Strings(reasons)
		ranked = append(ranked, models.RankedEntity{
			EntityID:   id,
			TotalScore: totals[id],
			Reasons:    reasons,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].EntityID < ranked[j].EntityID
	})
	return ranked
}
