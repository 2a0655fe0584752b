package models

// ScoredItem is one heuristic source's opinion about an entity.
type ScoredItem struct {
	EntityID string  `json:"entityId"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason,omitempty"`
}

// RecommendationSource is an independent heuristic's weighted item list.
type RecommendationSource struct {
	Name   string       `json:"name"`
	Weight float64      `json:"weight"`
	Items  []ScoredItem `json:"items"`
}

// RankedEntity is one merged recommendation: weighted contributions from all
// sources summed per entity, with the contributing reasons deduplicated.
type RankedEntity struct {
	EntityID   string   `json:"entityId"`
	TotalScore float64  `json:"totalScore"`
	Reasons    []string `json:"reasons"`
}

// TherapyRecommendation is the API shape for a recommended treatment.
type TherapyRecommendation struct {
	Therapy    TherapyProfile `json:"therapy"`
	TotalScore float64        `json:"totalScore"`
	Reasons    []string       `json:"reasons"`
}
