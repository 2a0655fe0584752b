package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicore/models"
)

func TestCombineAccumulatesWeightedScores(t *testing.T) {
	sources := []models.RecommendationSource{
		{
			Name:   "condition",
			Weight: 0.3,
			Items:  []models.ScoredItem{{EntityID: "ty-1", Score: 0.8, Reason: "matches condition"}},
		},
		{
			Name:   "season",
			Weight: 0.2,
			Items:  []models.ScoredItem{{EntityID: "ty-1", Score: 0.6, Reason: "in season"}},
		},
	}

	ranked := Combine(sources)

	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.36, ranked[0].TotalScore, 1e-9) // 0.8*0.3 + 0.6*0.2
	assert.ElementsMatch(t, []string{"matches condition", "in season"}, ranked[0].Reasons)
}

func TestCombineDeduplicatesReasons(t *testing.T) {
	sources := []models.RecommendationSource{
		{Weight: 0.5, Items: []models.ScoredItem{{EntityID: "ty-1", Score: 0.5, Reason: "in season"}}},
		{Weight: 0.5, Items: []models.ScoredItem{{EntityID: "ty-1", Score: 0.7, Reason: "in season"}}},
	}

	ranked := Combine(sources)

	require.Len(t, ranked, 1)
	assert.Equal(t, []string{"in season"}, ranked[0].Reasons)
}

func TestCombineSortsDescending(t *testing.T) {
	sources := []models.RecommendationSource{
		{
			Weight: 1.0,
			Items: []models.ScoredItem{
				{EntityID: "low", Score: 0.2},
				{EntityID: "high", Score: 0.9},
				{EntityID: "mid", Score: 0.5},
			},
		},
	}

	ranked := Combine(sources)

	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].EntityID)
	assert.Equal(t, "mid", ranked[1].EntityID)
	assert.Equal(t, "low", ranked[2].EntityID)
}

func TestCombineTieBreaksByEntityID(t *testing.T) {
	sources := []models.RecommendationSource{
		{
			Weight: 1.0,
			Items: []models.ScoredItem{
				{EntityID: "b", Score: 0.5},
				{EntityID: "a", Score: 0.5},
			},
		},
	}

	ranked := Combine(sources)

	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].EntityID)
	assert.Equal(t, "b", ranked[1].EntityID)
}

func TestCombineEmptyInput(t *testing.T) {
	assert.Empty(t, Combine(nil))
	assert.Empty(t, Combine([]models.RecommendationSource{{Weight: 0.5}}))
}

func TestCombineSkipsEmptyReasons(t *testing.T) {
	sources := []models.RecommendationSource{
		{Weight: 1.0, Items: []models.ScoredItem{{EntityID: "ty-1", Score: 0.5}}},
	}

	ranked := Combine(sources)

	require.Len(t, ranked, 1)
	assert.Empty(t, ranked[0].Reasons)
}
