package scheduling

import (
	"math"

	"clinicore/models"
)

// Heuristic names used as keys in score breakdowns.
const (
	HeuristicExperience     = "experience"
	HeuristicTimePreference = "timePreference"
	HeuristicSequence       = "sequence"
	HeuristicRoom           = "roomAvailability"
	HeuristicHistory        = "patientHistory"
	HeuristicSeasonal       = "seasonal"
)

// ScoreWeights holds the per-heuristic weights, which sum to 1.0. The
// defaults are fixed operating numbers; they are exposed as configuration so
// a deployment can adjust them, but they must not be re-tuned casually since
// that changes observable ranking behavior.
type ScoreWeights struct {
	Experience     float64
	TimePreference float64
	Sequence       float64
	Room           float64
	History        float64
	Seasonal       float64
}

// DefaultScoreWeights returns the standard weighting.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Experience:     0.25,
		TimePreference: 0.20,
		Sequence:       0.20,
		Room:           0.15,
		History:        0.10,
		Seasonal:       0.10,
	}
}

// UrgencyMultiplier scales a weighted total by the request's urgency.
func UrgencyMultiplier(u models.UrgencyLevel) float64 {
	switch u {
	case models.UrgencyHigh:
		return 1.1
	case models.UrgencyEmergency:
		return 1.2
	default:
		return 1.0
	}
}

// SlotContext carries the read-only inputs one candidate slot is scored
// against. RoomFree must already reflect the therapy's room requirement: true
// when a room of the required type is free at the slot's time, or when the
// therapy requires no particular room type.
type SlotContext struct {
	Therapist models.Therapist
	Therapy   models.TherapyProfile
	History   []models.PatientHistoryEntry
	Season    models.Season
	Urgency   models.UrgencyLevel
	RoomFree  bool
}

// SlotScore is the scored outcome for one candidate.
type SlotScore struct {
	Total     float64
	Breakdown map[string]float64
	Reasons   []string
}

// SlotScorer combines six independently normalized heuristics into a single
// ranking score per candidate. Pure: identical inputs always produce
// identical scores.
type SlotScorer struct {
	Weights ScoreWeights
}

// NewSlotScorer returns a scorer with the default weights.
func NewSlotScorer() *SlotScorer {
	return &SlotScorer{Weights: DefaultScoreWeights()}
}

// Score evaluates one candidate interval against its context. Each heuristic
// is normalized to [0,1]; the weighted sum is then scaled by the urgency
// multiplier and deliberately NOT re-clamped, so urgent requests can exceed
// 1.0 and win ties against normally scored slots.
func (sc *SlotScorer) Score(interval models.TimeInterval, ctx SlotContext) SlotScore {
	breakdown := make(map[string]float64, 6)
	var reasons []string

	experience, reason := sc.scoreExperience(ctx.Therapist, ctx.Therapy)
	breakdown[HeuristicExperience] = experience
	reasons = appendReason(reasons, reason)

	timePref, reason := sc.scoreTimePreference(interval, ctx.Therapy)
	breakdown[HeuristicTimePreference] = timePref
	reasons = appendReason(reasons, reason)

	sequence, reason := sc.scoreSequence(ctx.Therapy, ctx.History)
	breakdown[HeuristicSequence] = sequence
	reasons = appendReason(reasons, reason)

	room, reason := sc.scoreRoom(ctx.Therapy, ctx.RoomFree)
	breakdown[HeuristicRoom] = room
	reasons = appendReason(reasons, reason)

	history, reason := sc.scoreHistory(ctx.Therapist.ID, ctx.History)
	breakdown[HeuristicHistory] = history
	reasons = appendReason(reasons, reason)

	seasonal, reason := sc.scoreSeasonal(ctx.Therapy, ctx.Season)
	breakdown[HeuristicSeasonal] = seasonal
	reasons = appendReason(reasons, reason)

	w := sc.Weights
	total := experience*w.Experience +
		timePref*w.TimePreference +
		sequence*w.Sequence +
		room*w.Room +
		history*w.History +
		seasonal*w.Seasonal
	total *= UrgencyMultiplier(ctx.Urgency)

	return SlotScore{Total: total, Breakdown: breakdown, Reasons: reasons}
}

// scoreExperience: 0.8 base on a specialization match, 0.4 otherwise, plus an
// experience bonus of 0.05 per year capped at 0.2.
func (sc *SlotScorer) scoreExperience(therapist models.Therapist, therapy models.TherapyProfile) (float64, string) {
	base := 0.4
	reason := ""
	if therapist.HasSpecialization(therapy.RequiredSpecialization) {
		base = 0.8
		reason = "specialization match"
	}
	bonus := math.Min(0.05*float64(therapist.YearsExperience), 0.2)
	return base + bonus, reason
}

// scoreTimePreference: 0.9 when the slot's hour is in the therapy's preferred
// set, decaying by 0.1 per hour of distance to the nearest preferred hour,
// floored at 0.1. A therapy with no preferred hours is scored neutrally.
func (sc *SlotScorer) scoreTimePreference(interval models.TimeInterval, therapy models.TherapyProfile) (float64, string) {
	if len(therapy.PreferredHours) == 0 {
		return 0.5, ""
	}
	hour := interval.Start.Hour()
	nearest := math.Inf(1)
	for _, preferred := range therapy.PreferredHours {
		if d := math.Abs(float64(hour - preferred)); d < nearest {
			nearest = d
		}
	}
	if nearest == 0 {
		return 0.9, "preferred hour"
	}
	return math.Max(0.9-0.1*nearest, 0.1), ""
}

// scoreSequence: 0.8 for a clean slate, 0.9 when this therapy is the
// documented next step after the most recent completed treatment, 0.6 otherwise.
func (sc *SlotScorer) scoreSequence(therapy models.TherapyProfile, history []models.PatientHistoryEntry) (float64, string) {
	latest := latestEntry(history)
	if latest == nil {
		return 0.8, ""
	}
	if therapy.FollowsCategory != "" && therapy.FollowsCategory == latest.TherapyCategory {
		return 0.9, "follows previous treatment"
	}
	return 0.6, ""
}

// scoreRoom: 1.0 when a room of the required type is free (or no room type is
// required), 0.3 otherwise.
func (sc *SlotScorer) scoreRoom(therapy models.TherapyProfile, roomFree bool) (float64, string) {
	if !roomFree {
		return 0.3, ""
	}
	if therapy.RequiredRoomType != "" {
		return 1.0, "room available"
	}
	return 1.0, ""
}

// scoreHistory: neutral 0.7 for a new patient/therapist pairing, otherwise
// the average past satisfaction with that therapist rescaled from 1-5 to 0-1.
func (sc *SlotScorer) scoreHistory(therapistID string, history []models.PatientHistoryEntry) (float64, string) {
	var sum, n float64
	for _, entry := range history {
		if entry.TherapistID == therapistID {
			sum += float64(entry.Satisfaction)
			n++
		}
	}
	if n == 0 {
		return 0.7, ""
	}
	avg := sum / n
	score := (avg - 1) / 4
	if avg >= 4 {
		return score, "high past satisfaction"
	}
	return score, ""
}

// scoreSeasonal: 0.9 when the therapy is in season, 0.7 otherwise.
func (sc *SlotScorer) scoreSeasonal(therapy models.TherapyProfile, season models.Season) (float64, string) {
	if therapy.InSeason(season) {
		return 0.9, "in season"
	}
	return 0.7, ""
}

func latestEntry(history []models.PatientHistoryEntry) *models.PatientHistoryEntry {
	var latest *models.PatientHistoryEntry
	for i := range history {
		if latest == nil || history[i].CompletedAt.After(latest.CompletedAt) {
			latest = &history[i]
		}
	}
	return latest
}

func appendReason(reasons []string, reason string) []string {
	if reason == "" {
		return reasons
	}
	return append(reasons, reason)
}
