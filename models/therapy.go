package models

import "time"

// Season is a coarse time-of-year bucket used by the seasonal scoring
// heuristic and the seasonal recommendation source.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// SeasonOf maps a date to its season (northern-hemisphere months).
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// TherapyProfile describes a treatment offered by the clinic, including the
// temporal preferences consumed by the slot scorer.
type TherapyProfile struct {
	ID                     string   `bson:"id" json:"id"`
	Name                   string   `bson:"name" json:"name"`
	Category               string   `bson:"category" json:"category"`
	RequiredSpecialization string   `bson:"requiredSpecialization,omitempty" json:"requiredSpecialization,omitempty"`
	PreferredHours         []int    `bson:"preferredHours,omitempty" json:"preferredHours,omitempty"`
	DurationMinutes        int      `bson:"durationMinutes" json:"durationMinutes"`
	RequiredRoomType       string   `bson:"requiredRoomType,omitempty" json:"requiredRoomType,omitempty"`
	Seasons                []Season `bson:"seasons,omitempty" json:"seasons,omitempty"`
	// FollowsCategory names the therapy category this treatment is the
	// documented next step after, used by the sequence heuristic.
	FollowsCategory string `bson:"followsCategory,omitempty" json:"followsCategory,omitempty"`
	// Conditions this therapy is indicated for, used by the condition
	// recommendation source.
	Conditions []string `bson:"conditions,omitempty" json:"conditions,omitempty"`
	// Constitutions (dosha types) this therapy suits. Opaque categorical
	// labels; the platform does not derive them.
	Constitutions []string  `bson:"constitutions,omitempty" json:"constitutions,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InSeason reports whether the therapy is preferred in the given season.
func (tp TherapyProfile) InSeason(s Season) bool {
	for _, ts := range tp.Seasons {
		if ts == s {
			return true
		}
	}
	return false
}
