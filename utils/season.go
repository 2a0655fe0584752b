package utils

import (
	"time"

	"clinicore/config"
	"clinicore/models"
)

// CurrentSeason derives the scoring season from the clock, unless an
// operator override is configured.
func CurrentSeason(now time.Time) models.Season {
	if s := config.AppConfig.SeasonOverride; s != "" {
		return models.Season(s)
	}
	return models.SeasonOf(now)
}
