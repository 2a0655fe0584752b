package utils

import (
	"testing"
	"time"

	"clinicore/config"
	"clinicore/models"

	"github.com/stretchr/testify/assert"
)

func TestCurrentSeasonFollowsClock(t *testing.T) {
	prev := config.AppConfig.SeasonOverride
	config.AppConfig.SeasonOverride = ""
	defer func() { config.AppConfig.SeasonOverride = prev }()

	june := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, models.SeasonSummer, CurrentSeason(june))

	january := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, models.SeasonWinter, CurrentSeason(january))
}

func TestCurrentSeasonHonoursOverride(t *testing.T) {
	prev := config.AppConfig.SeasonOverride
	config.AppConfig.SeasonOverride = "winter"
	defer func() { config.AppConfig.SeasonOverride = prev }()

	june := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, models.SeasonWinter, CurrentSeason(june))
}
