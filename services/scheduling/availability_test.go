package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicore/models"
)

// monday is a fixed reference date (2025-06-02 is a Monday).
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func weekdayTemplate(day time.Weekday, startMin, endMin int) models.WorkingHoursTemplate {
	var tmpl models.WorkingHoursTemplate
	tmpl.Days[int(day)] = models.DayWindow{StartMinute: startMin, EndMinute: endMin, Available: true}
	return tmpl
}

func TestGenerateSlotsTwoHourWindow(t *testing.T) {
	tmpl := weekdayTemplate(time.Monday, 9*60, 11*60)

	slots := GenerateSlots(tmpl, monday, 60)

	require.Len(t, slots, 2)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].Start)
	assert.Equal(t, monday.Add(10*time.Hour), slots[0].End)
	assert.Equal(t, monday.Add(10*time.Hour), slots[1].Start)
	assert.Equal(t, monday.Add(11*time.Hour), slots[1].End)
}

func TestGenerateSlotsUnavailableWeekday(t *testing.T) {
	tmpl := weekdayTemplate(time.Monday, 9*60, 17*60)
	sunday := monday.AddDate(0, 0, -1)

	assert.Empty(t, GenerateSlots(tmpl, sunday, 60))
}

func TestGenerateSlotsMarkedUnavailable(t *testing.T) {
	var tmpl models.WorkingHoursTemplate
	tmpl.Days[int(time.Monday)] = models.DayWindow{StartMinute: 9 * 60, EndMinute: 17 * 60, Available: false}

	assert.Empty(t, GenerateSlots(tmpl, monday, 60))
}

func TestGenerateSlotsNonPositiveDuration(t *testing.T) {
	tmpl := weekdayTemplate(time.Monday, 9*60, 17*60)

	assert.Empty(t, GenerateSlots(tmpl, monday, 0))
	assert.Empty(t, GenerateSlots(tmpl, monday, -30))
}

func TestGenerateSlotsInvertedWindow(t *testing.T) {
	tmpl := weekdayTemplate(time.Monday, 17*60, 9*60)

	assert.Empty(t, GenerateSlots(tmpl, monday, 60))
}

func TestGenerateSlotsPartialSlotDropped(t *testing.T) {
	// 9:00-10:30 window with 60-minute sessions: only 9:00-10:00 fits.
	tmpl := weekdayTemplate(time.Monday, 9*60, 10*60+30)

	slots := GenerateSlots(tmpl, monday, 60)

	require.Len(t, slots, 1)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].Start)
}

func TestGenerateSlotsChronologicalOrder(t *testing.T) {
	tmpl := weekdayTemplate(time.Monday, 8*60, 18*60)

	slots := GenerateSlots(tmpl, monday, 45)

	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestGenerateSlotsPure(t *testing.T) {
	tmpl := weekdayTemplate(time.Monday, 9*60, 12*60)

	first := GenerateSlots(tmpl, monday, 30)
	second := GenerateSlots(tmpl, monday, 30)

	assert.Equal(t, first, second)
}
