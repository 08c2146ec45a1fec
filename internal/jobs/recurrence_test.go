package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"barrio/internal/models/db_models"
)

func TestAdvanceEvent(t *testing.T) {
	base := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	t.Run("weekly event advances one period", func(t *testing.T) {
		event := &db_models.Event{
			Frequency: db_models.FrequencyWeekly,
			StartDate: base,
			EndDate:   base.Add(2 * time.Hour),
		}

		periods := advanceEvent(event, base.Add(24*time.Hour))

		assert.Equal(t, 1, periods)
		assert.Equal(t, base.AddDate(0, 0, 7), event.StartDate)
		assert.Equal(t, base.Add(2*time.Hour).AddDate(0, 0, 7), event.EndDate)
	})

	t.Run("long-lapsed daily event catches up in whole periods", func(t *testing.T) {
		event := &db_models.Event{
			Frequency: db_models.FrequencyDaily,
			StartDate: base,
			EndDate:   base.Add(time.Hour),
		}

		now := base.AddDate(0, 0, 3)
		periods := advanceEvent(event, now)

		assert.Equal(t, 3, periods)
		assert.True(t, event.EndDate.After(now))
	})

	t.Run("activities move with the event", func(t *testing.T) {
		event := &db_models.Event{
			Frequency: db_models.FrequencyMonthly,
			StartDate: base,
			EndDate:   base.Add(4 * time.Hour),
			Activities: []db_models.Activity{
				{Name: "opening", StartDate: base, EndDate: base.Add(time.Hour)},
			},
		}

		advanceEvent(event, base.AddDate(0, 0, 1))

		assert.Equal(t, base.AddDate(0, 1, 0), event.Activities[0].StartDate)
		assert.Equal(t, base.Add(time.Hour).AddDate(0, 1, 0), event.Activities[0].EndDate)
	})

	t.Run("non-recurring event untouched", func(t *testing.T) {
		event := &db_models.Event{
			Frequency: db_models.FrequencyNone,
			StartDate: base,
			EndDate:   base.Add(time.Hour),
		}

		periods := advanceEvent(event, base.AddDate(0, 0, 30))

		assert.Zero(t, periods)
		assert.Equal(t, base, event.StartDate)
	})

	t.Run("future event untouched", func(t *testing.T) {
		event := &db_models.Event{
			Frequency: db_models.FrequencyWeekly,
			StartDate: base,
			EndDate:   base.Add(time.Hour),
		}

		periods := advanceEvent(event, base.Add(-24*time.Hour))

		assert.Zero(t, periods)
		assert.Equal(t, base, event.StartDate)
	})
}
