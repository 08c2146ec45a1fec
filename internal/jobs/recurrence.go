package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"barrio/internal/models/db_models"
	"barrio/internal/repositories"
)

// recurrenceInterval is how often the job scans for lapsed recurring events.
const recurrenceInterval = time.Hour

// RecurrenceJob rolls recurring events forward: once an occurrence has ended,
// the event's dates and its activities' dates are advanced by whole periods
// until the event ends in the future again.
type RecurrenceJob struct {
	eventRepo    repositories.EventRepository
	activityRepo repositories.ActivityRepository
	logger       *zap.Logger

	stop chan struct{}
	done chan struct{}
}

func NewRecurrenceJob(
	eventRepo repositories.EventRepository,
	activityRepo repositories.ActivityRepository,
	logger *zap.Logger,
) *RecurrenceJob {
	return &RecurrenceJob{
		eventRepo:    eventRepo,
		activityRepo: activityRepo,
		logger:       logger,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

func (j *RecurrenceJob) Start() {
	go j.loop()
}

func (j *RecurrenceJob) Stop() {
	close(j.stop)
	<-j.done
}

func (j *RecurrenceJob) loop() {
	defer close(j.done)

	ticker := time.NewTicker(recurrenceInterval)
	defer ticker.Stop()

	j.RunOnce(context.Background(), time.Now())

	for {
		select {
		case <-j.stop:
			return
		case now := <-ticker.C:
			j.RunOnce(context.Background(), now)
		}
	}
}

// RunOnce advances every due recurring event. Failures on one event do not
// block the rest of the batch.
func (j *RecurrenceJob) RunOnce(ctx context.Context, now time.Time) {
	events, err := j.eventRepo.FindDueRecurring(ctx, now)
	if err != nil {
		j.logger.Error("failed to load recurring events", zap.Error(err))
		return
	}

	for i := range events {
		event := &events[i]
		periods := advanceEvent(event, now)
		if periods == 0 {
			continue
		}

		if err := j.eventRepo.Save(ctx, event); err != nil {
			j.logger.Error("failed to advance event", zap.String("event_id", event.ID), zap.Error(err))
			continue
		}
		for k := range event.Activities {
			if err := j.activityRepo.Save(ctx, &event.Activities[k]); err != nil {
				j.logger.Error("failed to advance activity",
					zap.String("activity_id", event.Activities[k].ID), zap.Error(err))
			}
		}

		j.logger.Info("advanced recurring event",
			zap.String("event_id", event.ID),
			zap.Int("periods", periods),
			zap.Time("next_start", event.StartDate))
	}
}

// advanceEvent shifts the event and its activities forward by however many
// whole periods it takes for the event to end after now. Returns the number
// of periods applied.
func advanceEvent(event *db_models.Event, now time.Time) int {
	step, ok := periodStep(event.Frequency)
	if !ok {
		return 0
	}

	periods := 0
	for !event.EndDate.After(now) {
		event.StartDate = step(event.StartDate)
		event.EndDate = step(event.EndDate)
		periods++
	}

	for i := range event.Activities {
		activity := &event.Activities[i]
		for p := 0; p < periods; p++ {
			activity.StartDate = step(activity.StartDate)
			activity.EndDate = step(activity.EndDate)
		}
	}

	return periods
}

func periodStep(frequency db_models.EventFrequency) (func(time.Time) time.Time, bool) {
	switch frequency {
	case db_models.FrequencyDaily:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }, true
	case db_models.FrequencyWeekly:
		return func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }, true
	case db_models.FrequencyMonthly:
		return func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }, true
	default:
		return nil, false
	}
}
