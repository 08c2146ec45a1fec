package db_models

import (
	"time"

	"gorm.io/gorm"

	"barrio/pkg/utils"
)

// Activity is a sub-event within an event's programme. Its name is unique
// within the parent event and its end date must follow its start date.
type Activity struct {
	Resource

	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null;uniqueIndex:idx_activity_event_name"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null;check:end_date > start_date"`

	EventID string `gorm:"not null;uniqueIndex:idx_activity_event_name"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = utils.NewID("activity")
	}
	return nil
}
