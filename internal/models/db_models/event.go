package db_models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"barrio/pkg/utils"
)

type EventCategory string

const (
	EventCategoryConference EventCategory = "conference"
	EventCategoryWorkshop   EventCategory = "workshop"
	EventCategoryMeetup     EventCategory = "meetup"
	EventCategoryFestival   EventCategory = "festival"
)

// EventFrequency drives the recurrence job: once an occurrence has ended the
// event's dates are advanced by one period.
type EventFrequency string

const (
	FrequencyNone    EventFrequency = "none"
	FrequencyDaily   EventFrequency = "daily"
	FrequencyWeekly  EventFrequency = "weekly"
	FrequencyMonthly EventFrequency = "monthly"
)

type Event struct {
	Resource

	ID        string         `gorm:"primaryKey"`
	Name      string         `gorm:"not null"`
	Category  EventCategory  `gorm:"not null"`
	Frequency EventFrequency `gorm:"not null;default:none"`

	Email string
	Phone string

	Address      string `gorm:"not null"`
	Country      string `gorm:"not null"`
	Municipality string `gorm:"not null"`
	City         string `gorm:"not null"`
	Postcode     string `gorm:"not null"`
	Region       string `gorm:"not null"`

	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`

	IsPublic bool           `gorm:"not null;default:false"`
	URLs     pq.StringArray `gorm:"type:text[]"`

	Price     float64   `gorm:"not null;default:0"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`

	AccountID string `gorm:"not null;index"`

	Activities []Activity `gorm:"constraint:OnDelete:CASCADE"`
	Tickets    []Ticket   `gorm:"constraint:OnDelete:CASCADE"`
	Files      []File     `gorm:"constraint:OnDelete:CASCADE"`
	Tags       []Tag      `gorm:"many2many:event_tags"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = utils.NewID("event")
	}
	return nil
}
