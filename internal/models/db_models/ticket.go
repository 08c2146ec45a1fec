package db_models

import (
	"gorm.io/gorm"

	"barrio/pkg/utils"
)

type Currency string

const (
	CurrencyAED Currency = "AED"
	CurrencyCOP Currency = "COP"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyPEN Currency = "PEN"
	CurrencyQAR Currency = "QAR"
	CurrencyUSD Currency = "USD"
)

type Ticket struct {
	Resource

	ID       string   `gorm:"primaryKey"`
	Name     string   `gorm:"not null;uniqueIndex:idx_ticket_event_name"`
	Cost     float64  `gorm:"not null;default:0"`
	Currency Currency `gorm:"not null"`

	EventID string `gorm:"not null;uniqueIndex:idx_ticket_event_name"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = utils.NewID("ticket")
	}
	return nil
}
