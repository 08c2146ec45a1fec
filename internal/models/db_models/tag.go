package db_models

import (
	"gorm.io/gorm"

	"barrio/pkg/utils"
)

// Tag names are a natural key: creating a tag with an existing name returns
// the existing row instead of erroring.
type Tag struct {
	Resource

	ID   string `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`

	Events     []Event    `gorm:"many2many:event_tags"`
	Businesses []Business `gorm:"many2many:business_tags"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = utils.NewID("tag")
	}
	return nil
}
