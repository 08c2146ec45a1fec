package db_models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"

	"barrio/pkg/utils"
)

type BusinessCategory string

const (
	BusinessCategoryArtist      BusinessCategory = "artist"
	BusinessCategoryRestaurant  BusinessCategory = "restaurant"
	BusinessCategoryCafe        BusinessCategory = "cafe"
	BusinessCategoryBoutique    BusinessCategory = "boutique"
	BusinessCategoryExposition  BusinessCategory = "exposition"
	BusinessCategoryAssociation BusinessCategory = "association"
	BusinessCategoryAcademy     BusinessCategory = "academy"
)

type Business struct {
	Resource

	ID       string           `gorm:"primaryKey"`
	Name     string           `gorm:"not null"`
	Category BusinessCategory `gorm:"not null"`

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

	AccountID string `gorm:"not null;index"`

	SocialNetworks []SocialNetwork `gorm:"constraint:OnDelete:CASCADE"`
	Files          []File          `gorm:"many2many:business_files"`
	Tags           []Tag           `gorm:"many2many:business_tags"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = utils.NewID("business")
	}
	return nil
}
