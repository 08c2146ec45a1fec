package db_models

import (
	"gorm.io/gorm"

	"barrio/pkg/utils"
)

type SocialNetworkCategory string

const (
	SocialNetworkFacebook  SocialNetworkCategory = "facebook"
	SocialNetworkInstagram SocialNetworkCategory = "instagram"
	SocialNetworkTikTok    SocialNetworkCategory = "tiktok"
	SocialNetworkTwitter   SocialNetworkCategory = "twitter"
	SocialNetworkWeb       SocialNetworkCategory = "web"
)

type SocialNetwork struct {
	Resource

	ID       string                `gorm:"primaryKey"`
	URL      string                `gorm:"not null"`
	Category SocialNetworkCategory `gorm:"not null"`

	BusinessID string `gorm:"not null;index"`
}

func (s *SocialNetwork) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = utils.NewID("social_network")
	}
	return nil
}
