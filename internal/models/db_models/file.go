package db_models

import (
	"gorm.io/gorm"

	"barrio/pkg/utils"
)

type FileCategory string

const (
	FileCategoryProfileImage FileCategory = "profile_image"
	FileCategoryCoverImage   FileCategory = "cover_image"
)

// File is the database record of an object kept in external storage; the
// bytes themselves go through presigned upload/download URLs.
type File struct {
	Resource

	ID          string       `gorm:"primaryKey"`
	Filename    string       `gorm:"not null"`
	ContentType string       `gorm:"not null"`
	Category    FileCategory `gorm:"not null"`
	Path        string       `gorm:"not null"`
	Hash        string       `gorm:"not null"`

	AccountID  *string `gorm:"index"`
	EventID    *string `gorm:"index"`
	BusinessID *string `gorm:"index"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = utils.NewID("file")
	}
	return nil
}
