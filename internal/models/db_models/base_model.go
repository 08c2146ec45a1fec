package db_models

import (
	"time"
)

// Resource carries the audited fields shared by every entity. Timestamps are
// owned by the persistence layer: gorm sets them on create/update, callers
// never write them directly.
type Resource struct {
	Description  string     `gorm:"type:text" json:"description"`
	CreationDate time.Time  `gorm:"autoCreateTime" json:"creation_date"`
	UpdateDate   *time.Time `gorm:"autoUpdateTime" json:"update_date"`
}
