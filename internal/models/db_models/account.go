package db_models

import (
	"gorm.io/gorm"

	"barrio/pkg/utils"
)

type AccountType string

const (
	AccountTypeUser  AccountType = "user"
	AccountTypeAdmin AccountType = "admin"
)

type Account struct {
	Resource

	ID           string      `gorm:"primaryKey"`
	Username     string      `gorm:"uniqueIndex;not null"`
	Email        string      `gorm:"uniqueIndex;not null"`
	Type         AccountType `gorm:"not null;default:user"`
	PasswordHash string      `gorm:"not null"`
	Phone        string

	Events      []Event      `gorm:"constraint:OnDelete:CASCADE"`
	Businesses  []Business   `gorm:"constraint:OnDelete:CASCADE"`
	Files       []File       `gorm:"constraint:OnDelete:CASCADE"`
	ResetTokens []ResetToken `gorm:"constraint:OnDelete:CASCADE"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = utils.NewID("account")
	}
	return nil
}

func (a *Account) IsAdmin() bool {
	return a.Type == AccountTypeAdmin
}
