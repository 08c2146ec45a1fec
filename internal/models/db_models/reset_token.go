package db_models

// ResetToken stores a password-reset token; the token value is the primary
// key. Issuing a new token marks the account's prior unused tokens used, so
// at most one token per account is active at a time.
type ResetToken struct {
	Resource

	ID   string `gorm:"primaryKey"`
	Used bool   `gorm:"not null;default:false"`

	AccountID string `gorm:"not null;index"`
}
