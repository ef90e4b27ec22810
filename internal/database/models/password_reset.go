package models

import "time"

// PasswordReset is a single-use password reset token addressed to an email
type PasswordReset struct {
	RecordModel
	Email     string    `json:"email" gorm:"not null;size:255;index"`
	Token     string    `json:"-" gorm:"uniqueIndex:idx_password_resets_token;not null;size:64"`
	Used      bool      `json:"used" gorm:"not null;default:false"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// TableName returns the table name for PasswordReset
func (PasswordReset) TableName() string {
	return "password_resets"
}
