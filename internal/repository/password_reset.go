package repository

import (
	"context"
	"time"

	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PasswordResetRepository handles database operations for password reset tokens
type PasswordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Create stores a new reset token
func (r *PasswordResetRepository) Create(ctx context.Context, reset *models.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

// LockActiveByToken finds an unused, unexpired reset token and locks it
func (r *PasswordResetRepository) LockActiveByToken(ctx context.Context, token string, now time.Time) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, now).
		First(&reset).Error
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrInvalidOrExpiredResetToken)
	}
	return &reset, nil
}

// MarkUsed flags the token as consumed
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.PasswordReset{}).
		Where("id = ?", id).
		Update("used", true).Error
}

// DeleteByEmail removes every reset token addressed to email
func (r *PasswordResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Delete(&models.PasswordReset{}, "email = ?", email).Error
}
