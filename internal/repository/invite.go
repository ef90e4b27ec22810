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

// InviteRepository handles database operations for invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create creates a new invite
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *InviteRepository) pending(ctx context.Context, senderID uuid.UUID, now time.Time) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Invite{}).
		Where("sent_by = ? AND used = ? AND expires_at > ?", senderID, false, now)
}

// CountPending counts unused, unexpired invites sent by senderID
func (r *InviteRepository) CountPending(ctx context.Context, senderID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	err := r.pending(ctx, senderID, now).Count(&count).Error
	return count, err
}

// HasPending reports whether senderID has an unused, unexpired invite to email
func (r *InviteRepository) HasPending(ctx context.Context, senderID uuid.UUID, email string, now time.Time) (bool, error) {
	var count int64
	err := r.pending(ctx, senderID, now).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// LockActiveByToken finds an unused, unexpired invite by token and locks it
func (r *InviteRepository) LockActiveByToken(ctx context.Context, token string, now time.Time) (*models.Invite, error) {
	var invite models.Invite
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ? AND used = ? AND expires_at > ?", token, false, now).
		First(&invite).Error
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrInvalidOrExpiredInvite)
	}
	return &invite, nil
}

// MarkUsed flags the invite as accepted
func (r *InviteRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Invite{}).
		Where("id = ?", id).
		Update("used", true).Error
}

// ListBySender returns every invite sent by senderID, newest first
func (r *InviteRepository) ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.Invite, error) {
	var invites []models.Invite
	err := r.db.WithContext(ctx).
		Where("sent_by = ?", senderID).
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

// DeleteSentBy deletes the invite only if senderID sent it
func (r *InviteRepository) DeleteSentBy(ctx context.Context, id, senderID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Invite{}, "id = ? AND sent_by = ?", id, senderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrInviteNotFound
	}
	return nil
}

// DeleteByWorkspace removes invites anchored to the workspace
func (r *InviteRepository) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Invite{}, "workspace_id = ?", workspaceID).Error
}

// DeleteByEmail removes invites addressed to email
func (r *InviteRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Delete(&models.Invite{}, "email = ?", email).Error
}

// DeleteAllSentBy removes invites sent by senderID
func (r *InviteRepository) DeleteAllSentBy(ctx context.Context, senderID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Invite{}, "sent_by = ?", senderID).Error
}
