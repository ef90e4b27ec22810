package repository

import (
	"context"

	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowedCaseRepository handles database operations for followed cases
type FollowedCaseRepository struct {
	db *gorm.DB
}

// NewFollowedCaseRepository creates a new followed case repository
func NewFollowedCaseRepository(db *gorm.DB) *FollowedCaseRepository {
	return &FollowedCaseRepository{db: db}
}

// Create follows a case. Following the same case twice in a workspace is a conflict.
func (r *FollowedCaseRepository) Create(ctx context.Context, followed *models.FollowedCase) error {
	return duplicateAs(r.db.WithContext(ctx).Create(followed).Error, apperrors.ErrCaseAlreadyFollowed)
}

// ListByWorkspace returns followed cases, newest first, optionally filtered by court
func (r *FollowedCaseRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, court string) ([]models.FollowedCase, error) {
	query := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if court != "" {
		query = query.Where("court = ?", court)
	}

	var cases []models.FollowedCase
	err := query.Order("followed_at DESC").Find(&cases).Error
	return cases, err
}

// DeleteByCaseID unfollows a case in the workspace
func (r *FollowedCaseRepository) DeleteByCaseID(ctx context.Context, workspaceID uuid.UUID, caseID string) error {
	result := r.db.WithContext(ctx).Delete(&models.FollowedCase{}, "workspace_id = ? AND case_id = ?", workspaceID, caseID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCaseNotFound
	}
	return nil
}

// DeleteByWorkspace removes every followed case of the workspace
func (r *FollowedCaseRepository) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.FollowedCase{}, "workspace_id = ?", workspaceID).Error
}
