package repository

import (
	"context"
	"fmt"

	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/database/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceRepository handles database operations for workspaces
type WorkspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	return r.db.WithContext(ctx).Create(workspace).Error
}

// GetOwned retrieves a workspace only if it is owned by ownerID
func (r *WorkspaceRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.WithContext(ctx).First(&workspace, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrWorkspaceNotFound)
	}
	return &workspace, nil
}

// GetAnchorForOwner picks the workspace recorded on new invites: the default one, else the oldest
func (r *WorkspaceRepository) GetAnchorForOwner(ctx context.Context, ownerID uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("is_default DESC").
		Order("created_at ASC").
		First(&workspace).Error
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrNoOwnedWorkspace)
	}
	return &workspace, nil
}

// ListOwned returns every workspace owned by ownerID
func (r *WorkspaceRepository) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]models.Workspace, error) {
	var workspaces []models.Workspace
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&workspaces).Error
	return workspaces, err
}

// ListForUser returns workspaces owned by the user or linked to the user, each once
func (r *WorkspaceRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Workspace, error) {
	const columns = "w.id, w.name, w.is_default, w.owner_id, w.created_at, w.updated_at"

	owned := psql.Select(columns).
		From("workspaces w").
		Where(sq.Eq{"w.owner_id": userID})
	linked := psql.Select(columns).
		From("workspaces w").
		Join("user_workspace uw ON uw.workspace_id = w.id").
		Where(sq.Eq{"uw.user_id": userID})

	query, args, err := psql.Select("*").
		FromSelect(owned.Suffix("UNION").SuffixExpr(linked), "visible").
		OrderBy("is_default DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build workspaces query: %w", err)
	}

	var workspaces []models.Workspace
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

// HasAccess reports whether the user owns or is linked to the workspace
func (r *WorkspaceRepository) HasAccess(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error) {
	query, args, err := psql.Select("1").
		From("workspaces w").
		LeftJoin("user_workspace uw ON uw.workspace_id = w.id AND uw.user_id = ?", userID).
		Where(sq.Eq{"w.id": workspaceID}).
		Where(sq.Or{
			sq.Eq{"w.owner_id": userID},
			sq.NotEq{"uw.user_id": nil},
		}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build access query: %w", err)
	}

	var exists bool
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&exists).Error; err != nil {
		return false, err
	}
	return exists, nil
}

// Delete deletes the workspace row. Dependent rows must be removed first.
func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Workspace{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrWorkspaceNotFound
	}
	return nil
}
