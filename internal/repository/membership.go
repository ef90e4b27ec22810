package repository

import (
	"context"
	"errors"
	"fmt"

	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository handles database operations for user_workspace edges
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Link inserts the edge unless it already exists
func (r *MembershipRepository) Link(ctx context.Context, userID, workspaceID uuid.UUID) error {
	return r.LinkMany(ctx, []models.UserWorkspace{{UserID: userID, WorkspaceID: workspaceID}})
}

// LinkMany inserts the edges, silently skipping those that already exist
func (r *MembershipRepository) LinkMany(ctx context.Context, edges []models.UserWorkspace) error {
	if len(edges) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edges).Error
}

// CountDistinctMembers counts users other than the owner linked to any of the owner's workspaces
func (r *MembershipRepository) CountDistinctMembers(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query, args, err := ownerMembersQuery("COUNT(DISTINCT uw.user_id)", ownerID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build member count query: %w", err)
	}

	var count int64
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListDistinctMemberIDs lists users other than the owner linked to any of the owner's workspaces
func (r *MembershipRepository) ListDistinctMemberIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := ownerMembersQuery("DISTINCT uw.user_id", ownerID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build member list query: %w", err)
	}

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// IsMemberOfOwner reports whether userID is linked to any workspace owned by ownerID
func (r *MembershipRepository) IsMemberOfOwner(ctx context.Context, userID, ownerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserWorkspace{}).
		Joins("JOIN workspaces ON workspaces.id = user_workspace.workspace_id").
		Where("workspaces.owner_id = ? AND user_workspace.user_id = ?", ownerID, userID).
		Count(&count).Error
	return count > 0, err
}

// FirstWorkspaceID returns one workspace the user is linked to, or nil if none
func (r *MembershipRepository) FirstWorkspaceID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	var edge models.UserWorkspace
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &edge.WorkspaceID, nil
}

// DeleteByWorkspace removes every edge to the workspace
func (r *MembershipRepository) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.UserWorkspace{}, "workspace_id = ?", workspaceID).Error
}

// DeleteByUser removes every edge of the user
func (r *MembershipRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.UserWorkspace{}, "user_id = ?", userID).Error
}
