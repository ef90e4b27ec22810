package repository

import (
	"context"
	"fmt"

	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/database/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return duplicateAs(r.db.WithContext(ctx).Create(user).Error, apperrors.ErrUserExists)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, notFoundAs(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// LockByID retrieves a user and holds a row lock on it until the surrounding transaction ends
func (r *UserRepository) LockByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, notFoundAs(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// ListSharingOwnerWorkspaces returns the owner and every user linked to one of the owner's workspaces, newest first
func (r *UserRepository) ListSharingOwnerWorkspaces(ctx context.Context, ownerID uuid.UUID) ([]models.User, error) {
	members := ownerMembersQuery("uw.user_id", ownerID)
	query, args, err := psql.Select("u.*").
		From("users u").
		Where(sq.Or{
			sq.Eq{"u.id": ownerID},
			sq.Expr("u.id IN (?)", members),
		}).
		OrderBy("u.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users query: %w", err)
	}

	var users []models.User
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePasswordHashByEmail replaces the password hash of the user with email
func (r *UserRepository) UpdatePasswordHashByEmail(ctx context.Context, email, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateProfile sets the non-nil fields and returns the updated user
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, profilePicture *string) (*models.User, error) {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if profilePicture != nil {
		updates["profile_picture"] = *profilePicture
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, apperrors.ErrUserNotFound
		}
	}

	return r.GetByID(ctx, id)
}

// Delete deletes the user row. Dependent rows must be removed first.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
