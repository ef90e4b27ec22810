package repository

import (
	"context"
	"time"

	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	LockByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListSharingOwnerWorkspaces(ctx context.Context, ownerID uuid.UUID) ([]models.User, error)
	UpdatePasswordHashByEmail(ctx context.Context, email, passwordHash string) error
	UpdateProfile(ctx context.Context, id uuid.UUID, name, profilePicture *string) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkspaceRepositoryInterface defines the interface for workspace repository operations
type WorkspaceRepositoryInterface interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*models.Workspace, error)
	GetAnchorForOwner(ctx context.Context, ownerID uuid.UUID) (*models.Workspace, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]models.Workspace, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Workspace, error)
	HasAccess(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for user_workspace edge operations
type MembershipRepositoryInterface interface {
	Link(ctx context.Context, userID, workspaceID uuid.UUID) error
	LinkMany(ctx context.Context, edges []models.UserWorkspace) error
	CountDistinctMembers(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ListDistinctMemberIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	IsMemberOfOwner(ctx context.Context, userID, ownerID uuid.UUID) (bool, error)
	FirstWorkspaceID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
	DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// InviteRepositoryInterface defines the interface for invite repository operations
type InviteRepositoryInterface interface {
	Create(ctx context.Context, invite *models.Invite) error
	CountPending(ctx context.Context, senderID uuid.UUID, now time.Time) (int64, error)
	HasPending(ctx context.Context, senderID uuid.UUID, email string, now time.Time) (bool, error)
	LockActiveByToken(ctx context.Context, token string, now time.Time) (*models.Invite, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.Invite, error)
	DeleteSentBy(ctx context.Context, id, senderID uuid.UUID) error
	DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteAllSentBy(ctx context.Context, senderID uuid.UUID) error
}

// PasswordResetRepositoryInterface defines the interface for password reset token operations
type PasswordResetRepositoryInterface interface {
	Create(ctx context.Context, reset *models.PasswordReset) error
	LockActiveByToken(ctx context.Context, token string, now time.Time) (*models.PasswordReset, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	DeleteByEmail(ctx context.Context, email string) error
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(ctx context.Context, document *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Document, error)
	ListByWorkspaces(ctx context.Context, workspaceIDs []uuid.UUID) ([]models.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}

// FollowedCaseRepositoryInterface defines the interface for followed case repository operations
type FollowedCaseRepositoryInterface interface {
	Create(ctx context.Context, followed *models.FollowedCase) error
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, court string) ([]models.FollowedCase, error)
	DeleteByCaseID(ctx context.Context, workspaceID uuid.UUID, caseID string) error
	DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}

// ExtractionRepositoryInterface defines the interface for extraction repository operations
type ExtractionRepositoryInterface interface {
	CreateBatch(ctx context.Context, extractions []models.Extraction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Extraction, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Extraction, error)
	DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}

// TransactorInterface runs fn against repositories bound to a single database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}
