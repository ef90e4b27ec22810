package service

import (
	"context"
	"time"

	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SeatServiceInterface defines the interface for seat accounting
type SeatServiceInterface interface {
	ComputeSeatUsage(ctx context.Context, ownerID uuid.UUID) (*SeatUsageResponse, error)
}

// InviteServiceInterface defines the interface for the invitation workflow
type InviteServiceInterface interface {
	SendInvite(ctx context.Context, ownerID uuid.UUID, req *SendInviteRequest) (*SendInviteResponse, error)
	AcceptInvite(ctx context.Context, req *AcceptInviteRequest) (*AcceptInviteResponse, error)
	ListSentInvites(ctx context.Context, ownerID uuid.UUID) ([]InviteResponse, error)
	RevokeInvite(ctx context.Context, inviteID, requesterID uuid.UUID) error
}

// WorkspaceServiceInterface defines the interface for workspace membership
type WorkspaceServiceInterface interface {
	CreateWorkspace(ctx context.Context, ownerID uuid.UUID, req *CreateWorkspaceRequest) (*WorkspaceResponse, error)
	ListUserWorkspaces(ctx context.Context, userID uuid.UUID) ([]WorkspaceResponse, error)
	DeleteWorkspace(ctx context.Context, workspaceID, requesterID uuid.UUID) error
}

// AccountServiceInterface defines the interface for account management
type AccountServiceInterface interface {
	CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RequestPasswordReset(ctx context.Context, req *RequestPasswordResetRequest) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
	ListUsers(ctx context.Context, ownerID uuid.UUID) ([]UserResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, targetID, requesterID uuid.UUID, requesterRole models.Role) error
}

// DocumentServiceInterface defines the interface for workspace documents
type DocumentServiceInterface interface {
	Upload(ctx context.Context, userID, workspaceID uuid.UUID, files []UploadFile) ([]DocumentResponse, error)
	ListDocuments(ctx context.Context, userID, workspaceID uuid.UUID) ([]DocumentResponse, error)
	DeleteDocument(ctx context.Context, userID, documentID uuid.UUID) error
	SignedURL(ctx context.Context, userID uuid.UUID, key string) (string, error)
}

// ResearchServiceInterface defines the interface for followed cases
type ResearchServiceInterface interface {
	FollowCase(ctx context.Context, userID uuid.UUID, req *FollowCaseRequest) (*FollowedCaseResponse, error)
	ListFollowedCases(ctx context.Context, userID, workspaceID uuid.UUID, court string) ([]FollowedCaseResponse, error)
	UnfollowCase(ctx context.Context, userID uuid.UUID, req *UnfollowCaseRequest) error
}

// ExtractionServiceInterface defines the interface for extraction records
type ExtractionServiceInterface interface {
	SaveExtractions(ctx context.Context, userID uuid.UUID, req *SaveExtractionRequest) ([]ExtractionResponse, error)
	ListByWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) ([]ExtractionResponse, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*ExtractionResponse, error)
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// TokenIssuer signs identity tokens
type TokenIssuer interface {
	Issue(userID uuid.UUID, role models.Role, workspaceID *uuid.UUID) (string, error)
}

// TokenGenerator produces opaque single-use tokens
type TokenGenerator interface {
	Generate() (string, error)
}

// Mailer delivers transactional emails
type Mailer interface {
	SendInviteEmail(ctx context.Context, to, link string) error
	SendPasswordResetEmail(ctx context.Context, to, link string) error
}

// ObjectStore stores workspace files and signs download URLs
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	PresignGet(key string, ttl time.Duration) (string, error)
}

// Converter turns an uploaded file into the text copy stored next to it
type Converter interface {
	Convert(filename string, data []byte) (*ConvertedFile, error)
}
