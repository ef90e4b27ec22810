package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/logger"
	"legal-workspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InviteConfig holds the policy knobs of the invitation workflow
type InviteConfig struct {
	TTL              time.Duration
	FrontendURL      string
	DefaultSeatLimit int
	StrictSeatLimit  bool
}

// InviteService handles business logic for invites
type InviteService struct {
	repos     *repository.Repositories
	tx        repository.TransactorInterface
	tokens    TokenGenerator
	hasher    PasswordHasher
	mailer    Mailer
	validator *validator.Validate
	config    InviteConfig
	now       func() time.Time
}

// NewInviteService creates a new invite service
func NewInviteService(repos *repository.Repositories, tx repository.TransactorInterface, tokens TokenGenerator, hasher PasswordHasher, mailer Mailer, validator *validator.Validate, config InviteConfig) *InviteService {
	return &InviteService{
		repos:     repos,
		tx:        tx,
		tokens:    tokens,
		hasher:    hasher,
		mailer:    mailer,
		validator: validator,
		config:    config,
		now:       time.Now,
	}
}

// SendInviteRequest represents the request to invite a user
type SendInviteRequest struct {
	Email string `json:"email" validate:"required,email,max=255" example:"associate@lawfirm.com"`
}

// SendInviteResponse represents the response after an invite was created
type SendInviteResponse struct {
	Message   string    `json:"message"`
	InviteID  uuid.UUID `json:"invite_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	EmailSent bool      `json:"email_sent"`
}

// AcceptInviteRequest represents the request to accept an invite
type AcceptInviteRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AcceptInviteResponse represents the response after an invite was accepted
type AcceptInviteResponse struct {
	Message      string      `json:"message"`
	UserID       uuid.UUID   `json:"user_id"`
	WorkspaceIDs []uuid.UUID `json:"workspace_ids"`
}

// InviteResponse represents one invite as seen by its sender
type InviteResponse struct {
	ID          uuid.UUID           `json:"id"`
	Email       string              `json:"email"`
	Role        models.Role         `json:"role"`
	Status      models.InviteStatus `json:"status"`
	SentAt      time.Time           `json:"sent_at"`
	ExpiresAt   time.Time           `json:"expires_at"`
	WorkspaceID uuid.UUID           `json:"workspace_id"`
}

// SendInvite checks seat capacity and creates a pending invite, then emails the acceptance link.
// A delivery failure does not undo the invite; it is reported through EmailSent.
func (s *InviteService) SendInvite(ctx context.Context, ownerID uuid.UUID, req *SendInviteRequest) (*SendInviteResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)

	token, err := s.tokens.Generate()
	if err != nil {
		return nil, err
	}

	now := s.now()
	var invite *models.Invite
	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		owner, err := s.loadOwner(ctx, repos, ownerID)
		if err != nil {
			return err
		}
		if !owner.IsOwner() {
			return apperrors.ErrOwnerRequired
		}

		usage, err := computeSeatUsage(ctx, repos, owner, s.config.DefaultSeatLimit, now)
		if err != nil {
			return err
		}
		if usage.Exhausted() {
			return apperrors.NewCapacityExceededError(usage.SeatLimit)
		}

		exists, err := repos.Users.ExistsByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check existing user: %w", err)
		}
		if exists {
			return apperrors.ErrUserExists
		}

		pending, err := repos.Invites.HasPending(ctx, ownerID, email, now)
		if err != nil {
			return fmt.Errorf("failed to check pending invites: %w", err)
		}
		if pending {
			return apperrors.ErrPendingInviteExists
		}

		anchor, err := repos.Workspaces.GetAnchorForOwner(ctx, ownerID)
		if err != nil {
			return err
		}

		invite = &models.Invite{
			Email:       email,
			WorkspaceID: anchor.ID,
			Token:       token,
			Role:        models.RoleMember,
			SentBy:      ownerID,
			ExpiresAt:   now.Add(s.config.TTL),
		}
		if err := repos.Invites.Create(ctx, invite); err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	emailSent := true
	if err := s.mailer.SendInviteEmail(ctx, email, s.acceptLink(token)); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("invite_id", invite.ID).Error("Failed to send invite email")
		emailSent = false
	}

	return &SendInviteResponse{
		Message:   "Invite sent successfully",
		InviteID:  invite.ID,
		Email:     invite.Email,
		ExpiresAt: invite.ExpiresAt,
		EmailSent: emailSent,
	}, nil
}

// loadOwner locks the owner row when strict seat enforcement is on, serialising concurrent sends
func (s *InviteService) loadOwner(ctx context.Context, repos *repository.Repositories, ownerID uuid.UUID) (*models.User, error) {
	if s.config.StrictSeatLimit {
		return repos.Users.LockByID(ctx, ownerID)
	}
	return repos.Users.GetByID(ctx, ownerID)
}

func (s *InviteService) acceptLink(token string) string {
	return strings.TrimRight(s.config.FrontendURL, "/") + "/accept-invite?token=" + url.QueryEscape(token)
}

// AcceptInvite consumes the invite, creates the user and links it to every workspace of the inviter
func (s *InviteService) AcceptInvite(ctx context.Context, req *AcceptInviteRequest) (*AcceptInviteResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var user *models.User
	var workspaceIDs []uuid.UUID
	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		invite, err := repos.Invites.LockActiveByToken(ctx, req.Token, now)
		if err != nil {
			return err
		}

		user = &models.User{
			Email:        invite.Email,
			PasswordHash: hash,
			Role:         invite.Role,
			SeatLimit:    s.config.DefaultSeatLimit,
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}

		workspaces, err := repos.Workspaces.ListOwned(ctx, invite.SentBy)
		if err != nil {
			return fmt.Errorf("failed to list inviter workspaces: %w", err)
		}

		edges := make([]models.UserWorkspace, 0, len(workspaces))
		workspaceIDs = make([]uuid.UUID, 0, len(workspaces))
		for _, ws := range workspaces {
			edges = append(edges, models.UserWorkspace{UserID: user.ID, WorkspaceID: ws.ID})
			workspaceIDs = append(workspaceIDs, ws.ID)
		}
		if err := repos.Memberships.LinkMany(ctx, edges); err != nil {
			return fmt.Errorf("failed to link workspaces: %w", err)
		}

		if err := repos.Invites.MarkUsed(ctx, invite.ID); err != nil {
			return fmt.Errorf("failed to mark invite used: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"new_user_id": user.ID,
		"workspaces":  len(workspaceIDs),
	}).Info("Invite accepted")

	return &AcceptInviteResponse{
		Message:      "Account created successfully",
		UserID:       user.ID,
		WorkspaceIDs: workspaceIDs,
	}, nil
}

// ListSentInvites returns the invites sent by ownerID, newest first, with their derived status
func (s *InviteService) ListSentInvites(ctx context.Context, ownerID uuid.UUID) ([]InviteResponse, error) {
	invites, err := s.repos.Invites.ListBySender(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	now := s.now()
	responses := make([]InviteResponse, len(invites))
	for i := range invites {
		responses[i] = InviteResponse{
			ID:          invites[i].ID,
			Email:       invites[i].Email,
			Role:        invites[i].Role,
			Status:      invites[i].Status(now),
			SentAt:      invites[i].CreatedAt,
			ExpiresAt:   invites[i].ExpiresAt,
			WorkspaceID: invites[i].WorkspaceID,
		}
	}
	return responses, nil
}

// RevokeInvite deletes an invite sent by requesterID. Users who already accepted it keep their access.
func (s *InviteService) RevokeInvite(ctx context.Context, inviteID, requesterID uuid.UUID) error {
	return s.repos.Invites.DeleteSentBy(ctx, inviteID, requesterID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
