package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/logger"
	"legal-workspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var profileImageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// AccountConfig holds account and credential policy
type AccountConfig struct {
	DefaultSeatLimit int
	PasswordResetTTL time.Duration
	SignedURLTTL     time.Duration
	FrontendURL      string
}

// AccountService handles owner bootstrap, login, password resets and user management
type AccountService struct {
	repos       *repository.Repositories
	tx          repository.TransactorInterface
	hasher      PasswordHasher
	issuer      TokenIssuer
	resetTokens TokenGenerator
	mailer      Mailer
	store       ObjectStore
	validator   *validator.Validate
	config      AccountConfig
	now         func() time.Time
}

// NewAccountService creates a new account service. store may be nil when object storage is not configured.
func NewAccountService(
	repos *repository.Repositories,
	tx repository.TransactorInterface,
	hasher PasswordHasher,
	issuer TokenIssuer,
	resetTokens TokenGenerator,
	mailer Mailer,
	store ObjectStore,
	validator *validator.Validate,
	config AccountConfig,
) *AccountService {
	return &AccountService{
		repos:       repos,
		tx:          tx,
		hasher:      hasher,
		issuer:      issuer,
		resetTokens: resetTokens,
		mailer:      mailer,
		store:       store,
		validator:   validator,
		config:      config,
		now:         time.Now,
	}
}

// CreateAdminRequest represents the request to bootstrap an owner account
type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"partner@lawfirm.com"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name,omitempty" validate:"max=200"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RequestPasswordResetRequest represents the request to start a password reset
type RequestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the request to set a new password with a reset token
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// UpdateProfileRequest carries the optional profile fields to change
type UpdateProfileRequest struct {
	Name    *string     `json:"name,omitempty" validate:"omitempty,max=200"`
	Picture *UploadFile `json:"-"`
}

// UserResponse represents a user
type UserResponse struct {
	ID                uuid.UUID   `json:"id"`
	Email             string      `json:"email"`
	Role              models.Role `json:"role"`
	SeatLimit         int         `json:"seat_limit,omitempty"`
	Name              *string     `json:"name,omitempty"`
	ProfilePicture    *string     `json:"profile_picture,omitempty"`
	ProfilePictureURL string      `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}

// AuthResponse carries a signed identity token
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func toUserResponse(u *models.User) UserResponse {
	response := UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Role:           u.Role,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
	if u.IsOwner() {
		response.SeatLimit = u.SeatLimit
	}
	return response
}

// CreateAdmin creates an owner with a default workspace and returns a signed token for it
func (s *AccountService) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*AuthResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	owner := &models.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         models.RoleOwner,
		SeatLimit:    s.config.DefaultSeatLimit,
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		owner.Name = &name
	}
	workspace := &models.Workspace{Name: models.DefaultWorkspaceName, IsDefault: true}

	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Users.Create(ctx, owner); err != nil {
			return err
		}

		workspace.OwnerID = owner.ID
		if err := repos.Workspaces.Create(ctx, workspace); err != nil {
			return fmt.Errorf("failed to create default workspace: %w", err)
		}
		if err := repos.Memberships.Link(ctx, owner.ID, workspace.ID); err != nil {
			return fmt.Errorf("failed to link default workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(owner.ID, owner.Role, &workspace.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Message: "Admin account created successfully",
		Token:   token,
		User:    toUserResponse(owner),
	}, nil
}

// Login verifies the credentials and returns a token carrying the user's first workspace
func (s *AccountService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.repos.Users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	workspaceID, err := s.repos.Memberships.FirstWorkspaceID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up workspace: %w", err)
	}

	token, err := s.issuer.Issue(user.ID, user.Role, workspaceID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserResponse(user),
	}, nil
}

// RequestPasswordReset emails a reset link to a known address. Unknown addresses succeed silently.
func (s *AccountService) RequestPasswordReset(ctx context.Context, req *RequestPasswordResetRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	email := normalizeEmail(req.Email)

	exists, err := s.repos.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if !exists {
		logger.WithContext(ctx).Debug("Password reset requested for unknown email")
		return nil
	}

	token, err := s.resetTokens.Generate()
	if err != nil {
		return err
	}

	reset := &models.PasswordReset{
		Email:     email,
		Token:     token,
		ExpiresAt: s.now().Add(s.config.PasswordResetTTL),
	}
	if err := s.repos.PasswordResets.Create(ctx, reset); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := strings.TrimRight(s.config.FrontendURL, "/") + "/reset-password?token=" + token
	if err := s.mailer.SendPasswordResetEmail(ctx, email, link); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// ResetPassword consumes the reset token and replaces the password hash
func (s *AccountService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	now := s.now()
	return s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		reset, err := repos.PasswordResets.LockActiveByToken(ctx, req.Token, now)
		if err != nil {
			return err
		}
		if err := repos.Users.UpdatePasswordHashByEmail(ctx, reset.Email, hash); err != nil {
			return err
		}
		return repos.PasswordResets.MarkUsed(ctx, reset.ID)
	})
}

// ListUsers returns the owner and every user sharing one of the owner's workspaces, newest first
func (s *AccountService) ListUsers(ctx context.Context, ownerID uuid.UUID) ([]UserResponse, error) {
	users, err := s.repos.Users.ListSharingOwnerWorkspaces(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = toUserResponse(&users[i])
	}
	return responses, nil
}

// GetUser returns the user's profile with a signed profile picture URL when one is stored
func (s *AccountService) GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := toUserResponse(user)
	s.attachPictureURL(ctx, &response)
	return &response, nil
}

func (s *AccountService) attachPictureURL(ctx context.Context, response *UserResponse) {
	if s.store == nil || response.ProfilePicture == nil || *response.ProfilePicture == "" {
		return
	}
	url, err := s.store.PresignGet(*response.ProfilePicture, s.config.SignedURLTTL)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to sign profile picture URL")
		return
	}
	response.ProfilePictureURL = url
}

// UpdateProfile changes the name and, when a picture is given, stores it and records its key
func (s *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	current, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var pictureKey *string
	if req.Picture != nil {
		key, err := s.storeProfilePicture(ctx, userID, req.Picture)
		if err != nil {
			return nil, err
		}
		pictureKey = &key
	}

	user, err := s.repos.Users.UpdateProfile(ctx, userID, req.Name, pictureKey)
	if err != nil {
		if pictureKey != nil {
			deleteObjects(ctx, s.store, []string{*pictureKey})
		}
		return nil, err
	}

	if pictureKey != nil && current.ProfilePicture != nil && *current.ProfilePicture != *pictureKey {
		deleteObjects(ctx, s.store, []string{*current.ProfilePicture})
	}

	response := toUserResponse(user)
	s.attachPictureURL(ctx, &response)
	return &response, nil
}

func (s *AccountService) storeProfilePicture(ctx context.Context, userID uuid.UUID, picture *UploadFile) (string, error) {
	if s.store == nil {
		return "", apperrors.ErrStorageNotConfigured
	}
	if len(picture.Data) == 0 {
		return "", apperrors.NewValidationError("profile_picture", "is empty")
	}

	name := safeFilename(picture.Filename)
	contentType, ok := profileImageTypes[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return "", apperrors.NewValidationError("profile_picture", "must be a png, jpeg, gif or webp image")
	}

	key := fmt.Sprintf("%s%s/%s_%s", profileImageKeyPrefix, userID, uuid.New(), name)
	if err := s.store.Put(ctx, key, contentType, picture.Data); err != nil {
		return "", fmt.Errorf("failed to store profile picture: %w", err)
	}
	return key, nil
}

// DeleteUser removes a user with everything that references it. Users may delete themselves;
// owners may delete members of their own workspaces.
func (s *AccountService) DeleteUser(ctx context.Context, targetID, requesterID uuid.UUID, requesterRole models.Role) error {
	if targetID != requesterID {
		if requesterRole != models.RoleOwner {
			return apperrors.ErrUserDeleteForbidden
		}
		member, err := s.repos.Memberships.IsMemberOfOwner(ctx, targetID, requesterID)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if !member {
			return apperrors.ErrUserDeleteForbidden
		}
	}

	var keys []string
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		user, err := repos.Users.GetByID(ctx, targetID)
		if err != nil {
			return err
		}

		owned, err := repos.Workspaces.ListOwned(ctx, targetID)
		if err != nil {
			return fmt.Errorf("failed to list owned workspaces: %w", err)
		}
		for _, ws := range owned {
			wsKeys, err := purgeWorkspace(ctx, repos, ws.ID)
			if err != nil {
				return err
			}
			keys = append(keys, wsKeys...)
		}

		if err := repos.Memberships.DeleteByUser(ctx, targetID); err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}
		if err := repos.Invites.DeleteByEmail(ctx, user.Email); err != nil {
			return fmt.Errorf("failed to delete received invites: %w", err)
		}
		if err := repos.Invites.DeleteAllSentBy(ctx, targetID); err != nil {
			return fmt.Errorf("failed to delete sent invites: %w", err)
		}
		if err := repos.PasswordResets.DeleteByEmail(ctx, user.Email); err != nil {
			return fmt.Errorf("failed to delete reset tokens: %w", err)
		}
		if user.ProfilePicture != nil && *user.ProfilePicture != "" {
			keys = append(keys, *user.ProfilePicture)
		}
		return repos.Users.Delete(ctx, targetID)
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("deleted_user_id", targetID).Info("User deleted")
	deleteObjects(ctx, s.store, keys)
	return nil
}
