package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an entity that does not exist or is not visible to the caller.
// Callers never learn which of the two applies.
type NotFoundError struct {
	Entity string
	Reason string // e.g. "or you are not authorized to delete it"
}

func (e *NotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s not found %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// CapacityExceededError is returned when an owner has no free seats left
type CapacityExceededError struct {
	Limit int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Seat limit reached (%d users)", e.Limit)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrWorkspaceNotFound  = &NotFoundError{Entity: "workspace", Reason: "or you are not authorized to access it"}
	ErrInviteNotFound     = &NotFoundError{Entity: "invite", Reason: "or you are not authorized to delete it"}
	ErrDocumentNotFound   = &NotFoundError{Entity: "document"}
	ErrCaseNotFound       = &NotFoundError{Entity: "case"}
	ErrExtractionNotFound = &NotFoundError{Entity: "extraction"}
)

// Already Exists Errors
var (
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrPendingInviteExists = &AlreadyExistsError{Entity: "pending invite", Context: "for this email"}
	ErrCaseAlreadyFollowed = &AlreadyExistsError{Entity: "followed case", Context: "in this workspace"}
)

// Token Errors
var (
	ErrInvalidOrExpiredInvite     = errors.New("Invalid or expired invite")
	ErrInvalidOrExpiredResetToken = errors.New("Invalid or expired token")
)

// Business Logic Errors
var (
	ErrNoOwnedWorkspace = &ValidationError{Message: "No workspaces found for admin"}
	ErrEmptyUpload      = &ValidationError{Field: "files", Message: "at least one file is required"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "Invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "Invalid or expired token"}
)

// Authorization Errors
var (
	ErrOwnerRequired       = &AuthorizationError{Message: "Access denied. Admins only."}
	ErrUserDeleteForbidden = &AuthorizationError{Message: "Not authorized to delete this user."}
)

// Configuration Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "object storage is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsCapacityExceeded checks if an error is a CapacityExceededError
func IsCapacityExceeded(err error) bool {
	var capErr *CapacityExceededError
	return errors.As(err, &capErr)
}

// IsInvalidToken reports whether err is one of the single-use token failures
func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidOrExpiredInvite) || errors.Is(err, ErrInvalidOrExpiredResetToken)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCapacityExceededError creates a new CapacityExceededError
func NewCapacityExceededError(limit int) error {
	return &CapacityExceededError{Limit: limit}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
