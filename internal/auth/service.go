package auth

import (
	"fmt"
	"time"

	"legal-workspace-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultIssuer = "legal-workspace-backend"

// AuthClaims represents JWT token claims. The subject holds the user id.
type AuthClaims struct {
	Role                 models.Role `json:"role" example:"Owner"`
	WorkspaceID          string      `json:"workspace_id,omitempty" example:"3f1c2a9e-6b8d-4c1e-9a55-0d2b7c7e4f10"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID parses the subject claim
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService issues and verifies signed identity tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenService creates a new token service
func NewTokenService(config *AuthConfig) (*TokenService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	issuer := config.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}
	return &TokenService{
		secret: []byte(config.JWTSecret),
		ttl:    config.TokenTTL,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the user. workspaceID may be nil for users without a workspace.
func (s *TokenService) Issue(userID uuid.UUID, role models.Role, workspaceID *uuid.UUID) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   userID.String(),
		},
	}
	if workspaceID != nil {
		claims.WorkspaceID = workspaceID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a token
func (s *TokenService) Validate(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if _, err := claims.UserID(); err != nil {
			return nil, fmt.Errorf("invalid subject: %w", err)
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
