package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds the secret material and lifetimes used by the auth package.
// It is built from application config and passed explicitly to constructors.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" json:"-"`
	TokenTTL   time.Duration `yaml:"token_ttl" json:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost" json:"bcrypt_cost"`
	Issuer     string        `yaml:"issuer" json:"issuer"`
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
