package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenBytes is the entropy of invite and password reset tokens
const TokenBytes = 32

// RandomTokenGenerator produces opaque URL-safe single-use tokens
type RandomTokenGenerator struct{}

// NewRandomTokenGenerator creates a new generator
func NewRandomTokenGenerator() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}

// Generate returns TokenBytes random bytes encoded as unpadded base64url (43 characters)
func (g *RandomTokenGenerator) Generate() (string, error) {
	return GenerateToken(TokenBytes)
}

// GenerateToken returns n random bytes encoded as unpadded base64url
func GenerateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
