package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legal-workspace-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:  "test-signing-key",
		TokenTTL:   time.Hour,
		BcryptCost: 4,
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		config := testConfig()
		config.TokenTTL = 0
		assert.Error(t, config.ValidateConfig())
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		config := testConfig()
		config.BcryptCost = 40
		assert.Error(t, config.ValidateConfig())
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewTokenService(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	workspaceID := uuid.New()

	t.Run("issue and validate", func(t *testing.T) {
		token, err := service.Issue(userID, models.RoleOwner, &workspaceID)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.Validate(token)
		require.NoError(t, err)
		parsed, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, userID, parsed)
		assert.Equal(t, models.RoleOwner, claims.Role)
		assert.Equal(t, workspaceID.String(), claims.WorkspaceID)
		assert.Equal(t, defaultIssuer, claims.Issuer)
	})

	t.Run("token without workspace", func(t *testing.T) {
		token, err := service.Issue(userID, models.RoleMember, nil)
		require.NoError(t, err)

		claims, err := service.Validate(token)
		require.NoError(t, err)
		assert.Empty(t, claims.WorkspaceID)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := testConfig()
		other.JWTSecret = "another-key"
		otherService, err := NewTokenService(other)
		require.NoError(t, err)

		token, err := otherService.Issue(userID, models.RoleOwner, nil)
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.Validate("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("rejects none algorithm", func(t *testing.T) {
		claims := &AuthClaims{
			Role: models.RoleOwner,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   userID.String(),
				Issuer:    defaultIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.Validate(token)
		assert.Error(t, err)
	})
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewTokenService(testConfig())
	require.NoError(t, err)

	issuedAt := time.Now().Add(-2 * time.Hour)
	service.now = func() time.Time { return issuedAt }
	token, err := service.Issue(uuid.New(), models.RoleMember, nil)
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.Validate(token)
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	ok, err := hasher.Compare(hash, "correct horse battery")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = hasher.Compare("not-a-bcrypt-hash", "x")
	assert.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	gen := NewRandomTokenGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, token, 43)
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.NotContains(t, token, "=")
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewTokenService(testConfig())
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		id, _ := GetUserID(c)
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role})
	})
	router.GET("/owner", middleware.RequireAuth(), middleware.RequireRole(models.RoleOwner), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	ownerToken, err := service.Issue(uuid.New(), models.RoleOwner, nil)
	require.NoError(t, err)
	memberToken, err := service.Issue(uuid.New(), models.RoleMember, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"not bearer", "/me", "Token abc", http.StatusUnauthorized},
		{"invalid token", "/me", "Bearer abc", http.StatusUnauthorized},
		{"valid token", "/me", "Bearer " + memberToken, http.StatusOK},
		{"member on owner route", "/owner", "Bearer " + memberToken, http.StatusForbidden},
		{"owner on owner route", "/owner", "Bearer " + ownerToken, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
