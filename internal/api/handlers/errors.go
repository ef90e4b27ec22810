package handlers

import (
	"errors"
	"net/http"

	"legal-workspace-backend/internal/auth"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse represents a plain confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Invite revoked successfully"`
}

const internalErrorMessage = "Internal server error"

// respondWithError maps a service error to its HTTP status. Unknown errors are logged and hidden.
func respondWithError(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("Request failed with internal error")
		c.JSON(status, ErrorResponse{Error: internalErrorMessage})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		c.JSON(status, ErrorResponse{Error: validationErrs[0].Field() + " failed " + validationErrs[0].Tag() + " validation"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case apperrors.IsInvalidToken(err):
		return http.StatusBadRequest
	case apperrors.IsCapacityExceeded(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		return http.StatusConflict
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondBadRequest reports a malformed request body or parameter
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// currentUserID returns the authenticated user, answering 401 when there is none
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return uuid.Nil, false
	}
	return userID, true
}

// uuidParam parses a UUID path or query value, answering 400 when it is malformed
func uuidParam(c *gin.Context, value, label string) (uuid.UUID, bool) {
	if value == "" {
		respondBadRequest(c, label+" is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		respondBadRequest(c, "Invalid "+label)
		return uuid.Nil, false
	}
	return id, true
}
