package handlers

import (
	"errors"
	"net/http"
	"strings"

	"legal-workspace-backend/internal/auth"
	"legal-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for accounts and authentication
type AccountHandler struct {
	accountService service.AccountServiceInterface
	maxUploadBytes int64
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService service.AccountServiceInterface, maxUploadBytes int64) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateAdmin registers a new owner with a default workspace
// @Summary Create an owner account
// @Description Register an owner, create their default workspace and return a signed token.
// @Tags accounts
// @Accept json
// @Produce json
// @Param admin body service.CreateAdminRequest true "Owner credentials"
// @Success 201 {object} service.AuthResponse "Owner created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "User already exists"
// @Router /create-admin [post]
func (h *AccountHandler) CreateAdmin(c *gin.Context) {
	var req service.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.accountService.CreateAdmin(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login authenticates with email and password
// @Summary Log in
// @Description Exchange email and password for a signed identity token.
// @Tags accounts
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.AuthResponse "Logged in"
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.accountService.Login(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestPasswordReset emails a password reset link
// @Summary Request a password reset
// @Description Email a reset link. The response is the same whether or not the email is registered.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body service.RequestPasswordResetRequest true "Account email"
// @Success 200 {object} MessageResponse "Reset requested"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /request-reset-password [post]
func (h *AccountHandler) RequestPasswordReset(c *gin.Context) {
	var req service.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := h.accountService.RequestPasswordReset(c.Request.Context(), &req); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "If the email is registered, a reset link has been sent"})
}

// ResetPassword sets a new password with a reset token
// @Summary Reset password
// @Tags accounts
// @Accept json
// @Produce json
// @Param reset body service.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} MessageResponse "Password updated"
// @Failure 400 {object} ErrorResponse "Invalid or expired token"
// @Router /reset-password [post]
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := h.accountService.ResetPassword(c.Request.Context(), &req); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// ListUsers lists the users sharing the owner's workspaces
// @Summary List users
// @Description The owner and every user sharing one of the owner's workspaces, newest first.
// @Tags accounts
// @Produce json
// @Success 200 {array} service.UserResponse "Users"
// @Failure 403 {object} ErrorResponse "Not an owner"
// @Security BearerAuth
// @Router /users [get]
func (h *AccountHandler) ListUsers(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	users, err := h.accountService.ListUsers(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns the caller's profile
// @Summary Current user
// @Tags accounts
// @Produce json
// @Success 200 {object} service.UserResponse "Profile"
// @Security BearerAuth
// @Router /user [get]
func (h *AccountHandler) GetUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.accountService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the caller's name and profile picture
// @Summary Update profile
// @Description Accepts JSON {"name"} or multipart form with "name" and an optional "profile_picture" image.
// @Tags accounts
// @Accept json,mpfd
// @Produce json
// @Param name formData string false "Display name"
// @Param profile_picture formData file false "Profile picture"
// @Success 200 {object} service.UserResponse "Updated profile"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /user/profile [patch]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if name, present := c.GetPostForm("name"); present {
			req.Name = &name
		}
		header, err := c.FormFile("profile_picture")
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case err != nil:
			respondBadRequest(c, "Invalid multipart form")
			return
		default:
			picture, err := readUpload(header, h.maxUploadBytes)
			if err != nil {
				respondBadRequest(c, err.Error())
				return
			}
			req.Picture = &picture
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	user, err := h.accountService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser deletes an account
// @Summary Delete a user
// @Description Users may delete themselves. Owners may delete members of their workspaces.
// @Tags accounts
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} MessageResponse "User deleted"
// @Failure 403 {object} ErrorResponse "Not allowed to delete this user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{userId} [delete]
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := uuidParam(c, c.Param("userId"), "user ID")
	if !ok {
		return
	}
	role, _ := auth.GetRole(c)

	if err := h.accountService.DeleteUser(c.Request.Context(), targetID, requesterID, role); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}
