package handlers

import (
	"net/http"

	"legal-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler handles HTTP requests for invites and seat usage
type InviteHandler struct {
	inviteService service.InviteServiceInterface
	seatService   service.SeatServiceInterface
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteService service.InviteServiceInterface, seatService service.SeatServiceInterface) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
		seatService:   seatService,
	}
}

// SendInvite invites a new member to the owner's workspaces
// @Summary Send an invite
// @Description Create a pending invite for the email and send the acceptance link.
// @Description Fails with 403 when members plus pending invites already fill the owner's seats.
// @Tags invites
// @Accept json
// @Produce json
// @Param invite body service.SendInviteRequest true "Invitee email"
// @Success 201 {object} service.SendInviteResponse "Invite created"
// @Failure 400 {object} ErrorResponse "Invalid email or no workspace"
// @Failure 403 {object} ErrorResponse "Seat limit reached or not an owner"
// @Failure 409 {object} ErrorResponse "User or pending invite already exists"
// @Security BearerAuth
// @Router /send-invite [post]
func (h *InviteHandler) SendInvite(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.SendInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.inviteService.SendInvite(c.Request.Context(), ownerID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AcceptInvite creates the invitee's account
// @Summary Accept an invite
// @Description Create a member account from a pending invite and join every workspace of the inviting owner.
// @Tags invites
// @Accept json
// @Produce json
// @Param accept body service.AcceptInviteRequest true "Invite token and new password"
// @Success 201 {object} service.AcceptInviteResponse "Account created"
// @Failure 400 {object} ErrorResponse "Invalid or expired invite"
// @Failure 409 {object} ErrorResponse "User already exists"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /accept-invite [post]
func (h *InviteHandler) AcceptInvite(c *gin.Context) {
	var req service.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.inviteService.AcceptInvite(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListSentInvites lists the invites sent by the caller
// @Summary List sent invites
// @Description List every invite the caller sent, newest first, with its derived status.
// @Tags invites
// @Produce json
// @Success 200 {array} service.InviteResponse "Invites"
// @Security BearerAuth
// @Router /all-invites [get]
func (h *InviteHandler) ListSentInvites(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	invites, err := h.inviteService.ListSentInvites(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invites)
}

// RevokeInvite deletes an invite sent by the caller
// @Summary Revoke an invite
// @Description Delete an invite. Users who already accepted it are unaffected.
// @Tags invites
// @Produce json
// @Param inviteId path string true "Invite ID (UUID)"
// @Success 200 {object} MessageResponse "Invite revoked"
// @Failure 404 {object} ErrorResponse "Invite not found or not sent by the caller"
// @Security BearerAuth
// @Router /invite/{inviteId} [delete]
func (h *InviteHandler) RevokeInvite(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	inviteID, ok := uuidParam(c, c.Param("inviteId"), "invite ID")
	if !ok {
		return
	}

	if err := h.inviteService.RevokeInvite(c.Request.Context(), inviteID, requesterID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Invite revoked successfully"})
}

// SeatUsage reports the caller's seat consumption
// @Summary Seat usage
// @Description Members plus pending invites counted against the owner's seat limit.
// @Tags invites
// @Produce json
// @Success 200 {object} service.SeatUsageResponse "Seat usage"
// @Failure 403 {object} ErrorResponse "Not an owner"
// @Security BearerAuth
// @Router /seat-usage [get]
func (h *InviteHandler) SeatUsage(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	usage, err := h.seatService.ComputeSeatUsage(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, usage)
}
