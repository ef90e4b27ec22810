package handlers

import (
	"net/http"

	"legal-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkspaceHandler handles HTTP requests for workspaces
type WorkspaceHandler struct {
	workspaceService service.WorkspaceServiceInterface
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService service.WorkspaceServiceInterface) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
	}
}

// CreateWorkspaceResponse wraps a newly created workspace
type CreateWorkspaceResponse struct {
	Message   string                    `json:"message" example:"Workspace created successfully"`
	Workspace service.WorkspaceResponse `json:"workspace"`
}

// CreateWorkspace creates a workspace shared with all of the owner's members
// @Summary Create a workspace
// @Description Create a workspace owned by the caller. Every member already sharing one of the caller's workspaces joins it.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body service.CreateWorkspaceRequest true "Workspace name"
// @Success 201 {object} CreateWorkspaceResponse "Workspace created"
// @Failure 400 {object} ErrorResponse "Invalid name"
// @Failure 403 {object} ErrorResponse "Not an owner"
// @Security BearerAuth
// @Router /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), ownerID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateWorkspaceResponse{
		Message:   "Workspace created successfully",
		Workspace: *workspace,
	})
}

// ListUserWorkspaces lists the workspaces the caller owns or belongs to
// @Summary List workspaces
// @Description Owned and member workspaces, default first, then by name.
// @Tags workspaces
// @Produce json
// @Success 200 {array} service.WorkspaceResponse "Workspaces"
// @Security BearerAuth
// @Router /get-workspaces [get]
func (h *WorkspaceHandler) ListUserWorkspaces(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaceService.ListUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

// DeleteWorkspace deletes a workspace owned by the caller with everything in it
// @Summary Delete a workspace
// @Description Remove the workspace, its documents, followed cases, extractions, memberships and invites.
// @Tags workspaces
// @Produce json
// @Param workspaceId path string true "Workspace ID (UUID)"
// @Success 200 {object} MessageResponse "Workspace deleted"
// @Failure 404 {object} ErrorResponse "Workspace not found or not owned by the caller"
// @Security BearerAuth
// @Router /workspace/{workspaceId} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := uuidParam(c, c.Param("workspaceId"), "workspace ID")
	if !ok {
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), workspaceID, requesterID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Workspace deleted successfully"})
}
