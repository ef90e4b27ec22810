package handlers

import (
	"net/http"

	"legal-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResearchHandler handles HTTP requests for followed cases
type ResearchHandler struct {
	researchService service.ResearchServiceInterface
}

// NewResearchHandler creates a new research handler
func NewResearchHandler(researchService service.ResearchServiceInterface) *ResearchHandler {
	return &ResearchHandler{
		researchService: researchService,
	}
}

// FollowCase follows a court case in a workspace
// @Summary Follow a case
// @Tags research
// @Accept json
// @Produce json
// @Param case body service.FollowCaseRequest true "Case"
// @Success 201 {object} service.FollowedCaseResponse "Followed case"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Failure 409 {object} ErrorResponse "Case already followed"
// @Security BearerAuth
// @Router /follow-case [post]
func (h *ResearchHandler) FollowCase(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.FollowCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	followed, err := h.researchService.FollowCase(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, followed)
}

// GetFollowedCases lists the cases followed in a workspace
// @Summary List followed cases
// @Tags research
// @Produce json
// @Param workspace_id query string true "Workspace ID (UUID)"
// @Success 200 {array} service.FollowedCaseResponse "Followed cases"
// @Security BearerAuth
// @Router /get-followed-cases [get]
func (h *ResearchHandler) GetFollowedCases(c *gin.Context) {
	h.listFollowedCases(c, "")
}

// GetFollowedCasesByCourt lists the cases followed in a workspace for one court
// @Summary List followed cases by court
// @Tags research
// @Produce json
// @Param workspace_id query string true "Workspace ID (UUID)"
// @Param court query string true "Court name"
// @Success 200 {array} service.FollowedCaseResponse "Followed cases"
// @Security BearerAuth
// @Router /get-followed-cases-by-court [get]
func (h *ResearchHandler) GetFollowedCasesByCourt(c *gin.Context) {
	court := c.Query("court")
	if court == "" {
		respondBadRequest(c, "court is required")
		return
	}
	h.listFollowedCases(c, court)
}

func (h *ResearchHandler) listFollowedCases(c *gin.Context, court string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := uuidParam(c, c.Query("workspace_id"), "workspace ID")
	if !ok {
		return
	}

	cases, err := h.researchService.ListFollowedCases(c.Request.Context(), userID, workspaceID, court)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cases)
}

// UnfollowCase stops following a case
// @Summary Unfollow a case
// @Tags research
// @Accept json
// @Produce json
// @Param case body service.UnfollowCaseRequest true "Case"
// @Success 200 {object} MessageResponse "Case unfollowed"
// @Failure 404 {object} ErrorResponse "Case not found"
// @Security BearerAuth
// @Router /unfollow-case [delete]
func (h *ResearchHandler) UnfollowCase(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.UnfollowCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	if err := h.researchService.UnfollowCase(c.Request.Context(), userID, &req); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Case unfollowed successfully"})
}
