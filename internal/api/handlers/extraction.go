package handlers

import (
	"net/http"

	"legal-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExtractionHandler handles HTTP requests for extraction records
type ExtractionHandler struct {
	extractionService service.ExtractionServiceInterface
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(extractionService service.ExtractionServiceInterface) *ExtractionHandler {
	return &ExtractionHandler{
		extractionService: extractionService,
	}
}

// SaveExtraction stores a batch of extraction results
// @Summary Save extractions
// @Description Store every extraction of the batch or none of them.
// @Tags extractions
// @Accept json
// @Produce json
// @Param batch body service.SaveExtractionRequest true "Extraction batch"
// @Success 201 {array} service.ExtractionResponse "Stored extractions"
// @Failure 400 {object} ErrorResponse "Invalid batch"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /save-extraction [post]
func (h *ExtractionHandler) SaveExtraction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.SaveExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	records, err := h.extractionService.SaveExtractions(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, records)
}

// ListByWorkspace lists the extractions of a workspace
// @Summary List extractions
// @Tags extractions
// @Produce json
// @Param workspaceId path string true "Workspace ID (UUID)"
// @Success 200 {array} service.ExtractionResponse "Extractions"
// @Security BearerAuth
// @Router /extracted-data-workspace/{workspaceId} [get]
func (h *ExtractionHandler) ListByWorkspace(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := uuidParam(c, c.Param("workspaceId"), "workspace ID")
	if !ok {
		return
	}

	records, err := h.extractionService.ListByWorkspace(c.Request.Context(), userID, workspaceID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetByID returns one extraction
// @Summary Get an extraction
// @Tags extractions
// @Produce json
// @Param id path string true "Extraction ID (UUID)"
// @Success 200 {object} service.ExtractionResponse "Extraction"
// @Failure 404 {object} ErrorResponse "Extraction not found"
// @Security BearerAuth
// @Router /extracted-data-id/{id} [get]
func (h *ExtractionHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, c.Param("id"), "extraction ID")
	if !ok {
		return
	}

	record, err := h.extractionService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
