package handlers

import (
	"net/http"

	"legal-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// multipartMemory is how much of a multipart body is held in memory before spilling to disk
const multipartMemory = 32 << 20

// DocumentHandler handles HTTP requests for workspace documents
type DocumentHandler struct {
	documentService service.DocumentServiceInterface
	maxUploadBytes  int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService service.DocumentServiceInterface, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// SignedURLResponse carries a presigned download URL
type SignedURLResponse struct {
	URL string `json:"url"`
}

// UploadDocuments stores files in a workspace
// @Summary Upload documents
// @Description Store each file and its converted text copy in the workspace.
// @Tags documents
// @Accept mpfd
// @Produce json
// @Param workspace_id formData string true "Workspace ID (UUID)"
// @Param files formData file true "Files (txt, md, pdf, docx)"
// @Success 201 {array} service.DocumentResponse "Stored documents"
// @Failure 400 {object} ErrorResponse "Missing files or unsupported type"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /upload-documents [post]
func (h *DocumentHandler) UploadDocuments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		respondBadRequest(c, "Invalid multipart form")
		return
	}
	workspaceID, ok := uuidParam(c, c.PostForm("workspace_id"), "workspace ID")
	if !ok {
		return
	}

	headers := c.Request.MultipartForm.File["files"]
	files := make([]service.UploadFile, 0, len(headers))
	for _, header := range headers {
		file, err := readUpload(header, h.maxUploadBytes)
		if err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		files = append(files, file)
	}

	documents, err := h.documentService.Upload(c.Request.Context(), userID, workspaceID, files)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, documents)
}

// ListDocuments lists the documents of a workspace
// @Summary List documents
// @Tags documents
// @Produce json
// @Param workspaceId path string true "Workspace ID (UUID)"
// @Success 200 {array} service.DocumentResponse "Documents"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Security BearerAuth
// @Router /list-documents/{workspaceId} [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	workspaceID, ok := uuidParam(c, c.Param("workspaceId"), "workspace ID")
	if !ok {
		return
	}

	documents, err := h.documentService.ListDocuments(c.Request.Context(), userID, workspaceID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

// DeleteDocument deletes a document and its stored copies
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param fileId path string true "Document ID (UUID)"
// @Success 200 {object} MessageResponse "Document deleted"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Security BearerAuth
// @Router /delete-document/{fileId} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	documentID, ok := uuidParam(c, c.Param("fileId"), "document ID")
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), userID, documentID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Document deleted successfully"})
}

// GetSignedURL presigns a download of a stored object
// @Summary Presigned download URL
// @Tags documents
// @Produce json
// @Param key query string true "Object key"
// @Success 200 {object} SignedURLResponse "Presigned URL"
// @Failure 404 {object} ErrorResponse "Object not found"
// @Security BearerAuth
// @Router /get-signed-url [get]
func (h *DocumentHandler) GetSignedURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	url, err := h.documentService.SignedURL(c.Request.Context(), userID, c.Query("key"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignedURLResponse{URL: url})
}
