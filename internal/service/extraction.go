package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExtractionService handles business logic for extracted document data
type ExtractionService struct {
	repos     *repository.Repositories
	tx        repository.TransactorInterface
	validator *validator.Validate
}

// NewExtractionService creates a new extraction service
func NewExtractionService(repos *repository.Repositories, tx repository.TransactorInterface, validator *validator.Validate) *ExtractionService {
	return &ExtractionService{
		repos:     repos,
		tx:        tx,
		validator: validator,
	}
}

// ExtractionItem is the extraction result for one file
type ExtractionItem struct {
	FileName      string          `json:"file_name" validate:"required,max=255"`
	ExtractedData json.RawMessage `json:"extracted_data" validate:"required" swaggertype:"object"`
	Usage         json.RawMessage `json:"usage,omitempty" swaggertype:"object"`
	RawResponse   string          `json:"raw_response,omitempty"`
}

// SaveExtractionRequest represents a batch of extraction results for a workspace
type SaveExtractionRequest struct {
	WorkspaceID uuid.UUID        `json:"workspace_id" validate:"required"`
	Agent       string           `json:"agent,omitempty" validate:"max=100"`
	Extractions []ExtractionItem `json:"extractions" validate:"required,min=1,dive"`
}

// ExtractionResponse represents a stored extraction
type ExtractionResponse struct {
	ID            uuid.UUID       `json:"id"`
	WorkspaceID   uuid.UUID       `json:"workspace_id"`
	FileName      string          `json:"file_name"`
	ExtractedData json.RawMessage `json:"extracted_data" swaggertype:"object"`
	Usage         json.RawMessage `json:"usage,omitempty" swaggertype:"object"`
	RawResponse   string          `json:"raw_response,omitempty"`
	Agent         string          `json:"agent"`
	CreatedBy     *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toExtractionResponse(e *models.Extraction) ExtractionResponse {
	return ExtractionResponse{
		ID:            e.ID,
		WorkspaceID:   e.WorkspaceID,
		FileName:      e.FileName,
		ExtractedData: json.RawMessage(e.ExtractedData),
		Usage:         json.RawMessage(e.Usage),
		RawResponse:   e.RawResponse,
		Agent:         e.Agent,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
	}
}

// SaveExtractions stores every item of the batch or none of them
func (s *ExtractionService) SaveExtractions(ctx context.Context, userID uuid.UUID, req *SaveExtractionRequest) ([]ExtractionResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireWorkspaceAccess(ctx, s.repos, req.WorkspaceID, userID); err != nil {
		return nil, err
	}

	agent := strings.TrimSpace(req.Agent)
	if agent == "" {
		agent = models.DefaultAgent
	}

	records := make([]models.Extraction, len(req.Extractions))
	for i, item := range req.Extractions {
		records[i] = models.Extraction{
			WorkspaceID:   req.WorkspaceID,
			FileName:      item.FileName,
			ExtractedData: datatypes.JSON(item.ExtractedData),
			RawResponse:   item.RawResponse,
			Agent:         agent,
			CreatedBy:     &userID,
		}
		if len(item.Usage) > 0 {
			records[i].Usage = datatypes.JSON(item.Usage)
		}
	}

	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Extractions.CreateBatch(ctx, records); err != nil {
			return fmt.Errorf("failed to save extractions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ExtractionResponse, len(records))
	for i := range records {
		responses[i] = toExtractionResponse(&records[i])
	}
	return responses, nil
}

// ListByWorkspace returns the extractions of a workspace the user can access, newest first
func (s *ExtractionService) ListByWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) ([]ExtractionResponse, error) {
	if err := requireWorkspaceAccess(ctx, s.repos, workspaceID, userID); err != nil {
		return nil, err
	}

	records, err := s.repos.Extractions.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list extractions: %w", err)
	}

	responses := make([]ExtractionResponse, len(records))
	for i := range records {
		responses[i] = toExtractionResponse(&records[i])
	}
	return responses, nil
}

// GetByID returns one extraction if the user can access its workspace
func (s *ExtractionService) GetByID(ctx context.Context, userID, id uuid.UUID) (*ExtractionResponse, error) {
	record, err := s.repos.Extractions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.repos.Workspaces.HasAccess(ctx, record.WorkspaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace access: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrExtractionNotFound
	}

	response := toExtractionResponse(record)
	return &response, nil
}
