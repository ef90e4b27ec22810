package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"legal-workspace-backend/internal/database/models"
	"legal-workspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResearchService handles business logic for followed court cases
type ResearchService struct {
	repos     *repository.Repositories
	validator *validator.Validate
}

// NewResearchService creates a new research service
func NewResearchService(repos *repository.Repositories, validator *validator.Validate) *ResearchService {
	return &ResearchService{
		repos:     repos,
		validator: validator,
	}
}

// FollowCaseRequest represents the request to follow a case in a workspace
type FollowCaseRequest struct {
	WorkspaceID uuid.UUID       `json:"workspace_id" validate:"required"`
	CaseID      string          `json:"case_id" validate:"required,max=100"`
	CNR         string          `json:"cnr,omitempty" validate:"max=100"`
	Title       string          `json:"title,omitempty" validate:"max=500"`
	CaseNumber  string          `json:"case_number,omitempty" validate:"max=100"`
	DiaryNumber string          `json:"diary_number,omitempty" validate:"max=100"`
	Petitioner  string          `json:"petitioner,omitempty"`
	Respondent  string          `json:"respondent,omitempty"`
	Status      string          `json:"status,omitempty" validate:"max=100"`
	Court       string          `json:"court" validate:"required,max=200"`
	Details     json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}

// UnfollowCaseRequest represents the request to stop following a case
type UnfollowCaseRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id" validate:"required"`
	CaseID      string    `json:"case_id" validate:"required"`
}

// FollowedCaseResponse represents a followed case
type FollowedCaseResponse struct {
	ID          uuid.UUID       `json:"id"`
	WorkspaceID uuid.UUID       `json:"workspace_id"`
	CaseID      string          `json:"case_id"`
	CNR         string          `json:"cnr,omitempty"`
	Title       string          `json:"title,omitempty"`
	CaseNumber  string          `json:"case_number,omitempty"`
	DiaryNumber string          `json:"diary_number,omitempty"`
	Petitioner  string          `json:"petitioner,omitempty"`
	Respondent  string          `json:"respondent,omitempty"`
	Status      string          `json:"status,omitempty"`
	Court       string          `json:"court"`
	Details     json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	FollowedBy  *uuid.UUID      `json:"followed_by,omitempty"`
	FollowedAt  time.Time       `json:"followed_at"`
}

func toFollowedCaseResponse(fc *models.FollowedCase) FollowedCaseResponse {
	return FollowedCaseResponse{
		ID:          fc.ID,
		WorkspaceID: fc.WorkspaceID,
		CaseID:      fc.CaseID,
		CNR:         fc.CNR,
		Title:       fc.Title,
		CaseNumber:  fc.CaseNumber,
		DiaryNumber: fc.DiaryNumber,
		Petitioner:  fc.Petitioner,
		Respondent:  fc.Respondent,
		Status:      fc.Status,
		Court:       fc.Court,
		Details:     json.RawMessage(fc.Details),
		FollowedBy:  fc.FollowedBy,
		FollowedAt:  fc.FollowedAt,
	}
}

// FollowCase records a case as followed in a workspace the user can access
func (s *ResearchService) FollowCase(ctx context.Context, userID uuid.UUID, req *FollowCaseRequest) (*FollowedCaseResponse, error) {
	req.CaseID = strings.TrimSpace(req.CaseID)
	req.Court = strings.TrimSpace(req.Court)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := requireWorkspaceAccess(ctx, s.repos, req.WorkspaceID, userID); err != nil {
		return nil, err
	}

	followed := &models.FollowedCase{
		WorkspaceID: req.WorkspaceID,
		CaseID:      req.CaseID,
		CNR:         req.CNR,
		Title:       req.Title,
		CaseNumber:  req.CaseNumber,
		DiaryNumber: req.DiaryNumber,
		Petitioner:  req.Petitioner,
		Respondent:  req.Respondent,
		Status:      req.Status,
		Court:       req.Court,
		FollowedBy:  &userID,
	}
	if len(req.Details) > 0 {
		followed.Details = datatypes.JSON(req.Details)
	}

	if err := s.repos.FollowedCases.Create(ctx, followed); err != nil {
		return nil, err
	}

	response := toFollowedCaseResponse(followed)
	return &response, nil
}

// ListFollowedCases returns the cases followed in a workspace, optionally filtered by court
func (s *ResearchService) ListFollowedCases(ctx context.Context, userID, workspaceID uuid.UUID, court string) ([]FollowedCaseResponse, error) {
	if err := requireWorkspaceAccess(ctx, s.repos, workspaceID, userID); err != nil {
		return nil, err
	}

	cases, err := s.repos.FollowedCases.ListByWorkspace(ctx, workspaceID, strings.TrimSpace(court))
	if err != nil {
		return nil, fmt.Errorf("failed to list followed cases: %w", err)
	}

	responses := make([]FollowedCaseResponse, len(cases))
	for i := range cases {
		responses[i] = toFollowedCaseResponse(&cases[i])
	}
	return responses, nil
}

// UnfollowCase stops following a case in the workspace
func (s *ResearchService) UnfollowCase(ctx context.Context, userID uuid.UUID, req *UnfollowCaseRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	if err := requireWorkspaceAccess(ctx, s.repos, req.WorkspaceID, userID); err != nil {
		return err
	}
	return s.repos.FollowedCases.DeleteByCaseID(ctx, req.WorkspaceID, req.CaseID)
}
