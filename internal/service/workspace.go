package service

import (
	"context"
	"fmt"
	"strings"

	"legal-workspace-backend/internal/database/models"
	"legal-workspace-backend/internal/logger"
	"legal-workspace-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// WorkspaceService handles business logic for workspaces and their membership edges
type WorkspaceService struct {
	repos     *repository.Repositories
	tx        repository.TransactorInterface
	store     ObjectStore
	validator *validator.Validate
}

// NewWorkspaceService creates a new workspace service. store may be nil when object storage is not configured.
func NewWorkspaceService(repos *repository.Repositories, tx repository.TransactorInterface, store ObjectStore, validator *validator.Validate) *WorkspaceService {
	return &WorkspaceService{
		repos:     repos,
		tx:        tx,
		store:     store,
		validator: validator,
	}
}

// CreateWorkspaceRequest represents the request to create a workspace
type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120" example:"Smith v. Jones"`
}

// WorkspaceResponse represents a workspace visible to a user
type WorkspaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
	OwnerID   uuid.UUID `json:"owner_id"`
}

func toWorkspaceResponse(ws *models.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		IsDefault: ws.IsDefault,
		OwnerID:   ws.OwnerID,
	}
}

// CreateWorkspace creates a workspace and links the owner and every member already sharing the owner's workspaces
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, ownerID uuid.UUID, req *CreateWorkspaceRequest) (*WorkspaceResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	workspace := &models.Workspace{Name: req.Name, OwnerID: ownerID}
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := repos.Workspaces.Create(ctx, workspace); err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}

		memberIDs, err := repos.Memberships.ListDistinctMemberIDs(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		edges := make([]models.UserWorkspace, 0, len(memberIDs)+1)
		edges = append(edges, models.UserWorkspace{UserID: ownerID, WorkspaceID: workspace.ID})
		for _, memberID := range memberIDs {
			edges = append(edges, models.UserWorkspace{UserID: memberID, WorkspaceID: workspace.ID})
		}
		if err := repos.Memberships.LinkMany(ctx, edges); err != nil {
			return fmt.Errorf("failed to link members: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := toWorkspaceResponse(workspace)
	return &response, nil
}

// ListUserWorkspaces returns the workspaces the user owns or is linked to, default first then by name
func (s *WorkspaceService) ListUserWorkspaces(ctx context.Context, userID uuid.UUID) ([]WorkspaceResponse, error) {
	workspaces, err := s.repos.Workspaces.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	responses := make([]WorkspaceResponse, len(workspaces))
	for i := range workspaces {
		responses[i] = toWorkspaceResponse(&workspaces[i])
	}
	return responses, nil
}

// DeleteWorkspace removes a workspace owned by requesterID together with its dependent rows.
// Stored files are removed after the transaction commits.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, workspaceID, requesterID uuid.UUID) error {
	var keys []string
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if _, err := repos.Workspaces.GetOwned(ctx, workspaceID, requesterID); err != nil {
			return err
		}

		var err error
		keys, err = purgeWorkspace(ctx, repos, workspaceID)
		return err
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("workspace_id", workspaceID).Info("Workspace deleted")
	deleteObjects(ctx, s.store, keys)
	return nil
}

// purgeWorkspace deletes the workspace and its dependents in foreign key order and returns the
// storage keys of its documents
func purgeWorkspace(ctx context.Context, repos *repository.Repositories, workspaceID uuid.UUID) ([]string, error) {
	documents, err := repos.Documents.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	keys := make([]string, 0, len(documents)*2)
	for i := range documents {
		keys = append(keys, documents[i].ObjectKeys()...)
	}

	steps := []struct {
		what string
		run  func(context.Context, uuid.UUID) error
	}{
		{"documents", repos.Documents.DeleteByWorkspace},
		{"followed cases", repos.FollowedCases.DeleteByWorkspace},
		{"extractions", repos.Extractions.DeleteByWorkspace},
		{"memberships", repos.Memberships.DeleteByWorkspace},
		{"invites", repos.Invites.DeleteByWorkspace},
		{"workspace", repos.Workspaces.Delete},
	}
	for _, step := range steps {
		if err := step.run(ctx, workspaceID); err != nil {
			return nil, fmt.Errorf("failed to delete %s: %w", step.what, err)
		}
	}
	return keys, nil
}
