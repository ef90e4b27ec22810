package repository

import (
	"context"

	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var document models.Document
	if err := r.db.WithContext(ctx).First(&document, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, apperrors.ErrDocumentNotFound)
	}
	return &document, nil
}

// ListByWorkspace returns the documents of a workspace, newest first
func (r *DocumentRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

// ListByWorkspaces returns the documents of several workspaces
func (r *DocumentRepository) ListByWorkspaces(ctx context.Context, workspaceIDs []uuid.UUID) ([]models.Document, error) {
	if len(workspaceIDs) == 0 {
		return nil, nil
	}
	var documents []models.Document
	err := r.db.WithContext(ctx).Where("workspace_id IN ?", workspaceIDs).Find(&documents).Error
	return documents, err
}

// Delete deletes a document
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// DeleteByWorkspace removes every document row of the workspace
func (r *DocumentRepository) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Document{}, "workspace_id = ?", workspaceID).Error
}
