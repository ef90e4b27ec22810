package repository

import (
	"context"

	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExtractionRepository handles database operations for extraction records
type ExtractionRepository struct {
	db *gorm.DB
}

// NewExtractionRepository creates a new extraction repository
func NewExtractionRepository(db *gorm.DB) *ExtractionRepository {
	return &ExtractionRepository{db: db}
}

// CreateBatch inserts the extractions in one statement
func (r *ExtractionRepository) CreateBatch(ctx context.Context, extractions []models.Extraction) error {
	if len(extractions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&extractions).Error
}

// GetByID retrieves an extraction by ID
func (r *ExtractionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Extraction, error) {
	var extraction models.Extraction
	if err := r.db.WithContext(ctx).First(&extraction, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, apperrors.ErrExtractionNotFound)
	}
	return &extraction, nil
}

// ListByWorkspace returns extractions of the workspace, newest first
func (r *ExtractionRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Extraction, error) {
	var extractions []models.Extraction
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&extractions).Error
	return extractions, err
}

// DeleteByWorkspace removes every extraction of the workspace
func (r *ExtractionRepository) DeleteByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Extraction{}, "workspace_id = ?", workspaceID).Error
}
