package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/logger"
	"legal-workspace-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	workspaceKeyPrefix    = "workspace_"
	profileImageKeyPrefix = "profile-images/"
	maxConcurrentDeletes  = 8
)

// DocumentConfig holds upload limits and URL lifetimes
type DocumentConfig struct {
	SignedURLTTL   time.Duration
	MaxUploadBytes int64
}

// DocumentService handles business logic for workspace documents
type DocumentService struct {
	repos     *repository.Repositories
	store     ObjectStore
	converter Converter
	config    DocumentConfig
}

// NewDocumentService creates a new document service. store may be nil when object storage is not configured.
func NewDocumentService(repos *repository.Repositories, store ObjectStore, converter Converter, config DocumentConfig) *DocumentService {
	return &DocumentService{
		repos:     repos,
		store:     store,
		converter: converter,
		config:    config,
	}
}

// UploadFile is one file of a multipart upload
type UploadFile struct {
	Filename string
	Data     []byte
}

// DocumentResponse represents a stored document
type DocumentResponse struct {
	ID             uuid.UUID `json:"id"`
	WorkspaceID    uuid.UUID `json:"workspace_id"`
	Filename       string    `json:"filename"`
	MimeType       string    `json:"mime_type"`
	SizeBytes      int64     `json:"size_bytes"`
	S3KeyOriginal  string    `json:"s3_key_original"`
	S3KeyConverted string    `json:"s3_key_converted"`
	UploadedBy     uuid.UUID `json:"uploaded_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func toDocumentResponse(d *models.Document) DocumentResponse {
	return DocumentResponse{
		ID:             d.ID,
		WorkspaceID:    d.WorkspaceID,
		Filename:       d.Filename,
		MimeType:       d.MimeType,
		SizeBytes:      d.SizeBytes,
		S3KeyOriginal:  d.S3KeyOriginal,
		S3KeyConverted: d.S3KeyConverted,
		UploadedBy:     d.UploadedBy,
		CreatedAt:      d.CreatedAt,
	}
}

// Upload stores the original and converted copy of every file and records them in the workspace
func (s *DocumentService) Upload(ctx context.Context, userID, workspaceID uuid.UUID, files []UploadFile) ([]DocumentResponse, error) {
	if s.store == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	if len(files) == 0 {
		return nil, apperrors.ErrEmptyUpload
	}
	if err := requireWorkspaceAccess(ctx, s.repos, workspaceID, userID); err != nil {
		return nil, err
	}

	for _, f := range files {
		if s.config.MaxUploadBytes > 0 && int64(len(f.Data)) > s.config.MaxUploadBytes {
			return nil, apperrors.NewValidationError("files", fmt.Sprintf("%s exceeds the upload size limit", f.Filename))
		}
	}

	responses := make([]DocumentResponse, 0, len(files))
	for _, f := range files {
		doc, err := s.storeFile(ctx, userID, workspaceID, f)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toDocumentResponse(doc))
	}
	return responses, nil
}

func (s *DocumentService) storeFile(ctx context.Context, userID, workspaceID uuid.UUID, f UploadFile) (*models.Document, error) {
	name := safeFilename(f.Filename)
	contentType, err := UploadContentType(name)
	if err != nil {
		return nil, err
	}
	converted, err := s.converter.Convert(name, f.Data)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		RecordModel: models.RecordModel{ID: uuid.New()},
		WorkspaceID: workspaceID,
		UploadedBy:  userID,
		Filename:    name,
		MimeType:    contentType,
		SizeBytes:   int64(len(f.Data)),
	}
	doc.S3KeyOriginal = documentKey(workspaceID, "original", doc.ID, name)
	doc.S3KeyConverted = documentKey(workspaceID, "converted", doc.ID, converted.Filename)

	var g errgroup.Group
	g.Go(func() error {
		return s.store.Put(ctx, doc.S3KeyOriginal, contentType, f.Data)
	})
	g.Go(func() error {
		return s.store.Put(ctx, doc.S3KeyConverted, converted.ContentType, converted.Data)
	})
	if err := g.Wait(); err != nil {
		deleteObjects(ctx, s.store, doc.ObjectKeys())
		return nil, fmt.Errorf("failed to store %s: %w", name, err)
	}

	if err := s.repos.Documents.Create(ctx, doc); err != nil {
		deleteObjects(ctx, s.store, doc.ObjectKeys())
		return nil, fmt.Errorf("failed to record document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns the documents of a workspace the user can access
func (s *DocumentService) ListDocuments(ctx context.Context, userID, workspaceID uuid.UUID) ([]DocumentResponse, error) {
	if err := requireWorkspaceAccess(ctx, s.repos, workspaceID, userID); err != nil {
		return nil, err
	}

	documents, err := s.repos.Documents.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, len(documents))
	for i := range documents {
		responses[i] = toDocumentResponse(&documents[i])
	}
	return responses, nil
}

// DeleteDocument removes the document row and then its stored copies
func (s *DocumentService) DeleteDocument(ctx context.Context, userID, documentID uuid.UUID) error {
	doc, err := s.repos.Documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	ok, err := s.repos.Workspaces.HasAccess(ctx, doc.WorkspaceID, userID)
	if err != nil {
		return fmt.Errorf("failed to check workspace access: %w", err)
	}
	if !ok {
		return apperrors.ErrDocumentNotFound
	}

	if err := s.repos.Documents.Delete(ctx, doc.ID); err != nil {
		return err
	}
	deleteObjects(ctx, s.store, doc.ObjectKeys())
	return nil
}

// SignedURL presigns a download of key. Workspace files require access to the workspace.
func (s *DocumentService) SignedURL(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	if s.store == nil {
		return "", apperrors.ErrStorageNotConfigured
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", apperrors.NewValidationError("key", "is required")
	}

	switch {
	case strings.HasPrefix(key, profileImageKeyPrefix):
	case strings.HasPrefix(key, workspaceKeyPrefix):
		workspaceID, ok := workspaceFromKey(key)
		if !ok {
			return "", apperrors.ErrDocumentNotFound
		}
		allowed, err := s.repos.Workspaces.HasAccess(ctx, workspaceID, userID)
		if err != nil {
			return "", fmt.Errorf("failed to check workspace access: %w", err)
		}
		if !allowed {
			return "", apperrors.ErrDocumentNotFound
		}
	default:
		return "", apperrors.ErrDocumentNotFound
	}

	return s.store.PresignGet(key, s.config.SignedURLTTL)
}

// requireWorkspaceAccess reports missing and inaccessible workspaces alike as not found
func requireWorkspaceAccess(ctx context.Context, repos *repository.Repositories, workspaceID, userID uuid.UUID) error {
	ok, err := repos.Workspaces.HasAccess(ctx, workspaceID, userID)
	if err != nil {
		return fmt.Errorf("failed to check workspace access: %w", err)
	}
	if !ok {
		return apperrors.ErrWorkspaceNotFound
	}
	return nil
}

func documentKey(workspaceID uuid.UUID, kind string, documentID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s%s/%s/%s_%s", workspaceKeyPrefix, workspaceID, kind, documentID, filename)
}

func workspaceFromKey(key string) (uuid.UUID, bool) {
	rest := strings.TrimPrefix(key, workspaceKeyPrefix)
	idPart, _, found := strings.Cut(rest, "/")
	if !found {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idPart)
	return id, err == nil
}

func safeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return "upload"
	}
	return name
}

// deleteObjects removes keys from the store concurrently. Failures are logged and otherwise ignored.
func deleteObjects(ctx context.Context, store ObjectStore, keys []string) {
	if store == nil || len(keys) == 0 {
		return
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentDeletes)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := store.Delete(ctx, key); err != nil {
				logger.WithContext(ctx).WithError(err).WithField("key", key).Error("Failed to delete stored object")
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WithContext(ctx).Warnf("Some of %d stored objects could not be deleted", len(keys))
	}
}
