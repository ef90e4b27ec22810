package service_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/mocks"
	"legal-workspace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DocumentServiceTestSuite defines the test suite for DocumentService
type DocumentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mocks           *repoMocks
	mockStore       *mocks.MockObjectStore
	documentService *service.DocumentService
	ctx             context.Context
	userID          uuid.UUID
	workspaceID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mocks = newRepoMocks(suite.ctrl)
	suite.mockStore = mocks.NewMockObjectStore(suite.ctrl)
	suite.documentService = service.NewDocumentService(suite.mocks.repos, suite.mockStore, service.NewTextConverter(), service.DocumentConfig{
		SignedURLTTL:   time.Hour,
		MaxUploadBytes: 1024,
	})
	suite.ctx = context.Background()
	suite.userID = uuid.New()
	suite.workspaceID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *DocumentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func buildDocx(paragraphs ...string) []byte {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/document.xml")
	_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body.String() + `</w:body></w:document>`))
	_ = zw.Close()
	return buf.Bytes()
}

// TestUploadStoresBothCopies tests the keys and the converted copy of a docx upload
func (suite *DocumentServiceTestSuite) TestUploadStoresBothCopies() {
	docx := buildDocx("IN THE HIGH COURT", "Petition No. 12")
	stored := map[string][]byte{}
	var mu sync.Mutex

	suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(true, nil)
	suite.mockStore.EXPECT().Put(suite.ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key, _ string, data []byte) error {
			mu.Lock()
			defer mu.Unlock()
			stored[key] = data
			return nil
		}).Times(2)
	var created *models.Document
	suite.mocks.documents.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, doc *models.Document) error {
			created = doc
			return nil
		})

	resp, err := suite.documentService.Upload(suite.ctx, suite.userID, suite.workspaceID, []service.UploadFile{
		{Filename: "../petition.docx", Data: docx},
	})

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Require().NotNil(created)
	prefix := "workspace_" + suite.workspaceID.String()
	suite.Equal(prefix+"/original/"+created.ID.String()+"_petition.docx", created.S3KeyOriginal)
	suite.Equal(prefix+"/converted/"+created.ID.String()+"_petition.md", created.S3KeyConverted)
	suite.Equal("petition.docx", resp[0].Filename)
	suite.Equal(int64(len(docx)), resp[0].SizeBytes)
	suite.Equal(docx, stored[created.S3KeyOriginal])
	suite.Equal("IN THE HIGH COURT\n\nPetition No. 12", string(stored[created.S3KeyConverted]))
}

// TestUploadRejections tests the checks that run before anything is stored
func (suite *DocumentServiceTestSuite) TestUploadRejections() {
	suite.Run("no files", func() {
		_, err := suite.documentService.Upload(suite.ctx, suite.userID, suite.workspaceID, nil)
		suite.ErrorIs(err, apperrors.ErrEmptyUpload)
	})

	suite.Run("no access", func() {
		suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(false, nil)

		_, err := suite.documentService.Upload(suite.ctx, suite.userID, suite.workspaceID, []service.UploadFile{{Filename: "a.txt", Data: []byte("a")}})
		suite.ErrorIs(err, apperrors.ErrWorkspaceNotFound)
	})

	suite.Run("too large", func() {
		suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(true, nil)

		_, err := suite.documentService.Upload(suite.ctx, suite.userID, suite.workspaceID, []service.UploadFile{{Filename: "a.txt", Data: make([]byte, 2048)}})
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("unsupported type", func() {
		suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(true, nil)

		_, err := suite.documentService.Upload(suite.ctx, suite.userID, suite.workspaceID, []service.UploadFile{{Filename: "a.exe", Data: []byte("MZ")}})
		suite.True(apperrors.IsValidation(err))
	})

	suite.Run("storage not configured", func() {
		svc := service.NewDocumentService(suite.mocks.repos, nil, service.NewTextConverter(), service.DocumentConfig{})
		_, err := svc.Upload(suite.ctx, suite.userID, suite.workspaceID, []service.UploadFile{{Filename: "a.txt", Data: []byte("a")}})
		suite.ErrorIs(err, apperrors.ErrStorageNotConfigured)
	})
}

// TestUploadStorageFailureCleansUp tests that a failed put leaves no row behind
func (suite *DocumentServiceTestSuite) TestUploadStorageFailureCleansUp() {
	putErr := errors.New("bucket not found")
	suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(true, nil)
	suite.mockStore.EXPECT().Put(suite.ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(putErr).Times(2)
	suite.mockStore.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := suite.documentService.Upload(suite.ctx, suite.userID, suite.workspaceID, []service.UploadFile{{Filename: "a.txt", Data: []byte("a")}})

	suite.ErrorIs(err, putErr)
}

// TestListDocuments tests workspace scoping
func (suite *DocumentServiceTestSuite) TestListDocuments() {
	docs := []models.Document{{RecordModel: models.RecordModel{ID: uuid.New()}, WorkspaceID: suite.workspaceID, Filename: "a.txt"}}
	suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(true, nil)
	suite.mocks.documents.EXPECT().ListByWorkspace(suite.ctx, suite.workspaceID).Return(docs, nil)

	resp, err := suite.documentService.ListDocuments(suite.ctx, suite.userID, suite.workspaceID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal(docs[0].ID, resp[0].ID)
}

// TestDeleteDocument tests access checks and object removal
func (suite *DocumentServiceTestSuite) TestDeleteDocument() {
	doc := &models.Document{
		RecordModel:    models.RecordModel{ID: uuid.New()},
		WorkspaceID:    suite.workspaceID,
		S3KeyOriginal:  "orig",
		S3KeyConverted: "conv",
	}

	suite.Run("no access", func() {
		suite.mocks.documents.EXPECT().GetByID(suite.ctx, doc.ID).Return(doc, nil)
		suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(false, nil)

		suite.ErrorIs(suite.documentService.DeleteDocument(suite.ctx, suite.userID, doc.ID), apperrors.ErrDocumentNotFound)
	})

	suite.Run("success", func() {
		suite.mocks.documents.EXPECT().GetByID(suite.ctx, doc.ID).Return(doc, nil)
		suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(true, nil)
		suite.mocks.documents.EXPECT().Delete(suite.ctx, doc.ID).Return(nil)
		suite.mockStore.EXPECT().Delete(gomock.Any(), "orig").Return(nil)
		suite.mockStore.EXPECT().Delete(gomock.Any(), "conv").Return(nil)

		suite.NoError(suite.documentService.DeleteDocument(suite.ctx, suite.userID, doc.ID))
	})
}

// TestSignedURL tests key authorization
func (suite *DocumentServiceTestSuite) TestSignedURL() {
	workspaceKey := "workspace_" + suite.workspaceID.String() + "/original/x_a.txt"

	suite.Run("workspace member", func() {
		suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(true, nil)
		suite.mockStore.EXPECT().PresignGet(workspaceKey, time.Hour).Return("https://signed", nil)

		url, err := suite.documentService.SignedURL(suite.ctx, suite.userID, workspaceKey)
		suite.NoError(err)
		suite.Equal("https://signed", url)
	})

	suite.Run("outsider", func() {
		suite.mocks.workspaces.EXPECT().HasAccess(suite.ctx, suite.workspaceID, suite.userID).Return(false, nil)

		_, err := suite.documentService.SignedURL(suite.ctx, suite.userID, workspaceKey)
		suite.ErrorIs(err, apperrors.ErrDocumentNotFound)
	})

	suite.Run("profile image", func() {
		suite.mockStore.EXPECT().PresignGet("profile-images/u/p.png", time.Hour).Return("https://signed", nil)

		_, err := suite.documentService.SignedURL(suite.ctx, suite.userID, "profile-images/u/p.png")
		suite.NoError(err)
	})

	suite.Run("other keys", func() {
		for _, key := range []string{"secrets/db.env", "workspace_not-a-uuid/x"} {
			_, err := suite.documentService.SignedURL(suite.ctx, suite.userID, key)
			suite.ErrorIs(err, apperrors.ErrDocumentNotFound)
		}
		_, err := suite.documentService.SignedURL(suite.ctx, suite.userID, " ")
		suite.True(apperrors.IsValidation(err))
	})
}

// TestDocumentServiceTestSuite runs the test suite
func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
