package handlers_test

import (
	"net/http"
	"testing"

	"legal-workspace-backend/internal/api/handlers"
	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/mocks"
	"legal-workspace-backend/internal/service"
	"legal-workspace-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DocumentHandlerTestSuite defines the test suite for DocumentHandler
type DocumentHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockDocument *mocks.MockDocumentServiceInterface
	http         *testutils.HTTPTestSuite
	userID       uuid.UUID
	workspaceID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DocumentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDocument = mocks.NewMockDocumentServiceInterface(suite.ctrl)
	suite.userID = uuid.New()
	suite.workspaceID = uuid.New()

	handler := handlers.NewDocumentHandler(suite.mockDocument, 1024)
	suite.http = testutils.SetupHTTPTest()
	authed := suite.http.Router.Group("/", authenticateAs(suite.userID, models.RoleMember))
	authed.POST("/upload-documents", handler.UploadDocuments)
	authed.GET("/list-documents/:workspaceId", handler.ListDocuments)
	authed.DELETE("/delete-document/:fileId", handler.DeleteDocument)
	authed.GET("/get-signed-url", handler.GetSignedURL)
}

// TearDownTest cleans up after each test
func (suite *DocumentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestUploadDocuments tests that every file part reaches the service
func (suite *DocumentHandlerTestSuite) TestUploadDocuments() {
	suite.mockDocument.EXPECT().
		Upload(gomock.Any(), suite.userID, suite.workspaceID, []service.UploadFile{
			{Filename: "a.txt", Data: []byte("alpha")},
			{Filename: "b.md", Data: []byte("# beta")},
		}).
		Return([]service.DocumentResponse{{Filename: "a.txt"}, {Filename: "b.md"}}, nil)

	w := suite.http.MakeMultipartRequest(http.MethodPost, "/upload-documents",
		map[string]string{"workspace_id": suite.workspaceID.String()},
		[]testutils.MultipartFile{
			{Field: "files", Filename: "a.txt", Content: []byte("alpha")},
			{Field: "files", Filename: "b.md", Content: []byte("# beta")},
		})

	var got []service.DocumentResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	suite.Len(got, 2)
}

// TestUploadDocumentsRejections tests request problems caught before the service
func (suite *DocumentHandlerTestSuite) TestUploadDocumentsRejections() {
	suite.Run("missing workspace", func() {
		w := suite.http.MakeMultipartRequest(http.MethodPost, "/upload-documents", nil, []testutils.MultipartFile{
			{Field: "files", Filename: "a.txt", Content: []byte("alpha")},
		})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "workspace ID is required")
	})

	suite.Run("not multipart", func() {
		w := suite.http.MakeRequest(http.MethodPost, "/upload-documents", map[string]string{"workspace_id": suite.workspaceID.String()})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Invalid multipart form")
	})

	suite.Run("file too large", func() {
		w := suite.http.MakeMultipartRequest(http.MethodPost, "/upload-documents",
			map[string]string{"workspace_id": suite.workspaceID.String()},
			[]testutils.MultipartFile{{Field: "files", Filename: "big.pdf", Content: make([]byte, 4096)}})
		testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "big.pdf exceeds the upload size limit")
	})

	suite.Run("storage disabled", func() {
		suite.mockDocument.EXPECT().Upload(gomock.Any(), suite.userID, suite.workspaceID, gomock.Any()).Return(nil, apperrors.ErrStorageNotConfigured)

		w := suite.http.MakeMultipartRequest(http.MethodPost, "/upload-documents",
			map[string]string{"workspace_id": suite.workspaceID.String()},
			[]testutils.MultipartFile{{Field: "files", Filename: "a.txt", Content: []byte("a")}})
		suite.Equal(http.StatusServiceUnavailable, w.Code)
	})
}

// TestListAndDelete tests the path-addressed endpoints
func (suite *DocumentHandlerTestSuite) TestListAndDelete() {
	docID := uuid.New()

	suite.mockDocument.EXPECT().ListDocuments(gomock.Any(), suite.userID, suite.workspaceID).Return([]service.DocumentResponse{}, nil)
	w := suite.http.MakeRequest(http.MethodGet, "/list-documents/"+suite.workspaceID.String(), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())

	suite.mockDocument.EXPECT().DeleteDocument(gomock.Any(), suite.userID, docID).Return(apperrors.ErrDocumentNotFound)
	w = suite.http.MakeRequest(http.MethodDelete, "/delete-document/"+docID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "document not found")
}

// TestGetSignedURL tests the presign endpoint
func (suite *DocumentHandlerTestSuite) TestGetSignedURL() {
	suite.mockDocument.EXPECT().SignedURL(gomock.Any(), suite.userID, "workspace_x/original/a.txt").Return("https://signed", nil)

	w := suite.http.MakeRequest(http.MethodGet, "/get-signed-url?key=workspace_x/original/a.txt", nil)

	var got handlers.SignedURLResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("https://signed", got.URL)
}

// TestDocumentHandlerTestSuite runs the test suite
func TestDocumentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
