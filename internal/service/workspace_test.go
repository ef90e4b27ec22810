package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"legal-workspace-backend/internal/database/models"
	apperrors "legal-workspace-backend/internal/errors"
	"legal-workspace-backend/internal/mocks"
	"legal-workspace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkspaceServiceTestSuite defines the test suite for WorkspaceService
type WorkspaceServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mocks            *repoMocks
	mockStore        *mocks.MockObjectStore
	workspaceService *service.WorkspaceService
	ctx              context.Context
	ownerID          uuid.UUID
}

// SetupTest sets up the test suite
func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mocks = newRepoMocks(suite.ctrl)
	suite.mockStore = mocks.NewMockObjectStore(suite.ctrl)
	suite.workspaceService = service.NewWorkspaceService(suite.mocks.repos, suite.mocks.tx, suite.mockStore, service.NewValidator())
	suite.ctx = context.Background()
	suite.ownerID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *WorkspaceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateWorkspacePropagatesMembers tests that existing members join the new workspace
func (suite *WorkspaceServiceTestSuite) TestCreateWorkspacePropagatesMembers() {
	memberA, memberB := uuid.New(), uuid.New()
	wsID := uuid.New()

	suite.mocks.expectTransaction()
	suite.mocks.workspaces.EXPECT().Create(suite.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ws *models.Workspace) error {
			suite.Equal("Appeals", ws.Name)
			suite.Equal(suite.ownerID, ws.OwnerID)
			suite.False(ws.IsDefault)
			ws.ID = wsID
			return nil
		})
	suite.mocks.memberships.EXPECT().ListDistinctMemberIDs(suite.ctx, suite.ownerID).Return([]uuid.UUID{memberA, memberB}, nil)
	suite.mocks.memberships.EXPECT().LinkMany(suite.ctx, []models.UserWorkspace{
		{UserID: suite.ownerID, WorkspaceID: wsID},
		{UserID: memberA, WorkspaceID: wsID},
		{UserID: memberB, WorkspaceID: wsID},
	}).Return(nil)

	resp, err := suite.workspaceService.CreateWorkspace(suite.ctx, suite.ownerID, &service.CreateWorkspaceRequest{Name: "  Appeals "})

	suite.Require().NoError(err)
	suite.Equal(wsID, resp.ID)
	suite.Equal("Appeals", resp.Name)
	suite.Equal(suite.ownerID, resp.OwnerID)
}

// TestCreateWorkspaceRollsBack tests that a failed link aborts the transaction
func (suite *WorkspaceServiceTestSuite) TestCreateWorkspaceRollsBack() {
	linkErr := errors.New("deadlock detected")
	suite.mocks.expectTransaction()
	suite.mocks.workspaces.EXPECT().Create(suite.ctx, gomock.Any()).Return(nil)
	suite.mocks.memberships.EXPECT().ListDistinctMemberIDs(suite.ctx, suite.ownerID).Return(nil, nil)
	suite.mocks.memberships.EXPECT().LinkMany(suite.ctx, gomock.Any()).Return(linkErr)

	resp, err := suite.workspaceService.CreateWorkspace(suite.ctx, suite.ownerID, &service.CreateWorkspaceRequest{Name: "Appeals"})

	suite.Nil(resp)
	suite.ErrorIs(err, linkErr)
}

// TestCreateWorkspaceValidation tests the name rules
func (suite *WorkspaceServiceTestSuite) TestCreateWorkspaceValidation() {
	for _, name := range []string{"", "   ", strings.Repeat("x", 121)} {
		_, err := suite.workspaceService.CreateWorkspace(suite.ctx, suite.ownerID, &service.CreateWorkspaceRequest{Name: name})
		suite.True(apperrors.IsValidation(err))
	}
}

// TestListUserWorkspaces tests the response mapping
func (suite *WorkspaceServiceTestSuite) TestListUserWorkspaces() {
	userID := uuid.New()
	workspaces := []models.Workspace{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: models.DefaultWorkspaceName, OwnerID: suite.ownerID, IsDefault: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Appeals", OwnerID: suite.ownerID},
	}
	suite.mocks.workspaces.EXPECT().ListForUser(suite.ctx, userID).Return(workspaces, nil)

	resp, err := suite.workspaceService.ListUserWorkspaces(suite.ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	suite.True(resp[0].IsDefault)
	suite.Equal(workspaces[1].ID, resp[1].ID)
	suite.Equal(suite.ownerID, resp[1].OwnerID)
}

// TestDeleteWorkspaceNotOwned tests that nothing is deleted for a non-owner
func (suite *WorkspaceServiceTestSuite) TestDeleteWorkspaceNotOwned() {
	wsID := uuid.New()
	suite.mocks.expectTransaction()
	suite.mocks.workspaces.EXPECT().GetOwned(suite.ctx, wsID, suite.ownerID).Return(nil, apperrors.ErrWorkspaceNotFound)

	err := suite.workspaceService.DeleteWorkspace(suite.ctx, wsID, suite.ownerID)

	suite.ErrorIs(err, apperrors.ErrWorkspaceNotFound)
	suite.True(apperrors.IsNotFound(err))
}

// TestDeleteWorkspaceCascade tests dependency order and the removal of stored files
func (suite *WorkspaceServiceTestSuite) TestDeleteWorkspaceCascade() {
	wsID := uuid.New()
	docs := []models.Document{
		{WorkspaceID: wsID, S3KeyOriginal: "workspace_x/original/a.docx", S3KeyConverted: "workspace_x/converted/a.md"},
		{WorkspaceID: wsID, S3KeyOriginal: "workspace_x/original/b.txt", S3KeyConverted: "workspace_x/converted/b.txt"},
	}

	suite.mocks.expectTransaction()
	gomock.InOrder(
		suite.mocks.workspaces.EXPECT().GetOwned(suite.ctx, wsID, suite.ownerID).Return(&models.Workspace{}, nil),
		suite.mocks.documents.EXPECT().ListByWorkspace(suite.ctx, wsID).Return(docs, nil),
		suite.mocks.documents.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.followedCases.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.extractions.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.memberships.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.invites.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil),
		suite.mocks.workspaces.EXPECT().Delete(suite.ctx, wsID).Return(nil),
	)
	for _, key := range []string{
		"workspace_x/original/a.docx", "workspace_x/converted/a.md",
		"workspace_x/original/b.txt", "workspace_x/converted/b.txt",
	} {
		suite.mockStore.EXPECT().Delete(gomock.Any(), key).Return(nil)
	}

	suite.NoError(suite.workspaceService.DeleteWorkspace(suite.ctx, wsID, suite.ownerID))
}

// TestDeleteWorkspaceStorageFailure tests that storage errors do not fail the delete
func (suite *WorkspaceServiceTestSuite) TestDeleteWorkspaceStorageFailure() {
	wsID := uuid.New()
	suite.mocks.expectTransaction()
	suite.mocks.workspaces.EXPECT().GetOwned(suite.ctx, wsID, suite.ownerID).Return(&models.Workspace{}, nil)
	suite.mocks.documents.EXPECT().ListByWorkspace(suite.ctx, wsID).Return([]models.Document{{S3KeyOriginal: "k1"}}, nil)
	suite.mocks.documents.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil)
	suite.mocks.followedCases.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil)
	suite.mocks.extractions.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil)
	suite.mocks.memberships.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil)
	suite.mocks.invites.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil)
	suite.mocks.workspaces.EXPECT().Delete(suite.ctx, wsID).Return(nil)
	suite.mockStore.EXPECT().Delete(gomock.Any(), "k1").Return(errors.New("access denied"))

	suite.NoError(suite.workspaceService.DeleteWorkspace(suite.ctx, wsID, suite.ownerID))
}

// TestDeleteWorkspaceMidwayFailure tests that a failing step stops the cascade
func (suite *WorkspaceServiceTestSuite) TestDeleteWorkspaceMidwayFailure() {
	wsID := uuid.New()
	dbErr := errors.New("foreign key violation")
	suite.mocks.expectTransaction()
	suite.mocks.workspaces.EXPECT().GetOwned(suite.ctx, wsID, suite.ownerID).Return(&models.Workspace{}, nil)
	suite.mocks.documents.EXPECT().ListByWorkspace(suite.ctx, wsID).Return(nil, nil)
	suite.mocks.documents.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(nil)
	suite.mocks.followedCases.EXPECT().DeleteByWorkspace(suite.ctx, wsID).Return(dbErr)

	err := suite.workspaceService.DeleteWorkspace(suite.ctx, wsID, suite.ownerID)

	suite.ErrorIs(err, dbErr)
	suite.Contains(err.Error(), "followed cases")
}

// TestWorkspaceServiceTestSuite runs the test suite
func TestWorkspaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}
