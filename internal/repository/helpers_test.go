//go:build integration
// +build integration

package repository

import (
	"context"

	"legal-workspace-backend/internal/database/models"
	"legal-workspace-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// integrationSuite carries the shared database, repositories and factories
type integrationSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         *Repositories
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *integrationSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *integrationSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *integrationSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *integrationSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *integrationSuite) createOwner(seatLimit int) *models.User {
	owner := suite.factories.User.Owner(seatLimit)
	suite.Require().NoError(suite.repos.Users.Create(suite.ctx, owner))
	return owner
}

func (suite *integrationSuite) createMember() *models.User {
	member := suite.factories.User.Create()
	suite.Require().NoError(suite.repos.Users.Create(suite.ctx, member))
	return member
}

func (suite *integrationSuite) createWorkspace(ownerID uuid.UUID, isDefault bool) *models.Workspace {
	ws := suite.factories.Workspace.Create(ownerID)
	ws.IsDefault = isDefault
	suite.Require().NoError(suite.repos.Workspaces.Create(suite.ctx, ws))
	suite.Require().NoError(suite.repos.Memberships.Link(suite.ctx, ownerID, ws.ID))
	return ws
}

func (suite *integrationSuite) link(userID, workspaceID uuid.UUID) {
	suite.Require().NoError(suite.repos.Memberships.Link(suite.ctx, userID, workspaceID))
}

func (suite *integrationSuite) countRows(table string) int64 {
	var n int64
	suite.Require().NoError(suite.baseTestSuite.DB.Table(table).Count(&n).Error)
	return n
}
