//go:build integration
// +build integration

package repository

import (
	"testing"

	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	integrationSuite
}

// TestLinkIsIdempotent tests that linking the same pair twice keeps one edge
func (suite *MembershipRepositoryTestSuite) TestLinkIsIdempotent() {
	owner := suite.createOwner(5)
	ws := suite.createWorkspace(owner.ID, true)
	member := suite.createMember()

	suite.link(member.ID, ws.ID)
	suite.link(member.ID, ws.ID)

	suite.Equal(int64(2), suite.countRows("user_workspace")) // owner + member
}

// TestLinkManySkipsExistingEdges tests duplicate-tolerant batch linking
func (suite *MembershipRepositoryTestSuite) TestLinkManySkipsExistingEdges() {
	owner := suite.createOwner(5)
	ws1 := suite.createWorkspace(owner.ID, true)
	ws2 := suite.createWorkspace(owner.ID, false)
	member := suite.createMember()
	suite.link(member.ID, ws1.ID)

	err := suite.repos.Memberships.LinkMany(suite.ctx, []models.UserWorkspace{
		{UserID: member.ID, WorkspaceID: ws1.ID},
		{UserID: member.ID, WorkspaceID: ws2.ID},
	})
	suite.NoError(err)
	suite.Equal(int64(4), suite.countRows("user_workspace"))

	suite.NoError(suite.repos.Memberships.LinkMany(suite.ctx, nil))
}

// TestCountDistinctMembersExcludesOwner tests the seat count across several workspaces
func (suite *MembershipRepositoryTestSuite) TestCountDistinctMembersExcludesOwner() {
	owner := suite.createOwner(5)
	ws1 := suite.createWorkspace(owner.ID, true)
	ws2 := suite.createWorkspace(owner.ID, false)
	a := suite.createMember()
	b := suite.createMember()
	suite.link(a.ID, ws1.ID)
	suite.link(a.ID, ws2.ID)
	suite.link(b.ID, ws2.ID)

	// another owner's members are not counted
	other := suite.createOwner(5)
	otherWS := suite.createWorkspace(other.ID, true)
	suite.link(suite.createMember().ID, otherWS.ID)

	count, err := suite.repos.Memberships.CountDistinctMembers(suite.ctx, owner.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	ids, err := suite.repos.Memberships.ListDistinctMemberIDs(suite.ctx, owner.ID)
	suite.NoError(err)
	suite.ElementsMatch([]uuid.UUID{a.ID, b.ID}, ids)
}

// TestIsMemberOfOwner tests membership lookup across an owner's workspaces
func (suite *MembershipRepositoryTestSuite) TestIsMemberOfOwner() {
	owner := suite.createOwner(5)
	ws := suite.createWorkspace(owner.ID, true)
	member := suite.createMember()
	stranger := suite.createMember()
	suite.link(member.ID, ws.ID)

	ok, err := suite.repos.Memberships.IsMemberOfOwner(suite.ctx, member.ID, owner.ID)
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.repos.Memberships.IsMemberOfOwner(suite.ctx, stranger.ID, owner.ID)
	suite.NoError(err)
	suite.False(ok)
}

// TestFirstWorkspaceID tests the workspace carried in login tokens
func (suite *MembershipRepositoryTestSuite) TestFirstWorkspaceID() {
	owner := suite.createOwner(5)
	ws := suite.createWorkspace(owner.ID, true)

	id, err := suite.repos.Memberships.FirstWorkspaceID(suite.ctx, owner.ID)
	suite.NoError(err)
	suite.Require().NotNil(id)
	suite.Equal(ws.ID, *id)

	loner := suite.createMember()
	id, err = suite.repos.Memberships.FirstWorkspaceID(suite.ctx, loner.ID)
	suite.NoError(err)
	suite.Nil(id)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
