//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	apperrors "legal-workspace-backend/internal/errors"

	"github.com/stretchr/testify/suite"
)

// InviteRepositoryTestSuite tests the InviteRepository
type InviteRepositoryTestSuite struct {
	integrationSuite
}

// TestCountPendingIgnoresUsedAndExpired tests the pending part of seat usage
func (suite *InviteRepositoryTestSuite) TestCountPendingIgnoresUsedAndExpired() {
	owner := suite.createOwner(5)
	ws := suite.createWorkspace(owner.ID, true)

	pending := suite.factories.Invite.Create(owner.ID, ws.ID, "p@test.com")
	used := suite.factories.Invite.Create(owner.ID, ws.ID, "u@test.com")
	used.Used = true
	expired := suite.factories.Invite.Expired(owner.ID, ws.ID, "e@test.com")
	suite.Require().NoError(suite.repos.Invites.Create(suite.ctx, pending))
	suite.Require().NoError(suite.repos.Invites.Create(suite.ctx, used))
	suite.Require().NoError(suite.repos.Invites.Create(suite.ctx, expired))

	count, err := suite.repos.Invites.CountPending(suite.ctx, owner.ID, time.Now())
	suite.NoError(err)
	suite.Equal(int64(1), count)

	has, err := suite.repos.Invites.HasPending(suite.ctx, owner.ID, "p@test.com", time.Now())
	suite.NoError(err)
	suite.True(has)
	has, err = suite.repos.Invites.HasPending(suite.ctx, owner.ID, "e@test.com", time.Now())
	suite.NoError(err)
	suite.False(has)
}

// TestLockActiveByToken tests single-use token lookup
func (suite *InviteRepositoryTestSuite) TestLockActiveByToken() {
	owner := suite.createOwner(5)
	ws := suite.createWorkspace(owner.ID, true)
	invite := suite.factories.Invite.Create(owner.ID, ws.ID, "a@test.com")
	expired := suite.factories.Invite.Expired(owner.ID, ws.ID, "b@test.com")
	suite.Require().NoError(suite.repos.Invites.Create(suite.ctx, invite))
	suite.Require().NoError(suite.repos.Invites.Create(suite.ctx, expired))

	found, err := suite.repos.Invites.LockActiveByToken(suite.ctx, invite.Token, time.Now())
	suite.NoError(err)
	suite.Equal(invite.ID, found.ID)

	suite.Require().NoError(suite.repos.Invites.MarkUsed(suite.ctx, invite.ID))
	_, err = suite.repos.Invites.LockActiveByToken(suite.ctx, invite.Token, time.Now())
	suite.ErrorIs(err, apperrors.ErrInvalidOrExpiredInvite)

	_, err = suite.repos.Invites.LockActiveByToken(suite.ctx, expired.Token, time.Now())
	suite.ErrorIs(err, apperrors.ErrInvalidOrExpiredInvite)
}

// TestDeleteSentBy tests that only the sender can revoke an invite
func (suite *InviteRepositoryTestSuite) TestDeleteSentBy() {
	owner := suite.createOwner(5)
	ws := suite.createWorkspace(owner.ID, true)
	other := suite.createOwner(5)
	invite := suite.factories.Invite.Create(owner.ID, ws.ID, "a@test.com")
	suite.Require().NoError(suite.repos.Invites.Create(suite.ctx, invite))

	err := suite.repos.Invites.DeleteSentBy(suite.ctx, invite.ID, other.ID)
	suite.ErrorIs(err, apperrors.ErrInviteNotFound)
	suite.Equal(int64(1), suite.countRows("invites"))

	suite.NoError(suite.repos.Invites.DeleteSentBy(suite.ctx, invite.ID, owner.ID))
	list, err := suite.repos.Invites.ListBySender(suite.ctx, owner.ID)
	suite.NoError(err)
	suite.Empty(list)
}

// TestListBySenderNewestFirst tests invite ordering
func (suite *InviteRepositoryTestSuite) TestListBySenderNewestFirst() {
	owner := suite.createOwner(5)
	ws := suite.createWorkspace(owner.ID, true)
	older := suite.factories.Invite.Create(owner.ID, ws.ID, "old@test.com")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := suite.factories.Invite.Create(owner.ID, ws.ID, "new@test.com")
	suite.Require().NoError(suite.repos.Invites.Create(suite.ctx, older))
	suite.Require().NoError(suite.repos.Invites.Create(suite.ctx, newer))

	list, err := suite.repos.Invites.ListBySender(suite.ctx, owner.ID)
	suite.NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal("new@test.com", list[0].Email)
	suite.Equal("old@test.com", list[1].Email)
}

// TestInviteRepositoryTestSuite runs the test suite
func TestInviteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InviteRepositoryTestSuite))
}
