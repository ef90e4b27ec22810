package service_test

import (
	"context"

	"legal-workspace-backend/internal/mocks"
	"legal-workspace-backend/internal/repository"

	"go.uber.org/mock/gomock"
)

// repoMocks bundles a mock for every repository behind a Repositories value
type repoMocks struct {
	users          *mocks.MockUserRepositoryInterface
	workspaces     *mocks.MockWorkspaceRepositoryInterface
	memberships    *mocks.MockMembershipRepositoryInterface
	invites        *mocks.MockInviteRepositoryInterface
	passwordResets *mocks.MockPasswordResetRepositoryInterface
	documents      *mocks.MockDocumentRepositoryInterface
	followedCases  *mocks.MockFollowedCaseRepositoryInterface
	extractions    *mocks.MockExtractionRepositoryInterface
	tx             *mocks.MockTransactorInterface
	repos          *repository.Repositories
}

func newRepoMocks(ctrl *gomock.Controller) *repoMocks {
	m := &repoMocks{
		users:          mocks.NewMockUserRepositoryInterface(ctrl),
		workspaces:     mocks.NewMockWorkspaceRepositoryInterface(ctrl),
		memberships:    mocks.NewMockMembershipRepositoryInterface(ctrl),
		invites:        mocks.NewMockInviteRepositoryInterface(ctrl),
		passwordResets: mocks.NewMockPasswordResetRepositoryInterface(ctrl),
		documents:      mocks.NewMockDocumentRepositoryInterface(ctrl),
		followedCases:  mocks.NewMockFollowedCaseRepositoryInterface(ctrl),
		extractions:    mocks.NewMockExtractionRepositoryInterface(ctrl),
		tx:             mocks.NewMockTransactorInterface(ctrl),
	}
	m.repos = &repository.Repositories{
		Users:          m.users,
		Workspaces:     m.workspaces,
		Memberships:    m.memberships,
		Invites:        m.invites,
		PasswordResets: m.passwordResets,
		Documents:      m.documents,
		FollowedCases:  m.followedCases,
		Extractions:    m.extractions,
	}
	return m
}

// expectTransaction makes the mock transactor run the unit of work against the same mocks.
// The returned error is whatever the unit of work returns, as with a real rollback.
func (m *repoMocks) expectTransaction() *gomock.Call {
	return m.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repos *repository.Repositories) error) error {
			return fn(m.repos)
		})
}
