package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository bound to the same database handle
type Repositories struct {
	Users          UserRepositoryInterface
	Workspaces     WorkspaceRepositoryInterface
	Memberships    MembershipRepositoryInterface
	Invites        InviteRepositoryInterface
	PasswordResets PasswordResetRepositoryInterface
	Documents      DocumentRepositoryInterface
	FollowedCases  FollowedCaseRepositoryInterface
	Extractions    ExtractionRepositoryInterface
}

// NewRepositories creates every repository on db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(db),
		Workspaces:     NewWorkspaceRepository(db),
		Memberships:    NewMembershipRepository(db),
		Invites:        NewInviteRepository(db),
		PasswordResets: NewPasswordResetRepository(db),
		Documents:      NewDocumentRepository(db),
		FollowedCases:  NewFollowedCaseRepository(db),
		Extractions:    NewExtractionRepository(db),
	}
}

// Transactor runs units of work inside gorm transactions
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction runs fn with repositories bound to a new transaction
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
