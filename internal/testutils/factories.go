package testutils

import (
	"fmt"
	"time"

	"legal-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserFactory provides methods to create test User data
type UserFactory struct {
	seq int
}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test Member with a unique email
func (f *UserFactory) Create() *models.User {
	f.seq++
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("user%d-%s@test.com", f.seq, id.String()[:8]),
		PasswordHash: "$2a$04$invalidhashfortestsonly..........................",
		Role:         models.RoleMember,
		SeatLimit:    5,
	}
}

// Owner creates a test Owner with the given seat limit
func (f *UserFactory) Owner(seatLimit int) *models.User {
	user := f.Create()
	user.Role = models.RoleOwner
	user.SeatLimit = seatLimit
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WorkspaceFactory provides methods to create test Workspace data
type WorkspaceFactory struct{}

// NewWorkspaceFactory creates a new WorkspaceFactory
func NewWorkspaceFactory() *WorkspaceFactory {
	return &WorkspaceFactory{}
}

// Create creates a non-default workspace owned by ownerID
func (f *WorkspaceFactory) Create(ownerID uuid.UUID) *models.Workspace {
	return &models.Workspace{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Workspace",
		OwnerID: ownerID,
	}
}

// Default creates the default workspace of ownerID
func (f *WorkspaceFactory) Default(ownerID uuid.UUID) *models.Workspace {
	ws := f.Create(ownerID)
	ws.Name = models.DefaultWorkspaceName
	ws.IsDefault = true
	return ws
}

// InviteFactory provides methods to create test Invite data
type InviteFactory struct{}

// NewInviteFactory creates a new InviteFactory
func NewInviteFactory() *InviteFactory {
	return &InviteFactory{}
}

// Create creates a pending invite from senderID anchored to workspaceID
func (f *InviteFactory) Create(senderID, workspaceID uuid.UUID, email string) *models.Invite {
	id := uuid.New()
	return &models.Invite{
		RecordModel: models.RecordModel{ID: id, CreatedAt: time.Now()},
		Email:       email,
		WorkspaceID: workspaceID,
		Token:       "tok-" + id.String(),
		Role:        models.RoleMember,
		SentBy:      senderID,
		ExpiresAt:   time.Now().Add(24 * time.Hour),
	}
}

// Expired creates an invite whose expiry has passed
func (f *InviteFactory) Expired(senderID, workspaceID uuid.UUID, email string) *models.Invite {
	invite := f.Create(senderID, workspaceID, email)
	invite.ExpiresAt = time.Now().Add(-time.Hour)
	return invite
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a document in workspaceID uploaded by uploaderID
func (f *DocumentFactory) Create(workspaceID, uploaderID uuid.UUID) *models.Document {
	id := uuid.New()
	return &models.Document{
		RecordModel:    models.RecordModel{ID: id, CreatedAt: time.Now()},
		WorkspaceID:    workspaceID,
		UploadedBy:     uploaderID,
		Filename:       "brief.docx",
		S3KeyOriginal:  fmt.Sprintf("workspace_%s/original/%s_brief.docx", workspaceID, id),
		S3KeyConverted: fmt.Sprintf("workspace_%s/converted/%s_brief.md", workspaceID, id),
		MimeType:       "text/markdown",
		SizeBytes:      42,
	}
}

// FollowedCaseFactory provides methods to create test FollowedCase data
type FollowedCaseFactory struct{}

// NewFollowedCaseFactory creates a new FollowedCaseFactory
func NewFollowedCaseFactory() *FollowedCaseFactory {
	return &FollowedCaseFactory{}
}

// Create creates a followed case in workspaceID
func (f *FollowedCaseFactory) Create(workspaceID uuid.UUID, caseID, court string) *models.FollowedCase {
	return &models.FollowedCase{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		CaseID:      caseID,
		Title:       "State v. Example",
		Court:       court,
		Status:      "Pending",
		Details:     datatypes.JSON(`{"bench":"2"}`),
		FollowedAt:  time.Now(),
	}
}

// ExtractionFactory provides methods to create test Extraction data
type ExtractionFactory struct{}

// NewExtractionFactory creates a new ExtractionFactory
func NewExtractionFactory() *ExtractionFactory {
	return &ExtractionFactory{}
}

// Create creates an extraction record in workspaceID
func (f *ExtractionFactory) Create(workspaceID uuid.UUID, fileName string) *models.Extraction {
	return &models.Extraction{
		RecordModel:   models.RecordModel{ID: uuid.New(), CreatedAt: time.Now()},
		WorkspaceID:   workspaceID,
		FileName:      fileName,
		ExtractedData: datatypes.JSON(`{"parties":["A","B"]}`),
		Agent:         models.DefaultAgent,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Workspace    *WorkspaceFactory
	Invite       *InviteFactory
	Document     *DocumentFactory
	FollowedCase *FollowedCaseFactory
	Extraction   *ExtractionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Workspace:    NewWorkspaceFactory(),
		Invite:       NewInviteFactory(),
		Document:     NewDocumentFactory(),
		FollowedCase: NewFollowedCaseFactory(),
		Extraction:   NewExtractionFactory(),
	}
}
