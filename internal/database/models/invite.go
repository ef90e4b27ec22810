package models

import (
	"time"

	"github.com/google/uuid"
)

// Invite is a single-use, time-limited offer to join an owner's workspaces.
// WorkspaceID records the anchor workspace only; acceptance grants every workspace of SentBy.
type Invite struct {
	RecordModel
	Email       string    `json:"email" gorm:"not null;size:255;index" validate:"required,email,max=255"`
	WorkspaceID uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;index"`
	Token       string    `json:"-" gorm:"uniqueIndex:idx_invites_token;not null;size:64"`
	Role        Role      `json:"role" gorm:"type:varchar(20);not null;default:'Member'"`
	SentBy      uuid.UUID `json:"sent_by" gorm:"type:uuid;not null;index"`
	Used        bool      `json:"used" gorm:"not null;default:false"`
	ExpiresAt   time.Time `json:"expires_at" gorm:"not null"`

	// Relationships
	Workspace *Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:RESTRICT"`
	Sender    *User      `json:"-" gorm:"foreignKey:SentBy;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Invite
func (Invite) TableName() string {
	return "invites"
}

// Status derives the invite status at now
func (i *Invite) Status(now time.Time) InviteStatus {
	return DeriveInviteStatus(i.Used, i.ExpiresAt, now)
}

// DeriveInviteStatus is Accepted if used, else Expired once expiresAt has passed, else Pending.
func DeriveInviteStatus(used bool, expiresAt, now time.Time) InviteStatus {
	if used {
		return InviteStatusAccepted
	}
	if expiresAt.Before(now) {
		return InviteStatusExpired
	}
	return InviteStatusPending
}
