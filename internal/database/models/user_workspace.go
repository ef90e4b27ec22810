package models

import (
	"time"

	"github.com/google/uuid"
)

// UserWorkspace is the membership edge granting a user access to a workspace
type UserWorkspace struct {
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `json:"workspace_id" gorm:"type:uuid;primaryKey;index"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	User      *User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Workspace *Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for UserWorkspace
func (UserWorkspace) TableName() string {
	return "user_workspace"
}
