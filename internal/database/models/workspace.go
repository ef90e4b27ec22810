package models

import (
	"github.com/google/uuid"
)

// Workspace is a container for documents, followed cases and extractions owned by one Owner
type Workspace struct {
	BaseModel
	Name      string    `json:"name" gorm:"not null;size:120" validate:"required,min=1,max=120"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	IsDefault bool      `json:"is_default" gorm:"not null;default:false"`

	// Relationships
	Owner *User `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
