package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Extraction holds structured data extracted from one file of a workspace
type Extraction struct {
	RecordModel
	WorkspaceID   uuid.UUID      `json:"workspace_id" gorm:"type:uuid;not null;index"`
	FileName      string         `json:"file_name" gorm:"not null;size:255"`
	ExtractedData datatypes.JSON `json:"extracted_data" gorm:"column:extracted_data;type:jsonb"`
	Usage         datatypes.JSON `json:"usage,omitempty" gorm:"type:jsonb"`
	RawResponse   string         `json:"raw_response,omitempty" gorm:"type:text"`
	Agent         string         `json:"agent" gorm:"not null;size:100;default:'Unassigned'"`
	CreatedBy     *uuid.UUID     `json:"created_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Workspace *Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Extraction
func (Extraction) TableName() string {
	return "extracted_data"
}
