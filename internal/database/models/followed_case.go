package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FollowedCase is a court case a workspace tracks for research
type FollowedCase struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WorkspaceID uuid.UUID      `json:"workspace_id" gorm:"type:uuid;not null;uniqueIndex:idx_followed_cases_workspace_case"`
	CaseID      string         `json:"case_id" gorm:"not null;size:100;uniqueIndex:idx_followed_cases_workspace_case"`
	CNR         string         `json:"cnr" gorm:"column:cnr;size:100"`
	Title       string         `json:"title" gorm:"size:500"`
	CaseNumber  string         `json:"case_number" gorm:"size:100"`
	DiaryNumber string         `json:"diary_number" gorm:"size:100"`
	Petitioner  string         `json:"petitioner" gorm:"type:text"`
	Respondent  string         `json:"respondent" gorm:"type:text"`
	Status      string         `json:"status" gorm:"size:100"`
	Court       string         `json:"court" gorm:"not null;size:200;index"`
	Details     datatypes.JSON `json:"details,omitempty" gorm:"type:jsonb"`
	FollowedBy  *uuid.UUID     `json:"followed_by,omitempty" gorm:"type:uuid"`
	FollowedAt  time.Time      `json:"followed_at" gorm:"not null"`

	// Relationships
	Workspace *Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for FollowedCase
func (FollowedCase) TableName() string {
	return "followed_cases"
}

// BeforeCreate sets the UUID and follow time if not already set
func (f *FollowedCase) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.FollowedAt.IsZero() {
		f.FollowedAt = time.Now()
	}
	return nil
}
