package models

import (
	"github.com/google/uuid"
)

// Document is an uploaded file with its original and converted copies in object storage
type Document struct {
	RecordModel
	WorkspaceID    uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;index"`
	UploadedBy     uuid.UUID `json:"uploaded_by" gorm:"type:uuid;not null"`
	Filename       string    `json:"filename" gorm:"not null;size:255"`
	S3KeyOriginal  string    `json:"s3_key_original" gorm:"size:1024"`
	S3KeyConverted string    `json:"s3_key_converted" gorm:"size:1024"`
	MimeType       string    `json:"mime_type" gorm:"size:255"`
	SizeBytes      int64     `json:"size_bytes"`

	// Relationships
	Workspace *Workspace `json:"-" gorm:"foreignKey:WorkspaceID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}

// ObjectKeys returns the non-empty storage keys held by the document
func (d *Document) ObjectKeys() []string {
	keys := make([]string, 0, 2)
	if d.S3KeyOriginal != "" {
		keys = append(keys, d.S3KeyOriginal)
	}
	if d.S3KeyConverted != "" {
		keys = append(keys, d.S3KeyConverted)
	}
	return keys
}
