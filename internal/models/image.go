package models

import (
	"github.com/google/uuid"
)

// Image is an uploaded receipt image.
//
// The content is kept in the database so that backups stay a single
// file, the sizes involved are a few receipt photos per day.
type Image struct {
	DefaultModel
	OwnerID     uuid.UUID `gorm:"index"`
	Filename    string
	ContentType string
	Content     []byte `gorm:"type:blob"`
}
