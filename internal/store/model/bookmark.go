package model

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is pure membership: it exists or it does not. Toggling
// creates or hard-deletes the row, nothing ever updates one.
type Bookmark struct {
	JobSeekerID uuid.UUID `gorm:"primaryKey"`
	ItemType    string    `gorm:"primaryKey"`
	ItemID      uuid.UUID `gorm:"primaryKey"`
	CreatedAt   time.Time
}
