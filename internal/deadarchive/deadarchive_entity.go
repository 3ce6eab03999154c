package deadarchive

import (
	"time"

	"github.com/google/uuid"
)

// ArchiveBox is a physical dead-archive box. CurrentCount only ever
// grows: removing an item from a box is not a supported operation,
// disposal marks the item without reopening the slot.
type ArchiveBox struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoxNumber    string    `gorm:"uniqueIndex;not null"`
	Year         int       `gorm:"not null"`
	Capacity     int       `gorm:"not null"`
	CurrentCount int       `gorm:"not null;default:0"`
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ArchiveItem struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoxID                uuid.UUID `gorm:"type:uuid;index;not null"`
	EmployeeID           uuid.UUID `gorm:"type:uuid;index;not null"`
	EmployeeName         string    `gorm:"not null"`
	ArchivedAt           time.Time `gorm:"not null"`
	DisposalEligibleDate time.Time `gorm:"not null"`
	Disposed             bool      `gorm:"not null;default:false"`
	DisposedAt           *time.Time
	DisposalTerm         string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
