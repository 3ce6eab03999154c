package document

import (
	"time"

	"github.com/google/uuid"
)

// DocumentCategory and DocumentType form the fixed filing taxonomy.
// Both are seeded by migration and only ever read at runtime.
type DocumentCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DocumentType struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name           string    `gorm:"not null"`
	RetentionYears int       `gorm:"not null;default:5"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Document is an append-only filing record. There is no update or
// delete path: corrections are filed as new documents.
type Document struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID `gorm:"type:uuid;index;not null"`
	DocumentTypeID uuid.UUID `gorm:"type:uuid;index;not null"`
	FiledBy        string    `gorm:"not null"`
	FiledAt        time.Time `gorm:"not null"`
	Notes          string
	CreatedAt      time.Time
}
