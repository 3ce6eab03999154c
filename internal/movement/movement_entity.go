package movement

import (
	"time"

	"github.com/google/uuid"
)

// Movement is an append-only audit entry: who moved which record where.
// Reference is optional but unique when set, which is what lets the
// lifecycle consumer replay events without duplicating entries.
type Movement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference *string   `gorm:"uniqueIndex"`
	ItemLabel string
	FromUnit  string
	ToUnit    string
	Action    string `gorm:"not null"`
	Note      string
	Actor     string `gorm:"not null"`
	CreatedAt time.Time
}
