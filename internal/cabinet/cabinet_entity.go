package cabinet

import (
	"time"

	"github.com/google/uuid"
)

type FileCabinet struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex;not null"`
	Location    string
	DrawerCount int  `gorm:"not null"`
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Drawer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CabinetID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_drawer_number,priority:1;not null"`
	Number    int       `gorm:"uniqueIndex:uq_drawer_number,priority:2;not null"`
	Capacity  int       `gorm:"not null"`
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DrawerPosition is one slot inside a drawer. Occupied is true exactly
// when EmployeeID is set; the update paths in the repository keep the
// pair in lockstep.
type DrawerPosition struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DrawerID   uuid.UUID  `gorm:"type:uuid;index;uniqueIndex:uq_drawer_position,priority:1;not null"`
	Position   int        `gorm:"uniqueIndex:uq_drawer_position,priority:2;not null"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	Occupied   bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
