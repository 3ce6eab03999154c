package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive     = "ACTIVE"
	StatusTerminated = "TERMINATED"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName         string    `gorm:"not null"`
	Registration     string    `gorm:"uniqueIndex;not null"`
	NationalID       string
	Status           string `gorm:"not null;default:ACTIVE"`
	DepartmentID     *uuid.UUID
	DrawerPositionID *uuid.UUID
	AdmissionDate    *time.Time
	TerminationDate  *time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (e *Employee) Terminated() bool {
	return e.Status == StatusTerminated
}
