package loan

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusBorrowed = "BORROWED"
	StatusReturned = "RETURNED"
)

// Loan tracks a physical record folder lent out of the archive room.
// RETURNED is terminal: a returned loan is never reopened.
type Loan struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Requester     string    `gorm:"not null"`
	RequesterUnit string
	Purpose       string
	Status        string    `gorm:"not null;default:BORROWED"`
	LoanDate      time.Time `gorm:"not null"`
	DueDate       *time.Time
	ReturnDate    *time.Time
	LoanedBy      string `gorm:"not null"`
	ReturnedBy    string
	ReturnNotes   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (l *Loan) Returned() bool {
	return l.Status == StatusReturned
}
