package loan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoanRow is a loan joined with the employee name for list views.
type LoanRow struct {
	ID            uuid.UUID
	EmployeeID    uuid.UUID
	EmployeeName  string
	Requester     string
	RequesterUnit string
	Purpose       string
	Status        string
	LoanDate      time.Time
	DueDate       *time.Time
	ReturnDate    *time.Time
	LoanedBy      string
	ReturnedBy    string
	ReturnNotes   string
}

//go:generate mockgen -source=loan_repo.go -destination=mock/loan_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, loan *Loan) error
	FindByIDForUpdate(ctx context.Context, id string) (*Loan, error)
	EmployeeName(ctx context.Context, id uuid.UUID) (string, error)
	Update(ctx context.Context, loan *Loan) error
	List(ctx context.Context, status string) ([]LoanRow, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]LoanRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, loan *Loan) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Loan, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var loan Loan
	err := q.First(&loan, "id = ?", id).Error
	return &loan, err
}

func (r *repository) EmployeeName(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Raw("SELECT full_name FROM employees WHERE id = ?", id).
		Scan(&name).Error
	return name, err
}

func (r *repository) Update(ctx context.Context, loan *Loan) error {
	return r.db.WithContext(ctx).Save(loan).Error
}

const loanRowSelect = `
SELECT
	l.id             AS id,
	l.employee_id    AS employee_id,
	e.full_name      AS employee_name,
	l.requester      AS requester,
	l.requester_unit AS requester_unit,
	l.purpose        AS purpose,
	l.status         AS status,
	l.loan_date      AS loan_date,
	l.due_date       AS due_date,
	l.return_date    AS return_date,
	l.loaned_by      AS loaned_by,
	l.returned_by    AS returned_by,
	l.return_notes   AS return_notes
FROM loans l
JOIN employees e ON e.id = l.employee_id
`

func (r *repository) List(ctx context.Context, status string) ([]LoanRow, error) {
	query := loanRowSelect
	args := []any{}
	if status != "" {
		query += "WHERE l.status = ?\n"
		args = append(args, status)
	}
	query += "ORDER BY l.loan_date DESC"

	var rows []LoanRow
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, err
}

func (r *repository) ListOverdue(ctx context.Context, asOf time.Time) ([]LoanRow, error) {
	var rows []LoanRow
	err := r.db.WithContext(ctx).Raw(
		loanRowSelect+"WHERE l.status = ? AND l.due_date IS NOT NULL AND l.due_date < ?\nORDER BY l.due_date ASC",
		StatusBorrowed, asOf,
	).Scan(&rows).Error
	return rows, err
}
