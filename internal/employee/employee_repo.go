package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows the roster listing. Zero values mean "no filter".
type ListFilter struct {
	Status       string
	DepartmentID string
	Search       string
	Offset       int
	Limit        int
}

// EmployeeRow is an employee joined with its department name and the
// rendered drawer location, ready for the list and detail views.
type EmployeeRow struct {
	ID               uuid.UUID
	FullName         string
	Registration     string
	NationalID       string
	Status           string
	DepartmentID     *uuid.UUID
	DepartmentName   string
	CabinetNumber    string
	DrawerNumber     int
	Position         int
	AdmissionDate    *time.Time
	TerminationDate  *time.Time
	Notes            string
}

type DocumentRow struct {
	ID       uuid.UUID
	TypeName string
	FiledBy  string
	FiledAt  time.Time
}

type LoanRow struct {
	ID        uuid.UUID
	Requester string
	Status    string
	LoanDate  time.Time
	DueDate   *time.Time
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Employee, error)
	FindRowByID(ctx context.Context, id string) (*EmployeeRow, error)
	List(ctx context.Context, filter ListFilter) ([]EmployeeRow, int64, error)
	Update(ctx context.Context, empl *Employee) error

	ListDocuments(ctx context.Context, employeeID string) ([]DocumentRow, error)
	ListActiveLoans(ctx context.Context, employeeID string) ([]LoanRow, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Employee, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var empl Employee
	err := q.First(&empl, "id = ?", id).Error
	return &empl, err
}

const employeeRowSelect = `
SELECT
	e.id               AS id,
	e.full_name        AS full_name,
	e.registration     AS registration,
	e.national_id      AS national_id,
	e.status           AS status,
	e.department_id    AS department_id,
	COALESCE(dep.name, '') AS department_name,
	COALESCE(c.number, '') AS cabinet_number,
	COALESCE(d.number, 0)  AS drawer_number,
	COALESCE(p.position, 0) AS position,
	e.admission_date   AS admission_date,
	e.termination_date AS termination_date,
	e.notes            AS notes
FROM employees e
LEFT JOIN departments dep ON dep.id = e.department_id
LEFT JOIN drawer_positions p ON p.id = e.drawer_position_id
LEFT JOIN drawers d ON d.id = p.drawer_id
LEFT JOIN file_cabinets c ON c.id = d.cabinet_id
`

func (r *repository) FindRowByID(ctx context.Context, id string) (*EmployeeRow, error) {
	var row EmployeeRow
	err := r.db.WithContext(ctx).Raw(employeeRowSelect+"WHERE e.id = ?", id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]EmployeeRow, int64, error) {
	where := "WHERE 1=1"
	args := []any{}

	if filter.Status != "" {
		where += " AND e.status = ?"
		args = append(args, filter.Status)
	}
	if filter.DepartmentID != "" {
		where += " AND e.department_id = ?"
		args = append(args, filter.DepartmentID)
	}
	if filter.Search != "" {
		where += " AND (e.full_name ILIKE ? OR e.registration ILIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	var total int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM employees e "+where, args...).
		Scan(&total).Error
	if err != nil {
		return nil, 0, err
	}

	query := employeeRowSelect + where + " ORDER BY e.full_name ASC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	var rows []EmployeeRow
	err = r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, total, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) ListDocuments(ctx context.Context, employeeID string) ([]DocumentRow, error) {
	var rows []DocumentRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	doc.id       AS id,
	dt.name      AS type_name,
	doc.filed_by AS filed_by,
	doc.filed_at AS filed_at
FROM documents doc
JOIN document_types dt ON dt.id = doc.document_type_id
WHERE doc.employee_id = ?
ORDER BY doc.filed_at DESC
`, employeeID).Scan(&rows).Error
	return rows, err
}

func (r *repository) ListActiveLoans(ctx context.Context, employeeID string) ([]LoanRow, error) {
	var rows []LoanRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	l.id        AS id,
	l.requester AS requester,
	l.status    AS status,
	l.loan_date AS loan_date,
	l.due_date  AS due_date
FROM loans l
WHERE l.employee_id = ? AND l.status = 'BORROWED'
ORDER BY l.loan_date DESC
`, employeeID).Scan(&rows).Error
	return rows, err
}
