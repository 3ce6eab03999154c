package document

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRow is a document joined with its type and category names.
type DocumentRow struct {
	ID           uuid.UUID
	EmployeeID   uuid.UUID
	TypeID       uuid.UUID
	TypeName     string
	CategoryName string
	FiledBy      string
	FiledAt      time.Time
	Notes        string
}

// TaxonomyRow is one type joined with its category, ordered so the
// service can fold rows into the category tree in a single pass.
type TaxonomyRow struct {
	CategoryID     uuid.UUID
	CategoryName   string
	TypeID         uuid.UUID
	TypeName       string
	RetentionYears int
}

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, doc *Document) error
	ListByEmployee(ctx context.Context, employeeID string) ([]DocumentRow, error)
	ListTaxonomy(ctx context.Context) ([]TaxonomyRow, error)
	FindTypeByID(ctx context.Context, id string) (*DocumentType, error)
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

func (r *repository) Create(ctx context.Context, doc *Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]DocumentRow, error) {
	var rows []DocumentRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	doc.id       AS id,
	doc.employee_id AS employee_id,
	dt.id        AS type_id,
	dt.name      AS type_name,
	dc.name      AS category_name,
	doc.filed_by AS filed_by,
	doc.filed_at AS filed_at,
	doc.notes    AS notes
FROM documents doc
JOIN document_types dt ON dt.id = doc.document_type_id
JOIN document_categories dc ON dc.id = dt.category_id
WHERE doc.employee_id = ?
ORDER BY doc.filed_at DESC
`, employeeID).Scan(&rows).Error
	return rows, err
}

func (r *repository) ListTaxonomy(ctx context.Context) ([]TaxonomyRow, error) {
	var rows []TaxonomyRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	dc.id   AS category_id,
	dc.name AS category_name,
	dt.id   AS type_id,
	dt.name AS type_name,
	dt.retention_years AS retention_years
FROM document_categories dc
JOIN document_types dt ON dt.category_id = dc.id
ORDER BY dc.sort_order ASC, dc.name ASC, dt.name ASC
`).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindTypeByID(ctx context.Context, id string) (*DocumentType, error) {
	var dt DocumentType
	err := r.db.WithContext(ctx).First(&dt, "id = ?", id).Error
	return &dt, err
}
