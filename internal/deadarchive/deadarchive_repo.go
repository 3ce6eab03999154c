package deadarchive

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArchivedEmployee is the slice of the employees table the transfer
// path needs to validate the source record.
type ArchivedEmployee struct {
	ID       uuid.UUID
	FullName string
	Status   string
}

// ItemRow is an archive item joined with its box number.
type ItemRow struct {
	ID                   uuid.UUID
	BoxID                uuid.UUID
	BoxNumber            string
	EmployeeID           uuid.UUID
	EmployeeName         string
	ArchivedAt           time.Time
	DisposalEligibleDate time.Time
	Disposed             bool
	DisposedAt           *time.Time
	DisposalTerm         string
}

//go:generate mockgen -source=deadarchive_repo.go -destination=mock/deadarchive_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateBox(ctx context.Context, box *ArchiveBox) error
	FindBoxByIDForUpdate(ctx context.Context, id string) (*ArchiveBox, error)
	ListBoxes(ctx context.Context) ([]ArchiveBox, error)
	IncrementBoxCount(ctx context.Context, boxID uuid.UUID) error

	CreateItem(ctx context.Context, item *ArchiveItem) error
	FindItemsForUpdate(ctx context.Context, ids []string) ([]ArchiveItem, error)
	MarkDisposed(ctx context.Context, ids []string, term string, disposedAt time.Time) error
	ListDisposalCandidates(ctx context.Context, asOf time.Time) ([]ItemRow, error)

	FindEmployee(ctx context.Context, employeeID string) (*ArchivedEmployee, error)
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

func (r *repository) CreateBox(ctx context.Context, box *ArchiveBox) error {
	return r.db.WithContext(ctx).Create(box).Error
}

func (r *repository) FindBoxByIDForUpdate(ctx context.Context, id string) (*ArchiveBox, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var box ArchiveBox
	err := q.First(&box, "id = ?", id).Error
	return &box, err
}

func (r *repository) ListBoxes(ctx context.Context) ([]ArchiveBox, error) {
	var boxes []ArchiveBox
	err := r.db.WithContext(ctx).
		Order("year DESC, box_number ASC").
		Find(&boxes).Error
	return boxes, err
}

func (r *repository) IncrementBoxCount(ctx context.Context, boxID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&ArchiveBox{}).
		Where("id = ?", boxID).
		UpdateColumn("current_count", gorm.Expr("current_count + 1")).Error
}

func (r *repository) CreateItem(ctx context.Context, item *ArchiveItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindItemsForUpdate(ctx context.Context, ids []string) ([]ArchiveItem, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var items []ArchiveItem
	err := q.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *repository) MarkDisposed(ctx context.Context, ids []string, term string, disposedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&ArchiveItem{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"disposed":      true,
			"disposed_at":   disposedAt,
			"disposal_term": term,
		}).Error
}

func (r *repository) ListDisposalCandidates(ctx context.Context, asOf time.Time) ([]ItemRow, error) {
	var rows []ItemRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	i.id            AS id,
	i.box_id        AS box_id,
	b.box_number    AS box_number,
	i.employee_id   AS employee_id,
	i.employee_name AS employee_name,
	i.archived_at   AS archived_at,
	i.disposal_eligible_date AS disposal_eligible_date,
	i.disposed      AS disposed,
	i.disposed_at   AS disposed_at,
	i.disposal_term AS disposal_term
FROM archive_items i
JOIN archive_boxes b ON b.id = i.box_id
WHERE i.disposed = false AND i.disposal_eligible_date <= ?
ORDER BY i.disposal_eligible_date ASC
`, asOf).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*ArchivedEmployee, error) {
	var ref ArchivedEmployee
	err := r.db.WithContext(ctx).Raw(`
SELECT id, full_name, status
FROM employees
WHERE id = ?
`, employeeID).Scan(&ref).Error
	if err != nil {
		return nil, err
	}
	if ref.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &ref, nil
}
