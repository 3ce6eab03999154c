package cabinet

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DrawerOccupancyRow is one drawer joined with its cabinet and occupied
// count, ordered by cabinet number then drawer number so derived views
// are deterministic.
type DrawerOccupancyRow struct {
	CabinetID     uuid.UUID
	CabinetNumber string
	Location      string
	DrawerID      uuid.UUID
	DrawerNumber  int
	DrawerLabel   string
	Capacity      int
	Occupied      int
}

// AssignedEmployee is an occupant of a drawer, used by the planner.
type AssignedEmployee struct {
	EmployeeID uuid.UUID
	FullName   string
	Position   int
}

// EmployeeRef is the slice of the employees table the storage core needs:
// identity plus the position back-reference it must keep consistent.
type EmployeeRef struct {
	ID               uuid.UUID
	FullName         string
	Status           string
	DrawerPositionID *uuid.UUID
}

//go:generate mockgen -source=cabinet_repo.go -destination=mock/cabinet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateCabinet(ctx context.Context, cab *FileCabinet, drawers []Drawer) error
	FindCabinetByID(ctx context.Context, id string) (*FileCabinet, error)
	CreateDrawer(ctx context.Context, drawer *Drawer) error
	FindDrawerByID(ctx context.Context, id string) (*Drawer, error)

	ListOccupancyRows(ctx context.Context) ([]DrawerOccupancyRow, error)
	ListAssignedEmployees(ctx context.Context, drawerID uuid.UUID, limit int) ([]AssignedEmployee, error)

	FindPositionForUpdate(ctx context.Context, drawerID uuid.UUID, position int) (*DrawerPosition, error)
	CreatePosition(ctx context.Context, pos *DrawerPosition) error
	UpdatePosition(ctx context.Context, pos *DrawerPosition) error
	VacatePosition(ctx context.Context, positionID uuid.UUID) error
	VacateByEmployee(ctx context.Context, employeeID uuid.UUID) error

	FindEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error)
	SetEmployeeBackRef(ctx context.Context, employeeID uuid.UUID, positionID *uuid.UUID) error
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

// CreateCabinet inserts the cabinet and its drawer rows in one shot; the
// caller supplies the transaction scope.
func (r *repository) CreateCabinet(ctx context.Context, cab *FileCabinet, drawers []Drawer) error {
	if err := r.db.WithContext(ctx).Create(cab).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&drawers).Error
}

func (r *repository) FindCabinetByID(ctx context.Context, id string) (*FileCabinet, error) {
	var cab FileCabinet
	err := r.db.WithContext(ctx).First(&cab, "id = ?", id).Error
	return &cab, err
}

func (r *repository) CreateDrawer(ctx context.Context, drawer *Drawer) error {
	return r.db.WithContext(ctx).Create(drawer).Error
}

func (r *repository) FindDrawerByID(ctx context.Context, id string) (*Drawer, error) {
	var drawer Drawer
	err := r.db.WithContext(ctx).First(&drawer, "id = ?", id).Error
	return &drawer, err
}

func (r *repository) ListOccupancyRows(ctx context.Context) ([]DrawerOccupancyRow, error) {
	var rows []DrawerOccupancyRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	c.id        AS cabinet_id,
	c.number    AS cabinet_number,
	c.location  AS location,
	d.id        AS drawer_id,
	d.number    AS drawer_number,
	d.label     AS drawer_label,
	d.capacity  AS capacity,
	COUNT(p.id) AS occupied
FROM file_cabinets c
JOIN drawers d ON d.cabinet_id = c.id
LEFT JOIN drawer_positions p ON p.drawer_id = d.id AND p.occupied = true
GROUP BY c.id, c.number, c.location, d.id, d.number, d.label, d.capacity
ORDER BY c.number ASC, d.number ASC
`).Scan(&rows).Error
	return rows, err
}

func (r *repository) ListAssignedEmployees(ctx context.Context, drawerID uuid.UUID, limit int) ([]AssignedEmployee, error) {
	var rows []AssignedEmployee
	err := r.db.WithContext(ctx).Raw(`
SELECT
	e.id        AS employee_id,
	e.full_name AS full_name,
	p.position  AS position
FROM drawer_positions p
JOIN employees e ON e.id = p.employee_id
WHERE p.drawer_id = ? AND p.occupied = true
ORDER BY p.position ASC
LIMIT ?
`, drawerID, limit).Scan(&rows).Error
	return rows, err
}

// FindPositionForUpdate locks the slot row for the rest of the
// transaction on backends that support it, so concurrent assignment to
// the same drawer+position pair serializes to last-writer-wins.
func (r *repository) FindPositionForUpdate(ctx context.Context, drawerID uuid.UUID, position int) (*DrawerPosition, error) {
	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var pos DrawerPosition
	err := q.First(&pos, "drawer_id = ? AND position = ?", drawerID, position).Error
	return &pos, err
}

func (r *repository) CreatePosition(ctx context.Context, pos *DrawerPosition) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *repository) UpdatePosition(ctx context.Context, pos *DrawerPosition) error {
	return r.db.WithContext(ctx).Save(pos).Error
}

func (r *repository) VacatePosition(ctx context.Context, positionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&DrawerPosition{}).
		Where("id = ?", positionID).
		Updates(map[string]any{"employee_id": nil, "occupied": false}).Error
}

func (r *repository) VacateByEmployee(ctx context.Context, employeeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&DrawerPosition{}).
		Where("employee_id = ?", employeeID).
		Updates(map[string]any{"employee_id": nil, "occupied": false}).Error
}

func (r *repository) FindEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).Raw(`
SELECT id, full_name, status, drawer_position_id
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

func (r *repository) SetEmployeeBackRef(ctx context.Context, employeeID uuid.UUID, positionID *uuid.UUID) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Update("drawer_position_id", positionID).Error
}
