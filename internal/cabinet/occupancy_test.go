package cabinet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func row(cabID uuid.UUID, cabNumber string, drawerNumber, capacity, occupied int) DrawerOccupancyRow {
	return DrawerOccupancyRow{
		CabinetID:     cabID,
		CabinetNumber: cabNumber,
		DrawerID:      uuid.New(),
		DrawerNumber:  drawerNumber,
		Capacity:      capacity,
		Occupied:      occupied,
	}
}

func TestBuildOccupationMap_Empty(t *testing.T) {
	m := BuildOccupationMap(nil)

	assert.Empty(t, m.Cabinets)
	assert.Equal(t, 0, m.Totals.TotalPositions)
	assert.Equal(t, 0, m.Totals.OccupiedPositions)
	assert.Equal(t, 0, m.Totals.WarningCabinets)
	assert.Equal(t, 0, m.Totals.CriticalCabinets)
}

func TestBuildOccupationMap_FullSmallCabinetIsCritical(t *testing.T) {
	cabID := uuid.New()
	m := BuildOccupationMap([]DrawerOccupancyRow{
		row(cabID, "A1", 1, 2, 2),
	})

	assert.Len(t, m.Cabinets, 1)
	cab := m.Cabinets[0]
	assert.Equal(t, "A1", cab.Number)
	assert.Equal(t, 2, cab.TotalPositions)
	assert.Equal(t, 2, cab.OccupiedPositions)
	assert.InDelta(t, 100.0, cab.Rate, 0.001)
	assert.Equal(t, StatusCritical, cab.Status)
	assert.True(t, cab.Drawers[0].Critical)

	assert.Equal(t, 1, m.Totals.CriticalCabinets)
	assert.Equal(t, 0, m.Totals.WarningCabinets)
}

func TestBuildOccupationMap_StatusBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		occupied int
		capacity int
		status   string
	}{
		{"empty drawer is ok", 0, 10, StatusOK},
		{"69 percent is ok", 69, 100, StatusOK},
		{"exactly 70 percent is warning", 70, 100, StatusWarning},
		{"89 percent is warning", 89, 100, StatusWarning},
		{"exactly 90 percent is critical", 90, 100, StatusCritical},
		{"zero capacity is ok, not a division error", 0, 0, StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := BuildOccupationMap([]DrawerOccupancyRow{
				row(uuid.New(), "B1", 1, tc.capacity, tc.occupied),
			})
			assert.Equal(t, tc.status, m.Cabinets[0].Status)
		})
	}
}

func TestBuildOccupationMap_GroupsDrawersByCabinet(t *testing.T) {
	cabA := uuid.New()
	cabB := uuid.New()

	m := BuildOccupationMap([]DrawerOccupancyRow{
		row(cabA, "A1", 1, 10, 9),
		row(cabA, "A1", 2, 10, 9),
		row(cabB, "B1", 1, 10, 1),
	})

	assert.Len(t, m.Cabinets, 2)

	first := m.Cabinets[0]
	assert.Equal(t, "A1", first.Number)
	assert.Len(t, first.Drawers, 2)
	assert.Equal(t, 20, first.TotalPositions)
	assert.Equal(t, 18, first.OccupiedPositions)
	assert.Equal(t, StatusCritical, first.Status)

	second := m.Cabinets[1]
	assert.Equal(t, "B1", second.Number)
	assert.Equal(t, StatusOK, second.Status)

	assert.Equal(t, 30, m.Totals.TotalPositions)
	assert.Equal(t, 19, m.Totals.OccupiedPositions)
	assert.Equal(t, 1, m.Totals.CriticalCabinets)
}

func TestBuildOccupationMap_Deterministic(t *testing.T) {
	cabA := uuid.New()
	rows := []DrawerOccupancyRow{
		row(cabA, "A1", 1, 10, 3),
		row(cabA, "A1", 2, 10, 7),
	}

	first := BuildOccupationMap(rows)
	second := BuildOccupationMap(rows)

	assert.Equal(t, first, second)
}

func TestDrawerLocation(t *testing.T) {
	assert.Equal(t, "A1-G3", drawerLocation("A1", 3))
}
