package cabinet

import "fmt"

const (
	StatusOK       = "OK"
	StatusWarning  = "WARNING"
	StatusCritical = "CRITICAL"

	warningThreshold  = 70.0
	criticalThreshold = 90.0
)

type DrawerOccupancy struct {
	DrawerID string  `json:"drawer_id"`
	Number   int     `json:"number"`
	Label    string  `json:"label,omitempty"`
	Capacity int     `json:"capacity"`
	Occupied int     `json:"occupied"`
	Rate     float64 `json:"occupancy_rate"`
	Critical bool    `json:"critical"`
}

type CabinetOccupancy struct {
	CabinetID         string            `json:"cabinet_id"`
	Number            string            `json:"number"`
	Location          string            `json:"location,omitempty"`
	TotalPositions    int               `json:"total_positions"`
	OccupiedPositions int               `json:"occupied_positions"`
	Rate              float64           `json:"occupancy_rate"`
	Status            string            `json:"status"`
	Drawers           []DrawerOccupancy `json:"drawers"`
}

type OccupationTotals struct {
	TotalPositions    int `json:"total_positions"`
	OccupiedPositions int `json:"occupied_positions"`
	WarningCabinets   int `json:"warning_cabinets"`
	CriticalCabinets  int `json:"critical_cabinets"`
}

type OccupationMap struct {
	Cabinets []CabinetOccupancy `json:"cabinets"`
	Totals   OccupationTotals   `json:"totals"`
}

// occupancyRate guards the empty-drawer case: zero capacity is 0%, never
// a division by zero.
func occupancyRate(occupied, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(occupied) / float64(capacity) * 100
}

// classify partitions [0,100] into exactly three ranges with no gaps:
// rate >= 90 CRITICAL, rate >= 70 WARNING, else OK.
func classify(rate float64) string {
	switch {
	case rate >= criticalThreshold:
		return StatusCritical
	case rate >= warningThreshold:
		return StatusWarning
	default:
		return StatusOK
	}
}

// drawerLocation renders the human-readable slot address, e.g. "A1-G3".
func drawerLocation(cabinetNumber string, drawerNumber int) string {
	return fmt.Sprintf("%s-G%d", cabinetNumber, drawerNumber)
}

// FormatSlot extends the drawer address with the position, e.g. "A1-G3-P5".
func FormatSlot(cabinetNumber string, drawerNumber, position int) string {
	return fmt.Sprintf("%s-P%d", drawerLocation(cabinetNumber, drawerNumber), position)
}

// BuildOccupationMap folds the ordered drawer rows into the cabinet tree
// plus system-wide totals. It is a pure computation: identical rows
// always produce an identical map, regardless of when it is called.
func BuildOccupationMap(rows []DrawerOccupancyRow) OccupationMap {
	m := OccupationMap{Cabinets: []CabinetOccupancy{}}

	for _, row := range rows {
		rate := occupancyRate(row.Occupied, row.Capacity)
		drawer := DrawerOccupancy{
			DrawerID: row.DrawerID.String(),
			Number:   row.DrawerNumber,
			Label:    row.DrawerLabel,
			Capacity: row.Capacity,
			Occupied: row.Occupied,
			Rate:     rate,
			Critical: rate >= criticalThreshold,
		}

		n := len(m.Cabinets)
		if n == 0 || m.Cabinets[n-1].CabinetID != row.CabinetID.String() {
			m.Cabinets = append(m.Cabinets, CabinetOccupancy{
				CabinetID: row.CabinetID.String(),
				Number:    row.CabinetNumber,
				Location:  row.Location,
				Drawers:   []DrawerOccupancy{},
			})
			n++
		}

		cab := &m.Cabinets[n-1]
		cab.Drawers = append(cab.Drawers, drawer)
		cab.TotalPositions += row.Capacity
		cab.OccupiedPositions += row.Occupied
	}

	for i := range m.Cabinets {
		cab := &m.Cabinets[i]
		cab.Rate = occupancyRate(cab.OccupiedPositions, cab.TotalPositions)
		cab.Status = classify(cab.Rate)

		m.Totals.TotalPositions += cab.TotalPositions
		m.Totals.OccupiedPositions += cab.OccupiedPositions
		switch cab.Status {
		case StatusWarning:
			m.Totals.WarningCabinets++
		case StatusCritical:
			m.Totals.CriticalCabinets++
		}
	}

	return m
}
