package cabinet

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

const (
	minCriticalThreshold = 50
	maxCriticalThreshold = 100
	minMoves             = 1
	maxMoves             = 50

	// How many occupants of a critical drawer are considered per pass.
	sourcesPerDrawer = 3

	availableCutoff = 70.0

	relocationReason = "capacity redistribution"
)

type RelocationSuggestion struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	From         string `json:"from"`
	To           string `json:"to"`
	Reason       string `json:"reason"`
}

type ReorganizationPlan struct {
	Suggestions []RelocationSuggestion `json:"suggestions"`
	TotalMoves  int                    `json:"total_moves"`
}

type plannerDrawer struct {
	drawerID uuid.UUID
	location string
	rate     float64
}

// clampThreshold keeps the critical threshold inside 50–100 and the move
// budget inside 1–50 regardless of what the caller asked for.
func clampThreshold(threshold int) float64 {
	if threshold < minCriticalThreshold {
		threshold = minCriticalThreshold
	}
	if threshold > maxCriticalThreshold {
		threshold = maxCriticalThreshold
	}
	return float64(threshold)
}

func clampMoves(moves int) int {
	if moves < minMoves {
		moves = minMoves
	}
	if moves > maxMoves {
		moves = maxMoves
	}
	return moves
}

// BuildReorganizationPlan walks critical drawers fullest-first and
// spreads up to three occupants each over the under-utilized drawers,
// round-robin by the running move count. The plan is advisory: nothing
// is mutated, and target capacity is not re-checked against the
// accumulating suggestions.
func BuildReorganizationPlan(
	ctx context.Context,
	rows []DrawerOccupancyRow,
	threshold int,
	moveBudget int,
	fetchOccupants func(ctx context.Context, drawerID uuid.UUID, limit int) ([]AssignedEmployee, error),
) (ReorganizationPlan, error) {
	limit := clampThreshold(threshold)
	budget := clampMoves(moveBudget)

	var critical, available []plannerDrawer
	for _, row := range rows {
		d := plannerDrawer{
			drawerID: row.DrawerID,
			location: drawerLocation(row.CabinetNumber, row.DrawerNumber),
			rate:     occupancyRate(row.Occupied, row.Capacity),
		}
		if d.rate >= limit {
			critical = append(critical, d)
		} else if d.rate < availableCutoff {
			available = append(available, d)
		}
	}

	// Most full first; ties keep the cabinet/drawer ordering of the rows
	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].rate > critical[j].rate
	})
	// Most empty first
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].rate < available[j].rate
	})

	plan := ReorganizationPlan{Suggestions: []RelocationSuggestion{}}
	if len(available) == 0 {
		return plan, nil
	}

	moves := 0
	for _, source := range critical {
		if moves >= budget {
			break
		}

		occupants, err := fetchOccupants(ctx, source.drawerID, sourcesPerDrawer)
		if err != nil {
			return ReorganizationPlan{}, err
		}

		for _, occ := range occupants {
			if moves >= budget {
				break
			}

			target := available[moves%len(available)]
			plan.Suggestions = append(plan.Suggestions, RelocationSuggestion{
				EmployeeID:   occ.EmployeeID.String(),
				EmployeeName: occ.FullName,
				From:         source.location,
				To:           target.location,
				Reason:       relocationReason,
			})
			moves++
		}
	}

	plan.TotalMoves = moves
	return plan, nil
}
