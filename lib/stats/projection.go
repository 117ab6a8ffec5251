package stats

import (
	"sort"

	dbmodels "hr-ops-backend/models/db"
)

// Pure folds over request/recognition snapshots. Nothing here is
// stored, aggregates are recomputed from the source records on every
// read so they can never drift from them.

func CountByStatus(list []dbmodels.Request) map[string]int {
	result := map[string]int{}
	for _, rec := range list {
		result[rec.Status]++
	}
	return result
}

func SumAmountWhere(list []dbmodels.Request, pred func(dbmodels.Request) bool) float64 {
	var total float64
	for _, rec := range list {
		if pred(rec) {
			total += rec.Cash.AmountRequested
		}
	}
	return total
}

type Score struct {
	Key    string
	Name   string
	Metric int
}

// TopN folds recognitions into per-employee point totals and returns
// the n best, ordered by points then name for a stable result.
func TopN(list []dbmodels.Recognition, n int) []Score {
	totals := map[string]*Score{}
	for _, rec := range list {
		score, ok := totals[rec.EmployeeID]
		if !ok {
			name := ""
			if rec.Employee != nil {
				name = rec.Employee.GetFullName()
			}
			score = &Score{Key: rec.EmployeeID, Name: name}
			totals[rec.EmployeeID] = score
		}
		score.Metric += rec.Points
	}
	result := make([]Score, 0, len(totals))
	for _, score := range totals {
		result = append(result, *score)
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].Metric != result[b].Metric {
			return result[a].Metric > result[b].Metric
		}
		return result[a].Name < result[b].Name
	})
	if n < len(result) {
		result = result[:n]
	}
	return result
}
