package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-ops-backend/lib/workflow"
	"hr-ops-backend/models"
	dbmodels "hr-ops-backend/models/db"
)

func cashRequest(status string, amount float64) dbmodels.Request {
	rec := dbmodels.Request{Kind: models.KindCash, Status: status}
	rec.Cash.AmountRequested = amount
	return rec
}

func TestProjections(t *testing.T) {
	t.Run(`CountByStatus folds the snapshot`, func(t *testing.T) {
		list := []dbmodels.Request{
			cashRequest(workflow.CashStagePendingCFO, 1000),
			cashRequest(workflow.CashStagePendingCFO, 2000),
			cashRequest(workflow.StatusPaid, 3000),
		}
		counts := CountByStatus(list)
		require.Equal(t, 2, counts[workflow.CashStagePendingCFO])
		require.Equal(t, 1, counts[workflow.StatusPaid])
		require.Equal(t, 0, counts[workflow.StatusDeclined])
	})

	t.Run(`SumAmountWhere only counts matching requests`, func(t *testing.T) {
		list := []dbmodels.Request{
			cashRequest(workflow.StatusApproved, 1000),
			cashRequest(workflow.StatusPaid, 500),
			cashRequest(workflow.StatusDeclined, 90000),
		}
		sum := SumAmountWhere(list, func(rec dbmodels.Request) bool {
			return rec.Status == workflow.StatusApproved || rec.Status == workflow.StatusPaid
		})
		require.Equal(t, float64(1500), sum)
	})

	t.Run(`TopN accumulates points and truncates`, func(t *testing.T) {
		ann := &dbmodels.Employee{FirstName: "Ann", LastName: "A"}
		bob := &dbmodels.Employee{FirstName: "Bob", LastName: "B"}
		cyd := &dbmodels.Employee{FirstName: "Cyd", LastName: "C"}
		list := []dbmodels.Recognition{
			{EmployeeID: "e1", Employee: ann, Points: 5},
			{EmployeeID: "e2", Employee: bob, Points: 3},
			{EmployeeID: "e1", Employee: ann, Points: 4},
			{EmployeeID: "e3", Employee: cyd, Points: 7},
		}
		top := TopN(list, 2)
		require.Len(t, top, 2)
		require.Equal(t, "e1", top[0].Key)
		require.Equal(t, 9, top[0].Metric)
		require.Equal(t, "e3", top[1].Key)
	})

	t.Run(`TopN on an empty snapshot is empty`, func(t *testing.T) {
		require.Empty(t, TopN(nil, 5))
	})
}
