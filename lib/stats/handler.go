package stats

import (
	"hr-ops-backend/db"
	recognitionstore "hr-ops-backend/lib/recognition/store"
	requeststore "hr-ops-backend/lib/request/store"
	"hr-ops-backend/lib/workflow"
	"hr-ops-backend/models"
	statsapimodels "hr-ops-backend/models/api/stats"
	dbmodels "hr-ops-backend/models/db"
)

type Provider interface {
	Dashboard() (statsapimodels.DashboardView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		requestStore:     requeststore.NewInstance(db.DB),
		recognitionStore: recognitionstore.NewInstance(db.DB),
	}
}

type impl struct {
	requestStore     requeststore.Provider
	recognitionStore recognitionstore.Provider
}

const topPerformerCount = 5

func (i impl) Dashboard() (statsapimodels.DashboardView, error) {
	view := statsapimodels.DashboardView{}

	leaves, err := i.requestStore.ListAll(models.KindLeave)
	if err != nil {
		return view, err
	}
	cash, err := i.requestStore.ListAll(models.KindCash)
	if err != nil {
		return view, err
	}
	warnings, err := i.requestStore.ListAll(models.KindWarning)
	if err != nil {
		return view, err
	}
	recognitions, err := i.recognitionStore.ListAll()
	if err != nil {
		return view, err
	}

	view.LeaveByStatus = CountByStatus(leaves)
	view.CashByStatus = CountByStatus(cash)
	view.WarningByStatus = CountByStatus(warnings)
	for _, list := range [][]dbmodels.Request{leaves, cash, warnings} {
		for _, rec := range list {
			if !workflow.IsTerminal(rec.Status) {
				view.PendingTotal++
			}
		}
	}
	view.CashApprovedSum = SumAmountWhere(cash, func(rec dbmodels.Request) bool {
		return rec.Status == workflow.StatusApproved
	})
	view.CashPaidSum = SumAmountWhere(cash, func(rec dbmodels.Request) bool {
		return rec.Status == workflow.StatusPaid
	})
	for _, score := range TopN(recognitions, topPerformerCount) {
		view.TopPerformers = append(view.TopPerformers, statsapimodels.TopPerformer{
			EmployeeID:   score.Key,
			EmployeeName: score.Name,
			Points:       score.Metric,
		})
	}
	return view, nil
}
