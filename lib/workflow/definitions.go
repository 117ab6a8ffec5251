package workflow

import (
	"hr-ops-backend/models"
	dbmodels "hr-ops-backend/models/db"
)

// Stage names. They double as the request status while the stage is
// waiting for its decision.
const (
	LeaveStagePending         = "Pending"
	LeaveStageManagerApproved = "Manager Approved"
	LeaveStageHRApproved      = "HR Approved"

	CashStagePendingAccountant = "Pending Accountant"
	CashStagePendingCFO        = "Pending CFO"
	CashStagePendingCEO        = "Pending CEO"

	WarningStageLevel1 = "Level 1"
	WarningStageLevel2 = "Level 2"
	WarningStageLevel3 = "Level 3"
	WarningStagePIP    = "PIP Active"
)

// Thresholds parametrize the conditional stages. Values come from
// configuration, the constructors take them explicitly so tests can
// pin their own.
type Thresholds struct {
	// CEO approval of a cash request is required above this amount.
	CEOAmountThreshold float64
	// CEO approval of a leave request is required above this many days.
	LongLeaveDays int
}

// LeaveDefinition: Manager, then HR, then CEO for long leaves only.
// HR is always required, the CEO stage is the conditional one.
func LeaveDefinition(t Thresholds) Definition {
	return Definition{
		Kind: models.KindLeave,
		Stages: []Stage{
			{
				Name:      LeaveStagePending,
				Roles:     []models.UserRole{models.ManagerRole},
				OnApprove: LeaveStageManagerApproved,
				OnReject:  StatusDeclined,
			},
			{
				Name:      LeaveStageManagerApproved,
				Roles:     []models.UserRole{models.HRRole},
				OnApprove: LeaveStageHRApproved,
				OnReject:  StatusDeclined,
			},
			{
				Name:  LeaveStageHRApproved,
				Roles: []models.UserRole{models.CEORole},
				Condition: func(req dbmodels.Request) bool {
					return req.Leave.TotalDays > t.LongLeaveDays
				},
				OnApprove: StatusApproved,
				OnReject:  StatusDeclined,
			},
		},
	}
}

// CashDefinition: Accountant, CFO, CEO above the amount threshold,
// then disbursement by the cashier moves Approved to Paid.
func CashDefinition(t Thresholds) Definition {
	return Definition{
		Kind: models.KindCash,
		Stages: []Stage{
			{
				Name:      CashStagePendingAccountant,
				Roles:     []models.UserRole{models.AccountantRole},
				OnApprove: CashStagePendingCFO,
				OnReject:  StatusDeclined,
			},
			{
				Name:      CashStagePendingCFO,
				Roles:     []models.UserRole{models.CFORole},
				OnApprove: CashStagePendingCEO,
				OnReject:  StatusDeclined,
			},
			{
				Name:  CashStagePendingCEO,
				Roles: []models.UserRole{models.CEORole},
				Condition: func(req dbmodels.Request) bool {
					return req.Cash.AmountRequested > t.CEOAmountThreshold
				},
				OnApprove: StatusApproved,
				OnReject:  StatusDeclined,
			},
		},
	}
}

// WarningDefinition: escalation ladder L1 to L3 and on to a PIP.
// Rejection at any level resolves the warning.
func WarningDefinition() Definition {
	managerOrHR := []models.UserRole{models.ManagerRole, models.HRRole}
	return Definition{
		Kind: models.KindWarning,
		Stages: []Stage{
			{
				Name:      WarningStageLevel1,
				Roles:     managerOrHR,
				OnApprove: WarningStageLevel2,
				OnReject:  StatusResolved,
			},
			{
				Name:      WarningStageLevel2,
				Roles:     managerOrHR,
				OnApprove: WarningStageLevel3,
				OnReject:  StatusResolved,
			},
			{
				Name:      WarningStageLevel3,
				Roles:     []models.UserRole{models.HRRole},
				OnApprove: WarningStagePIP,
				OnReject:  StatusResolved,
			},
			{
				Name:      WarningStagePIP,
				Roles:     []models.UserRole{models.HRRole},
				OnApprove: StatusResolved,
				OnReject:  StatusResolved,
			},
		},
	}
}

// PIPDefinition reuses the tail of the warning ladder for PIPs opened
// directly, without preceding warnings.
func PIPDefinition() Definition {
	def := WarningDefinition()
	return Definition{
		Kind:   models.KindPIP,
		Stages: def.Stages[3:],
	}
}

var registry map[models.RequestKind]Definition

// Init builds the shipped definitions with the configured thresholds.
// Called once at startup before any handler runs.
func Init(t Thresholds) {
	registry = map[models.RequestKind]Definition{
		models.KindLeave:   LeaveDefinition(t),
		models.KindCash:    CashDefinition(t),
		models.KindWarning: WarningDefinition(),
		models.KindPIP:     PIPDefinition(),
	}
}

func ForKind(kind models.RequestKind) (Definition, error) {
	def, ok := registry[kind]
	if !ok {
		return Definition{}, MisconfiguredError{Kind: kind, Detail: "no workflow definition registered"}
	}
	return def, nil
}

// WarningLevel maps a warning status to its discipline level, zero for
// anything outside the ladder.
func WarningLevel(status string) int {
	switch status {
	case WarningStageLevel1:
		return 1
	case WarningStageLevel2:
		return 2
	case WarningStageLevel3:
		return 3
	case WarningStagePIP:
		return 4
	}
	return 0
}
