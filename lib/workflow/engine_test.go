package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-ops-backend/models"
	dbmodels "hr-ops-backend/models/db"
)

var testThresholds = Thresholds{
	CEOAmountThreshold: 500000,
	LongLeaveDays:      10,
}

func newLeaveRequest(days int) dbmodels.Request {
	rec := dbmodels.Request{
		Kind:   models.KindLeave,
		Status: LeaveStagePending,
	}
	rec.ID = "leave-1"
	rec.Leave.TotalDays = days
	return rec
}

func newCashRequest(amount float64) dbmodels.Request {
	rec := dbmodels.Request{
		Kind:   models.KindCash,
		Status: CashStagePendingAccountant,
	}
	rec.ID = "cash-1"
	rec.Cash.AmountRequested = amount
	rec.Cash.Currency = "XAF"
	return rec
}

func actor(id string, role models.UserRole) Actor {
	return Actor{ID: id, Role: role}
}

func TestLeaveChain(t *testing.T) {
	def := LeaveDefinition(testThresholds)

	t.Run(`long leave passes manager, HR and CEO in order`, func(t *testing.T) {
		rec := newLeaveRequest(15)
		trail := []dbmodels.AuditEntry{}

		res, err := def.AttemptTransition(rec, actor("mgr", models.ManagerRole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, LeaveStageManagerApproved, res.Request.Status)
		trail = append(trail, res.Entry)

		res, err = def.AttemptTransition(res.Request, actor("hr", models.HRRole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, LeaveStageHRApproved, res.Request.Status)
		trail = append(trail, res.Entry)

		res, err = def.AttemptTransition(res.Request, actor("ceo", models.CEORole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, StatusApproved, res.Request.Status)
		trail = append(trail, res.Entry)

		require.Len(t, trail, 3)
		require.Equal(t, "mgr", trail[0].ActorID)
		require.Equal(t, "hr", trail[1].ActorID)
		require.Equal(t, "ceo", trail[2].ActorID)
		require.Equal(t, LeaveStagePending, trail[0].FromStage)
		require.Equal(t, StatusApproved, trail[2].ToStage)
	})

	t.Run(`short leave skips the CEO stage after HR`, func(t *testing.T) {
		rec := newLeaveRequest(5)

		res, err := def.AttemptTransition(rec, actor("mgr", models.ManagerRole), models.ActionApprove, "")
		require.Nil(t, err)

		res, err = def.AttemptTransition(res.Request, actor("hr", models.HRRole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, StatusApproved, res.Request.Status)
		require.Equal(t, LeaveStageManagerApproved, res.Entry.FromStage)
		require.Equal(t, StatusApproved, res.Entry.ToStage)
	})

	t.Run(`stage index never decreases over a valid approve sequence`, func(t *testing.T) {
		rec := newLeaveRequest(15)
		chain := []Actor{
			actor("mgr", models.ManagerRole),
			actor("hr", models.HRRole),
			actor("ceo", models.CEORole),
		}
		last := def.StageIndex(rec.Status)
		for _, a := range chain {
			res, err := def.AttemptTransition(rec, a, models.ActionApprove, "")
			require.Nil(t, err)
			idx := def.StageIndex(res.Request.Status)
			require.GreaterOrEqual(t, idx, last)
			last = idx
			rec = res.Request
		}
	})
}

func TestRoleGating(t *testing.T) {
	def := LeaveDefinition(testThresholds)
	allRoles := []models.UserRole{
		models.EmployeeRole, models.ManagerRole, models.HRRole, models.CEORole,
		models.AccountantRole, models.CFORole, models.CashierRole, models.AdminRole,
	}

	t.Run(`every role outside the stage set is rejected and status is kept`, func(t *testing.T) {
		for _, stage := range def.Stages {
			rec := newLeaveRequest(15)
			rec.Status = stage.Name
			for _, role := range allRoles {
				if stage.AllowsRole(role) {
					continue
				}
				_, err := def.AttemptTransition(rec, actor("u", role), models.ActionApprove, "")
				require.IsType(t, UnauthorizedActorError{}, err)
				require.Equal(t, stage.Name, rec.Status)
			}
		}
	})

	t.Run(`unauthorized errors are user facing`, func(t *testing.T) {
		rec := newLeaveRequest(3)
		_, err := def.AttemptTransition(rec, actor("emp", models.EmployeeRole), models.ActionApprove, "")
		require.NotNil(t, err)
		require.True(t, IsUserFacing(err))
	})
}

func TestRejection(t *testing.T) {
	def := LeaveDefinition(testThresholds)

	t.Run(`reject short-circuits to Declined from any stage`, func(t *testing.T) {
		rec := newLeaveRequest(15)
		rec.Status = LeaveStageManagerApproved
		res, err := def.AttemptTransition(rec, actor("hr", models.HRRole), models.ActionReject, "dates overlap audit")
		require.Nil(t, err)
		require.Equal(t, StatusDeclined, res.Request.Status)
		require.Equal(t, "dates overlap audit", res.Entry.Note)
	})

	t.Run(`declined requests accept no further action`, func(t *testing.T) {
		rec := newLeaveRequest(15)
		rec.Status = StatusDeclined
		for _, action := range []models.WorkflowAction{models.ActionApprove, models.ActionReject, models.ActionDisburse} {
			_, err := def.AttemptTransition(rec, actor("ceo", models.CEORole), action, "")
			require.IsType(t, AlreadyTerminalError{}, err)
		}
	})
}

func TestCashChain(t *testing.T) {
	def := CashDefinition(testThresholds)

	t.Run(`below threshold the CFO approval lands directly on Approved`, func(t *testing.T) {
		rec := newCashRequest(50000)

		res, err := def.AttemptTransition(rec, actor("acc", models.AccountantRole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, CashStagePendingCFO, res.Request.Status)

		res, err = def.AttemptTransition(res.Request, actor("cfo", models.CFORole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, StatusApproved, res.Request.Status)
		require.Equal(t, CashStagePendingCFO, res.Entry.FromStage)
		require.Equal(t, StatusApproved, res.Entry.ToStage)
	})

	t.Run(`above threshold the CEO stage is required`, func(t *testing.T) {
		rec := newCashRequest(750000)
		rec.Status = CashStagePendingCFO
		res, err := def.AttemptTransition(rec, actor("cfo", models.CFORole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, CashStagePendingCEO, res.Request.Status)

		res, err = def.AttemptTransition(res.Request, actor("ceo", models.CEORole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, StatusApproved, res.Request.Status)
	})

	t.Run(`disbursement is cashier only and applies exactly once`, func(t *testing.T) {
		rec := newCashRequest(50000)
		rec.Status = StatusApproved

		_, err := def.AttemptTransition(rec, actor("acc", models.AccountantRole), models.ActionDisburse, "")
		require.IsType(t, UnauthorizedActorError{}, err)

		res, err := def.AttemptTransition(rec, actor("cashier", models.CashierRole), models.ActionDisburse, "")
		require.Nil(t, err)
		require.Equal(t, StatusPaid, res.Request.Status)
		require.Equal(t, models.ActionDisburse, res.Entry.Action)

		_, err = def.AttemptTransition(res.Request, actor("cashier", models.CashierRole), models.ActionDisburse, "")
		require.IsType(t, AlreadyTerminalError{}, err)
	})

	t.Run(`disbursement outside Approved is refused`, func(t *testing.T) {
		rec := newCashRequest(50000)
		_, err := def.AttemptTransition(rec, actor("cashier", models.CashierRole), models.ActionDisburse, "")
		require.IsType(t, InvalidActionError{}, err)
	})

	t.Run(`approved leave cannot be disbursed`, func(t *testing.T) {
		leaveDef := LeaveDefinition(testThresholds)
		rec := newLeaveRequest(5)
		rec.Status = StatusApproved
		_, err := leaveDef.AttemptTransition(rec, actor("cashier", models.CashierRole), models.ActionDisburse, "")
		require.IsType(t, InvalidActionError{}, err)
	})
}

func TestWarningChain(t *testing.T) {
	def := WarningDefinition()

	t.Run(`escalation walks the ladder up to the PIP`, func(t *testing.T) {
		rec := dbmodels.Request{Kind: models.KindWarning, Status: WarningStageLevel1}
		expected := []string{WarningStageLevel2, WarningStageLevel3, WarningStagePIP, StatusResolved}
		hr := actor("hr", models.HRRole)
		for _, want := range expected {
			res, err := def.AttemptTransition(rec, hr, models.ActionEscalate, "")
			require.Nil(t, err)
			require.Equal(t, want, res.Request.Status)
			rec = res.Request
		}
	})

	t.Run(`escalate is refused for non-disciplinary kinds`, func(t *testing.T) {
		leaveDef := LeaveDefinition(testThresholds)
		rec := newLeaveRequest(5)
		_, err := leaveDef.AttemptTransition(rec, actor("mgr", models.ManagerRole), models.ActionEscalate, "")
		require.IsType(t, InvalidActionError{}, err)
	})

	t.Run(`rejection resolves the warning at any level`, func(t *testing.T) {
		rec := dbmodels.Request{Kind: models.KindWarning, Status: WarningStageLevel2}
		res, err := def.AttemptTransition(rec, actor("mgr", models.ManagerRole), models.ActionReject, "behavior corrected")
		require.Nil(t, err)
		require.Equal(t, StatusResolved, res.Request.Status)
	})
}

func TestEngineGuards(t *testing.T) {
	def := LeaveDefinition(testThresholds)

	t.Run(`unknown status yields UnknownStageError`, func(t *testing.T) {
		rec := newLeaveRequest(5)
		rec.Status = "Pending CFO"
		_, err := def.AttemptTransition(rec, actor("mgr", models.ManagerRole), models.ActionApprove, "")
		require.IsType(t, UnknownStageError{}, err)
		require.False(t, IsUserFacing(err))
	})

	t.Run(`a cyclic graph of false conditions fails as misconfigured`, func(t *testing.T) {
		never := func(dbmodels.Request) bool { return false }
		broken := Definition{
			Kind: models.KindLeave,
			Stages: []Stage{
				{Name: "A", Roles: []models.UserRole{models.ManagerRole}, OnApprove: "B", OnReject: StatusDeclined},
				{Name: "B", Roles: []models.UserRole{models.HRRole}, Condition: never, OnApprove: "A", OnReject: StatusDeclined},
			},
		}
		rec := newLeaveRequest(5)
		rec.Status = "A"
		_, err := broken.AttemptTransition(rec, actor("mgr", models.ManagerRole), models.ActionApprove, "")
		require.IsType(t, MisconfiguredError{}, err)
	})

	t.Run(`a transition to an undeclared stage fails as misconfigured`, func(t *testing.T) {
		broken := Definition{
			Kind: models.KindLeave,
			Stages: []Stage{
				{Name: "A", Roles: []models.UserRole{models.ManagerRole}, OnApprove: "Missing", OnReject: StatusDeclined},
			},
		}
		rec := newLeaveRequest(5)
		rec.Status = "A"
		_, err := broken.AttemptTransition(rec, actor("mgr", models.ManagerRole), models.ActionApprove, "")
		require.IsType(t, MisconfiguredError{}, err)
	})

	t.Run(`the engine never mutates the given snapshot`, func(t *testing.T) {
		rec := newLeaveRequest(15)
		res, err := def.AttemptTransition(rec, actor("mgr", models.ManagerRole), models.ActionApprove, "")
		require.Nil(t, err)
		require.Equal(t, LeaveStagePending, rec.Status)
		require.Equal(t, LeaveStageManagerApproved, res.Request.Status)
	})
}

func TestDefinitionLookup(t *testing.T) {
	t.Run(`ForKind serves registered kinds and fails on strangers`, func(t *testing.T) {
		Init(testThresholds)
		def, err := ForKind(models.KindCash)
		require.Nil(t, err)
		require.Equal(t, models.KindCash, def.Kind)

		_, err = ForKind(models.RequestKind("EQUIPMENT"))
		require.IsType(t, MisconfiguredError{}, err)
	})

	t.Run(`initial stage is the chain entry point`, func(t *testing.T) {
		require.Equal(t, LeaveStagePending, LeaveDefinition(testThresholds).InitialStage().Name)
		require.Equal(t, CashStagePendingAccountant, CashDefinition(testThresholds).InitialStage().Name)
		require.Equal(t, WarningStageLevel1, WarningDefinition().InitialStage().Name)
		require.Equal(t, WarningStagePIP, PIPDefinition().InitialStage().Name)
	})
}
