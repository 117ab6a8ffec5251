package requesthandler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	requeststore "hr-ops-backend/lib/request/store"
	"hr-ops-backend/lib/workflow"
	"hr-ops-backend/models"
	requestapimodels "hr-ops-backend/models/api/request"
	dbmodels "hr-ops-backend/models/db"
)

type fakeStore struct {
	recs      map[string]*dbmodels.Request
	saveCount int
	forceStale bool
}

func newFakeStore(recs ...dbmodels.Request) *fakeStore {
	s := &fakeStore{recs: map[string]*dbmodels.Request{}}
	for _, rec := range recs {
		clone := rec
		s.recs[rec.ID] = &clone
	}
	return s
}

func (s *fakeStore) Create(rec dbmodels.Request) (string, error) {
	clone := rec
	s.recs[rec.ID] = &clone
	return rec.ID, nil
}

func (s *fakeStore) GetByID(id string) (*dbmodels.Request, error) {
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	clone := *rec
	clone.AuditTrail = append([]dbmodels.AuditEntry{}, rec.AuditTrail...)
	return &clone, nil
}

func (s *fakeStore) List(kind models.RequestKind, filter requestapimodels.RequestFilter) ([]dbmodels.Request, int64, error) {
	list := []dbmodels.Request{}
	for _, rec := range s.recs {
		if rec.Kind == kind {
			list = append(list, *rec)
		}
	}
	return list, int64(len(list)), nil
}

func (s *fakeStore) ListAll(kind models.RequestKind) ([]dbmodels.Request, error) {
	list, _, err := s.List(kind, requestapimodels.RequestFilter{})
	return list, err
}

func (s *fakeStore) SaveTransition(rec dbmodels.Request, entry dbmodels.AuditEntry) error {
	stored, ok := s.recs[rec.ID]
	if !ok {
		return requeststore.ErrStaleState
	}
	if s.forceStale || stored.Version != rec.Version {
		return requeststore.ErrStaleState
	}
	stored.Status = rec.Status
	stored.Version++
	stored.Warning.Level = rec.Warning.Level
	stored.Cash.DisburseKey = rec.Cash.DisburseKey
	stored.Cash.DisbursedAt = rec.Cash.DisbursedAt
	stored.AuditTrail = append(stored.AuditTrail, entry)
	s.saveCount++
	return nil
}

type fakeNotifier struct {
	applied []dbmodels.AuditEntry
}

func (n *fakeNotifier) TransitionApplied(rec dbmodels.Request, entry dbmodels.AuditEntry) {
	n.applied = append(n.applied, entry)
}

func newTestHandler(store *fakeStore) (impl, *fakeNotifier) {
	workflow.Init(workflow.Thresholds{CEOAmountThreshold: 500000, LongLeaveDays: 10})
	notify := &fakeNotifier{}
	return impl{
		store:    store,
		notify:   notify,
		lockWait: time.Second,
	}, notify
}

func leaveRequest(id string, days int) dbmodels.Request {
	return dbmodels.Request{
		BaseModel:   dbmodels.BaseModel{ID: id},
		Kind:        models.KindLeave,
		Status:      workflow.LeaveStagePending,
		RequesterID: "emp-1",
		SubjectID:   "emp-1",
		Leave:       dbmodels.LeaveDetails{TotalDays: days},
	}
}

func TestTransition(t *testing.T) {
	manager := workflow.Actor{ID: "mgr-1", Role: models.ManagerRole}

	t.Run("approve persists and notifies", func(t *testing.T) {
		store := newFakeStore(leaveRequest("req-1", 3))
		handler, notify := newTestHandler(store)

		hMsg, err := handler.Transition(context.Background(), "req-1", manager, models.ActionApprove, "")
		require.NoError(t, err)
		require.Empty(t, hMsg)

		stored := store.recs["req-1"]
		require.Equal(t, workflow.LeaveStageManagerApproved, stored.Status)
		require.Equal(t, 1, stored.Version)
		require.Len(t, stored.AuditTrail, 1)
		require.Equal(t, workflow.LeaveStagePending, stored.AuditTrail[0].FromStage)
		require.Len(t, notify.applied, 1)
	})

	t.Run("wrong role yields a message, not an error", func(t *testing.T) {
		store := newFakeStore(leaveRequest("req-1", 3))
		handler, notify := newTestHandler(store)

		hMsg, err := handler.Transition(context.Background(), "req-1",
			workflow.Actor{ID: "emp-2", Role: models.EmployeeRole}, models.ActionApprove, "")
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
		require.Equal(t, workflow.LeaveStagePending, store.recs["req-1"].Status)
		require.Empty(t, notify.applied)
	})

	t.Run("unknown request", func(t *testing.T) {
		store := newFakeStore()
		handler, _ := newTestHandler(store)

		hMsg, err := handler.Transition(context.Background(), "missing", manager, models.ActionApprove, "")
		require.NoError(t, err)
		require.Equal(t, "request not found", hMsg)
	})

	t.Run("lost race asks the user to reload", func(t *testing.T) {
		store := newFakeStore(leaveRequest("req-1", 3))
		store.forceStale = true
		handler, notify := newTestHandler(store)

		hMsg, err := handler.Transition(context.Background(), "req-1", manager, models.ActionApprove, "")
		require.NoError(t, err)
		require.Contains(t, hMsg, "reload")
		require.Empty(t, notify.applied)
	})

	t.Run("disbursement stamps the payout fields", func(t *testing.T) {
		rec := dbmodels.Request{
			BaseModel:   dbmodels.BaseModel{ID: "cash-1"},
			Kind:        models.KindCash,
			Status:      workflow.StatusApproved,
			RequesterID: "emp-1",
			SubjectID:   "emp-1",
			Cash:        dbmodels.CashDetails{AmountRequested: 1000, Currency: "XAF"},
		}
		store := newFakeStore(rec)
		handler, _ := newTestHandler(store)

		hMsg, err := handler.Transition(context.Background(), "cash-1",
			workflow.Actor{ID: "cashier-1", Role: models.CashierRole}, models.ActionDisburse, "")
		require.NoError(t, err)
		require.Empty(t, hMsg)

		stored := store.recs["cash-1"]
		require.Equal(t, workflow.StatusPaid, stored.Status)
		require.NotEmpty(t, stored.Cash.DisburseKey)
		require.NotNil(t, stored.Cash.DisbursedAt)

		hMsg, err = handler.Transition(context.Background(), "cash-1",
			workflow.Actor{ID: "cashier-1", Role: models.CashierRole}, models.ActionDisburse, "")
		require.NoError(t, err)
		require.NotEmpty(t, hMsg)
		require.Equal(t, 1, store.saveCount)
	})
}

func TestExpiryOnRead(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	rec := dbmodels.Request{
		BaseModel:   dbmodels.BaseModel{ID: "warn-1"},
		Kind:        models.KindWarning,
		Status:      workflow.WarningStageLevel1,
		RequesterID: "mgr-1",
		SubjectID:   "emp-1",
		Warning:     dbmodels.WarningDetails{Level: 1, ExpiresAt: &past},
	}
	store := newFakeStore(rec)
	handler, _ := newTestHandler(store)

	view, err := handler.GetByID("warn-1")
	require.NoError(t, err)
	require.Equal(t, workflow.StatusExpired, view.Status)

	stored := store.recs["warn-1"]
	require.Equal(t, workflow.StatusExpired, stored.Status)
	require.Len(t, stored.AuditTrail, 1)
	require.Equal(t, models.SystemActorID, stored.AuditTrail[0].ActorID)
	require.Equal(t, models.ActionExpire, stored.AuditTrail[0].Action)

	// the second read finds the terminal status and writes nothing
	_, err = handler.GetByID("warn-1")
	require.NoError(t, err)
	require.Equal(t, 1, store.saveCount)
	require.Len(t, store.recs["warn-1"].AuditTrail, 1)

	// a settled warning refuses further decisions
	hMsg, err := handler.Transition(context.Background(), "warn-1",
		workflow.Actor{ID: "hr-1", Role: models.HRRole}, models.ActionEscalate, "")
	require.NoError(t, err)
	require.NotEmpty(t, hMsg)
}
