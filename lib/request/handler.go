package requesthandler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ops-backend/config"
	"hr-ops-backend/db"
	requeststore "hr-ops-backend/lib/request/store"
	"hr-ops-backend/lib/utils/lock"
	"hr-ops-backend/lib/workflow"
	"hr-ops-backend/models"
	requestapimodels "hr-ops-backend/models/api/request"
	dbmodels "hr-ops-backend/models/db"
)

type notifier interface {
	TransitionApplied(rec dbmodels.Request, entry dbmodels.AuditEntry)
}

// Provider executes workflow transitions against persisted requests.
// It owns the per-request serialization the engine itself leaves to
// the caller: an in-process keyed lock around the read-modify-write
// plus the version check in the store.
type Provider interface {
	GetByID(id string) (view requestapimodels.RequestView, err error)
	List(kind models.RequestKind, filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, rowCount int64, err error)
	Transition(ctx context.Context, requestID string, actor workflow.Actor, action models.WorkflowAction, note string) (hMsg string, err error)
}

var Instance Provider

func NewHandler(notify notifier) {
	Instance = impl{
		store:    requeststore.NewInstance(db.DB),
		notify:   notify,
		lockWait: time.Duration(config.Conf.Workflow.LockWaitInMs) * time.Millisecond,
	}
}

type impl struct {
	store    requeststore.Provider
	notify   notifier
	lockWait time.Duration
}

func (i impl) GetLogger(requestID string) *log.Entry {
	return log.WithField("request_id", requestID)
}

func (i impl) GetByID(id string) (requestapimodels.RequestView, error) {
	rec, err := i.getFresh(id)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	if rec == nil {
		return requestapimodels.RequestView{}, errors.New("request not found")
	}
	return requestapimodels.RequestConvert(*rec), nil
}

func (i impl) List(kind models.RequestKind, filter requestapimodels.RequestFilter) ([]requestapimodels.RequestView, int64, error) {
	recs, rowCount, err := i.store.List(kind, filter)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now()
	result := make([]requestapimodels.RequestView, 0, len(recs))
	for _, rec := range recs {
		// overdue warnings are shown expired even before the detail
		// read persists the transition
		shown, _ := workflow.ApplyExpiry(rec, now)
		result = append(result, requestapimodels.RequestConvert(shown))
	}
	return result, rowCount, nil
}

func (i impl) Transition(ctx context.Context, requestID string, actor workflow.Actor, action models.WorkflowAction, note string) (hMsg string, err error) {
	logger := i.GetLogger(requestID).
		WithField("actor_id", actor.ID).
		WithField("action", action)

	locked, err := lock.WithDelay(ctx, lockKey(requestID), i.lockWait, func() error {
		hMsg, err = i.transitionLocked(requestID, actor, action, note, logger)
		return err
	})
	if err != nil {
		return "", err
	}
	if !locked {
		return "the request is being processed, try again", nil
	}
	return hMsg, nil
}

func (i impl) transitionLocked(requestID string, actor workflow.Actor, action models.WorkflowAction, note string, logger *log.Entry) (hMsg string, err error) {
	rec, err := i.getFresh(requestID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "request not found", nil
	}

	def, err := workflow.ForKind(rec.Kind)
	if err != nil {
		logger.WithError(err).Error("transition attempted against unregistered workflow")
		return "", err
	}

	result, err := def.AttemptTransition(*rec, actor, action, note)
	if err != nil {
		if workflow.IsUserFacing(err) {
			return err.Error(), nil
		}
		logger.WithError(err).Error("transition failed")
		return "", err
	}

	i.applyKindEffects(&result.Request, action)

	err = i.store.SaveTransition(result.Request, result.Entry)
	if err != nil {
		if errors.Is(err, requeststore.ErrStaleState) {
			logger.Warn("stale request state, concurrent transition won")
			return "the request changed in the meantime, reload and decide again", nil
		}
		logger.WithError(err).Error("failed to persist transition")
		return "", err
	}
	logger.
		WithField("from", result.Entry.FromStage).
		WithField("to", result.Entry.ToStage).
		Info("transition applied")

	i.notify.TransitionApplied(result.Request, result.Entry)
	return "", nil
}

// applyKindEffects fills the kind-specific side fields of a transition
// the engine keeps out of its own scope.
func (i impl) applyKindEffects(rec *dbmodels.Request, action models.WorkflowAction) {
	if action == models.ActionDisburse && rec.Status == workflow.StatusPaid {
		now := time.Now()
		rec.Cash.DisburseKey = uuid.NewString()
		rec.Cash.DisbursedAt = &now
	}
	if rec.Kind == models.KindWarning || rec.Kind == models.KindPIP {
		if level := workflow.WarningLevel(rec.Status); level > 0 {
			rec.Warning.Level = level
		}
	}
}

// getFresh loads a request and settles any pending lazy expiry so
// every caller observes a consistent state.
func (i impl) getFresh(id string) (*dbmodels.Request, error) {
	rec, err := i.store.GetByID(id)
	if err != nil || rec == nil {
		return rec, err
	}
	expired, entry := workflow.ApplyExpiry(*rec, time.Now())
	if entry == nil {
		return rec, nil
	}
	err = i.store.SaveTransition(expired, *entry)
	if err != nil {
		if errors.Is(err, requeststore.ErrStaleState) {
			// a concurrent writer settled the record, take its word
			return i.store.GetByID(id)
		}
		return nil, err
	}
	expired.Version++
	expired.AuditTrail = append(expired.AuditTrail, *entry)
	return &expired, nil
}

func lockKey(requestID string) string {
	return "request:" + requestID
}
