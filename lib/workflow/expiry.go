package workflow

import (
	"time"

	"hr-ops-backend/models"
	dbmodels "hr-ops-backend/models/db"
)

// ApplyExpiry evaluates time-based closure of warnings and PIPs. It is
// called lazily on every read instead of from a scheduler, repeated
// calls after the deadline converge on a single terminal transition
// because the terminal check stops the second pass.
//
// The returned entry is nil when the request is left unchanged.
func ApplyExpiry(req dbmodels.Request, now time.Time) (dbmodels.Request, *dbmodels.AuditEntry) {
	var deadline *time.Time
	var to string
	switch req.Kind {
	case models.KindWarning:
		deadline = req.Warning.ExpiresAt
		to = StatusExpired
	case models.KindPIP:
		deadline = req.Warning.EndDate
		to = StatusResolved
	default:
		return req, nil
	}
	if deadline == nil || !now.After(*deadline) {
		return req, nil
	}
	if IsTerminal(req.Status) {
		return req, nil
	}

	entry := dbmodels.AuditEntry{
		RequestID: req.ID,
		ActorID:   models.SystemActorID,
		Action:    models.ActionExpire,
		FromStage: req.Status,
		ToStage:   to,
		Note:      "closed automatically on deadline",
	}
	req.Status = to
	return req, &entry
}
