package workflow

import (
	"hr-ops-backend/models"
	dbmodels "hr-ops-backend/models/db"
)

// TransitionResult carries the updated request snapshot and the audit
// entry describing the hop. The engine mutates nothing in place,
// persisting both parts atomically is the caller's job.
type TransitionResult struct {
	Request dbmodels.Request
	Entry   dbmodels.AuditEntry
}

// AttemptTransition validates and applies one transition against a
// freshly loaded request snapshot. Precondition order is fixed:
// terminal check, stage resolution, role check. Each violation yields
// its own error type, see errors.go.
func (d Definition) AttemptTransition(req dbmodels.Request, actor Actor, action models.WorkflowAction, note string) (TransitionResult, error) {
	if d.IsTerminal(req.Status) {
		if action == models.ActionDisburse && req.Status == StatusApproved {
			return d.disburse(req, actor, note)
		}
		return TransitionResult{}, AlreadyTerminalError{Status: req.Status}
	}

	stage, err := d.ResolveStage(req.Status)
	if err != nil {
		return TransitionResult{}, err
	}

	// Disburse only exists at Approved, handled above. Mid-chain it is a
	// wrong action, not a wrong actor, so it never reaches the role gate.
	if action == models.ActionDisburse {
		return TransitionResult{}, InvalidActionError{Action: action, Status: req.Status}
	}

	if !stage.AllowsRole(actor.Role) {
		return TransitionResult{}, UnauthorizedActorError{Role: actor.Role, Stage: stage.Name}
	}

	var to string
	switch action {
	case models.ActionReject:
		to = stage.OnReject
	case models.ActionApprove:
		to, err = d.advance(req, stage.OnApprove)
	case models.ActionEscalate:
		if req.Kind != models.KindWarning && req.Kind != models.KindPIP {
			return TransitionResult{}, InvalidActionError{Action: action, Status: req.Status}
		}
		to, err = d.advance(req, stage.OnApprove)
	default:
		return TransitionResult{}, InvalidActionError{Action: action, Status: req.Status}
	}
	if err != nil {
		return TransitionResult{}, err
	}

	return d.apply(req, actor, action, note, to), nil
}

// advance resolves the effective next status, skipping stages whose
// condition evaluates false against the request payload. The walk
// tracks every stage it passes, starting from the current one, so a
// graph that loops back is caught instead of moving the request to an
// earlier stage.
func (d Definition) advance(req dbmodels.Request, next string) (string, error) {
	visited := map[string]bool{req.Status: true}
	for {
		if d.IsTerminal(next) {
			return next, nil
		}
		if visited[next] {
			return "", MisconfiguredError{Kind: d.Kind, Detail: "stage graph cycles through " + next}
		}
		visited[next] = true
		stage, err := d.ResolveStage(next)
		if err != nil {
			return "", MisconfiguredError{Kind: d.Kind, Detail: "transition targets unknown stage " + next}
		}
		if stage.Condition == nil || stage.Condition(req) {
			return next, nil
		}
		next = stage.OnApprove
	}
}

// Disbursement is a distinct action rather than an ordinary stage: it
// moves funds, requires the cashier rather than the approval chain,
// and must never apply twice. The second attempt finds Paid and fails
// the terminal check upstream.
func (d Definition) disburse(req dbmodels.Request, actor Actor, note string) (TransitionResult, error) {
	if req.Kind != models.KindCash {
		return TransitionResult{}, InvalidActionError{Action: models.ActionDisburse, Status: req.Status}
	}
	if actor.Role != models.CashierRole {
		return TransitionResult{}, UnauthorizedActorError{Role: actor.Role, Stage: StatusApproved}
	}
	return d.apply(req, actor, models.ActionDisburse, note, StatusPaid), nil
}

func (d Definition) apply(req dbmodels.Request, actor Actor, action models.WorkflowAction, note, to string) TransitionResult {
	entry := dbmodels.AuditEntry{
		RequestID: req.ID,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    action,
		FromStage: req.Status,
		ToStage:   to,
		Note:      note,
	}
	req.Status = to
	return TransitionResult{Request: req, Entry: entry}
}
