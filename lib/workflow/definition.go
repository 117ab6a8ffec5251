package workflow

import (
	"hr-ops-backend/models"
	dbmodels "hr-ops-backend/models/db"
)

// Terminal statuses. A request in one of these accepts no further
// transitions, except Approved which still admits cash disbursement.
const (
	StatusApproved = "Approved"
	StatusDeclined = "Declined"
	StatusPaid     = "Paid"
	StatusExpired  = "Expired"
	StatusResolved = "Resolved"
)

// Condition decides whether a stage is actually required for the given
// request. A stage whose condition evaluates false is skipped when the
// chain advances into it.
type Condition func(req dbmodels.Request) bool

// Stage is one decision point of a workflow: who may decide and where
// approval or rejection leads.
type Stage struct {
	Name      string
	Roles     []models.UserRole
	Condition Condition
	OnApprove string
	OnReject  string
}

func (s Stage) AllowsRole(role models.UserRole) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Definition is the immutable stage graph for one request kind.
type Definition struct {
	Kind   models.RequestKind
	Stages []Stage
}

func (d Definition) InitialStage() Stage {
	return d.Stages[0]
}

func (d Definition) ResolveStage(name string) (Stage, error) {
	for _, s := range d.Stages {
		if s.Name == name {
			return s, nil
		}
	}
	return Stage{}, UnknownStageError{Kind: d.Kind, Status: name}
}

// IsTerminal reports whether a status admits no further transitions.
// The terminal set is shared by every definition.
func IsTerminal(name string) bool {
	switch name {
	case StatusApproved, StatusDeclined, StatusPaid, StatusExpired, StatusResolved:
		return true
	}
	return false
}

func (d Definition) IsTerminal(name string) bool {
	return IsTerminal(name)
}

// StageIndex returns the position of a stage in the chain, with
// terminals ordered past the last stage. Used by the projection layer
// to report progress.
func (d Definition) StageIndex(name string) int {
	for idx, s := range d.Stages {
		if s.Name == name {
			return idx
		}
	}
	if d.IsTerminal(name) {
		return len(d.Stages)
	}
	return -1
}

// Actor is the user attempting a transition. The engine trusts the
// role it is given, authenticating the user is the caller's concern.
type Actor struct {
	ID   string
	Role models.UserRole
}
