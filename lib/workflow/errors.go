package workflow

import (
	"fmt"

	"hr-ops-backend/models"
)

// Business-rule violations are returned as typed errors so callers can
// map them to user-facing responses without string matching.
// MisconfiguredError is the exception: it signals a defective stage
// graph and belongs in logs and alerts, not in a toast.

type AlreadyTerminalError struct {
	Status string
}

func (e AlreadyTerminalError) Error() string {
	return fmt.Sprintf("request is already closed with status %q", e.Status)
}

type UnknownStageError struct {
	Kind   models.RequestKind
	Status string
}

func (e UnknownStageError) Error() string {
	return fmt.Sprintf("status %q is not a stage of the %v workflow", e.Status, e.Kind)
}

type UnauthorizedActorError struct {
	Role  models.UserRole
	Stage string
}

func (e UnauthorizedActorError) Error() string {
	return fmt.Sprintf("role %v is not allowed to decide stage %q", e.Role, e.Stage)
}

type InvalidActionError struct {
	Action models.WorkflowAction
	Status string
}

func (e InvalidActionError) Error() string {
	return fmt.Sprintf("action %v is not applicable to status %q", e.Action, e.Status)
}

type MisconfiguredError struct {
	Kind   models.RequestKind
	Detail string
}

func (e MisconfiguredError) Error() string {
	return fmt.Sprintf("workflow %v is misconfigured: %s", e.Kind, e.Detail)
}

func IsUserFacing(err error) bool {
	switch err.(type) {
	case AlreadyTerminalError, UnauthorizedActorError, InvalidActionError:
		return true
	}
	return false
}
