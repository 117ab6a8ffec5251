package notification

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"hr-ops-backend/db"
	employeestore "hr-ops-backend/lib/employee/store"
	"hr-ops-backend/lib/smtp"
	"hr-ops-backend/lib/workflow"
	dbmodels "hr-ops-backend/models/db"
)

// The engine itself never notifies anyone. This sink runs after a
// transition is persisted: the next stage's approvers get an action
// request, the requester learns about terminal outcomes. Mail failures
// are logged and swallowed, the transition already happened.
type Provider interface {
	RequestCreated(rec dbmodels.Request)
	TransitionApplied(rec dbmodels.Request, entry dbmodels.AuditEntry)
}

var Instance Provider

func NewHandler(senderAddress string) {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
		sender:        senderAddress,
	}
}

type impl struct {
	employeeStore employeestore.Provider
	sender        string
}

func (i impl) GetLogger(rec dbmodels.Request) *log.Entry {
	return log.
		WithField("request_id", rec.ID).
		WithField("kind", rec.Kind)
}

func (i impl) RequestCreated(rec dbmodels.Request) {
	i.notifyNextApprovers(rec, i.GetLogger(rec))
}

func (i impl) TransitionApplied(rec dbmodels.Request, entry dbmodels.AuditEntry) {
	logger := i.GetLogger(rec)
	if workflow.IsTerminal(rec.Status) {
		i.notifyRequester(rec, entry, logger)
		return
	}
	i.notifyNextApprovers(rec, logger)
}

func (i impl) notifyRequester(rec dbmodels.Request, entry dbmodels.AuditEntry, logger *log.Entry) {
	if rec.Requester == nil || rec.Requester.Email == "" {
		return
	}
	subject := fmt.Sprintf("%s %s", rec.Kind.ToHuman(), rec.Status)
	message := fmt.Sprintf("Your %s is now %q.", rec.Kind.ToHuman(), rec.Status)
	if entry.Note != "" {
		message = fmt.Sprintf("%s\r\nNote: %s", message, entry.Note)
	}
	if err := smtp.Instance.SendEMail(i.sender, rec.Requester.Email, message, subject); err != nil {
		logger.WithError(err).Error("failed to notify the requester")
	}
}

func (i impl) notifyNextApprovers(rec dbmodels.Request, logger *log.Entry) {
	def, err := workflow.ForKind(rec.Kind)
	if err != nil {
		logger.WithError(err).Error("no workflow definition for notification")
		return
	}
	stage, err := def.ResolveStage(rec.Status)
	if err != nil {
		logger.WithError(err).Error("request status resolves to no stage")
		return
	}
	subject := fmt.Sprintf("%s awaiting your decision", rec.Kind.ToHuman())
	message := fmt.Sprintf("A %s is waiting at stage %q.", rec.Kind.ToHuman(), stage.Name)
	for _, role := range stage.Roles {
		approvers, err := i.employeeStore.ListByRole(role)
		if err != nil {
			logger.WithError(err).Error("failed to list approvers for notification")
			continue
		}
		for _, approver := range approvers {
			if approver.Email == "" {
				continue
			}
			if err = smtp.Instance.SendEMail(i.sender, approver.Email, message, subject); err != nil {
				logger.WithError(err).WithField("approver_id", approver.ID).Error("failed to notify approver")
			}
		}
	}
}
