package leavehandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ops-backend/db"
	"hr-ops-backend/lib/notification"
	requeststore "hr-ops-backend/lib/request/store"
	"hr-ops-backend/lib/workflow"
	"hr-ops-backend/models"
	requestapimodels "hr-ops-backend/models/api/request"
	dbmodels "hr-ops-backend/models/db"
)

type Provider interface {
	Create(userID string, data requestapimodels.LeaveCreateData) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: requeststore.NewInstance(db.DB),
	}
}

type impl struct {
	store requeststore.Provider
}

func (i impl) Create(userID string, data requestapimodels.LeaveCreateData) (id string, err error) {
	def, err := workflow.ForKind(models.KindLeave)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Request{
		Kind:        models.KindLeave,
		Status:      def.InitialStage().Name,
		RequesterID: userID,
		SubjectID:   userID,
		Reason:      data.Reason,
		Leave: dbmodels.LeaveDetails{
			Type:      data.Type,
			DateFrom:  &data.DateFrom,
			DateTo:    &data.DateTo,
			TotalDays: data.TotalDays(),
		},
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create leave request")
	}
	rec.ID = id
	log.
		WithField("request_id", id).
		WithField("requester_id", userID).
		Info("leave request created")
	notification.Instance.RequestCreated(rec)
	return id, nil
}
