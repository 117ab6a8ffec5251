package cashhandler

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

const defaultCurrency = "XAF"

type Provider interface {
	Create(userID string, data requestapimodels.CashCreateData) (id string, err error)
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

func (i impl) Create(userID string, data requestapimodels.CashCreateData) (id string, err error) {
	def, err := workflow.ForKind(models.KindCash)
	if err != nil {
		return "", err
	}
	currency := data.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	rec := dbmodels.Request{
		Kind:        models.KindCash,
		Status:      def.InitialStage().Name,
		RequesterID: userID,
		SubjectID:   userID,
		Reason:      data.Purpose,
		Cash: dbmodels.CashDetails{
			AmountRequested: data.AmountRequested,
			Currency:        currency,
			Purpose:         data.Purpose,
		},
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create cash request")
	}
	rec.ID = id
	log.
		WithField("request_id", id).
		WithField("requester_id", userID).
		WithField("amount", data.AmountRequested).
		Info("cash request created")
	notification.Instance.RequestCreated(rec)
	return id, nil
}
