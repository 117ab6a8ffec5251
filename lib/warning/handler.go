package warninghandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ops-backend/db"
	employeestore "hr-ops-backend/lib/employee/store"
	"hr-ops-backend/lib/notification"
	requeststore "hr-ops-backend/lib/request/store"
	"hr-ops-backend/lib/workflow"
	"hr-ops-backend/models"
	requestapimodels "hr-ops-backend/models/api/request"
	dbmodels "hr-ops-backend/models/db"
)

type Provider interface {
	Create(actorID string, data requestapimodels.WarningCreateData) (id string, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         requeststore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         requeststore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Create(actorID string, data requestapimodels.WarningCreateData) (id string, hMsg string, err error) {
	subject, err := i.employeeStore.GetByID(data.SubjectID)
	if err != nil {
		return "", "", err
	}
	if subject == nil {
		return "", "the employee concerned was not found", nil
	}

	kind := models.KindWarning
	if data.IsPIP {
		kind = models.KindPIP
	}
	def, err := workflow.ForKind(kind)
	if err != nil {
		return "", "", err
	}
	initial := def.InitialStage().Name
	rec := dbmodels.Request{
		Kind:        kind,
		Status:      initial,
		RequesterID: actorID,
		SubjectID:   data.SubjectID,
		Reason:      data.Reason,
		Warning: dbmodels.WarningDetails{
			Level:     workflow.WarningLevel(initial),
			ExpiresAt: data.ExpiresAt,
			EndDate:   data.EndDate,
		},
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create warning")
	}
	rec.ID = id
	log.
		WithField("request_id", id).
		WithField("subject_id", data.SubjectID).
		WithField("kind", kind).
		Info("disciplinary record created")
	notification.Instance.RequestCreated(rec)
	return id, "", nil
}
