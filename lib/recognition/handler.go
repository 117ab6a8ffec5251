package recognitionhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ops-backend/db"
	employeestore "hr-ops-backend/lib/employee/store"
	recognitionstore "hr-ops-backend/lib/recognition/store"
	recognitionapimodels "hr-ops-backend/models/api/recognition"
	dbmodels "hr-ops-backend/models/db"
)

type Provider interface {
	Give(giverID string, data recognitionapimodels.RecognitionData) (id string, hMsg string, err error)
	ListForEmployee(employeeID string) (list []recognitionapimodels.RecognitionView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         recognitionstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         recognitionstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Give(giverID string, data recognitionapimodels.RecognitionData) (id string, hMsg string, err error) {
	if giverID == data.EmployeeID {
		return "", "you cannot recognize yourself", nil
	}
	subject, err := i.employeeStore.GetByID(data.EmployeeID)
	if err != nil {
		return "", "", err
	}
	if subject == nil {
		return "", "the employee was not found", nil
	}
	rec := dbmodels.Recognition{
		EmployeeID: data.EmployeeID,
		GivenByID:  giverID,
		Points:     data.Points,
		Message:    data.Message,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to save recognition")
	}
	log.
		WithField("employee_id", data.EmployeeID).
		WithField("points", data.Points).
		Info("recognition given")
	return id, "", nil
}

func (i impl) ListForEmployee(employeeID string) ([]recognitionapimodels.RecognitionView, error) {
	recs, err := i.store.ListForEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	result := make([]recognitionapimodels.RecognitionView, 0, len(recs))
	for _, rec := range recs {
		result = append(result, recognitionapimodels.RecognitionConvert(rec))
	}
	return result, nil
}
