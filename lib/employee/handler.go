package employeehandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ops-backend/db"
	employeestore "hr-ops-backend/lib/employee/store"
	authutils "hr-ops-backend/lib/utils/auth-utils"
	"hr-ops-backend/models"
	employeeapimodels "hr-ops-backend/models/api/employee"
	dbmodels "hr-ops-backend/models/db"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeData) (id string, hMsg string, err error)
	GetByID(id string) (view employeeapimodels.EmployeeView, err error)
	Update(id string, data employeeapimodels.EmployeeData) (hMsg string, err error)
	List() (list []employeeapimodels.EmployeeView, err error)
	Dismiss(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(data employeeapimodels.EmployeeData) (id string, hMsg string, err error) {
	existing, err := i.store.FindByEmail(data.Email)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "an employee with this email already exists", nil
	}
	if data.Password == "" {
		return "", "a password is required for a new account", nil
	}
	rec := dbmodels.Employee{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		JobTitle:    data.JobTitle,
		Department:  data.Department,
		Role:        data.Role,
		Status:      models.WorkingStatus,
		ManagerID:   data.ManagerID,
		Password:    authutils.GetMD5Hash(data.Password),
		IsActive:    true,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create employee")
	}
	log.WithField("employee_id", id).Info("employee created")
	return id, "", nil
}

func (i impl) GetByID(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, errors.New("employee not found")
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData) (hMsg string, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "employee not found", nil
	}
	updMap := map[string]interface{}{
		"FirstName":   data.FirstName,
		"LastName":    data.LastName,
		"PhoneNumber": data.PhoneNumber,
		"JobTitle":    data.JobTitle,
		"Department":  data.Department,
		"Role":        data.Role,
		"ManagerID":   data.ManagerID,
	}
	if data.Password != "" {
		updMap["Password"] = authutils.GetMD5Hash(data.Password)
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "failed to update employee")
	}
	return "", nil
}

func (i impl) List() ([]employeeapimodels.EmployeeView, error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, nil
}

func (i impl) Dismiss(id string) error {
	return i.store.Update(id, map[string]interface{}{
		"Status":   models.DismissedStatus,
		"IsActive": false,
	})
}
