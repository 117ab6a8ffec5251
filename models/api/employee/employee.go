package employeeapimodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"
	"hr-ops-backend/models"
	dbmodels "hr-ops-backend/models/db"
)

type EmployeeData struct {
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	JobTitle    string          `json:"job_title"`
	Department  string          `json:"department"`
	Role        models.UserRole `json:"role"`
	ManagerID   *string         `json:"manager_id"`
	Password    string          `json:"password,omitempty"`
}

func (r EmployeeData) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first and last name are required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("malformed email address")
	}
	if r.Role == "" {
		return errors.New("role is required")
	}
	return nil
}

type EmployeeView struct {
	ID          string            `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phone_number"`
	JobTitle    string            `json:"job_title"`
	Department  string            `json:"department"`
	Role        string            `json:"role"`
	Status      models.UserStatus `json:"status"`
	ManagerID   *string           `json:"manager_id,omitempty"`
	ManagerName string            `json:"manager_name,omitempty"`
	LastLogin   time.Time         `json:"last_login"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:          rec.ID,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Email:       rec.Email,
		PhoneNumber: rec.PhoneNumber,
		JobTitle:    rec.JobTitle,
		Department:  rec.Department,
		Role:        rec.Role.ToHuman(),
		Status:      rec.Status,
		ManagerID:   rec.ManagerID,
		LastLogin:   rec.LastLogin,
	}
	if rec.Manager != nil {
		view.ManagerName = rec.Manager.GetFullName()
	}
	return view
}
