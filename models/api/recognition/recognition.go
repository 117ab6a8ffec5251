package recognitionapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "hr-ops-backend/models/db"
)

type RecognitionData struct {
	EmployeeID string `json:"employee_id"`
	Points     int    `json:"points"`
	Message    string `json:"message"`
}

func (r RecognitionData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("employee is required")
	}
	if r.Points <= 0 {
		return errors.New("points must be positive")
	}
	return nil
}

type RecognitionView struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	GivenByName  string    `json:"given_by_name"`
	Points       int       `json:"points"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func RecognitionConvert(rec dbmodels.Recognition) RecognitionView {
	view := RecognitionView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Points:     rec.Points,
		Message:    rec.Message,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	if rec.GivenBy != nil {
		view.GivenByName = rec.GivenBy.GetFullName()
	}
	return view
}
