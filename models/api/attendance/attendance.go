package attendanceapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-ops-backend/models"
	apimodels "hr-ops-backend/models/api"
	dbmodels "hr-ops-backend/models/db"
)

type CheckInData struct {
	Note string `json:"note"`
}

func (r CheckInData) Validate() error {
	return nil
}

type AttendanceFilter struct {
	apimodels.Pagination
	EmployeeID string     `json:"employee_id"`
	DateFrom   *time.Time `json:"date_from"`
	DateTo     *time.Time `json:"date_to"`
}

func (r AttendanceFilter) Validate() error {
	if r.DateFrom != nil && r.DateTo != nil && r.DateTo.Before(*r.DateFrom) {
		return errors.New("period ends before it starts")
	}
	return nil
}

type AttendanceView struct {
	ID           string                  `json:"id"`
	EmployeeID   string                  `json:"employee_id"`
	EmployeeName string                  `json:"employee_name"`
	Day          time.Time               `json:"day"`
	CheckIn      *time.Time              `json:"check_in,omitempty"`
	CheckOut     *time.Time              `json:"check_out,omitempty"`
	Status       models.AttendanceStatus `json:"status"`
	Note         string                  `json:"note,omitempty"`
}

func AttendanceConvert(rec dbmodels.AttendanceRecord) AttendanceView {
	name := ""
	if rec.Employee != nil {
		name = rec.Employee.GetFullName()
	}
	return AttendanceView{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: name,
		Day:          rec.Day,
		CheckIn:      rec.CheckIn,
		CheckOut:     rec.CheckOut,
		Status:       rec.Status,
		Note:         rec.Note,
	}
}
