package attendancehandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ops-backend/db"
	attendancestore "hr-ops-backend/lib/attendance/store"
	"hr-ops-backend/models"
	attendanceapimodels "hr-ops-backend/models/api/attendance"
	dbmodels "hr-ops-backend/models/db"
)

// Check-ins after this hour count as late.
const lateHour = 9

type Provider interface {
	CheckIn(userID string, data attendanceapimodels.CheckInData) (hMsg string, err error)
	CheckOut(userID string) (hMsg string, err error)
	List(filter attendanceapimodels.AttendanceFilter) (list []attendanceapimodels.AttendanceView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: attendancestore.NewInstance(db.DB),
	}
}

type impl struct {
	store attendancestore.Provider
}

// dayOf buckets a moment into its local calendar day. Truncating the
// instant would split days on the UTC boundary instead.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (i impl) CheckIn(userID string, data attendanceapimodels.CheckInData) (hMsg string, err error) {
	now := time.Now()
	day := dayOf(now)
	existing, err := i.store.GetForDay(userID, day)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "already checked in today", nil
	}
	status := models.AttendancePresent
	if now.Hour() >= lateHour {
		status = models.AttendanceLate
	}
	rec := dbmodels.AttendanceRecord{
		EmployeeID: userID,
		Day:        day,
		CheckIn:    &now,
		Status:     status,
		Note:       data.Note,
	}
	_, err = i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to record check-in")
	}
	log.WithField("employee_id", userID).Info("checked in")
	return "", nil
}

func (i impl) CheckOut(userID string) (hMsg string, err error) {
	now := time.Now()
	day := dayOf(now)
	existing, err := i.store.GetForDay(userID, day)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "no check-in recorded today", nil
	}
	if existing.CheckOut != nil {
		return "already checked out today", nil
	}
	err = i.store.Update(existing.ID, map[string]interface{}{
		"CheckOut": &now,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to record check-out")
	}
	return "", nil
}

func (i impl) List(filter attendanceapimodels.AttendanceFilter) ([]attendanceapimodels.AttendanceView, int64, error) {
	recs, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]attendanceapimodels.AttendanceView, 0, len(recs))
	for _, rec := range recs {
		result = append(result, attendanceapimodels.AttendanceConvert(rec))
	}
	return result, rowCount, nil
}
