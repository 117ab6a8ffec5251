package attendancestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	attendanceapimodels "hr-ops-backend/models/api/attendance"
	dbmodels "hr-ops-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AttendanceRecord) (id string, err error)
	GetForDay(employeeID string, day time.Time) (rec *dbmodels.AttendanceRecord, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter attendanceapimodels.AttendanceFilter) (list []dbmodels.AttendanceRecord, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AttendanceRecord) (id string, err error) {
	err = i.db.
		Omit("Employee").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetForDay(employeeID string, day time.Time) (*dbmodels.AttendanceRecord, error) {
	rec := dbmodels.AttendanceRecord{}
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("day = ?", day.Format("2006-01-02")).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.AttendanceRecord{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(filter attendanceapimodels.AttendanceFilter) (list []dbmodels.AttendanceRecord, rowCount int64, err error) {
	list = []dbmodels.AttendanceRecord{}
	tx := i.db.Model(&dbmodels.AttendanceRecord{})
	if filter.EmployeeID != "" {
		tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DateFrom != nil {
		tx.Where("day >= ?", filter.DateFrom.Format("2006-01-02"))
	}
	if filter.DateTo != nil {
		tx.Where("day <= ?", filter.DateTo.Format("2006-01-02"))
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("day DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Employee").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return list, rowCount, nil
}
