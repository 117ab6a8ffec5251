package dbmodels

import (
	"time"

	"hr-ops-backend/models"
)

type AttendanceRecord struct {
	BaseModel
	EmployeeID string    `gorm:"type:varchar(36);index:idx_attendance_day,unique"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID"`
	Day        time.Time `gorm:"type:date;index:idx_attendance_day,unique"`
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     models.AttendanceStatus `gorm:"type:varchar(20)"`
	Note       string                  `gorm:"type:text"`
}
