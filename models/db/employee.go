package dbmodels

import (
	"fmt"
	"hr-ops-backend/models"
	"time"
)

type Employee struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	JobTitle    string `gorm:"type:varchar(150)"`
	Department  string `gorm:"type:varchar(150)"`
	Role        models.UserRole   `gorm:"type:varchar(50)"`
	Status      models.UserStatus `gorm:"type:varchar(50)"`
	ManagerID   *string           `gorm:"type:varchar(36)"`
	Manager     *Employee         `gorm:"foreignKey:ManagerID"`
	IsActive    bool
	LastLogin   time.Time
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
