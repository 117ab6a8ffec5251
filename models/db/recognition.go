package dbmodels

type Recognition struct {
	BaseModel
	EmployeeID string    `gorm:"type:varchar(36);index"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID"`
	GivenByID  string    `gorm:"type:varchar(36)"`
	GivenBy    *Employee `gorm:"foreignKey:GivenByID"`
	Points     int
	Message    string `gorm:"type:text"`
}
