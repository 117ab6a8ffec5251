package recognitionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-ops-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Recognition) (id string, err error)
	ListForEmployee(employeeID string) (list []dbmodels.Recognition, err error)
	ListAll() (list []dbmodels.Recognition, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Recognition) (id string, err error) {
	err = i.db.
		Omit("Employee", "GivenBy").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListForEmployee(employeeID string) (list []dbmodels.Recognition, err error) {
	list = []dbmodels.Recognition{}
	err = i.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Preload("Employee").
		Preload("GivenBy").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll() (list []dbmodels.Recognition, err error) {
	list = []dbmodels.Recognition{}
	err = i.db.
		Order("created_at DESC").
		Preload("Employee").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
