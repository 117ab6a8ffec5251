package requeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-ops-backend/models"
	requestapimodels "hr-ops-backend/models/api/request"
	dbmodels "hr-ops-backend/models/db"
)

// ErrStaleState signals a lost read-modify-write race: the row moved
// on between load and save. Callers reload and re-present the
// decision, never retry blindly.
var ErrStaleState = errors.New("request was modified concurrently")

type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(id string) (rec *dbmodels.Request, err error)
	List(kind models.RequestKind, filter requestapimodels.RequestFilter) (list []dbmodels.Request, rowCount int64, err error)
	ListAll(kind models.RequestKind) (list []dbmodels.Request, err error)
	// SaveTransition persists an engine result: a version-checked
	// status update plus the audit entry, in one transaction.
	SaveTransition(rec dbmodels.Request, entry dbmodels.AuditEntry) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id string, err error) {
	err = i.db.
		Omit("Requester", "Subject", "AuditTrail").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
		Preload("Requester").
		Preload("Subject").
		Preload("AuditTrail", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		Preload("AuditTrail.Actor").
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

func (i impl) List(kind models.RequestKind, filter requestapimodels.RequestFilter) (list []dbmodels.Request, rowCount int64, err error) {
	list = []dbmodels.Request{}
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("kind = ?", kind)
	i.applyFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Requester").
		Preload("Subject").
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

func (i impl) ListAll(kind models.RequestKind) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Where("kind = ?", kind).
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

func (i impl) SaveTransition(rec dbmodels.Request, entry dbmodels.AuditEntry) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Model(&dbmodels.Request{}).
			Where("id = ?", rec.ID).
			Where("version = ?", rec.Version).
			Updates(map[string]interface{}{
				"status":            rec.Status,
				"version":           rec.Version + 1,
				"warning_level":     rec.Warning.Level,
				"cash_disburse_key": rec.Cash.DisburseKey,
				"cash_disbursed_at": rec.Cash.DisbursedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleState
		}
		entry.Actor = nil
		if err := tx.Create(&entry).Error; err != nil {
			return errors.Wrap(err, "failed to append audit entry")
		}
		return nil
	})
}

func (i impl) applyFilter(tx *gorm.DB, filter requestapimodels.RequestFilter) {
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if filter.RequesterID != "" {
		tx.Where("requester_id = ?", filter.RequesterID)
	}
	if filter.SubjectID != "" {
		tx.Where("subject_id = ?", filter.SubjectID)
	}
}
