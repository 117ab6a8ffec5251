package auditstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-ops-backend/models/db"
)

// Entries are written by the request store inside the transition
// transaction; this provider only reads the ledger, it deliberately
// has no write methods.
type Provider interface {
	List(requestID string) (list []dbmodels.AuditEntry, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List(requestID string) (list []dbmodels.AuditEntry, err error) {
	list = []dbmodels.AuditEntry{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Preload("Actor").
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
