package dbmodels

import (
	"hr-ops-backend/models"
)

// AuditEntry records one transition of a request. Entries are append
// only: created by the transition handlers, never updated or removed.
type AuditEntry struct {
	BaseModel
	RequestID string                `gorm:"type:varchar(36);index"`
	ActorID   string                `gorm:"type:varchar(36)"`
	Actor     *Employee             `gorm:"foreignKey:ActorID"`
	ActorRole models.UserRole       `gorm:"type:varchar(50)"`
	Action    models.WorkflowAction `gorm:"type:varchar(20)"`
	FromStage string                `gorm:"type:varchar(50)"`
	ToStage   string                `gorm:"type:varchar(50)"`
	Note      string                `gorm:"type:text"`
}
