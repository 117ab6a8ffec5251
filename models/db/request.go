package dbmodels

import (
	"time"

	"hr-ops-backend/models"
)

// Request is the single record moved through an approval chain.
// One table serves every kind; the detail blocks are filled according
// to Kind and ignored otherwise. Requests are never deleted, a closed
// request keeps its terminal status and full audit trail.
type Request struct {
	BaseModel
	Kind        models.RequestKind `gorm:"type:varchar(20);index"`
	Status      string             `gorm:"type:varchar(50);index"`
	RequesterID string             `gorm:"type:varchar(36);index"`
	Requester   *Employee          `gorm:"foreignKey:RequesterID"`
	// SubjectID is the employee the record concerns. Equal to the
	// requester for leave and cash, the disciplined employee for
	// warnings and PIPs.
	SubjectID string    `gorm:"type:varchar(36);index"`
	Subject   *Employee `gorm:"foreignKey:SubjectID"`
	Reason    string    `gorm:"type:text"`
	// Version guards read-modify-write cycles, every successful
	// transition increments it and updates are predicated on the value
	// read (see request store).
	Version int `gorm:"not null;default:0"`

	Leave   LeaveDetails   `gorm:"embedded;embeddedPrefix:leave_"`
	Cash    CashDetails    `gorm:"embedded;embeddedPrefix:cash_"`
	Warning WarningDetails `gorm:"embedded;embeddedPrefix:warning_"`

	AuditTrail []AuditEntry `gorm:"foreignKey:RequestID"`
}

type LeaveDetails struct {
	Type      models.LeaveType `gorm:"type:varchar(20)"`
	DateFrom  *time.Time
	DateTo    *time.Time
	TotalDays int
}

type CashDetails struct {
	AmountRequested float64
	Currency        string `gorm:"type:varchar(10)"`
	Purpose         string `gorm:"type:text"`
	// DisburseKey deduplicates fund movement, a repeated disbursement
	// intent with the same key is rejected once status left Approved.
	DisburseKey string `gorm:"type:varchar(36)"`
	DisbursedAt *time.Time
}

type WarningDetails struct {
	Level     int
	ExpiresAt *time.Time
	// PIP end date, same lazy expiry handling as ExpiresAt.
	EndDate *time.Time
}
