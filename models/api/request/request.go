package requestapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-ops-backend/models"
	apimodels "hr-ops-backend/models/api"
	dbmodels "hr-ops-backend/models/db"
)

type LeaveCreateData struct {
	Type     models.LeaveType `json:"type"`
	DateFrom time.Time        `json:"date_from"`
	DateTo   time.Time        `json:"date_to"`
	Reason   string           `json:"reason"`
}

func (r LeaveCreateData) Validate() error {
	if r.Type == "" {
		return errors.New("leave type is required")
	}
	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		return errors.New("leave period is required")
	}
	if r.DateTo.Before(r.DateFrom) {
		return errors.New("leave period ends before it starts")
	}
	return nil
}

// TotalDays counts calendar days of the period, inclusive. Both ends
// are reduced to their date first so zoned timestamps and DST shifts
// cannot skew the count.
func (r LeaveCreateData) TotalDays() int {
	from := time.Date(r.DateFrom.Year(), r.DateFrom.Month(), r.DateFrom.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(r.DateTo.Year(), r.DateTo.Month(), r.DateTo.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

type CashCreateData struct {
	AmountRequested float64 `json:"amount_requested"`
	Currency        string  `json:"currency"`
	Purpose         string  `json:"purpose"`
}

func (r CashCreateData) Validate() error {
	if r.AmountRequested <= 0 {
		return errors.New("requested amount must be positive")
	}
	if r.Purpose == "" {
		return errors.New("purpose is required")
	}
	return nil
}

type WarningCreateData struct {
	SubjectID string     `json:"subject_id"`
	Reason    string     `json:"reason"`
	ExpiresAt *time.Time `json:"expires_at"`
	// EndDate applies to PIPs only.
	EndDate *time.Time `json:"end_date"`
	IsPIP   bool       `json:"is_pip"`
}

func (r WarningCreateData) Validate() error {
	if r.SubjectID == "" {
		return errors.New("subject employee is required")
	}
	if r.Reason == "" {
		return errors.New("reason is required")
	}
	if r.IsPIP && r.EndDate == nil {
		return errors.New("a PIP needs an end date")
	}
	return nil
}

// DecisionData accompanies approve/reject/disburse/escalate calls.
type DecisionData struct {
	Note string `json:"note"`
}

func (r DecisionData) Validate() error {
	return nil
}

// ValidateRejection enforces the mandatory justification on rejects.
func (r DecisionData) ValidateRejection() error {
	if r.Note == "" {
		return errors.New("a rejection requires a note")
	}
	return nil
}

type RequestFilter struct {
	apimodels.Pagination
	Status      string `json:"status"`
	RequesterID string `json:"requester_id"`
	SubjectID   string `json:"subject_id"`
}

type AuditEntryView struct {
	ActorID   string                `json:"actor_id"`
	ActorName string                `json:"actor_name"`
	ActorRole models.UserRole       `json:"actor_role"`
	Action    models.WorkflowAction `json:"action"`
	FromStage string                `json:"from_stage"`
	ToStage   string                `json:"to_stage"`
	Note      string                `json:"note,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

type RequestView struct {
	ID            string             `json:"id"`
	Kind          models.RequestKind `json:"kind"`
	Status        string             `json:"status"`
	RequesterID   string             `json:"requester_id"`
	RequesterName string             `json:"requester_name"`
	SubjectID     string             `json:"subject_id"`
	SubjectName   string             `json:"subject_name"`
	Reason        string             `json:"reason,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Version       int                `json:"version"`

	Leave   *LeaveView   `json:"leave,omitempty"`
	Cash    *CashView    `json:"cash,omitempty"`
	Warning *WarningView `json:"warning,omitempty"`

	AuditTrail []AuditEntryView `json:"audit_trail,omitempty"`
}

type LeaveView struct {
	Type      models.LeaveType `json:"type"`
	DateFrom  *time.Time       `json:"date_from"`
	DateTo    *time.Time       `json:"date_to"`
	TotalDays int              `json:"total_days"`
}

type CashView struct {
	AmountRequested float64    `json:"amount_requested"`
	Currency        string     `json:"currency"`
	Purpose         string     `json:"purpose"`
	DisbursedAt     *time.Time `json:"disbursed_at,omitempty"`
}

type WarningView struct {
	Level     int        `json:"level"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func AuditEntryConvert(rec dbmodels.AuditEntry) AuditEntryView {
	actorName := ""
	if rec.Actor != nil {
		actorName = rec.Actor.GetFullName()
	} else if rec.ActorID == models.SystemActorID {
		actorName = "System"
	}
	return AuditEntryView{
		ActorID:   rec.ActorID,
		ActorName: actorName,
		ActorRole: rec.ActorRole,
		Action:    rec.Action,
		FromStage: rec.FromStage,
		ToStage:   rec.ToStage,
		Note:      rec.Note,
		CreatedAt: rec.CreatedAt,
	}
}

func RequestConvert(rec dbmodels.Request) RequestView {
	view := RequestView{
		ID:          rec.ID,
		Kind:        rec.Kind,
		Status:      rec.Status,
		RequesterID: rec.RequesterID,
		SubjectID:   rec.SubjectID,
		Reason:      rec.Reason,
		CreatedAt:   rec.CreatedAt,
		Version:     rec.Version,
	}
	if rec.Requester != nil {
		view.RequesterName = rec.Requester.GetFullName()
	}
	if rec.Subject != nil {
		view.SubjectName = rec.Subject.GetFullName()
	}
	switch rec.Kind {
	case models.KindLeave:
		view.Leave = &LeaveView{
			Type:      rec.Leave.Type,
			DateFrom:  rec.Leave.DateFrom,
			DateTo:    rec.Leave.DateTo,
			TotalDays: rec.Leave.TotalDays,
		}
	case models.KindCash:
		view.Cash = &CashView{
			AmountRequested: rec.Cash.AmountRequested,
			Currency:        rec.Cash.Currency,
			Purpose:         rec.Cash.Purpose,
			DisbursedAt:     rec.Cash.DisbursedAt,
		}
	case models.KindWarning, models.KindPIP:
		view.Warning = &WarningView{
			Level:     rec.Warning.Level,
			ExpiresAt: rec.Warning.ExpiresAt,
			EndDate:   rec.Warning.EndDate,
		}
	}
	for _, entry := range rec.AuditTrail {
		view.AuditTrail = append(view.AuditTrail, AuditEntryConvert(entry))
	}
	return view
}
