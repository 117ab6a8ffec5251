package audithandler

import (
	"hr-ops-backend/db"
	auditstore "hr-ops-backend/lib/audit/store"
	requestapimodels "hr-ops-backend/models/api/request"
)

// Read side of the ledger, serves the decision history of a request on
// its own without loading the request row.
type Provider interface {
	History(requestID string) (list []requestapimodels.AuditEntryView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: auditstore.NewInstance(db.DB),
	}
}

type impl struct {
	store auditstore.Provider
}

func (i impl) History(requestID string) ([]requestapimodels.AuditEntryView, error) {
	recs, err := i.store.List(requestID)
	if err != nil {
		return nil, err
	}
	result := make([]requestapimodels.AuditEntryView, 0, len(recs))
	for _, rec := range recs {
		result = append(result, requestapimodels.AuditEntryConvert(rec))
	}
	return result, nil
}
