package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-ops-backend/models"
	dbmodels "hr-ops-backend/models/db"
)

func TestApplyExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	newWarning := func(deadline *time.Time) dbmodels.Request {
		rec := dbmodels.Request{Kind: models.KindWarning, Status: WarningStageLevel2}
		rec.ID = "warn-1"
		rec.Warning.ExpiresAt = deadline
		return rec
	}

	t.Run(`an overdue warning expires with a single system entry`, func(t *testing.T) {
		rec, entry := ApplyExpiry(newWarning(&past), now)
		require.Equal(t, StatusExpired, rec.Status)
		require.NotNil(t, entry)
		require.Equal(t, models.SystemActorID, entry.ActorID)
		require.Equal(t, models.ActionExpire, entry.Action)
		require.Equal(t, WarningStageLevel2, entry.FromStage)

		// second pass converges, no extra entry
		rec, entry = ApplyExpiry(rec, now)
		require.Equal(t, StatusExpired, rec.Status)
		require.Nil(t, entry)
	})

	t.Run(`a live warning is left unchanged`, func(t *testing.T) {
		rec, entry := ApplyExpiry(newWarning(&future), now)
		require.Equal(t, WarningStageLevel2, rec.Status)
		require.Nil(t, entry)
	})

	t.Run(`no deadline means no expiry`, func(t *testing.T) {
		rec, entry := ApplyExpiry(newWarning(nil), now)
		require.Equal(t, WarningStageLevel2, rec.Status)
		require.Nil(t, entry)
	})

	t.Run(`an ended PIP resolves`, func(t *testing.T) {
		rec := dbmodels.Request{Kind: models.KindPIP, Status: WarningStagePIP}
		rec.Warning.EndDate = &past
		rec, entry := ApplyExpiry(rec, now)
		require.Equal(t, StatusResolved, rec.Status)
		require.NotNil(t, entry)
	})

	t.Run(`other kinds are never touched`, func(t *testing.T) {
		rec := dbmodels.Request{Kind: models.KindCash, Status: CashStagePendingCFO}
		rec, entry := ApplyExpiry(rec, now)
		require.Equal(t, CashStagePendingCFO, rec.Status)
		require.Nil(t, entry)
	})
}
