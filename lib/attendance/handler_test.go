package attendancehandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDayOf(t *testing.T) {
	zone := time.FixedZone("WAT", 3600)

	t.Run(`morning and evening of the same local day share a bucket`, func(t *testing.T) {
		morning := time.Date(2026, 3, 10, 8, 15, 0, 0, zone)
		evening := time.Date(2026, 3, 10, 23, 40, 0, 0, zone)
		require.Equal(t, dayOf(morning), dayOf(evening))
	})

	t.Run(`the bucket follows the local date, not the UTC one`, func(t *testing.T) {
		// 00:30 local is still the previous day in UTC.
		afterMidnight := time.Date(2026, 3, 11, 0, 30, 0, 0, zone)
		day := dayOf(afterMidnight)
		require.Equal(t, 11, day.Day())
		require.Equal(t, time.March, day.Month())
		require.True(t, day.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, zone)))
	})
}
