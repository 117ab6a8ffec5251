package requestapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLeaveTotalDays(t *testing.T) {
	t.Run(`single day period counts as one`, func(t *testing.T) {
		day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		data := LeaveCreateData{DateFrom: day, DateTo: day}
		require.Equal(t, 1, data.TotalDays())
	})

	t.Run(`count survives a DST offset change between the ends`, func(t *testing.T) {
		// A spring-forward between the ends leaves the span one hour
		// short of a whole number of days.
		data := LeaveCreateData{
			DateFrom: time.Date(2026, 3, 7, 0, 0, 0, 0, time.FixedZone("EST", -5*3600)),
			DateTo:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.FixedZone("EDT", -4*3600)),
		}
		require.Equal(t, 3, data.TotalDays())
	})

	t.Run(`zoned timestamps count by date, not by elapsed hours`, func(t *testing.T) {
		zone := time.FixedZone("WAT", 3600)
		data := LeaveCreateData{
			DateFrom: time.Date(2026, 6, 1, 22, 0, 0, 0, zone),
			DateTo:   time.Date(2026, 6, 3, 6, 0, 0, 0, zone),
		}
		require.Equal(t, 3, data.TotalDays())
	})
}
