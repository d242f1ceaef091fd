package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarDays(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want float64
	}{
		{"single day", date(2026, 3, 10), date(2026, 3, 10), 1},
		{"five days", date(2026, 3, 10), date(2026, 3, 14), 5},
		{"month boundary", date(2026, 1, 30), date(2026, 2, 2), 4},
		{"to before from", date(2026, 3, 14), date(2026, 3, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalendarDays(tt.from, tt.to))
		})
	}
}

func TestOverlapDays(t *testing.T) {
	windowStart := date(2026, 1, 1)
	windowEnd := date(2027, 1, 1)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want float64
	}{
		{"entirely inside", date(2026, 6, 1), date(2026, 6, 5), 5},
		{"entirely before window", date(2025, 6, 1), date(2025, 6, 5), 0},
		{"entirely after window", date(2027, 6, 1), date(2027, 6, 5), 0},
		{"spans start boundary", date(2025, 12, 30), date(2026, 1, 2), 2},
		{"spans end boundary", date(2026, 12, 30), date(2027, 1, 2), 2},
		{"exact window day one", date(2026, 1, 1), date(2026, 1, 1), 1},
		{"last day of window", date(2026, 12, 31), date(2026, 12, 31), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapDays(tt.from, tt.to, windowStart, windowEnd))
		})
	}
}

func TestUsedDays(t *testing.T) {
	windowStart := date(2026, 1, 1)
	windowEnd := date(2027, 1, 1)

	apps := []leave.LeaveApplication{
		{ID: "a", FromDate: date(2026, 2, 1), ToDate: date(2026, 2, 3)},  // 3 days
		{ID: "b", FromDate: date(2026, 5, 10), ToDate: date(2026, 5, 12)}, // 3 days
		{ID: "c", FromDate: date(2025, 7, 1), ToDate: date(2025, 7, 5)},  // outside window
	}

	assert.Equal(t, float64(6), UsedDays(apps, windowStart, windowEnd, ""))
	assert.Equal(t, float64(3), UsedDays(apps, windowStart, windowEnd, "a"))
	assert.Equal(t, float64(6), UsedDays(apps, windowStart, windowEnd, "c"))
}

func TestAdmissible(t *testing.T) {
	casual := leave.Policy{LeaveTypeName: "Casual", AllowedBalance: 10, NegativeBalance: false}

	t.Run("request exceeding balance is rejected", func(t *testing.T) {
		// 6 used, 5 requested: 6+5 > 10
		assert.False(t, Admissible(casual, 6, 5))
	})

	t.Run("request exactly filling balance is accepted", func(t *testing.T) {
		// 6 used, 4 requested: 6+4 = 10
		assert.True(t, Admissible(casual, 6, 4))
	})

	t.Run("negative balance policy always admits", func(t *testing.T) {
		unlimited := leave.Policy{LeaveTypeName: "Casual", AllowedBalance: 10, NegativeBalance: true}
		assert.True(t, Admissible(unlimited, 30, 100))
	})
}

func TestBalanceRecomputationIsIdempotent(t *testing.T) {
	windowStart := date(2026, 1, 1)
	windowEnd := date(2027, 1, 1)
	apps := []leave.LeaveApplication{
		{ID: "a", FromDate: date(2026, 3, 1), ToDate: date(2026, 3, 7)},
	}

	first := UsedDays(apps, windowStart, windowEnd, "")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, UsedDays(apps, windowStart, windowEnd, ""))
	}
}
