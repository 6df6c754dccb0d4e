package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilExpiry(t *testing.T) {
	today := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysUntilExpiry(date(2025, 1, 10), today))
	assert.Equal(t, 1, DaysUntilExpiry(date(2025, 1, 11), today))
	assert.Equal(t, -10, DaysUntilExpiry(date(2024, 12, 31), today))
	assert.Equal(t, 365, DaysUntilExpiry(date(2026, 1, 10), today))
}

func TestStatusForDays(t *testing.T) {
	assert.Equal(t, LotStatusExpired, StatusForDays(-1, DefaultNearExpiryDays))
	assert.Equal(t, LotStatusNearExpiry, StatusForDays(0, DefaultNearExpiryDays))
	assert.Equal(t, LotStatusNearExpiry, StatusForDays(30, DefaultNearExpiryDays))
	assert.Equal(t, LotStatusOK, StatusForDays(31, DefaultNearExpiryDays))

	assert.True(t, LotStatusExpired.NeedsAttention())
	assert.True(t, LotStatusNearExpiry.NeedsAttention())
	assert.False(t, LotStatusOK.NeedsAttention())
}
