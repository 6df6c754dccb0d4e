package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/application/dto"
)

func TestLogNotifier_NotifyExpiry(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	alert := dto.ExpiryAlertDTO{
		GeneratedOn: "2025-01-15",
		Lots: []dto.ExpiringLotDTO{
			{ProductCode: "P-1", ProductName: "Yogur", LotNumber: "L1", ExpiresOn: "2025-01-20", Quantity: 4, DaysUntilExpiry: 5, Status: "NEAR_EXPIRY"},
		},
		LowStock: []dto.LowStockDTO{{Code: "P-2", Name: "Leche", TotalStock: 1, MinStock: 10}},
	}
	require.NoError(t, n.NotifyExpiry(context.Background(), alert))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &summary))
	assert.Equal(t, "warn", summary["level"])
	assert.Equal(t, "expiry_alert", summary["component"])
	assert.EqualValues(t, 1, summary["lots"])

	var lot map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &lot))
	assert.Equal(t, "L1", lot["lot"])
	assert.Equal(t, "NEAR_EXPIRY", lot["status"])
}
