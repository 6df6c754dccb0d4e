package inventory

import "time"

// LotStatus estado de un lote según los días que faltan para su vencimiento.
type LotStatus string

const (
	LotStatusExpired    LotStatus = "EXPIRED"
	LotStatusNearExpiry LotStatus = "NEAR_EXPIRY"
	LotStatusOK         LotStatus = "OK"
)

// DefaultNearExpiryDays ventana (inclusive) en la que un lote se considera por vencer.
const DefaultNearExpiryDays = 30

// DaysUntilExpiry días calendario entre today y expiresOn (negativo si ya venció).
// Sólo se consideran las fechas, no la hora.
func DaysUntilExpiry(expiresOn, today time.Time) int {
	e := time.Date(expiresOn.Year(), expiresOn.Month(), expiresOn.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// StatusForDays EXPIRED (<0), NEAR_EXPIRY (0..nearDays) u OK.
func StatusForDays(days, nearDays int) LotStatus {
	switch {
	case days < 0:
		return LotStatusExpired
	case days <= nearDays:
		return LotStatusNearExpiry
	default:
		return LotStatusOK
	}
}

// NeedsAttention indica si el estado debe aparecer en las alertas de vencimiento.
func (s LotStatus) NeedsAttention() bool {
	return s == LotStatusExpired || s == LotStatusNearExpiry
}
