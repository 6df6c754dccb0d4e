// Package notify contiene los adaptadores de salida para las alertas de vencimiento.
package notify

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/ports"
)

var _ ports.ExpiryNotifier = (*LogNotifier)(nil)

// LogNotifier escribe la alerta como eventos estructurados: un resumen y una línea por lote o producto.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier construye el notificador sobre el logger de la aplicación.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "expiry_alert").Logger()}
}

// NotifyExpiry registra la alerta en nivel warn.
func (n *LogNotifier) NotifyExpiry(_ context.Context, alert dto.ExpiryAlertDTO) error {
	n.log.Warn().
		Str("generated_on", alert.GeneratedOn).
		Int("lots", len(alert.Lots)).
		Int("low_stock", len(alert.LowStock)).
		Msg("alerta de vencimientos")

	for _, l := range alert.Lots {
		n.log.Warn().
			Str("product_code", l.ProductCode).
			Str("product", l.ProductName).
			Str("lot", l.LotNumber).
			Str("expires_on", l.ExpiresOn).
			Int("quantity", l.Quantity).
			Int("days_until_expiry", l.DaysUntilExpiry).
			Str("status", l.Status).
			Msg("lote por vencer")
	}
	for _, p := range alert.LowStock {
		n.log.Warn().
			Str("product_code", p.Code).
			Str("product", p.Name).
			Int("total_stock", p.TotalStock).
			Int("min_stock", p.MinStock).
			Msg("stock bajo el mínimo")
	}
	return nil
}
