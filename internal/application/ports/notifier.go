package ports

import (
	"context"

	"github.com/samka/gestion-api/internal/application/dto"
)

// ExpiryNotifier puerto de salida para entregar la alerta de vencimientos
// (correo, chat, log estructurado). La aplicación sólo conoce este contrato.
type ExpiryNotifier interface {
	NotifyExpiry(ctx context.Context, alert dto.ExpiryAlertDTO) error
}
