package inventory

import (
	"context"

	"github.com/samka/gestion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback: ningún cambio de lotes ni del libro queda a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		ledgerRepo repository.LedgerEntryRepository,
	) error) error
}
