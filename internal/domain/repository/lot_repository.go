package repository

import (
	"context"

	"github.com/samka/gestion-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes. Los listados vienen ordenados
// por vencimiento ascendente.
type LotRepository interface {
	Create(ctx context.Context, lot *entity.Lot) error
	GetByID(ctx context.Context, id string) (*entity.Lot, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.Lot, error)
	// ListByProductForUpdate bloquea los lotes del producto dentro de la transacción.
	ListByProductForUpdate(ctx context.Context, productID string) ([]entity.Lot, error)
	ListAll(ctx context.Context) ([]entity.Lot, error)
	SumByProduct(ctx context.Context, productID string) (int, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}
