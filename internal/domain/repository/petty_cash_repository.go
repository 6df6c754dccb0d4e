package repository

import (
	"context"

	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PettyCashRepository puerto de persistencia para gastos de caja chica.
type PettyCashRepository interface {
	Create(ctx context.Context, e *entity.PettyCashExpense) error
	GetByID(ctx context.Context, id string) (*entity.PettyCashExpense, error)
	Update(ctx context.Context, e *entity.PettyCashExpense) error
	Delete(ctx context.Context, id string) error
	// List ordenado por fecha descendente.
	List(ctx context.Context, limit, offset int) ([]*entity.PettyCashExpense, error)
	// ListAll todos los gastos (entrenamiento del clasificador).
	ListAll(ctx context.Context) ([]*entity.PettyCashExpense, error)
	MonthlyTotals(ctx context.Context) ([]PeriodTotal, error)
	Total(ctx context.Context) (decimal.Decimal, error)
}
