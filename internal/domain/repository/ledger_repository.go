package repository

import (
	"context"
	"time"

	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Órdenes aceptados por el listado de registros.
const (
	LedgerOrderDateDesc   = "fecha_desc"
	LedgerOrderDateAsc    = "fecha_asc"
	LedgerOrderAmountDesc = "monto_desc"
	LedgerOrderAmountAsc  = "monto_asc"
)

// LedgerFilter filtros del listado de registros financieros. Campos vacíos/nil no filtran.
type LedgerFilter struct {
	CompanyID        string
	CostCenterID     string
	ClassificationID string
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	From             *time.Time
	To               *time.Time
	Order            string
	Limit            int
	Offset           int
}

// PeriodTotal suma de montos de un período (día o mes).
type PeriodTotal struct {
	Period time.Time
	Total  decimal.Decimal
}

// NamedTotal suma de montos agrupada por un nombre (empresa, clasificación, ...).
type NamedTotal struct {
	Name  string // vacío si el registro no tiene el catálogo asignado
	Total decimal.Decimal
}

// LedgerEntryRepository define el puerto de persistencia para registros financieros.
type LedgerEntryRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	GetByID(ctx context.Context, id string) (*entity.LedgerEntry, error)
	Update(ctx context.Context, entry *entity.LedgerEntry) error
	Delete(ctx context.Context, id string) error
	// List devuelve la página pedida y el total de filas que cumplen el filtro.
	List(ctx context.Context, f LedgerFilter) ([]entity.LedgerEntryView, int, error)
	// DailyTotals serie diaria de montos para el mismo filtro (sin paginar).
	DailyTotals(ctx context.Context, f LedgerFilter) ([]PeriodTotal, error)
}
