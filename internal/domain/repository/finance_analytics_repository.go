package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Granularidades de la serie de evolución.
const (
	GranularityDay   = "day"
	GranularityMonth = "month"
)

// PeriodFilter año y mes opcionales (0 = sin filtro).
type PeriodFilter struct {
	Year  int
	Month int
}

// FinanceKPIs totales agregados del período.
type FinanceKPIs struct {
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal
}

// FinanceAnalyticsRepository consultas de solo lectura para el dashboard financiero.
type FinanceAnalyticsRepository interface {
	GetKPIs(ctx context.Context, f PeriodFilter) (FinanceKPIs, error)
	GetTotalsByCompany(ctx context.Context, f PeriodFilter, limit int) ([]NamedTotal, error)
	GetTotalsByClassification(ctx context.Context, f PeriodFilter) ([]NamedTotal, error)
	GetEvolution(ctx context.Context, f PeriodFilter, granularity string) ([]PeriodTotal, error)
	// AvailableYears años con registros, del más reciente al más antiguo.
	AvailableYears(ctx context.Context) ([]int, error)
}
