package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samka/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.FinanceAnalyticsRepository = (*FinanceAnalyticsRepo)(nil)

// FinanceAnalyticsRepo consultas de solo lectura para el dashboard financiero.
type FinanceAnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewFinanceAnalyticsRepository construye el adaptador de analítica.
func NewFinanceAnalyticsRepository(pool *pgxpool.Pool) *FinanceAnalyticsRepo {
	return &FinanceAnalyticsRepo{pool: pool}
}

// periodWhere filtra por año y mes de la fecha del registro (0 = sin filtro).
func periodWhere(f repository.PeriodFilter) (string, []any) {
	switch {
	case f.Year > 0 && f.Month > 0:
		return ` WHERE EXTRACT(YEAR FROM e.date) = $1 AND EXTRACT(MONTH FROM e.date) = $2`, []any{f.Year, f.Month}
	case f.Year > 0:
		return ` WHERE EXTRACT(YEAR FROM e.date) = $1`, []any{f.Year}
	case f.Month > 0:
		return ` WHERE EXTRACT(MONTH FROM e.date) = $1`, []any{f.Month}
	}
	return "", nil
}

// GetKPIs total, cantidad y promedio de montos del período. Cero si no hay filas.
func (r *FinanceAnalyticsRepo) GetKPIs(ctx context.Context, f repository.PeriodFilter) (repository.FinanceKPIs, error) {
	where, args := periodWhere(f)
	query := `
	SELECT
	    COALESCE(SUM(e.gross_amount), 0) AS total,
	    COUNT(*)                         AS count,
	    COALESCE(AVG(e.gross_amount), 0) AS average
	FROM ledger_entries e` + where

	var k repository.FinanceKPIs
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&k.Total, &k.Count, &k.Average); err != nil {
		return repository.FinanceKPIs{}, fmt.Errorf("analytics.GetKPIs: %w", err)
	}
	return k, nil
}

// GetTotalsByCompany los `limit` mayores totales por empresa; sin empresa se agrupa con nombre vacío.
func (r *FinanceAnalyticsRepo) GetTotalsByCompany(ctx context.Context, f repository.PeriodFilter, limit int) ([]repository.NamedTotal, error) {
	where, args := periodWhere(f)
	query := fmt.Sprintf(`
	SELECT COALESCE(c.name, '') AS name, SUM(e.gross_amount) AS total
	FROM ledger_entries e
	LEFT JOIN companies c ON c.id = e.company_id%s
	GROUP BY c.name
	ORDER BY total DESC
	LIMIT $%d`, where, len(args)+1)
	return r.namedTotals(ctx, "analytics.GetTotalsByCompany", query, append(args, limit)...)
}

// GetTotalsByClassification totales por clasificación, de mayor a menor.
func (r *FinanceAnalyticsRepo) GetTotalsByClassification(ctx context.Context, f repository.PeriodFilter) ([]repository.NamedTotal, error) {
	where, args := periodWhere(f)
	query := `
	SELECT COALESCE(cl.name, '') AS name, SUM(e.gross_amount) AS total
	FROM ledger_entries e
	LEFT JOIN classifications cl ON cl.id = e.classification_id` + where + `
	GROUP BY cl.name
	ORDER BY total DESC`
	return r.namedTotals(ctx, "analytics.GetTotalsByClassification", query, args...)
}

// GetEvolution serie diaria o mensual (date_trunc) en orden cronológico.
func (r *FinanceAnalyticsRepo) GetEvolution(ctx context.Context, f repository.PeriodFilter, granularity string) ([]repository.PeriodTotal, error) {
	unit := "month"
	if granularity == repository.GranularityDay {
		unit = "day"
	}
	where, args := periodWhere(f)
	query := `
	SELECT date_trunc('` + unit + `', e.date)::date AS period, SUM(e.gross_amount) AS total
	FROM ledger_entries e` + where + `
	GROUP BY period
	ORDER BY period`
	out, err := queryPeriodTotals(ctx, r.pool, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetEvolution: %w", err)
	}
	return out, nil
}

// AvailableYears años con registros, del más reciente al más antiguo.
func (r *FinanceAnalyticsRepo) AvailableYears(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT EXTRACT(YEAR FROM date)::int AS y FROM ledger_entries ORDER BY y DESC`)
	if err != nil {
		return nil, fmt.Errorf("analytics.AvailableYears: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("analytics.AvailableYears scan: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (r *FinanceAnalyticsRepo) namedTotals(ctx context.Context, op, query string, args ...any) ([]repository.NamedTotal, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []repository.NamedTotal
	for rows.Next() {
		var name string
		var total decimal.Decimal
		if err := rows.Scan(&name, &total); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, repository.NamedTotal{Name: name, Total: total})
	}
	return out, rows.Err()
}
