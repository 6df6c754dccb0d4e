package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.PettyCashRepository = (*PettyCashRepo)(nil)

const pettyCashColumns = `id, date, amount, responsible, description, document_number, document_type, created_at`

// PettyCashRepo gastos de caja chica sobre PostgreSQL.
type PettyCashRepo struct {
	pool *pgxpool.Pool
}

// NewPettyCashRepository construye el adaptador de caja chica.
func NewPettyCashRepository(pool *pgxpool.Pool) *PettyCashRepo {
	return &PettyCashRepo{pool: pool}
}

// Create persiste un gasto.
func (r *PettyCashRepo) Create(ctx context.Context, e *entity.PettyCashExpense) error {
	query := `
		INSERT INTO petty_cash_expenses (` + pettyCashColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Date, e.Amount, e.Responsible, e.Description, e.DocumentNumber, e.DocumentType, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert petty cash expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto; (nil, nil) si no existe.
func (r *PettyCashRepo) GetByID(ctx context.Context, id string) (*entity.PettyCashExpense, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+pettyCashColumns+` FROM petty_cash_expenses WHERE id = $1`, id)
	e, err := scanPettyCash(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get petty cash expense: %w", err)
	}
	return e, nil
}

// Update reemplaza los datos del gasto.
func (r *PettyCashRepo) Update(ctx context.Context, e *entity.PettyCashExpense) error {
	query := `
		UPDATE petty_cash_expenses
		SET date = $2, amount = $3, responsible = $4, description = $5, document_number = $6, document_type = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Date, e.Amount, e.Responsible, e.Description, e.DocumentNumber, e.DocumentType,
	)
	if err != nil {
		return fmt.Errorf("update petty cash expense: %w", err)
	}
	return nil
}

// Delete elimina un gasto.
func (r *PettyCashRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM petty_cash_expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete petty cash expense: %w", err)
	}
	return nil
}

// List página ordenada por fecha descendente.
func (r *PettyCashRepo) List(ctx context.Context, limit, offset int) ([]*entity.PettyCashExpense, error) {
	query := `SELECT ` + pettyCashColumns + ` FROM petty_cash_expenses
		ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	return r.query(ctx, query, limit, offset)
}

// ListAll todos los gastos, en orden de creación.
func (r *PettyCashRepo) ListAll(ctx context.Context) ([]*entity.PettyCashExpense, error) {
	return r.query(ctx, `SELECT `+pettyCashColumns+` FROM petty_cash_expenses ORDER BY created_at`)
}

// MonthlyTotals total gastado por mes, en orden cronológico.
func (r *PettyCashRepo) MonthlyTotals(ctx context.Context) ([]repository.PeriodTotal, error) {
	query := `
		SELECT date_trunc('month', date)::date AS month, SUM(amount)
		FROM petty_cash_expenses
		GROUP BY month
		ORDER BY month`
	return queryPeriodTotals(ctx, r.pool, query)
}

// Total suma de todos los gastos.
func (r *PettyCashRepo) Total(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM petty_cash_expenses`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("petty cash total: %w", err)
	}
	return total, nil
}

func (r *PettyCashRepo) query(ctx context.Context, query string, args ...any) ([]*entity.PettyCashExpense, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list petty cash expenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.PettyCashExpense
	for rows.Next() {
		e, err := scanPettyCash(rows)
		if err != nil {
			return nil, fmt.Errorf("scan petty cash expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanPettyCash(row pgx.Row) (*entity.PettyCashExpense, error) {
	var e entity.PettyCashExpense
	err := row.Scan(&e.ID, &e.Date, &e.Amount, &e.Responsible, &e.Description,
		&e.DocumentNumber, &e.DocumentType, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
