package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, product_id, lot_number, manufactured_on, expires_on, quantity, created_at`

// LotRepo implementación sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote.
func (r *LotRepo) Create(ctx context.Context, l *entity.Lot) error {
	query := `
		INSERT INTO lots (id, product_id, lot_number, manufactured_on, expires_on, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, l.ID, l.ProductID, l.LotNumber, l.ManufacturedOn, l.ExpiresOn, l.Quantity, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(ctx context.Context, id string) (*entity.Lot, error) {
	var l entity.Lot
	err := r.q.QueryRow(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1`, id).Scan(
		&l.ID, &l.ProductID, &l.LotNumber, &l.ManufacturedOn, &l.ExpiresOn, &l.Quantity, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// ListByProduct lotes del producto por vencimiento ascendente.
func (r *LotRepo) ListByProduct(ctx context.Context, productID string) ([]entity.Lot, error) {
	return r.list(ctx, `SELECT `+lotColumns+` FROM lots WHERE product_id = $1 ORDER BY expires_on, lot_number, id`, productID)
}

// ListByProductForUpdate como ListByProduct pero bloquea las filas (SELECT FOR UPDATE).
func (r *LotRepo) ListByProductForUpdate(ctx context.Context, productID string) ([]entity.Lot, error) {
	return r.list(ctx, `SELECT `+lotColumns+` FROM lots WHERE product_id = $1 ORDER BY expires_on, lot_number, id FOR UPDATE`, productID)
}

// ListAll todos los lotes, por producto y vencimiento.
func (r *LotRepo) ListAll(ctx context.Context) ([]entity.Lot, error) {
	return r.list(ctx, `SELECT `+lotColumns+` FROM lots ORDER BY product_id, expires_on, lot_number, id`)
}

func (r *LotRepo) list(ctx context.Context, query string, args ...any) ([]entity.Lot, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var list []entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.ProductID, &l.LotNumber, &l.ManufacturedOn, &l.ExpiresOn, &l.Quantity, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// SumByProduct stock total del producto (0 si no tiene lotes).
func (r *LotRepo) SumByProduct(ctx context.Context, productID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0)::int FROM lots WHERE product_id = $1`, productID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum lots: %w", err)
	}
	return total, nil
}

// UpdateQuantity fija la cantidad de un lote (siempre > 0; los agotados se eliminan).
func (r *LotRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	cmd, err := r.q.Exec(ctx, `UPDATE lots SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update lot quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update lot quantity: lote %s no existe", id)
	}
	return nil
}

// Delete elimina un lote.
func (r *LotRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM lots WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	return nil
}
