package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
)

var _ repository.CostCenterRepository = (*CostCenterRepo)(nil)

const costCenterColumns = `id, name, COALESCE(code, ''), created_at`

// CostCenterRepo centros de costo sobre PostgreSQL.
type CostCenterRepo struct {
	pool *pgxpool.Pool
}

// NewCostCenterRepository construye el adaptador.
func NewCostCenterRepository(pool *pgxpool.Pool) *CostCenterRepo {
	return &CostCenterRepo{pool: pool}
}

// Create persiste un centro de costo; el código vacío se guarda como NULL.
func (r *CostCenterRepo) Create(ctx context.Context, cc *entity.CostCenter) error {
	query := `INSERT INTO cost_centers (id, name, code, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, cc.ID, cc.Name, nullIfEmpty(cc.Code), cc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cost center: %w", err)
	}
	return nil
}

func (r *CostCenterRepo) GetByID(ctx context.Context, id string) (*entity.CostCenter, error) {
	return r.getOne(ctx, `SELECT `+costCenterColumns+` FROM cost_centers WHERE id = $1`, id)
}

func (r *CostCenterRepo) GetByName(ctx context.Context, name string) (*entity.CostCenter, error) {
	return r.getOne(ctx, `SELECT `+costCenterColumns+` FROM cost_centers WHERE name = $1`, name)
}

// List ordenado por nombre.
func (r *CostCenterRepo) List(ctx context.Context) ([]*entity.CostCenter, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+costCenterColumns+` FROM cost_centers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	defer rows.Close()

	var list []*entity.CostCenter
	for rows.Next() {
		var cc entity.CostCenter
		if err := rows.Scan(&cc.ID, &cc.Name, &cc.Code, &cc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cost center: %w", err)
		}
		list = append(list, &cc)
	}
	return list, rows.Err()
}

func (r *CostCenterRepo) getOne(ctx context.Context, query, arg string) (*entity.CostCenter, error) {
	var cc entity.CostCenter
	err := r.pool.QueryRow(ctx, query, arg).Scan(&cc.ID, &cc.Name, &cc.Code, &cc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost center: %w", err)
	}
	return &cc, nil
}
