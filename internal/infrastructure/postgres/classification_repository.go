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

var _ repository.ClassificationRepository = (*ClassificationRepo)(nil)

// ClassificationRepo clasificaciones contables sobre PostgreSQL.
type ClassificationRepo struct {
	pool *pgxpool.Pool
}

func NewClassificationRepository(pool *pgxpool.Pool) *ClassificationRepo {
	return &ClassificationRepo{pool: pool}
}

func (r *ClassificationRepo) Create(ctx context.Context, c *entity.Classification) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO classifications (id, name, created_at) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert classification: %w", err)
	}
	return nil
}

func (r *ClassificationRepo) GetByID(ctx context.Context, id string) (*entity.Classification, error) {
	return r.getOne(ctx, `SELECT id, name, created_at FROM classifications WHERE id = $1`, id)
}

func (r *ClassificationRepo) GetByName(ctx context.Context, name string) (*entity.Classification, error) {
	return r.getOne(ctx, `SELECT id, name, created_at FROM classifications WHERE name = $1`, name)
}

func (r *ClassificationRepo) List(ctx context.Context) ([]*entity.Classification, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM classifications ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Classification
	for rows.Next() {
		var c entity.Classification
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ClassificationRepo) getOne(ctx context.Context, query, arg string) (*entity.Classification, error) {
	var c entity.Classification
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get classification: %w", err)
	}
	return &c, nil
}
