package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

const workerColumns = `w.id, w.company_id, w.name, w.rut, w.position, w.hired_on, w.terminated_on, w.severance_amount, w.created_at`

// WorkerRepo trabajadores sobre PostgreSQL.
type WorkerRepo struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository construye el adaptador de RRHH.
func NewWorkerRepository(pool *pgxpool.Pool) *WorkerRepo {
	return &WorkerRepo{pool: pool}
}

// Create persiste un trabajador.
func (r *WorkerRepo) Create(ctx context.Context, w *entity.Worker) error {
	query := `
		INSERT INTO workers (id, company_id, name, rut, position, hired_on, terminated_on, severance_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		w.ID, w.CompanyID, w.Name, w.RUT, w.Position, w.HiredOn, w.TerminatedOn, w.SeveranceAmount, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador; (nil, nil) si no existe.
func (r *WorkerRepo) GetByID(ctx context.Context, id string) (*entity.Worker, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers w WHERE w.id = $1`, id)
	w, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return w, nil
}

// Update reemplaza los datos del trabajador.
func (r *WorkerRepo) Update(ctx context.Context, w *entity.Worker) error {
	query := `
		UPDATE workers SET company_id = $2, name = $3, rut = $4, position = $5,
			hired_on = $6, terminated_on = $7, severance_amount = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		w.ID, w.CompanyID, w.Name, w.RUT, w.Position, w.HiredOn, w.TerminatedOn, w.SeveranceAmount,
	)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	return nil
}

// List ordenado por empresa y nombre.
func (r *WorkerRepo) List(ctx context.Context, f repository.WorkerFilter) ([]*entity.Worker, error) {
	where, args := workerWhere(f)
	query := `SELECT ` + workerColumns + ` FROM workers w
		JOIN companies c ON c.id = w.company_id` + where + `
		ORDER BY c.name, w.name`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// HeadcountByCompany activos y finiquitados de todas las empresas (incluye las sin trabajadores).
func (r *WorkerRepo) HeadcountByCompany(ctx context.Context) ([]repository.CompanyHeadcount, error) {
	query := `
	SELECT c.id, c.name,
	       COUNT(w.id) FILTER (WHERE w.terminated_on IS NULL)     AS active,
	       COUNT(w.id) FILTER (WHERE w.terminated_on IS NOT NULL) AS terminated
	FROM companies c
	LEFT JOIN workers w ON w.company_id = c.id
	GROUP BY c.id, c.name
	ORDER BY c.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("headcount by company: %w", err)
	}
	defer rows.Close()

	var out []repository.CompanyHeadcount
	for rows.Next() {
		var h repository.CompanyHeadcount
		if err := rows.Scan(&h.CompanyID, &h.CompanyName, &h.Active, &h.Terminated); err != nil {
			return nil, fmt.Errorf("scan headcount: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// HeadcountByPosition totales por empresa y cargo.
func (r *WorkerRepo) HeadcountByPosition(ctx context.Context, f repository.WorkerFilter) ([]repository.PositionHeadcount, error) {
	where, args := workerWhere(f)
	query := `
	SELECT c.name, w.position,
	       COUNT(*)                                          AS total,
	       COUNT(*) FILTER (WHERE w.terminated_on IS NULL)     AS active,
	       COUNT(*) FILTER (WHERE w.terminated_on IS NOT NULL) AS terminated
	FROM workers w
	JOIN companies c ON c.id = w.company_id` + where + `
	GROUP BY c.name, w.position
	ORDER BY c.name, w.position`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("headcount by position: %w", err)
	}
	defer rows.Close()

	var out []repository.PositionHeadcount
	for rows.Next() {
		var h repository.PositionHeadcount
		if err := rows.Scan(&h.CompanyName, &h.Position, &h.Total, &h.Active, &h.Terminated); err != nil {
			return nil, fmt.Errorf("scan position headcount: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// SeveranceByMonth finiquitos pagados agrupados por mes de término.
func (r *WorkerRepo) SeveranceByMonth(ctx context.Context, f repository.WorkerFilter) ([]repository.MonthlySeverance, error) {
	where, args := workerWhere(f)
	cond := " WHERE w.terminated_on IS NOT NULL"
	if where != "" {
		cond = where + " AND w.terminated_on IS NOT NULL"
	}
	query := `
	SELECT date_trunc('month', w.terminated_on)::date AS month, SUM(w.severance_amount)
	FROM workers w` + cond + `
	GROUP BY month
	ORDER BY month`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("severance by month: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlySeverance
	for rows.Next() {
		var m repository.MonthlySeverance
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("scan severance: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func workerWhere(f repository.WorkerFilter) (string, []any) {
	if f.CompanyID == "" {
		return "", nil
	}
	return " WHERE w.company_id = $1", []any{f.CompanyID}
}

func scanWorker(row pgx.Row) (*entity.Worker, error) {
	var w entity.Worker
	err := row.Scan(&w.ID, &w.CompanyID, &w.Name, &w.RUT, &w.Position,
		&w.HiredOn, &w.TerminatedOn, &w.SeveranceAmount, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
