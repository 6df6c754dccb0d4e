package repository

import (
	"context"
	"time"

	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// WorkerFilter filtro opcional por empresa.
type WorkerFilter struct {
	CompanyID string
}

// CompanyHeadcount trabajadores activos y finiquitados de una empresa.
type CompanyHeadcount struct {
	CompanyID   string
	CompanyName string
	Active      int
	Terminated  int
}

// PositionHeadcount resumen por empresa y cargo.
type PositionHeadcount struct {
	CompanyName string
	Position    string
	Total       int
	Active      int
	Terminated  int
}

// MonthlySeverance monto de finiquitos pagados en un mes.
type MonthlySeverance struct {
	Month time.Time
	Total decimal.Decimal
}

// WorkerRepository puerto de persistencia para trabajadores.
type WorkerRepository interface {
	Create(ctx context.Context, w *entity.Worker) error
	GetByID(ctx context.Context, id string) (*entity.Worker, error)
	Update(ctx context.Context, w *entity.Worker) error
	// List ordenado por empresa y nombre.
	List(ctx context.Context, f WorkerFilter) ([]*entity.Worker, error)
	HeadcountByCompany(ctx context.Context) ([]CompanyHeadcount, error)
	HeadcountByPosition(ctx context.Context, f WorkerFilter) ([]PositionHeadcount, error)
	SeveranceByMonth(ctx context.Context, f WorkerFilter) ([]MonthlySeverance, error)
}
