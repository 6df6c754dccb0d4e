package repository

import (
	"context"

	"github.com/samka/gestion-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
}

// CostCenterRepository puerto de persistencia para centros de costo.
type CostCenterRepository interface {
	Create(ctx context.Context, cc *entity.CostCenter) error
	GetByID(ctx context.Context, id string) (*entity.CostCenter, error)
	GetByName(ctx context.Context, name string) (*entity.CostCenter, error)
	List(ctx context.Context) ([]*entity.CostCenter, error)
}

// ClassificationRepository puerto de persistencia para clasificaciones.
type ClassificationRepository interface {
	Create(ctx context.Context, c *entity.Classification) error
	GetByID(ctx context.Context, id string) (*entity.Classification, error)
	GetByName(ctx context.Context, name string) (*entity.Classification, error)
	List(ctx context.Context) ([]*entity.Classification, error)
}
