package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
)

// CostCenterUseCase casos de uso de centros de costo.
type CostCenterUseCase struct {
	repo repository.CostCenterRepository
}

// NewCostCenterUseCase construye el caso de uso.
func NewCostCenterUseCase(repo repository.CostCenterRepository) *CostCenterUseCase {
	return &CostCenterUseCase{repo: repo}
}

// Create crea un centro de costo; el nombre es único y el código opcional.
func (uc *CostCenterUseCase) Create(ctx context.Context, in dto.CreateCostCenterRequest) (*dto.CostCenterResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	cc := &entity.CostCenter{
		ID:        uuid.New().String(),
		Name:      name,
		Code:      strings.TrimSpace(in.Code),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, cc); err != nil {
		return nil, err
	}
	return toCostCenterResponse(cc), nil
}

// List centros de costo ordenados por nombre.
func (uc *CostCenterUseCase) List(ctx context.Context) ([]dto.CostCenterResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CostCenterResponse, 0, len(list))
	for _, cc := range list {
		items = append(items, *toCostCenterResponse(cc))
	}
	return items, nil
}

func toCostCenterResponse(cc *entity.CostCenter) *dto.CostCenterResponse {
	return &dto.CostCenterResponse{
		ID:        cc.ID,
		Name:      cc.Name,
		Code:      cc.Code,
		CreatedAt: cc.CreatedAt,
	}
}
