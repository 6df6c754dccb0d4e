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

// ClassificationUseCase casos de uso de clasificaciones de registros.
type ClassificationUseCase struct {
	repo repository.ClassificationRepository
}

// NewClassificationUseCase construye el caso de uso.
func NewClassificationUseCase(repo repository.ClassificationRepository) *ClassificationUseCase {
	return &ClassificationUseCase{repo: repo}
}

// Create crea una clasificación de nombre único.
func (uc *ClassificationUseCase) Create(ctx context.Context, in dto.CreateClassificationRequest) (*dto.ClassificationResponse, error) {
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
	c := &entity.Classification{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.ClassificationResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
}

// List clasificaciones ordenadas por nombre.
func (uc *ClassificationUseCase) List(ctx context.Context) ([]dto.ClassificationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClassificationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ClassificationResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return items, nil
}
