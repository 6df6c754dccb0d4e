// Package pettycash contiene los casos de uso de caja chica: rendición de gastos,
// resumen mensual y sugerencia del tipo de documento.
package pettycash

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
	"github.com/samka/gestion-api/internal/domain/tax"
	"github.com/samka/gestion-api/pkg/clp"
	"github.com/shopspring/decimal"
)

// UseCase CRUD de gastos de caja chica.
type UseCase struct {
	repo repository.PettyCashRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.PettyCashRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create rinde un gasto nuevo.
func (uc *UseCase) Create(ctx context.Context, in dto.PettyCashRequest) (*dto.PettyCashResponse, error) {
	e := &entity.PettyCashExpense{ID: uuid.New().String(), CreatedAt: time.Now()}
	if err := apply(e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// GetByID obtiene un gasto; (nil, nil) si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.PettyCashResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	return toResponse(e), nil
}

// Update reemplaza los datos del gasto; (nil, nil) si no existe.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.PettyCashRequest) (*dto.PettyCashResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	if err := apply(e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toResponse(e), nil
}

// Delete elimina un gasto.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List gastos del más reciente al más antiguo, con el total rendido.
func (uc *UseCase) List(ctx context.Context, limit, offset int) (*dto.PettyCashListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Total(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PettyCashResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toResponse(e))
	}
	return &dto.PettyCashListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
		Total: total,
	}, nil
}

// Summary totales por mes ("2025-03"), en orden cronológico.
func (uc *UseCase) Summary(ctx context.Context) (*dto.PettyCashSummaryResponse, error) {
	months, err := uc.repo.MonthlyTotals(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.PettyCashSummaryResponse{Months: make([]dto.MonthlyTotalDTO, 0, len(months)), Total: decimal.Zero}
	for _, m := range months {
		out.Months = append(out.Months, dto.MonthlyTotalDTO{Month: m.Period.Format("2006-01"), Total: m.Total})
		out.Total = out.Total.Add(m.Total)
	}
	return out, nil
}

// NormalizeDocumentType valida el tipo de documento de caja chica; vacío es BOLETA.
func NormalizeDocumentType(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return entity.PettyCashDocBoleta, nil
	}
	docType := tax.NormalizeDocumentType(raw)
	for _, t := range entity.PettyCashDocumentTypes {
		if t == docType {
			return docType, nil
		}
	}
	return "", fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, raw)
}

func apply(e *entity.PettyCashExpense, in dto.PettyCashRequest) error {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return err
	}
	docType, err := NormalizeDocumentType(in.DocumentType)
	if err != nil {
		return err
	}
	responsible := strings.TrimSpace(in.Responsible)
	description := strings.TrimSpace(in.Description)
	if responsible == "" || description == "" {
		return domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() || !in.Amount.Equal(in.Amount.Truncate(0)) {
		return fmt.Errorf("%w: el monto debe ser un entero positivo", domain.ErrInvalidInput)
	}
	e.Date = date
	e.Amount = in.Amount
	e.Responsible = responsible
	e.Description = description
	e.DocumentNumber = strings.TrimSpace(in.DocumentNumber)
	e.DocumentType = docType
	return nil
}

func toResponse(e *entity.PettyCashExpense) *dto.PettyCashResponse {
	return &dto.PettyCashResponse{
		ID:             e.ID,
		Date:           dto.FormatDate(e.Date),
		Amount:         e.Amount,
		AmountLabel:    "$" + clp.Format(e.Amount),
		RecoverableVAT: tax.RecoverableVAT(e.Amount, e.DocumentType),
		Responsible:    e.Responsible,
		Description:    e.Description,
		DocumentNumber: e.DocumentNumber,
		DocumentType:   e.DocumentType,
		CreatedAt:      e.CreatedAt,
	}
}
