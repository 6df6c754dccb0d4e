// Package hr contiene los casos de uso de recursos humanos: ficha de trabajadores y dashboard.
package hr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	domainhr "github.com/samka/gestion-api/internal/domain/hr"
	"github.com/samka/gestion-api/internal/domain/repository"
	"github.com/samka/gestion-api/pkg/rut"
	"github.com/shopspring/decimal"
)

// WorkerUseCase alta, edición y consulta de trabajadores.
type WorkerUseCase struct {
	repo        repository.WorkerRepository
	companyRepo repository.CompanyRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository, companyRepo repository.CompanyRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo, companyRepo: companyRepo}
}

// Create registra un trabajador. El RUT se valida (módulo 11) y se guarda normalizado.
func (uc *WorkerUseCase) Create(ctx context.Context, in dto.WorkerRequest) (*dto.WorkerResponse, error) {
	w := &entity.Worker{ID: uuid.New().String(), CreatedAt: time.Now()}
	if err := uc.apply(ctx, w, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return toWorkerResponse(w), nil
}

// GetByID obtiene un trabajador; (nil, nil) si no existe.
func (uc *WorkerUseCase) GetByID(ctx context.Context, id string) (*dto.WorkerResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return toWorkerResponse(w), nil
}

// Update reemplaza la ficha; (nil, nil) si no existe.
func (uc *WorkerUseCase) Update(ctx context.Context, id string, in dto.WorkerRequest) (*dto.WorkerResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	if err := uc.apply(ctx, w, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return toWorkerResponse(w), nil
}

// List trabajadores ordenados por empresa y nombre; companyID vacío = todas.
func (uc *WorkerUseCase) List(ctx context.Context, companyID string) ([]dto.WorkerResponse, error) {
	list, err := uc.repo.List(ctx, repository.WorkerFilter{CompanyID: companyID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		out = append(out, *toWorkerResponse(w))
	}
	return out, nil
}

// Dashboard dotación por empresa (siempre global), por empresa y cargo, y finiquitos por mes.
// companyID filtra las dos últimas secciones.
func (uc *WorkerUseCase) Dashboard(ctx context.Context, companyID string) (*dto.HRDashboardDTO, error) {
	f := repository.WorkerFilter{CompanyID: companyID}
	companies, err := uc.repo.HeadcountByCompany(ctx)
	if err != nil {
		return nil, err
	}
	positions, err := uc.repo.HeadcountByPosition(ctx, f)
	if err != nil {
		return nil, err
	}
	severance, err := uc.repo.SeveranceByMonth(ctx, f)
	if err != nil {
		return nil, err
	}

	out := &dto.HRDashboardDTO{
		CompanyID:        companyID,
		Companies:        make([]dto.CompanyHeadcountDTO, 0, len(companies)),
		Positions:        make([]dto.PositionHeadcountDTO, 0, len(positions)),
		SeveranceByMonth: make([]dto.MonthlyTotalDTO, 0, len(severance)),
		TotalSeverance:   decimal.Zero,
	}
	for _, c := range companies {
		out.Companies = append(out.Companies, dto.CompanyHeadcountDTO(c))
	}
	for _, p := range positions {
		out.Positions = append(out.Positions, dto.PositionHeadcountDTO(p))
	}
	for _, s := range severance {
		out.SeveranceByMonth = append(out.SeveranceByMonth, dto.MonthlyTotalDTO{Month: s.Month.Format("2006-01"), Total: s.Total})
		out.TotalSeverance = out.TotalSeverance.Add(s.Total)
	}
	return out, nil
}

func (uc *WorkerUseCase) apply(ctx context.Context, w *entity.Worker, in dto.WorkerRequest) error {
	companyID := strings.TrimSpace(in.CompanyID)
	name := strings.TrimSpace(in.Name)
	if companyID == "" || name == "" {
		return domain.ErrInvalidInput
	}
	normalized, err := rut.Normalize(in.RUT)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	hiredOn, err := dto.ParseOptionalDate(in.HiredOn)
	if err != nil {
		return err
	}
	terminatedOn, err := dto.ParseOptionalDate(in.TerminatedOn)
	if err != nil {
		return err
	}
	if hiredOn != nil && terminatedOn != nil && terminatedOn.Before(*hiredOn) {
		return fmt.Errorf("%w: finiquito anterior al contrato", domain.ErrInvalidInput)
	}
	if in.SeveranceAmount.IsNegative() {
		return domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return fmt.Errorf("%w: empresa %s no existe", domain.ErrInvalidInput, companyID)
	}

	w.CompanyID = companyID
	w.Name = name
	w.RUT = normalized
	w.Position = strings.TrimSpace(in.Position)
	w.HiredOn = hiredOn
	w.TerminatedOn = terminatedOn
	w.SeveranceAmount = in.SeveranceAmount
	return nil
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	return &dto.WorkerResponse{
		ID:              w.ID,
		CompanyID:       w.CompanyID,
		Name:            w.Name,
		RUT:             w.RUT,
		Position:        w.Position,
		HiredOn:         dto.FormatOptionalDate(w.HiredOn),
		TerminatedOn:    dto.FormatOptionalDate(w.TerminatedOn),
		SeveranceAmount: w.SeveranceAmount,
		Active:          w.Active(),
		ServiceTime:     domainhr.ServiceTime(w.HiredOn, w.TerminatedOn),
		CreatedAt:       w.CreatedAt,
	}
}
