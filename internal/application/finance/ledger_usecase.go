// Package finance contiene los casos de uso de registros financieros (ingresos/movimientos)
// y el dashboard financiero.
package finance

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
)

const (
	defaultPerPage = 25
	maxPerPage     = 200
	defaultStatus  = entity.LedgerStatusRegistered
	chartDayLayout = "02/01/2006"
)

// LedgerUseCase CRUD y listado filtrado de registros financieros.
// El IVA se recalcula en cada escritura con tax.ComputeVAT; nunca se toma del request.
type LedgerUseCase struct {
	repo               repository.LedgerEntryRepository
	companyRepo        repository.CompanyRepository
	costCenterRepo     repository.CostCenterRepository
	classificationRepo repository.ClassificationRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	repo repository.LedgerEntryRepository,
	companyRepo repository.CompanyRepository,
	costCenterRepo repository.CostCenterRepository,
	classificationRepo repository.ClassificationRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		repo:               repo,
		companyRepo:        companyRepo,
		costCenterRepo:     costCenterRepo,
		classificationRepo: classificationRepo,
	}
}

// Create registra un movimiento.
func (uc *LedgerUseCase) Create(ctx context.Context, in dto.LedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	entry := &entity.LedgerEntry{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := uc.apply(ctx, entry, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toLedgerResponse(entity.LedgerEntryView{LedgerEntry: *entry}), nil
}

// GetByID obtiene un movimiento; (nil, nil) si no existe.
func (uc *LedgerUseCase) GetByID(ctx context.Context, id string) (*dto.LedgerEntryResponse, error) {
	entry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return toLedgerResponse(entity.LedgerEntryView{LedgerEntry: *entry}), nil
}

// Update reemplaza los datos del movimiento y recalcula el IVA; (nil, nil) si no existe.
func (uc *LedgerUseCase) Update(ctx context.Context, id string, in dto.LedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	entry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	if err := uc.apply(ctx, entry, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return toLedgerResponse(entity.LedgerEntryView{LedgerEntry: *entry}), nil
}

// Delete elimina un movimiento.
func (uc *LedgerUseCase) Delete(ctx context.Context, id string) error {
	entry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// List aplica los filtros, pagina y arma la serie diaria del conjunto filtrado.
func (uc *LedgerUseCase) List(ctx context.Context, q dto.LedgerListQuery) (*dto.LedgerListResponse, error) {
	f, err := BuildLedgerFilter(q)
	if err != nil {
		return nil, err
	}
	views, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	daily, err := uc.repo.DailyTotals(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LedgerEntryResponse, 0, len(views))
	for _, v := range views {
		items = append(items, *toLedgerResponse(v))
	}
	chart := make([]dto.ChartPoint, 0, len(daily))
	for _, d := range daily {
		chart = append(chart, dto.ChartPoint{Label: d.Period.Format(chartDayLayout), Total: d.Total.IntPart()})
	}
	return &dto.LedgerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
		Chart: chart,
	}, nil
}

// BuildLedgerFilter traduce la query string a un filtro de repositorio.
// Montos no numéricos se ignoran; fechas mal formadas son entrada inválida.
func BuildLedgerFilter(q dto.LedgerListQuery) (repository.LedgerFilter, error) {
	f := repository.LedgerFilter{
		CompanyID:        strings.TrimSpace(q.CompanyID),
		CostCenterID:     strings.TrimSpace(q.CostCenterID),
		ClassificationID: strings.TrimSpace(q.ClassificationID),
	}
	if q.Min != "" {
		if v, err := clp.ParseAmount(q.Min); err == nil {
			f.MinAmount = &v
		}
	}
	if q.Max != "" {
		if v, err := clp.ParseAmount(q.Max); err == nil {
			f.MaxAmount = &v
		}
	}
	var err error
	if f.From, err = dto.ParseOptionalDate(q.From); err != nil {
		return f, err
	}
	if f.To, err = dto.ParseOptionalDate(q.To); err != nil {
		return f, err
	}

	switch q.Order {
	case repository.LedgerOrderDateAsc, repository.LedgerOrderAmountDesc, repository.LedgerOrderAmountAsc:
		f.Order = q.Order
	default:
		f.Order = repository.LedgerOrderDateDesc
	}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	f.Limit = perPage
	f.Offset = (page - 1) * perPage
	return f, nil
}

// apply valida el request y lo vuelca sobre entry, recalculando el IVA.
func (uc *LedgerUseCase) apply(ctx context.Context, entry *entity.LedgerEntry, in dto.LedgerEntryRequest) error {
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return err
	}
	if !in.GrossAmount.Equal(in.GrossAmount.Truncate(0)) {
		return fmt.Errorf("%w: el monto debe ser entero", domain.ErrInvalidInput)
	}
	if err := uc.checkRefs(ctx, in); err != nil {
		return err
	}

	docType := tax.NormalizeDocumentType(in.DocumentType)
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = defaultStatus
	}

	entry.Date = date
	entry.DocumentNumber = strings.TrimSpace(in.DocumentNumber)
	entry.DocumentType = docType
	entry.GrossAmount = in.GrossAmount
	entry.VAT = tax.ComputeVAT(in.GrossAmount, docType)
	entry.Description = strings.TrimSpace(in.Description)
	entry.Status = status
	entry.Detail = strings.TrimSpace(in.Detail)
	entry.CompanyID = strings.TrimSpace(in.CompanyID)
	entry.CostCenterID = strings.TrimSpace(in.CostCenterID)
	entry.ClassificationID = strings.TrimSpace(in.ClassificationID)
	return nil
}

// checkRefs verifica que los catálogos referenciados existan.
func (uc *LedgerUseCase) checkRefs(ctx context.Context, in dto.LedgerEntryRequest) error {
	if id := strings.TrimSpace(in.CompanyID); id != "" {
		c, err := uc.companyRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: empresa %s no existe", domain.ErrInvalidInput, id)
		}
	}
	if id := strings.TrimSpace(in.CostCenterID); id != "" {
		cc, err := uc.costCenterRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cc == nil {
			return fmt.Errorf("%w: centro de costo %s no existe", domain.ErrInvalidInput, id)
		}
	}
	if id := strings.TrimSpace(in.ClassificationID); id != "" {
		c, err := uc.classificationRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: clasificación %s no existe", domain.ErrInvalidInput, id)
		}
	}
	return nil
}

func toLedgerResponse(v entity.LedgerEntryView) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:                 v.ID,
		Date:               dto.FormatDate(v.Date),
		DocumentNumber:     v.DocumentNumber,
		DocumentType:       v.DocumentType,
		GrossAmount:        v.GrossAmount,
		VAT:                v.VAT,
		NetAmount:          v.GrossAmount.Sub(v.VAT),
		Description:        v.Description,
		Status:             v.Status,
		Detail:             v.Detail,
		CompanyID:          v.CompanyID,
		CompanyName:        v.CompanyName,
		CostCenterID:       v.CostCenterID,
		CostCenterName:     v.CostCenterName,
		ClassificationID:   v.ClassificationID,
		ClassificationName: v.ClassificationName,
		CreatedAt:          v.CreatedAt,
	}
}
