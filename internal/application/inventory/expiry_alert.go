package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/ports"
	"github.com/samka/gestion-api/internal/domain/inventory"
	"github.com/samka/gestion-api/internal/domain/repository"
)

// ExpiryAlertUseCase arma y envía la alerta de lotes vencidos / por vencer y productos bajo mínimo.
type ExpiryAlertUseCase struct {
	productRepo repository.ProductRepository
	lotRepo     repository.LotRepository
	notifier    ports.ExpiryNotifier
	loc         *time.Location
	nearDays    int
	now         func() time.Time
	log         zerolog.Logger
}

// NewExpiryAlertUseCase construye el caso de uso.
func NewExpiryAlertUseCase(
	productRepo repository.ProductRepository,
	lotRepo repository.LotRepository,
	notifier ports.ExpiryNotifier,
	loc *time.Location,
	nearDays int,
	log zerolog.Logger,
) *ExpiryAlertUseCase {
	return &ExpiryAlertUseCase{
		productRepo: productRepo,
		lotRepo:     lotRepo,
		notifier:    notifier,
		loc:         loc,
		nearDays:    nearDays,
		now:         time.Now,
		log:         log,
	}
}

// Build calcula la alerta a la fecha de hoy sin enviarla.
func (uc *ExpiryAlertUseCase) Build(ctx context.Context) (dto.ExpiryAlertDTO, error) {
	products, lotsByProduct, err := loadStock(ctx, uc.productRepo, uc.lotRepo)
	if err != nil {
		return dto.ExpiryAlertDTO{}, err
	}
	today := dateIn(uc.now(), uc.loc)
	alert := dto.ExpiryAlertDTO{
		GeneratedOn: dto.FormatDate(today),
		Lots:        []dto.ExpiringLotDTO{},
		LowStock:    []dto.LowStockDTO{},
	}
	for _, p := range products {
		lots := lotsByProduct[p.ID]
		for _, l := range lots {
			days := inventory.DaysUntilExpiry(l.ExpiresOn, today)
			status := inventory.StatusForDays(days, uc.nearDays)
			if !status.NeedsAttention() {
				continue
			}
			alert.Lots = append(alert.Lots, dto.ExpiringLotDTO{
				ProductID:       p.ID,
				ProductCode:     p.Code,
				ProductName:     p.Name,
				LotNumber:       l.LotNumber,
				ExpiresOn:       dto.FormatDate(l.ExpiresOn),
				Quantity:        l.Quantity,
				DaysUntilExpiry: days,
				Status:          string(status),
			})
		}
		if total := inventory.TotalStock(lots); total < p.MinStock {
			alert.LowStock = append(alert.LowStock, dto.LowStockDTO{
				ProductID:  p.ID,
				Code:       p.Code,
				Name:       p.Name,
				TotalStock: total,
				MinStock:   p.MinStock,
			})
		}
	}
	return alert, nil
}

// Send arma la alerta y la entrega al notificador. Una alerta vacía no se envía.
func (uc *ExpiryAlertUseCase) Send(ctx context.Context) (*dto.ExpiryAlertSentResponse, error) {
	alert, err := uc.Build(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ExpiryAlertSentResponse{Lots: len(alert.Lots), LowStock: len(alert.LowStock)}
	if alert.Empty() {
		uc.log.Debug().Msg("sin lotes por vencer ni stock bajo; no se envía alerta")
		return resp, nil
	}
	if err := uc.notifier.NotifyExpiry(ctx, alert); err != nil {
		return nil, err
	}
	resp.Sent = true
	return resp, nil
}
