// Package inventory contiene los casos de uso del inventario perecible: salidas de stock
// por vencimiento (FEFO), ingreso de lotes, vista general y alertas.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/inventory"
	"github.com/samka/gestion-api/internal/domain/repository"
	"github.com/samka/gestion-api/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// WithdrawStockUseCase retira unidades de un producto consumiendo primero los lotes que vencen antes
// y registra la venta en el libro, todo en una sola transacción.
type WithdrawStockUseCase struct {
	txRunner TxRunner
	loc      *time.Location
	now      func() time.Time
	log      zerolog.Logger
}

// NewWithdrawStockUseCase construye el caso de uso. loc define qué día es "hoy" para la fecha de la venta.
func NewWithdrawStockUseCase(txRunner TxRunner, loc *time.Location, log zerolog.Logger) *WithdrawStockUseCase {
	return &WithdrawStockUseCase{
		txRunner: txRunner,
		loc:      loc,
		now:      time.Now,
		log:      log,
	}
}

// WithdrawInput entrada de una salida de stock.
type WithdrawInput struct {
	ProductID  string
	Quantity   int
	SaleAmount decimal.Decimal
}

// Withdraw ejecuta la salida:
//  1. bloquea el producto y sus lotes (SELECT FOR UPDATE)
//  2. planifica el consumo FEFO sobre los lotes leídos
//  3. elimina los lotes agotados y descuenta el último lote tocado
//  4. crea un único registro VENTA por SaleAmount con fecha de hoy
//
// Errores: domain.ErrInvalidInput, domain.ErrNotFound, *domain.InsufficientStockError (sin cambios)
// y *domain.PersistenceError (todo revertido, no se reintenta).
func (uc *WithdrawStockUseCase) Withdraw(ctx context.Context, in WithdrawInput) (*dto.WithdrawStockResponse, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	// los montos se guardan en pesos enteros (NUMERIC(14,0))
	if in.ProductID == "" || in.Quantity < 1 || in.SaleAmount.IsNegative() || !in.SaleAmount.Equal(in.SaleAmount.Truncate(0)) {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	var out *dto.WithdrawStockResponse

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		lotRepo repository.LotRepository,
		ledgerRepo repository.LedgerEntryRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return domain.NewPersistenceError("bloquear producto", err)
		}
		if product == nil {
			return domain.ErrNotFound
		}
		lots, err := lotRepo.ListByProductForUpdate(ctx, product.ID)
		if err != nil {
			return domain.NewPersistenceError("bloquear lotes", err)
		}

		plan, err := inventory.PlanWithdrawal(lots, in.Quantity)
		if err != nil {
			return err
		}

		for _, id := range plan.Deletions() {
			if err := lotRepo.Delete(ctx, id); err != nil {
				return domain.NewPersistenceError("eliminar lote", err)
			}
		}
		if eff, ok := plan.Decrement(); ok {
			if err := lotRepo.UpdateQuantity(ctx, eff.LotID, eff.Remaining); err != nil {
				return domain.NewPersistenceError("descontar lote", err)
			}
		}

		entry := &entity.LedgerEntry{
			ID:           uuid.New().String(),
			Date:         dateIn(now, uc.loc),
			DocumentType: tax.DocVenta,
			GrossAmount:  in.SaleAmount,
			VAT:          tax.ComputeVAT(in.SaleAmount, tax.DocVenta),
			Description:  saleDescription(in.Quantity, product.Name),
			Status:       entity.LedgerStatusRegistered,
			CreatedAt:    now,
		}
		if err := ledgerRepo.Create(ctx, entry); err != nil {
			return domain.NewPersistenceError("registrar venta", err)
		}

		out = toWithdrawResponse(product, plan, entry.ID)
		return nil
	})
	if err != nil {
		var stockErr *domain.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			uc.log.Info().
				Str("product_id", in.ProductID).
				Int("available", stockErr.Available).
				Int("requested", stockErr.Requested).
				Msg("salida rechazada: stock insuficiente")
		case errors.Is(err, domain.ErrPersistence):
			uc.log.Error().Err(err).Str("product_id", in.ProductID).Msg("salida revertida")
		}
		return nil, err
	}

	uc.log.Info().
		Str("product_id", out.ProductID).
		Int("quantity", out.Quantity).
		Int("remaining_stock", out.RemainingStock).
		Str("ledger_entry_id", out.LedgerEntryID).
		Msg("salida de stock registrada")
	return out, nil
}

func saleDescription(quantity int, productName string) string {
	unit := "unidades"
	if quantity == 1 {
		unit = "unidad"
	}
	return fmt.Sprintf("Venta de %d %s de %s", quantity, unit, productName)
}

func toWithdrawResponse(p *entity.Product, plan inventory.WithdrawalPlan, ledgerID string) *dto.WithdrawStockResponse {
	lots := make([]dto.LotEffectDTO, 0, len(plan.Effects))
	for _, e := range plan.Effects {
		lots = append(lots, dto.LotEffectDTO{
			LotID:     e.LotID,
			LotNumber: e.LotNumber,
			Taken:     e.Taken,
			Remaining: e.Remaining,
			Deleted:   e.Delete,
		})
	}
	return &dto.WithdrawStockResponse{
		ProductID:      p.ID,
		ProductName:    p.Name,
		Quantity:       plan.Requested,
		Lots:           lots,
		LedgerEntryID:  ledgerID,
		RemainingStock: plan.StockAfter(),
	}
}
