// Package inventory contiene las reglas de dominio del inventario perecible:
// planificación de salidas por vencimiento (FEFO) y estado de los lotes.
package inventory

import (
	"sort"
	"time"

	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
)

// LotEffect describe lo que una salida le hace a un lote.
type LotEffect struct {
	LotID     string
	LotNumber string
	ExpiresOn time.Time
	Taken     int  // unidades retiradas del lote
	Remaining int  // unidades que quedan en el lote tras la salida
	Delete    bool // el lote quedó en cero y se elimina
}

// WithdrawalPlan resultado de planificar una salida; se aplica después, dentro de una transacción.
type WithdrawalPlan struct {
	Requested int
	Available int
	Effects   []LotEffect // en orden de consumo
}

// Deletions IDs de los lotes agotados.
func (p WithdrawalPlan) Deletions() []string {
	ids := make([]string, 0, len(p.Effects))
	for _, e := range p.Effects {
		if e.Delete {
			ids = append(ids, e.LotID)
		}
	}
	return ids
}

// Decrement el único lote consumido parcialmente, si lo hay (siempre el último visitado).
func (p WithdrawalPlan) Decrement() (LotEffect, bool) {
	if n := len(p.Effects); n > 0 && !p.Effects[n-1].Delete {
		return p.Effects[n-1], true
	}
	return LotEffect{}, false
}

// StockAfter stock total del producto una vez aplicado el plan.
func (p WithdrawalPlan) StockAfter() int {
	return p.Available - p.Requested
}

// TotalStock suma las cantidades de los lotes.
func TotalStock(lots []entity.Lot) int {
	total := 0
	for _, l := range lots {
		total += l.Quantity
	}
	return total
}

// SortByExpiry ordena los lotes por vencimiento ascendente (desempate por número de lote e ID).
func SortByExpiry(lots []entity.Lot) {
	sort.SliceStable(lots, func(i, j int) bool {
		a, b := lots[i], lots[j]
		if !a.ExpiresOn.Equal(b.ExpiresOn) {
			return a.ExpiresOn.Before(b.ExpiresOn)
		}
		if a.LotNumber != b.LotNumber {
			return a.LotNumber < b.LotNumber
		}
		return a.ID < b.ID
	})
}

type planState int

const (
	stateVisit   planState = iota // hay unidades pendientes y lotes por visitar
	stateDrained                  // lote agotado: se elimina y se pasa al siguiente
	statePartial                  // lote con sobrante: se descuenta y termina
	stateDone
)

// PlanWithdrawal calcula cómo retirar quantity unidades de los lotes de un producto,
// consumiendo primero los que vencen antes. No modifica lots.
//
// Devuelve domain.ErrInvalidInput si quantity < 1 y *domain.InsufficientStockError si
// quantity supera la suma de los lotes.
func PlanWithdrawal(lots []entity.Lot, quantity int) (WithdrawalPlan, error) {
	if quantity < 1 {
		return WithdrawalPlan{}, domain.ErrInvalidInput
	}
	available := TotalStock(lots)
	if quantity > available {
		return WithdrawalPlan{}, &domain.InsufficientStockError{Available: available, Requested: quantity}
	}

	ordered := make([]entity.Lot, len(lots))
	copy(ordered, lots)
	SortByExpiry(ordered)

	plan := WithdrawalPlan{Requested: quantity, Available: available}
	remaining := quantity
	i := 0
	state := stateVisit
	for state != stateDone {
		switch state {
		case stateVisit:
			switch {
			case remaining == 0 || i == len(ordered):
				state = stateDone
			case ordered[i].Quantity <= remaining:
				state = stateDrained
			default:
				state = statePartial
			}
		case stateDrained:
			lot := ordered[i]
			plan.Effects = append(plan.Effects, LotEffect{
				LotID: lot.ID, LotNumber: lot.LotNumber, ExpiresOn: lot.ExpiresOn,
				Taken: lot.Quantity, Remaining: 0, Delete: true,
			})
			remaining -= lot.Quantity
			i++
			state = stateVisit
		case statePartial:
			lot := ordered[i]
			plan.Effects = append(plan.Effects, LotEffect{
				LotID: lot.ID, LotNumber: lot.LotNumber, ExpiresOn: lot.ExpiresOn,
				Taken: remaining, Remaining: lot.Quantity - remaining,
			})
			remaining = 0
			state = stateDone
		}
	}
	return plan, nil
}
