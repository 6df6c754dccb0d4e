package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/tax"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedYogurt producto P con L1 (5, vence 10/01) y L2 (10, vence 20/01).
func seedYogurt() *memStore {
	s := newMemStore()
	s.addProduct(entity.Product{ID: "p1", Code: "YOG-01", Name: "Yogurt", MinStock: 3})
	s.addLot(entity.Lot{ID: "l2", ProductID: "p1", LotNumber: "L2", ExpiresOn: date(2025, 1, 20), Quantity: 10})
	s.addLot(entity.Lot{ID: "l1", ProductID: "p1", LotNumber: "L1", ExpiresOn: date(2025, 1, 10), Quantity: 5})
	return s
}

func newWithdraw(s *memStore) *WithdrawStockUseCase {
	santiago := time.FixedZone("CLST", -3*60*60)
	uc := NewWithdrawStockUseCase(s, santiago, zerolog.Nop())
	// 02:30 UTC del 16/01 sigue siendo 15/01 en Santiago (horario de verano).
	uc.now = func() time.Time { return time.Date(2025, 1, 16, 2, 30, 0, 0, time.UTC) }
	return uc
}

func TestWithdraw_ConsumePrimeroElLoteQueVenceAntes(t *testing.T) {
	s := seedYogurt()
	uc := newWithdraw(s)

	out, err := uc.Withdraw(context.Background(), WithdrawInput{
		ProductID: "p1", Quantity: 7, SaleAmount: decimal.NewFromInt(7000),
	})
	require.NoError(t, err)

	_, l1Exists := s.lots["l1"]
	assert.False(t, l1Exists, "L1 se agota y se elimina")
	assert.Equal(t, 8, s.lots["l2"].Quantity)
	assert.Equal(t, 8, s.stock("p1"))

	require.Len(t, s.ledger, 1)
	entry := s.ledger[0]
	assert.Equal(t, tax.DocVenta, entry.DocumentType)
	assert.Equal(t, entity.LedgerStatusRegistered, entry.Status)
	assert.True(t, entry.GrossAmount.Equal(decimal.NewFromInt(7000)))
	assert.True(t, entry.VAT.IsZero())
	assert.Equal(t, date(2025, 1, 15), entry.Date)
	assert.Contains(t, entry.Description, "7")
	assert.Contains(t, entry.Description, "Yogurt")
	assert.Empty(t, entry.CompanyID)

	assert.Equal(t, 7, out.Quantity)
	assert.Equal(t, 8, out.RemainingStock)
	assert.Equal(t, entry.ID, out.LedgerEntryID)
	require.Len(t, out.Lots, 2)
	assert.Equal(t, "L1", out.Lots[0].LotNumber)
	assert.True(t, out.Lots[0].Deleted)
	assert.Equal(t, 2, out.Lots[1].Taken)
	assert.Equal(t, 8, out.Lots[1].Remaining)
}

func TestWithdraw_StockInsuficienteNoModificaNada(t *testing.T) {
	s := seedYogurt()
	uc := newWithdraw(s)

	_, err := uc.Withdraw(context.Background(), WithdrawInput{
		ProductID: "p1", Quantity: 20, SaleAmount: decimal.NewFromInt(20000),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 15, stockErr.Available)
	assert.Equal(t, 20, stockErr.Requested)

	assert.Equal(t, 5, s.lots["l1"].Quantity)
	assert.Equal(t, 10, s.lots["l2"].Quantity)
	assert.Empty(t, s.ledger)
}

func TestWithdraw_ExactoEliminaTodosLosLotes(t *testing.T) {
	s := seedYogurt()
	uc := newWithdraw(s)

	out, err := uc.Withdraw(context.Background(), WithdrawInput{
		ProductID: "p1", Quantity: 15, SaleAmount: decimal.Zero,
	})
	require.NoError(t, err)
	assert.Empty(t, s.lots, "no quedan lotes en cero")
	assert.Equal(t, 0, out.RemainingStock)
	assert.Len(t, s.ledger, 1, "una venta por cero igual queda registrada")
}

func TestWithdraw_FallaDelLibroRevierteLotes(t *testing.T) {
	s := seedYogurt()
	s.failLedgerCreate = true
	uc := newWithdraw(s)

	_, err := uc.Withdraw(context.Background(), WithdrawInput{
		ProductID: "p1", Quantity: 7, SaleAmount: decimal.NewFromInt(7000),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPersistence))
	assert.True(t, errors.Is(err, errStorage))

	var pErr *domain.PersistenceError
	require.True(t, errors.As(err, &pErr))

	assert.Equal(t, 5, s.lots["l1"].Quantity, "L1 vuelve a existir tras el rollback")
	assert.Equal(t, 10, s.lots["l2"].Quantity)
	assert.Empty(t, s.ledger)
}

func TestWithdraw_FallaAlEliminarLote(t *testing.T) {
	s := seedYogurt()
	s.failLotDelete = true
	uc := newWithdraw(s)

	_, err := uc.Withdraw(context.Background(), WithdrawInput{
		ProductID: "p1", Quantity: 7, SaleAmount: decimal.NewFromInt(7000),
	})
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Equal(t, 15, s.stock("p1"))
	assert.Empty(t, s.ledger)
}

func TestWithdraw_Validaciones(t *testing.T) {
	s := seedYogurt()
	uc := newWithdraw(s)
	ctx := context.Background()

	cases := []struct {
		name string
		in   WithdrawInput
		want error
	}{
		{"sin producto", WithdrawInput{ProductID: " ", Quantity: 1}, domain.ErrInvalidInput},
		{"cantidad cero", WithdrawInput{ProductID: "p1", Quantity: 0}, domain.ErrInvalidInput},
		{"monto negativo", WithdrawInput{ProductID: "p1", Quantity: 1, SaleAmount: decimal.NewFromInt(-1)}, domain.ErrInvalidInput},
		{"monto con decimales", WithdrawInput{ProductID: "p1", Quantity: 1, SaleAmount: decimal.RequireFromString("7000.5")}, domain.ErrInvalidInput},
		{"producto inexistente", WithdrawInput{ProductID: "nope", Quantity: 1}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Withdraw(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 15, s.stock("p1"))
	assert.Empty(t, s.ledger)
}

func TestWithdraw_ConcurrentesNoSobregiran(t *testing.T) {
	s := seedYogurt()
	uc := newWithdraw(s)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok, rejected := 0, 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Withdraw(context.Background(), WithdrawInput{
				ProductID: "p1", Quantity: 1, SaleAmount: decimal.NewFromInt(1000),
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, domain.ErrInsufficientStock) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 15, ok)
	assert.Equal(t, 5, rejected)
	assert.Equal(t, 0, s.stock("p1"))
	assert.Len(t, s.ledger, 15)
}
