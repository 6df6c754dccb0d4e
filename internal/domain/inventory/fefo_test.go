package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testLot(id string, qty int, expires time.Time) entity.Lot {
	return entity.Lot{ID: id, ProductID: "p1", LotNumber: "L-" + id, ExpiresOn: expires, Quantity: qty}
}

func TestPlanWithdrawal_EscenarioDosLotes(t *testing.T) {
	lots := []entity.Lot{
		testLot("L2", 10, date(2025, 6, 1)),
		testLot("L1", 5, date(2025, 1, 1)),
	}

	plan, err := PlanWithdrawal(lots, 7)
	require.NoError(t, err)

	require.Len(t, plan.Effects, 2)
	assert.Equal(t, "L1", plan.Effects[0].LotID, "primero el lote que vence antes")
	assert.True(t, plan.Effects[0].Delete)
	assert.Equal(t, 5, plan.Effects[0].Taken)

	dec, ok := plan.Decrement()
	require.True(t, ok)
	assert.Equal(t, "L2", dec.LotID)
	assert.Equal(t, 2, dec.Taken)
	assert.Equal(t, 8, dec.Remaining)

	assert.Equal(t, []string{"L1"}, plan.Deletions())
	assert.Equal(t, 8, plan.StockAfter())
	assert.Equal(t, 5, lots[1].Quantity, "el plan no debe modificar la entrada")
}

func TestPlanWithdrawal_StockInsuficiente(t *testing.T) {
	lots := []entity.Lot{testLot("a", 3, date(2025, 1, 1))}

	_, err := PlanWithdrawal(lots, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 10, stockErr.Requested)
}

func TestPlanWithdrawal_SinLotes(t *testing.T) {
	_, err := PlanWithdrawal(nil, 1)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Available)
}

func TestPlanWithdrawal_CantidadInvalida(t *testing.T) {
	lots := []entity.Lot{testLot("a", 3, date(2025, 1, 1))}
	for _, q := range []int{0, -1} {
		_, err := PlanWithdrawal(lots, q)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestPlanWithdrawal_CoincidenciaExactaEliminaLote(t *testing.T) {
	t.Run("un lote completo", func(t *testing.T) {
		plan, err := PlanWithdrawal([]entity.Lot{testLot("a", 4, date(2025, 1, 1)), testLot("b", 6, date(2025, 2, 1))}, 4)
		require.NoError(t, err)
		require.Len(t, plan.Effects, 1)
		assert.True(t, plan.Effects[0].Delete)
		_, partial := plan.Decrement()
		assert.False(t, partial, "no debe quedar un lote con cantidad cero")
	})

	t.Run("todo el stock", func(t *testing.T) {
		plan, err := PlanWithdrawal([]entity.Lot{testLot("a", 4, date(2025, 1, 1)), testLot("b", 6, date(2025, 2, 1))}, 10)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, plan.Deletions())
		assert.Equal(t, 0, plan.StockAfter())
	})
}

func TestPlanWithdrawal_VariosLotesEliminadosYUnoParcial(t *testing.T) {
	lots := []entity.Lot{
		testLot("c", 10, date(2025, 3, 1)),
		testLot("a", 2, date(2025, 1, 1)),
		testLot("d", 10, date(2025, 4, 1)),
		testLot("b", 3, date(2025, 2, 1)),
	}
	plan, err := PlanWithdrawal(lots, 9)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, plan.Deletions())
	dec, ok := plan.Decrement()
	require.True(t, ok)
	assert.Equal(t, "c", dec.LotID)
	assert.Equal(t, 4, dec.Taken)
	assert.Equal(t, 6, dec.Remaining)
	for _, e := range plan.Effects {
		assert.NotEqual(t, "d", e.LotID, "no se toca un lote posterior mientras uno anterior tenga stock")
	}
}

func TestPlanWithdrawal_ConservaStock(t *testing.T) {
	lots := []entity.Lot{
		testLot("a", 7, date(2025, 5, 1)),
		testLot("b", 1, date(2025, 1, 1)),
		testLot("c", 12, date(2025, 3, 1)),
	}
	total := TotalStock(lots)
	for q := 1; q <= total; q++ {
		plan, err := PlanWithdrawal(lots, q)
		require.NoError(t, err)
		taken := 0
		prev := time.Time{}
		for _, e := range plan.Effects {
			taken += e.Taken
			assert.False(t, e.ExpiresOn.Before(prev), "orden FEFO")
			prev = e.ExpiresOn
			assert.GreaterOrEqual(t, e.Remaining, 0)
		}
		assert.Equal(t, q, taken)
		assert.Equal(t, total-q, plan.StockAfter())
	}
}

func TestPlanWithdrawal_EmpateDeVencimiento(t *testing.T) {
	same := date(2025, 1, 1)
	lots := []entity.Lot{
		{ID: "2", LotNumber: "B", ExpiresOn: same, Quantity: 5},
		{ID: "1", LotNumber: "A", ExpiresOn: same, Quantity: 5},
	}
	plan, err := PlanWithdrawal(lots, 3)
	require.NoError(t, err)
	assert.Equal(t, "1", plan.Effects[0].LotID, "desempate determinista por número de lote")
}
