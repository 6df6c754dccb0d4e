package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/inventory"
	"github.com/samka/gestion-api/internal/domain"
	apphttp "github.com/samka/gestion-api/internal/interfaces/http"
)

// stubWithdrawer devuelve siempre el mismo resultado y guarda la última entrada.
type stubWithdrawer struct {
	out  *dto.WithdrawStockResponse
	err  error
	last inventory.WithdrawInput
}

func (s *stubWithdrawer) Withdraw(_ context.Context, in inventory.WithdrawInput) (*dto.WithdrawStockResponse, error) {
	s.last = in
	return s.out, s.err
}

func buildWithdrawApp(w apphttp.StockWithdrawer) *fiber.App {
	app := fiber.New()
	h := apphttp.NewInventoryHandler(nil, w, nil)
	app.Post("/api/inventory/withdrawals", h.Withdraw)
	return app
}

func postWithdraw(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/withdrawals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload), "respuesta no es JSON: %s", raw)
	return resp, payload
}

func TestWithdraw_Created(t *testing.T) {
	stub := &stubWithdrawer{out: &dto.WithdrawStockResponse{
		ProductID:      "p1",
		ProductName:    "Yogur",
		Quantity:       7,
		LedgerEntryID:  "e1",
		RemainingStock: 8,
	}}
	app := buildWithdrawApp(stub)

	resp, payload := postWithdraw(t, app, `{"product_id":"p1","quantity":7,"sale_amount":"14000"}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "e1", payload["ledger_entry_id"])
	assert.EqualValues(t, 8, payload["remaining_stock"])
	assert.Equal(t, "p1", stub.last.ProductID)
	assert.Equal(t, 7, stub.last.Quantity)
	assert.True(t, decimal.NewFromInt(14000).Equal(stub.last.SaleAmount))
}

func TestWithdraw_InsufficientStock(t *testing.T) {
	app := buildWithdrawApp(&stubWithdrawer{err: &domain.InsufficientStockError{Available: 15, Requested: 20}})

	resp, payload := postWithdraw(t, app, `{"product_id":"p1","quantity":20,"sale_amount":"1000"}`)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", payload["code"])
	assert.EqualValues(t, 15, payload["available"])
	assert.EqualValues(t, 20, payload["requested"])
}

func TestWithdraw_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validación", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"producto inexistente", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"persistencia", domain.NewPersistenceError("crear movimiento", errors.New("conexión cerrada")), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := buildWithdrawApp(&stubWithdrawer{err: tt.err})
			resp, payload := postWithdraw(t, app, `{"product_id":"p1","quantity":1,"sale_amount":"100"}`)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, payload["code"])
		})
	}
}

func TestWithdraw_PersistenceNoExponeCausa(t *testing.T) {
	app := buildWithdrawApp(&stubWithdrawer{err: domain.NewPersistenceError("eliminar lote", errors.New("password=secreto"))})

	_, payload := postWithdraw(t, app, `{"product_id":"p1","quantity":1,"sale_amount":"100"}`)

	assert.NotContains(t, payload["message"], "secreto")
}

func TestWithdraw_CuerpoInvalido(t *testing.T) {
	app := buildWithdrawApp(&stubWithdrawer{})

	resp, payload := postWithdraw(t, app, `{"product_id":`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", payload["code"])
}
