package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/inventory"
)

// StockWithdrawer salida de stock FEFO; lo implementa inventory.WithdrawStockUseCase.
type StockWithdrawer interface {
	Withdraw(ctx context.Context, in inventory.WithdrawInput) (*dto.WithdrawStockResponse, error)
}

// InventoryHandler lotes, vista de inventario, salidas de stock y alertas de vencimiento.
type InventoryHandler struct {
	lots     *inventory.LotUseCase
	withdraw StockWithdrawer
	alerts   *inventory.ExpiryAlertUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(lots *inventory.LotUseCase, withdraw StockWithdrawer, alerts *inventory.ExpiryAlertUseCase) *InventoryHandler {
	return &InventoryHandler{lots: lots, withdraw: withdraw, alerts: alerts}
}

// Withdraw godoc
// @Summary      Registrar salida de stock (venta)
// @Description  Descuenta la cantidad consumiendo primero los lotes que vencen antes
//
//	y registra un movimiento VENTA por el monto indicado, todo en una transacción.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawStockRequest  true  "product_id, quantity, sale_amount"
// @Success      201   {object}  dto.WithdrawStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.InsufficientStockResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/withdrawals [post]
func (h *InventoryHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.WithdrawStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.withdraw.Withdraw(c.Context(), inventory.WithdrawInput{
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		SaleAmount: in.SaleAmount,
	})
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateLot godoc
// @Summary      Ingresar lote
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lots [post]
func (h *InventoryHandler) CreateLot(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.lots.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLots lotes de un producto ordenados por vencimiento.
func (h *InventoryHandler) ListLots(c *fiber.Ctx) error {
	out, err := h.lots.ListByProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "producto no encontrado")
	}
	return c.JSON(out)
}

// DeleteLot elimina un lote; 404 si no existe.
// DELETE /api/lots/:id
func (h *InventoryHandler) DeleteLot(c *fiber.Ctx) error {
	if err := h.lots.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "lote no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Overview stock por producto con sus lotes, estado de vencimiento y marca de stock bajo.
// GET /api/inventory/overview
func (h *InventoryHandler) Overview(c *fiber.Ctx) error {
	out, err := h.lots.Overview(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// PreviewAlert devuelve el contenido de la alerta sin enviarla.
func (h *InventoryHandler) PreviewAlert(c *fiber.Ctx) error {
	out, err := h.alerts.Build(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// SendAlert entrega la alerta al notificador; si no hay nada que informar responde sent=false.
func (h *InventoryHandler) SendAlert(c *fiber.Ctx) error {
	out, err := h.alerts.Send(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
