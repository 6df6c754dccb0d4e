package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/finance"
)

// LedgerHandler movimientos financieros (ingresos).
type LedgerHandler struct {
	uc *finance.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *finance.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos
// @Tags         finance
// @Produce      json
// @Param        empresa        query  string  false  "ID de empresa"
// @Param        centro         query  string  false  "ID de centro de costo"
// @Param        clasificacion  query  string  false  "ID de clasificación"
// @Param        min_costo      query  string  false  "Monto mínimo (acepta 1.000)"
// @Param        max_costo      query  string  false  "Monto máximo"
// @Param        fecha_inicio   query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin      query  string  false  "YYYY-MM-DD"
// @Param        orden          query  string  false  "fecha_desc | fecha_asc | monto_desc | monto_asc"
// @Param        page           query  int     false  "Página"  default(1)
// @Param        per_page       query  int     false  "Filas por página"  default(25)
// @Success      200  {object}  dto.LedgerListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/finance/entries [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	var q dto.LedgerListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Create registra un movimiento; el IVA se calcula en el servidor.
func (h *LedgerHandler) Create(c *fiber.Ctx) error {
	var in dto.LedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *LedgerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "movimiento no encontrado")
	}
	if out == nil {
		return notFound(c, "movimiento no encontrado")
	}
	return c.JSON(out)
}

func (h *LedgerHandler) Update(c *fiber.Ctx) error {
	var in dto.LedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "movimiento no encontrado")
	}
	if out == nil {
		return notFound(c, "movimiento no encontrado")
	}
	return c.JSON(out)
}

func (h *LedgerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "movimiento no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
