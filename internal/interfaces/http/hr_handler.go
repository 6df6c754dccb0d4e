package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/hr"
)

// HRHandler trabajadores y dashboard de RRHH.
type HRHandler struct {
	uc *hr.WorkerUseCase
}

// NewHRHandler construye el handler.
func NewHRHandler(uc *hr.WorkerUseCase) *HRHandler {
	return &HRHandler{uc: uc}
}

func (h *HRHandler) Create(c *fiber.Ctx) error {
	var in dto.WorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "empresa no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *HRHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "trabajador no encontrado")
	}
	if out == nil {
		return notFound(c, "trabajador no encontrado")
	}
	return c.JSON(out)
}

func (h *HRHandler) Update(c *fiber.Ctx) error {
	var in dto.WorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "empresa no encontrada")
	}
	if out == nil {
		return notFound(c, "trabajador no encontrado")
	}
	return c.JSON(out)
}

// List trabajadores; ?company_id= filtra por empresa.
func (h *HRHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("company_id"))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Dashboard dotación por empresa y cargo, finiquitos por mes.
// GET /api/hr/dashboard?company_id=
func (h *HRHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), c.Query("company_id"))
	if err != nil {
		return respondError(c, err, "empresa no encontrada")
	}
	return c.JSON(out)
}
