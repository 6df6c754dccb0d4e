package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/pettycash"
)

// PettyCashHandler gastos de caja chica y sugerencia de tipo de documento.
type PettyCashHandler struct {
	uc         *pettycash.UseCase
	classifier *pettycash.ClassifierUseCase
}

// NewPettyCashHandler construye el handler.
func NewPettyCashHandler(uc *pettycash.UseCase, classifier *pettycash.ClassifierUseCase) *PettyCashHandler {
	return &PettyCashHandler{uc: uc, classifier: classifier}
}

func (h *PettyCashHandler) Create(c *fiber.Ctx) error {
	var in dto.PettyCashRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PettyCashHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "gasto no encontrado")
	}
	if out == nil {
		return notFound(c, "gasto no encontrado")
	}
	return c.JSON(out)
}

func (h *PettyCashHandler) Update(c *fiber.Ctx) error {
	var in dto.PettyCashRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "gasto no encontrado")
	}
	if out == nil {
		return notFound(c, "gasto no encontrado")
	}
	return c.JSON(out)
}

func (h *PettyCashHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err, "gasto no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List gastos paginados con el total rendido.
func (h *PettyCashHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Summary totales mensuales.
func (h *PettyCashHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Train godoc
// @Summary      Entrenar el clasificador de tipo de documento
// @Tags         petty-cash
// @Produce      json
// @Success      200  {object}  dto.TrainClassifierResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/petty-cash/classifier/train [post]
func (h *PettyCashHandler) Train(c *fiber.Ctx) error {
	out, err := h.classifier.Train(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Suggest sugiere el tipo de documento para una descripción; vacío si no hay modelo.
func (h *PettyCashHandler) Suggest(c *fiber.Ctx) error {
	var in dto.SuggestDocumentTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.classifier.Suggest(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
