package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samka/gestion-api/internal/application/finance"
)

// DashboardHandler maneja el dashboard financiero.
type DashboardHandler struct {
	uc *finance.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *finance.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard devuelve KPIs, rankings y evolución de los movimientos.
// GET /api/finance/dashboard?year=2025&month=3
//
// year y month son opcionales; con month la evolución es diaria, sin él mensual.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), c.QueryInt("year", 0), c.QueryInt("month", 0))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
