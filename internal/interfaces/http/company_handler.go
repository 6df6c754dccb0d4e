package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samka/gestion-api/internal/application/dto"
	"github.com/samka/gestion-api/internal/application/usecase"
)

// CatalogHandler empresas, centros de costo y clasificaciones.
type CatalogHandler struct {
	companies       *usecase.CompanyUseCase
	costCenters     *usecase.CostCenterUseCase
	classifications *usecase.ClassificationUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(companies *usecase.CompanyUseCase, costCenters *usecase.CostCenterUseCase, classifications *usecase.ClassificationUseCase) *CatalogHandler {
	return &CatalogHandler{companies: companies, costCenters: costCenters, classifications: classifications}
}

// CreateCompany godoc
// @Summary      Crear empresa
// @Tags         catalogs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Nombre de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CatalogHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.companies.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.companies.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateCostCenter(c *fiber.Ctx) error {
	var in dto.CreateCostCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.costCenters.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) ListCostCenters(c *fiber.Ctx) error {
	out, err := h.costCenters.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateClassification(c *fiber.Ctx) error {
	var in dto.CreateClassificationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.classifications.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CatalogHandler) ListClassifications(c *fiber.Ctx) error {
	out, err := h.classifications.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
