package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samka/gestion-api/internal/application/finance"
	"github.com/samka/gestion-api/internal/application/hr"
	"github.com/samka/gestion-api/internal/application/inventory"
	"github.com/samka/gestion-api/internal/application/pettycash"
	"github.com/samka/gestion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	CostCenterUC     *usecase.CostCenterUseCase
	ClassificationUC *usecase.ClassificationUseCase
	ProductUC        *usecase.ProductUseCase
	LotUC            *inventory.LotUseCase
	WithdrawStock    StockWithdrawer
	ExpiryAlert      *inventory.ExpiryAlertUseCase
	LedgerUC         *finance.LedgerUseCase
	DashboardUC      *finance.DashboardUseCase
	PettyCashUC      *pettycash.UseCase
	ClassifierUC     *pettycash.ClassifierUseCase
	WorkerUC         *hr.WorkerUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogos
	catalogHandler := NewCatalogHandler(deps.CompanyUC, deps.CostCenterUC, deps.ClassificationUC)
	api.Get("/companies", catalogHandler.ListCompanies)
	api.Post("/companies", catalogHandler.CreateCompany)
	api.Get("/cost-centers", catalogHandler.ListCostCenters)
	api.Post("/cost-centers", catalogHandler.CreateCostCenter)
	api.Get("/classifications", catalogHandler.ListClassifications)
	api.Post("/classifications", catalogHandler.CreateClassification)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.LotUC, deps.WithdrawStock, deps.ExpiryAlert)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/lots", inventoryHandler.ListLots)

	// Lotes
	api.Post("/lots", inventoryHandler.CreateLot)
	api.Delete("/lots/:id", inventoryHandler.DeleteLot)

	// Inventario
	invGroup := api.Group("/inventory")
	invGroup.Get("/overview", inventoryHandler.Overview)
	invGroup.Post("/withdrawals", inventoryHandler.Withdraw)
	invGroup.Get("/alerts", inventoryHandler.PreviewAlert)
	invGroup.Post("/alerts/send", inventoryHandler.SendAlert)

	// Finanzas
	financeGroup := api.Group("/finance")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	financeGroup.Get("/entries", ledgerHandler.List)
	financeGroup.Post("/entries", ledgerHandler.Create)
	financeGroup.Get("/entries/:id", ledgerHandler.GetByID)
	financeGroup.Put("/entries/:id", ledgerHandler.Update)
	financeGroup.Delete("/entries/:id", ledgerHandler.Delete)
	financeGroup.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).GetDashboard)

	// Caja chica (rutas fijas antes de /:id)
	petty := api.Group("/petty-cash")
	pettyHandler := NewPettyCashHandler(deps.PettyCashUC, deps.ClassifierUC)
	petty.Get("/summary", pettyHandler.Summary)
	petty.Post("/classifier/train", pettyHandler.Train)
	petty.Post("/classifier/suggest", pettyHandler.Suggest)
	petty.Get("/", pettyHandler.List)
	petty.Post("/", pettyHandler.Create)
	petty.Get("/:id", pettyHandler.GetByID)
	petty.Put("/:id", pettyHandler.Update)
	petty.Delete("/:id", pettyHandler.Delete)

	// RRHH
	hrGroup := api.Group("/hr")
	hrHandler := NewHRHandler(deps.WorkerUC)
	hrGroup.Get("/dashboard", hrHandler.Dashboard)
	hrGroup.Get("/workers", hrHandler.List)
	hrGroup.Post("/workers", hrHandler.Create)
	hrGroup.Get("/workers/:id", hrHandler.GetByID)
	hrGroup.Put("/workers/:id", hrHandler.Update)
}
