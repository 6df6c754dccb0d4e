package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/samka/gestion-api/internal/application/finance"
	"github.com/samka/gestion-api/internal/application/hr"
	"github.com/samka/gestion-api/internal/application/inventory"
	"github.com/samka/gestion-api/internal/application/pettycash"
	"github.com/samka/gestion-api/internal/application/usecase"
	"github.com/samka/gestion-api/internal/domain/classifier"
	"github.com/samka/gestion-api/internal/infrastructure/modelstore"
	"github.com/samka/gestion-api/internal/infrastructure/notify"
	"github.com/samka/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/samka/gestion-api/internal/interfaces/http"
	"github.com/samka/gestion-api/pkg/config"
	"github.com/samka/gestion-api/pkg/logger"
)

func main() {
	// .env opcional; las variables ya definidas en el entorno no se pisan.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	loc := cfg.App.Location()
	log.Info().
		Str("env", cfg.App.Env).
		Str("timezone", loc.String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.ApplySchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	costCenterRepo := postgres.NewCostCenterRepository(pool)
	classificationRepo := postgres.NewClassificationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	ledgerRepo := postgres.NewLedgerEntryRepository(pool)
	analyticsRepo := postgres.NewFinanceAnalyticsRepository(pool)
	pettyCashRepo := postgres.NewPettyCashRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	nearDays := cfg.Inventory.NearExpiryDays
	withdrawUC := inventory.NewWithdrawStockUseCase(txRunner, loc, log.Component("withdraw_stock"))
	lotUC := inventory.NewLotUseCase(productRepo, lotRepo, loc, nearDays)
	expiryAlertUC := inventory.NewExpiryAlertUseCase(
		productRepo, lotRepo, notify.NewLogNotifier(log.Zerolog()), loc, nearDays, log.Component("expiry_alert"),
	)

	// Clasificador de caja chica: un único handle compartido, cargado una vez al iniciar.
	handle := classifier.NewHandle()
	classifierUC := pettycash.NewClassifierUseCase(
		pettyCashRepo, modelstore.NewFileStore(cfg.Classifier.ModelPath), handle, log.Component("classifier"),
	)
	loaded, err := classifierUC.LoadFromStore(ctx)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Classifier.ModelPath).Msg("no se pudo cargar el modelo del clasificador")
	} else if !loaded {
		log.Info().Msg("clasificador sin entrenar; POST /api/petty-cash/classifier/train para entrenarlo")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:        usecase.NewCompanyUseCase(companyRepo),
		CostCenterUC:     usecase.NewCostCenterUseCase(costCenterRepo),
		ClassificationUC: usecase.NewClassificationUseCase(classificationRepo),
		ProductUC:        usecase.NewProductUseCase(productRepo, lotRepo),
		LotUC:            lotUC,
		WithdrawStock:    withdrawUC,
		ExpiryAlert:      expiryAlertUC,
		LedgerUC:         finance.NewLedgerUseCase(ledgerRepo, companyRepo, costCenterRepo, classificationRepo),
		DashboardUC:      finance.NewDashboardUseCase(analyticsRepo),
		PettyCashUC:      pettycash.NewUseCase(pettyCashRepo),
		ClassifierUC:     classifierUC,
		WorkerUC:         hr.NewWorkerUseCase(workerRepo, companyRepo),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
