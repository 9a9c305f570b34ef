package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tekstil-api/internal/application/analytics"
	"github.com/jhoicas/tekstil-api/internal/application/auth"
	"github.com/jhoicas/tekstil-api/internal/application/inventory"
	"github.com/jhoicas/tekstil-api/internal/application/maintenance"
	"github.com/jhoicas/tekstil-api/internal/application/personnel"
	"github.com/jhoicas/tekstil-api/internal/application/procurement"
	"github.com/jhoicas/tekstil-api/internal/application/sales"
	"github.com/jhoicas/tekstil-api/internal/infrastructure/export"
	"github.com/jhoicas/tekstil-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/tekstil-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tekstil-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tekstil-api/internal/interfaces/http"
	"github.com/jhoicas/tekstil-api/pkg/config"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewRawMaterialRepository(pool)
	orderRepo := postgres.NewRawMaterialOrderRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	customerOrderRepo := postgres.NewCustomerOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	personnelRepo := postgres.NewPersonnelRepository(pool)
	ruleRepo := postgres.NewRewardRuleRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.Fulfillment.LockTimeout)

	m := metrics.New()

	fulfillmentUC := procurement.NewFulfillmentUseCase(txRunner, log, m, procurement.FulfillmentConfig{
		TxTimeout: cfg.Fulfillment.TxTimeout,
	})
	orderUC := procurement.NewOrderUseCase(orderRepo, materialRepo, export.NewExcelExporter(), procurement.OrderConfig{
		DeliveryLeadBusinessDays: cfg.Procurement.DeliveryLeadBusinessDays,
	})
	stockUC := inventory.NewStockUseCase(txRunner, materialRepo, stockRepo, movementRepo, infrapdf.NewStockReportGenerator(cfg.App.Name))
	reportUC := analytics.NewReportUseCase(analyticsRepo)
	personnelUC := personnel.NewUseCase(personnelRepo, ruleRepo)
	maintenanceUC := maintenance.NewUseCase(machineRepo)
	salesUC := sales.NewUseCase(txRunner, customerRepo, customerOrderRepo, productRepo, nil)
	authUC := auth.NewAuthUseCase(customerRepo, personnelRepo, auth.Credentials{
		AdminUsername:     cfg.Login.AdminUsername,
		AdminPassword:     cfg.Login.AdminPassword,
		FactoryCode:       cfg.Login.FactoryCode,
		FactoryPassword:   cfg.Login.FactoryPassword,
		PersonnelPassword: cfg.Login.PersonnelPassword,
	}, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Las reglas de premios por defecto se crean al arrancar si la tabla está vacía.
	if n, err := personnelUC.EnsureDefaultRules(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudieron sembrar las reglas de premios")
	} else if n > 0 {
		log.Info().Int("rules", n).Msg("reglas de premios por defecto creadas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Swagger.FilePath,
		Path:     "docs",
		Title:    "Tekstil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name, "db": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db": "up"})
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Fulfillment: fulfillmentUC,
		Orders:      orderUC,
		Stock:       stockUC,
		Reports:     reportUC,
		Personnel:   personnelUC,
		Maintenance: maintenanceUC,
		Sales:       salesUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
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
