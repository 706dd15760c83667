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

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
	"github.com/jhoicas/stockmaster-api/internal/application/documents"
	appstock "github.com/jhoicas/stockmaster-api/internal/application/stock"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/stockmaster-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
	"github.com/jhoicas/stockmaster-api/pkg/config"
	"github.com/jhoicas/stockmaster-api/pkg/jwt"
	"github.com/jhoicas/stockmaster-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	sequenceRepo := postgres.NewSequenceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tokens := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.Expiration)*time.Minute,
		cfg.JWT.Issuer,
	)

	// PDF: remisión de entrega para delivery orders
	deliveryNoteGen := infrapdf.NewMarotoDeliveryNoteGenerator()

	productUC := usecase.NewProductUseCase(productRepo, stockRepo, movementRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, locationRepo, stockRepo, movementRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	documentUC := documents.NewDocumentUseCase(
		txRunner, documentRepo, sequenceRepo,
		productRepo, warehouseRepo, locationRepo, stockRepo,
		deliveryNoteGen,
	)
	stockUC := appstock.NewStockUseCase(stockRepo, movementRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, warehouseRepo, tokens)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockMaster API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		DashboardUC: dashboardUC,
		DocumentUC:  documentUC,
		StockUC:     stockUC,
		AuthUC:      authUC,
		Tokens:      tokens,
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
