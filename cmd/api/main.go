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
	"github.com/pasqualotto/controle-estoque/internal/application/inventory"
	"github.com/pasqualotto/controle-estoque/internal/application/usecase"
	infrapdf "github.com/pasqualotto/controle-estoque/internal/infrastructure/pdf"
	httpRouter "github.com/pasqualotto/controle-estoque/internal/interfaces/http"
	"github.com/pasqualotto/controle-estoque/pkg/config"
	"github.com/pasqualotto/controle-estoque/pkg/logger"
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
		Str("store_mode", cfg.Store.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()
	log.Info().Str("store", store.name).Msg("almacenamiento activo")

	ucLog := log.Component("usecase")
	branchUC := usecase.NewBranchUseCase(store.branches)
	productUC := usecase.NewProductUseCase(store.products, store.branches, ucLog)
	ledgerUC := inventory.NewLedgerUseCase(store.products, store.movements, ucLog)
	registerMovementUC := inventory.NewRegisterMovementUseCase(store.tx, ucLog)
	stockUC := inventory.NewStockUseCase(store.stock, store.branches)

	// PDF: reporte imprimible de la vista de stock
	reportUC := inventory.NewReportUseCase(stockUC, infrapdf.NewMarotoStockReport(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Controle de Estoque API",
		}))
	} else {
		log.Debug().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: API sin autenticación")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		BranchUC:         branchUC,
		ProductUC:        productUC,
		Ledger:           ledgerUC,
		RegisterMovement: registerMovementUC,
		Stock:            stockUC,
		Report:           reportUC,
		StoreName:        store.name,
		JWTSecret:        cfg.JWT.Secret,
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
