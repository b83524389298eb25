// @title        Smart Inventory API
// @version      1.0
// @description  Inventario en memoria con pronóstico de demanda y alertas de merma o sobrestock.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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

	"github.com/jhoicas/smart-inventory/docs"
	"github.com/jhoicas/smart-inventory/internal/application/inventory"
	"github.com/jhoicas/smart-inventory/internal/application/notification"
	"github.com/jhoicas/smart-inventory/internal/domain/entity"
	invdomain "github.com/jhoicas/smart-inventory/internal/domain/inventory"
	"github.com/jhoicas/smart-inventory/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/smart-inventory/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/smart-inventory/internal/interfaces/http"
	"github.com/jhoicas/smart-inventory/pkg/config"
	"github.com/jhoicas/smart-inventory/pkg/logger"
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
		Bool("auth", cfg.JWT.Secret != "").
		Msg("iniciando aplicación")

	var seed []entity.InventoryItem
	if cfg.Inventory.Seed {
		seed = invdomain.SeedItems()
	}
	store := memory.NewStore(seed)
	log.Info().Int("items", store.Len()).Msg("inventario en memoria listo")

	itemRepo := memory.NewInventoryItemRepository(store)
	txRunner := memory.NewTxRunner(store)

	notifier := notification.NewNotifier(cfg.Notification.TTL())
	defer notifier.Stop()

	inventoryUC := inventory.NewInventoryUseCase(
		itemRepo, txRunner, notifier, infrapdf.NewMarotoReportGenerator(),
		inventory.Config{
			AppName:             cfg.App.Name,
			DefaultReorderLevel: cfg.Inventory.DefaultReorderLevel,
			Logger:              log.Zerolog(),
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "items": store.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		JWTSecret:   cfg.JWT.Secret,
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
