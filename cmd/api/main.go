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

	"github.com/DeiVid1337/BossFront-sub002/internal/application/auth"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/usecase"
	"github.com/DeiVid1337/BossFront-sub002/internal/infrastructure/backend"
	"github.com/DeiVid1337/BossFront-sub002/internal/infrastructure/journal"
	"github.com/DeiVid1337/BossFront-sub002/internal/infrastructure/syncbus"
	httpRouter "github.com/DeiVid1337/BossFront-sub002/internal/interfaces/http"
	"github.com/DeiVid1337/BossFront-sub002/pkg/config"
	"github.com/DeiVid1337/BossFront-sub002/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log.Zerolog())

	bus, err := syncbus.NewBus(cfg.Local.SyncSlotPath, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("canal de sincronización de stock")
	}
	defer bus.Close()

	journalStore, err := journal.NewStore(cfg.Local.JournalDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("bitácora local de envíos")
	}
	defer journalStore.Close()

	registry := transfer.NewRegistry(transfer.Deps{
		Catalog:   client,
		Inventory: client,
		Users:     client,
		Auth:      client,
		Journal:   journalStore,
		Logger:    log.Component("transfer"),
	}, bus, cfg.Local.SessionIdle)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	registry.StartReaper(rootCtx)

	authUC := auth.NewAuthUseCase(client, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := usecase.NewCatalogUseCase(client)
	storeUC := usecase.NewStoreUseCase(client)
	customerUC := usecase.NewCustomerUseCase(client)
	saleUC := usecase.NewSaleUseCase(client, bus, log.Component("sales"))

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
		Title:    "BossFront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		StoreUC:    storeUC,
		CustomerUC: customerUC,
		SaleUC:     saleUC,
		Registry:   registry,
		Journal:    journalStore,
		Authorizer: client,
		JWTSecret:  cfg.JWT.Secret,
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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
