package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/auth"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/usecase"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CatalogUC  *usecase.CatalogUseCase
	StoreUC    *usecase.StoreUseCase
	CustomerUC *usecase.CustomerUseCase
	SaleUC     *usecase.SaleUseCase
	Registry   *transfer.Registry
	Journal    journalReader
	Authorizer transfer.Authorizer
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de sesión local)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stores (protegido; crear solo admin)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC, deps.Authorizer)
	stores.Get("/", storeHandler.List)
	stores.Post("/", RequireRole(entity.RoleAdmin), storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)

	// Catálogo tienda-producto (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Authorizer)
	stores.Get("/:storeID/products", catalogHandler.List)

	// Ventas POS (protegido)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Authorizer)
	stores.Post("/:storeID/sales", saleHandler.Create)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Authorizer)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)

	// Flujo de traspaso tienda ↔ vendedor (protegido)
	transferHandler := NewTransferHandler(deps.Registry, deps.Journal)
	sessions := protected.Group("/transfer-sessions")
	sessions.Post("/", transferHandler.CreateSession)
	sessions.Get("/:id", transferHandler.GetState)
	sessions.Put("/:id/quantities", transferHandler.SetQuantity)
	sessions.Post("/:id/confirm", transferHandler.OpenConfirm)
	sessions.Post("/:id/cancel", transferHandler.Cancel)
	sessions.Post("/:id/submit", transferHandler.Submit)
	sessions.Delete("/:id", transferHandler.DeleteSession)

	protected.Get("/transfers/journal", transferHandler.Journal)
}
