package transfer

import (
	"context"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// CatalogGateway consulta del catálogo tienda-producto en el backend.
// filters admite pares query adicionales (search, only_active, ...); puede ser nil.
type CatalogGateway interface {
	ListStoreProducts(ctx context.Context, storeID int64, page, perPage int, filters map[string]string) ([]entity.StoreProductLine, *dto.PageMeta, error)
}

// InventoryGateway consultas y traspasos del inventario por vendedor.
// Add/Remove pueden devolver *domain.ValidationError con claves items.<idx>.<campo>.
type InventoryGateway interface {
	ListSellerInventory(ctx context.Context, storeID, sellerID int64) ([]entity.SellerInventoryItem, error)
	AddToSellerInventory(ctx context.Context, storeID, sellerID int64, items []dto.TransferItem) error
	RemoveFromSellerInventory(ctx context.Context, storeID, sellerID int64, items []dto.TransferItem) error
}

// UserGateway consulta de usuarios; se usa solo para la precondición de tienda cruzada.
type UserGateway interface {
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
}

// StockNotifier publica eventos de cambio de stock hacia otras vistas/procesos.
type StockNotifier interface {
	Emit(ev entity.StockUpdateEvent) error
}

// Authorizer inyecta las credenciales del operador en el contexto de las
// llamadas al backend. Lo implementa el cliente REST.
type Authorizer interface {
	Authorize(ctx context.Context, token string) context.Context
}

// Resultados posibles de un intento de envío, registrados en la bitácora local.
const (
	SubmissionStatusOK         = "ok"
	SubmissionStatusValidation = "validation"
	SubmissionStatusRejected   = "rejected"
	SubmissionStatusError      = "error"
)

// SubmissionRecord fila de la bitácora local de envíos de traspaso.
type SubmissionRecord struct {
	SessionID string
	StoreID   int64
	SellerID  int64
	Direction Direction
	ItemCount int
	Status    string
	Message   string
}

// Journal bitácora local de intentos de envío (persistencia best-effort:
// un fallo al registrar no interrumpe el flujo).
type Journal interface {
	RecordSubmission(ctx context.Context, rec SubmissionRecord) error
}
