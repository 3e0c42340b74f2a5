package dto

// TransferItem línea del cuerpo de un traspaso por lotes, en el mismo orden
// del resumen mostrado al operador.
type TransferItem struct {
	StoreProductID int64 `json:"store_product_id"`
	Quantity       int   `json:"quantity"`
}

// CreateTransferSessionRequest body para abrir una sesión de traspaso.
type CreateTransferSessionRequest struct {
	StoreID  int64 `json:"store_id" validate:"required,gt=0"`
	SellerID int64 `json:"seller_id" validate:"required,gt=0"`
}

// SetQuantityRequest body para fijar la cantidad pendiente de un producto.
// Quantity admite fraccionarios y negativos: se trunca hacia cero y se acota.
type SetQuantityRequest struct {
	Direction      string  `json:"direction" validate:"required,oneof=add remove"`
	StoreProductID int64   `json:"store_product_id" validate:"required,gt=0"`
	Quantity       float64 `json:"quantity"`
}

// ConfirmRequest body para abrir la confirmación de una dirección.
type ConfirmRequest struct {
	Direction string `json:"direction" validate:"required,oneof=add remove"`
}

// JournalEntryResponse fila de la bitácora local de envíos.
type JournalEntryResponse struct {
	ID        int64  `json:"id"`
	SessionID string `json:"session_id"`
	StoreID   int64  `json:"store_id"`
	SellerID  int64  `json:"seller_id"`
	Direction string `json:"direction"`
	ItemCount int    `json:"item_count"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at"`
}
