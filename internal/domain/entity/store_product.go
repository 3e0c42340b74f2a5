package entity

import "github.com/shopspring/decimal"

// StoreProductLine representa la presencia de un producto en el catálogo de una tienda.
// SellerQuantity y AvailableQuantity son opcionales: el backend los incluye según el
// contexto de la consulta. AvailableQuantity (stock de tienda menos lo asignado a
// vendedores) se confía tal cual llega del servidor, nunca se recalcula aquí.
type StoreProductLine struct {
	ID                int64           `json:"id"` // id tienda-producto
	StoreID           int64           `json:"store_id"`
	ProductID         int64           `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	StockQuantity     int             `json:"stock_quantity"`
	SellerQuantity    *int            `json:"seller_quantity,omitempty"`
	AvailableQuantity *int            `json:"available_quantity,omitempty"`
	IsActive          bool            `json:"is_active"`
}

// SellerInventoryItem tenencia de un vendedor: par (tienda-producto, cantidad).
// Fuente de respaldo cuando StoreProductLine no trae seller_quantity.
type SellerInventoryItem struct {
	StoreProductID int64 `json:"store_product_id"`
	Quantity       int   `json:"quantity"`
}
