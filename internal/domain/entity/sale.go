package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta POS registrada en el backend.
type Sale struct {
	ID         int64           `json:"id"`
	StoreID    int64           `json:"store_id"`
	SellerID   int64           `json:"seller_id"`
	CustomerID *int64          `json:"customer_id,omitempty"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
	Items      []SaleItem      `json:"items,omitempty"`
}

// SaleItem línea de venta.
type SaleItem struct {
	StoreProductID int64           `json:"store_product_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}
