package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest body para registrar una venta POS.
type CreateSaleRequest struct {
	SellerID   int64             `json:"seller_id" validate:"required,gt=0"`
	CustomerID *int64            `json:"customer_id,omitempty"`
	Items      []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemRequest línea de venta.
type SaleItemRequest struct {
	StoreProductID int64 `json:"store_product_id" validate:"required,gt=0"`
	Quantity       int   `json:"quantity" validate:"required,gt=0"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID       int64           `json:"id"`
	StoreID  int64           `json:"store_id"`
	SellerID int64           `json:"seller_id"`
	Total    decimal.Decimal `json:"total"`
}
