package dto

import "github.com/shopspring/decimal"

// StoreProductFilter filtros de consulta del catálogo tienda-producto.
type StoreProductFilter struct {
	PageRequest
	Search     string `query:"search"`
	OnlyActive bool   `query:"only_active"`
}

// StoreProductResponse línea de catálogo expuesta al front.
type StoreProductResponse struct {
	ID                int64           `json:"id"`
	ProductID         int64           `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	StockQuantity     int             `json:"stock_quantity"`
	SellerQuantity    *int            `json:"seller_quantity,omitempty"`
	AvailableQuantity *int            `json:"available_quantity,omitempty"`
	IsActive          bool            `json:"is_active"`
}

// StoreProductListResponse listado paginado de catálogo.
type StoreProductListResponse struct {
	Items []StoreProductResponse `json:"items"`
	Meta  PageMeta               `json:"meta"`
}
