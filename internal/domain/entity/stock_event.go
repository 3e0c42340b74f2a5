package entity

import "time"

// Fuentes conocidas de StockUpdateEvent.
const (
	StockSourceSellerAdd    = "seller-add"    // traspaso tienda → vendedor
	StockSourceSellerRemove = "seller-remove" // traspaso vendedor → tienda
	StockSourceSale         = "sale"          // venta POS completada
)

// StockUpdateEvent notificación de que el stock de una tienda cambió.
// Se escribe en el slot compartido (last-write-wins) y se descarta pasado el TTL
// o si el observador está mirando otra tienda.
type StockUpdateEvent struct {
	StoreID   int64     `json:"store_id"`
	EmittedAt time.Time `json:"emitted_at"`
	Source    string    `json:"source,omitempty"`
	SaleID    *int64    `json:"sale_id,omitempty"`
}
