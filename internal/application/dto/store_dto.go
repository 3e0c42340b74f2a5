package dto

// CreateStoreRequest body para crear una tienda.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// StoreResponse tienda expuesta al front.
type StoreResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"is_active"`
}
