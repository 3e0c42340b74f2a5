package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// transferBody cuerpo de los endpoints de traspaso; la identidad del vendedor
// va en la ruta, no en el cuerpo.
type transferBody struct {
	Items []dto.TransferItem `json:"items"`
}

// ListSellerInventory devuelve la tenencia del vendedor como lista plana.
// El backend ha servido este recurso con dos formas distintas (arreglo desnudo
// y objeto {items: [...]}); aquí se normalizan ambas.
func (c *Client) ListSellerInventory(ctx context.Context, storeID, sellerID int64) ([]entity.SellerInventoryItem, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/stores/%d/sellers/%d/inventory", storeID, sellerID)
	if err := c.call(ctx, http.MethodGet, path, nil, nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var flat []entity.SellerInventoryItem
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}
	var wrapped struct {
		Items []entity.SellerInventoryItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("backend: forma de inventario de vendedor no reconocida: %w", err)
	}
	return wrapped.Items, nil
}

// AddToSellerInventory traspasa stock de tienda al vendedor en un solo lote.
// Puede devolver *domain.ValidationError con claves items.<idx>.<campo>.
func (c *Client) AddToSellerInventory(ctx context.Context, storeID, sellerID int64, items []dto.TransferItem) error {
	path := fmt.Sprintf("/stores/%d/sellers/%d/inventory/add", storeID, sellerID)
	return c.call(ctx, http.MethodPost, path, nil, transferBody{Items: items}, nil)
}

// RemoveFromSellerInventory devuelve stock del vendedor a la tienda en un solo lote.
func (c *Client) RemoveFromSellerInventory(ctx context.Context, storeID, sellerID int64, items []dto.TransferItem) error {
	path := fmt.Sprintf("/stores/%d/sellers/%d/inventory/remove", storeID, sellerID)
	return c.call(ctx, http.MethodPost, path, nil, transferBody{Items: items}, nil)
}
