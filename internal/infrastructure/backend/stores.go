package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// ListStores lista las tiendas visibles para el operador.
func (c *Client) ListStores(ctx context.Context) ([]entity.Store, error) {
	var envelope struct {
		Items []entity.Store `json:"items"`
	}
	if err := c.call(ctx, http.MethodGet, "/stores", nil, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// GetStore consulta una tienda por id.
func (c *Client) GetStore(ctx context.Context, storeID int64) (*entity.Store, error) {
	var store entity.Store
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/stores/%d", storeID), nil, nil, &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// CreateStore crea una tienda.
func (c *Client) CreateStore(ctx context.Context, store entity.Store) (*entity.Store, error) {
	var created entity.Store
	if err := c.call(ctx, http.MethodPost, "/stores", nil, store, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
