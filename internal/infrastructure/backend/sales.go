package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// CreateSale registra una venta POS en el backend y devuelve la venta creada
// (con id y total calculados por el servidor).
func (c *Client) CreateSale(ctx context.Context, storeID int64, sale entity.Sale) (*entity.Sale, error) {
	var created entity.Sale
	path := fmt.Sprintf("/stores/%d/sales", storeID)
	if err := c.call(ctx, http.MethodPost, path, nil, sale, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
