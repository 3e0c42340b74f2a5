package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa los puertos del flujo de traspaso.
var (
	_ transfer.CatalogGateway   = (*Client)(nil)
	_ transfer.InventoryGateway = (*Client)(nil)
	_ transfer.UserGateway      = (*Client)(nil)
	_ transfer.Authorizer       = (*Client)(nil)
)

// storeProductListEnvelope respuesta de GET /stores/{id}/products.
type storeProductListEnvelope struct {
	Items []entity.StoreProductLine `json:"items"`
	Meta  dto.PageMeta              `json:"meta"`
}

// ListStoreProducts lista el catálogo tienda-producto paginado.
func (c *Client) ListStoreProducts(ctx context.Context, storeID int64, page, perPage int, filters map[string]string) ([]entity.StoreProductLine, *dto.PageMeta, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	for k, v := range filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	var envelope storeProductListEnvelope
	path := fmt.Sprintf("/stores/%d/products", storeID)
	if err := c.call(ctx, http.MethodGet, path, q, nil, &envelope); err != nil {
		return nil, nil, err
	}
	return envelope.Items, &envelope.Meta, nil
}
