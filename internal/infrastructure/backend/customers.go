package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// ListCustomers lista clientes con paginación.
func (c *Client) ListCustomers(ctx context.Context, page, perPage int) ([]entity.Customer, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	var envelope struct {
		Items []entity.Customer `json:"items"`
	}
	if err := c.call(ctx, http.MethodGet, "/customers", q, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Items, nil
}

// CreateCustomer registra un cliente.
func (c *Client) CreateCustomer(ctx context.Context, customer entity.Customer) (*entity.Customer, error) {
	var created entity.Customer
	if err := c.call(ctx, http.MethodPost, "/customers", nil, customer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
