package usecase

import (
	"context"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// CustomerGateway contrato hacia el backend para clientes.
type CustomerGateway interface {
	ListCustomers(ctx context.Context, page, perPage int) ([]entity.Customer, error)
	CreateCustomer(ctx context.Context, customer entity.Customer) (*entity.Customer, error)
}

// CustomerUseCase pantallas CRUD de clientes.
type CustomerUseCase struct {
	customers CustomerGateway
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers CustomerGateway) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, p dto.PageRequest) ([]dto.CustomerResponse, error) {
	p.DefaultPage()
	customers, err := uc.customers.ListCustomers(ctx, p.Page, p.PerPage)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = dto.CustomerResponse{
			ID:       c.ID,
			Document: c.Document,
			Name:     c.Name,
			Email:    c.Email,
			Phone:    c.Phone,
		}
	}
	return out, nil
}

// Create registra un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	created, err := uc.customers.CreateCustomer(ctx, entity.Customer{
		Document: in.Document,
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
	})
	if err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{
		ID:       created.ID,
		Document: created.Document,
		Name:     created.Name,
		Email:    created.Email,
		Phone:    created.Phone,
	}, nil
}
