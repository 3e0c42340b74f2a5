package usecase

import (
	"context"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// StoreGateway contrato hacia el backend para tiendas.
type StoreGateway interface {
	ListStores(ctx context.Context) ([]entity.Store, error)
	GetStore(ctx context.Context, storeID int64) (*entity.Store, error)
	CreateStore(ctx context.Context, store entity.Store) (*entity.Store, error)
}

// StoreUseCase pantallas CRUD de tiendas (passthrough tipado al backend).
type StoreUseCase struct {
	stores StoreGateway
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(stores StoreGateway) *StoreUseCase {
	return &StoreUseCase{stores: stores}
}

// List lista las tiendas visibles para el operador.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	stores, err := uc.stores.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, len(stores))
	for i, s := range stores {
		out[i] = toStoreResponse(s)
	}
	return out, nil
}

// GetByID consulta una tienda.
func (uc *StoreUseCase) GetByID(ctx context.Context, storeID int64) (*dto.StoreResponse, error) {
	store, err := uc.stores.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	resp := toStoreResponse(*store)
	return &resp, nil
}

// Create crea una tienda.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	created, err := uc.stores.CreateStore(ctx, entity.Store{
		Name:     in.Name,
		Address:  in.Address,
		Phone:    in.Phone,
		IsActive: true,
	})
	if err != nil {
		return nil, err
	}
	resp := toStoreResponse(*created)
	return &resp, nil
}

func toStoreResponse(s entity.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:       s.ID,
		Name:     s.Name,
		Address:  s.Address,
		Phone:    s.Phone,
		IsActive: s.IsActive,
	}
}
