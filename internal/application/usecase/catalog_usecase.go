package usecase

import (
	"context"
	"strconv"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// CatalogUseCase listado del catálogo tienda-producto para las pantallas CRUD.
type CatalogUseCase struct {
	catalog transfer.CatalogGateway
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog transfer.CatalogGateway) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List consulta el catálogo de una tienda con paginación y filtros.
func (uc *CatalogUseCase) List(ctx context.Context, storeID int64, f dto.StoreProductFilter) (*dto.StoreProductListResponse, error) {
	f.DefaultPage()

	filters := map[string]string{}
	if f.Search != "" {
		filters["search"] = f.Search
	}
	if f.OnlyActive {
		filters["only_active"] = strconv.FormatBool(true)
	}

	lines, meta, err := uc.catalog.ListStoreProducts(ctx, storeID, f.Page, f.PerPage, filters)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StoreProductResponse, len(lines))
	for i, line := range lines {
		items[i] = toStoreProductResponse(line)
	}
	resp := &dto.StoreProductListResponse{Items: items}
	if meta != nil {
		resp.Meta = *meta
	}
	return resp, nil
}

func toStoreProductResponse(line entity.StoreProductLine) dto.StoreProductResponse {
	return dto.StoreProductResponse{
		ID:                line.ID,
		ProductID:         line.ProductID,
		ProductName:       line.ProductName,
		SalePrice:         line.SalePrice,
		StockQuantity:     line.StockQuantity,
		SellerQuantity:    line.SellerQuantity,
		AvailableQuantity: line.AvailableQuantity,
		IsActive:          line.IsActive,
	}
}
