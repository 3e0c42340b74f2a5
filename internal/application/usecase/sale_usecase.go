package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain/entity"
)

// SaleGateway contrato hacia el backend para ventas POS.
type SaleGateway interface {
	CreateSale(ctx context.Context, storeID int64, sale entity.Sale) (*entity.Sale, error)
}

// SaleUseCase registro de ventas POS. Una venta completada cambia el stock de
// la tienda, así que además de delegar en el backend emite el evento de
// sincronización con el id de la venta para que otras vistas recarguen.
type SaleUseCase struct {
	sales    SaleGateway
	notifier transfer.StockNotifier
	log      zerolog.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(sales SaleGateway, notifier transfer.StockNotifier, log zerolog.Logger) *SaleUseCase {
	return &SaleUseCase{sales: sales, notifier: notifier, log: log}
}

// Create registra la venta en el backend y emite el StockUpdateEvent.
func (uc *SaleUseCase) Create(ctx context.Context, storeID int64, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	sale := entity.Sale{
		StoreID:    storeID,
		SellerID:   in.SellerID,
		CustomerID: in.CustomerID,
	}
	for _, it := range in.Items {
		sale.Items = append(sale.Items, entity.SaleItem{
			StoreProductID: it.StoreProductID,
			Quantity:       it.Quantity,
		})
	}

	created, err := uc.sales.CreateSale(ctx, storeID, sale)
	if err != nil {
		return nil, err
	}

	saleID := created.ID
	ev := entity.StockUpdateEvent{
		StoreID:   storeID,
		EmittedAt: time.Now(),
		Source:    entity.StockSourceSale,
		SaleID:    &saleID,
	}
	if nerr := uc.notifier.Emit(ev); nerr != nil {
		uc.log.Warn().Err(nerr).Int64("sale_id", saleID).Msg("emisión de evento de venta falló")
	}

	return &dto.SaleResponse{
		ID:       created.ID,
		StoreID:  created.StoreID,
		SellerID: created.SellerID,
		Total:    created.Total,
	}, nil
}
