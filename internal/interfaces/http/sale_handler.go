package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/usecase"
)

// SaleHandler registro de ventas POS.
type SaleHandler struct {
	uc   *usecase.SaleUseCase
	auth transfer.Authorizer
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, auth transfer.Authorizer) *SaleHandler {
	return &SaleHandler{uc: uc, auth: auth}
}

// Create godoc
// @Summary      Registrar venta POS
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeID  path  int                    true  "Id de tienda"
// @Param        body     body  dto.CreateSaleRequest  true  "seller_id, items"
// @Success      201  {object}  dto.SaleResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeID}/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeID")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de tienda inválido"})
	}
	var in dto.CreateSaleRequest
	if !parseBody(c, &in) {
		return nil
	}
	sale, err := h.uc.Create(backendCtx(c, h.auth), int64(storeID), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
