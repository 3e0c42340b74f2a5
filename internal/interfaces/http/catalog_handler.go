package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/usecase"
)

// backendCtx produce el contexto autorizado hacia el backend con el Bearer del operador.
func backendCtx(c *fiber.Ctx, auth transfer.Authorizer) context.Context {
	return auth.Authorize(c.Context(), GetBackendToken(c))
}

// CatalogHandler pantallas de catálogo tienda-producto.
type CatalogHandler struct {
	uc   *usecase.CatalogUseCase
	auth transfer.Authorizer
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, auth transfer.Authorizer) *CatalogHandler {
	return &CatalogHandler{uc: uc, auth: auth}
}

// List godoc
// @Summary      Catálogo tienda-producto
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        storeID   path   int     true   "Id de tienda"
// @Param        page      query  int     false  "Página"
// @Param        per_page  query  int     false  "Tamaño de página"
// @Param        search    query  string  false  "Búsqueda por nombre"
// @Success      200  {object}  dto.StoreProductListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stores/{storeID}/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeID")
	if err != nil || storeID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de tienda inválido"})
	}
	var f dto.StoreProductFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	resp, err := h.uc.List(backendCtx(c, h.auth), int64(storeID), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
