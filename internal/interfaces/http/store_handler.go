package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/usecase"
)

// StoreHandler pantallas CRUD de tiendas.
type StoreHandler struct {
	uc   *usecase.StoreUseCase
	auth transfer.Authorizer
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase, auth transfer.Authorizer) *StoreHandler {
	return &StoreHandler{uc: uc, auth: auth}
}

// List lista las tiendas visibles para el operador.
func (h *StoreHandler) List(c *fiber.Ctx) error {
	stores, err := h.uc.List(backendCtx(c, h.auth))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": stores})
}

// GetByID consulta una tienda.
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	store, err := h.uc.GetByID(backendCtx(c, h.auth), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(store)
}

// Create crea una tienda (solo admin).
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if !parseBody(c, &in) {
		return nil
	}
	store, err := h.uc.Create(backendCtx(c, h.auth), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}
