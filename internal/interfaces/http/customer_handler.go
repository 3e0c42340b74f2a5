package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/usecase"
)

// CustomerHandler pantallas CRUD de clientes.
type CustomerHandler struct {
	uc   *usecase.CustomerUseCase
	auth transfer.Authorizer
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, auth transfer.Authorizer) *CustomerHandler {
	return &CustomerHandler{uc: uc, auth: auth}
}

// List lista clientes con paginación.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var p dto.PageRequest
	if err := c.QueryParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	customers, err := h.uc.List(backendCtx(c, h.auth), p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": customers})
}

// Create registra un cliente.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if !parseBody(c, &in) {
		return nil
	}
	customer, err := h.uc.Create(backendCtx(c, h.auth), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}
