package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/application/transfer"
)

// journalReader contrato mínimo para consultar la bitácora local; lo implementa
// *journal.Store. El uso de interfaz evita acoplar el handler a SQLite.
type journalReader interface {
	ListRecent(ctx context.Context, limit int) ([]dto.JournalEntryResponse, error)
}

// TransferHandler flujo de traspaso de stock tienda ↔ vendedor: sesiones de
// trabajo, ledger de selección, compuerta de confirmación y envío por lotes.
type TransferHandler struct {
	registry *transfer.Registry
	journal  journalReader
}

// NewTransferHandler construye el handler.
func NewTransferHandler(registry *transfer.Registry, journal journalReader) *TransferHandler {
	return &TransferHandler{registry: registry, journal: journal}
}

// CreateSession godoc
// @Summary      Abrir sesión de traspaso
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferSessionRequest  true  "store_id, seller_id"
// @Success      201  {object}  transfer.State
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfer-sessions [post]
func (h *TransferHandler) CreateSession(c *fiber.Ctx) error {
	var in dto.CreateTransferSessionRequest
	if !parseBody(c, &in) {
		return nil
	}
	s, err := h.registry.Create(c.Context(), in.StoreID, in.SellerID, GetBackendToken(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s.State())
}

// GetState devuelve la instantánea actual de la sesión.
func (h *TransferHandler) GetState(c *fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s.State())
}

// SetQuantity fija la cantidad pendiente de un producto; la respuesta incluye
// la cantidad efectivamente guardada tras truncar y acotar.
func (h *TransferHandler) SetQuantity(c *fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.SetQuantityRequest
	if !parseBody(c, &in) {
		return nil
	}
	stored := s.SetQuantity(transfer.Direction(in.Direction), in.StoreProductID, in.Quantity)
	return c.JSON(fiber.Map{
		"stored_quantity": stored,
		"state":           s.State(),
	})
}

// OpenConfirm abre la confirmación para una dirección.
func (h *TransferHandler) OpenConfirm(c *fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ConfirmRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := s.OpenConfirm(transfer.Direction(in.Direction)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(s.State())
}

// Cancel cierra la confirmación sin enviar.
func (h *TransferHandler) Cancel(c *fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	s.Cancel()
	return c.JSON(s.State())
}

// Submit ejecuta el traspaso confirmado. Todos los resultados (éxito, errores
// de validación por producto, rechazos) quedan en el estado de la sesión; solo
// un envío ya en curso responde con error (409).
func (h *TransferHandler) Submit(c *fiber.Ctx) error {
	s, err := h.registry.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := s.Submit(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(s.State())
}

// DeleteSession cierra y descarta la sesión (el ledger se pierde con ella).
func (h *TransferHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.registry.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Journal devuelve los últimos envíos registrados en la bitácora local.
func (h *TransferHandler) Journal(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	entries, err := h.journal.ListRecent(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": entries})
}
