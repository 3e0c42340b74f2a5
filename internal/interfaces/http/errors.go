package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DeiVid1337/BossFront-sub002/internal/application/dto"
	"github.com/DeiVid1337/BossFront-sub002/internal/domain"
)

// validationResponse cuerpo 422 con el detalle por campo, misma forma que usa el backend.
type validationResponse struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Errors  domain.FieldErrors `json:"errors,omitempty"`
}

// respondError traduce errores de dominio y del backend a respuestas HTTP.
// Los errores del backend se reflejan con su status original (passthrough).
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(validationResponse{
			Code:    "VALIDATION",
			Message: verr.Error(),
			Errors:  verr.FieldErrors,
		})
	}
	var berr *domain.BackendError
	if errors.As(err, &berr) {
		status := berr.Status
		if status < 400 || status > 599 {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: "BACKEND", Message: berr.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_FLIGHT", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
