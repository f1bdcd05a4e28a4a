package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain"
)

// ok responde 200 con el sobre estándar.
func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(dto.Response{Success: true, Message: message, Data: data})
}

// created responde 201 con el sobre estándar.
func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// fail responde un error simple con el sobre estándar.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{Success: false, Message: message})
}

// failValidation responde 400 con el detalle de errores de campo.
func failValidation(c *fiber.Ctx, errs []dto.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Message: "Errores de validación",
		Errors:  errs,
	})
}

// respondError mapea errores de dominio a código de estado y sobre estándar.
// Los errores inesperados se registran y responden 500 sin filtrar detalles.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		return fail(c, fiber.StatusServiceUnavailable, "Error de conexión a la base de datos")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		return fail(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
}
