package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-api/internal/application/dto"
	"github.com/tu-usuario/stock-api/internal/domain"
)

// respondData envía el sobre de éxito {success, message, data}.
func respondData(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.OK(message, data))
}

// respondError mapea la taxonomía de errores de dominio a HTTP:
// ValidationError -> 400 con mapa de campos; ErrNotFound -> 404;
// ErrInvalidInput/ErrInsufficientStock -> 400 con mensaje único;
// cualquier otro error (almacenamiento) -> 500 genérico, sin detalles internos.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Error de validación", verr.Fields))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error(), nil))
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error(), nil))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Error interno del servidor", nil))
	}
}

// respondBadBody respuesta uniforme ante un body JSON no parseable.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Cuerpo de la petición inválido", nil))
}
