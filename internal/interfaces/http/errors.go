package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// ErrorHandler traduce errores a respuestas HTTP. Es el único lugar donde se
// decide el código de estado: NotFound → 404, Conflict e InvalidInput → 400,
// el resto → 500 con mensaje genérico (el detalle solo va al log).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		switch domain.KindOf(err) {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		case domain.ErrConflict:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			if fe.Code == fiber.StatusNotFound {
				code = "NOT_FOUND"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}
