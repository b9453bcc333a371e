package serverutils

import (
	"errors"

	"chatbot-platform-be/internal/pkg/apperror"
	"chatbot-platform-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into the JSON error
// envelope. Ownership failures on project-scoped paths surface as 404 and
// child-keyed ownership failures as 403; the mapping here is purely
// mechanical on the sentinel carried by the error.
func ErrorHandlerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		switch {
		case errors.Is(err, apperror.ErrUnauthorized):
			code = fiber.StatusUnauthorized
			message = apperror.Detail(err)
		case errors.Is(err, apperror.ErrNotFound):
			code = fiber.StatusNotFound
			message = apperror.Detail(err)
		case errors.Is(err, apperror.ErrForbidden):
			code = fiber.StatusForbidden
			message = apperror.Detail(err)
		case errors.Is(err, apperror.ErrBadRequest):
			code = fiber.StatusBadRequest
			message = apperror.Detail(err)
		case errors.Is(err, apperror.ErrConflict):
			code = fiber.StatusConflict
			message = apperror.Detail(err)
		case errors.Is(err, apperror.ErrServiceUnavailable):
			code = fiber.StatusServiceUnavailable
			message = apperror.Detail(err)
		case errors.Is(err, apperror.ErrInternal):
			message = apperror.Detail(err)
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			} else if sysLogger != nil {
				sysLogger.Error("http", "unclassified error", map[string]interface{}{
					"error":  err.Error(),
					"path":   ctx.Path(),
					"method": ctx.Method(),
				})
			}
		}

		return ctx.Status(code).JSON(fiber.Map{
			"success": false,
			"code":    code,
			"message": message,
		})
	}
}
