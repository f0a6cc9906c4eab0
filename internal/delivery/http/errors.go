package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errorLabels = map[int]string{
	fiber.StatusBadRequest:           "Bad Request",
	fiber.StatusUnauthorized:         "Unauthorized",
	fiber.StatusNotFound:             "Not Found",
	fiber.StatusMethodNotAllowed:     "Method not Allowed",
	fiber.StatusUnsupportedMediaType: "Unsupported media type",
	fiber.StatusInternalServerError:  "Internal Server Error",
}

// ErrorHandler renders every error as {"status", "error", "message"}.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "internal error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
		}

		label, ok := errorLabels[code]
		if !ok {
			label = fiber.NewError(code).Message
		}

		fields := []zap.Field{zap.Int("status", code), zap.String("path", c.Path())}
		if code >= fiber.StatusInternalServerError {
			log.Error(msg, append(fields, zap.Error(err))...)
		} else {
			log.Warn(msg, fields...)
		}

		return c.Status(code).JSON(fiber.Map{
			"status":  code,
			"error":   label,
			"message": msg,
		})
	}
}
