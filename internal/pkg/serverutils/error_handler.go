package serverutils

import (
	"errors"

	"gift-recommender-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const GenericErrorMessage = "حصل مشكلة في النظام، ممكن تحاول تاني؟"

// ErrorHandler is the fiber.Config.ErrorHandler. *fiber.Error keeps its code
// and message; anything else is a 500 with the generic apology.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(fiber.Map{
				"success": false,
				"code":    fe.Code,
				"message": fe.Message,
			})
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusInternalServerError,
			"message": GenericErrorMessage,
			"detail":  err.Error(),
		})
	}
}
