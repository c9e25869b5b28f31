package middleware

import (
	"errors"

	"monetizr/errutil"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func errorResponse(c *fiber.Ctx, statusCode int, code errutil.CoreStatus, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  false,
		"code":    code,
		"message": message,
		"data":    data,
	})
}

// ErrorHandler is the application wide fiber error handler. Errors are answered with the
// standard envelope; internal failures are logged and reported with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if base, ok := errutil.As(err); ok {
		statusCode := base.Code.HTTPStatus()
		if statusCode >= fiber.StatusInternalServerError {
			zap.L().Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("message", base.Message),
				zap.Error(base.Err),
			)
		}
		var details interface{}
		if len(base.Details) > 0 {
			details = base.Details
		}
		return errorResponse(c, statusCode, base.Code, base.Message, details)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return errorResponse(c, fe.Code, codeForStatus(fe.Code), fe.Message, nil)
	}

	zap.L().Error("unhandled error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return errorResponse(c, fiber.StatusInternalServerError, errutil.StatusInternal, "Internal Server Error", nil)
}

func codeForStatus(status int) errutil.CoreStatus {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return errutil.StatusBadRequest
	case fiber.StatusUnauthorized:
		return errutil.StatusUnauthorized
	case fiber.StatusForbidden:
		return errutil.StatusForbidden
	case fiber.StatusNotFound:
		return errutil.StatusNotFound
	case fiber.StatusConflict:
		return errutil.StatusConflict
	default:
		return errutil.CoreStatus("HTTP_ERROR")
	}
}
