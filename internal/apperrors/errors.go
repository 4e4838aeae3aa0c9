package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error codes exposed to clients. Validation failures are caller errors and
// never retried; anything unexpected is collapsed into INTERNAL_ERROR so
// internals never leak.
const (
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeEmptyDescription = "EMPTY_DESCRIPTION"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError carries a machine-readable code, a human-readable message and the
// HTTP status the handler should answer with.
type AppError struct {
	Code    string
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// InvalidReference reports a supplied foreign id that does not resolve, or
// resolves but fails a cross-entity consistency check. The "not found" and
// "mismatched" flavours share this one code and differ only in message text.
func InvalidReference(message string) *AppError {
	return &AppError{Code: CodeInvalidReference, Message: message, Status: fiber.StatusBadRequest}
}

func EmptyDescription() *AppError {
	return &AppError{Code: CodeEmptyDescription, Message: "Description cannot be empty", Status: fiber.StatusBadRequest}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidationError, Message: message, Status: fiber.StatusBadRequest}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found", Status: fiber.StatusNotFound}
}

// Respond writes the structured error body for an AppError.
func Respond(c *fiber.Ctx, appErr *AppError) error {
	return c.Status(appErr.Status).JSON(fiber.Map{
		"error":  appErr.Code,
		"detail": appErr.Message,
	})
}

// ErrorHandler is installed as the Fiber app's global error handler. AppErrors
// keep their code and status; everything else is logged with full context and
// answered with a generic 500 body.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return Respond(c, appErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error":  CodeValidationError,
				"detail": fiberErr.Message,
			})
		}

		if logger != nil {
			logger.Error("Unhandled error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  CodeInternal,
			"detail": "Internal server error",
		})
	}
}
