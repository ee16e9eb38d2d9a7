package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mm-voicenote-be/internal/pkg/apperrors"
)

type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func SuccessResponse(message string, data interface{}) Response {
	return Response{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

var validate = validator.New()

// ValidateRequest runs struct tag validation and flattens failures into one
// caller-facing validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fields := make([]string, 0, len(invalid))
		for _, f := range invalid {
			fields = append(fields, fmt.Sprintf("%s (%s)", f.Field(), f.Tag()))
		}
		return apperrors.Validation("invalid fields: " + strings.Join(fields, ", "))
	}
	return apperrors.Validation(err.Error())
}

// ErrorHandlerMiddleware maps service errors onto HTTP statuses with the
// standard envelope. Controllers just return errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			code = fiber.StatusBadRequest
		case errors.Is(err, apperrors.ErrNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = fiber.StatusUnauthorized
		case errors.Is(err, apperrors.ErrGateway):
			code = fiber.StatusBadGateway
		case errors.Is(err, apperrors.ErrStorageWrite):
			// The note/report was NOT saved; the client must be told.
			code = fiber.StatusInsufficientStorage
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		return ctx.Status(code).JSON(Response{
			Success: false,
			Code:    code,
			Message: err.Error(),
		})
	}
}
