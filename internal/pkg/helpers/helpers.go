package helpers

import (
	"math"
	"time"

	"reservation-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type successResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Error *errors.AppError `json:"error"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(successResponse{Message: message, Data: data})
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusCreated).JSON(successResponse{Message: message, Data: data})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = &errors.AppError{
			HttpCode: fiber.StatusInternalServerError,
			Code:     "INTERNAL_SERVER_ERROR",
			Message:  "internal server error",
		}
	}
	return ctx.Status(appErr.HttpCode).JSON(errorResponse{Error: appErr})
}

// DurationCalculation returns how long from now until t.
func DurationCalculation(t time.Time) time.Duration {
	return time.Until(t)
}

// RoundCents rounds a monetary amount to two decimals.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
