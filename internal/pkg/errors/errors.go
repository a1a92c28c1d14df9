package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError is the error shape every handler returns. Provider-level errors are
// translated into one of the constructors below before they reach a client.
type AppError struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &AppError{HttpCode: fiber.StatusBadRequest, Code: "BAD_REQUEST", Message: message}
}

func UnauthorizedError(message string) error {
	return &AppError{HttpCode: fiber.StatusUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

func NotFound(message string) error {
	return &AppError{HttpCode: fiber.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

func InternalServerError(message string) error {
	return &AppError{HttpCode: fiber.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: message}
}

// SlotUnavailable means at least one requested slot is not open. The client
// must re-search availability.
func SlotUnavailable(message string) error {
	return &AppError{HttpCode: fiber.StatusConflict, Code: "SLOT_UNAVAILABLE", Message: message}
}

// ReservationExpired means the hold is no longer active. The client must
// restart the flow from slot selection.
func ReservationExpired(message string) error {
	return &AppError{HttpCode: fiber.StatusConflict, Code: "RESERVATION_EXPIRED", Message: message}
}

// ReservationStale means a slot batch is no longer tagged with the expected
// reservation id, e.g. a commit racing an external mutation.
func ReservationStale(message string) error {
	return &AppError{HttpCode: fiber.StatusConflict, Code: "RESERVATION_STALE", Message: message}
}

func CourtUnavailable(message string) error {
	return &AppError{HttpCode: fiber.StatusConflict, Code: "COURT_UNAVAILABLE", Message: message}
}

// PaymentFailed keeps the reservation alive; the client may retry with the
// same order id while time remains.
func PaymentFailed(message string) error {
	return &AppError{HttpCode: fiber.StatusPaymentRequired, Code: "PAYMENT_FAILED", Message: message}
}

func CancellationWindowClosed(message string) error {
	return &AppError{HttpCode: fiber.StatusForbidden, Code: "CANCELLATION_WINDOW_CLOSED", Message: message}
}

// BookingConversionFailed is surfaced when money may have moved but the
// booking could not be created. A compensating refund is triggered internally.
func BookingConversionFailed(message string) error {
	return &AppError{HttpCode: fiber.StatusBadGateway, Code: "BOOKING_CONVERSION_FAILED", Message: message}
}

// Fatal marks a commit-after-convert failure. Never auto-retried, always
// escalated for manual reconciliation.
func Fatal(message string) error {
	return &AppError{HttpCode: fiber.StatusInternalServerError, Code: "FATAL", Message: message}
}

func HttpCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HttpCode
	}
	return fiber.StatusInternalServerError
}

func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "INTERNAL_SERVER_ERROR"
}

func HasCode(err error, code string) bool {
	return Code(err) == code
}

func IsReservationExpired(err error) bool {
	return HasCode(err, "RESERVATION_EXPIRED")
}

func IsSlotUnavailable(err error) bool {
	return HasCode(err, "SLOT_UNAVAILABLE")
}
