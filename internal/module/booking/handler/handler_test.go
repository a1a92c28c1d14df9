package handler_test

import (
	"net/http/httptest"
	"testing"

	"reservation-service/internal/module/booking/handler"
	"reservation-service/internal/module/booking/mocks"
	"reservation-service/internal/module/booking/models/response"
	internalerrors "reservation-service/internal/pkg/errors"
	log_internal "reservation-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.BookingHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.BookingHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}

	app = fiber.New()
	withUser := func(c *fiber.Ctx) error {
		c.Locals("user_id", int64(42))
		return c.Next()
	}
	api := app.Group("/api/v1", withUser)
	api.Get("/bookings", h.ShowBookings)
	api.Post("/bookings/:id/cancel", h.CancelBooking)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestCancelBooking(t *testing.T) {
	defer teardown()

	t.Run("success", func(t *testing.T) {
		setup()
		ucm.On("CancelBooking", mock.Anything, "booking-1", int64(42)).
			Return(response.BookingDetail{BookingID: "booking-1", Status: "cancelled"}, nil).Once()

		req := httptest.NewRequest("POST", "/api/v1/bookings/booking-1/cancel", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("closed window maps to 403", func(t *testing.T) {
		setup()
		ucm.On("CancelBooking", mock.Anything, "booking-1", int64(42)).
			Return(response.BookingDetail{}, internalerrors.CancellationWindowClosed("bookings can no longer be cancelled this close to the start time")).Once()

		req := httptest.NewRequest("POST", "/api/v1/bookings/booking-1/cancel", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestShowBookings(t *testing.T) {
	defer teardown()
	setup()

	ucm.On("ShowBookings", mock.Anything, int64(42)).
		Return([]response.BookingDetail{{BookingID: "booking-1", Status: "confirmed"}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
