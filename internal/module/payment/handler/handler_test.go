package handler_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"reservation-service/internal/module/payment/handler"
	"reservation-service/internal/module/payment/mocks"
	"reservation-service/internal/module/payment/models/request"
	"reservation-service/internal/module/payment/models/response"
	internalerrors "reservation-service/internal/pkg/errors"
	log_internal "reservation-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.PaymentHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.PaymentHandler{
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
	api.Post("/payments/orders", h.CreateOrder)
	api.Post("/payments/orders/:id/capture", h.Capture)
	api.Post("/payments/orders/:id/refund", h.Refund)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestCreateOrder(t *testing.T) {
	defer teardown()

	t.Run("created", func(t *testing.T) {
		setup()
		payload := request.CreateOrder{
			ReservationID: "1c4a5e3e-58c7-4f0a-9a2b-6f2d3b7c8e91",
			Amount:        68.50,
			Currency:      "AUD",
			ReturnURL:     "https://app.example.com/payments/return",
			CancelURL:     "https://app.example.com/payments/cancel",
		}
		ucm.On("CreateOrder", mock.Anything, mock.Anything, int64(42)).
			Return(response.OrderCreated{OrderID: "PAYPAL-ORDER-1"}, nil).Once()

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/v1/payments/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("expired reservation maps to 409", func(t *testing.T) {
		setup()
		payload := request.CreateOrder{
			ReservationID: "1c4a5e3e-58c7-4f0a-9a2b-6f2d3b7c8e91",
			Amount:        68.50,
			Currency:      "AUD",
			ReturnURL:     "https://app.example.com/payments/return",
			CancelURL:     "https://app.example.com/payments/cancel",
		}
		ucm.On("CreateOrder", mock.Anything, mock.Anything, int64(42)).
			Return(response.OrderCreated{}, internalerrors.ReservationExpired("reservation has expired")).Once()

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/v1/payments/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("invalid reservation id fails validation", func(t *testing.T) {
		setup()
		body, _ := json.Marshal(request.CreateOrder{
			ReservationID: "nope",
			Amount:        68.50,
			Currency:      "AUD",
			ReturnURL:     "https://app.example.com/payments/return",
			CancelURL:     "https://app.example.com/payments/cancel",
		})
		req := httptest.NewRequest("POST", "/api/v1/payments/orders", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucm.AssertNotCalled(t, "CreateOrder")
	})
}

func TestCapture(t *testing.T) {
	defer teardown()

	t.Run("success", func(t *testing.T) {
		setup()
		ucm.On("Capture", mock.Anything, "PAYPAL-ORDER-1", mock.Anything, int64(42)).
			Return(response.CaptureResult{TransactionID: "TXN-1", BookingID: "booking-1", Status: "confirmed"}, nil).Once()

		body, _ := json.Marshal(request.CapturePayment{PayerID: "PAYER-1"})
		req := httptest.NewRequest("POST", "/api/v1/payments/orders/PAYPAL-ORDER-1/capture", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("declined payment maps to 402", func(t *testing.T) {
		setup()
		ucm.On("Capture", mock.Anything, "PAYPAL-ORDER-1", mock.Anything, int64(42)).
			Return(response.CaptureResult{}, internalerrors.PaymentFailed("card declined")).Once()

		body, _ := json.Marshal(request.CapturePayment{PayerID: "PAYER-1"})
		req := httptest.NewRequest("POST", "/api/v1/payments/orders/PAYPAL-ORDER-1/capture", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)
	})

	t.Run("conversion failure maps to 502", func(t *testing.T) {
		setup()
		ucm.On("Capture", mock.Anything, "PAYPAL-ORDER-1", mock.Anything, int64(42)).
			Return(response.CaptureResult{}, internalerrors.BookingConversionFailed("refund initiated")).Once()

		body, _ := json.Marshal(request.CapturePayment{PayerID: "PAYER-1"})
		req := httptest.NewRequest("POST", "/api/v1/payments/orders/PAYPAL-ORDER-1/capture", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	})
}

func TestRefund(t *testing.T) {
	defer teardown()
	setup()

	ucm.On("Refund", mock.Anything, "PAYPAL-ORDER-1", mock.Anything, int64(42)).Return(nil).Once()

	body, _ := json.Marshal(request.RefundPayment{Reason: "customer request"})
	req := httptest.NewRequest("POST", "/api/v1/payments/orders/PAYPAL-ORDER-1/refund", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestConsumeCompensationQueue(t *testing.T) {
	defer teardown()

	t.Run("success", func(t *testing.T) {
		setup()
		payload, _ := json.Marshal(request.PaymentCompensation{
			ProviderOrderID: "PAYPAL-ORDER-1",
			ReservationID:   "1c4a5e3e-58c7-4f0a-9a2b-6f2d3b7c8e91",
			Reason:          "booking conversion failed",
		})
		msg := message.NewMessage(watermill.NewUUID(), payload)
		ucm.On("CompensateFailedConversion", mock.Anything, mock.Anything).Return(nil).Once()

		err := h.ConsumeCompensationQueue(msg)

		assert.NoError(t, err)
		ucm.AssertExpectations(t)
	})

	t.Run("malformed payload is rejected", func(t *testing.T) {
		setup()
		msg := message.NewMessage(watermill.NewUUID(), []byte("not-json"))

		err := h.ConsumeCompensationQueue(msg)

		assert.Error(t, err)
		ucm.AssertNotCalled(t, "CompensateFailedConversion")
	})
}
