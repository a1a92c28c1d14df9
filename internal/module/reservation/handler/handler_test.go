package handler_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"reservation-service/internal/module/reservation/handler"
	"reservation-service/internal/module/reservation/mocks"
	"reservation-service/internal/module/reservation/models/request"
	"reservation-service/internal/module/reservation/models/response"
	internalerrors "reservation-service/internal/pkg/errors"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/slotstore"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.ReservationHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	h = &handler.ReservationHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
	}

	app = fiber.New()
	withUser := func(c *fiber.Ctx) error {
		c.Locals("user_id", int64(42))
		c.Locals("email_user", "user@test.com")
		return c.Next()
	}
	api := app.Group("/api/v1", withUser)
	api.Post("/reservations", h.CreateHold)
	api.Get("/reservations/:id", h.GetReservation)
	api.Delete("/reservations/:id", h.CancelReservation)
	app.Get("/api/private/reservations/active", h.CountActiveHolds)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestCreateHold(t *testing.T) {
	defer teardown()

	t.Run("created", func(t *testing.T) {
		setup()
		start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
		payload := request.CreateHold{
			CourtID: 7,
			Slots: []slotstore.SlotRef{
				{CourtID: 7, StartTime: start, EndTime: start.Add(time.Hour)},
			},
		}
		ucm.On("CreateHold", mock.Anything, mock.Anything, int64(42)).
			Return(response.ReservationCreated{
				ReservationID:        "11111111-1111-1111-1111-111111111111",
				ExpiresAt:            start.Format(time.RFC3339),
				TimeRemainingSeconds: 600,
			}, nil).Once()

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/v1/reservations", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("missing slots fails validation", func(t *testing.T) {
		setup()
		body, _ := json.Marshal(request.CreateHold{CourtID: 7})
		req := httptest.NewRequest("POST", "/api/v1/reservations", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		ucm.AssertNotCalled(t, "CreateHold")
	})

	t.Run("slot conflict maps to 409", func(t *testing.T) {
		setup()
		start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
		payload := request.CreateHold{
			CourtID: 7,
			Slots: []slotstore.SlotRef{
				{CourtID: 7, StartTime: start, EndTime: start.Add(time.Hour)},
			},
		}
		ucm.On("CreateHold", mock.Anything, mock.Anything, int64(42)).
			Return(response.ReservationCreated{}, internalerrors.SlotUnavailable("one or more slots are no longer available")).Once()

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/v1/reservations", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestGetReservation(t *testing.T) {
	defer teardown()

	t.Run("success", func(t *testing.T) {
		setup()
		ucm.On("GetReservation", mock.Anything, "res-1", int64(42)).
			Return(response.ReservationStatus{ReservationID: "res-1", Status: "active", TimeRemainingSeconds: 300}, nil).Once()

		req := httptest.NewRequest("GET", "/api/v1/reservations/res-1", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		setup()
		ucm.On("GetReservation", mock.Anything, "res-9", int64(42)).
			Return(response.ReservationStatus{}, internalerrors.NotFound("reservation not found")).Once()

		req := httptest.NewRequest("GET", "/api/v1/reservations/res-9", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestCancelReservation(t *testing.T) {
	defer teardown()
	setup()

	ucm.On("CancelReservation", mock.Anything, "res-1", int64(42)).Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/api/v1/reservations/res-1", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCountActiveHolds(t *testing.T) {
	defer teardown()

	t.Run("success", func(t *testing.T) {
		setup()
		ucm.On("CountActiveHolds", mock.Anything, int64(7)).
			Return(response.ActiveHolds{CourtID: 7, Count: 2}, nil).Once()

		req := httptest.NewRequest("GET", "/api/private/reservations/active?court_id=7", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bad court id", func(t *testing.T) {
		setup()
		req := httptest.NewRequest("GET", "/api/private/reservations/active?court_id=abc", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestExpireReservationTask(t *testing.T) {
	defer teardown()

	t.Run("success", func(t *testing.T) {
		setup()
		payload, _ := json.Marshal(request.ReservationExpiration{ReservationID: "11111111-1111-1111-1111-111111111111"})
		task := asynq.NewTask("reservation:expire", payload)
		ucm.On("ExpireReservation", mock.Anything, mock.Anything).Return(nil).Once()

		err := h.ExpireReservation(context.Background(), task)

		assert.NoError(t, err)
		ucm.AssertExpectations(t)
	})

	t.Run("usecase error propagates for retry", func(t *testing.T) {
		setup()
		payload, _ := json.Marshal(request.ReservationExpiration{ReservationID: "11111111-1111-1111-1111-111111111111"})
		task := asynq.NewTask("reservation:expire", payload)
		ucm.On("ExpireReservation", mock.Anything, mock.Anything).
			Return(internalerrors.InternalServerError("redis down")).Once()

		err := h.ExpireReservation(context.Background(), task)

		assert.Error(t, err)
	})
}
