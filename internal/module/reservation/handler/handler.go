package handler

import (
	"context"
	"fmt"
	"strconv"

	"reservation-service/internal/module/reservation/models/request"
	"reservation-service/internal/module/reservation/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ReservationHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ReservationHandler) CreateHold(ctx *fiber.Ctx) error {
	var req request.CreateHold
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.CreateHold(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create hold: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "reservation created")
}

func (h *ReservationHandler) GetReservation(ctx *fiber.Ctx) error {
	reservationID := ctx.Params("id")
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.GetReservation(ctx.UserContext(), reservationID, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get reservation")
}

// CancelReservation is idempotent: cancelling an already-terminal
// reservation still returns 204.
func (h *ReservationHandler) CancelReservation(ctx *fiber.Ctx) error {
	reservationID := ctx.Params("id")
	userID := ctx.Locals("user_id").(int64)

	if err := h.Usecase.CancelReservation(ctx.UserContext(), reservationID, userID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error cancel reservation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *ReservationHandler) CountActiveHolds(ctx *fiber.Ctx) error {
	courtID, err := strconv.ParseInt(ctx.Query("court_id"), 10, 64)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse court id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse court id"))
	}

	resp, err := h.Usecase.CountActiveHolds(ctx.UserContext(), courtID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error count active holds: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success count active holds")
}

// ExpireReservation handles the asynq expiry task. Errors are returned so
// asynq retries with backoff; a terminal reservation resolves to a no-op.
func (h *ReservationHandler) ExpireReservation(ctx context.Context, t *asynq.Task) error {
	var req request.ReservationExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ExpireReservation(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error expire reservation: %v", err))
		return err
	}

	return nil
}
