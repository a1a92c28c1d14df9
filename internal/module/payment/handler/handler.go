package handler

import (
	"context"
	"fmt"

	"reservation-service/internal/module/payment/models/request"
	"reservation-service/internal/module/payment/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PaymentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PaymentHandler) CreateOrder(ctx *fiber.Ctx) error {
	var req request.CreateOrder
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.CreateOrder(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create payment order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "payment order created")
}

func (h *PaymentHandler) Capture(ctx *fiber.Ctx) error {
	var req request.CapturePayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	orderID := ctx.Params("id")
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.Capture(ctx.UserContext(), orderID, &req, userID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error capture payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success capture payment")
}

func (h *PaymentHandler) Refund(ctx *fiber.Ctx) error {
	var req request.RefundPayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	orderID := ctx.Params("id")
	userID := ctx.Locals("user_id").(int64)

	if err := h.Usecase.Refund(ctx.UserContext(), orderID, &req, userID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error refund payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success refund payment")
}

// ConsumeCompensationQueue processes refund requests raised when a captured
// payment could not be converted into a booking.
func (h *PaymentHandler) ConsumeCompensationQueue(msg *message.Message) error {
	var req request.PaymentCompensation
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		return err
	}

	ctx := context.Background()

	if err := h.Usecase.CompensateFailedConversion(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error compensate failed conversion: %v", err))
		return err
	}

	return nil
}
