package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	bookingusecases "reservation-service/internal/module/booking/usecases"
	"reservation-service/internal/module/payment/models/entity"
	"reservation-service/internal/module/payment/models/request"
	"reservation-service/internal/module/payment/models/response"
	"reservation-service/internal/module/payment/repositories"
	reservationusecases "reservation-service/internal/module/reservation/usecases"
	"reservation-service/internal/pkg/errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo          repositories.Repositories
	log           *otelzap.Logger
	publish       message.Publisher
	reservationUC reservationusecases.Usecase
	bookingUC     bookingusecases.Usecase
}

type Usecase interface {
	// http
	CreateOrder(ctx context.Context, payload *request.CreateOrder, userID int64) (response.OrderCreated, error)
	Capture(ctx context.Context, orderID string, payload *request.CapturePayment, userID int64) (response.CaptureResult, error)
	Refund(ctx context.Context, orderID string, payload *request.RefundPayment, userID int64) error
	// queue
	CompensateFailedConversion(ctx context.Context, payload *request.PaymentCompensation) error
}

func New(
	repo repositories.Repositories,
	log *otelzap.Logger,
	publish message.Publisher,
	reservationUC reservationusecases.Usecase,
	bookingUC bookingusecases.Usecase,
) Usecase {
	return &usecase{
		repo:          repo,
		log:           log,
		publish:       publish,
		reservationUC: reservationUC,
		bookingUC:     bookingUC,
	}
}

// CreateOrder creates the provider order for a reservation. Doomed
// reservations are rejected before the provider is contacted, and a second
// call for the same reservation returns the existing order.
func (u *usecase) CreateOrder(ctx context.Context, payload *request.CreateOrder, userID int64) (response.OrderCreated, error) {
	reservation, err := u.reservationUC.EnsureActive(ctx, payload.ReservationID)
	if err != nil {
		return response.OrderCreated{}, err
	}
	if reservation.UserID != userID {
		return response.OrderCreated{}, errors.NotFound("reservation not found")
	}
	if payload.Amount != reservation.Amount || payload.Currency != reservation.Currency {
		return response.OrderCreated{}, errors.BadRequest("amount does not match the reservation quote")
	}

	existing, err := u.repo.FindOrderByReservationID(ctx, payload.ReservationID)
	if err == nil {
		return response.OrderCreated{OrderID: existing.ProviderOrderID}, nil
	}
	if !errors.HasCode(err, "NOT_FOUND") {
		return response.OrderCreated{}, err
	}

	providerOrderID, err := u.repo.CreateProviderOrder(ctx, payload.Amount, payload.Currency, payload.ReturnURL, payload.CancelURL)
	if err != nil {
		return response.OrderCreated{}, err
	}

	order := &entity.PaymentOrder{
		ReservationID:   reservation.ID,
		ProviderOrderID: providerOrderID,
		Amount:          payload.Amount,
		Currency:        payload.Currency,
		Status:          entity.OrderCreated,
		CreatedAt:       time.Now(),
	}
	if err := u.repo.InsertOrder(ctx, order); err != nil {
		return response.OrderCreated{}, err
	}

	return response.OrderCreated{OrderID: providerOrderID}, nil
}

// Capture finalizes the payment and hands off to the booking converter.
// Capturing an already-captured order replays the stored receipt without a
// second provider charge.
func (u *usecase) Capture(ctx context.Context, orderID string, payload *request.CapturePayment, userID int64) (response.CaptureResult, error) {
	order, err := u.repo.FindOrderByProviderID(ctx, orderID)
	if err != nil {
		return response.CaptureResult{}, err
	}
	if _, err := u.reservationUC.GetReservation(ctx, order.ReservationID.String(), userID); err != nil {
		return response.CaptureResult{}, err
	}

	order, receipt, err := u.captureOnce(ctx, orderID, order.ReservationID.String())
	if err != nil {
		return response.CaptureResult{}, err
	}

	booking, err := u.bookingUC.ConvertToBooking(ctx, order.ReservationID.String(), receipt)
	if err != nil {
		if errors.IsReservationExpired(err) {
			// money moved but the reservation is gone: trigger the
			// compensating refund
			u.requestCompensation(ctx, &order, err)
			return response.CaptureResult{}, errors.BookingConversionFailed("payment was received but the booking could not be completed; a refund has been initiated")
		}
		// a FATAL conversion failure is escalated to the reconciliation
		// queue by the booking converter and must reach an operator with
		// the money still in place
		return response.CaptureResult{}, err
	}

	return response.CaptureResult{
		TransactionID: receipt.TransactionID,
		BookingID:     booking.BookingID,
		Status:        booking.Status,
	}, nil
}

// captureOnce runs the check-charge-update section under the per-reservation
// mutex shared with cancel, expiry and convert. A concurrent caller re-reads
// a captured order and replays the stored receipt instead of charging twice.
func (u *usecase) captureOnce(ctx context.Context, orderID string, reservationID string) (entity.PaymentOrder, response.CaptureReceipt, error) {
	unlock, err := u.reservationUC.Lock(ctx, reservationID)
	if err != nil {
		return entity.PaymentOrder{}, response.CaptureReceipt{}, err
	}
	defer unlock()

	order, err := u.repo.FindOrderByProviderID(ctx, orderID)
	if err != nil {
		return entity.PaymentOrder{}, response.CaptureReceipt{}, err
	}

	receipt := response.CaptureReceipt{
		ProviderOrderID: order.ProviderOrderID,
		TransactionID:   order.TransactionID.String,
		Amount:          order.Amount,
		Currency:        order.Currency,
	}
	if order.IsCaptured() {
		return order, receipt, nil
	}

	if order.Status == entity.OrderCancelled || order.Status == entity.OrderRefunded {
		return entity.PaymentOrder{}, response.CaptureReceipt{}, errors.PaymentFailed("payment order is no longer payable")
	}

	// do not charge for a reservation that already died
	if _, err := u.reservationUC.EnsureActive(ctx, order.ReservationID.String()); err != nil {
		return entity.PaymentOrder{}, response.CaptureReceipt{}, err
	}

	receipt, err = u.repo.CaptureProviderOrder(ctx, order.ProviderOrderID)
	if err != nil {
		order.Status = entity.OrderFailed
		order.FailureReason.String = err.Error()
		order.FailureReason.Valid = true
		if updErr := u.repo.UpdateOrder(ctx, &order); updErr != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error mark order failed: %v", updErr))
		}
		// the reservation stays active while time remains, so the client
		// may retry with the same order id
		return entity.PaymentOrder{}, response.CaptureReceipt{}, err
	}

	order.Status = entity.OrderCaptured
	order.TransactionID.String = receipt.TransactionID
	order.TransactionID.Valid = true
	order.FailureReason = sql.NullString{}
	if err := u.repo.UpdateOrder(ctx, &order); err != nil {
		return entity.PaymentOrder{}, response.CaptureReceipt{}, err
	}
	return order, receipt, nil
}

// Refund voids or refunds an order on explicit request.
func (u *usecase) Refund(ctx context.Context, orderID string, payload *request.RefundPayment, userID int64) error {
	order, err := u.repo.FindOrderByProviderID(ctx, orderID)
	if err != nil {
		return err
	}
	if _, err := u.reservationUC.GetReservation(ctx, order.ReservationID.String(), userID); err != nil {
		return err
	}

	reason := payload.Reason
	if reason == "" {
		reason = "refund requested"
	}

	return u.refundOrder(ctx, &order, reason)
}

// CompensateFailedConversion consumes the payment_compensation queue. Retries
// are handled by the message router; exhausted messages land in the poison
// queue for operator attention.
func (u *usecase) CompensateFailedConversion(ctx context.Context, payload *request.PaymentCompensation) error {
	order, err := u.repo.FindOrderByProviderID(ctx, payload.ProviderOrderID)
	if err != nil {
		return err
	}
	return u.refundOrder(ctx, &order, payload.Reason)
}

func (u *usecase) refundOrder(ctx context.Context, order *entity.PaymentOrder, reason string) error {
	switch order.Status {
	case entity.OrderRefunded, entity.OrderCancelled:
		return nil
	case entity.OrderCaptured:
		if err := u.repo.RefundProviderCapture(ctx, order.TransactionID.String, order.Amount, order.Currency, reason); err != nil {
			return err
		}
		order.Status = entity.OrderRefunded
	default:
		// nothing was captured; the provider order is simply abandoned
		order.Status = entity.OrderCancelled
	}
	return u.repo.UpdateOrder(ctx, order)
}

func (u *usecase) requestCompensation(ctx context.Context, order *entity.PaymentOrder, cause error) {
	event := request.PaymentCompensation{
		ProviderOrderID: order.ProviderOrderID,
		ReservationID:   order.ReservationID.String(),
		Reason:          cause.Error(),
	}
	payload, _ := json.Marshal(event)
	if err := u.publish.Publish("payment_compensation", message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish compensation request: %v", err))
	}
}
