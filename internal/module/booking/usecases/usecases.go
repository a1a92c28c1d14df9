package usecases

import (
	"context"
	"fmt"
	"time"

	"reservation-service/config"
	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/models/response"
	"reservation-service/internal/module/booking/repositories"
	paymentresponse "reservation-service/internal/module/payment/models/response"
	reservationusecases "reservation-service/internal/module/reservation/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/policy"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

type usecase struct {
	repo          repositories.Repositories
	log           *otelzap.Logger
	publish       message.Publisher
	reservationUC reservationusecases.Usecase
	cfgBooking    *config.BookingConfig
}

type Usecase interface {
	ConvertToBooking(ctx context.Context, reservationID string, receipt paymentresponse.CaptureReceipt) (response.BookingDetail, error)
	CancelBooking(ctx context.Context, bookingID string, userID int64) (response.BookingDetail, error)
	ShowBookings(ctx context.Context, userID int64) ([]response.BookingDetail, error)
}

func New(
	repo repositories.Repositories,
	log *otelzap.Logger,
	publish message.Publisher,
	reservationUC reservationusecases.Usecase,
	cfgBooking *config.BookingConfig,
) Usecase {
	return &usecase{
		repo:          repo,
		log:           log,
		publish:       publish,
		reservationUC: reservationUC,
		cfgBooking:    cfgBooking,
	}
}

// ConvertToBooking turns a captured payment plus a live reservation into a
// confirmed booking. Re-invoking it for an already-converted reservation
// returns the existing booking.
func (u *usecase) ConvertToBooking(ctx context.Context, reservationID string, receipt paymentresponse.CaptureReceipt) (response.BookingDetail, error) {
	existing, err := u.repo.FindBookingByReservationID(ctx, reservationID)
	if err == nil {
		return toDetail(existing), nil
	}
	if !errors.HasCode(err, "NOT_FOUND") {
		return response.BookingDetail{}, err
	}

	reservation, err := u.reservationUC.Convert(ctx, reservationID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	// Converted is terminal and cannot be rolled back, so a commit failure
	// here is escalated for manual reconciliation instead of retried.
	if err := u.repo.CommitSlots(ctx, reservation.Slots, reservationID); err != nil {
		u.escalate(ctx, reservationID, fmt.Sprintf("slot commit failed after convert: %v", err))
		return response.BookingDetail{}, errors.Fatal("booking could not be finalized")
	}

	booking := &entity.Booking{
		ID:            uuid.New(),
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		CourtID:       reservation.CourtID,
		Slots:         reservation.Slots,
		StartTime:     reservation.StartTime,
		EndTime:       reservation.EndTime,
		Status:        entity.StatusConfirmed,
		Amount:        reservation.Amount,
		Currency:      reservation.Currency,
		TransactionID: receipt.TransactionID,
		CreatedAt:     time.Now(),
	}

	if err := u.repo.InsertBooking(ctx, booking); err != nil {
		u.escalate(ctx, reservationID, fmt.Sprintf("booking insert failed after commit: %v", err))
		return response.BookingDetail{}, errors.Fatal("booking could not be finalized")
	}

	if err := u.reservationUC.SetConvertedBookingID(ctx, reservationID, booking.ID.String()); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error set converted booking id: %v", err))
	}

	u.publishEvent(ctx, "booking_created", booking)

	return toDetail(*booking), nil
}

// CancelBooking enforces the cancellation window; a closed window leaves the
// booking confirmed.
func (u *usecase) CancelBooking(ctx context.Context, bookingID string, userID int64) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}
	if booking.UserID != userID {
		return response.BookingDetail{}, errors.NotFound("booking not found")
	}
	if booking.Status == entity.StatusCancelled {
		return toDetail(booking), nil
	}

	if !policy.CanCancel(booking.StartTime, time.Now(), u.cfgBooking.CancellationWindow) {
		return response.BookingDetail{}, errors.CancellationWindowClosed("bookings can no longer be cancelled this close to the start time")
	}

	if err := u.repo.FreeSlots(ctx, booking.Slots, booking.ReservationID.String()); err != nil {
		return response.BookingDetail{}, err
	}

	booking.Status = entity.StatusCancelled
	if err := u.repo.UpdateBooking(ctx, &booking); err != nil {
		return response.BookingDetail{}, err
	}

	u.publishEvent(ctx, "booking_cancelled", &booking)

	return toDetail(booking), nil
}

// ShowBookings implements Usecase.
func (u *usecase) ShowBookings(ctx context.Context, userID int64) ([]response.BookingDetail, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]response.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, toDetail(booking))
	}
	return details, nil
}

// publishEvent writes to the audit/notification sink. Failures never block
// the booking path.
func (u *usecase) publishEvent(ctx context.Context, topic string, booking *entity.Booking) {
	event := request.BookingEvent{
		BookingID:     booking.ID.String(),
		ReservationID: booking.ReservationID.String(),
		UserID:        booking.UserID,
		CourtID:       booking.CourtID,
		Status:        booking.Status,
		StartTime:     booking.StartTime.Format(time.RFC3339),
		EndTime:       booking.EndTime.Format(time.RFC3339),
		Amount:        booking.Amount,
		Currency:      booking.Currency,
	}
	payload, _ := json.Marshal(event)
	if err := u.publish.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish %s event: %v", topic, err))
	}
}

func (u *usecase) escalate(ctx context.Context, reservationID, reason string) {
	err := fmt.Errorf("booking conversion needs manual reconciliation: %s", reason)
	apm.CaptureError(ctx, err).Send()
	u.log.Ctx(ctx).Error(err.Error())

	event := request.ReconciliationEvent{ReservationID: reservationID, Reason: reason}
	payload, _ := json.Marshal(event)
	if pubErr := u.publish.Publish("booking_reconciliation", message.NewMessage(watermill.NewUUID(), payload)); pubErr != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish reconciliation event: %v", pubErr))
	}
}

func toDetail(booking entity.Booking) response.BookingDetail {
	return response.BookingDetail{
		BookingID:     booking.ID.String(),
		ReservationID: booking.ReservationID.String(),
		CourtID:       booking.CourtID,
		StartTime:     booking.StartTime.Format(time.RFC3339),
		EndTime:       booking.EndTime.Format(time.RFC3339),
		Status:        booking.Status,
		Amount:        booking.Amount,
		Currency:      booking.Currency,
		TransactionID: booking.TransactionID,
		CreatedAt:     booking.CreatedAt.Format(time.RFC3339),
	}
}
