package usecases

import (
	"context"
	"fmt"
	"time"

	"reservation-service/config"
	"reservation-service/internal/module/reservation/models/entity"
	"reservation-service/internal/module/reservation/models/request"
	"reservation-service/internal/module/reservation/models/response"
	"reservation-service/internal/module/reservation/repositories"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"
	"reservation-service/internal/pkg/slotstore"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo           repositories.Repositories
	log            *otelzap.Logger
	cfgPricing     *config.PricingConfig
	cfgReservation *config.ReservationConfig
}

type Usecase interface {
	// http
	CreateHold(ctx context.Context, payload *request.CreateHold, userID int64) (response.ReservationCreated, error)
	GetReservation(ctx context.Context, reservationID string, userID int64) (response.ReservationStatus, error)
	CancelReservation(ctx context.Context, reservationID string, userID int64) error
	CountActiveHolds(ctx context.Context, courtID int64) (response.ActiveHolds, error)
	// scheduler
	ExpireReservation(ctx context.Context, payload *request.ReservationExpiration) error
	// internal, used by the payment and booking modules
	Lock(ctx context.Context, reservationID string) (func(), error)
	EnsureActive(ctx context.Context, reservationID string) (entity.Reservation, error)
	Convert(ctx context.Context, reservationID string) (entity.Reservation, error)
	SetConvertedBookingID(ctx context.Context, reservationID string, bookingID string) error
}

func New(repo repositories.Repositories, log *otelzap.Logger, cfgPricing *config.PricingConfig, cfgReservation *config.ReservationConfig) Usecase {
	return &usecase{
		repo:           repo,
		log:            log,
		cfgPricing:     cfgPricing,
		cfgReservation: cfgReservation,
	}
}

func (u *usecase) quote(hourlyRate float64, slots slotstore.SlotRefs) response.Quote {
	subtotal := helpers.RoundCents(hourlyRate * slots.TotalHours())
	tax := helpers.RoundCents(subtotal * u.cfgPricing.TaxRate)
	total := helpers.RoundCents(subtotal + tax + u.cfgPricing.BookingFee)
	return response.Quote{
		Subtotal:   subtotal,
		Tax:        tax,
		BookingFee: u.cfgPricing.BookingFee,
		Total:      total,
		Currency:   u.cfgPricing.Currency,
	}
}

func (u *usecase) CreateHold(ctx context.Context, payload *request.CreateHold, userID int64) (response.ReservationCreated, error) {
	slots := slotstore.SlotRefs(payload.Slots)
	for _, slot := range slots {
		if slot.CourtID != payload.CourtID {
			return response.ReservationCreated{}, errors.BadRequest("all slots must belong to the requested court")
		}
		if !slot.EndTime.After(slot.StartTime) {
			return response.ReservationCreated{}, errors.BadRequest("slot end must be after slot start")
		}
	}

	court, err := u.repo.FindCourt(ctx, payload.CourtID)
	if err != nil {
		return response.ReservationCreated{}, err
	}
	if !court.IsActive {
		return response.ReservationCreated{}, errors.CourtUnavailable("court is not open for booking")
	}

	reservationID := uuid.New()
	now := time.Now()
	holdDuration := u.cfgReservation.HoldDuration
	slotTTL := holdDuration + u.cfgReservation.SlotTTLGrace

	// All-or-nothing: either every slot flips to held or the request fails.
	if err := u.repo.HoldSlots(ctx, slots, reservationID.String(), slotTTL); err != nil {
		return response.ReservationCreated{}, err
	}

	taskPayload, _ := json.Marshal(request.ReservationExpiration{ReservationID: reservationID.String()})
	taskID, err := u.repo.SetTaskScheduler(ctx, holdDuration, taskPayload)
	if err != nil {
		if relErr := u.repo.ReleaseSlots(ctx, slots, reservationID.String()); relErr != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error releasing slots after scheduler failure: %v", relErr))
		}
		return response.ReservationCreated{}, err
	}

	quote := u.quote(court.HourlyRate, slots)
	reservation := &entity.Reservation{
		ID:        reservationID,
		UserID:    userID,
		CourtID:   payload.CourtID,
		Slots:     slots,
		StartTime: earliestStart(slots),
		EndTime:   latestEnd(slots),
		Status:    entity.StatusActive,
		Amount:    quote.Total,
		Currency:  quote.Currency,
		TaskID:    taskID,
		CreatedAt: now,
		ExpiresAt: now.Add(holdDuration),
	}

	if err := u.repo.InsertReservation(ctx, reservation); err != nil {
		if relErr := u.repo.ReleaseSlots(ctx, slots, reservationID.String()); relErr != nil {
			u.log.Ctx(ctx).Error(fmt.Sprintf("error releasing slots after insert failure: %v", relErr))
		}
		_ = u.repo.DeleteTaskScheduler(ctx, taskID)
		return response.ReservationCreated{}, err
	}

	return response.ReservationCreated{
		ReservationID:        reservationID.String(),
		ExpiresAt:            reservation.ExpiresAt.Format(time.RFC3339),
		TimeRemainingSeconds: reservation.RemainingSeconds(now),
		Quote:                quote,
	}, nil
}

func (u *usecase) GetReservation(ctx context.Context, reservationID string, userID int64) (response.ReservationStatus, error) {
	reservation, err := u.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return response.ReservationStatus{}, err
	}
	if reservation.UserID != userID {
		return response.ReservationStatus{}, errors.NotFound("reservation not found")
	}

	return response.ReservationStatus{
		ReservationID:        reservation.ID.String(),
		Status:               reservation.Status,
		TimeRemainingSeconds: reservation.RemainingSeconds(time.Now()),
		ConvertedToBooking:   reservation.Status == entity.StatusConverted,
		ConvertedBookingID:   reservation.ConvertedBookingID.String,
	}, nil
}

// CancelReservation is the best-effort client cancel. Cancelling a terminal
// reservation is a no-op acknowledgement, so an unmount-triggered cancel can
// race the expiry timer harmlessly.
func (u *usecase) CancelReservation(ctx context.Context, reservationID string, userID int64) error {
	unlock, err := u.repo.LockReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	defer unlock()

	reservation, err := u.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation.UserID != userID {
		return errors.NotFound("reservation not found")
	}
	if reservation.IsTerminal() {
		return nil
	}

	if err := u.repo.ReleaseSlots(ctx, reservation.Slots, reservation.ID.String()); err != nil {
		return err
	}

	taskID := reservation.TaskID
	reservation.Status = entity.StatusCancelled
	reservation.TaskID = ""
	if err := u.repo.UpdateReservation(ctx, &reservation); err != nil {
		return err
	}

	return u.repo.DeleteTaskScheduler(ctx, taskID)
}

// ExpireReservation runs when the single-shot expiry task fires. It is the
// durable safety net; a reservation that was converted or cancelled first is
// left alone.
func (u *usecase) ExpireReservation(ctx context.Context, payload *request.ReservationExpiration) error {
	unlock, err := u.repo.LockReservation(ctx, payload.ReservationID)
	if err != nil {
		return err
	}
	defer unlock()

	reservation, err := u.repo.FindReservationByID(ctx, payload.ReservationID)
	if err != nil {
		if errors.HasCode(err, "NOT_FOUND") {
			return nil
		}
		return err
	}
	if !reservation.IsActive() {
		return nil
	}

	// Returned error propagates to asynq, which retries with backoff. Only
	// availability is at stake here, never money.
	if err := u.repo.ReleaseSlots(ctx, reservation.Slots, reservation.ID.String()); err != nil {
		return err
	}

	reservation.Status = entity.StatusExpired
	reservation.TaskID = ""
	return u.repo.UpdateReservation(ctx, &reservation)
}

// Lock hands out the per-reservation mutex so sibling modules can serialize
// their own state transitions against cancel, expiry and convert.
func (u *usecase) Lock(ctx context.Context, reservationID string) (func(), error) {
	return u.repo.LockReservation(ctx, reservationID)
}

// EnsureActive rejects doomed reservations before any provider call.
func (u *usecase) EnsureActive(ctx context.Context, reservationID string) (entity.Reservation, error) {
	reservation, err := u.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return entity.Reservation{}, err
	}
	if !reservation.IsActive() || reservation.RemainingSeconds(time.Now()) <= 0 {
		return entity.Reservation{}, errors.ReservationExpired("reservation has expired, please select your slots again")
	}
	return reservation, nil
}

// Convert transitions active -> converted exactly once. A reservation whose
// deadline already passed is treated as expired even if the timer has not
// fired yet.
func (u *usecase) Convert(ctx context.Context, reservationID string) (entity.Reservation, error) {
	unlock, err := u.repo.LockReservation(ctx, reservationID)
	if err != nil {
		return entity.Reservation{}, err
	}
	defer unlock()

	reservation, err := u.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return entity.Reservation{}, err
	}
	if reservation.Status == entity.StatusConverted {
		return reservation, nil
	}
	if !reservation.IsActive() || reservation.RemainingSeconds(time.Now()) <= 0 {
		return entity.Reservation{}, errors.ReservationExpired("reservation has expired")
	}

	taskID := reservation.TaskID
	reservation.Status = entity.StatusConverted
	reservation.TaskID = ""
	if err := u.repo.UpdateReservation(ctx, &reservation); err != nil {
		return entity.Reservation{}, err
	}
	_ = u.repo.DeleteTaskScheduler(ctx, taskID)

	return reservation, nil
}

// SetConvertedBookingID implements Usecase.
func (u *usecase) SetConvertedBookingID(ctx context.Context, reservationID string, bookingID string) error {
	reservation, err := u.repo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return err
	}
	reservation.ConvertedBookingID.String = bookingID
	reservation.ConvertedBookingID.Valid = true
	return u.repo.UpdateReservation(ctx, &reservation)
}

// CountActiveHolds implements Usecase.
func (u *usecase) CountActiveHolds(ctx context.Context, courtID int64) (response.ActiveHolds, error) {
	count, err := u.repo.CountActiveByCourt(ctx, courtID)
	if err != nil {
		return response.ActiveHolds{}, err
	}
	return response.ActiveHolds{CourtID: courtID, Count: count}, nil
}

func earliestStart(slots slotstore.SlotRefs) time.Time {
	earliest := slots[0].StartTime
	for _, slot := range slots[1:] {
		if slot.StartTime.Before(earliest) {
			earliest = slot.StartTime
		}
	}
	return earliest
}

func latestEnd(slots slotstore.SlotRefs) time.Time {
	latest := slots[0].EndTime
	for _, slot := range slots[1:] {
		if slot.EndTime.After(latest) {
			latest = slot.EndTime
		}
	}
	return latest
}
