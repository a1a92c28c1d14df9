package repositories

import (
	"context"
	"database/sql"

	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/slotstore"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type repositories struct {
	db    *sqlx.DB
	log   *otelzap.Logger
	slots *slotstore.Store
}

type Repositories interface {
	// db
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	UpdateBooking(ctx context.Context, booking *entity.Booking) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingByReservationID(ctx context.Context, reservationID string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error)
	// slot store
	CommitSlots(ctx context.Context, slots slotstore.SlotRefs, reservationID string) error
	FreeSlots(ctx context.Context, slots slotstore.SlotRefs, reservationID string) error
}

func New(db *sqlx.DB, log *otelzap.Logger, slots *slotstore.Store) Repositories {
	return &repositories{
		db:    db,
		log:   log,
		slots: slots,
	}
}

// InsertBooking implements Repositories. The unique constraint on
// reservation_id guarantees exactly one booking per converted reservation.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO bookings (id, reservation_id, user_id, court_id, slots, start_time, end_time, status, amount, currency, transaction_id, created_at)
		VALUES (:id, :reservation_id, :user_id, :court_id, :slots, :start_time, :end_time, :status, :amount, :currency, :transaction_id, :created_at)
	`, booking)
	if err != nil {
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// UpdateBooking implements Repositories.
func (r *repositories) UpdateBooking(ctx context.Context, booking *entity.Booking) error {
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE bookings
		SET status = :status, updated_at = now()
		WHERE id = :id
	`, booking)
	if err != nil {
		return errors.InternalServerError("error update booking")
	}
	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingByReservationID implements Repositories.
func (r *repositories) FindBookingByReservationID(ctx context.Context, reservationID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE reservation_id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, reservationID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by reservation id")
	}
	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// CommitSlots implements Repositories. The booking module is the only caller
// allowed to move a slot from held to booked.
func (r *repositories) CommitSlots(ctx context.Context, slots slotstore.SlotRefs, reservationID string) error {
	return r.slots.Commit(ctx, slots, reservationID)
}

// FreeSlots implements Repositories.
func (r *repositories) FreeSlots(ctx context.Context, slots slotstore.SlotRefs, reservationID string) error {
	return r.slots.Free(ctx, slots, reservationID)
}
