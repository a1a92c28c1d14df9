package entity

import (
	"database/sql"
	"time"

	"reservation-service/internal/pkg/slotstore"

	"github.com/google/uuid"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is the persisted outcome of a converted reservation. Slots and
// times are copied so cancellation policy checks do not depend on the
// archived reservation.
type Booking struct {
	ID            uuid.UUID          `db:"id"`
	ReservationID uuid.UUID          `db:"reservation_id"`
	UserID        int64              `db:"user_id"`
	CourtID       int64              `db:"court_id"`
	Slots         slotstore.SlotRefs `db:"slots"`
	StartTime     time.Time          `db:"start_time"`
	EndTime       time.Time          `db:"end_time"`
	Status        string             `db:"status"`
	Amount        float64            `db:"amount"`
	Currency      string             `db:"currency"`
	TransactionID string             `db:"transaction_id"`
	CreatedAt     time.Time          `db:"created_at"`
	UpdatedAt     sql.NullTime       `db:"updated_at"`
}
