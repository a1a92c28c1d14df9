package entity

import (
	"database/sql"
	"time"

	"reservation-service/internal/pkg/slotstore"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusConverted = "converted"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Reservation is a time-limited hold on one or more slots. The slot list is
// immutable after creation and the status only ever leaves "active" once.
type Reservation struct {
	ID                 uuid.UUID          `db:"id"`
	UserID             int64              `db:"user_id"`
	CourtID            int64              `db:"court_id"`
	Slots              slotstore.SlotRefs `db:"slots"`
	StartTime          time.Time          `db:"start_time"`
	EndTime            time.Time          `db:"end_time"`
	Status             string             `db:"status"`
	Amount             float64            `db:"amount"`
	Currency           string             `db:"currency"`
	TaskID             string             `db:"task_id"`
	ConvertedBookingID sql.NullString     `db:"converted_booking_id"`
	CreatedAt          time.Time          `db:"created_at"`
	ExpiresAt          time.Time          `db:"expires_at"`
	UpdatedAt          sql.NullTime       `db:"updated_at"`
}

func (r Reservation) IsActive() bool {
	return r.Status == StatusActive
}

func (r Reservation) IsTerminal() bool {
	return r.Status == StatusConverted || r.Status == StatusExpired || r.Status == StatusCancelled
}

// RemainingSeconds derives remaining hold time from the server-held expiry,
// never from a client clock.
func (r Reservation) RemainingSeconds(now time.Time) int64 {
	if !r.IsActive() {
		return 0
	}
	remaining := int64(r.ExpiresAt.Sub(now).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}
