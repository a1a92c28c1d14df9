package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	OrderCreated   = "created"
	OrderApproved  = "approved"
	OrderCaptured  = "captured"
	OrderFailed    = "failed"
	OrderCancelled = "cancelled"
	OrderRefunded  = "refunded"
)

// PaymentOrder is the one-to-one payment record for a reservation. Captured
// is terminal; repeated captures replay the stored receipt.
type PaymentOrder struct {
	ID              int64          `db:"id"`
	ReservationID   uuid.UUID      `db:"reservation_id"`
	ProviderOrderID string         `db:"provider_order_id"`
	Amount          float64        `db:"amount"`
	Currency        string         `db:"currency"`
	Status          string         `db:"status"`
	TransactionID   sql.NullString `db:"transaction_id"`
	FailureReason   sql.NullString `db:"failure_reason"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

func (o PaymentOrder) IsCaptured() bool {
	return o.Status == OrderCaptured
}
