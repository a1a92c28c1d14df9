package request

// BookingEvent is the audit/notification payload published on creation and
// cancellation. Delivery is fire-and-forget.
type BookingEvent struct {
	BookingID     string  `json:"booking_id" validate:"required"`
	ReservationID string  `json:"reservation_id" validate:"required"`
	UserID        int64   `json:"user_id" validate:"required"`
	CourtID       int64   `json:"court_id" validate:"required"`
	Status        string  `json:"status" validate:"required"`
	StartTime     string  `json:"start_time" validate:"required"`
	EndTime       string  `json:"end_time" validate:"required"`
	Amount        float64 `json:"amount" validate:"required"`
	Currency      string  `json:"currency" validate:"required"`
}

// ReconciliationEvent flags a conversion that must be resolved by hand, e.g.
// a slot commit failing after the reservation was already converted.
type ReconciliationEvent struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	Reason        string `json:"reason" validate:"required"`
}
