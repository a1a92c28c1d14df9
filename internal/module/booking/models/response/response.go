package response

type BookingDetail struct {
	BookingID     string  `json:"booking_id"`
	ReservationID string  `json:"reservation_id"`
	CourtID       int64   `json:"court_id"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transaction_id"`
	CreatedAt     string  `json:"created_at"`
}
