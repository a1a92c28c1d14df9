package response

type UserServiceValidate struct {
	IsValid   bool   `json:"is_valid"`
	UserID    int64  `json:"user_id"`
	EmailUser string `json:"email_user"`
}

type CourtDetail struct {
	CourtID    int64   `json:"court_id"`
	FacilityID int64   `json:"facility_id"`
	HourlyRate float64 `json:"hourly_rate"`
	IsActive   bool    `json:"is_active"`
}

type Quote struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	BookingFee float64 `json:"booking_fee"`
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
}

type ReservationCreated struct {
	ReservationID        string `json:"reservation_id"`
	ExpiresAt            string `json:"expires_at"`
	TimeRemainingSeconds int64  `json:"time_remaining_seconds"`
	Quote                Quote  `json:"quote"`
}

type ReservationStatus struct {
	ReservationID        string `json:"reservation_id"`
	Status               string `json:"status"`
	TimeRemainingSeconds int64  `json:"time_remaining_seconds"`
	ConvertedToBooking   bool   `json:"converted_to_booking"`
	ConvertedBookingID   string `json:"converted_booking_id,omitempty"`
}

type ActiveHolds struct {
	CourtID int64 `json:"court_id"`
	Count   int64 `json:"count"`
}
