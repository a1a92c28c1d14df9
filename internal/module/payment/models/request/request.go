package request

type CreateOrder struct {
	ReservationID string  `json:"reservation_id" validate:"required,uuid4"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"required,len=3"`
	ReturnURL     string  `json:"return_url" validate:"required,url"`
	CancelURL     string  `json:"cancel_url" validate:"required,url"`
}

type CapturePayment struct {
	PayerID string `json:"payer_id" validate:"required"`
}

type RefundPayment struct {
	Reason string `json:"reason"`
}

type PaymentCompensation struct {
	ProviderOrderID string `json:"provider_order_id" validate:"required"`
	ReservationID   string `json:"reservation_id" validate:"required"`
	Reason          string `json:"reason" validate:"required"`
}
