package response

type OrderCreated struct {
	OrderID string `json:"order_id"`
}

// CaptureReceipt is what the provider hands back on a successful capture.
type CaptureReceipt struct {
	ProviderOrderID string  `json:"provider_order_id"`
	TransactionID   string  `json:"transaction_id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

type CaptureResult struct {
	TransactionID string `json:"transaction_id"`
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
}
