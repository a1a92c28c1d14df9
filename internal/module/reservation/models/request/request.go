package request

import "reservation-service/internal/pkg/slotstore"

type CreateHold struct {
	CourtID int64               `json:"court_id" validate:"required"`
	Slots   []slotstore.SlotRef `json:"slots" validate:"required,min=1,dive"`
}

type ReservationExpiration struct {
	ReservationID string `json:"reservation_id" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
