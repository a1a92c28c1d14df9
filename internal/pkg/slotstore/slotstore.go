// Package slotstore is the availability store for court time slots. A slot is
// keyed by court id and start hour; an absent key means the slot is open, a
// "held:" value means a reservation holds it and a "booked:" value means a
// confirmed booking owns it. Every operation runs as a single Lua script so a
// batch of slots transitions all-or-nothing, which is what prevents double
// booking under concurrent hold attempts.
package slotstore

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"reservation-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type SlotRef struct {
	CourtID   int64     `json:"court_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

func (s SlotRef) Key() string {
	return fmt.Sprintf("slot:%d:%d", s.CourtID, s.StartTime.Unix())
}

func (s SlotRef) Hours() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}

// SlotRefs is stored as jsonb on reservation and booking rows.
type SlotRefs []SlotRef

func (s SlotRefs) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SlotRefs) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("unsupported slot refs type %T", src)
	}
}

func (s SlotRefs) Keys() []string {
	keys := make([]string, 0, len(s))
	for _, ref := range s {
		keys = append(keys, ref.Key())
	}
	return keys
}

func (s SlotRefs) TotalHours() float64 {
	var hours float64
	for _, ref := range s {
		hours += ref.Hours()
	}
	return hours
}

var tryHoldScript = redis.NewScript(`
for _, key in ipairs(KEYS) do
	if redis.call("EXISTS", key) == 1 then
		return 0
	end
end
for _, key in ipairs(KEYS) do
	redis.call("SET", key, ARGV[1], "PX", ARGV[2])
end
return 1
`)

var releaseScript = redis.NewScript(`
local released = 0
for _, key in ipairs(KEYS) do
	if redis.call("GET", key) == ARGV[1] then
		redis.call("DEL", key)
		released = released + 1
	end
end
return released
`)

var commitScript = redis.NewScript(`
for _, key in ipairs(KEYS) do
	if redis.call("GET", key) ~= ARGV[1] then
		return 0
	end
end
for _, key in ipairs(KEYS) do
	redis.call("SET", key, ARGV[2])
	redis.call("PERSIST", key)
end
return 1
`)

type Store struct {
	client *redis.Client
}

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func heldTag(reservationID string) string {
	return "held:" + reservationID
}

func bookedTag(reservationID string) string {
	return "booked:" + reservationID
}

// TryHold flips every requested slot from open to held, tagged with the
// reservation id. If any slot is not open nothing is changed. Held keys carry
// a TTL slightly above the hold duration as a safety net against a crashed
// expiry worker.
func (s *Store) TryHold(ctx context.Context, slots SlotRefs, reservationID string, ttl time.Duration) error {
	if len(slots) == 0 {
		return errors.BadRequest("no slots requested")
	}

	ok, err := tryHoldScript.Run(ctx, s.client, slots.Keys(), heldTag(reservationID), ttl.Milliseconds()).Int()
	if err != nil {
		return errors.InternalServerError("error holding slots")
	}
	if ok == 0 {
		return errors.SlotUnavailable("one or more slots are no longer available")
	}
	return nil
}

// Release flips held slots back to open, but only the ones still tagged with
// reservationID. A stale timer racing a newer hold on a reused slot is a
// no-op.
func (s *Store) Release(ctx context.Context, slots SlotRefs, reservationID string) error {
	if len(slots) == 0 {
		return nil
	}
	if err := releaseScript.Run(ctx, s.client, slots.Keys(), heldTag(reservationID)).Err(); err != nil {
		return errors.InternalServerError("error releasing slots")
	}
	return nil
}

// Commit flips held slots to booked and removes the safety TTL. Fails if any
// slot is no longer tagged with reservationID.
func (s *Store) Commit(ctx context.Context, slots SlotRefs, reservationID string) error {
	if len(slots) == 0 {
		return errors.BadRequest("no slots to commit")
	}

	ok, err := commitScript.Run(ctx, s.client, slots.Keys(), heldTag(reservationID), bookedTag(reservationID)).Int()
	if err != nil {
		return errors.InternalServerError("error committing slots")
	}
	if ok == 0 {
		return errors.ReservationStale("slots are no longer held by this reservation")
	}
	return nil
}

// Free returns booked slots to open after a policy-checked booking
// cancellation.
func (s *Store) Free(ctx context.Context, slots SlotRefs, reservationID string) error {
	if len(slots) == 0 {
		return nil
	}
	if err := releaseScript.Run(ctx, s.client, slots.Keys(), bookedTag(reservationID)).Err(); err != nil {
		return errors.InternalServerError("error freeing slots")
	}
	return nil
}
