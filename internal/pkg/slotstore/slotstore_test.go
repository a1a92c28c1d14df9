package slotstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/slotstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newStore(t *testing.T) (*slotstore.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return slotstore.New(client), mr
}

func sampleSlots(courtID int64, start time.Time, count int) slotstore.SlotRefs {
	slots := make(slotstore.SlotRefs, 0, count)
	for i := 0; i < count; i++ {
		slotStart := start.Add(time.Duration(i) * time.Hour)
		slots = append(slots, slotstore.SlotRef{
			CourtID:   courtID,
			StartTime: slotStart,
			EndTime:   slotStart.Add(time.Hour),
		})
	}
	return slots
}

func TestTryHold(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, mr := newStore(t)
		ctx := context.Background()
		slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 2)

		err := store.TryHold(ctx, slots, "res-1", 10*time.Minute)

		assert.NoError(t, err)
		for _, key := range slots.Keys() {
			value, err := mr.Get(key)
			assert.NoError(t, err)
			assert.Equal(t, "held:res-1", value)
			assert.Greater(t, mr.TTL(key), time.Duration(0))
		}
	})

	t.Run("all or nothing on partial overlap", func(t *testing.T) {
		store, mr := newStore(t)
		ctx := context.Background()
		start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
		first := sampleSlots(7, start, 1)
		overlap := sampleSlots(7, start, 2)

		err := store.TryHold(ctx, first, "res-1", 10*time.Minute)
		assert.NoError(t, err)

		err = store.TryHold(ctx, overlap, "res-2", 10*time.Minute)
		assert.Error(t, err)
		assert.True(t, errors.IsSlotUnavailable(err))

		// the non-overlapping slot must not have been taken
		assert.False(t, mr.Exists(overlap[1].Key()))
		value, _ := mr.Get(first[0].Key())
		assert.Equal(t, "held:res-1", value)
	})

	t.Run("held over booked slot fails", func(t *testing.T) {
		store, _ := newStore(t)
		ctx := context.Background()
		slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 1)

		assert.NoError(t, store.TryHold(ctx, slots, "res-1", 10*time.Minute))
		assert.NoError(t, store.Commit(ctx, slots, "res-1"))

		err := store.TryHold(ctx, slots, "res-2", 10*time.Minute)
		assert.True(t, errors.IsSlotUnavailable(err))
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		store, _ := newStore(t)
		err := store.TryHold(context.Background(), nil, "res-1", 10*time.Minute)
		assert.True(t, errors.HasCode(err, "BAD_REQUEST"))
	})
}

func TestTryHoldConcurrent(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 2)

	const attempts = 16
	var wins int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.TryHold(ctx, slots, fmt.Sprintf("res-%d", i), 10*time.Minute)
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

func TestRelease(t *testing.T) {
	t.Run("owner release reopens slots", func(t *testing.T) {
		store, mr := newStore(t)
		ctx := context.Background()
		slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 2)

		assert.NoError(t, store.TryHold(ctx, slots, "res-1", 10*time.Minute))
		assert.NoError(t, store.Release(ctx, slots, "res-1"))

		for _, key := range slots.Keys() {
			assert.False(t, mr.Exists(key))
		}

		// slots are open again for another reservation
		assert.NoError(t, store.TryHold(ctx, slots, "res-2", 10*time.Minute))
	})

	t.Run("stale release is a no-op", func(t *testing.T) {
		store, mr := newStore(t)
		ctx := context.Background()
		slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 1)

		assert.NoError(t, store.TryHold(ctx, slots, "res-2", 10*time.Minute))

		// a timer for the previous holder fires late
		assert.NoError(t, store.Release(ctx, slots, "res-1"))

		value, err := mr.Get(slots[0].Key())
		assert.NoError(t, err)
		assert.Equal(t, "held:res-2", value)
	})
}

func TestCommit(t *testing.T) {
	t.Run("success flips held to booked and drops the ttl", func(t *testing.T) {
		store, mr := newStore(t)
		ctx := context.Background()
		slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 2)

		assert.NoError(t, store.TryHold(ctx, slots, "res-1", 10*time.Minute))
		assert.NoError(t, store.Commit(ctx, slots, "res-1"))

		for _, key := range slots.Keys() {
			value, err := mr.Get(key)
			assert.NoError(t, err)
			assert.Equal(t, "booked:res-1", value)
			assert.Equal(t, time.Duration(0), mr.TTL(key))
		}
	})

	t.Run("stale hold fails", func(t *testing.T) {
		store, _ := newStore(t)
		ctx := context.Background()
		slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 1)

		assert.NoError(t, store.TryHold(ctx, slots, "res-2", 10*time.Minute))

		err := store.Commit(ctx, slots, "res-1")
		assert.True(t, errors.HasCode(err, "RESERVATION_STALE"))
	})

	t.Run("expired hold fails", func(t *testing.T) {
		store, mr := newStore(t)
		ctx := context.Background()
		slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 1)

		assert.NoError(t, store.TryHold(ctx, slots, "res-1", 10*time.Minute))
		mr.FastForward(11 * time.Minute)

		err := store.Commit(ctx, slots, "res-1")
		assert.True(t, errors.HasCode(err, "RESERVATION_STALE"))
	})
}

func TestFree(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()
	slots := sampleSlots(7, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), 2)

	assert.NoError(t, store.TryHold(ctx, slots, "res-1", 10*time.Minute))
	assert.NoError(t, store.Commit(ctx, slots, "res-1"))
	assert.NoError(t, store.Free(ctx, slots, "res-1"))

	for _, key := range slots.Keys() {
		assert.False(t, mr.Exists(key))
	}
}
