package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rentify/models"

	"github.com/go-redis/redis/v8"
)

// IdempotencyStore remembers the booking produced for an idempotency key.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*models.Booking, bool, error)
	// Put records the booking unless the key is already taken.
	Put(ctx context.Context, key string, booking *models.Booking) error
}

// RedisIdempotencyStore keeps booking results in Redis for TTL.
type RedisIdempotencyStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func idempotencyCacheKey(key string) string {
	return "booking:idempotency:" + key
}

func (r *RedisIdempotencyStore) Get(ctx context.Context, key string) (*models.Booking, bool, error) {
	data, err := r.Client.Get(ctx, idempotencyCacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read idempotency key %s: %w", key, err)
	}
	var booking models.Booking
	if err := json.Unmarshal(data, &booking); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached booking for key %s: %w", key, err)
	}
	return &booking, true, nil
}

func (r *RedisIdempotencyStore) Put(ctx context.Context, key string, booking *models.Booking) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to encode booking %s: %w", booking.ID, err)
	}
	if err := r.Client.SetNX(ctx, idempotencyCacheKey(key), data, r.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key %s: %w", key, err)
	}
	return nil
}
