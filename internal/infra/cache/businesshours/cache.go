package businesshours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

const (
	keyPrefix     = "salon:business_hours:"
	versionPrefix = "salon:business_hours_version:"
)

// Cache кэш часов работы салонов в Redis.
// Каждая инвалидация увеличивает версию салона; Set с устаревшей версией не пишет
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш часов работы
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает часы работы салона из кэша
func (c *Cache) Get(ctx context.Context, salonID uuid.UUID) ([]domain.BusinessHours, error) {
	data, err := c.client.Get(ctx, key(salonID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrRedis, err)
	}

	var hours []domain.BusinessHours
	if err := json.Unmarshal(data, &hours); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrEncode, err)
	}

	return hours, nil
}

// Version возвращает текущую версию часов работы салона (0, если инвалидаций не было).
// Снимается до чтения из БД и передается в Set
func (c *Cache) Version(ctx context.Context, salonID uuid.UUID) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(salonID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Version: %v", ErrRedis, err)
	}
	return version, nil
}

// Set сохраняет часы работы салона с TTL, если версия не изменилась.
// Возвращает ErrStaleVersion, если после снятия версии была инвалидация
func (c *Cache) Set(ctx context.Context, salonID uuid.UUID, version int64, hours []domain.BusinessHours) error {
	data, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal: %v", ErrEncode, err)
	}

	vKey := versionKey(salonID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return ErrStaleVersion
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(salonID), data, c.ttl)
			return nil
		})
		return err
	}, vKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStaleVersion), errors.Is(err, redis.TxFailedErr):
		return ErrStaleVersion
	default:
		return fmt.Errorf("%w: Set: %v", ErrRedis, err)
	}
}

// Invalidate удаляет часы работы салона из кэша и увеличивает версию
func (c *Cache) Invalidate(ctx context.Context, salonID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(salonID))
		pipe.Del(ctx, key(salonID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrRedis, err)
	}
	return nil
}

func key(salonID uuid.UUID) string {
	return keyPrefix + salonID.String()
}

func versionKey(salonID uuid.UUID) string {
	return versionPrefix + salonID.String()
}
