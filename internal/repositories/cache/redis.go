package cache

import (
	"context"
	"fmt"
	"strconv"

	"payproc/internal/config"
	"payproc/internal/models"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// DefaultStreamMaxLen caps the analytics stream (approximate trimming).
const DefaultStreamMaxLen = 100_000

type streamWriter interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// AnalyticsStream appends analytics events to a Redis stream.
type AnalyticsStream struct {
	client streamWriter
	stream string
	maxLen int64
}

func NewAnalyticsStream(client streamWriter, stream string) *AnalyticsStream {
	return &AnalyticsStream{client: client, stream: stream, maxLen: DefaultStreamMaxLen}
}

func (s *AnalyticsStream) Track(ctx context.Context, event models.AnalyticsEvent) error {
	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"user_id":  event.UserID,
			"amount":   strconv.FormatFloat(event.Amount, 'f', -1, 64),
			"currency": event.Currency,
			"method":   string(event.Method),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append analytics event: %w", err)
	}
	return nil
}

// HealthCheck pings redis.
func HealthCheck(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}
