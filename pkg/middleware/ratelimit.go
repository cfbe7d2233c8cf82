package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/agromercado/agromercado-backend/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var rdb *redis.Client

// InitRedis connects the rate limiter backend. A missing Redis simply
// disables limiting.
func InitRedis(cfg *config.Config) error {
	if cfg.RedisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}
	rdb = redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

// RateLimit caps requests per client IP to limit requests per window using a
// fixed Redis counter. Used on signup/signin and the SMS verification
// endpoints, where every request costs money or enables abuse.
func RateLimit(name string, limit int64, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", name, c.IP())
		ctx := context.Background()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis trouble must not take the API down
			log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > limit {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
