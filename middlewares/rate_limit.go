package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
)

func rateLimitKey(ip, path string) string {
	return "ratelimit:" + ip + ":" + path
}

// RateLimit applies a fixed-window per-IP, per-path limit backed by Redis.
// The window counter is created with its TTL already set (SETNX) before the
// INCR, so a crash or error between the two steps can never leave a counter
// that outlives its window. Fails open: a Redis outage must not take request
// handling down with it.
func RateLimit(client *redis.Client, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()
		key := rateLimitKey(c.IP(), c.Path())

		if err := client.SetNX(ctx, key, 0, window).Err(); err != nil {
			return c.Next()
		}
		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			return c.Next()
		}
		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message":    fmt.Sprintf("Rate limit exceeded: %d requests per %s", limit, window),
				"error_code": "rate_limited",
			})
		}
		return c.Next()
	}
}
