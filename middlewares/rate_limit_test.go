package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitKey(t *testing.T) {
	assert.Equal(t, "ratelimit:10.0.0.1:/notes", rateLimitKey("10.0.0.1", "/notes"))
}

// The limiter must fail open: with Redis unreachable every Redis call
// errors, and requests still go through unlimited.
func TestRateLimit_FailsOpenWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/limited",
		RateLimit(client, 1, time.Minute),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/limited", nil), -1)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
