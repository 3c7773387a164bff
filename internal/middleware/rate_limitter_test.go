package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	m := &middleware{rateLimitter: newRateLimiter(1, 2), log: log}

	app := fiber.New()
	app.Get("/api/ping", m.NewRateLimiter, func(ctx *fiber.Ctx) error {
		return ctx.SendString("pong")
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/ping", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	limiter := newRateLimiter(1, 1)

	first := limiter.GetLimiterFrom("10.0.0.1")
	second := limiter.GetLimiterFrom("10.0.0.2")

	require.NotSame(t, first, second)
	require.Same(t, first, limiter.GetLimiterFrom("10.0.0.1"))
}
