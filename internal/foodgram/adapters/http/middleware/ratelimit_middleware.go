package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/pkg/logger"
	"foodgram/pkg/ratelimit"
)

// NewRateLimitMiddleware ограничивает частоту запросов с одного IP.
func NewRateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if limiter.Allow(ctx.IP()) {
			return ctx.Next()
		}

		requestCtx := respond.Context(ctx)
		logger.Log(requestCtx).Warn(requestCtx, "rate limit exceeded", zap.String("ip", ctx.IP()))
		return respond.Detail(ctx, fiber.StatusTooManyRequests, "Request was throttled.")
	}
}
