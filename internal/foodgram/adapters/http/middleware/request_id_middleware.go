// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware присваивает запросу идентификатор и кладет в контекст
// логгер, который добавляет его к каждой записи. При log == nil используется глобальный.
func NewRequestIDMiddleware(log *logger.Logger) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		reqCtx := logger.NewRequestIDContext(ctx.Context(), requestID)
		if log != nil {
			reqCtx = logger.NewContext(reqCtx, log)
		}

		ctx.Locals(respond.LocalUserContext, reqCtx)
		ctx.Set(HeaderRequestID, requestID)

		return ctx.Next()
	}
}
