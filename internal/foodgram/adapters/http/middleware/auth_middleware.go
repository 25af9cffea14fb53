package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware       = "auth middleware"
	ErrorInvalidTokenFormat = "invalid token format"
)

// Допустимые схемы заголовка Authorization.
var authSchemes = []string{"Token ", "Bearer "}

// NewAuthMiddleware распознает пользователя по заголовку Authorization.
// Запрос без заголовка проходит анонимно, с недействительным токеном получает 401.
func NewAuthMiddleware(auth api.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ctx.Next()
		}

		requestCtx := respond.Context(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		token, ok := extractToken(header)
		if !ok {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return respond.Detail(ctx, fiber.StatusUnauthorized, ErrorInvalidTokenFormat)
		}

		userID, err := auth.Authenticate(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, "token rejected", zap.Error(err))
			return respond.Error(ctx, err)
		}

		ctx.Locals(respond.LocalUserID, userID)
		ctx.Locals(respond.LocalAuthToken, token)
		return ctx.Next()
	}
}

// RequireAuth пропускает к next только аутентифицированные запросы.
func RequireAuth(next fiber.Handler) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if respond.ViewerID(ctx) == 0 {
			return respond.Unauthorized(ctx)
		}
		return next(ctx)
	}
}

func extractToken(header string) (string, bool) {
	for _, scheme := range authSchemes {
		if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
			token := strings.TrimSpace(header[len(scheme):])
			return token, token != ""
		}
	}
	return "", false
}
