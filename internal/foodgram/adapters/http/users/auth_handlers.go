package users

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/adapters/http/dto"
	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/pkg/logger"
	"foodgram/pkg/validation"
)

// Константы для логирования.
const (
	LogHandlerLogin  = "auth handler: login"
	LogHandlerLogout = "auth handler: logout"
)

// AuthHandler выдает и отзывает токены.
type AuthHandler struct {
	auth      api.AuthUseCase
	validator *validation.Validator
}

// NewAuthHandler создает новый экземпляр обработчика токенов.
func NewAuthHandler(auth api.AuthUseCase, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{auth: auth, validator: validator}
}

// Login обрабатывает запрос на получение токена.
func (h *AuthHandler) Login(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if ok, err := respond.BindJSON(ctx, h.validator, &req); !ok {
		return err
	}

	token, err := h.auth.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, fiber.StatusOK, dto.TokenResponse{AuthToken: token.Token})
}

// Logout отзывает токен, которым подписан запрос.
func (h *AuthHandler) Logout(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerLogout)

	token, _ := ctx.Locals(respond.LocalAuthToken).(string)
	if err := h.auth.Logout(requestCtx, token); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.NoContent(ctx)
}
