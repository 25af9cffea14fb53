// Package users содержит HTTP-обработчики пользователей, подписок и токенов.
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
	LogHandlerRegister    = "users handler: register"
	LogHandlerList        = "users handler: list"
	LogHandlerSetPassword = "users handler: set password"
	LogHandlerSubscribe   = "users handler: subscribe"

	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики пользователей.
type Handler struct {
	users         api.UserUseCase
	subscriptions api.SubscriptionUseCase
	validator     *validation.Validator
	pagination    respond.Pagination
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(
	users api.UserUseCase,
	subscriptions api.SubscriptionUseCase,
	validator *validation.Validator,
	pagination respond.Pagination,
) *Handler {
	return &Handler{
		users:         users,
		subscriptions: subscriptions,
		validator:     validator,
		pagination:    pagination,
	}
}

// Register обрабатывает регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	log := logger.Log(requestCtx)
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if ok, err := respond.BindJSON(ctx, h.validator, &req); !ok {
		return err
	}

	user, err := h.users.Register(requestCtx, api.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, fiber.StatusCreated, dto.ToUserResponse(user))
}

// List возвращает страницу пользователей.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerList)

	page, ok, err := h.pagination.Page(ctx)
	if !ok {
		return err
	}

	result, err := h.users.List(requestCtx, respond.ViewerID(ctx), page)
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, fiber.StatusOK, dto.NewPageResponse(
		dto.ToProfileResponses(result.Items), result.Total, page.Page, page.Limit,
		h.pagination.BaseURL(ctx), respond.QueryValues(ctx),
	))
}

// Get возвращает профиль пользователя.
func (h *Handler) Get(ctx fiber.Ctx) error {
	id, ok, err := respond.PathID(ctx, "id")
	if !ok {
		return err
	}
	return h.sendProfile(ctx, id)
}

// Me возвращает профиль текущего пользователя.
func (h *Handler) Me(ctx fiber.Ctx) error {
	return h.sendProfile(ctx, respond.ViewerID(ctx))
}

func (h *Handler) sendProfile(ctx fiber.Ctx, id int64) error {
	profile, err := h.users.GetProfile(respond.Context(ctx), id, respond.ViewerID(ctx))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusOK, dto.ToProfileResponse(profile))
}

// SetPassword меняет пароль текущего пользователя.
func (h *Handler) SetPassword(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerSetPassword)

	var req dto.SetPasswordRequest
	if ok, err := respond.BindJSON(ctx, h.validator, &req); !ok {
		return err
	}

	if err := h.users.SetPassword(requestCtx, respond.ViewerID(ctx), req.CurrentPassword, req.NewPassword); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.NoContent(ctx)
}

// Subscribe подписывает текущего пользователя на автора.
func (h *Handler) Subscribe(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerSubscribe)

	authorID, ok, err := respond.PathID(ctx, "id")
	if !ok {
		return err
	}
	recipesLimit := respond.RecipesLimit(ctx)

	view, err := h.subscriptions.Subscribe(requestCtx, respond.ViewerID(ctx), authorID, recipesLimit)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusCreated, dto.ToSubscriptionResponse(view))
}

// Unsubscribe отменяет подписку на автора.
func (h *Handler) Unsubscribe(ctx fiber.Ctx) error {
	authorID, ok, err := respond.PathID(ctx, "id")
	if !ok {
		return err
	}

	if err := h.subscriptions.Unsubscribe(respond.Context(ctx), respond.ViewerID(ctx), authorID); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.NoContent(ctx)
}

// Subscriptions возвращает страницу подписок текущего пользователя.
func (h *Handler) Subscriptions(ctx fiber.Ctx) error {
	page, ok, err := h.pagination.Page(ctx)
	if !ok {
		return err
	}
	recipesLimit := respond.RecipesLimit(ctx)

	result, err := h.subscriptions.List(respond.Context(ctx), respond.ViewerID(ctx), page, recipesLimit)
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, fiber.StatusOK, dto.NewPageResponse(
		dto.ToSubscriptionResponses(result.Items), result.Total, page.Page, page.Limit,
		h.pagination.BaseURL(ctx), respond.QueryValues(ctx),
	))
}
