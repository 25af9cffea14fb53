// Package respond содержит общие для HTTP-обработчиков функции: контекст запроса,
// разбор параметров и преобразование ошибок в ответы.
package respond

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/domain/services"
	"foodgram/pkg/logger"
	"foodgram/pkg/validation"
)

// Ключи ctx.Locals.
const (
	LocalUserContext = "userContext"
	LocalUserID      = "userID"
	LocalAuthToken   = "authToken"
)

const (
	detailNotFound        = "Not found."
	detailInternal        = "Internal server error."
	detailInvalidBody     = "Invalid request body."
	detailNotProvided     = "Authentication credentials were not provided."
	detailInvalidQuery    = "Invalid query parameter."
	detailInvalidPage     = "Invalid page."
	msgErrSendingResponse = "error sending response"
)

// Context возвращает контекст запроса с логгером и request id.
func Context(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(LocalUserContext).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

// ViewerID возвращает id аутентифицированного пользователя или 0.
func ViewerID(ctx fiber.Ctx) int64 {
	id, _ := ctx.Locals(LocalUserID).(int64)
	return id
}

// JSON отправляет тело с указанным статусом.
func JSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("%s: %w", msgErrSendingResponse, err)
	}
	return nil
}

// NoContent отправляет 204.
func NoContent(ctx fiber.Ctx) error {
	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("%s: %w", msgErrSendingResponse, err)
	}
	return nil
}

// Detail отправляет {"detail": msg}.
func Detail(ctx fiber.Ctx, status int, msg string) error {
	return JSON(ctx, status, fiber.Map{"detail": msg})
}

// Unauthorized отправляет 401 для анонимного запроса к защищенному ресурсу.
func Unauthorized(ctx fiber.Ctx) error {
	return Detail(ctx, fiber.StatusUnauthorized, detailNotProvided)
}

// BindJSON разбирает тело запроса и проверяет его валидатором.
// При ошибке ответ уже отправлен и ok == false.
func BindJSON(ctx fiber.Ctx, v *validation.Validator, dst any) (bool, error) {
	if err := ctx.Bind().JSON(dst); err != nil {
		logger.Log(Context(ctx)).Debug(Context(ctx), detailInvalidBody, zap.Error(err))
		return false, Detail(ctx, fiber.StatusBadRequest, detailInvalidBody)
	}
	if err := v.Validate(dst); err != nil {
		return false, Error(ctx, err)
	}
	return true, nil
}

// PathID разбирает положительный целочисленный параметр пути.
// Некорректный id означает несуществующий ресурс.
func PathID(ctx fiber.Ctx, name string) (int64, bool, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false, Detail(ctx, fiber.StatusNotFound, detailNotFound)
	}
	return id, true, nil
}

// QueryInt разбирает целочисленный параметр строки запроса.
func QueryInt(ctx fiber.Ctx, name string, def int) (int, bool, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return def, true, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, JSON(ctx, fiber.StatusBadRequest, fiber.Map{name: detailInvalidQuery})
	}
	return n, true, nil
}

// RecipesLimit читает recipes_limit. Отсутствующее, нечисловое или
// отрицательное значение означает отсутствие ограничения (-1).
func RecipesLimit(ctx fiber.Ctx) int {
	n, err := strconv.Atoi(ctx.Query("recipes_limit"))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// QueryFlag сообщает, установлен ли булев фильтр (1 или true).
func QueryFlag(ctx fiber.Ctx, name string) bool {
	switch strings.ToLower(ctx.Query(name)) {
	case "1", "true":
		return true
	default:
		return false
	}
}

// QueryValues возвращает все параметры строки запроса.
func QueryValues(ctx fiber.Ctx) url.Values {
	values, err := url.ParseQuery(string(ctx.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return values
}

// Pagination разбирает page и limit с учетом значений по умолчанию и максимума.
type Pagination struct {
	DefaultLimit int
	MaxLimit     int
	// PublicURL заменяет схему и хост в ссылках на соседние страницы, если задан.
	PublicURL string
}

// Page разбирает параметры страницы.
func (p Pagination) Page(ctx fiber.Ctx) (entities.PageRequest, bool, error) {
	page := 1
	if raw := ctx.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return entities.PageRequest{}, false, Detail(ctx, fiber.StatusNotFound, detailInvalidPage)
		}
		page = n
	}
	limit, ok, err := QueryInt(ctx, "limit", p.DefaultLimit)
	if !ok {
		return entities.PageRequest{}, false, err
	}

	if limit < 1 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}

	req := entities.PageRequest{Page: page, Limit: limit}
	if !req.Valid() {
		return entities.PageRequest{}, false, Detail(ctx, fiber.StatusNotFound, detailInvalidPage)
	}
	return req, true, nil
}

// BaseURL возвращает абсолютный адрес текущего пути без строки запроса.
func (p Pagination) BaseURL(ctx fiber.Ctx) string {
	origin := strings.TrimRight(p.PublicURL, "/")
	if origin == "" {
		origin = ctx.BaseURL()
	}
	return origin + ctx.Path()
}

type fieldError struct {
	target error
	field  string
}

var badRequestFields = []fieldError{
	{entities.ErrEmailTaken, "email"},
	{entities.ErrUsernameTaken, "username"},
	{entities.ErrInvalidImage, "image"},
	{entities.ErrWrongPassword, "current_password"},
	{entities.ErrPasswordTooShort, "password"},
	{entities.ErrPasswordTooWeak, "password"},
}

var badRequestErrors = []error{
	entities.ErrAlreadyPresent,
	entities.ErrNotPresent,
	entities.ErrSelfSubscription,
	entities.ErrEmptyShoppingCart,
	services.ErrInvalidCredentials,
	entities.ErrInvalidComposition,
}

var notFoundErrors = []error{
	entities.ErrUserNotFound,
	entities.ErrRecipeNotFound,
	entities.ErrTagNotFound,
	entities.ErrIngredientNotFound,
}

var unauthorizedErrors = []error{
	services.ErrNotAuthenticated,
	services.ErrInvalidJWTToken,
	services.ErrExpiredJWTToken,
	services.ErrTokenRevoked,
}

// Error преобразует ошибку сценария в HTTP-ответ.
//
//nolint:gocyclo
func Error(ctx fiber.Ctx, err error) error {
	reqCtx := Context(ctx)
	log := logger.Log(reqCtx)

	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		return JSON(ctx, fiber.StatusBadRequest, validationErr.Fields)
	}

	var compositionErr *services.CompositionError
	if errors.As(err, &compositionErr) {
		if errors.Is(err, entities.ErrIngredientNotFound) {
			return Detail(ctx, fiber.StatusNotFound, compositionErr.Reason)
		}
		return JSON(ctx, fiber.StatusBadRequest, fiber.Map{"errors": compositionErr.Reason})
	}

	for _, fe := range badRequestFields {
		if errors.Is(err, fe.target) {
			return JSON(ctx, fiber.StatusBadRequest, fiber.Map{fe.field: fe.target.Error()})
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return JSON(ctx, fiber.StatusBadRequest, fiber.Map{"errors": target.Error()})
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return Detail(ctx, fiber.StatusNotFound, target.Error())
		}
	}
	if errors.Is(err, entities.ErrForbidden) {
		return Detail(ctx, fiber.StatusForbidden, entities.ErrForbidden.Error())
	}
	for _, target := range unauthorizedErrors {
		if errors.Is(err, target) {
			return Detail(ctx, fiber.StatusUnauthorized, target.Error())
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return Detail(ctx, fiberErr.Code, fiberErr.Message)
	}

	log.Error(reqCtx, "unhandled error", zap.Error(err))
	return Detail(ctx, fiber.StatusInternalServerError, detailInternal)
}
