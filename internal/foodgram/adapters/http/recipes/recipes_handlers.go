// Package recipes содержит HTTP-обработчики рецептов, избранного и корзины.
package recipes

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/adapters/http/dto"
	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/pkg/logger"
	"foodgram/pkg/validation"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateRecipe = "handling create recipe request"
	LogHandlerUpdateRecipe = "handling update recipe request"
	LogHandlerListRecipes  = "handling list recipes request"
	LogHandlerDownload     = "handling download shopping cart request"

	ErrMsgInvalidAuthor = "invalid author id"
)

// Handler обработчик HTTP-запросов для работы с рецептами.
type Handler struct {
	recipes      api.RecipeUseCase
	memberships  api.MembershipUseCase
	shoppingList api.ShoppingListUseCase
	validator    *validation.Validator
	pagination   respond.Pagination
}

// NewHandler создает новый экземпляр обработчика рецептов.
func NewHandler(
	recipes api.RecipeUseCase,
	memberships api.MembershipUseCase,
	shoppingList api.ShoppingListUseCase,
	validator *validation.Validator,
	pagination respond.Pagination,
) *Handler {
	return &Handler{
		recipes:      recipes,
		memberships:  memberships,
		shoppingList: shoppingList,
		validator:    validator,
		pagination:   pagination,
	}
}

// ListRecipes возвращает страницу рецептов с фильтрами.
func (h *Handler) ListRecipes(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerListRecipes)

	page, ok, err := h.pagination.Page(ctx)
	if !ok {
		return err
	}

	viewerID := respond.ViewerID(ctx)
	filter := entities.RecipeFilter{
		ViewerID: viewerID,
		TagSlugs: tagSlugs(ctx),
		Limit:    page.Limit,
		Offset:   page.Offset(),
	}
	if raw := ctx.Query("author"); raw != "" {
		authorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respond.JSON(ctx, fiber.StatusBadRequest, fiber.Map{"author": ErrMsgInvalidAuthor})
		}
		filter.AuthorID = authorID
	}
	if respond.QueryFlag(ctx, "is_favorited") {
		filter.FavoritedBy = viewerID
	}
	if respond.QueryFlag(ctx, "is_in_shopping_cart") {
		filter.InCartOf = viewerID
	}

	result, err := h.recipes.List(requestCtx, filter)
	if err != nil {
		return respond.Error(ctx, err)
	}

	return respond.JSON(ctx, fiber.StatusOK, dto.NewPageResponse(
		dto.ToRecipeResponses(result.Items), result.Total, page.Page, page.Limit,
		h.pagination.BaseURL(ctx), respond.QueryValues(ctx),
	))
}

// tagSlugs собирает повторяющийся параметр tags.
func tagSlugs(ctx fiber.Ctx) []string {
	raw := ctx.Request().URI().QueryArgs().PeekMulti("tags")
	slugs := make([]string, 0, len(raw))
	for _, slug := range raw {
		if len(slug) > 0 {
			slugs = append(slugs, string(slug))
		}
	}
	return slugs
}

// GetRecipe возвращает рецепт по id.
func (h *Handler) GetRecipe(ctx fiber.Ctx) error {
	id, ok, err := respond.PathID(ctx, "id")
	if !ok {
		return err
	}

	details, err := h.recipes.Get(respond.Context(ctx), id, respond.ViewerID(ctx))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusOK, dto.ToRecipeResponse(details))
}

// CreateRecipe создает рецепт текущего пользователя.
func (h *Handler) CreateRecipe(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateRecipe"))
	log.Debug(requestCtx, LogHandlerCreateRecipe)

	var req dto.CreateRecipeRequest
	if ok, err := respond.BindJSON(ctx, h.validator, &req); !ok {
		return err
	}

	details, err := h.recipes.Create(requestCtx, respond.ViewerID(ctx), req.ToRecipeInput())
	if err != nil {
		log.Debug(requestCtx, "failed to create recipe", zap.Error(err))
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusCreated, dto.ToRecipeResponse(details))
}

// UpdateRecipe изменяет рецепт автора.
func (h *Handler) UpdateRecipe(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateRecipe"))
	log.Debug(requestCtx, LogHandlerUpdateRecipe)

	id, ok, err := respond.PathID(ctx, "id")
	if !ok {
		return err
	}

	var req dto.UpdateRecipeRequest
	if ok, err := respond.BindJSON(ctx, h.validator, &req); !ok {
		return err
	}

	details, err := h.recipes.Update(requestCtx, respond.ViewerID(ctx), id, req.ToRecipePatch())
	if err != nil {
		log.Debug(requestCtx, "failed to update recipe", zap.Error(err))
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusOK, dto.ToRecipeResponse(details))
}

// DeleteRecipe удаляет рецепт автора.
func (h *Handler) DeleteRecipe(ctx fiber.Ctx) error {
	id, ok, err := respond.PathID(ctx, "id")
	if !ok {
		return err
	}

	if err := h.recipes.Delete(respond.Context(ctx), respond.ViewerID(ctx), id); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.NoContent(ctx)
}

// DownloadShoppingCart отдает список покупок текстовым файлом.
func (h *Handler) DownloadShoppingCart(ctx fiber.Ctx) error {
	requestCtx := respond.Context(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerDownload)

	filename, content, err := h.shoppingList.Download(requestCtx, respond.ViewerID(ctx))
	if err != nil {
		return respond.Error(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := ctx.Status(fiber.StatusOK).SendString(content); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
