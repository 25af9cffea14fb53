// Package catalog содержит HTTP-обработчики справочников тегов и ингредиентов.
package catalog

import (
	"github.com/gofiber/fiber/v3"

	"foodgram/internal/foodgram/adapters/http/dto"
	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/internal/foodgram/ports/api"
)

// Handler отдает справочники.
type Handler struct {
	catalog api.CatalogUseCase
}

// NewHandler создает новый экземпляр обработчика справочников.
func NewHandler(catalog api.CatalogUseCase) *Handler {
	return &Handler{catalog: catalog}
}

// ListTags возвращает все теги без пагинации.
func (h *Handler) ListTags(ctx fiber.Ctx) error {
	tags, err := h.catalog.ListTags(respond.Context(ctx))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusOK, dto.ToTagResponses(tags))
}

// GetTag возвращает тег по id.
func (h *Handler) GetTag(ctx fiber.Ctx) error {
	id, ok, err := respond.PathID(ctx, "id")
	if !ok {
		return err
	}

	tag, err := h.catalog.GetTag(respond.Context(ctx), id)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusOK, dto.ToTagResponse(tag))
}

// ListIngredients ищет ингредиенты по началу названия (?name=).
func (h *Handler) ListIngredients(ctx fiber.Ctx) error {
	items, err := h.catalog.SearchIngredients(respond.Context(ctx), ctx.Query("name"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusOK, dto.ToIngredientResponses(items))
}

// GetIngredient возвращает ингредиент по id.
func (h *Handler) GetIngredient(ctx fiber.Ctx) error {
	id, ok, err := respond.PathID(ctx, "id")
	if !ok {
		return err
	}

	item, err := h.catalog.GetIngredient(respond.Context(ctx), id)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, fiber.StatusOK, dto.ToIngredientResponse(item))
}
