package recipes

import (
	"github.com/gofiber/fiber/v3"

	"foodgram/internal/foodgram/adapters/http/dto"
	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/internal/foodgram/domain/entities"
)

// AddTo возвращает обработчик добавления рецепта в набор kind.
func (h *Handler) AddTo(kind entities.MembershipKind) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		id, ok, err := respond.PathID(ctx, "id")
		if !ok {
			return err
		}

		short, err := h.memberships.Add(respond.Context(ctx), kind, respond.ViewerID(ctx), id)
		if err != nil {
			return respond.Error(ctx, err)
		}
		return respond.JSON(ctx, fiber.StatusCreated, dto.ToRecipeShortResponse(short))
	}
}

// GetFrom возвращает обработчик проверки наличия рецепта в наборе kind.
func (h *Handler) GetFrom(kind entities.MembershipKind) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		id, ok, err := respond.PathID(ctx, "id")
		if !ok {
			return err
		}

		short, err := h.memberships.Get(respond.Context(ctx), kind, respond.ViewerID(ctx), id)
		if err != nil {
			return respond.Error(ctx, err)
		}
		return respond.JSON(ctx, fiber.StatusOK, dto.ToRecipeShortResponse(short))
	}
}

// RemoveFrom возвращает обработчик удаления рецепта из набора kind.
func (h *Handler) RemoveFrom(kind entities.MembershipKind) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		id, ok, err := respond.PathID(ctx, "id")
		if !ok {
			return err
		}

		if err := h.memberships.Remove(respond.Context(ctx), kind, respond.ViewerID(ctx), id); err != nil {
			return respond.Error(ctx, err)
		}
		return respond.NoContent(ctx)
	}
}
