// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"foodgram/internal/foodgram/adapters/http/catalog"
	"foodgram/internal/foodgram/adapters/http/middleware"
	"foodgram/internal/foodgram/adapters/http/recipes"
	"foodgram/internal/foodgram/adapters/http/respond"
	"foodgram/internal/foodgram/adapters/http/users"
	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/pkg/logger"
	"foodgram/pkg/ratelimit"
	"foodgram/pkg/validation"
)

// UseCases - сценарии, которые обслуживает HTTP API.
type UseCases struct {
	Auth          api.AuthUseCase
	Users         api.UserUseCase
	Subscriptions api.SubscriptionUseCase
	Recipes       api.RecipeUseCase
	Memberships   api.MembershipUseCase
	ShoppingList  api.ShoppingListUseCase
	Catalog       api.CatalogUseCase
}

// RouterConfig содержит параметры маршрутизации.
type RouterConfig struct {
	Logger       *logger.Logger
	Pagination   respond.Pagination
	LoginLimiter *ratelimit.KeyedRateLimiter
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, uc UseCases, cfg RouterConfig) {
	validator := validation.New()

	usersHandler := users.NewHandler(uc.Users, uc.Subscriptions, validator, cfg.Pagination)
	authHandler := users.NewAuthHandler(uc.Auth, validator)
	recipesHandler := recipes.NewHandler(uc.Recipes, uc.Memberships, uc.ShoppingList, validator, cfg.Pagination)
	catalogHandler := catalog.NewHandler(uc.Catalog)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware(cfg.Logger))
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewLoggerMiddleware())

	apiGroup := app.Group("/api", middleware.NewAuthMiddleware(uc.Auth))
	auth := middleware.RequireAuth

	// Токены. Вход ограничен по частоте для каждого IP.
	loginRoutes := apiGroup.Group("/auth/token/login")
	if cfg.LoginLimiter != nil {
		loginRoutes.Use(middleware.NewRateLimitMiddleware(cfg.LoginLimiter))
	}
	loginRoutes.Post("/", authHandler.Login)
	apiGroup.Post("/auth/token/logout", auth(authHandler.Logout))

	// Пользователи. Статические пути регистрируются раньше /:id.
	userRoutes := apiGroup.Group("/users")
	userRoutes.Get("/", usersHandler.List)
	userRoutes.Post("/", usersHandler.Register)
	userRoutes.Get("/me", auth(usersHandler.Me))
	userRoutes.Post("/set_password", auth(usersHandler.SetPassword))
	userRoutes.Get("/subscriptions", auth(usersHandler.Subscriptions))
	userRoutes.Get("/:id", usersHandler.Get)
	userRoutes.Post("/:id/subscribe", auth(usersHandler.Subscribe))
	userRoutes.Delete("/:id/subscribe", auth(usersHandler.Unsubscribe))

	// Справочники.
	apiGroup.Get("/tags", catalogHandler.ListTags)
	apiGroup.Get("/tags/:id", catalogHandler.GetTag)
	apiGroup.Get("/ingredients", catalogHandler.ListIngredients)
	apiGroup.Get("/ingredients/:id", catalogHandler.GetIngredient)

	// Рецепты.
	recipeRoutes := apiGroup.Group("/recipes")
	recipeRoutes.Get("/", recipesHandler.ListRecipes)
	recipeRoutes.Post("/", auth(recipesHandler.CreateRecipe))
	recipeRoutes.Get("/download_shopping_cart", auth(recipesHandler.DownloadShoppingCart))
	recipeRoutes.Get("/:id", recipesHandler.GetRecipe)
	recipeRoutes.Patch("/:id", auth(recipesHandler.UpdateRecipe))
	recipeRoutes.Delete("/:id", auth(recipesHandler.DeleteRecipe))
	recipeRoutes.Post("/:id/favorite", auth(recipesHandler.AddTo(entities.KindFavorite)))
	recipeRoutes.Delete("/:id/favorite", auth(recipesHandler.RemoveFrom(entities.KindFavorite)))
	recipeRoutes.Post("/:id/shopping_cart", auth(recipesHandler.AddTo(entities.KindShoppingCart)))
	recipeRoutes.Get("/:id/shopping_cart", auth(recipesHandler.GetFrom(entities.KindShoppingCart)))
	recipeRoutes.Delete("/:id/shopping_cart", auth(recipesHandler.RemoveFrom(entities.KindShoppingCart)))

	// Обработчик для несуществующих маршрутов.
	app.Use(func(ctx fiber.Ctx) error {
		return respond.Detail(ctx, fiber.StatusNotFound, "Not found.")
	})
}
