package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram/internal/foodgram/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	userRepo         repositories.UserRepository
	subscriptionRepo repositories.SubscriptionRepository
	tagRepo          repositories.TagRepository
	ingredientRepo   repositories.IngredientRepository
	recipeRepo       repositories.RecipeRepository
	membershipRepo   repositories.MembershipRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool *pgxpool.Pool) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo:         NewUserRepository(pool),
		subscriptionRepo: NewSubscriptionRepository(pool),
		tagRepo:          NewTagRepository(pool),
		ingredientRepo:   NewIngredientRepository(pool),
		recipeRepo:       NewRecipeRepository(pool),
		membershipRepo:   NewMembershipRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// SubscriptionRepository возвращает репозиторий подписок.
func (f *RepositoryFactory) SubscriptionRepository() repositories.SubscriptionRepository {
	return f.subscriptionRepo
}

// TagRepository возвращает репозиторий тегов.
func (f *RepositoryFactory) TagRepository() repositories.TagRepository {
	return f.tagRepo
}

// IngredientRepository возвращает репозиторий ингредиентов.
func (f *RepositoryFactory) IngredientRepository() repositories.IngredientRepository {
	return f.ingredientRepo
}

// RecipeRepository возвращает репозиторий рецептов.
func (f *RepositoryFactory) RecipeRepository() repositories.RecipeRepository {
	return f.recipeRepo
}

// MembershipRepository возвращает репозиторий избранного и корзины.
func (f *RepositoryFactory) MembershipRepository() repositories.MembershipRepository {
	return f.membershipRepo
}
