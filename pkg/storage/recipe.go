package storage

import (
	"context"
	"recipe/pkg/domain"

	"github.com/shopspring/decimal"
)

// RecipeUpdates lists the recipe columns to change. Nil fields are left
// untouched; an empty Image clears the image.
type RecipeUpdates struct {
	Title       *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Link        *string
	Description *string
	Image       *string
}

// IsEmpty reports whether no column would change.
func (u RecipeUpdates) IsEmpty() bool {
	return u.Title == nil && u.TimeMinutes == nil && u.Price == nil &&
		u.Link == nil && u.Description == nil && u.Image == nil
}

// RecipeFilter narrows a recipe listing. A recipe matches when it has any of
// the given tags (if any) and any of the given ingredients (if any).
type RecipeFilter struct {
	Tags        []domain.TagID
	Ingredients []domain.IngredientID
}

// RecipeStorage persists recipes and their tag/ingredient assignments. All
// lookups are scoped to the owning user; another user's recipe is reported
// as not found (nil).
type RecipeStorage interface {
	// StoreRecipe inserts the recipe columns (tags and ingredients are ignored)
	// and returns the stored row.
	StoreRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error)
	// UpdateRecipe applies updates and returns the row without tags and
	// ingredients, or nil when not found.
	UpdateRecipe(ctx context.Context, userID domain.UserID, id domain.RecipeID,
		updates RecipeUpdates) (*domain.Recipe, error)
	// DeleteRecipe deletes the recipe and returns it, or nil when not found.
	DeleteRecipe(ctx context.Context, userID domain.UserID, id domain.RecipeID) (*domain.Recipe, error)
	// RecipeByID returns the recipe with its tags and ingredients, or nil.
	RecipeByID(ctx context.Context, userID domain.UserID, id domain.RecipeID) (*domain.Recipe, error)
	// UserRecipes returns the user's recipes ordered by id descending, each with
	// its tags and ingredients.
	UserRecipes(ctx context.Context, userID domain.UserID, filter RecipeFilter) ([]domain.Recipe, error)
	// SetRecipeTags replaces the tags assigned to a recipe.
	SetRecipeTags(ctx context.Context, id domain.RecipeID, tags []domain.TagID) error
	// SetRecipeIngredients replaces the ingredients assigned to a recipe.
	SetRecipeIngredients(ctx context.Context, id domain.RecipeID, ingredients []domain.IngredientID) error
}
