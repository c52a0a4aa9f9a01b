package recipe

import (
	"context"
	"io"
	"recipe/pkg/domain"
	"recipe/pkg/storage"

	"github.com/shopspring/decimal"
)

// Input carries the writable recipe fields. Nil fields are absent from the
// request. Tags and Ingredients are lists of names; a non-nil empty list
// clears the assignment.
type Input struct {
	Title       *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Link        *string
	Description *string
	Tags        *[]string
	Ingredients *[]string
}

//go:generate mockgen -package mockrecipe -source=interface.go -destination=mock/mockrecipe.go *
type Recipes interface {
	List(ctx context.Context, userID domain.UserID, filter storage.RecipeFilter) ([]domain.Recipe, error)
	Get(ctx context.Context, userID domain.UserID, id domain.RecipeID) (*domain.Recipe, error)
	Create(ctx context.Context, userID domain.UserID, input Input) (*domain.Recipe, error)
	// Update replaces the recipe (partial=false, title, time and price are
	// required) or patches it (partial=true).
	Update(ctx context.Context, userID domain.UserID, id domain.RecipeID, input Input, partial bool) (*domain.Recipe, error)
	Delete(ctx context.Context, userID domain.UserID, id domain.RecipeID) error
	UploadImage(ctx context.Context,
		userID domain.UserID,
		id domain.RecipeID,
		filename string,
		r io.Reader) (*domain.Recipe, error)
	// ImageURL returns the public URL of a stored image path.
	ImageURL(path string) string

	Tags(ctx context.Context, userID domain.UserID, assignedOnly bool) ([]domain.Tag, error)
	UpdateTag(ctx context.Context, userID domain.UserID, id domain.TagID, name string) (*domain.Tag, error)
	DeleteTag(ctx context.Context, userID domain.UserID, id domain.TagID) error

	Ingredients(ctx context.Context, userID domain.UserID, assignedOnly bool) ([]domain.Ingredient, error)
	UpdateIngredient(ctx context.Context,
		userID domain.UserID,
		id domain.IngredientID,
		name string) (*domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID domain.UserID, id domain.IngredientID) error
}
