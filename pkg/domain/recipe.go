package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeID identifies a recipe.
type RecipeID int64

// Recipe is a user's recipe together with the tags and ingredients assigned
// to it.
type Recipe struct {
	ID     RecipeID
	UserID UserID

	Title       string
	TimeMinutes int
	// Price has at most 5 digits, 2 of them after the decimal point.
	Price       decimal.Decimal
	Link        string
	Description string
	// Image is the media path of the uploaded image; empty when none was uploaded.
	Image string

	Tags        []Tag
	Ingredients []Ingredient

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Recipe) String() string { return r.Title }
