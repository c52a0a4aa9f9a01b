package storage

import (
	"context"
	"recipe/pkg/domain"
)

// TagStorage persists tags. Names are unique per user.
type TagStorage interface {
	// GetOrCreateTags returns the user's tags with the given names, creating the
	// missing ones. The result follows the order of names, without duplicates.
	GetOrCreateTags(ctx context.Context, userID domain.UserID, names []string) ([]domain.Tag, error)
	// UserTags returns the user's tags ordered by name descending. When
	// assignedOnly is set only tags assigned to at least one recipe are returned.
	UserTags(ctx context.Context, userID domain.UserID, assignedOnly bool) ([]domain.Tag, error)
	// UpdateTag renames a tag and returns it, or nil when not found. It returns
	// ErrAlreadyExists when the user already has a tag with that name.
	UpdateTag(ctx context.Context, userID domain.UserID, id domain.TagID, name string) (*domain.Tag, error)
	// DeleteTag deletes a tag and returns it, or nil when not found.
	DeleteTag(ctx context.Context, userID domain.UserID, id domain.TagID) (*domain.Tag, error)
}

// IngredientStorage persists ingredients. It mirrors TagStorage.
type IngredientStorage interface {
	GetOrCreateIngredients(ctx context.Context, userID domain.UserID, names []string) ([]domain.Ingredient, error)
	UserIngredients(ctx context.Context, userID domain.UserID, assignedOnly bool) ([]domain.Ingredient, error)
	UpdateIngredient(ctx context.Context, userID domain.UserID, id domain.IngredientID,
		name string) (*domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, userID domain.UserID, id domain.IngredientID) (*domain.Ingredient, error)
}
