package recipe

import (
	"context"
	"errors"
	"fmt"
	"recipe/pkg/domain"
	"recipe/pkg/serrors"
	"recipe/pkg/storage"
)

func (r recipes) Tags(ctx context.Context, userID domain.UserID, assignedOnly bool) ([]domain.Tag, error) {
	tags, err := r.storage.UserTags(ctx, userID, assignedOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list tags: %w", err)
	}

	return tags, nil
}

func (r recipes) UpdateTag(ctx context.Context, userID domain.UserID, id domain.TagID, name string) (*domain.Tag, error) {
	name, err := validateName("name", name)
	if err != nil {
		return nil, err
	}

	tag, err := r.storage.UpdateTag(ctx, userID, id, name)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "tag with this name already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not update tag: %w", err)
	}
	if tag == nil {
		return nil, serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return tag, nil
}

func (r recipes) DeleteTag(ctx context.Context, userID domain.UserID, id domain.TagID) error {
	tag, err := r.storage.DeleteTag(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete tag: %w", err)
	}
	if tag == nil {
		return serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return nil
}

func (r recipes) Ingredients(ctx context.Context, userID domain.UserID, assignedOnly bool) ([]domain.Ingredient, error) {
	ingredients, err := r.storage.UserIngredients(ctx, userID, assignedOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list ingredients: %w", err)
	}

	return ingredients, nil
}

func (r recipes) UpdateIngredient(ctx context.Context,
	userID domain.UserID,
	id domain.IngredientID,
	name string) (*domain.Ingredient, error) {
	name, err := validateName("name", name)
	if err != nil {
		return nil, err
	}

	ingredient, err := r.storage.UpdateIngredient(ctx, userID, id, name)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "ingredient with this name already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not update ingredient: %w", err)
	}
	if ingredient == nil {
		return nil, serrors.With(serrors.ErrNotFound, "ingredient not found")
	}

	return ingredient, nil
}

func (r recipes) DeleteIngredient(ctx context.Context, userID domain.UserID, id domain.IngredientID) error {
	ingredient, err := r.storage.DeleteIngredient(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete ingredient: %w", err)
	}
	if ingredient == nil {
		return serrors.With(serrors.ErrNotFound, "ingredient not found")
	}

	return nil
}
