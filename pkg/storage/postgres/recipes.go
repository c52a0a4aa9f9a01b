package postgres

import (
	"context"
	"fmt"
	"recipe/pkg/domain"
	"recipe/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	var row PgRecipe
	row.FromDomain(recipe)

	var result PgRecipe
	if _, err := p.Builder.Insert(recipesTable).
		Rows(row).
		Returning(&PgRecipe{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store recipe into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// UpdateRecipe sets the non-nil fields of updates and bumps updated_at. An
// empty Image is stored as NULL.
func (p *PgSQL) UpdateRecipe(ctx context.Context,
	userID domain.UserID,
	id domain.RecipeID,
	updates storage.RecipeUpdates) (*domain.Recipe, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.TimeMinutes != nil {
		rec["time_minutes"] = *updates.TimeMinutes
	}
	if updates.Price != nil {
		rec["price"] = *updates.Price
	}
	if updates.Link != nil {
		rec["link"] = *updates.Link
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.Image != nil {
		if *updates.Image == "" {
			rec["image"] = goqu.L("NULL")
		} else {
			rec["image"] = *updates.Image
		}
	}

	var row PgRecipe
	found, err := p.Builder.Update(recipesTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgRecipe{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update recipe in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteRecipe deletes the recipe row; tag and ingredient assignments are
// removed by the foreign keys.
func (p *PgSQL) DeleteRecipe(ctx context.Context, userID domain.UserID, id domain.RecipeID) (*domain.Recipe, error) {
	var row PgRecipe
	found, err := p.Builder.Delete(recipesTable).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgRecipe{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete recipe in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RecipeByID(ctx context.Context, userID domain.UserID, id domain.RecipeID) (*domain.Recipe, error) {
	var row PgRecipe
	found, err := p.Builder.From(recipesTable).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recipe by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	recipes, err := p.withAttributes(ctx, []PgRecipe{row})
	if err != nil {
		return nil, err
	}

	return &recipes[0], nil
}

// UserRecipes returns the user's recipes ordered by id descending. Tag and
// ingredient filters match recipes having any of the given ids.
func (p *PgSQL) UserRecipes(ctx context.Context,
	userID domain.UserID,
	filter storage.RecipeFilter) ([]domain.Recipe, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if len(filter.Tags) > 0 {
		w = append(w, goqu.I("id").In(
			p.Builder.From(recipeTagsTable).
				Select(goqu.I("recipe_id")).
				Where(goqu.I("tag_id").In(toInt64s(filter.Tags))),
		))
	}
	if len(filter.Ingredients) > 0 {
		w = append(w, goqu.I("id").In(
			p.Builder.From(recipeIngredientsTable).
				Select(goqu.I("recipe_id")).
				Where(goqu.I("ingredient_id").In(toInt64s(filter.Ingredients))),
		))
	}

	var rows []PgRecipe
	if err := p.Builder.From(recipesTable).
		Where(w...).
		Order(goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user recipes from pg: %w", err)
	}

	return p.withAttributes(ctx, rows)
}

func (p *PgSQL) SetRecipeTags(ctx context.Context, id domain.RecipeID, tags []domain.TagID) error {
	return p.setRecipeAttributes(ctx, tagAttribute, int64(id), toInt64s(tags))
}

func (p *PgSQL) SetRecipeIngredients(ctx context.Context,
	id domain.RecipeID,
	ingredients []domain.IngredientID) error {
	return p.setRecipeAttributes(ctx, ingredientAttribute, int64(id), toInt64s(ingredients))
}

// withAttributes converts rows to domain recipes and loads their tags and
// ingredients with one query each.
func (p *PgSQL) withAttributes(ctx context.Context, rows []PgRecipe) ([]domain.Recipe, error) {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	tags, err := p.recipeAttributes(ctx, tagAttribute, ids)
	if err != nil {
		return nil, err
	}
	ingredients, err := p.recipeAttributes(ctx, ingredientAttribute, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipe := row.ToDomain()
		recipe.Tags = mapAttributes(tags[row.ID], PgAttribute.toTag)
		recipe.Ingredients = mapAttributes(ingredients[row.ID], PgAttribute.toIngredient)
		out = append(out, *recipe)
	}

	return out, nil
}

func toInt64s[T ~int64](ids []T) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}

	return out
}
