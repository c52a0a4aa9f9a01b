package postgres

import (
	"context"
	"fmt"
	"recipe/pkg/domain"
	"recipe/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// attribute describes one of the per-user name tables (tags, ingredients) and
// the join table linking it to recipes.
type attribute struct {
	table  string
	join   string
	column string
}

var (
	tagAttribute        = attribute{table: tagsTable, join: recipeTagsTable, column: "tag_id"}
	ingredientAttribute = attribute{table: ingredientsTable, join: recipeIngredientsTable, column: "ingredient_id"}
)

func (p *PgSQL) GetOrCreateTags(ctx context.Context, userID domain.UserID, names []string) ([]domain.Tag, error) {
	rows, err := p.getOrCreateAttributes(ctx, tagAttribute, userID, names)
	if err != nil {
		return nil, err
	}

	return mapAttributes(rows, PgAttribute.toTag), nil
}

func (p *PgSQL) UserTags(ctx context.Context, userID domain.UserID, assignedOnly bool) ([]domain.Tag, error) {
	rows, err := p.userAttributes(ctx, tagAttribute, userID, assignedOnly)
	if err != nil {
		return nil, err
	}

	return mapAttributes(rows, PgAttribute.toTag), nil
}

func (p *PgSQL) UpdateTag(ctx context.Context, userID domain.UserID, id domain.TagID, name string) (*domain.Tag, error) {
	row, err := p.updateAttribute(ctx, tagAttribute, userID, int64(id), name)
	if err != nil || row == nil {
		return nil, err
	}
	tag := row.toTag()

	return &tag, nil
}

func (p *PgSQL) DeleteTag(ctx context.Context, userID domain.UserID, id domain.TagID) (*domain.Tag, error) {
	row, err := p.deleteAttribute(ctx, tagAttribute, userID, int64(id))
	if err != nil || row == nil {
		return nil, err
	}
	tag := row.toTag()

	return &tag, nil
}

func (p *PgSQL) GetOrCreateIngredients(ctx context.Context,
	userID domain.UserID,
	names []string) ([]domain.Ingredient, error) {
	rows, err := p.getOrCreateAttributes(ctx, ingredientAttribute, userID, names)
	if err != nil {
		return nil, err
	}

	return mapAttributes(rows, PgAttribute.toIngredient), nil
}

func (p *PgSQL) UserIngredients(ctx context.Context,
	userID domain.UserID,
	assignedOnly bool) ([]domain.Ingredient, error) {
	rows, err := p.userAttributes(ctx, ingredientAttribute, userID, assignedOnly)
	if err != nil {
		return nil, err
	}

	return mapAttributes(rows, PgAttribute.toIngredient), nil
}

func (p *PgSQL) UpdateIngredient(ctx context.Context,
	userID domain.UserID,
	id domain.IngredientID,
	name string) (*domain.Ingredient, error) {
	row, err := p.updateAttribute(ctx, ingredientAttribute, userID, int64(id), name)
	if err != nil || row == nil {
		return nil, err
	}
	ingredient := row.toIngredient()

	return &ingredient, nil
}

func (p *PgSQL) DeleteIngredient(ctx context.Context,
	userID domain.UserID,
	id domain.IngredientID) (*domain.Ingredient, error) {
	row, err := p.deleteAttribute(ctx, ingredientAttribute, userID, int64(id))
	if err != nil || row == nil {
		return nil, err
	}
	ingredient := row.toIngredient()

	return &ingredient, nil
}

// getOrCreateAttributes upserts names and returns the rows in the order of
// their first occurrence in names.
func (p *PgSQL) getOrCreateAttributes(ctx context.Context,
	attr attribute,
	userID domain.UserID,
	names []string) ([]PgAttribute, error) {
	unique := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	if len(unique) == 0 {
		return nil, nil
	}

	rows := make([]PgAttribute, 0, len(unique))
	for _, name := range unique {
		rows = append(rows, PgAttribute{UserID: uuid.UUID(userID), Name: name})
	}

	var result []PgAttribute
	// the no-op update makes RETURNING include rows that already existed
	if err := p.Builder.Insert(attr.table).
		Rows(rows).
		OnConflict(goqu.DoUpdate("user_id, name", goqu.Record{"name": goqu.L("EXCLUDED.name")})).
		Returning(&PgAttribute{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store %s into pg: %w", attr.table, err)
	}

	byName := make(map[string]PgAttribute, len(result))
	for _, row := range result {
		byName[row.Name] = row
	}
	ordered := make([]PgAttribute, 0, len(unique))
	for _, name := range unique {
		if row, ok := byName[name]; ok {
			ordered = append(ordered, row)
		}
	}

	return ordered, nil
}

func (p *PgSQL) userAttributes(ctx context.Context,
	attr attribute,
	userID domain.UserID,
	assignedOnly bool) ([]PgAttribute, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if assignedOnly {
		w = append(w, goqu.I("id").In(
			p.Builder.From(attr.join).Select(goqu.I(attr.column)),
		))
	}

	var rows []PgAttribute
	if err := p.Builder.From(attr.table).
		Where(w...).
		Order(goqu.I("name").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user %s from pg: %w", attr.table, err)
	}

	return rows, nil
}

func (p *PgSQL) updateAttribute(ctx context.Context,
	attr attribute,
	userID domain.UserID,
	id int64,
	name string) (*PgAttribute, error) {
	var row PgAttribute
	found, err := p.Builder.Update(attr.table).
		Set(goqu.Record{"name": name}).
		Where(
			goqu.I("id").Eq(id),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgAttribute{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAlreadyExists
		}

		return nil, fmt.Errorf("could not update %s in pg: %w", attr.table, err)
	}
	if !found {
		return nil, nil
	}

	return &row, nil
}

// deleteAttribute deletes the row; assignments go with it (ON DELETE CASCADE).
func (p *PgSQL) deleteAttribute(ctx context.Context,
	attr attribute,
	userID domain.UserID,
	id int64) (*PgAttribute, error) {
	var row PgAttribute
	found, err := p.Builder.Delete(attr.table).
		Where(
			goqu.I("id").Eq(id),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgAttribute{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete %s in pg: %w", attr.table, err)
	}
	if !found {
		return nil, nil
	}

	return &row, nil
}

// recipeAttributes loads the attributes assigned to the given recipes, keyed
// by recipe id and ordered by name.
func (p *PgSQL) recipeAttributes(ctx context.Context,
	attr attribute,
	recipeIDs []int64) (map[int64][]PgAttribute, error) {
	if len(recipeIDs) == 0 {
		return map[int64][]PgAttribute{}, nil
	}

	var rows []pgAssignedAttribute
	if err := p.Builder.From(goqu.T(attr.join).As("j")).
		Join(goqu.T(attr.table).As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("j."+attr.column)))).
		Select(
			goqu.I("j.recipe_id").As("recipe_id"),
			goqu.I("a.id").As("id"),
			goqu.I("a.user_id").As("user_id"),
			goqu.I("a.name").As("name"),
			goqu.I("a.created_at").As("created_at"),
		).
		Where(goqu.I("j.recipe_id").In(recipeIDs)).
		Order(goqu.I("a.name").Asc(), goqu.I("a.id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recipe %s from pg: %w", attr.table, err)
	}

	out := make(map[int64][]PgAttribute, len(recipeIDs))
	for _, row := range rows {
		out[row.RecipeID] = append(out[row.RecipeID], PgAttribute{
			ID:        row.ID,
			UserID:    row.UserID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		})
	}

	return out, nil
}

// setRecipeAttributes replaces the assignments of a recipe with ids.
func (p *PgSQL) setRecipeAttributes(ctx context.Context, attr attribute, recipeID int64, ids []int64) error {
	if _, err := p.Builder.Delete(attr.join).
		Where(goqu.I("recipe_id").Eq(recipeID)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear recipe %s in pg: %w", attr.table, err)
	}
	if len(ids) == 0 {
		return nil
	}

	vals := make([][]interface{}, 0, len(ids))
	for _, id := range ids {
		vals = append(vals, goqu.Vals{recipeID, id})
	}

	if _, err := p.Builder.Insert(attr.join).
		Cols("recipe_id", attr.column).
		Vals(vals...).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not assign recipe %s in pg: %w", attr.table, err)
	}

	return nil
}
