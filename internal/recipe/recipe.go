package recipe

import (
	"context"
	"fmt"
	"io"
	"recipe/internal/config"
	"recipe/pkg/domain"
	"recipe/pkg/logger"
	"recipe/pkg/media"
	"recipe/pkg/serrors"
	"recipe/pkg/storage"

	"go.uber.org/zap"
)

// Options configure the recipe service.
type Options struct {
	// MaxCleanupAttempts is the maximum number of attempts of an image
	// cleanup job.
	MaxCleanupAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxCleanupAttempts: cfg.Worker.MaxAttempts,
	}
}

type recipes struct {
	options Options
	storage storage.Storage
	media   media.Store
}

// New creates a Recipes service. Images are stored in store.
func New(storage storage.Storage, store media.Store, options Options) Recipes {
	return &recipes{
		options: options,
		storage: storage,
		media:   store,
	}
}

func errRecipeNotFound() error { return serrors.With(serrors.ErrNotFound, "recipe not found") }

func (r recipes) List(ctx context.Context, userID domain.UserID, filter storage.RecipeFilter) ([]domain.Recipe, error) {
	list, err := r.storage.UserRecipes(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list recipes: %w", err)
	}

	return list, nil
}

func (r recipes) Get(ctx context.Context, userID domain.UserID, id domain.RecipeID) (*domain.Recipe, error) {
	recipe, err := r.storage.RecipeByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get recipe: %w", err)
	}
	if recipe == nil {
		return nil, errRecipeNotFound()
	}

	return recipe, nil
}

// Create stores a recipe owned by userID together with its tags and
// ingredients, which are created for the user when they do not exist yet.
func (r recipes) Create(ctx context.Context, userID domain.UserID, input Input) (*domain.Recipe, error) {
	updates, err := toUpdates(input, false)
	if err != nil {
		return nil, err
	}
	tags, ingredients, err := validateAttributes(input)
	if err != nil {
		return nil, err
	}

	var created *domain.Recipe
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreRecipe(ctx, domain.Recipe{
			UserID:      userID,
			Title:       *updates.Title,
			TimeMinutes: *updates.TimeMinutes,
			Price:       *updates.Price,
			Link:        deref(updates.Link),
			Description: deref(updates.Description),
		})
		if err != nil {
			return fmt.Errorf("could not store recipe: %w", err)
		}

		if err := assignAttributes(ctx, tx, userID, stored.ID, tags, ingredients); err != nil {
			return err
		}

		created, err = tx.RecipeByID(ctx, userID, stored.ID)
		if err != nil {
			return fmt.Errorf("could not reload recipe: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create recipe: %w", err)
	}

	return created, nil
}

// Update changes the recipe columns present in input. Tag and ingredient
// assignments are replaced only when the lists are present.
func (r recipes) Update(ctx context.Context,
	userID domain.UserID,
	id domain.RecipeID,
	input Input,
	partial bool) (*domain.Recipe, error) {
	updates, err := toUpdates(input, partial)
	if err != nil {
		return nil, err
	}
	tags, ingredients, err := validateAttributes(input)
	if err != nil {
		return nil, err
	}

	var updated *domain.Recipe
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var current *domain.Recipe
		if updates.IsEmpty() {
			current, err = tx.RecipeByID(ctx, userID, id)
		} else {
			current, err = tx.UpdateRecipe(ctx, userID, id, updates)
		}
		if err != nil {
			return fmt.Errorf("could not apply recipe updates: %w", err)
		}
		if current == nil {
			return errRecipeNotFound()
		}

		if err := assignAttributes(ctx, tx, userID, id, tags, ingredients); err != nil {
			return err
		}

		updated, err = tx.RecipeByID(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("could not reload recipe: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update recipe: %w", err)
	}

	return updated, nil
}

// Delete removes the recipe and schedules the removal of its image.
func (r recipes) Delete(ctx context.Context, userID domain.UserID, id domain.RecipeID) error {
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteRecipe(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("could not delete recipe: %w", err)
		}
		if deleted == nil {
			return errRecipeNotFound()
		}

		return r.scheduleCleanup(ctx, tx, deleted.Image)
	}); err != nil {
		return fmt.Errorf("could not delete recipe: %w", err)
	}

	return nil
}

// UploadImage stores the image read from r and attaches it to the recipe. A
// replaced image is removed in the background.
func (r recipes) UploadImage(ctx context.Context,
	userID domain.UserID,
	id domain.RecipeID,
	filename string,
	body io.Reader) (*domain.Recipe, error) {
	mtype, content, err := media.DetectImage(body)
	if err != nil {
		return nil, err
	}

	current, err := r.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	path := media.NewRecipeImagePath(filename, mtype)
	if err := r.media.Save(ctx, path, content, mtype.String()); err != nil {
		return nil, fmt.Errorf("could not save image: %w", err)
	}

	var updated *domain.Recipe
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err = tx.UpdateRecipe(ctx, userID, id, storage.RecipeUpdates{Image: &path})
		if err != nil {
			return fmt.Errorf("could not update recipe image: %w", err)
		}
		if updated == nil {
			return errRecipeNotFound()
		}

		return r.scheduleCleanup(ctx, tx, current.Image)
	}); err != nil {
		if delErr := r.media.Delete(ctx, path); delErr != nil {
			logger.Warn(ctx, "could not remove orphan image", zap.String("path", path), zap.Error(delErr))
		}

		return nil, fmt.Errorf("could not upload image: %w", err)
	}

	return updated, nil
}

func (r recipes) ImageURL(path string) string {
	if path == "" {
		return ""
	}

	return r.media.URL(path)
}

func (r recipes) scheduleCleanup(ctx context.Context, tx storage.AllStorage, path string) error {
	if path == "" {
		return nil
	}

	if _, err := tx.AddJob(ctx, ImageCleanupArgs{Path: path, maxAttempts: r.options.MaxCleanupAttempts}, nil); err != nil {
		return fmt.Errorf("could not add image cleanup job: %w", err)
	}

	return nil
}

// toUpdates validates input. Unless partial, title, time and price are required.
func toUpdates(input Input, partial bool) (storage.RecipeUpdates, error) {
	if !partial {
		switch {
		case input.Title == nil:
			return storage.RecipeUpdates{}, serrors.With(serrors.ErrBadRequest, "title: this field is required")
		case input.TimeMinutes == nil:
			return storage.RecipeUpdates{}, serrors.With(serrors.ErrBadRequest, "time_minutes: this field is required")
		case input.Price == nil:
			return storage.RecipeUpdates{}, serrors.With(serrors.ErrBadRequest, "price: this field is required")
		}
	}

	updates := storage.RecipeUpdates{
		TimeMinutes: input.TimeMinutes,
		Price:       input.Price,
		Link:        input.Link,
		Description: input.Description,
	}
	if input.Title != nil {
		title, err := validateName("title", *input.Title)
		if err != nil {
			return storage.RecipeUpdates{}, err
		}
		updates.Title = &title
	}
	if input.TimeMinutes != nil && *input.TimeMinutes < 0 {
		return storage.RecipeUpdates{}, serrors.With(serrors.ErrBadRequest,
			"time_minutes: ensure this value is greater than or equal to 0")
	}
	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return storage.RecipeUpdates{}, err
		}
	}
	if input.Link != nil && len([]rune(*input.Link)) > maxNameLength {
		return storage.RecipeUpdates{}, serrors.With(serrors.ErrBadRequest,
			"link: ensure this field has no more than %d characters", maxNameLength)
	}

	return updates, nil
}

func validateAttributes(input Input) (*[]string, *[]string, error) {
	var tags, ingredients *[]string
	if input.Tags != nil {
		names, err := validateNames("tags", *input.Tags)
		if err != nil {
			return nil, nil, err
		}
		tags = &names
	}
	if input.Ingredients != nil {
		names, err := validateNames("ingredients", *input.Ingredients)
		if err != nil {
			return nil, nil, err
		}
		ingredients = &names
	}

	return tags, ingredients, nil
}

// assignAttributes replaces the recipe's tags and/or ingredients with the
// named ones, creating missing names for the user. Nil lists are skipped.
func assignAttributes(ctx context.Context,
	tx storage.AllStorage,
	userID domain.UserID,
	id domain.RecipeID,
	tags, ingredients *[]string) error {
	if tags != nil {
		stored, err := tx.GetOrCreateTags(ctx, userID, *tags)
		if err != nil {
			return fmt.Errorf("could not get or create tags: %w", err)
		}
		ids := make([]domain.TagID, 0, len(stored))
		for _, tag := range stored {
			ids = append(ids, tag.ID)
		}
		if err := tx.SetRecipeTags(ctx, id, ids); err != nil {
			return fmt.Errorf("could not set recipe tags: %w", err)
		}
	}
	if ingredients != nil {
		stored, err := tx.GetOrCreateIngredients(ctx, userID, *ingredients)
		if err != nil {
			return fmt.Errorf("could not get or create ingredients: %w", err)
		}
		ids := make([]domain.IngredientID, 0, len(stored))
		for _, ingredient := range stored {
			ids = append(ids, ingredient.ID)
		}
		if err := tx.SetRecipeIngredients(ctx, id, ids); err != nil {
			return fmt.Errorf("could not set recipe ingredients: %w", err)
		}
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
