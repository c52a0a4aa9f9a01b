package recipe_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"recipe/internal/recipe"
	"recipe/pkg/domain"
	"recipe/pkg/logger"
	mockmedia "recipe/pkg/media/mock"
	"recipe/pkg/serrors"
	"recipe/pkg/storage"
	mockstorage "recipe/pkg/storage/mock"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newTestRecipes(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *mockmedia.MockStore, recipe.Recipes) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	store := mockmedia.NewMockStore(ctrl)

	return ctrl, st, store, recipe.New(st, store, recipe.Options{MaxCleanupAttempts: 3})
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func ptr[T any](v T) *T { return &v }

func sampleInput() recipe.Input {
	return recipe.Input{
		Title:       ptr("Sample recipe"),
		TimeMinutes: ptr(22),
		Price:       ptr(decimal.RequireFromString("5.25")),
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))

	return buf.Bytes()
}

var userID = domain.UserID(uuid.New())

func TestRecipes_Create(t *testing.T) {
	ctrl, st, _, r := newTestRecipes(t)
	ctx := context.Background()

	input := sampleInput()
	input.Tags = &[]string{" Thai ", "Dinner"}
	input.Ingredients = &[]string{}
	created := &domain.Recipe{ID: 7, UserID: userID, Title: "Sample recipe", Tags: []domain.Tag{{ID: 1, Name: "Thai"}}}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().StoreRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, rec domain.Recipe) (*domain.Recipe, error) {
					require.Equal(t, userID, rec.UserID)
					require.Equal(t, "Sample recipe", rec.Title)
					require.Equal(t, 22, rec.TimeMinutes)
					require.True(t, rec.Price.Equal(decimal.RequireFromString("5.25")))
					rec.ID = 7

					return &rec, nil
				}),
			tx.EXPECT().GetOrCreateTags(gomock.Any(), userID, []string{"Thai", "Dinner"}).
				Return([]domain.Tag{{ID: 1, Name: "Thai"}, {ID: 2, Name: "Dinner"}}, nil),
			tx.EXPECT().SetRecipeTags(gomock.Any(), domain.RecipeID(7), []domain.TagID{1, 2}).Return(nil),
			tx.EXPECT().GetOrCreateIngredients(gomock.Any(), userID, []string{}).Return(nil, nil),
			tx.EXPECT().SetRecipeIngredients(gomock.Any(), domain.RecipeID(7), []domain.IngredientID{}).Return(nil),
			tx.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(7)).Return(created, nil),
		)
	})

	got, err := r.Create(ctx, userID, input)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestRecipes_CreateValidation(t *testing.T) {
	_, _, _, r := newTestRecipes(t)
	ctx := context.Background()

	tests := map[string]func(in *recipe.Input){
		"missing title":     func(in *recipe.Input) { in.Title = nil },
		"blank title":       func(in *recipe.Input) { in.Title = ptr("   ") },
		"long title":        func(in *recipe.Input) { in.Title = ptr(strings.Repeat("a", 256)) },
		"missing time":      func(in *recipe.Input) { in.TimeMinutes = nil },
		"negative time":     func(in *recipe.Input) { in.TimeMinutes = ptr(-1) },
		"missing price":     func(in *recipe.Input) { in.Price = nil },
		"too many decimals": func(in *recipe.Input) { in.Price = ptr(decimal.RequireFromString("1.005")) },
		"too many digits":   func(in *recipe.Input) { in.Price = ptr(decimal.RequireFromString("1000")) },
		"blank tag name":    func(in *recipe.Input) { in.Tags = &[]string{"ok", ""} },
		"long ingredient":   func(in *recipe.Input) { in.Ingredients = &[]string{strings.Repeat("b", 300)} },
		"long link":         func(in *recipe.Input) { in.Link = ptr("https://" + strings.Repeat("c", 255)) },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := sampleInput()
			mutate(&in)

			_, err := r.Create(ctx, userID, in)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestRecipes_PartialUpdate(t *testing.T) {
	ctrl, st, _, r := newTestRecipes(t)
	ctx := context.Background()

	updated := &domain.Recipe{ID: 3, UserID: userID, Title: "New title"}
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().UpdateRecipe(gomock.Any(), userID, domain.RecipeID(3), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ domain.UserID, _ domain.RecipeID, u storage.RecipeUpdates) (*domain.Recipe, error) {
					require.Equal(t, "New title", *u.Title)
					require.Nil(t, u.Price)
					require.Nil(t, u.TimeMinutes)

					return updated, nil
				}),
			tx.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(3)).Return(updated, nil),
		)
	})

	got, err := r.Update(ctx, userID, 3, recipe.Input{Title: ptr("New title")}, true)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestRecipes_UpdateOnlyTags(t *testing.T) {
	ctrl, st, _, r := newTestRecipes(t)
	ctx := context.Background()

	current := &domain.Recipe{ID: 3, UserID: userID}
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(3)).Return(current, nil),
			tx.EXPECT().GetOrCreateTags(gomock.Any(), userID, []string{"Lunch"}).
				Return([]domain.Tag{{ID: 9, Name: "Lunch"}}, nil),
			tx.EXPECT().SetRecipeTags(gomock.Any(), domain.RecipeID(3), []domain.TagID{9}).Return(nil),
			tx.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(3)).Return(current, nil),
		)
	})

	_, err := r.Update(ctx, userID, 3, recipe.Input{Tags: &[]string{"Lunch"}}, true)
	require.NoError(t, err)
}

func TestRecipes_UpdateNotFound(t *testing.T) {
	ctrl, st, _, r := newTestRecipes(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateRecipe(gomock.Any(), userID, domain.RecipeID(3), gomock.Any()).Return(nil, nil)
	})

	_, err := r.Update(context.Background(), userID, 3, sampleInput(), false)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestRecipes_FullUpdateRequiresFields(t *testing.T) {
	_, _, _, r := newTestRecipes(t)

	_, err := r.Update(context.Background(), userID, 3, recipe.Input{Title: ptr("t")}, false)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRecipes_Get(t *testing.T) {
	_, st, _, r := newTestRecipes(t)
	ctx := context.Background()

	st.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(1)).Return(nil, nil)
	_, err := r.Get(ctx, userID, 1)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	boom := errors.New("boom")
	st.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(2)).Return(nil, boom)
	_, err = r.Get(ctx, userID, 2)
	require.ErrorIs(t, err, boom)

	want := &domain.Recipe{ID: 3}
	st.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(3)).Return(want, nil)
	got, err := r.Get(ctx, userID, 3)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRecipes_List(t *testing.T) {
	_, st, _, r := newTestRecipes(t)

	filter := storage.RecipeFilter{Tags: []domain.TagID{1, 2}}
	st.EXPECT().UserRecipes(gomock.Any(), userID, filter).Return([]domain.Recipe{{ID: 2}, {ID: 1}}, nil)

	list, err := r.List(context.Background(), userID, filter)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestRecipes_Delete(t *testing.T) {
	ctrl, st, _, r := newTestRecipes(t)
	ctx := context.Background()

	t.Run("schedules image cleanup", func(t *testing.T) {
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().DeleteRecipe(gomock.Any(), userID, domain.RecipeID(5)).
				Return(&domain.Recipe{ID: 5, Image: "uploads/recipe/a.png"}, nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
				func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
					cleanup, ok := args.(recipe.ImageCleanupArgs)
					require.True(t, ok)
					require.Equal(t, "uploads/recipe/a.png", cleanup.Path)
					require.Equal(t, 3, cleanup.InsertOpts().MaxAttempts)

					return true, nil
				})
		})

		require.NoError(t, r.Delete(ctx, userID, 5))
	})

	t.Run("without image", func(t *testing.T) {
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().DeleteRecipe(gomock.Any(), userID, domain.RecipeID(6)).Return(&domain.Recipe{ID: 6}, nil)
		})

		require.NoError(t, r.Delete(ctx, userID, 6))
	})

	t.Run("not found", func(t *testing.T) {
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().DeleteRecipe(gomock.Any(), userID, domain.RecipeID(7)).Return(nil, nil)
		})

		require.ErrorIs(t, r.Delete(ctx, userID, 7), serrors.ErrNotFound)
	})
}

func TestRecipes_UploadImage(t *testing.T) {
	ctrl, st, store, r := newTestRecipes(t)
	ctx := context.Background()
	content := pngBytes(t)

	var savedPath string
	st.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(4)).
		Return(&domain.Recipe{ID: 4, Image: "uploads/recipe/old.png"}, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
		func(_ context.Context, path string, r io.Reader, _ string) error {
			savedPath = path
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, content, data)

			return nil
		})
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateRecipe(gomock.Any(), userID, domain.RecipeID(4), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, _ domain.RecipeID, u storage.RecipeUpdates) (*domain.Recipe, error) {
				require.Equal(t, savedPath, *u.Image)

				return &domain.Recipe{ID: 4, Image: *u.Image}, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Cond(func(args river.JobArgs) bool {
			cleanup, ok := args.(recipe.ImageCleanupArgs)

			return ok && cleanup.Path == "uploads/recipe/old.png"
		}), gomock.Nil()).Return(true, nil)
	})

	got, err := r.UploadImage(ctx, userID, 4, "photo.PNG", bytes.NewReader(content))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got.Image, "uploads/recipe/"))
	require.True(t, strings.HasSuffix(got.Image, ".png"))
}

func TestRecipes_UploadImageRejectsNonImage(t *testing.T) {
	_, _, _, r := newTestRecipes(t)

	_, err := r.UploadImage(context.Background(), userID, 4, "notimage.txt", strings.NewReader("notimage"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestRecipes_UploadImageRemovesFileOnFailure(t *testing.T) {
	ctrl, st, store, r := newTestRecipes(t)
	boom := errors.New("boom")

	var savedPath string
	st.EXPECT().RecipeByID(gomock.Any(), userID, domain.RecipeID(4)).Return(&domain.Recipe{ID: 4}, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
		func(_ context.Context, path string, _ io.Reader, _ string) error {
			savedPath = path

			return nil
		})
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateRecipe(gomock.Any(), userID, domain.RecipeID(4), gomock.Any()).Return(nil, boom)
	})
	store.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, path string) error {
		require.Equal(t, savedPath, path)

		return nil
	})

	_, err := r.UploadImage(context.Background(), userID, 4, "x.png", bytes.NewReader(pngBytes(t)))
	require.ErrorIs(t, err, boom)
}

func TestRecipes_ImageURL(t *testing.T) {
	_, _, store, r := newTestRecipes(t)

	require.Empty(t, r.ImageURL(""))

	store.EXPECT().URL("uploads/recipe/a.png").Return("/media/uploads/recipe/a.png")
	require.Equal(t, "/media/uploads/recipe/a.png", r.ImageURL("uploads/recipe/a.png"))
}

func TestRecipes_Tags(t *testing.T) {
	_, st, _, r := newTestRecipes(t)
	ctx := context.Background()

	st.EXPECT().UserTags(gomock.Any(), userID, true).Return([]domain.Tag{{ID: 1, Name: "Lunch"}}, nil)
	tags, err := r.Tags(ctx, userID, true)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	st.EXPECT().UpdateTag(gomock.Any(), userID, domain.TagID(1), "Dessert").
		Return(&domain.Tag{ID: 1, Name: "Dessert"}, nil)
	tag, err := r.UpdateTag(ctx, userID, 1, "  Dessert ")
	require.NoError(t, err)
	require.Equal(t, "Dessert", tag.Name)

	st.EXPECT().UpdateTag(gomock.Any(), userID, domain.TagID(1), "Dup").Return(nil, storage.ErrAlreadyExists)
	_, err = r.UpdateTag(ctx, userID, 1, "Dup")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().UpdateTag(gomock.Any(), userID, domain.TagID(2), "x").Return(nil, nil)
	_, err = r.UpdateTag(ctx, userID, 2, "x")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = r.UpdateTag(ctx, userID, 1, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().DeleteTag(gomock.Any(), userID, domain.TagID(1)).Return(&domain.Tag{ID: 1}, nil)
	require.NoError(t, r.DeleteTag(ctx, userID, 1))

	st.EXPECT().DeleteTag(gomock.Any(), userID, domain.TagID(2)).Return(nil, nil)
	require.ErrorIs(t, r.DeleteTag(ctx, userID, 2), serrors.ErrNotFound)
}

func TestRecipes_Ingredients(t *testing.T) {
	_, st, _, r := newTestRecipes(t)
	ctx := context.Background()

	st.EXPECT().UserIngredients(gomock.Any(), userID, false).
		Return([]domain.Ingredient{{ID: 2, Name: "Salt"}, {ID: 1, Name: "Kale"}}, nil)
	ingredients, err := r.Ingredients(ctx, userID, false)
	require.NoError(t, err)
	require.Len(t, ingredients, 2)

	st.EXPECT().UpdateIngredient(gomock.Any(), userID, domain.IngredientID(1), "Cauliflower").
		Return(&domain.Ingredient{ID: 1, Name: "Cauliflower"}, nil)
	ingredient, err := r.UpdateIngredient(ctx, userID, 1, "Cauliflower")
	require.NoError(t, err)
	require.Equal(t, "Cauliflower", ingredient.Name)

	st.EXPECT().UpdateIngredient(gomock.Any(), userID, domain.IngredientID(1), "Salt").
		Return(nil, storage.ErrAlreadyExists)
	_, err = r.UpdateIngredient(ctx, userID, 1, "Salt")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().DeleteIngredient(gomock.Any(), userID, domain.IngredientID(3)).Return(nil, nil)
	require.ErrorIs(t, r.DeleteIngredient(ctx, userID, 3), serrors.ErrNotFound)
}

func TestParseIDs(t *testing.T) {
	ids, err := recipe.ParseIDs[domain.TagID]("tags", "1, 2,3")
	require.NoError(t, err)
	require.Equal(t, []domain.TagID{1, 2, 3}, ids)

	ids, err = recipe.ParseIDs[domain.TagID]("tags", " ")
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = recipe.ParseIDs[domain.IngredientID]("ingredients", "1,x")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
