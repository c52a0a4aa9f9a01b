package v1handler

import (
	"errors"
	"net/http"
	"recipe/internal/recipe"
	"recipe/pkg/domain"
	"recipe/pkg/serrors"
	"recipe/pkg/storage"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type AttributeRequest struct {
	Name string `json:"name"`
}

// RecipeRequest is the body of recipe writes. Absent fields are nil. A user
// field, if sent, is ignored: the owner is always the caller.
type RecipeRequest struct {
	Title       *string             `json:"title" validate:"omitempty,max=255"`
	TimeMinutes *int                `json:"time_minutes" validate:"omitempty,gte=0"`
	Price       *decimal.Decimal    `json:"price"`
	Link        *string             `json:"link" validate:"omitempty,max=255"`
	Description *string             `json:"description"`
	Tags        *[]AttributeRequest `json:"tags"`
	Ingredients *[]AttributeRequest `json:"ingredients"`
}

func (req RecipeRequest) toInput() recipe.Input {
	return recipe.Input{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
		Description: req.Description,
		Tags:        attributeNames(req.Tags),
		Ingredients: attributeNames(req.Ingredients),
	}
}

func attributeNames(in *[]AttributeRequest) *[]string {
	if in == nil {
		return nil
	}

	names := make([]string, 0, len(*in))
	for _, attr := range *in {
		names = append(names, attr.Name)
	}

	return &names
}

func pathID[T ~int64](r *http.Request) (T, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrNotFound, err, "resource not found")
	}

	return T(id), nil
}

// ListRecipes lists the caller's recipes, optionally filtered by
// ?tags=1,2 and ?ingredients=3.
func (h Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	tags, err := recipe.ParseIDs[domain.TagID]("tags", query.Get("tags"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	ingredients, err := recipe.ParseIDs[domain.IngredientID]("ingredients", query.Get("ingredients"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	list, err := h.deps.Recipes.List(ctx, userID(ctx), storage.RecipeFilter{Tags: tags, Ingredients: ingredients})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	out := make([]RecipeResponse, 0, len(list))
	for i := range list {
		out = append(out, DomainRecipeToV1(&list[i]))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

func (h Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID[domain.RecipeID](r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	rec, err := h.deps.Recipes.Get(ctx, userID(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainRecipeToV1Detail(rec, h.deps.Recipes.ImageURL(rec.Image)))
}

func (h Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RecipeRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	rec, err := h.deps.Recipes.Create(ctx, userID(ctx), req.toInput())
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, DomainRecipeToV1Detail(rec, h.deps.Recipes.ImageURL(rec.Image)))
}

// UpdateRecipe handles PUT (partial=false) and PATCH (partial=true).
func (h Handler) UpdateRecipe(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := pathID[domain.RecipeID](r)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		var req RecipeRequest
		if err := h.decode(w, r, &req); err != nil {
			writeError(ctx, w, err)

			return
		}

		rec, err := h.deps.Recipes.Update(ctx, userID(ctx), id, req.toInput(), partial)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		writeJSON(ctx, w, http.StatusOK, DomainRecipeToV1Detail(rec, h.deps.Recipes.ImageURL(rec.Image)))
	}
}

func (h Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID[domain.RecipeID](r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Recipes.Delete(ctx, userID(ctx), id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadRecipeImage stores the multipart "image" field as the recipe image.
func (h Handler) UploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID[domain.RecipeID](r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if h.options.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadBytes)
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "image: the uploaded file is too large"))
		case errors.Is(err, http.ErrMissingFile):
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "image: no file was submitted"))
		default:
			writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "image: the submitted data was not a file"))
		}

		return
	}
	defer func() { _ = file.Close() }()

	rec, err := h.deps.Recipes.UploadImage(ctx, userID(ctx), id, header.Filename, file)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, RecipeImageResponse{
		ID:    int64(rec.ID),
		Image: h.deps.Recipes.ImageURL(rec.Image),
	})
}
