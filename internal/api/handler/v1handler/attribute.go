package v1handler

import (
	"net/http"
	"recipe/pkg/domain"
	"recipe/pkg/serrors"
	"strconv"
	"strings"
)

type AttributeUpdateRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// assignedOnly parses ?assigned_only=0|1. Absent means false.
func assignedOnly(r *http.Request) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("assigned_only"))
	if raw == "" {
		return false, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrBadRequest, err, "assigned_only: must be 0 or 1")
	}

	return v != 0, nil
}

func (h Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assigned, err := assignedOnly(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	tags, err := h.deps.Recipes.Tags(ctx, userID(ctx), assigned)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainTagsToV1(tags))
}

func (h Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID[domain.TagID](r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req AttributeUpdateRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	tag, err := h.deps.Recipes.UpdateTag(ctx, userID(ctx), id, req.Name)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, AttributeResponse{ID: int64(tag.ID), Name: tag.Name})
}

func (h Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID[domain.TagID](r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Recipes.DeleteTag(ctx, userID(ctx), id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assigned, err := assignedOnly(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	ingredients, err := h.deps.Recipes.Ingredients(ctx, userID(ctx), assigned)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainIngredientsToV1(ingredients))
}

func (h Handler) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID[domain.IngredientID](r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req AttributeUpdateRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	ingredient, err := h.deps.Recipes.UpdateIngredient(ctx, userID(ctx), id, req.Name)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, AttributeResponse{ID: int64(ingredient.ID), Name: ingredient.Name})
}

func (h Handler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID[domain.IngredientID](r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Recipes.DeleteIngredient(ctx, userID(ctx), id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
