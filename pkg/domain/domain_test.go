package domain_test

import (
	"recipe/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestStringers(t *testing.T) {
	recipe := domain.Recipe{
		Title:       "Sample recipe name",
		TimeMinutes: 5,
		Price:       decimal.RequireFromString("5.50"),
		Description: "Sample recipe description",
	}
	require.Equal(t, recipe.Title, recipe.String())

	tag := domain.Tag{Name: "Tag1"}
	require.Equal(t, tag.Name, tag.String())

	ingredient := domain.Ingredient{Name: "Ingredient1"}
	require.Equal(t, ingredient.Name, ingredient.String())

	user := domain.User{Email: "test@example.com"}
	require.Equal(t, user.Email, user.String())
}

func TestUserIDString(t *testing.T) {
	id := uuid.New()
	require.Equal(t, id.String(), domain.UserID(id).String())
}
