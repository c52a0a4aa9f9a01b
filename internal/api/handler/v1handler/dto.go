package v1handler

import (
	"recipe/pkg/domain"
	"time"
)

type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func DomainUserToV1(in *domain.User) UserResponse {
	return UserResponse{Email: in.Email, Name: in.Name}
}

type AdminUserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

func DomainUserToV1Admin(in *domain.User) AdminUserResponse {
	return AdminUserResponse{
		ID:          in.ID.String(),
		Email:       in.Email,
		Name:        in.Name,
		IsActive:    in.IsActive,
		IsStaff:     in.IsStaff,
		IsSuperuser: in.IsSuperuser,
		CreatedAt:   in.CreatedAt,
	}
}

type AttributeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func DomainTagsToV1(in []domain.Tag) []AttributeResponse {
	out := make([]AttributeResponse, 0, len(in))
	for _, tag := range in {
		out = append(out, AttributeResponse{ID: int64(tag.ID), Name: tag.Name})
	}

	return out
}

func DomainIngredientsToV1(in []domain.Ingredient) []AttributeResponse {
	out := make([]AttributeResponse, 0, len(in))
	for _, ingredient := range in {
		out = append(out, AttributeResponse{ID: int64(ingredient.ID), Name: ingredient.Name})
	}

	return out
}

// RecipeResponse is a recipe as listed. Price is rendered with two decimal
// places.
type RecipeResponse struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       string              `json:"price"`
	Link        string              `json:"link"`
	Tags        []AttributeResponse `json:"tags"`
	Ingredients []AttributeResponse `json:"ingredients"`
}

func DomainRecipeToV1(in *domain.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          int64(in.ID),
		Title:       in.Title,
		TimeMinutes: in.TimeMinutes,
		Price:       in.Price.StringFixed(2),
		Link:        in.Link,
		Tags:        DomainTagsToV1(in.Tags),
		Ingredients: DomainIngredientsToV1(in.Ingredients),
	}
}

// RecipeDetailResponse adds the description and the image URL, which is null
// when no image was uploaded.
type RecipeDetailResponse struct {
	RecipeResponse

	Description string  `json:"description"`
	Image       *string `json:"image"`
}

func DomainRecipeToV1Detail(in *domain.Recipe, imageURL string) RecipeDetailResponse {
	out := RecipeDetailResponse{
		RecipeResponse: DomainRecipeToV1(in),
		Description:    in.Description,
	}
	if imageURL != "" {
		out.Image = &imageURL
	}

	return out
}

type RecipeImageResponse struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}
