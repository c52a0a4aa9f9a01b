package postgres

import (
	"database/sql"
	"recipe/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	usersTable             = "users"
	recipesTable           = "recipes"
	tagsTable              = "tags"
	ingredientsTable       = "ingredients"
	recipeTagsTable        = "recipe_tags"
	recipeIngredientsTable = "recipe_ingredients"
)

type PgUser struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	Name        string    `db:"name"`
	Password    string    `db:"password"`
	IsActive    bool      `db:"is_active"`
	IsStaff     bool      `db:"is_staff"`
	IsSuperuser bool      `db:"is_superuser"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Name:         p.Name,
		PasswordHash: p.Password,
		IsActive:     p.IsActive,
		IsStaff:      p.IsStaff,
		IsSuperuser:  p.IsSuperuser,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:          uuid.UUID(user.ID),
		Email:       user.Email,
		Name:        user.Name,
		Password:    user.PasswordHash,
		IsActive:    user.IsActive,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	}
}

type PgRecipe struct {
	ID     int64     `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Title       string          `db:"title"`
	TimeMinutes int             `db:"time_minutes"`
	Price       decimal.Decimal `db:"price"`
	Link        string          `db:"link"`
	Description string          `db:"description"`
	Image       sql.NullString  `db:"image"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRecipe) ToDomain() *domain.Recipe {
	return &domain.Recipe{
		ID:          domain.RecipeID(p.ID),
		UserID:      domain.UserID(p.UserID),
		Title:       p.Title,
		TimeMinutes: p.TimeMinutes,
		Price:       p.Price,
		Link:        p.Link,
		Description: p.Description,
		Image:       p.Image.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgRecipe) FromDomain(recipe domain.Recipe) {
	*p = PgRecipe{
		ID:          int64(recipe.ID),
		UserID:      uuid.UUID(recipe.UserID),
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Description: recipe.Description,
		Image: sql.NullString{
			String: recipe.Image,
			Valid:  recipe.Image != "",
		},
	}
}

// PgAttribute is a row of the tags or ingredients table; both share a layout.
type PgAttribute struct {
	ID        int64     `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

// pgAssignedAttribute is an attribute joined with one of the recipes it is
// assigned to.
type pgAssignedAttribute struct {
	RecipeID  int64     `db:"recipe_id"`
	ID        int64     `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (p PgAttribute) toTag() domain.Tag {
	return domain.Tag{ID: domain.TagID(p.ID), UserID: domain.UserID(p.UserID), Name: p.Name}
}

func (p PgAttribute) toIngredient() domain.Ingredient {
	return domain.Ingredient{ID: domain.IngredientID(p.ID), UserID: domain.UserID(p.UserID), Name: p.Name}
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, user := range users {
		out = append(out, *user.ToDomain())
	}

	return out
}

func mapAttributes[T any](attrs []PgAttribute, conv func(PgAttribute) T) []T {
	out := make([]T, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, conv(attr))
	}

	return out
}
