package domain

// TagID identifies a tag.
type TagID int64

// Tag is a user-defined label that can be assigned to recipes.
type Tag struct {
	ID     TagID
	UserID UserID
	Name   string
}

func (t Tag) String() string { return t.Name }

// IngredientID identifies an ingredient.
type IngredientID int64

// Ingredient is a user-defined ingredient that can be assigned to recipes.
type Ingredient struct {
	ID     IngredientID
	UserID UserID
	Name   string
}

func (i Ingredient) String() string { return i.Name }
