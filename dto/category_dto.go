package dto

// CategoryForm is bound from the category manager form (or CLI flags).
type CategoryForm struct {
	Name        string `form:"name" json:"name" validate:"notblank"`
	Description string `form:"description" json:"description"`
}
