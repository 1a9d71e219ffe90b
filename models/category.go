package models

// DefaultCategoryName is shown when the backend payload carries no usable name.
const DefaultCategoryName = "New category"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
