package dto

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
}

// UpdateCategoryRequest campos editables; nil = sin cambios.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// CategoryResponse categoría con el total de productos que la referencian.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color,omitempty"`
	ProductCount int    `json:"productCount"`
}
