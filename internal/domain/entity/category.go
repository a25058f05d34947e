package entity

// Category agrupa productos. Solo puede eliminarse si ningún producto la referencia.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color,omitempty"`
}
