package entity

// Supplier proveedor de productos. Solo puede eliminarse si ningún producto lo referencia.
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}
