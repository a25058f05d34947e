package dto

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// UpdateSupplierRequest campos editables; nil = sin cambios.
type UpdateSupplierRequest struct {
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
}

// SupplierResponse proveedor con el total de productos que lo referencian.
type SupplierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ProductCount  int    `json:"productCount"`
}
