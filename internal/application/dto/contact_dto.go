package dto

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name      string `json:"name"`
	TaxNumber string `json:"tax_number,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id.
// Campos puntero: los omitidos en el JSON conservan el valor almacenado.
type UpdateCustomerRequest struct {
	Name      *string `json:"name"`
	TaxNumber *string `json:"tax_number"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	TaxNumber string `json:"tax_number,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	TaxNumber     string `json:"tax_number,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	TaxNumber     *string `json:"tax_number"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Notes         *string `json:"notes"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	TaxNumber     string `json:"tax_number,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	Notes         string `json:"notes,omitempty"`
}
