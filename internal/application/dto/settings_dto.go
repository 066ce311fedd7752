package dto

// UpdateSettingsRequest body para PUT /api/settings (fusión parcial; el
// singleton se crea de forma perezosa en la primera actualización).
type UpdateSettingsRequest struct {
	CompanyName   *string `json:"company_name"`
	TaxNumber     *string `json:"tax_number"`
	Address       *string `json:"address"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Currency      *string `json:"currency"`
	InvoicePrefix *string `json:"invoice_prefix"`
}

// SettingsResponse configuración en respuestas.
type SettingsResponse struct {
	CompanyName   string `json:"company_name,omitempty"`
	TaxNumber     string `json:"tax_number,omitempty"`
	Address       string `json:"address,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Currency      string `json:"currency,omitempty"`
	InvoicePrefix string `json:"invoice_prefix,omitempty"`
}
