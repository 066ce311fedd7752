package entity

import "time"

// Settings es el registro singleton de configuración de la organización.
// No tiene colección ni id: se crea de forma perezosa en la primera
// actualización y después se fusiona campo a campo.
type Settings struct {
	CompanyName   string
	TaxNumber     string
	Address       string
	Email         string
	Phone         string
	Currency      string // moneda por defecto para nuevos registros
	InvoicePrefix string // prefijo para numeración de facturas
	UpdatedAt     time.Time
}
