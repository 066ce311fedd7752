package entity

import "time"

// Customer representa un cliente de la organización (ventas / ingresos).
type Customer struct {
	ID        int64
	Name      string
	TaxNumber string // NIT, RUT o número fiscal equivalente
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
