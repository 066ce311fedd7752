package entity

import "time"

// Supplier representa un proveedor (compras / egresos).
type Supplier struct {
	ID            int64
	Name          string
	TaxNumber     string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
