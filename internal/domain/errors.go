package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// ErrInstallmentGeneration indica que falló una precondición del generador
	// de cuotas (factura, plan o método de pago inexistente). El caso de uso
	// lo envuelve con la causa concreta.
	ErrInstallmentGeneration = errors.New("no se pudieron generar las cuotas")
)
