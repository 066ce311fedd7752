package dto

import (
	"fmt"
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateLayout formato de fecha-calendario de la API (sin zona horaria).
const DateLayout = "2006-01-02"

// Date fecha-calendario para cuerpos JSON. Acepta "2006-01-02" y, por
// tolerancia con clientes viejos, RFC 3339 completo.
type Date struct {
	time.Time
}

// NewDate construye una Date a partir de un time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON parsea "2006-01-02"; null o cadena vacía dejan la fecha en cero.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("fecha inválida %q: se espera %s", s, DateLayout)
		}
	}
	d.Time = t
	return nil
}

// MarshalJSON emite "2006-01-02" (cadena vacía si la fecha es cero).
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// FormatDate fecha de respuesta como cadena ("" si es cero).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
