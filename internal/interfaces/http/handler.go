// Package http expone la API REST sobre Fiber: un handler por agregado y el
// router que los registra bajo /api.
package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
)

// parseID lee :id de la ruta como int64 positivo. Si no es válido responde
// 400 y devuelve ok=false; el handler debe cortar.
func parseID(c *fiber.Ctx) (int64, bool) {
	raw := c.Params("id")
	if raw == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
		return 0, false
	}
	return id, true
}

// parsePeriod lee start/end (YYYY-MM-DD) de la query. Sin start se asume el
// primer día del mes en curso; sin end, el final del día de hoy. end se
// extiende al final de su día para que el límite sea inclusivo.
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}
