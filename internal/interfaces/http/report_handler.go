package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/analytics"
	"github.com/alifurkansagir/Muhasebesistemi-sub000/internal/application/dto"
)

// ReportHandler maneja los endpoints de reportes financieros.
type ReportHandler struct {
	uc          *appanalytics.ReportUseCase
	recentLimit int
}

// NewReportHandler construye el handler. recentLimit es el tope por defecto
// del listado de transacciones recientes.
func NewReportHandler(uc *appanalytics.ReportUseCase, recentLimit int) *ReportHandler {
	return &ReportHandler{uc: uc, recentLimit: recentLimit}
}

// Summary godoc
// @Summary      Resumen financiero de un período
// @Tags         reports
// @Produce      json
// @Param        start  query  string  false  "Inicio YYYY-MM-DD (defecto: primer día del mes)"
// @Param        end    query  string  false  "Fin YYYY-MM-DD (defecto: hoy)"
// @Success      200    {object}  dto.FinancialSummaryDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start/end deben tener formato YYYY-MM-DD"})
	}
	out, err := h.uc.Summary(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Reporte mensual de un período
// @Tags         reports
// @Produce      json
// @Param        start  query  string  false  "Inicio YYYY-MM-DD (defecto: primer día del mes)"
// @Param        end    query  string  false  "Fin YYYY-MM-DD (defecto: hoy)"
// @Success      200    {object}  dto.MonthlyReportDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start/end deben tener formato YYYY-MM-DD"})
	}
	out, err := h.uc.Monthly(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RecentTransactions GET /api/reports/recent-transactions?limit=5
func (h *ReportHandler) RecentTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.recentLimit)
	if limit <= 0 {
		limit = h.recentLimit
	}
	out, err := h.uc.RecentTransactions(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
