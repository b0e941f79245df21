package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obratrack-api/internal/application/dashboard"
	"github.com/jhoicas/obratrack-api/internal/application/dto"
)

// ReportPDFGenerator genera la versión imprimible del reporte.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, rep *dto.DashboardDTO) ([]byte, error)
}

// DashboardHandler sirve el reporte operativo por rol.
type DashboardHandler struct {
	uc  *dashboard.UseCase
	pdf ReportPDFGenerator
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *dashboard.UseCase, pdf ReportPDFGenerator) *DashboardHandler {
	return &DashboardHandler{uc: uc, pdf: pdf}
}

// Get godoc
// @Summary      Reporte operativo del rol del solicitante
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	rep, err := h.buildReport(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(rep)
}

// Export godoc
// @Summary      Reporte operativo en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/export [get]
func (h *DashboardHandler) Export(c *fiber.Ctx) error {
	rep, err := h.buildReport(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	bytes, err := h.pdf.GenerateReportPDF(c.Context(), rep)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	filename := fmt.Sprintf("reporte-operativo-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(bytes)
}

func (h *DashboardHandler) buildReport(c *fiber.Ctx) (*dto.DashboardDTO, error) {
	user := dashboard.RequestUser{
		ID:    GetUserID(c),
		Email: GetEmail(c),
		Role:  GetRole(c),
	}
	return h.uc.BuildReport(c.Context(), user)
}
