// Package pdf genera la versión imprimible del dashboard operativo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Aplicación + Rol  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: proyectos activos / totales / notificaciones + rol   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN DEL ROL: presupuestos, stock bajo o entregas       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer para montos en formato es-CO (separador de miles con punto).
var printer = message.NewPrinter(language.Spanish)

// MarotoReportGenerator renderiza el reporte del dashboard usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, rep *dto.DashboardDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Operativo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRows(rep)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(roleSectionRows(rep)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep *dto.DashboardDTO) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(8).Add(
			text.New("ObraTrack — Reporte Operativo", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Rol: "+rep.Role, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func kpiRows(rep *dto.DashboardDTO) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(12).Add(text.New("Indicadores", props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary})),
		),
		kpiLine("Proyectos activos", fmt.Sprintf("%d", rep.KPIs.ActiveProjects)),
		kpiLine("Proyectos totales", fmt.Sprintf("%d", rep.KPIs.TotalProjects)),
		kpiLine("Notificaciones sin leer", fmt.Sprintf("%d", rep.KPIs.UnreadNotifications)),
	}

	if rep.KPIs.PendingApprovals != nil {
		rows = append(rows, kpiLine("Aprobaciones pendientes", fmt.Sprintf("%d", *rep.KPIs.PendingApprovals)))
	}
	if rep.KPIs.BudgetOverruns != nil {
		rows = append(rows, kpiLine("Proyectos sobre presupuesto", fmt.Sprintf("%d", *rep.KPIs.BudgetOverruns)))
	}
	if rep.KPIs.TodayWorkers != nil {
		rows = append(rows, kpiLine("Trabajadores hoy", fmt.Sprintf("%d", *rep.KPIs.TodayWorkers)))
	}
	if rep.KPIs.TodayHours != nil {
		rows = append(rows, kpiLine("Horas trabajadas hoy", rep.KPIs.TodayHours.StringFixed(1)))
	}
	if rep.KPIs.LowStockAlerts != nil {
		rows = append(rows, kpiLine("Alertas de stock bajo", fmt.Sprintf("%d", *rep.KPIs.LowStockAlerts)))
	}
	if rep.KPIs.PendingDeliveries != nil {
		rows = append(rows, kpiLine("Entregas pendientes", fmt.Sprintf("%d", *rep.KPIs.PendingDeliveries)))
	}
	if rep.KPIs.TotalProcurementExpenses != nil {
		rows = append(rows, kpiLine("Gasto de compras aprobadas", money(*rep.KPIs.TotalProcurementExpenses)))
	}
	if rep.KPIs.ActiveSuppliers != nil {
		rows = append(rows, kpiLine("Proveedores activos", fmt.Sprintf("%d", *rep.KPIs.ActiveSuppliers)))
	}
	return rows
}

func kpiLine(label, value string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9})),
		col.New(4).Add(text.New(value, props.Text{Size: 9, Align: align.Right, Style: fontstyle.Bold})),
	)
}

// roleSectionRows la tabla principal del rol: presupuestos (PM/Admin),
// alertas de stock (Supervisor) o entregas pendientes (Compras).
func roleSectionRows(rep *dto.DashboardDTO) []core.Row {
	switch {
	case len(rep.BudgetUsage) > 0:
		return budgetRows(rep.BudgetUsage)
	case len(rep.LowStockAlerts) > 0 || rep.DailyActivity != nil:
		return lowStockRows(rep.LowStockAlerts)
	case len(rep.PendingDeliveriesList) > 0:
		return deliveryRows(rep.PendingDeliveriesList)
	default:
		return []core.Row{
			row.New(8).Add(col.New(12).Add(text.New("Sin datos para este rol.", props.Text{Size: 9, Color: colorGray}))),
		}
	}
}

func budgetRows(usage []dto.ProjectBudgetDTO) []core.Row {
	rows := []core.Row{
		sectionTitle("Uso de presupuesto"),
		row.New(7).Add(
			headerCell("Proyecto", 4),
			headerCell("Presupuesto", 3),
			headerCell("Gastado", 3),
			headerCell("%", 2),
		),
	}
	for _, u := range usage {
		pct := u.Percentage.StringFixed(1) + "%"
		if u.BudgetUndefined {
			pct = "—"
		}
		rows = append(rows, row.New(6).Add(
			bodyCell(u.ProjectName, 4),
			bodyCell(money(u.Budget), 3),
			bodyCell(money(u.Spent), 3),
			bodyCell(pct, 2),
		))
	}
	return rows
}

func lowStockRows(alerts []dto.LowStockAlertDTO) []core.Row {
	rows := []core.Row{
		sectionTitle("Alertas de stock bajo"),
		row.New(7).Add(
			headerCell("Obra", 3),
			headerCell("Material", 4),
			headerCell("Stock", 2),
			headerCell("Mínimo", 3),
		),
	}
	if len(alerts) == 0 {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New("Sin materiales bajo el mínimo.", props.Text{Size: 9, Color: colorGray})),
		))
		return rows
	}
	for _, a := range alerts {
		rows = append(rows, row.New(6).Add(
			bodyCell(a.ProjectName, 3),
			bodyCell(a.MaterialName, 4),
			bodyCell(a.CurrentStock.String()+" "+a.Unit, 2),
			bodyCell(a.MinStock.String()+" "+a.Unit, 3),
		))
	}
	return rows
}

func deliveryRows(pending []dto.PendingDeliveryDTO) []core.Row {
	rows := []core.Row{
		sectionTitle("Entregas pendientes"),
		row.New(7).Add(
			headerCell("Orden", 3),
			headerCell("Obra", 3),
			headerCell("Proveedor", 3),
			headerCell("Entrega esperada", 3),
		),
	}
	for _, d := range pending {
		fecha := "—"
		if d.ExpectedDeliveryDate != nil {
			fecha = d.ExpectedDeliveryDate.Format("02/01/2006")
		}
		rows = append(rows, row.New(6).Add(
			bodyCell(d.PONumber, 3),
			bodyCell(d.ProjectName, 3),
			bodyCell(d.SupplierName, 3),
			bodyCell(fecha, 3),
		))
	}
	return rows
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2})),
	)
}

func headerCell(label string, size int) core.Col {
	return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}))
}

func bodyCell(value string, size int) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8}))
}

// money formatea un monto en COP con separadores es-CO.
func money(d decimal.Decimal) string {
	return "$ " + printer.Sprintf("%.2f", d.InexactFloat64())
}
