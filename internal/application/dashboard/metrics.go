package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// Calculadoras puras sobre filas ya cargadas. Todos los guards de división
// por cero y conjuntos vacíos viven aquí; los builders no repiten guards.

var hundred = decimal.NewFromInt(100)

// CalculateBudgetUsage uso de presupuesto de un proyecto.
//
// Política presupuesto-cero: Percentage es 0 y, si además hay gasto,
// BudgetUndefined queda en true. Nunca produce NaN ni infinito.
func CalculateBudgetUsage(projectID int64, projectName string, budget, spent decimal.Decimal) dto.ProjectBudgetDTO {
	usage := dto.ProjectBudgetDTO{
		ProjectID:   projectID,
		ProjectName: projectName,
		Budget:      budget,
		Spent:       spent,
		Remaining:   budget.Sub(spent),
	}
	if budget.IsZero() {
		usage.Percentage = decimal.Zero
		usage.BudgetUndefined = spent.GreaterThan(decimal.Zero)
		return usage
	}
	usage.Percentage = spent.Div(budget).Mul(hundred)
	return usage
}

// IsBudgetOverrun gasto estrictamente por encima del presupuesto
// (percentage > 100). Un proyecto con presupuesto cero nunca es overrun;
// lo señala BudgetUndefined.
func IsBudgetOverrun(usage dto.ProjectBudgetDTO) bool {
	return usage.Percentage.GreaterThan(hundred)
}

// CalculateResourceUtilization utilización de equipos y personal asignado.
// Tasas en porcentaje, 0 cuando el total es 0. La tasa de empleados es 100
// con total > 0: se asume que todo asignado está ocupado (aproximación
// heredada del modelo de datos, no una medida real de ocupación).
func CalculateResourceUtilization(totalEquipment, inUseEquipment, totalAssigned int) dto.ResourceUtilizationDTO {
	employeeRate := decimal.Zero
	if totalAssigned > 0 {
		employeeRate = hundred
	}
	return dto.ResourceUtilizationDTO{
		Equipment: dto.EquipmentUtilizationDTO{
			Total:           totalEquipment,
			InUse:           inUseEquipment,
			Available:       totalEquipment - inUseEquipment,
			UtilizationRate: utilizationRate(inUseEquipment, totalEquipment),
		},
		Employees: dto.EmployeeUtilizationDTO{
			Total:           totalAssigned,
			UtilizationRate: employeeRate,
		},
	}
}

// utilizationRate = part/total*100, 0 cuando total == 0.
func utilizationRate(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred)
}

// DetectLowStock filas cuyo stock está estrictamente por debajo del mínimo
// del material. Cantidad igual al mínimo NO es stock bajo.
func DetectLowStock(rows []repository.InventoryRow) []dto.LowStockAlertDTO {
	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, row := range rows {
		if row.Quantity.LessThan(row.MinStock) {
			alerts = append(alerts, dto.LowStockAlertDTO{
				ProjectName:  row.ProjectName,
				MaterialName: row.MaterialName,
				CurrentStock: row.Quantity,
				MinStock:     row.MinStock,
				Unit:         row.Unit,
			})
		}
	}
	return alerts
}

// AggregateDailyHours trabajadores y horas del día dado. Cada fila es un
// trabajador-día (únicas por proyecto/empleado/fecha), así que el conteo de
// filas es el conteo de trabajadores.
func AggregateDailyHours(rows []repository.TimesheetRow, day time.Time) (workers int, totalHours decimal.Decimal) {
	y, m, d := day.Date()
	totalHours = decimal.Zero
	for _, row := range rows {
		ry, rm, rd := row.Timesheet.WorkDate.Date()
		if ry != y || rm != m || rd != d {
			continue
		}
		workers++
		totalHours = totalHours.Add(row.Timesheet.HoursWorked)
	}
	return workers, totalHours
}

// SumProcurementTotals suma de TotalAmount de las PRs aprobadas.
func SumProcurementTotals(approved []repository.PurchaseRequestRow) decimal.Decimal {
	total := decimal.Zero
	for _, pr := range approved {
		total = total.Add(pr.TotalAmount)
	}
	return total
}
