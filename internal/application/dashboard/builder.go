package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obratrack-api/internal/application/dto"
	"github.com/jhoicas/obratrack-api/internal/domain/repository"
)

// Límites de los listados "recientes" de cada reporte.
const (
	recentExpensesLimit   = 5
	recentTimesheetsLimit = 10
	equipmentLogsLimit    = 10
	purchaseOrdersLimit   = 10
)

// reportBuilder completa las secciones específicas de un rol sobre el
// reporte base (role + kpis comunes ya resueltos por el dispatch).
type reportBuilder interface {
	Build(ctx context.Context, userID int64, scope ScopeContext, rep *dto.DashboardDTO) error
}

// ── Helpers de mapeo fila → DTO ───────────────────────────────────────────────

func expenseDTOs(rows []repository.ExpenseRow) []dto.ExpenseDTO {
	out := make([]dto.ExpenseDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ExpenseDTO{
			ID:          row.Expense.ID,
			ProjectName: row.ProjectName,
			Category:    row.Expense.Category,
			Amount:      row.Expense.Amount,
			ExpenseDate: row.Expense.ExpenseDate,
			RecordedBy:  row.RecordedBy,
		})
	}
	return out
}

func timesheetDTOs(rows []repository.TimesheetRow) []dto.TimesheetDTO {
	out := make([]dto.TimesheetDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TimesheetDTO{
			ID:           row.Timesheet.ID,
			WorkDate:     row.Timesheet.WorkDate.Format("2006-01-02"),
			EmployeeName: row.EmployeeName,
			ProjectName:  row.ProjectName,
			HoursWorked:  row.Timesheet.HoursWorked,
			Status:       row.Timesheet.Status,
		})
	}
	return out
}

func intPtr(v int) *int { return &v }

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
