package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/obratrack-api/internal/domain/entity"
)

// ProjectFilter filtro de listados/conteos de proyectos.
// IDs == nil significa "sin filtro por proyecto"; un slice vacío debe
// traducirse a cero resultados (el caller usa el centinela de scope).
type ProjectFilter struct {
	IDs       []int64
	Status    string // vacío = cualquier estado
	ManagerID int64  // 0 = cualquier manager
}

// InventoryRow fila de inventario con material y proyecto resueltos por la DB.
// Lo produce la consulta con JOIN; el use case lo convierte en DTO.
type InventoryRow struct {
	ProjectID    int64
	ProjectName  string
	MaterialID   int64
	MaterialName string
	Quantity     decimal.Decimal
	MinStock     decimal.Decimal
	Unit         string
}

// ExpenseRow gasto con nombre de proyecto y resumen de quién lo registró.
type ExpenseRow struct {
	Expense     entity.Expense
	ProjectName string
	RecordedBy  string // nombre completo del usuario que registró el gasto
}

// EquipmentRow equipo con nombre de proyecto resuelto (vacío si no asignado).
type EquipmentRow struct {
	Equipment   entity.Equipment
	ProjectName string
}

// TimesheetRow parte de horas con empleado y proyecto resueltos.
type TimesheetRow struct {
	Timesheet    entity.Timesheet
	EmployeeName string // "{FirstName} {LastName}"
	ProjectName  string
}

// PurchaseRequestItemRow línea de PR con el material resuelto.
type PurchaseRequestItemRow struct {
	MaterialName string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
}

// PurchaseRequestRow PR aprobada con proyecto, proveedor y líneas resueltas.
type PurchaseRequestRow struct {
	ID           int64
	PRNumber     string
	ProjectName  string
	SupplierName string
	TotalAmount  decimal.Decimal
	ApprovedAt   *time.Time
	Items        []PurchaseRequestItemRow
}

// PurchaseOrderRow PO con la PR anidada (proyecto + proveedor) resuelta.
type PurchaseOrderRow struct {
	ID                   int64
	PONumber             string
	PRNumber             string
	ProjectName          string
	SupplierName         string
	TotalAmount          decimal.Decimal
	Status               string
	ExpectedDeliveryDate *time.Time
	ReceivedDate         *time.Time
}

// DashboardRepository consultas de solo lectura que consume el motor de
// reportes. Las implementaciones no modifican datos; la ausencia de filas es
// dato válido (slices vacíos / ceros), nunca un error.
type DashboardRepository interface {
	// CountProjects cuenta proyectos que cumplen el filtro.
	CountProjects(ctx context.Context, filter ProjectFilter) (int, error)

	// ListProjects lista proyectos que cumplen el filtro.
	ListProjects(ctx context.Context, filter ProjectFilter) ([]entity.Project, error)

	// SumExpenses suma los gastos de un proyecto. Devuelve cero si no hay filas
	// (la consulta usa COALESCE).
	SumExpenses(ctx context.Context, projectID int64) (decimal.Decimal, error)

	// CountUnreadNotifications notificaciones no leídas del usuario.
	CountUnreadNotifications(ctx context.Context, userID int64) (int, error)

	// FindEmployeeByEmail busca el empleado por email. Devuelve (nil, nil)
	// cuando no existe: para el dashboard la ausencia no es un error.
	FindEmployeeByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// ListActiveAssignments asignaciones vigentes de un empleado.
	ListActiveAssignments(ctx context.Context, employeeID int64) ([]entity.Assignment, error)

	// CountActiveAssignments asignaciones vigentes dentro de un conjunto de proyectos.
	CountActiveAssignments(ctx context.Context, projectIDs []int64) (int, error)

	// ListInventory inventario de los proyectos dados, con material y proyecto
	// resueltos por JOIN.
	ListInventory(ctx context.Context, projectIDs []int64) ([]InventoryRow, error)

	// CountEquipment equipos de los proyectos dados; status vacío cuenta todos.
	CountEquipment(ctx context.Context, projectIDs []int64, status string) (int, error)

	// ListEquipment equipos de los proyectos dados ordenados por updated_at
	// descendente, limitados a limit.
	ListEquipment(ctx context.Context, projectIDs []int64, limit int) ([]EquipmentRow, error)

	// ListRecentExpenses gastos ordenados por created_at descendente.
	// projectIDs == nil lista sobre todos los proyectos.
	ListRecentExpenses(ctx context.Context, projectIDs []int64, limit int) ([]ExpenseRow, error)

	// ListTimesheets partes de horas de los proyectos dados. workDate != nil
	// filtra por esa fecha exacta (solo día); limit <= 0 no limita. Siempre
	// ordenados por work_date descendente.
	ListTimesheets(ctx context.Context, projectIDs []int64, workDate *time.Time, limit int) ([]TimesheetRow, error)

	// CountPurchaseRequests cuenta PRs por estado.
	CountPurchaseRequests(ctx context.Context, status string) (int, error)

	// ListApprovedPurchaseRequests PRs aprobadas con proyecto, proveedor y
	// líneas (material resuelto), ordenadas por approved_at descendente.
	ListApprovedPurchaseRequests(ctx context.Context) ([]PurchaseRequestRow, error)

	// ListPurchaseOrders POs con la PR anidada resuelta, ordenadas por
	// created_at descendente, limitadas a limit.
	ListPurchaseOrders(ctx context.Context, limit int) ([]PurchaseOrderRow, error)

	// CountPurchaseOrders cuenta POs por estado.
	CountPurchaseOrders(ctx context.Context, status string) (int, error)

	// CountActiveSuppliers proveedores activos.
	CountActiveSuppliers(ctx context.Context) (int, error)
}
