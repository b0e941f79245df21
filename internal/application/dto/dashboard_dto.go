package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardDTO respuesta de GET /api/dashboard. La forma depende del rol:
// las secciones que no aplican al rol se omiten del JSON. Los nombres de
// campo son contrato de API, no renombrar.
type DashboardDTO struct {
	Role string        `json:"role"`
	KPIs DashboardKPIs `json:"kpis"`

	// Project Manager y Admin/default
	BudgetUsage    []ProjectBudgetDTO `json:"budgetUsage,omitempty"`
	RecentExpenses []ExpenseDTO       `json:"recentExpenses,omitempty"`

	// Project Manager
	ProjectProgress     []ProjectProgressDTO    `json:"projectProgress,omitempty"`
	ResourceUtilization *ResourceUtilizationDTO `json:"resourceUtilization,omitempty"`
	BudgetOverruns      []BudgetOverrunDTO      `json:"budgetOverruns,omitempty"`

	// Site Supervisor
	DailyActivity    *DailyActivityDTO  `json:"dailyActivity,omitempty"`
	MaterialStock    []MaterialStockDTO `json:"materialStock,omitempty"`
	LowStockAlerts   []LowStockAlertDTO `json:"lowStockAlerts,omitempty"`
	EquipmentLogs    []EquipmentLogDTO  `json:"equipmentLogs,omitempty"`
	RecentTimesheets []TimesheetDTO     `json:"recentTimesheets,omitempty"`

	// Procurement Officer
	ApprovedPurchaseRequests []PurchaseRequestDTO `json:"approvedPurchaseRequests,omitempty"`
	PurchaseOrders           []PurchaseOrderDTO   `json:"purchaseOrders,omitempty"`
	PendingDeliveriesList    []PendingDeliveryDTO `json:"pendingDeliveriesList,omitempty"`
}

// DashboardKPIs indicadores del encabezado. Los tres primeros son comunes a
// todos los roles; el resto son punteros para que el JSON solo incluya los
// del rol (omitempty no distingue 0 de ausente en enteros planos).
type DashboardKPIs struct {
	ActiveProjects      int `json:"activeProjects"`
	TotalProjects       int `json:"totalProjects"`
	UnreadNotifications int `json:"unreadNotifications"`

	// Project Manager
	PendingApprovals *int `json:"pendingApprovals,omitempty"`
	LowStockItems    *int `json:"lowStockItems,omitempty"`
	BudgetOverruns   *int `json:"budgetOverruns,omitempty"`

	// Project Manager y Site Supervisor
	EquipmentInUse *int `json:"equipmentInUse,omitempty"`

	// Site Supervisor
	TodayWorkers   *int             `json:"todayWorkers,omitempty"`
	TodayHours     *decimal.Decimal `json:"todayHours,omitempty"`
	LowStockAlerts *int             `json:"lowStockAlerts,omitempty"`

	// Procurement Officer
	ApprovedPRs              *int             `json:"approvedPRs,omitempty"`
	PendingDeliveries        *int             `json:"pendingDeliveries,omitempty"`
	TotalProcurementExpenses *decimal.Decimal `json:"totalProcurementExpenses,omitempty"`
	ActiveSuppliers          *int             `json:"activeSuppliers,omitempty"`
}

// ProjectBudgetDTO uso de presupuesto de un proyecto.
// Percentage es 0 cuando Budget es 0; BudgetUndefined marca el caso
// presupuesto-cero-con-gasto para que la UI no lo lea como "0% usado".
type ProjectBudgetDTO struct {
	ProjectID       int64           `json:"projectId"`
	ProjectName     string          `json:"projectName"`
	Budget          decimal.Decimal `json:"budget"`
	Spent           decimal.Decimal `json:"spent"`
	Remaining       decimal.Decimal `json:"remaining"`
	Percentage      decimal.Decimal `json:"percentage"`
	BudgetUndefined bool            `json:"budgetUndefined,omitempty"`
}

// ProjectProgressDTO avance de un proyecto para el widget de progreso.
type ProjectProgressDTO struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

// BudgetOverrunDTO proyecto con gasto por encima del presupuesto.
type BudgetOverrunDTO struct {
	ProjectName string          `json:"projectName"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Overrun     decimal.Decimal `json:"overrun"` // spent - budget
}

// ResourceUtilizationDTO utilización de equipos y personal asignado.
type ResourceUtilizationDTO struct {
	Equipment EquipmentUtilizationDTO `json:"equipment"`
	Employees EmployeeUtilizationDTO  `json:"employees"`
}

// EquipmentUtilizationDTO desglose de equipos del scope.
type EquipmentUtilizationDTO struct {
	Total           int             `json:"total"`
	InUse           int             `json:"inUse"`
	Available       int             `json:"available"`
	UtilizationRate decimal.Decimal `json:"utilizationRate"`
}

// EmployeeUtilizationDTO personal asignado. La tasa es 100 si hay al menos
// un asignado: se asume que todo empleado asignado está ocupado (aproximación
// conocida, no una medida real de ocupación).
type EmployeeUtilizationDTO struct {
	Total           int             `json:"total"`
	UtilizationRate decimal.Decimal `json:"utilizationRate"`
}

// ExpenseDTO gasto reciente.
type ExpenseDTO struct {
	ID          int64           `json:"id"`
	ProjectName string          `json:"projectName"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	RecordedBy  string          `json:"recordedBy,omitempty"`
}

// DailyActivityDTO actividad del día en obra.
type DailyActivityDTO struct {
	TodayTimesheets []TimesheetDTO  `json:"todayTimesheets"`
	TotalHours      decimal.Decimal `json:"totalHours"`
}

// TimesheetDTO parte de horas para listados.
type TimesheetDTO struct {
	ID           int64           `json:"id"`
	WorkDate     string          `json:"workDate"` // YYYY-MM-DD
	EmployeeName string          `json:"employeeName"`
	ProjectName  string          `json:"projectName"`
	HoursWorked  decimal.Decimal `json:"hoursWorked"`
	Status       string          `json:"status"`
}

// MaterialStockDTO nivel de stock de un material en un proyecto.
type MaterialStockDTO struct {
	ProjectName  string          `json:"projectName"`
	MaterialName string          `json:"materialName"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	MinStock     decimal.Decimal `json:"minStock"`
	IsLowStock   bool            `json:"isLowStock"`
}

// LowStockAlertDTO material bajo el umbral mínimo (quantity < minStock).
type LowStockAlertDTO struct {
	ProjectName  string          `json:"projectName"`
	MaterialName string          `json:"materialName"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	Unit         string          `json:"unit"`
}

// EquipmentLogDTO equipo reciente del scope.
type EquipmentLogDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	ProjectName string `json:"projectName,omitempty"`
}

// PurchaseRequestDTO PR aprobada con sus líneas.
type PurchaseRequestDTO struct {
	ID           int64                    `json:"id"`
	PRNumber     string                   `json:"prNumber"`
	ProjectName  string                   `json:"projectName"`
	SupplierName string                   `json:"supplierName"`
	TotalAmount  decimal.Decimal          `json:"totalAmount"`
	ApprovedAt   *time.Time               `json:"approvedAt"`
	Items        []PurchaseRequestItemDTO `json:"items"`
}

// PurchaseRequestItemDTO línea de PR.
type PurchaseRequestItemDTO struct {
	MaterialName string          `json:"materialName"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// PurchaseOrderDTO PO con su PR resuelta.
type PurchaseOrderDTO struct {
	ID                   int64           `json:"id"`
	PONumber             string          `json:"poNumber"`
	PRNumber             string          `json:"prNumber"`
	ProjectName          string          `json:"projectName"`
	SupplierName         string          `json:"supplierName"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	Status               string          `json:"status"`
	ExpectedDeliveryDate *time.Time      `json:"expectedDeliveryDate"`
	ReceivedDate         *time.Time      `json:"receivedDate"`
}

// PendingDeliveryDTO PO emitida pendiente de recepción.
type PendingDeliveryDTO struct {
	ID                   int64      `json:"id"`
	PONumber             string     `json:"poNumber"`
	ProjectName          string     `json:"projectName"`
	SupplierName         string     `json:"supplierName"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
}
